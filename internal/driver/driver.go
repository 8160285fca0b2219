// Package driver runs the lowering pass over template tree files: load,
// decode, lower, assemble. Each file gets its own lowering context and
// diagnostics bag.
package driver

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"molosser/internal/diag"
	"molosser/internal/jsx"
	"molosser/internal/lower"
	"molosser/internal/observ"
	"molosser/internal/source"
	"molosser/internal/template"
	"molosser/internal/trace"
)

// Options configures a driver run.
type Options struct {
	MaxDiagnostics int // per-file cap, 0 = unlimited
	Jobs           int // parallel files, <= 0 means GOMAXPROCS
	Passes         *lower.Passes
	// Tracer overrides the tracer carried by the context.
	Tracer   trace.Tracer
	Cache    *TreeCache
	Progress ProgressSink
}

func (o Options) tracer(ctx context.Context) trace.Tracer {
	if o.Tracer != nil {
		return o.Tracer
	}
	return trace.FromContext(ctx)
}

// Result is the outcome of lowering one tree.
type Result struct {
	Path string
	// Output is the render tree of the document root.
	Output []jsx.Node
	// TopLevel holds the hoisted statements in discovery order.
	TopLevel []jsx.Node
	Bag      *diag.Bag
	// Program is nil when a fatal diagnostic was reported.
	Program *jsx.Program
	// SourceFiles are the template sources the tree's positions refer to.
	SourceFiles []string
	Timing      observ.Report
}

// HasFatal reports whether lowering withheld the program.
func (r *Result) HasFatal() bool {
	return r != nil && r.Bag != nil && r.Bag.HasFatal()
}

// LowerTree lowers an already decoded tree.
func LowerTree(ctx context.Context, root *template.Block, opts Options) *Result {
	return lowerTree(ctx, "", root, opts, observ.NewTimer())
}

func lowerTree(ctx context.Context, path string, root *template.Block, opts Options, timer *observ.Timer) *Result {
	tracer := opts.tracer(ctx)
	parent := trace.CurrentSpan(ctx)
	bag := diag.NewBag(opts.MaxDiagnostics)
	res := &Result{Path: path, Bag: bag, SourceFiles: sourceFiles(root)}

	span := trace.Begin(tracer, trace.ScopePass, observ.PhaseLower, parent)
	nodeParent := parent
	if id := span.ID(); id != 0 {
		nodeParent = id
	}
	idx := timer.Begin(observ.PhaseLower)
	lctx := lower.NewContext(lower.Options{
		Reporter:    diag.BagReporter{Bag: bag},
		Passes:      opts.Passes,
		Tracer:      tracer,
		TraceParent: nodeParent,
	})
	res.Output = lower.Document(lctx, root)
	res.TopLevel = lctx.TopLevelStatements
	timer.End(idx, "")
	span.WithExtra("diagnostics", strconv.Itoa(bag.Len())).
		End(fmt.Sprintf("render=%d hoisted=%d", len(res.Output), len(res.TopLevel)))

	if bag.HasFatal() {
		trace.Point(tracer, trace.ScopePass, "assemble-skipped", "fatal diagnostics", parent)
	} else {
		span = trace.Begin(tracer, trace.ScopePass, observ.PhaseAssemble, parent)
		idx = timer.Begin(observ.PhaseAssemble)
		res.Program = lower.Assemble(lctx, res.Output)
		timer.End(idx, "")
		span.End("")
	}
	res.Timing = timer.Report()
	return res
}

// LowerFile loads and lowers the tree at path. Load and decode failures are
// returned as errors; problems in the tree are diagnostics in the result.
func LowerFile(ctx context.Context, path string, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	tracer := opts.tracer(ctx)
	span := trace.Begin(tracer, trace.ScopeModule, "file:"+path, trace.CurrentSpan(ctx))
	if span.ID() != 0 {
		ctx = trace.WithSpan(ctx, span)
	}

	started := time.Now()
	timer := observ.NewTimer()
	emit(opts.Progress, Event{File: path, Stage: observ.PhaseLoad, Status: StatusWorking})
	root, err := loadTree(path, opts.Cache, timer)
	if err != nil {
		span.End("error")
		emit(opts.Progress, Event{File: path, Status: StatusError, Err: err, Elapsed: time.Since(started)})
		return nil, err
	}
	emit(opts.Progress, Event{File: path, Stage: observ.PhaseLower, Status: StatusWorking})
	res := lowerTree(ctx, path, root, opts, timer)
	span.End("fatal=" + strconv.FormatBool(res.HasFatal()))

	status := StatusDone
	if res.HasFatal() {
		status = StatusError
	}
	emit(opts.Progress, Event{File: path, Status: status, Elapsed: time.Since(started)})
	return res, nil
}

// LowerFiles lowers every path with at most opts.Jobs files in flight. Results
// are in input order. A file that cannot be loaded yields a result holding a
// single fatal I/O diagnostic; the returned error is only set when ctx is
// cancelled.
func LowerFiles(ctx context.Context, paths []string, opts Options) ([]*Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	tracer := opts.tracer(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "lower-files", trace.CurrentSpan(ctx))
	defer span.End("files=" + strconv.Itoa(len(paths)))
	if span.ID() != 0 {
		ctx = trace.WithSpan(ctx, span)
	}

	for _, path := range paths {
		emit(opts.Progress, Event{File: path, Status: StatusQueued})
	}

	// each goroutine writes only its own index
	results := make([]*Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(paths)))
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := LowerFile(gctx, path, opts)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				res = failedResult(path, err, opts.MaxDiagnostics)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func failedResult(path string, err error, maxDiagnostics int) *Result {
	code := diag.IOLoadFileError
	var decErr *DecodeError
	if errors.As(err, &decErr) {
		code = diag.IODecodeError
	}
	bag := diag.NewBag(maxDiagnostics)
	diag.ReportError(diag.BagReporter{Bag: bag}, code, source.Pos{File: path}, err.Error()).Fatal().Emit()
	return &Result{Path: path, Bag: bag}
}
