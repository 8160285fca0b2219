package lower

import (
	"molosser/internal/diag"
	"molosser/internal/jsx"
	"molosser/internal/template"
	"molosser/internal/trace"
)

// Options configures a Context.
type Options struct {
	Reporter diag.Reporter
	// Passes overrides specialized passes; nil entries use the defaults.
	Passes *Passes
	Tracer trace.Tracer
	// TraceParent is the span node-level spans are nested under.
	TraceParent uint64
}

// Context is the state shared by every pass of one compile.
type Context struct {
	// TopLevelStatements collects hoisted statements in discovery order.
	TopLevelStatements []jsx.Node

	Reporter diag.Reporter
	Passes   Passes
	Tracer   trace.Tracer

	span uint64 // innermost node span, parent of the next one
}

// NewContext creates the context for one compile.
func NewContext(opts Options) *Context {
	passes := DefaultPasses()
	if opts.Passes != nil {
		passes = passes.merge(*opts.Passes)
	}
	reporter := opts.Reporter
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	tracer := opts.Tracer
	if tracer == nil {
		tracer = trace.Nop
	}
	return &Context{
		Reporter: reporter,
		Passes:   passes,
		Tracer:   tracer,
		span:     opts.TraceParent,
	}
}

// Hoist appends statements to TopLevelStatements. Nil entries are skipped.
func (c *Context) Hoist(nodes ...jsx.Node) {
	for _, n := range nodes {
		if n != nil {
			c.TopLevelStatements = append(c.TopLevelStatements, n)
		}
	}
}

// Report pushes d to the shared reporter.
func (c *Context) Report(d diag.Diagnostic) {
	c.Reporter.Report(d)
}

// Lower runs the dispatcher on a nested node. Nested nodes are never top-level.
func (c *Context) Lower(n template.Node) ([]jsx.Node, bool) {
	if n == nil {
		return nil, false
	}
	return Run[[]jsx.Node](NewNodePass(n, c))
}

// LowerBlock lowers the children of b. A nil block lowers to nothing.
func (c *Context) LowerBlock(b *template.Block) []jsx.Node {
	if b == nil {
		return nil
	}
	out, _ := c.Lower(b)
	return out
}

func (c *Context) beginNode(n template.Node) (*trace.Span, uint64) {
	if !c.Tracer.Enabled() {
		return nil, c.span
	}
	parent := c.span
	span := trace.Begin(c.Tracer, trace.ScopeNode, "node:"+n.Type(), parent)
	if id := span.ID(); id != 0 {
		c.span = id
	}
	return span, parent
}

func (c *Context) endNode(span *trace.Span, parent uint64, detail string) {
	c.span = parent
	if span != nil {
		span.End(detail)
	}
}
