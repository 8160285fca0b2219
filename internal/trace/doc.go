// Package trace provides tracing for the template compiler.
//
// It records driver phases, per-file work and, at the most verbose level, the
// lowering of individual template nodes. Tracing is the compiler's log: there
// is no other logging layer.
//
// # Usage
//
//	molosser lower --trace=- --trace-level=debug views/index.json
//
// # Architecture
//
//   - Nop: zero-overhead tracer when disabled
//   - StreamTracer: immediate write to output (file/stderr)
//   - RingTracer: circular buffer; in ring-only mode it is dumped to the
//     trace output when the command exits, and alongside a stream (mode
//     both) it is replayed on stderr only when the command fails
//   - MultiTracer: combines multiple tracers
//
// # Levels
//
//   - LevelOff: no tracing
//   - LevelError: tracer open, no span scope emitted
//   - LevelPhase: driver and pass boundaries
//   - LevelDetail: per-file events
//   - LevelDebug: everything including template nodes
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "lower", parentID)
//	defer span.End("")
package trace
