// Package diag defines the diagnostic model shared by the template lowering
// pipeline.
//
// # Purpose
//
//   - Provide deterministic data structures that capture findings produced by
//     the lowering passes and by the driver that loads template trees.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to concrete storage or formatting layers.
//
// # Scope
//
// Package diag does not perform any formatting beyond the single-line short
// form, IO, or CLI integration. Rendering lives in internal/diagfmt.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Reasons – ordered human oriented reasons; keep each short and actionable.
//   - IsFatal – the node the diagnostic is attached to contributes no output.
//     Fatality is advisory: siblings keep being lowered and the assembly stage
//     decides whether a program is emitted.
//   - MaybeBug – the finding most likely points at a gap in the compiler rather
//     than at a construct that is deliberately unsupported.
//   - Pos – the template position reported by the parser.
//   - Notes – optional secondary positions/messages for additional context.
//
// # Emitting diagnostics
//
// Passes report through a diag.Reporter. The usual form is
//
//	diag.ReportUnsupported(r, pos, "<html> is not supported").Fatal().Emit()
//
// diag.BagReporter aggregates diagnostics into a Bag which keeps report order.
// A Bag may cap how many diagnostics it stores, but it always remembers that a
// fatal one was reported.
package diag
