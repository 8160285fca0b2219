package diag

import "molosser/internal/source"

// Reporter receives diagnostics from passes. Report is fire-and-forget and
// must keep the order diagnostics arrive in.
type Reporter interface {
	Report(d Diagnostic)
}

// ReportBuilder accumulates diagnostic details before emitting to Reporter.
type ReportBuilder struct {
	reporter Reporter
	diag     Diagnostic
	emitted  bool
}

// NewReportBuilder constructs a builder bound to Reporter.
func NewReportBuilder(r Reporter, sev Severity, code Code, pos source.Pos, reasons ...string) *ReportBuilder {
	return &ReportBuilder{
		reporter: r,
		diag:     New(sev, code, pos, reasons...),
	}
}

// ReportUnsupported starts a non-fatal UnsupportedSyntaxError.
// Call Fatal to escalate it.
func ReportUnsupported(r Reporter, pos source.Pos, reasons ...string) *ReportBuilder {
	return NewReportBuilder(r, SevWarning, UnsupportedSyntaxError, pos, reasons...)
}

// ReportError is a shortcut for SevError diagnostics.
func ReportError(r Reporter, code Code, pos source.Pos, reasons ...string) *ReportBuilder {
	return NewReportBuilder(r, SevError, code, pos, reasons...)
}

// Fatal marks the diagnostic as withholding the node's output.
func (b *ReportBuilder) Fatal() *ReportBuilder {
	if b == nil {
		return nil
	}
	b.diag.IsFatal = true
	if b.diag.Severity < SevError {
		b.diag.Severity = SevError
	}
	return b
}

// MaybeBug flags the diagnostic as a probable defect in the compiler.
func (b *ReportBuilder) MaybeBug() *ReportBuilder {
	if b == nil {
		return nil
	}
	b.diag.MaybeBug = true
	return b
}

// WithNote appends a note to diagnostic.
func (b *ReportBuilder) WithNote(pos source.Pos, msg string) *ReportBuilder {
	if b == nil {
		return nil
	}
	b.diag = b.diag.WithNote(pos, msg)
	return b
}

// Emit sends diagnostic to underlying reporter exactly once.
func (b *ReportBuilder) Emit() {
	if b == nil || b.emitted {
		return
	}
	if b.reporter != nil {
		b.reporter.Report(b.diag)
	}
	b.emitted = true
}

// Diagnostic returns accumulated diagnostic without emitting.
func (b *ReportBuilder) Diagnostic() Diagnostic {
	if b == nil {
		return Diagnostic{}
	}
	return b.diag
}

// BagReporter is an adapter that writes into *Bag.
type BagReporter struct{ Bag *Bag }

func (r BagReporter) Report(d Diagnostic) {
	if r.Bag == nil {
		return
	}
	r.Bag.Add(d)
}

// NopReporter drops everything.
type NopReporter struct{}

func (NopReporter) Report(Diagnostic) {}

// MultiReporter forwards each diagnostic to every reporter, in order.
type MultiReporter []Reporter

func (m MultiReporter) Report(d Diagnostic) {
	for _, r := range m {
		if r != nil {
			r.Report(d)
		}
	}
}
