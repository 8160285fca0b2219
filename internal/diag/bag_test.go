package diag_test

import (
	"testing"

	"molosser/internal/diag"
	"molosser/internal/source"
)

func TestBagKeepsReportOrder(t *testing.T) {
	bag := diag.NewBag(0)
	r := diag.BagReporter{Bag: bag}

	for _, name := range []string{"html", "body", "meta"} {
		diag.ReportUnsupported(r, source.Pos{Line: 1}, name+" is not supported").Fatal().Emit()
	}
	diag.ReportUnsupported(r, source.Pos{Line: 2}, "node type Comment is currently not supported").MaybeBug().Emit()

	items := bag.Items()
	if len(items) != 4 {
		t.Fatalf("expected 4 diagnostics, got %d", len(items))
	}
	want := []string{
		"html is not supported",
		"body is not supported",
		"meta is not supported",
		"node type Comment is currently not supported",
	}
	for i, w := range want {
		if got := items[i].Message(); got != w {
			t.Errorf("item %d: got %q, want %q", i, got, w)
		}
	}
	if !items[0].IsFatal || items[0].Severity != diag.SevError {
		t.Errorf("expected fatal error, got %+v", items[0])
	}
	if items[3].IsFatal || !items[3].MaybeBug || items[3].Severity != diag.SevWarning {
		t.Errorf("expected non-fatal maybe-bug warning, got %+v", items[3])
	}
}

func TestBagCapNeverHidesFatal(t *testing.T) {
	bag := diag.NewBag(1)
	r := diag.BagReporter{Bag: bag}

	diag.ReportUnsupported(r, source.Pos{}, "first").Emit()
	diag.ReportUnsupported(r, source.Pos{}, "second").Fatal().Emit()

	if bag.Len() != 1 {
		t.Fatalf("expected 1 stored diagnostic, got %d", bag.Len())
	}
	if bag.Dropped() != 1 {
		t.Errorf("expected 1 dropped diagnostic, got %d", bag.Dropped())
	}
	if !bag.HasFatal() {
		t.Error("fatal diagnostic rejected by the cap must still be visible via HasFatal")
	}
	if !bag.HasErrors() {
		t.Error("HasErrors should follow HasFatal")
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := diag.NewBag(0)
	b := diag.ReportUnsupported(diag.BagReporter{Bag: bag}, source.Pos{}, "once")
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("expected single emission, got %d", bag.Len())
	}
}

func TestMultiReporterFansOut(t *testing.T) {
	a, b := diag.NewBag(0), diag.NewBag(0)
	m := diag.MultiReporter{diag.BagReporter{Bag: a}, nil, diag.BagReporter{Bag: b}}
	m.Report(diag.NewError(diag.UnsupportedSyntaxError, source.Pos{}, "x"))
	if a.Len() != 1 || b.Len() != 1 {
		t.Fatalf("expected both bags to receive the diagnostic, got %d and %d", a.Len(), b.Len())
	}
}

func TestMerge(t *testing.T) {
	a, b := diag.NewBag(1), diag.NewBag(0)
	a.Add(diag.NewError(diag.UnsupportedSyntaxError, source.Pos{}, "a"))
	d := diag.NewError(diag.UnsupportedSyntaxError, source.Pos{}, "b")
	d.IsFatal = true
	b.Add(d)

	a.Merge(b)
	if a.Len() != 2 || !a.HasFatal() {
		t.Fatalf("merge lost data: len=%d fatal=%v", a.Len(), a.HasFatal())
	}
	if got := len(a.Fatal()); got != 1 {
		t.Errorf("expected one fatal diagnostic, got %d", got)
	}
}

func TestCodeID(t *testing.T) {
	if got := diag.UnsupportedSyntaxError.ID(); got != "SYN2001" {
		t.Errorf("ID = %q", got)
	}
	if got := diag.Code(9999).Title(); got != "Unknown error" {
		t.Errorf("Title = %q", got)
	}
}
