package observ

import (
	"strings"
	"testing"
)

func TestTimerPhases(t *testing.T) {
	tm := NewTimer()
	load := tm.Begin(PhaseLoad)
	tm.End(load, "a.json")
	lower := tm.Begin(PhaseLower)
	tm.End(lower, "")
	tm.End(99, "ignored")

	phases := tm.Phases()
	if len(phases) != 2 {
		t.Fatalf("got %d phases, want 2", len(phases))
	}
	if phases[0].Name != PhaseLoad || phases[0].Note != "a.json" {
		t.Errorf("phase 0 = %+v", phases[0])
	}
	if phases[1].Name != PhaseLower {
		t.Errorf("phase 1 = %+v", phases[1])
	}

	report := tm.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("report phases = %d, want 2", len(report.Phases))
	}
	if report.TotalMS < report.Phases[0].DurationMS {
		t.Errorf("total %.3f smaller than a phase %.3f", report.TotalMS, report.Phases[0].DurationMS)
	}

	summary := tm.Summary()
	for _, want := range []string{"timings:", PhaseLoad, PhaseLower, "// a.json", "total"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}

func TestTimerMerge(t *testing.T) {
	file := NewTimer()
	file.End(file.Begin(PhaseDecode), "")

	all := NewTimer()
	all.Merge("a.json/", file)
	all.Merge("", nil)
	if got := all.Phases(); len(got) != 1 || got[0].Name != "a.json/"+PhaseDecode {
		t.Errorf("merged phases = %+v", got)
	}
}

func TestEmptyReport(t *testing.T) {
	if r := NewTimer().Report(); r.TotalMS != 0 || r.Phases != nil {
		t.Errorf("empty report = %+v", r)
	}
}
