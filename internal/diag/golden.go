package diag

import (
	"fmt"
	"strings"
)

// FormatShortDiagnostics renders diagnostics one per line, in report order:
//
//	error SYN2001 file:line:col reason; reason [fatal] [bug?]
//
// Notes follow their diagnostic as "note" lines when includeNotes is set.
// The output is stable and used for golden comparisons in tests.
func FormatShortDiagnostics(diags []Diagnostic, includeNotes bool) string {
	var b strings.Builder
	for i := range diags {
		d := &diags[i]
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s %s %s %s", severityLabel(d.Severity), d.Code.ID(), d.Pos, flatten(d.Message()))
		if d.IsFatal {
			b.WriteString(" [fatal]")
		}
		if d.MaybeBug {
			b.WriteString(" [bug?]")
		}
		if !includeNotes {
			continue
		}
		for _, n := range d.Notes {
			fmt.Fprintf(&b, "\nnote %s %s %s", d.Code.ID(), n.Pos, flatten(n.Msg))
		}
	}
	return b.String()
}

func severityLabel(sev Severity) string {
	return strings.ToLower(sev.String())
}

func flatten(msg string) string {
	return strings.Join(strings.Fields(msg), " ")
}
