package diag

import (
	"testing"

	"molosser/internal/source"
)

func TestFormatShortDiagnostics(t *testing.T) {
	diags := []Diagnostic{
		{
			Severity: SevError,
			Code:     UnsupportedSyntaxError,
			Reasons:  []string{"Currently only scripts of type text/typescript and text/molosser are supported"},
			IsFatal:  true,
			Pos:      source.Pos{File: "views/a.pug", Line: 3, Column: 1},
			Notes: []Note{
				{Pos: source.Pos{File: "views/a.pug", Line: 3, Column: 8}, Msg: "did you mean\ntext/typescript?"},
			},
		},
		{
			Severity: SevWarning,
			Code:     UnsupportedSyntaxError,
			Reasons:  []string{"node type Comment is currently not supported"},
			MaybeBug: true,
			Pos:      source.Pos{File: "views/a.pug", Line: 5, Column: 2},
		},
	}

	expected := "error SYN2001 views/a.pug:3:1 Currently only scripts of type text/typescript and text/molosser are supported [fatal]\n" +
		"note SYN2001 views/a.pug:3:8 did you mean text/typescript?\n" +
		"warning SYN2001 views/a.pug:5:2 node type Comment is currently not supported [bug?]"

	if got := FormatShortDiagnostics(diags, true); got != expected {
		t.Fatalf("unexpected short diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}
