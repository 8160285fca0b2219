package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"molosser/internal/diag"
	"molosser/internal/source"
)

func prettyFixture() (*diag.Bag, *source.FileSet) {
	fs := source.NewFileSet()
	fs.AddVirtual("views/page.pug", []byte("div\n  html\n"))
	pos := source.Pos{File: "views/page.pug", Line: 2, Column: 3}

	bag := diag.NewBag(0)
	r := diag.BagReporter{Bag: bag}
	diag.ReportUnsupported(r, pos, "html is not supported").Fatal().
		WithNote(pos, "remove the element").Emit()
	return bag, fs
}

func TestPrettyWithSource(t *testing.T) {
	bag, fs := prettyFixture()
	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{ShowSource: true, ShowNotes: true}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	want := strings.Join([]string{
		"views/page.pug:2:3: ERROR SYN2001: html is not supported [fatal]",
		"   2 |   html",
		"     |   ^",
		"  note: views/page.pug:2:3: remove the element",
		"1 error, 0 warnings",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("Pretty mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyPathModes(t *testing.T) {
	bag, fs := prettyFixture()
	tests := []struct {
		name   string
		mode   PathMode
		prefix string
	}{
		{"auto", PathModeAuto, "views/page.pug:2:3:"},
		{"basename", PathModeBasename, "page.pug:2:3:"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Pretty(&buf, bag, fs, PrettyOpts{PathMode: tt.mode}); err != nil {
				t.Fatalf("Pretty: %v", err)
			}
			if !strings.HasPrefix(buf.String(), tt.prefix) {
				t.Errorf("expected prefix %q, got:\n%s", tt.prefix, buf.String())
			}
			if strings.Contains(buf.String(), "note:") {
				t.Error("notes must be hidden unless requested")
			}
		})
	}
}

func TestPrettyMaybeBugAndSummary(t *testing.T) {
	bag := diag.NewBag(1)
	r := diag.BagReporter{Bag: bag}
	diag.ReportUnsupported(r, source.Pos{}, "node type Comment is currently not supported").MaybeBug().Emit()
	diag.ReportUnsupported(r, source.Pos{}, "dropped").Emit()

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, nil, PrettyOpts{ShowSource: true}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	want := "<template>: WARNING SYN2001: node type Comment is currently not supported [possible compiler bug]\n" +
		"0 errors, 1 warning (1 more not shown)\n"
	if got := buf.String(); got != want {
		t.Errorf("Pretty mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyEmptyBag(t *testing.T) {
	var buf bytes.Buffer
	if err := Pretty(&buf, diag.NewBag(0), nil, PrettyOpts{}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestCaretPadding(t *testing.T) {
	tests := []struct {
		line string
		col  int
		want string
	}{
		{"abc", 1, ""},
		{"abc", 3, "  "},
		{"\tx", 2, "\t"},
		{"日本x", 3, "    "},
		{"ab", 10, "  "},
	}
	for _, tt := range tests {
		if got := caretPadding(tt.line, tt.col); got != tt.want {
			t.Errorf("caretPadding(%q, %d) = %q, want %q", tt.line, tt.col, got, tt.want)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatPretty, "pretty": FormatPretty, "JSON": FormatJSON, "short": FormatShort} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseFormat("sarif"); err == nil {
		t.Error("expected error for unknown format")
	}
}
