package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"molosser/internal/diag"
	"molosser/internal/source"
)

type palette struct {
	err, warn, info, code, note, caret, gutter, dim *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		note:   color.New(color.FgBlue, color.Bold),
		caret:  color.New(color.FgGreen, color.Bold),
		gutter: color.New(color.FgBlue),
		dim:    color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.note, p.caret, p.gutter, p.dim} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty writes the diagnostics of bag in report order, one block each:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message> [fatal]
//	   3 | html
//	     | ^
//	  note: <path>:<line>:<col>: <msg>
//
// followed by a summary line.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	var sb strings.Builder
	for _, d := range bag.Items() {
		writeDiagnostic(&sb, d, fs, opts, pal)
	}
	writeSummary(&sb, bag, pal)
	_, err := io.WriteString(w, sb.String())
	return err
}

func writeDiagnostic(sb *strings.Builder, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, pal palette) {
	fmt.Fprintf(sb, "%s: %s %s: %s",
		displayPos(d.Pos, fs, opts.PathMode),
		pal.severity(d.Severity).Sprint(d.Severity.String()),
		pal.code.Sprint(d.Code.ID()),
		d.Message(),
	)
	if d.IsFatal {
		sb.WriteString(pal.dim.Sprint(" [fatal]"))
	}
	if d.MaybeBug {
		sb.WriteString(pal.dim.Sprint(" [possible compiler bug]"))
	}
	sb.WriteByte('\n')

	if opts.ShowSource {
		writeSourceLine(sb, d.Pos, fs, pal)
	}
	if opts.ShowNotes {
		for _, n := range d.Notes {
			fmt.Fprintf(sb, "  %s %s: %s\n", pal.note.Sprint("note:"), displayPos(n.Pos, fs, opts.PathMode), n.Msg)
		}
	}
}

func writeSourceLine(sb *strings.Builder, pos source.Pos, fs *source.FileSet, pal palette) {
	line, ok := fs.Line(pos)
	if !ok {
		return
	}
	num := fmt.Sprintf("%4d", pos.Line)
	fmt.Fprintf(sb, "%s %s %s\n", pal.gutter.Sprint(num), pal.gutter.Sprint("|"), line)
	if pos.Column == 0 {
		return
	}
	fmt.Fprintf(sb, "%s %s %s%s\n",
		strings.Repeat(" ", len(num)),
		pal.gutter.Sprint("|"),
		caretPadding(line, int(pos.Column)),
		pal.caret.Sprint("^"),
	)
}

// caretPadding returns the whitespace that puts a caret under the 1-based
// rune column col. Tabs are kept so the caret lines up with the source line.
func caretPadding(line string, col int) string {
	var sb strings.Builder
	i := 1
	for _, r := range line {
		if i >= col {
			break
		}
		if r == '\t' {
			sb.WriteByte('\t')
		} else {
			sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
		}
		i++
	}
	return sb.String()
}

func writeSummary(sb *strings.Builder, bag *diag.Bag, pal palette) {
	var errs, warns int
	for _, d := range bag.Items() {
		switch d.Severity {
		case diag.SevError:
			errs++
		case diag.SevWarning:
			warns++
		}
	}
	if errs == 0 && warns == 0 && bag.Dropped() == 0 {
		return
	}
	fmt.Fprintf(sb, "%s, %s", plural(errs, "error"), plural(warns, "warning"))
	if n := bag.Dropped(); n > 0 {
		fmt.Fprintf(sb, " (%d more not shown)", n)
	}
	sb.WriteByte('\n')
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
