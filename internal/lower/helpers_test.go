package lower

import (
	"testing"

	"molosser/internal/diag"
	"molosser/internal/jsx"
	"molosser/internal/template"
)

func newTestContext(passes *Passes) (*Context, *diag.Bag) {
	bag := diag.NewBag(0)
	ctx := NewContext(Options{Reporter: diag.BagReporter{Bag: bag}, Passes: passes})
	return ctx, bag
}

func text(s string) *template.Text { return &template.Text{Val: s} }

func block(nodes ...template.Node) *template.Block {
	if nodes == nil {
		nodes = []template.Node{}
	}
	return &template.Block{Nodes: nodes}
}

func tag(name string, attrs []template.Attr, children ...template.Node) *template.Tag {
	t := &template.Tag{Name: name, Attrs: attrs}
	if len(children) > 0 {
		t.Block = block(children...)
	}
	return t
}

func attr(name, val string) template.Attr { return template.Attr{Name: name, Val: val} }

// runTopLevel lowers n as a direct child of the document root.
func runTopLevel(ctx *Context, n template.Node) ([]jsx.Node, bool) {
	p := NewNodePass(n, ctx)
	p.IsTopLevel = true
	return Run[[]jsx.Node](p)
}

// stubPass returns a fixed output and counts its runs.
type stubPass[O any] struct {
	out  O
	ok   bool
	runs *int
}

func (s *stubPass[O]) Transform() {
	if s.runs != nil {
		*s.runs++
	}
}

func (s *stubPass[O]) Output() (O, bool) { return s.out, s.ok }

func wantSingleDiag(t *testing.T, bag *diag.Bag, msg string, fatal, maybeBug bool) diag.Diagnostic {
	t.Helper()
	if bag.Len() != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", bag.Len(), bag.Items())
	}
	d := bag.Items()[0]
	if d.Code != diag.UnsupportedSyntaxError {
		t.Errorf("code = %v, want %v", d.Code, diag.UnsupportedSyntaxError)
	}
	if got := d.Message(); got != msg {
		t.Errorf("message = %q, want %q", got, msg)
	}
	if d.IsFatal != fatal {
		t.Errorf("IsFatal = %v, want %v", d.IsFatal, fatal)
	}
	if d.MaybeBug != maybeBug {
		t.Errorf("MaybeBug = %v, want %v", d.MaybeBug, maybeBug)
	}
	return d
}
