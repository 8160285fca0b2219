package lower

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"molosser/internal/jsx"
	"molosser/internal/template"
)

func TestScriptWithSrcIsRejected(t *testing.T) {
	ctx, bag := newTestContext(nil)
	n := tag("script", []template.Attr{attr("src", "'app.ts'")}, text("let a = 1"))
	if out, ok := runTopLevel(ctx, n); ok {
		t.Fatalf("expected absent output, got %v", out)
	}
	wantSingleDiag(t, bag, "External script tags are currently not supported", true, false)
	if len(ctx.TopLevelStatements) != 0 {
		t.Errorf("nothing should be hoisted, got %v", ctx.TopLevelStatements)
	}
}

func TestScriptTopLevelHoistsInOrder(t *testing.T) {
	for _, typ := range []string{"", "'text/typescript'", `"text/typescript"`, "text/typescript"} {
		t.Run("type="+typ, func(t *testing.T) {
			var attrs []template.Attr
			if typ != "" {
				attrs = []template.Attr{attr("type", typ)}
			}
			ctx, bag := newTestContext(nil)
			root := block(
				tag("script", attrs, text("let a = 1"), text("\n"), text("let b = 2")),
				tag("p", nil),
				tag("script", attrs, text("let c = 3")),
			)
			out := Document(ctx, root)
			if diff := cmp.Diff([]jsx.Node{&jsx.Element{Name: "p"}}, out); diff != "" {
				t.Errorf("render mismatch (-want +got):\n%s", diff)
			}
			wantStmts := []jsx.Node{
				&jsx.RawStmt{Source: "let a = 1\nlet b = 2"},
				&jsx.RawStmt{Source: "let c = 3"},
			}
			if diff := cmp.Diff(wantStmts, ctx.TopLevelStatements); diff != "" {
				t.Errorf("statements mismatch (-want +got):\n%s", diff)
			}
			if bag.Len() != 0 {
				t.Errorf("unexpected diagnostics: %v", bag.Items())
			}
		})
	}
}

func TestScriptOutputIsEmptyNotAbsent(t *testing.T) {
	ctx, _ := newTestContext(nil)
	out, ok := runTopLevel(ctx, tag("script", nil, text("x()")))
	if !ok || out == nil || len(out) != 0 {
		t.Fatalf("got (%v, %v), want empty present output", out, ok)
	}
}

func TestScriptNotTopLevelIsRejected(t *testing.T) {
	ctx, bag := newTestContext(nil)
	root := block(tag("div", nil, tag("script", nil, text("let a = 1"))))
	out := Document(ctx, root)
	want := []jsx.Node{&jsx.Element{Name: "div", Children: []jsx.Node{}}}
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("render mismatch (-want +got):\n%s", diff)
	}
	wantSingleDiag(t, bag, "node of type Tag is currently only supported at top level", true, false)
	if len(ctx.TopLevelStatements) != 0 {
		t.Errorf("nothing should be hoisted, got %v", ctx.TopLevelStatements)
	}
}

func TestScriptDefaultsToNotTopLevel(t *testing.T) {
	ctx, bag := newTestContext(nil)
	if _, ok := ctx.Lower(tag("script", nil, text("x"))); ok {
		t.Fatal("expected absent output")
	}
	wantSingleDiag(t, bag, "node of type Tag is currently only supported at top level", true, false)
}

func TestScriptUnknownTypeIsRejected(t *testing.T) {
	ctx, bag := newTestContext(nil)
	n := tag("script", []template.Attr{attr("type", "'text/javascript'")}, text("let a = 1"))
	if out, ok := runTopLevel(ctx, n); ok {
		t.Fatalf("expected absent output, got %v", out)
	}
	d := wantSingleDiag(t, bag, "Currently only scripts of type text/typescript and text/molosser are supported", true, false)
	if len(d.Notes) != 0 {
		t.Errorf("unexpected notes: %v", d.Notes)
	}
	if len(ctx.TopLevelStatements) != 0 {
		t.Errorf("nothing should be hoisted, got %v", ctx.TopLevelStatements)
	}
}

func TestScriptUnknownTypeSuggestsDialect(t *testing.T) {
	ctx, bag := newTestContext(nil)
	n := tag("script", []template.Attr{attr("type", "'typescript'")}, text("let a = 1"))
	runTopLevel(ctx, n)
	d := wantSingleDiag(t, bag, "Currently only scripts of type text/typescript and text/molosser are supported", true, false)
	if len(d.Notes) != 1 || d.Notes[0].Msg != "did you mean text/typescript?" {
		t.Errorf("notes = %v, want a text/typescript suggestion", d.Notes)
	}
}

func TestScriptSrcCheckedBeforeType(t *testing.T) {
	ctx, bag := newTestContext(nil)
	n := tag("script", []template.Attr{attr("type", "'text/javascript'"), attr("src", "'a.js'")})
	runTopLevel(ctx, n)
	wantSingleDiag(t, bag, "External script tags are currently not supported", true, false)
}

func TestScriptWithNonTextChildStillHoists(t *testing.T) {
	ctx, bag := newTestContext(nil)
	n := tag("script", nil, text("let a = 1"), tag("b", nil))
	out, ok := runTopLevel(ctx, n)
	if !ok || len(out) != 0 {
		t.Fatalf("got (%v, %v), want empty present output", out, ok)
	}
	wantSingleDiag(t, bag, "script or style tags can have only text nodes", true, false)
	want := []jsx.Node{&jsx.RawStmt{Source: "let a = 1"}}
	if diff := cmp.Diff(want, ctx.TopLevelStatements); diff != "" {
		t.Errorf("statements mismatch (-want +got):\n%s", diff)
	}
}

func TestTemplateDialectHoistsLoweredChildren(t *testing.T) {
	ctx, bag := newTestContext(nil)
	n := tag("script", []template.Attr{attr("type", "'text/molosser'")},
		tag("div", nil, text("shared")),
		text("tail"),
	)
	out, ok := runTopLevel(ctx, n)
	if !ok || len(out) != 0 {
		t.Fatalf("got (%v, %v), want empty present output", out, ok)
	}
	want := []jsx.Node{
		&jsx.Element{Name: "div", Children: []jsx.Node{&jsx.Text{Value: "shared"}}},
		&jsx.Text{Value: "tail"},
	}
	if diff := cmp.Diff(want, ctx.TopLevelStatements); diff != "" {
		t.Errorf("statements mismatch (-want +got):\n%s", diff)
	}
	if bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %v", bag.Items())
	}
}

func TestTemplateDialectChildrenAreNotTopLevel(t *testing.T) {
	ctx, bag := newTestContext(nil)
	n := tag("script", []template.Attr{attr("type", "'text/molosser'")},
		tag("script", nil, text("nested")),
	)
	runTopLevel(ctx, n)
	wantSingleDiag(t, bag, "node of type Tag is currently only supported at top level", true, false)
	if len(ctx.TopLevelStatements) != 0 {
		t.Errorf("nothing should be hoisted, got %v", ctx.TopLevelStatements)
	}
}

func TestScriptUsesInjectedScriptPass(t *testing.T) {
	stmt := &jsx.RawStmt{Source: "injected"}
	passes := &Passes{
		Script: func(*template.Tag, *Context) Pass[[]jsx.Node] {
			return &stubPass[[]jsx.Node]{out: []jsx.Node{stmt, nil}, ok: true}
		},
	}
	ctx, _ := newTestContext(passes)
	runTopLevel(ctx, tag("script", nil, text("ignored")))
	if diff := cmp.Diff([]jsx.Node{stmt}, ctx.TopLevelStatements); diff != "" {
		t.Errorf("statements mismatch (-want +got):\n%s", diff)
	}
}

func TestStripQuotes(t *testing.T) {
	tests := []struct{ in, want string }{
		{"'text/typescript'", "text/typescript"},
		{`"text/typescript"`, "text/typescript"},
		{"text/typescript", "text/typescript"},
		{`'mixed"`, "mixed"},
		{"'open", "open"},
		{"close'", "close"},
		{"''", ""},
		{"'", ""},
		{"", ""},
		{"''x''", "'x'"},
	}
	for _, tt := range tests {
		if got := stripQuotes(tt.in); got != tt.want {
			t.Errorf("stripQuotes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
