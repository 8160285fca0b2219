package testkit

import (
	"strings"
	"testing"

	"molosser/internal/jsx"
	"molosser/internal/source"
	"molosser/internal/template"
)

func virtualFile(t *testing.T, name, content string) *source.File {
	t.Helper()
	fs := source.NewFileSet()
	return fs.Get(fs.AddVirtual(name, []byte(content)))
}

func TestCheckPositions(t *testing.T) {
	sf := virtualFile(t, "views/a.pug", "div\n  p hi\n")
	at := func(line, col uint32) source.Pos {
		return source.Pos{File: "views/a.pug", Line: line, Column: col}
	}

	tests := []struct {
		name    string
		root    *template.Block
		wantErr string
	}{
		{
			name: "in range",
			root: &template.Block{Nodes: []template.Node{
				&template.Tag{Name: "div", Position: at(1, 1), Block: &template.Block{Nodes: []template.Node{
					&template.Tag{Name: "p", Position: at(2, 3)},
				}}},
			}},
		},
		{
			name: "column one past the end",
			root: &template.Block{Nodes: []template.Node{&template.Text{Val: "x", Position: at(1, 4)}}},
		},
		{
			name: "other files skipped",
			root: &template.Block{Nodes: []template.Node{
				&template.Text{Val: "x", Position: source.Pos{File: "views/b.pug", Line: 40}},
			}},
		},
		{
			name:    "line out of range",
			root:    &template.Block{Nodes: []template.Node{&template.Text{Val: "x", Position: at(9, 1)}}},
			wantErr: "line 9",
		},
		{
			name:    "column out of range",
			root:    &template.Block{Nodes: []template.Node{&template.Text{Val: "x", Position: at(2, 12)}}},
			wantErr: "column 12",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckPositions(tt.root, sf)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestCheckRender(t *testing.T) {
	body := &jsx.Fragment{Children: []jsx.Node{&jsx.Text{Value: "x"}}}
	tests := []struct {
		name    string
		nodes   []jsx.Node
		wantErr bool
	}{
		{
			name: "well formed",
			nodes: []jsx.Node{
				&jsx.Element{Name: "div", Children: []jsx.Node{
					&jsx.ExprContainer{Expr: &jsx.Cond{Test: &jsx.Raw{Source: "a"}, Then: body}},
					&jsx.ExprContainer{Expr: &jsx.Map{Collection: &jsx.Raw{Source: "xs"}, Item: "x", Body: body}},
					&jsx.ExprContainer{Expr: &jsx.Switch{
						Discriminant: &jsx.Raw{Source: "k"},
						Cases:        []jsx.SwitchCase{{Test: &jsx.Raw{Source: "1"}}, {Body: body}},
					}},
				}},
				&jsx.RawStmt{Source: "let a = 1"},
			},
		},
		{name: "nil child", nodes: []jsx.Node{nil}, wantErr: true},
		{name: "unnamed element", nodes: []jsx.Node{&jsx.Element{}}, wantErr: true},
		{name: "empty container", nodes: []jsx.Node{&jsx.ExprContainer{}}, wantErr: true},
		{
			name:    "cond without body",
			nodes:   []jsx.Node{&jsx.ExprContainer{Expr: &jsx.Cond{Test: &jsx.Raw{Source: "a"}}}},
			wantErr: true,
		},
		{
			name: "nested nil",
			nodes: []jsx.Node{&jsx.Element{Name: "ul", Children: []jsx.Node{
				&jsx.Fragment{Children: []jsx.Node{nil}},
			}}},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckRender(tt.nodes)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CheckRender error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCheckProgram(t *testing.T) {
	if err := CheckProgram(nil); err == nil {
		t.Fatal("nil program accepted")
	}
	if err := CheckProgram(&jsx.Program{Statements: []jsx.Node{nil}}); err == nil {
		t.Fatal("nil statement accepted")
	}
	if err := CheckProgram(&jsx.Program{}); err != nil {
		t.Fatalf("empty program rejected: %v", err)
	}
}
