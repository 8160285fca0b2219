package lower

import (
	"molosser/internal/jsx"
	"molosser/internal/template"
)

// Document lowers the document root. Its direct children are top-level; the
// result is the render tree, while hoisted statements land in
// ctx.TopLevelStatements.
func Document(ctx *Context, root *template.Block) []jsx.Node {
	if root == nil {
		return nil
	}
	p := NewNodePass(root, ctx)
	p.document = true
	out, _ := Run[[]jsx.Node](p)
	return out
}

// Assemble builds the program from a finished compile.
func Assemble(ctx *Context, render []jsx.Node) *jsx.Program {
	stmts := make([]jsx.Node, len(ctx.TopLevelStatements))
	copy(stmts, ctx.TopLevelStatements)
	return &jsx.Program{Statements: stmts, Render: render}
}
