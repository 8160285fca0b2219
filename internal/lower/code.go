package lower

import (
	"strings"

	"molosser/internal/jsx"
	"molosser/internal/template"
)

// CodePass lowers embedded code: an expression is rendered in place, a
// statement is kept as a statement node.
type CodePass struct {
	Base[*template.Code, []jsx.Node]
	IsExpression bool
}

func NewCodePass(n *template.Code, isExpression bool, ctx *Context) *CodePass {
	return &CodePass{
		Base:         NewBase[*template.Code, []jsx.Node](n, ctx),
		IsExpression: isExpression,
	}
}

func (p *CodePass) Transform() {
	src := strings.TrimSpace(p.Input.Val)
	if src == "" {
		p.SetOutput([]jsx.Node{})
		return
	}
	if p.IsExpression {
		p.SetOutput([]jsx.Node{&jsx.ExprContainer{Expr: &jsx.Raw{Source: src}}})
		return
	}
	p.SetOutput([]jsx.Node{&jsx.RawStmt{Source: src}})
}
