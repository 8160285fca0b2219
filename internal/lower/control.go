package lower

import (
	"molosser/internal/jsx"
	"molosser/internal/template"
)

// ConditionalPass lowers if/else into a conditional expression. Else-if
// chains nest in Else.
type ConditionalPass struct {
	Base[*template.Conditional, jsx.Node]
}

func NewConditionalPass(n *template.Conditional, ctx *Context) *ConditionalPass {
	return &ConditionalPass{Base: NewBase[*template.Conditional, jsx.Node](n, ctx)}
}

func (p *ConditionalPass) Transform() {
	p.SetOutput(&jsx.ExprContainer{Expr: p.cond(p.Input)})
}

func (p *ConditionalPass) cond(n *template.Conditional) *jsx.Cond {
	c := &jsx.Cond{
		Test: &jsx.Raw{Source: n.Test},
		Then: &jsx.Fragment{Children: p.Ctx.LowerBlock(n.Consequent)},
	}
	switch alt := n.Alternate.(type) {
	case nil:
	case *template.Conditional:
		if alt != nil {
			c.Else = p.cond(alt)
		}
	case *template.Block:
		c.Else = &jsx.Fragment{Children: p.Ctx.LowerBlock(alt)}
	default:
		children, _ := p.Ctx.Lower(alt)
		c.Else = &jsx.Fragment{Children: children}
	}
	return c
}

// CasePass lowers a multi-way branch into a switch expression.
type CasePass struct {
	Base[*template.Case, jsx.Node]
}

func NewCasePass(n *template.Case, ctx *Context) *CasePass {
	return &CasePass{Base: NewBase[*template.Case, jsx.Node](n, ctx)}
}

func (p *CasePass) Transform() {
	sw := &jsx.Switch{Discriminant: &jsx.Raw{Source: p.Input.Expr}}
	for _, c := range p.Input.Block.Children() {
		w, ok := c.(*template.When)
		if !ok {
			p.UnsupportedAt(c, "only when and default are allowed inside case, got "+c.Type()).Emit()
			continue
		}
		var sc jsx.SwitchCase
		if w.Expr != template.DefaultWhen {
			sc.Test = &jsx.Raw{Source: w.Expr}
		}
		if w.Block != nil {
			sc.Body = &jsx.Fragment{Children: p.Ctx.LowerBlock(w.Block)}
		}
		sw.Cases = append(sw.Cases, sc)
	}
	p.SetOutput(&jsx.ExprContainer{Expr: sw})
}

// EachPass lowers iteration into a map expression.
type EachPass struct {
	Base[*template.Each, jsx.Node]
}

func NewEachPass(n *template.Each, ctx *Context) *EachPass {
	return &EachPass{Base: NewBase[*template.Each, jsx.Node](n, ctx)}
}

func (p *EachPass) Transform() {
	n := p.Input
	m := &jsx.Map{
		Collection: &jsx.Raw{Source: n.Obj},
		Item:       n.Val,
		Index:      n.Key,
		Body:       &jsx.Fragment{Children: p.Ctx.LowerBlock(n.Block)},
	}
	if n.Alternate != nil {
		m.Else = &jsx.Fragment{Children: p.Ctx.LowerBlock(n.Alternate)}
	}
	p.SetOutput(&jsx.ExprContainer{Expr: m})
}
