package lower

import (
	"molosser/internal/jsx"
	"molosser/internal/template"
)

// attrRenames maps markup attribute names to their render-tree spelling.
var attrRenames = map[string]string{
	"class": "className",
	"for":   "htmlFor",
}

// ElementPass lowers an ordinary markup element and its children.
type ElementPass struct {
	Base[*template.Tag, jsx.Node]
}

func NewElementPass(n *template.Tag, ctx *Context) *ElementPass {
	return &ElementPass{Base: NewBase[*template.Tag, jsx.Node](n, ctx)}
}

func (p *ElementPass) Transform() {
	n := p.Input
	el := &jsx.Element{
		Name:        n.Name,
		SelfClosing: n.SelfClosing,
		Children:    p.Ctx.LowerBlock(n.Block),
	}
	if len(n.Attrs) > 0 {
		el.Attrs = make([]jsx.Attr, 0, len(n.Attrs))
		for _, a := range n.Attrs {
			el.Attrs = append(el.Attrs, lowerAttr(a))
		}
	}
	p.SetOutput(el)
}

func lowerAttr(a template.Attr) jsx.Attr {
	name := a.Name
	if renamed, ok := attrRenames[name]; ok {
		name = renamed
	}
	switch {
	case a.Val == "true":
		return jsx.Attr{Name: name}
	case isStringLiteral(a.Val):
		return jsx.Attr{Name: name, Value: &jsx.StringLit{Value: a.Val[1 : len(a.Val)-1]}}
	default:
		return jsx.Attr{Name: name, Value: &jsx.Raw{Source: a.Val}}
	}
}

// isStringLiteral reports whether s is a single quoted string with no
// unescaped quote of the same kind inside.
func isStringLiteral(s string) bool {
	if len(s) < 2 {
		return false
	}
	q := s[0]
	if (q != '\'' && q != '"') || s[len(s)-1] != q {
		return false
	}
	for i := 1; i < len(s)-1; i++ {
		switch s[i] {
		case '\\':
			i++
		case q:
			return false
		}
	}
	return true
}
