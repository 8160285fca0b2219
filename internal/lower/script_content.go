package lower

import (
	"strings"

	"molosser/internal/jsx"
	"molosser/internal/template"
)

// ScriptContentPass turns the literal text of a script element into module
// statements. Children that are not text are skipped; the dispatcher reports
// them.
type ScriptContentPass struct {
	Base[*template.Tag, []jsx.Node]
}

func NewScriptContentPass(n *template.Tag, ctx *Context) *ScriptContentPass {
	return &ScriptContentPass{Base: NewBase[*template.Tag, []jsx.Node](n, ctx)}
}

func (p *ScriptContentPass) Transform() {
	var sb strings.Builder
	for _, c := range p.Input.Block.Children() {
		if t, ok := c.(*template.Text); ok {
			sb.WriteString(t.Val)
		}
	}
	src := sb.String()
	if strings.TrimSpace(src) == "" {
		p.SetOutput([]jsx.Node{})
		return
	}
	p.SetOutput([]jsx.Node{&jsx.RawStmt{Source: src}})
}
