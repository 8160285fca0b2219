package lower

import (
	"fmt"
	"strconv"

	"molosser/internal/jsx"
	"molosser/internal/template"
)

// disallowedElements are document-structural elements a component cannot
// render. Matching is exact and case-sensitive.
var disallowedElements = map[string]struct{}{
	"html":  {},
	"body":  {},
	"link":  {},
	"meta":  {},
	"style": {},
}

// isDisallowedElement reports whether name is rejected outright.
func isDisallowedElement(name string) bool {
	_, ok := disallowedElements[name]
	return ok
}

// NodePass lowers one template node by kind. Its output is absent when the
// node failed fatally or was not understood.
type NodePass struct {
	Base[template.Node, []jsx.Node]

	// IsTopLevel is set when the node is a direct child of the document root.
	IsTopLevel bool

	// document marks the pass lowering the document root itself.
	document bool
}

// NewNodePass creates a non-top-level pass for n.
func NewNodePass(n template.Node, ctx *Context) *NodePass {
	return &NodePass{Base: NewBase[template.Node, []jsx.Node](n, ctx)}
}

// Transform dispatches on the node kind.
func (p *NodePass) Transform() {
	span, parent := p.Ctx.beginNode(p.Input)
	defer func() { p.Ctx.endNode(span, parent, p.outputDetail()) }()

	switch n := p.Input.(type) {
	case *template.Tag:
		if isDisallowedElement(n.Name) {
			p.Unsupported(fmt.Sprintf("%s is not supported", n.Name)).Fatal().Emit()
			return
		}
		if n.Name == ScriptElement {
			p.transformScript(n)
			return
		}
		p.transformTag(n)
	case *template.Block:
		p.transformBlock(n)
	case *template.Code:
		p.transformCode(n)
	case *template.Text:
		p.SetOutput([]jsx.Node{&jsx.Text{Value: n.Val}})
	case *template.Case:
		p.single(Run(p.Ctx.Passes.Case(n, p.Ctx)))
	case *template.Conditional:
		p.single(Run(p.Ctx.Passes.Conditional(n, p.Ctx)))
	case *template.Each:
		p.single(Run(p.Ctx.Passes.Each(n, p.Ctx)))
	default:
		p.Unsupported(fmt.Sprintf("node type %s is currently not supported", p.Input.Type())).MaybeBug().Emit()
	}
}

func (p *NodePass) transformTag(n *template.Tag) {
	p.single(Run(p.Ctx.Passes.Element(n, p.Ctx)))
}

// transformBlock concatenates the children's outputs in order, skipping
// children whose output is absent.
func (p *NodePass) transformBlock(n *template.Block) {
	out := make([]jsx.Node, 0, len(n.Nodes))
	for _, child := range n.Nodes {
		cp := NewNodePass(child, p.Ctx)
		cp.IsTopLevel = p.document
		if nodes, ok := Run[[]jsx.Node](cp); ok {
			out = append(out, nodes...)
		}
	}
	p.SetOutput(out)
}

func (p *NodePass) transformCode(n *template.Code) {
	nodes, ok := Run(p.Ctx.Passes.Code(n, n.Buffer, p.Ctx))
	if ok {
		p.SetOutput(nodes)
	}
}

// single wraps a lone delegate result; absent stays absent.
func (p *NodePass) single(node jsx.Node, ok bool) {
	if ok && node != nil {
		p.SetOutput([]jsx.Node{node})
	}
}

func (p *NodePass) outputDetail() string {
	out, ok := p.Output()
	if !ok {
		return "absent"
	}
	return "n=" + strconv.Itoa(len(out))
}
