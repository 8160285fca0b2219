package lower

import (
	"molosser/internal/diag"
	"molosser/internal/jsx"
	"molosser/internal/template"
)

// Pass lowers one template node. Transform fills the output; Output reads it
// back and reports whether it was set.
type Pass[O any] interface {
	Transform()
	Output() (O, bool)
}

// Run transforms p and returns its output.
func Run[O any](p Pass[O]) (O, bool) {
	p.Transform()
	return p.Output()
}

// Base carries what every pass has: its input node, the shared context and an
// optional output. Concrete passes embed it.
type Base[N template.Node, O any] struct {
	Input N
	Ctx   *Context

	output    O
	hasOutput bool
}

// NewBase binds a pass to its input and the shared context.
func NewBase[N template.Node, O any](input N, ctx *Context) Base[N, O] {
	return Base[N, O]{Input: input, Ctx: ctx}
}

// Output returns the output and whether it was set.
func (b *Base[N, O]) Output() (O, bool) {
	return b.output, b.hasOutput
}

// SetOutput sets the output.
func (b *Base[N, O]) SetOutput(o O) {
	b.output = o
	b.hasOutput = true
}

// ClearOutput makes the output absent again.
func (b *Base[N, O]) ClearOutput() {
	var zero O
	b.output = zero
	b.hasOutput = false
}

// Unsupported starts an UnsupportedSyntaxError at the input's position.
func (b *Base[N, O]) Unsupported(reasons ...string) *diag.ReportBuilder {
	return diag.ReportUnsupported(b.Ctx.Reporter, template.PosInfo(b.Input), reasons...)
}

// UnsupportedAt starts an UnsupportedSyntaxError at n's position.
func (b *Base[N, O]) UnsupportedAt(n template.Node, reasons ...string) *diag.ReportBuilder {
	return diag.ReportUnsupported(b.Ctx.Reporter, template.PosInfo(n), reasons...)
}

type (
	// ElementFactory builds the pass for an ordinary markup element.
	ElementFactory func(n *template.Tag, ctx *Context) Pass[jsx.Node]
	// ScriptFactory builds the pass for the literal content of a script element.
	ScriptFactory func(n *template.Tag, ctx *Context) Pass[[]jsx.Node]
	// CodeFactory builds the pass for embedded code; isExpression mirrors Code.Buffer.
	CodeFactory func(n *template.Code, isExpression bool, ctx *Context) Pass[[]jsx.Node]
	// CaseFactory builds the pass for a multi-way branch.
	CaseFactory func(n *template.Case, ctx *Context) Pass[jsx.Node]
	// ConditionalFactory builds the pass for if/else.
	ConditionalFactory func(n *template.Conditional, ctx *Context) Pass[jsx.Node]
	// EachFactory builds the pass for iteration.
	EachFactory func(n *template.Each, ctx *Context) Pass[jsx.Node]
)

// Passes is the table of specialized passes the dispatcher delegates to.
type Passes struct {
	Element     ElementFactory
	Script      ScriptFactory
	Code        CodeFactory
	Case        CaseFactory
	Conditional ConditionalFactory
	Each        EachFactory
}

// DefaultPasses returns the built-in specialized passes.
func DefaultPasses() Passes {
	return Passes{
		Element: func(n *template.Tag, ctx *Context) Pass[jsx.Node] {
			return NewElementPass(n, ctx)
		},
		Script: func(n *template.Tag, ctx *Context) Pass[[]jsx.Node] {
			return NewScriptContentPass(n, ctx)
		},
		Code: func(n *template.Code, isExpression bool, ctx *Context) Pass[[]jsx.Node] {
			return NewCodePass(n, isExpression, ctx)
		},
		Case: func(n *template.Case, ctx *Context) Pass[jsx.Node] {
			return NewCasePass(n, ctx)
		},
		Conditional: func(n *template.Conditional, ctx *Context) Pass[jsx.Node] {
			return NewConditionalPass(n, ctx)
		},
		Each: func(n *template.Each, ctx *Context) Pass[jsx.Node] {
			return NewEachPass(n, ctx)
		},
	}
}

// merge overrides p with the non-nil entries of o.
func (p Passes) merge(o Passes) Passes {
	if o.Element != nil {
		p.Element = o.Element
	}
	if o.Script != nil {
		p.Script = o.Script
	}
	if o.Code != nil {
		p.Code = o.Code
	}
	if o.Case != nil {
		p.Case = o.Case
	}
	if o.Conditional != nil {
		p.Conditional = o.Conditional
	}
	if o.Each != nil {
		p.Each = o.Each
	}
	return p
}
