// Package jsx is the output AST of the lowering pass: a component's render tree
// plus the statements hoisted to the top of the generated module.
//
// Lowering only composes these nodes; it never looks inside them. Printing them
// as source text belongs to a later code generation stage. Dump renders a
// deterministic debug form.
package jsx

// Node is a render-tree child or a hoisted statement.
type Node interface {
	jsxNode()
}

// Expr is an expression embedded in the render tree.
type Expr interface {
	jsxExpr()
}

// Text is literal text, kept verbatim.
type Text struct {
	Value string
}

// Element is a markup element.
type Element struct {
	Name        string
	Attrs       []Attr
	Children    []Node
	SelfClosing bool
}

// Attr is an element attribute. A nil Value is a boolean attribute.
type Attr struct {
	Name  string
	Value Expr
}

// ExprContainer places an expression in the render tree.
type ExprContainer struct {
	Expr Expr
}

// Fragment groups children without a wrapping element.
type Fragment struct {
	Children []Node
}

// RawStmt is a statement kept as source text.
type RawStmt struct {
	Source string
}

// Raw is an expression kept as source text.
type Raw struct {
	Source string
}

// StringLit is a string literal with its quotes removed.
type StringLit struct {
	Value string
}

// Cond renders Then when Test holds and Else otherwise. Else may be nil.
type Cond struct {
	Test Expr
	Then *Fragment
	Else Expr
}

// Switch renders the body of the first case whose Test equals Discriminant.
type Switch struct {
	Discriminant Expr
	Cases        []SwitchCase
}

// SwitchCase is one arm of a Switch. A nil Test is the default arm; a nil
// Body falls through to the next arm.
type SwitchCase struct {
	Test Expr
	Body *Fragment
}

// Map renders Body once per element of Collection. Else renders when the
// collection is empty and may be nil.
type Map struct {
	Collection Expr
	Item       string
	Index      string
	Body       *Fragment
	Else       *Fragment
}

// Program is an assembled module: hoisted statements first, then the render tree.
type Program struct {
	Statements []Node
	Render     []Node
}

func (*Text) jsxNode()          {}
func (*Element) jsxNode()       {}
func (*ExprContainer) jsxNode() {}
func (*Fragment) jsxNode()      {}
func (*RawStmt) jsxNode()       {}

func (*Raw) jsxExpr()       {}
func (*StringLit) jsxExpr() {}
func (*Cond) jsxExpr()      {}
func (*Switch) jsxExpr()    {}
func (*Map) jsxExpr()       {}
func (*Fragment) jsxExpr()  {}
