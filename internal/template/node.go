package template

import "molosser/internal/source"

// Node is one node of the parsed template tree.
type Node interface {
	Kind() Kind
	// Type is the upstream discriminant, e.g. "Tag" or "Comment".
	Type() string
	Pos() source.Pos
	node()
}

// Attr is one attribute of a Tag. Val is the attribute's source text as the
// parser wrote it, quotes included ('x' or "x"); a bare attribute reads "true".
type Attr struct {
	Name string
	Val  string
}

// Tag is a markup element.
type Tag struct {
	Name        string
	Attrs       []Attr
	Block       *Block // nil when the element has no child block
	SelfClosing bool
	Position    source.Pos
}

// Block is an ordered list of sibling nodes.
type Block struct {
	Nodes    []Node
	Position source.Pos
}

// Code is an embedded code fragment. Buffer is set when the value of the
// expression is rendered; otherwise Val is a bare statement.
type Code struct {
	Val      string
	Buffer   bool
	Position source.Pos
}

// Text is literal text.
type Text struct {
	Val      string
	Position source.Pos
}

// Case is a multi-way branch over Expr. Its block holds When nodes.
type Case struct {
	Expr     string
	Block    *Block
	Position source.Pos
}

// When is one arm of a Case; Expr "default" marks the default arm.
// A nil Block means fall through to the next arm.
type When struct {
	Expr     string
	Block    *Block
	Position source.Pos
}

// DefaultWhen is the Expr of a default arm.
const DefaultWhen = "default"

// Conditional is if/else. Alternate is nil, a *Block, or a nested *Conditional
// for an else-if chain.
type Conditional struct {
	Test       string
	Consequent *Block
	Alternate  Node
	Position   source.Pos
}

// Each iterates Obj binding Val (and Key when set). Alternate renders when the
// collection is empty.
type Each struct {
	Obj       string
	Val       string
	Key       string
	Block     *Block
	Alternate *Block
	Position  source.Pos
}

// Unknown stands in for any node kind not modelled above.
type Unknown struct {
	Typ      string
	Position source.Pos
}

func (*Tag) Kind() Kind         { return KindTag }
func (*Block) Kind() Kind       { return KindBlock }
func (*Code) Kind() Kind        { return KindCode }
func (*Text) Kind() Kind        { return KindText }
func (*Case) Kind() Kind        { return KindCase }
func (*When) Kind() Kind        { return KindWhen }
func (*Conditional) Kind() Kind { return KindConditional }
func (*Each) Kind() Kind        { return KindEach }
func (*Unknown) Kind() Kind     { return KindUnknown }

func (*Tag) Type() string         { return TypeTag }
func (*Block) Type() string       { return TypeBlock }
func (*Code) Type() string        { return TypeCode }
func (*Text) Type() string        { return TypeText }
func (*Case) Type() string        { return TypeCase }
func (*When) Type() string        { return TypeWhen }
func (*Conditional) Type() string { return TypeConditional }
func (*Each) Type() string        { return TypeEach }
func (n *Unknown) Type() string   { return n.Typ }

func (n *Tag) Pos() source.Pos         { return n.Position }
func (n *Block) Pos() source.Pos       { return n.Position }
func (n *Code) Pos() source.Pos        { return n.Position }
func (n *Text) Pos() source.Pos        { return n.Position }
func (n *Case) Pos() source.Pos        { return n.Position }
func (n *When) Pos() source.Pos        { return n.Position }
func (n *Conditional) Pos() source.Pos { return n.Position }
func (n *Each) Pos() source.Pos        { return n.Position }
func (n *Unknown) Pos() source.Pos     { return n.Position }

func (*Tag) node()         {}
func (*Block) node()       {}
func (*Code) node()        {}
func (*Text) node()        {}
func (*Case) node()        {}
func (*When) node()        {}
func (*Conditional) node() {}
func (*Each) node()        {}
func (*Unknown) node()     {}

// Attr returns the first attribute called name.
func (n *Tag) Attr(name string) (Attr, bool) {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a, true
		}
	}
	return Attr{}, false
}

// HasAttr reports whether any attribute is called name.
func (n *Tag) HasAttr(name string) bool {
	_, ok := n.Attr(name)
	return ok
}

// Children returns the block's nodes, tolerating a nil block.
func (b *Block) Children() []Node {
	if b == nil {
		return nil
	}
	return b.Nodes
}

// PosInfo returns the parser-recorded position of n, used for diagnostics.
func PosInfo(n Node) source.Pos {
	if n == nil {
		return source.Pos{}
	}
	return n.Pos()
}
