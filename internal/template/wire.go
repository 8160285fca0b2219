package template

import (
	"errors"
	"fmt"
	"strconv"

	"fortio.org/safecast"

	"molosser/internal/source"
)

// rawNode is the on-the-wire shape shared by the JSON and msgpack codecs.
// Field names follow the upstream parser's AST.
type rawNode struct {
	Type        string     `json:"type" msgpack:"type"`
	Name        string     `json:"name,omitempty" msgpack:"name,omitempty"`
	Attrs       []rawAttr  `json:"attrs,omitempty" msgpack:"attrs,omitempty"`
	SelfClosing bool       `json:"selfClosing,omitempty" msgpack:"selfClosing,omitempty"`
	Block       *rawNode   `json:"block,omitempty" msgpack:"block,omitempty"`
	Nodes       []*rawNode `json:"nodes,omitempty" msgpack:"nodes,omitempty"`
	Val         any        `json:"val,omitempty" msgpack:"val,omitempty"`
	Buffer      bool       `json:"buffer,omitempty" msgpack:"buffer,omitempty"`
	Expr        string     `json:"expr,omitempty" msgpack:"expr,omitempty"`
	Test        string     `json:"test,omitempty" msgpack:"test,omitempty"`
	Consequent  *rawNode   `json:"consequent,omitempty" msgpack:"consequent,omitempty"`
	Alternate   *rawNode   `json:"alternate,omitempty" msgpack:"alternate,omitempty"`
	Obj         string     `json:"obj,omitempty" msgpack:"obj,omitempty"`
	Key         string     `json:"key,omitempty" msgpack:"key,omitempty"`
	Line        int        `json:"line,omitempty" msgpack:"line,omitempty"`
	Column      int        `json:"column,omitempty" msgpack:"column,omitempty"`
	Filename    string     `json:"filename,omitempty" msgpack:"filename,omitempty"`
}

type rawAttr struct {
	Name string `json:"name" msgpack:"name"`
	Val  any    `json:"val" msgpack:"val"`
}

// ErrMissingType is returned for a wire node without a type discriminant.
var ErrMissingType = errors.New("node has no type")

// decoder carries the inherited filename: the parser records it on the root
// and on some nodes only.
type decoder struct {
	filename string
}

func (d *decoder) pos(r *rawNode) source.Pos {
	if r.Filename != "" {
		d.filename = r.Filename
	}
	p := source.Pos{File: d.filename}
	if line, err := safecast.Conv[uint32](r.Line); err == nil {
		p.Line = line
	}
	if col, err := safecast.Conv[uint32](r.Column); err == nil {
		p.Column = col
	}
	return p
}

func (d *decoder) node(r *rawNode) (Node, error) {
	if r == nil {
		return nil, nil
	}
	if r.Type == "" {
		return nil, fmt.Errorf("line %d: %w", r.Line, ErrMissingType)
	}
	saved := d.filename
	defer func() { d.filename = saved }()
	pos := d.pos(r)

	switch KindOf(r.Type) {
	case KindTag:
		block, err := d.block(r.Block, "block of <"+r.Name+">")
		if err != nil {
			return nil, err
		}
		attrs := make([]Attr, 0, len(r.Attrs))
		for _, a := range r.Attrs {
			attrs = append(attrs, Attr{Name: a.Name, Val: scalarString(a.Val)})
		}
		return &Tag{Name: r.Name, Attrs: attrs, Block: block, SelfClosing: r.SelfClosing, Position: pos}, nil
	case KindBlock:
		nodes := make([]Node, 0, len(r.Nodes))
		for _, c := range r.Nodes {
			n, err := d.node(c)
			if err != nil {
				return nil, err
			}
			if n != nil {
				nodes = append(nodes, n)
			}
		}
		return &Block{Nodes: nodes, Position: pos}, nil
	case KindCode:
		return &Code{Val: scalarString(r.Val), Buffer: r.Buffer, Position: pos}, nil
	case KindText:
		return &Text{Val: scalarString(r.Val), Position: pos}, nil
	case KindCase:
		block, err := d.block(r.Block, "block of case")
		if err != nil {
			return nil, err
		}
		return &Case{Expr: r.Expr, Block: block, Position: pos}, nil
	case KindWhen:
		block, err := d.block(r.Block, "block of when")
		if err != nil {
			return nil, err
		}
		return &When{Expr: r.Expr, Block: block, Position: pos}, nil
	case KindConditional:
		cons, err := d.block(r.Consequent, "consequent")
		if err != nil {
			return nil, err
		}
		alt, err := d.node(r.Alternate)
		if err != nil {
			return nil, err
		}
		return &Conditional{Test: r.Test, Consequent: cons, Alternate: alt, Position: pos}, nil
	case KindEach:
		block, err := d.block(r.Block, "block of each")
		if err != nil {
			return nil, err
		}
		alt, err := d.block(r.Alternate, "alternate of each")
		if err != nil {
			return nil, err
		}
		return &Each{Obj: r.Obj, Val: scalarString(r.Val), Key: r.Key, Block: block, Alternate: alt, Position: pos}, nil
	default:
		return &Unknown{Typ: r.Type, Position: pos}, nil
	}
}

func (d *decoder) block(r *rawNode, what string) (*Block, error) {
	if r == nil {
		return nil, nil
	}
	n, err := d.node(r)
	if err != nil {
		return nil, err
	}
	b, ok := n.(*Block)
	if !ok {
		return nil, fmt.Errorf("%s: expected %s, got %s", what, TypeBlock, n.Type())
	}
	return b, nil
}

// root decodes a document root, which must be a Block.
func root(r *rawNode) (*Block, error) {
	if r == nil {
		return nil, fmt.Errorf("empty template tree")
	}
	d := &decoder{}
	return d.block(r, "document root")
}

// scalarString renders attribute and text values; the parser writes bare
// attributes as the boolean true.
func scalarString(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	default:
		return fmt.Sprint(v)
	}
}

func encode(n Node) *rawNode {
	if n == nil {
		return nil
	}
	p := n.Pos()
	r := &rawNode{Type: n.Type(), Line: int(p.Line), Column: int(p.Column), Filename: p.File}
	switch n := n.(type) {
	case *Tag:
		r.Name = n.Name
		r.SelfClosing = n.SelfClosing
		for _, a := range n.Attrs {
			r.Attrs = append(r.Attrs, rawAttr{Name: a.Name, Val: a.Val})
		}
		r.Block = encodeBlock(n.Block)
	case *Block:
		r.Nodes = make([]*rawNode, 0, len(n.Nodes))
		for _, c := range n.Nodes {
			r.Nodes = append(r.Nodes, encode(c))
		}
	case *Code:
		r.Val = n.Val
		r.Buffer = n.Buffer
	case *Text:
		r.Val = n.Val
	case *Case:
		r.Expr = n.Expr
		r.Block = encodeBlock(n.Block)
	case *When:
		r.Expr = n.Expr
		r.Block = encodeBlock(n.Block)
	case *Conditional:
		r.Test = n.Test
		r.Consequent = encodeBlock(n.Consequent)
		r.Alternate = encode(n.Alternate)
	case *Each:
		r.Obj = n.Obj
		r.Val = n.Val
		r.Key = n.Key
		r.Block = encodeBlock(n.Block)
		r.Alternate = encodeBlock(n.Alternate)
	}
	return r
}

func encodeBlock(b *Block) *rawNode {
	if b == nil {
		return nil
	}
	return encode(b)
}
