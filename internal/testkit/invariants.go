package testkit

import (
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"molosser/internal/jsx"
	"molosser/internal/source"
	"molosser/internal/template"
)

// CheckPositions runs a minimal set of position invariants on a decoded tree
// against the template source it was parsed from:
// 1) every known line of a node in sf exists in sf
// 2) every known column lies within its line, or one past its end
// Nodes attributed to another file are skipped.
func CheckPositions(root *template.Block, sf *source.File) error {
	if root == nil || sf == nil {
		return fmt.Errorf("nil tree or file")
	}
	var firstErr error
	template.Walk(root, func(n template.Node) bool {
		if firstErr != nil {
			return false
		}
		pos := n.Pos()
		if !pos.IsKnown() || (pos.File != "" && pos.File != sf.Path) {
			return true
		}
		line, ok := sf.GetLine(pos.Line)
		if !ok {
			firstErr = fmt.Errorf("%s %s: line %d is outside the file", n.Type(), pos, pos.Line)
			return false
		}
		width, err := safecast.Conv[uint32](utf8.RuneCountInString(line))
		if err != nil {
			firstErr = fmt.Errorf("line width overflow: %w", err)
			return false
		}
		if pos.Column > width+1 {
			firstErr = fmt.Errorf("%s %s: column %d is past the end of the line (%d)", n.Type(), pos, pos.Column, width)
			return false
		}
		return true
	})
	return firstErr
}

// CheckProgram verifies the shape of an assembled program: no absent nodes
// in either section and a well-formed render tree.
func CheckProgram(p *jsx.Program) error {
	if p == nil {
		return fmt.Errorf("nil program")
	}
	for i, st := range p.Statements {
		if st == nil {
			return fmt.Errorf("statement %d is nil", i)
		}
	}
	return CheckRender(p.Render)
}

// CheckRender walks a render tree and reports the first structural defect:
// a nil child, an unnamed element, or a control expression missing a part
// it always carries.
func CheckRender(nodes []jsx.Node) error {
	for i, n := range nodes {
		if err := checkNode(n); err != nil {
			return fmt.Errorf("child %d: %w", i, err)
		}
	}
	return nil
}

func checkNode(n jsx.Node) error {
	switch n := n.(type) {
	case nil:
		return fmt.Errorf("nil node")
	case *jsx.Text, *jsx.RawStmt:
		return nil
	case *jsx.Element:
		if n == nil {
			return fmt.Errorf("nil element")
		}
		if n.Name == "" {
			return fmt.Errorf("element without a name")
		}
		for _, a := range n.Attrs {
			if a.Name == "" {
				return fmt.Errorf("<%s>: attribute without a name", n.Name)
			}
		}
		if err := CheckRender(n.Children); err != nil {
			return fmt.Errorf("<%s>: %w", n.Name, err)
		}
		return nil
	case *jsx.Fragment:
		if n == nil {
			return fmt.Errorf("nil fragment")
		}
		return CheckRender(n.Children)
	case *jsx.ExprContainer:
		if n == nil || n.Expr == nil {
			return fmt.Errorf("empty expression container")
		}
		return checkExpr(n.Expr)
	default:
		return fmt.Errorf("unexpected node %T", n)
	}
}

func checkExpr(e jsx.Expr) error {
	switch e := e.(type) {
	case *jsx.Raw, *jsx.StringLit:
		return nil
	case *jsx.Fragment:
		return checkNode(e)
	case *jsx.Cond:
		if e.Test == nil || e.Then == nil {
			return fmt.Errorf("conditional without test or body")
		}
		if err := checkNode(e.Then); err != nil {
			return err
		}
		if e.Else != nil {
			return checkExpr(e.Else)
		}
		return nil
	case *jsx.Switch:
		if e.Discriminant == nil {
			return fmt.Errorf("switch without discriminant")
		}
		for i, c := range e.Cases {
			if c.Body == nil {
				continue
			}
			if err := checkNode(c.Body); err != nil {
				return fmt.Errorf("case %d: %w", i, err)
			}
		}
		return nil
	case *jsx.Map:
		if e.Collection == nil || e.Item == "" || e.Body == nil {
			return fmt.Errorf("map without collection, item or body")
		}
		if err := checkNode(e.Body); err != nil {
			return err
		}
		if e.Else != nil {
			return checkNode(e.Else)
		}
		return nil
	default:
		return fmt.Errorf("unexpected expression %T", e)
	}
}
