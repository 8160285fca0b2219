package jsx

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Printer writes the debug form of output nodes.
type Printer struct {
	w      io.Writer
	indent int
	err    error
}

// NewPrinter creates a new printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Dump writes nodes in debug form, one node per line, children indented.
func Dump(w io.Writer, nodes []Node) error {
	p := NewPrinter(w)
	p.PrintNodes(nodes)
	return p.err
}

// DumpProgram writes the hoisted statements followed by the render tree.
func DumpProgram(w io.Writer, prog *Program) error {
	p := NewPrinter(w)
	p.PrintProgram(prog)
	return p.err
}

// PrintProgram prints a complete program.
func (p *Printer) PrintProgram(prog *Program) {
	if prog == nil {
		p.line("program <nil>")
		return
	}
	p.line("program")
	p.indent++
	p.line("statements")
	p.indent++
	p.PrintNodes(prog.Statements)
	p.indent--
	p.line("render")
	p.indent++
	p.PrintNodes(prog.Render)
	p.indent -= 2
}

// PrintNodes prints each node on its own line.
func (p *Printer) PrintNodes(nodes []Node) {
	for _, n := range nodes {
		p.PrintNode(n)
	}
}

// PrintNode prints a single node and its children.
func (p *Printer) PrintNode(n Node) {
	switch n := n.(type) {
	case *Text:
		p.line("text " + strconv.Quote(n.Value))
	case *Element:
		var sb strings.Builder
		sb.WriteString("element <")
		sb.WriteString(n.Name)
		for _, a := range n.Attrs {
			sb.WriteByte(' ')
			sb.WriteString(a.Name)
			if a.Value != nil {
				sb.WriteByte('=')
				sb.WriteString(exprString(a.Value))
			}
		}
		if n.SelfClosing {
			sb.WriteString(" /")
		}
		sb.WriteByte('>')
		p.line(sb.String())
		p.children(n.Children)
	case *ExprContainer:
		p.printExpr("expr", n.Expr)
	case *Fragment:
		p.line("fragment")
		p.children(n.Children)
	case *RawStmt:
		p.line("stmt " + strconv.Quote(n.Source))
	case nil:
		p.line("<nil>")
	default:
		p.line(fmt.Sprintf("<unknown %T>", n))
	}
}

func (p *Printer) printExpr(label string, e Expr) {
	switch e := e.(type) {
	case *Cond:
		p.line(label + " if " + exprString(e.Test))
		p.fragment("then", e.Then)
		if e.Else != nil {
			p.indent++
			p.printExpr("else", e.Else)
			p.indent--
		}
	case *Switch:
		p.line(label + " switch " + exprString(e.Discriminant))
		p.indent++
		for _, c := range e.Cases {
			head := "default"
			if c.Test != nil {
				head = "case " + exprString(c.Test)
			}
			if c.Body == nil {
				p.line(head + " (fallthrough)")
				continue
			}
			p.line(head)
			p.children(c.Body.Children)
		}
		p.indent--
	case *Map:
		head := label + " map " + exprString(e.Collection) + " as " + e.Item
		if e.Index != "" {
			head += ", " + e.Index
		}
		p.line(head)
		p.fragment("body", e.Body)
		p.fragment("empty", e.Else)
	case *Fragment:
		p.line(label + " fragment")
		p.children(e.Children)
	default:
		p.line(label + " " + exprString(e))
	}
}

func (p *Printer) fragment(label string, f *Fragment) {
	if f == nil {
		return
	}
	p.indent++
	p.line(label)
	p.children(f.Children)
	p.indent--
}

func (p *Printer) children(nodes []Node) {
	p.indent++
	p.PrintNodes(nodes)
	p.indent--
}

func (p *Printer) line(s string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", p.indent), s)
}

func exprString(e Expr) string {
	switch e := e.(type) {
	case *Raw:
		return "{" + e.Source + "}"
	case *StringLit:
		return strconv.Quote(e.Value)
	case nil:
		return "<nil>"
	default:
		return fmt.Sprintf("<%T>", e)
	}
}
