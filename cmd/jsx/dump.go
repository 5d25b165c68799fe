package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/midbel/cli"
	"github.com/midbel/jsx/ast"
)

var dumpCmd = cli.Command{
	Name:    "dump",
	Summary: "print the outline of a jsx document",
	Handler: &DumpCmd{},
}

type DumpCmd struct{}

func (c *DumpCmd) Run(args []string) error {
	set := flag.NewFlagSet("dump", flag.ContinueOnError)
	if err := set.Parse(args); err != nil {
		return err
	}
	node, err := readDocument(set.Arg(0))
	if err != nil {
		return err
	}
	v, ok := node.(ast.VisitableNode)
	if !ok {
		return fmt.Errorf("%s: nothing to dump", node.Type())
	}
	v.Accept(newPrinter(os.Stdout))
	return nil
}

// printer writes one node per line, indented by depth. It drives the
// recursion itself through Accept.
type printer struct {
	w     io.Writer
	depth int

	name  lipgloss.Style
	attr  lipgloss.Style
	value lipgloss.Style
	text  lipgloss.Style
	dim   lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	return &printer{
		w:     w,
		name:  lipgloss.NewStyle().Foreground(lipgloss.Color("36")).Bold(true),
		attr:  lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		value: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		text:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		dim:   lipgloss.NewStyle().Faint(true),
	}
}

func (p *printer) VisitElement(e *ast.Element) {
	var line strings.Builder
	line.WriteString(p.name.Render(e.QualifiedName()))
	e.EachAttribute(func(a *ast.Attribute) {
		line.WriteString(" ")
		line.WriteString(p.attr.Render(a.Name.Name))
		if lit, ok := a.Value.(*ast.Literal); ok {
			line.WriteString("=")
			line.WriteString(p.value.Render(strconv.Quote(lit.Value)))
		}
	})
	p.println(line.String())
	p.descend(e.Nodes)
}

func (p *printer) VisitFragment(f *ast.Fragment) {
	p.println(p.name.Render("<>"))
	p.descend(f.Nodes)
}

func (p *printer) VisitText(t *ast.Text) {
	p.println(p.text.Render(strconv.Quote(t.Content)))
}

func (p *printer) VisitExpr(x *ast.ExprContainer) {
	p.println(p.dim.Render("{expression}"))
	if v, ok := x.Expr.(ast.VisitableNode); ok {
		p.depth++
		v.Accept(p)
		p.depth--
	}
}

func (p *printer) VisitAttribute(a *ast.Attribute) {
	p.println(p.attr.Render(a.Name.Name))
}

func (p *printer) VisitSpread(_ *ast.Spread) {
	p.println(p.dim.Render("{...spread}"))
}

func (p *printer) VisitForeign(f *ast.Foreign) {
	p.println(p.dim.Render("(" + f.Kind + ")"))
	p.depth++
	for _, x := range f.Fields {
		if v, ok := x.Node.(ast.VisitableNode); ok {
			v.Accept(p)
		}
		for i := range x.List {
			if v, ok := x.List[i].(ast.VisitableNode); ok {
				v.Accept(p)
			}
		}
	}
	p.depth--
}

func (p *printer) VisitRaw(_ *ast.Raw) {
	p.println(p.dim.Render("(raw)"))
}

func (p *printer) descend(nodes []ast.Node) {
	p.depth++
	for i := range nodes {
		if v, ok := nodes[i].(ast.VisitableNode); ok {
			v.Accept(p)
		}
	}
	p.depth--
}

func (p *printer) println(str string) {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", p.depth), str)
}
