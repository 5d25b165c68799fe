package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/midbel/cli"
	"github.com/midbel/jsx/ast"
)

var queryCmd = cli.Command{
	Name:    "query",
	Alias:   []string{"find"},
	Summary: "find elements by name in a jsx document",
	Handler: &QueryCmd{},
}

type QueryCmd struct {
	Limit int
	Noout bool
	Attrs bool
}

const queryInfo = "query took %s - %d elements matching %q"

func (q *QueryCmd) Run(args []string) error {
	set := flag.NewFlagSet("query", flag.ContinueOnError)
	set.IntVar(&q.Limit, "limit", 0, "limit number of results returned by query")
	set.BoolVar(&q.Noout, "quiet", false, "suppress output - default is to print the matching elements")
	set.BoolVar(&q.Attrs, "attrs", false, "print attributes of matching elements")
	if err := set.Parse(args); err != nil {
		return err
	}
	node, err := readDocument(set.Arg(1))
	if err != nil {
		return err
	}
	var (
		name = elementName(set.Arg(0))
		now  = time.Now()
		list = ast.FindAll(node, name)
	)
	elapsed := time.Since(now)
	if q.Limit > 0 && len(list) > q.Limit {
		list = list[:q.Limit]
	}
	if !q.Noout {
		for _, el := range list {
			printElement(el, q.Attrs)
		}
	}
	fmt.Fprintf(os.Stdout, queryInfo, elapsed, len(list), set.Arg(0))
	fmt.Fprintln(os.Stdout)
	if len(list) == 0 {
		return errFail
	}
	return nil
}

func printElement(el *ast.Element, attrs bool) {
	var line strings.Builder
	line.WriteString(el.QualifiedName())
	if attrs {
		el.EachAttribute(func(a *ast.Attribute) {
			line.WriteString(" ")
			line.WriteString(a.Name.Name)
			if lit, ok := a.Value.(*ast.Literal); ok {
				line.WriteString("=")
				line.WriteString(lit.Value)
			}
		})
	}
	fmt.Fprintln(os.Stdout, line.String())
}
