package main

import (
	"flag"
	"fmt"

	"github.com/midbel/cli"
	"github.com/midbel/jsx/ast"
)

var setAttrCmd = cli.Command{
	Name:    "set",
	Summary: "set an attribute on matching elements",
	Handler: &SetAttrCmd{},
}

var delAttrCmd = cli.Command{
	Name:    "del",
	Summary: "remove an attribute from matching elements",
	Handler: &DelAttrCmd{},
}

type SetAttrCmd struct {
	Element string
	File    string
	Compact bool
}

func (c *SetAttrCmd) Run(args []string) error {
	set := flag.NewFlagSet("set", flag.ContinueOnError)
	set.StringVar(&c.Element, "e", "*", "only touch elements with this name")
	set.StringVar(&c.File, "w", "", "write result to file instead of stdout")
	set.BoolVar(&c.Compact, "c", false, "write compact output")
	if err := set.Parse(args); err != nil {
		return err
	}
	attr := set.Arg(0)
	if attr == "" {
		return fmt.Errorf("attribute name expected")
	}
	node, err := readDocument(set.Arg(2))
	if err != nil {
		return err
	}
	value := set.Arg(1)
	ast.Visit(node, elementName(c.Element), func(el *ast.Element) {
		if el.GetAttribute(attr) != nil {
			el.UpdateAttribute(attr, ast.NewLiteral(value))
		} else {
			el.AddAttribute(attr, ast.NewLiteral(value))
		}
	})
	return writeDocument(node, c.File, c.Compact)
}

type DelAttrCmd struct {
	Element string
	File    string
	Compact bool
}

func (c *DelAttrCmd) Run(args []string) error {
	set := flag.NewFlagSet("del", flag.ContinueOnError)
	set.StringVar(&c.Element, "e", "*", "only touch elements with this name")
	set.StringVar(&c.File, "w", "", "write result to file instead of stdout")
	set.BoolVar(&c.Compact, "c", false, "write compact output")
	if err := set.Parse(args); err != nil {
		return err
	}
	attr := set.Arg(0)
	if attr == "" {
		return fmt.Errorf("attribute name expected")
	}
	node, err := readDocument(set.Arg(1))
	if err != nil {
		return err
	}
	ast.Visit(node, elementName(c.Element), func(el *ast.Element) {
		el.RemoveAttribute(attr)
	})
	return writeDocument(node, c.File, c.Compact)
}
