package main

import (
	"flag"

	"github.com/midbel/cli"
)

var formatCmd = cli.Command{
	Name:    "format",
	Alias:   []string{"fmt"},
	Summary: "rewrite a jsx document pretty printed or compact",
	Handler: &FormatCmd{},
}

type FormatCmd struct {
	File    string
	Compact bool
}

func (c *FormatCmd) Run(args []string) error {
	set := flag.NewFlagSet("format", flag.ContinueOnError)
	set.StringVar(&c.File, "w", "", "write result to file instead of stdout")
	set.BoolVar(&c.Compact, "c", false, "write compact output")
	if err := set.Parse(args); err != nil {
		return err
	}
	node, err := readDocument(set.Arg(0))
	if err != nil {
		return err
	}
	return writeDocument(node, c.File, c.Compact)
}
