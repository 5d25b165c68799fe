package ast_test

import (
	"testing"

	"github.com/midbel/jsx/ast"
)

func TestQualifiedName(t *testing.T) {
	data := []struct {
		Name ast.Node
		Want string
	}{
		{
			Name: ast.NewIdent("div"),
			Want: "div",
		},
		{
			Name: ast.NewMember(ast.NewIdent("Components"), ast.NewIdent("Button")),
			Want: "Components.Button",
		},
		{
			Name: ast.NewMember(ast.NewMember(ast.NewIdent("Components"), ast.NewIdent("Form")), ast.NewIdent("Input")),
			Want: "Components.Form.Input",
		},
		{
			Name: ast.NewNamespaced(ast.NewIdent("svg"), ast.NewIdent("path")),
			Want: "svg:path",
		},
		{
			Name: ast.NewText("not a name"),
			Want: "",
		},
		{
			Name: nil,
			Want: "",
		},
	}
	for _, d := range data {
		el := ast.NewElement(d.Name)
		if got := el.QualifiedName(); got != d.Want {
			t.Errorf("qualified name mismatch: want %q, got %q", d.Want, got)
		}
	}
}

func TestLocalName(t *testing.T) {
	data := []struct {
		Name ast.Node
		Want string
	}{
		{
			Name: ast.NewIdent("div"),
			Want: "div",
		},
		{
			Name: ast.NewMember(ast.NewIdent("Components"), ast.NewIdent("Button")),
			Want: "Button",
		},
		{
			Name: ast.NewNamespaced(ast.NewIdent("svg"), ast.NewIdent("path")),
			Want: "path",
		},
	}
	for _, d := range data {
		el := ast.NewElement(d.Name)
		if got := el.LocalName(); got != d.Want {
			t.Errorf("local name mismatch: want %q, got %q", d.Want, got)
		}
	}
}

func TestMemberNameWithBadObject(t *testing.T) {
	m := ast.NewMember(ast.NewText("bad"), ast.NewIdent("Button"))
	if got := m.QualifiedName(); got != ".Button" {
		t.Errorf("unexpected name for member with bad object: %q", got)
	}
}
