package ast_test

import (
	"testing"

	"github.com/midbel/jsx/ast"
)

func makeTestElement() *ast.Element {
	el := ast.NewElement(ast.NewIdent("div"))
	el.AddAttribute("id", ast.NewLiteral("test"))
	el.AddAttribute("class", ast.NewLiteral("main"))
	return el
}

func TestRemoveAttribute(t *testing.T) {
	el := makeTestElement()
	el.RemoveAttribute("id")

	as := el.Attributes()
	if len(as) != 1 {
		t.Fatalf("attributes left: want 1, got %d", len(as))
	}
	if as[0].Name.Name != "class" {
		t.Errorf("surviving attribute: want class, got %s", as[0].Name.Name)
	}
}

func TestRemoveAttributeKeepsSpread(t *testing.T) {
	el := makeTestElement()
	el.Attrs = append(el.Attrs, ast.NewSpread(ast.NewRaw([]byte(`{"type":"Identifier","name":"props"}`))))

	el.RemoveAttribute("id")
	el.RemoveAttribute("class")
	if len(el.Attrs) != 1 {
		t.Fatalf("entries left: want 1, got %d", len(el.Attrs))
	}
	if el.Attrs[0].Type() != ast.TypeSpread {
		t.Errorf("spread should survive attribute removal")
	}
}

func TestUpdateAttribute(t *testing.T) {
	el := makeTestElement()
	el.UpdateAttribute("class", ast.NewLiteral("hero"))

	a := el.GetAttribute("class")
	if a == nil {
		t.Fatalf("class attribute missing after update")
	}
	lit, ok := a.Value.(*ast.Literal)
	if !ok || lit.Value != "hero" {
		t.Errorf("class value not updated: %v", a.Value)
	}
}

func TestUpdateAttributeIsUpdateOnly(t *testing.T) {
	el := makeTestElement()
	before := el.Attributes()

	el.UpdateAttribute("missing", ast.NewLiteral("nope"))
	after := el.Attributes()
	if len(after) != len(before) {
		t.Fatalf("attribute count changed: want %d, got %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("attribute %d was touched by a no-op update", i)
		}
	}
}

func TestUpdateAttributeFirstMatchWins(t *testing.T) {
	el := ast.NewElement(ast.NewIdent("div"))
	el.AddAttribute("id", ast.NewLiteral("first"))
	el.AddAttribute("id", ast.NewLiteral("second"))

	el.UpdateAttribute("id", ast.NewLiteral("patched"))

	as := el.Attributes()
	if len(as) != 2 {
		t.Fatalf("attributes: want 2, got %d", len(as))
	}
	first := as[0].Value.(*ast.Literal)
	second := as[1].Value.(*ast.Literal)
	if first.Value != "patched" {
		t.Errorf("first duplicate should be updated, got %q", first.Value)
	}
	if second.Value != "second" {
		t.Errorf("second duplicate should be untouched, got %q", second.Value)
	}
}

func TestUpdateAttributes(t *testing.T) {
	el := makeTestElement()
	el.UpdateAttributes(map[string]ast.Node{
		"id":      ast.NewLiteral("hero"),
		"missing": ast.NewLiteral("nope"),
	})

	if !el.HasAttributeValue("id", "hero") {
		t.Errorf("id should have been updated")
	}
	if el.GetAttribute("missing") != nil {
		t.Errorf("update should never insert")
	}
}

func TestAddAttributeAllowsDuplicates(t *testing.T) {
	el := makeTestElement()
	el.AddAttribute("id", ast.NewLiteral("other"))

	as := el.Attributes()
	if len(as) != 3 {
		t.Fatalf("attributes: want 3, got %d", len(as))
	}
	a := el.GetAttribute("id")
	if lit := a.Value.(*ast.Literal); lit.Value != "test" {
		t.Errorf("reads should resolve to the first duplicate, got %q", lit.Value)
	}
}

func TestEachAttributeSkipsSpread(t *testing.T) {
	el := makeTestElement()
	el.Attrs = append(el.Attrs, ast.NewSpread(ast.NewRaw([]byte(`{"type":"Identifier","name":"props"}`))))

	var seen []string
	el.EachAttribute(func(a *ast.Attribute) {
		seen = append(seen, a.Name.Name)
	})
	if len(seen) != 2 || seen[0] != "id" || seen[1] != "class" {
		t.Errorf("unexpected attributes visited: %v", seen)
	}
}

func TestRemoveAttributesFunc(t *testing.T) {
	filter := ast.RemoveAttributesFunc(func(a *ast.Attribute) bool {
		return a.Name.Name == "id"
	})

	first := makeTestElement()
	second := makeTestElement()
	filter(first)
	filter(second)

	for _, el := range []*ast.Element{first, second} {
		if el.GetAttribute("id") != nil {
			t.Errorf("id should have been filtered out")
		}
		if el.GetAttribute("class") == nil {
			t.Errorf("class should have been kept")
		}
	}
}

func TestHasAttributeValue(t *testing.T) {
	el := makeTestElement()
	data := []struct {
		Name  string
		Value string
		Want  bool
	}{
		{Name: "id", Value: "test", Want: true},
		{Name: "id", Value: "other", Want: false},
		{Name: "class", Value: "test", Want: false},
		{Name: "missing", Value: "test", Want: false},
	}
	for _, d := range data {
		if got := el.HasAttributeValue(d.Name, d.Value); got != d.Want {
			t.Errorf("%s=%q: want %t, got %t", d.Name, d.Value, d.Want, got)
		}
	}
}

func TestHasAttributeValueIgnoresExpr(t *testing.T) {
	el := ast.NewElement(ast.NewIdent("div"))
	el.AddAttribute("id", ast.NewExprContainer(ast.NewRaw([]byte(`{"type":"Identifier","name":"test"}`))))
	if el.HasAttributeValue("id", "test") {
		t.Errorf("expression values should never match a literal check")
	}
}
