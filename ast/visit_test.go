package ast_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/midbel/jsx/ast"
)

// wrappedDocument is <main>{cond && <div/>}</main> as Babel JSON: the
// div sits below an expression node this package does not model.
const wrappedDocument = `{
  "type": "JSXElement",
  "openingElement": {
    "type": "JSXOpeningElement",
    "name": {"type": "JSXIdentifier", "name": "main"},
    "attributes": [],
    "selfClosing": false
  },
  "children": [
    {
      "type": "JSXExpressionContainer",
      "expression": {
        "type": "LogicalExpression",
        "operator": "&&",
        "left": {"type": "Identifier", "name": "cond"},
        "right": {
          "type": "JSXElement",
          "openingElement": {
            "type": "JSXOpeningElement",
            "name": {"type": "JSXIdentifier", "name": "div"},
            "attributes": [],
            "selfClosing": true
          },
          "children": []
        }
      }
    }
  ]
}`

// makeTestTree builds
//
//	<main>
//	  {<><Components.Button id="ok"/></>}
//	  <span/>
//	  text
//	  <span><svg:path/></span>
//	</main>
//
// with the button buried under two non element wrappers.
func makeTestTree() *ast.Element {
	button := ast.NewElement(ast.NewMember(ast.NewIdent("Components"), ast.NewIdent("Button")))
	button.AddAttribute("id", ast.NewLiteral("ok"))

	wrapped := ast.NewFragment()
	wrapped.Append(button)

	inner := ast.NewElement(ast.NewIdent("span"))
	inner.Append(ast.NewElement(ast.NewNamespaced(ast.NewIdent("svg"), ast.NewIdent("path"))))

	root := ast.NewElement(ast.NewIdent("main"))
	root.Append(ast.NewExprContainer(wrapped))
	root.Append(ast.NewElement(ast.NewIdent("span")))
	root.Append(ast.NewText("text"))
	root.Append(inner)
	return root
}

func TestVisitWildcard(t *testing.T) {
	var names []string
	ast.Visit(makeTestTree(), "", func(e *ast.Element) {
		names = append(names, e.QualifiedName())
	})
	want := []string{"main", "Components.Button", "span", "span", "svg:path"}
	if !slices.Equal(names, want) {
		t.Errorf("wildcard walk: want %v, got %v", want, names)
	}
}

func TestVisitTunnelsThroughWrappers(t *testing.T) {
	var count int
	ast.Visit(makeTestTree(), "Components.Button", func(e *ast.Element) {
		count++
	})
	if count != 1 {
		t.Errorf("element behind wrappers should be found once, got %d", count)
	}
}

func TestVisitTunnelsThroughForeignNodes(t *testing.T) {
	node, err := ast.NewReader(strings.NewReader(wrappedDocument)).Read()
	if err != nil {
		t.Fatalf("fail to read document: %s", err)
	}
	if el := ast.Find(node, "div"); el == nil {
		t.Errorf("element behind a foreign expression should be found by name")
	}
	var names []string
	ast.Visit(node, "", func(e *ast.Element) {
		names = append(names, e.QualifiedName())
	})
	want := []string{"main", "div"}
	if !slices.Equal(names, want) {
		t.Errorf("wildcard walk: want %v, got %v", want, names)
	}
}

func TestVisitByName(t *testing.T) {
	var count int
	ast.Visit(makeTestTree(), "span", func(e *ast.Element) {
		count++
	})
	if count != 2 {
		t.Errorf("span elements: want 2, got %d", count)
	}
}

func TestVisitDescendsBelowMatch(t *testing.T) {
	root := ast.NewElement(ast.NewIdent("div"))
	child := ast.NewElement(ast.NewIdent("div"))
	root.Append(child)

	var count int
	ast.Visit(root, "div", func(e *ast.Element) {
		count++
	})
	if count != 2 {
		t.Errorf("matching should not stop the descent, got %d", count)
	}
}

func TestFind(t *testing.T) {
	root := makeTestTree()
	if el := ast.Find(root, "svg:path"); el == nil {
		t.Errorf("svg:path should be found")
	}
	if el := ast.Find(root, "nothing"); el != nil {
		t.Errorf("missing name should give nil")
	}
}

func TestFindAll(t *testing.T) {
	list := ast.FindAll(makeTestTree(), "span")
	if len(list) != 2 {
		t.Fatalf("span elements: want 2, got %d", len(list))
	}
	if list[0] == list[1] {
		t.Errorf("matches should be distinct instances")
	}
}

func TestChildNames(t *testing.T) {
	parent := ast.NewElement(ast.NewIdent("div"))
	parent.Append(ast.NewElement(ast.NewIdent("span")))
	parent.Append(ast.NewText("text"))
	parent.Append(ast.NewElement(ast.NewIdent("p")))

	want := []string{"span", "p"}
	if got := parent.ChildNames(); !slices.Equal(got, want) {
		t.Errorf("child names: want %v, got %v", want, got)
	}
}

func TestGetElementById(t *testing.T) {
	root := makeTestTree()
	el := root.GetElementById("ok")
	if el == nil {
		t.Fatalf("element with id should be found through wrappers")
	}
	if el.QualifiedName() != "Components.Button" {
		t.Errorf("wrong element found: %s", el.QualifiedName())
	}
	if root.GetElementById("missing") != nil {
		t.Errorf("missing id should give nil")
	}
}
