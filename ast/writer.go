package ast

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Writer emits the Babel style JSON encoding read by Reader. Raw
// nodes are written back byte for byte.
type Writer struct {
	Compact bool

	inner io.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{
		inner: w,
	}
}

func (w *Writer) Write(node Node) error {
	value, err := encodeNode(node)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w.inner)
	enc.SetEscapeHTML(false)
	if !w.Compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(value)
}

func encodeNode(node Node) (any, error) {
	if node == nil {
		return nil, nil
	}
	switch n := node.(type) {
	case *Element:
		return encodeElement(n)
	case *Fragment:
		children, err := encodeList(n.Nodes)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"type":     "JSXFragment",
			"children": children,
		}, nil
	case *Ident:
		return map[string]any{
			"type": "JSXIdentifier",
			"name": n.Name,
		}, nil
	case *Member:
		object, err := encodeNode(n.Object)
		if err != nil {
			return nil, err
		}
		property, err := encodeNode(n.Property)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"type":     "JSXMemberExpression",
			"object":   object,
			"property": property,
		}, nil
	case *Namespaced:
		space, err := encodeNode(n.Space)
		if err != nil {
			return nil, err
		}
		name, err := encodeNode(n.Name)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"type":      "JSXNamespacedName",
			"namespace": space,
			"name":      name,
		}, nil
	case *Attribute:
		return encodeAttribute(n)
	case *Spread:
		arg, err := encodeNode(n.Expr)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"type":     "JSXSpreadAttribute",
			"argument": arg,
		}, nil
	case *Text:
		return map[string]any{
			"type":  "JSXText",
			"value": n.Content,
		}, nil
	case *ExprContainer:
		expr, err := encodeNode(n.Expr)
		if err != nil {
			return nil, err
		}
		return map[string]any{
			"type":       "JSXExpressionContainer",
			"expression": expr,
		}, nil
	case *Literal:
		return map[string]any{
			"type":  "StringLiteral",
			"value": n.Value,
		}, nil
	case *Foreign:
		return encodeForeign(n)
	case *Raw:
		return n.Content, nil
	default:
		return nil, fmt.Errorf("%w: %s can not be written", ErrNode, node.Type())
	}
}

func encodeElement(e *Element) (any, error) {
	name, err := encodeNode(e.Name)
	if err != nil {
		return nil, err
	}
	attrs, err := encodeList(e.Attrs)
	if err != nil {
		return nil, err
	}
	opening := map[string]any{
		"type":        "JSXOpeningElement",
		"name":        name,
		"attributes":  attrs,
		"selfClosing": e.SelfClosing,
	}
	children, err := encodeList(e.Nodes)
	if err != nil {
		return nil, err
	}
	value := map[string]any{
		"type":           "JSXElement",
		"openingElement": opening,
		"children":       children,
	}
	if e.Closing != nil {
		name, err := encodeNode(e.Closing)
		if err != nil {
			return nil, err
		}
		value["closingElement"] = map[string]any{
			"type": "JSXClosingElement",
			"name": name,
		}
	}
	return value, nil
}

func encodeForeign(f *Foreign) (any, error) {
	value := map[string]any{
		"type": f.Kind,
	}
	for _, x := range f.Fields {
		switch {
		case x.Node != nil:
			v, err := encodeNode(x.Node)
			if err != nil {
				return nil, err
			}
			value[x.Name] = v
		case x.List != nil:
			list, err := encodeList(x.List)
			if err != nil {
				return nil, err
			}
			value[x.Name] = list
		default:
			value[x.Name] = x.Raw
		}
	}
	return value, nil
}

func encodeAttribute(a *Attribute) (any, error) {
	name, err := encodeAttributeName(a.Name)
	if err != nil {
		return nil, err
	}
	value := map[string]any{
		"type": "JSXAttribute",
		"name": name,
	}
	if a.Value != nil {
		av, err := encodeNode(a.Value)
		if err != nil {
			return nil, err
		}
		value["value"] = av
	}
	return value, nil
}

// encodeAttributeName undoes the reader's normalization of
// namespaced attribute names to their ns:local string.
func encodeAttributeName(name *Ident) (any, error) {
	if name == nil {
		return nil, fmt.Errorf("%w: attribute without name", ErrNode)
	}
	if space, local, ok := strings.Cut(name.Name, ":"); ok {
		return encodeNode(NewNamespaced(NewIdent(space), NewIdent(local)))
	}
	return encodeNode(name)
}

func encodeList(nodes []Node) ([]any, error) {
	list := make([]any, 0, len(nodes))
	for i := range nodes {
		value, err := encodeNode(nodes[i])
		if err != nil {
			return nil, err
		}
		list = append(list, value)
	}
	return list, nil
}
