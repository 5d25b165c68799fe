package ast

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var ErrNode = errors.New("malformed node")

// Reader decodes a Babel style JSON encoding of a JSX tree. Node
// kinds this package does not model decode to Foreign nodes: their
// node shaped properties are decoded in place and everything else is
// kept verbatim, so nested markup stays reachable and documents can
// be written back without loss.
type Reader struct {
	inner io.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{
		inner: r,
	}
}

func (r *Reader) Read() (Node, error) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.inner).Decode(&raw); err != nil {
		return nil, err
	}
	return decodeNode(raw)
}

type envelope struct {
	Type        string            `json:"type"`
	Name        json.RawMessage   `json:"name"`
	Value       json.RawMessage   `json:"value"`
	Object      json.RawMessage   `json:"object"`
	Property    json.RawMessage   `json:"property"`
	Namespace   json.RawMessage   `json:"namespace"`
	Expression  json.RawMessage   `json:"expression"`
	Argument    json.RawMessage   `json:"argument"`
	Opening     json.RawMessage   `json:"openingElement"`
	Closing     json.RawMessage   `json:"closingElement"`
	Attributes  []json.RawMessage `json:"attributes"`
	Children    []json.RawMessage `json:"children"`
	SelfClosing bool              `json:"selfClosing"`
}

func decodeNode(raw json.RawMessage) (Node, error) {
	var e envelope
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, err
	}
	switch e.Type {
	case "":
		return nil, fmt.Errorf("%w: node without type", ErrNode)
	case "JSXElement":
		return decodeElement(e, raw)
	case "JSXFragment":
		f := NewFragment()
		for i := range e.Children {
			c, err := decodeNode(e.Children[i])
			if err != nil {
				return nil, err
			}
			f.Append(c)
		}
		return f, nil
	case "JSXIdentifier":
		name, err := decodeString(e.Name)
		if err != nil {
			return nil, err
		}
		return NewIdent(name), nil
	case "JSXMemberExpression":
		return decodeMember(e)
	case "JSXNamespacedName":
		return decodeNamespaced(e)
	case "JSXAttribute":
		return decodeAttribute(e)
	case "JSXSpreadAttribute":
		arg, err := decodeNode(e.Argument)
		if err != nil {
			return nil, err
		}
		return NewSpread(arg), nil
	case "JSXText":
		text, err := decodeString(e.Value)
		if err != nil {
			return nil, err
		}
		return NewText(text), nil
	case "JSXExpressionContainer":
		expr, err := decodeNode(e.Expression)
		if err != nil {
			return nil, err
		}
		return NewExprContainer(expr), nil
	case "StringLiteral", "Literal":
		value, err := decodeString(e.Value)
		if err != nil {
			return decodeForeign(e.Type, raw)
		}
		return NewLiteral(value), nil
	default:
		return decodeForeign(e.Type, raw)
	}
}

func decodeForeign(kind string, raw json.RawMessage) (Node, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	node := NewForeign(kind)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("%w: property name expected", ErrNode)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return nil, err
		}
		if key == "type" {
			continue
		}
		field, err := decodeField(key, value)
		if err != nil {
			return nil, err
		}
		node.Fields = append(node.Fields, field)
	}
	return node, nil
}

func decodeField(name string, value json.RawMessage) (Field, error) {
	field := Field{
		Name: name,
	}
	if nodeShaped(value) {
		node, err := decodeNode(value)
		if err != nil {
			return field, err
		}
		field.Node = node
		return field, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(value, &items); err == nil && len(items) > 0 {
		for i := range items {
			if !nodeShaped(items[i]) {
				field.List = append(field.List, NewRaw(items[i]))
				continue
			}
			node, err := decodeNode(items[i])
			if err != nil {
				return field, err
			}
			field.List = append(field.List, node)
		}
		return field, nil
	}
	field.Raw = value
	return field, nil
}

func nodeShaped(raw json.RawMessage) bool {
	var e struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &e); err != nil {
		return false
	}
	return e.Type != ""
}

func decodeElement(e envelope, raw json.RawMessage) (Node, error) {
	if len(e.Opening) == 0 {
		return nil, fmt.Errorf("%w: element without opening tag", ErrNode)
	}
	var open envelope
	if err := json.Unmarshal(e.Opening, &open); err != nil {
		return nil, err
	}
	name, err := decodeNode(open.Name)
	if err != nil {
		return nil, err
	}
	el := NewElement(name)
	el.SelfClosing = open.SelfClosing
	for i := range open.Attributes {
		a, err := decodeNode(open.Attributes[i])
		if err != nil {
			return nil, err
		}
		el.Attrs = append(el.Attrs, a)
	}
	if len(e.Closing) > 0 && !isNull(e.Closing) {
		var closing envelope
		if err := json.Unmarshal(e.Closing, &closing); err != nil {
			return nil, err
		}
		if len(closing.Name) > 0 {
			el.Closing, err = decodeNode(closing.Name)
			if err != nil {
				return nil, err
			}
		}
	}
	for i := range e.Children {
		c, err := decodeNode(e.Children[i])
		if err != nil {
			return nil, err
		}
		el.Append(c)
	}
	return el, nil
}

func decodeMember(e envelope) (Node, error) {
	object, err := decodeNode(e.Object)
	if err != nil {
		return nil, err
	}
	property, err := decodeNode(e.Property)
	if err != nil {
		return nil, err
	}
	p, ok := property.(*Ident)
	if !ok {
		return nil, fmt.Errorf("%w: member property should be an identifier", ErrNode)
	}
	return NewMember(object, p), nil
}

func decodeNamespaced(e envelope) (Node, error) {
	space, err := decodeNode(e.Namespace)
	if err != nil {
		return nil, err
	}
	name, err := decodeNode(e.Name)
	if err != nil {
		return nil, err
	}
	s, ok := space.(*Ident)
	if !ok {
		return nil, fmt.Errorf("%w: namespace should be an identifier", ErrNode)
	}
	n, ok := name.(*Ident)
	if !ok {
		return nil, fmt.Errorf("%w: local name should be an identifier", ErrNode)
	}
	return NewNamespaced(s, n), nil
}

func decodeAttribute(e envelope) (Node, error) {
	name, err := decodeNode(e.Name)
	if err != nil {
		return nil, err
	}
	attr := &Attribute{}
	switch n := name.(type) {
	case *Ident:
		attr.Name = n
	case *Namespaced:
		attr.Name = NewIdent(n.QualifiedName())
	default:
		return nil, fmt.Errorf("%w: attribute name should be an identifier", ErrNode)
	}
	if len(e.Value) > 0 && !isNull(e.Value) {
		attr.Value, err = decodeNode(e.Value)
		if err != nil {
			return nil, err
		}
	}
	return attr, nil
}

func isNull(raw json.RawMessage) bool {
	return string(raw) == "null"
}

func decodeString(raw json.RawMessage) (string, error) {
	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return "", fmt.Errorf("%w: string expected", ErrNode)
	}
	return str, nil
}
