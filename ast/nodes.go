package ast

import (
	"encoding/json"
)

type NodeType int16

const (
	TypeElement NodeType = 1 << iota
	TypeFragment
	TypeText
	TypeExpr
	TypeAttribute
	TypeSpread
	TypeIdent
	TypeMember
	TypeNamespaced
	TypeLiteral
	TypeForeign
	TypeRaw
)

func (n NodeType) String() string {
	switch n {
	default:
		return "<>"
	case TypeElement:
		return "element"
	case TypeFragment:
		return "fragment"
	case TypeText:
		return "text"
	case TypeExpr:
		return "expression"
	case TypeAttribute:
		return "attribute"
	case TypeSpread:
		return "spread"
	case TypeIdent:
		return "identifier"
	case TypeMember:
		return "member"
	case TypeNamespaced:
		return "namespaced"
	case TypeLiteral:
		return "literal"
	case TypeForeign:
		return "foreign"
	case TypeRaw:
		return "raw"
	}
}

type Node interface {
	Type() NodeType
	Clone() Node
}

// Ident is a bare name such as div or Button.
type Ident struct {
	Name string
}

func NewIdent(name string) *Ident {
	return &Ident{
		Name: name,
	}
}

func (_ *Ident) Type() NodeType {
	return TypeIdent
}

// Member is a dotted name such as Components.Button. Object is either
// an *Ident or another *Member.
type Member struct {
	Object   Node
	Property *Ident
}

func NewMember(object Node, property *Ident) *Member {
	return &Member{
		Object:   object,
		Property: property,
	}
}

func (_ *Member) Type() NodeType {
	return TypeMember
}

// Namespaced is a name of the form ns:local.
type Namespaced struct {
	Space *Ident
	Name  *Ident
}

func NewNamespaced(space, name *Ident) *Namespaced {
	return &Namespaced{
		Space: space,
		Name:  name,
	}
}

func (_ *Namespaced) Type() NodeType {
	return TypeNamespaced
}

// Literal is a string literal attribute value.
type Literal struct {
	Value string
}

func NewLiteral(value string) *Literal {
	return &Literal{
		Value: value,
	}
}

func (_ *Literal) Type() NodeType {
	return TypeLiteral
}

// Attribute is a name/value pair on an opening tag. Value is a
// *Literal, an *ExprContainer, or nil for boolean style attributes.
// Namespaced attribute names are stored as their ns:local string so
// name matching always works on the qualified form; the writer emits
// them as namespaced names again.
type Attribute struct {
	Name  *Ident
	Value Node
}

func NewAttribute(name string, value Node) *Attribute {
	return &Attribute{
		Name:  NewIdent(name),
		Value: value,
	}
}

func (_ *Attribute) Type() NodeType {
	return TypeAttribute
}

// Spread is a spread attribute ({...props}) in an attribute list.
type Spread struct {
	Expr Node
}

func NewSpread(expr Node) *Spread {
	return &Spread{
		Expr: expr,
	}
}

func (_ *Spread) Type() NodeType {
	return TypeSpread
}

// Element is a tag with its attributes and ordered children. Name is
// an *Ident, *Member or *Namespaced. Attrs holds *Attribute and
// *Spread entries in source order. Closing carries the name node of
// the closing tag and is nil when the element is self closing.
type Element struct {
	Name        Node
	Attrs       []Node
	Nodes       []Node
	SelfClosing bool
	Closing     Node
}

func NewElement(name Node) *Element {
	return &Element{
		Name: name,
	}
}

func (_ *Element) Type() NodeType {
	return TypeElement
}

func (e *Element) Empty() bool {
	return len(e.Nodes) == 0
}

func (e *Element) Len() int {
	return len(e.Nodes)
}

// Fragment is the children-only <>...</> form.
type Fragment struct {
	Nodes []Node
}

func NewFragment() *Fragment {
	return &Fragment{}
}

func (_ *Fragment) Type() NodeType {
	return TypeFragment
}

func (f *Fragment) Append(node Node) {
	f.Nodes = append(f.Nodes, node)
}

// Text is literal text between tags.
type Text struct {
	Content string
}

func NewText(text string) *Text {
	return &Text{
		Content: text,
	}
}

func (_ *Text) Type() NodeType {
	return TypeText
}

// ExprContainer is a braced expression used as a child or as an
// attribute value. Expr is whatever node the expression decodes to,
// commonly a *Foreign, but it can hold an *Element or *Fragment when
// the expression is itself markup.
type ExprContainer struct {
	Expr Node
}

func NewExprContainer(expr Node) *ExprContainer {
	return &ExprContainer{
		Expr: expr,
	}
}

func (_ *ExprContainer) Type() NodeType {
	return TypeExpr
}

// Foreign is a node this package does not model: a javascript
// expression or statement standing between JSX nodes. Its node
// shaped properties are decoded so traversal can reach markup buried
// inside; every other property is kept verbatim so documents round
// trip.
type Foreign struct {
	Kind   string
	Fields []Field
}

func NewForeign(kind string) *Foreign {
	return &Foreign{
		Kind: kind,
	}
}

func (_ *Foreign) Type() NodeType {
	return TypeForeign
}

// Field is one property of a Foreign node. Exactly one of Node, List
// and Raw is set: a node shaped value, an array holding at least one
// node shaped entry, or the raw JSON of anything else.
type Field struct {
	Name string
	Node Node
	List []Node
	Raw  json.RawMessage
}

// Raw is a plain JSON value kept verbatim: a scalar property or an
// array entry that is not node shaped. Raw nodes are opaque leaves.
type Raw struct {
	Content json.RawMessage
}

func NewRaw(content []byte) *Raw {
	return &Raw{
		Content: json.RawMessage(content),
	}
}

func (_ *Raw) Type() NodeType {
	return TypeRaw
}
