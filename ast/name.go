package ast

import (
	"fmt"
)

// QualifiedName gives the name of the element as written in its
// opening tag: div, Components.Button, svg:path. Unexpected name
// nodes resolve to the empty string.
func (e *Element) QualifiedName() string {
	switch n := e.Name.(type) {
	case *Ident:
		return n.Name
	case *Member:
		return n.QualifiedName()
	case *Namespaced:
		return n.QualifiedName()
	default:
		return ""
	}
}

func (e *Element) LocalName() string {
	switch n := e.Name.(type) {
	case *Ident:
		return n.Name
	case *Member:
		return n.LocalName()
	case *Namespaced:
		return n.LocalName()
	default:
		return ""
	}
}

func (i *Ident) QualifiedName() string {
	return i.Name
}

func (i *Ident) LocalName() string {
	return i.Name
}

func (m *Member) QualifiedName() string {
	var object string
	switch o := m.Object.(type) {
	case *Ident:
		object = o.Name
	case *Member:
		object = o.QualifiedName()
	default:
	}
	return fmt.Sprintf("%s.%s", object, m.LocalName())
}

func (m *Member) LocalName() string {
	if m.Property == nil {
		return ""
	}
	return m.Property.Name
}

func (n *Namespaced) QualifiedName() string {
	var space string
	if n.Space != nil {
		space = n.Space.Name
	}
	return fmt.Sprintf("%s:%s", space, n.LocalName())
}

func (n *Namespaced) LocalName() string {
	if n.Name == nil {
		return ""
	}
	return n.Name.Name
}
