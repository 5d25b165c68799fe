package ast

import (
	"slices"
)

// Clone returns a deep copy of the element: name, attributes, closing
// descriptor and children are all duplicated so no mutation of the
// copy can reach the original.
func (e *Element) Clone() Node {
	c := &Element{
		SelfClosing: e.SelfClosing,
	}
	if e.Name != nil {
		c.Name = e.Name.Clone()
	}
	if e.Closing != nil {
		c.Closing = e.Closing.Clone()
	}
	for i := range e.Attrs {
		c.Attrs = append(c.Attrs, e.Attrs[i].Clone())
	}
	for i := range e.Nodes {
		c.Nodes = append(c.Nodes, e.Nodes[i].Clone())
	}
	return c
}

func (f *Fragment) Clone() Node {
	c := NewFragment()
	for i := range f.Nodes {
		c.Append(f.Nodes[i].Clone())
	}
	return c
}

func (t *Text) Clone() Node {
	return NewText(t.Content)
}

func (x *ExprContainer) Clone() Node {
	c := &ExprContainer{}
	if x.Expr != nil {
		c.Expr = x.Expr.Clone()
	}
	return c
}

func (a *Attribute) Clone() Node {
	c := &Attribute{}
	if a.Name != nil {
		c.Name = NewIdent(a.Name.Name)
	}
	if a.Value != nil {
		c.Value = a.Value.Clone()
	}
	return c
}

func (s *Spread) Clone() Node {
	c := &Spread{}
	if s.Expr != nil {
		c.Expr = s.Expr.Clone()
	}
	return c
}

func (i *Ident) Clone() Node {
	return NewIdent(i.Name)
}

func (m *Member) Clone() Node {
	c := &Member{}
	if m.Object != nil {
		c.Object = m.Object.Clone()
	}
	if m.Property != nil {
		c.Property = NewIdent(m.Property.Name)
	}
	return c
}

func (n *Namespaced) Clone() Node {
	c := &Namespaced{}
	if n.Space != nil {
		c.Space = NewIdent(n.Space.Name)
	}
	if n.Name != nil {
		c.Name = NewIdent(n.Name.Name)
	}
	return c
}

func (l *Literal) Clone() Node {
	return NewLiteral(l.Value)
}

func (f *Foreign) Clone() Node {
	c := NewForeign(f.Kind)
	for _, x := range f.Fields {
		field := Field{
			Name: x.Name,
			Raw:  slices.Clone(x.Raw),
		}
		if x.Node != nil {
			field.Node = x.Node.Clone()
		}
		for i := range x.List {
			field.List = append(field.List, x.List[i].Clone())
		}
		c.Fields = append(c.Fields, field)
	}
	return c
}

func (r *Raw) Clone() Node {
	return NewRaw(slices.Clone(r.Content))
}
