package ast

import (
	"slices"
)

// EachAttribute calls visit once per attribute in source order.
// Spread entries are skipped.
func (e *Element) EachAttribute(visit func(*Attribute)) {
	for i := range e.Attrs {
		if a, ok := e.Attrs[i].(*Attribute); ok {
			visit(a)
		}
	}
}

// Attributes returns the attribute entries of the opening tag,
// spreads excluded, in source order.
func (e *Element) Attributes() []*Attribute {
	var as []*Attribute
	e.EachAttribute(func(a *Attribute) {
		as = append(as, a)
	})
	return as
}

// GetAttribute returns the first attribute with the given name or nil.
func (e *Element) GetAttribute(name string) *Attribute {
	ix := e.attrIndex(name)
	if ix < 0 {
		return nil
	}
	return e.Attrs[ix].(*Attribute)
}

// HasAttributeValue reports whether some attribute has the given name
// and a string literal value equal to value.
func (e *Element) HasAttributeValue(name, value string) bool {
	for i := range e.Attrs {
		a, ok := e.Attrs[i].(*Attribute)
		if !ok || a.Name == nil || a.Name.Name != name {
			continue
		}
		if lit, ok := a.Value.(*Literal); ok && lit.Value == value {
			return true
		}
	}
	return false
}

// AddAttribute appends a new attribute to the opening tag. Existing
// attributes with the same name are left alone so duplicates can
// accumulate; reads keep resolving to the first entry.
func (e *Element) AddAttribute(name string, value Node) {
	e.Attrs = append(e.Attrs, NewAttribute(name, value))
}

// UpdateAttribute replaces the first attribute with the given name by
// a freshly built one carrying value. Nothing happens when the name
// is absent.
func (e *Element) UpdateAttribute(name string, value Node) {
	ix := e.attrIndex(name)
	if ix < 0 {
		return
	}
	e.Attrs[ix] = NewAttribute(name, value)
}

// UpdateAttributes applies UpdateAttribute for every entry of values.
func (e *Element) UpdateAttributes(values map[string]Node) {
	for name, value := range values {
		e.UpdateAttribute(name, value)
	}
}

// RemoveAttribute deletes every attribute with the given name.
// Spread entries are never removed.
func (e *Element) RemoveAttribute(name string) {
	e.Attrs = slices.DeleteFunc(e.Attrs, func(n Node) bool {
		a, ok := n.(*Attribute)
		return ok && a.Name != nil && a.Name.Name == name
	})
}

// RemoveAttributesFunc returns a reusable filter that deletes from an
// element every attribute for which fn returns true.
func RemoveAttributesFunc(fn func(*Attribute) bool) func(*Element) {
	return func(e *Element) {
		e.Attrs = slices.DeleteFunc(e.Attrs, func(n Node) bool {
			a, ok := n.(*Attribute)
			return ok && fn(a)
		})
	}
}

func (e *Element) attrIndex(name string) int {
	return slices.IndexFunc(e.Attrs, func(n Node) bool {
		a, ok := n.(*Attribute)
		return ok && a.Name != nil && a.Name.Name == name
	})
}
