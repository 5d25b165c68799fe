package ast

// Visit walks root depth first and calls visit for every element
// whose qualified name equals name. The empty name matches every
// element. Matching elements are still descended into. Fragments,
// expression containers, attributes, spreads and foreign nodes are
// tunneled through so markup nested in non element wrappers is
// found; other kinds are leaves. The walk is eager: visit cannot
// stop it.
func Visit(root Node, name string, visit func(*Element)) {
	switch n := root.(type) {
	case *Element:
		if name == "" || n.QualifiedName() == name {
			visit(n)
		}
		for i := range n.Nodes {
			Visit(n.Nodes[i], name, visit)
		}
	case *Fragment:
		for i := range n.Nodes {
			Visit(n.Nodes[i], name, visit)
		}
	case *ExprContainer:
		Visit(n.Expr, name, visit)
	case *Attribute:
		Visit(n.Value, name, visit)
	case *Spread:
		Visit(n.Expr, name, visit)
	case *Foreign:
		for _, f := range n.Fields {
			if f.Node != nil {
				Visit(f.Node, name, visit)
			}
			for i := range f.List {
				Visit(f.List[i], name, visit)
			}
		}
	default:
	}
}

// Find returns the first element matching name in document order or
// nil.
func Find(root Node, name string) *Element {
	var found *Element
	Visit(root, name, func(e *Element) {
		if found == nil {
			found = e
		}
	})
	return found
}

// FindAll returns every element matching name in document order.
func FindAll(root Node, name string) []*Element {
	var list []*Element
	Visit(root, name, func(e *Element) {
		list = append(list, e)
	})
	return list
}

// ChildNames collects the qualified name of each direct child that is
// itself an element, in order. Text and expression children are
// skipped.
func (e *Element) ChildNames() []string {
	var names []string
	for i := range e.Nodes {
		if c, ok := e.Nodes[i].(*Element); ok {
			names = append(names, c.QualifiedName())
		}
	}
	return names
}

// GetElementById returns the first element below e (e included) whose
// id attribute is the string literal id, or nil.
func (e *Element) GetElementById(id string) *Element {
	var found *Element
	Visit(e, "", func(x *Element) {
		if found == nil && x.HasAttributeValue("id", id) {
			found = x
		}
	})
	return found
}

type VisitableNode interface {
	Node

	Accept(Visitor)
}

type Visitor interface {
	VisitElement(*Element)
	VisitFragment(*Fragment)
	VisitText(*Text)
	VisitExpr(*ExprContainer)
	VisitAttribute(*Attribute)
	VisitSpread(*Spread)
	VisitForeign(*Foreign)
	VisitRaw(*Raw)
}

// Accept dispatches to the Visitor method for the node kind. The
// visitor drives recursion itself.
func (e *Element) Accept(v Visitor) {
	v.VisitElement(e)
}

func (f *Fragment) Accept(v Visitor) {
	v.VisitFragment(f)
}

func (t *Text) Accept(v Visitor) {
	v.VisitText(t)
}

func (x *ExprContainer) Accept(v Visitor) {
	v.VisitExpr(x)
}

func (a *Attribute) Accept(v Visitor) {
	v.VisitAttribute(a)
}

func (s *Spread) Accept(v Visitor) {
	v.VisitSpread(s)
}

func (f *Foreign) Accept(v Visitor) {
	v.VisitForeign(f)
}

func (r *Raw) Accept(v Visitor) {
	v.VisitRaw(r)
}
