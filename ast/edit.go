package ast

import (
	"slices"
)

// Append pushes child at the end of the element children.
func (e *Element) Append(child Node) {
	e.Nodes = append(e.Nodes, child)
}

// InsertAfter splices node right after target. Target is located by
// identity among the element children; when it is not there nothing
// happens.
func (e *Element) InsertAfter(target, node Node) {
	ix := e.indexOf(target)
	if ix < 0 {
		return
	}
	e.Nodes = slices.Insert(e.Nodes, ix+1, node)
}

// InsertBefore splices node right before target. Same lookup rules as
// InsertAfter.
func (e *Element) InsertBefore(target, node Node) {
	ix := e.indexOf(target)
	if ix < 0 {
		return
	}
	e.Nodes = slices.Insert(e.Nodes, ix, node)
}

// ReplaceNode overwrites the slot holding target with node. Nothing
// happens when target is not a child of e.
func (e *Element) ReplaceNode(target, node Node) {
	ix := e.indexOf(target)
	if ix < 0 {
		return
	}
	e.Nodes[ix] = node
}

// RemoveNode unlinks target from the children of e. Text and
// expression children are always kept. The removed node stays a valid
// freestanding value.
func (e *Element) RemoveNode(target Node) {
	ix := e.indexOf(target)
	if ix < 0 {
		return
	}
	e.Nodes = slices.Delete(e.Nodes, ix, ix+1)
}

// ReplaceNodes swaps the whole ordered child list for nodes.
func (e *Element) ReplaceNodes(nodes []Node) {
	e.Nodes = nodes
}

// indexOf locates target by identity among element children only. Two
// structurally identical siblings are distinct targets.
func (e *Element) indexOf(target Node) int {
	if target == nil || target.Type() != TypeElement {
		return -1
	}
	return slices.IndexFunc(e.Nodes, func(n Node) bool {
		return n == target
	})
}
