// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package nwk

// node.go
//
// Node is one vertex of a rooted tree: parent, first child,
// next sibling, label, and the length of the edge above the node, grounded
// directly on original_source/src/rnode.h's rnode_t (parent, first_child,
// next_sibling, label, edge_length_as_string, child_count). Two fields of
// rnode_t don't survive here: the C "data" void* for caller payload has no
// use once the Go type system can hold real payloads on Node itself if a
// future caller needs them, and current_child_elem (an iterator cursor
// embedded in the node) moves to RnodeIterator in iterator.go so that two
// iterators over the same tree don't clobber each other's position.
//
// Nodes never exist outside a Tree's arena: there is no exported
// constructor. A Tree hands out NodeID values and resolves them through
// Tree.node. The arena stores *Node pointers, so a resolved *Node stays
// valid as the arena grows; NodeID is the handle the rest of the API takes.

// NodeID identifies a node within a particular Tree: its index in the
// tree's arena, so NodeID(0) is the first node allocated. Tree.Root is
// usually NodeID(0) once at least one node exists, but callers should not
// assume that and should use Tree.Root instead.
type NodeID int

// noNode is the NodeID sentinel for "no parent" / "no sibling" / "no
// child", the Go analogue of rnode.h's NULL pointers.
const noNode NodeID = -1

// Node is one vertex of a rooted tree: a label (possibly empty, for
// interior nodes), the length of the edge connecting it to its parent
// (kept as the original decimal text as well as a parsed float, since
// Newick edge lengths are not always round-trippable through a float
// without change), and the parent/child/sibling links that give the tree
// its shape.
type Node struct {
	tree *Tree

	label     string
	hasLength bool
	length    float64
	lengthStr string // original text, e.g. "1.0e-2"; empty if hasLength is false

	parent      NodeID
	firstChild  NodeID
	nextSibling NodeID
	childCount  int
}

// Label returns the node's label, or "" for an unlabeled interior node.
func (n *Node) Label() string { return n.label }

// SetLabel sets the node's label.
func (n *Node) SetLabel(label string) { n.label = label }

// Length returns the length of the edge above the node and whether one was
// set. The root reports false unless a length was parsed or set on it.
func (n *Node) Length() (float64, bool) { return n.length, n.hasLength }

// LengthString returns the edge length exactly as written (or as last set
// programmatically), preserving formatting such as "1e-2" that a float
// round-trip would otherwise normalize away. It is "" if no length is set.
func (n *Node) LengthString() string { return n.lengthStr }

// SetLength sets the edge length above the node, both the parsed value and
// its canonical decimal text.
func (n *Node) SetLength(length float64) {
	n.length = length
	n.hasLength = true
	n.lengthStr = formatLength(length)
}

// SetLengthString sets the edge length above the node from literal Newick
// text, preserving the text verbatim in LengthString. s must already be a
// valid floating point literal; the parser is responsible for validating
// it before calling this.
func (n *Node) SetLengthString(s string, length float64) {
	n.hasLength = true
	n.length = length
	n.lengthStr = s
}

// ClearLength removes the edge length above the node.
func (n *Node) ClearLength() {
	n.hasLength = false
	n.length = 0
	n.lengthStr = ""
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return n.childCount == 0 }

// IsRoot reports whether the node has no parent.
func (n *Node) IsRoot() bool { return n.parent == noNode }

// ChildCount returns the number of children of the node.
func (n *Node) ChildCount() int { return n.childCount }

// Parent returns the node's parent and whether it has one.
func (n *Node) Parent() (NodeID, bool) {
	if n.parent == noNode {
		return noNode, false
	}
	return n.parent, true
}

// FirstChild returns the node's first child and whether it has one.
func (n *Node) FirstChild() (NodeID, bool) {
	if n.firstChild == noNode {
		return noNode, false
	}
	return n.firstChild, true
}

// NextSibling returns the node's next sibling and whether it has one.
func (n *Node) NextSibling() (NodeID, bool) {
	if n.nextSibling == noNode {
		return noNode, false
	}
	return n.nextSibling, true
}

// Children returns the node's direct children, in order.
func (n *Node) Children() []NodeID {
	out := make([]NodeID, 0, n.childCount)
	for c := n.firstChild; c != noNode; {
		out = append(out, c)
		c = n.tree.node(c).nextSibling
	}
	return out
}
