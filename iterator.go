// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package nwk

// iterator.go
//
// RnodeIterator walks a subtree in post-order, grounded on
// original_source/src/rnode_iterator.c (create_rnode_iterator,
// more_children_to_visit, rnode_iterator_next, reset_current_child_elem):
// a post-order walk of a subtree that visits a node only after all of its
// children have been visited.
//
// The original embeds the traversal cursor (current_child_elem) directly
// in each rnode_t, which means two iterators can't walk the same tree at
// once without corrupting each other's position, and reset_current_child_
// elem has to walk the whole tree resetting it before a second traversal.
// Here the cursor lives in the iterator's own stack instead, so multiple
// RnodeIterators over the same Tree are independent and Reset doesn't
// touch the tree at all -- cursor placement is an implementation detail,
// not an observable part of the traversal.

type iterFrame struct {
	node     NodeID
	children []NodeID
	next     int
}

// RnodeIterator walks a subtree in post-order: every node is produced only
// after all of its descendants have been.
type RnodeIterator struct {
	tree  *Tree
	start NodeID
	stack []iterFrame
}

// NewRnodeIterator returns an iterator over the subtree rooted at start,
// start included.
func NewRnodeIterator(t *Tree, start NodeID) *RnodeIterator {
	it := &RnodeIterator{tree: t, start: start}
	it.Reset()
	return it
}

// Reset rewinds the iterator to the beginning of its traversal.
func (it *RnodeIterator) Reset() {
	it.stack = []iterFrame{{node: it.start, children: it.tree.node(it.start).Children()}}
}

// Next returns the next node in post-order, or (-1, false) once the
// traversal is exhausted.
func (it *RnodeIterator) Next() (NodeID, bool) {
	for len(it.stack) > 0 {
		top := &it.stack[len(it.stack)-1]
		if top.next < len(top.children) {
			child := top.children[top.next]
			top.next++
			it.stack = append(it.stack, iterFrame{
				node:     child,
				children: it.tree.node(child).Children(),
			})
			continue
		}
		n := top.node
		it.stack = it.stack[:len(it.stack)-1]
		return n, true
	}
	return noNode, false
}

// PostOrder returns the tree's nodes in post-order starting from the root,
// rebuilding and caching the list if tree shape has changed since the last
// call. Grounded on tree.c's get_nodes_in_order / nodes_in_order cache.
func (t *Tree) PostOrder() []NodeID {
	if t.order != nil {
		return t.order
	}
	it := NewRnodeIterator(t, t.root)
	var out []NodeID
	for {
		id, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, id)
	}
	t.order = out
	return out
}

// SubtreePostOrder returns the nodes of the subtree rooted at start, in
// post-order, without touching the tree-wide cache.
func (t *Tree) SubtreePostOrder(start NodeID) []NodeID {
	it := NewRnodeIterator(t, start)
	var out []NodeID
	for {
		id, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, id)
	}
	return out
}

// LeafLabelMap returns a Dict mapping each leaf label in the subtree
// rooted at start to that leaf's NodeID. Grounded on
// rnode_iterator.c's get_leaf_label_map_from_node. Leaves with duplicate
// labels silently overwrite each other's entry, last-in-post-order wins,
// matching the original's hash_set semantics.
func (t *Tree) LeafLabelMap(start NodeID) *Dict[NodeID] {
	d := NewDict[NodeID]()
	it := NewRnodeIterator(t, start)
	for {
		id, ok := it.Next()
		if !ok {
			break
		}
		if n := t.node(id); n.IsLeaf() {
			d.Set(n.label, id)
		}
	}
	return d
}
