// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package nwk

import (
	"strconv"
)

// tree.go
//
// Tree is a rooted tree: an arena of Nodes addressed by NodeID, a root,
// and a maintained post-order node list, grounded on
// original_source/src/tree.h's tree_t (root rnode_t* plus a
// nodes_in_order list maintained by get_nodes_in_order) and on tree.c's
// lifecycle and classification functions (create_tree, destroy_tree,
// is_cladogram, get_tree_type, leaf_count).
//
// There is no destroy_tree counterpart: Go's garbage collector reclaims a
// Tree's arena once nothing references it, so the explicit free-the-whole-
// arena-then-free-the-struct two-step of the original has no Go analogue.
// This is a deliberate simplification rather than an oversight.

// TreeType classifies a tree's edge lengths, mirroring tree.c's
// get_tree_type: TreeTypeCladogram when no edge carries an explicit
// length, TreeTypePhylogram when every edge does, and TreeTypeMixed
// otherwise (the mixed case has no correspondent in the simpler original,
// which only distinguishes cladogram/phylogram; a third state avoids
// silently picking one for a tree whose lengths are a genuine mix).
type TreeType int

const (
	TreeTypeCladogram TreeType = iota
	TreeTypePhylogram
	TreeTypeMixed
)

func (t TreeType) String() string {
	switch t {
	case TreeTypeCladogram:
		return "cladogram"
	case TreeTypePhylogram:
		return "phylogram"
	case TreeTypeMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// Tree is a rooted phylogenetic tree: an arena of nodes plus a root. The
// zero value is not usable; construct one with NewTree.
type Tree struct {
	arena []*Node
	root  NodeID

	// order caches the authoritative post-order node list; it is
	// invalidated (set to nil) by any call that changes tree shape and
	// rebuilt lazily by PostOrder. Mirrors nodes_in_order in the
	// original, which link.c explicitly marks stale rather than
	// recomputes eagerly on every link/unlink.
	order []NodeID
}

// NewTree returns an empty tree with a single unlabeled root node.
func NewTree() *Tree {
	t := &Tree{}
	root := t.newNode()
	t.root = root
	return t
}

// newNode allocates a node in the arena and returns its id. The node
// starts detached (no parent, no children, no siblings).
func (t *Tree) newNode() NodeID {
	n := &Node{tree: t, parent: noNode, firstChild: noNode, nextSibling: noNode}
	t.arena = append(t.arena, n)
	t.order = nil
	return NodeID(len(t.arena) - 1)
}

// NewNode allocates a new, detached node in the tree's arena and returns
// its id. Callers attach it to the tree with AddChild, InsertNodeAbove, or
// similar operations in link.go; an unattached node does not appear in
// PostOrder or any traversal until it is linked in.
func (t *Tree) NewNode() NodeID {
	return t.newNode()
}

// node resolves id to its *Node. It panics on an out-of-range id, since
// that is always a caller bug (an id from a different Tree that happens
// to be in range is not detected); ErrNotInTree
// is reserved for API boundaries that accept raw integers from outside,
// such as a CLI index flag.
func (t *Tree) node(id NodeID) *Node {
	return t.arena[id]
}

// Node returns the Node for id, along with an error if id does not belong
// to this tree.
func (t *Tree) Node(id NodeID) (*Node, error) {
	if id < 0 || int(id) >= len(t.arena) {
		return nil, ErrNotInTree
	}
	return t.arena[id], nil
}

// Root returns the id of the tree's root node.
func (t *Tree) Root() NodeID { return t.root }

// setRoot reassigns the tree's root, used by SwapNodes in link.go (which
// Reroot in treeops.go repeats).
func (t *Tree) setRoot(id NodeID) {
	t.root = id
	t.order = nil
}

// NodeCount returns the number of nodes allocated in the tree's arena,
// including any detached nodes not currently reachable from the root.
func (t *Tree) NodeCount() int { return len(t.arena) }

// invalidate discards the cached post-order list. Every operation in
// link.go that changes parent/child/sibling links calls this.
func (t *Tree) invalidate() { t.order = nil }

// formatLength renders an edge length the way the original's
// to_newick.c does: %g-like, shortest round-tripping decimal, no
// trailing zeros. strconv's 'g' format with -1 precision gives exactly
// that.
func formatLength(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
