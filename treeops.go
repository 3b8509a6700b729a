// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package nwk

// treeops.go
//
// Tree operations: whole-tree queries and shape-changing algorithms built
// on top of the node-linking primitives, grounded on
// original_source/src/tree.c (leaf_count, get_leaf_labels, is_cladogram,
// get_tree_type, reroot_tree, collapse_pure_clades) and on reroot.c's CLI
// driver (get_outgroup_nodes, get_ingroup_leaves, the -l lax flag), plus
// stair-node detection adapted from stats.c.

// Leaves returns the tree's leaf nodes, in post-order.
func (t *Tree) Leaves() []NodeID {
	var out []NodeID
	for _, id := range t.PostOrder() {
		if t.node(id).IsLeaf() {
			out = append(out, id)
		}
	}
	return out
}

// LeafCount returns the number of leaves in the tree. Grounded on
// tree.c's leaf_count.
func (t *Tree) LeafCount() int {
	return len(t.Leaves())
}

// LeafLabels returns the labels of the tree's leaves, in post-order.
// Grounded on tree.c's get_leaf_labels.
func (t *Tree) LeafLabels() []string {
	leaves := t.Leaves()
	out := make([]string, len(leaves))
	for i, id := range leaves {
		out[i] = t.node(id).label
	}
	return out
}

// IsCladogram reports whether no node in the tree carries an explicit edge
// length. Grounded on tree.c's is_cladogram.
func (t *Tree) IsCladogram() bool {
	for _, id := range t.PostOrder() {
		if t.node(id).hasLength {
			return false
		}
	}
	return true
}

// Type classifies the tree's edge lengths as a cladogram (none have a
// length), a phylogram (every non-root node has one), or mixed (some do,
// some don't). Grounded on tree.c's get_tree_type, generalized with a
// third state for a tree whose lengths are a genuine mix of the two.
func (t *Tree) Type() TreeType {
	any, all := false, true
	for _, id := range t.PostOrder() {
		n := t.node(id)
		if n.IsRoot() {
			continue
		}
		if n.hasLength {
			any = true
		} else {
			all = false
		}
	}
	switch {
	case !any:
		return TreeTypeCladogram
	case all:
		return TreeTypePhylogram
	default:
		return TreeTypeMixed
	}
}

// Depth returns the number of edges on the path from the root to id.
func (t *Tree) Depth(id NodeID) int {
	depth := 0
	for n := t.node(id); n.parent != noNode; n = t.node(n.parent) {
		depth++
	}
	return depth
}

// MaxDepth returns the greatest Depth among the tree's leaves.
func (t *Tree) MaxDepth() int {
	max := 0
	for _, id := range t.Leaves() {
		if d := t.Depth(id); d > max {
			max = d
		}
	}
	return max
}

// IsBinary reports whether every interior node has exactly two children.
func (t *Tree) IsBinary() bool {
	for _, id := range t.PostOrder() {
		if n := t.node(id); !n.IsLeaf() && n.childCount != 2 {
			return false
		}
	}
	return true
}

// IsStairNode reports whether id has exactly two children, exactly one of
// which is a leaf -- the "staircase" pattern a ladderized tree is made of.
// Grounded on rnode.c's is_stair_node.
func (t *Tree) IsStairNode(id NodeID) bool {
	n := t.node(id)
	if n.childCount != 2 {
		return false
	}
	children := n.Children()
	a, b := t.node(children[0]).IsLeaf(), t.node(children[1]).IsLeaf()
	return a != b
}

// HasStairNodes reports whether any node in the tree is a stair node.
func (t *Tree) HasStairNodes() bool {
	for _, id := range t.PostOrder() {
		if !t.node(id).IsLeaf() && t.IsStairNode(id) {
			return true
		}
	}
	return false
}

// IsMonophyletic reports whether ids is exactly the leaf set of some
// clade: the lowest common ancestor of ids has precisely ids as its
// leaves, no more and no fewer.
func (t *Tree) IsMonophyletic(ids []NodeID) bool {
	if len(ids) == 0 {
		return false
	}
	anc, err := t.LCAFromNodes(ids)
	if err != nil {
		return false
	}
	clade := t.LeafLabelMap(anc)
	if clade.Len() != len(ids) {
		return false
	}
	want := make(map[NodeID]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	for _, lbl := range clade.Keys() {
		id, _ := clade.Get(lbl)
		if !want[id] {
			return false
		}
	}
	return true
}

// CollapsePureClades collapses every "pure" clade in the tree: an
// interior node all of whose children are leaves sharing one label. Such
// a node is turned into a leaf carrying that shared label -- its own
// label is overwritten, its children are discarded, and its own edge
// length is untouched. The pass runs in post-order, so a pure clade
// nested inside another is collapsed first and can make its parent pure
// in turn, all within one pass; running it again is a no-op, since no
// node it left behind still has every child a same-labeled leaf unless
// it already did. Returns the number of nodes collapsed. Grounded on
// tree.c's collapse_pure_clades.
func (t *Tree) CollapsePureClades() int {
	count := 0
	for _, id := range t.PostOrder() {
		n := t.node(id)
		children := n.Children()
		if len(children) == 0 {
			continue
		}
		label := t.node(children[0]).label
		pure := true
		for _, c := range children {
			cn := t.node(c)
			if !cn.IsLeaf() || cn.label != label {
				pure = false
				break
			}
		}
		if !pure {
			continue
		}
		for _, c := range children {
			if err := t.RemoveChild(id, c); err != nil {
				pure = false
				break
			}
		}
		if !pure {
			continue
		}
		n.SetLabel(label)
		count++
	}
	return count
}

// CollapseClades splices out every non-root interior node for which pred
// reports true, processed bottom-up so that collapsing a nested clade
// doesn't interfere with collapsing its ancestor in the same pass. It
// returns the number of nodes collapsed. Unlike CollapsePureClades, which
// turns a node into a leaf by discarding its children, this removes the
// node itself and keeps its children; bipart.go's CollapseLowSupport is
// built on top of it.
func (t *Tree) CollapseClades(pred func(NodeID) bool) int {
	order := t.PostOrder()
	count := 0
	for _, id := range order {
		if id == t.root {
			continue
		}
		n := t.node(id)
		if n.IsLeaf() || n.parent == noNode {
			continue
		}
		if pred(id) {
			if err := t.SpliceOut(id); err == nil {
				count++
			}
		}
	}
	return count
}

// ancestorChildOfRoot walks up from id to find the ancestor-or-self of id
// that is a direct child of the tree's current root.
func (t *Tree) ancestorChildOfRoot(id NodeID) NodeID {
	for {
		n := t.node(id)
		if n.parent == t.root {
			return id
		}
		id = n.parent
	}
}

// Reroot splits the edge above newRoot in half and makes the split point
// the tree's new root, with newRoot's subtree as one of its two children.
// It first inserts a new zero-labeled node above newRoot (halving the
// length of the edge above newRoot between the two), then walks that new
// node up to the root one level at a time with SwapNodes -- at each step,
// the node on its path that is currently a child of the root swaps with
// it -- until it has bubbled all the way up. If this leaves the original
// root with exactly one remaining child, that now-unary node is spliced
// out so the tree never carries a dangling single-child node. Grounded
// on tree.c's reroot_tree.
func (t *Tree) Reroot(newRoot NodeID) error {
	if newRoot == t.root {
		return nil
	}
	if _, err := t.Node(newRoot); err != nil {
		return err
	}
	split, err := t.InsertNodeAbove(newRoot, "")
	if err != nil {
		return err
	}
	oldRoot := t.root
	for t.root != split {
		child := t.ancestorChildOfRoot(split)
		if err := t.SwapNodes(child); err != nil {
			return err
		}
	}
	if n := t.node(oldRoot); n.parent != noNode && n.childCount == 1 {
		if err := t.SpliceOut(oldRoot); err != nil {
			return err
		}
	}
	return nil
}

// RerootLax reroots the tree using an outgroup that need not be exactly
// monophyletic: it computes the lowest common ancestor of the leaves
// named by outgroupLabels and reroots on it, splitting the edge above
// that ancestor and making the split point the new root. Grounded on
// reroot.c's -l ("lax") flag, which accepts any outgroup set rather than
// insisting the caller name one that forms a clade exactly.
func (t *Tree) RerootLax(outgroupLabels []string) error {
	leaves := t.LeafLabelMap(t.root)
	var ids []NodeID
	for _, l := range outgroupLabels {
		if id, ok := leaves.Get(l); ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return ErrNoMatchingNodes
	}
	anc, err := t.LCAFromNodes(ids)
	if err != nil {
		return err
	}
	return t.Reroot(anc)
}

// IngroupLeaves returns the leaves of the tree that are not part of the
// outgroup named by outgroupLabels -- the complement set reroot.c's
// get_ingroup_leaves computes to validate a reroot request before
// applying it.
func (t *Tree) IngroupLeaves(outgroupLabels []string) []NodeID {
	excl := make(map[string]bool, len(outgroupLabels))
	for _, l := range outgroupLabels {
		excl[l] = true
	}
	var out []NodeID
	for _, id := range t.Leaves() {
		if !excl[t.node(id).label] {
			out = append(out, id)
		}
	}
	return out
}
