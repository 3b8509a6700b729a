// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package nwk

import "github.com/soniakeys/graph"

// lca.go
//
// LCA engine, grounded on original_source/src/lca.c (lca2, lca_from_nodes,
// lca_from_labels, lca_from_labels_multi). lca2's walk-up-from-both-sides
// algorithm is exactly what graph.FromList.CommonAncestor already
// implements for a parent-pointer forest, the same structure
// soniakeys/graph's own PhyloList.PathLen/Distance build on -- so rather
// than hand-rolling the depth-then-walk algorithm again, a Tree's current
// parent pointers and node depths are snapshotted into a graph.FromList
// and handed to it.

// fromList snapshots the tree's current parent pointers, and each node's
// path length from its root (PathEnd.Len, which CommonAncestor uses to
// bring both nodes to the same level before walking up), as a
// graph.FromList. It is rebuilt on every call rather than cached on the
// Tree, since any link.go operation can change parent pointers and there
// is no cheap way to know from here whether one has.
func (t *Tree) fromList() graph.FromList {
	paths := make([]graph.PathEnd, len(t.arena))
	for i, n := range t.arena {
		from := graph.NI(-1)
		if n.parent != noNode {
			from = graph.NI(n.parent)
		}
		paths[i] = graph.PathEnd{From: from, Len: t.Depth(NodeID(i)) + 1}
	}
	return graph.FromList{Paths: paths}
}

// LCA2 returns the lowest common ancestor of a and b. Grounded on lca.c's
// lca2.
func (t *Tree) LCA2(a, b NodeID) NodeID {
	fl := t.fromList()
	return NodeID(fl.CommonAncestor(graph.NI(a), graph.NI(b)))
}

// LCAFromNodes returns the lowest common ancestor of a set of nodes by
// repeated pairwise reduction, grounded on lca.c's lca_from_nodes. It
// returns ErrNoMatchingNodes if ids is empty.
func (t *Tree) LCAFromNodes(ids []NodeID) (NodeID, error) {
	if len(ids) == 0 {
		return noNode, ErrNoMatchingNodes
	}
	fl := t.fromList()
	seq := NewSeq(ids...)
	return Reduce(seq, func(a, b NodeID) NodeID {
		return NodeID(fl.CommonAncestor(graph.NI(a), graph.NI(b)))
	}), nil
}

// LCAFromLabels resolves labels to leaves and returns their lowest common
// ancestor. Labels with no matching leaf are skipped; it returns
// ErrNoMatchingNodes only if none of the labels matched anything.
// Grounded on lca.c's lca_from_labels.
func (t *Tree) LCAFromLabels(labels []string) (NodeID, error) {
	leaves := t.LeafLabelMap(t.root)
	var ids []NodeID
	for _, l := range labels {
		if id, ok := leaves.Get(l); ok {
			ids = append(ids, id)
		}
	}
	return t.LCAFromNodes(ids)
}

// LCAFromLabelsMulti computes the LCA for each of several independent
// label groups in one pass, sharing the leaf-label map and the FromList
// snapshot across groups instead of rebuilding them per group. Grounded
// on lca.c's lca_from_labels_multi, which exists in the original
// specifically to amortize that cost across many queries against one
// tree (e.g. one support-value computation per internal edge).
func (t *Tree) LCAFromLabelsMulti(groups [][]string) ([]NodeID, error) {
	leaves := t.LeafLabelMap(t.root)
	fl := t.fromList()
	out := make([]NodeID, len(groups))
	for gi, labels := range groups {
		var ids []NodeID
		for _, l := range labels {
			if id, ok := leaves.Get(l); ok {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			return nil, ErrNoMatchingNodes
		}
		seq := NewSeq(ids...)
		out[gi] = Reduce(seq, func(a, b NodeID) NodeID {
			return NodeID(fl.CommonAncestor(graph.NI(a), graph.NI(b)))
		})
	}
	return out, nil
}
