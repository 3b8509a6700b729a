// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package nwk

import (
	"fmt"

	"github.com/soniakeys/multiset"
)

// bipart.go
//
// Bipartition/support: counting how often each bipartition recurs across
// a set of bootstrap replicates, grounded on original_source/src/bipart.c
// and support.c (init_lbl2num, union_of_child_node_sets,
// add_bipart_count, compute_bipartitions, attribute_support_to_target_tree).
// This is exactly the "count occurrences of a key across many collections"
// problem soniakeys/multiset's Multiset already solves for mass counts in
// aaint.go -- a bipartition's canonical NodeSet.String() plays the role a
// mass value plays there.

// leafIndex assigns each of the tree's leaves a stable bit position,
// keyed by label. Grounded on bipart.c's init_lbl2num.
func (t *Tree) leafIndex() (map[string]int, int) {
	leaves := t.Leaves()
	idx := make(map[string]int, len(leaves))
	for i, id := range leaves {
		idx[t.node(id).label] = i
	}
	return idx, len(leaves)
}

// nodeSets computes, for every node in the tree, the NodeSet of leaves
// (by the positions assigned in idx) beneath it, bottom-up. Grounded on
// bipart.c's union_of_child_node_sets.
func (t *Tree) nodeSets(idx map[string]int, n int) map[NodeID]*NodeSet {
	sets := make(map[NodeID]*NodeSet, len(t.arena))
	for _, id := range t.PostOrder() {
		node := t.node(id)
		s := NewNodeSet(n)
		if node.IsLeaf() {
			if pos, ok := idx[node.label]; ok {
				s.Add(pos)
			}
		} else {
			for _, c := range node.Children() {
				s.AddSet(sets[c])
			}
		}
		sets[id] = s
	}
	return sets
}

// canonicalKey returns a NodeSet's bipartition key, normalized so a set
// and its complement (the two sides of the same edge) produce the same
// key regardless of which side a traversal happened to compute.
func canonicalKey(s *NodeSet) string {
	a, b := s.String(), s.Complement().String()
	if b < a {
		return b
	}
	return a
}

// isTrivialSplit reports whether a bipartition of the given cardinality,
// out of n total leaves, is trivial (a single leaf on one side) and so
// carries no information -- every tree has one at every leaf edge, and
// support.c's attribute_support_to_target_tree skips them.
func isTrivialSplit(count, n int) bool {
	return count < 2 || count > n-2
}

// ComputeBipartitions counts how often each non-trivial bipartition of
// reference's leaf set recurs across replicates, returning a Multiset
// keyed by canonicalKey. Every replicate must carry exactly reference's
// leaf label set (as a set; order and tree shape may differ), or
// ComputeBipartitions returns ErrMalformedMap -- grounded on bipart.c's
// compute_bipartitions, which requires the same discipline of the input
// bootstrap sample.
func ComputeBipartitions(reference *Tree, replicates []*Tree) (*multiset.Multiset, error) {
	idx, n := reference.leafIndex()
	ms := multiset.Multiset{}

	for _, rep := range replicates {
		repIdx, repN := rep.leafIndex()
		if repN != n {
			return nil, ErrMalformedMap
		}
		for lbl := range idx {
			if _, ok := repIdx[lbl]; !ok {
				return nil, ErrMalformedMap
			}
		}
		sets := rep.nodeSets(idx, n)
		seen := make(map[string]bool)
		for _, id := range rep.PostOrder() {
			node := rep.node(id)
			if node.IsLeaf() || id == rep.root {
				continue
			}
			s := sets[id]
			if isTrivialSplit(s.Count(), n) {
				continue
			}
			key := canonicalKey(s)
			if seen[key] {
				continue
			}
			seen[key] = true
			ms.AddElementCount(key, 1)
		}
	}
	return &ms, nil
}

// formatSupport renders a support percentage the way to_newick.c writes
// an internal label: an integer-looking decimal with no trailing zeros.
func formatSupport(pct float64) string {
	return fmt.Sprintf("%.0f", pct)
}

// AttributeSupport labels every non-trivial internal node of t with the
// percentage of totalReplicates in which its bipartition (by leaf label,
// not by node identity, so t need not be one of the replicates counted)
// appears in counts. Grounded on support.c's
// attribute_support_to_target_tree.
func (t *Tree) AttributeSupport(counts *multiset.Multiset, totalReplicates int) error {
	if totalReplicates <= 0 {
		return ErrMalformedMap
	}
	idx, n := t.leafIndex()
	sets := t.nodeSets(idx, n)
	for _, id := range t.PostOrder() {
		node := t.node(id)
		if node.IsLeaf() || id == t.root {
			continue
		}
		s := sets[id]
		if isTrivialSplit(s.Count(), n) {
			continue
		}
		count := (*counts)[canonicalKey(s)]
		pct := 100 * float64(count) / float64(totalReplicates)
		node.SetLabel(formatSupport(pct))
	}
	return nil
}

// CollapseLowSupport removes every internal node whose support label (as
// attributed by AttributeSupport) parses as a number below minSupport. It
// is the common "collapse weakly supported clades" operation built on
// treeops.go's general CollapseClades.
func (t *Tree) CollapseLowSupport(minSupport float64) int {
	return t.CollapseClades(func(id NodeID) bool {
		n := t.node(id)
		v, ok := parseLength(n.label)
		return ok && v < minSupport
	})
}
