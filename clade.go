// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package nwk

// clade.go
//
// MonophyleticSubtrees extends single-clade extraction to batches:
// original_source/src/clade.c and match.c extract every clade in a tree
// matching a label set, one at a time; this generalizes IsMonophyletic
// (treeops.go) to answer the extraction question for many label groups
// in one call, sharing a single leaf-label map across groups, the way a
// CLI tool processing a whole file of queries would want.

// MonophyleticSubtrees resolves each group of labels in groups to leaf
// nodes and reports, for each group, the root of the clade it forms if
// and only if that group is exactly monophyletic. A group that doesn't
// match any leaves, or isn't monophyletic, gets a false ok alongside a
// zero NodeID.
func (t *Tree) MonophyleticSubtrees(groups [][]string) []struct {
	Root NodeID
	OK   bool
} {
	leaves := t.LeafLabelMap(t.root)
	out := make([]struct {
		Root NodeID
		OK   bool
	}, len(groups))

	for gi, labels := range groups {
		var ids []NodeID
		for _, l := range labels {
			if id, ok := leaves.Get(l); ok {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 || !t.IsMonophyletic(ids) {
			continue
		}
		anc, err := t.LCAFromNodes(ids)
		if err != nil {
			continue
		}
		out[gi].Root = anc
		out[gi].OK = true
	}
	return out
}
