// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package nwk

import "regexp"

// nodemap.go
//
// Label/regexp lookup: find nodes by exact label or by regexp, grounded on
// original_source/src/tree.c's nodes_from_labels and nodes_from_regexp:
// find the nodes (leaf or interior) whose label exactly equals, or
// matches a regexp against, one of a set of query strings. Unlike
// LeafLabelMap (iterator.go), which only considers leaves and backs the
// LCA-from-labels, monophyly and reroot lookups, these consider every node in the
// tree, matching the broader original functions they're grounded on.

// labelIndex maps a label to every node in the tree carrying it, built
// once per call since callers typically do one lookup per tree per CLI
// invocation; nothing here is cached on the Tree.
func (t *Tree) labelIndex() map[string][]NodeID {
	idx := make(map[string][]NodeID)
	for _, id := range t.PostOrder() {
		lbl := t.node(id).label
		if lbl != "" {
			idx[lbl] = append(idx[lbl], id)
		}
	}
	return idx
}

// NodesFromLabels returns every node (leaf or interior) whose label
// exactly matches one of labels. If none of the requested labels match
// any node, it returns ErrNoMatchingNodes. Labels with no match are
// otherwise silently skipped, matching nodes_from_labels' lax behavior.
func (t *Tree) NodesFromLabels(labels []string) ([]NodeID, error) {
	idx := t.labelIndex()
	var out []NodeID
	for _, l := range labels {
		out = append(out, idx[l]...)
	}
	if len(out) == 0 {
		return nil, ErrNoMatchingNodes
	}
	return out, nil
}

// NodesFromRegexp returns every node whose label matches re. It returns
// ErrNoMatchingNodes if no node's label matches.
func (t *Tree) NodesFromRegexp(re *regexp.Regexp) ([]NodeID, error) {
	var out []NodeID
	for _, id := range t.PostOrder() {
		if lbl := t.node(id).label; lbl != "" && re.MatchString(lbl) {
			out = append(out, id)
		}
	}
	if len(out) == 0 {
		return nil, ErrNoMatchingNodes
	}
	return out, nil
}
