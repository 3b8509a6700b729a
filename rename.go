// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package nwk

import "regexp"

// rename.go
//
// RenameFromMap and RenameByRegexp are grounded on
// original_source/src/rename.c: bulk-rename
// nodes either by an exact old-label -> new-label table, or by rewriting
// every matching label with a regexp.ReplaceAll-style substitution.

// RenameFromMap renames every node whose current label is a key of names
// to the corresponding value. It returns the number of nodes renamed.
func (t *Tree) RenameFromMap(names *Dict[string]) int {
	count := 0
	for _, id := range t.PostOrder() {
		n := t.node(id)
		if n.label == "" {
			continue
		}
		if newLabel, ok := names.Get(n.label); ok {
			n.SetLabel(newLabel)
			count++
		}
	}
	return count
}

// RenameByRegexp replaces every label matching re with the result of
// re.ReplaceAllString(label, repl). It returns the number of nodes
// renamed (nodes whose label matched re, whether or not the replacement
// left the text unchanged).
func (t *Tree) RenameByRegexp(re *regexp.Regexp, repl string) int {
	count := 0
	for _, id := range t.PostOrder() {
		n := t.node(id)
		if n.label == "" || !re.MatchString(n.label) {
			continue
		}
		n.SetLabel(re.ReplaceAllString(n.label, repl))
		count++
	}
	return count
}
