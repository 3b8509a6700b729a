// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package nwk

import (
	"io"
	"strings"
	"unicode"
)

// serializer.go
//
// Two Newick serializer variants, grounded on
// original_source/src/to_newick.c:
//
//   - WriteTo / String: writes (or builds) the whole tree as one Newick
//     string, the direct analogue of to_newick.c's to_newick().
//   - Fragments: returns the same text as a Seq of fragments rather than
//     one string, the analogue of to_newick_i(), which the original CLI
//     tools use to stream very large trees to a file one token at a time
//     instead of holding the whole serialization in memory at once.
//     Reusing Seq here (rather than a bespoke fragment list type) is the
//     same ordered-sequence abstraction component 1 already provides.

func needsQuoting(s string) bool {
	for _, r := range s {
		switch r {
		case '(', ')', ',', ':', ';', '[', ']', '\'':
			return true
		}
		if unicode.IsSpace(r) {
			return true
		}
	}
	return false
}

// formatLabel renders a label for Newick output, single-quoting it (and
// doubling any embedded quotes) if it contains a character that would
// otherwise be ambiguous with Newick syntax.
func formatLabel(s string) string {
	if !needsQuoting(s) {
		return s
	}
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func (t *Tree) writeSubtree(w io.Writer, id NodeID) error {
	n := t.node(id)
	if !n.IsLeaf() {
		if _, err := io.WriteString(w, "("); err != nil {
			return err
		}
		children := n.Children()
		for i, c := range children {
			if i > 0 {
				if _, err := io.WriteString(w, ","); err != nil {
					return err
				}
			}
			if err := t.writeSubtree(w, c); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, ")"); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, formatLabel(n.label)); err != nil {
		return err
	}
	if n.hasLength {
		if _, err := io.WriteString(w, ":"+n.lengthStr); err != nil {
			return err
		}
	}
	return nil
}

// countingWriter wraps an io.Writer to satisfy io.WriterTo's int64 byte
// count without requiring every caller of writeSubtree to track it.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

// WriteTo writes the tree as Newick text to w, terminated by ';', and
// returns the number of bytes written. It satisfies io.WriterTo.
func (t *Tree) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if err := t.writeSubtree(cw, t.root); err != nil {
		return cw.n, err
	}
	if _, err := io.WriteString(cw, ";"); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

// String returns the tree as a single Newick-encoded string.
func (t *Tree) String() string {
	var b strings.Builder
	_, _ = t.WriteTo(&b)
	return b.String()
}

// SubtreeString serializes just the subtree rooted at id as a standalone
// Newick-encoded string, without disturbing t's own root. Grounded on
// to_newick.c's to_newick_i, which the original's clade-extraction driver
// calls on a clade's root node rather than the whole tree.
func (t *Tree) SubtreeString(id NodeID) string {
	var b strings.Builder
	_ = t.writeSubtree(&b, id)
	b.WriteString(";")
	return b.String()
}

// Fragments returns the tree's Newick serialization as a sequence of
// string fragments rather than one concatenated string, so a caller
// writing a very large tree can drain it incrementally (e.g. one
// Seq.Shift per Write call) instead of holding the whole text at once.
func (t *Tree) Fragments() *Seq[string] {
	frags := NewSeq[string]()
	var walk func(id NodeID)
	walk = func(id NodeID) {
		n := t.node(id)
		if !n.IsLeaf() {
			frags.Append("(")
			children := n.Children()
			for i, c := range children {
				if i > 0 {
					frags.Append(",")
				}
				walk(c)
			}
			frags.Append(")")
		}
		frags.Append(formatLabel(n.label))
		if n.hasLength {
			frags.Append(":" + n.lengthStr)
		}
	}
	walk(t.root)
	frags.Append(";")
	return frags
}
