// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Package nwk is a rooted phylogenetic tree engine.
//
// Trees arrive as Newick text, one tree per top level expression, possibly
// many concatenated in a single stream. The package builds a tree, offers
// structural transforms (rerooting, splicing, insertion, unlinking, clade
// collapse), a small set of traversal and lookup algorithms (LCA,
// bipartitions, label maps), and serializes back to Newick.
//
// Data model
//
// A Tree owns an arena of Nodes, referenced by the index type NodeID rather
// than by pointer. A node knows its parent, its first child, and its next
// sibling; child count and an authoritative post-order node list are kept
// in sync by the linking operations in link.go. Nothing outside this
// package should retain a NodeID past a call that mutates the tree's shape
// (reroot, splice, unlink) without re-deriving it, since those calls can
// invalidate cached orderings.
//
// The package does not generalize across tree kinds: leaves always carry
// string labels, trees are always rooted, and there is no notion of
// networks or reticulation.
package nwk
