// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package nwk

import "strings"

// nodeset.go
//
// NodeSet is a fixed-capacity bit-set, used by the bipartition engine
// (bipart.go) to represent which leaves fall on the subtree side of an
// edge. It is a plain []uint64 word slice with Add/Test/Union, the same
// shape as gaissmai/bart's internal/bitset package
// (internal/bitset/bitset.go: wordSize 64, a word per 64 bits, union by
// OR) — that package can't be imported (it's internal to a different
// module) so this is a from-scratch but structurally identical
// implementation, not a repackaging.
//
// Unlike bart's bitset, which grows on demand, a NodeSet is allocated once
// at a fixed capacity (the tree's leaf count) and never resized: every
// node set in this engine is sized to a tree's leaf count up front, so
// growth would be unnecessary complication.

const wordBits = 64

// NodeSet is a fixed-capacity set of small non-negative integers.
type NodeSet struct {
	words []uint64
	n     int // capacity, in bits
}

// NewNodeSet returns an empty NodeSet with capacity for n elements,
// numbered 0..n-1.
func NewNodeSet(n int) *NodeSet {
	if n <= 0 {
		n = 1
	}
	return &NodeSet{words: make([]uint64, (n+wordBits-1)/wordBits), n: n}
}

// Cap returns the set's capacity.
func (s *NodeSet) Cap() int {
	return s.n
}

// Add sets bit i.
func (s *NodeSet) Add(i int) {
	s.words[i/wordBits] |= 1 << uint(i%wordBits)
}

// Test reports whether bit i is set.
func (s *NodeSet) Test(i int) bool {
	return s.words[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// Union returns a new NodeSet with the bits of both s and o set. Both must
// have the same capacity.
func (s *NodeSet) Union(o *NodeSet) *NodeSet {
	r := NewNodeSet(s.n)
	for i := range r.words {
		r.words[i] = s.words[i] | o.words[i]
	}
	return r
}

// AddSet ORs o's bits into s in place, the in-place counterpart of Union
// used while accumulating a parent's set from its children one at a time
// (mirrors node_set_add_set in the original, which avoids an allocation
// per child).
func (s *NodeSet) AddSet(o *NodeSet) {
	for i := range s.words {
		s.words[i] |= o.words[i]
	}
}

// Count returns the number of set bits.
func (s *NodeSet) Count() int {
	c := 0
	for i := 0; i < s.n; i++ {
		if s.Test(i) {
			c++
		}
	}
	return c
}

// Complement returns a new NodeSet with exactly the bits of s, within its
// capacity, unset.
func (s *NodeSet) Complement() *NodeSet {
	r := NewNodeSet(s.n)
	for i := 0; i < s.n; i++ {
		if !s.Test(i) {
			r.Add(i)
		}
	}
	return r
}

// String renders the set as one character per bit position 0..n-1, '*'
// for set, '.' for unset. This string is the bipartition key used by the
// support-counting map in bipart.go.
func (s *NodeSet) String() string {
	var b strings.Builder
	b.Grow(s.n)
	for i := 0; i < s.n; i++ {
		if s.Test(i) {
			b.WriteByte('*')
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}
