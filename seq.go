// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package nwk

// seq.go
//
// Seq is an ordered sequence of opaque elements with
// prepend/append/shift/splice/reverse/index-of. The original C
// implementation (list.c) backs this with a singly linked list carrying
// head, tail and count, precisely so append and shift are O(1); a Go
// slice gives the same amortized bounds for append, and the concrete
// backing is an implementation detail callers never observe, so there is
// no loss of fidelity in using one here. It is used for the node lists
// folded by the LCA engine and for the fragment list returned by
// Tree.Fragments.

// Seq is an ordered sequence of comparable elements.
type Seq[T comparable] struct {
	items []T
}

// NewSeq returns a Seq containing items, in order.
func NewSeq[T comparable](items ...T) *Seq[T] {
	s := &Seq[T]{items: make([]T, len(items))}
	copy(s.items, items)
	return s
}

// Len returns the number of elements.
func (s *Seq[T]) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// At returns the element at position i.
func (s *Seq[T]) At(i int) T {
	return s.items[i]
}

// Prepend adds v to the beginning of the sequence.
func (s *Seq[T]) Prepend(v T) {
	s.items = append(s.items, v)
	copy(s.items[1:], s.items[:len(s.items)-1])
	s.items[0] = v
}

// Append adds v to the end of the sequence.
func (s *Seq[T]) Append(v T) {
	s.items = append(s.items, v)
}

// AppendSeq appends the elements of other to s, in order.
func (s *Seq[T]) AppendSeq(other *Seq[T]) {
	s.items = append(s.items, other.items...)
}

// Shift removes and returns the first element. The second return value is
// false if the sequence was empty.
func (s *Seq[T]) Shift() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}
	v = s.items[0]
	s.items = s.items[1:]
	return v, true
}

// Reverse returns a new Seq with elements in reverse order; s is unchanged.
func (s *Seq[T]) Reverse() *Seq[T] {
	r := &Seq[T]{items: make([]T, len(s.items))}
	for i, v := range s.items {
		r.items[len(s.items)-1-i] = v
	}
	return r
}

// ShallowCopy returns a new Seq with the same elements as s; s is
// unchanged. Named for link.c's shallow_copy: the elements themselves are
// not cloned, only the sequence structure.
func (s *Seq[T]) ShallowCopy() *Seq[T] {
	return NewSeq(s.items...)
}

// IndexOf returns the position of the first element equal to v, or -1 if
// v is not present.
func (s *Seq[T]) IndexOf(v T) int {
	for i, e := range s.items {
		if e == v {
			return i
		}
	}
	return -1
}

// Splice inserts insert's elements into s starting right after position
// pos (0-based). pos == -1 prepends; pos == s.Len()-1 appends. Positions
// outside [-1, s.Len()-1] are a no-op.
func (s *Seq[T]) Splice(pos int, insert *Seq[T]) {
	if pos < -1 || pos > len(s.items)-1 {
		return
	}
	head := append([]T{}, s.items[:pos+1]...)
	head = append(head, insert.items...)
	head = append(head, s.items[pos+1:]...)
	s.items = head
}

// Slice returns the elements of s as a plain slice. The caller must not
// mutate the backing array in a way that would be visible through s.
func (s *Seq[T]) Slice() []T {
	return s.items
}

// Reduce folds the sequence to a single value by repeatedly replacing the
// first two elements with f(a, b), left to right, until one remains. It
// panics if s is empty. Modeled on list.c's reduce(), used by the LCA
// engine to fold a node list via pairwise LCA.
func Reduce[T comparable](s *Seq[T], f func(a, b T) T) T {
	if s.Len() == 0 {
		panic("nwk: Reduce of empty sequence")
	}
	acc := s.items[0]
	for _, v := range s.items[1:] {
		acc = f(acc, v)
	}
	return acc
}
