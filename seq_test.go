// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package nwk

import (
	"reflect"
	"testing"
)

func TestSeqAppendShift(t *testing.T) {
	s := NewSeq(1, 2, 3)
	s.Append(4)
	if got := s.Slice(); !reflect.DeepEqual(got, []int{1, 2, 3, 4}) {
		t.Fatalf("got %v", got)
	}
	v, ok := s.Shift()
	if !ok || v != 1 {
		t.Fatalf("Shift() = %v, %v", v, ok)
	}
	if got := s.Slice(); !reflect.DeepEqual(got, []int{2, 3, 4}) {
		t.Fatalf("got %v", got)
	}
}

func TestSeqPrepend(t *testing.T) {
	s := NewSeq(2, 3)
	s.Prepend(1)
	if got := s.Slice(); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("got %v", got)
	}
}

func TestSeqReverse(t *testing.T) {
	s := NewSeq("a", "b", "c")
	r := s.Reverse()
	if got := r.Slice(); !reflect.DeepEqual(got, []string{"c", "b", "a"}) {
		t.Fatalf("got %v", got)
	}
	if got := s.Slice(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("Reverse mutated receiver: %v", got)
	}
}

func TestSeqIndexOf(t *testing.T) {
	s := NewSeq(10, 20, 30)
	if i := s.IndexOf(20); i != 1 {
		t.Fatalf("IndexOf(20) = %d", i)
	}
	if i := s.IndexOf(99); i != -1 {
		t.Fatalf("IndexOf(99) = %d, want -1", i)
	}
}

func TestSeqSplice(t *testing.T) {
	s := NewSeq(1, 2, 5)
	s.Splice(1, NewSeq(3, 4))
	if got := s.Slice(); !reflect.DeepEqual(got, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("got %v", got)
	}
}

func TestSeqShallowCopyIndependent(t *testing.T) {
	s := NewSeq(1, 2)
	c := s.ShallowCopy()
	c.Append(3)
	if s.Len() != 2 {
		t.Fatalf("original mutated: len=%d", s.Len())
	}
	if c.Len() != 3 {
		t.Fatalf("copy len=%d, want 3", c.Len())
	}
}

func TestReduce(t *testing.T) {
	s := NewSeq(1, 2, 3, 4)
	sum := Reduce(s, func(a, b int) int { return a + b })
	if sum != 10 {
		t.Fatalf("Reduce sum = %d, want 10", sum)
	}
}

func TestReduceEmptyPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on empty Reduce")
		}
	}()
	Reduce(NewSeq[int](), func(a, b int) int { return a + b })
}
