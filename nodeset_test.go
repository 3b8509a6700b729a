// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package nwk

import "testing"

func TestNodeSetAddTest(t *testing.T) {
	s := NewNodeSet(10)
	s.Add(0)
	s.Add(9)
	for i := 0; i < 10; i++ {
		want := i == 0 || i == 9
		if got := s.Test(i); got != want {
			t.Fatalf("Test(%d) = %v, want %v", i, got, want)
		}
	}
}

func TestNodeSetString(t *testing.T) {
	s := NewNodeSet(4)
	s.Add(1)
	s.Add(3)
	if got := s.String(); got != ".*.*" {
		t.Fatalf("String() = %q, want .*.*", got)
	}
}

func TestNodeSetUnion(t *testing.T) {
	a := NewNodeSet(4)
	a.Add(0)
	b := NewNodeSet(4)
	b.Add(2)
	u := a.Union(b)
	if !u.Test(0) || !u.Test(2) || u.Test(1) || u.Test(3) {
		t.Fatalf("Union() = %q", u.String())
	}
	// a and b must be unmodified.
	if a.Test(2) || b.Test(0) {
		t.Fatal("Union mutated an operand")
	}
}

func TestNodeSetAddSetInPlace(t *testing.T) {
	a := NewNodeSet(4)
	a.Add(0)
	b := NewNodeSet(4)
	b.Add(3)
	a.AddSet(b)
	if !a.Test(0) || !a.Test(3) {
		t.Fatalf("AddSet result = %q", a.String())
	}
}

func TestNodeSetCountAndComplement(t *testing.T) {
	s := NewNodeSet(5)
	s.Add(1)
	s.Add(2)
	if c := s.Count(); c != 2 {
		t.Fatalf("Count() = %d, want 2", c)
	}
	comp := s.Complement()
	if comp.Count() != 3 {
		t.Fatalf("Complement().Count() = %d, want 3", comp.Count())
	}
	for i := 0; i < 5; i++ {
		if s.Test(i) == comp.Test(i) {
			t.Fatalf("bit %d: s=%v comp=%v should differ", i, s.Test(i), comp.Test(i))
		}
	}
}

func TestNodeSetSmallCapacity(t *testing.T) {
	s := NewNodeSet(0)
	if s.Cap() < 1 {
		t.Fatalf("Cap() = %d, want at least 1", s.Cap())
	}
}
