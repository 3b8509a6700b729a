// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package nwk

import "testing"

func labelsOf(t *testing.T, tr *Tree, ids []NodeID) []string {
	t.Helper()
	out := make([]string, len(ids))
	for i, id := range ids {
		n, err := tr.Node(id)
		if err != nil {
			t.Fatal(err)
		}
		out[i] = n.Label()
	}
	return out
}

func TestPostOrder(t *testing.T) {
	tr := mustParse(t, "((A,B)D,C)R;")
	got := labelsOf(t, tr, tr.PostOrder())
	want := []string{"A", "B", "D", "C", "R"}
	if len(got) != len(want) {
		t.Fatalf("PostOrder labels = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PostOrder labels = %v, want %v", got, want)
		}
	}
}

func TestPostOrderCacheInvalidatedByEdit(t *testing.T) {
	tr := mustParse(t, "(A,B)R;")
	first := tr.PostOrder()
	if len(first) != 3 {
		t.Fatalf("len(PostOrder()) = %d, want 3", len(first))
	}
	newLeaf := tr.NewNode()
	nn, _ := tr.Node(newLeaf)
	nn.SetLabel("Z")
	if err := tr.AddChild(tr.Root(), newLeaf); err != nil {
		t.Fatal(err)
	}
	second := tr.PostOrder()
	if len(second) != 4 {
		t.Fatalf("len(PostOrder()) after AddChild = %d, want 4", len(second))
	}
}

func TestTwoIteratorsIndependent(t *testing.T) {
	tr := mustParse(t, "(A,B)R;")
	it1 := NewRnodeIterator(tr, tr.Root())
	it2 := NewRnodeIterator(tr, tr.Root())
	id1, ok1 := it1.Next()
	if !ok1 {
		t.Fatal("it1.Next() exhausted immediately")
	}
	// it2 should still start from the beginning, unaffected by it1's walk.
	id2, ok2 := it2.Next()
	if !ok2 || id1 != id2 {
		t.Fatalf("it2.Next() = %v, %v, want same first node as it1 (%v)", id2, ok2, id1)
	}
}

func TestLeafLabelMap(t *testing.T) {
	tr := mustParse(t, "((A,B)D,C)R;")
	m := tr.LeafLabelMap(tr.Root())
	if m.Len() != 3 {
		t.Fatalf("LeafLabelMap len = %d, want 3", m.Len())
	}
	for _, l := range []string{"A", "B", "C"} {
		if _, ok := m.Get(l); !ok {
			t.Fatalf("LeafLabelMap missing %q", l)
		}
	}
}

func TestSubtreePostOrderDoesNotTouchCache(t *testing.T) {
	tr := mustParse(t, "((A,B)D,C)R;")
	_ = tr.PostOrder() // populate whole-tree cache
	var d NodeID
	for _, id := range tr.PostOrder() {
		n, _ := tr.Node(id)
		if n.Label() == "D" {
			d = id
		}
	}
	sub := labelsOf(t, tr, tr.SubtreePostOrder(d))
	want := []string{"A", "B", "D"}
	for i := range want {
		if sub[i] != want[i] {
			t.Fatalf("SubtreePostOrder = %v, want %v", sub, want)
		}
	}
}
