// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package nwk

import "testing"

func nodeByLabel(t *testing.T, tr *Tree, label string) NodeID {
	t.Helper()
	ids, err := tr.NodesFromLabels([]string{label})
	if err != nil {
		t.Fatalf("label %q not found: %v", label, err)
	}
	return ids[0]
}

func TestLeafCountAndLabels(t *testing.T) {
	tr := mustParse(t, "((A,B)D,C)R;")
	if tr.LeafCount() != 3 {
		t.Fatalf("LeafCount() = %d, want 3", tr.LeafCount())
	}
	labels := tr.LeafLabels()
	if len(labels) != 3 {
		t.Fatalf("LeafLabels() = %v", labels)
	}
}

func TestIsBinary(t *testing.T) {
	bin := mustParse(t, "((A,B)D,C)R;")
	if !bin.IsBinary() {
		t.Fatal("IsBinary() = false for a strictly binary tree")
	}
	tern := mustParse(t, "(A,B,C)R;")
	if tern.IsBinary() {
		t.Fatal("IsBinary() = true for a ternary root")
	}
}

func TestIsStairNode(t *testing.T) {
	tr := mustParse(t, "((A,B)D,C)R;")
	d := nodeByLabel(t, tr, "D")
	if tr.IsStairNode(d) {
		t.Fatal("D should not be a stair node: both its children are leaves")
	}
	if !tr.HasStairNodes() {
		// root R has children D (internal) and C (leaf): exactly one leaf.
		t.Fatal("HasStairNodes() = false, want true (root is a stair node)")
	}
}

func TestDepthAndMaxDepth(t *testing.T) {
	tr := mustParse(t, "((A,B)D,C)R;")
	a := nodeByLabel(t, tr, "A")
	if d := tr.Depth(a); d != 2 {
		t.Fatalf("Depth(A) = %d, want 2", d)
	}
	c := nodeByLabel(t, tr, "C")
	if d := tr.Depth(c); d != 1 {
		t.Fatalf("Depth(C) = %d, want 1", d)
	}
	if tr.MaxDepth() != 2 {
		t.Fatalf("MaxDepth() = %d, want 2", tr.MaxDepth())
	}
}

func TestIsMonophyletic(t *testing.T) {
	tr := mustParse(t, "((A,B)D,C)R;")
	a, b := nodeByLabel(t, tr, "A"), nodeByLabel(t, tr, "B")
	if !tr.IsMonophyletic([]NodeID{a, b}) {
		t.Fatal("{A,B} should be monophyletic")
	}
	c := nodeByLabel(t, tr, "C")
	if tr.IsMonophyletic([]NodeID{a, c}) {
		t.Fatal("{A,C} should not be monophyletic")
	}
}

// TestCollapsePureClades reproduces the worked example: an inner pure
// clade (g, all-C children) collapses first in the post-order pass,
// which makes its parent (h) pure in turn, all within a single call.
func TestCollapsePureClades(t *testing.T) {
	const in = "((A:1,B:1.0)f:2.0,(C:1,(C:1,C:1)g:2)h:3)i;"
	const want = "((A:1,B:1.0)f:2.0,C:3)i;"
	tr := mustParse(t, in)
	n := tr.CollapsePureClades()
	if n != 2 {
		t.Fatalf("CollapsePureClades() collapsed %d nodes, want 2 (g then h)", n)
	}
	if got := tr.String(); got != want {
		t.Fatalf("CollapsePureClades() result = %q, want %q", got, want)
	}
}

func TestCollapsePureCladesNoOpOnSecondPass(t *testing.T) {
	tr := mustParse(t, "((A:1,B:1.0)f:2.0,(C:1,(C:1,C:1)g:2)h:3)i;")
	tr.CollapsePureClades()
	if n := tr.CollapsePureClades(); n != 0 {
		t.Fatalf("second CollapsePureClades() pass collapsed %d nodes, want 0", n)
	}
}

// TestReroot reproduces the worked reroot-on-g example end to end.
func TestReroot(t *testing.T) {
	const in = "((A:1,B:1.0)f:2.0,(C:1,(D:1,E:1)g:2)h:3)i;"
	const want = "((D:1,E:1)g:1,(C:1,(A:1,B:1.0)f:5)h:1);"
	tr := mustParse(t, in)
	g := nodeByLabel(t, tr, "g")
	if err := tr.Reroot(g); err != nil {
		t.Fatal(err)
	}
	if got := tr.String(); got != want {
		t.Fatalf("Reroot(g) result = %q, want %q", got, want)
	}
}

func TestRerootNoOpIfAlreadyRoot(t *testing.T) {
	tr := mustParse(t, "(A,B)R;")
	before := tr.String()
	if err := tr.Reroot(tr.Root()); err != nil {
		t.Fatal(err)
	}
	if got := tr.String(); got != before {
		t.Fatalf("Reroot(root) changed tree: %q -> %q", before, got)
	}
}

func TestRerootLax(t *testing.T) {
	tr := mustParse(t, "((A,B)D,(C,E)F)R;")
	if err := tr.RerootLax([]string{"A", "B"}); err != nil {
		t.Fatal(err)
	}
	// after rerooting on the {A,B} clade, A and B should be on one side
	// of the new root and C, E on the other.
	leaves := tr.LeafLabels()
	if len(leaves) != 4 {
		t.Fatalf("LeafLabels() after RerootLax = %v", leaves)
	}
	if got, want := tr.String(), "((A,B)D,(C,E)F);"; got != want {
		t.Fatalf("RerootLax(A,B) result = %q, want %q", got, want)
	}
}

func TestIngroupLeaves(t *testing.T) {
	tr := mustParse(t, "((A,B)D,(C,E)F)R;")
	in := tr.IngroupLeaves([]string{"A", "B"})
	if len(in) != 2 {
		t.Fatalf("IngroupLeaves len = %d, want 2", len(in))
	}
	for _, id := range in {
		lbl := labelOf(t, tr, id)
		if lbl == "A" || lbl == "B" {
			t.Fatalf("IngroupLeaves included excluded label %q", lbl)
		}
	}
}
