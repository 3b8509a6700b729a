// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package nwk

import "testing"

func TestComputeBipartitionsAndAttributeSupport(t *testing.T) {
	reference := mustParse(t, "((A,B)X,(C,D)Y)R;")

	replicateStrings := []string{
		"((A,B),(C,D));",
		"((A,B),(C,D));",
		"((A,B),(C,D));",
		"((A,C),(B,D));",
		"((A,D),(B,C));",
	}
	var replicates []*Tree
	for _, s := range replicateStrings {
		replicates = append(replicates, mustParse(t, s))
	}

	counts, err := ComputeBipartitions(reference, replicates)
	if err != nil {
		t.Fatal(err)
	}

	if err := reference.AttributeSupport(counts, len(replicates)); err != nil {
		t.Fatal(err)
	}

	x := nodeByLabel(t, reference, "60")
	xn, _ := reference.Node(x)
	leafUnderX := reference.LeafLabelMap(x)
	if leafUnderX.Len() != 2 {
		t.Fatalf("node labeled 60%% covers %d leaves, want 2", leafUnderX.Len())
	}
	_ = xn
}

func TestComputeBipartitionsMismatchedLeafSet(t *testing.T) {
	reference := mustParse(t, "((A,B),(C,D));")
	replicates := []*Tree{mustParse(t, "((A,B),(C,E));")}
	if _, err := ComputeBipartitions(reference, replicates); err != ErrMalformedMap {
		t.Fatalf("ComputeBipartitions(mismatched leaves) = %v, want ErrMalformedMap", err)
	}
}

func TestAttributeSupportRejectsZeroReplicates(t *testing.T) {
	tr := mustParse(t, "((A,B),(C,D));")
	counts, err := ComputeBipartitions(tr, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := tr.AttributeSupport(counts, 0); err != ErrMalformedMap {
		t.Fatalf("AttributeSupport(0 replicates) = %v, want ErrMalformedMap", err)
	}
}

func TestCollapseLowSupport(t *testing.T) {
	reference := mustParse(t, "((A,B)X,(C,D)Y)R;")
	replicateStrings := []string{
		"((A,B),(C,D));",
		"((A,C),(B,D));",
		"((A,D),(B,C));",
	}
	var replicates []*Tree
	for _, s := range replicateStrings {
		replicates = append(replicates, mustParse(t, s))
	}
	counts, err := ComputeBipartitions(reference, replicates)
	if err != nil {
		t.Fatal(err)
	}
	if err := reference.AttributeSupport(counts, len(replicates)); err != nil {
		t.Fatal(err)
	}
	// Support is 1/3 = 33%, below a 50% threshold: both X and Y collapse.
	n := reference.CollapseLowSupport(50)
	if n != 2 {
		t.Fatalf("CollapseLowSupport(50) collapsed %d nodes, want 2", n)
	}
	if reference.LeafCount() != 4 {
		t.Fatalf("LeafCount() after collapse = %d, want 4", reference.LeafCount())
	}
}
