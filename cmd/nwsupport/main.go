// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Command nwsupport labels every internal node of a reference Newick tree
// with its bootstrap support percentage, computed from a set of
// replicate trees read from a separate file. Grounded on
// original_source/src/support.c.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/soniakeys/nwk"
)

func main() {
	replicatesPath := flag.String("b", "", "path to a file of bootstrap replicate trees (required)")
	minSupport := flag.Float64("collapse", -1, "if >= 0, collapse clades below this support percentage")
	flag.Parse()

	if *replicatesPath == "" {
		fmt.Fprintln(os.Stderr, "nwsupport: -b replicate tree file required")
		os.Exit(1)
	}

	reference, err := nwk.NewParser(os.Stdin).Next()
	if err != nil {
		fmt.Fprintf(os.Stderr, "nwsupport: reading reference tree: %v\n", err)
		os.Exit(1)
	}

	f, err := os.Open(*replicatesPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nwsupport: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	replicates, err := nwk.ParseAll(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nwsupport: reading replicates: %v\n", err)
		os.Exit(1)
	}
	if len(replicates) == 0 {
		fmt.Fprintln(os.Stderr, "nwsupport: no replicate trees found")
		os.Exit(1)
	}

	counts, err := nwk.ComputeBipartitions(reference, replicates)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nwsupport: %v\n", err)
		os.Exit(1)
	}
	if err := reference.AttributeSupport(counts, len(replicates)); err != nil {
		fmt.Fprintf(os.Stderr, "nwsupport: %v\n", err)
		os.Exit(1)
	}

	if *minSupport >= 0 {
		n := reference.CollapseLowSupport(*minSupport)
		fmt.Fprintf(os.Stderr, "nwsupport: collapsed %d clades below %.0f%% support\n", n, *minSupport)
	}

	if _, err := reference.WriteTo(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "nwsupport: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()
}
