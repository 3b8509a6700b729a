// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Command nwreroot rewrites each Newick tree on stdin, rerooted on the
// clade formed by a comma-separated list of outgroup labels, and writes
// the result to stdout. Grounded on original_source/src/reroot.c.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/soniakeys/nwk"
)

func main() {
	outgroup := flag.String("o", "", "comma-separated outgroup labels (required)")
	lax := flag.Bool("l", false, "use the lax (LCA-based) reroot instead of requiring an exact clade")
	flag.Parse()

	if *outgroup == "" {
		fmt.Fprintln(os.Stderr, "nwreroot: -o outgroup labels required")
		os.Exit(1)
	}
	labels := strings.Split(*outgroup, ",")

	trees, err := nwk.ParseAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nwreroot: %v\n", err)
		os.Exit(1)
	}

	for _, t := range trees {
		if err := rerootOne(t, labels, *lax); err != nil {
			fmt.Fprintf(os.Stderr, "nwreroot: %v\n", err)
			os.Exit(1)
		}
		if _, err := t.WriteTo(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "nwreroot: %v\n", err)
			os.Exit(1)
		}
		fmt.Println()
	}
}

func rerootOne(t *nwk.Tree, labels []string, lax bool) error {
	if lax {
		return t.RerootLax(labels)
	}
	ids, err := t.NodesFromLabels(labels)
	if err != nil {
		return err
	}
	if !t.IsMonophyletic(ids) {
		return fmt.Errorf("outgroup %v is not monophyletic; rerun with -l", labels)
	}
	anc, err := t.LCAFromNodes(ids)
	if err != nil {
		return err
	}
	return t.Reroot(anc)
}
