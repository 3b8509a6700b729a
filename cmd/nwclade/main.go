// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Command nwclade extracts the monophyletic clade (if one exists) formed
// by a comma-separated list of leaf labels from each Newick tree on
// stdin, writing one extracted clade's Newick text per matching tree.
// Grounded on original_source/src/clade.c.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/soniakeys/nwk"
)

func main() {
	labelsFlag := flag.String("g", "", "comma-separated labels forming the clade (required)")
	flag.Parse()

	if *labelsFlag == "" {
		fmt.Fprintln(os.Stderr, "nwclade: -g clade labels required")
		os.Exit(1)
	}
	labels := strings.Split(*labelsFlag, ",")

	trees, err := nwk.ParseAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nwclade: %v\n", err)
		os.Exit(1)
	}

	for i, t := range trees {
		results := t.MonophyleticSubtrees([][]string{labels})
		res := results[0]
		if !res.OK {
			fmt.Fprintf(os.Stderr, "nwclade: tree %d: no monophyletic clade for %v\n", i, labels)
			continue
		}
		fmt.Println(t.SubtreeString(res.Root))
	}
}
