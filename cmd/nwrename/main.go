// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

// Command nwrename rewrites the labels of every Newick tree on stdin,
// either from an old-name/new-name table file (-f) or by a regexp
// substitution (-r/-s), and writes the result to stdout. Grounded on
// original_source/src/rename.c.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/soniakeys/nwk"
)

func main() {
	mapPath := flag.String("f", "", "path to a two-column old-name/new-name table")
	pattern := flag.String("r", "", "regexp to match against each label")
	replacement := flag.String("s", "", "replacement text for -r (may use $1 etc.)")
	flag.Parse()

	if *mapPath == "" && *pattern == "" {
		fmt.Fprintln(os.Stderr, "nwrename: one of -f or -r is required")
		os.Exit(1)
	}
	if *mapPath != "" && *pattern != "" {
		fmt.Fprintln(os.Stderr, "nwrename: -f and -r are mutually exclusive")
		os.Exit(1)
	}

	trees, err := nwk.ParseAll(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nwrename: %v\n", err)
		os.Exit(1)
	}

	var names *nwk.Dict[string]
	var re *regexp.Regexp
	if *mapPath != "" {
		names, err = loadNameMap(*mapPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "nwrename: %v\n", err)
			os.Exit(1)
		}
	} else {
		re, err = regexp.Compile(*pattern)
		if err != nil {
			fmt.Fprintf(os.Stderr, "nwrename: %v\n", err)
			os.Exit(1)
		}
	}

	for _, t := range trees {
		if names != nil {
			t.RenameFromMap(names)
		} else {
			t.RenameByRegexp(re, *replacement)
		}
		if _, err := t.WriteTo(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "nwrename: %v\n", err)
			os.Exit(1)
		}
		fmt.Println()
	}
}

// loadNameMap reads a whitespace-separated "old new" table, one pair per
// line, matching rename.c's expected -f file format.
func loadNameMap(path string) (*nwk.Dict[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	names := nwk.NewDict[string]()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed rename table line: %q", line)
		}
		names.Set(fields[0], fields[1])
	}
	return names, scanner.Err()
}
