// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package nwk

import "errors"

// Sentinel errors for the discriminated error kinds of the engine. Callers
// distinguish them with errors.Is; wrapped detail (a label, a node count)
// is added with fmt.Errorf("...: %w", ...) at the call site.
var (
	// ErrParse is returned by the Newick parser for syntactically invalid
	// input. It is never returned together with a non-nil *Tree.
	ErrParse = errors.New("nwk: parse error")

	// ErrNoMatchingNodes is returned by the LCA-from-labels family when
	// none of the requested labels match any node in the tree.
	ErrNoMatchingNodes = errors.New("nwk: no matching nodes")

	// ErrMalformedMap is returned by the bipartition/support engine when a
	// replicate tree's leaf label set differs from the reference tree's,
	// or when AttributeSupport is given a non-positive replicate count.
	// Empty leaf labels are not checked for.
	ErrMalformedMap = errors.New("nwk: malformed leaf map")

	// ErrNotInTree is returned by operations given a NodeID that does not
	// belong to the tree they were called on.
	ErrNotInTree = errors.New("nwk: node does not belong to tree")

	// ErrNodeIsRoot is returned by operations that require a non-root
	// node (splice-out, unlink, insert-node-above, swap-with-parent's
	// child side).
	ErrNodeIsRoot = errors.New("nwk: node is root")

	// ErrParentNotRoot is returned by SwapNodes when called on a node
	// whose parent is not the tree's current root, which is the
	// operation's precondition.
	ErrParentNotRoot = errors.New("nwk: swap requires parent to be the tree's root")

	// ErrNodeIsLeaf is returned by operations that require an interior
	// node (splice-out).
	ErrNodeIsLeaf = errors.New("nwk: node is a leaf")

	// ErrHasParent is returned by AddChild when the child already has a
	// parent; add-child requires a previously unattached node.
	ErrHasParent = errors.New("nwk: node already has a parent")

	// ErrIndexRange is returned by InsertChild for an index outside
	// [-1, child_count].
	ErrIndexRange = errors.New("nwk: child index out of range")

	// ErrEmptyInput marks ordinary, non-error end of a Newick stream; it
	// is the Go analogue of the C parser's PARSER_STATUS_EMPTY. Callers
	// loop "parse, process, repeat" until Parser.Next returns this (see
	// parser.go); compare with errors.Is.
	ErrEmptyInput = errors.New("nwk: no more trees")
)

// Status mirrors the discriminated parser status of the original C parser
// (ok, empty, parse-error, alloc-error). It is mostly informational; callers that just
// want "give me trees until there are none" can instead loop on the error
// returned by Parser.Next and compare it with errors.Is(err, ErrEmptyInput).
type Status int

const (
	StatusOK Status = iota
	StatusEmpty
	StatusParseError
	StatusAllocError
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusEmpty:
		return "empty"
	case StatusParseError:
		return "parse-error"
	case StatusAllocError:
		return "alloc-error"
	default:
		return "unknown"
	}
}
