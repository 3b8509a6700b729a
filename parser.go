// Copyright 2013 Sonia Keys
// License MIT: http://opensource.org/licenses/MIT

package nwk

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// parser.go
//
// Parser reads Newick-encoded trees, grounded on
// original_source/src/parser.y: recursive-descent over the grammar
//
//	tree       := subtree ';'
//	subtree    := leaf | internal
//	internal   := '(' subtree (',' subtree)* ')' label? length?
//	leaf       := label? length?
//	length     := ':' number
//
// A Parser is a stream, not a one-shot call: Next reads exactly one tree
// (up to and including its terminating ';') and can be called repeatedly
// on a concatenated stream of many trees, matching the original's
// behavior of treating a whole file as a sequence of independent trees.

// Parser reads a stream of Newick-encoded trees.
type Parser struct {
	lex *Lexer
	tok token
}

// NewParser returns a Parser reading Newick text from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{lex: NewLexer(r)}
}

func (p *Parser) advance() error {
	t, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

// Next parses and returns the next tree in the stream. When the stream is
// exhausted it returns a nil *Tree and an error wrapping ErrEmptyInput;
// callers loop "for { t, err := p.Next(); if errors.Is(err, nwk.ErrEmptyInput) { break } ... }".
// Any other error wraps ErrParse and leaves the Parser's position
// undefined for further use.
func (p *Parser) Next() (*Tree, error) {
	if err := p.advance(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if p.tok.kind == tokEOF {
		return nil, ErrEmptyInput
	}
	t := &Tree{}
	root, err := p.parseSubtree(t)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if p.tok.kind != tokSemicolon {
		return nil, fmt.Errorf("%w: expected ';'", ErrParse)
	}
	t.root = root
	return t, nil
}

func (p *Parser) parseSubtree(t *Tree) (NodeID, error) {
	id := t.newNode()
	if p.tok.kind == tokLParen {
		if err := p.advance(); err != nil {
			return noNode, err
		}
		for {
			child, err := p.parseSubtree(t)
			if err != nil {
				return noNode, err
			}
			if err := t.AddChild(id, child); err != nil {
				return noNode, err
			}
			if p.tok.kind == tokComma {
				if err := p.advance(); err != nil {
					return noNode, err
				}
				continue
			}
			break
		}
		if p.tok.kind != tokRParen {
			return noNode, fmt.Errorf("expected ')'")
		}
		if err := p.advance(); err != nil {
			return noNode, err
		}
	}
	if p.tok.kind == tokLabel {
		t.node(id).SetLabel(p.tok.text)
		if err := p.advance(); err != nil {
			return noNode, err
		}
	}
	if p.tok.kind == tokNumber {
		v, ok := parseLength(p.tok.text)
		if !ok {
			return noNode, fmt.Errorf("invalid edge length %q", p.tok.text)
		}
		t.node(id).SetLengthString(p.tok.text, v)
		if err := p.advance(); err != nil {
			return noNode, err
		}
	}
	return id, nil
}

// ParseString parses a single Newick-encoded tree from s.
func ParseString(s string) (*Tree, error) {
	return NewParser(strings.NewReader(s)).Next()
}

// ParseAll reads every tree from r until the stream is exhausted.
func ParseAll(r io.Reader) ([]*Tree, error) {
	p := NewParser(r)
	var trees []*Tree
	for {
		t, err := p.Next()
		if err != nil {
			if errors.Is(err, ErrEmptyInput) {
				return trees, nil
			}
			return trees, err
		}
		trees = append(trees, t)
	}
}
