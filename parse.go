// Copyright 2024 The Bintree Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bintree

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/cockroachdb/errors"
)

// Parse builds a tree from its debug notation:
//
//	tree := "." | INT | "(" INT tree tree ")"
//
// "." is the empty tree, a bare integer is a leaf, and the
// parenthesized form gives a node's value followed by its left and
// right subtrees. For example, "(1 (2 4 5) 3)" denotes
//
//	    1
//	   / \
//	  2   3
//	 / \
//	4   5
//
// Node.String renders the same notation. The notation is intended for
// tests and debug input, not as a persisted format.
func Parse(s string) (_ *Node, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.CombineErrors(err, errors.Wrapf(errFromPanic(r), "parsing tree %q", s))
		}
	}()
	p := treeParser{tokens: tokenize(s)}
	n := p.tree()
	if tok := p.next(); tok != "" {
		panic(errors.Errorf("unexpected trailing %q", tok))
	}
	return n, nil
}

func errFromPanic(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return errors.Errorf("%v", r)
}

// treeParser consumes the token stream produced by tokenize. Its
// methods panic on malformed input; Parse recovers the panic into an
// error.
type treeParser struct {
	tokens []string
}

// tokenize splits the input into "(", ")", "." and value tokens.
// Whitespace separates tokens and is otherwise ignored.
func tokenize(s string) []string {
	isSep := func(r rune) bool {
		return r == '(' || r == ')' || r == '.' || unicode.IsSpace(r)
	}
	var tokens []string
	rs := []rune(s)
	for i := 0; i < len(rs); {
		switch r := rs[i]; {
		case unicode.IsSpace(r):
			i++
		case r == '(' || r == ')' || r == '.':
			tokens = append(tokens, string(r))
			i++
		default:
			j := i + 1
			for j < len(rs) && !isSep(rs[j]) {
				j++
			}
			tokens = append(tokens, string(rs[i:j]))
			i = j
		}
	}
	return tokens
}

// next consumes and returns the next token, or "" when exhausted.
func (p *treeParser) next() string {
	if len(p.tokens) == 0 {
		return ""
	}
	tok := p.tokens[0]
	p.tokens = p.tokens[1:]
	return tok
}

// peek returns the next token without consuming it.
func (p *treeParser) peek() string {
	if len(p.tokens) == 0 {
		return ""
	}
	return p.tokens[0]
}

func (p *treeParser) expect(tok string) {
	if next := p.next(); next != tok {
		panic(errors.Errorf("expected %q, got %q", tok, next))
	}
}

func (p *treeParser) int() int {
	tok := p.next()
	v, err := strconv.Atoi(tok)
	if err != nil {
		panic(errors.Errorf("expected value, got %q", tok))
	}
	return v
}

// tree parses one tree production.
func (p *treeParser) tree() *Node {
	switch tok := p.peek(); tok {
	case "":
		panic(errors.New("unexpected end of input"))
	case ".":
		p.next()
		return nil
	case "(":
		p.next()
		n := &Node{Value: p.int()}
		n.Left = p.tree()
		n.Right = p.tree()
		p.expect(")")
		return n
	case ")":
		panic(errors.Errorf("unexpected %q", tok))
	default:
		return &Node{Value: p.int()}
	}
}

// String renders the tree in the notation accepted by Parse: "." for an
// empty tree, a bare value for a leaf, and "(value left right)"
// otherwise.
func (n *Node) String() string {
	var sb strings.Builder
	n.format(&sb)
	return sb.String()
}

func (n *Node) format(sb *strings.Builder) {
	switch {
	case n == nil:
		sb.WriteByte('.')
	case n.Left == nil && n.Right == nil:
		fmt.Fprintf(sb, "%d", n.Value)
	default:
		fmt.Fprintf(sb, "(%d ", n.Value)
		n.Left.format(sb)
		sb.WriteByte(' ')
		n.Right.format(sb)
		sb.WriteByte(')')
	}
}
