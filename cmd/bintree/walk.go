// Copyright 2024 The Bintree Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"
	"iter"
	"strings"

	"github.com/cockroachdb/bintree"
	"github.com/spf13/cobra"
)

// sampleTree is used when no tree argument is given:
//
//	    1
//	   / \
//	  2   3
//	 / \
//	4   5
const sampleTree = "(1 (2 4 5) 3)"

var walkCmd = &cobra.Command{
	Use:   "walk [tree]",
	Short: "print every traversal of a tree",
	Long: `
Print each traversal of the tree given in debug notation (".", a bare
value, or "(value left right)"), one traversal per line, along with
the tree's height and node count.
`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runWalk,
	SilenceUsage: true,
}

func runWalk(cmd *cobra.Command, args []string) error {
	root, err := treeArg(args)
	if err != nil {
		return err
	}
	walks := []struct {
		name string
		seq  iter.Seq[int]
	}{
		{"pre-order", bintree.PreOrder(root)},
		{"in-order", bintree.InOrder(root)},
		{"reverse-in-order", bintree.ReverseInOrder(root)},
		{"post-order", bintree.PostOrder(root)},
		{"level-order", bintree.LevelOrder(root)},
		{"zigzag", bintree.ZigZag(root)},
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "tree: %s\n", root)
	for _, w := range walks {
		fmt.Fprintf(out, "%-17s %s\n", w.name+":", formatSeq(w.seq))
	}
	fmt.Fprintf(out, "%-17s %d\n", "height:", bintree.Height(root))
	fmt.Fprintf(out, "%-17s %d\n", "count:", bintree.Count(root))
	return nil
}

// treeArg parses the optional tree argument, falling back to the
// sample tree.
func treeArg(args []string) (*bintree.Node, error) {
	s := sampleTree
	if len(args) == 1 {
		s = args[0]
	}
	return bintree.Parse(s)
}

func formatSeq(seq iter.Seq[int]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for v := range seq {
		if !first {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%d", v)
		first = false
	}
	sb.WriteByte(']')
	return sb.String()
}
