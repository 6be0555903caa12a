// Copyright 2024 The Bintree Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"fmt"

	"github.com/cockroachdb/bintree"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [tree]",
	Short: "print the values at each level of a tree",
	Long: `
Print a table with one row per level of the tree, showing the values
at that level in left-to-right and right-to-left order.
`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runLevels,
	SilenceUsage: true,
}

func runLevels(cmd *cobra.Command, args []string) error {
	root, err := treeArg(args)
	if err != nil {
		return err
	}
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"level", "left to right", "right to left"})
	for level := 1; level <= bintree.Height(root); level++ {
		table.Append([]string{
			fmt.Sprint(level),
			formatSeq(bintree.LevelLeftToRight(root, level)),
			formatSeq(bintree.LevelRightToLeft(root, level)),
		})
	}
	table.Render()
	return nil
}
