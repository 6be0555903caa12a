// Copyright 2024 The Bintree Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Command bintree prints traversals of a binary tree given in the
// debug notation accepted by bintree.Parse. Without an argument the
// commands operate on a small built-in sample tree.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bintree [command] (flags)",
	Short: "binary tree traversal tool",
	Long:  ``,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		walkCmd,
		levelsCmd,
	)

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
