// Copyright 2024 The Bintree Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package bintree implements read-only traversals over binary trees:
// the four depth-first orders (pre-order, in-order, reverse-in-order,
// post-order), breadth-first level order, single-level directional
// walks, and a zigzag walk, along with height and count queries.
//
// Trees are built by the caller out of Node values and are never
// mutated by this package; any number of traversals can run
// concurrently over the same tree. A nil *Node is the empty tree.
// Every sequence-producing function returns a lazy iter.Seq[int]:
// ranging over the result walks the tree on demand, breaking out of
// the range abandons the rest of the walk, and ranging again restarts
// it from the beginning.
//
// The structure reachable from a root must be finite and acyclic.
// Traversing a cyclic structure does not terminate; this is a
// precondition on the caller, not a condition checked at runtime.
package bintree

// Node is a binary tree vertex: a value and two optional children.
// A subtree is exclusively owned by its parent. The zero value is a
// childless node with value 0.
type Node struct {
	Value int
	Left  *Node
	Right *Node
}

// Height returns the number of levels in the tree rooted at root: 0
// for an empty tree, 1 for a single node, and otherwise one more than
// the taller of the two subtrees.
func Height(root *Node) int {
	if root == nil {
		return 0
	}
	return 1 + max(Height(root.Left), Height(root.Right))
}

// Count returns the number of nodes in the tree rooted at root.
func Count(root *Node) int {
	if root == nil {
		return 0
	}
	return 1 + Count(root.Left) + Count(root.Right)
}
