// Copyright 2024 The Bintree Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bintree

import "iter"

// LevelOrder returns the values in breadth-first order: by increasing
// depth, and left to right within a depth.
func LevelOrder(root *Node) iter.Seq[int] {
	return func(yield func(int) bool) {
		if root == nil {
			return
		}
		queue := []*Node{root}
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			if !yield(n.Value) {
				return
			}
			if n.Left != nil {
				queue = append(queue, n.Left)
			}
			if n.Right != nil {
				queue = append(queue, n.Right)
			}
		}
	}
}

// LevelLeftToRight returns the values at exactly the given 1-based
// level, left to right. The root is level 1. A level outside
// [1, Height(root)] yields an empty sequence, not an error.
func LevelLeftToRight(root *Node, level int) iter.Seq[int] {
	return func(yield func(int) bool) {
		walkLevel(root, level, false /* rightFirst */, yield)
	}
}

// LevelRightToLeft is LevelLeftToRight with the subtrees visited in the
// opposite order; its result is the left-to-right sequence reversed.
func LevelRightToLeft(root *Node, level int) iter.Seq[int] {
	return func(yield func(int) bool) {
		walkLevel(root, level, true /* rightFirst */, yield)
	}
}

// walkLevel emits the values at the given level below n, in the
// direction selected by rightFirst. It returns false once yield does,
// letting the recursion unwind without emitting further values.
func walkLevel(n *Node, level int, rightFirst bool, yield func(int) bool) bool {
	if n == nil || level < 1 {
		return true
	}
	if level == 1 {
		return yield(n.Value)
	}
	a, b := n.Left, n.Right
	if rightFirst {
		a, b = b, a
	}
	return walkLevel(a, level-1, rightFirst, yield) &&
		walkLevel(b, level-1, rightFirst, yield)
}

// ZigZag returns the values level by level, with odd levels emitted
// left to right and even levels right to left, starting left to right
// at the root. It is the concatenation of LevelLeftToRight and
// LevelRightToLeft results for levels 1 through Height(root),
// alternating.
func ZigZag(root *Node) iter.Seq[int] {
	return func(yield func(int) bool) {
		height := Height(root)
		rightFirst := false
		for level := 1; level <= height; level++ {
			if !walkLevel(root, level, rightFirst, yield) {
				return
			}
			rightFirst = !rightFirst
		}
	}
}
