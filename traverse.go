// Copyright 2024 The Bintree Authors. All rights reserved. Use of this
// source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bintree

import "iter"

// The depth-first walks below are explicit-stack state machines: the
// stack holds the pending portion of the walk, and a consumer breaking
// out of the range abandons the walk without unwinding a call chain.

// PreOrder returns the values of the tree rooted at root in pre-order:
// each node before its left subtree, and the left subtree before the
// right. An empty tree yields an empty sequence.
func PreOrder(root *Node) iter.Seq[int] {
	return func(yield func(int) bool) {
		var stack []*Node
		if root != nil {
			stack = append(stack, root)
		}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.Value) {
				return
			}
			// Right is pushed first so that left pops first.
			if n.Right != nil {
				stack = append(stack, n.Right)
			}
			if n.Left != nil {
				stack = append(stack, n.Left)
			}
		}
	}
}

// InOrder returns the values in in-order: left subtree, node, right
// subtree. For a binary search tree this is ascending key order.
func InOrder(root *Node) iter.Seq[int] {
	return func(yield func(int) bool) {
		var stack []*Node
		n := root
		for n != nil || len(stack) > 0 {
			// Push the left spine of the current subtree.
			for ; n != nil; n = n.Left {
				stack = append(stack, n)
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(top.Value) {
				return
			}
			n = top.Right
		}
	}
}

// ReverseInOrder returns the values in reverse in-order: right subtree,
// node, left subtree. The result is InOrder read backwards.
func ReverseInOrder(root *Node) iter.Seq[int] {
	return func(yield func(int) bool) {
		var stack []*Node
		n := root
		for n != nil || len(stack) > 0 {
			// Mirror of InOrder: push the right spine instead.
			for ; n != nil; n = n.Right {
				stack = append(stack, n)
			}
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(top.Value) {
				return
			}
			n = top.Left
		}
	}
}

// PostOrder returns the values in post-order: left subtree, right
// subtree, then the node. The root is emitted last.
func PostOrder(root *Node) iter.Seq[int] {
	return func(yield func(int) bool) {
		var stack []*Node
		// last is the most recently emitted node; a node on the stack
		// whose right child equals last has both subtrees done.
		var last *Node
		n := root
		for n != nil || len(stack) > 0 {
			for ; n != nil; n = n.Left {
				stack = append(stack, n)
			}
			top := stack[len(stack)-1]
			if top.Right != nil && top.Right != last {
				n = top.Right
				continue
			}
			stack = stack[:len(stack)-1]
			if !yield(top.Value) {
				return
			}
			last = top
		}
	}
}
