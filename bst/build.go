// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// BuildFromSorted - construct a sub-tree from values[start..end]
// (inclusive) which must already be in ascending order
//
// the middle element becomes the root and the two halves are built
// recursively, so the heights of sibling sub-trees differ by at most
// one whatever the values are.  Values equal to a node may end up in
// its right sub-tree.  Returns nil when start > end.
func BuildFromSorted(values []Item, start int, end int) *Node {
	if start > end {
		return nil
	}

	mid := (start + end) / 2

	return &Node{
		value: values[mid],
		left:  BuildFromSorted(values, start, mid-1),
		right: BuildFromSorted(values, mid+1, end),
	}
}

// NewFromSorted - create a tree from an ascending list of values
func NewFromSorted(values []Item) *Tree {
	return &Tree{
		root:  BuildFromSorted(values, 0, len(values)-1),
		count: len(values),
	}
}

// Rebalance - rebuild the tree from its in-order contents
func (tree *Tree) Rebalance() {
	values := tree.InOrderValues()
	tree.root = nil
	tree.root = BuildFromSorted(values, 0, len(values)-1)
	tree.count = len(values)
}
