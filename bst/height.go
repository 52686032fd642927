// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"github.com/bitmark-inc/bstree/fault"
)

// Height - longest edge count from a node down to a leaf
//
// an absent node has height -1 so a leaf has height 0
func Height(p *Node) int {
	if nil == p {
		return -1
	}
	if nil == p.left && nil == p.right {
		return 0
	}
	lh := Height(p.left)
	rh := Height(p.right)
	if lh > rh {
		return 1 + lh
	}
	return 1 + rh
}

// Height - height of the root node, -1 for an empty tree
func (tree *Tree) Height() int {
	return Height(tree.root)
}

// Depth - number of edges from root down to the first node holding value
func Depth(value Item, root *Node) (int, error) {
	depth := 0
	for p := root; nil != p; depth += 1 {
		c := value.Compare(p.value)
		switch {
		case c > 0:
			p = p.right
		case c < 0:
			p = p.left
		default:
			return depth, nil
		}
	}
	return -1, fault.ErrNodeNotFound
}

// Depth - depth of a value below the root of the tree
func (tree *Tree) Depth(value Item) (int, error) {
	return Depth(value, tree.root)
}

// IsBalanced - true if the heights of the two sub-trees of the root
// differ by at most one
//
// only the root is checked, see IsBalancedDeep for a full check
func (tree *Tree) IsBalanced() bool {
	if nil == tree.root {
		return true
	}
	lh := Height(tree.root.left)
	rh := Height(tree.root.right)
	if lh > rh+1 {
		return false
	} else if rh > lh+1 {
		return false
	}
	return true
}

// IsBalancedDeep - true if every node in the tree satisfies the
// height condition of IsBalanced
func (tree *Tree) IsBalancedDeep() bool {
	_, ok := balancedHeight(tree.root)
	return ok
}

// returns the height of a sub-tree and whether it is balanced
func balancedHeight(p *Node) (int, bool) {
	if nil == p {
		return -1, true
	}
	lh, ok := balancedHeight(p.left)
	if !ok {
		return 0, false
	}
	rh, ok := balancedHeight(p.right)
	if !ok {
		return 0, false
	}
	if lh > rh+1 || rh > lh+1 {
		return 0, false
	}
	if lh > rh {
		return 1 + lh, true
	}
	return 1 + rh, true
}
