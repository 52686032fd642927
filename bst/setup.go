// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Node - a single value with its two owned sub-trees
type Node struct {
	left  *Node // left sub-tree: values <= value
	right *Node // right sub-tree: values > value, or >= after a rebuild
	value Item
}

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Value - read the value from a node
func (p *Node) Value() Item {
	return p.value
}

// Left - the left sub-tree, nil if absent
func (p *Node) Left() *Node {
	return p.left
}

// Right - the right sub-tree, nil if absent
func (p *Node) Right() *Node {
	return p.right
}

// IsLeaf - true if the node has no children
func (p *Node) IsLeaf() bool {
	return nil == p.left && nil == p.right
}

// Level - returns all nodes at a specific depth of the tree, left to right
func (tree *Tree) Level(depth int) []*Node {
	if nil == tree.root || depth < 0 {
		return []*Node{}
	}
	return tree.root.childrenByDepth(depth)
}

func (p *Node) childrenByDepth(depth int) []*Node {
	if 0 == depth {
		return []*Node{p}
	}
	nodes := []*Node{}
	if nil != p.left {
		nodes = append(nodes, p.left.childrenByDepth(depth-1)...)
	}
	if nil != p.right {
		nodes = append(nodes, p.right.childrenByDepth(depth-1)...)
	}
	return nodes
}
