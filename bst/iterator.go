// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Min - return the node with the lowest value
func (tree *Tree) Min() *Node {
	return tree.root.first()
}

// internal: lowest node in a sub-tree
func (p *Node) first() *Node {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}

// Max - return the node with the highest value
func (tree *Tree) Max() *Node {
	return tree.root.last()
}

// internal: highest node in a sub-tree
func (p *Node) last() *Node {
	if nil == p {
		return nil
	}
	for nil != p.right {
		p = p.right
	}
	return p
}
