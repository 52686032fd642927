// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Insert - add a new leaf holding value
//
// values greater than a node descend right, all others descend left;
// no rebalancing is done
func (tree *Tree) Insert(value Item) {
	if nil == tree.root {
		tree.root = &Node{value: value}
	} else {
		insert(value, tree.root)
	}
	tree.count += 1
}

// internal routine for insert
func insert(value Item, p *Node) {
	if value.Compare(p.value) > 0 { // value > p.value
		if nil == p.right {
			p.right = &Node{value: value}
			return
		}
		insert(value, p.right)
		return
	}

	if nil == p.left {
		p.left = &Node{value: value}
		return
	}
	insert(value, p.left)
}
