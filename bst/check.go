// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// CheckOrder - check the ordering of every node
//
// each value in a left sub-tree must be <= its ancestor and each value
// in a right sub-tree must be >= its ancestor
func (tree *Tree) CheckOrder() bool {
	return checkOrder(tree.root, nil, nil)
}

// internal: consistency checker, values must lie in [low, high]
// where a nil bound is unlimited
func checkOrder(p *Node, low Item, high Item) bool {
	if nil == p {
		return true
	}
	if nil != low && p.value.Compare(low) < 0 {
		return false
	}
	if nil != high && p.value.Compare(high) > 0 {
		return false
	}
	if !checkOrder(p.left, low, p.value) {
		return false
	}
	return checkOrder(p.right, p.value, high)
}
