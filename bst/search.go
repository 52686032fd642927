// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Find - search the whole tree for a specific value
//
// returns nil if the value is not present
func (tree *Tree) Find(value Item) *Node {
	return FindFrom(value, tree.root)
}

// Contains - true if the value is present
func (tree *Tree) Contains(value Item) bool {
	return nil != FindFrom(value, tree.root)
}

// FindFrom - search a sub-tree for a specific value
func FindFrom(value Item, from *Node) *Node {
	if nil == from {
		return nil
	}

	c := value.Compare(from.value)
	switch {
	case c > 0: // value > from.value
		return FindFrom(value, from.right)
	case c < 0: // value < from.value
		return FindFrom(value, from.left)
	default:
		return from
	}
}
