// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Delete - removes the shallowest node holding value
//
// returns false if the value is not in the tree
func (tree *Tree) Delete(value Item) bool {
	pp := locate(value, &tree.root)
	if nil == *pp { // value not in tree
		return false
	}
	remove(pp)
	tree.count -= 1
	return true
}

// DeleteNode - removes a node previously obtained from this tree
//
// the node is located from the root first, so a nil node or a node
// belonging to some other tree is ignored and false is returned
func (tree *Tree) DeleteNode(node *Node) bool {
	if nil == node {
		return false
	}
	pp := link(node, &tree.root)
	if nil == pp {
		return false
	}
	remove(pp)
	tree.count -= 1
	return true
}

// find the link that owns a specific node, nil if it is not in the
// sub-tree; both sides are searched on equal values since a rebuild
// can leave duplicates on the right
func link(node *Node, pp **Node) **Node {
	if nil == *pp {
		return nil
	}
	if node == *pp {
		return pp
	}
	c := node.value.Compare((*pp).value)
	if c >= 0 {
		if r := link(node, &(*pp).right); nil != r {
			return r
		}
	}
	if c <= 0 {
		return link(node, &(*pp).left)
	}
	return nil
}

// find the link that owns the first node holding value, the link
// holds nil if there is no such node
func locate(value Item, pp **Node) **Node {
	for nil != *pp {
		c := value.Compare((*pp).value)
		switch {
		case 0 == c:
			return pp
		case c > 0:
			pp = &(*pp).right
		default:
			pp = &(*pp).left
		}
	}
	return pp
}

// internal delete routine
//
// a leaf is unlinked, a node with a single child is replaced by that
// child and a node with two children takes the highest value from its
// left sub-tree, whose node is then removed in turn
func remove(pp **Node) {
	q := *pp
	switch {
	case nil == q.left && nil == q.right:
		*pp = nil
	case nil == q.right:
		*pp = q.left
	case nil == q.left:
		*pp = q.right
	default:
		rr := &q.left
		for nil != (*rr).right {
			rr = &(*rr).right
		}
		q.value = (*rr).value
		remove(rr)
	}
}
