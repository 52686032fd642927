// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Visitor - called once for each value during a traversal
type Visitor func(Item)

// InOrder - visit left, self, right
func (tree *Tree) InOrder(visit Visitor) {
	InOrderFrom(tree.root, visit)
}

// PreOrder - visit self, left, right
func (tree *Tree) PreOrder(visit Visitor) {
	PreOrderFrom(tree.root, visit)
}

// PostOrder - visit left, right, self
func (tree *Tree) PostOrder(visit Visitor) {
	PostOrderFrom(tree.root, visit)
}

// LevelOrder - visit breadth first, each level left to right
func (tree *Tree) LevelOrder(visit Visitor) {
	LevelOrderFrom(tree.root, visit)
}

// InOrderValues - values in ascending order
func (tree *Tree) InOrderValues() []Item {
	return collect(tree.count, func(v Visitor) { InOrderFrom(tree.root, v) })
}

// PreOrderValues - values in pre-order
func (tree *Tree) PreOrderValues() []Item {
	return collect(tree.count, func(v Visitor) { PreOrderFrom(tree.root, v) })
}

// PostOrderValues - values in post-order
func (tree *Tree) PostOrderValues() []Item {
	return collect(tree.count, func(v Visitor) { PostOrderFrom(tree.root, v) })
}

// LevelOrderValues - values in breadth first order
func (tree *Tree) LevelOrderValues() []Item {
	return collect(tree.count, func(v Visitor) { LevelOrderFrom(tree.root, v) })
}

// InOrderFrom - in-order traversal of a sub-tree
func InOrderFrom(p *Node, visit Visitor) {
	if nil == p {
		return
	}
	InOrderFrom(p.left, visit)
	visit(p.value)
	InOrderFrom(p.right, visit)
}

// PreOrderFrom - pre-order traversal of a sub-tree
func PreOrderFrom(p *Node, visit Visitor) {
	if nil == p {
		return
	}
	visit(p.value)
	PreOrderFrom(p.left, visit)
	PreOrderFrom(p.right, visit)
}

// PostOrderFrom - post-order traversal of a sub-tree
func PostOrderFrom(p *Node, visit Visitor) {
	if nil == p {
		return
	}
	PostOrderFrom(p.left, visit)
	PostOrderFrom(p.right, visit)
	visit(p.value)
}

// LevelOrderFrom - breadth first traversal of a sub-tree using a FIFO
func LevelOrderFrom(p *Node, visit Visitor) {
	if nil == p {
		return
	}
	queue := []*Node{p}
	for len(queue) > 0 {
		n := queue[0]
		queue[0] = nil
		queue = queue[1:]

		visit(n.value)

		if nil != n.left {
			queue = append(queue, n.left)
		}
		if nil != n.right {
			queue = append(queue, n.right)
		}
	}
}

// run a traversal and gather its values
func collect(hint int, traverse func(Visitor)) []Item {
	values := make([]Item, 0, hint)
	traverse(func(value Item) {
		values = append(values, value)
	})
	return values
}
