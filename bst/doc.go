// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - an unbalanced binary search tree that is rebalanced
// on request by rebuilding from its sorted contents
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Values strictly greater than a node go to its right sub-tree, all
// others (including equal values) go to the left, so duplicates are
// kept as separate nodes.  Insertion never rotates; balance is only
// restored by Rebalance, which flattens the tree with an in-order
// traversal and rebuilds it by midpoint recursion.  A rebuild may
// place duplicates of a node in its right sub-tree, so the ordering
// kept by the tree is: left <= node <= right.
//
// Each node is owned by exactly one parent link (or the tree root)
// and there are no parent pointers.
package bst
