// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
)

const separator = "----------------------------------"

// populate, display, rebuild if needed and list the traversals
func run(w io.Writer, log *logger.L, src Source, conf *Configuration) (*bst.Tree, error) {

	tree := bst.New()
	for i := 0; i < conf.Count; i += 1 {
		v := src.Next()
		log.Debugf("insert: %d", v)
		tree.Insert(bst.Int(v))
	}
	log.Infof("inserted: %d  height: %d", tree.Count(), tree.Height())

	tree.Print(w)

	if conf.Rebalance && !tree.IsBalanced() {
		log.Infof("left height: %d  right height: %d", bst.Height(tree.Root().Left()), bst.Height(tree.Root().Right()))
		fmt.Fprintln(w, separator)

		tree.Rebalance()
		log.Infof("rebuilt height: %d", tree.Height())

		tree.Print(w)
	}

	if tree.IsBalanced() {
		fmt.Fprintln(w, "Tree is balanced")
	} else {
		log.Warn("tree is not balanced")
		fmt.Fprintln(w, "Tree isn't balanced")
	}

	printValue := func(value bst.Item) {
		fmt.Fprintln(w, value)
	}

	fmt.Fprintln(w, "Inorder")
	tree.InOrder(printValue)
	fmt.Fprintln(w, "Preorder")
	tree.PreOrder(printValue)
	fmt.Fprintln(w, "Postorder")
	tree.PostOrder(printValue)

	if !tree.CheckOrder() {
		return tree, fault.ErrInvalidOrder
	}
	return tree, nil
}
