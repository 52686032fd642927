// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst_test

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/bstree/bst"
)

func ExampleTree_Rebalance() {
	tree := bst.New()
	for _, v := range []int{1, 2, 3, 4, 5} {
		tree.Insert(bst.Int(v))
	}
	fmt.Println("balanced:", tree.IsBalanced(), "height:", tree.Height())

	tree.Rebalance()
	fmt.Println("balanced:", tree.IsBalanced(), "height:", tree.Height())
	tree.Print(os.Stdout)

	// Output:
	// balanced: false height: 4
	// balanced: true height: 2
	// │       ┌── 5
	// │   ┌── 4
	// └── 3
	//     │   ┌── 2
	//     └── 1
}
