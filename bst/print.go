// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
	"io"
	"strings"
)

// box drawing pieces for the print routine
const (
	upperBranch = "┌── "
	lowerBranch = "└── "
	guide       = "│   "
	blank       = "    "
)

// Print - display a graphic representation of the tree, right
// sub-trees above their parent and left sub-trees below
//
// returns the number of levels printed
func (tree *Tree) Print(w io.Writer) int {
	return printTree(w, tree.root, "", true)
}

// String - the Print output as a string
func (tree *Tree) String() string {
	s := strings.Builder{}
	tree.Print(&s)
	return s.String()
}

// internal print - returns the maximum depth of the tree
func printTree(w io.Writer, p *Node, prefix string, isLeft bool) int {
	if nil == p {
		return 0
	}
	rd := 0
	ld := 0
	if nil != p.right {
		t := blank
		if isLeft {
			t = guide
		}
		rd = printTree(w, p.right, prefix+t, false)
	}
	if isLeft {
		fmt.Fprintf(w, "%s%s%v\n", prefix, lowerBranch, p.value)
	} else {
		fmt.Fprintf(w, "%s%s%v\n", prefix, upperBranch, p.value)
	}
	if nil != p.left {
		t := guide
		if isLeft {
			t = blank
		}
		ld = printTree(w, p.left, prefix+t, true)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
