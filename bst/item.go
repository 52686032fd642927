// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"strconv"
	"strings"
)

// Item - a value stored in the tree must implement the Compare function
//
// Compare returns -1, 0, +1 for receiver <, ==, > argument
type Item interface {
	Compare(interface{}) int // for left/right ordering of items
}

// Int - integer item
type Int int

// Compare - integer comparison for the Item interface
func (i Int) Compare(x interface{}) int {
	j := x.(Int)
	switch {
	case i < j:
		return -1
	case i > j:
		return 1
	default:
		return 0
	}
}

// String - decimal representation
func (i Int) String() string {
	return strconv.Itoa(int(i))
}

// String - string item
type String string

// Compare - lexical comparison for the Item interface
func (s String) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(String)))
}

// String - the string itself
func (s String) String() string {
	return string(s)
}
