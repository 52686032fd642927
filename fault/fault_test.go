// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bstree/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
)

// test that each class of error is only recognised by its own predicate
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		notFound bool
		process  bool
	}{
		{ErrExistsOne, true, false, false, false},
		{ErrExistsTwo, true, false, false, false},
		{ErrInvalidOne, false, true, false, false},
		{ErrInvalidTwo, false, true, false, false},
		{ErrNotFoundOne, false, false, true, false},
		{ErrNotFoundTwo, false, false, true, false},
		{ErrProcessOne, false, false, false, true},
		{ErrProcessTwo, false, false, false, true},
		{fault.ErrNodeNotFound, false, false, true, false},
		{fault.ErrInvalidCount, false, true, false, false},
		{errors.New("plain"), false, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		assert.Equal(t, e.exists, fault.IsErrExists(err), "%d: 'exists' for err = %v", i, err)
		assert.Equal(t, e.invalid, fault.IsErrInvalid(err), "%d: 'invalid' for err = %v", i, err)
		assert.Equal(t, e.notFound, fault.IsErrNotFound(err), "%d: 'not found' for err = %v", i, err)
		assert.Equal(t, e.process, fault.IsErrProcess(err), "%d: 'process' for err = %v", i, err)
	}
}

func TestSingleInstance(t *testing.T) {
	var err error = fault.ErrNodeNotFound
	assert.Equal(t, fault.ErrNodeNotFound, err, "wrong instance")
	assert.Equal(t, "node not found", err.Error(), "wrong message")
}

func TestPanicIfError(t *testing.T) {
	assert.NotPanics(t, func() { fault.PanicIfError("nothing", nil) })
	assert.PanicsWithValue(t, "rebuild failed with error: invalid count", func() {
		fault.PanicIfError("rebuild", fault.ErrInvalidCount)
	})
}
