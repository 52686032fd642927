// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/util"
)

func TestEnsureAbsolute(t *testing.T) {
	tests := []struct {
		dir      string
		file     string
		expected string
	}{
		{"/data", "log", "/data/log"},
		{"/data", "./log/../run", "/data/run"},
		{"/data", "/var/log", "/var/log"},
		{"/data/", "/var//log/", "/var/log"},
	}

	for i, item := range tests {
		actual := util.EnsureAbsolute(item.dir, item.file)
		assert.Equal(t, item.expected, actual, "%d: wrong path", i)
	}
}

func TestEnsureDirectory(t *testing.T) {
	base, err := ioutil.TempDir("", "util")
	require.NoError(t, err, "temp dir")
	defer os.RemoveAll(base)

	dir := filepath.Join(base, "a", "b")
	assert.NoError(t, util.EnsureDirectory(dir), "create")
	assert.NoError(t, util.EnsureDirectory(dir), "already exists")

	fileName := filepath.Join(base, "file")
	require.NoError(t, ioutil.WriteFile(fileName, []byte("x"), 0o600), "write file")

	err = util.EnsureDirectory(fileName)
	assert.Error(t, err, "file accepted as directory")
}

func TestNotADirectoryClass(t *testing.T) {
	assert.True(t, fault.IsErrInvalid(fault.ErrNotADirectory), "wrong class")
}
