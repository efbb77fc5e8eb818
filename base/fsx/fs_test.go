// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fsx

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "a.toml")
	require.NoError(t, os.WriteFile(fn, []byte("x = 1"), 0666))
	ok, err := FileExists(fn)
	assert.NoError(t, err)
	assert.True(t, ok)
	ok, err = FileExists(dir)
	assert.NoError(t, err)
	assert.False(t, ok)
	ok, err = FileExists(filepath.Join(dir, "b.toml"))
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestFindFilesOnPaths(t *testing.T) {
	d1, d2 := t.TempDir(), t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(d2, "a.toml"), []byte("x = 1"), 0666))
	assert.Equal(t, []string{filepath.Join(d2, "a.toml")}, FindFilesOnPaths([]string{d1, d2}, "a.toml"))
	assert.Nil(t, FindFilesOnPaths([]string{d1}, "a.toml"))

	home, err := homedir.Dir()
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(home, "x")}, ExpandPaths([]string{"~/x"}))
}
