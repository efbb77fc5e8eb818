// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tomlx

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Name  string `toml:"name"`
	Count int    `toml:"count"`
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.toml")
	b := filepath.Join(dir, "b.toml")
	require.NoError(t, Save(&testConfig{Name: "a", Count: 1}, a))
	require.NoError(t, Save(map[string]any{"count": 2}, b))

	var c testConfig
	require.NoError(t, OpenFiles(&c, a, b))
	assert.Equal(t, testConfig{Name: "a", Count: 2}, c)

	assert.Error(t, OpenFiles(&c, filepath.Join(dir, "none.toml")))
	assert.Error(t, ReadBytes(&c, []byte(`other = 1`)))
}
