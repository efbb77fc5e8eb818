// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/viewshot/base/iox/imagex"
	"cogentcore.org/viewshot/viewshot"
)

func writeConfig(t *testing.T, content string) string {
	fn := filepath.Join(t.TempDir(), ConfigFile)
	require.NoError(t, os.WriteFile(fn, []byte(content), 0666))
	return fn
}

func TestLoadConfig(t *testing.T) {
	fn := writeConfig(t, `
format = "webp"
quality = 0.5
result = "base64"
outDir = "~/shots"
`)
	cfg, err := LoadConfig(fn)
	require.NoError(t, err)
	assert.Equal(t, "webp", cfg.Format)
	assert.Equal(t, 0.5, cfg.Quality)
	assert.Equal(t, "localhost:8081", cfg.Addr)
	require.NoError(t, cfg.Validate())
	home, err := homedir.Dir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "shots"), cfg.OutDir)

	req, err := cfg.Request()
	require.NoError(t, err)
	assert.Equal(t, imagex.WebP, req.Format)
	assert.Equal(t, 0.5, req.Quality)
	assert.Equal(t, viewshot.ResultBase64, req.Result)

	_, err = LoadConfig(writeConfig(t, `colour = "red"`))
	assert.Error(t, err)
	_, err = LoadConfig(filepath.Join(t.TempDir(), "none.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.Format = "jpgg"
	assert.ErrorContains(t, cfg.Validate(), `did you mean "jpg"?`)

	cfg = DefaultConfig()
	cfg.Result = "xml"
	assert.ErrorContains(t, cfg.Validate(), "try one of: file | base64 | data-uri")
	cfg.Result = "bas64"
	assert.ErrorContains(t, cfg.Validate(), `did you mean "base64"?`)

	cfg = DefaultConfig()
	cfg.Quality = 2
	assert.Error(t, cfg.Validate())
}
