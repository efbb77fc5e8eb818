// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"github.com/mitchellh/go-homedir"

	"cogentcore.org/viewshot/base/fsx"
	"cogentcore.org/viewshot/base/iox/imagex"
	"cogentcore.org/viewshot/base/iox/tomlx"
	"cogentcore.org/viewshot/viewshot"
)

// ConfigFile is the name of the config file.
const ConfigFile = "viewshot.toml"

// ConfigPaths are the directories searched for [ConfigFile], in order.
var ConfigPaths = []string{".", "~/.config/viewshot"}

// Config is the configuration of the viewshot tool,
// read from [ConfigFile] and overridden by flags.
type Config struct {

	// Format is the image format: png, jpg, jpeg, or webp.
	Format string `toml:"format"`

	// Quality is the encoding quality in [0,1] for lossy formats.
	Quality float64 `toml:"quality"`

	// Result is how captures are delivered: file, base64, or data-uri.
	Result string `toml:"result"`

	// OutDir is the directory that file results are written to,
	// named after their scene file. If it is empty, temp files are used.
	OutDir string `toml:"outDir"`

	// TempDir is the directory for temp files; the system one by default.
	TempDir string `toml:"tempDir"`

	// Addr is the address the bridge server listens on.
	Addr string `toml:"addr"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{Format: "png", Quality: 1, Result: string(viewshot.ResultFile), Addr: "localhost:8081"}
}

// LoadConfig returns the configuration read from the given file,
// or from the first [ConfigFile] found on [ConfigPaths] if file is empty.
// It returns the default configuration if there is no config file.
func LoadConfig(file string) (*Config, error) {
	cfg := DefaultConfig()
	if file == "" {
		files := fsx.FindFilesOnPaths(ConfigPaths, ConfigFile)
		if len(files) == 0 {
			return cfg, nil
		}
		file = files[0]
	}
	file, err := homedir.Expand(file)
	if err != nil {
		return nil, err
	}
	if err := tomlx.Open(cfg, file); err != nil {
		return nil, fmt.Errorf("config file %q: %w", file, err)
	}
	return cfg, nil
}

// Validate checks the configuration values and expands ~ in directories.
func (c *Config) Validate() error {
	if _, err := imagex.ParseFormat(c.Format); err != nil {
		return fmt.Errorf("invalid format %q%s", c.Format, suggest(c.Format, imagex.EncodableFormats))
	}
	if !viewshot.ResultModes(c.Result).IsValid() {
		return fmt.Errorf("invalid result %q%s", c.Result, suggest(c.Result, viewshot.ResultModesStrings()))
	}
	if c.Quality < 0 || c.Quality > 1 {
		return fmt.Errorf("quality %g is outside of the range [0,1]", c.Quality)
	}
	var err error
	if c.OutDir, err = homedir.Expand(c.OutDir); err != nil {
		return err
	}
	if c.TempDir, err = homedir.Expand(c.TempDir); err != nil {
		return err
	}
	return nil
}

// Request returns a new capture request with the configured
// format, quality, and result.
func (c *Config) Request() (*viewshot.Request, error) {
	req, err := viewshot.NewRequest(c.Format)
	if err != nil {
		return nil, err
	}
	req.Quality = c.Quality
	req.Result = viewshot.ResultModes(c.Result)
	return req, nil
}

// suggest returns a "did you mean" suffix for the option
// most similar to s, or the list of all options if none is close.
func suggest(s string, options []string) string {
	best, bestSim := "", 0.0
	for _, o := range options {
		sim := strutil.Similarity(strings.ToLower(s), o, metrics.NewLevenshtein())
		if sim > bestSim {
			best, bestSim = o, sim
		}
	}
	if bestSim >= 0.5 {
		return fmt.Sprintf("; did you mean %q?", best)
	}
	return "; try one of: " + strings.Join(options, " | ")
}
