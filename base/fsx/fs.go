// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fsx provides various utility functions for dealing with filesystems.
package fsx

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"cogentcore.org/viewshot/base/errors"
)

// FileExists checks whether given file exists, returning true if so,
// false if not, and error if there is an error in accessing the file.
// A directory does not count as a file.
func FileExists(filePath string) (bool, error) {
	fileInfo, err := os.Stat(filePath)
	if err == nil {
		return !fileInfo.IsDir(), nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// ExpandPaths returns the given paths with any leading ~ expanded
// to the home directory. Paths that can not be expanded are logged
// and left out.
func ExpandPaths(paths []string) []string {
	ex := make([]string, 0, len(paths))
	for _, p := range paths {
		e, err := homedir.Expand(p)
		if errors.Log(err) != nil {
			continue
		}
		ex = append(ex, e)
	}
	return ex
}

// FindFilesOnPaths attempts to locate given file(s) on given list of paths,
// returning the full Abs path to each file found (nil if none).
// Paths may start with ~ for the home directory.
func FindFilesOnPaths(paths []string, files ...string) []string {
	var res []string
	for _, path := range ExpandPaths(paths) {
		for _, fn := range files {
			fp := filepath.Join(path, fn)
			ok, _ := FileExists(fp)
			if !ok {
				continue
			}
			if abs, err := filepath.Abs(fp); err == nil {
				fp = abs
			}
			res = append(res, fp)
		}
	}
	return res
}
