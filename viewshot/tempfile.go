// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewshot

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// tempPrefix is the prefix of temp files created for file results.
const tempPrefix = "viewshot-"

// TempDir returns the directory in which temp files for file results
// are created when the given directory is empty.
func TempDir(dir string) string {
	if dir != "" {
		return dir
	}
	return os.TempDir()
}

// ReleaseCapture deletes the file of a capture made to a temp file,
// given its file URI or path. Files that are not capture temp files
// in the given temp directory are left alone and reported as an error.
func ReleaseCapture(uri, tempDir string) error {
	path := uri
	if strings.HasPrefix(uri, "file:") {
		u, err := url.Parse(uri)
		if err != nil {
			return err
		}
		path = filepath.FromSlash(u.Path)
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir, err := filepath.Abs(TempDir(tempDir))
	if err != nil {
		return err
	}
	if filepath.Dir(path) != dir || !strings.HasPrefix(filepath.Base(path), tempPrefix) {
		return fmt.Errorf("viewshot.ReleaseCapture: %q is not a capture temp file in %q", path, dir)
	}
	err = os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// CleanTempFiles removes all of the capture temp files in the given
// temp directory, and returns the number of files removed.
func CleanTempFiles(tempDir string) (int, error) {
	files, err := filepath.Glob(filepath.Join(TempDir(tempDir), tempPrefix+"*"))
	if err != nil {
		return 0, err
	}
	n := 0
	var errs []error
	for _, f := range files {
		if err := os.Remove(f); err != nil {
			errs = append(errs, err)
			continue
		}
		n++
	}
	if len(errs) > 0 {
		return n, fmt.Errorf("viewshot.CleanTempFiles: %d files could not be removed, first error: %w", len(errs), errs[0])
	}
	return n, nil
}
