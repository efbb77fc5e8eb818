// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewshot

import (
	"bytes"
	"errors"
	iofs "io/fs"
	"net/url"
	"os"
	"path/filepath"

	"cogentcore.org/viewshot/base/iox/imagex"
)

// Sink is where the encoded image is written, and what turns the
// written bytes into the delivered result.
type Sink interface {

	// Write writes encoded image bytes to the sink.
	Write(b []byte) (int, error)

	// Result returns the value delivered to the caller.
	Result() string

	// Close commits what was written and releases the sink,
	// after a successful write.
	Close() error

	// Discard drops anything written and releases the sink, after a
	// failure. Exactly one of Close and Discard is called, once.
	Discard() error
}

// OpenSink opens the sink for the result mode of the given request.
// File sinks are created in tempDir when the request has no path.
func OpenSink(req *Request, tempDir string) (Sink, error) {
	switch req.Result {
	case ResultFile:
		return openFileSink(req, tempDir)
	case ResultBase64, ResultDataURI:
		return &bufferSink{mode: req.Result, ext: req.ext()}, nil
	}
	return nil, newUnsupportedResult(req.Result)
}

// fileSink writes to a file and delivers its file URI. With a request
// path, it writes to a hidden file next to the path, which is renamed
// to the path on Close, so an existing file at the path is only
// replaced by a complete capture.
type fileSink struct {
	file   *os.File
	tmp    string
	path   string
	closed bool
}

func openFileSink(req *Request, tempDir string) (*fileSink, error) {
	var f *os.File
	var err error
	path := ""
	if req.Path == "" {
		f, err = os.CreateTemp(tempDir, tempPrefix+"*."+req.ext())
	} else if path, err = filepath.Abs(req.Path); err == nil {
		f, err = os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	}
	if err != nil {
		return nil, failure(IOFailure, err)
	}
	tmp, err := filepath.Abs(f.Name())
	if err != nil {
		tmp = f.Name()
	}
	if path == "" {
		path = tmp
	}
	return &fileSink{file: f, tmp: tmp, path: path}, nil
}

func (fs *fileSink) Write(b []byte) (int, error) {
	return fs.file.Write(b)
}

func (fs *fileSink) Result() string {
	return FileURI(fs.path)
}

func (fs *fileSink) Close() error {
	if fs.closed {
		return nil
	}
	fs.closed = true
	if err := fs.file.Close(); err != nil {
		return err
	}
	if fs.tmp == fs.path {
		return nil
	}
	mode := os.FileMode(0644)
	if fi, err := os.Stat(fs.path); err == nil {
		mode = fi.Mode().Perm()
	}
	if err := os.Chmod(fs.tmp, mode); err != nil {
		return err
	}
	return os.Rename(fs.tmp, fs.path)
}

func (fs *fileSink) Discard() error {
	if !fs.closed {
		fs.closed = true
		fs.file.Close()
	}
	err := os.Remove(fs.tmp)
	if errors.Is(err, iofs.ErrNotExist) {
		return nil
	}
	return err
}

// FileURI returns the file:// URI of the given absolute path.
func FileURI(path string) string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}

// bufferSink keeps the bytes in memory and delivers them as
// base64 or as a data URI.
type bufferSink struct {
	buf  bytes.Buffer
	mode ResultModes
	ext  string
}

func (bs *bufferSink) Write(b []byte) (int, error) {
	return bs.buf.Write(b)
}

func (bs *bufferSink) Result() string {
	if bs.mode == ResultDataURI {
		return imagex.DataURI(bs.ext, bs.buf.Bytes())
	}
	return imagex.Base64(bs.buf.Bytes())
}

func (bs *bufferSink) Close() error {
	return nil
}

func (bs *bufferSink) Discard() error {
	bs.buf.Reset()
	return nil
}
