// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewshot

import (
	"strings"

	"cogentcore.org/viewshot/base/iox/imagex"
)

// ResultModes are the ways the captured image is delivered.
type ResultModes string

const (
	// ResultFile writes the image to a file and delivers its file URI.
	ResultFile ResultModes = "file"

	// ResultBase64 delivers the base64 encoding of the image bytes.
	ResultBase64 ResultModes = "base64"

	// ResultDataURI delivers a data:image/<ext>;base64,<data> URI.
	ResultDataURI ResultModes = "data-uri"
)

// ResultModesValues are all of the valid result modes.
var ResultModesValues = []ResultModes{ResultFile, ResultBase64, ResultDataURI}

// ResultModesStrings returns the names of all of the valid result modes.
func ResultModesStrings() []string {
	s := make([]string, len(ResultModesValues))
	for i, m := range ResultModesValues {
		s[i] = string(m)
	}
	return s
}

// IsValid returns whether the result mode is one of [ResultModesValues].
func (m ResultModes) IsValid() bool {
	switch m {
	case ResultFile, ResultBase64, ResultDataURI:
		return true
	}
	return false
}

// Area is the requested crop area, with each value optional.
type Area struct {
	X      *int `json:"areaX,omitempty"`
	Y      *int `json:"areaY,omitempty"`
	Width  *int `json:"areaWidth,omitempty"`
	Height *int `json:"areaHeight,omitempty"`
}

// Request is a request to capture a view. It is not modified by a capture.
type Request struct {

	// Format is the raster format to encode to: [imagex.PNG],
	// [imagex.JPEG], or [imagex.WebP].
	Format imagex.Formats

	// Extension is the format name as requested (png, jpg, jpeg, or webp),
	// which is used as the mime subtype of data URIs and as the
	// extension of temp files. It defaults to the extension of Format.
	Extension string

	// Quality is the encoding quality in the range [0,1].
	// It is ignored by lossless formats.
	Quality float64

	// Width and Height are the size to rescale the image to.
	// Both must be set for any rescaling to happen.
	Width, Height *int

	// Area is the region of the rendered view to crop to.
	Area Area

	// SnapshotContentContainer captures the full content of a scroll
	// container instead of its visible viewport.
	SnapshotContentContainer bool

	// FullWebView captures the full content of the embedded web view
	// that is the first child of the view.
	FullWebView bool

	// Result is how the image is delivered.
	Result ResultModes

	// Path is the file to write to for [ResultFile].
	// If it is empty, a new temp file is used.
	Path string
}

// NewRequest returns a new request for the given format name
// (png, jpg, jpeg, or webp), with the defaults of full quality
// and a file result.
func NewRequest(format string) (*Request, error) {
	format = strings.ToLower(format)
	f, err := imagex.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return &Request{Format: f, Extension: format, Quality: 1, Result: ResultFile}, nil
}

// ext returns the extension of the request format.
func (r *Request) ext() string {
	if r.Extension != "" {
		return r.Extension
	}
	return r.Format.Extension()
}

// Ptr returns a pointer to the given value, for
// setting the optional fields of a [Request].
func Ptr[T any](v T) *T {
	return &v
}
