// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"encoding/base64"
	"image"
	"strings"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
)

// AsRGBA returns the image as an RGBA: if it already is one, then
// it returns that image directly. Otherwise it returns a clone.
func AsRGBA(src image.Image) *image.RGBA {
	if src == nil {
		return nil
	}
	if rgba, ok := src.(*image.RGBA); ok {
		return rgba
	}
	return clone.AsRGBA(src)
}

// Crop returns a new image holding the given region of the source image,
// with bounds starting at (0, 0). The region must lie within the bounds
// of the source.
func Crop(src image.Image, rect image.Rectangle) *image.RGBA {
	return transform.Crop(src, rect.Add(src.Bounds().Min))
}

// Resize returns a resized version of the source image,
// using Linear interpolation.
func Resize(src image.Image, size image.Point) *image.RGBA {
	return transform.Resize(src, size.X, size.Y, transform.Linear)
}

// Base64 returns the standard base64 encoding of the given bytes,
// without any line wrapping.
func Base64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// DataURI returns a data URI for the given encoded image bytes,
// of the form data:image/<ext>;base64,<data>. ext is used verbatim
// as the mime subtype, so "jpg" yields image/jpg.
func DataURI(ext string, b []byte) string {
	var sb strings.Builder
	sb.WriteString("data:image/")
	sb.WriteString(ext)
	sb.WriteString(";base64,")
	sb.WriteString(Base64(b))
	return sb.String()
}

// ParseDataURI returns the mime type and the decoded bytes of a
// base64 data URI produced by [DataURI].
func ParseDataURI(uri string) (mime string, data []byte, err error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return "", nil, errDataURI
	}
	mime, payload, ok := strings.Cut(rest, ";base64,")
	if !ok {
		return "", nil, errDataURI
	}
	data, err = base64.StdEncoding.DecodeString(payload)
	return mime, data, err
}
