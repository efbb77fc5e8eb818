// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewshot

import (
	"fmt"
	"image"
	"io"

	"cogentcore.org/viewshot/base/iox/imagex"
)

// Crop returns the given region of the buffer as a new buffer.
// Cropping only happens when the region height is > 0, the buffer is
// at least as wide as the region x, and at least as tall as the region
// height; otherwise the buffer is returned unchanged. A region that
// passes that check but does not fit in the buffer is an error of
// kind [RegionOutOfBounds].
func Crop(buf *image.RGBA, r Region) (*image.RGBA, error) {
	sz := buf.Bounds().Size()
	if r.Height <= 0 || sz.X < r.X || sz.Y < r.Height {
		return buf, nil
	}
	rect := r.Rect()
	if !rect.In(image.Rectangle{Max: sz}) {
		return nil, failure(RegionOutOfBounds, fmt.Errorf("crop region %v is outside of the %dx%d view", rect, sz.X, sz.Y))
	}
	return imagex.Crop(buf, rect), nil
}

// Scale returns the buffer resampled to the given width and height,
// if both are set and differ from the size of the buffer.
// Otherwise it returns the buffer unchanged.
func Scale(buf *image.RGBA, width, height *int) *image.RGBA {
	if width == nil || height == nil {
		return buf
	}
	size := image.Pt(*width, *height)
	if size == buf.Bounds().Size() {
		return buf
	}
	return imagex.Resize(buf, size)
}

// Encode writes the buffer to the given writer in the given format,
// which must be [imagex.PNG], [imagex.JPEG], or [imagex.WebP].
// quality in [0,1] is mapped to round(100*quality) for lossy formats.
func Encode(w io.Writer, buf *image.RGBA, format imagex.Formats, quality float64) error {
	switch format {
	case imagex.PNG, imagex.JPEG, imagex.WebP:
	default:
		return failure(EncodeFailure, fmt.Errorf("unsupported format %v", format))
	}
	if buf == nil {
		return failure(EncodeFailure, fmt.Errorf("no image to encode"))
	}
	if err := imagex.Write(buf, w, format, imagex.Quality(quality)); err != nil {
		return failure(EncodeFailure, err)
	}
	return nil
}
