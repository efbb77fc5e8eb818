// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewshot

import "image"

// Region is a resolved crop region. A Height of 0 means no cropping.
type Region struct {
	X, Y, Width, Height int
}

// Rect returns the region as a rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// ResolveRegion resolves the requested crop area against the given
// rendered size. A missing or negative x or y is 0. A missing or
// non-positive width is the full rendered width, while a missing or
// non-positive height is 0, which disables cropping: the height is
// what triggers a crop. Values are not clamped to the size.
func ResolveRegion(area Area, size image.Point) Region {
	var r Region
	if area.X != nil && *area.X > 0 {
		r.X = *area.X
	}
	if area.Y != nil && *area.Y > 0 {
		r.Y = *area.Y
	}
	r.Width = size.X
	if area.Width != nil && *area.Width > 0 {
		r.Width = *area.Width
	}
	if area.Height != nil && *area.Height > 0 {
		r.Height = *area.Height
	}
	return r
}
