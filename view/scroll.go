// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import "image"

// Scroll is a vertically scrolling container. Its children are stacked
// top to bottom at their own heights, and the view shows the part of
// that content starting at [Scroll.Offset].
type Scroll struct {
	ViewBase

	// Offset is the current scroll position of the content.
	Offset image.Point
}

// ScrollOffset implements [Scroller].
func (sc *Scroll) ScrollOffset() image.Point {
	return sc.Offset
}

// SetScrollOffset implements [Scroller].
func (sc *Scroll) SetScrollOffset(off image.Point) {
	sc.Offset = off
}

// Layout stacks the children vertically.
func (sc *Scroll) Layout() {
	y := 0
	for i := range sc.NumChildren() {
		kv := sc.ChildView(i)
		if kv == nil {
			continue
		}
		kb := kv.AsView()
		kb.Geom.Pos = image.Pt(kb.Geom.Pos.X, y)
		y += kb.Height()
	}
}

// ContentHeight returns the total height of the content, which is the
// sum of the heights of the direct children.
func (sc *Scroll) ContentHeight() int {
	h := 0
	for i := range sc.NumChildren() {
		if kv := sc.ChildView(i); kv != nil {
			h += kv.AsView().Height()
		}
	}
	return h
}
