// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"image"

	"cogentcore.org/viewshot/tree"
)

// Scroller is implemented by views that show a scrollable viewport
// onto content that can be larger than the view itself.
type Scroller interface {
	View

	// ScrollOffset returns the current scroll position of the content.
	ScrollOffset() image.Point

	// SetScrollOffset sets the scroll position of the content.
	SetScrollOffset(off image.Point)
}

// Embedded is implemented by views that host embedded content
// with its own intrinsic size, such as a web page, which can be
// measured independently of the space given to the view and
// drawn in full through an off-screen drawing path.
type Embedded interface {
	View

	// MeasureIntrinsic measures the content as if it had infinite
	// available space, returning its natural size.
	MeasureIntrinsic() image.Point

	// AcquireOffscreen enables the off-screen drawing path of the view,
	// so that [View.Draw] renders the full content. The returned
	// function disables it again and must always be called.
	AcquireOffscreen() (release func())
}

// SaveLayout records the geometry and scroll offsets of the given view
// and all of its descendants, and returns a function that restores them.
func SaveLayout(v View) (restore func()) {
	type saved struct {
		view   View
		geom   Geom
		scroll image.Point
	}
	var all []saved
	v.AsTree().WalkDown(func(n tree.Node) bool {
		kv, ok := n.(View)
		if !ok {
			return tree.Continue
		}
		s := saved{view: kv, geom: kv.AsView().Geom}
		if sc, ok := kv.(Scroller); ok {
			s.scroll = sc.ScrollOffset()
		}
		all = append(all, s)
		return tree.Continue
	})
	return func() {
		for _, s := range all {
			s.view.AsView().Geom = s.geom
			if sc, ok := s.view.(Scroller); ok {
				sc.SetScrollOffset(s.scroll)
			}
		}
	}
}
