// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package view provides a tree of renderable views, each with
// a laid-out position and size, that can be drawn into an image.
package view

import (
	"image"
	"image/color"
	"image/draw"

	"cogentcore.org/viewshot/tree"
)

// View is the interface that all views satisfy. The core functionality
// of a view is defined on [ViewBase], which all view types must embed.
type View interface {
	tree.Node

	// AsView returns the [ViewBase] of this View.
	AsView() *ViewBase

	// Draw draws the content of the view itself, not including its children,
	// into the given image, which is already clipped to the bounds of the view.
	// origin is the position of the top-left corner of the view in dst.
	Draw(dst *image.RGBA, origin image.Point)
}

// Geom is the laid-out geometry of a view.
type Geom struct {

	// Pos is the position of the view relative to its parent.
	Pos image.Point

	// Size is the laid-out size of the view.
	Size image.Point
}

// Rect returns the geometry as a rectangle relative to the parent.
func (g Geom) Rect() image.Rectangle {
	return image.Rectangle{Min: g.Pos, Max: g.Pos.Add(g.Size)}
}

// ViewBase implements the [View] interface and provides
// the core functionality of a view.
type ViewBase struct {
	tree.NodeBase

	// Geom is the current laid-out geometry of the view.
	Geom Geom

	// Background is the background color filled before drawing content.
	// A zero (transparent) color draws nothing.
	Background color.RGBA

	// Hidden is whether the view (and all of its children) is not drawn.
	Hidden bool
}

// AsView returns the [ViewBase] for this View.
func (vb *ViewBase) AsView() *ViewBase {
	return vb
}

// Width returns the laid-out width of the view.
func (vb *ViewBase) Width() int { return vb.Geom.Size.X }

// Height returns the laid-out height of the view.
func (vb *ViewBase) Height() int { return vb.Geom.Size.Y }

// SetGeom sets the position and size of the view. It is the
// analog of a layout pass for one view.
func (vb *ViewBase) SetGeom(pos, size image.Point) {
	vb.Geom = Geom{Pos: pos, Size: size}
}

// ChildView returns the child at the given index as a [View],
// or nil if there is none or it is not a view.
func (vb *ViewBase) ChildView(i int) View {
	v, _ := vb.Child(i).(View)
	return v
}

// Draw fills the background color.
func (vb *ViewBase) Draw(dst *image.RGBA, origin image.Point) {
	if vb.Background.A == 0 {
		return
	}
	draw.Draw(dst, dst.Bounds(), image.NewUniform(vb.Background), image.Point{}, draw.Over)
}

// Render renders the given view and all of its children into dst,
// with the top-left corner of the view at origin. Drawing is clipped
// to the bounds of each view, and children of a [Scroller] are shifted
// by its scroll offset.
func Render(v View, dst *image.RGBA, origin image.Point) {
	vb := v.AsView()
	if vb.This == nil || vb.Hidden {
		return
	}
	clip := image.Rectangle{Min: origin, Max: origin.Add(vb.Geom.Size)}.Intersect(dst.Bounds())
	if clip.Empty() {
		return
	}
	cd := dst.SubImage(clip).(*image.RGBA)
	v.Draw(cd, origin)
	off := origin
	if s, ok := v.(Scroller); ok {
		off = off.Sub(s.ScrollOffset())
	}
	for i := range vb.NumChildren() {
		kv := vb.ChildView(i)
		if kv == nil {
			continue
		}
		Render(kv, cd, off.Add(kv.AsView().Geom.Pos))
	}
}

// Layouter is implemented by views that position their children.
type Layouter interface {
	View

	// Layout positions the children of the view within it.
	Layout()
}

// LayoutTree calls [Layouter.Layout] on the given view and all of its
// descendants that implement it, parents before children.
func LayoutTree(v View) {
	v.AsTree().WalkDown(func(n tree.Node) bool {
		if l, ok := n.(Layouter); ok {
			l.Layout()
		}
		return tree.Continue
	})
}
