// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewshot

import (
	"errors"
	"fmt"
	"image"

	"cogentcore.org/viewshot/view"
)

// Render renders the given view into a new buffer, using one of three
// strategies. fullWebView takes priority over snapshotContent, which
// takes priority over the standard capture:
//   - fullWebView renders the full intrinsic content of the [view.Embedded]
//     first child of the view, measured without constraints. If the first
//     child is not embedded content, it returns a nil buffer and no error.
//   - snapshotContent renders a [view.Scroller] at the height of all of
//     its content, which is the sum of the heights of its children.
//   - otherwise the view is rendered at its laid-out size.
//
// Layout changes made to render the content are undone before returning.
func Render(v view.View, snapshotContent, fullWebView bool) (*image.RGBA, error) {
	switch {
	case fullWebView:
		return renderEmbedded(v)
	case snapshotContent:
		return renderScrollContent(v)
	}
	return renderStandard(v)
}

func checkSize(size image.Point) error {
	if size.X <= 0 || size.Y <= 0 {
		return &Error{Kind: InvalidDimensions, Message: failedMessage,
			Err: fmt.Errorf("impossible to snapshot the view: view is invalid, size is %dx%d", size.X, size.Y)}
	}
	return nil
}

func renderInto(v view.View, size image.Point) *image.RGBA {
	buf := image.NewRGBA(image.Rectangle{Max: size})
	view.Render(v, buf, image.Point{})
	return buf
}

func renderStandard(v view.View) (*image.RGBA, error) {
	size := v.AsView().Geom.Size
	if err := checkSize(size); err != nil {
		return nil, err
	}
	return renderInto(v, size), nil
}

func renderScrollContent(v view.View) (*image.RGBA, error) {
	sc, ok := v.(view.Scroller)
	if !ok {
		return nil, failure(RenderFailure, errors.New("the view is not a scroll container"))
	}
	vb := v.AsView()
	h := 0
	for i := range vb.NumChildren() {
		if kv := vb.ChildView(i); kv != nil {
			h += kv.AsView().Height()
		}
	}
	size := image.Pt(vb.Width(), h)
	if err := checkSize(size); err != nil {
		return nil, err
	}
	restore := view.SaveLayout(v)
	defer restore()
	sc.SetScrollOffset(image.Point{})
	vb.Geom.Size = size
	return renderInto(v, size), nil
}

func renderEmbedded(v view.View) (*image.RGBA, error) {
	e, ok := v.AsView().ChildView(0).(view.Embedded)
	if !ok {
		return nil, nil
	}
	restore := view.SaveLayout(e)
	defer restore()
	size := e.MeasureIntrinsic()
	if err := checkSize(size); err != nil {
		return nil, err
	}
	e.AsView().SetGeom(image.Point{}, size)
	release := e.AcquireOffscreen()
	defer release()
	return renderInto(e, size), nil
}
