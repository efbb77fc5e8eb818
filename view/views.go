// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/anthonynsimon/bild/blur"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"cogentcore.org/viewshot/base/iox/imagex"
)

// Frame is a plain container view that only draws its background.
type Frame struct {
	ViewBase
}

// Box is a view that draws its background with an optional border.
type Box struct {
	ViewBase

	// Border is the width of the border drawn inside the bounds of the box.
	Border int

	// BorderColor is the color of the border.
	BorderColor color.RGBA
}

func (bx *Box) Draw(dst *image.RGBA, origin image.Point) {
	bx.ViewBase.Draw(dst, origin)
	if bx.Border <= 0 || bx.BorderColor.A == 0 {
		return
	}
	r := image.Rectangle{Min: origin, Max: origin.Add(bx.Geom.Size)}
	b := bx.Border
	src := image.NewUniform(bx.BorderColor)
	for _, side := range []image.Rectangle{
		{r.Min, image.Pt(r.Max.X, r.Min.Y+b)},
		{image.Pt(r.Min.X, r.Max.Y-b), r.Max},
		{r.Min, image.Pt(r.Min.X+b, r.Max.Y)},
		{image.Pt(r.Max.X-b, r.Min.Y), r.Max},
	} {
		draw.Draw(dst, side.Intersect(dst.Bounds()), src, image.Point{}, draw.Over)
	}
}

// Label is a view that draws text.
type Label struct {
	ViewBase

	// Text is the text, with newlines separating lines.
	Text string

	// Color is the color of the text.
	Color color.RGBA

	// Wrap is whether to wrap the text to the width of the label.
	Wrap bool
}

// Lines returns the lines of text of the label at its current width.
func (lb *Label) Lines() []string {
	if lb.Wrap {
		return WrapText(lb.Text, lb.Width())
	}
	return strings.Split(lb.Text, "\n")
}

func (lb *Label) Draw(dst *image.RGBA, origin image.Point) {
	lb.ViewBase.Draw(dst, origin)
	clr := lb.Color
	if clr.A == 0 {
		clr = color.RGBA{A: 255}
	}
	DrawText(dst, lb.Lines(), clr, origin)
}

// Image is a view that draws a picture scaled to its size.
type Image struct {
	ViewBase

	// Pixels is the decoded picture.
	Pixels *image.RGBA

	// Blur is the radius of a gaussian blur applied to the picture,
	// if it is > 0.
	Blur float64

	// scaled caches the picture rendered at the current size.
	scaled *image.RGBA
}

// SetImage sets the picture of the view from the given image.
func (im *Image) SetImage(img image.Image) {
	im.Pixels = imagex.AsRGBA(img)
	im.scaled = nil
}

// SetImageBytes decodes the picture of the view from the given
// encoded bytes, which must hold a supported image format.
func (im *Image) SetImageBytes(b []byte) error {
	img, _, err := imagex.ReadBytes(b)
	if err != nil {
		return err
	}
	im.SetImage(img)
	return nil
}

func (im *Image) Draw(dst *image.RGBA, origin image.Point) {
	im.ViewBase.Draw(dst, origin)
	if im.Pixels == nil || im.Pixels.Bounds().Empty() {
		return
	}
	sz := im.Geom.Size
	if im.scaled == nil || im.scaled.Bounds().Size() != sz {
		im.scaled = im.render(sz)
	}
	draw.Draw(dst, dst.Bounds(), im.scaled, dst.Bounds().Min.Sub(origin), draw.Over)
}

// render returns the picture scaled to the given size, using
// a bilinear transform, with any blur applied.
func (im *Image) render(sz image.Point) *image.RGBA {
	src := im.Pixels
	if im.Blur > 0 {
		src = blur.Gaussian(src, im.Blur)
	}
	isz := src.Bounds().Size()
	out := image.NewRGBA(image.Rectangle{Max: sz})
	if isz == sz {
		draw.Draw(out, out.Bounds(), src, src.Bounds().Min, draw.Src)
		return out
	}
	scx := float64(sz.X) / float64(isz.X)
	scy := float64(sz.Y) / float64(isz.Y)
	s2d := f64.Aff3{scx, 0, 0, 0, scy, 0}
	xdraw.BiLinear.Transform(out, s2d, src, src.Bounds(), xdraw.Src, nil)
	return out
}
