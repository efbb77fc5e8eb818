// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// face is the font face used for all text.
var face font.Face = basicfont.Face7x13

// LineHeight returns the height of one line of text.
func LineHeight() int {
	return face.Metrics().Height.Ceil()
}

// TextWidth returns the width of the given single line of text.
func TextWidth(s string) int {
	return font.MeasureString(face, s).Ceil()
}

// TextSize returns the size of the given lines of text.
func TextSize(lines []string) image.Point {
	w := 0
	for _, ln := range lines {
		w = max(w, TextWidth(ln))
	}
	return image.Pt(w, len(lines)*LineHeight())
}

// DrawText draws the given lines of text in the given color into dst,
// with the top-left corner of the first line at pos.
func DrawText(dst *image.RGBA, lines []string, clr color.Color, pos image.Point) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(clr),
		Face: face,
	}
	asc := face.Metrics().Ascent.Ceil()
	lh := LineHeight()
	for i, ln := range lines {
		y := pos.Y + i*lh
		if y > dst.Bounds().Max.Y {
			break
		}
		if y+lh < dst.Bounds().Min.Y {
			continue
		}
		d.Dot = fixed.P(pos.X, y+asc)
		d.DrawString(ln)
	}
}

// WrapText splits the given text into lines, wrapping words so that
// each line fits in the given width. A width <= 0 only splits on
// newlines, which is the unconstrained layout of the text.
func WrapText(text string, width int) []string {
	var lines []string
	for para := range strings.SplitSeq(text, "\n") {
		if width <= 0 {
			lines = append(lines, para)
			continue
		}
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		cur := words[0]
		for _, w := range words[1:] {
			if TextWidth(cur+" "+w) > width {
				lines = append(lines, cur)
				cur = w
				continue
			}
			cur += " " + w
		}
		lines = append(lines, cur)
	}
	return lines
}
