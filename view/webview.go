// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/parser"
	strip "github.com/grokify/html-strip-tags-go"
)

// ContentTypes are the kinds of documents a [WebView] can display.
type ContentTypes string

const (
	// ContentText is plain text.
	ContentText ContentTypes = "text"

	// ContentMarkdown is markdown, which is displayed as text blocks.
	ContentMarkdown ContentTypes = "markdown"

	// ContentHTML is HTML, which is displayed as its text content.
	ContentHTML ContentTypes = "html"
)

// WebView is an embedded browsing surface displaying a document.
// Its document has an intrinsic size that is usually larger than the
// space the view is given, and it implements [Embedded] so that the
// full document can be captured.
type WebView struct {
	ViewBase

	// Content is the source of the document.
	Content string

	// ContentType is the kind of document in Content.
	ContentType ContentTypes

	// Color is the color of the text.
	Color color.RGBA

	// Padding is the space around the document.
	Padding int

	// cache is the off-screen drawing cache, which is non-nil
	// while the off-screen drawing path is enabled.
	cache *image.RGBA
}

// Lines returns the lines of the document in its unconstrained layout.
func (wv *WebView) Lines() []string {
	switch wv.ContentType {
	case ContentMarkdown:
		return MarkdownLines([]byte(wv.Content))
	case ContentHTML:
		return HTMLLines(wv.Content)
	}
	return strings.Split(wv.Content, "\n")
}

// MeasureIntrinsic implements [Embedded]. The document is not wrapped,
// so its size is that of the longest line by the number of lines,
// plus padding.
func (wv *WebView) MeasureIntrinsic() image.Point {
	sz := TextSize(wv.Lines())
	return sz.Add(image.Pt(2*wv.Padding, 2*wv.Padding))
}

// AcquireOffscreen implements [Embedded]. It builds the drawing cache
// of the full document at its current size, which is used by Draw
// until the returned function is called.
func (wv *WebView) AcquireOffscreen() func() {
	sz := wv.Geom.Size
	cache := image.NewRGBA(image.Rectangle{Max: sz})
	wv.drawDocument(cache, image.Point{})
	wv.cache = cache
	return func() {
		wv.cache = nil
	}
}

// Offscreen returns whether the off-screen drawing path is enabled.
func (wv *WebView) Offscreen() bool {
	return wv.cache != nil
}

func (wv *WebView) Draw(dst *image.RGBA, origin image.Point) {
	if wv.cache != nil {
		draw.Draw(dst, dst.Bounds(), wv.cache, dst.Bounds().Min.Sub(origin), draw.Over)
		return
	}
	wv.drawDocument(dst, origin)
}

func (wv *WebView) drawDocument(dst *image.RGBA, origin image.Point) {
	wv.ViewBase.Draw(dst, origin)
	clr := wv.Color
	if clr.A == 0 {
		clr = color.RGBA{A: 255}
	}
	DrawText(dst, wv.Lines(), clr, origin.Add(image.Pt(wv.Padding, wv.Padding)))
}

// MarkdownLines returns the text lines of the given markdown document,
// with a blank line between blocks, list items prefixed with "- ",
// and headings in upper case.
func MarkdownLines(src []byte) []string {
	doc := markdown.Parse(src, parser.NewWithExtensions(parser.CommonExtensions))
	var lines []string
	var cur strings.Builder
	prefix := ""
	flush := func() {
		if cur.Len() == 0 {
			return
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		for ln := range strings.SplitSeq(cur.String(), "\n") {
			lines = append(lines, prefix+ln)
		}
		cur.Reset()
	}
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		switch nd := node.(type) {
		case *ast.Heading:
			if entering {
				flush()
				prefix = ""
			} else {
				s := strings.ToUpper(cur.String())
				cur.Reset()
				cur.WriteString(s)
				flush()
			}
		case *ast.Paragraph:
			if !entering {
				flush()
			}
		case *ast.ListItem:
			if entering {
				prefix = "- "
			} else {
				flush()
				prefix = ""
			}
		case *ast.CodeBlock:
			if entering {
				cur.WriteString(strings.TrimRight(string(nd.Literal), "\n"))
				flush()
			}
		case *ast.Text:
			if entering {
				cur.Write(nd.Literal)
			}
		case *ast.Code:
			if entering {
				cur.Write(nd.Literal)
			}
		case *ast.Softbreak, *ast.Hardbreak:
			if entering {
				cur.WriteString("\n")
			}
		}
		return ast.GoToNext
	})
	flush()
	return lines
}

// HTMLLines returns the non-empty text lines of the given HTML document.
func HTMLLines(src string) []string {
	var lines []string
	for ln := range strings.SplitSeq(strip.StripTags(src), "\n") {
		ln = strings.TrimSpace(ln)
		if ln != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}
