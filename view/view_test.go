// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.RGBA{255, 0, 0, 255}
	green = color.RGBA{0, 255, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
	white = color.RGBA{255, 255, 255, 255}
)

func renderScene(sc *Scene) *image.RGBA {
	sz := sc.Root.AsView().Geom.Size
	img := image.NewRGBA(image.Rectangle{Max: sz})
	Render(sc.Root, img, image.Point{})
	return img
}

const testYAML = `
type: frame
id: root
width: 100
height: 80
background: "#ffffff"
children:
  - type: box
    id: box
    x: 10
    y: 10
    width: 20
    height: 20
    background: "#ff0000"
    border: 2
    borderColor: "#0000ff"
  - type: scroll
    id: list
    x: 50
    width: 40
    height: 40
    scrollY: 10
    children:
      - {type: box, id: a, height: 20, width: 40, background: "#00ff00"}
      - {type: box, id: b, height: 20, width: 40, background: "#0000ff"}
      - {type: box, id: c, height: 20, width: 40, background: "#ff0000"}
  - type: label
    id: title
    y: 60
    width: 100
    height: 20
    text: hello
`

func TestReadYAML(t *testing.T) {
	sc, err := Read([]byte(testYAML), ".yaml", ".")
	require.NoError(t, err)
	assert.Equal(t, image.Pt(100, 80), sc.Root.AsView().Geom.Size)

	bx, ok := sc.ViewByID("box").(*Box)
	require.True(t, ok)
	assert.Equal(t, 2, bx.Border)
	assert.Equal(t, blue, bx.BorderColor)

	list := sc.ViewByID("list").(*Scroll)
	assert.Equal(t, 60, list.ContentHeight())
	assert.Equal(t, image.Pt(0, 20), sc.ViewByID("b").AsView().Geom.Pos)
	assert.Equal(t, image.Pt(0, 40), sc.ViewByID("c").AsView().Geom.Pos)

	assert.Nil(t, sc.ViewByID("nothere"))
	assert.Nil(t, sc.ViewByID(""))
	assert.Equal(t, sc.ViewByID("c"), sc.ViewByID("/root/list/c"))
	assert.Equal(t, sc.Root, sc.ViewByID("/root"))
}

func TestRender(t *testing.T) {
	sc, err := Read([]byte(testYAML), ".yaml", ".")
	require.NoError(t, err)
	img := renderScene(sc)

	assert.Equal(t, white, img.RGBAAt(0, 0))
	assert.Equal(t, blue, img.RGBAAt(10, 10)) // border
	assert.Equal(t, red, img.RGBAAt(20, 20))
	// the scroll is offset by 10, so a is visible for 10px, then b, then c
	assert.Equal(t, green, img.RGBAAt(60, 5))
	assert.Equal(t, blue, img.RGBAAt(60, 15))
	assert.Equal(t, red, img.RGBAAt(60, 35))
	// c is clipped at the bottom of the scroll
	assert.Equal(t, white, img.RGBAAt(60, 45))

	lb := sc.ViewByID("title").(*Label)
	assert.Equal(t, []string{"hello"}, lb.Lines())
	dark := 0
	for y := 60; y < 80; y++ {
		for x := 0; x < 40; x++ {
			if img.RGBAAt(x, y).R < 128 {
				dark++
			}
		}
	}
	assert.Greater(t, dark, 0)
}

func TestRenderHidden(t *testing.T) {
	sc, err := Read([]byte(testYAML), ".yaml", ".")
	require.NoError(t, err)
	sc.ViewByID("box").AsView().Hidden = true
	img := renderScene(sc)
	assert.Equal(t, white, img.RGBAAt(20, 20))
}

func TestReadJSONTOML(t *testing.T) {
	js := `{"type": "box", "id": "root", "width": 8, "height": 6, "background": "#00ff00",
		"children": [{"type": "frame", "id": "kid", "width": 2, "height": 2}]}`
	sc, err := Read([]byte(js), "json", ".")
	require.NoError(t, err)
	assert.NotNil(t, sc.ViewByID("kid"))
	assert.Equal(t, green, renderScene(sc).RGBAAt(7, 5))

	tm := `
type = "scroll"
id = "root"
width = 10
height = 10

[[children]]
type = "box"
id = "one"
height = 7

[[children]]
type = "box"
id = "two"
height = 5
`
	sc, err = Read([]byte(tm), ".toml", ".")
	require.NoError(t, err)
	assert.Equal(t, 12, sc.Root.(*Scroll).ContentHeight())

	_, err = Read([]byte(tm), ".xml", ".")
	assert.Error(t, err)
	_, err = Read([]byte(`{"type": "slider"}`), ".json", ".")
	assert.Error(t, err)
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#336699")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0x33, 0x66, 0x99, 255}, c)
	c, err = ParseColor("#f00")
	require.NoError(t, err)
	assert.Equal(t, red, c)
	c, err = ParseColor("#ff000080")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{128, 0, 0, 128}, c)
	c, err = ParseColor("transparent")
	require.NoError(t, err)
	assert.Zero(t, c)
	_, err = ParseColor("nope")
	assert.Error(t, err)
}

func TestImageView(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	im := &Image{}
	require.NoError(t, im.SetImageBytes(buf.Bytes()))
	im.SetGeom(image.Point{}, image.Pt(8, 8))
	sc := NewScene(im)
	img := renderScene(sc)
	assert.Equal(t, white, img.RGBAAt(4, 4))

	assert.Error(t, im.SetImageBytes([]byte("not an image")))
}

func TestWebView(t *testing.T) {
	wv := &WebView{Content: "one\ntwo\nthree", Padding: 2}
	wv.SetGeom(image.Point{}, image.Pt(10, 10))
	NewScene(wv)
	sz := wv.MeasureIntrinsic()
	assert.Equal(t, image.Pt(TextWidth("three")+4, 3*LineHeight()+4), sz)

	assert.False(t, wv.Offscreen())
	release := wv.AcquireOffscreen()
	assert.True(t, wv.Offscreen())
	release()
	assert.False(t, wv.Offscreen())
}

func TestMarkdownLines(t *testing.T) {
	md := "# Title\n\nSome *text* here.\n\n- one\n- two\n"
	lines := MarkdownLines([]byte(md))
	assert.Equal(t, "TITLE", lines[0])
	assert.Contains(t, lines, "Some text here.")
	assert.Contains(t, lines, "- one")
	assert.Contains(t, lines, "- two")
}

func TestHTMLLines(t *testing.T) {
	lines := HTMLLines("<html><body>\n<h1>Hi</h1>\n<p>there <b>you</b></p>\n</body></html>")
	assert.Equal(t, []string{"Hi", "there you"}, lines)
}

func TestWrapText(t *testing.T) {
	w := TextWidth("aaa bbb")
	assert.Equal(t, []string{"aaa bbb", "ccc"}, WrapText("aaa bbb ccc", w))
	assert.Equal(t, []string{"aaa bbb ccc", ""}, WrapText("aaa bbb ccc\n", 0))
}

func TestSaveLayout(t *testing.T) {
	sc, err := Read([]byte(testYAML), ".yaml", ".")
	require.NoError(t, err)
	list := sc.ViewByID("list").(*Scroll)
	a := sc.ViewByID("a")
	restore := SaveLayout(list)
	list.SetGeom(image.Point{}, image.Pt(1, 1))
	list.SetScrollOffset(image.Point{})
	a.AsView().SetGeom(image.Pt(5, 5), image.Pt(2, 2))
	restore()
	assert.Equal(t, Geom{Pos: image.Pt(50, 0), Size: image.Pt(40, 40)}, list.Geom)
	assert.Equal(t, image.Pt(0, 10), list.ScrollOffset())
	assert.Equal(t, Geom{Size: image.Pt(40, 20)}, a.AsView().Geom)
}

func TestSceneClone(t *testing.T) {
	sc, err := Read([]byte(testYAML), ".yaml", ".")
	require.NoError(t, err)
	cl := sc.Clone()
	bx := cl.ViewByID("box").(*Box)
	assert.Equal(t, 2, bx.Border)
	bx.Background = green
	cl.ViewByID("list").(*Scroll).Offset = image.Point{}
	assert.Equal(t, red, sc.ViewByID("box").AsView().Background)
	assert.Equal(t, image.Pt(0, 10), sc.ViewByID("list").(*Scroll).Offset)
	assert.Equal(t, renderScene(sc).Bounds(), renderScene(cl).Bounds())
}
