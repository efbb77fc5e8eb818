// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package view

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Spec is the description of one view in a scene file.
// Scene files can be written in YAML, JSON, or TOML.
type Spec struct {

	// Type is the type of view: frame, box, label, image, scroll, or webview.
	Type string `json:"type" yaml:"type" toml:"type"`

	// ID is the id of the view, used to find it in the scene.
	ID string `json:"id,omitempty" yaml:"id,omitempty" toml:"id,omitempty"`

	X      int `json:"x,omitempty" yaml:"x,omitempty" toml:"x,omitempty"`
	Y      int `json:"y,omitempty" yaml:"y,omitempty" toml:"y,omitempty"`
	Width  int `json:"width,omitempty" yaml:"width,omitempty" toml:"width,omitempty"`
	Height int `json:"height,omitempty" yaml:"height,omitempty" toml:"height,omitempty"`

	// Background is a hex color such as #336699 or #33669980.
	Background string `json:"background,omitempty" yaml:"background,omitempty" toml:"background,omitempty"`

	Hidden bool `json:"hidden,omitempty" yaml:"hidden,omitempty" toml:"hidden,omitempty"`

	// box
	Border      int    `json:"border,omitempty" yaml:"border,omitempty" toml:"border,omitempty"`
	BorderColor string `json:"borderColor,omitempty" yaml:"borderColor,omitempty" toml:"borderColor,omitempty"`

	// label and webview
	Text  string `json:"text,omitempty" yaml:"text,omitempty" toml:"text,omitempty"`
	Color string `json:"color,omitempty" yaml:"color,omitempty" toml:"color,omitempty"`
	Wrap  bool   `json:"wrap,omitempty" yaml:"wrap,omitempty" toml:"wrap,omitempty"`

	// image: Source is a file path relative to the scene file.
	Source string  `json:"source,omitempty" yaml:"source,omitempty" toml:"source,omitempty"`
	Blur   float64 `json:"blur,omitempty" yaml:"blur,omitempty" toml:"blur,omitempty"`

	// scroll
	ScrollY int `json:"scrollY,omitempty" yaml:"scrollY,omitempty" toml:"scrollY,omitempty"`

	// webview: ContentType is text, markdown, or html.
	ContentType string `json:"contentType,omitempty" yaml:"contentType,omitempty" toml:"contentType,omitempty"`
	Padding     int    `json:"padding,omitempty" yaml:"padding,omitempty" toml:"padding,omitempty"`

	Children []Spec `json:"children,omitempty" yaml:"children,omitempty" toml:"children,omitempty"`
}

// Open opens the scene file with the given filename, with the format
// determined by its extension (.yaml, .yml, .json, or .toml).
func Open(filename string) (*Scene, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	sc, err := Read(b, filepath.Ext(filename), filepath.Dir(filename))
	if err != nil {
		return nil, fmt.Errorf("view.Open %q: %w", filename, err)
	}
	sc.Source = filename
	return sc, nil
}

// Read reads a scene from the given bytes in the format given by the
// file extension ext. Image sources are relative to dir.
func Read(b []byte, ext, dir string) (*Scene, error) {
	var spec Spec
	var err error
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "yaml", "yml":
		err = yaml.Unmarshal(b, &spec)
	case "json":
		err = json.Unmarshal(b, &spec)
	case "toml":
		err = toml.NewDecoder(bytes.NewReader(b)).DisallowUnknownFields().Decode(&spec)
	default:
		return nil, fmt.Errorf("unknown scene file format %q", ext)
	}
	if err != nil {
		return nil, err
	}
	root, err := spec.Build(dir)
	if err != nil {
		return nil, err
	}
	return NewScene(root), nil
}

// Build makes the view described by the spec and all of its children.
// Image sources are relative to dir.
func (sp *Spec) Build(dir string) (View, error) {
	var v View
	var err error
	switch strings.ToLower(sp.Type) {
	case "", "frame":
		v = &Frame{}
	case "box":
		bx := &Box{Border: sp.Border}
		bx.BorderColor, err = ParseColor(sp.BorderColor)
		v = bx
	case "label":
		lb := &Label{Text: sp.Text, Wrap: sp.Wrap}
		lb.Color, err = ParseColor(sp.Color)
		v = lb
	case "image":
		im := &Image{Blur: sp.Blur}
		if sp.Source != "" {
			err = im.open(filepath.Join(dir, sp.Source))
		}
		v = im
	case "scroll":
		v = &Scroll{Offset: image.Pt(0, sp.ScrollY)}
	case "webview":
		wv := &WebView{Content: sp.Text, ContentType: ContentTypes(sp.ContentType), Padding: sp.Padding}
		if wv.ContentType == "" {
			wv.ContentType = ContentText
		}
		wv.Color, err = ParseColor(sp.Color)
		v = wv
	default:
		return nil, fmt.Errorf("view %q: unknown view type %q", sp.ID, sp.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("view %q: %w", sp.ID, err)
	}
	vb := v.AsView()
	vb.Name = sp.ID
	vb.Hidden = sp.Hidden
	vb.SetGeom(image.Pt(sp.X, sp.Y), image.Pt(sp.Width, sp.Height))
	if vb.Background, err = ParseColor(sp.Background); err != nil {
		return nil, fmt.Errorf("view %q: %w", sp.ID, err)
	}
	for i := range sp.Children {
		kv, err := sp.Children[i].Build(dir)
		if err != nil {
			return nil, err
		}
		vb.AddChild(kv)
	}
	return v, nil
}

func (im *Image) open(filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	return im.SetImageBytes(b)
}

// ParseColor parses a hex color of the form #rgb, #rrggbb, or #rrggbbaa.
// An empty string or "transparent" is the zero color.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "transparent") {
		return color.RGBA{}, nil
	}
	alpha := uint8(255)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	if alpha == 255 {
		return color.RGBA{r, g, b, 255}, nil
	}
	// premultiply
	return color.RGBA{
		R: uint8(uint16(r) * uint16(alpha) / 255),
		G: uint8(uint16(g) * uint16(alpha) / 255),
		B: uint8(uint16(b) * uint16(alpha) / 255),
		A: alpha,
	}, nil
}
