// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewshot

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRegion(t *testing.T) {
	size := image.Pt(300, 400)
	tests := []struct {
		name string
		area Area
		want Region
	}{
		{"empty", Area{}, Region{Width: 300}},
		{"full", Area{Ptr(10), Ptr(20), Ptr(50), Ptr(60)}, Region{10, 20, 50, 60}},
		{"negative", Area{Ptr(-5), Ptr(-1), Ptr(-3), Ptr(-4)}, Region{Width: 300}},
		{"zero", Area{Ptr(0), Ptr(0), Ptr(0), Ptr(0)}, Region{Width: 300}},
		{"height only", Area{Height: Ptr(40)}, Region{Width: 300, Height: 40}},
		{"width only", Area{Width: Ptr(40)}, Region{Width: 40}},
		{"not clamped", Area{Ptr(500), Ptr(900), Ptr(1000), Ptr(2000)}, Region{500, 900, 1000, 2000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveRegion(tt.area, size))
		})
	}
}

func TestRegionRect(t *testing.T) {
	assert.Equal(t, image.Rect(10, 20, 60, 80), Region{10, 20, 50, 60}.Rect())
}
