// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"testing"

	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/path"
	"github.com/stretchr/testify/assert"
)

func TestRasterize(t *testing.T) {
	p := path.MustParseSVGPath("M2 2L8 2L8 8L2 8z")
	mask := Rasterize(p, math32.Identity2(), image.Pt(10, 10))
	assert.Equal(t, image.Rect(0, 0, 10, 10), mask.Bounds())
	assert.Equal(t, uint8(255), mask.AlphaAt(5, 5).A)
	assert.Equal(t, uint8(255), mask.AlphaAt(2, 2).A)
	assert.Equal(t, uint8(0), mask.AlphaAt(0, 0).A)
	assert.Equal(t, uint8(0), mask.AlphaAt(1, 5).A)
	assert.Equal(t, uint8(0), mask.AlphaAt(9, 9).A)

	// open subpaths are implicitly closed
	open := Rasterize(path.MustParseSVGPath("M2 2L8 2L8 8L2 8"), math32.Identity2(), image.Pt(10, 10))
	assert.Equal(t, mask.Pix, open.Pix)
}

func TestRasterizeTransform(t *testing.T) {
	p := path.MustParseSVGPath("M0 2L6 2L6 8L0 8z")
	mask := Rasterize(p, math32.Identity2().Translate(2, 0), image.Pt(10, 10))
	assert.Equal(t, uint8(255), mask.AlphaAt(5, 5).A)
	assert.Equal(t, uint8(0), mask.AlphaAt(1, 5).A)

	p = path.MustParseSVGPath("M1 1L4 1L4 4L1 4z")
	mask = Rasterize(p, math32.Identity2().Scale(2, 2), image.Pt(10, 10))
	assert.Equal(t, uint8(255), mask.AlphaAt(5, 5).A)
	assert.Equal(t, uint8(255), mask.AlphaAt(2, 2).A)
	assert.Equal(t, uint8(0), mask.AlphaAt(1, 5).A)
}

func TestRasterizeArcs(t *testing.T) {
	mask := Rasterize(*path.New().Circle(5, 5, 4), math32.Identity2(), image.Pt(10, 10))
	assert.Equal(t, uint8(255), mask.AlphaAt(5, 5).A)
	assert.Equal(t, uint8(255), mask.AlphaAt(5, 2).A)
	assert.Equal(t, uint8(0), mask.AlphaAt(0, 0).A)
	assert.Equal(t, uint8(0), mask.AlphaAt(9, 0).A)
}

func TestRasterizeCoverage(t *testing.T) {
	mask := Rasterize(path.MustParseSVGPath("M0 0L10 0L10 0.5L0 0.5z"), math32.Identity2(), image.Pt(10, 10))
	assert.InDelta(t, 127, mask.AlphaAt(5, 0).A, 2)
	assert.Equal(t, uint8(0), mask.AlphaAt(5, 5).A)
}

func TestRasterizeEmpty(t *testing.T) {
	mask := Rasterize(path.Path{}, math32.Identity2(), image.Pt(4, 4))
	assert.Equal(t, uint8(0), mask.AlphaAt(1, 1).A)

	mask = Rasterize(*path.New().Circle(1, 1, 1), math32.Identity2(), image.Point{})
	assert.True(t, mask.Bounds().Empty())
}
