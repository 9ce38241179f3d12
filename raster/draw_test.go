// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fillRGBA(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	draw.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
	return img
}

func fillAlpha(a uint8) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, 4, 4))
	for i := range mask.Pix {
		mask.Pix[i] = a
	}
	return mask
}

func TestDraw(t *testing.T) {
	blue := color.RGBA{0, 0, 255, 255}
	red := color.RGBA{255, 0, 0, 255}
	dst := fillRGBA(blue)

	Draw(dst, image.Rect(0, 0, 2, 4), image.NewUniform(red), nil, nil, Source)
	assert.Equal(t, red, dst.RGBAAt(1, 1))
	assert.Equal(t, blue, dst.RGBAAt(3, 1))

	// a fully transparent source over is a no-op
	Draw(dst, dst.Bounds(), image.NewUniform(color.RGBA{}), nil, nil, SourceOver)
	assert.Equal(t, red, dst.RGBAAt(1, 1))
	assert.Equal(t, blue, dst.RGBAAt(3, 1))
}

func TestDrawCoverage(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	red := color.RGBA{255, 0, 0, 255}
	dst := fillRGBA(white)

	Draw(dst, dst.Bounds(), image.NewUniform(red), fillAlpha(128), nil, SourceOver)
	assert.Equal(t, color.RGBA{255, 127, 127, 255}, dst.RGBAAt(2, 2))
}

func TestDrawClear(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	dst := fillRGBA(white)

	cover := image.NewAlpha(image.Rect(0, 0, 4, 4))
	for y := 1; y < 3; y++ {
		for x := 1; x < 3; x++ {
			cover.SetAlpha(x, y, color.Alpha{255})
		}
	}
	Draw(dst, dst.Bounds(), image.NewUniform(color.RGBA{}), cover, nil, Clear)
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(1, 1))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(2, 2))
	assert.Equal(t, white, dst.RGBAAt(0, 0))
	assert.Equal(t, white, dst.RGBAAt(3, 3))
}

func TestDrawClip(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	red := color.RGBA{255, 0, 0, 255}
	dst := fillRGBA(white)

	clip := image.NewAlpha(image.Rect(0, 0, 4, 4))
	clip.SetAlpha(1, 1, color.Alpha{255})
	Draw(dst, dst.Bounds(), image.NewUniform(red), fillAlpha(255), clip, SourceOver)
	assert.Equal(t, red, dst.RGBAAt(1, 1))
	assert.Equal(t, white, dst.RGBAAt(2, 2))
}

func TestIntersectMask(t *testing.T) {
	a := fillAlpha(255)
	b := image.NewAlpha(image.Rect(0, 0, 4, 4))
	b.SetAlpha(1, 1, color.Alpha{128})

	m := IntersectMask(a, b)
	assert.Equal(t, uint8(128), m.AlphaAt(1, 1).A)
	assert.Equal(t, uint8(0), m.AlphaAt(2, 2).A)

	m = IntersectMask(fillAlpha(128), b)
	assert.Equal(t, uint8(64), m.AlphaAt(1, 1).A)

	assert.Same(t, b, IntersectMask(nil, b))
	assert.Same(t, a, IntersectMask(a, nil))
	assert.Nil(t, IntersectMask(nil, nil))
}
