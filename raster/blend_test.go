// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBlendPorterDuff(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	white := color.RGBA{255, 255, 255, 255}
	halfRed := color.RGBA{128, 0, 0, 128}
	halfBlue := color.RGBA{0, 0, 128, 128}

	assert.Equal(t, color.RGBA{}, Clear.Blend(white, red))
	assert.Equal(t, red, Source.Blend(white, red))
	assert.Equal(t, white, Destination.Blend(white, red))

	assert.Equal(t, red, SourceOver.Blend(halfBlue, red))
	assert.Equal(t, color.RGBA{255, 127, 127, 255}, SourceOver.Blend(white, halfRed))
	assert.Equal(t, color.RGBA{127, 0, 128, 255}, DestinationOver.Blend(halfBlue, red))

	assert.Equal(t, halfBlue, DestinationIn.Blend(halfBlue, white))
	assert.Equal(t, color.RGBA{0, 0, 64, 64}, DestinationIn.Blend(halfBlue, color.RGBA{0, 0, 0, 128}))
	assert.Equal(t, color.RGBA{128, 0, 0, 128}, SourceAtop.Blend(halfBlue, red))

	// opaque over opaque cancels out entirely
	assert.Equal(t, color.RGBA{}, Xor.Blend(blue, red))
	assert.Equal(t, halfRed, Xor.Blend(color.RGBA{}, halfRed))

	assert.Equal(t, color.RGBA{255, 80, 35, 255}, Plus.Blend(color.RGBA{100, 50, 25, 200}, color.RGBA{200, 30, 10, 100}))
	assert.Equal(t, color.RGBA{10, 20, 30, 255}, Modulate.Blend(color.RGBA{10, 20, 30, 255}, white))
	assert.Equal(t, color.RGBA{64, 64, 64, 255}, Modulate.Blend(color.RGBA{128, 128, 128, 255}, color.RGBA{128, 128, 128, 255}))
}

func TestBlendSeparable(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	blue := color.RGBA{0, 0, 255, 255}
	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}
	gray := color.RGBA{128, 128, 128, 255}

	assert.Equal(t, color.RGBA{128, 64, 0, 255}, Multiply.Blend(color.RGBA{255, 128, 0, 255}, gray))
	assert.Equal(t, color.RGBA{255, 0, 255, 255}, Screen.Blend(red, blue))

	assert.Equal(t, color.RGBA{100, 50, 30, 255}, Darken.Blend(color.RGBA{100, 200, 30, 255}, color.RGBA{150, 50, 30, 255}))
	assert.Equal(t, color.RGBA{150, 200, 30, 255}, Lighten.Blend(color.RGBA{100, 200, 30, 255}, color.RGBA{150, 50, 30, 255}))

	assert.Equal(t, color.RGBA{201, 0, 0, 255}, ColorDodge.Blend(color.RGBA{100, 0, 0, 255}, gray))
	assert.Equal(t, color.RGBA{145, 145, 145, 255}, ColorBurn.Blend(color.RGBA{200, 200, 200, 255}, gray))

	assert.Equal(t, white, HardLight.Blend(color.RGBA{100, 0, 0, 255}, white))
	assert.Equal(t, white, SoftLight.Blend(white, white))
	assert.Equal(t, black, SoftLight.Blend(black, black))

	// overlay is hard light with the layers swapped
	d := color.RGBA{200, 100, 50, 255}
	s := color.RGBA{30, 160, 240, 255}
	assert.Equal(t, HardLight.Blend(s, d), Overlay.Blend(d, s))

	assert.Equal(t, color.RGBA{155, 155, 155, 255}, Difference.Blend(white, color.RGBA{100, 100, 100, 255}))
	assert.Equal(t, black, Exclusion.Blend(white, white))

	// a transparent source leaves the backdrop unchanged
	assert.Equal(t, red, Multiply.Blend(red, color.RGBA{}))
	assert.Equal(t, red, SoftLight.Blend(red, color.RGBA{}))
}

func TestBlendNonSeparable(t *testing.T) {
	red := color.RGBA{255, 0, 0, 255}
	green := color.RGBA{0, 255, 0, 255}
	gray51 := color.RGBA{51, 51, 51, 255}
	gray128 := color.RGBA{128, 128, 128, 255}
	gray153 := color.RGBA{153, 153, 153, 255}

	// luminosity of the source on a gray backdrop swaps the grays
	assert.Equal(t, gray51, Luminosity.Blend(gray153, gray51))
	// a gray source has no hue, leaving the backdrop luminosity
	assert.Equal(t, gray153, Hue.Blend(gray153, gray51))
	// a gray source drains all saturation from the backdrop
	assert.Equal(t, color.RGBA{150, 150, 150, 255}, Saturation.Blend(green, gray128))
	// dark luminosity on red requires clipping the out-of-range channels
	assert.Equal(t, color.RGBA{170, 0, 0, 255}, Luminosity.Blend(red, gray51))
}

func TestBlendModesString(t *testing.T) {
	assert.Equal(t, "sourceOver", SourceOver.String())
	assert.Equal(t, "colorDodge", ColorDodge.String())

	var bm BlendModes
	assert.NoError(t, bm.SetString("luminosity"))
	assert.Equal(t, Luminosity, bm)
	assert.Error(t, bm.SetString("bogus"))

	for bm := Clear; bm <= Luminosity; bm++ {
		var got BlendModes
		assert.NoError(t, got.SetString(bm.String()))
		assert.Equal(t, bm, got)
	}
}
