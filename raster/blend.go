// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"errors"
	"image/color"

	"cogentcore.org/canvas/colors"
	"cogentcore.org/canvas/math32"
)

// BlendModes are the compositing and blending operators for combining
// a source pixel with a backdrop pixel. The Porter-Duff operators through
// [Modulate] act on premultiplied values directly, while the separable and
// non-separable blend modes follow the CSS compositing and blending model:
// the color channels are blended un-premultiplied and the result is
// composited source-over.
type BlendModes int32

const (
	// Clear replaces the backdrop with transparent black.
	Clear BlendModes = iota
	// Source replaces the backdrop with the source.
	Source
	// Destination keeps the backdrop unchanged.
	Destination
	// SourceOver layers the source on top of the backdrop.
	SourceOver
	// DestinationOver layers the backdrop on top of the source.
	DestinationOver
	// SourceIn keeps the source only where the backdrop is opaque.
	SourceIn
	// DestinationIn keeps the backdrop only where the source is opaque.
	DestinationIn
	// SourceOut keeps the source only where the backdrop is transparent.
	SourceOut
	// DestinationOut keeps the backdrop only where the source is transparent.
	DestinationOut
	// SourceAtop layers the source over the backdrop, confined to the
	// backdrop coverage.
	SourceAtop
	// DestinationAtop layers the backdrop over the source, confined to the
	// source coverage.
	DestinationAtop
	// Xor keeps the source and the backdrop where they do not overlap.
	Xor
	// Plus adds the source and the backdrop, saturating at opaque white.
	Plus
	// Modulate multiplies the source and the backdrop channel-wise,
	// including alpha.
	Modulate
	// Screen multiplies the channel complements, always lightening.
	Screen
	// Overlay multiplies or screens depending on the backdrop channel.
	Overlay
	// Darken keeps the darker of each channel pair.
	Darken
	// Lighten keeps the lighter of each channel pair.
	Lighten
	// ColorDodge brightens the backdrop to reflect the source.
	ColorDodge
	// ColorBurn darkens the backdrop to reflect the source.
	ColorBurn
	// HardLight multiplies or screens depending on the source channel.
	HardLight
	// SoftLight darkens or lightens gently depending on the source channel.
	SoftLight
	// Difference subtracts the darker channel from the lighter one.
	Difference
	// Exclusion is like [Difference] with lower contrast.
	Exclusion
	// Multiply multiplies the backdrop and source channels, always darkening.
	Multiply
	// Hue uses the hue of the source with the saturation and luminosity
	// of the backdrop.
	Hue
	// Saturation uses the saturation of the source with the hue and
	// luminosity of the backdrop.
	Saturation
	// Color uses the hue and saturation of the source with the luminosity
	// of the backdrop.
	Color
	// Luminosity uses the luminosity of the source with the hue and
	// saturation of the backdrop.
	Luminosity
)

var blendModeNames = [...]string{"clear", "source", "destination",
	"sourceOver", "destinationOver", "sourceIn", "destinationIn",
	"sourceOut", "destinationOut", "sourceAtop", "destinationAtop",
	"xor", "plus", "modulate", "screen", "overlay", "darken", "lighten",
	"colorDodge", "colorBurn", "hardLight", "softLight", "difference",
	"exclusion", "multiply", "hue", "saturation", "color", "luminosity"}

// String returns the camel-case name of the blend mode.
func (bm BlendModes) String() string {
	if bm < 0 || int(bm) >= len(blendModeNames) {
		return "sourceOver"
	}
	return blendModeNames[bm]
}

// SetString sets the blend mode from its camel-case name.
func (bm *BlendModes) SetString(str string) error {
	for i, nm := range blendModeNames {
		if str == nm {
			*bm = BlendModes(i)
			return nil
		}
	}
	return errors.New("raster.BlendModes: invalid blend mode: " + str)
}

// Blend combines the premultiplied source pixel s with the premultiplied
// backdrop pixel d, returning the premultiplied result.
func (bm BlendModes) Blend(d, s color.RGBA) color.RGBA {
	switch bm {
	case Clear:
		return color.RGBA{}
	case Source:
		return s
	case Destination:
		return d
	}
	df, sf := toFloat(d), toFloat(s)
	var rf colors.RGBAF32
	switch bm {
	case SourceOver:
		rf = porterDuff(df, sf, 1, 1-sf.A)
	case DestinationOver:
		rf = porterDuff(df, sf, 1-df.A, 1)
	case SourceIn:
		rf = porterDuff(df, sf, df.A, 0)
	case DestinationIn:
		rf = porterDuff(df, sf, 0, sf.A)
	case SourceOut:
		rf = porterDuff(df, sf, 1-df.A, 0)
	case DestinationOut:
		rf = porterDuff(df, sf, 0, 1-sf.A)
	case SourceAtop:
		rf = porterDuff(df, sf, df.A, 1-sf.A)
	case DestinationAtop:
		rf = porterDuff(df, sf, 1-df.A, sf.A)
	case Xor:
		rf = porterDuff(df, sf, 1-df.A, 1-sf.A)
	case Plus:
		rf = porterDuff(df, sf, 1, 1)
	case Modulate:
		rf = colors.RGBAF32{R: sf.R * df.R, G: sf.G * df.G, B: sf.B * df.B, A: sf.A * df.A}
	case Screen:
		rf = blendSeparable(df, sf, screen)
	case Overlay:
		rf = blendSeparable(df, sf, overlay)
	case Darken:
		rf = blendSeparable(df, sf, math32.Min)
	case Lighten:
		rf = blendSeparable(df, sf, math32.Max)
	case ColorDodge:
		rf = blendSeparable(df, sf, colorDodge)
	case ColorBurn:
		rf = blendSeparable(df, sf, colorBurn)
	case HardLight:
		rf = blendSeparable(df, sf, hardLight)
	case SoftLight:
		rf = blendSeparable(df, sf, softLight)
	case Difference:
		rf = blendSeparable(df, sf, difference)
	case Exclusion:
		rf = blendSeparable(df, sf, exclusion)
	case Multiply:
		rf = blendSeparable(df, sf, multiply)
	case Hue, Saturation, Color, Luminosity:
		rf = blendNonSeparable(df, sf, bm)
	default:
		rf = porterDuff(df, sf, 1, 1-sf.A)
	}
	return fromFloat(rf)
}

func toFloat(c color.RGBA) colors.RGBAF32 {
	return colors.RGBAF32{R: float32(c.R) / 255, G: float32(c.G) / 255, B: float32(c.B) / 255, A: float32(c.A) / 255}
}

func fromFloat(c colors.RGBAF32) color.RGBA {
	return color.RGBA{
		R: uint8(math32.Clamp(c.R, 0, 1)*255 + 0.5),
		G: uint8(math32.Clamp(c.G, 0, 1)*255 + 0.5),
		B: uint8(math32.Clamp(c.B, 0, 1)*255 + 0.5),
		A: uint8(math32.Clamp(c.A, 0, 1)*255 + 0.5),
	}
}

// porterDuff combines premultiplied pixels as s*fs + d*fd.
func porterDuff(d, s colors.RGBAF32, fs, fd float32) colors.RGBAF32 {
	return colors.RGBAF32{
		R: s.R*fs + d.R*fd,
		G: s.G*fs + d.G*fd,
		B: s.B*fs + d.B*fd,
		A: s.A*fs + d.A*fd,
	}
}

// unpremultiply returns the straight-alpha form of a premultiplied pixel.
func unpremultiply(c colors.RGBAF32) colors.NRGBAF32 {
	if c.A == 0 {
		return colors.NRGBAF32{}
	}
	return colors.NRGBAF32{R: c.R / c.A, G: c.G / c.A, B: c.B / c.A, A: c.A}
}

// composite forms one premultiplied output channel from the un-premultiplied
// source, backdrop, and blended channel values, compositing source-over.
func composite(cs, cb, c, as, ab float32) float32 {
	return (1-ab)*as*cs + (1-as)*ab*cb + as*ab*c
}

// blendSeparable applies a channel-wise blend function to the
// un-premultiplied channels and composites the result source-over.
func blendSeparable(d, s colors.RGBAF32, blend func(cb, cs float32) float32) colors.RGBAF32 {
	db, sb := unpremultiply(d), unpremultiply(s)
	return colors.RGBAF32{
		R: composite(sb.R, db.R, blend(db.R, sb.R), s.A, d.A),
		G: composite(sb.G, db.G, blend(db.G, sb.G), s.A, d.A),
		B: composite(sb.B, db.B, blend(db.B, sb.B), s.A, d.A),
		A: s.A + d.A*(1-s.A),
	}
}

func multiply(cb, cs float32) float32 {
	return cb * cs
}

func screen(cb, cs float32) float32 {
	return cb + cs - cb*cs
}

func overlay(cb, cs float32) float32 {
	return hardLight(cs, cb)
}

func colorDodge(cb, cs float32) float32 {
	if cb == 0 {
		return 0
	}
	if cs == 1 {
		return 1
	}
	return math32.Min(1, cb/(1-cs))
}

func colorBurn(cb, cs float32) float32 {
	if cb == 1 {
		return 1
	}
	if cs == 0 {
		return 0
	}
	return 1 - math32.Min(1, (1-cb)/cs)
}

func hardLight(cb, cs float32) float32 {
	if cs <= 0.5 {
		return multiply(cb, 2*cs)
	}
	return screen(cb, 2*cs-1)
}

func softLight(cb, cs float32) float32 {
	if cs <= 0.5 {
		return cb - (1-2*cs)*cb*(1-cb)
	}
	var dc float32
	if cb <= 0.25 {
		dc = ((16*cb-12)*cb + 4) * cb
	} else {
		dc = math32.Sqrt(cb)
	}
	return cb + (2*cs-1)*(dc-cb)
}

func difference(cb, cs float32) float32 {
	return math32.Abs(cb - cs)
}

func exclusion(cb, cs float32) float32 {
	return cb + cs - 2*cb*cs
}

// rgb is an un-premultiplied color triple for the non-separable blend modes.
type rgb struct {
	r, g, b float32
}

func lum(c rgb) float32 {
	return 0.3*c.r + 0.59*c.g + 0.11*c.b
}

func clipColor(c rgb) rgb {
	l := lum(c)
	n := math32.Min(c.r, math32.Min(c.g, c.b))
	x := math32.Max(c.r, math32.Max(c.g, c.b))
	if n < 0 {
		c.r = l + (c.r-l)*l/(l-n)
		c.g = l + (c.g-l)*l/(l-n)
		c.b = l + (c.b-l)*l/(l-n)
	}
	if x > 1 {
		c.r = l + (c.r-l)*(1-l)/(x-l)
		c.g = l + (c.g-l)*(1-l)/(x-l)
		c.b = l + (c.b-l)*(1-l)/(x-l)
	}
	return c
}

func setLum(c rgb, l float32) rgb {
	d := l - lum(c)
	return clipColor(rgb{c.r + d, c.g + d, c.b + d})
}

func sat(c rgb) float32 {
	return math32.Max(c.r, math32.Max(c.g, c.b)) - math32.Min(c.r, math32.Min(c.g, c.b))
}

// setSat scales the channels of c to have saturation s,
// keeping their relative order.
func setSat(c rgb, s float32) rgb {
	n := math32.Min(c.r, math32.Min(c.g, c.b))
	x := math32.Max(c.r, math32.Max(c.g, c.b))
	if x <= n {
		return rgb{}
	}
	mid := func(v float32) float32 {
		return (v - n) * s / (x - n)
	}
	return rgb{mid(c.r), mid(c.g), mid(c.b)}
}

// blendNonSeparable blends all three channels together using the hue,
// saturation, and luminosity decomposition and composites source-over.
func blendNonSeparable(d, s colors.RGBAF32, bm BlendModes) colors.RGBAF32 {
	db, sb := unpremultiply(d), unpremultiply(s)
	cb := rgb{db.R, db.G, db.B}
	cs := rgb{sb.R, sb.G, sb.B}
	var c rgb
	switch bm {
	case Hue:
		c = setLum(setSat(cs, sat(cb)), lum(cb))
	case Saturation:
		c = setLum(setSat(cb, sat(cs)), lum(cb))
	case Color:
		c = setLum(cs, lum(cb))
	case Luminosity:
		c = setLum(cb, lum(cs))
	}
	return colors.RGBAF32{
		R: composite(cs.r, cb.r, c.r, s.A, d.A),
		G: composite(cs.g, cb.g, c.g, s.A, d.A),
		B: composite(cs.b, cb.b, c.b, s.A, d.A),
		A: s.A + d.A*(1-s.A),
	}
}
