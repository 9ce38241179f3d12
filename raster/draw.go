// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package raster

import (
	"image"
	"image/color"
	"image/draw"

	"cogentcore.org/canvas/colors"
)

// Draw composites src into dst over the given rectangle using the blend
// mode, masked by the coverage and clip masks. Source pixels are sampled
// at destination coordinates. Either mask may be nil, meaning full
// coverage. Where coverage is partial, the blended result is linearly
// interpolated with the existing destination pixel, so [Clear] and
// [Source] erase and replace exactly where coverage is full and leave
// uncovered pixels untouched.
func Draw(dst *image.RGBA, rect image.Rectangle, src image.Image, cover, clip *image.Alpha, mode BlendModes) {
	r := rect.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	at := func(x, y int) color.RGBA {
		return colors.AsRGBA(src.At(x, y))
	}
	switch s := src.(type) {
	case *image.Uniform:
		sc := colors.AsRGBA(s.C)
		at = func(x, y int) color.RGBA { return sc }
	case *image.RGBA:
		at = s.RGBAAt
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m := uint32(0xff)
			if cover != nil {
				m = uint32(cover.AlphaAt(x, y).A)
			}
			if clip != nil {
				m = m * uint32(clip.AlphaAt(x, y).A) / 0xff
			}
			if m == 0 {
				continue
			}
			d := dst.RGBAAt(x, y)
			out := mode.Blend(d, at(x, y))
			if m < 0xff {
				out = lerp(d, out, m)
			}
			dst.SetRGBA(x, y, out)
		}
	}
}

// lerp interpolates between d and s by m in the 0 to 0xff range.
func lerp(d, s color.RGBA, m uint32) color.RGBA {
	im := 0xff - m
	return color.RGBA{
		R: uint8((uint32(s.R)*m + uint32(d.R)*im + 0x7f) / 0xff),
		G: uint8((uint32(s.G)*m + uint32(d.G)*im + 0x7f) / 0xff),
		B: uint8((uint32(s.B)*m + uint32(d.B)*im + 0x7f) / 0xff),
		A: uint8((uint32(s.A)*m + uint32(d.A)*im + 0x7f) / 0xff),
	}
}

// IntersectMask returns the intersection of the two coverage masks,
// multiplying their values pixel-wise over the bounds of a. If either
// mask is nil, meaning full coverage, it returns the other one.
func IntersectMask(a, b *image.Alpha) *image.Alpha {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	out := image.NewAlpha(a.Rect)
	draw.DrawMask(out, out.Rect, a, a.Rect.Min, b, a.Rect.Min, draw.Src)
	return out
}
