// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "image/color"

// RGBAF32 stores alpha-premultiplied RGBA values in a float32 0 to 1
// normalized format, which is more useful for converting to other spaces.
type RGBAF32 struct {
	R, G, B, A float32
}

// RGBA implements the color.Color interface.
func (c RGBAF32) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R*65535 + 0.5)
	g = uint32(c.G*65535 + 0.5)
	b = uint32(c.B*65535 + 0.5)
	a = uint32(c.A*65535 + 0.5)
	return
}

// NRGBAF32 stores non-alpha-premultiplied RGBA values in a float32 0 to 1
// normalized format, which is more useful for converting to other spaces.
type NRGBAF32 struct {
	R, G, B, A float32
}

// RGBA implements the color.Color interface.
func (c NRGBAF32) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R*c.A*65535 + 0.5)
	g = uint32(c.G*c.A*65535 + 0.5)
	b = uint32(c.B*c.A*65535 + 0.5)
	a = uint32(c.A*65535 + 0.5)
	return
}

// RGBAF32Model is the [color.Model] for [RGBAF32].
var RGBAF32Model color.Model = color.ModelFunc(rgbaf32Model)

// NRGBAF32Model is the [color.Model] for [NRGBAF32].
var NRGBAF32Model color.Model = color.ModelFunc(nrgbaf32Model)

func rgbaf32Model(c color.Color) color.Color {
	if _, ok := c.(RGBAF32); ok {
		return c
	}
	r, g, b, a := c.RGBA()
	return RGBAF32{float32(r) / 65535, float32(g) / 65535, float32(b) / 65535, float32(a) / 65535}
}

func nrgbaf32Model(c color.Color) color.Color {
	if _, ok := c.(NRGBAF32); ok {
		return c
	}
	r, g, b, a := c.RGBA()
	if a > 0 {
		// RGBA returns alpha-premultiplied values, so we need to divide
		// by alpha to get back the original RGB.
		r = (r * 0xffff) / a
		g = (g * 0xffff) / a
		b = (b * 0xffff) / a
	}
	return NRGBAF32{float32(r) / 65535, float32(g) / 65535, float32(b) / 65535, float32(a) / 65535}
}
