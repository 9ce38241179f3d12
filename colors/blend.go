// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"

	"cogentcore.org/canvas/math32"
)

// BlendRGB blends the two colors in the RGB color space,
// using the given proportion of the first color versus
// the second color (pct = 0-100).
func BlendRGB(pct float32, x, y color.Color) color.RGBA {
	fx := NRGBAF32Model.Convert(x).(NRGBAF32)
	fy := NRGBAF32Model.Convert(y).(NRGBAF32)
	pct = math32.Clamp(pct, 0, 100)
	px := pct / 100
	py := 1 - px
	fx.R = px*fx.R + py*fy.R
	fx.G = px*fx.G + py*fy.G
	fx.B = px*fx.B + py*fy.B
	fx.A = px*fx.A + py*fy.A
	return AsRGBA(fx)
}

// AlphaBlend blends the given colors, handling alpha blending correctly.
// The src color is rendered on top of the dst color.
func AlphaBlend(dst, src color.Color) color.RGBA {
	res := color.RGBA{}

	dr, dg, db, da := dst.RGBA()
	sr, sg, sb, sa := src.RGBA()
	a := 0xffff - sa

	res.R = uint8((sr + dr*a/0xffff) >> 8)
	res.G = uint8((sg + dg*a/0xffff) >> 8)
	res.B = uint8((sb + db*a/0xffff) >> 8)
	res.A = uint8((sa + da*a/0xffff) >> 8)
	return res
}
