// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import "image/color"

// Commonly used colors, with values following the CSS standard.
// The full set of CSS named colors is available through [FromName]
// and [FromString].
var (
	Transparent = color.RGBA{0, 0, 0, 0}
	Black       = color.RGBA{0, 0, 0, 255}
	White       = color.RGBA{255, 255, 255, 255}
	Gray        = color.RGBA{128, 128, 128, 255}
	Darkgray    = color.RGBA{169, 169, 169, 255}
	Lightgray   = color.RGBA{211, 211, 211, 255}
	Silver      = color.RGBA{192, 192, 192, 255}
	Red         = color.RGBA{255, 0, 0, 255}
	Darkred     = color.RGBA{139, 0, 0, 255}
	Crimson     = color.RGBA{220, 20, 60, 255}
	Maroon      = color.RGBA{128, 0, 0, 255}
	Brown       = color.RGBA{165, 42, 42, 255}
	Salmon      = color.RGBA{250, 128, 114, 255}
	Orange      = color.RGBA{255, 165, 0, 255}
	Gold        = color.RGBA{255, 215, 0, 255}
	Wheat       = color.RGBA{245, 222, 179, 255}
	Tan         = color.RGBA{210, 180, 140, 255}
	Yellow      = color.RGBA{255, 255, 0, 255}
	Olive       = color.RGBA{128, 128, 0, 255}
	Lime        = color.RGBA{0, 255, 0, 255}
	Green       = color.RGBA{0, 128, 0, 255}
	Darkgreen   = color.RGBA{0, 100, 0, 255}
	Teal        = color.RGBA{0, 128, 128, 255}
	Cyan        = color.RGBA{0, 255, 255, 255}
	Lightblue   = color.RGBA{173, 216, 230, 255}
	Skyblue     = color.RGBA{135, 206, 235, 255}
	Steelblue   = color.RGBA{70, 130, 180, 255}
	Royalblue   = color.RGBA{65, 105, 225, 255}
	Blue        = color.RGBA{0, 0, 255, 255}
	Navy        = color.RGBA{0, 0, 128, 255}
	Darkblue    = color.RGBA{0, 0, 139, 255}
	Indigo      = color.RGBA{75, 0, 130, 255}
	Purple      = color.RGBA{128, 0, 128, 255}
	Magenta     = color.RGBA{255, 0, 255, 255}
	Violet      = color.RGBA{238, 130, 238, 255}
	Pink        = color.RGBA{255, 192, 203, 255}
	Slategray   = color.RGBA{112, 128, 144, 255}
)
