// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides functions for creating, converting,
// parsing, and blending colors.
package colors

import (
	"fmt"
	"image/color"
	"strings"

	"cogentcore.org/canvas/math32"
	"golang.org/x/image/colornames"
)

// IsNil returns whether the given color is the nil initial
// default color.
func IsNil(c color.Color) bool {
	return AsRGBA(c) == color.RGBA{}
}

// FromRGB makes a new RGBA color from the given
// RGB uint8 values, using 255 for A.
func FromRGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// FromNRGBA makes a new RGBA color from the given
// non-alpha-premultiplied RGBA uint8 values.
func FromNRGBA(r, g, b, a uint8) color.RGBA {
	return AsRGBA(color.NRGBA{r, g, b, a})
}

// AsRGBA returns the given color as an RGBA color.
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// AsString returns the given color as a string,
// using its String method if it exists, and formatting
// it as rgba(r, g, b, a) otherwise.
func AsString(c color.Color) string {
	if s, ok := c.(fmt.Stringer); ok {
		return s.String()
	}
	r := AsRGBA(c)
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", r.R, r.G, r.B, r.A)
}

// FromName returns the color value specified by the given
// CSS standard color name, using [colornames.Map].
func FromName(name string) (color.RGBA, error) {
	c, ok := colornames.Map[name]
	if !ok {
		return color.RGBA{}, fmt.Errorf("colors.FromName: name not found: %q", name)
	}
	return c, nil
}

// FromString returns a color value from the given string.
// FromString accepts the following types of strings: standard
// color names as defined by the CSS standard (e.g. "red" and
// "cornflowerblue"), hex values (e.g. "#e4e4e4"), rgb and rgba
// values (e.g. "rgb(230, 100, 120)"), "none" or "off" for a
// completely transparent color, and "currentcolor" or "inherit"
// for the given optional base color.
func FromString(str string, base ...color.Color) (color.RGBA, error) {
	if len(str) == 0 { // consider it null
		return color.RGBA{}, nil
	}
	lstr := strings.ToLower(str)
	switch {
	case lstr[0] == '#':
		return FromHex(lstr)
	case strings.HasPrefix(lstr, "rgb"):
		val := lstr[strings.Index(lstr, "(")+1:]
		val = strings.TrimSuffix(val, ")")
		val = strings.ReplaceAll(val, " ", "")
		var r, g, b, a int
		a = 255
		if strings.Count(val, ",") == 3 {
			format := "%d,%d,%d,%d"
			fmt.Sscanf(val, format, &r, &g, &b, &a)
		} else {
			format := "%d,%d,%d"
			fmt.Sscanf(val, format, &r, &g, &b)
		}
		return FromNRGBA(uint8(r), uint8(g), uint8(b), uint8(a)), nil
	}
	switch lstr {
	case "none", "off":
		return color.RGBA{}, nil
	case "transparent":
		return Transparent, nil
	case "currentcolor", "inherit":
		if len(base) == 0 || base[0] == nil {
			return color.RGBA{}, fmt.Errorf("colors.FromString: base color must be provided for %q", str)
		}
		return AsRGBA(base[0]), nil
	}
	return FromName(lstr)
}

// FromHex parses the given non-alpha-premultiplied hex color string
// and returns the resulting color. FromHex supports the formats
// RGB, RGBA, RRGGBB, and RRGGBBAA, with an optional leading #.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b int
	a := 255
	switch len(hex) {
	case 3:
		format := "%1x%1x%1x"
		fmt.Sscanf(hex, format, &r, &g, &b)
		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 4:
		format := "%1x%1x%1x%1x"
		fmt.Sscanf(hex, format, &r, &g, &b, &a)
		r |= r << 4
		g |= g << 4
		b |= b << 4
		a |= a << 4
	case 6:
		format := "%02x%02x%02x"
		fmt.Sscanf(hex, format, &r, &g, &b)
	case 8:
		format := "%02x%02x%02x%02x"
		fmt.Sscanf(hex, format, &r, &g, &b, &a)
	default:
		return color.RGBA{}, fmt.Errorf("colors.FromHex: could not process %q", hex)
	}
	return FromNRGBA(uint8(r), uint8(g), uint8(b), uint8(a)), nil
}

// AsHex returns the color as a standard 2-hexadecimal-digits-per-component
// non-alpha-premultiplied hex color string with a leading #. It also
// includes the alpha channel if it is not 255.
func AsHex(c color.Color) string {
	if c == nil {
		return "nil"
	}
	r := color.NRGBAModel.Convert(c).(color.NRGBA)
	if r.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", r.R, r.G, r.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", r.R, r.G, r.B, r.A)
}

// WithR returns the given color with the red
// component (R) set to the given value.
func WithR(c color.Color, r uint8) color.RGBA {
	rc := AsRGBA(c)
	rc.R = r
	return rc
}

// WithG returns the given color with the green
// component (G) set to the given value.
func WithG(c color.Color, g uint8) color.RGBA {
	rc := AsRGBA(c)
	rc.G = g
	return rc
}

// WithB returns the given color with the blue
// component (B) set to the given value.
func WithB(c color.Color, b uint8) color.RGBA {
	rc := AsRGBA(c)
	rc.B = b
	return rc
}

// WithA returns the given color with the
// transparency (A) set to the given value,
// scaling the RGB components accordingly,
// as RGBA values are alpha-premultiplied.
func WithA(c color.Color, a uint8) color.RGBA {
	return WithAF32(c, float32(a)/255)
}

// WithAF32 returns the given color with the transparency
// (A) set to the given float32 value between 0 and 1,
// scaling the RGB components accordingly,
// as RGBA values are alpha-premultiplied.
func WithAF32(c color.Color, a float32) color.RGBA {
	rgba := AsRGBA(c)
	a = math32.Clamp(a, 0, 1)
	rgba.R = uint8(float32(rgba.R) * a)
	rgba.G = uint8(float32(rgba.G) * a)
	rgba.B = uint8(float32(rgba.B) * a)
	rgba.A = uint8(a * 255)
	return rgba
}

// ApplyOpacity applies the given opacity (0-1) to the given color
// and returns the result. It is different from [WithAF32] in that it
// sets the transparency (A) value of the color to the current value
// times the given value instead of just directly to the given value.
func ApplyOpacity(c color.Color, opacity float32) color.RGBA {
	r := AsRGBA(c)
	if opacity == 1 {
		return r
	}
	a := r.A
	return WithAF32(c, float32(a)/255*opacity)
}
