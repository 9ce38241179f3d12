// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"fmt"
	"image"
	"image/color"

	"cogentcore.org/canvas/colors"
	"cogentcore.org/canvas/colors/gradient"
	"cogentcore.org/canvas/math32"
)

// Filters are the sampling filters available to surface patterns.
type Filters int32

const (
	// FilterBilinear blends the four nearest pixels by the fractional
	// distances to each. It is the default filter.
	FilterBilinear Filters = iota

	// FilterNearest takes the single nearest pixel.
	FilterNearest
)

func (f Filters) String() string {
	switch f {
	case FilterNearest:
		return "nearest"
	default:
		return "bilinear"
	}
}

// Paint is a resolved fill or stroke: the shader image that supplies
// source pixels for compositing. Gradient and pattern shaders have the
// canvas transform from the time the style was set baked in, so paints
// are recreated whenever a style is set; see [Backend.SetFillStyle].
type Paint struct {
	// Shader supplies the source color for each device pixel.
	Shader image.Image
}

// NewPaint resolves a fill or stroke style into a [Paint] under the
// given canvas transform, which is baked into gradient and pattern
// shaders so that later transform changes do not move styles that are
// already set. It returns [ErrEmptyStops], a [DegenerateGradientError],
// or a [ShortBufferError] for styles that cannot produce pixels.
func NewPaint(style FillOrStrokeStyle, m math32.Matrix2) (Paint, error) {
	switch st := style.(type) {
	case ColorStyle:
		return Paint{Shader: colors.Uniform(st.Color)}, nil
	case LinearGradientStyle:
		if len(st.Stops) == 0 {
			return Paint{}, ErrEmptyStops
		}
		start := math32.Vec2(float32(st.X0), float32(st.Y0))
		end := math32.Vec2(float32(st.X1), float32(st.Y1))
		if start == end || !finite(start.X, start.Y, end.X, end.Y) {
			return Paint{}, &DegenerateGradientError{Start: start, End: end}
		}
		g := gradient.NewLinear().SetStart(start).SetEnd(end).
			SetUnits(gradient.UserSpaceOnUse).SetTransform(m)
		g.Stops = CollectGradientStops(st.Stops)
		return Paint{Shader: g}, nil
	case RadialGradientStyle:
		if len(st.Stops) == 0 {
			return Paint{}, ErrEmptyStops
		}
		r0, r1 := float32(st.R0), float32(st.R1)
		if r1 <= 0 || r0 == r1 || !finite(r0, r1) {
			return Paint{}, &DegenerateGradientError{StartRadius: r0, EndRadius: r1, Radial: true}
		}
		g := gradient.NewRadial().SetCenter(math32.Vec2(float32(st.X1), float32(st.Y1))).
			SetFocal(math32.Vec2(float32(st.X0), float32(st.Y0))).
			SetRadius(math32.Vec2(r1, r1)).
			SetUnits(gradient.UserSpaceOnUse).SetTransform(m)
		g.Stops = CollectGradientStops(st.Stops)
		return Paint{Shader: g}, nil
	case SurfaceStyle:
		p, err := NewPattern(st.Data, st.Size, gradient.Pad, FilterBilinear, 1, m)
		if err != nil {
			return Paint{}, err
		}
		return Paint{Shader: p}, nil
	}
	return Paint{}, fmt.Errorf("canvas: unknown fill or stroke style %T", style)
}

// IsZeroSizeGradient reports whether the paint is a gradient that
// cannot produce any pixels. [NewPaint] rejects degenerate gradient
// geometry up front, so no such paint can exist and this always
// reports false; it is kept for callers that gate drawing on it.
func (pt *Paint) IsZeroSizeGradient() bool {
	return false
}

// shader returns the image to composite from for a draw under the
// given object transform and global opacity. Gradient and pattern
// shaders are updated in place.
func (pt *Paint) shader(opacity float32, box math32.Box2, m math32.Matrix2) image.Image {
	switch s := pt.Shader.(type) {
	case gradient.Gradient:
		s.Update(opacity, box, m)
		return s
	case *Pattern:
		s.Update(opacity, m)
		return s
	case *image.Uniform:
		if opacity < 1 {
			return colors.Uniform(colors.ApplyOpacity(s.C, opacity))
		}
		return s
	}
	if pt.Shader == nil {
		return colors.Uniform(colors.Black)
	}
	return pt.Shader
}

// finite reports whether all of the given values are finite numbers.
func finite(vs ...float32) bool {
	for _, v := range vs {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Pattern is an infinite [image.Image] that samples a source surface
// under a transform, for use as a paint shader. The transform maps
// pattern space to user space; sampling inverts it and applies the
// filter, extending the edge pixels outward under [gradient.Pad].
type Pattern struct {
	// Data is the premultiplied RGBA pixels of the source surface,
	// row-major, 4 bytes per pixel.
	Data []byte

	// Size is the pixel size of the source surface.
	Size image.Point

	// Spread is how the pattern continues beyond the surface.
	Spread gradient.Spreads

	// Filter is the sampling filter.
	Filter Filters

	// Opacity is the overall opacity multiplier, 0-1.
	Opacity float32

	// Transform maps pattern space to user space.
	Transform math32.Matrix2

	// inverse maps device space back to pattern space.
	inverse math32.Matrix2

	// opacity is the effective render opacity, set by [Pattern.Update].
	opacity float32
}

// NewPattern returns a new [Pattern] sampling the given surface,
// size.X*size.Y premultiplied RGBA pixels in row-major order.
func NewPattern(data []byte, size image.Point, spread gradient.Spreads, filter Filters, opacity float32, transform math32.Matrix2) (*Pattern, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, &SizeError{Size: size}
	}
	if want := size.X * size.Y * 4; len(data) < want {
		return nil, &ShortBufferError{Size: size, Got: len(data), Want: want}
	}
	p := &Pattern{Data: data, Size: size, Spread: spread, Filter: filter, Opacity: opacity, Transform: transform}
	p.Update(1, math32.Identity2())
	return p, nil
}

// Update prepares the pattern for rendering under the given object
// transform, which applies on top of the pattern's own transform,
// with the pattern opacity multiplied by the given opacity.
func (p *Pattern) Update(opacity float32, objTransform math32.Matrix2) {
	p.opacity = p.Opacity * opacity
	p.inverse = objTransform.Mul(p.Transform).Inverse()
}

func (p *Pattern) ColorModel() color.Model {
	return color.RGBAModel
}

func (p *Pattern) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

// At returns the pattern color at the given device pixel.
func (p *Pattern) At(x, y int) color.Color {
	pt := p.inverse.MulVector2AsPoint(math32.Vec2(float32(x)+0.5, float32(y)+0.5))
	var c color.RGBA
	if p.Filter == FilterNearest {
		c = p.texel(int(math32.Floor(pt.X)), int(math32.Floor(pt.Y)))
	} else {
		c = p.bilinear(pt)
	}
	if p.opacity < 1 {
		c = colors.ApplyOpacity(c, p.opacity)
	}
	return c
}

// bilinear samples the four texels around the given pattern space
// point and blends them by the fractional distances.
func (p *Pattern) bilinear(pt math32.Vector2) color.RGBA {
	fx := pt.X - 0.5
	fy := pt.Y - 0.5
	x0 := math32.Floor(fx)
	y0 := math32.Floor(fy)
	tx := fx - x0
	ty := fy - y0
	ix, iy := int(x0), int(y0)
	top := lerpColor(p.texel(ix, iy), p.texel(ix+1, iy), tx)
	bot := lerpColor(p.texel(ix, iy+1), p.texel(ix+1, iy+1), tx)
	return lerpColor(top, bot, ty)
}

// texel returns the surface pixel at the given pattern coordinates,
// extended beyond the surface per the spread.
func (p *Pattern) texel(x, y int) color.RGBA {
	x = spreadIndex(x, p.Size.X, p.Spread)
	y = spreadIndex(y, p.Size.Y, p.Spread)
	i := (y*p.Size.X + x) * 4
	return color.RGBA{R: p.Data[i], G: p.Data[i+1], B: p.Data[i+2], A: p.Data[i+3]}
}

// spreadIndex maps the index into [0, n) by clamping, wrapping, or
// mirroring per the spread.
func spreadIndex(i, n int, spread gradient.Spreads) int {
	switch spread {
	case gradient.Repeat:
		i %= n
		if i < 0 {
			i += n
		}
	case gradient.Reflect:
		i %= 2 * n
		if i < 0 {
			i += 2 * n
		}
		if i >= n {
			i = 2*n - 1 - i
		}
	default:
		i = min(max(i, 0), n-1)
	}
	return i
}

// lerpColor interpolates between premultiplied colors per channel.
func lerpColor(a, b color.RGBA, t float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(a.R) + t*(float32(b.R)-float32(a.R)) + 0.5),
		G: uint8(float32(a.G) + t*(float32(b.G)-float32(a.G)) + 0.5),
		B: uint8(float32(a.B) + t*(float32(b.B)-float32(a.B)) + 0.5),
		A: uint8(float32(a.A) + t*(float32(b.A)-float32(a.A)) + 0.5),
	}
}
