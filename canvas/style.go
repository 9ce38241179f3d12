// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"image"
	"image/color"

	"cogentcore.org/canvas/colors/gradient"
	"github.com/anthonynsimon/bild/clone"
)

// FillOrStrokeStyle is a value of the canvas fillStyle or strokeStyle
// attribute: a solid color, a gradient, or a surface pattern.
// It is one of [ColorStyle], [LinearGradientStyle],
// [RadialGradientStyle], or [SurfaceStyle]. [NewPaint] converts a
// style into the [Paint] that draw operations consume.
type FillOrStrokeStyle interface {
	isStyle()
}

// ColorStyle is a solid premultiplied color.
type ColorStyle struct {
	Color color.RGBA
}

// LinearGradientStyle is a linear gradient along the line from
// (X0, Y0) to (X1, Y1), in user space.
type LinearGradientStyle struct {
	X0, Y0 float64
	X1, Y1 float64
	Stops  []GradientStop
}

// RadialGradientStyle is a two-point radial gradient from the circle
// centered at (X0, Y0) with radius R0 to the circle centered at
// (X1, Y1) with radius R1, in user space. The start circle acts as
// the focal point of the ramp; rendering uses the end radius only.
type RadialGradientStyle struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []GradientStop
}

// SurfaceStyle is a pattern sampled from a surface: Size.X*Size.Y
// premultiplied RGBA pixels in row-major order, 4 bytes per pixel.
// The repeat flags are carried from the canvas API, but rendering
// currently always pads, extending the edge pixels outward.
type SurfaceStyle struct {
	Data    []byte
	Size    image.Point
	RepeatX bool
	RepeatY bool
}

func (ColorStyle) isStyle()          {}
func (LinearGradientStyle) isStyle() {}
func (RadialGradientStyle) isStyle() {}
func (SurfaceStyle) isStyle()        {}

// SurfaceStyleFromImage returns a [SurfaceStyle] with the pixels of
// the given image, converting it to premultiplied RGBA as needed.
func SurfaceStyleFromImage(img image.Image) SurfaceStyle {
	rgba := clone.AsRGBA(img)
	return SurfaceStyle{Data: rgba.Pix, Size: rgba.Rect.Size()}
}

// GradientStop is one color stop of a gradient style. Offset is the
// position of the stop along the gradient, from 0 at the start to 1
// at the end. Color is premultiplied.
type GradientStop struct {
	Offset float64
	Color  color.RGBA
}

// CollectGradientStops converts gradient style stops to the gradient
// package representation. Stops keep the order the caller added them
// in; they are not sorted by offset.
func CollectGradientStops(stops []GradientStop) []gradient.Stop {
	gs := make([]gradient.Stop, len(stops))
	for i, st := range stops {
		gs[i] = gradient.Stop{Color: st.Color, Opacity: 1, Pos: float32(st.Offset)}
	}
	return gs
}
