// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"fmt"
	"image"

	"cogentcore.org/canvas/base/errors"
	"cogentcore.org/canvas/math32"
)

// ErrEmptyStops is returned by [NewPaint] when a gradient style
// has an empty stop list.
var ErrEmptyStops = errors.New("canvas: gradient has no color stops")

// SizeError is returned by [NewDrawTarget] when the requested
// pixel size is not positive in both dimensions.
type SizeError struct {
	Size image.Point
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("canvas: draw target size %dx%d is not positive", e.Size.X, e.Size.Y)
}

// RectError is returned by draw operations given a rectangle with
// non-finite coordinates or a negative width or height.
type RectError struct {
	Rect math32.Box2
}

func (e *RectError) Error() string {
	return fmt.Sprintf("canvas: invalid rectangle %v", e.Rect)
}

// ShortBufferError is returned by surface operations when the given
// pixel buffer is too small for the stated surface size.
type ShortBufferError struct {
	Size image.Point
	Got  int
	Want int
}

func (e *ShortBufferError) Error() string {
	return fmt.Sprintf("canvas: pixel buffer has %d bytes, need %d for %dx%d surface", e.Got, e.Want, e.Size.X, e.Size.Y)
}

// DegenerateGradientError is returned by [NewPaint] when a gradient
// style has geometry that does not define a usable color ramp:
// a linear gradient whose start and end points coincide, or a radial
// gradient whose outer radius is not positive or equals its inner one.
type DegenerateGradientError struct {
	Start       math32.Vector2
	End         math32.Vector2
	StartRadius float32
	EndRadius   float32
	Radial      bool
}

func (e *DegenerateGradientError) Error() string {
	if e.Radial {
		return fmt.Sprintf("canvas: degenerate radial gradient with radii %g, %g", e.StartRadius, e.EndRadius)
	}
	return fmt.Sprintf("canvas: degenerate linear gradient from %v to %v", e.Start, e.End)
}
