// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Based on https://github.com/srwiley/rasterx:
// Copyright 2018 by the rasterx Authors. All rights reserved.
// Created 2018 by S.R.Wiley

package gradient

import (
	"image/color"

	"cogentcore.org/canvas/colors"
	"cogentcore.org/canvas/math32"
)

// Linear represents a linear gradient. It implements the [image.Image] interface.
type Linear struct {
	Base

	// the starting point of the gradient (x1 and y1 in SVG)
	Start math32.Vector2

	// the ending point of the gradient (x2 and y2 in SVG)
	End math32.Vector2

	// computed current render versions of the starting and ending
	// points, updated by [Linear.Update]
	rStart math32.Vector2
	rEnd   math32.Vector2
}

// NewLinear returns a new top-to-bottom [Linear] gradient.
func NewLinear() *Linear {
	return &Linear{
		Base: NewBase(),
		// default in CSS is top-to-bottom
		End: math32.Vec2(0, 1),
	}
}

// AddStop adds a new stop with the given color, position, and
// optional opacity to the gradient.
func (l *Linear) AddStop(color color.RGBA, pos float32, opacity ...float32) *Linear {
	l.Base.AddStop(color, pos, opacity...)
	return l
}

// SetStart sets the [Linear.Start]: the starting point of the gradient (x1 and y1 in SVG)
func (l *Linear) SetStart(v math32.Vector2) *Linear { l.Start = v; return l }

// SetEnd sets the [Linear.End]: the ending point of the gradient (x2 and y2 in SVG)
func (l *Linear) SetEnd(v math32.Vector2) *Linear { l.End = v; return l }

// SetSpread sets the [Base.Spread]: the spread method used for the gradient
func (l *Linear) SetSpread(v Spreads) *Linear { l.Spread = v; return l }

// SetUnits sets the [Base.Units]: the units to use for the gradient
func (l *Linear) SetUnits(v Units) *Linear { l.Units = v; return l }

// SetBox sets the [Base.Box]: the bounding box of the object with the gradient
func (l *Linear) SetBox(v math32.Box2) *Linear { l.Box = v; return l }

// SetTransform sets the [Base.Transform]: the gradient's own transformation matrix
func (l *Linear) SetTransform(v math32.Matrix2) *Linear { l.Transform = v; return l }

// SetOpacity sets the [Base.Opacity]: the overall object opacity multiplier
func (l *Linear) SetOpacity(v float32) *Linear { l.Opacity = v; return l }

// Update updates the computed fields of the gradient, using
// the given object opacity, current bounding box, and additional
// object-level transform (i.e., the current painting transform),
// which is applied in addition to the gradient's own Transform.
// This must be called before rendering the gradient, and it should only be called then.
func (l *Linear) Update(opacity float32, box math32.Box2, objTransform math32.Matrix2) {
	l.Box = box
	l.Opacity = opacity
	l.UpdateBase()

	if l.Units == ObjectBoundingBox {
		sz := l.Box.Size()
		l.rStart = l.Box.Min.Add(sz.Mul(l.Start))
		l.rEnd = l.Box.Min.Add(sz.Mul(l.End))
	} else {
		l.rStart = l.Transform.MulVector2AsPoint(l.Start)
		l.rEnd = l.Transform.MulVector2AsPoint(l.End)
		l.rStart = objTransform.MulVector2AsPoint(l.rStart)
		l.rEnd = objTransform.MulVector2AsPoint(l.rEnd)
	}
}

// At returns the color of the gradient at the given point.
func (l *Linear) At(x, y int) color.Color {
	switch len(l.Stops) {
	case 0:
		return color.RGBA{}
	case 1:
		return colors.AsRGBA(l.Stops[0].OpacityColor(l.Opacity))
	}

	d := l.rEnd.Sub(l.rStart)
	dd := d.X*d.X + d.Y*d.Y // self inner prod
	if dd == 0 {
		// degenerate gradient with coincident start and end
		// renders as the final stop color everywhere
		return colors.AsRGBA(l.GetColor(1))
	}

	pt := math32.Vec2(float32(x)+0.5, float32(y)+0.5)
	if l.Units == ObjectBoundingBox {
		pt = l.boxTransform.MulVector2AsPoint(pt)
	}
	df := pt.Sub(l.rStart)
	pos := (df.X*d.X + df.Y*d.Y) / dd
	return colors.AsRGBA(l.GetColor(pos))
}
