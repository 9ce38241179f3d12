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

// Radial represents a radial gradient. It implements the [image.Image] interface.
type Radial struct {
	Base

	// the center point of the gradient (cx and cy in SVG)
	Center math32.Vector2

	// the focal point of the gradient (fx and fy in SVG)
	Focal math32.Vector2

	// the radius of the gradient (rx and ry in SVG)
	Radius math32.Vector2

	// computed current render versions of the center, focal point,
	// and radius, updated by [Radial.Update]
	rCenter math32.Vector2
	rFocal  math32.Vector2
	rRadius math32.Vector2
}

// NewRadial returns a new centered [Radial] gradient.
func NewRadial() *Radial {
	return &Radial{
		Base: NewBase(),
		// default is fully centered
		Center: math32.Vector2Scalar(0.5),
		Focal:  math32.Vector2Scalar(0.5),
		Radius: math32.Vector2Scalar(0.5),
	}
}

// AddStop adds a new stop with the given color, position, and
// optional opacity to the gradient.
func (r *Radial) AddStop(color color.RGBA, pos float32, opacity ...float32) *Radial {
	r.Base.AddStop(color, pos, opacity...)
	return r
}

// SetCenter sets the [Radial.Center]: the center point of the gradient (cx and cy in SVG)
func (r *Radial) SetCenter(v math32.Vector2) *Radial { r.Center = v; return r }

// SetFocal sets the [Radial.Focal]: the focal point of the gradient (fx and fy in SVG)
func (r *Radial) SetFocal(v math32.Vector2) *Radial { r.Focal = v; return r }

// SetRadius sets the [Radial.Radius]: the radius of the gradient (rx and ry in SVG)
func (r *Radial) SetRadius(v math32.Vector2) *Radial { r.Radius = v; return r }

// SetSpread sets the [Base.Spread]: the spread method used for the gradient
func (r *Radial) SetSpread(v Spreads) *Radial { r.Spread = v; return r }

// SetUnits sets the [Base.Units]: the units to use for the gradient
func (r *Radial) SetUnits(v Units) *Radial { r.Units = v; return r }

// SetBox sets the [Base.Box]: the bounding box of the object with the gradient
func (r *Radial) SetBox(v math32.Box2) *Radial { r.Box = v; return r }

// SetTransform sets the [Base.Transform]: the gradient's own transformation matrix
func (r *Radial) SetTransform(v math32.Matrix2) *Radial { r.Transform = v; return r }

// SetOpacity sets the [Base.Opacity]: the overall object opacity multiplier
func (r *Radial) SetOpacity(v float32) *Radial { r.Opacity = v; return r }

// Update updates the computed fields of the gradient, using
// the given object opacity, current bounding box, and additional
// object-level transform (i.e., the current painting transform),
// which is applied in addition to the gradient's own Transform.
// This must be called before rendering the gradient, and it should only be called then.
func (r *Radial) Update(opacity float32, box math32.Box2, objTransform math32.Matrix2) {
	r.Box = box
	r.Opacity = opacity
	r.UpdateBase()

	c, f, rs := r.Center, r.Focal, r.Radius
	if r.Units == ObjectBoundingBox {
		sz := r.Box.Size()
		c = r.Box.Min.Add(sz.Mul(c))
		f = r.Box.Min.Add(sz.Mul(f))
		rs.SetMul(sz)
	} else {
		c = r.Transform.MulVector2AsPoint(c)
		f = r.Transform.MulVector2AsPoint(f)
		xs, ys := r.Transform.ExtractScale()
		rs.SetMul(math32.Vec2(math32.Abs(xs), math32.Abs(ys)))

		c = objTransform.MulVector2AsPoint(c)
		f = objTransform.MulVector2AsPoint(f)
		xs, ys = objTransform.ExtractScale()
		rs.SetMul(math32.Vec2(math32.Abs(xs), math32.Abs(ys)))
	}
	r.rCenter, r.rFocal, r.rRadius = c, f, rs
}

// epsilonF is the tolerance for the focal point being
// on the edge of the gradient circle.
const epsilonF = 1e-5

// At returns the color of the gradient at the given point.
func (r *Radial) At(x, y int) color.Color {
	switch len(r.Stops) {
	case 0:
		return color.RGBA{}
	case 1:
		return colors.AsRGBA(r.Stops[0].OpacityColor(r.Opacity))
	}

	if r.rRadius.X == 0 || r.rRadius.Y == 0 {
		return colors.AsRGBA(r.GetColor(1))
	}

	pt := math32.Vec2(float32(x)+0.5, float32(y)+0.5)
	if r.Units == ObjectBoundingBox {
		pt = r.boxTransform.MulVector2AsPoint(pt)
	}

	if r.rFocal == r.rCenter {
		// When the focal point and center are the same, the gradient
		// position is just the distance from the center scaled by the radius.
		d := pt.Sub(r.rCenter)
		pos := math32.Sqrt(d.X*d.X/(r.rRadius.X*r.rRadius.X) + d.Y*d.Y/(r.rRadius.Y*r.rRadius.Y))
		return colors.AsRGBA(r.GetColor(pos))
	}

	f := r.rFocal.Sub(r.rCenter).Div(r.rRadius)
	if f.LengthSquared() > 1-epsilonF {
		// the focal point must be inside of the gradient circle,
		// so we clamp it to just inside of the edge
		f.SetMulScalar((1 - epsilonF) / f.Length())
	}

	// in the coordinate system normalized by the radius and centered at the
	// center, the gradient position of a point p relative to the focal point f
	// is the ratio of its distance from f to the distance from f through p to
	// the unit circle. solving |f + t*e|^2 = 1 for e = p - f gives the
	// intersection at parameter t, and the position is then 1/t.
	e := pt.Sub(r.rCenter).Div(r.rRadius).Sub(f)
	le := e.LengthSquared()
	if le == 0 {
		return colors.AsRGBA(r.GetColor(0))
	}
	ef := e.Dot(f)
	t := (-ef + math32.Sqrt(ef*ef+le*(1-f.LengthSquared()))) / le
	return colors.AsRGBA(r.GetColor(1 / t))
}
