// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package path

import (
	"errors"

	"cogentcore.org/canvas/math32"
)

// ErrFinished is returned by [Builder.Finish] when the builder
// has already been consumed.
var ErrFinished = errors.New("path: builder already finished")

// Builder incrementally constructs a [Path] from canvas drawing commands.
// The zero value is ready to use. Call [Builder.Finish] to obtain the
// built path; the builder cannot be reused after that.
type Builder struct {
	p        Path
	finished bool
}

// NewBuilder returns a new empty path builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// MoveTo starts a new subpath at (x,y).
func (b *Builder) MoveTo(x, y float32) {
	b.p.MoveTo(x, y)
}

// LineTo adds a line from the current point to (x,y).
// If the path is empty, it starts at the origin.
func (b *Builder) LineTo(x, y float32) {
	b.p.LineTo(x, y)
}

// QuadraticCurveTo adds a quadratic Bézier curve with control point
// (cpx,cpy) and end point (x,y).
func (b *Builder) QuadraticCurveTo(cpx, cpy, x, y float32) {
	b.p.QuadTo(cpx, cpy, x, y)
}

// BezierCurveTo adds a cubic Bézier curve with control points
// (cp1x,cp1y) and (cp2x,cp2y) and end point (x,y).
func (b *Builder) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float32) {
	b.p.CubeTo(cp1x, cp1y, cp2x, cp2y, x, y)
}

// Close closes the current subpath.
func (b *Builder) Close() {
	b.p.Close()
}

// Arc adds a circular arc centered at (cx,cy) with the given radius,
// from startAngle to endAngle in radians. It is equivalent to
// [Builder.Ellipse] with equal radii and no rotation.
func (b *Builder) Arc(cx, cy, radius, startAngle, endAngle float32, anticlockwise bool) {
	b.Ellipse(cx, cy, radius, radius, 0.0, startAngle, endAngle, anticlockwise)
}

// Ellipse adds an elliptical arc centered at (cx,cy) with radii rx and ry,
// rotated by rotation radians, running from startAngle to endAngle in
// radians. Angles follow the canvas convention: they are measured from the
// positive x axis, and anticlockwise selects the direction of travel between
// them. A line is first added from the current point to the start of the
// arc, and the arc itself is added as a series of quadratic Bézier curves
// spanning at most 90 degrees each.
func (b *Builder) Ellipse(cx, cy, rx, ry, rotation, startAngle, endAngle float32, anticlockwise bool) {
	start, end := startAngle, endAngle

	// wrap angles into [0,2pi) when the range carries a redundant full turn
	if !anticlockwise && start > end+2.0*math32.Pi ||
		anticlockwise && end > start+2.0*math32.Pi {
		start = AngleNorm(start)
		end = AngleNorm(end)
	}

	// signed sweep between the angles, where a difference of exactly 2pi
	// is a full circle and not an empty arc
	var sweep float32
	if anticlockwise {
		if end-start == 2.0*math32.Pi {
			sweep = -2.0 * math32.Pi
		} else if end > start {
			sweep = -(2.0*math32.Pi - (end - start))
		} else {
			sweep = -(start - end)
		}
	} else {
		if start-end == 2.0*math32.Pi {
			sweep = 2.0 * math32.Pi
		} else if start > end {
			sweep = 2.0*math32.Pi - (start - end)
		} else {
			sweep = end - start
		}
	}

	pos := EllipsePos(rx, ry, rotation, cx, cy, start)
	b.p.LineTo(pos.X, pos.Y)
	if Equal(sweep, 0.0) {
		return
	}

	n := int(math32.Ceil(math32.Abs(sweep) / (0.5 * math32.Pi)))
	dtheta := math32.Abs(sweep) / float32(n) // evenly spread the n points
	kappa := math32.Tan(dtheta / 2.0)
	sweeping := 0.0 < sweep
	if !sweeping {
		dtheta = -dtheta
	}

	startDeriv := EllipseDeriv(rx, ry, rotation, sweeping, start)
	for i := 1; i < n+1; i++ {
		theta := start + float32(i)*dtheta
		end := EllipsePos(rx, ry, rotation, cx, cy, theta)
		cp := pos.Add(startDeriv.MulScalar(kappa))
		b.p.QuadTo(cp.X, cp.Y, end.X, end.Y)

		startDeriv = EllipseDeriv(rx, ry, rotation, sweeping, theta)
		pos = end
	}
}

// CurrentPoint returns the current pen position, or false if no point
// has been emitted yet.
func (b *Builder) CurrentPoint() (math32.Vector2, bool) {
	if len(b.p) == 0 {
		return math32.Vector2{}, false
	}
	return b.p.Pos(), true
}

// Finish consumes the builder and returns the built path.
// The returned path does not alias the builder's storage.
// Calling Finish again returns [ErrFinished].
func (b *Builder) Finish() (Path, error) {
	if b.finished {
		return nil, ErrFinished
	}
	b.finished = true
	return b.p.Clone(), nil
}

// CopyToBuilder returns a new [Builder] whose path is a copy of p,
// so that more commands can be added without mutating the original.
func (p Path) CopyToBuilder() *Builder {
	return &Builder{p: p.Clone()}
}

// TransformedCopyToBuilder returns a new [Builder] whose path is a copy
// of p with the given transformation matrix applied to every point.
func (p Path) TransformedCopyToBuilder(m math32.Matrix2) *Builder {
	return &Builder{p: p.Clone().Transform(m)}
}

// ContainsPoint reports whether (x,y) is exactly one of the segment end
// points of the path after transforming it by the given matrix.
// It tests vertex membership only, not containment in the filled region.
func (p Path) ContainsPoint(x, y float32, m math32.Matrix2) bool {
	q := p.Clone().Transform(m)
	for scan := q.Scanner(); scan.Scan(); {
		if scan.Cmd() == Close {
			continue
		}
		end := scan.End()
		if end.X == x && end.Y == y {
			return true
		}
	}
	return false
}
