// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package path

import "cogentcore.org/canvas/math32"

// DirectionIndex returns the direction of the path at the given index
// into Path and t in [0.0,1.0]. Path must not contain subpaths,
// and will return the path's starting direction when i points
// to a MoveTo, or the path's final direction when i points to
// a Close of zero-length.
func DirectionIndex(p Path, i int, t float32) math32.Vector2 {
	last := len(p)
	if p[last-1] == Close && EqualPoint(math32.Vec2(p[last-CmdLen(Close)-3], p[last-CmdLen(Close)-2]), math32.Vec2(p[last-3], p[last-2])) {
		// point-closed
		last -= CmdLen(Close)
	}

	if i == 0 {
		// get path's starting direction when i points to MoveTo
		i = 4
		t = 0.0
	} else if i < len(p) && i == last {
		// get path's final direction when i points to zero-length Close
		i -= CmdLen(p[i-1])
		t = 1.0
	}
	if i < 0 || len(p) <= i || last < i+CmdLen(p[i]) {
		return math32.Vector2{}
	}

	cmd := p[i]
	var start math32.Vector2
	if i == 0 {
		start = math32.Vec2(p[last-3], p[last-2])
	} else {
		start = math32.Vec2(p[i-3], p[i-2])
	}

	i += CmdLen(cmd)
	end := math32.Vec2(p[i-3], p[i-2])
	switch cmd {
	case LineTo, Close:
		return end.Sub(start).Normal()
	case QuadTo:
		cp := math32.Vec2(p[i-5], p[i-4])
		return QuadraticBezierDeriv(start, cp, end, t).Normal()
	case CubeTo:
		cp1 := math32.Vec2(p[i-7], p[i-6])
		cp2 := math32.Vec2(p[i-5], p[i-4])
		return CubicBezierDeriv(start, cp1, cp2, end, t).Normal()
	case ArcTo:
		rx, ry, phi := p[i-7], p[i-6], p[i-5]
		large, sweep := ToArcFlags(p[i-4])
		_, _, theta0, theta1 := EllipseToCenter(start.X, start.Y, rx, ry, phi, large, sweep, end.X, end.Y)
		theta := theta0 + t*(theta1-theta0)
		return EllipseDeriv(rx, ry, phi, sweep, theta).Normal()
	}
	return math32.Vector2{}
}

// CoordDirections returns the direction of the segment start/end points.
// It will return the average direction at the intersection of two
// end points, and for an open path it will simply return the direction
// of the start and end points of the path.
func (p Path) CoordDirections() []math32.Vector2 {
	if len(p) <= 4 {
		return []math32.Vector2{{}}
	}
	last := len(p)
	if p[last-1] == Close && EqualPoint(math32.Vec2(p[last-CmdLen(Close)-3], p[last-CmdLen(Close)-2]), math32.Vec2(p[last-3], p[last-2])) {
		// point-closed
		last -= CmdLen(Close)
	}

	dirs := []math32.Vector2{}
	var closed bool
	var dirPrev math32.Vector2
	for i := 4; i < last; {
		cmd := p[i]
		dir := DirectionIndex(p, i, 0.0)
		if i == 0 {
			dirs = append(dirs, dir)
		} else {
			dirs = append(dirs, dirPrev.Add(dir).Normal())
		}
		dirPrev = DirectionIndex(p, i, 1.0)
		closed = cmd == Close
		i += CmdLen(cmd)
	}
	if closed {
		dirs[0] = dirs[0].Add(dirPrev).Normal()
		dirs = append(dirs, dirs[0])
	} else {
		dirs = append(dirs, dirPrev)
	}
	return dirs
}

// Bounds returns the exact bounding box rectangle of the path.
func (p Path) Bounds() math32.Box2 {
	if len(p) < 4 {
		return math32.Box2{}
	}

	// first command is MoveTo
	start, end := math32.Vec2(p[1], p[2]), math32.Vector2{}
	xmin, xmax := start.X, start.X
	ymin, ymax := start.Y, start.Y
	for i := 4; i < len(p); {
		cmd := p[i]
		switch cmd {
		case MoveTo, LineTo, Close:
			end = p.EndPoint(i)
			xmin = math32.Min(xmin, end.X)
			xmax = math32.Max(xmax, end.X)
			ymin = math32.Min(ymin, end.Y)
			ymax = math32.Max(ymax, end.Y)
		case QuadTo:
			var cp math32.Vector2
			cp, end = p.QuadToPoints(i)

			xmin = math32.Min(xmin, end.X)
			xmax = math32.Max(xmax, end.X)
			if tdenom := (start.X - 2*cp.X + end.X); !Equal(tdenom, 0.0) {
				if t := (start.X - cp.X) / tdenom; InInterval(t, 0.0, 1.0) {
					x := QuadraticBezierPos(start, cp, end, t)
					xmin = math32.Min(xmin, x.X)
					xmax = math32.Max(xmax, x.X)
				}
			}

			ymin = math32.Min(ymin, end.Y)
			ymax = math32.Max(ymax, end.Y)
			if tdenom := (start.Y - 2*cp.Y + end.Y); !Equal(tdenom, 0.0) {
				if t := (start.Y - cp.Y) / tdenom; InInterval(t, 0.0, 1.0) {
					y := QuadraticBezierPos(start, cp, end, t)
					ymin = math32.Min(ymin, y.Y)
					ymax = math32.Max(ymax, y.Y)
				}
			}
		case CubeTo:
			var cp1, cp2 math32.Vector2
			cp1, cp2, end = p.CubeToPoints(i)

			a := -start.X + 3*cp1.X - 3*cp2.X + end.X
			b := 2*start.X - 4*cp1.X + 2*cp2.X
			c := -start.X + cp1.X
			t1, t2 := solveQuadraticFormula(a, b, c)

			xmin = math32.Min(xmin, end.X)
			xmax = math32.Max(xmax, end.X)
			if !math32.IsNaN(t1) && InInterval(t1, 0.0, 1.0) {
				x1 := CubicBezierPos(start, cp1, cp2, end, t1)
				xmin = math32.Min(xmin, x1.X)
				xmax = math32.Max(xmax, x1.X)
			}
			if !math32.IsNaN(t2) && InInterval(t2, 0.0, 1.0) {
				x2 := CubicBezierPos(start, cp1, cp2, end, t2)
				xmin = math32.Min(xmin, x2.X)
				xmax = math32.Max(xmax, x2.X)
			}

			a = -start.Y + 3*cp1.Y - 3*cp2.Y + end.Y
			b = 2*start.Y - 4*cp1.Y + 2*cp2.Y
			c = -start.Y + cp1.Y
			t1, t2 = solveQuadraticFormula(a, b, c)

			ymin = math32.Min(ymin, end.Y)
			ymax = math32.Max(ymax, end.Y)
			if !math32.IsNaN(t1) && InInterval(t1, 0.0, 1.0) {
				y1 := CubicBezierPos(start, cp1, cp2, end, t1)
				ymin = math32.Min(ymin, y1.Y)
				ymax = math32.Max(ymax, y1.Y)
			}
			if !math32.IsNaN(t2) && InInterval(t2, 0.0, 1.0) {
				y2 := CubicBezierPos(start, cp1, cp2, end, t2)
				ymin = math32.Min(ymin, y2.Y)
				ymax = math32.Max(ymax, y2.Y)
			}
		case ArcTo:
			var rx, ry, phi float32
			var large, sweep bool
			rx, ry, phi, large, sweep, end = p.ArcToPoints(i)
			cx, cy, theta0, theta1 := EllipseToCenter(start.X, start.Y, rx, ry, phi, large, sweep, end.X, end.Y)

			// find the four extremes (top, bottom, left, right) and apply those
			// who are between theta1 and theta2
			// x(theta) = cx + rx*cos(theta)*cos(phi) - ry*sin(theta)*sin(phi)
			// y(theta) = cy + rx*cos(theta)*sin(phi) + ry*sin(theta)*cos(phi)
			// be aware that positive rotation appears clockwise in SVGs
			// (non-Cartesian coordinate system)
			// we can now find the angles of the extremes
			sinphi, cosphi := math32.Sincos(phi)
			thetaRight := math32.Atan2(-ry*sinphi, rx*cosphi)
			thetaTop := math32.Atan2(ry*cosphi, rx*sinphi)
			thetaLeft := thetaRight + math32.Pi
			thetaBottom := thetaTop + math32.Pi

			dx := math32.Sqrt(rx*rx*cosphi*cosphi + ry*ry*sinphi*sinphi)
			dy := math32.Sqrt(rx*rx*sinphi*sinphi + ry*ry*cosphi*cosphi)
			if IsAngleBetween(thetaLeft, theta0, theta1) {
				xmin = math32.Min(xmin, cx-dx)
			}
			if IsAngleBetween(thetaRight, theta0, theta1) {
				xmax = math32.Max(xmax, cx+dx)
			}
			if IsAngleBetween(thetaBottom, theta0, theta1) {
				ymin = math32.Min(ymin, cy-dy)
			}
			if IsAngleBetween(thetaTop, theta0, theta1) {
				ymax = math32.Max(ymax, cy+dy)
			}
			xmin = math32.Min(xmin, end.X)
			xmax = math32.Max(xmax, end.X)
			ymin = math32.Min(ymin, end.Y)
			ymax = math32.Max(ymax, end.Y)
		}
		i += CmdLen(cmd)
		start = end
	}
	return math32.B2(xmin, ymin, xmax, ymax)
}

// Length returns the length of the path in millimeters.
// The length is approximated for cubic Béziers.
func (p Path) Length() float32 {
	d := float32(0.0)
	var start, end math32.Vector2
	for i := 0; i < len(p); {
		cmd := p[i]
		switch cmd {
		case MoveTo:
			end = math32.Vec2(p[i+1], p[i+2])
		case LineTo, Close:
			end = math32.Vec2(p[i+1], p[i+2])
			d += end.Sub(start).Length()
		case QuadTo:
			cp := math32.Vec2(p[i+1], p[i+2])
			end = math32.Vec2(p[i+3], p[i+4])
			d += quadraticBezierLength(start, cp, end)
		case CubeTo:
			cp1 := math32.Vec2(p[i+1], p[i+2])
			cp2 := math32.Vec2(p[i+3], p[i+4])
			end = math32.Vec2(p[i+5], p[i+6])
			d += cubicBezierLength(start, cp1, cp2, end)
		case ArcTo:
			var rx, ry, phi float32
			var large, sweep bool
			rx, ry, phi, large, sweep, end = p.ArcToPoints(i)
			_, _, theta1, theta2 := EllipseToCenter(start.X, start.Y, rx, ry, phi, large, sweep, end.X, end.Y)
			d += ellipseLength(rx, ry, theta1, theta2)
		}
		i += CmdLen(cmd)
		start = end
	}
	return d
}

// IsFlat returns true if the path consists of solely line segments,
// that is only MoveTo, LineTo and Close commands.
func (p Path) IsFlat() bool {
	for i := 0; i < len(p); {
		cmd := p[i]
		if cmd == QuadTo || cmd == CubeTo || cmd == ArcTo {
			return false
		}
		i += CmdLen(cmd)
	}
	return true
}
