// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package path

import (
	"cogentcore.org/canvas/math32"
)

// QuadraticToCubicBezier converts a quadratic Bézier to a cubic Bézier,
// returning the two new control points.
func QuadraticToCubicBezier(p0, p1, p2 math32.Vector2) (math32.Vector2, math32.Vector2) {
	c1 := p0.Lerp(p1, 2.0/3.0)
	c2 := p2.Lerp(p1, 2.0/3.0)
	return c1, c2
}

// QuadraticBezierPos returns the position on the quadratic Bézier at t.
func QuadraticBezierPos(p0, p1, p2 math32.Vector2, t float32) math32.Vector2 {
	p0 = p0.MulScalar(1.0 - 2.0*t + t*t)
	p1 = p1.MulScalar(2.0*t - 2.0*t*t)
	p2 = p2.MulScalar(t * t)
	return p0.Add(p1).Add(p2)
}

// QuadraticBezierDeriv returns the derivative of the quadratic Bézier at t.
func QuadraticBezierDeriv(p0, p1, p2 math32.Vector2, t float32) math32.Vector2 {
	p0 = p0.MulScalar(-2.0 + 2.0*t)
	p1 = p1.MulScalar(2.0 - 4.0*t)
	p2 = p2.MulScalar(2.0 * t)
	return p0.Add(p1).Add(p2)
}

// quadraticBezierCurvatureRadius returns the curvature radius of the
// quadratic Bézier at t. It is negative when curving clockwise
// (with x right and y up) and NaN for a straight line.
func quadraticBezierCurvatureRadius(p0, p1, p2 math32.Vector2, t float32) float32 {
	cp1, cp2 := QuadraticToCubicBezier(p0, p1, p2)
	return CubicBezierCurvatureRadius(p0, cp1, cp2, p2, t)
}

// see https://malczak.linuxpl.com/blog/quadratic-bezier-curve-length/
func quadraticBezierLength(p0, p1, p2 math32.Vector2) float32 {
	a := p0.Sub(p1.MulScalar(2.0)).Add(p2)
	b := p1.MulScalar(2.0).Sub(p0.MulScalar(2.0))
	A := 4.0 * a.Dot(a)
	B := 4.0 * a.Dot(b)
	C := b.Dot(b)
	if Equal(A, 0.0) {
		// p1 is in the middle between p0 and p2,
		// so it is a straight line from p0 to p2
		return p2.Sub(p0).Length()
	}

	Sabc := 2.0 * math32.Sqrt(A+B+C)
	A2 := math32.Sqrt(A)
	A32 := 2.0 * A * A2
	C2 := 2.0 * math32.Sqrt(C)
	BA := B / A2
	return (A32*Sabc + A2*B*(Sabc-C2) + (4.0*C*A-B*B)*math32.Log((2.0*A2+BA+Sabc)/(BA+C2))) / (4.0 * A32)
}

// quadraticBezierSplit splits the quadratic Bézier at t,
// returning the two new quadratic Béziers.
func quadraticBezierSplit(p0, p1, p2 math32.Vector2, t float32) (math32.Vector2, math32.Vector2, math32.Vector2, math32.Vector2, math32.Vector2, math32.Vector2) {
	q0 := p0
	q1 := p0.Lerp(p1, t)

	r2 := p2
	r1 := p1.Lerp(p2, t)

	r0 := q1.Lerp(r1, t)
	q2 := r0
	return q0, q1, q2, r0, r1, r2
}

// CubicBezierPos returns the position on the cubic Bézier at t.
func CubicBezierPos(p0, p1, p2, p3 math32.Vector2, t float32) math32.Vector2 {
	p0 = p0.MulScalar(1.0 - 3.0*t + 3.0*t*t - t*t*t)
	p1 = p1.MulScalar(3.0*t - 6.0*t*t + 3.0*t*t*t)
	p2 = p2.MulScalar(3.0*t*t - 3.0*t*t*t)
	p3 = p3.MulScalar(t * t * t)
	return p0.Add(p1).Add(p2).Add(p3)
}

// CubicBezierDeriv returns the derivative of the cubic Bézier at t.
func CubicBezierDeriv(p0, p1, p2, p3 math32.Vector2, t float32) math32.Vector2 {
	p0 = p0.MulScalar(-3.0 + 6.0*t - 3.0*t*t)
	p1 = p1.MulScalar(3.0 - 12.0*t + 9.0*t*t)
	p2 = p2.MulScalar(6.0*t - 9.0*t*t)
	p3 = p3.MulScalar(3.0 * t * t)
	return p0.Add(p1).Add(p2).Add(p3)
}

// cubicBezierDeriv2 returns the second derivative of the cubic Bézier at t.
func cubicBezierDeriv2(p0, p1, p2, p3 math32.Vector2, t float32) math32.Vector2 {
	p0 = p0.MulScalar(6.0 - 6.0*t)
	p1 = p1.MulScalar(-12.0 + 18.0*t)
	p2 = p2.MulScalar(6.0 - 18.0*t)
	p3 = p3.MulScalar(6.0 * t)
	return p0.Add(p1).Add(p2).Add(p3)
}

// CubicBezierCurvatureRadius returns the curvature radius of the
// cubic Bézier at t. It is negative when curving clockwise
// (with x right and y up) and NaN for a straight line.
func CubicBezierCurvatureRadius(p0, p1, p2, p3 math32.Vector2, t float32) float32 {
	dp := CubicBezierDeriv(p0, p1, p2, p3, t)
	ddp := cubicBezierDeriv2(p0, p1, p2, p3, t)
	a := dp.Cross(ddp) // negative when dp is to the right of ddp
	if Equal(a, 0.0) {
		return math32.NaN()
	}
	return math32.Pow(dp.X*dp.X+dp.Y*dp.Y, 1.5) / a
}

// CubicBezierNormal returns the normal at the right side of the curve
// when increasing t, of length d. It is only defined at the curve
// endpoints, i.e. t is 0 or 1.
func CubicBezierNormal(p0, p1, p2, p3 math32.Vector2, t, d float32) math32.Vector2 {
	if t == 0.0 {
		n := p1.Sub(p0)
		if n.X == 0 && n.Y == 0 {
			n = p2.Sub(p0)
		}
		if n.X == 0 && n.Y == 0 {
			n = p3.Sub(p0)
		}
		if n.X == 0 && n.Y == 0 {
			return math32.Vector2{}
		}
		return n.Rot90CW().Normal().MulScalar(d)
	} else if t == 1.0 {
		n := p3.Sub(p2)
		if n.X == 0 && n.Y == 0 {
			n = p3.Sub(p1)
		}
		if n.X == 0 && n.Y == 0 {
			n = p3.Sub(p0)
		}
		if n.X == 0 && n.Y == 0 {
			return math32.Vector2{}
		}
		return n.Rot90CW().Normal().MulScalar(d)
	}
	panic("not implemented")
}

// cubicBezierLength approximates the length of the cubic Bézier using
// Gauss-Legendre quadrature after splitting at its inflection points.
func cubicBezierLength(p0, p1, p2, p3 math32.Vector2) float32 {
	t1, t2 := findInflectionPointCubicBezier(p0, p1, p2, p3)
	var beziers [][4]math32.Vector2
	if !math32.IsNaN(t1) && t1 > 0.0 && t1 < 1.0 && !math32.IsNaN(t2) && t2 > 0.0 && t2 < 1.0 {
		q0, q1, q2, q3, r0, r1, r2, r3 := cubicBezierSplit(p0, p1, p2, p3, t1)
		t2 = (t2 - t1) / (1.0 - t1)
		s0, s1, s2, s3, u0, u1, u2, u3 := cubicBezierSplit(r0, r1, r2, r3, t2)
		beziers = append(beziers, [4]math32.Vector2{q0, q1, q2, q3})
		beziers = append(beziers, [4]math32.Vector2{s0, s1, s2, s3})
		beziers = append(beziers, [4]math32.Vector2{u0, u1, u2, u3})
	} else if !math32.IsNaN(t1) && t1 > 0.0 && t1 < 1.0 {
		q0, q1, q2, q3, r0, r1, r2, r3 := cubicBezierSplit(p0, p1, p2, p3, t1)
		beziers = append(beziers, [4]math32.Vector2{q0, q1, q2, q3})
		beziers = append(beziers, [4]math32.Vector2{r0, r1, r2, r3})
	} else {
		beziers = append(beziers, [4]math32.Vector2{p0, p1, p2, p3})
	}

	length := float32(0.0)
	for _, bezier := range beziers {
		speed := func(t float32) float32 {
			return CubicBezierDeriv(bezier[0], bezier[1], bezier[2], bezier[3], t).Length()
		}
		length += gaussLegendre5(speed, 0.0, 1.0)
	}
	return length
}

// cubicBezierSplit splits the cubic Bézier at t,
// returning the two new cubic Béziers.
func cubicBezierSplit(p0, p1, p2, p3 math32.Vector2, t float32) (math32.Vector2, math32.Vector2, math32.Vector2, math32.Vector2, math32.Vector2, math32.Vector2, math32.Vector2, math32.Vector2) {
	pm := p1.Lerp(p2, t)

	q0 := p0
	q1 := p0.Lerp(p1, t)
	q2 := q1.Lerp(pm, t)

	r3 := p3
	r2 := p2.Lerp(p3, t)
	r1 := pm.Lerp(r2, t)

	r0 := q2.Lerp(r1, t)
	q3 := r0
	return q0, q1, q2, q3, r0, r1, r2, r3
}

// addCubicBezierLine adds a line to the path from the current position
// to the position at t on the Bézier offset by d to the right.
func addCubicBezierLine(p *Path, p0, p1, p2, p3 math32.Vector2, t, d float32) {
	if EqualPoint(p0, p3) && (EqualPoint(p0, p1) || EqualPoint(p0, p2)) {
		// Bézier has p0=p1=p3 or p0=p2=p3 and thus has no surface or length
		return
	}

	pos := math32.Vector2{}
	if t == 0.0 {
		// line to beginning of path
		pos = p0
		if d != 0.0 {
			n := CubicBezierNormal(p0, p1, p2, p3, t, d)
			pos = pos.Add(n)
		}
	} else if t == 1.0 {
		// line to the end of the path
		pos = p3
		if d != 0.0 {
			n := CubicBezierNormal(p0, p1, p2, p3, t, d)
			pos = pos.Add(n)
		}
	}
	p.LineTo(pos.X, pos.Y)
}

func cubicBezierNumInflections(p0, p1, p2, p3 math32.Vector2) int {
	t1, t2 := findInflectionPointCubicBezier(p0, p1, p2, p3)
	if !math32.IsNaN(t2) {
		return 2
	} else if !math32.IsNaN(t1) {
		return 1
	}
	return 0
}

// findInflectionPointCubicBezier returns the parametric positions of
// the inflection points of the cubic Bézier, which are NaN when they
// do not exist. See www.faculty.idc.ac.il/arik/quality/appendixa.html
func findInflectionPointCubicBezier(p0, p1, p2, p3 math32.Vector2) (float32, float32) {
	// we omit multiplying bx,by,cx,cy with 3.0, so there is no need
	// for divisions when calculating a,b,c
	ax := -p0.X + 3.0*p1.X - 3.0*p2.X + p3.X
	ay := -p0.Y + 3.0*p1.Y - 3.0*p2.Y + p3.Y
	bx := p0.X - 2.0*p1.X + p2.X
	by := p0.Y - 2.0*p1.Y + p2.Y
	cx := -p0.X + p1.X
	cy := -p0.Y + p1.Y

	a := ay*bx - ax*by
	b := ay*cx - ax*cy
	c := by*cx - bx*cy
	x1, x2 := solveQuadraticFormula(a, b, c)
	if x1 < Epsilon/2.0 || 1.0-Epsilon/2.0 < x1 {
		x1 = math32.NaN()
	}
	if x2 < Epsilon/2.0 || 1.0-Epsilon/2.0 < x2 {
		x2 = math32.NaN()
	} else if math32.IsNaN(x1) {
		x1, x2 = x2, x1
	}
	return x1, x2
}

// findInflectionPointRangeCubicBezier returns the range (t1, t2) around
// the inflection point at t within which the curve is considered flat
// within the tolerance.
func findInflectionPointRangeCubicBezier(p0, p1, p2, p3 math32.Vector2, t, tolerance float32) (float32, float32) {
	if math32.IsNaN(t) {
		return math32.Inf(1), math32.Inf(1)
	}
	if t < 0.0 || t > 1.0 {
		panic("t outside 0.0--1.0 range")
	}

	// we state that s(t) = 3*s2*t^2 + (s3 - 3*s2)*t^3 (see paper on the r-s coordinate system)
	// with s(t) aligned perpendicular to the curve at t = 0
	// then we impose that s(tf) = flatness and find tf
	// at inflection points however, s2 = 0, so that s(t) = s3*t^3

	if !Equal(t, 1.0) {
		_, _, _, _, q0, q1, q2, q3 := cubicBezierSplit(p0, p1, p2, p3, t)
		nr := q1.Sub(q0)
		ns := q3.Sub(q0)
		if Equal(nr.X, 0.0) && Equal(nr.Y, 0.0) {
			// if q0 == q1, then rn (the velocity at t) needs adjustment
			// nr = lim[t->0](B'(t)) = 3*(Q1-Q0) + 6*t*((Q1-Q0)+(Q2-Q1)) + second order terms of t
			// if Q0 == Q1, we reduce to nr = 6*t*(Q2-Q1), in which case t -> 0, making it rn = 0*(Q2-Q1)
			// we take instead rn = Q2 - Q0
			nr = q2.Sub(q0)
		}
		if Equal(nr.X, 0.0) && Equal(nr.Y, 0.0) {
			// the whole sub curve is a point
			return 0.0, 1.0
		}

		s3 := math32.Abs(ns.X*nr.Y-ns.Y*nr.X) / math32.Hypot(nr.X, nr.Y)
		if Equal(s3, 0.0) {
			return 0.0, 1.0 // can approximate whole curve linearly
		}

		tf := math32.Cbrt(tolerance / s3)
		return t - tf*(1.0-t), t + tf*(1.0-t)
	}

	// inflection point at t == 1, use the reversed curve
	nr := p2.Sub(p3)
	ns := p0.Sub(p3)
	if Equal(nr.X, 0.0) && Equal(nr.Y, 0.0) {
		nr = p1.Sub(p3)
	}
	if Equal(nr.X, 0.0) && Equal(nr.Y, 0.0) {
		return 0.0, 1.0
	}

	s3 := math32.Abs(ns.X*nr.Y-ns.Y*nr.X) / math32.Hypot(nr.X, nr.Y)
	if Equal(s3, 0.0) {
		return 0.0, 1.0
	}

	tf := math32.Cbrt(tolerance / s3)
	return 1.0 - tf, 1.0 + tf
}
