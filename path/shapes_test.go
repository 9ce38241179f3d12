// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package path

import (
	"fmt"
	"testing"

	"cogentcore.org/canvas/base/tolassert"
	"cogentcore.org/canvas/math32"
	"github.com/stretchr/testify/assert"
)

func TestEllipse(t *testing.T) {
	tolEqualVec2(t, EllipsePos(2.0, 1.0, math32.Pi/2.0, 1.0, 0.5, 0.0), math32.Vector2{X: 1.0, Y: 2.5})
	tolEqualVec2(t, EllipseDeriv(2.0, 1.0, math32.Pi/2.0, true, 0.0), math32.Vector2{X: -1.0, Y: 0.0})
	tolEqualVec2(t, EllipseDeriv(2.0, 1.0, math32.Pi/2.0, false, 0.0), math32.Vector2{X: 1.0, Y: 0.0})

	assert.InDelta(t, EllipseRadiiCorrection(math32.Vector2{X: 0.0, Y: 0.0}, 0.1, 0.1, 0.0, math32.Vector2{X: 1.0, Y: 0.0}), 5.0, 1.0e-5)
}

func TestEllipseToCenter(t *testing.T) {
	var tests = []struct {
		x1, y1       float32
		rx, ry, phi  float32
		large, sweep bool
		x2, y2       float32

		cx, cy, theta0, theta1 float32
	}{
		{0.0, 0.0, 2.0, 2.0, 0.0, false, false, 2.0, 2.0, 2.0, 0.0, math32.Pi, math32.Pi / 2.0},
		{0.0, 0.0, 2.0, 2.0, 0.0, true, false, 2.0, 2.0, 0.0, 2.0, math32.Pi * 3.0 / 2.0, 0.0},
		{0.0, 0.0, 2.0, 2.0, 0.0, true, true, 2.0, 2.0, 2.0, 0.0, math32.Pi, math32.Pi * 5.0 / 2.0},
		{0.0, 0.0, 2.0, 1.0, math32.Pi / 2.0, false, false, 1.0, 2.0, 1.0, 0.0, math32.Pi / 2.0, 0.0},

		// radius correction
		{0.0, 0.0, 0.1, 0.1, 0.0, false, false, 1.0, 0.0, 0.5, 0.0, math32.Pi, 0.0},

		// start == end
		{0.0, 0.0, 1.0, 1.0, 0.0, false, false, 0.0, 0.0, 0.0, 0.0, 0.0, 0.0},

		// precision issues
		{8.2, 18.0, 0.2, 0.2, 0.0, false, true, 7.8, 18.0, 8.0, 18.0, 0.0, math32.Pi},
		{7.8, 18.0, 0.2, 0.2, 0.0, false, true, 8.2, 18.0, 8.0, 18.0, math32.Pi, 2.0 * math32.Pi},

		// bugs
		{-1.0 / math32.Sqrt(2), 0.0, 1.0, 1.0, 0.0, false, false, 1.0 / math32.Sqrt(2.0), 0.0, 0.0, -1.0 / math32.Sqrt(2.0), 3.0 / 4.0 * math32.Pi, 1.0 / 4.0 * math32.Pi},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("(%g,%g) %g %g %g %v %v (%g,%g)", tt.x1, tt.y1, tt.rx, tt.ry, tt.phi, tt.large, tt.sweep, tt.x2, tt.y2), func(t *testing.T) {
			cx, cy, theta0, theta1 := EllipseToCenter(tt.x1, tt.y1, tt.rx, tt.ry, tt.phi, tt.large, tt.sweep, tt.x2, tt.y2)
			tolassert.EqualTolSlice(t, []float32{cx, cy, theta0, theta1}, []float32{tt.cx, tt.cy, tt.theta0, tt.theta1}, 1.0e-2)
		})
	}
}

func TestArcToQuad(t *testing.T) {
	assert.InDeltaSlice(t, ArcToQuad(math32.Vector2{X: 0.0, Y: 0.0}, 100.0, 100.0, 0.0, false, false, math32.Vector2{X: 200.0, Y: 0.0}), MustParseSVGPath("Q0 100 100 100Q200 100 200 0"), 1.0e-4)
}

func TestArcToCube(t *testing.T) {
	assert.InDeltaSlice(t, ArcToCube(math32.Vector2{X: 0.0, Y: 0.0}, 100.0, 100.0, 0.0, false, false, math32.Vector2{X: 200.0, Y: 0.0}), MustParseSVGPath("C0 54.858 45.142 100 100 100C154.858 100 200 54.858 200 0"), 1.0e-3)
}

func TestQuadraticBezier(t *testing.T) {
	p1, p2 := QuadraticToCubicBezier(math32.Vector2{X: 0.0, Y: 0.0}, math32.Vector2{X: 1.5, Y: 0.0}, math32.Vector2{X: 3.0, Y: 0.0})
	tolEqualVec2(t, p1, math32.Vector2{X: 1.0, Y: 0.0})
	tolEqualVec2(t, p2, math32.Vector2{X: 2.0, Y: 0.0})

	p1, p2 = QuadraticToCubicBezier(math32.Vector2{X: 0.0, Y: 0.0}, math32.Vector2{X: 1.0, Y: 0.0}, math32.Vector2{X: 1.0, Y: 1.0})
	tolEqualVec2(t, p1, math32.Vector2{X: 2.0 / 3.0, Y: 0.0})
	tolEqualVec2(t, p2, math32.Vector2{X: 1.0, Y: 1.0 / 3.0})
}

func TestQuadraticBezierDeriv(t *testing.T) {
	var tests = []struct {
		p0, p1, p2 math32.Vector2
		t          float32
		q          math32.Vector2
	}{
		{math32.Vector2{X: 0.0, Y: 0.0}, math32.Vector2{X: 1.0, Y: 0.0}, math32.Vector2{X: 1.0, Y: 1.0}, 0.0, math32.Vector2{X: 2.0, Y: 0.0}},
		{math32.Vector2{X: 0.0, Y: 0.0}, math32.Vector2{X: 1.0, Y: 0.0}, math32.Vector2{X: 1.0, Y: 1.0}, 0.5, math32.Vector2{X: 1.0, Y: 1.0}},
		{math32.Vector2{X: 0.0, Y: 0.0}, math32.Vector2{X: 1.0, Y: 0.0}, math32.Vector2{X: 1.0, Y: 1.0}, 1.0, math32.Vector2{X: 0.0, Y: 2.0}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v%v%v--%v", tt.p0, tt.p1, tt.p2, tt.t), func(t *testing.T) {
			q := QuadraticBezierDeriv(tt.p0, tt.p1, tt.p2, tt.t)
			tolEqualVec2(t, q, tt.q, 1.0e-5)
		})
	}
}

func TestCubicBezierDeriv(t *testing.T) {
	p0, p1, p2, p3 := math32.Vector2{X: 0.0, Y: 0.0}, math32.Vector2{X: 2.0 / 3.0, Y: 0.0}, math32.Vector2{X: 1.0, Y: 1.0 / 3.0}, math32.Vector2{X: 1.0, Y: 1.0}
	var tests = []struct {
		p0, p1, p2, p3 math32.Vector2
		t              float32
		q              math32.Vector2
	}{
		{p0, p1, p2, p3, 0.0, math32.Vector2{X: 2.0, Y: 0.0}},
		{p0, p1, p2, p3, 0.5, math32.Vector2{X: 1.0, Y: 1.0}},
		{p0, p1, p2, p3, 1.0, math32.Vector2{X: 0.0, Y: 2.0}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v%v%v%v--%v", tt.p0, tt.p1, tt.p2, tt.p3, tt.t), func(t *testing.T) {
			q := CubicBezierDeriv(tt.p0, tt.p1, tt.p2, tt.p3, tt.t)
			tolEqualVec2(t, q, tt.q, 1.0e-5)
		})
	}
}

func TestShapes(t *testing.T) {
	assert.Equal(t, "M1 2L3 4", New().Line(1, 2, 3, 4).String())
	assert.Equal(t, "M0 0L5 5L10 0", New().Polyline(math32.Vec2(0, 0), math32.Vec2(5, 5), math32.Vec2(10, 0)).String())
	assert.Equal(t, "M2 0L4 4L0 4z", New().Polygon(math32.Vec2(2, 0), math32.Vec2(4, 4), math32.Vec2(0, 4)).String())
	assert.Equal(t, "M0 0L5 0L5 10L0 10z", New().Rectangle(0, 0, 5, 10).String())
	assert.Equal(t, "M0 3L3 0L7 0L10 3L10 7L7 10L3 10L0 7z", New().BeveledRectangle(0, 0, 10, 10, 3).String())
	assert.Equal(t, "M0 0L30 0L30 20L0 20zM5 5L5 15L12.5 15L12.5 5zM17.5 5L17.5 15L25 15L25 5z", New().Grid(30, 20, 2, 1, 5).String())

	assert.True(t, New().Line(2, 3, 2, 3).Empty())
	assert.True(t, New().Rectangle(1, 1, 0, 10).Empty())
	assert.True(t, New().Grid(10, 10, 2, 2, 4).Empty())
}

func TestShapePolygons(t *testing.T) {
	assert.InDeltaSlice(t, MustParseSVGPath("M0 1L-1 0L0 -1L1 0z"), *New().RegularPolygon(4, 1, true), 1.0e-4)
	assert.InDeltaSlice(t, MustParseSVGPath("M0 1L-0.58779 -0.80902L0.95106 0.30902L-0.95106 0.30902L0.58779 -0.80902z"), *New().RegularStarPolygon(5, 2, 1, true), 1.0e-4)
	assert.InDeltaSlice(t, MustParseSVGPath("M0 2L-0.70711 0.70711L-2 0L-0.70711 -0.70711L0 -2L0.70711 -0.70711L2 0L0.70711 0.70711z"), *New().StarPolygon(4, 2, 1, true), 1.0e-4)
	tolEqualVec2(t, New().Triangle(2).Coords()[0], math32.Vec2(0, 2))

	assert.True(t, New().RegularStarPolygon(4, 2, 1, true).Empty())
	assert.True(t, New().StarPolygon(2, 2, 1, true).Empty())
}

func TestShapeEllipses(t *testing.T) {
	c := New().Circle(0, 0, 5)
	tolEqualBox2(t, c.Bounds(), math32.B2(-5, -5, 5, 5), 1.0e-2)
	assert.InDelta(t, float32(10.0*math32.Pi), c.Length(), 1.0e-1)

	e := New().Ellipse(0, 0, 2, 1)
	tolEqualBox2(t, e.Bounds(), math32.B2(-2, -1, 2, 1), 1.0e-2)

	a := New().CircularArc(0, 0, 1, 0, math32.Pi/2)
	tolEqualBox2(t, a.Bounds(), math32.B2(0, 0, 1, 1))

	r := New().RoundedRectangle(0, 0, 10, 10, 2)
	tolEqualBox2(t, r.Bounds(), math32.B2(0, 0, 10, 10))
	assert.InDelta(t, float32(24.0+4.0*math32.Pi), r.Length(), 1.0e-2)

	assert.True(t, New().Ellipse(0, 0, 0, 1).Empty())
}
