// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"cogentcore.org/canvas/base/tolassert"
	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1.0e-6)

func tolAssertEqualVector(t *testing.T, tol float32, vt, va Vector2) {
	tolassert.EqualTol(t, vt.X, va.X, tol)
	tolassert.EqualTol(t, vt.Y, va.Y, tol)
}

func TestMatrix2Basics(t *testing.T) {
	v0 := Vec2(0, 0)
	vx := Vec2(1, 0)
	vy := Vec2(0, 1)
	vxy := Vec2(1, 1)

	assert.True(t, Identity2().IsIdentity())
	assert.Equal(t, vx, Identity2().MulVector2AsPoint(vx))
	assert.Equal(t, vy, Identity2().MulVector2AsPoint(vy))

	assert.Equal(t, vxy, Translate2D(1, 1).MulVector2AsPoint(v0))
	assert.Equal(t, vxy.MulScalar(2), Scale2D(2, 2).MulVector2AsPoint(vxy))

	// rotation is counter-clockwise with Y up
	tolAssertEqualVector(t, standardTol, vy, Rotate2D(DegToRad(90)).MulVector2AsPoint(vx))
	tolAssertEqualVector(t, standardTol, vx, Rotate2D(DegToRad(-90)).MulVector2AsPoint(vy))
	tolAssertEqualVector(t, standardTol, vxy.Normal(), Rotate2D(DegToRad(45)).MulVector2AsPoint(vx))

	// shear and skew move one axis along the other
	assert.Equal(t, Vec2(1, 1), Shear2D(1, 0).MulVector2AsPoint(vy))
	tolAssertEqualVector(t, standardTol, Vec2(1, 1), Skew2D(DegToRad(45), 0).MulVector2AsPoint(vy))
}

func TestMatrix2MulOrder(t *testing.T) {
	vx := Vec2(1, 0)
	vxy := Vec2(1, 1)

	// 1,0 -> scale(2) = 2,0 -> rotate 90 = 0,2 -> trans 1,1 -> 1,3
	// multiplication order is *reverse* of "logical" order:
	m := Translate2D(1, 1).Mul(Rotate2D(DegToRad(90))).Mul(Scale2D(2, 2))
	tolAssertEqualVector(t, standardTol, Vec2(1, 3), m.MulVector2AsPoint(vx))

	// the chained methods compose in the same order
	c := Identity2().Translate(1, 1).Rotate(DegToRad(90)).Scale(2, 2)
	tolAssertEqualVector(t, standardTol, Vec2(1, 3), c.MulVector2AsPoint(vx))

	tolAssertEqualVector(t, standardTol, vxy, Rotate2D(DegToRad(-45)).Mul(Rotate2D(DegToRad(45))).MulVector2AsPoint(vxy))

	s := Identity2()
	s.SetMul(Scale2D(2, 2))
	assert.Equal(t, Scale2D(2, 2), s)
}

func TestMatrix2Vector(t *testing.T) {
	// direction vectors ignore translation, points do not
	m := Translate2D(5, 7)
	assert.Equal(t, Vec2(3, 4), m.MulVector2AsVector(Vec2(3, 4)))
	assert.Equal(t, Vec2(8, 11), m.MulVector2AsPoint(Vec2(3, 4)))

	sc := Scale2D(2, 3)
	assert.Equal(t, Vec2(6, 12), sc.MulVector2AsVector(Vec2(3, 4)))
}

func TestMatrix2Inverse(t *testing.T) {
	vx := Vec2(1, 0)
	vy := Vec2(0, 1)
	vxy := Vec2(1, 1)

	tolAssertEqualVector(t, standardTol, vy, Rotate2D(DegToRad(-90)).Inverse().MulVector2AsPoint(vx))
	tolAssertEqualVector(t, standardTol, vx, Rotate2D(DegToRad(90)).Inverse().MulVector2AsPoint(vy))
	tolAssertEqualVector(t, standardTol, vxy, Rotate2D(DegToRad(-45)).Mul(Rotate2D(DegToRad(-45)).Inverse()).MulVector2AsPoint(vxy))

	m := Translate2D(3, -2).Mul(Scale2D(2, 4))
	tolAssertEqualVector(t, standardTol, vxy, m.Inverse().MulVector2AsPoint(Vec2(5, 2)))

	mi := m.Mul(m.Inverse())
	tolassert.EqualTol(t, 1, mi.XX, standardTol)
	tolassert.EqualTol(t, 1, mi.YY, standardTol)
	tolassert.EqualTol(t, 0, mi.X0, standardTol)
	tolassert.EqualTol(t, 0, mi.Y0, standardTol)
}

func TestMatrix2Det(t *testing.T) {
	assert.Equal(t, float32(1), Identity2().Det())
	assert.Equal(t, float32(6), Scale2D(2, 3).Det())
	assert.Equal(t, float32(0.5), Shear2D(1, 0.5).Det())
	tolassert.EqualTol(t, 1, Rotate2D(DegToRad(30)).Det(), standardTol)
}

func TestMatrix2Transpose(t *testing.T) {
	m := Matrix2{XX: 1, YX: 2, XY: 3, YY: 4, X0: 5, Y0: 6}
	assert.Equal(t, Matrix2{XX: 1, YX: 3, XY: 2, YY: 4}, m.Transpose())
}

func TestMatrix2Extract(t *testing.T) {
	for _, deg := range []float32{-90, -45, 45, 90} {
		tolassert.EqualTol(t, DegToRad(deg), Rotate2D(DegToRad(deg)).ExtractRot(), standardTol)
	}

	scx, scy := Scale2D(2, 3).ExtractScale()
	assert.Equal(t, float32(2), scx)
	assert.Equal(t, float32(3), scy)

	// reflections keep the sign of the determinant on the Y factor
	scx, scy = Scale2D(2, -3).ExtractScale()
	assert.Equal(t, float32(2), scx)
	assert.Equal(t, float32(-3), scy)

	scx, scy = Rotate2D(DegToRad(90)).Mul(Scale2D(2, 3)).ExtractScale()
	tolassert.EqualTol(t, 2, scx, standardTol)
	tolassert.EqualTol(t, 3, scy, standardTol)
}

func TestMatrix2Eigen(t *testing.T) {
	l1, l2, v1, v2 := Scale2D(2, 5).Eigen()
	assert.Equal(t, float32(2), l1)
	assert.Equal(t, float32(5), l2)
	assert.Equal(t, Vec2(1, 0), v1)
	assert.Equal(t, Vec2(0, 1), v2)

	l1, l2, v1, v2 = Matrix2{XX: 2, YX: 1, XY: 1, YY: 2}.Eigen()
	tolassert.EqualTol(t, 1, l1, standardTol)
	tolassert.EqualTol(t, 3, l2, standardTol)
	tolAssertEqualVector(t, standardTol, Vec2(-1, 1).Normal(), v1)
	tolAssertEqualVector(t, standardTol, Vec2(1, 1).Normal(), v2)

	// a diagonal matrix conjugated by a rotation picks up tiny
	// off-diagonal float32 noise; the axes must still come out clean
	r := Rotate2D(DegToRad(270))
	q := r.Transpose().Mul(Scale2D(0.04, 0.01)).Mul(r)
	l1, l2, v1, v2 = q.Eigen()
	tolassert.EqualTol(t, 0.01, l1, standardTol)
	tolassert.EqualTol(t, 0.04, l2, standardTol)
	tolAssertEqualVector(t, standardTol, Vec2(1, 0), v1)
	tolAssertEqualVector(t, standardTol, Vec2(0, 1), v2)
}

func TestMatrix2SetString(t *testing.T) {
	tests := []struct {
		str     string
		wantErr bool
		want    Matrix2
	}{
		{"none", false, Identity2()},
		{"", false, Identity2()},
		{"matrix(1, 2, 3, 4, 5, 6)", false, Matrix2{1, 2, 3, 4, 5, 6}},
		{"translate(1, 2)", false, Translate2D(1, 2)},
		{"translate(5)", false, Translate2D(5, 0)},
		{"translate(1 2)", false, Translate2D(1, 2)},
		{"scale(2)", false, Scale2D(2, 2)},
		{"translate(1,2) scale(2,2)", false, Translate2D(1, 2).Mul(Scale2D(2, 2))},
		{"skewX(45)", false, Shear2D(Tan(DegToRad(45)), 0)},
		{"invalid(1, 2)", true, Identity2()},
		{"matrix(1, 2, 3)", true, Identity2()},
		{"rotate(1, 2)", true, Identity2()},
		{"translate(1, x)", true, Identity2()},
		{"translate 1 2", true, Identity2()},
	}

	for _, tt := range tests {
		a := &Matrix2{}
		err := a.SetString(tt.str)
		if tt.wantErr {
			assert.Error(t, err, tt.str)
			continue
		}
		assert.NoError(t, err, tt.str)
		assert.Equal(t, tt.want, *a, tt.str)
	}
}

func TestMatrix2SetStringRotateAbout(t *testing.T) {
	a := &Matrix2{}
	assert.NoError(t, a.SetString("rotate(90, 4, 4)"))
	tolAssertEqualVector(t, standardTol, Vec2(4, 8), a.MulVector2AsPoint(Vec2(8, 4)))
	tolAssertEqualVector(t, standardTol, Vec2(4, 4), a.MulVector2AsPoint(Vec2(4, 4)))
}

func TestMatrix2String(t *testing.T) {
	tests := []struct {
		matrix Matrix2
		want   string
	}{
		{Identity2(), "none"},
		{Matrix2{XX: 1, YX: 2, XY: 3, YY: 4, X0: 5, Y0: 6}, "matrix(1,2,3,4,5,6)"},
		{Scale2D(2, 2), "scale(2,2)"},
		{Translate2D(1, 2), "translate(1,2)"},
		{Translate2D(1, 2).Mul(Scale2D(2, 2)), "translate(1,2) scale(2,2)"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.matrix.String())
	}
}
