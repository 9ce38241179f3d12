// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"fmt"
	"strconv"
	"strings"
)

// Matrix2 is a 3x2 matrix for 2D transforms, with column-major storage:
//
//	XX XY X0
//	YX YY Y0
//
// It transforms points as X' = XX*X + XY*Y + X0, Y' = YX*X + YY*Y + Y0.
type Matrix2 struct {
	XX, YX, XY, YY, X0, Y0 float32
}

// Identity2 returns a new identity [Matrix2].
func Identity2() Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		0, 0,
	}
}

// IsIdentity returns whether the matrix is the identity matrix.
func (a Matrix2) IsIdentity() bool {
	return a == Identity2()
}

// Translate2D returns a new [Matrix2] that translates by the given amounts.
func Translate2D(x, y float32) Matrix2 {
	return Matrix2{
		1, 0,
		0, 1,
		x, y,
	}
}

// Scale2D returns a new [Matrix2] that scales by the given factors.
func Scale2D(x, y float32) Matrix2 {
	return Matrix2{
		x, 0,
		0, y,
		0, 0,
	}
}

// Rotate2D returns a new [Matrix2] that rotates by the given angle
// in radians, counter-clockwise in a standard Y-up coordinate system.
func Rotate2D(angle float32) Matrix2 {
	c := Cos(angle)
	s := Sin(angle)
	return Matrix2{
		c, s,
		-s, c,
		0, 0,
	}
}

// Shear2D returns a new [Matrix2] that shears by the given factors.
func Shear2D(x, y float32) Matrix2 {
	return Matrix2{
		1, y,
		x, 1,
		0, 0,
	}
}

// Skew2D returns a new [Matrix2] that skews by the given angles in radians.
func Skew2D(x, y float32) Matrix2 {
	return Shear2D(Tan(x), Tan(y))
}

// Mul returns a*b, which applies b first and then a when
// transforming points, i.e., the order of multiplication is the
// reverse of the logical order of application.
func (a Matrix2) Mul(b Matrix2) Matrix2 {
	return Matrix2{
		XX: a.XX*b.XX + a.XY*b.YX,
		YX: a.YX*b.XX + a.YY*b.YX,
		XY: a.XX*b.XY + a.XY*b.YY,
		YY: a.YX*b.XY + a.YY*b.YY,
		X0: a.XX*b.X0 + a.XY*b.Y0 + a.X0,
		Y0: a.YX*b.X0 + a.YY*b.Y0 + a.Y0,
	}
}

// SetMul sets the matrix to a*b.
func (a *Matrix2) SetMul(b Matrix2) {
	*a = a.Mul(b)
}

// Translate returns a new matrix that first translates by the given
// amounts and then applies this matrix.
func (a Matrix2) Translate(x, y float32) Matrix2 {
	return a.Mul(Translate2D(x, y))
}

// Scale returns a new matrix that first scales by the given factors
// and then applies this matrix.
func (a Matrix2) Scale(x, y float32) Matrix2 {
	return a.Mul(Scale2D(x, y))
}

// Rotate returns a new matrix that first rotates by the given angle
// in radians and then applies this matrix.
func (a Matrix2) Rotate(angle float32) Matrix2 {
	return a.Mul(Rotate2D(angle))
}

// Shear returns a new matrix that first shears by the given factors
// and then applies this matrix.
func (a Matrix2) Shear(x, y float32) Matrix2 {
	return a.Mul(Shear2D(x, y))
}

// Skew returns a new matrix that first skews by the given angles in
// radians and then applies this matrix.
func (a Matrix2) Skew(x, y float32) Matrix2 {
	return a.Mul(Skew2D(x, y))
}

// MulVector2AsVector multiplies the given vector by the matrix without
// adding the translation terms, as for a direction vector.
func (a Matrix2) MulVector2AsVector(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y
	ty := a.YX*v.X + a.YY*v.Y
	return Vec2(tx, ty)
}

// MulVector2AsPoint multiplies the given vector by the matrix including
// the translation terms, as for a position point.
func (a Matrix2) MulVector2AsPoint(v Vector2) Vector2 {
	tx := a.XX*v.X + a.XY*v.Y + a.X0
	ty := a.YX*v.X + a.YY*v.Y + a.Y0
	return Vec2(tx, ty)
}

// Det returns the determinant of the matrix.
func (a Matrix2) Det() float32 {
	return a.XX*a.YY - a.XY*a.YX
}

// Inverse returns the inverse of the matrix.
// A singular matrix produces non-finite values.
func (a Matrix2) Inverse() Matrix2 {
	idet := 1.0 / a.Det()
	return Matrix2{
		XX: a.YY * idet,
		YX: -a.YX * idet,
		XY: -a.XY * idet,
		YY: a.XX * idet,
		X0: (a.XY*a.Y0 - a.YY*a.X0) * idet,
		Y0: (a.YX*a.X0 - a.XX*a.Y0) * idet,
	}
}

// Transpose returns the transpose of the linear part of the matrix,
// with the translation terms zeroed.
func (a Matrix2) Transpose() Matrix2 {
	a.XY, a.YX = a.YX, a.XY
	a.X0, a.Y0 = 0, 0
	return a
}

// ExtractRot extracts the rotation component from the matrix in radians.
func (a Matrix2) ExtractRot() float32 {
	return Atan2(-a.XY, a.XX)
}

// ExtractScale extracts the X and Y scale factors from the matrix.
// The Y factor is negated when the matrix includes a reflection,
// so that the sign of the product matches the sign of [Matrix2.Det].
func (a Matrix2) ExtractScale() (scx, scy float32) {
	scx = Sqrt(a.XX*a.XX + a.YX*a.YX)
	scy = Sqrt(a.XY*a.XY + a.YY*a.YY)
	if a.Det() < 0 {
		scy = -scy
	}
	return
}

// Eigen returns the eigenvalues and eigenvectors of the linear part
// of the matrix, ignoring the translation terms. The first eigenvalue
// is related to the first eigenvector, and so for the second pair.
// Eigenvectors are normalized. Imaginary eigenvalues and those of
// singular matrices produce NaN values.
func (a Matrix2) Eigen() (lambda1, lambda2 float32, v1, v2 Vector2) {
	// near-zero off-diagonals must take the diagonal shortcut: the
	// eigenvector formula below cancels catastrophically on them
	const eps = 1e-7
	if Abs(a.YX) <= eps && Abs(a.XY) <= eps {
		return a.XX, a.YY, Vec2(1, 0), Vec2(0, 1)
	}

	// solve the characteristic polynomial lambda^2 - tr*lambda + det = 0
	tr := a.XX + a.YY
	disc := tr*tr - 4*a.Det()
	if disc < 0 {
		nan := NaN()
		return nan, nan, Vector2{}, Vector2{}
	}
	q := Sqrt(disc)
	if tr < 0 {
		q = -q
	}
	lambda1 = (tr + q) / 2
	lambda2 = a.Det() / lambda1
	if lambda2 < lambda1 {
		lambda1, lambda2 = lambda2, lambda1
	}

	// see http://www.math.harvard.edu/archive/21b_fall_04/exhibits/2dmatrices
	if a.YX != 0 {
		v1 = Vec2(lambda1-a.YY, a.YX).Normal()
		v2 = Vec2(lambda2-a.YY, a.YX).Normal()
	} else {
		v1 = Vec2(a.XY, lambda1-a.XX).Normal()
		v2 = Vec2(a.XY, lambda2-a.XX).Normal()
	}
	return lambda1, lambda2, v1, v2
}

// String returns the SVG-style transform string representation
// of the matrix, using "none" for the identity matrix.
func (a Matrix2) String() string {
	if a.IsIdentity() {
		return "none"
	}
	if a.YX == 0 && a.XY == 0 { // no rotation or shearing
		trans := a.X0 != 0 || a.Y0 != 0
		scale := a.XX != 1 || a.YY != 1
		switch {
		case trans && scale:
			return fmt.Sprintf("translate(%g,%g) scale(%g,%g)", a.X0, a.Y0, a.XX, a.YY)
		case trans:
			return fmt.Sprintf("translate(%g,%g)", a.X0, a.Y0)
		case scale:
			return fmt.Sprintf("scale(%g,%g)", a.XX, a.YY)
		}
	}
	return fmt.Sprintf("matrix(%g,%g,%g,%g,%g,%g)", a.XX, a.YX, a.XY, a.YY, a.X0, a.Y0)
}

// SetString sets the matrix from the given SVG-style transform string,
// e.g., "translate(10, 5) scale(2, 2)". The string "none" sets the
// matrix to the identity.
func (a *Matrix2) SetString(str string) error {
	*a = Identity2()
	str = strings.TrimSpace(str)
	if str == "none" || str == "" {
		return nil
	}
	errmsg := "math32.Matrix2.SetString"
	for _, chunk := range strings.Split(str, ")") {
		chunk = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(chunk), ","))
		if chunk == "" {
			continue
		}
		name, vals, ok := strings.Cut(chunk, "(")
		if !ok {
			return fmt.Errorf("%s: missing '(' in transform %q", errmsg, chunk)
		}
		name = strings.TrimSpace(name)
		pts, err := parseFloat32s(vals)
		if err != nil {
			return fmt.Errorf("%s: %w", errmsg, err)
		}
		switch name {
		case "matrix":
			if len(pts) != 6 {
				return fmt.Errorf("%s: matrix requires 6 values, got %d", errmsg, len(pts))
			}
			a.SetMul(Matrix2{pts[0], pts[1], pts[2], pts[3], pts[4], pts[5]})
		case "translate":
			switch len(pts) {
			case 1:
				*a = a.Translate(pts[0], 0)
			case 2:
				*a = a.Translate(pts[0], pts[1])
			default:
				return fmt.Errorf("%s: translate requires 1 or 2 values, got %d", errmsg, len(pts))
			}
		case "scale":
			switch len(pts) {
			case 1:
				*a = a.Scale(pts[0], pts[0])
			case 2:
				*a = a.Scale(pts[0], pts[1])
			default:
				return fmt.Errorf("%s: scale requires 1 or 2 values, got %d", errmsg, len(pts))
			}
		case "rotate":
			switch len(pts) {
			case 1:
				*a = a.Rotate(DegToRad(pts[0]))
			case 3:
				*a = a.Translate(pts[1], pts[2]).Rotate(DegToRad(pts[0])).Translate(-pts[1], -pts[2])
			default:
				return fmt.Errorf("%s: rotate requires 1 or 3 values, got %d", errmsg, len(pts))
			}
		case "skewX":
			if len(pts) != 1 {
				return fmt.Errorf("%s: skewX requires 1 value, got %d", errmsg, len(pts))
			}
			*a = a.Skew(DegToRad(pts[0]), 0)
		case "skewY":
			if len(pts) != 1 {
				return fmt.Errorf("%s: skewY requires 1 value, got %d", errmsg, len(pts))
			}
			*a = a.Skew(0, DegToRad(pts[0]))
		default:
			return fmt.Errorf("%s: unknown transform type %q", errmsg, name)
		}
	}
	return nil
}

// parseFloat32s parses a comma or space separated list of numbers.
func parseFloat32s(str string) ([]float32, error) {
	fields := strings.FieldsFunc(str, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	pts := make([]float32, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, err
		}
		pts = append(pts, float32(v))
	}
	return pts, nil
}
