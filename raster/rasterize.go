// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package raster converts paths into antialiased alpha coverage masks
// and composites pixels using Porter-Duff and blending operators.
package raster

import (
	"image"
	"image/draw"

	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/path"
	"golang.org/x/image/vector"
)

// Rasterize renders the fill of the given path, transformed by the given
// matrix, into a new alpha coverage mask of the given size. The path is
// left unmodified. Coverage is antialiased, and open subpaths are
// implicitly closed. Arcs are replaced by cubic Béziers before scan
// conversion.
func Rasterize(p path.Path, m math32.Matrix2, size image.Point) *image.Alpha {
	mask := image.NewAlpha(image.Rectangle{Max: size})
	if size.X <= 0 || size.Y <= 0 || p.Empty() {
		return mask
	}
	q := p.Clone().Transform(m)
	q = q.ReplaceArcs()
	ras := vector.NewRasterizer(size.X, size.Y)
	ras.DrawOp = draw.Src
	open := false
	for s := q.Scanner(); s.Scan(); {
		end := s.End()
		switch s.Cmd() {
		case path.MoveTo:
			if open {
				ras.ClosePath()
				open = false
			}
			ras.MoveTo(end.X, end.Y)
		case path.LineTo:
			ras.LineTo(end.X, end.Y)
			open = true
		case path.QuadTo:
			cp1 := s.CP1()
			ras.QuadTo(cp1.X, cp1.Y, end.X, end.Y)
			open = true
		case path.CubeTo:
			cp1 := s.CP1()
			cp2 := s.CP2()
			ras.CubeTo(cp1.X, cp1.Y, cp2.X, cp2.Y, end.X, end.Y)
			open = true
		case path.Close:
			ras.ClosePath()
			open = false
		}
	}
	if open {
		ras.ClosePath()
	}
	ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}
