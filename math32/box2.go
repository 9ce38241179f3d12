// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "image"

// Box2 is a 2D bounding box, spanned between a minimum and a maximum
// corner point.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y
// coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// Size returns the vector from the minimum corner to the maximum corner.
func (b Box2) Size() Vector2 {
	return b.Max.Sub(b.Min)
}

// ToRect returns the box as an [image.Rectangle], flooring the minimum
// and ceiling the maximum so that the box is fully covered.
func (b Box2) ToRect() image.Rectangle {
	return image.Rectangle{Min: b.Min.ToPointFloor(), Max: b.Max.ToPointCeil()}
}
