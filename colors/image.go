// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image"
	"image/color"
)

// Uniform returns a new infinitely sized [image.Uniform] of the given
// color. See [ToUniform] for the converse.
func Uniform(c color.Color) image.Image {
	return image.NewUniform(c)
}

// ToUniform returns the uniform [color.RGBA] of the given image,
// sampling it at the origin. It returns the zero color for a nil image.
// See [Uniform] for the converse.
func ToUniform(img image.Image) color.RGBA {
	if img == nil {
		return color.RGBA{}
	}
	return AsRGBA(img.At(0, 0))
}
