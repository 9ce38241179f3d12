// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package num provides generic helper functions for basic numbers.
package num

import "golang.org/x/exp/constraints"

// Number is a type constraint for a real number.
type Number interface {
	constraints.Integer | constraints.Float
}

// Signed is a type constraint for a signed real number.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Abs returns the absolute value of the given number.
func Abs[T Number](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0, or 1 depending on the sign of the given number.
func Sign[T Signed](x T) T {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// Clamp clamps the given value to the given minimum and maximum.
func Clamp[T Number](x, mn, mx T) T {
	if x < mn {
		return mn
	}
	if x > mx {
		return mx
	}
	return x
}
