// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of
// numbers with tolerance (in other words, within a certain range).
package tolassert

import (
	"fmt"

	"cogentcore.org/canvas/base/num"
	"github.com/stretchr/testify/assert"
	"golang.org/x/exp/constraints"
)

// Equal asserts that the two given numbers are within 1.0e-7 of each other.
func Equal[T constraints.Float](t assert.TestingT, expected, actual T, msgAndArgs ...any) bool {
	return EqualTol(t, expected, actual, 1.0e-7, msgAndArgs...)
}

// EqualTol asserts that the two given numbers are within the given
// tolerance of each other.
func EqualTol[T constraints.Float](t assert.TestingT, expected, actual, tolerance T, msgAndArgs ...any) bool {
	if num.Abs(expected-actual) <= tolerance {
		return true
	}
	return assert.Fail(t, fmt.Sprintf("expected %v to be within %v of %v", actual, tolerance, expected), msgAndArgs...)
}

// EqualTolSlice asserts that the elements of the two given slices of
// numbers are within the given tolerance of each other.
func EqualTolSlice[T constraints.Float](t assert.TestingT, expected, actual []T, tolerance T, msgAndArgs ...any) bool {
	if len(expected) != len(actual) {
		return assert.Fail(t, fmt.Sprintf("expected %d elements, got %d", len(expected), len(actual)), msgAndArgs...)
	}
	for i := range expected {
		if !EqualTol(t, expected[i], actual[i], tolerance, msgAndArgs...) {
			return false
		}
	}
	return true
}
