// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package num

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbs(t *testing.T) {
	assert.Equal(t, 3, Abs(-3))
	assert.Equal(t, 3, Abs(3))
	assert.Equal(t, float32(1.5), Abs(float32(-1.5)))
	assert.Equal(t, uint8(4), Abs(uint8(4)))
}

func TestSign(t *testing.T) {
	assert.Equal(t, -1, Sign(-5))
	assert.Equal(t, 0, Sign(0))
	assert.Equal(t, 1, Sign(5))
	assert.Equal(t, float32(-1), Sign(float32(-0.25)))
	assert.Equal(t, float64(1), Sign(0.25))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 2, Clamp(1, 2, 4))
	assert.Equal(t, 3, Clamp(3, 2, 4))
	assert.Equal(t, 4, Clamp(5, 2, 4))
}
