// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"testing"

	"cogentcore.org/canvas/colors"
	"cogentcore.org/canvas/math32"
)

func BenchmarkLinear(b *testing.B) {
	g := NewLinear().AddStop(colors.White, 0).AddStop(colors.Black, 1)
	g.Update(1, math32.B2(0, 0, 100, 100), math32.Identity2())
	for i := 0; i < b.N; i++ {
		g.At(40, 40)
	}
}

func BenchmarkRadial(b *testing.B) {
	g := NewRadial().AddStop(colors.White, 0).AddStop(colors.Black, 1)
	g.Update(1, math32.B2(0, 0, 100, 100), math32.Identity2())
	for i := 0; i < b.N; i++ {
		g.At(40, 40)
	}
}
