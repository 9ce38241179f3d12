// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gradient

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/canvas/base/iox/imagex"
	"cogentcore.org/canvas/colors"
	"cogentcore.org/canvas/math32"
	"github.com/stretchr/testify/assert"
)

func TestLinearAt(t *testing.T) {
	g := NewLinear()
	assert.Equal(t, color.RGBA{}, g.At(20, 20))

	g.AddStop(colors.White, 0)
	g.Update(1, math32.B2(0, 0, 100, 100), math32.Identity2())
	assert.Equal(t, colors.AsRGBA(colors.White), g.At(20, 20))

	g.AddStop(colors.Black, 1)
	g.Update(1, math32.B2(0, 0, 100, 100), math32.Identity2())

	// the default gradient is top to bottom, so x has no effect
	assert.Equal(t, colors.AsRGBA(colors.White), g.At(10, -50))
	assert.Equal(t, colors.AsRGBA(colors.Black), g.At(80, 150))

	ga := colors.AsRGBA(g.At(50, 50))
	assert.Equal(t, ga.R, ga.G)
	assert.Equal(t, ga.B, ga.G)
	assert.Equal(t, uint8(255), ga.A)
}

func TestLinearOpacity(t *testing.T) {
	g := NewLinear().AddStop(colors.White, 0).AddStop(colors.White, 1)
	g.Update(0.5, math32.B2(0, 0, 100, 100), math32.Identity2())
	assert.Equal(t, color.RGBA{127, 127, 127, 127}, g.At(50, 50))
}

func TestRadialAt(t *testing.T) {
	g := NewRadial().SetUnits(UserSpaceOnUse).
		SetCenter(math32.Vec2(50, 50)).SetFocal(math32.Vec2(50, 50)).SetRadius(math32.Vec2(50, 50)).
		AddStop(colors.White, 0).AddStop(colors.Black, 1)
	g.Update(1, math32.B2(0, 0, 100, 100), math32.Identity2())

	// everything beyond the radius pads to the final stop
	assert.Equal(t, colors.AsRGBA(colors.Black), g.At(50, 120))
	assert.Equal(t, colors.AsRGBA(colors.Black), g.At(-20, 50))

	// near the center we are close to the first stop
	assert.Equal(t, color.RGBA{252, 252, 252, 255}, g.At(50, 50))
}

func TestSpreads(t *testing.T) {
	b := &Base{Opacity: 1}
	b.AddStop(colors.White, 0)
	b.AddStop(colors.Black, 1)

	b.Spread = Pad
	assert.Equal(t, colors.AsRGBA(colors.White), colors.AsRGBA(b.GetColor(-0.5)))
	assert.Equal(t, colors.AsRGBA(colors.Black), colors.AsRGBA(b.GetColor(1.5)))
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, colors.AsRGBA(b.GetColor(0.5)))

	b.Spread = Repeat
	assert.Equal(t, color.RGBA{191, 191, 191, 255}, colors.AsRGBA(b.GetColor(1.25)))

	b.Spread = Reflect
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, colors.AsRGBA(b.GetColor(0.5)))
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, colors.AsRGBA(b.GetColor(1.5)))
}

func TestCopy(t *testing.T) {
	orig := NewLinear().SetEnd(math32.Vec2(1, 0)).AddStop(colors.Red, 0).AddStop(colors.Blue, 1)
	cp := CopyOf(orig).(*Linear)
	assert.Equal(t, orig, cp)

	cp.Stops[0].Color = colors.Green
	assert.Equal(t, colors.Red, orig.Stops[0].Color)

	other := NewLinear()
	CopyFrom(other, orig)
	assert.Equal(t, orig, other)
}

func TestUnitsString(t *testing.T) {
	assert.Equal(t, "userSpaceOnUse", UserSpaceOnUse.String())
	assert.Equal(t, "pad", Pad.String())

	var u Units
	assert.NoError(t, u.SetString("userSpaceOnUse"))
	assert.Equal(t, UserSpaceOnUse, u)
	assert.Error(t, u.SetString("bad"))

	var s Spreads
	assert.NoError(t, s.SetString("reflect"))
	assert.Equal(t, Reflect, s)
	assert.Error(t, s.SetString("bad"))
}

func renderGradient(t *testing.T, g Gradient, name string) {
	sz := 64
	g.Update(1, math32.B2(0, 0, float32(sz), float32(sz)), math32.Identity2())
	img := image.NewRGBA(image.Rect(0, 0, sz, sz))
	for y := 0; y < sz; y++ {
		for x := 0; x < sz; x++ {
			img.Set(x, y, g.At(x, y))
		}
	}
	imagex.Assert(t, img, name)
}

func TestRenderLinear(t *testing.T) {
	renderGradient(t, NewLinear().AddStop(colors.Red, 0).AddStop(colors.Blue, 1), "linear")
	renderGradient(t, NewLinear().SetEnd(math32.Vec2(1, 1)).SetSpread(Reflect).
		AddStop(colors.Gold, 0).AddStop(colors.Purple, 0.5), "linear_reflect")
}

func TestRenderRadial(t *testing.T) {
	renderGradient(t, NewRadial().AddStop(colors.White, 0).AddStop(colors.Navy, 1), "radial")
	renderGradient(t, NewRadial().SetFocal(math32.Vec2(0.2, 0.2)).
		AddStop(colors.Yellow, 0).AddStop(colors.Darkred, 1), "radial_focal")
	renderGradient(t, NewRadial().SetSpread(Repeat).SetRadius(math32.Vector2Scalar(0.2)).
		AddStop(colors.White, 0).AddStop(colors.Teal, 1), "radial_repeat")
}
