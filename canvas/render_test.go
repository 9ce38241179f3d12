// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"image"
	"log/slog"
	"os"
	"testing"

	"cogentcore.org/canvas/base/iox/imagex"
	"cogentcore.org/canvas/base/logx"
	"cogentcore.org/canvas/colors"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// quiet the unsupported-operation warnings exercised below
	logx.UserLevel = slog.LevelError
	logx.InitColor()
	os.Exit(m.Run())
}

// RunTest makes a draw target with the given size, calls the given
// function on it, and then asserts the resulting image using
// [imagex.Assert] with the given name.
func RunTest(t *testing.T, nm string, width int, height int, f func(dt *DrawTarget)) {
	dt, err := NewDrawTarget(image.Pt(width, height))
	require.NoError(t, err)
	f(dt)
	imagex.Assert(t, dt.Image(), nm)
}

func TestRenderScene(t *testing.T) {
	RunTest(t, "scene", 64, 64, func(dt *DrawTarget) {
		b := Backend{}
		state := NewPaintState()
		assert.NoError(t, b.SetFillStyle(&state, LinearGradientStyle{X1: 64, Y1: 64,
			Stops: []GradientStop{{0, colors.FromRGB(255, 160, 40)}, {1, colors.FromRGB(110, 20, 200)}}}))
		assert.NoError(t, dt.FillRect(math32.B2(0, 0, 64, 64), state.Fill, b.GetCompositionOp(&state)))

		pb := dt.CreatePathBuilder()
		pb.Arc(32, 32, 20, 0, 2*math32.Pi, false)
		p, err := pb.Finish()
		require.NoError(t, err)

		b.SetGlobalComposition(&state, Multiply)
		assert.NoError(t, b.SetFillStyle(&state, ColorStyle{Color: colors.FromRGB(90, 200, 150)}))
		dt.Fill(p, state.Fill, b.GetCompositionOp(&state))

		so := NewStrokeOptions()
		so.Width = 3
		so.Dash = []float32{6, 4}
		dt.Stroke(p, solid(white), so, raster.SourceOver)
	})
}

func TestRenderClip(t *testing.T) {
	RunTest(t, "clip", 48, 48, func(dt *DrawTarget) {
		pb := dt.CreatePathBuilder()
		pb.Ellipse(24, 24, 18, 12, 0, 0, 2*math32.Pi, false)
		p, err := pb.Finish()
		require.NoError(t, err)

		dt.PushClip(p)
		assert.NoError(t, dt.FillRect(math32.B2(0, 0, 48, 24), solid(colors.FromRGB(200, 40, 40)), raster.SourceOver))
		assert.NoError(t, dt.FillRect(math32.B2(0, 24, 48, 48), solid(colors.FromRGB(40, 40, 200)), raster.SourceOver))
		dt.PopClip()

		so := NewStrokeOptions()
		so.Width = 2
		dt.Stroke(p, solid(colors.FromRGB(240, 240, 240)), so, raster.SourceOver)
	})
}

func TestRenderRadial(t *testing.T) {
	RunTest(t, "radial", 48, 48, func(dt *DrawTarget) {
		st := RadialGradientStyle{X0: 20, Y0: 20, X1: 24, Y1: 24, R1: 22,
			Stops: []GradientStop{
				{0, colors.FromRGB(255, 255, 180)},
				{0.7, colors.FromRGB(250, 120, 40)},
				{1, colors.FromRGB(60, 10, 80)},
			}}
		pt, err := NewPaint(st, math32.Identity2())
		require.NoError(t, err)
		assert.NoError(t, dt.FillRect(math32.B2(0, 0, 48, 48), pt, raster.SourceOver))
	})
}

func TestRenderTransformed(t *testing.T) {
	RunTest(t, "transformed", 48, 48, func(dt *DrawTarget) {
		dt.SetTransform(math32.Translate2D(24, 24).Rotate(math32.Pi / 6).Scale(1.5, 1))
		assert.NoError(t, dt.FillRect(math32.B2(-10, -10, 10, 10), solid(colors.FromRGB(40, 160, 220)), raster.SourceOver))
		so := NewStrokeOptions()
		so.Width = 2
		assert.NoError(t, dt.StrokeRect(math32.B2(-10, -10, 10, 10), solid(white), so, raster.SourceOver))
	})
}

func TestRenderSurface(t *testing.T) {
	RunTest(t, "surface", 32, 32, func(dt *DrawTarget) {
		assert.NoError(t, dt.DrawSurface(patternData(), math32.B2(4, 4, 28, 28), math32.B2(0, 0, 2, 2), FilterBilinear, raster.SourceOver))
		assert.NoError(t, dt.DrawSurface(patternData(), math32.B2(12, 12, 20, 20), math32.B2(0, 0, 2, 2), FilterNearest, raster.Xor))
	})
}
