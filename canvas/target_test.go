// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/path"
	"cogentcore.org/canvas/raster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTarget(t *testing.T, w, h int) *DrawTarget {
	t.Helper()
	dt, err := NewDrawTarget(image.Pt(w, h))
	require.NoError(t, err)
	return dt
}

func solid(c color.RGBA) Paint {
	return Paint{Shader: image.NewUniform(c)}
}

func TestNewDrawTarget(t *testing.T) {
	var se *SizeError
	_, err := NewDrawTarget(image.Pt(0, 4))
	assert.ErrorAs(t, err, &se)
	assert.Equal(t, image.Pt(0, 4), se.Size)
	_, err = NewDrawTarget(image.Pt(4, -1))
	assert.Error(t, err)

	dt := newTarget(t, 3, 2)
	assert.Equal(t, image.Pt(3, 2), dt.Size())
	assert.Len(t, dt.Snapshot(), 3*2*4)
	assert.Equal(t, color.RGBA{}, dt.Image().RGBAAt(1, 1))
}

func TestTransformOpacity(t *testing.T) {
	dt := newTarget(t, 4, 4)
	assert.True(t, dt.GetTransform().IsIdentity())
	m := math32.Rotate2D(0.5).Translate(3, -2)
	dt.SetTransform(m)
	assert.Equal(t, m, dt.GetTransform())

	assert.Equal(t, float32(1), dt.GetOpacity())
	// stored as given, not clamped
	dt.SetOpacity(1.5)
	assert.Equal(t, float32(1.5), dt.GetOpacity())
	dt.SetOpacity(-0.25)
	assert.Equal(t, float32(-0.25), dt.GetOpacity())
}

func TestFillRect(t *testing.T) {
	dt := newTarget(t, 8, 8)
	assert.NoError(t, dt.FillRect(math32.B2(0, 0, 8, 8), solid(red), raster.SourceOver))
	assert.Equal(t, red, dt.Image().RGBAAt(0, 0))
	assert.Equal(t, red, dt.Image().RGBAAt(7, 7))

	assert.NoError(t, dt.FillRect(math32.B2(2, 2, 6, 6), solid(blue), raster.SourceOver))
	assert.Equal(t, blue, dt.Image().RGBAAt(3, 3))
	assert.Equal(t, red, dt.Image().RGBAAt(1, 1))
}

func TestFillRectInvalid(t *testing.T) {
	dt := newTarget(t, 4, 4)
	before := dt.SnapshotOwned()

	var re *RectError
	bad := math32.Box2{Min: math32.Vec2(math32.NaN(), 0), Max: math32.Vec2(2, 2)}
	assert.ErrorAs(t, dt.FillRect(bad, solid(red), raster.SourceOver), &re)
	// negative sizes are invalid too
	assert.Error(t, dt.FillRect(math32.B2(5, 5, 2, 2), solid(red), raster.SourceOver))
	assert.Equal(t, before, dt.SnapshotOwned())
}

func TestFillTransformed(t *testing.T) {
	dt := newTarget(t, 8, 8)
	dt.SetTransform(math32.Translate2D(4, 0))
	assert.NoError(t, dt.FillRect(math32.B2(0, 0, 3, 3), solid(red), raster.SourceOver))
	assert.Equal(t, red, dt.Image().RGBAAt(5, 1))
	assert.Equal(t, color.RGBA{}, dt.Image().RGBAAt(2, 1))
}

func TestFillKeepsPath(t *testing.T) {
	dt := newTarget(t, 8, 8)
	dt.SetTransform(math32.Translate2D(4, 0))
	p := path.MustParseSVGPath("M1 1L4 1L4 4L1 4z")
	orig := p.Clone()
	dt.Fill(p, solid(red), raster.SourceOver)
	assert.Equal(t, orig, p)
	assert.Equal(t, red, dt.Image().RGBAAt(5, 1))
}

func TestFillOpacity(t *testing.T) {
	dt := newTarget(t, 4, 4)
	dt.SetOpacity(0.5)
	assert.NoError(t, dt.FillRect(math32.B2(0, 0, 4, 4), solid(red), raster.SourceOver))
	c := dt.Image().RGBAAt(2, 2)
	assert.InDelta(t, 128, int(c.A), 1)
	assert.InDelta(t, 128, int(c.R), 1)
	assert.Equal(t, uint8(0), c.B)
}

func TestFillBlend(t *testing.T) {
	dt := newTarget(t, 4, 4)
	assert.NoError(t, dt.FillRect(math32.B2(0, 0, 4, 4), solid(red), raster.SourceOver))
	// destination-over leaves opaque pixels alone
	assert.NoError(t, dt.FillRect(math32.B2(0, 0, 4, 4), solid(blue), raster.DestinationOver))
	assert.Equal(t, red, dt.Image().RGBAAt(1, 1))
	// clear erases only where the path covers
	assert.NoError(t, dt.FillRect(math32.B2(0, 0, 2, 4), solid(blue), raster.Clear))
	assert.Equal(t, color.RGBA{}, dt.Image().RGBAAt(1, 1))
	assert.Equal(t, red, dt.Image().RGBAAt(3, 1))
}

func TestFillPath(t *testing.T) {
	dt := newTarget(t, 10, 10)
	pb := dt.CreatePathBuilder()
	pb.Arc(5, 5, 4, 0, 2*math32.Pi, false)
	p, err := pb.Finish()
	require.NoError(t, err)
	dt.Fill(p, solid(green), raster.SourceOver)
	assert.Equal(t, green, dt.Image().RGBAAt(5, 5))
	assert.Equal(t, green, dt.Image().RGBAAt(5, 2))
	assert.Equal(t, color.RGBA{}, dt.Image().RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{}, dt.Image().RGBAAt(9, 0))
}

func TestClear(t *testing.T) {
	dt := newTarget(t, 4, 4)
	assert.NoError(t, dt.FillRect(math32.B2(0, 0, 4, 4), solid(red), raster.SourceOver))
	dt.Clear()
	assert.Equal(t, color.RGBA{}, dt.Image().RGBAAt(2, 2))
}

func TestClearRect(t *testing.T) {
	dt := newTarget(t, 8, 8)
	assert.NoError(t, dt.FillRect(math32.B2(0, 0, 8, 8), solid(red), raster.SourceOver))
	assert.NoError(t, dt.ClearRect(math32.B2(2, 2, 6, 6)))
	assert.Equal(t, color.RGBA{}, dt.Image().RGBAAt(4, 4))
	assert.Equal(t, red, dt.Image().RGBAAt(1, 1))
	assert.Equal(t, red, dt.Image().RGBAAt(7, 7))

	assert.Error(t, dt.ClearRect(math32.B2(4, 4, 2, 2)))
}

func TestPushPopClip(t *testing.T) {
	dt := newTarget(t, 8, 8)
	dt.PushClipRect(math32.B2(0, 0, 4, 4))
	assert.NoError(t, dt.FillRect(math32.B2(0, 0, 8, 8), solid(red), raster.SourceOver))
	assert.Equal(t, red, dt.Image().RGBAAt(2, 2))
	assert.Equal(t, color.RGBA{}, dt.Image().RGBAAt(6, 6))

	dt.PopClip()
	assert.NoError(t, dt.FillRect(math32.B2(0, 0, 8, 8), solid(blue), raster.SourceOver))
	assert.Equal(t, blue, dt.Image().RGBAAt(6, 6))
}

func TestClipIntersection(t *testing.T) {
	dt := newTarget(t, 8, 8)
	dt.PushClipRect(math32.B2(0, 0, 5, 8))
	dt.PushClipRect(math32.B2(3, 0, 8, 8))
	assert.NoError(t, dt.FillRect(math32.B2(0, 0, 8, 8), solid(red), raster.SourceOver))
	assert.Equal(t, red, dt.Image().RGBAAt(4, 4))
	assert.Equal(t, color.RGBA{}, dt.Image().RGBAAt(1, 4))
	assert.Equal(t, color.RGBA{}, dt.Image().RGBAAt(6, 4))

	dt.PopClip()
	dt.PopClip()
	assert.NoError(t, dt.FillRect(math32.B2(0, 0, 8, 8), solid(red), raster.SourceOver))
	assert.Equal(t, red, dt.Image().RGBAAt(1, 4))
	assert.Equal(t, red, dt.Image().RGBAAt(6, 4))
}

func TestClipRebuildStable(t *testing.T) {
	// push and pop rebuild the mask from the stored paths; the stored
	// paths must stay in user space across any number of rebuilds
	dt := newTarget(t, 8, 8)
	dt.SetTransform(math32.Translate2D(2, 0))
	dt.PushClipRect(math32.B2(0, 0, 2, 8)) // device x 2..4
	dt.PushClipRect(math32.B2(-2, 0, 6, 8))
	dt.PopClip()
	assert.NoError(t, dt.FillRect(math32.B2(0, 0, 8, 8), solid(red), raster.SourceOver))
	assert.Equal(t, red, dt.Image().RGBAAt(3, 4))
	assert.Equal(t, color.RGBA{}, dt.Image().RGBAAt(1, 4))
	assert.Equal(t, color.RGBA{}, dt.Image().RGBAAt(6, 4))
}

func TestPopClipEmpty(t *testing.T) {
	dt := newTarget(t, 4, 4)
	assert.NotPanics(t, func() { dt.PopClip() })
	assert.NoError(t, dt.FillRect(math32.B2(0, 0, 4, 4), solid(red), raster.SourceOver))
	assert.Equal(t, red, dt.Image().RGBAAt(1, 1))
}

func TestClipPushTimeTransform(t *testing.T) {
	// clips keep the mask rasterized at push time until the next
	// clip operation, even if the transform changes in between
	dt := newTarget(t, 8, 8)
	dt.SetTransform(math32.Translate2D(4, 0))
	dt.PushClipRect(math32.B2(0, 0, 2, 8))
	dt.SetTransform(math32.Identity2())
	assert.NoError(t, dt.FillRect(math32.B2(0, 0, 8, 8), solid(red), raster.SourceOver))
	assert.Equal(t, red, dt.Image().RGBAAt(5, 4))
	assert.Equal(t, color.RGBA{}, dt.Image().RGBAAt(1, 4))
}

func TestSnapshot(t *testing.T) {
	dt := newTarget(t, 2, 2)
	assert.NoError(t, dt.FillRect(math32.B2(0, 0, 2, 2), solid(red), raster.SourceOver))
	live := dt.Snapshot()
	owned := dt.SnapshotOwned()
	assert.Equal(t, live, owned)

	assert.NoError(t, dt.FillRect(math32.B2(0, 0, 2, 2), solid(blue), raster.Source))
	// the live view follows the pixels; the owned copy does not
	assert.Equal(t, uint8(255), live[2])
	assert.Equal(t, uint8(255), owned[0])
	assert.Equal(t, uint8(0), owned[2])
}

func TestCopySurface(t *testing.T) {
	dt := newTarget(t, 4, 4)
	// the transform, opacity, and clip do not apply to copies
	dt.SetTransform(math32.Translate2D(2, 2))
	dt.SetOpacity(0.25)
	dt.PushClipRect(math32.B2(0, 0, 1, 1))

	assert.NoError(t, dt.CopySurface(patternData(), image.Pt(2, 2), image.Pt(1, 1)))
	assert.Equal(t, red, dt.Image().RGBAAt(1, 1))
	assert.Equal(t, green, dt.Image().RGBAAt(2, 1))
	assert.Equal(t, blue, dt.Image().RGBAAt(1, 2))
	assert.Equal(t, white, dt.Image().RGBAAt(2, 2))
	assert.Equal(t, color.RGBA{}, dt.Image().RGBAAt(0, 0))

	var sb *ShortBufferError
	assert.ErrorAs(t, dt.CopySurface(patternData()[:7], image.Pt(2, 2), image.Pt(0, 0)), &sb)
	assert.Error(t, dt.CopySurface(patternData(), image.Pt(0, 2), image.Pt(0, 0)))
}

func TestCopySurfacePartiallyOffTarget(t *testing.T) {
	dt := newTarget(t, 4, 4)
	assert.NoError(t, dt.CopySurface(patternData(), image.Pt(2, 2), image.Pt(3, 3)))
	assert.Equal(t, red, dt.Image().RGBAAt(3, 3))
	assert.Equal(t, color.RGBA{}, dt.Image().RGBAAt(2, 2))
}

func TestDrawSurface(t *testing.T) {
	dt := newTarget(t, 8, 8)
	data := []byte{255, 0, 0, 255} // one red pixel
	assert.NoError(t, dt.DrawSurface(data, math32.B2(2, 2, 6, 6), math32.B2(0, 0, 1, 1), FilterBilinear, raster.SourceOver))
	assert.Equal(t, red, dt.Image().RGBAAt(3, 3))
	assert.Equal(t, red, dt.Image().RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{}, dt.Image().RGBAAt(1, 1))

	var sb *ShortBufferError
	err := dt.DrawSurface(data, math32.B2(0, 0, 4, 4), math32.B2(0, 0, 2, 2), FilterBilinear, raster.SourceOver)
	assert.ErrorAs(t, err, &sb)
	assert.Error(t, dt.DrawSurface(data, math32.B2(0, 0, -4, 4), math32.B2(0, 0, 1, 1), FilterBilinear, raster.SourceOver))
}

func TestDrawSurfaceOpacity(t *testing.T) {
	dt := newTarget(t, 4, 4)
	dt.SetOpacity(0.5)
	data := []byte{255, 0, 0, 255}
	assert.NoError(t, dt.DrawSurface(data, math32.B2(0, 0, 4, 4), math32.B2(0, 0, 1, 1), FilterNearest, raster.SourceOver))
	c := dt.Image().RGBAAt(2, 2)
	assert.InDelta(t, 128, int(c.A), 1)
	assert.InDelta(t, 128, int(c.R), 1)
}

func TestDrawSurfaceTransformed(t *testing.T) {
	dt := newTarget(t, 8, 8)
	dt.SetTransform(math32.Translate2D(4, 0))
	data := []byte{255, 0, 0, 255}
	assert.NoError(t, dt.DrawSurface(data, math32.B2(0, 0, 2, 2), math32.B2(0, 0, 1, 1), FilterNearest, raster.SourceOver))
	assert.Equal(t, red, dt.Image().RGBAAt(5, 1))
	assert.Equal(t, color.RGBA{}, dt.Image().RGBAAt(1, 1))
}

func TestDrawSurfaceWithShadow(t *testing.T) {
	dt := newTarget(t, 4, 4)
	before := dt.SnapshotOwned()
	dt.DrawSurfaceWithShadow(patternData(), math32.Vec2(1, 1), red, math32.Vec2(2, 2), 1.5, raster.SourceOver)
	assert.Equal(t, before, dt.SnapshotOwned())
}

func TestStroke(t *testing.T) {
	dt := newTarget(t, 10, 10)
	so := NewStrokeOptions()
	so.Width = 2
	assert.NoError(t, dt.StrokeRect(math32.B2(2, 2, 8, 8), solid(red), so, raster.SourceOver))
	assert.Equal(t, red, dt.Image().RGBAAt(2, 5)) // on the edge
	// the interior and the far outside stay empty
	assert.Equal(t, color.RGBA{}, dt.Image().RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{}, dt.Image().RGBAAt(0, 5))

	assert.Error(t, dt.StrokeRect(math32.B2(4, 4, 2, 2), solid(red), so, raster.SourceOver))
}

func TestStrokeLineCaps(t *testing.T) {
	dt := newTarget(t, 12, 6)
	so := NewStrokeOptions()
	so.Width = 4
	// butt caps end exactly at the endpoints
	dt.StrokeLine(math32.Vec2(3, 3), math32.Vec2(9, 3), solid(red), so, raster.SourceOver)
	assert.Equal(t, red, dt.Image().RGBAAt(4, 3))
	assert.Equal(t, uint8(0), dt.Image().RGBAAt(1, 3).A)

	// a round join selects round caps, which reach past the endpoints
	dt.Clear()
	so.Join = path.JoinRound
	dt.StrokeLine(math32.Vec2(3, 3), math32.Vec2(9, 3), solid(red), so, raster.SourceOver)
	assert.NotEqual(t, uint8(0), dt.Image().RGBAAt(1, 3).A)
}

func TestCreateSimilarDrawTarget(t *testing.T) {
	dt := newTarget(t, 4, 4)
	dt.SetTransform(math32.Translate2D(2, 0))
	dt.SetOpacity(0.5)
	dt.PushClipRect(math32.B2(0, 0, 2, 6))

	sim, err := dt.CreateSimilarDrawTarget(image.Pt(6, 6))
	require.NoError(t, err)
	assert.Equal(t, image.Pt(6, 6), sim.Size())
	assert.Equal(t, dt.GetTransform(), sim.GetTransform())
	assert.Equal(t, float32(0.5), sim.GetOpacity())

	// the clip carries over: the pushed rect sits at device x 2..4
	// under the inherited translation. Pixels do not carry over.
	sim.SetOpacity(1)
	assert.NoError(t, sim.FillRect(math32.B2(-2, 0, 6, 6), solid(blue), raster.SourceOver))
	assert.Equal(t, blue, sim.Image().RGBAAt(3, 1))
	assert.Equal(t, color.RGBA{}, sim.Image().RGBAAt(0, 1))
	assert.Equal(t, color.RGBA{}, sim.Image().RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{}, dt.Image().RGBAAt(3, 1))

	// popping the inherited clip frees the whole new target
	sim.PopClip()
	assert.NoError(t, sim.FillRect(math32.B2(-2, 0, 6, 6), solid(blue), raster.SourceOver))
	assert.Equal(t, blue, sim.Image().RGBAAt(5, 5))

	_, err = dt.CreateSimilarDrawTarget(image.Pt(0, 6))
	assert.Error(t, err)
}

func TestNewDrawTargetFromImage(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{0, 255, 0, 255})
	dt, err := NewDrawTargetFromImage(src)
	require.NoError(t, err)
	assert.Equal(t, green, dt.Image().RGBAAt(0, 0))

	// drawing does not touch the original image
	assert.NoError(t, dt.FillRect(math32.B2(0, 0, 2, 2), solid(red), raster.Source))
	assert.Equal(t, color.NRGBA{0, 255, 0, 255}, src.NRGBAAt(0, 0))
}

func TestDrawImage(t *testing.T) {
	dt := newTarget(t, 6, 6)
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i] = 255
		src.Pix[i+3] = 255
	}
	dt.DrawImage(src, math32.Vec2(1, 1))
	assert.Equal(t, red, dt.Image().RGBAAt(1, 1))
	assert.Equal(t, red, dt.Image().RGBAAt(2, 2))
	assert.Equal(t, color.RGBA{}, dt.Image().RGBAAt(4, 4))
}

func TestFillSurfacePaint(t *testing.T) {
	dt := newTarget(t, 4, 4)
	pt, err := NewPaint(SurfaceStyle{Data: patternData(), Size: image.Pt(2, 2)}, math32.Identity2())
	require.NoError(t, err)
	assert.NoError(t, dt.FillRect(math32.B2(0, 0, 4, 4), pt, raster.SourceOver))
	assert.Equal(t, red, dt.Image().RGBAAt(0, 0))
	// pad extends the edge pixels beyond the surface
	assert.Equal(t, white, dt.Image().RGBAAt(3, 3))
}

func TestFillGradientPaint(t *testing.T) {
	dt := newTarget(t, 6, 6)
	// the ramp lies entirely left of the target, so every pixel pads
	// to the end color
	st := LinearGradientStyle{X0: -10, Y0: 0, X1: -5, Y1: 0,
		Stops: []GradientStop{{0, red}, {1, blue}}}
	pt, err := NewPaint(st, math32.Identity2())
	require.NoError(t, err)
	assert.NoError(t, dt.FillRect(math32.B2(0, 0, 6, 6), pt, raster.SourceOver))
	assert.Equal(t, blue, dt.Image().RGBAAt(0, 3))
	assert.Equal(t, blue, dt.Image().RGBAAt(5, 3))
}

func TestFillText(t *testing.T) {
	dt := newTarget(t, 4, 4)
	before := dt.SnapshotOwned()
	dt.FillText("hello", math32.Vec2(1, 3), solid(red), raster.SourceOver)
	assert.Equal(t, before, dt.SnapshotOwned())
}
