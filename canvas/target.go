// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"image"
	"image/color"
	"log/slog"

	"cogentcore.org/canvas/colors/gradient"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/path"
	"cogentcore.org/canvas/raster"
	"github.com/anthonynsimon/bild/clone"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// DrawTarget is a software render target: an [image.RGBA] with
// premultiplied alpha, plus the transform, global opacity, and clip
// stack that drawing goes through. Draw operations rasterize under
// the current transform, mask by the intersection of the pushed clip
// paths, and composite with the requested blend mode.
//
// A DrawTarget is not safe for concurrent use.
type DrawTarget struct {
	image     *image.RGBA
	transform math32.Matrix2
	opacity   float32

	// clipPaths is the stack of pushed clip paths; mask is their
	// intersection, rasterized by updateClipMask, nil when empty.
	clipPaths []path.Path
	mask      *image.Alpha
}

// NewDrawTarget returns a new draw target of the given pixel size,
// cleared to transparent black, with the identity transform, opacity
// 1, and no clip. It returns a [SizeError] if either dimension is
// not positive.
func NewDrawTarget(size image.Point) (*DrawTarget, error) {
	if size.X <= 0 || size.Y <= 0 {
		return nil, &SizeError{Size: size}
	}
	return &DrawTarget{
		image:     image.NewRGBA(image.Rectangle{Max: size}),
		transform: math32.Identity2(),
		opacity:   1,
	}, nil
}

// NewDrawTargetFromImage returns a new draw target rendering onto a
// premultiplied RGBA copy of the given image.
func NewDrawTargetFromImage(img image.Image) (*DrawTarget, error) {
	rgba := clone.AsRGBA(img)
	sz := rgba.Rect.Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return nil, &SizeError{Size: sz}
	}
	return &DrawTarget{image: rgba, transform: math32.Identity2(), opacity: 1}, nil
}

// CreateSimilarDrawTarget returns a new transparent draw target of
// the given size carrying this target's transform, opacity, and clip
// state, for off-screen composition. The clip mask is rasterized anew
// at the new size; nothing is shared, so drawing into either target
// does not affect the other.
func (dt *DrawTarget) CreateSimilarDrawTarget(size image.Point) (*DrawTarget, error) {
	nt, err := NewDrawTarget(size)
	if err != nil {
		return nil, err
	}
	nt.transform = dt.transform
	nt.opacity = dt.opacity
	if len(dt.clipPaths) > 0 {
		nt.clipPaths = make([]path.Path, len(dt.clipPaths))
		for i, p := range dt.clipPaths {
			nt.clipPaths[i] = p.Clone()
		}
		nt.updateClipMask()
	}
	return nt, nil
}

// CreatePathBuilder returns a new path builder.
func (dt *DrawTarget) CreatePathBuilder() *path.Builder {
	return path.NewBuilder()
}

// Size returns the pixel size of the target.
func (dt *DrawTarget) Size() image.Point {
	return dt.image.Rect.Size()
}

// Image returns the backing image. The pixels are premultiplied RGBA;
// the image stays valid across draws.
func (dt *DrawTarget) Image() *image.RGBA {
	return dt.image
}

// Snapshot returns the target pixels as premultiplied RGBA bytes in
// row-major order, 4 bytes per pixel. The slice aliases the backing
// image and reflects later draws; use [DrawTarget.SnapshotOwned] for
// a stable copy.
func (dt *DrawTarget) Snapshot() []byte {
	return dt.image.Pix
}

// SnapshotOwned returns a copy of the target pixels as premultiplied
// RGBA bytes in row-major order.
func (dt *DrawTarget) SnapshotOwned() []byte {
	out := make([]byte, len(dt.image.Pix))
	copy(out, dt.image.Pix)
	return out
}

// GetTransform returns the current transform.
func (dt *DrawTarget) GetTransform() math32.Matrix2 {
	return dt.transform
}

// SetTransform sets the transform applied to subsequent draws,
// mapping user space to device space. Clips already pushed keep the
// mask they were rasterized with.
func (dt *DrawTarget) SetTransform(m math32.Matrix2) {
	dt.transform = m
}

// GetOpacity returns the global draw opacity.
func (dt *DrawTarget) GetOpacity() float32 {
	return dt.opacity
}

// SetOpacity sets the global opacity applied to subsequent draws.
// The value is stored as given; callers normally keep it in 0-1.
func (dt *DrawTarget) SetOpacity(op float32) {
	dt.opacity = op
}

// PushClip pushes a clip path: until the matching [DrawTarget.PopClip],
// draws only touch pixels inside it, combined with any clips already
// pushed. The path rasterizes under the current transform.
func (dt *DrawTarget) PushClip(p path.Path) {
	dt.clipPaths = append(dt.clipPaths, p.Clone())
	dt.updateClipMask()
}

// PushClipRect pushes a rectangular clip; see [DrawTarget.PushClip].
func (dt *DrawTarget) PushClipRect(rect math32.Box2) {
	dt.PushClip(rectPath(rect))
}

// PopClip removes the most recently pushed clip path. Popping with
// no clips pushed does nothing.
func (dt *DrawTarget) PopClip() {
	if len(dt.clipPaths) == 0 {
		slog.Error("programmer error: canvas.DrawTarget.PopClip: no clip to pop")
		return
	}
	dt.clipPaths = dt.clipPaths[:len(dt.clipPaths)-1]
	dt.updateClipMask()
}

// updateClipMask rebuilds the clip mask as the intersection of all
// pushed clip paths rasterized under the current transform, or nil
// when none are pushed.
func (dt *DrawTarget) updateClipMask() {
	if len(dt.clipPaths) == 0 {
		dt.mask = nil
		return
	}
	sz := dt.Size()
	var mask *image.Alpha
	for _, p := range dt.clipPaths {
		pm := raster.Rasterize(p, dt.transform, sz)
		if mask == nil {
			mask = pm
		} else {
			mask = raster.IntersectMask(mask, pm)
		}
	}
	dt.mask = mask
}

// Clear resets every pixel to transparent black, ignoring the
// transform, opacity, and clip.
func (dt *DrawTarget) Clear() {
	draw.Draw(dt.image, dt.image.Rect, image.Transparent, image.Point{}, draw.Src)
}

// ClearRect erases the rectangle to transparent black under the
// current transform and clip.
func (dt *DrawTarget) ClearRect(rect math32.Box2) error {
	if err := checkRect(rect); err != nil {
		return err
	}
	dt.fill(rectPath(rect), image.Transparent, raster.Clear)
	return nil
}

// Fill fills the path with the paint, compositing with the given
// blend mode under the current transform, opacity, and clip.
func (dt *DrawTarget) Fill(p path.Path, pt Paint, op raster.BlendModes) {
	src := pt.shader(dt.opacity, p.Bounds(), dt.transform)
	dt.fill(p, src, op)
}

// FillRect fills the rectangle; see [DrawTarget.Fill]. It returns a
// [RectError] for a rectangle with non-finite coordinates or negative
// dimensions, drawing nothing.
func (dt *DrawTarget) FillRect(rect math32.Box2, pt Paint, op raster.BlendModes) error {
	if err := checkRect(rect); err != nil {
		return err
	}
	dt.Fill(rectPath(rect), pt, op)
	return nil
}

// Stroke fills the stroked outline of the path with the paint; see
// [DrawTarget.Fill].
func (dt *DrawTarget) Stroke(p path.Path, pt Paint, so StrokeOptions, op raster.BlendModes) {
	dt.Fill(so.Outline(p), pt, op)
}

// StrokeRect strokes the rectangle outline; see [DrawTarget.Stroke].
func (dt *DrawTarget) StrokeRect(rect math32.Box2, pt Paint, so StrokeOptions, op raster.BlendModes) error {
	if err := checkRect(rect); err != nil {
		return err
	}
	dt.Stroke(rectPath(rect), pt, so, op)
	return nil
}

// StrokeLine strokes a single line segment from start to end. The
// caps are round when the join is round and butt otherwise, so that
// polylines drawn segment by segment connect cleanly.
func (dt *DrawTarget) StrokeLine(start, end math32.Vector2, pt Paint, so StrokeOptions, op raster.BlendModes) {
	if so.Join == path.JoinRound {
		so.Cap = path.CapRound
	} else {
		so.Cap = path.CapButt
	}
	var p path.Path
	p.Line(start.X, start.Y, end.X, end.Y)
	dt.Stroke(p, pt, so, op)
}

// DrawSurface draws a source surface into the destination rectangle,
// scaling it to fit, sampling with the given filter, under the
// current transform, opacity, and clip. The surface is premultiplied
// RGBA pixels whose dimensions are the size of the source rectangle;
// the source rectangle origin is ignored. A buffer shorter than that
// size returns a [ShortBufferError], drawing nothing.
func (dt *DrawTarget) DrawSurface(surface []byte, dest, src math32.Box2, filter Filters, op raster.BlendModes) error {
	if err := checkRect(dest); err != nil {
		return err
	}
	if err := checkRect(src); err != nil {
		return err
	}
	size := image.Pt(int(src.Size().X), int(src.Size().Y))
	m := math32.Matrix2{
		XX: dest.Size().X / src.Size().X,
		YY: dest.Size().Y / src.Size().Y,
		X0: dest.Min.X,
		Y0: dest.Min.Y,
	}
	pat, err := NewPattern(surface, size, gradient.Pad, filter, dt.opacity, m)
	if err != nil {
		return err
	}
	pat.Update(1, dt.transform)
	dt.fill(rectPath(dest), pat, op)
	return nil
}

// DrawSurfaceWithShadow draws the surface at the destination point
// with a drop shadow of the given color, offset, and blur sigma.
// Shadow rendering is not supported; it logs a warning and draws
// nothing.
func (dt *DrawTarget) DrawSurfaceWithShadow(surface []byte, dest math32.Vector2, clr color.RGBA, offset math32.Vector2, sigma float32, op raster.BlendModes) {
	slog.Warn("canvas.DrawTarget.DrawSurfaceWithShadow: no support for drawing shadows")
}

// CopySurface copies surface pixels of the given size directly into
// the target at the destination point, replacing whatever is there.
// The transform, opacity, clip, and blend mode do not apply. The
// surface is size.X*size.Y premultiplied RGBA pixels.
func (dt *DrawTarget) CopySurface(surface []byte, size image.Point, dest image.Point) error {
	if size.X <= 0 || size.Y <= 0 {
		return &SizeError{Size: size}
	}
	if want := size.X * size.Y * 4; len(surface) < want {
		return &ShortBufferError{Size: size, Got: len(surface), Want: want}
	}
	src := &image.RGBA{Pix: surface, Stride: size.X * 4, Rect: image.Rectangle{Max: size}}
	r := image.Rectangle{Min: dest, Max: dest.Add(size)}
	draw.Draw(dt.image, r, src, image.Point{}, draw.Src)
	return nil
}

// DrawImage draws the image with its top left corner at the given
// user space position, resampling with bilinear interpolation and
// compositing source-over under the current transform, opacity, and
// clip.
func (dt *DrawTarget) DrawImage(img image.Image, pos math32.Vector2) {
	m := dt.transform.Translate(pos.X, pos.Y)
	s2d := f64.Aff3{float64(m.XX), float64(m.XY), float64(m.X0), float64(m.YX), float64(m.YY), float64(m.Y0)}
	var opts *draw.Options
	if dt.mask != nil || dt.opacity < 1 {
		opts = &draw.Options{}
		if dt.mask != nil {
			opts.DstMask = dt.mask
		}
		if dt.opacity < 1 {
			a := math32.Clamp(dt.opacity, 0, 1)
			opts.SrcMask = image.NewUniform(color.Alpha{A: uint8(a*255 + 0.5)})
		}
	}
	draw.BiLinear.Transform(dt.image, s2d, img, img.Bounds(), draw.Over, opts)
}

// FillText draws nothing: text is rendered by a font backend upstream
// of the draw target, which supplies glyph outlines through
// [DrawTarget.Fill].
func (dt *DrawTarget) FillText(text string, start math32.Vector2, pt Paint, op raster.BlendModes) {
}

// fill rasterizes the path under the current transform and composites
// the source image over the covered pixels, masked by the clip. The
// caller's path is not modified.
func (dt *DrawTarget) fill(p path.Path, src image.Image, mode raster.BlendModes) {
	if p.Empty() {
		return
	}
	dp := p.Clone().Transform(dt.transform)
	r := dp.Bounds().ToRect().Inset(-1).Intersect(dt.image.Rect)
	if r.Empty() {
		return
	}
	cover := raster.Rasterize(dp, math32.Identity2(), dt.Size())
	raster.Draw(dt.image, r, src, cover, dt.mask, mode)
}

// rectPath returns the rectangle as a closed path.
func rectPath(r math32.Box2) path.Path {
	var p path.Path
	sz := r.Size()
	p.Rectangle(r.Min.X, r.Min.Y, sz.X, sz.Y)
	return p
}

// checkRect validates a draw rectangle: the coordinates must be
// finite and the size non-negative.
func checkRect(r math32.Box2) error {
	sz := r.Size()
	if !finite(r.Min.X, r.Min.Y, r.Max.X, r.Max.Y) || sz.X < 0 || sz.Y < 0 {
		return &RectError{Rect: r}
	}
	return nil
}
