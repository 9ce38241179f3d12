// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"image"
	"image/color"

	"cogentcore.org/canvas/colors"
	"cogentcore.org/canvas/raster"
)

// Backend translates canvas attribute values into the concrete paints
// and blend modes that [DrawTarget] operations consume. It is
// stateless; all canvas state lives in [PaintState].
type Backend struct{}

// CreateDrawTarget returns a new draw target of the given pixel size;
// see [NewDrawTarget].
func (Backend) CreateDrawTarget(size image.Point) (*DrawTarget, error) {
	return NewDrawTarget(size)
}

// RecreatePaintState returns a fresh default state for a canvas
// reset. The existing state does not carry anything forward; it is
// accepted only to match the other state operations.
func (Backend) RecreatePaintState(_ *PaintState) PaintState {
	return NewPaintState()
}

// SetFillStyle resolves the style into the state's fill paint under
// the state's current transform. On error the state is unchanged;
// see [NewPaint] for the errors.
func (Backend) SetFillStyle(state *PaintState, style FillOrStrokeStyle) error {
	pt, err := NewPaint(style, state.Transform)
	if err != nil {
		return err
	}
	state.Fill = pt
	return nil
}

// SetStrokeStyle is [Backend.SetFillStyle] for the stroke paint.
func (Backend) SetStrokeStyle(state *PaintState, style FillOrStrokeStyle) error {
	pt, err := NewPaint(style, state.Transform)
	if err != nil {
		return err
	}
	state.Stroke = pt
	return nil
}

// SetGlobalComposition sets the state's blend mode from the canvas
// global composite operation.
func (Backend) SetGlobalComposition(state *PaintState, op CompositionOrBlending) {
	state.BlendMode = op.BlendMode()
}

// GetCompositionOp returns the blend mode for the state's global
// composite operation.
func (Backend) GetCompositionOp(state *PaintState) raster.BlendModes {
	return state.BlendMode
}

// SetShadowColor sets the state's shadow color from a
// non-premultiplied canvas color value.
func (Backend) SetShadowColor(state *PaintState, c color.NRGBA) {
	state.ShadowColor = colors.FromNRGBA(c.R, c.G, c.B, c.A)
}

// NeedToDrawShadow reports whether the given shadow color requires a
// shadow pass: any color with nonzero alpha does.
func (Backend) NeedToDrawShadow(c color.RGBA) bool {
	return c.A != 0
}

// FilterFromSmoothing returns the surface sampling filter for the
// canvas imageSmoothingEnabled attribute.
func FilterFromSmoothing(enabled bool) Filters {
	if enabled {
		return FilterBilinear
	}
	return FilterNearest
}
