// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"image/color"
	"log/slog"

	"cogentcore.org/canvas/colors"
	"cogentcore.org/canvas/colors/gradient"
	"cogentcore.org/canvas/math32"
	"cogentcore.org/canvas/path"
	"cogentcore.org/canvas/raster"
	"github.com/jinzhu/copier"
)

// TextAligns are the horizontal text alignment values of the canvas
// textAlign attribute.
type TextAligns int32

const (
	// AlignStart aligns text at the start of the inline direction.
	// It is the canvas default.
	AlignStart TextAligns = iota

	// AlignEnd aligns text at the end of the inline direction.
	AlignEnd

	// AlignLeft aligns text at the left.
	AlignLeft

	// AlignRight aligns text at the right.
	AlignRight

	// AlignCenter centers text on the anchor point.
	AlignCenter
)

func (ta TextAligns) String() string {
	switch ta {
	case AlignEnd:
		return "end"
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	case AlignCenter:
		return "center"
	default:
		return "start"
	}
}

// TextBaselines are the vertical text baseline values of the canvas
// textBaseline attribute.
type TextBaselines int32

const (
	// BaselineAlphabetic anchors text at the alphabetic baseline.
	// It is the canvas default.
	BaselineAlphabetic TextBaselines = iota

	// BaselineTop anchors text at the top of the em square.
	BaselineTop

	// BaselineHanging anchors text at the hanging baseline.
	BaselineHanging

	// BaselineMiddle anchors text at the middle of the em square.
	BaselineMiddle

	// BaselineIdeographic anchors text at the ideographic baseline.
	BaselineIdeographic

	// BaselineBottom anchors text at the bottom of the em square.
	BaselineBottom
)

func (tb TextBaselines) String() string {
	switch tb {
	case BaselineTop:
		return "top"
	case BaselineHanging:
		return "hanging"
	case BaselineMiddle:
		return "middle"
	case BaselineIdeographic:
		return "ideographic"
	case BaselineBottom:
		return "bottom"
	default:
		return "alphabetic"
	}
}

// StrokeOptions is the stroke geometry of a [PaintState]: the line
// width, cap and join shapes, miter limit, and dash pattern.
type StrokeOptions struct {
	// Width is the stroke width in user units.
	Width float32

	// MiterLimit is the maximum ratio of miter length to stroke
	// width before a miter join falls back to a bevel.
	MiterLimit float32

	// Cap is the shape drawn at the ends of open subpaths.
	Cap path.Caps

	// Join is the shape drawn where path segments meet.
	Join path.Joins

	// Dash is the dash pattern as alternating dash and gap lengths
	// in user units, empty for a solid stroke.
	Dash []float32

	// DashOffset is the distance into the dash pattern to start at.
	DashOffset float32
}

// NewStrokeOptions returns [StrokeOptions] with the defaults:
// width 1, butt caps, and miter joins with limit 4.
func NewStrokeOptions() StrokeOptions {
	return StrokeOptions{Width: 1, MiterLimit: 4}
}

// Outline returns the filled outline of stroking the given path with
// these options, applying the dash pattern first if there is one.
func (so StrokeOptions) Outline(p path.Path) path.Path {
	if len(so.Dash) > 0 {
		p = p.Dash(so.DashOffset, so.Dash...)
	}
	jr := path.JoinFromStyle(so.Join)
	if so.Join == path.JoinMiter {
		jr = path.MiterJoiner{GapJoiner: path.BevelJoin, Limit: so.MiterLimit}
	}
	return p.Stroke(so.Width, path.CapFromStyle(so.Cap), jr, path.Tolerance)
}

// PaintState is the full set of canvas drawing state: the current
// transform, fill and stroke paints, stroke geometry, global composite
// operation, shadow parameters, and text attributes. States are plain
// values; the canvas save/restore stack is a stack of [PaintState.Clone]
// copies managed by the caller.
type PaintState struct {
	// Transform is the current canvas transform, mapping user space
	// to device space.
	Transform math32.Matrix2

	// Fill is the paint used to fill shapes.
	Fill Paint

	// Stroke is the paint used to stroke outlines.
	Stroke Paint

	// StrokeOptions is the stroke geometry.
	StrokeOptions StrokeOptions

	// BlendMode is the global composite operation applied by fills
	// and strokes; see [Backend.SetGlobalComposition].
	BlendMode raster.BlendModes

	// ShadowOffsetX and ShadowOffsetY offset the drop shadow.
	ShadowOffsetX float32
	ShadowOffsetY float32

	// ShadowBlur is the shadow blur radius.
	ShadowBlur float32

	// ShadowColor is the premultiplied shadow color. Shadows draw
	// only when it has nonzero alpha; see [Backend.NeedToDrawShadow].
	ShadowColor color.RGBA

	// TextAlign is the horizontal text alignment.
	TextAlign TextAligns

	// TextBaseline is the vertical text baseline.
	TextBaseline TextBaselines
}

// NewPaintState returns a [PaintState] with the canvas defaults:
// identity transform, solid black fill and stroke, stroke width 1 with
// butt caps and miter joins, source-over compositing, and no shadow.
func NewPaintState() PaintState {
	return PaintState{
		Transform:     math32.Identity2(),
		Fill:          Paint{Shader: colors.Uniform(colors.Black)},
		Stroke:        Paint{Shader: colors.Uniform(colors.Black)},
		StrokeOptions: NewStrokeOptions(),
		BlendMode:     raster.SourceOver,
	}
}

// Clone returns a deep copy of the state. The fill and stroke shaders
// are copied too, so that rendering through one state does not disturb
// states saved on a save/restore stack.
func (ps *PaintState) Clone() PaintState {
	np := PaintState{}
	err := copier.CopyWithOption(&np, ps, copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("canvas.PaintState.Clone", "err", err)
	}
	np.Fill = ps.Fill.Clone()
	np.Stroke = ps.Stroke.Clone()
	return np
}

// Clone returns a copy of the paint whose shader can be updated
// independently of the original.
func (pt Paint) Clone() Paint {
	switch s := pt.Shader.(type) {
	case gradient.Gradient:
		return Paint{Shader: gradient.CopyOf(s)}
	case *Pattern:
		p := *s
		return Paint{Shader: &p}
	}
	return pt
}
