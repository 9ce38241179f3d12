// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"fmt"

	"cogentcore.org/canvas/raster"
)

// CompositionOrBlending is a global composite operation as named by the
// canvas globalCompositeOperation attribute. It covers both the
// Porter-Duff composition operators and the CSS blend modes, which the
// canvas model exposes through the same attribute.
type CompositionOrBlending int32

const (
	// SourceOver draws the source over the destination.
	// It is the canvas default.
	SourceOver CompositionOrBlending = iota

	// SourceIn keeps the source where the destination is opaque.
	SourceIn

	// SourceOut keeps the source where the destination is transparent.
	SourceOut

	// SourceAtop draws the source only on top of the destination.
	SourceAtop

	// DestinationOver draws the source under the destination.
	DestinationOver

	// DestinationIn keeps the destination where the source is opaque.
	DestinationIn

	// DestinationOut keeps the destination where the source is transparent.
	DestinationOut

	// DestinationAtop keeps the destination only on top of the source.
	DestinationAtop

	// Copy replaces the destination with the source.
	Copy

	// Lighter adds the source and destination color values.
	Lighter

	// Xor keeps the source and destination where they do not overlap.
	Xor

	// Clear erases the destination.
	Clear

	// Multiply multiplies the source and destination color values.
	Multiply

	// Screen inverts, multiplies, and inverts again, always
	// lightening the result.
	Screen

	// Overlay multiplies or screens depending on the destination.
	Overlay

	// Darken keeps the darker of the source and destination values.
	Darken

	// Lighten keeps the lighter of the source and destination values.
	Lighten

	// ColorDodge brightens the destination to reflect the source.
	ColorDodge

	// ColorBurn darkens the destination to reflect the source.
	ColorBurn

	// HardLight multiplies or screens depending on the source.
	HardLight

	// SoftLight darkens or lightens depending on the source.
	SoftLight

	// Difference subtracts the darker value from the lighter one.
	Difference

	// Exclusion is like [Difference] with lower contrast.
	Exclusion

	// Hue uses the hue of the source with the saturation and
	// luminosity of the destination.
	Hue

	// Saturation uses the saturation of the source with the hue and
	// luminosity of the destination.
	Saturation

	// Color uses the hue and saturation of the source with the
	// luminosity of the destination.
	Color

	// Luminosity uses the luminosity of the source with the hue and
	// saturation of the destination.
	Luminosity
)

var compositionNames = [...]string{"source-over", "source-in", "source-out",
	"source-atop", "destination-over", "destination-in", "destination-out",
	"destination-atop", "copy", "lighter", "xor", "clear", "multiply",
	"screen", "overlay", "darken", "lighten", "color-dodge", "color-burn",
	"hard-light", "soft-light", "difference", "exclusion", "hue",
	"saturation", "color", "luminosity"}

// String returns the canvas attribute name of the operation.
func (op CompositionOrBlending) String() string {
	if op < 0 || int(op) >= len(compositionNames) {
		return "source-over"
	}
	return compositionNames[op]
}

// SetString sets the operation from its canvas attribute name.
func (op *CompositionOrBlending) SetString(str string) error {
	for i, nm := range compositionNames {
		if nm == str {
			*op = CompositionOrBlending(i)
			return nil
		}
	}
	return fmt.Errorf("canvas: invalid composite operation %q", str)
}

// blendModes maps every composite operation to the blend mode that
// implements it. [Copy] is a plain source replacement and [Lighter] is
// additive compositing; everything else carries its own name through.
var blendModes = [...]raster.BlendModes{
	SourceOver:      raster.SourceOver,
	SourceIn:        raster.SourceIn,
	SourceOut:       raster.SourceOut,
	SourceAtop:      raster.SourceAtop,
	DestinationOver: raster.DestinationOver,
	DestinationIn:   raster.DestinationIn,
	DestinationOut:  raster.DestinationOut,
	DestinationAtop: raster.DestinationAtop,
	Copy:            raster.Source,
	Lighter:         raster.Plus,
	Xor:             raster.Xor,
	Clear:           raster.Clear,
	Multiply:        raster.Multiply,
	Screen:          raster.Screen,
	Overlay:         raster.Overlay,
	Darken:          raster.Darken,
	Lighten:         raster.Lighten,
	ColorDodge:      raster.ColorDodge,
	ColorBurn:       raster.ColorBurn,
	HardLight:       raster.HardLight,
	SoftLight:       raster.SoftLight,
	Difference:      raster.Difference,
	Exclusion:       raster.Exclusion,
	Hue:             raster.Hue,
	Saturation:      raster.Saturation,
	Color:           raster.Color,
	Luminosity:      raster.Luminosity,
}

// BlendMode returns the [raster.BlendModes] value that implements the
// operation. It is defined for every operation; unknown values fall
// back to [raster.SourceOver].
func (op CompositionOrBlending) BlendMode() raster.BlendModes {
	if op < 0 || int(op) >= len(blendModes) {
		return raster.SourceOver
	}
	return blendModes[op]
}
