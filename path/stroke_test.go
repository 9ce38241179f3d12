// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This is adapted from https://github.com/tdewolff/canvas
// Copyright (c) 2015 Taco de Wolff, under an MIT License.

package path

import (
	"fmt"
	"testing"

	"cogentcore.org/canvas/math32"
	"github.com/stretchr/testify/assert"
)

func TestPathStroke(t *testing.T) {
	tolerance := float32(1.0)
	var tts = []struct {
		orig   string
		w      float32
		cp     Capper
		jr     Joiner
		stroke string
	}{
		{"M10 10", 2.0, RoundCap, RoundJoin, ""},
		{"M10 10z", 2.0, RoundCap, RoundJoin, ""},
		{"M10 10L10 5", 2.0, ButtCap, RoundJoin, "M9 10L9 5L11 5L11 10z"},
		{"M10 10L10 5", 2.0, RoundCap, RoundJoin, "M9 5A1 1 0 0 1 11 5L11 10A1 1 0 0 1 9 10z"},
		{"M10 10L10 5", 2.0, SquareCap, RoundJoin, "M9 4L11 4L11 11L9 11z"},

		{"L10 0L20 0", 2.0, ButtCap, RoundJoin, "M0 -1L20 -1L20 1L0 1z"},
		{"L10 0L10 10", 2.0, ButtCap, RoundJoin, "M0 -1L10 -1A1 1 0 0 1 11 0L11 10L9 10L9 0L10 1L0 1z"},
		{"L10 0L10 -10", 2.0, ButtCap, RoundJoin, "M0 -1L10 -1L9 0L9 -10L11 -10L11 0A1 1 0 0 1 10 1L0 1z"},

		{"L10 0L20 0", 2.0, ButtCap, BevelJoin, "M0 -1L20 -1L20 1L0 1z"},
		{"L10 0L10 10", 2.0, ButtCap, BevelJoin, "M0 -1L10 -1L11 0L11 10L9 10L9 0L10 1L0 1z"},
		{"L10 0L10 -10", 2.0, ButtCap, BevelJoin, "M0 -1L10 -1L9 0L9 -10L11 -10L11 0L10 1L0 1z"},

		{"L10 0L20 0", 2.0, ButtCap, MiterJoiner{BevelJoin, 2.0}, "M0 -1L20 -1L20 1L0 1z"},
		{"L10 0L5 0", 2.0, ButtCap, MiterJoiner{BevelJoin, 2.0}, "M0 -1L10 -1L10 1L5 1L5 -1L10 -1L10 1L0 1z"},
		{"L10 0L10 10", 2.0, ButtCap, MiterJoiner{BevelJoin, 1.0}, "M0 -1L10 -1L11 0L11 10L9 10L9 0L10 1L0 1z"},
		{"L10 0L10 10", 2.0, ButtCap, MiterJoiner{BevelJoin, 2.0}, "M0 -1L11 -1L11 10L9 10L9 0L10 1L0 1z"},
		{"L10 0L10 -10", 2.0, ButtCap, MiterJoiner{BevelJoin, 2.0}, "M0 -1L10 -1L9 0L9 -10L11 -10L11 1L0 1z"},

		{"L10 0L20 0", 2.0, ButtCap, ArcsJoiner{BevelJoin, 2.0}, "M0 -1L20 -1L20 1L0 1z"},
		{"L10 0L5 0", 2.0, ButtCap, ArcsJoiner{BevelJoin, 2.0}, "M0 -1L10 -1L10 1L5 1L5 -1L10 -1L10 1L0 1z"},
		{"L10 0L10 10", 2.0, ButtCap, ArcsJoiner{BevelJoin, 1.0}, "M0 -1L10 -1L11 0L11 10L9 10L9 0L10 1L0 1z"},

		{"L10 0L10 10L0 10z", 2.0, ButtCap, MiterJoin, "M11 -1L11 11L-1 11L-1 -1zM0 1L1 0L1 10L0 9L10 9L9 10L9 0L10 1z"},
		{"L10 0L10 10L0 10z", 2.0, ButtCap, BevelJoin, "M0 -1L10 -1L11 0L11 10L10 11L0 11L-1 10L-1 0zM0 1L1 0L1 10L0 9L10 9L9 10L9 0L10 1z"},
		{"L0 10L10 10L10 0z", 2.0, ButtCap, BevelJoin, "M1 0L1 10L0 9L10 9L9 10L9 0L10 1L0 1zM-1 0L0 -1L10 -1L11 0L11 10L10 11L0 11L-1 10z"},
	}
	origEpsilon := Epsilon
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.orig, " ", tt.jr), func(t *testing.T) {
			Epsilon = origEpsilon
			stroke := MustParseSVGPath(tt.orig).Stroke(tt.w, tt.cp, tt.jr, tolerance)
			Epsilon = 1e-3
			assert.InDeltaSlice(t, MustParseSVGPath(tt.stroke), stroke, 1.0e-4)
		})
	}
	Epsilon = origEpsilon
}

func TestPathStrokeEllipse(t *testing.T) {
	rx, ry := float32(20.0), float32(10.0)
	nphi := 12
	ntheta := 120
	for iphi := 0; iphi < nphi; iphi++ {
		phi := float32(iphi) / float32(nphi) * math32.Pi
		for itheta := 0; itheta < ntheta; itheta++ {
			theta := float32(itheta) / float32(ntheta) * 2.0 * math32.Pi
			outer := EllipsePos(rx+1.0, ry+1.0, phi, 0.0, 0.0, theta)
			inner := EllipsePos(rx-1.0, ry-1.0, phi, 0.0, 0.0, theta)
			assert.InDelta(t, float32(2.0), outer.Sub(inner).Length(), 1.0e-4, fmt.Sprintf("phi=%g theta=%g", phi, theta))
		}
	}
}

func TestPathOffset(t *testing.T) {
	tolerance := float32(0.01)
	var tts = []struct {
		orig   string
		w      float32
		offset string
	}{
		{"L10 0L10 10L0 10z", 0.0, "L10 0L10 10L0 10z"},
		{"L10 0", 1.0, "M0 -1L10 -1"},
		{"L10 0", -1.0, "M0 1L10 1"},
		{"L10 0L10 10L0 10", 1.0, "M0 -1L10 -1A1 1 0 0 1 11 0L11 10A1 1 0 0 1 10 11L0 11"},
		{"L10 0L10 10L0 10z", 1.0, "M10 -1A1 1 0 0 1 11 0L11 10A1 1 0 0 1 10 11L0 11A1 1 0 0 1 -1 10L-1 0A1 1 0 0 1 0 -1z"},
		{"L10 0L10 10L0 10z", -1.0, "M0 1L10 1L9 0L9 10L10 9L0 9L1 10L1 0z"},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprintf("%v/%v", tt.orig, tt.w), func(t *testing.T) {
			offset := MustParseSVGPath(tt.orig).Offset(tt.w, tolerance)
			assert.InDeltaSlice(t, MustParseSVGPath(tt.offset), offset, 1.0e-5)
		})
	}
}
