// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/colornames"
)

func TestFromString(t *testing.T) {
	type test struct {
		str  string
		want color.RGBA
	}
	tests := []test{
		{"red", Red},
		{"Lightblue", Lightblue},
		{"cornflowerblue", color.RGBA{100, 149, 237, 255}},
		{"#e4e4e4", color.RGBA{228, 228, 228, 255}},
		{"#F31", color.RGBA{255, 51, 17, 255}},
		{"rgb(230, 100, 120)", color.RGBA{230, 100, 120, 255}},
		{"rgba(230, 100, 120, 128)", FromNRGBA(230, 100, 120, 128)},
		{"none", color.RGBA{}},
		{"off", color.RGBA{}},
		{"transparent", Transparent},
	}
	for _, test := range tests {
		have, err := FromString(test.str)
		assert.NoError(t, err, test.str)
		assert.Equal(t, test.want, have, test.str)
	}

	have, err := FromString("currentcolor", Wheat)
	assert.NoError(t, err)
	assert.Equal(t, Wheat, have)

	_, err = FromString("currentcolor")
	assert.Error(t, err)

	_, err = FromString("not-a-color")
	assert.Error(t, err)
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#FF0000", AsHex(Red))
	assert.Equal(t, "#0000FF7F", AsHex(WithAF32(Blue, 0.5)))

	for _, c := range []color.RGBA{Red, Lightblue, Wheat, WithAF32(Blue, 0.5)} {
		have, err := FromHex(AsHex(c))
		assert.NoError(t, err)
		assert.Equal(t, c, have)
	}
}

func TestApplyOpacity(t *testing.T) {
	assert.Equal(t, color.RGBA{0, 0, 127, 127}, WithAF32(Blue, 0.5))
	assert.Equal(t, color.RGBA{0, 64, 0, 128}, WithA(Green, 128))
	assert.Equal(t, color.RGBA{127, 0, 0, 127}, ApplyOpacity(Red, 0.5))
	assert.Equal(t, AsRGBA(Red), ApplyOpacity(Red, 1))

	half := WithAF32(Blue, 0.5)
	quarter := ApplyOpacity(half, 0.5)
	assert.Equal(t, uint8(63), quarter.A)
}

// TestNames ensures that the commonly used color values
// stay in sync with the CSS standard values.
func TestNames(t *testing.T) {
	names := map[string]color.RGBA{
		"black":     Black,
		"white":     White,
		"gray":      Gray,
		"silver":    Silver,
		"red":       Red,
		"crimson":   Crimson,
		"maroon":    Maroon,
		"brown":     Brown,
		"salmon":    Salmon,
		"orange":    Orange,
		"gold":      Gold,
		"wheat":     Wheat,
		"tan":       Tan,
		"yellow":    Yellow,
		"olive":     Olive,
		"lime":      Lime,
		"green":     Green,
		"darkgreen": Darkgreen,
		"teal":      Teal,
		"cyan":      Cyan,
		"lightblue": Lightblue,
		"skyblue":   Skyblue,
		"steelblue": Steelblue,
		"royalblue": Royalblue,
		"blue":      Blue,
		"navy":      Navy,
		"darkblue":  Darkblue,
		"indigo":    Indigo,
		"purple":    Purple,
		"magenta":   Magenta,
		"violet":    Violet,
		"pink":      Pink,
		"slategray": Slategray,
	}
	for name, c := range names {
		assert.Equal(t, colornames.Map[name], c, name)
	}
}

func TestToUniform(t *testing.T) {
	u := Uniform(Lightblue)
	assert.Equal(t, AsRGBA(Lightblue), ToUniform(u))
	assert.Equal(t, color.RGBA{}, ToUniform(nil))
}
