// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"errors"
	"image"
	"image/color"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/canvas/base/num"
)

// TestingT is an interface wrapper around *testing.T
type TestingT interface {
	Errorf(format string, args ...any)
}

// UpdateTestImages indicates whether to update currently saved test
// images in [Assert] instead of comparing against them.
// It is automatically set if the build tag "update" is specified,
// or if the environment variable "CANVAS_UPDATE_TESTDATA" is set to "true".
// It should typically only be set through those methods, and only when
// behavior has been updated that causes test images to change.
var UpdateTestImages = updateTestImages

// compareTol is the per-channel tolerance used by [Assert].
const compareTol = 10

// CompareUint8 returns true if the two values differ by no more than tol.
func CompareUint8(cc, ic uint8, tol int) bool {
	return num.Abs(int(cc)-int(ic)) <= tol
}

// CompareColors returns true if the two colors differ by no more than
// tol in every channel.
func CompareColors(cc, ic color.RGBA, tol int) bool {
	return CompareUint8(cc.R, ic.R, tol) && CompareUint8(cc.G, ic.G, tol) &&
		CompareUint8(cc.B, ic.B, tol) && CompareUint8(cc.A, ic.A, tol)
}

// DiffImage returns the difference between the two images, with each
// pixel holding the absolute per-channel difference.
func DiffImage(a, b image.Image) image.Image {
	ab := a.Bounds()
	di := image.NewRGBA(ab)
	for y := ab.Min.Y; y < ab.Max.Y; y++ {
		for x := ab.Min.X; x < ab.Max.X; x++ {
			cc := color.RGBAModel.Convert(a.At(x, y)).(color.RGBA)
			ic := color.RGBAModel.Convert(b.At(x, y)).(color.RGBA)
			r := uint8(num.Abs(int(cc.R) - int(ic.R)))
			g := uint8(num.Abs(int(cc.G) - int(ic.G)))
			b := uint8(num.Abs(int(cc.B) - int(ic.B)))
			di.Set(x, y, color.RGBA{r, g, b, 255})
		}
	}
	return di
}

// Assert asserts that the given image is equivalent to the image stored
// at the given filename in the testdata directory, with ".png" added to
// the filename if there is no extension (eg: "fill" becomes
// "testdata/fill.png"). If it is not, it fails the test with an error,
// but continues its execution. If there is no image at the given
// filename in the testdata directory, it creates the image.
func Assert(t TestingT, img image.Image, filename string) {
	filename = filepath.Join("testdata", filename)
	if filepath.Ext(filename) == "" {
		filename += ".png"
	}
	if err := os.MkdirAll(filepath.Dir(filename), 0750); err != nil {
		t.Errorf("Assert: error making testdata directory: %v", err)
	}

	ext := filepath.Ext(filename)
	failname := strings.TrimSuffix(filename, ext) + ".fail" + ext
	diffname := strings.TrimSuffix(filename, ext) + ".diff" + ext

	if UpdateTestImages {
		if err := Save(img, filename); err != nil {
			t.Errorf("Assert: error saving updated image: %v", err)
		}
		removeArtifacts(t, failname, diffname)
		return
	}

	fimg, _, err := Open(filename)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Assert: error opening saved image: %v", err)
			return
		}
		// we don't have the file yet, so we make it
		if err := Save(img, filename); err != nil {
			t.Errorf("Assert: error saving new image: %v", err)
		}
		return
	}

	if !assertEqual(t, img, fimg, filename, failname) {
		if err := Save(img, failname); err != nil {
			t.Errorf("Assert: error saving fail image: %v", err)
		}
		if err := Save(DiffImage(img, fimg), diffname); err != nil {
			t.Errorf("Assert: error saving diff image: %v", err)
		}
		return
	}
	removeArtifacts(t, failname, diffname)
}

// assertEqual compares the image against the stored golden image,
// reporting the first mismatch through t.
func assertEqual(t TestingT, img, fimg image.Image, filename, failname string) bool {
	ib, fb := img.Bounds(), fimg.Bounds()
	if ib != fb {
		t.Errorf("Assert: expected bounds %v for image for %s, but got bounds %v; see %s", fb, filename, ib, failname)
		return false
	}
	for y := ib.Min.Y; y < ib.Max.Y; y++ {
		for x := ib.Min.X; x < ib.Max.X; x++ {
			cc := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			ic := color.RGBAModel.Convert(fimg.At(x, y)).(color.RGBA)
			if !CompareColors(cc, ic, compareTol) {
				t.Errorf("Assert: image for %s is not the same as expected; see %s; expected color %v at (%d, %d), but got %v", filename, failname, ic, x, y, cc)
				return false
			}
		}
	}
	return true
}

func removeArtifacts(t TestingT, files ...string) {
	for _, f := range files {
		if err := os.RemoveAll(f); err != nil {
			t.Errorf("Assert: error removing old image artifact: %v", err)
		}
	}
}
