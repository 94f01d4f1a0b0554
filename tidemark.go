// Copyright (c) 2025, Tidemark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tidemark generates color palettes for data visualization by
// sampling a cubic spline fitted through a fixed set of anchor colors
// in the CIE L*a*b* space. Interpolating in L*a*b* rather than
// directly in RGB keeps the intermediate colors vivid instead of
// collapsing into muddy gray midpoints.
//
// All palettes are derived from the same 8 [Anchors], traversed
// forward or in reverse over a configurable 0-1 sub-range, with a
// configurable alpha attached to every output color. See [Options]
// for the knobs and [Palette] for the core entry point. Everything is
// a pure function of its inputs, so all calls are safe for concurrent
// use.
package tidemark

import (
	"image/color"

	"github.com/tidemark-vis/tidemark/cam/cie"
)

// Anchors are the fixed control-point colors defining the palette's
// path through color space, from deep navy through teal and yellow to
// red.
var Anchors = [...]color.RGBA{
	MustFromHex("#003366"),
	MustFromHex("#006699"),
	MustFromHex("#3399CC"),
	MustFromHex("#66CC99"),
	MustFromHex("#99CC33"),
	MustFromHex("#FFCC00"),
	MustFromHex("#FF6600"),
	MustFromHex("#CC3300"),
}

// anchorSplines are the per-channel L*, a*, b* splines through the
// anchor control points, fitted once at startup and read-only after.
var anchorSplines = newAnchorSplines()

func newAnchorSplines() [3]Spline {
	n := len(Anchors)
	var lab [3][]float32
	for i := range lab {
		lab[i] = make([]float32, n)
	}
	for i, c := range Anchors {
		x, y, z := cie.SRGBToXYZ(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255)
		l, a, b := cie.XYZToLAB(x, y, z)
		lab[0][i], lab[1][i], lab[2][i] = l, a, b
	}
	return [3]Spline{NewSpline(lab[0]), NewSpline(lab[1]), NewSpline(lab[2])}
}

// At returns the palette color at parameter t in the 0-1 range, where
// t=0 is the first anchor and t=1 the last, with the given 0-1 alpha
// attached (see [WithAlphaF32] for the alpha semantics).
func At(t, alpha float32) color.RGBA {
	l := anchorSplines[0].At(t)
	a := anchorSplines[1].At(t)
	b := anchorSplines[2].At(t)
	x, y, z := cie.LABToXYZ(l, a, b)
	r, g, bl := cie.XYZToSRGB(x, y, z)
	r = min(max(r, 0), 1)
	g = min(max(g, 0), 1)
	bl = min(max(bl, 0), 1)
	ru, gu, bu, au := cie.SRGBFloatToUint8(r, g, bl, 1)
	return WithAlphaF32(color.RGBA{ru, gu, bu, au}, alpha)
}
