// Copyright (c) 2025, Tidemark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

import "github.com/chewxy/math32"

// D65 standard reference white point.
const (
	WhiteD65X = 0.95047
	WhiteD65Y = 1.0
	WhiteD65Z = 1.08883
)

// CIE standard constants for the L*a*b* compression function.
const (
	labE     = 216.0 / 24389.0
	labKappa = 24389.0 / 27.0
)

// LABCompress does the cube-root compression of the XYZ components
// prior to computing L*a*b* values.
func LABCompress(t float32) float32 {
	if t > labE {
		return math32.Cbrt(t)
	}
	return (labKappa*t + 16) / 116
}

// LABUncompress undoes the cube-root compression, for converting
// L*a*b* values back to XYZ.
func LABUncompress(ft float32) float32 {
	ft3 := ft * ft * ft
	if ft3 > labE {
		return ft3
	}
	return (116*ft - 16) / labKappa
}

// XYZToLAB converts 0-1 normalized, D65-illuminant XYZ coordinates to
// L*a*b* values: L* = lightness (0-100), a* = green (-) to red (+),
// b* = blue (-) to yellow (+).
func XYZToLAB(x, y, z float32) (l, a, b float32) {
	fx := LABCompress(x / WhiteD65X)
	fy := LABCompress(y / WhiteD65Y)
	fz := LABCompress(z / WhiteD65Z)
	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return
}

// LABToXYZ converts L*a*b* values to 0-1 normalized, D65-illuminant
// XYZ coordinates.
func LABToXYZ(l, a, b float32) (x, y, z float32) {
	fy := (l + 16) / 116
	fx := a/500 + fy
	fz := fy - b/200
	x = LABUncompress(fx) * WhiteD65X
	y = LABUncompress(fy) * WhiteD65Y
	z = LABUncompress(fz) * WhiteD65Z
	return
}

// LToY returns the 0-100 luminance Y value for the given L* lightness.
func LToY(l float32) float32 {
	return 100 * LABUncompress((l+16)/116)
}

// YToL returns the L* lightness for the given 0-100 luminance Y value.
func YToL(y float32) float32 {
	return 116*LABCompress(y/100) - 16
}
