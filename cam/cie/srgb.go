// Copyright (c) 2025, Tidemark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cie provides conversions between the CIE color spaces used
// for perceptual interpolation: standard gamma-corrected sRGB,
// linear sRGB, XYZ, and L*a*b*.
package cie

import "github.com/chewxy/math32"

// SRGBToLinearComp converts an sRGB color component to linear space,
// removing the gamma correction. Input and output are in the 0-1
// normalized range.
func SRGBToLinearComp(srgb float32) float32 {
	if srgb <= 0.04045 {
		return srgb / 12.92
	}
	return math32.Pow((srgb+0.055)/1.055, 2.4)
}

// SRGBFromLinearComp converts a linear color component to sRGB space,
// adding the gamma correction. Input and output are in the 0-1
// normalized range.
func SRGBFromLinearComp(lin float32) float32 {
	if lin <= 0.0031308 {
		return 12.92 * lin
	}
	return 1.055*math32.Pow(lin, 1.0/2.4) - 0.055
}

// SRGBToLinear converts set of sRGB components to linear values,
// removing gamma correction.
func SRGBToLinear(r, g, b float32) (rl, gl, bl float32) {
	rl = SRGBToLinearComp(r)
	gl = SRGBToLinearComp(g)
	bl = SRGBToLinearComp(b)
	return
}

// SRGBFromLinear converts set of linear components to sRGB values,
// adding gamma correction.
func SRGBFromLinear(rl, gl, bl float32) (r, g, b float32) {
	r = SRGBFromLinearComp(rl)
	g = SRGBFromLinearComp(gl)
	b = SRGBFromLinearComp(bl)
	return
}

// SRGBToXYZ converts sRGB to XYZ coordinates, with all values in the
// 0-1 normalized range.
func SRGBToXYZ(r, g, b float32) (x, y, z float32) {
	rl, gl, bl := SRGBToLinear(r, g, b)
	x, y, z = SRGBLinToXYZ(rl, gl, bl)
	return
}

// XYZToSRGB converts XYZ to sRGB coordinates, with all values in the
// 0-1 normalized range.
func XYZToSRGB(x, y, z float32) (r, g, b float32) {
	rl, gl, bl := XYZToSRGBLin(x, y, z)
	r, g, b = SRGBFromLinear(rl, gl, bl)
	return
}

// SRGBFloatToUint8 converts the given non-alpha-premultiplied sRGB float32
// values to alpha-premultiplied sRGB uint8 values.
func SRGBFloatToUint8(r, g, b, a float32) (ru, gu, bu, au uint8) {
	ru = uint8(r*a*255 + 0.5)
	gu = uint8(g*a*255 + 0.5)
	bu = uint8(b*a*255 + 0.5)
	au = uint8(a*255 + 0.5)
	return
}

// SRGBUint8ToFloat converts the given alpha-premultiplied sRGB uint8
// values to non-alpha-premultiplied sRGB float32 values.
func SRGBUint8ToFloat(r, g, b, a uint8) (fr, fg, fb, fa float32) {
	fa = float32(a) / 255
	fr = (float32(r) / 255) / fa
	fg = (float32(g) / 255) / fa
	fb = (float32(b) / 255) / fa
	return
}
