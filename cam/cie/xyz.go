// Copyright (c) 2025, Tidemark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cie

// SRGBLinToXYZ converts set of linear sRGB components to XYZ
// coordinates, using the standard D65 illuminant.
func SRGBLinToXYZ(rl, gl, bl float32) (x, y, z float32) {
	x = 0.41233895*rl + 0.35762064*gl + 0.18051042*bl
	y = 0.2126*rl + 0.7152*gl + 0.0722*bl
	z = 0.01932141*rl + 0.11916382*gl + 0.95034478*bl
	return
}

// XYZToSRGBLin converts XYZ coordinates to linear sRGB components,
// using the standard D65 illuminant.
func XYZToSRGBLin(x, y, z float32) (rl, gl, bl float32) {
	rl = 3.2413774*x - 1.5376652*y - 0.49885366*z
	gl = -0.96914524*x + 1.8758853*y + 0.041565858*z
	bl = 0.055620937*x - 0.20395525*y + 1.0572252*z
	return
}
