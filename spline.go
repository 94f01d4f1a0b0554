// Copyright (c) 2025, Tidemark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tidemark

import "github.com/chewxy/math32"

// Spline is a natural cubic spline through a sequence of evenly
// spaced control points. It passes exactly through every control
// point, with continuous first and second derivatives in between, and
// zero second derivative at the two ends.
type Spline struct {
	points []float32
	deriv2 []float32 // second derivatives at the control points
}

// NewSpline returns a spline fitted through the given control points,
// which must number at least two. The points are copied.
func NewSpline(points []float32) Spline {
	sp := Spline{}
	sp.points = make([]float32, len(points))
	copy(sp.points, points)
	sp.deriv2 = splineDeriv2(sp.points)
	return sp
}

// At evaluates the spline at t in the 0-1 range, where t=0 is the
// first control point and t=1 the last. t outside 0-1 is clamped.
func (sp Spline) At(t float32) float32 {
	n := len(sp.points)
	x := min(max(t, 0), 1) * float32(n-1)
	i := min(int(math32.Floor(x)), n-2)
	// cubic Hermite form on the unit interval [i, i+1]
	b := x - float32(i)
	a := 1 - b
	return a*sp.points[i] + b*sp.points[i+1] +
		((a*a*a-a)*sp.deriv2[i]+(b*b*b-b)*sp.deriv2[i+1])/6
}

// splineDeriv2 solves the tridiagonal system for the second
// derivatives of a natural cubic spline with unit spacing between
// control points.
func splineDeriv2(y []float32) []float32 {
	n := len(y)
	y2 := make([]float32, n)
	u := make([]float32, n)
	for i := 1; i < n-1; i++ {
		p := y2[i-1]/2 + 2
		y2[i] = -0.5 / p
		u[i] = (3*(y[i+1]-2*y[i]+y[i-1]) - u[i-1]/2) / p
	}
	for i := n - 2; i >= 1; i-- {
		y2[i] = y2[i]*y2[i+1] + u[i]
	}
	return y2
}
