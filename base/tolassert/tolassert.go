// Copyright (c) 2025, Tidemark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tolassert provides functions for asserting the equality of
// numbers within a tolerance, for dealing with floating point
// imprecision in tests.
package tolassert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Equal asserts that the two numbers are within a tolerance of each
// other. The tolerance defaults to 0.001, and it can be customized by
// passing an additional tolerance argument.
func Equal[T float32 | float64](t *testing.T, expected, actual T, tols ...T) bool {
	t.Helper()
	tol := T(0.001)
	if len(tols) > 0 {
		tol = tols[0]
	}
	return assert.InDelta(t, float64(expected), float64(actual), float64(tol))
}

// EqualTolSlice asserts that the elements of the two slices are within
// the given tolerance of each other.
func EqualTolSlice[T float32 | float64](t *testing.T, expected, actual []T, tol T) bool {
	t.Helper()
	if !assert.Equal(t, len(expected), len(actual)) {
		return false
	}
	res := true
	for i, ex := range expected {
		if !assert.InDelta(t, float64(ex), float64(actual[i]), float64(tol)) {
			res = false
		}
	}
	return res
}
