// Copyright (c) 2025, Tidemark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tidemark

import (
	"fmt"
	"image/color"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/tidemark-vis/tidemark/base/tolassert"
	"github.com/tidemark-vis/tidemark/cam/cie"
)

func TestPaletteLength(t *testing.T) {
	for _, n := range []int{1, 2, 3, 8, 100} {
		pal, err := Palette(n, nil)
		assert.NoError(t, err)
		assert.Equal(t, n, len(pal))
	}
}

func TestPaletteEmpty(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		pal, err := Palette(n, nil)
		assert.NoError(t, err)
		assert.Empty(t, pal)
	}
}

// assertNearRGB asserts that the two colors match to within one step
// per channel, absorbing the Lab round-trip rounding.
func assertNearRGB(t *testing.T, want, have color.RGBA) {
	t.Helper()
	assert.InDelta(t, float64(want.R), float64(have.R), 1)
	assert.InDelta(t, float64(want.G), float64(have.G), 1)
	assert.InDelta(t, float64(want.B), float64(have.B), 1)
	assert.Equal(t, want.A, have.A)
}

func TestPaletteEndpoints(t *testing.T) {
	pal, err := Palette(2, nil)
	assert.NoError(t, err)
	assertNearRGB(t, Anchors[0], pal[0])
	assertNearRGB(t, Anchors[len(Anchors)-1], pal[1])

	// n=1 samples exactly at Begin
	one, err := Palette(1, nil)
	assert.NoError(t, err)
	assertNearRGB(t, Anchors[0], one[0])

	rev := NewOptions()
	rev.Direction = Reverse
	one, err = Palette(1, rev)
	assert.NoError(t, err)
	assertNearRGB(t, Anchors[len(Anchors)-1], one[0])
}

func TestPaletteReverse(t *testing.T) {
	ranges := [][2]float32{{0, 1}, {0.2, 0.9}, {0.8, 0.3}, {0.5, 0.5}}
	for _, rng := range ranges {
		for _, n := range []int{1, 2, 7} {
			rev := NewOptions()
			rev.Begin, rev.End = rng[0], rng[1]
			rev.Direction = Reverse
			rpal, err := Palette(n, rev)
			assert.NoError(t, err)

			fwd := NewOptions()
			fwd.Begin, fwd.End = rng[1], rng[0]
			fpal, err := Palette(n, fwd)
			assert.NoError(t, err)
			assert.Equal(t, fpal, rpal, "range %v, n %d", rng, n)
		}
	}
}

func TestPaletteErrors(t *testing.T) {
	bad := []Options{
		{Alpha: 1, Begin: -0.1, End: 1},
		{Alpha: 1, Begin: 0, End: 1.3},
		{Alpha: 1, Begin: 0.2, End: 1.3},
		{Alpha: 1, Begin: 2, End: -1},
	}
	for _, o := range bad {
		_, err := Palette(5, &o)
		assert.ErrorIs(t, err, ErrInvalidRange)
		_, err = Hex(5, &o)
		assert.ErrorIs(t, err, ErrInvalidRange)
		_, err = PaletteFunc(&o)
		assert.ErrorIs(t, err, ErrInvalidRange)
		_, err = HexFunc(&o)
		assert.ErrorIs(t, err, ErrInvalidRange)
	}

	o := NewOptions()
	o.Direction = Directions(3)
	_, err := Palette(5, o)
	assert.ErrorIs(t, err, ErrInvalidDirection)
	o.Direction = Directions(-1)
	_, err = Palette(5, o)
	assert.ErrorIs(t, err, ErrInvalidDirection)
}

func TestPaletteAlpha(t *testing.T) {
	opaque, err := Palette(4, nil)
	assert.NoError(t, err)
	for alpha, want := range map[float32]uint8{0: 0, 0.5: 128, 1: 255} {
		o := NewOptions()
		o.Alpha = alpha
		pal, err := Palette(4, o)
		assert.NoError(t, err)
		for i, c := range pal {
			assert.Equal(t, want, c.A)
			// alpha is attached straight: RGB stays put
			assert.Equal(t, opaque[i].R, c.R)
			assert.Equal(t, opaque[i].G, c.G)
			assert.Equal(t, opaque[i].B, c.B)
		}
	}
}

func TestPaletteAlphaClamp(t *testing.T) {
	o := NewOptions()
	o.Alpha = 1.5
	pal, err := Palette(1, o)
	assert.NoError(t, err)
	assert.Equal(t, uint8(255), pal[0].A)

	o.Alpha = -0.2
	pal, err = Palette(1, o)
	assert.NoError(t, err)
	assert.Equal(t, uint8(0), pal[0].A)
}

func TestPaletteThree(t *testing.T) {
	pal, err := Palette(3, nil)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(pal))
	assertNearRGB(t, Anchors[0], pal[0])
	assertNearRGB(t, Anchors[len(Anchors)-1], pal[2])

	// the middle color is the spline value at t=0.5...
	o := NewOptions()
	o.Begin, o.End = 0.5, 0.5
	mid, err := Palette(1, o)
	assert.NoError(t, err)
	assert.Equal(t, mid[0], pal[1])

	// ...a green-dominant mid-palette tone, not an RGB average of the
	// endpoints
	assert.Greater(t, pal[1].G, pal[1].R)
	assert.Greater(t, pal[1].G, pal[1].B)
	avg := color.RGBA{
		R: uint8((uint16(pal[0].R) + uint16(pal[2].R)) / 2),
		G: uint8((uint16(pal[0].G) + uint16(pal[2].G)) / 2),
		B: uint8((uint16(pal[0].B) + uint16(pal[2].B)) / 2),
		A: 255,
	}
	assert.NotEqual(t, avg, pal[1])
}

// TestPaletteSmoothness guards against interpolation regressions: the
// perceptual distance between consecutive colors of a dense sampling
// must show no large discontinuities.
func TestPaletteSmoothness(t *testing.T) {
	pal, err := Palette(100, nil)
	assert.NoError(t, err)
	var steps []float64
	var sum float64
	for i := 1; i < len(pal); i++ {
		c0, _ := colorful.MakeColor(pal[i-1])
		c1, _ := colorful.MakeColor(pal[i])
		d := c0.DistanceLab(c1)
		steps = append(steps, d)
		sum += d
	}
	mean := sum / float64(len(steps))
	assert.Greater(t, mean, 0.0)
	for i, d := range steps {
		assert.Less(t, d, 4*mean, "step %d", i)
	}
}

// TestLABAgainstColorful cross-checks the cie conversions against
// go-colorful as an independent reference. go-colorful scales L*, a*,
// and b* down by 100.
func TestLABAgainstColorful(t *testing.T) {
	for _, c := range Anchors {
		x, y, z := cie.SRGBToXYZ(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255)
		l, a, b := cie.XYZToLAB(x, y, z)
		cf, ok := colorful.MakeColor(c)
		assert.True(t, ok)
		cl, ca, cb := cf.Lab()
		tolassert.Equal(t, float32(cl), l/100)
		tolassert.Equal(t, float32(ca), a/100)
		tolassert.Equal(t, float32(cb), b/100)
	}
}

func TestHexPalette(t *testing.T) {
	hex, err := Hex(3, nil)
	assert.NoError(t, err)
	assert.Equal(t, 3, len(hex))
	pal, _ := Palette(3, nil)
	for i, h := range hex {
		assert.Regexp(t, `^#[0-9A-F]{8}$`, h)
		assert.Equal(t, AsHex(pal[i]), h)
		assert.Equal(t, "FF", h[7:])
	}

	o := NewOptions()
	o.Alpha = 0.5
	hex, err = Hex(2, o)
	assert.NoError(t, err)
	for _, h := range hex {
		assert.Equal(t, "80", h[7:])
	}
}

func TestPaletteFunc(t *testing.T) {
	o := NewOptions()
	o.Begin, o.End = 0.1, 0.8
	f, err := PaletteFunc(o)
	assert.NoError(t, err)
	want, _ := Palette(6, o)
	assert.Equal(t, want, f(6))
	assert.Empty(t, f(0))

	// the factory holds a copy, immune to later mutation
	o.End = 5
	assert.Equal(t, want, f(6))

	hf, err := HexFunc(nil)
	assert.NoError(t, err)
	wantHex, _ := Hex(4, nil)
	assert.Equal(t, wantHex, hf(4))
}

func ExampleHex() {
	hex, _ := Hex(3, nil)
	fmt.Println(len(hex))
	// Output: 3
}
