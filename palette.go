// Copyright (c) 2025, Tidemark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tidemark

import "image/color"

// Palette returns n colors sampled at evenly spaced parameters over
// the configured range of the anchor spline, in traversal order. A
// nil opts uses the defaults (full range, forward, opaque). n of zero
// or less produces an empty palette. The only errors are those of
// [Options.Validate].
func Palette(n int, opts *Options) ([]color.RGBA, error) {
	if opts == nil {
		opts = NewOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if n <= 0 {
		return nil, nil
	}
	begin, end := opts.span()
	pal := make([]color.RGBA, n)
	for i := range pal {
		t := begin
		if n > 1 {
			t += (end - begin) * float32(i) / float32(n-1)
		}
		pal[i] = At(t, opts.Alpha)
	}
	return pal, nil
}

// Hex is [Palette] with the colors formatted as #RRGGBBAA hex
// strings.
func Hex(n int, opts *Options) ([]string, error) {
	pal, err := Palette(n, opts)
	if err != nil {
		return nil, err
	}
	hex := make([]string, len(pal))
	for i, c := range pal {
		hex[i] = AsHex(c)
	}
	return hex, nil
}

// PaletteFunc returns a function that generates palettes of any
// requested size with the given fixed options, for registering with a
// discrete scale. The options are validated once here and copied, so
// the returned function cannot fail and is unaffected by later
// changes to opts.
func PaletteFunc(opts *Options) (func(n int) []color.RGBA, error) {
	if opts == nil {
		opts = NewOptions()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	o := *opts
	return func(n int) []color.RGBA {
		pal, _ := Palette(n, &o)
		return pal
	}, nil
}

// HexFunc is [PaletteFunc] with the colors formatted as #RRGGBBAA hex
// strings.
func HexFunc(opts *Options) (func(n int) []string, error) {
	pf, err := PaletteFunc(opts)
	if err != nil {
		return nil, err
	}
	return func(n int) []string {
		pal := pf(n)
		hex := make([]string, len(pal))
		for i, c := range pal {
			hex[i] = AsHex(c)
		}
		return hex
	}, nil
}
