// Copyright (c) 2025, Tidemark Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scales adapts tidemark palettes to a charting library's
// scale API. A [ScaleSpec] is a plain data description of a scale:
// the charting library consumes it, this package never calls into
// one. Discrete scales carry a palette function that produces one
// color per category; continuous scales carry a fixed 256-color
// gradient sampling.
package scales

import (
	"image/color"
	"strconv"

	"github.com/tidemark-vis/tidemark"
)

// Aesthetics selects the visual channel a scale applies to.
type Aesthetics int32

const (
	// Fill is the interior fill channel.
	Fill Aesthetics = iota

	// Color is the stroke and outline color channel.
	Color
)

func (a Aesthetics) String() string {
	switch a {
	case Fill:
		return "Fill"
	case Color:
		return "Color"
	}
	return "Aesthetics(" + strconv.FormatInt(int64(a), 10) + ")"
}

// GradientSize is the number of colors sampled for continuous scales.
const GradientSize = 256

// Config configures scale construction: the embedded palette
// [tidemark.Options] plus the scale mode and any options destined for
// the charting library.
type Config struct {
	tidemark.Options

	// Discrete selects a discrete (categorical) scale; otherwise the
	// scale is a continuous gradient.
	Discrete bool

	// Extra holds options forwarded verbatim to the charting
	// library's scale constructor. They are not interpreted here.
	Extra map[string]any
}

// NewConfig returns a new [Config] with default palette options and
// continuous mode.
func NewConfig() *Config {
	cfg := &Config{}
	cfg.Options.Defaults()
	return cfg
}

// ScaleSpec is the scale description handed to the charting library.
// Exactly one of Palette and Gradient is set, per Discrete.
type ScaleSpec struct {

	// Aesthetic is the visual channel this scale applies to.
	Aesthetic Aesthetics

	// Discrete indicates a categorical scale; otherwise continuous.
	Discrete bool

	// Palette produces the category colors for a discrete scale;
	// nil for continuous scales.
	Palette func(n int) []color.RGBA

	// Gradient is the fixed color sampling for a continuous scale;
	// nil for discrete scales.
	Gradient []color.RGBA

	// Options are the passthrough options from [Config.Extra],
	// forwarded verbatim.
	Options map[string]any
}

// FillScale returns the scale for the fill channel with the given
// configuration. A nil cfg uses [NewConfig] defaults.
func FillScale(cfg *Config) (*ScaleSpec, error) {
	return newScale(Fill, cfg)
}

// ColorScale returns the scale for the stroke color channel with the
// given configuration. A nil cfg uses [NewConfig] defaults.
func ColorScale(cfg *Config) (*ScaleSpec, error) {
	return newScale(Color, cfg)
}

// ColourScale is [ColorScale] under its regional spelling.
func ColourScale(cfg *Config) (*ScaleSpec, error) {
	return ColorScale(cfg)
}

func newScale(aes Aesthetics, cfg *Config) (*ScaleSpec, error) {
	if cfg == nil {
		cfg = NewConfig()
	}
	sp := &ScaleSpec{Aesthetic: aes, Discrete: cfg.Discrete, Options: cfg.Extra}
	if cfg.Discrete {
		pf, err := tidemark.PaletteFunc(&cfg.Options)
		if err != nil {
			return nil, err
		}
		sp.Palette = pf
		return sp, nil
	}
	grad, err := tidemark.Palette(GradientSize, &cfg.Options)
	if err != nil {
		return nil, err
	}
	sp.Gradient = grad
	return sp, nil
}
