// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package styles provides chart-wide visual themes that can be loaded
// from TOML and applied to components.
package styles

import (
	"image/color"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/plotkit/plotkit/chart"
	"github.com/plotkit/plotkit/colors"
	"github.com/plotkit/plotkit/scale"
)

// Theme is a bundle of visual defaults. Color fields hold any string
// accepted by [colors.FromString].
type Theme struct {

	// Background is the chart background color.
	Background string `toml:"background"`

	// AxisLine is the axis baseline and tick mark color.
	AxisLine string `toml:"axis_line"`

	// AxisText is the tick label color.
	AxisText string `toml:"axis_text"`

	// TickLength is the axis tick mark length in pixels.
	TickLength float32 `toml:"tick_length"`

	// LabelPadding is the axis tick-to-label gap in pixels.
	LabelPadding float32 `toml:"label_padding"`

	// Ramp is the ordered list of color stops for value-to-color
	// scales, at least two.
	Ramp []string `toml:"ramp"`
}

// Default returns the built-in theme.
func Default() Theme {
	return Theme{
		Background:   "white",
		AxisLine:     "#333",
		AxisText:     "#333",
		TickLength:   5,
		LabelPadding: 10,
		Ramp:         []string{"#ffffcc", "#fd8d3c", "#800026"},
	}
}

// Load decodes a theme from TOML, with [Default] values for any field
// the document omits.
func Load(r io.Reader) (Theme, error) {
	t := Default()
	if err := toml.NewDecoder(r).Decode(&t); err != nil {
		return Default(), err
	}
	return t, nil
}

// LoadFile loads a theme from the TOML file at the given path.
func LoadFile(path string) (Theme, error) {
	f, err := os.Open(path)
	if err != nil {
		return Default(), err
	}
	defer f.Close()
	return Load(f)
}

// BackgroundColor returns the parsed background color.
func (t Theme) BackgroundColor() color.RGBA {
	return colors.MustFromString(t.Background)
}

// ApplyAxis sets the theme's axis styling on the given axis.
func (t Theme) ApplyAxis(ax *chart.NumericAxis) error {
	line, err := colors.FromString(t.AxisLine)
	if err != nil {
		return err
	}
	text, err := colors.FromString(t.AxisText)
	if err != nil {
		return err
	}
	ax.LineColor = line
	ax.TextColor = text
	ax.TickLength = t.TickLength
	ax.LabelPadding = t.LabelPadding
	return nil
}

// ColorScale returns an [scale.Interpolated] over the theme's ramp
// with the given domain.
func (t Theme) ColorScale(lo, hi float64) (*scale.Interpolated, error) {
	stops := make([]color.RGBA, len(t.Ramp))
	for i, s := range t.Ramp {
		c, err := colors.FromString(s)
		if err != nil {
			return nil, err
		}
		stops[i] = c
	}
	sc := scale.NewInterpolated(stops...)
	sc.SetDomain(lo, hi)
	return sc, nil
}
