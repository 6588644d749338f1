// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "strconv"

// Orientation is the side of the plot area an axis is attached to.
type Orientation int

const (
	// Bottom places the axis below the plot area, with tick marks
	// growing downward from its top edge.
	Bottom Orientation = iota

	// Top places the axis above the plot area.
	Top

	// Left places the axis left of the plot area.
	Left

	// Right places the axis right of the plot area.
	Right
)

// IsHorizontal reports whether the orientation is top or bottom.
func (o Orientation) IsHorizontal() bool {
	return o == Top || o == Bottom
}

func (o Orientation) String() string {
	switch o {
	case Bottom:
		return "bottom"
	case Top:
		return "top"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "invalid"
}

// Tick label positions relative to the tick mark. Center is valid for
// every orientation; Left and Right only for horizontal axes; Above
// and Below only for vertical axes.
const (
	LabelCenter = "center"
	LabelLeft   = "left"
	LabelRight  = "right"
	LabelAbove  = "top"
	LabelBelow  = "bottom"
)

// Formatter converts a tick value into its label text. Formatters are
// pluggable per axis.
type Formatter func(v float64) string

// DefaultFormatter formats with the shortest representation that
// round-trips the value.
func DefaultFormatter(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// FixedFormatter returns a [Formatter] printing the given number of
// decimal places.
func FixedFormatter(decimals int) Formatter {
	return func(v float64) string {
		return strconv.FormatFloat(v, 'f', decimals, 64)
	}
}
