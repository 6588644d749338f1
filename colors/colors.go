// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colors provides the color representation and CSS-style color
// parsing used by drawers and scales. Colors are standard [color.RGBA]
// values with alpha-premultiplied components.
package colors

import (
	"fmt"
	"image/color"
)

// Transparent is the fully transparent color.
var Transparent = color.RGBA{}

// Black is opaque black.
var Black = color.RGBA{A: 255}

// White is opaque white.
var White = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// AsRGBA returns the given color as an alpha-premultiplied [color.RGBA].
func AsRGBA(c color.Color) color.RGBA {
	if c == nil {
		return Transparent
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

// FromNRGBA returns a [color.RGBA] from non-alpha-premultiplied components.
func FromNRGBA(r, g, b, a uint8) color.RGBA {
	return AsRGBA(color.NRGBA{R: r, G: g, B: b, A: a})
}

// WithAlphaFactor multiplies the alpha of the given color by the factor,
// clamped to [0, 1], preserving the premultiplied encoding. A factor of 1
// returns the color unchanged.
func WithAlphaFactor(c color.Color, factor float32) color.RGBA {
	if factor >= 1 {
		return AsRGBA(c)
	}
	if factor < 0 {
		factor = 0
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float32(n.A) * factor)
	return AsRGBA(n)
}

// AsHex returns the color as a #rrggbb or #rrggbbaa hex string,
// using the non-premultiplied components.
func AsHex(c color.Color) string {
	if c == nil {
		return "nil"
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// IsNil returns whether the given color is nil or fully transparent.
func IsNil(c color.Color) bool {
	if c == nil {
		return true
	}
	return AsRGBA(c) == Transparent
}
