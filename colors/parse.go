// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// FromString parses a CSS-style color string into a color. Supported
// forms are hex (#rgb, #rgba, #rrggbb, #rrggbbaa), rgb(r, g, b),
// rgba(r, g, b, a) with a in [0, 1], the SVG named colors, and
// "none" / "transparent". Parsing is case-insensitive. An error is
// returned for anything unrecognized, with the transparent color.
func FromString(str string) (color.RGBA, error) {
	str = strings.ToLower(strings.TrimSpace(str))
	switch {
	case str == "":
		return Transparent, fmt.Errorf("colors: empty color string")
	case str == "none" || str == "transparent":
		return Transparent, nil
	case str[0] == '#':
		return FromHex(str)
	case strings.HasPrefix(str, "rgba("):
		var r, g, b uint8
		var a float32
		format := "rgba(%d,%d,%d,%g)"
		str := strings.ReplaceAll(str, " ", "")
		if _, err := fmt.Sscanf(str, format, &r, &g, &b, &a); err != nil {
			return Transparent, fmt.Errorf("colors: invalid rgba() string %q: %w", str, err)
		}
		return FromNRGBA(r, g, b, uint8(Clamp01(a)*255)), nil
	case strings.HasPrefix(str, "rgb("):
		var r, g, b uint8
		format := "rgb(%d,%d,%d)"
		str := strings.ReplaceAll(str, " ", "")
		if _, err := fmt.Sscanf(str, format, &r, &g, &b); err != nil {
			return Transparent, fmt.Errorf("colors: invalid rgb() string %q: %w", str, err)
		}
		return color.RGBA{R: r, G: g, B: b, A: 255}, nil
	default:
		if c, ok := colornames.Map[str]; ok {
			return c, nil
		}
		return Transparent, fmt.Errorf("colors: unrecognized color %q", str)
	}
}

// MustFromString parses the given color string per [FromString],
// panicking on error. It is for static color literals.
func MustFromString(str string) color.RGBA {
	c, err := FromString(str)
	if err != nil {
		panic(err)
	}
	return c
}

// FromHex parses a hex color string, with or without a leading '#',
// in 3, 4, 6, or 8 digit form.
func FromHex(hex string) (color.RGBA, error) {
	hex = strings.TrimPrefix(hex, "#")
	var r, g, b uint64
	a := uint64(255)
	var err error
	switch len(hex) {
	case 3, 4:
		if r, err = strconv.ParseUint(hex[0:1], 16, 8); err == nil {
			r *= 17
		}
		if err == nil {
			if g, err = strconv.ParseUint(hex[1:2], 16, 8); err == nil {
				g *= 17
			}
		}
		if err == nil {
			if b, err = strconv.ParseUint(hex[2:3], 16, 8); err == nil {
				b *= 17
			}
		}
		if err == nil && len(hex) == 4 {
			if a, err = strconv.ParseUint(hex[3:4], 16, 8); err == nil {
				a *= 17
			}
		}
	case 6, 8:
		r, err = strconv.ParseUint(hex[0:2], 16, 8)
		if err == nil {
			g, err = strconv.ParseUint(hex[2:4], 16, 8)
		}
		if err == nil {
			b, err = strconv.ParseUint(hex[4:6], 16, 8)
		}
		if err == nil && len(hex) == 8 {
			a, err = strconv.ParseUint(hex[6:8], 16, 8)
		}
	default:
		return Transparent, fmt.Errorf("colors: hex string %q has invalid length", hex)
	}
	if err != nil {
		return Transparent, fmt.Errorf("colors: invalid hex string %q: %w", hex, err)
	}
	return FromNRGBA(uint8(r), uint8(g), uint8(b), uint8(a)), nil
}

// Clamp01 clamps the given value to the unit interval.
func Clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
