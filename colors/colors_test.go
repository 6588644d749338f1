// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromString(t *testing.T) {
	tests := map[string]color.RGBA{
		"#f00":                 {255, 0, 0, 255},
		"#ff0000":              {255, 0, 0, 255},
		"#ff000080":            {128, 0, 0, 128},
		"red":                  {255, 0, 0, 255},
		"steelblue":            {70, 130, 180, 255},
		"rgb(10, 20, 30)":      {10, 20, 30, 255},
		"rgba(255, 0, 0, 0.5)": {127, 0, 0, 127},
		"none":                 {},
		"transparent":          {},
	}
	for in, want := range tests {
		got, err := FromString(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestFromStringInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#qqqqqq", "notacolor", "rgb(1,2)"} {
		_, err := FromString(in)
		assert.Error(t, err, in)
	}
}

func TestAsHex(t *testing.T) {
	assert.Equal(t, "#ff0000", AsHex(color.RGBA{255, 0, 0, 255}))
	assert.Equal(t, "#0a141e", AsHex(color.RGBA{10, 20, 30, 255}))
	// Non-opaque colors carry the alpha channel.
	assert.Equal(t, "#ff000080", AsHex(color.RGBA{128, 0, 0, 128}))
}

func TestWithAlphaFactor(t *testing.T) {
	c := WithAlphaFactor(color.RGBA{200, 100, 0, 255}, 0.5)
	assert.InDelta(t, 128, int(c.A), 1)
	// Premultiplied channels shrink with the alpha.
	assert.InDelta(t, 100, int(c.R), 1)

	full := WithAlphaFactor(color.RGBA{200, 100, 0, 255}, 1)
	assert.Equal(t, uint8(255), full.A)
}

func TestBlendLabEndpoints(t *testing.T) {
	a := color.RGBA{255, 0, 0, 255}
	b := color.RGBA{0, 0, 255, 255}
	assert.Equal(t, a, BlendLab(a, b, 0))
	assert.Equal(t, b, BlendLab(a, b, 1))
	mid := BlendLab(a, b, 0.5)
	assert.NotEqual(t, a, mid)
	assert.NotEqual(t, b, mid)
	assert.Equal(t, uint8(255), mid.A)
}

func TestIsNil(t *testing.T) {
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(Transparent))
	assert.False(t, IsNil(Black))
}
