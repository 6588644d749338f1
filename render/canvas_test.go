// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotkit/plotkit/math32"
)

func TestCanvasFillRect(t *testing.T) {
	cv := NewCanvas(50, 50)
	cv.FillRect(math32.B2(10, 10, 30, 30), color.RGBA{0, 0, 255, 255})

	at := cv.Image().RGBAAt(20, 20)
	assert.Equal(t, uint8(255), at.B)
	assert.Equal(t, uint8(0), at.R)
	assert.Equal(t, uint8(0), cv.Image().RGBAAt(40, 40).A)
}

func TestCanvasClear(t *testing.T) {
	cv := NewCanvas(20, 20)
	cv.FillRect(math32.B2(0, 0, 20, 20), color.RGBA{255, 0, 0, 255})
	cv.Clear(color.RGBA{255, 255, 255, 255})
	at := cv.Image().RGBAAt(5, 5)
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, at)
}

func TestCanvasStrokePath(t *testing.T) {
	cv := NewCanvas(40, 40)
	cv.StrokePath([]math32.Vector2{
		math32.Vec2(5, 20), math32.Vec2(35, 20),
	}, color.RGBA{A: 255}, 4)

	assert.Equal(t, uint8(255), cv.Image().RGBAAt(20, 20).A)
	assert.Equal(t, uint8(0), cv.Image().RGBAAt(20, 5).A)
}

func TestCanvasStrokeRectLeavesInteriorEmpty(t *testing.T) {
	cv := NewCanvas(40, 40)
	cv.StrokeRect(math32.B2(5, 5, 35, 35), color.RGBA{A: 255}, 2)
	assert.NotEqual(t, uint8(0), cv.Image().RGBAAt(5, 20).A)
	assert.Equal(t, uint8(0), cv.Image().RGBAAt(20, 20).A)
}

func TestCanvasWritePNG(t *testing.T) {
	cv := NewCanvas(10, 10)
	cv.Clear(color.RGBA{1, 2, 3, 255})
	var buf bytes.Buffer
	require.NoError(t, cv.WritePNG(&buf))
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, buf.Bytes()[:4])
}

func TestCanvasBounds(t *testing.T) {
	cv := NewCanvas(120, 80)
	assert.Equal(t, math32.B2(0, 0, 120, 80), cv.Bounds())
}
