// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/vector"

	"github.com/plotkit/plotkit/math32"
)

// Canvas is an immediate-mode raster drawing surface. Draw calls
// rasterize directly into an RGBA image with antialiasing; there is no
// retained state, so every render pass repaints from scratch.
type Canvas struct {
	redrawHook

	img  *image.RGBA
	rast *vector.Rasterizer
}

// NewCanvas returns a new [Canvas] surface with the given pixel size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img:  image.NewRGBA(image.Rect(0, 0, width, height)),
		rast: vector.NewRasterizer(width, height),
	}
}

// Bounds implements [Surface].
func (cv *Canvas) Bounds() math32.Box2 {
	b := cv.img.Bounds()
	return math32.B2(float32(b.Min.X), float32(b.Min.Y), float32(b.Max.X), float32(b.Max.Y))
}

// Image returns the backing image.
func (cv *Canvas) Image() *image.RGBA {
	return cv.img
}

// Clear fills the whole canvas with the given color.
func (cv *Canvas) Clear(c color.Color) {
	b := cv.img.Bounds()
	cv.FillRect(math32.B2(float32(b.Min.X), float32(b.Min.Y), float32(b.Max.X), float32(b.Max.Y)), c)
}

// WritePNG encodes the current canvas content as PNG to w.
func (cv *Canvas) WritePNG(w io.Writer) error {
	return png.Encode(w, cv.img)
}

// FillRect fills the given rectangle with the given color.
func (cv *Canvas) FillRect(b math32.Box2, c color.Color) {
	cv.FillPolygon([]math32.Vector2{
		b.Min,
		math32.Vec2(b.Max.X, b.Min.Y),
		b.Max,
		math32.Vec2(b.Min.X, b.Max.Y),
	}, c)
}

// StrokeRect strokes the outline of the given rectangle with the given
// color and line width, centered on the rectangle edges.
func (cv *Canvas) StrokeRect(b math32.Box2, c color.Color, width float32) {
	h := width / 2
	// Top, bottom, left, right edge quads.
	cv.FillRect(math32.B2(b.Min.X-h, b.Min.Y-h, b.Max.X+h, b.Min.Y+h), c)
	cv.FillRect(math32.B2(b.Min.X-h, b.Max.Y-h, b.Max.X+h, b.Max.Y+h), c)
	cv.FillRect(math32.B2(b.Min.X-h, b.Min.Y+h, b.Min.X+h, b.Max.Y-h), c)
	cv.FillRect(math32.B2(b.Max.X-h, b.Min.Y+h, b.Max.X+h, b.Max.Y-h), c)
}

// FillPolygon fills the polygon through the given points with the
// given color.
func (cv *Canvas) FillPolygon(pts []math32.Vector2, c color.Color) {
	if len(pts) < 3 {
		return
	}
	b := cv.img.Bounds()
	cv.rast.Reset(b.Dx(), b.Dy())
	cv.rast.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		cv.rast.LineTo(pt.X, pt.Y)
	}
	cv.rast.ClosePath()
	cv.rast.Draw(cv.img, b, image.NewUniform(c), image.Point{})
}

// StrokePath strokes the polyline through the given points with the
// given color and line width, using butt caps and no joins beyond the
// natural quad overlap.
func (cv *Canvas) StrokePath(pts []math32.Vector2, c color.Color, width float32) {
	if len(pts) < 2 {
		return
	}
	h := width / 2
	for i := 0; i < len(pts)-1; i++ {
		p0, p1 := pts[i], pts[i+1]
		d := p1.Sub(p0)
		length := math32.Sqrt(d.X*d.X + d.Y*d.Y)
		if length == 0 {
			continue
		}
		// Unit normal, scaled to half the stroke width.
		n := math32.Vec2(-d.Y/length, d.X/length).MulScalar(h)
		cv.FillPolygon([]math32.Vector2{
			p0.Add(n), p1.Add(n), p1.Sub(n), p0.Sub(n),
		}, c)
	}
}
