// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package measure provides text measurement for axis and label layout,
// with a memoizing cache that can be invalidated when fonts or
// container conditions change. Shaping is done with go-text/typesetting
// over an embedded font (Go Regular by default).
package measure

import (
	"bytes"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"github.com/plotkit/plotkit/base/errors"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

// Size is a measured text extent in pixels.
type Size struct {
	Width  float32
	Height float32
}

// Measurer measures single-line text extents. Exact measurements are
// memoized per string until [Measurer.InvalidateCache] is called.
// It is not safe for concurrent use; the rendering pipeline is
// single-threaded.
type Measurer struct {
	fnt    *font.Font
	sizePx float32
	shaper shaping.HarfbuzzShaper

	cache map[string]Size

	// shapeCalls counts actual shaping invocations (cache misses),
	// so cache behavior is observable in tests.
	shapeCalls int

	// refWidth is the memoized width of the reference glyph used by
	// [Measurer.ApproxMeasure]; zero means not yet measured.
	refWidth float32
}

// refGlyph is the reference glyph for approximate width measurement.
const refGlyph = "X"

// New returns a [Measurer] using the embedded Go Regular font at the
// given pixel size. Sizes <= 0 default to 12.
func New(sizePx float32) *Measurer {
	return errors.Must1(NewFromFont(goregular.TTF, sizePx))
}

// NewFromFont returns a [Measurer] using the given TTF/OTF font data
// at the given pixel size.
func NewFromFont(data []byte, sizePx float32) (*Measurer, error) {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if sizePx <= 0 {
		sizePx = 12
	}
	return &Measurer{fnt: face.Font, sizePx: sizePx, cache: map[string]Size{}}, nil
}

// FontSize returns the measurer's font size in pixels.
func (m *Measurer) FontSize() float32 {
	return m.sizePx
}

// Measure returns the exact extent of the given single-line text.
// Results are cached until [Measurer.InvalidateCache].
func (m *Measurer) Measure(text string) Size {
	if sz, ok := m.cache[text]; ok {
		return sz
	}
	sz := m.shape(text)
	m.cache[text] = sz
	return sz
}

// ApproxMeasure returns an approximate extent: rune count times the
// width of a reference glyph. It trades accuracy for speed and can
// over-estimate, producing extra whitespace in layouts that use it.
func (m *Measurer) ApproxMeasure(text string) Size {
	if m.refWidth == 0 {
		m.refWidth = m.shape(refGlyph).Width
	}
	n := 0
	for range text {
		n++
	}
	return Size{Width: float32(n) * m.refWidth, Height: m.LineHeight()}
}

// LineHeight returns the line height of the measurer's font.
func (m *Measurer) LineHeight() float32 {
	return m.Measure(refGlyph).Height
}

// InvalidateCache discards all memoized measurements. Call it whenever
// font, content, or container size may have changed; stale measurements
// otherwise silently produce incorrect widths.
func (m *Measurer) InvalidateCache() {
	m.cache = map[string]Size{}
	m.refWidth = 0
}

// ShapeCalls returns the number of shaping invocations performed,
// counting cache misses only.
func (m *Measurer) ShapeCalls() int {
	return m.shapeCalls
}

// shape runs the text through the harfbuzz shaper and converts the
// output advance and line bounds to pixels.
func (m *Measurer) shape(text string) Size {
	m.shapeCalls++
	runes := []rune(text)
	script := language.Latin
	if len(runes) > 0 {
		script = language.LookupScript(runes[0])
	}
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      font.NewFace(m.fnt),
		Size:      fixed.Int26_6(m.sizePx * 64),
		Script:    script,
		Language:  language.NewLanguage("en"),
	}
	out := m.shaper.Shape(input)
	w := float32(out.Advance) / 64
	asc := float32(out.LineBounds.Ascent) / 64
	desc := float32(out.LineBounds.Descent) / 64 // negative below baseline
	gap := float32(out.LineBounds.Gap) / 64
	return Size{Width: w, Height: asc - desc + gap}
}
