// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package measure

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMeasureBasics(t *testing.T) {
	m := New(12)
	sz := m.Measure("hello")
	assert.Greater(t, sz.Width, float32(0))
	assert.Greater(t, sz.Height, float32(0))

	longer := m.Measure("hello world")
	assert.Greater(t, longer.Width, sz.Width)
	assert.Equal(t, float32(0), m.Measure("").Width)
}

func TestMeasureCaches(t *testing.T) {
	m := New(12)
	m.Measure("42")
	n := m.ShapeCalls()
	m.Measure("42")
	m.Measure("42")
	assert.Equal(t, n, m.ShapeCalls())

	m.Measure("43")
	assert.Equal(t, n+1, m.ShapeCalls())
}

func TestInvalidateCacheForcesRemeasure(t *testing.T) {
	m := New(12)
	before := m.Measure("42")
	n := m.ShapeCalls()

	m.InvalidateCache()
	after := m.Measure("42")
	assert.Equal(t, n+1, m.ShapeCalls())
	// Unchanged inputs still measure the same, just not from cache.
	assert.Equal(t, before, after)
}

func TestApproxMeasure(t *testing.T) {
	m := New(12)
	ref := m.ApproxMeasure("X").Width
	require.Greater(t, ref, float32(0))
	assert.InDelta(t, float64(3*ref), float64(m.ApproxMeasure("abc").Width), 1e-3)
	// Rune count, not byte count.
	assert.InDelta(t, float64(2*ref), float64(m.ApproxMeasure("日本").Width), 1e-3)

	// The approximation over-estimates proportional lowercase text.
	assert.GreaterOrEqual(t, m.ApproxMeasure("iiii").Width, m.Measure("iiii").Width)
}

func TestFontSizeScalesWidth(t *testing.T) {
	small := New(10)
	large := New(20)
	assert.Greater(t, large.Measure("42").Width, small.Measure("42").Width)
	assert.Greater(t, large.LineHeight(), small.LineHeight())
}

func TestNewFromFontRejectsGarbage(t *testing.T) {
	_, err := NewFromFont([]byte("not a font"), 12)
	assert.Error(t, err)
}

func TestWrap(t *testing.T) {
	m := New(12)
	w := NewWrapper(m)

	assert.Equal(t, "hi", w.Wrap("hi", 1000))

	full := m.Measure("comprehensive").Width
	got := w.Wrap("comprehensive", full/2)
	assert.NotEqual(t, "comprehensive", got)
	assert.Contains(t, got, "…")
	assert.LessOrEqual(t, m.Measure(got).Width, full/2)

	assert.Equal(t, "", w.Wrap("anything", 0.01))
}
