// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotkit/plotkit/dataset"
	"github.com/plotkit/plotkit/math32"
	"github.com/plotkit/plotkit/render"
	"github.com/plotkit/plotkit/scale"
)

func heatData() *dataset.Dataset {
	return dataset.New(
		dataset.Datum{"day": "mon", "hour": "h0", "v": 1.0},
		dataset.Datum{"day": "tue", "hour": "h0", "v": 5.0},
		dataset.Datum{"day": "wed", "hour": "h1", "v": 9.0},
	)
}

func TestGridPlotSingleDatasetOnly(t *testing.T) {
	gp := NewGridPlot()
	ds := heatData()
	gp.AddDataset(ds)
	require.Len(t, gp.Datasets(), 1)

	other := heatData()
	got := gp.AddDataset(other)
	assert.Same(t, gp, got)
	require.Len(t, gp.Datasets(), 1)
	assert.Same(t, ds, gp.Datasets()[0])
}

func TestBandBindingDerivesEdges(t *testing.T) {
	bs := scale.NewBand("mon", "tue", "wed")
	bs.SetRange(0, 300)

	gp := NewGridPlot()
	ds := heatData()
	gp.AddDataset(ds)
	gp.BindX(Field("day"), bs)

	x1 := gp.projections["x1"].projector()
	x2 := gp.projections["x2"].projector()
	band := bs.RangeBand()
	for i, d := range ds.Data() {
		center := bs.Scale(d["day"].(string))
		lo, ok := x1(d, i).(float32)
		require.True(t, ok)
		hi, ok := x2(d, i).(float32)
		require.True(t, ok)
		assert.Equal(t, center-band/2, lo)
		assert.Equal(t, center+band/2, hi)
	}
}

func TestQuantitativeBindingPositionsEdgeOnly(t *testing.T) {
	ls := scale.NewLinear()
	ls.SetDomain(0, 10)
	ls.SetRange(0, 100)

	gp := NewGridPlot()
	gp.AddDataset(dataset.New(dataset.Datum{"t": 5.0}))
	gp.BindX(Field("t"), ls)
	gp.BindWidth(Constant(float32(4)))

	attrs := gp.stepAttrs()
	d := gp.Datasets()[0].Data()[0]
	x, ok := attrs["x"](d, 0).(float32)
	require.True(t, ok)
	assert.InDelta(t, 50, float64(x), 1e-4)
	w, ok := attrs["width"](d, 0).(float32)
	require.True(t, ok)
	assert.Equal(t, float32(4), w)
}

func TestGridPlotRendersCells(t *testing.T) {
	sv := render.NewSVG(300, 200)
	days := scale.NewBand("mon", "tue", "wed")
	hours := scale.NewBand("h0", "h1")
	fill := scale.NewInterpolated()
	fill.SetDomain(0, 10)

	gp := NewGridPlot()
	gp.AddDataset(heatData())
	gp.BindX(Field("day"), days)
	gp.BindY(Field("hour"), hours)
	gp.BindFill(Field("v"), fill)

	gp.Anchor(sv)
	gp.ComputeLayout(math32.Vec2(0, 0), 300, 200)
	gp.Render()

	// Layout pins the positional scale ranges to the box.
	min, max := days.Range()
	assert.Equal(t, float32(0), min)
	assert.Equal(t, float32(300), max)
	min, max = hours.Range()
	assert.Equal(t, float32(200), min)
	assert.Equal(t, float32(0), max)

	rects := 0
	for _, el := range gp.renderArea.Children() {
		if el.Tag == "rect" {
			rects++
			assert.NotEmpty(t, el.Attr("fill"))
		}
	}
	assert.Equal(t, 3, rects)
}

func TestGridPlotRedrawOnDataUpdate(t *testing.T) {
	sv := render.NewSVG(300, 200)
	days := scale.NewBand("mon", "tue")
	hours := scale.NewBand("h0")

	gp := NewGridPlot()
	ds := dataset.New(dataset.Datum{"day": "mon", "hour": "h0", "v": 1.0})
	gp.AddDataset(ds)
	gp.BindX(Field("day"), days)
	gp.BindY(Field("hour"), hours)
	gp.BindFill(Constant("red"), nil)
	gp.Anchor(sv)
	gp.ComputeLayout(math32.Vec2(0, 0), 300, 200)
	gp.Render()
	assert.Len(t, gp.renderArea.Children(), 1)

	ds.SetData(
		dataset.Datum{"day": "mon", "hour": "h0", "v": 1.0},
		dataset.Datum{"day": "tue", "hour": "h0", "v": 2.0},
	)
	assert.Len(t, gp.renderArea.Children(), 2)
}

func TestGridPlotDestroyReleasesDrawers(t *testing.T) {
	sv := render.NewSVG(300, 200)
	days := scale.NewBand("mon", "tue", "wed")
	gp := NewGridPlot()
	gp.AddDataset(heatData())
	gp.BindX(Field("day"), days)
	gp.BindY(Constant(float32(0)), nil)
	gp.BindHeight(Constant(float32(10)))
	gp.Anchor(sv)
	gp.ComputeLayout(math32.Vec2(0, 0), 300, 200)
	gp.Render()

	area := gp.renderArea
	gp.Destroy()
	assert.True(t, gp.Destroyed())
	assert.Empty(t, area.Children())
	// Scale updates must no longer reach the destroyed plot.
	days.SetDomain("a", "b")
}

func TestRebindReplacesScaleSubscription(t *testing.T) {
	sv := render.NewSVG(300, 200)
	old := scale.NewLinear()
	old.SetDomain(0, 10)
	days := scale.NewBand("mon", "tue")

	gp := NewGridPlot()
	gp.AddDataset(dataset.New(dataset.Datum{"t": 5.0}))
	gp.Anchor(sv)
	gp.BindX(Field("t"), old)
	gp.BindX(Field("t"), days)
	gp.BindX(Field("t"), scale.NewLinear())

	redraws := 0
	sv.SetRedrawHandler(func() { redraws++ })
	// Updates to replaced scales no longer reach the plot; this covers
	// both the quantitative binding and the band's two edge bindings.
	old.SetDomain(0, 99)
	days.SetDomain("a", "b")
	assert.Zero(t, redraws)
}

func TestLinePlotRendersPathPerDataset(t *testing.T) {
	sv := render.NewSVG(300, 200)
	x := scale.NewLinear()
	x.SetDomain(0, 3)
	y := scale.NewLinear()
	y.SetDomain(0, 10)

	lp := NewLinePlot()
	lp.AddDataset(dataset.New(
		dataset.Datum{"t": 0.0, "v": 1.0},
		dataset.Datum{"t": 1.0, "v": 4.0},
		dataset.Datum{"t": 2.0, "v": 2.0},
	))
	lp.BindX(Field("t"), x)
	lp.BindY(Field("v"), y)
	lp.BindStroke(Constant("steelblue"))
	lp.Anchor(sv)
	lp.ComputeLayout(math32.Vec2(0, 0), 300, 200)
	lp.Render()

	paths := 0
	for _, el := range lp.renderArea.Children() {
		if el.Tag == "path" {
			paths++
			assert.NotEmpty(t, el.Attr("d"))
		}
	}
	assert.Equal(t, 1, paths)
}
