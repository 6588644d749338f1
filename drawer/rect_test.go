// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drawer

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plotkit/plotkit/animate"
	"github.com/plotkit/plotkit/dataset"
	"github.com/plotkit/plotkit/render"
)

func rectStep(attrs map[string]Projector) Step {
	return Step{Attrs: attrs, Animator: animate.Instant{}, Progress: 1}
}

func constant(v any) Projector {
	return func(d dataset.Datum, i int) any { return v }
}

func field(name string) Projector {
	return func(d dataset.Datum, i int) any { return d[name] }
}

func baseAttrs() map[string]Projector {
	return map[string]Projector{
		AttrX:      field("x"),
		AttrY:      constant(float32(0)),
		AttrWidth:  constant(float32(10)),
		AttrHeight: constant(float32(10)),
		AttrFill:   constant("red"),
	}
}

func TestRectRetainedBinding(t *testing.T) {
	ds := dataset.New(dataset.Datum{"x": 0.0}, dataset.Datum{"x": 20.0})
	group := render.NewElement("g")
	rd := NewRect(ds)
	rd.AnchorSVG(group)

	rd.Draw(rectStep(baseAttrs()))
	require.Len(t, group.Children(), 2)
	first := group.Children()[0]
	assert.Equal(t, "rect", first.Tag)
	assert.Equal(t, "0", first.Attr("x"))
	assert.Equal(t, "#ff0000", first.Attr("fill"))
	assert.Equal(t, "none", first.Attr("stroke"))

	// Shrinking the data removes stale elements; growing adds.
	ds.SetData(dataset.Datum{"x": 5.0})
	rd.Draw(rectStep(baseAttrs()))
	assert.Len(t, group.Children(), 1)
	assert.Same(t, first, group.Children()[0])

	ds.SetData(dataset.Datum{"x": 1.0}, dataset.Datum{"x": 2.0}, dataset.Datum{"x": 3.0})
	rd.Draw(rectStep(baseAttrs()))
	assert.Len(t, group.Children(), 3)
}

func TestRectUnresolvableDatumHidden(t *testing.T) {
	ds := dataset.New(dataset.Datum{"x": 0.0}, dataset.Datum{"nope": 1.0})
	group := render.NewElement("g")
	rd := NewRect(ds)
	rd.AnchorSVG(group)
	rd.Draw(rectStep(baseAttrs()))

	require.Len(t, group.Children(), 2)
	assert.Equal(t, "", group.Children()[0].Attr("display"))
	assert.Equal(t, "none", group.Children()[1].Attr("display"))
}

func TestRectStrokeAndFillIndependent(t *testing.T) {
	ds := dataset.New(dataset.Datum{"x": 0.0})
	group := render.NewElement("g")
	rd := NewRect(ds)
	rd.AnchorSVG(group)

	attrs := baseAttrs()
	delete(attrs, AttrFill)
	attrs[AttrStroke] = constant("blue")
	attrs[AttrStrokeWidth] = constant(float32(2))
	rd.Draw(rectStep(attrs))

	el := group.Children()[0]
	assert.Equal(t, "none", el.Attr("fill"))
	assert.Equal(t, "#0000ff", el.Attr("stroke"))
	assert.Equal(t, "2", el.Attr("stroke-width"))
}

func TestRectColorValuesAccepted(t *testing.T) {
	ds := dataset.New(dataset.Datum{"x": 0.0})
	group := render.NewElement("g")
	rd := NewRect(ds)
	rd.AnchorSVG(group)

	attrs := baseAttrs()
	attrs[AttrFill] = constant(color.RGBA{0, 128, 0, 255})
	rd.Draw(rectStep(attrs))
	assert.Equal(t, "#008000", group.Children()[0].Attr("fill"))
}

func TestRectOpacityFactorsFill(t *testing.T) {
	ds := dataset.New(dataset.Datum{"x": 0.0})
	group := render.NewElement("g")
	rd := NewRect(ds)
	rd.AnchorSVG(group)

	attrs := baseAttrs()
	attrs[AttrOpacity] = constant(float32(0.5))
	rd.Draw(rectStep(attrs))
	fill := group.Children()[0].Attr("fill")
	assert.Len(t, fill, 9, "translucent fill carries alpha: %s", fill)
}

func TestRectRemoveReleasesElements(t *testing.T) {
	ds := dataset.New(dataset.Datum{"x": 0.0})
	group := render.NewElement("g")
	rd := NewRect(ds)
	rd.AnchorSVG(group)
	rd.Draw(rectStep(baseAttrs()))
	require.Len(t, group.Children(), 1)

	rd.Remove()
	assert.Empty(t, group.Children())
}

func TestRectImmediateFillsPixels(t *testing.T) {
	cv := render.NewCanvas(40, 40)
	ds := dataset.New(dataset.Datum{"x": 10.0})
	rd := NewRect(ds)
	rd.AnchorCanvas(cv)

	attrs := baseAttrs()
	attrs[AttrY] = constant(float32(10))
	rd.Draw(rectStep(attrs))

	inside := cv.Image().RGBAAt(15, 15)
	assert.Equal(t, uint8(255), inside.R)
	assert.Equal(t, uint8(0), inside.G)
	outside := cv.Image().RGBAAt(35, 35)
	assert.Equal(t, uint8(0), outside.A)
}

func TestLineDrawerPath(t *testing.T) {
	ds := dataset.New(
		dataset.Datum{"x": 0.0, "y": 0.0},
		dataset.Datum{"x": 10.0, "y": 5.0},
		dataset.Datum{"x": 20.0, "y": 2.0},
	)
	group := render.NewElement("g")
	ld := NewLine(ds)
	ld.AnchorSVG(group)

	ld.Draw(rectStep(map[string]Projector{
		AttrX:      field("x"),
		AttrY:      field("y"),
		AttrStroke: constant("black"),
	}))
	require.Len(t, group.Children(), 1)
	path := group.Children()[0]
	assert.Equal(t, "path", path.Tag)
	assert.Equal(t, "M 0 0L 10 5L 20 2", path.Attr("d"))
	assert.Equal(t, "none", path.Attr("fill"))
	assert.Equal(t, "#000000", path.Attr("stroke"))

	// Redraws mutate the one retained path.
	ld.Draw(rectStep(map[string]Projector{
		AttrX: field("x"),
		AttrY: constant(float32(1)),
	}))
	assert.Len(t, group.Children(), 1)
}
