// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plotkit/plotkit/math32"
	"github.com/plotkit/plotkit/render"
)

// leaf is a minimal renderable component for lifecycle tests.
type leaf struct {
	ComponentBase
	renders int
}

func newLeaf() *leaf {
	lf := &leaf{}
	lf.Init(lf)
	lf.class = "leaf"
	return lf
}

func (lf *leaf) RenderImmediately() {
	lf.renders++
}

func TestAnchorIdempotent(t *testing.T) {
	sv := render.NewSVG(100, 100)
	lf := newLeaf()
	lf.Anchor(sv)
	assert.True(t, lf.Anchored())
	g := lf.Group()
	assert.NotNil(t, g)
	lf.Anchor(sv)
	assert.Same(t, g, lf.Group())
	assert.Equal(t, 1, len(sv.Root.Children()))
}

func TestAnchorAfterDestroyIsNoOp(t *testing.T) {
	sv := render.NewSVG(100, 100)
	lf := newLeaf()
	lf.Destroy()
	lf.Anchor(sv)
	assert.False(t, lf.Anchored())
	assert.True(t, lf.Destroyed())
}

func TestRenderRequiresAnchor(t *testing.T) {
	lf := newLeaf()
	lf.Render()
	assert.Equal(t, 0, lf.renders)

	lf.Anchor(render.NewSVG(100, 100))
	lf.Render()
	assert.Equal(t, 1, lf.renders)
}

func TestDetachNotifiesOnce(t *testing.T) {
	sv := render.NewSVG(100, 100)
	lf := newLeaf()
	calls := 0
	lf.OnDetach(func(c Component) {
		calls++
		assert.Same(t, lf, c)
	})
	lf.Anchor(sv)
	lf.Detach()
	lf.Detach()
	assert.Equal(t, 1, calls)
	assert.False(t, lf.Anchored())
}

func TestOffDetach(t *testing.T) {
	lf := newLeaf()
	calls := 0
	id := lf.OnDetach(func(c Component) { calls++ })
	lf.OffDetach(id)
	lf.Anchor(render.NewSVG(100, 100))
	lf.Detach()
	assert.Equal(t, 0, calls)
}

func TestLifecycleDestroyFiresDetachOncePerChild(t *testing.T) {
	sv := render.NewSVG(200, 200)
	children := []*leaf{newLeaf(), newLeaf(), newLeaf()}
	detaches := map[Component]int{}

	g := NewGroup()
	for _, c := range children {
		c.OnDetach(func(d Component) { detaches[d]++ })
		g.Append(c)
	}
	g.Anchor(sv)
	for _, c := range children {
		assert.True(t, c.Anchored())
	}
	g.Render()
	g.Destroy()

	assert.True(t, g.Destroyed())
	for _, c := range children {
		assert.True(t, c.Destroyed())
		assert.False(t, c.Anchored())
		assert.LessOrEqual(t, detaches[Component(c)], 1)
	}
	g.Destroy() // terminal: repeat is a no-op
}

func TestRemoveThenHas(t *testing.T) {
	g := NewGroup()
	a, b := newLeaf(), newLeaf()
	g.Append(a).Append(b)
	assert.True(t, g.Has(a))

	g.Remove(a)
	assert.False(t, g.Has(a))
	assert.True(t, g.Has(b))
	assert.Nil(t, a.Parent())
}

func TestRemoveNonMemberIsNoOp(t *testing.T) {
	sv := render.NewSVG(100, 100)
	g := NewGroup()
	a := newLeaf()
	g.Append(a)
	g.Anchor(sv)
	before := sv.String()

	g.Remove(newLeaf())
	assert.Equal(t, 1, g.Len())
	assert.True(t, g.Has(a))
	assert.Equal(t, before, sv.String())
}

func TestChildDetachAutoRemovesFromContainer(t *testing.T) {
	sv := render.NewSVG(100, 100)
	g := NewGroup()
	a := newLeaf()
	g.Append(a)
	g.Anchor(sv)

	a.Detach()
	assert.False(t, g.Has(a))
	assert.Nil(t, a.Parent())
}

func TestAppendStealsFromPreviousOwner(t *testing.T) {
	g1, g2 := NewGroup(), NewGroup()
	a := newLeaf()
	g1.Append(a)
	g2.Append(a)
	assert.False(t, g1.Has(a))
	assert.True(t, g2.Has(a))
	assert.Same(t, Container(g2), a.Parent())
}

func TestGroupLayoutGivesChildrenFullBox(t *testing.T) {
	g := NewGroup()
	a := newLeaf()
	g.Append(a)
	g.ComputeLayout(math32.Vec2(10, 20), 300, 200)
	assert.Equal(t, math32.Vec2(300, 200), a.Size())
	assert.Equal(t, math32.Vec2(10, 20), a.AbsoluteOrigin())
}

func TestNamedGroupAddReplace(t *testing.T) {
	ng := NewNamedGroup()
	a, b := newLeaf(), newLeaf()
	ng.Add("plot", a)
	ng.Add("plot", b)
	assert.Equal(t, 1, ng.Len())
	assert.False(t, ng.Has(a))
	assert.Same(t, Component(b), ng.ByName("plot"))
	assert.Nil(t, a.Parent())

	ng.RemoveByName("plot")
	assert.Equal(t, 0, ng.Len())
	assert.Nil(t, ng.ByName("plot"))
}

func TestInvalidateCachePropagates(t *testing.T) {
	g := NewGroup()
	ax := NewNumericAxis(newTestLinear(0, 100), Left)
	g.Append(ax)
	g.Anchor(render.NewSVG(100, 100))

	ax.Measurer().Measure("42")
	n := ax.Measurer().ShapeCalls()
	g.InvalidateCache()
	ax.Measurer().Measure("42")
	assert.Greater(t, ax.Measurer().ShapeCalls(), n)
	assert.True(t, ax.Anchored())
}
