// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"

	"github.com/plotkit/plotkit/animate"
	"github.com/plotkit/plotkit/dataset"
	"github.com/plotkit/plotkit/drawer"
	"github.com/plotkit/plotkit/math32"
	"github.com/plotkit/plotkit/render"
	"github.com/plotkit/plotkit/scale"
)

// Accessor extracts a raw value from a datum for projection onto a
// visual attribute.
type Accessor func(d dataset.Datum, i int) any

// Field returns an [Accessor] reading the named dataset field.
func Field(name string) Accessor {
	return func(d dataset.Datum, i int) any {
		return d[name]
	}
}

// Constant returns an [Accessor] yielding the same value for every
// datum.
func Constant(v any) Accessor {
	return func(d dataset.Datum, i int) any {
		return v
	}
}

// Projection binds a visual attribute to data through an accessor and
// an optional scale. Scale may be nil (raw values), a
// [scale.Quantitative], a [scale.Band], or a [scale.Interpolated].
type Projection struct {
	Accessor Accessor
	Scale    any

	// scaled marks the accessor as already producing range-space
	// values; Scale is then only watched for updates and pinned
	// during layout, not applied again.
	scaled bool
}

// projector compiles the projection into the attribute resolver handed
// to drawers for one render pass.
func (pr Projection) projector() drawer.Projector {
	acc := pr.Accessor
	if pr.scaled {
		return drawer.Projector(acc)
	}
	switch sc := pr.Scale.(type) {
	case nil:
		return drawer.Projector(acc)
	case *scale.Interpolated:
		return func(d dataset.Datum, i int) any {
			f, ok := asFloat64(acc(d, i))
			if !ok {
				return nil
			}
			return sc.Color(f)
		}
	case *scale.Band:
		return func(d dataset.Datum, i int) any {
			return sc.Scale(asString(acc(d, i)))
		}
	case scale.Quantitative:
		return func(d dataset.Datum, i int) any {
			f, ok := asFloat64(acc(d, i))
			if !ok {
				return nil
			}
			return sc.Scale(f)
		}
	default:
		return func(d dataset.Datum, i int) any {
			return nil
		}
	}
}

// updatable is the update-subscription surface shared by all scales.
type updatable interface {
	OnUpdate(fn func()) int
	OffUpdate(id int)
}

// drawerTarget is a drawer that can bind to either surface kind.
type drawerTarget interface {
	drawer.Drawer
	AnchorSVG(group *render.Element)
	AnchorCanvas(cv *render.Canvas)
}

// Plot is the base for data-bearing components. It owns datasets and
// their drawers, holds the attribute projections, and turns them into
// a fresh draw [drawer.Step] on every render pass. Concrete plots
// embed it and supply the drawer constructor and binding API.
type Plot struct {
	ComponentBase

	datasets    []*dataset.Dataset
	dataSubs    map[*dataset.Dataset]int
	drawers     map[*dataset.Dataset]drawerTarget
	projections map[string]Projection
	animator    animate.Animator
	renderArea  *render.Element

	// scaleOffs holds the scale-watch unsubscriber per bound
	// attribute, so rebinding replaces the subscription rather than
	// stacking a second one.
	scaleOffs map[string]func()

	// makeDrawer constructs the drawer for a newly added dataset;
	// concrete plots set it.
	makeDrawer func(ds *dataset.Dataset) drawerTarget
}

// Datasets returns the plot's datasets in addition order.
func (p *Plot) Datasets() []*dataset.Dataset {
	return p.datasets
}

// Animator returns the plot's entry animator.
func (p *Plot) Animator() animate.Animator {
	return p.animator
}

// SetAnimator sets the animator applied to draw steps.
func (p *Plot) SetAnimator(a animate.Animator) {
	p.animator = a
}

// addDataset wires a dataset into the plot: a drawer is created and
// anchored, and dataset updates trigger a redraw.
func (p *Plot) addDataset(ds *dataset.Dataset) {
	p.datasets = append(p.datasets, ds)
	if p.dataSubs == nil {
		p.dataSubs = map[*dataset.Dataset]int{}
		p.drawers = map[*dataset.Dataset]drawerTarget{}
	}
	p.dataSubs[ds] = ds.OnUpdate(p.Redraw)
	dr := p.makeDrawer(ds)
	p.drawers[ds] = dr
	p.anchorDrawer(dr)
	p.Redraw()
}

// removeDataset unwires a dataset, releasing its drawer.
func (p *Plot) removeDataset(ds *dataset.Dataset) bool {
	for i, have := range p.datasets {
		if have == ds {
			p.datasets = append(p.datasets[:i], p.datasets[i+1:]...)
			ds.OffUpdate(p.dataSubs[ds])
			delete(p.dataSubs, ds)
			p.drawers[ds].Remove()
			delete(p.drawers, ds)
			p.Redraw()
			return true
		}
	}
	return false
}

// bind stores a projection for the named visual attribute, subscribes
// to its scale, and triggers a redraw. Rebinding an attribute replaces
// the projection and its scale subscription; stale projectors cannot
// leak because steps are rebuilt per pass.
func (p *Plot) bind(attr string, pr Projection) {
	if p.projections == nil {
		p.projections = map[string]Projection{}
		p.scaleOffs = map[string]func(){}
	}
	if off, ok := p.scaleOffs[attr]; ok {
		off()
		delete(p.scaleOffs, attr)
	}
	p.projections[attr] = pr
	if up, ok := pr.Scale.(updatable); ok {
		id := up.OnUpdate(p.Redraw)
		p.scaleOffs[attr] = func() { up.OffUpdate(id) }
	}
	p.Redraw()
}

// unbind drops the projection for the named attribute along with its
// scale subscription.
func (p *Plot) unbind(attr string) {
	if off, ok := p.scaleOffs[attr]; ok {
		off()
		delete(p.scaleOffs, attr)
	}
	delete(p.projections, attr)
}

// Bind binds the named visual attribute to the given accessor with no
// scale; the accessor's values are used as-is.
func (p *Plot) Bind(attr string, acc Accessor) *Plot {
	p.bind(attr, Projection{Accessor: acc})
	return p
}

// anchorDrawer binds a drawer to the plot's current surface.
func (p *Plot) anchorDrawer(dr drawerTarget) {
	if p.renderArea != nil {
		dr.AnchorSVG(p.renderArea)
	}
	if cv, ok := p.surface.(*render.Canvas); ok {
		dr.AnchorCanvas(cv)
	}
}

// Anchor implements [Component], additionally anchoring the plot's
// drawers to the surface (a render-area subgroup on retained-mode
// surfaces).
func (p *Plot) Anchor(s render.Surface) {
	if p.destroyed {
		return
	}
	p.ComponentBase.Anchor(s)
	if p.group != nil && p.renderArea == nil {
		p.renderArea = p.group.NewChild("g").SetAttr("class", "render-area")
	}
	for _, ds := range p.datasets {
		p.anchorDrawer(p.drawers[ds])
	}
}

// ComputeLayout implements [Component], pinning positional scale
// ranges to the laid-out box: x scales map onto [0, width] and
// y scales onto [height, 0] so larger values draw higher.
func (p *Plot) ComputeLayout(origin math32.Vector2, availWidth, availHeight float32) {
	p.ComponentBase.ComputeLayout(origin, availWidth, availHeight)
	for attr, pr := range p.projections {
		min, max := float32(0), availWidth
		switch attr {
		case "x", "x1", "x2":
		case "y", "y1", "y2":
			min, max = availHeight, 0
		default:
			continue
		}
		switch sc := pr.Scale.(type) {
		case *scale.Band:
			sc.SetRange(min, max)
		case scale.Quantitative:
			sc.SetRange(min, max)
		}
	}
}

// RenderImmediately implements [Component], issuing one draw step per
// dataset, in dataset order. Steps are rebuilt from the current
// projections on every pass.
func (p *Plot) RenderImmediately() {
	attrs := p.stepAttrs()
	if _, ok := p.surface.(*render.Canvas); ok {
		offsetPositions(attrs, p.AbsoluteOrigin())
	}
	an := p.animator
	if an == nil {
		an = animate.Instant{}
	}
	for _, ds := range p.datasets {
		p.drawers[ds].Draw(drawer.Step{Attrs: attrs, Animator: an, Progress: 1})
	}
}

// stepAttrs compiles the projections into per-pass attribute
// resolvers, collapsing x1/x2 and y1/y2 span pairs into position and
// extent attributes.
func (p *Plot) stepAttrs() map[string]drawer.Projector {
	attrs := make(map[string]drawer.Projector, len(p.projections))
	for name, pr := range p.projections {
		attrs[name] = pr.projector()
	}
	combineSpan(attrs, "x1", "x2", drawer.AttrX, drawer.AttrWidth)
	combineSpan(attrs, "y1", "y2", drawer.AttrY, drawer.AttrHeight)
	return attrs
}

// combineSpan rewrites a lo/hi attribute pair into a position and a
// non-negative extent. A lone lo attribute becomes the position
// directly, leaving the extent to an explicit binding.
func combineSpan(attrs map[string]drawer.Projector, lo, hi, posAttr, sizeAttr string) {
	pl, okLo := attrs[lo]
	if !okLo {
		return
	}
	ph, okHi := attrs[hi]
	delete(attrs, lo)
	delete(attrs, hi)
	if !okHi {
		attrs[posAttr] = pl
		return
	}
	attrs[posAttr] = func(d dataset.Datum, i int) any {
		a, okA := asFloat32(pl(d, i))
		b, okB := asFloat32(ph(d, i))
		if !okA || !okB {
			return nil
		}
		return math32.Min(a, b)
	}
	attrs[sizeAttr] = func(d dataset.Datum, i int) any {
		a, okA := asFloat32(pl(d, i))
		b, okB := asFloat32(ph(d, i))
		if !okA || !okB {
			return nil
		}
		return math32.Abs(b - a)
	}
}

// offsetPositions shifts the position attributes by the given origin,
// for immediate-mode surfaces that have no transform stack.
func offsetPositions(attrs map[string]drawer.Projector, off math32.Vector2) {
	shift := func(attr string, delta float32) {
		pf, ok := attrs[attr]
		if !ok || delta == 0 {
			return
		}
		attrs[attr] = func(d dataset.Datum, i int) any {
			v, ok := asFloat32(pf(d, i))
			if !ok {
				return nil
			}
			return v + delta
		}
	}
	shift(drawer.AttrX, off.X)
	shift(drawer.AttrY, off.Y)
}

// Destroy implements [Component], releasing drawers and dropping all
// dataset and scale subscriptions.
func (p *Plot) Destroy() {
	if p.destroyed {
		return
	}
	for ds, id := range p.dataSubs {
		ds.OffUpdate(id)
	}
	p.dataSubs = nil
	for _, dr := range p.drawers {
		dr.Remove()
	}
	p.drawers = nil
	for _, off := range p.scaleOffs {
		off()
	}
	p.scaleOffs = nil
	p.ComponentBase.Destroy()
}

// asFloat64 converts a projected value to float64.
func asFloat64(v any) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	default:
		return 0, false
	}
}

// asFloat32 converts a projected value to float32.
func asFloat32(v any) (float32, bool) {
	switch x := v.(type) {
	case float32:
		return x, true
	case float64:
		return float32(x), true
	case int:
		return float32(x), true
	default:
		return 0, false
	}
}

// asString converts a projected value to a category string.
func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
