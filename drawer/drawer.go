// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package drawer translates datasets plus attribute projections into
// primitive draw operations against a render surface. A drawer is
// bound to one dataset and one target; each render pass hands it a
// fresh [Step] (projectors are never reused across projection changes).
package drawer

import (
	"image/color"

	"github.com/plotkit/plotkit/animate"
	"github.com/plotkit/plotkit/base/logx"
	"github.com/plotkit/plotkit/colors"
	"github.com/plotkit/plotkit/dataset"
)

// Visual attribute names resolved by drawers.
const (
	AttrX           = "x"
	AttrY           = "y"
	AttrWidth       = "width"
	AttrHeight      = "height"
	AttrFill        = "fill"
	AttrStroke      = "stroke"
	AttrStrokeWidth = "stroke-width"
	AttrOpacity     = "opacity"
)

// Projector resolves a visual attribute value from a datum and its
// index within the dataset.
type Projector func(d dataset.Datum, i int) any

// Step is the bundle handed to a drawer for one render pass: the
// current attribute projectors and an animator strategy. Steps are
// rebuilt by plots on every render so that reassigned projections can
// never leak stale values into a draw.
type Step struct {
	// Attrs maps attribute names to their projectors.
	Attrs map[string]Projector

	// Animator eases the pass's progress. In the synchronous core the
	// eased progress acts as an entry opacity factor; scheduling of
	// intermediate progress values is external.
	Animator animate.Animator

	// Progress is the raw animation progress for this pass, in [0, 1].
	// Plots set it to 1 for ordinary renders.
	Progress float32
}

// alpha returns the animator-eased opacity factor for the step.
func (st Step) alpha() float32 {
	an := st.Animator
	if an == nil {
		return 1
	}
	return an.Ease(st.Progress)
}

// Drawer renders one dataset's marks. Draw issues operations in data
// order; Remove releases any retained elements.
type Drawer interface {
	Draw(st Step)
	Remove()
}

// resolveFloat resolves the named attribute to a float32.
func resolveFloat(st Step, name string, d dataset.Datum, i int) (float32, bool) {
	p, ok := st.Attrs[name]
	if !ok {
		return 0, false
	}
	switch v := p(d, i).(type) {
	case float32:
		return v, true
	case float64:
		return float32(v), true
	case int:
		return float32(v), true
	case nil:
		return 0, false
	default:
		logx.Debug("drawer: non-numeric attribute value", "attr", name, "index", i)
		return 0, false
	}
}

// resolveColor resolves the named attribute to a color. Color strings
// are parsed; parse failures skip the attribute with a debug log
// rather than aborting the render pass.
func resolveColor(st Step, name string, d dataset.Datum, i int) (color.RGBA, bool) {
	p, ok := st.Attrs[name]
	if !ok {
		return colors.Transparent, false
	}
	switch v := p(d, i).(type) {
	case nil:
		return colors.Transparent, false
	case string:
		c, err := colors.FromString(v)
		if err != nil {
			logx.Debug("drawer: unparseable color", "attr", name, "value", v, "index", i)
			return colors.Transparent, false
		}
		return c, true
	case color.Color:
		return colors.AsRGBA(v), true
	default:
		logx.Debug("drawer: unsupported color value", "attr", name, "index", i)
		return colors.Transparent, false
	}
}

// resolveOpacity resolves the opacity attribute combined with the
// step's animator easing, defaulting to the easing alone.
func resolveOpacity(st Step, d dataset.Datum, i int) float32 {
	op := st.alpha()
	if v, ok := resolveFloat(st, AttrOpacity, d, i); ok {
		op *= colors.Clamp01(v)
	}
	return op
}
