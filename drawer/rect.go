// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drawer

import (
	"github.com/plotkit/plotkit/colors"
	"github.com/plotkit/plotkit/dataset"
	"github.com/plotkit/plotkit/math32"
	"github.com/plotkit/plotkit/render"
)

// Rect draws one axis-aligned rectangle per datum. On a retained
// target it maintains one <rect> element per datum, keyed by data
// index (new elements appended, stale ones removed); on an immediate
// target it issues fill and stroke calls. Draw order always equals
// data order, and a datum's stroke and fill are independent
// operations: either, both, or neither may apply.
type Rect struct {
	ds *dataset.Dataset

	group  *render.Element
	canvas *render.Canvas
	elems  []*render.Element
}

// NewRect returns a [Rect] drawer bound to the given dataset.
func NewRect(ds *dataset.Dataset) *Rect {
	return &Rect{ds: ds}
}

// AnchorSVG binds the drawer to a retained-mode group element.
func (rd *Rect) AnchorSVG(group *render.Element) {
	rd.group = group
	rd.elems = nil
}

// AnchorCanvas binds the drawer to an immediate-mode canvas.
func (rd *Rect) AnchorCanvas(cv *render.Canvas) {
	rd.canvas = cv
}

// Draw implements [Drawer].
func (rd *Rect) Draw(st Step) {
	data := rd.ds.Data()
	if rd.group != nil {
		rd.drawRetained(st, data)
	}
	if rd.canvas != nil {
		rd.drawImmediate(st, data)
	}
}

// Remove implements [Drawer], releasing retained elements.
func (rd *Rect) Remove() {
	for _, el := range rd.elems {
		el.Remove()
	}
	rd.elems = nil
}

// rectBox resolves the positional attributes for one datum.
func rectBox(st Step, d dataset.Datum, i int) (math32.Box2, bool) {
	x, okX := resolveFloat(st, AttrX, d, i)
	y, okY := resolveFloat(st, AttrY, d, i)
	w, okW := resolveFloat(st, AttrWidth, d, i)
	h, okH := resolveFloat(st, AttrHeight, d, i)
	if !okX || !okY || !okW || !okH {
		return math32.Box2{}, false
	}
	if math32.IsNaN(x) || math32.IsNaN(y) || math32.IsNaN(w) || math32.IsNaN(h) {
		return math32.Box2{}, false
	}
	return math32.B2(x, y, x+w, y+h), true
}

func (rd *Rect) drawRetained(st Step, data []dataset.Datum) {
	// Bind one element per datum: create missing, remove stale.
	for len(rd.elems) < len(data) {
		rd.elems = append(rd.elems, rd.group.NewChild("rect"))
	}
	for len(rd.elems) > len(data) {
		last := rd.elems[len(rd.elems)-1]
		last.Remove()
		rd.elems = rd.elems[:len(rd.elems)-1]
	}
	for i, d := range data {
		el := rd.elems[i]
		b, ok := rectBox(st, d, i)
		if !ok {
			el.SetAttr("display", "none")
			continue
		}
		el.SetAttr("display", "")
		el.SetFloatAttr("x", b.Min.X)
		el.SetFloatAttr("y", b.Min.Y)
		el.SetFloatAttr("width", b.Size().X)
		el.SetFloatAttr("height", b.Size().Y)

		op := resolveOpacity(st, d, i)
		if fill, ok := resolveColor(st, AttrFill, d, i); ok {
			el.SetAttr("fill", colors.AsHex(colors.WithAlphaFactor(fill, op)))
		} else {
			el.SetAttr("fill", "none")
		}
		if stroke, ok := resolveColor(st, AttrStroke, d, i); ok {
			el.SetAttr("stroke", colors.AsHex(colors.WithAlphaFactor(stroke, op)))
			sw, okW := resolveFloat(st, AttrStrokeWidth, d, i)
			if !okW {
				sw = 1
			}
			el.SetFloatAttr("stroke-width", sw)
		} else {
			el.SetAttr("stroke", "none")
		}
	}
}

func (rd *Rect) drawImmediate(st Step, data []dataset.Datum) {
	for i, d := range data {
		b, ok := rectBox(st, d, i)
		if !ok {
			continue
		}
		op := resolveOpacity(st, d, i)
		if fill, ok := resolveColor(st, AttrFill, d, i); ok {
			rd.canvas.FillRect(b, colors.WithAlphaFactor(fill, op))
		}
		if stroke, ok := resolveColor(st, AttrStroke, d, i); ok {
			sw, okW := resolveFloat(st, AttrStrokeWidth, d, i)
			if !okW {
				sw = 1
			}
			rd.canvas.StrokeRect(b, colors.WithAlphaFactor(stroke, op), sw)
		}
	}
}
