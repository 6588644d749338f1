// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package drawer

import (
	"strconv"

	"github.com/plotkit/plotkit/colors"
	"github.com/plotkit/plotkit/dataset"
	"github.com/plotkit/plotkit/math32"
	"github.com/plotkit/plotkit/render"
)

// Line draws one polyline through all data points in order. On a
// retained target it maintains a single <path> element; on an
// immediate target it strokes the polyline directly. Stroke attributes
// are resolved against the first datum, since a path has one paint.
type Line struct {
	ds *dataset.Dataset

	group  *render.Element
	canvas *render.Canvas
	path   *render.Element
}

// NewLine returns a [Line] drawer bound to the given dataset.
func NewLine(ds *dataset.Dataset) *Line {
	return &Line{ds: ds}
}

// AnchorSVG binds the drawer to a retained-mode group element.
func (ld *Line) AnchorSVG(group *render.Element) {
	ld.group = group
	ld.path = nil
}

// AnchorCanvas binds the drawer to an immediate-mode canvas.
func (ld *Line) AnchorCanvas(cv *render.Canvas) {
	ld.canvas = cv
}

// Draw implements [Drawer].
func (ld *Line) Draw(st Step) {
	data := ld.ds.Data()
	pts := make([]math32.Vector2, 0, len(data))
	for i, d := range data {
		x, okX := resolveFloat(st, AttrX, d, i)
		y, okY := resolveFloat(st, AttrY, d, i)
		if !okX || !okY || math32.IsNaN(x) || math32.IsNaN(y) {
			continue
		}
		pts = append(pts, math32.Vec2(x, y))
	}

	stroke := colors.Black
	op := float32(1)
	if len(data) > 0 {
		if c, ok := resolveColor(st, AttrStroke, data[0], 0); ok {
			stroke = c
		}
		op = resolveOpacity(st, data[0], 0)
	}
	sw := float32(1)
	if len(data) > 0 {
		if w, ok := resolveFloat(st, AttrStrokeWidth, data[0], 0); ok {
			sw = w
		}
	}
	paint := colors.WithAlphaFactor(stroke, op)

	if ld.group != nil {
		if ld.path == nil {
			ld.path = ld.group.NewChild("path")
		}
		ld.path.SetAttr("d", pathData(pts))
		ld.path.SetAttr("fill", "none")
		ld.path.SetAttr("stroke", colors.AsHex(paint))
		ld.path.SetFloatAttr("stroke-width", sw)
	}
	if ld.canvas != nil {
		ld.canvas.StrokePath(pts, paint, sw)
	}
}

// Remove implements [Drawer], releasing the retained path element.
func (ld *Line) Remove() {
	if ld.path != nil {
		ld.path.Remove()
		ld.path = nil
	}
}

// pathData builds SVG path data through the given points.
func pathData(pts []math32.Vector2) string {
	var path []byte
	for i, pt := range pts {
		if i == 0 {
			path = append(path, 'M')
		} else {
			path = append(path, 'L')
		}
		path = append(path, ' ')
		path = strconv.AppendFloat(path, float64(pt.X), 'g', 6, 32)
		path = append(path, ' ')
		path = strconv.AppendFloat(path, float64(pt.Y), 'g', 6, 32)
	}
	return string(path)
}
