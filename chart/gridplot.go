// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"github.com/plotkit/plotkit/animate"
	"github.com/plotkit/plotkit/base/logx"
	"github.com/plotkit/plotkit/dataset"
	"github.com/plotkit/plotkit/drawer"
	"github.com/plotkit/plotkit/scale"
)

// GridPlot renders one rectangular cell per datum, the building block
// for heatmaps and calendar charts. It holds at most one dataset.
// Binding x or y to a [scale.Band] derives the cell edges from the
// band allotted to the category; binding to a quantitative scale
// positions the leading edge only, leaving the extent to an explicit
// width or height binding.
type GridPlot struct {
	Plot
}

// NewGridPlot returns an empty [GridPlot] with an instant animator.
func NewGridPlot() *GridPlot {
	gp := &GridPlot{}
	gp.Init(gp)
	gp.class = "grid-plot"
	gp.animator = animate.Instant{}
	gp.makeDrawer = func(ds *dataset.Dataset) drawerTarget {
		return drawer.NewRect(ds)
	}
	return gp
}

// AddDataset adds the plot's dataset. A grid plot supports a single
// dataset: adding another is rejected with a warning, leaving the
// stored dataset and all other state unchanged.
func (gp *GridPlot) AddDataset(ds *dataset.Dataset) *GridPlot {
	if len(gp.datasets) >= 1 {
		logx.Warn("chart: grid plot supports a single dataset; ignoring AddDataset")
		return gp
	}
	gp.addDataset(ds)
	return gp
}

// RemoveDataset removes the plot's dataset. Removing a dataset the
// plot does not hold is a no-op.
func (gp *GridPlot) RemoveDataset(ds *dataset.Dataset) *GridPlot {
	gp.removeDataset(ds)
	return gp
}

// BindX binds the horizontal position to the given accessor and
// scale. A [scale.Band] derives both cell edges, scale(v) ± band/2;
// a [scale.Quantitative] gives the leading edge only.
func (gp *GridPlot) BindX(acc Accessor, s any) *GridPlot {
	gp.bindSpan(acc, s, "x1", "x2")
	return gp
}

// BindY is [GridPlot.BindX] for the vertical position.
func (gp *GridPlot) BindY(acc Accessor, s any) *GridPlot {
	gp.bindSpan(acc, s, "y1", "y2")
	return gp
}

func (gp *GridPlot) bindSpan(acc Accessor, s any, lo, hi string) {
	switch sc := s.(type) {
	case *scale.Band:
		gp.bind(lo, Projection{Accessor: bandEdge(acc, sc, -1), Scale: sc, scaled: true})
		gp.bind(hi, Projection{Accessor: bandEdge(acc, sc, +1), Scale: sc, scaled: true})
	default:
		gp.bind(lo, Projection{Accessor: acc, Scale: s})
		gp.unbind(hi)
	}
}

// bandEdge derives a cell edge accessor from a categorical position:
// the band center shifted by half the range band in the given
// direction.
func bandEdge(acc Accessor, sc *scale.Band, dir float32) Accessor {
	return func(d dataset.Datum, i int) any {
		center := sc.Scale(asString(acc(d, i)))
		return center + dir*sc.RangeBand()/2
	}
}

// BindFill binds the cell fill color to the given accessor through a
// color scale. A nil scale uses accessor values directly (color
// values or parseable color strings).
func (gp *GridPlot) BindFill(acc Accessor, s *scale.Interpolated) *GridPlot {
	if s == nil {
		gp.bind(drawer.AttrFill, Projection{Accessor: acc})
	} else {
		gp.bind(drawer.AttrFill, Projection{Accessor: acc, Scale: s})
	}
	return gp
}

// BindWidth binds the cell width, for quantitative x bindings where
// no band exists to derive it from.
func (gp *GridPlot) BindWidth(acc Accessor) *GridPlot {
	gp.bind(drawer.AttrWidth, Projection{Accessor: acc})
	return gp
}

// BindHeight is [GridPlot.BindWidth] for the cell height.
func (gp *GridPlot) BindHeight(acc Accessor) *GridPlot {
	gp.bind(drawer.AttrHeight, Projection{Accessor: acc})
	return gp
}
