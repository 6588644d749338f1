// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"github.com/plotkit/plotkit/animate"
	"github.com/plotkit/plotkit/dataset"
	"github.com/plotkit/plotkit/drawer"
	"github.com/plotkit/plotkit/scale"
)

// LinePlot connects its data points with a single stroked path, in
// data order. Unlike [GridPlot] it accepts any number of datasets,
// one path per dataset.
type LinePlot struct {
	Plot
}

// NewLinePlot returns an empty [LinePlot].
func NewLinePlot() *LinePlot {
	lp := &LinePlot{}
	lp.Init(lp)
	lp.class = "line-plot"
	lp.animator = animate.Instant{}
	lp.makeDrawer = func(ds *dataset.Dataset) drawerTarget {
		return drawer.NewLine(ds)
	}
	return lp
}

// AddDataset adds a dataset, drawn as its own path.
func (lp *LinePlot) AddDataset(ds *dataset.Dataset) *LinePlot {
	lp.addDataset(ds)
	return lp
}

// RemoveDataset removes the given dataset and its path. Removing a
// dataset the plot does not hold is a no-op.
func (lp *LinePlot) RemoveDataset(ds *dataset.Dataset) *LinePlot {
	lp.removeDataset(ds)
	return lp
}

// BindX binds the horizontal position through a quantitative scale,
// or uses raw values when s is nil.
func (lp *LinePlot) BindX(acc Accessor, s scale.Quantitative) *LinePlot {
	if s == nil {
		lp.bind(drawer.AttrX, Projection{Accessor: acc})
	} else {
		lp.bind(drawer.AttrX, Projection{Accessor: acc, Scale: s})
	}
	return lp
}

// BindY is [LinePlot.BindX] for the vertical position.
func (lp *LinePlot) BindY(acc Accessor, s scale.Quantitative) *LinePlot {
	if s == nil {
		lp.bind(drawer.AttrY, Projection{Accessor: acc})
	} else {
		lp.bind(drawer.AttrY, Projection{Accessor: acc, Scale: s})
	}
	return lp
}

// BindStroke binds the path stroke color.
func (lp *LinePlot) BindStroke(acc Accessor) *LinePlot {
	lp.bind(drawer.AttrStroke, Projection{Accessor: acc})
	return lp
}

// BindStrokeWidth binds the path stroke width.
func (lp *LinePlot) BindStrokeWidth(acc Accessor) *LinePlot {
	lp.bind(drawer.AttrStrokeWidth, Projection{Accessor: acc})
	return lp
}
