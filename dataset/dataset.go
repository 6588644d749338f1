// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataset provides ordered data containers for plots.
// Insertion order is significant: drawers issue draw operations in
// data order, which determines visual stacking of overlapping marks.
package dataset

// Datum is one data point: a bag of named attribute values that
// projectors resolve into visual attributes.
type Datum map[string]any

// Dataset is an ordered sequence of data points with update
// notification, so that bound plots can re-render when data changes.
type Dataset struct {
	data []Datum

	// Metadata carries arbitrary per-dataset values (e.g. a series
	// name) that projectors may consult.
	Metadata map[string]any

	subs   map[int]func()
	nextID int
}

// New returns a new [Dataset] with the given data points, in order.
func New(data ...Datum) *Dataset {
	return &Dataset{data: data}
}

// Data returns the data points in order. The returned slice is the
// dataset's own; callers must not mutate it, and should use
// [Dataset.SetData] so bound plots are notified.
func (ds *Dataset) Data() []Datum {
	return ds.data
}

// Len returns the number of data points.
func (ds *Dataset) Len() int {
	return len(ds.data)
}

// SetData replaces the data points and notifies update subscribers.
func (ds *Dataset) SetData(data ...Datum) {
	ds.data = data
	for _, fn := range ds.subs {
		fn()
	}
}

// OnUpdate subscribes the given callback to data changes, returning a
// handle for [Dataset.OffUpdate].
func (ds *Dataset) OnUpdate(fn func()) int {
	if ds.subs == nil {
		ds.subs = make(map[int]func())
	}
	id := ds.nextID
	ds.nextID++
	ds.subs[id] = fn
	return id
}

// OffUpdate removes the subscription with the given handle.
func (ds *Dataset) OffUpdate(id int) {
	delete(ds.subs, id)
}
