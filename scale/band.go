// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import "math"

// Band is a categorical scale mapping an ordered set of string
// categories onto contiguous bands within a numeric range. Each
// category is allotted one band; [Band.Scale] returns band centers so
// that marks can bracket a category with center ± RangeBand()/2.
// The zero value is unusable; use [NewBand].
type Band struct {
	updaters

	domain             []string
	index              map[string]int
	rangeMin, rangeMax float32
	inner, outer       float32
}

// NewBand returns a new [Band] scale with the given domain, range
// [0, 1], and default inner and outer padding of 0.15.
func NewBand(domain ...string) *Band {
	bs := &Band{rangeMax: 1, inner: 0.15, outer: 0.15}
	bs.SetDomain(domain...)
	return bs
}

// Domain returns the category domain in order.
func (bs *Band) Domain() []string {
	return bs.domain
}

// SetDomain sets the category domain, in the given order, and notifies
// update subscribers.
func (bs *Band) SetDomain(domain ...string) {
	bs.domain = domain
	bs.index = make(map[string]int, len(domain))
	for i, d := range domain {
		bs.index[d] = i
	}
	bs.notify()
}

// Range returns the current range bounds.
func (bs *Band) Range() (min, max float32) {
	return bs.rangeMin, bs.rangeMax
}

// SetRange sets the range bounds and notifies update subscribers.
func (bs *Band) SetRange(min, max float32) {
	if min == bs.rangeMin && max == bs.rangeMax {
		return
	}
	bs.rangeMin, bs.rangeMax = min, max
	bs.notify()
}

// InnerPadding returns the inner padding: the fraction of each step
// left empty between adjacent bands.
func (bs *Band) InnerPadding() float32 {
	return bs.inner
}

// SetInnerPadding sets the inner padding fraction, clamped to [0, 1),
// and notifies update subscribers.
func (bs *Band) SetInnerPadding(p float32) {
	if p < 0 {
		p = 0
	}
	if p >= 1 {
		p = 0.999
	}
	bs.inner = p
	bs.notify()
}

// OuterPadding returns the outer padding: the empty space before the
// first band and after the last, in units of the step.
func (bs *Band) OuterPadding() float32 {
	return bs.outer
}

// SetOuterPadding sets the outer padding, clamped to be non-negative,
// and notifies update subscribers.
func (bs *Band) SetOuterPadding(p float32) {
	if p < 0 {
		p = 0
	}
	bs.outer = p
	bs.notify()
}

// step returns the distance between the starts of adjacent bands.
func (bs *Band) step() float32 {
	n := float32(len(bs.domain))
	denom := n - bs.inner + 2*bs.outer
	if denom <= 0 {
		return 0
	}
	return (bs.rangeMax - bs.rangeMin) / denom
}

// RangeBand returns the width allotted to one category band.
func (bs *Band) RangeBand() float32 {
	return bs.step() * (1 - bs.inner)
}

// Scale maps the given category to the center of its band.
// Categories not in the domain map to NaN.
func (bs *Band) Scale(cat string) float32 {
	i, ok := bs.index[cat]
	if !ok {
		return float32(math.NaN())
	}
	step := bs.step()
	start := bs.rangeMin + step*bs.outer + float32(i)*step
	return start + bs.RangeBand()/2
}

// Ticks returns the domain categories, one tick per band, in order.
func (bs *Band) Ticks() []string {
	return bs.domain
}
