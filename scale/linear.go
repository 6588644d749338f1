// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

// Linear is a continuous scale with a linear domain-to-range mapping.
// The zero value is unusable; use [NewLinear].
type Linear struct {
	updaters

	domainLo, domainHi float64
	rangeMin, rangeMax float32

	// Ticker generates the tick values; [NiceTicker] by default.
	Ticker Ticker

	// NTicks is the desired number of ticks; the ticker may return
	// slightly more or fewer. Defaults to 5.
	NTicks int
}

// NewLinear returns a new [Linear] scale with domain [0, 1],
// range [0, 1], and the default ticker.
func NewLinear() *Linear {
	return &Linear{
		domainHi: 1,
		rangeMax: 1,
		Ticker:   NiceTicker{},
		NTicks:   5,
	}
}

// Domain returns the current domain bounds, in the order set.
func (ls *Linear) Domain() (lo, hi float64) {
	return ls.domainLo, ls.domainHi
}

// SetDomain sets the domain bounds and notifies update subscribers.
// The bounds may be given in either order; a descending domain
// produces an inverted mapping.
func (ls *Linear) SetDomain(lo, hi float64) {
	if lo == ls.domainLo && hi == ls.domainHi {
		return
	}
	ls.domainLo, ls.domainHi = lo, hi
	ls.notify()
}

// Range returns the current range bounds.
func (ls *Linear) Range() (min, max float32) {
	return ls.rangeMin, ls.rangeMax
}

// SetRange sets the range bounds and notifies update subscribers.
func (ls *Linear) SetRange(min, max float32) {
	if min == ls.rangeMin && max == ls.rangeMax {
		return
	}
	ls.rangeMin, ls.rangeMax = min, max
	ls.notify()
}

// Scale maps the given domain value to its range position.
// A degenerate domain maps everything to the range minimum.
func (ls *Linear) Scale(v float64) float32 {
	d := ls.domainHi - ls.domainLo
	if d == 0 {
		return ls.rangeMin
	}
	t := (v - ls.domainLo) / d
	return ls.rangeMin + float32(t)*(ls.rangeMax-ls.rangeMin)
}

// Ticks returns tick values from the configured ticker over the current
// domain. The values are regenerated on every call and lie within the
// normalized domain interval.
func (ls *Linear) Ticks() []float64 {
	lo, hi := ls.domainLo, ls.domainHi
	if lo > hi {
		lo, hi = hi, lo
	}
	n := ls.NTicks
	if n <= 0 {
		n = 5
	}
	return ls.Ticker.Ticks(lo, hi, n)
}
