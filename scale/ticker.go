// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"math"

	moremath "github.com/aclements/go-moremath/scale"
)

// Ticker generates tick values for a continuous domain.
type Ticker interface {

	// Ticks returns tick values for the ascending domain [lo, hi],
	// aiming for approximately n values. The result is in increasing
	// order and lies within [lo, hi].
	Ticks(lo, hi float64, n int) []float64
}

// NiceTicker generates ticks with the Talbot, Lin and Hanrahan
// optimization algorithm; see labelling.go. It is the default ticker.
type NiceTicker struct{}

// Ticks implements [Ticker].
func (NiceTicker) Ticks(lo, hi float64, n int) []float64 {
	if n < 2 {
		n = 2
	}
	if hi-lo < dlamchP*100 {
		return []float64{lo}
	}
	values, _, _, _ := talbotLinHanrahan(lo, hi, n, withinData, nil, nil, nil)
	return values
}

// StepTicker generates ticks at multiples of 1, 2, or 5 times a power
// of ten, using go-moremath's tick-level search to pick the largest
// step count that stays within the requested maximum.
type StepTicker struct{}

// stepMults are the per-decade step multiples, ordered by tick density
// within a decade from densest to sparsest.
var stepMults = [3]float64{1, 2, 5}

// stepSpacing returns the tick spacing for the given level, where each
// successive level widens the spacing by the next 1-2-5 multiple.
func stepSpacing(level int) float64 {
	mag := level / 3
	idx := level % 3
	if idx < 0 {
		idx += 3
		mag--
	}
	return stepMults[idx] * math.Pow(10, float64(mag))
}

// stepTicks adapts the 1-2-5 ladder over [lo, hi] to go-moremath's
// [moremath.Ticker] interface, so [moremath.TickOptions.FindLevel] can
// search it.
type stepTicks struct {
	lo, hi float64
}

// CountTicks implements [moremath.Ticker].
func (t stepTicks) CountTicks(level int) int {
	s := stepSpacing(level)
	c := int(math.Floor(t.hi/s)) - int(math.Ceil(t.lo/s)) + 1
	if c < 0 {
		return 0
	}
	return c
}

// TicksAtLevel implements [moremath.Ticker].
func (t stepTicks) TicksAtLevel(level int) interface{} {
	s := stepSpacing(level)
	first := math.Ceil(t.lo/s) * s
	var out []float64
	for v := first; v <= t.hi; v += s {
		out = append(out, v)
	}
	return out
}

// Ticks implements [Ticker].
func (StepTicker) Ticks(lo, hi float64, n int) []float64 {
	if n < 1 {
		n = 1
	}
	if hi-lo < dlamchP*100 {
		return []float64{lo}
	}
	st := stepTicks{lo: lo, hi: hi}
	opts := &moremath.TickOptions{Max: n}
	guess := 3 * int(math.Floor(math.Log10((hi-lo)/float64(n))))
	level, ok := opts.FindLevel(st, guess)
	if !ok {
		return []float64{lo, hi}
	}
	return st.TicksAtLevel(level).([]float64)
}
