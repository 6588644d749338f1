// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scale provides the scales that map data domains to visual
// ranges: [Linear] for continuous data, [Band] for categorical data,
// and [Interpolated] for value-to-color mapping. Axes and plots
// subscribe to scale updates to re-layout when a domain changes.
package scale

// Quantitative is a continuous scale mapping a numeric domain onto a
// numeric range. It is the scale contract that numeric axes consume.
type Quantitative interface {

	// Domain returns the current domain bounds, in the order set.
	Domain() (lo, hi float64)

	// SetDomain sets the domain bounds and notifies update subscribers.
	SetDomain(lo, hi float64)

	// Range returns the current range bounds.
	Range() (min, max float32)

	// SetRange sets the range bounds and notifies update subscribers.
	SetRange(min, max float32)

	// Scale maps the given domain value to its range position.
	Scale(v float64) float32

	// Ticks returns a finite set of tick values. Each call regenerates
	// the set from the current domain, so the sequence is restartable.
	Ticks() []float64

	// OnUpdate subscribes the given callback to domain and range
	// changes, returning a handle for [Quantitative.OffUpdate].
	OnUpdate(fn func()) int

	// OffUpdate removes the subscription with the given handle.
	OffUpdate(id int)
}

// updaters is the shared update-callback registry embedded by scales.
// Subscriptions are identified by integer handles so that adding and
// removing are strictly symmetric.
type updaters struct {
	subs   map[int]func()
	nextID int
}

func (u *updaters) OnUpdate(fn func()) int {
	if u.subs == nil {
		u.subs = make(map[int]func())
	}
	id := u.nextID
	u.nextID++
	u.subs[id] = fn
	return id
}

func (u *updaters) OffUpdate(id int) {
	delete(u.subs, id)
}

func (u *updaters) notify() {
	for _, fn := range u.subs {
		fn()
	}
}
