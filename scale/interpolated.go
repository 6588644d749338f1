// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scale

import (
	"image/color"

	"github.com/plotkit/plotkit/colors"
)

// Interpolated maps a continuous numeric domain onto a color ramp,
// blending adjacent ramp stops in the CIE L*a*b* space. It is used by
// plots to resolve per-datum fill colors.
// The zero value is unusable; use [NewInterpolated].
type Interpolated struct {
	updaters

	domainLo, domainHi float64
	ramp               []color.RGBA
}

// NewInterpolated returns a new [Interpolated] scale over domain
// [0, 1] with the given ramp stops. Fewer than two stops fall back to
// a white-to-black ramp.
func NewInterpolated(ramp ...color.RGBA) *Interpolated {
	if len(ramp) < 2 {
		ramp = []color.RGBA{colors.White, colors.Black}
	}
	return &Interpolated{domainHi: 1, ramp: ramp}
}

// Domain returns the current domain bounds.
func (is *Interpolated) Domain() (lo, hi float64) {
	return is.domainLo, is.domainHi
}

// SetDomain sets the domain bounds and notifies update subscribers.
func (is *Interpolated) SetDomain(lo, hi float64) {
	is.domainLo, is.domainHi = lo, hi
	is.notify()
}

// Color maps the given domain value to its ramp color. Values outside
// the domain clamp to the ramp ends.
func (is *Interpolated) Color(v float64) color.RGBA {
	d := is.domainHi - is.domainLo
	if d == 0 {
		return is.ramp[0]
	}
	t := (v - is.domainLo) / d
	if t <= 0 {
		return is.ramp[0]
	}
	if t >= 1 {
		return is.ramp[len(is.ramp)-1]
	}
	seg := t * float64(len(is.ramp)-1)
	i := int(seg)
	frac := seg - float64(i)
	return colors.BlendLab(is.ramp[i], is.ramp[i+1], float32(frac))
}
