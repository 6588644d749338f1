// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package animate provides the animator strategies bundled into draw
// steps. The core render model is synchronous, so an animator only
// maps a raw progress fraction to an eased one; frame scheduling
// belongs to the surrounding application.
package animate

import "github.com/tanema/gween/ease"

// Animator maps raw animation progress to eased progress.
type Animator interface {

	// Ease returns the eased progress for raw progress t in [0, 1].
	// A render pass that is not animating passes t = 1.
	Ease(t float32) float32
}

// Instant is the default animator: marks appear at their final
// attributes immediately.
type Instant struct{}

// Ease implements [Animator]. It always returns 1.
func (Instant) Ease(float32) float32 { return 1 }

// Eased eases progress with the given easing function
// (e.g. [ease.Linear], [ease.OutQuad]).
type Eased struct {
	Fn ease.TweenFunc
}

// NewEased returns an [Eased] animator with the given easing function,
// defaulting to [ease.Linear] when nil.
func NewEased(fn ease.TweenFunc) Eased {
	if fn == nil {
		fn = ease.Linear
	}
	return Eased{Fn: fn}
}

// Ease implements [Animator].
func (e Eased) Ease(t float32) float32 {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return e.Fn(t, 0, 1, 1)
}
