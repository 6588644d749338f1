// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render provides the drawing surfaces that component trees
// anchor to: [SVG], a retained-mode element tree, and [Canvas], an
// immediate-mode raster painter. Redraw coalescing is external: a
// surface only carries a redraw-request hook.
package render

import "github.com/plotkit/plotkit/math32"

// Surface is a drawing target a component tree can anchor to.
// Concrete surfaces are [*SVG] and [*Canvas].
type Surface interface {

	// Bounds returns the drawable area of the surface.
	Bounds() math32.Box2

	// RequestRedraw signals that the surface's content is stale.
	// It invokes the redraw handler and reports whether one was
	// installed; callers render immediately when it reports false.
	RequestRedraw() bool

	// SetRedrawHandler installs the redraw-request handler, normally
	// a batching scheduler owned by the surrounding application.
	SetRedrawHandler(fn func())
}

// redrawHook is the shared redraw-request plumbing embedded by surfaces.
type redrawHook struct {
	onRedraw func()
}

func (rh *redrawHook) SetRedrawHandler(fn func()) {
	rh.onRedraw = fn
}

func (rh *redrawHook) RequestRedraw() bool {
	if rh.onRedraw == nil {
		return false
	}
	rh.onRedraw()
	return true
}
