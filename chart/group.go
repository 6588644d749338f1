// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "github.com/plotkit/plotkit/math32"

// Group is a [Container] holding a flat, ordered list of children.
// All children share the group's full layout box, so a Group overlays
// its children in insertion order.
type Group struct {
	containerBase

	children []Component
}

// NewGroup returns a new empty [Group].
func NewGroup(children ...Component) *Group {
	g := &Group{}
	g.Init(g)
	g.class = "component-group"
	for _, c := range children {
		g.Append(c)
	}
	return g
}

// Append adds the given component as the last child of this group and
// triggers a redraw. Appending an existing child is a no-op; a child
// owned by another container is first removed from it.
func (g *Group) Append(c Component) *Group {
	if c == nil || g.Has(c) || g.destroyed {
		return g
	}
	g.adoptAndAnchor(c)
	g.children = append(g.children, c)
	g.Redraw()
	return g
}

// Len returns the number of children.
func (g *Group) Len() int {
	return len(g.children)
}

// Has implements [Container].
func (g *Group) Has(c Component) bool {
	for _, ch := range g.children {
		if ch == c {
			return true
		}
	}
	return false
}

// ForEachChild implements [Container], iterating in insertion order.
func (g *Group) ForEachChild(fn func(c Component)) {
	for _, c := range g.children {
		fn(c)
	}
}

func (g *Group) removeChild(c Component) bool {
	for i, ch := range g.children {
		if ch == c {
			g.children = append(g.children[:i], g.children[i+1:]...)
			return true
		}
	}
	return false
}

// ComputeLayout implements [Component], giving every child the
// group's full box.
func (g *Group) ComputeLayout(origin math32.Vector2, availWidth, availHeight float32) {
	g.ComponentBase.ComputeLayout(origin, availWidth, availHeight)
	for _, c := range g.children {
		c.ComputeLayout(math32.Vector2{}, availWidth, availHeight)
	}
}

// RequestedSpace implements [Component], requesting the maximum of
// the children's requests.
func (g *Group) RequestedSpace(availWidth, availHeight float32) SpaceRequest {
	req := SpaceRequest{}
	for _, c := range g.children {
		cr := c.RequestedSpace(availWidth, availHeight)
		req.MinWidth = math32.Max(req.MinWidth, cr.MinWidth)
		req.MinHeight = math32.Max(req.MinHeight, cr.MinHeight)
	}
	return req
}
