// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart provides the component tree at the heart of plotkit:
// the [Component] lifecycle (anchor, layout, render, detach, destroy),
// the [Group] and [NamedGroup] containers, numeric axes, and plots.
//
// A component is constructed detached, bound to a [render.Surface]
// with Anchor, laid out with ComputeLayout, and rendered any number of
// times. Detach removes the surface binding and notifies subscribers;
// Destroy is terminal. All operations are synchronous and
// single-threaded; redraw coalescing belongs to the surrounding
// application via the surface's redraw handler.
package chart

import (
	"github.com/plotkit/plotkit/math32"
	"github.com/plotkit/plotkit/render"
)

// Component is the interface all chart components implement. The
// shared lifecycle is implemented on [ComponentBase], which all
// concrete components embed.
type Component interface {

	// AsComponent returns the [ComponentBase] of this component,
	// giving access to the shared lifecycle state.
	AsComponent() *ComponentBase

	// Anchor binds this component to the given surface, enabling
	// rendering. Containers anchor their children recursively, in
	// container iteration order. Re-anchoring to the same surface is
	// a no-op, as is anchoring a destroyed component.
	Anchor(s render.Surface)

	// RequestedSpace returns the minimum space this component needs
	// within the given available area.
	RequestedSpace(availWidth, availHeight float32) SpaceRequest

	// ComputeLayout assigns this component's origin and size from the
	// given available area.
	ComputeLayout(origin math32.Vector2, availWidth, availHeight float32)

	// Render recomputes and issues this component's draw operations.
	// It may be called repeatedly; each call reflects the current
	// data, scale, and projection values. Unanchored components
	// ignore it.
	Render()

	// RenderImmediately performs the actual draw pass. It is called
	// by Render and by redraw flushes; components override it.
	RenderImmediately()

	// Detach removes the surface binding and notifies detach
	// subscribers. Detaching an already-detached component is a no-op.
	Detach()

	// Destroy is terminal: it detaches, releases resources, and, for
	// containers, recursively destroys every child.
	Destroy()

	// InvalidateCache propagates a cache-invalidation signal (such as
	// text-measurement caches) to this component and, for containers,
	// to every child. It never changes anchored state.
	InvalidateCache()
}

// SpaceRequest is the space a component requires from its parent.
type SpaceRequest struct {
	MinWidth  float32
	MinHeight float32
}

// ComponentBase implements the shared [Component] lifecycle. Concrete
// components embed it and must call [ComponentBase.Init] with
// themselves so base methods dispatch to overrides.
type ComponentBase struct {

	// This is the component as its true underlying type, so that base
	// methods can call methods overridden by higher-level types.
	This Component

	// class is the semantic class name of the component, set on the
	// retained-mode group element for styling and inspection.
	class string

	surface   render.Surface
	group     *render.Element
	anchored  bool
	destroyed bool
	parent    Container

	origin math32.Vector2
	size   math32.Vector2

	detachSubs map[int]func(Component)
	nextSubID  int
}

// Init sets the This pointer; all concrete component constructors
// must call it.
func (cb *ComponentBase) Init(this Component) {
	cb.This = this
}

// AsComponent implements [Component].
func (cb *ComponentBase) AsComponent() *ComponentBase {
	return cb
}

// Anchored reports whether the component is currently anchored.
// A component is render-capable only while anchored.
func (cb *ComponentBase) Anchored() bool {
	return cb.anchored
}

// Destroyed reports whether the component has been destroyed.
func (cb *ComponentBase) Destroyed() bool {
	return cb.destroyed
}

// Surface returns the surface this component is anchored to, or nil.
func (cb *ComponentBase) Surface() render.Surface {
	return cb.surface
}

// Group returns the component's retained-mode group element, or nil
// when unanchored or anchored to an immediate-mode surface.
func (cb *ComponentBase) Group() *render.Element {
	return cb.group
}

// Parent returns the container that owns this component, or nil.
func (cb *ComponentBase) Parent() Container {
	return cb.parent
}

func (cb *ComponentBase) setParent(p Container) {
	cb.parent = p
}

// Origin returns the component's layout origin in surface coordinates.
func (cb *ComponentBase) Origin() math32.Vector2 {
	return cb.origin
}

// Size returns the component's laid-out size.
func (cb *ComponentBase) Size() math32.Vector2 {
	return cb.size
}

// AbsoluteOrigin returns the component's origin in surface
// coordinates, accumulating parent origins. Retained-mode rendering
// positions through nested group transforms and uses local
// coordinates; immediate-mode surfaces have no transform stack, so
// components offset their draw operations by this value.
func (cb *ComponentBase) AbsoluteOrigin() math32.Vector2 {
	o := cb.origin
	for p := cb.parent; p != nil; p = p.AsComponent().Parent() {
		o = o.Add(p.AsComponent().Origin())
	}
	return o
}

// Bounds returns the component's layout box in surface coordinates.
func (cb *ComponentBase) Bounds() math32.Box2 {
	return math32.Box2{Min: cb.origin, Max: cb.origin.Add(cb.size)}
}

// Anchor implements [Component].
func (cb *ComponentBase) Anchor(s render.Surface) {
	if cb.destroyed {
		return
	}
	if cb.anchored && cb.surface == s {
		return
	}
	if cb.anchored {
		cb.This.Detach()
	}
	cb.surface = s
	if sv, ok := s.(*render.SVG); ok {
		if cb.group == nil {
			cb.group = render.NewElement("g")
			if cb.class != "" {
				cb.group.SetAttr("class", cb.class)
			}
		}
		parent := sv.Root
		if cb.parent != nil {
			if pg := cb.parent.AsComponent().group; pg != nil {
				parent = pg
			}
		}
		if cb.group.Parent() != parent {
			parent.AppendChild(cb.group)
		}
	}
	cb.anchored = true
}

// RequestedSpace implements [Component]; the base requests no minimum
// and fills whatever space it is given.
func (cb *ComponentBase) RequestedSpace(availWidth, availHeight float32) SpaceRequest {
	return SpaceRequest{}
}

// ComputeLayout implements [Component], assigning the origin and size
// and positioning the retained-mode group accordingly.
func (cb *ComponentBase) ComputeLayout(origin math32.Vector2, availWidth, availHeight float32) {
	cb.origin = origin
	cb.size = math32.Vec2(availWidth, availHeight)
	if cb.group != nil {
		cb.group.SetAttr("transform", translate(origin))
	}
}

// Render implements [Component]. Unanchored or destroyed components
// ignore it.
func (cb *ComponentBase) Render() {
	if !cb.anchored || cb.destroyed {
		return
	}
	cb.This.RenderImmediately()
}

// RenderImmediately implements [Component]; the base draws nothing.
func (cb *ComponentBase) RenderImmediately() {}

// Redraw signals that this component's content is stale. If the
// surface has a redraw handler the request is handed to it for
// coalescing; otherwise the component renders immediately.
func (cb *ComponentBase) Redraw() {
	if cb.surface == nil || cb.destroyed {
		return
	}
	if !cb.surface.RequestRedraw() {
		cb.This.Render()
	}
}

// Relayout re-runs the layout pass from the component's tree root
// using the root's last layout box, then signals a redraw. It is the
// structural counterpart to [ComponentBase.Redraw], used when a
// component's space requirements changed.
func (cb *ComponentBase) Relayout() {
	root := cb.This
	for p := root.AsComponent().Parent(); p != nil; p = p.AsComponent().Parent() {
		root = p
	}
	rb := root.AsComponent()
	root.ComputeLayout(rb.origin, rb.size.X, rb.size.Y)
	rb.Redraw()
}

// Detach implements [Component].
func (cb *ComponentBase) Detach() {
	if cb.surface == nil {
		return
	}
	if cb.group != nil {
		cb.group.Remove()
	}
	cb.surface = nil
	cb.anchored = false
	// Notify after unbinding, copying the subscriber set so callbacks
	// may unsubscribe during iteration.
	subs := make([]func(Component), 0, len(cb.detachSubs))
	for _, fn := range cb.detachSubs {
		subs = append(subs, fn)
	}
	for _, fn := range subs {
		fn(cb.This)
	}
}

// Destroy implements [Component].
func (cb *ComponentBase) Destroy() {
	if cb.destroyed {
		return
	}
	cb.This.Detach()
	cb.destroyed = true
	cb.detachSubs = nil
	cb.group = nil
}

// InvalidateCache implements [Component]; the base holds no caches.
func (cb *ComponentBase) InvalidateCache() {}

// OnDetach subscribes the given callback to this component's detach
// events, returning a handle for [ComponentBase.OffDetach]. Every
// subscription must be matched by an unsubscription to avoid leaked
// callbacks or double-removal.
func (cb *ComponentBase) OnDetach(fn func(Component)) int {
	if cb.detachSubs == nil {
		cb.detachSubs = make(map[int]func(Component))
	}
	id := cb.nextSubID
	cb.nextSubID++
	cb.detachSubs[id] = fn
	return id
}

// OffDetach removes the detach subscription with the given handle.
func (cb *ComponentBase) OffDetach(id int) {
	delete(cb.detachSubs, id)
}

// translate formats an SVG translate transform for the given offset.
func translate(v math32.Vector2) string {
	return "translate(" + render.FormatFloat(v.X) + " " + render.FormatFloat(v.Y) + ")"
}
