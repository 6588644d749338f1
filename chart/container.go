// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import "github.com/plotkit/plotkit/render"

// Container is a [Component] that owns child components. The shared
// adoption and removal protocol is implemented on [containerBase];
// concrete containers provide the child storage.
type Container interface {
	Component

	// Has reports whether the given component is a direct child of
	// this container.
	Has(c Component) bool

	// ForEachChild calls fn for each child in container iteration
	// order. fn must not add or remove children.
	ForEachChild(fn func(c Component))

	// Remove removes the given child from this container, detaching
	// it, and triggers a redraw. Removing a non-child is a no-op.
	Remove(c Component)

	// removeChild deletes the child from the container's storage,
	// reporting whether it was present. It performs no lifecycle work.
	removeChild(c Component) bool
}

// containerBase implements the adoption protocol shared by [Group] and
// [NamedGroup]: adopting a child registers a detach callback so that a
// child detached from elsewhere is automatically removed from its
// container, and removal symmetrically unregisters that callback.
type containerBase struct {
	ComponentBase

	// detachIDs holds, per child, the handle of the detach callback
	// this container registered on it, so removal can unsubscribe
	// exactly the subscription adoption made.
	detachIDs map[Component]int
}

func (cn *containerBase) container() Container {
	return cn.This.(Container)
}

// adoptAndAnchor wires the given component into this container:
// it detaches the child from any previous owner, sets the parent
// back-reference, registers the auto-removal detach callback, and, if
// this container is anchored, anchors the child to the same surface.
func (cn *containerBase) adoptAndAnchor(c Component) {
	base := c.AsComponent()
	if p := base.Parent(); p != nil {
		p.Remove(c)
	}
	base.setParent(cn.container())
	if cn.detachIDs == nil {
		cn.detachIDs = make(map[Component]int)
	}
	cn.detachIDs[c] = base.OnDetach(func(d Component) {
		cn.container().Remove(d)
	})
	if cn.anchored {
		c.Anchor(cn.surface)
	}
}

// Remove implements [Container].
func (cn *containerBase) Remove(c Component) {
	cont := cn.container()
	if !cont.Has(c) {
		return
	}
	base := c.AsComponent()
	if id, ok := cn.detachIDs[c]; ok {
		base.OffDetach(id)
		delete(cn.detachIDs, c)
	}
	cont.removeChild(c)
	base.setParent(nil)
	c.Detach()
	cn.Redraw()
}

// Anchor implements [Component], anchoring children recursively in
// container iteration order.
func (cn *containerBase) Anchor(s render.Surface) {
	if cn.destroyed {
		return
	}
	cn.ComponentBase.Anchor(s)
	cn.container().ForEachChild(func(c Component) {
		c.Anchor(s)
	})
}

// RenderImmediately implements [Component], rendering children in
// container iteration order.
func (cn *containerBase) RenderImmediately() {
	cn.container().ForEachChild(func(c Component) {
		c.Render()
	})
}

// Destroy implements [Component], destroying every child after the
// container itself is torn down, so each child's detach fires at most
// once.
func (cn *containerBase) Destroy() {
	if cn.destroyed {
		return
	}
	children := []Component{}
	cn.container().ForEachChild(func(c Component) {
		children = append(children, c)
	})
	for c, id := range cn.detachIDs {
		c.AsComponent().OffDetach(id)
	}
	cn.ComponentBase.Destroy()
	cn.detachIDs = nil
	for _, c := range children {
		c.AsComponent().setParent(nil)
		c.Destroy()
	}
}

// InvalidateCache implements [Component], propagating to every child.
func (cn *containerBase) InvalidateCache() {
	cn.container().ForEachChild(func(c Component) {
		c.InvalidateCache()
	})
}
