// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"github.com/plotkit/plotkit/base/ordmap"
	"github.com/plotkit/plotkit/math32"
)

// NamedGroup is a [Container] whose children are addressable by name.
// Iteration order is the insertion order of the names. Adding a child
// under an existing name replaces (and detaches) the previous holder.
type NamedGroup struct {
	containerBase

	children ordmap.Map[string, Component]
}

// NewNamedGroup returns a new empty [NamedGroup].
func NewNamedGroup() *NamedGroup {
	ng := &NamedGroup{}
	ng.Init(ng)
	ng.class = "named-group"
	return ng
}

// Add adds the given component under the given name and triggers a
// redraw. If the name is already taken, the previous holder is
// removed first and the name moves to the end of iteration order.
func (ng *NamedGroup) Add(name string, c Component) *NamedGroup {
	if c == nil || ng.destroyed {
		return ng
	}
	if prev, ok := ng.children.ValueByKeyTry(name); ok {
		if prev == c {
			return ng
		}
		ng.Remove(prev)
	}
	ng.adoptAndAnchor(c)
	ng.children.Add(name, c)
	ng.Redraw()
	return ng
}

// ByName returns the child registered under the given name, or nil.
func (ng *NamedGroup) ByName(name string) Component {
	c, _ := ng.children.ValueByKeyTry(name)
	return c
}

// RemoveByName removes the child registered under the given name.
// An unknown name is a no-op.
func (ng *NamedGroup) RemoveByName(name string) {
	if c, ok := ng.children.ValueByKeyTry(name); ok {
		ng.Remove(c)
	}
}

// Len returns the number of children.
func (ng *NamedGroup) Len() int {
	return ng.children.Len()
}

// Has implements [Container].
func (ng *NamedGroup) Has(c Component) bool {
	for _, kv := range ng.children.Order {
		if kv.Value == c {
			return true
		}
	}
	return false
}

// ForEachChild implements [Container], iterating in name insertion
// order.
func (ng *NamedGroup) ForEachChild(fn func(c Component)) {
	for _, kv := range ng.children.Order {
		fn(kv.Value)
	}
}

func (ng *NamedGroup) removeChild(c Component) bool {
	for _, kv := range ng.children.Order {
		if kv.Value == c {
			ng.children.DeleteKey(kv.Key)
			return true
		}
	}
	return false
}

// ComputeLayout implements [Component], giving every child the
// group's full box.
func (ng *NamedGroup) ComputeLayout(origin math32.Vector2, availWidth, availHeight float32) {
	ng.ComponentBase.ComputeLayout(origin, availWidth, availHeight)
	ng.ForEachChild(func(c Component) {
		c.ComputeLayout(math32.Vector2{}, availWidth, availHeight)
	})
}
