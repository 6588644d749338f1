// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/plotkit/plotkit/base/ordmap"
	"github.com/plotkit/plotkit/math32"
)

// Element is one node in the retained-mode SVG tree: a tag, ordered
// attributes, text content, and child elements. Attribute order is
// stable (insertion order) so serialized output is deterministic.
type Element struct {
	Tag      string
	Attrs    ordmap.Map[string, string]
	Text     string
	parent   *Element
	children []*Element
}

// NewElement returns a new detached element with the given tag.
func NewElement(tag string) *Element {
	return &Element{Tag: tag}
}

// NewChild creates a new element with the given tag, appends it to
// this element's children, and returns it.
func (e *Element) NewChild(tag string) *Element {
	child := NewElement(tag)
	e.AppendChild(child)
	return child
}

// AppendChild appends the given element to this element's children,
// removing it from any previous parent first.
func (e *Element) AppendChild(child *Element) {
	if child.parent != nil {
		child.parent.RemoveChild(child)
	}
	child.parent = e
	e.children = append(e.children, child)
}

// RemoveChild removes the given child element, reporting whether it
// was present.
func (e *Element) RemoveChild(child *Element) bool {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// Remove detaches this element from its parent, if any.
func (e *Element) Remove() {
	if e.parent != nil {
		e.parent.RemoveChild(e)
	}
}

// Clear removes all children and text content.
func (e *Element) Clear() {
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
	e.Text = ""
}

// Parent returns this element's parent, or nil if detached.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns the child elements in order. The returned slice is
// the element's own; callers must not mutate it.
func (e *Element) Children() []*Element {
	return e.children
}

// SetAttr sets the given attribute, returning the element for chaining.
func (e *Element) SetAttr(name, value string) *Element {
	e.Attrs.Add(name, value)
	return e
}

// Attr returns the value of the given attribute, or "" if unset.
func (e *Element) Attr(name string) string {
	v, _ := e.Attrs.ValueByKeyTry(name)
	return v
}

// SetFloatAttr sets the given attribute from a float value, formatted
// compactly.
func (e *Element) SetFloatAttr(name string, value float32) *Element {
	return e.SetAttr(name, FormatFloat(value))
}

// Write serializes this element and its subtree as XML to w.
func (e *Element) Write(w io.Writer, indent int) error {
	pad := strings.Repeat("  ", indent)
	if _, err := fmt.Fprintf(w, "%s<%s", pad, e.Tag); err != nil {
		return err
	}
	for _, kv := range e.Attrs.Order {
		fmt.Fprintf(w, " %s=\"", kv.Key)
		xml.EscapeText(w, []byte(kv.Value))
		io.WriteString(w, `"`)
	}
	if len(e.children) == 0 && e.Text == "" {
		_, err := io.WriteString(w, "/>\n")
		return err
	}
	if len(e.children) == 0 {
		io.WriteString(w, ">")
		xml.EscapeText(w, []byte(e.Text))
		_, err := fmt.Fprintf(w, "</%s>\n", e.Tag)
		return err
	}
	io.WriteString(w, ">\n")
	if e.Text != "" {
		io.WriteString(w, pad+"  ")
		xml.EscapeText(w, []byte(e.Text))
		io.WriteString(w, "\n")
	}
	for _, c := range e.children {
		if err := c.Write(w, indent+1); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s</%s>\n", pad, e.Tag)
	return err
}

// String returns the element subtree as serialized XML.
func (e *Element) String() string {
	b := &strings.Builder{}
	e.Write(b, 0)
	return b.String()
}

// FormatFloat formats a float attribute value compactly.
func FormatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', 6, 32)
}

// SVG is a retained-mode drawing surface: an element tree rooted at an
// <svg> element. Components anchored to it create and mutate child
// elements; [SVG.Write] serializes the current tree.
type SVG struct {
	redrawHook

	// Root is the <svg> root element.
	Root *Element

	width, height float32
}

// NewSVG returns a new [SVG] surface with the given pixel size.
func NewSVG(width, height float32) *SVG {
	root := NewElement("svg")
	root.SetAttr("xmlns", "http://www.w3.org/2000/svg")
	root.SetFloatAttr("width", width)
	root.SetFloatAttr("height", height)
	return &SVG{Root: root, width: width, height: height}
}

// Bounds implements [Surface].
func (sv *SVG) Bounds() math32.Box2 {
	return math32.B2(0, 0, sv.width, sv.height)
}

// Write serializes the current element tree to w.
func (sv *SVG) Write(w io.Writer) error {
	return sv.Root.Write(w, 0)
}

// String returns the current element tree as serialized SVG markup.
func (sv *SVG) String() string {
	return sv.Root.String()
}
