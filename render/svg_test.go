// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementTree(t *testing.T) {
	root := NewElement("g")
	a := root.NewChild("rect")
	b := root.NewChild("text")
	require.Len(t, root.Children(), 2)
	assert.Same(t, root, a.Parent())

	a.Remove()
	assert.Len(t, root.Children(), 1)
	assert.Nil(t, a.Parent())
	assert.Same(t, b, root.Children()[0])
}

func TestAppendChildReparents(t *testing.T) {
	g1 := NewElement("g")
	g2 := NewElement("g")
	el := g1.NewChild("rect")

	g2.AppendChild(el)
	assert.Empty(t, g1.Children())
	require.Len(t, g2.Children(), 1)
	assert.Same(t, g2, el.Parent())
}

func TestAttrs(t *testing.T) {
	el := NewElement("rect")
	el.SetAttr("fill", "red").SetFloatAttr("x", 1.5)
	assert.Equal(t, "red", el.Attr("fill"))
	assert.Equal(t, "1.5", el.Attr("x"))
	assert.Equal(t, "", el.Attr("missing"))

	// Attribute order is stable under overwrite.
	el.SetAttr("fill", "blue")
	out := el.String()
	assert.Less(t, indexOf(out, "fill"), indexOf(out, "x"))
}

func indexOf(s, sub string) int {
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	return -1
}

func TestClear(t *testing.T) {
	g := NewElement("g")
	g.NewChild("rect")
	g.NewChild("rect")
	g.Clear()
	assert.Empty(t, g.Children())
}

func TestSVGSerialization(t *testing.T) {
	sv := NewSVG(120, 80)
	r := sv.Root.NewChild("rect")
	r.SetFloatAttr("x", 10).SetFloatAttr("width", 20).SetAttr("fill", "#ff0000")
	txt := sv.Root.NewChild("text")
	txt.Text = "a < b & c"

	out := sv.String()
	assert.Contains(t, out, `<svg`)
	assert.Contains(t, out, `xmlns="http://www.w3.org/2000/svg"`)
	assert.Contains(t, out, `width="120"`)
	assert.Contains(t, out, `<rect`)
	assert.Contains(t, out, `fill="#ff0000"`)
	// Text content is XML-escaped.
	assert.Contains(t, out, "a &lt; b &amp; c")
	assert.NotContains(t, out, "a < b")
}

func TestAttrValuesEscaped(t *testing.T) {
	g := NewElement("g")
	g.SetAttr("data-name", `q & "r" < s`)
	out := g.String()
	assert.Contains(t, out, `data-name="q &amp; &#34;r&#34; &lt; s"`)
	assert.NotContains(t, out, `& "r"`)
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "1.5", FormatFloat(1.5))
	assert.Equal(t, "120", FormatFloat(120))
	assert.Equal(t, "0", FormatFloat(0))
}

func TestRedrawHandler(t *testing.T) {
	sv := NewSVG(10, 10)
	// Without a handler the request reports unhandled, so callers
	// render immediately.
	assert.False(t, sv.RequestRedraw())

	calls := 0
	sv.SetRedrawHandler(func() { calls++ })
	assert.True(t, sv.RequestRedraw())
	assert.True(t, sv.RequestRedraw())
	assert.Equal(t, 2, calls)
}
