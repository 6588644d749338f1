// Copyright (c) 2025, The PlotKit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

// Box2 represents a 2D bounding box defined by two points:
// the point with minimum coordinates and the point with maximum coordinates.
type Box2 struct {
	Min Vector2
	Max Vector2
}

// B2 returns a new [Box2] from the given minimum and maximum x and y coordinates.
func B2(x0, y0, x1, y1 float32) Box2 {
	return Box2{Vec2(x0, y0), Vec2(x1, y1)}
}

// B2Empty returns a new [Box2] with empty minimum and maximum values.
func B2Empty() Box2 {
	bx := Box2{}
	bx.SetEmpty()
	return bx
}

// SetEmpty sets this bounding box to empty (min / max +/- Infinity).
func (b *Box2) SetEmpty() {
	b.Min.SetScalar(Infinity)
	b.Max.SetScalar(-Infinity)
}

// IsEmpty returns whether this bounding box is empty (max < min on any coord).
func (b Box2) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y
}

// Size returns the width and height of this bounding box.
func (b Box2) Size() Vector2 {
	if b.IsEmpty() {
		return Vector2{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the center point of this bounding box.
func (b Box2) Center() Vector2 {
	return b.Min.Add(b.Max).MulScalar(0.5)
}

// ExpandByPoint returns the box expanded to include the given point.
func (b Box2) ExpandByPoint(pt Vector2) Box2 {
	b.Min = b.Min.Min(pt)
	b.Max = b.Max.Max(pt)
	return b
}

// ExpandByScalar returns the box expanded by the given scalar on all sides.
func (b Box2) ExpandByScalar(s float32) Box2 {
	b.Min = b.Min.Sub(Vector2Scalar(s))
	b.Max = b.Max.Add(Vector2Scalar(s))
	return b
}

// Union returns the union of this box with the other box.
func (b Box2) Union(other Box2) Box2 {
	b.Min = b.Min.Min(other.Min)
	b.Max = b.Max.Max(other.Max)
	return b
}

// Translate returns the box translated by the given offset.
func (b Box2) Translate(offset Vector2) Box2 {
	return Box2{b.Min.Add(offset), b.Max.Add(offset)}
}

// ContainsPoint returns whether this box contains the given point.
func (b Box2) ContainsPoint(pt Vector2) bool {
	return !(pt.X < b.Min.X || pt.X > b.Max.X || pt.Y < b.Min.Y || pt.Y > b.Max.Y)
}

// ContainsBox returns whether this box fully contains the other box.
func (b Box2) ContainsBox(other Box2) bool {
	return b.Min.X <= other.Min.X && other.Max.X <= b.Max.X &&
		b.Min.Y <= other.Min.Y && other.Max.Y <= b.Max.Y
}

// Intersects returns whether this box intersects the other box,
// including mere edge contact.
func (b Box2) Intersects(other Box2) bool {
	return !(other.Max.X < b.Min.X || other.Min.X > b.Max.X ||
		other.Max.Y < b.Min.Y || other.Min.Y > b.Max.Y)
}
