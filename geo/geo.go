// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: geo/geo.go
// Summary: Points, vectors, extents, rectangles and margins.
// Notes: The coordinate system is y-down with the origin at the top-left
// corner of the window; one unit is one device-independent pixel.

package geo

import "math"

// Point is a location in a 2D coordinate system.
type Point struct {
	X, Y float32
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point { return Point{X: x, Y: y} }

// Add offsets the point by a vector.
func (p Point) Add(v Vector) Point { return Point{X: p.X + v.X, Y: p.Y + v.Y} }

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Vector { return Vector{X: p.X - q.X, Y: p.Y - q.Y} }

// Distance returns the euclidean distance between two points.
func (p Point) Distance(q Point) float32 {
	return p.Sub(q).Length()
}

// Vector is a displacement.
type Vector struct {
	X, Y float32
}

// Length returns the magnitude of the vector.
func (v Vector) Length() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Extent is a 2D size.
type Extent struct {
	W, H float32
}

// Ext is shorthand for Extent{W: w, H: h}.
func Ext(w, h float32) Extent { return Extent{W: w, H: h} }

// Max returns the component-wise maximum.
func (e Extent) Max(o Extent) Extent {
	return Extent{W: max(e.W, o.W), H: max(e.H, o.H)}
}

// Min returns the component-wise minimum.
func (e Extent) Min(o Extent) Extent {
	return Extent{W: min(e.W, o.W), H: min(e.H, o.H)}
}

// Clamp clamps each component between lo and hi. When lo exceeds hi the
// lower bound wins.
func (e Extent) Clamp(lo, hi Extent) Extent {
	return Extent{W: clampf(e.W, lo.W, hi.W), H: clampf(e.H, lo.H, hi.H)}
}

// Contains reports whether o fits inside e in both dimensions.
func (e Extent) Contains(o Extent) bool {
	return o.W <= e.W && o.H <= e.H
}

// Empty reports whether either dimension is zero or negative.
func (e Extent) Empty() bool { return e.W <= 0 || e.H <= 0 }

// Round rounds each component to the nearest integer.
func (e Extent) Round() Extent {
	return Extent{W: float32(math.Round(float64(e.W))), H: float32(math.Round(float64(e.H)))}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float32
}

// RectFromExtent returns a rectangle at the origin with the given size.
func RectFromExtent(e Extent) Rect { return Rect{W: e.W, H: e.H} }

// Extent returns the rectangle size.
func (r Rect) Extent() Extent { return Extent{W: r.W, H: r.H} }

// Origin returns the top-left corner.
func (r Rect) Origin() Point { return Point{X: r.X, Y: r.Y} }

// Right returns the x coordinate one past the right edge.
func (r Rect) Right() float32 { return r.X + r.W }

// Bottom returns the y coordinate one past the bottom edge.
func (r Rect) Bottom() float32 { return r.Y + r.H }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether p lies inside the rectangle (right and bottom
// edges exclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Overlaps reports whether both rectangles share area.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Intersect returns the overlapping area, or an empty rectangle.
func (r Rect) Intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.Right(), o.Right())
	y1 := min(r.Bottom(), o.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Union returns the bounding rectangle of both. Empty rectangles are ignored.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x0 := min(r.X, o.X)
	y0 := min(r.Y, o.Y)
	x1 := max(r.Right(), o.Right())
	y1 := max(r.Bottom(), o.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Inset shrinks the rectangle by the margins.
func (r Rect) Inset(m Margins) Rect {
	out := Rect{X: r.X + m.Left, Y: r.Y + m.Top, W: r.W - m.Left - m.Right, H: r.H - m.Top - m.Bottom}
	if out.W < 0 {
		out.W = 0
	}
	if out.H < 0 {
		out.H = 0
	}
	return out
}

// Outset grows the rectangle by the margins.
func (r Rect) Outset(m Margins) Rect {
	return Rect{X: r.X - m.Left, Y: r.Y - m.Top, W: r.W + m.Left + m.Right, H: r.H + m.Top + m.Bottom}
}

// Bounding returns the smallest integer rectangle covering r.
func (r Rect) Bounding() RectI {
	x0 := int(math.Floor(float64(r.X)))
	y0 := int(math.Floor(float64(r.Y)))
	x1 := int(math.Ceil(float64(r.Right())))
	y1 := int(math.Ceil(float64(r.Bottom())))
	return RectI{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Margins are distances from each edge.
type Margins struct {
	Left, Top, Right, Bottom float32
}

// Uniform returns margins with the same value on every side.
func Uniform(v float32) Margins { return Margins{Left: v, Top: v, Right: v, Bottom: v} }

// Horizontal returns left + right.
func (m Margins) Horizontal() float32 { return m.Left + m.Right }

// Vertical returns top + bottom.
func (m Margins) Vertical() float32 { return m.Top + m.Bottom }

// Max returns the per-side maximum.
func (m Margins) Max(o Margins) Margins {
	return Margins{Left: max(m.Left, o.Left), Top: max(m.Top, o.Top), Right: max(m.Right, o.Right), Bottom: max(m.Bottom, o.Bottom)}
}

// Scale multiplies every side by s.
func (m Margins) Scale(s float32) Margins {
	return Margins{Left: m.Left * s, Top: m.Top * s, Right: m.Right * s, Bottom: m.Bottom * s}
}

func clampf(v, lo, hi float32) float32 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
