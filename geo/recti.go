// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: geo/recti.go
// Summary: Integer rectangles used for dirty regions and host geometry.

package geo

// RectI is an axis-aligned integer rectangle.
type RectI struct {
	X, Y, W, H int
}

// Empty reports whether the rectangle has no area.
func (r RectI) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Contains reports whether the integer point lies inside r.
func (r RectI) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Float converts to a float rectangle.
func (r RectI) Float() Rect {
	return Rect{X: float32(r.X), Y: float32(r.Y), W: float32(r.W), H: float32(r.H)}
}

// Extent returns the size as a float extent.
func (r RectI) Extent() Extent { return Extent{W: float32(r.W), H: float32(r.H)} }

// Overlaps reports whether both rectangles share area.
func (r RectI) Overlaps(o RectI) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Union returns the bounding rectangle of both; empty inputs are ignored.
func (r RectI) Union(o RectI) RectI {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x0 := min(r.X, o.X)
	y0 := min(r.Y, o.Y)
	x1 := max(r.X+r.W, o.X+o.W)
	y1 := max(r.Y+r.H, o.Y+o.H)
	return RectI{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Intersect returns the overlapping area, or an empty rectangle.
func (r RectI) Intersect(o RectI) RectI {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.W, o.X+o.W)
	y1 := min(r.Y+r.H, o.Y+o.H)
	if x1 <= x0 || y1 <= y0 {
		return RectI{}
	}
	return RectI{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// touches reports overlap or shared edges/corners.
func (r RectI) touches(o RectI) bool {
	if r.Overlaps(o) {
		return true
	}
	ax1, ay1 := r.X+r.W, r.Y+r.H
	bx1, by1 := o.X+o.W, o.Y+o.H
	horizontallyAdjacent := (ax1 == o.X || bx1 == r.X) && !(r.Y >= by1 || ay1 <= o.Y)
	verticallyAdjacent := (ay1 == o.Y || by1 == r.Y) && !(r.X >= bx1 || ax1 <= o.X)
	cornerAdjacent := (ax1 == o.X || bx1 == r.X) && (ay1 == o.Y || by1 == r.Y)
	return horizontallyAdjacent || verticallyAdjacent || cornerAdjacent
}

// MergeRects unions overlapping or edge-adjacent rectangles into a compact set.
func MergeRects(in []RectI) []RectI {
	out := make([]RectI, 0, len(in))
	for _, r := range in {
		if r.Empty() {
			continue
		}
		out = append(out, r)
	}
	changed := true
	for changed {
		changed = false
		for i := 0; i < len(out) && !changed; i++ {
			for j := i + 1; j < len(out) && !changed; j++ {
				if out[i].touches(out[j]) {
					out[i] = out[i].Union(out[j])
					out = append(out[:j], out[j+1:]...)
					changed = true
				}
			}
		}
	}
	return out
}

// FlipY converts a rectangle between a bottom-left origin system and the
// y-down system used here, relative to a reference height (normally the
// primary monitor height). The conversion is its own inverse.
func FlipY(r RectI, referenceHeight int) RectI {
	return RectI{X: r.X, Y: referenceHeight - r.Y - r.H, W: r.W, H: r.H}
}
