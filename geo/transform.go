// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: geo/transform.go
// Summary: 2D affine transforms with a z (elevation) translation.

package geo

import "math"

// Transform is a 2D affine transform plus a translation along z:
//
//	x' = A*x + C*y + E
//	y' = B*x + D*y + F
//	z' = z + Z
//
// The zero value behaves as the identity.
type Transform struct {
	A, B, C, D, E, F float32
	Z                float32
}

// Identity is the transform that maps every point to itself.
var Identity = Transform{A: 1, D: 1}

// Translate returns a translation by (x, y) and z along the elevation axis.
func Translate(x, y, z float32) Transform {
	return Transform{A: 1, D: 1, E: x, F: y, Z: z}
}

// Scale returns a uniform scale around the origin.
func Scale(s float32) Transform {
	return Transform{A: s, D: s}
}

func (t Transform) norm() Transform {
	if t == (Transform{}) {
		return Identity
	}
	return t
}

// Mul returns the composition t∘o: o is applied first, then t.
func (t Transform) Mul(o Transform) Transform {
	t, o = t.norm(), o.norm()
	return Transform{
		A: t.A*o.A + t.C*o.B,
		B: t.B*o.A + t.D*o.B,
		C: t.A*o.C + t.C*o.D,
		D: t.B*o.C + t.D*o.D,
		E: t.A*o.E + t.C*o.F + t.E,
		F: t.B*o.E + t.D*o.F + t.F,
		Z: t.Z + o.Z,
	}
}

// Inverse returns the inverse transform. A singular transform yields the
// identity.
func (t Transform) Inverse() Transform {
	t = t.norm()
	det := t.A*t.D - t.B*t.C
	if det == 0 {
		return Identity
	}
	return Transform{
		A: t.D / det,
		B: -t.B / det,
		C: -t.C / det,
		D: t.A / det,
		E: (t.C*t.F - t.D*t.E) / det,
		F: (t.B*t.E - t.A*t.F) / det,
		Z: -t.Z,
	}
}

// Point maps a point.
func (t Transform) Point(p Point) Point {
	t = t.norm()
	return Point{X: t.A*p.X + t.C*p.Y + t.E, Y: t.B*p.X + t.D*p.Y + t.F}
}

// Vector maps a vector (translation is ignored).
func (t Transform) Vector(v Vector) Vector {
	t = t.norm()
	return Vector{X: t.A*v.X + t.C*v.Y, Y: t.B*v.X + t.D*v.Y}
}

// Rect maps a rectangle and returns the axis-aligned bounding box of the
// result.
func (t Transform) Rect(r Rect) Rect {
	corners := [4]Point{
		t.Point(Point{X: r.X, Y: r.Y}),
		t.Point(Point{X: r.Right(), Y: r.Y}),
		t.Point(Point{X: r.X, Y: r.Bottom()}),
		t.Point(Point{X: r.Right(), Y: r.Bottom()}),
	}
	x0, y0 := corners[0].X, corners[0].Y
	x1, y1 := x0, y0
	for _, c := range corners[1:] {
		x0, y0 = min(x0, c.X), min(y0, c.Y)
		x1, y1 = max(x1, c.X), max(y1, c.Y)
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Elevation returns the z translation.
func (t Transform) Elevation() float32 { return t.norm().Z }

// ApproxEqual compares two points within eps.
func ApproxEqual(a, b Point, eps float32) bool {
	return math.Abs(float64(a.X-b.X)) <= float64(eps) && math.Abs(float64(a.Y-b.Y)) <= float64(eps)
}
