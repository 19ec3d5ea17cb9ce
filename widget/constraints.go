// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widget/constraints.go
// Summary: Box constraints returned by UpdateConstraints.

package widget

import "github.com/framegrace/texelgui/geo"

// Large is used as an unbounded maximum.
const Large float32 = 1 << 20

// Align places content along one axis.
type Align uint8

const (
	AlignFill Align = iota
	AlignStart
	AlignCenter
	AlignEnd
)

// Alignment places content inside a larger box.
type Alignment struct {
	Horizontal, Vertical Align
}

func place(a Align, size, start, avail float32) (float32, float32) {
	if a == AlignFill || size >= avail {
		return start, avail
	}
	switch a {
	case AlignCenter:
		return start + float32(int((avail-size)/2)), size
	case AlignEnd:
		return start + avail - size, size
	}
	return start, size
}

// Place positions an extent inside outer.
func (a Alignment) Place(size geo.Extent, outer geo.Rect) geo.Rect {
	x, w := place(a.Horizontal, size.W, outer.X, outer.W)
	y, h := place(a.Vertical, size.H, outer.Y, outer.H)
	return geo.Rect{X: x, Y: y, W: w, H: h}
}

// BoxConstraints is what a widget asks of its parent.
type BoxConstraints struct {
	Minimum   geo.Extent
	Preferred geo.Extent
	Maximum   geo.Extent
	Margins   geo.Margins
	Padding   geo.Margins
	Alignment Alignment
}

// Fixed returns constraints with all three sizes equal.
func Fixed(e geo.Extent) BoxConstraints {
	return BoxConstraints{Minimum: e, Preferred: e, Maximum: e}
}

// Flexible returns constraints that can grow without bound.
func Flexible(minimum, preferred geo.Extent) BoxConstraints {
	return BoxConstraints{Minimum: minimum, Preferred: preferred, Maximum: geo.Ext(Large, Large)}
}

// Collapsed is the constraint of a collapsed widget: zero size and margins.
func Collapsed() BoxConstraints { return BoxConstraints{} }

// Clamp limits an extent to [Minimum, Maximum].
func (c BoxConstraints) Clamp(e geo.Extent) geo.Extent {
	return e.Clamp(c.Minimum, c.Maximum)
}

// Contains reports whether e lies within [Minimum, Maximum].
func (c BoxConstraints) Contains(e geo.Extent) bool {
	return e.W >= c.Minimum.W && e.H >= c.Minimum.H && e.W <= c.Maximum.W && e.H <= c.Maximum.H
}

// Normalize makes Minimum <= Preferred <= Maximum, Minimum winning.
func (c BoxConstraints) Normalize() BoxConstraints {
	c.Maximum = c.Maximum.Max(c.Minimum)
	c.Preferred = c.Preferred.Clamp(c.Minimum, c.Maximum)
	return c
}
