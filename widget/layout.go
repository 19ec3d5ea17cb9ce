// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widget/layout.go
// Summary: Immutable per-frame layout value passed down the tree.

package widget

import (
	"time"

	"github.com/framegrace/texelgui/draw"
	"github.com/framegrace/texelgui/geo"
	"github.com/framegrace/texelgui/host"
)

// Layout is the geometry and frame context assigned to a widget. It is
// passed by value and not modified for the rest of the frame.
type Layout struct {
	// Shape is the widget rectangle in its parent's coordinates.
	Shape geo.Rect

	ToParent   geo.Transform
	FromParent geo.Transform
	ToWindow   geo.Transform
	FromWindow geo.Transform

	// Clip is in window coordinates.
	Clip      geo.Rect
	Elevation float32

	DisplayTime time.Time
	Subpixel    draw.SubpixelOrientation
	Direction   host.WritingDirection
	SizeState   host.SizeState
}

// RootLayout returns the layout of a window-filling root widget.
func RootLayout(size geo.Extent, displayTime time.Time, subpixel draw.SubpixelOrientation, dir host.WritingDirection, state host.SizeState) Layout {
	return Layout{
		Shape:       geo.RectFromExtent(size),
		ToParent:    geo.Identity,
		FromParent:  geo.Identity,
		ToWindow:    geo.Identity,
		FromWindow:  geo.Identity,
		Clip:        geo.RectFromExtent(size),
		DisplayTime: displayTime,
		Subpixel:    subpixel,
		Direction:   dir,
		SizeState:   state,
	}
}

// Child derives the layout of a child placed at shape (in this layout's
// local coordinates), raised by elevationDelta.
func (l Layout) Child(shape geo.Rect, elevationDelta float32) Layout {
	toParent := geo.Translate(shape.X, shape.Y, elevationDelta)
	toWindow := l.ToWindow.Mul(toParent)
	out := l
	out.Shape = shape
	out.ToParent = toParent
	out.FromParent = toParent.Inverse()
	out.ToWindow = toWindow
	out.FromWindow = toWindow.Inverse()
	out.Elevation = l.Elevation + elevationDelta
	out.Clip = l.Clip.Intersect(toWindow.Rect(geo.RectFromExtent(shape.Extent())))
	return out
}

// Size returns the widget extent.
func (l Layout) Size() geo.Extent { return l.Shape.Extent() }

// Rectangle returns the widget rectangle in local coordinates.
func (l Layout) Rectangle() geo.Rect { return geo.RectFromExtent(l.Shape.Extent()) }

// WindowRectangle returns the widget rectangle in window coordinates.
func (l Layout) WindowRectangle() geo.Rect { return l.ToWindow.Rect(l.Rectangle()) }

// Contains reports whether a local point lies inside the widget and its
// clip.
func (l Layout) Contains(p geo.Point) bool {
	return l.Rectangle().Contains(p) && l.Clip.Contains(l.ToWindow.Point(p))
}

// Empty reports whether the widget has no area.
func (l Layout) Empty() bool { return l.Shape.Empty() }
