// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: draw/context.go
// Summary: Per-frame draw context handed to widgets between render start and finish.
// Usage: Surfaces create a Context over a Canvas; widgets derive child
// contexts with WithLayout and paint in local coordinates.
// Notes: Coordinates are y-down cells. Every paint call is clipped to the
// intersection of the widget clip and the frame's dirty rectangle.

package draw

import (
	"math"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgui/geo"
)

// Canvas is the cell grid a surface exposes to the draw context.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
}

// CursorCanvas is implemented by canvases that can place a text cursor.
type CursorCanvas interface {
	ShowCursor(x, y int)
	HideCursor()
}

// SubpixelOrientation describes the sub-pixel layout of the display.
type SubpixelOrientation uint8

const (
	SubpixelUnknown SubpixelOrientation = iota
	SubpixelBlueLeft
	SubpixelBlueRight
	SubpixelBlueTop
	SubpixelBlueBottom
)

// Context paints into a Canvas through a transform and clip.
type Context struct {
	canvas Canvas

	// toWindow maps local coordinates of the current widget to window cells.
	toWindow geo.Transform
	// clip is in window coordinates and already intersected with dirty.
	clip  geo.RectI
	dirty geo.RectI

	DisplayTime time.Time
	Subpixel    SubpixelOrientation
	// ActiveSaturation is 1 for an active window and fades towards 0 while
	// the window is inactive.
	ActiveSaturation float32
}

// NewContext creates a root context over canvas. Only cells inside dirty are
// painted.
func NewContext(canvas Canvas, dirty geo.RectI) *Context {
	w, h := canvas.Size()
	full := geo.RectI{W: w, H: h}
	dirty = dirty.Intersect(full)
	return &Context{
		canvas:           canvas,
		toWindow:         geo.Identity,
		clip:             dirty,
		dirty:            dirty,
		ActiveSaturation: 1,
	}
}

// WithLayout returns a context for a widget whose local coordinates map to
// the window through toWindow, restricted to clip (window coordinates).
func (c *Context) WithLayout(toWindow geo.Transform, clip geo.Rect) *Context {
	child := *c
	child.toWindow = toWindow
	child.clip = c.dirty.Intersect(innerCells(clip))
	return &child
}

// WithClip narrows the clip to a rectangle in local coordinates.
func (c *Context) WithClip(local geo.Rect) *Context {
	child := *c
	child.clip = c.clip.Intersect(innerCells(c.toWindow.Rect(local)))
	return &child
}

// Overlaps reports whether a window-space rectangle touches the dirty area.
func (c *Context) Overlaps(window geo.Rect) bool {
	return !c.clip.Empty() && c.dirty.Overlaps(window.Bounding())
}

// Dirty returns the dirty rectangle of the frame in window coordinates.
func (c *Context) Dirty() geo.RectI { return c.dirty }

// Clip returns the active clip in window coordinates.
func (c *Context) Clip() geo.RectI { return c.clip }

// innerCells rounds a rectangle to whole cells it covers by at least half.
func innerCells(r geo.Rect) geo.RectI {
	x0 := int(math.Round(float64(r.X)))
	y0 := int(math.Round(float64(r.Y)))
	x1 := int(math.Round(float64(r.Right())))
	y1 := int(math.Round(float64(r.Bottom())))
	if x1 < x0 || y1 < y0 {
		return geo.RectI{}
	}
	return geo.RectI{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func (c *Context) cell(p geo.Point) (int, int) {
	w := c.toWindow.Point(p)
	return int(math.Floor(float64(w.X) + 0.5)), int(math.Floor(float64(w.Y) + 0.5))
}

// SetCell paints one cell at a local position.
func (c *Context) SetCell(p geo.Point, r rune, combining []rune, style tcell.Style) {
	x, y := c.cell(p)
	if !c.clip.Contains(x, y) {
		return
	}
	c.canvas.SetContent(x, y, r, combining, c.tint(style))
}

// Fill paints a local rectangle with spaces in style.
func (c *Context) Fill(r geo.Rect, style tcell.Style) {
	area := innerCells(c.toWindow.Rect(r)).Intersect(c.clip)
	style = c.tint(style)
	for y := area.Y; y < area.Y+area.H; y++ {
		for x := area.X; x < area.X+area.W; x++ {
			c.canvas.SetContent(x, y, ' ', nil, style)
		}
	}
}

// ShowCursor places the terminal cursor at a local position when the canvas
// supports it and the position is visible.
func (c *Context) ShowCursor(p geo.Point) {
	cc, ok := c.canvas.(CursorCanvas)
	if !ok {
		return
	}
	x, y := c.cell(p)
	if c.clip.Contains(x, y) {
		cc.ShowCursor(x, y)
	}
}
