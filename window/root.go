// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: window/root.go
// Summary: The window widget at the root of every tree: a toolbar above a
// content stack, plus the resize borders of the OS window.

package window

import (
	"iter"

	"github.com/framegrace/texelgui/draw"
	"github.com/framegrace/texelgui/event"
	"github.com/framegrace/texelgui/geo"
	"github.com/framegrace/texelgui/host"
	"github.com/framegrace/texelgui/theme"
	"github.com/framegrace/texelgui/widget"
	"github.com/framegrace/texelgui/widgets"
)

// BorderWidth is the width of the resize borders in device independent
// pixels.
const BorderWidth float32 = 10

// Root is the window widget. It owns exactly two children, the toolbar and
// the content.
type Root struct {
	widget.Base

	host    host.Host
	toolbar *widgets.Toolbar
	content *widgets.Stack

	toolbarC widget.BoxConstraints
	contentC widget.BoxConstraints
	density  float32

	canResizeW bool
	canResizeH bool
}

func newRoot(h host.Host) *Root {
	r := &Root{
		host:    h,
		toolbar: widgets.NewToolbar(),
		content: widgets.NewColumn(),
		density: h.PixelDensity(),
	}
	r.Init(r)
	r.Adopt(r.toolbar)
	r.Adopt(r.content)
	return r
}

// Toolbar returns the toolbar strip.
func (r *Root) Toolbar() *widgets.Toolbar { return r.toolbar }

// Content returns the content column.
func (r *Root) Content() *widgets.Stack { return r.content }

// ShowToolbar shows or collapses the toolbar.
func (r *Root) ShowToolbar(show bool) {
	if show {
		r.toolbar.SetMode(widget.Enabled)
	} else {
		r.toolbar.SetMode(widget.Collapse)
	}
}

// CanResize reports in which dimensions the OS window can be resized.
func (r *Root) CanResize() (width, height bool) { return r.canResizeW, r.canResizeH }

func (r *Root) Children(includeInvisible bool) iter.Seq[widget.Widget] {
	return widget.VisibleChildren([]widget.Widget{r.toolbar, r.content}, includeInvisible)
}

func (r *Root) Restyle(pixelDensity float32) {
	r.density = pixelDensity
	r.Base.Restyle(pixelDensity)
}

func (r *Root) toolbarShown() bool { return r.toolbar.Mode() != widget.Collapse }

func (r *Root) UpdateConstraints() widget.BoxConstraints {
	tb := widget.ConstraintsOf(r.toolbar)
	ct := widget.ConstraintsOf(r.content)
	r.toolbarC, r.contentC = tb, ct

	width := func(pick func(widget.BoxConstraints) geo.Extent, combine func(a, b float32) float32) float32 {
		w := pick(ct).W + ct.Margins.Horizontal()
		if r.toolbarShown() {
			w = combine(w, pick(tb).W+tb.Margins.Horizontal())
		}
		return w
	}
	head := tb.Margins.Top + tb.Preferred.H + max(tb.Margins.Bottom, ct.Margins.Top)
	height := func(e geo.Extent) float32 { return head + e.H + ct.Margins.Bottom }

	minimum := func(c widget.BoxConstraints) geo.Extent { return c.Minimum }
	preferred := func(c widget.BoxConstraints) geo.Extent { return c.Preferred }
	maximum := func(c widget.BoxConstraints) geo.Extent { return c.Maximum }
	larger := func(a, b float32) float32 { return max(a, b) }
	smaller := func(a, b float32) float32 { return min(a, b) }

	var c widget.BoxConstraints
	c.Minimum = geo.Ext(width(minimum, larger), height(ct.Minimum))
	c.Preferred = geo.Ext(width(preferred, larger), height(ct.Preferred))
	c.Maximum = geo.Ext(width(maximum, smaller), height(ct.Maximum))

	c.Minimum = c.Minimum.Max(r.host.MinimumWindowSize())
	c.Maximum = c.Maximum.Clamp(c.Minimum, r.host.MaximumWindowSize())
	c.Preferred = c.Preferred.Clamp(c.Minimum, c.Maximum)

	r.canResizeW = c.Minimum.W != c.Maximum.W
	r.canResizeH = c.Minimum.H != c.Maximum.H
	return c
}

func (r *Root) SetLayout(l widget.Layout) {
	r.Base.SetLayout(l)
	size := l.Size()
	tb, ct := r.toolbarC, r.contentC

	var top float32
	if r.toolbarShown() {
		h := tb.Preferred.H
		r.toolbar.SetLayout(l.Child(geo.Rect{
			X: tb.Margins.Left,
			Y: tb.Margins.Top,
			W: size.W - tb.Margins.Horizontal(),
			H: h,
		}, 1))
		top = tb.Margins.Top + h
	} else {
		r.toolbar.SetLayout(l.Child(geo.Rect{}, 1))
	}
	top += max(tb.Margins.Bottom, ct.Margins.Top)
	r.content.SetLayout(l.Child(geo.Rect{
		X: ct.Margins.Left,
		Y: top,
		W: size.W - ct.Margins.Horizontal(),
		H: max(size.H-top-ct.Margins.Bottom, 0),
	}, 1))
}

func (r *Root) Draw(ctx *draw.Context) {
	if !r.Drawable(ctx) {
		return
	}
	local := r.LocalContext(ctx)
	local.Fill(r.Layout().Rectangle(), r.Theme().Style(theme.StateEnabled, r.SemanticLayer()))
	widget.DrawChildren(r, ctx)
}

// HitboxTest gives the edges of a resizable window priority. Corners always
// win; an edge loses only to a scroll bar under the pointer. Elsewhere the
// widgets are hit over the root's own default hitbox.
func (r *Root) HitboxTest(p geo.Point) event.Hitbox {
	kind := r.resizeKind(p)
	if kind.IsCorner() {
		return event.NewHitbox(r.ID(), r.Layout().Elevation, kind)
	}
	hit := widget.HitboxTestChildren(r, p)
	if kind != event.HitOutside && hit.Kind != event.HitScrollBar {
		return event.NewHitbox(r.ID(), r.Layout().Elevation, kind)
	}
	return event.MaxHitbox(hit, r.Hit(p, event.HitDefault))
}

func (r *Root) borderWidth() (bw, bh float32) {
	size := r.Layout().Size()
	b := BorderWidth * r.density
	return min(b, size.W/3), min(b, size.H/3)
}

func (r *Root) resizeKind(p geo.Point) event.HitboxKind {
	if !r.Layout().Rectangle().Contains(p) {
		return event.HitOutside
	}
	size := r.Layout().Size()
	bw, bh := r.borderWidth()

	left := r.canResizeW && p.X <= bw
	right := r.canResizeW && p.X >= size.W-bw
	top := r.canResizeH && p.Y <= bh
	bottom := r.canResizeH && p.Y >= size.H-bh

	switch {
	case left && bottom:
		return event.HitCornerBottomLeft
	case right && bottom:
		return event.HitCornerBottomRight
	case left && top:
		return event.HitCornerTopLeft
	case right && top:
		return event.HitCornerTopRight
	case left:
		return event.HitBorderLeft
	case right:
		return event.HitBorderRight
	case top:
		return event.HitBorderTop
	case bottom:
		return event.HitBorderBottom
	}
	return event.HitOutside
}

func (r *Root) HandleEvent(e event.Event) bool {
	if e.Is(event.GUIToolbarOpen) {
		r.ProcessEvent(event.SetKeyboardTarget(r.ID(), event.GroupToolbar, event.Forward))
		return true
	}
	return r.Base.HandleEvent(e)
}
