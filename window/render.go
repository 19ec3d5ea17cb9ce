// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: window/render.go
// Summary: Per-frame pipeline: restyle, reconstrain, resize negotiation,
// relayout and redraw.

package window

import (
	"log"
	"time"

	"github.com/framegrace/texelgui/geo"
	"github.com/framegrace/texelgui/host"
	"github.com/framegrace/texelgui/widget"
)

// Render runs one frame. Only the parts of the pipeline whose flags were
// raised since the last frame are executed, and only the accumulated
// redraw rectangle is painted.
func (w *Window) Render(displayTime time.Time) {
	if !w.surface.HasDevice() {
		return
	}
	w.lastDisplay = displayTime
	if !w.restored {
		w.restoreState()
	}

	if w.restyle.Swap(false) {
		density := w.host.PixelDensity()
		w.theme = w.baseTheme.Transform(density)
		w.root.Restyle(density)
		w.reconstrain.Store(true)
	}

	resize := w.resize.Swap(false)
	if w.reconstrain.Swap(false) || resize {
		w.constraints = w.root.UpdateConstraints()
		w.relayout.Store(true)
	}

	w.negotiateSize(resize)
	if !w.constraints.Contains(w.size) {
		return
	}

	w.surface.Update(w.size)
	if w.size != w.widgetSize {
		w.widgetSize = w.size
		w.relayout.Store(true)
	}

	if w.relayout.Swap(false) {
		dir := host.LeftToRight
		if !w.host.LeftToRight() {
			dir = host.RightToLeft
		}
		size := w.constraints.Minimum.Max(w.widgetSize)
		w.root.SetLayout(widget.RootLayout(size, displayTime, w.host.SubpixelOrientation(), dir, w.sizeState))
		w.RequestRedrawAll()
	}

	dirty := w.takeRedraw()
	if dirty.Empty() {
		return
	}
	ctx, ok := w.surface.RenderStart(dirty)
	if !ok {
		w.RequestRedraw(dirty)
		return
	}
	ctx.DisplayTime = displayTime
	ctx.Subpixel = w.host.SubpixelOrientation()
	ctx.ActiveSaturation = w.animator.Get(keyActive, displayTime)
	if w.animator.IsAnimating(keyActive, displayTime) {
		w.RequestRedrawAll()
	}
	w.root.Draw(ctx)
	w.surface.RenderFinish(ctx)
}

// negotiateSize asks the host for a new window size. A resize requested by
// a widget, and a first frame before the host reported any size, ask for the
// preferred size; otherwise the current size is clamped into the
// constraints.
func (w *Window) negotiateSize(resize bool) {
	first := !w.shown
	w.shown = true
	if resize || (first && w.size.Empty()) {
		want := w.constraints.Preferred
		if !w.requested.Empty() {
			want = w.constraints.Clamp(w.requested)
			w.requested = geo.Extent{}
		}
		if want != w.size {
			log.Printf("Window: %q requests preferred size %gx%g", w.title, want.W, want.H)
			w.host.SetWindowSize(want)
		}
		w.RequestRedrawAll()
		return
	}

	if w.size.Empty() {
		return
	}
	clamped := w.constraints.Clamp(w.size)
	if clamped != w.size && w.sizeState != host.SizeMinimized {
		log.Printf("Window: %q size %gx%g must change to %gx%g to fit the widgets", w.title, w.size.W, w.size.H, clamped.W, clamped.H)
		w.host.SetWindowSize(clamped)
		w.RequestRedrawAll()
	}
}
