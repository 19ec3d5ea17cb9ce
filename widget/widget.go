// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widget/widget.go
// Summary: The widget contract and the window-side interface widgets talk to.
// Usage: Concrete widgets embed Base, call Init(self) from their
// constructor and override the methods they need.
// Notes: Parents own children. Children refer back to their parent by id,
// resolved through the owner's arena.

package widget

import (
	"iter"

	"github.com/framegrace/texelgui/draw"
	"github.com/framegrace/texelgui/event"
	"github.com/framegrace/texelgui/geo"
	"github.com/framegrace/texelgui/ids"
	"github.com/framegrace/texelgui/theme"
)

// Widget is a node in the user interface tree.
type Widget interface {
	ID() ids.WidgetID
	AsBase() *Base

	// Children yields the direct children. Invisible and collapsed
	// children are skipped unless includeInvisible is set.
	Children(includeInvisible bool) iter.Seq[Widget]

	// UpdateConstraints is called bottom-up before layout.
	UpdateConstraints() BoxConstraints
	// SetLayout records the layout and lays out children.
	SetLayout(l Layout)
	Draw(ctx *draw.Context)

	// HitboxTest returns the front-most hit among the widget and its
	// children for a point in local coordinates.
	HitboxTest(p geo.Point) event.Hitbox
	AcceptsKeyboardFocus(group event.FocusGroup) bool
	HandleEvent(e event.Event) bool
	Restyle(pixelDensity float32)
	// ScrollToShow asks ancestors to bring a local rectangle into view.
	ScrollToShow(r geo.Rect)
}

// Owner is the window a widget tree is attached to.
type Owner interface {
	// ProcessEvent sends an event into the window's event path.
	ProcessEvent(e event.Event) bool
	// Lookup resolves a widget id in the arena.
	Lookup(id ids.WidgetID) Widget
	Register(w Widget)
	Unregister(id ids.WidgetID)
	// Theme returns the theme transformed for the current pixel density.
	Theme() *theme.Theme
}

// Arena maps widget ids to live widgets.
type Arena struct {
	widgets map[ids.WidgetID]Widget
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{widgets: make(map[ids.WidgetID]Widget)}
}

// Register adds w. Registering a second widget under the same id panics.
func (a *Arena) Register(w Widget) {
	if prev, ok := a.widgets[w.ID()]; ok && prev != w {
		panic("widget: duplicate registration of " + w.ID().String())
	}
	a.widgets[w.ID()] = w
}

// Unregister removes id.
func (a *Arena) Unregister(id ids.WidgetID) { delete(a.widgets, id) }

// Lookup returns the widget with id, or nil.
func (a *Arena) Lookup(id ids.WidgetID) Widget {
	if id.IsEmpty() {
		return nil
	}
	return a.widgets[id]
}

// Len returns the number of registered widgets.
func (a *Arena) Len() int { return len(a.widgets) }

// ConstraintsOf returns the constraints of w, or zero constraints when it
// is collapsed.
func ConstraintsOf(w Widget) BoxConstraints {
	if w.AsBase().Mode() == Collapse {
		return Collapsed()
	}
	return w.UpdateConstraints()
}

// VisibleChildren filters a child list for Children implementations.
func VisibleChildren(children []Widget, includeInvisible bool) iter.Seq[Widget] {
	return func(yield func(Widget) bool) {
		for _, c := range children {
			if c == nil {
				continue
			}
			if !includeInvisible && !c.AsBase().Mode().Visible() {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}
