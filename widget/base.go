// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widget/base.go
// Summary: Default widget behaviour shared by every concrete widget.

package widget

import (
	"iter"

	"github.com/framegrace/texelgui/draw"
	"github.com/framegrace/texelgui/event"
	"github.com/framegrace/texelgui/geo"
	"github.com/framegrace/texelgui/ids"
	"github.com/framegrace/texelgui/theme"
)

// Base holds the state every widget has and implements the default
// behaviour of the Widget interface.
type Base struct {
	id     ids.WidgetID
	self   Widget
	parent ids.WidgetID
	owner  Owner

	mode  Mode
	layer int
	// nests is added to the semantic layer of adopted children.
	nests int

	layout Layout

	hover   bool
	focus   bool
	pressed bool
	on      bool
	active  bool
}

// Init allocates the widget id and records the concrete widget. It must be
// called once from the concrete constructor.
func (b *Base) Init(self Widget) {
	if b.self != nil {
		panic("widget: Init called twice")
	}
	b.id = ids.NextWidgetID()
	b.self = self
	b.mode = Enabled
	b.active = true
}

func (b *Base) mustInit() {
	if b.self == nil {
		panic("widget: Base used before Init")
	}
}

// ID returns the widget id.
func (b *Base) ID() ids.WidgetID { return b.id }

// AsBase returns b; it lets package functions reach the shared state.
func (b *Base) AsBase() *Base { return b }

// Self returns the concrete widget.
func (b *Base) Self() Widget { return b.self }

// Owner returns the window the widget is attached to, or nil.
func (b *Base) Owner() Owner { return b.owner }

// ParentID returns the parent id, zero for the root or a detached widget.
func (b *Base) ParentID() ids.WidgetID { return b.parent }

// Parent resolves the parent through the owner's arena.
func (b *Base) Parent() Widget {
	if b.owner == nil || b.parent.IsEmpty() {
		return nil
	}
	return b.owner.Lookup(b.parent)
}

// Mode returns the widget mode.
func (b *Base) Mode() Mode { return b.mode }

// SetMode changes the mode and asks the window to reconstrain.
func (b *Base) SetMode(m Mode) {
	if b.mode == m {
		return
	}
	b.mode = m
	b.RequestReconstrain()
}

// SemanticLayer returns the nesting depth used for theme colours.
func (b *Base) SemanticLayer() int { return b.layer }

// SetNesting makes this widget start a new semantic layer for its children.
func (b *Base) SetNesting(n int) { b.nests = n }

// Layout returns the last layout assigned.
func (b *Base) Layout() Layout { return b.layout }

func (b *Base) Hovered() bool { return b.hover }
func (b *Base) Focused() bool { return b.focus }
func (b *Base) Pressed() bool { return b.pressed }
func (b *Base) On() bool      { return b.on }
func (b *Base) Active() bool  { return b.active }

// SetPressed updates the pressed flag and requests a redraw on change.
func (b *Base) SetPressed(v bool) {
	if b.pressed != v {
		b.pressed = v
		b.RequestRedraw()
	}
}

// SetOn updates the on flag and requests a redraw on change.
func (b *Base) SetOn(v bool) {
	if b.on != v {
		b.on = v
		b.RequestRedraw()
	}
}

// ThemeState summarises the flags for theme.Style.
func (b *Base) ThemeState() theme.State {
	var s theme.State
	if b.mode <= Disabled {
		s |= theme.StateDisabled
	}
	if b.hover {
		s |= theme.StateHover
	}
	if b.pressed {
		s |= theme.StatePressed
	}
	if b.focus {
		s |= theme.StateFocus
	}
	if b.on {
		s |= theme.StateOn
	}
	if !b.active {
		s |= theme.StateInactive
	}
	return s
}

// Theme returns the owner's theme, or the fallback theme when detached.
func (b *Base) Theme() *theme.Theme {
	if b.owner != nil {
		if t := b.owner.Theme(); t != nil {
			return t
		}
	}
	return theme.Fallback()
}

// Adopt makes child a child of b. Containers call it when a child is added.
func (b *Base) Adopt(child Widget) {
	b.mustInit()
	cb := child.AsBase()
	cb.mustInit()
	if !cb.parent.IsEmpty() && cb.parent != b.id {
		panic("widget: " + cb.id.String() + " already has a parent")
	}
	cb.parent = b.id
	cb.setLayer(b.layer + b.nests)
	if b.owner != nil {
		cb.attach(b.owner)
		b.RequestReconstrain()
	}
}

// Orphan detaches child from b and from the arena.
func (b *Base) Orphan(child Widget) {
	cb := child.AsBase()
	if cb.parent != b.id {
		return
	}
	cb.detach()
	cb.parent = 0
	b.RequestReconstrain()
}

// Attach connects a root widget and its subtree to owner.
func (b *Base) Attach(owner Owner) {
	b.mustInit()
	b.attach(owner)
}

// Detach disconnects a root widget and its subtree.
func (b *Base) Detach() { b.detach() }

func (b *Base) attach(owner Owner) {
	b.owner = owner
	owner.Register(b.self)
	for child := range b.self.Children(true) {
		cb := child.AsBase()
		cb.parent = b.id
		cb.attach(owner)
	}
}

func (b *Base) detach() {
	for child := range b.self.Children(true) {
		child.AsBase().detach()
	}
	if b.owner != nil {
		b.owner.Unregister(b.id)
	}
	b.owner = nil
}

func (b *Base) setLayer(layer int) {
	b.layer = layer
	for child := range b.self.Children(true) {
		child.AsBase().setLayer(layer + b.nests)
	}
}

// ProcessEvent forwards an event to the owning window. A detached widget
// reports the event as handled.
func (b *Base) ProcessEvent(e event.Event) bool {
	if b.owner == nil {
		return true
	}
	return b.owner.ProcessEvent(e)
}

// RequestRedraw asks for the widget's visible area to be redrawn.
func (b *Base) RequestRedraw() {
	b.ProcessEvent(event.Redraw(b.layout.Clip.Bounding()))
}

// RequestRelayout asks for a new layout pass.
func (b *Base) RequestRelayout() { b.ProcessEvent(event.New(event.WindowRelayout)) }

// RequestReconstrain asks for constraints to be recomputed.
func (b *Base) RequestReconstrain() { b.ProcessEvent(event.New(event.WindowReconstrain)) }

// RequestResize asks the window to resize to its preferred size.
func (b *Base) RequestResize() { b.ProcessEvent(event.New(event.WindowResize)) }

// Children yields nothing; containers override it.
func (b *Base) Children(bool) iter.Seq[Widget] {
	return func(func(Widget) bool) {}
}

// UpdateConstraints returns zero constraints; leaves override it.
func (b *Base) UpdateConstraints() BoxConstraints { return BoxConstraints{} }

// SetLayout records l.
func (b *Base) SetLayout(l Layout) { b.layout = l }

// Draw draws the visible children.
func (b *Base) Draw(ctx *draw.Context) {
	if b.Drawable(ctx) {
		DrawChildren(b.self, ctx)
	}
}

// Drawable reports whether the widget is visible and inside the dirty area.
func (b *Base) Drawable(ctx *draw.Context) bool {
	return b.mode.Visible() && !b.layout.Empty() && ctx.Overlaps(b.layout.Clip)
}

// LocalContext returns a draw context in the widget's local coordinates.
func (b *Base) LocalContext(ctx *draw.Context) *draw.Context {
	return ctx.WithLayout(b.layout.ToWindow, b.layout.Clip)
}

// HitboxTest returns the best hit among the children.
func (b *Base) HitboxTest(p geo.Point) event.Hitbox {
	return HitboxTestChildren(b.self, p)
}

// Hit returns a hitbox of kind for the widget when it is interactive and p
// (local) is inside it, otherwise an empty hitbox.
func (b *Base) Hit(p geo.Point, kind event.HitboxKind) event.Hitbox {
	if b.mode.Interactive() && b.layout.Contains(p) {
		return event.NewHitbox(b.id, b.layout.Elevation, kind)
	}
	return event.Hitbox{}
}

// AcceptsKeyboardFocus is false by default.
func (b *Base) AcceptsKeyboardFocus(event.FocusGroup) bool { return false }

// Restyle restyles the children.
func (b *Base) Restyle(pixelDensity float32) {
	for child := range b.self.Children(true) {
		child.Restyle(pixelDensity)
	}
}

// ScrollToShow forwards the rectangle to the parent.
func (b *Base) ScrollToShow(r geo.Rect) {
	if p := b.Parent(); p != nil {
		p.ScrollToShow(b.layout.ToParent.Rect(r))
	}
}

// HandleEvent implements the behaviour shared by all widgets: hover and
// focus bookkeeping, keyboard navigation and window activation.
func (b *Base) HandleEvent(e event.Event) bool {
	b.mustInit()
	switch e.Kind() {
	case event.KeyboardEnter:
		b.focus = true
		b.self.ScrollToShow(b.layout.Rectangle())
		b.RequestRedraw()
		return true

	case event.KeyboardExit:
		b.focus = false
		b.RequestRedraw()
		return true

	case event.MouseEnter:
		b.hover = true
		b.RequestRedraw()
		return true

	case event.MouseExit:
		b.hover = false
		b.RequestRedraw()
		return true

	case event.GUIWidgetNext:
		b.ProcessEvent(event.SetKeyboardTarget(b.id, event.GroupNormal, event.Forward))
		return true

	case event.GUIWidgetPrev:
		b.ProcessEvent(event.SetKeyboardTarget(b.id, event.GroupNormal, event.Backward))
		return true

	case event.GUIActivateNext:
		b.ProcessEvent(event.New(event.GUIActivate))
		return b.ProcessEvent(event.New(event.GUIWidgetNext))

	case event.GUIToolbarNext:
		if b.mode.Interactive() && b.self.AcceptsKeyboardFocus(event.GroupToolbar) && !IsLast(b.self, event.GroupToolbar) {
			b.ProcessEvent(event.SetKeyboardTarget(b.id, event.GroupToolbar, event.Forward))
			return true
		}

	case event.GUIToolbarPrev:
		if b.mode.Interactive() && b.self.AcceptsKeyboardFocus(event.GroupToolbar) && !IsFirst(b.self, event.GroupToolbar) {
			b.ProcessEvent(event.SetKeyboardTarget(b.id, event.GroupToolbar, event.Backward))
			return true
		}

	case event.WindowActivate, event.WindowDeactivate:
		// Broadcast to every widget; never consumed.
		b.active = e.Is(event.WindowActivate)
		b.RequestRedraw()
	}
	return false
}
