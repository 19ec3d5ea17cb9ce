// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: window/targets.go
// Summary: Mouse target tracking and the keyboard focus state machine.
// Notes: mouse_exit to the old target always precedes mouse_enter to the
// new one. keyboard_exit to the old focus precedes the gui_cancel fan-out,
// which precedes keyboard_enter to the new focus.

package window

import (
	"github.com/framegrace/texelgui/event"
	"github.com/framegrace/texelgui/geo"
	"github.com/framegrace/texelgui/ids"
	"github.com/framegrace/texelgui/widget"
)

// updateMouseTarget moves the mouse target to id. src is the mouse event
// that caused the change; its position is given to mouse_enter.
func (w *Window) updateMouseTarget(id ids.WidgetID, src event.Event) {
	if id == w.mouseTarget {
		return
	}
	if old := w.mouseTarget; !old.IsEmpty() {
		w.mouseTarget = 0
		w.sendToLive(old, event.New(event.MouseExit))
	}
	if id.IsEmpty() {
		return
	}
	w.mouseTarget = id
	var pos geo.Point
	if src.IsMouse() {
		pos = src.Mouse().Position
	}
	enter := event.MouseEnterAt(pos)
	enter.Time = src.Time
	w.sendToLive(id, enter)
}

// setKeyboardTarget executes a window_set_keyboard_target request. A
// request without a widget moves focus from the current target, or clears
// it when no direction is given.
func (w *Window) setKeyboardTarget(id ids.WidgetID, group event.FocusGroup, dir event.FocusDirection) {
	switch {
	case id.IsEmpty() && dir == event.Here:
		w.updateKeyboardTarget(0, group)
	case id.IsEmpty():
		w.moveKeyboardTarget(w.keyboardTarget, group, dir)
	case dir == event.Here:
		w.updateKeyboardTarget(id, group)
	default:
		w.moveKeyboardTarget(id, group, dir)
	}
}

// moveKeyboardTarget focuses the widget after start in focus order. When
// nothing follows start the search restarts from the top, unless wrapping
// was turned off for the group.
func (w *Window) moveKeyboardTarget(start ids.WidgetID, group event.FocusGroup, dir event.FocusDirection) {
	next := widget.FindNextWidget(w.root, start, group, dir)
	if next == start && w.wraps(group) {
		next = widget.FindNextWidget(w.root, 0, group, dir)
	}
	w.updateKeyboardTarget(next, group)
}

// updateKeyboardTarget gives keyboard focus to id when that widget is
// visible and accepts focus in group, and clears focus otherwise. Every
// widget that is not id or one of its ancestors is sent gui_cancel.
func (w *Window) updateKeyboardTarget(id ids.WidgetID, group event.FocusGroup) {
	next := w.visibleWidget(id)
	var chain []ids.WidgetID
	if next != nil {
		chain = widget.ParentChain(next)
	}
	w.changeKeyboardTarget(next, group, chain)
}

// clearKeyboardTargetOnCancel drops focus after a routed gui_cancel. The
// focused widget and its ancestors already saw that gui_cancel, so the
// fan-out skips them.
func (w *Window) clearKeyboardTargetOnCancel() {
	var chain []ids.WidgetID
	if cur := w.arena.Lookup(w.keyboardTarget); cur != nil {
		chain = widget.ParentChain(cur)
	}
	w.changeKeyboardTarget(nil, event.GroupAll, chain)
}

// changeKeyboardTarget moves focus to next, or clears it when next is nil
// or does not accept group. Only refocusing the live target is a no-op.
// Clearing focus that is already empty still sends gui_cancel to every
// widget outside reject.
func (w *Window) changeKeyboardTarget(next widget.Widget, group event.FocusGroup, reject []ids.WidgetID) {
	if next != nil && !(next.AsBase().Mode().Interactive() && next.AcceptsKeyboardFocus(group)) {
		next = nil
	}

	cur := w.arena.Lookup(w.keyboardTarget)
	if cur == nil {
		w.keyboardTarget = 0
	}
	if cur != nil && next != nil && cur.ID() == next.ID() {
		return
	}

	if cur != nil {
		w.keyboardTarget = 0
		w.sendToLive(cur.ID(), event.New(event.KeyboardExit))
	}

	widget.HandleEventRecursive(w.root, event.New(event.GUICancel), reject)

	if next != nil {
		w.keyboardTarget = next.ID()
		w.sendToLive(next.ID(), event.New(event.KeyboardEnter))
	}
}

// visibleWidget returns the live widget with id when it and all its
// ancestors are visible.
func (w *Window) visibleWidget(id ids.WidgetID) widget.Widget {
	found := w.arena.Lookup(id)
	for cur := found; cur != nil; cur = cur.AsBase().Parent() {
		if !cur.AsBase().Mode().Visible() {
			return nil
		}
	}
	return found
}
