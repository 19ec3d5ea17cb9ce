// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: window/dispatch.go
// Summary: The window event path: lifecycle actions, target updates,
// keybinding translation, routing and bubbling.

package window

import (
	"log"

	"golang.org/x/text/unicode/norm"

	"github.com/framegrace/texelgui/event"
	"github.com/framegrace/texelgui/host"
	"github.com/framegrace/texelgui/ids"
	"github.com/framegrace/texelgui/widget"
)

// ProcessEvent runs e through the window. Window requests are executed
// directly; everything else is routed to the mouse or keyboard target and
// bubbles towards the root until a widget handles it.
func (w *Window) ProcessEvent(e event.Event) bool {
	switch e.Kind() {
	case event.WindowRedraw:
		w.RequestRedraw(*e.Rectangle())
		return true
	case event.WindowRelayout:
		w.relayout.Store(true)
		return true
	case event.WindowReconstrain:
		w.reconstrain.Store(true)
		return true
	case event.WindowResize:
		w.resize.Store(true)
		return true
	case event.WindowMinimize:
		w.host.SetSizeState(host.SizeMinimized)
		return true
	case event.WindowMaximize:
		w.host.SetSizeState(host.SizeMaximized)
		return true
	case event.WindowNormalize:
		w.host.SetSizeState(host.SizeNormal)
		return true
	case event.WindowClose:
		w.saveState()
		w.closed = true
		w.host.CloseWindow()
		return true
	case event.WindowOpenSysmenu:
		w.host.OpenSystemMenu()
		return true
	case event.WindowSetKeyboardTarget:
		t := *e.Target()
		w.setKeyboardTarget(t.WidgetID, t.Group, t.Direction)
		return true
	case event.WindowSetClipboard:
		w.host.PutTextOnClipboard(*e.Clipboard())
		return true
	case event.WindowActivate, event.WindowDeactivate:
		w.setActive(e)
		return true
	}

	w.trackButtons(&e)

	switch e.Kind() {
	case event.MouseExitWindow:
		w.updateMouseTarget(0, e)
	case event.MouseDown, event.MouseMove:
		m := e.Mouse()
		hit := widget.HitboxTestFromParent(w.root, m.Position)
		m.Hitbox = hit
		m.HasHitbox = true
		w.setCursor(host.CursorFor(hit.Kind))
		w.updateMouseTarget(hit.WidgetID, e)
		if e.Is(event.MouseDown) {
			w.updateKeyboardTarget(hit.WidgetID, event.GroupAll)
		}
	}

	events := []event.Event{e}
	w.bindings.Translate(e, &events)
	for i := 1; i < len(events); i++ {
		if events[i].Is(event.TextEditPaste) {
			*events[i].Clipboard() = w.clipboardText()
		}
	}

	target := w.keyboardTarget
	if e.IsMouse() {
		target = w.mouseTarget
	}
	handled := w.sendEvents(target, events)

	for _, ev := range events {
		if ev.Is(event.GUICancel) {
			w.clearKeyboardTargetOnCancel()
			break
		}
	}
	return handled
}

// trackButtons keeps the last mouse_down while buttons are held. Moves
// with a button down become drags, and drags and releases carry the down
// position and click count of the press.
func (w *Window) trackButtons(e *event.Event) {
	switch e.Kind() {
	case event.MouseDown:
		m := e.Mouse()
		m.DownPosition = m.Position
		w.mouseDown = *e
		w.hasMouseDown = true

	case event.MouseMove:
		if !w.hasMouseDown || !e.Mouse().Down.Any() {
			return
		}
		e.SetKind(event.MouseDrag)
		w.carryDown(e.Mouse())

	case event.MouseDrag:
		if w.hasMouseDown {
			w.carryDown(e.Mouse())
		}

	case event.MouseUp:
		if !w.hasMouseDown {
			return
		}
		w.carryDown(e.Mouse())
		if !e.Mouse().Down.Any() {
			w.hasMouseDown = false
		}

	case event.MouseExitWindow:
		w.hasMouseDown = false
	}
}

func (w *Window) carryDown(m *event.MouseData) {
	down := w.mouseDown.Mouse()
	m.DownPosition = down.Position
	m.ClickCount = down.ClickCount
}

func (w *Window) setCursor(c host.Cursor) {
	if c == w.cursor {
		return
	}
	w.cursor = c
	w.host.SetCursor(c)
}

// clipboardText reads the host clipboard for a paste. Failures paste
// nothing.
func (w *Window) clipboardText() string {
	text, ok := w.host.TextFromClipboard()
	if !ok {
		log.Printf("Window: clipboard has no text")
		return ""
	}
	return norm.NFC.String(text)
}

// sendEvents routes events to the widget with id, or to the root when id
// does not name a live widget. Each widget from the target up to the root
// is offered the events in order, in its own coordinates; the first widget
// to handle one ends the walk.
func (w *Window) sendEvents(id ids.WidgetID, events []event.Event) bool {
	var target widget.Widget = w.root
	if found := w.arena.Lookup(id); found != nil {
		target = found
	}
	for cur := target; cur != nil; cur = cur.AsBase().Parent() {
		fromWindow := cur.AsBase().Layout().FromWindow
		for _, e := range events {
			if cur.HandleEvent(event.Transform(fromWindow, e)) {
				return true
			}
		}
	}
	return false
}

// sendToLive is sendEvents for a single event that must only reach a live
// widget, never the root in its place.
func (w *Window) sendToLive(id ids.WidgetID, e event.Event) {
	if w.arena.Lookup(id) == nil {
		return
	}
	w.sendEvents(id, []event.Event{e})
}
