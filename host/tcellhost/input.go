// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: host/tcellhost/input.go
// Summary: Translation of tcell events into GUI events.
// Notes: Terminals report no key releases and no pointer leaving, so only
// keyboard_down is produced and focus loss stands in for mouse_exit_window.

package tcellhost

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgui/event"
	"github.com/framegrace/texelgui/geo"
	"github.com/framegrace/texelgui/host"
)

var keyTable = map[tcell.Key]event.VirtualKey{
	tcell.KeyEnter:      event.KeyEnter,
	tcell.KeyTab:        event.KeyTab,
	tcell.KeyBacktab:    event.KeyTab,
	tcell.KeyBackspace:  event.KeyBackspace,
	tcell.KeyBackspace2: event.KeyBackspace,
	tcell.KeyEscape:     event.KeyEscape,
	tcell.KeyInsert:     event.KeyInsert,
	tcell.KeyDelete:     event.KeyDelete,
	tcell.KeyHome:       event.KeyHome,
	tcell.KeyEnd:        event.KeyEnd,
	tcell.KeyPgUp:       event.KeyPageUp,
	tcell.KeyPgDn:       event.KeyPageDown,
	tcell.KeyUp:         event.KeyUp,
	tcell.KeyDown:       event.KeyDown,
	tcell.KeyLeft:       event.KeyLeft,
	tcell.KeyRight:      event.KeyRight,
	tcell.KeyClear:      event.KeyClear,
	tcell.KeyPrint:      event.KeyPrintScreen,
	tcell.KeyPause:      event.KeyPauseBreak,
	tcell.KeyF1:         event.KeyF1,
	tcell.KeyF2:         event.KeyF2,
	tcell.KeyF3:         event.KeyF3,
	tcell.KeyF4:         event.KeyF4,
	tcell.KeyF5:         event.KeyF5,
	tcell.KeyF6:         event.KeyF6,
	tcell.KeyF7:         event.KeyF7,
	tcell.KeyF8:         event.KeyF8,
	tcell.KeyF9:         event.KeyF9,
	tcell.KeyF10:        event.KeyF10,
	tcell.KeyF11:        event.KeyF11,
	tcell.KeyF12:        event.KeyF12,
	tcell.KeyF13:        event.KeyF13,
	tcell.KeyF14:        event.KeyF14,
	tcell.KeyF15:        event.KeyF15,
	tcell.KeyF16:        event.KeyF16,
	tcell.KeyF17:        event.KeyF17,
	tcell.KeyF18:        event.KeyF18,
	tcell.KeyF19:        event.KeyF19,
	tcell.KeyF20:        event.KeyF20,
	tcell.KeyF21:        event.KeyF21,
	tcell.KeyF22:        event.KeyF22,
	tcell.KeyF23:        event.KeyF23,
	tcell.KeyF24:        event.KeyF24,
}

func modifiers(m tcell.ModMask) event.Modifiers {
	var out event.Modifiers
	if m&tcell.ModShift != 0 {
		out |= event.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		out |= event.ModControl
	}
	if m&tcell.ModAlt != 0 {
		out |= event.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		out |= event.ModSuper
	}
	return out
}

// decodeKey maps a non-rune tcell key to a virtual key and modifiers.
func decodeKey(ev *tcell.EventKey) (event.VirtualKey, event.Modifiers, bool) {
	mods := modifiers(ev.Modifiers())
	k := ev.Key()
	if vk, ok := keyTable[k]; ok {
		if k == tcell.KeyBacktab {
			mods |= event.ModShift
		}
		return vk, mods, true
	}
	switch {
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return event.KeyA + event.VirtualKey(k-tcell.KeyCtrlA), mods | event.ModControl, true
	case k == tcell.KeyCtrlSpace:
		return event.KeySpace, mods | event.ModControl, true
	}
	return event.KeyNul, mods, false
}

// translate turns one tcell event into GUI events.
func (h *Host) translate(ev tcell.Event) []event.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.key(ev)
	case *tcell.EventMouse:
		return append(h.commitGraphemes(ev.When()), h.mouse(ev)...)
	case *tcell.EventPaste:
		return h.pasteMarker(ev)
	case *tcell.EventFocus:
		out := h.commitGraphemes(ev.When())
		if ev.Focused {
			return append(out, stamp(event.New(event.WindowActivate), ev.When()))
		}
		h.buttons = 0
		h.hasMouse = false
		return append(out,
			stamp(event.New(event.MouseExitWindow), ev.When()),
			stamp(event.New(event.WindowDeactivate), ev.When()))
	case *tcell.EventClipboard:
		h.setMirror(string(ev.Data()))
	}
	return nil
}

func stamp(e event.Event, t time.Time) event.Event {
	e.Time = t
	return e
}

func (h *Host) key(ev *tcell.EventKey) []event.Event {
	when := ev.When()
	if h.pasting {
		switch ev.Key() {
		case tcell.KeyRune:
			h.paste = append(h.paste, ev.Rune())
		case tcell.KeyEnter:
			h.paste = append(h.paste, '\n')
		case tcell.KeyTab:
			h.paste = append(h.paste, '\t')
		}
		return nil
	}

	if ev.Key() != tcell.KeyRune {
		out := h.commitGraphemes(when)
		vk, mods, ok := decodeKey(ev)
		if !ok {
			return out
		}
		return append(out, stamp(event.Key(event.KeyboardDown, vk, mods), when))
	}

	r := ev.Rune()
	mods := modifiers(ev.Modifiers())
	var down []event.Event
	if vk, ok := event.KeyForRune(r); ok {
		if r >= 'A' && r <= 'Z' {
			mods |= event.ModShift
		}
		down = append(down, stamp(event.Key(event.KeyboardDown, vk, mods), when))
	}
	// Chords are commands, not text.
	if mods&(event.ModControl|event.ModAlt|event.ModSuper) != 0 {
		return append(h.commitGraphemes(when), down...)
	}

	var out []event.Event
	for _, cluster := range h.graphemes.PutRune(r) {
		out = append(out, stamp(event.GraphemeEvent(cluster, false), when))
	}
	out = append(out, down...)
	if pending := h.graphemes.Pending(); pending != "" {
		out = append(out, stamp(event.GraphemeEvent(pending, true), when))
	}
	h.lastRune = when
	return out
}

// commitGraphemes turns the cluster still being composed into a
// keyboard_grapheme.
func (h *Host) commitGraphemes(when time.Time) []event.Event {
	pending := h.graphemes.Flush()
	if pending == "" {
		return nil
	}
	return []event.Event{stamp(event.GraphemeEvent(pending, false), when)}
}

func (h *Host) composeExpired(now time.Time) bool {
	return h.graphemes.Pending() != "" && now.Sub(h.lastRune) >= composeTimeout
}

// pasteMarker collects bracketed paste input and emits it as graphemes
// once the paste ends.
func (h *Host) pasteMarker(ev *tcell.EventPaste) []event.Event {
	when := ev.When()
	if ev.Start() {
		out := h.commitGraphemes(when)
		h.pasting = true
		h.paste = h.paste[:0]
		return out
	}
	if !ev.End() || !h.pasting {
		return nil
	}
	h.pasting = false
	var out []event.Event
	for _, cluster := range host.Split(string(h.paste)) {
		out = append(out, stamp(event.GraphemeEvent(cluster, false), when))
	}
	h.paste = h.paste[:0]
	return out
}

func buttons(m tcell.ButtonMask) event.MouseButtons {
	var out event.MouseButtons
	if m&tcell.ButtonPrimary != 0 {
		out |= event.ButtonLeft
	}
	if m&tcell.ButtonSecondary != 0 {
		out |= event.ButtonRight
	}
	if m&tcell.ButtonMiddle != 0 {
		out |= event.ButtonMiddle
	}
	return out
}

var buttonOrder = []event.MouseButtons{event.ButtonLeft, event.ButtonMiddle, event.ButtonRight}

func (h *Host) mouse(ev *tcell.EventMouse) []event.Event {
	when := ev.When()
	x, y := ev.Position()
	pos := geo.Pt(float32(x), float32(y))
	mods := modifiers(ev.Modifiers())
	mask := ev.Buttons()
	down := buttons(mask)

	newMouse := func(kind event.Kind) event.Event {
		e := stamp(event.Mouse(kind, pos), when)
		e.Modifiers = mods
		e.Mouse().Down = down
		return e
	}

	var out []event.Event
	if !h.hasMouse || pos != h.mousePos {
		out = append(out, newMouse(event.MouseMove))
	}
	h.hasMouse = true
	h.mousePos = pos

	pressed := down &^ h.buttons
	released := h.buttons &^ down
	for _, b := range buttonOrder {
		switch {
		case pressed&b != 0:
			e := newMouse(event.MouseDown)
			m := e.Mouse()
			m.Cause = b
			m.ClickCount = h.clicks.Down(when, pos, b)
			out = append(out, e)
		case released&b != 0:
			e := newMouse(event.MouseUp)
			e.Mouse().Cause = b
			out = append(out, e)
		}
	}
	h.buttons = down

	var wheel geo.Vector
	if mask&tcell.WheelUp != 0 {
		wheel.Y++
	}
	if mask&tcell.WheelDown != 0 {
		wheel.Y--
	}
	if mask&tcell.WheelLeft != 0 {
		wheel.X++
	}
	if mask&tcell.WheelRight != 0 {
		wheel.X--
	}
	if wheel != (geo.Vector{}) {
		e := newMouse(event.MouseWheel)
		e.Mouse().WheelDelta = wheel
		out = append(out, e)
	}
	return out
}
