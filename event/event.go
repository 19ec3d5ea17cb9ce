// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: event/event.go
// Summary: The tagged GUI event value and its payloads.
// Notes: Payload accessors panic when the kind does not carry that payload.

package event

import (
	"fmt"
	"time"

	"github.com/framegrace/texelgui/geo"
	"github.com/framegrace/texelgui/ids"
)

// MouseButtons is a bitset of mouse buttons.
type MouseButtons uint8

const (
	ButtonLeft MouseButtons = 1 << iota
	ButtonMiddle
	ButtonRight
	ButtonX1
	ButtonX2

	ButtonNone MouseButtons = 0
)

// Any reports whether at least one button is set.
func (b MouseButtons) Any() bool { return b != 0 }

// MouseData is the payload of mouse events.
type MouseData struct {
	// Position of the pointer. Converted to widget-local coordinates while
	// the event bubbles.
	Position geo.Point
	// DownPosition is the position of the last button-down, the drag origin.
	DownPosition geo.Point
	WheelDelta   geo.Vector
	// Cause is the set of buttons that generated this event.
	Cause MouseButtons
	// Down is the set of buttons currently held.
	Down       MouseButtons
	ClickCount int
	// Hitbox is the hit-test result attached by the window, when HasHitbox.
	Hitbox    Hitbox
	HasHitbox bool
}

// FocusGroup selects which widgets are eligible for a keyboard focus request.
type FocusGroup uint8

const (
	GroupNormal  FocusGroup = 1
	GroupMenu    FocusGroup = 2
	GroupToolbar FocusGroup = 4
	GroupMouse   FocusGroup = 8
	GroupAll     FocusGroup = 15
)

// Intersects reports whether both groups share a member.
func (g FocusGroup) Intersects(o FocusGroup) bool { return g&o != 0 }

func (g FocusGroup) String() string {
	switch g {
	case GroupNormal:
		return "normal"
	case GroupMenu:
		return "menu"
	case GroupToolbar:
		return "toolbar"
	case GroupMouse:
		return "mouse"
	case GroupAll:
		return "all"
	}
	return fmt.Sprintf("group(%d)", uint8(g))
}

// FocusDirection is the direction of a keyboard focus request.
type FocusDirection uint8

const (
	Here FocusDirection = iota
	Forward
	Backward
)

func (d FocusDirection) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	}
	return "here"
}

// KeyboardTarget is the payload of window_set_keyboard_target.
type KeyboardTarget struct {
	WidgetID  ids.WidgetID
	Group     FocusGroup
	Direction FocusDirection
}

// Event is a GUI event. The payload is selected by Kind; see VariantOf.
type Event struct {
	kind Kind

	// Time the event was created.
	Time time.Time
	// Modifiers held while the event was generated; used by both keyboard
	// and mouse events.
	Modifiers Modifiers
	State     KeyboardState

	mouse  MouseData
	key    VirtualKey
	target KeyboardTarget
	text   string
	rect   geo.RectI
}

// New creates an event of the given kind stamped with the current time.
func New(kind Kind) Event {
	e := Event{Time: time.Now()}
	e.SetKind(kind)
	return e
}

// NewAt creates an event with an explicit time, modifiers and state.
func NewAt(kind Kind, t time.Time, mods Modifiers, state KeyboardState) Event {
	e := Event{Time: t, Modifiers: mods, State: state}
	e.SetKind(kind)
	return e
}

// Key creates a keyboard event.
func Key(kind Kind, key VirtualKey, mods Modifiers) Event {
	e := New(kind)
	*e.Key() = key
	e.Modifiers = mods
	return e
}

// Mouse creates a mouse event at a position.
func Mouse(kind Kind, pos geo.Point) Event {
	e := New(kind)
	e.Mouse().Position = pos
	return e
}

// MouseEnterAt creates a mouse_enter event.
func MouseEnterAt(pos geo.Point) Event { return Mouse(MouseEnter, pos) }

// GraphemeEvent creates a keyboard_grapheme (or partial) event.
func GraphemeEvent(cluster string, partial bool) Event {
	kind := KeyboardGrapheme
	if partial {
		kind = KeyboardPartialGrapheme
	}
	e := New(kind)
	*e.Grapheme() = cluster
	return e
}

// SetKeyboardTarget creates a window_set_keyboard_target request.
func SetKeyboardTarget(id ids.WidgetID, group FocusGroup, dir FocusDirection) Event {
	e := New(WindowSetKeyboardTarget)
	*e.Target() = KeyboardTarget{WidgetID: id, Group: group, Direction: dir}
	return e
}

// ClipboardEvent creates window_set_clipboard or text_edit_paste.
func ClipboardEvent(kind Kind, text string) Event {
	e := New(kind)
	*e.Clipboard() = text
	return e
}

// Redraw creates a window_redraw request for a rectangle.
func Redraw(r geo.RectI) Event {
	e := New(WindowRedraw)
	*e.Rectangle() = r
	return e
}

// Kind returns the event kind.
func (e Event) Kind() Kind { return e.kind }

// Variant returns the payload variant.
func (e Event) Variant() Variant { return VariantOf(e.kind) }

// SetKind changes the kind. When the payload variant changes the payload is
// reset to the default of the new variant.
func (e *Event) SetKind(kind Kind) {
	prev := VariantOf(e.kind)
	e.kind = kind
	if prev == VariantOf(kind) {
		return
	}
	e.mouse = MouseData{}
	e.key = KeyNul
	e.target = KeyboardTarget{Group: GroupNormal, Direction: Here}
	e.text = ""
	e.rect = geo.RectI{}
}

func (e *Event) require(v Variant) {
	if got := VariantOf(e.kind); got != v {
		panic(fmt.Sprintf("event: %s payload requested from %s event (variant %s)", v, e.kind, got))
	}
}

// Mouse returns the mouse payload.
func (e *Event) Mouse() *MouseData {
	e.require(VariantMouse)
	return &e.mouse
}

// Key returns the virtual key payload.
func (e *Event) Key() *VirtualKey {
	e.require(VariantKeyboard)
	return &e.key
}

// Target returns the keyboard target payload.
func (e *Event) Target() *KeyboardTarget {
	e.require(VariantKeyboardTarget)
	return &e.target
}

// Grapheme returns the grapheme payload.
func (e *Event) Grapheme() *string {
	e.require(VariantGrapheme)
	return &e.text
}

// Clipboard returns the clipboard payload.
func (e *Event) Clipboard() *string {
	e.require(VariantClipboard)
	return &e.text
}

// Rectangle returns the rectangle payload.
func (e *Event) Rectangle() *geo.RectI {
	e.require(VariantRectangle)
	return &e.rect
}

// Is reports whether the event has kind k.
func (e Event) Is(k Kind) bool { return e.kind == k }

// IsMouse reports whether the event carries a mouse payload.
func (e Event) IsMouse() bool { return VariantOf(e.kind) == VariantMouse }

// IsKeyDown reports whether the event is a keyboard_down of key with exactly
// the given modifiers.
func (e Event) IsKeyDown(key VirtualKey, mods Modifiers) bool {
	return e.kind == KeyboardDown && e.key == key && e.Modifiers == mods
}

// Transform maps the positions of a mouse event through t. Other events are
// returned unchanged.
func Transform(t geo.Transform, e Event) Event {
	if VariantOf(e.kind) != VariantMouse {
		return e
	}
	e.mouse.Position = t.Point(e.mouse.Position)
	e.mouse.DownPosition = t.Point(e.mouse.DownPosition)
	e.mouse.WheelDelta = t.Vector(e.mouse.WheelDelta)
	return e
}

func (e Event) String() string {
	switch VariantOf(e.kind) {
	case VariantMouse:
		return fmt.Sprintf("%s(%g,%g)", e.kind, e.mouse.Position.X, e.mouse.Position.Y)
	case VariantKeyboard:
		if e.key == KeyNul {
			return e.kind.String()
		}
		if e.Modifiers != ModNone {
			return fmt.Sprintf("%s(%s+%s)", e.kind, e.Modifiers, e.key)
		}
		return fmt.Sprintf("%s(%s)", e.kind, e.key)
	case VariantKeyboardTarget:
		return fmt.Sprintf("%s(%d,%s,%s)", e.kind, e.target.WidgetID, e.target.Group, e.target.Direction)
	case VariantGrapheme, VariantClipboard:
		return fmt.Sprintf("%s(%q)", e.kind, e.text)
	case VariantRectangle:
		return fmt.Sprintf("%s(%v)", e.kind, e.rect)
	}
	return e.kind.String()
}
