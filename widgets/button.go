package widgets

import (
	"github.com/framegrace/texelgui/draw"
	"github.com/framegrace/texelgui/event"
	"github.com/framegrace/texelgui/geo"
	"github.com/framegrace/texelgui/widget"
)

// Button runs OnActivate when clicked or activated from the keyboard. A
// toggle button flips its On state first.
type Button struct {
	widget.Base
	Label      string
	Toggle     bool
	OnActivate func(on bool)

	groups event.FocusGroup
}

// NewButton creates a push button.
func NewButton(label string, onActivate func(on bool)) *Button {
	b := &Button{}
	b.setup(label, onActivate)
	b.Init(b)
	return b
}

func (b *Button) setup(label string, onActivate func(on bool)) {
	b.Label = label
	b.OnActivate = onActivate
	b.groups = event.GroupNormal | event.GroupMouse
}

// SetFocusGroups changes the focus groups the button accepts.
func (b *Button) SetFocusGroups(g event.FocusGroup) { b.groups = g }

func (b *Button) AcceptsKeyboardFocus(g event.FocusGroup) bool {
	return b.Mode().Interactive() && b.groups.Intersects(g)
}

func (b *Button) UpdateConstraints() widget.BoxConstraints {
	return widget.Fixed(geo.Ext(float32(draw.TextWidth(b.Label)+4), 1))
}

func (b *Button) HitboxTest(p geo.Point) event.Hitbox {
	return b.Hit(p, event.HitButton)
}

// Activate behaves as if the button was clicked.
func (b *Button) Activate() {
	if b.Toggle {
		b.SetOn(!b.On())
	}
	if b.OnActivate != nil {
		b.OnActivate(b.On())
	}
	b.RequestRedraw()
}

func (b *Button) HandleEvent(e event.Event) bool {
	switch e.Kind() {
	case event.GUIActivate, event.GUIActivateStay:
		if b.Mode().Interactive() {
			b.Activate()
			return true
		}

	case event.MouseDown:
		if b.Mode().Interactive() && e.Mouse().Cause == event.ButtonLeft {
			b.SetPressed(true)
			return true
		}

	case event.MouseDrag:
		if b.Pressed() || e.Mouse().Down == event.ButtonLeft {
			b.SetPressed(b.Layout().Rectangle().Contains(e.Mouse().Position))
			return true
		}

	case event.MouseUp:
		if e.Mouse().Cause == event.ButtonLeft {
			inside := b.Layout().Rectangle().Contains(e.Mouse().Position)
			b.SetPressed(false)
			if inside && b.Mode().Interactive() {
				b.Activate()
			}
			return true
		}

	case event.GUICancel:
		b.SetPressed(false)
	}
	return b.Base.HandleEvent(e)
}

func (b *Button) Draw(ctx *draw.Context) {
	if !b.Drawable(ctx) {
		return
	}
	local := b.LocalContext(ctx)
	r := b.Layout().Rectangle()
	style := b.Theme().Style(b.ThemeState(), b.SemanticLayer())
	local.Fill(r, style)
	local.DrawText(geo.Pt(0, 0), draw.Truncate("[ "+b.Label+" ]", int(r.W)), style)
}
