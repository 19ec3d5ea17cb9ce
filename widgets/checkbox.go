package widgets

import (
	"github.com/framegrace/texelgui/draw"
	"github.com/framegrace/texelgui/geo"
	"github.com/framegrace/texelgui/theme"
	"github.com/framegrace/texelgui/widget"
)

// Checkbox is a toggle button drawn as "[X] Label" or "[ ] Label". When
// focused a "> " marker is shown in front.
type Checkbox struct {
	Button
}

// NewCheckbox creates an unchecked checkbox. onChange receives the new
// state.
func NewCheckbox(label string, onChange func(checked bool)) *Checkbox {
	c := &Checkbox{}
	c.setup(label, onChange)
	c.Toggle = true
	c.Init(c)
	return c
}

// Checked reports the current state.
func (c *Checkbox) Checked() bool { return c.On() }

// SetChecked changes the state without running the callback.
func (c *Checkbox) SetChecked(v bool) { c.SetOn(v) }

func (c *Checkbox) UpdateConstraints() widget.BoxConstraints {
	// Width: "> [X] " + label.
	return widget.Fixed(geo.Ext(float32(6+draw.TextWidth(c.Label)), 1))
}

func (c *Checkbox) Draw(ctx *draw.Context) {
	if !c.Drawable(ctx) {
		return
	}
	local := c.LocalContext(ctx)
	r := c.Layout().Rectangle()
	// The check mark shows the state; the body does not light up.
	style := c.Theme().Style(c.ThemeState()&^theme.StateOn, c.SemanticLayer())
	local.Fill(r, style)

	cursor := "  "
	if c.Focused() {
		cursor = "> "
	}
	check := "[ ] "
	if c.Checked() {
		check = "[X] "
	}
	local.DrawText(geo.Pt(0, 0), draw.Truncate(cursor+check+c.Label, int(r.W)), style)
}
