package widgets

import (
	"github.com/framegrace/texelgui/draw"
	"github.com/framegrace/texelgui/event"
	"github.com/framegrace/texelgui/geo"
	"github.com/framegrace/texelgui/widget"
)

// focusGrouped is implemented by widgets whose focus groups can be changed
// by the container they are placed in.
type focusGrouped interface {
	SetFocusGroups(g event.FocusGroup)
}

// Toolbar is the one-row strip at the top of a window. Its items take focus
// in the toolbar group and the empty part of the strip moves the window.
type Toolbar struct {
	Stack
}

// NewToolbar creates an empty toolbar.
func NewToolbar() *Toolbar {
	t := &Toolbar{}
	t.Axis = Horizontal
	t.Spacing = 1
	t.Init(t)
	t.SetNesting(1)
	return t
}

// Add appends w. Buttons placed on a toolbar move to the toolbar focus group.
func (t *Toolbar) Add(w widget.Widget) widget.Widget {
	if fg, ok := w.(focusGrouped); ok {
		fg.SetFocusGroups(event.GroupToolbar | event.GroupMouse)
	}
	return t.Stack.Add(w)
}

func (t *Toolbar) UpdateConstraints() widget.BoxConstraints {
	c := t.Stack.UpdateConstraints()
	h := max(c.Preferred.H, 1)
	c.Minimum.H, c.Preferred.H, c.Maximum.H = h, h, h
	c.Maximum.W = widget.Large
	return c.Normalize()
}

func (t *Toolbar) HitboxTest(p geo.Point) event.Hitbox {
	if h := widget.HitboxTestChildren(t, p); !h.Empty() {
		return h
	}
	return t.Hit(p, event.HitMoveArea)
}

func (t *Toolbar) Draw(ctx *draw.Context) {
	if !t.Drawable(ctx) {
		return
	}
	local := t.LocalContext(ctx)
	local.Fill(t.Layout().Rectangle(), t.Theme().ToolbarStyle())
	widget.DrawChildren(t, ctx)
}
