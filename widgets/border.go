package widgets

import (
	"iter"

	"github.com/framegrace/texelgui/draw"
	"github.com/framegrace/texelgui/geo"
	"github.com/framegrace/texelgui/theme"
	"github.com/framegrace/texelgui/widget"
)

// Border draws a frame around a single child and starts a new semantic
// layer for it.
type Border struct {
	widget.Base
	Charset draw.Charset
	child   widget.Widget
}

// NewBorder frames child, which may be nil.
func NewBorder(child widget.Widget) *Border {
	b := &Border{Charset: draw.SingleLine}
	b.Init(b)
	b.SetNesting(1)
	b.SetMode(widget.Display)
	if child != nil {
		b.SetChild(child)
	}
	return b
}

// SetChild replaces the framed widget.
func (b *Border) SetChild(w widget.Widget) {
	if b.child != nil {
		b.Orphan(b.child)
	}
	b.child = w
	if w != nil {
		b.Adopt(w)
	}
}

// Child returns the framed widget.
func (b *Border) Child() widget.Widget { return b.child }

func (b *Border) Children(includeInvisible bool) iter.Seq[widget.Widget] {
	if b.child == nil {
		return widget.VisibleChildren(nil, includeInvisible)
	}
	return widget.VisibleChildren([]widget.Widget{b.child}, includeInvisible)
}

func (b *Border) UpdateConstraints() widget.BoxConstraints {
	frame := geo.Ext(2, 2)
	if b.child == nil {
		return widget.Flexible(frame, frame)
	}
	c := widget.ConstraintsOf(b.child)
	inner := geo.Ext(c.Margins.Horizontal()+2, c.Margins.Vertical()+2)
	return widget.BoxConstraints{
		Minimum:   geo.Ext(c.Minimum.W+inner.W, c.Minimum.H+inner.H),
		Preferred: geo.Ext(c.Preferred.W+inner.W, c.Preferred.H+inner.H),
		Maximum:   geo.Ext(min(c.Maximum.W+inner.W, widget.Large), min(c.Maximum.H+inner.H, widget.Large)),
	}.Normalize()
}

// ClientRect is the area inside the frame, in local coordinates.
func (b *Border) ClientRect() geo.Rect {
	r := b.Layout().Rectangle()
	if r.W < 2 || r.H < 2 {
		return geo.Rect{}
	}
	return r.Inset(geo.Uniform(1))
}

func (b *Border) SetLayout(l widget.Layout) {
	b.Base.SetLayout(l)
	if b.child == nil {
		return
	}
	c := widget.ConstraintsOf(b.child)
	inner := b.ClientRect().Inset(c.Margins)
	b.child.SetLayout(l.Child(c.Alignment.Place(c.Clamp(inner.Extent()), inner), 1))
}

func (b *Border) Draw(ctx *draw.Context) {
	if !b.Drawable(ctx) {
		return
	}
	local := b.LocalContext(ctx)
	state := b.ThemeState()
	if b.child != nil && b.child.AsBase().Focused() {
		state |= theme.StateFocus
	}
	local.Fill(b.Layout().Rectangle(), b.Theme().Style(theme.StateEnabled, b.SemanticLayer()+1))
	local.DrawBorder(b.Layout().Rectangle(), b.Theme().BorderStyle(state, b.SemanticLayer()), b.Charset)
	widget.DrawChildren(b, ctx)
}
