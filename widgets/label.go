package widgets

import (
	"github.com/framegrace/texelgui/draw"
	"github.com/framegrace/texelgui/geo"
	"github.com/framegrace/texelgui/widget"
)

// Label displays one line of text. It never takes focus.
type Label struct {
	widget.Base
	text  string
	Align widget.Align
}

// NewLabel creates a label.
func NewLabel(text string) *Label {
	l := &Label{text: text, Align: widget.AlignStart}
	l.Init(l)
	l.SetMode(widget.Display)
	return l
}

// Text returns the label text.
func (l *Label) Text() string { return l.text }

// SetText changes the text and asks for new constraints.
func (l *Label) SetText(s string) {
	if s == l.text {
		return
	}
	l.text = s
	l.RequestReconstrain()
}

func (l *Label) UpdateConstraints() widget.BoxConstraints {
	w := float32(draw.TextWidth(l.text))
	return widget.BoxConstraints{
		Minimum:   geo.Ext(min(w, 1), 1),
		Preferred: geo.Ext(w, 1),
		Maximum:   geo.Ext(widget.Large, 1),
	}
}

func (l *Label) Draw(ctx *draw.Context) {
	if !l.Drawable(ctx) {
		return
	}
	local := l.LocalContext(ctx)
	r := l.Layout().Rectangle()
	style := l.Theme().Style(l.ThemeState(), l.SemanticLayer())
	local.Fill(r, style)
	text := draw.Truncate(l.text, int(r.W))
	w := float32(draw.TextWidth(text))
	at := widget.Alignment{Horizontal: l.Align, Vertical: widget.AlignStart}.Place(geo.Ext(w, 1), r)
	local.DrawText(at.Origin(), text, style)
}
