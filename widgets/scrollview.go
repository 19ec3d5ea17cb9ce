package widgets

import (
	"iter"

	"github.com/framegrace/texelgui/draw"
	"github.com/framegrace/texelgui/event"
	"github.com/framegrace/texelgui/geo"
	"github.com/framegrace/texelgui/widget"
)

// ScrollView shows a window onto a child that may be larger than itself.
// A vertical scroll bar is drawn in the last column when the child is
// taller than the view.
type ScrollView struct {
	widget.Base
	child widget.Widget

	offset   geo.Vector
	content  geo.Extent
	viewport geo.Rect
	bar      bool
}

// NewScrollView wraps child.
func NewScrollView(child widget.Widget) *ScrollView {
	s := &ScrollView{child: child}
	s.Init(s)
	s.Adopt(child)
	return s
}

// Offset returns how far the child is scrolled.
func (s *ScrollView) Offset() geo.Vector { return s.offset }

func (s *ScrollView) Children(includeInvisible bool) iter.Seq[widget.Widget] {
	return widget.VisibleChildren([]widget.Widget{s.child}, includeInvisible)
}

func (s *ScrollView) UpdateConstraints() widget.BoxConstraints {
	c := widget.ConstraintsOf(s.child)
	pref := geo.Ext(c.Preferred.W+c.Margins.Horizontal()+1, c.Preferred.H+c.Margins.Vertical())
	return widget.Flexible(geo.Ext(2, 1), pref)
}

func (s *ScrollView) clampOffset() {
	maxX := max(s.content.W-s.viewport.W, 0)
	maxY := max(s.content.H-s.viewport.H, 0)
	s.offset.X = min(max(s.offset.X, 0), maxX)
	s.offset.Y = min(max(s.offset.Y, 0), maxY)
}

func (s *ScrollView) SetLayout(l widget.Layout) {
	s.Base.SetLayout(l)
	c := widget.ConstraintsOf(s.child)
	full := l.Rectangle()

	s.viewport = full
	s.bar = c.Preferred.H > full.H && full.W > 1
	if s.bar {
		s.viewport.W--
	}
	s.content = c.Clamp(c.Preferred.Max(s.viewport.Extent()))
	s.clampOffset()

	vp := l.Child(s.viewport, 0)
	shape := geo.Rect{X: -s.offset.X, Y: -s.offset.Y, W: s.content.W, H: s.content.H}
	s.child.SetLayout(vp.Child(shape, 1))
}

// scrollTo changes the offset and lays the child out again.
func (s *ScrollView) scrollTo(off geo.Vector) bool {
	old := s.offset
	s.offset = off
	s.clampOffset()
	if s.offset == old {
		return false
	}
	s.RequestRelayout()
	return true
}

func (s *ScrollView) ScrollToShow(r geo.Rect) {
	off := s.offset
	switch {
	case r.Y < 0:
		off.Y += r.Y
	case r.Bottom() > s.viewport.H:
		off.Y += min(r.Bottom()-s.viewport.H, r.Y)
	}
	switch {
	case r.X < 0:
		off.X += r.X
	case r.Right() > s.viewport.W:
		off.X += min(r.Right()-s.viewport.W, r.X)
	}
	before := s.offset
	s.scrollTo(off)
	shown := geo.Rect{X: r.X - (s.offset.X - before.X), Y: r.Y - (s.offset.Y - before.Y), W: r.W, H: r.H}.Intersect(s.viewport)
	s.Base.ScrollToShow(shown)
}

func (s *ScrollView) HitboxTest(p geo.Point) event.Hitbox {
	if s.bar && s.Mode().Interactive() && s.Layout().Contains(p) && p.X >= s.viewport.Right() {
		return event.NewHitbox(s.ID(), s.Layout().Elevation+1, event.HitScrollBar)
	}
	if !s.viewport.Contains(p) {
		return event.Hitbox{}
	}
	return widget.HitboxTestChildren(s, p)
}

// thumb returns the start row and length of the scroll bar thumb.
func (s *ScrollView) thumb() (float32, float32) {
	h := s.viewport.H
	if s.content.H <= 0 || h <= 0 {
		return 0, h
	}
	length := max(1, float32(int(h*h/s.content.H)))
	travel := h - length
	span := s.content.H - h
	if span <= 0 {
		return 0, h
	}
	return float32(int(travel * s.offset.Y / span)), length
}

func (s *ScrollView) HandleEvent(e event.Event) bool {
	switch e.Kind() {
	case event.MouseWheel:
		d := e.Mouse().WheelDelta
		s.scrollTo(geo.Vector{X: s.offset.X - d.X, Y: s.offset.Y - d.Y})
		return true

	case event.MouseDown, event.MouseDrag:
		m := e.Mouse()
		origin := m.Position
		if e.Is(event.MouseDrag) {
			origin = m.DownPosition
		}
		if !s.bar || origin.X < s.viewport.Right() {
			break
		}
		_, length := s.thumb()
		travel := s.viewport.H - length
		if travel > 0 {
			frac := min(max((m.Position.Y-length/2)/travel, 0), 1)
			s.scrollTo(geo.Vector{X: s.offset.X, Y: frac * (s.content.H - s.viewport.H)})
		}
		return true
	}
	return s.Base.HandleEvent(e)
}

func (s *ScrollView) Draw(ctx *draw.Context) {
	if !s.Drawable(ctx) {
		return
	}
	widget.DrawChildren(s, ctx)
	if !s.bar {
		return
	}
	local := s.LocalContext(ctx)
	style := s.Theme().BorderStyle(s.ThemeState(), s.SemanticLayer())
	x := s.viewport.Right()
	start, length := s.thumb()
	for y := float32(0); y < s.viewport.H; y++ {
		r := '│'
		if y >= start && y < start+length {
			r = '█'
		}
		local.SetCell(geo.Pt(x, y), r, nil, style)
	}
}
