// Package widgets holds the concrete widgets built on package widget.
package widgets

import (
	"iter"
	"slices"

	"github.com/framegrace/texelgui/geo"
	"github.com/framegrace/texelgui/widget"
)

// Axis is the direction a Stack lays out its children.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Stack lays out children in a row or a column. Children start at their
// preferred size; spare room is shared out up to each child's maximum and
// missing room is taken back down to each child's minimum.
type Stack struct {
	widget.Base
	Axis Axis
	// Spacing between children in cells; negative uses the theme spacing.
	Spacing int
	// Margins around the stack inside its parent, in cells.
	Margins geo.Margins

	children    []widget.Widget
	constraints []widget.BoxConstraints
}

// NewStack creates an empty stack.
func NewStack(axis Axis) *Stack {
	s := &Stack{Axis: axis, Spacing: -1}
	s.Init(s)
	return s
}

// NewRow creates a horizontal stack.
func NewRow() *Stack { return NewStack(Horizontal) }

// NewColumn creates a vertical stack.
func NewColumn() *Stack { return NewStack(Vertical) }

// Add appends w and returns it.
func (s *Stack) Add(w widget.Widget) widget.Widget {
	s.children = append(s.children, w)
	s.Adopt(w)
	return w
}

// Remove detaches w from the stack.
func (s *Stack) Remove(w widget.Widget) {
	i := slices.Index(s.children, w)
	if i < 0 {
		return
	}
	s.children = slices.Delete(s.children, i, i+1)
	s.Orphan(w)
}

// Len returns the number of children, invisible ones included.
func (s *Stack) Len() int { return len(s.children) }

func (s *Stack) Children(includeInvisible bool) iter.Seq[widget.Widget] {
	return widget.VisibleChildren(s.children, includeInvisible)
}

func (s *Stack) spacing() float32 {
	if s.Spacing >= 0 {
		return float32(s.Spacing)
	}
	return float32(s.Theme().Spacing)
}

// along splits an extent into the stacking axis and the cross axis.
func (s *Stack) along(e geo.Extent) (main, cross float32) {
	if s.Axis == Horizontal {
		return e.W, e.H
	}
	return e.H, e.W
}

func (s *Stack) extent(main, cross float32) geo.Extent {
	if s.Axis == Horizontal {
		return geo.Ext(main, cross)
	}
	return geo.Ext(cross, main)
}

func (s *Stack) margins(m geo.Margins) (before, after, cross float32) {
	if s.Axis == Horizontal {
		return m.Left, m.Right, m.Vertical()
	}
	return m.Top, m.Bottom, m.Horizontal()
}

func (s *Stack) UpdateConstraints() widget.BoxConstraints {
	s.constraints = s.constraints[:0]
	var minMain, prefMain, maxMain float32
	var minCross, prefCross, maxCross float32
	gap := s.spacing()
	n := 0
	for _, child := range s.children {
		c := widget.ConstraintsOf(child)
		s.constraints = append(s.constraints, c)
		if child.AsBase().Mode() == widget.Collapse {
			continue
		}
		if n > 0 {
			minMain += gap
			prefMain += gap
			maxMain += gap
		}
		n++
		before, after, crossMargin := s.margins(c.Margins)
		mn, mc := s.along(c.Minimum)
		pn, pc := s.along(c.Preferred)
		xn, xc := s.along(c.Maximum)
		minMain += before + mn + after
		prefMain += before + pn + after
		maxMain += before + xn + after
		minCross = max(minCross, mc+crossMargin)
		prefCross = max(prefCross, pc+crossMargin)
		maxCross = max(maxCross, xc+crossMargin)
	}
	return widget.BoxConstraints{
		Minimum:   s.extent(minMain, minCross),
		Preferred: s.extent(prefMain, prefCross),
		Maximum:   s.extent(min(maxMain, widget.Large), min(maxCross, widget.Large)),
		Margins:   s.Margins,
	}.Normalize()
}

// distribute returns the main-axis size of each child for the available
// room. Sizes stay whole cells.
func distribute(cons []widget.BoxConstraints, collapsed []bool, mainOf func(geo.Extent) float32, avail float32) []float32 {
	sizes := make([]float32, len(cons))
	total := float32(0)
	for i, c := range cons {
		if collapsed[i] {
			continue
		}
		sizes[i] = mainOf(c.Preferred)
		total += sizes[i]
	}
	for avail-total >= 1 || total-avail >= 1 {
		grow := total < avail
		changed := false
		for i, c := range cons {
			if collapsed[i] {
				continue
			}
			switch {
			case grow && avail-total >= 1 && sizes[i]+1 <= mainOf(c.Maximum):
				sizes[i]++
				total++
				changed = true
			case !grow && total-avail >= 1 && sizes[i]-1 >= mainOf(c.Minimum):
				sizes[i]--
				total--
				changed = true
			}
		}
		if !changed {
			break
		}
	}
	return sizes
}

func (s *Stack) SetLayout(l widget.Layout) {
	s.Base.SetLayout(l)
	if len(s.constraints) != len(s.children) {
		s.UpdateConstraints()
	}
	gap := s.spacing()
	collapsed := make([]bool, len(s.children))
	avail, crossAvail := s.along(l.Size())
	visible := 0
	for i, child := range s.children {
		collapsed[i] = child.AsBase().Mode() == widget.Collapse
		if collapsed[i] {
			continue
		}
		before, after, _ := s.margins(s.constraints[i].Margins)
		avail -= before + after
		if visible > 0 {
			avail -= gap
		}
		visible++
	}
	mainOf := func(e geo.Extent) float32 {
		m, _ := s.along(e)
		return m
	}
	sizes := distribute(s.constraints, collapsed, mainOf, max(avail, 0))

	pos := float32(0)
	first := true
	for i, child := range s.children {
		if collapsed[i] {
			child.SetLayout(l.Child(geo.Rect{}, 1))
			continue
		}
		c := s.constraints[i]
		if !first {
			pos += gap
		}
		first = false
		before, after, _ := s.margins(c.Margins)
		pos += before
		var cell geo.Rect
		if s.Axis == Horizontal {
			cell = geo.Rect{X: pos, Y: c.Margins.Top, W: sizes[i], H: crossAvail - c.Margins.Vertical()}
		} else {
			cell = geo.Rect{X: c.Margins.Left, Y: pos, W: crossAvail - c.Margins.Horizontal(), H: sizes[i]}
		}
		size := c.Clamp(cell.Extent())
		child.SetLayout(l.Child(c.Alignment.Place(size, cell), 1))
		pos += sizes[i] + after
	}
}
