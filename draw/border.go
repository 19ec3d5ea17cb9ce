// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: draw/border.go
// Summary: Box-drawing frames.

package draw

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgui/geo"
)

// Charset holds the runes of a frame: h, v, tl, tr, bl, br.
type Charset [6]rune

var (
	SingleLine = Charset{'─', '│', '┌', '┐', '└', '┘'}
	DoubleLine = Charset{'═', '║', '╔', '╗', '╚', '╝'}
	Rounded    = Charset{'─', '│', '╭', '╮', '╰', '╯'}
)

// DrawBorder frames a local rectangle. Rectangles smaller than 2x2 cells are
// skipped.
func (c *Context) DrawBorder(r geo.Rect, style tcell.Style, cs Charset) {
	if r.W < 2 || r.H < 2 {
		return
	}
	x0, y0 := r.X, r.Y
	x1, y1 := r.Right()-1, r.Bottom()-1
	for x := x0 + 1; x < x1; x++ {
		c.SetCell(geo.Pt(x, y0), cs[0], nil, style)
		c.SetCell(geo.Pt(x, y1), cs[0], nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		c.SetCell(geo.Pt(x0, y), cs[1], nil, style)
		c.SetCell(geo.Pt(x1, y), cs[1], nil, style)
	}
	c.SetCell(geo.Pt(x0, y0), cs[2], nil, style)
	c.SetCell(geo.Pt(x1, y0), cs[3], nil, style)
	c.SetCell(geo.Pt(x0, y1), cs[4], nil, style)
	c.SetCell(geo.Pt(x1, y1), cs[5], nil, style)
}
