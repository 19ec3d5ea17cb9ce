// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package draw

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgui/geo"
)

type gridCanvas struct {
	w, h  int
	cells map[[2]int]rune
}

func newGrid(w, h int) *gridCanvas {
	return &gridCanvas{w: w, h: h, cells: make(map[[2]int]rune)}
}

func (g *gridCanvas) SetContent(x, y int, r rune, _ []rune, _ tcell.Style) {
	g.cells[[2]int{x, y}] = r
}

func (g *gridCanvas) Size() (int, int) { return g.w, g.h }

func TestFillIsClippedToDirty(t *testing.T) {
	g := newGrid(10, 10)
	ctx := NewContext(g, geo.RectI{X: 2, Y: 2, W: 3, H: 3})
	ctx.Fill(geo.Rect{W: 10, H: 10}, tcell.StyleDefault)
	if len(g.cells) != 9 {
		t.Fatalf("expected 9 painted cells, got %d", len(g.cells))
	}
	if _, ok := g.cells[[2]int{1, 1}]; ok {
		t.Fatalf("painted outside the dirty rectangle")
	}
}

func TestWithLayoutTranslatesAndClips(t *testing.T) {
	g := newGrid(20, 5)
	root := NewContext(g, geo.RectI{W: 20, H: 5})
	child := root.WithLayout(geo.Translate(5, 1, 0), geo.Rect{X: 5, Y: 1, W: 3, H: 1})

	n := child.DrawText(geo.Pt(0, 0), "hello", tcell.StyleDefault)
	if n != 5 {
		t.Fatalf("expected advance of 5, got %d", n)
	}
	if g.cells[[2]int{5, 1}] != 'h' || g.cells[[2]int{7, 1}] != 'l' {
		t.Fatalf("unexpected cells %v", g.cells)
	}
	if _, ok := g.cells[[2]int{8, 1}]; ok {
		t.Fatalf("text escaped the clip")
	}
}

func TestDrawTextWideAndCombining(t *testing.T) {
	g := newGrid(10, 1)
	ctx := NewContext(g, geo.RectI{W: 10, H: 1})
	if n := ctx.DrawText(geo.Pt(0, 0), "日e\u0301x", tcell.StyleDefault); n != 4 {
		t.Fatalf("expected 4 cells, got %d", n)
	}
	if g.cells[[2]int{0, 0}] != '日' || g.cells[[2]int{2, 0}] != 'e' || g.cells[[2]int{3, 0}] != 'x' {
		t.Fatalf("unexpected cells %v", g.cells)
	}
}

func TestDrawBorder(t *testing.T) {
	g := newGrid(4, 3)
	ctx := NewContext(g, geo.RectI{W: 4, H: 3})
	ctx.DrawBorder(geo.Rect{W: 4, H: 3}, tcell.StyleDefault, SingleLine)
	if g.cells[[2]int{0, 0}] != '┌' || g.cells[[2]int{3, 2}] != '┘' || g.cells[[2]int{1, 0}] != '─' || g.cells[[2]int{0, 1}] != '│' {
		t.Fatalf("unexpected frame %v", g.cells)
	}
	if _, ok := g.cells[[2]int{1, 1}]; ok {
		t.Fatalf("frame must not paint the interior")
	}
}

func TestDesaturate(t *testing.T) {
	red := tcell.NewRGBColor(255, 0, 0)
	if Desaturate(red, 1) != red {
		t.Fatalf("full saturation must keep the colour")
	}
	r, g, b := Desaturate(red, 0).RGB()
	if absDiff(r, g) > 2 || absDiff(g, b) > 2 {
		t.Fatalf("expected grey, got %d,%d,%d", r, g, b)
	}
	if Desaturate(tcell.ColorRed, 0) != tcell.ColorRed {
		t.Fatalf("palette colours are left alone")
	}
}

func absDiff(a, b int32) int32 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello world", 5); TextWidth(got) > 5 {
		t.Fatalf("truncated text too wide: %q", got)
	}
	if got := Truncate("hi", 5); got != "hi" {
		t.Fatalf("short text must be unchanged, got %q", got)
	}
}
