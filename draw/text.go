// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: draw/text.go
// Summary: Grapheme-aware text painting and measurement.

package draw

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/framegrace/texelgui/geo"
)

// TextWidth returns the number of cells s occupies.
func TextWidth(s string) int {
	return runewidth.StringWidth(s)
}

// ClusterWidth returns the cell width of a single grapheme cluster.
func ClusterWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w == 0 && cluster != "" {
		// Zero-width clusters still take a cell so the cursor can land on
		// them.
		return 1
	}
	return w
}

// DrawText paints s starting at a local position and returns the number of
// cells advanced. Text is not wrapped.
func (c *Context) DrawText(p geo.Point, s string, style tcell.Style) int {
	x := 0
	state := -1
	rest := s
	for rest != "" {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		runes := []rune(cluster)
		w := ClusterWidth(cluster)
		var combining []rune
		if len(runes) > 1 {
			combining = runes[1:]
		}
		c.SetCell(geo.Pt(p.X+float32(x), p.Y), runes[0], combining, style)
		x += w
	}
	return x
}

// Truncate shortens s to fit in width cells, appending an ellipsis when
// something was cut.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if TextWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
