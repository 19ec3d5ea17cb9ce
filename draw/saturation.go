// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: draw/saturation.go
// Summary: Desaturation of styles for inactive windows.

package draw

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Desaturate blends c towards its own luminance grey. s=1 keeps the colour,
// s=0 yields grey. Palette and default colours are returned unchanged.
func Desaturate(c tcell.Color, s float32) tcell.Color {
	if s >= 1 || !c.Valid() || c&tcell.ColorIsRGB == 0 {
		return c
	}
	if s < 0 {
		s = 0
	}
	r, g, b := c.RGB()
	col := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	h, chroma, l := col.Hcl()
	out := colorful.Hcl(h, chroma*float64(s), l).Clamped()
	or, og, ob := out.RGB255()
	return tcell.NewRGBColor(int32(or), int32(og), int32(ob))
}

func (c *Context) tint(style tcell.Style) tcell.Style {
	if c.ActiveSaturation >= 1 {
		return style
	}
	fg, bg, attrs := style.Decompose()
	return style.
		Foreground(Desaturate(fg, c.ActiveSaturation)).
		Background(Desaturate(bg, c.ActiveSaturation)).
		Attributes(attrs)
}
