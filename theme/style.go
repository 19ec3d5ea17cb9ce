// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/style.go
// Summary: Widget state to style mapping.

package theme

import "github.com/gdamore/tcell/v2"

// State selects the style variant of a widget.
type State uint8

const (
	StateDisabled State = 1 << iota
	StateHover
	StatePressed
	StateFocus
	StateOn
	StateInactive

	StateEnabled State = 0
)

// Style returns the body style of a widget on the given semantic layer.
func (t *Theme) Style(s State, layer int) tcell.Style {
	bg := t.Fill(layer)
	fg := t.GetColor("foreground", tcell.ColorDefault)
	switch {
	case s&StateDisabled != 0:
		fg = t.GetColor("disabled", fg)
	case s&StatePressed != 0, s&StateOn != 0:
		bg = t.GetColor("accent", bg)
		fg = t.GetColor("background", fg)
	case s&StateHover != 0:
		bg = t.GetColor("hover", bg)
	}
	style := tcell.StyleDefault.Foreground(fg).Background(bg)
	if s&StateFocus != 0 && s&StateInactive == 0 {
		style = style.Bold(true)
	}
	return style
}

// BorderStyle returns the frame style of a widget on the given layer.
func (t *Theme) BorderStyle(s State, layer int) tcell.Style {
	fg := t.Border(layer)
	if s&StateFocus != 0 && s&StateInactive == 0 {
		fg = t.GetColor("focus", fg)
	}
	return tcell.StyleDefault.Foreground(fg).Background(t.Fill(layer))
}

// SelectionStyle returns the style of selected text.
func (t *Theme) SelectionStyle(layer int) tcell.Style {
	return tcell.StyleDefault.
		Foreground(t.GetColor("foreground", tcell.ColorDefault)).
		Background(t.GetColor("selection", t.Fill(layer+1)))
}

// ToolbarStyle returns the style of the window toolbar background.
func (t *Theme) ToolbarStyle() tcell.Style {
	return tcell.StyleDefault.
		Foreground(t.GetColor("foreground", tcell.ColorDefault)).
		Background(t.GetColor("toolbar", t.Fill(0)))
}
