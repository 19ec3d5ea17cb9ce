// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widget/mode.go
// Summary: Widget visibility and interaction modes.

package widget

// Mode governs visibility, interactivity and focusability. Modes are
// ordered; thresholds compare against them.
type Mode uint8

const (
	// Collapse takes no space and is skipped by hit-testing and traversal.
	Collapse Mode = iota
	// Invisible is laid out but not drawn, hit-tested or focused.
	Invisible
	Disabled
	Display
	Select
	Partial
	Enabled
)

var modeNames = [...]string{"collapse", "invisible", "disabled", "display", "select", "partial", "enabled"}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "mode(?)"
}

// Visible reports whether a widget in this mode is drawn.
func (m Mode) Visible() bool { return m > Invisible }

// Interactive reports whether a widget in this mode takes input.
func (m Mode) Interactive() bool { return m >= Partial }
