// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/defaults.go
// Summary: Default values for the system configuration file.

package config

// Section and key names read by the engine.
const (
	SectionKeyboard = "keyboard"
	SectionTheme    = "theme"
	SectionMouse    = "mouse"
	SectionWindow   = "window"
	SectionRender   = "render"
)

func applySystemDefaults(cfg Config) {
	if cfg == nil {
		return
	}
	cfg.RegisterDefaults(SectionKeyboard, Section{
		"user_bindings": "",
	})
	cfg.RegisterDefaults(SectionTheme, Section{
		"active":   "mocha",
		"user_dir": "",
	})
	cfg.RegisterDefaults(SectionMouse, Section{
		"double_click_ms":       500,
		"double_click_distance": 4,
	})
	cfg.RegisterDefaults(SectionWindow, Section{
		"state_db": "",
	})
	cfg.RegisterDefaults(SectionRender, Section{
		"frame_ms":    16,
		"activate_ms": 150,
	})
}
