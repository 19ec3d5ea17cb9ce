// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/migrate.go
// Summary: Migration of the flat config.json layout into sections.

package config

// legacyKeys maps flat keys of config.json to their section and key.
var legacyKeys = []struct {
	flat, section, key string
}{
	{"theme", SectionTheme, "active"},
	{"themeDir", SectionTheme, "user_dir"},
	{"keybindings", SectionKeyboard, "user_bindings"},
	{"doubleClickMs", SectionMouse, "double_click_ms"},
	{"frameMs", SectionRender, "frame_ms"},
}

func migrateSystemFromLegacy(cfg Config) (bool, error) {
	if cfg == nil {
		return false, nil
	}
	legacyPath, err := legacyConfigPath()
	if err != nil {
		return false, err
	}
	legacy, exists, err := readConfig(legacyPath)
	if err != nil {
		return false, err
	}
	if !exists || legacy == nil {
		return false, nil
	}

	migrated := false
	for _, k := range legacyKeys {
		val, ok := legacy[k.flat]
		if !ok {
			continue
		}
		section := cfg.Section(k.section)
		if section == nil {
			section = make(Section)
			cfg[k.section] = section
		}
		if _, ok := section[k.key]; ok {
			continue
		}
		section[k.key] = val
		migrated = true
	}
	return migrated, nil
}
