// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: defaults/embedded.go
// Summary: Embedded default configuration, keybindings and themes.

package defaults

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"strings"
)

//go:embed texelgui.json keybinds/*.json themes/*.toml
var files embed.FS

// SystemConfig returns the embedded system config JSON.
func SystemConfig() ([]byte, error) {
	return files.ReadFile("texelgui.json")
}

// SystemKeybindings returns the embedded system keybinding JSON for goos,
// falling back to the generic table when no platform variant exists.
func SystemKeybindings(goos string) (data []byte, name string, err error) {
	if goos == "" {
		return nil, "", fmt.Errorf("platform name is required")
	}
	name = fmt.Sprintf("keybinds/%s.json", goos)
	if data, err = files.ReadFile(name); err == nil {
		return data, name, nil
	}
	name = "keybinds/default.json"
	data, err = files.ReadFile(name)
	return data, name, err
}

// Themes returns the embedded theme files keyed by theme file name without
// extension.
func Themes() (map[string][]byte, error) {
	entries, err := fs.ReadDir(files, "themes")
	if err != nil {
		return nil, err
	}
	out := make(map[string][]byte, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || path.Ext(entry.Name()) != ".toml" {
			continue
		}
		data, err := files.ReadFile(path.Join("themes", entry.Name()))
		if err != nil {
			return nil, err
		}
		out[strings.TrimSuffix(entry.Name(), ".toml")] = data
	}
	return out, nil
}
