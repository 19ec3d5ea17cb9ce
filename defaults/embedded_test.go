// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package defaults

import (
	"encoding/json"
	"testing"
)

func TestSystemConfigIsValidJSON(t *testing.T) {
	data, err := SystemConfig()
	if err != nil {
		t.Fatalf("SystemConfig: %v", err)
	}
	var cfg map[string]interface{}
	if err := json.Unmarshal(data, &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := cfg["theme"]; !ok {
		t.Fatalf("expected theme section")
	}
}

func TestSystemKeybindingsFallsBack(t *testing.T) {
	_, name, err := SystemKeybindings("plan9")
	if err != nil {
		t.Fatalf("SystemKeybindings: %v", err)
	}
	if name != "keybinds/default.json" {
		t.Fatalf("expected default table, got %s", name)
	}
	_, name, err = SystemKeybindings("darwin")
	if err != nil || name != "keybinds/darwin.json" {
		t.Fatalf("expected darwin table, got %s, %v", name, err)
	}
}

func TestThemes(t *testing.T) {
	themes, err := Themes()
	if err != nil {
		t.Fatalf("Themes: %v", err)
	}
	for _, name := range []string{"mocha", "latte"} {
		if len(themes[name]) == 0 {
			t.Errorf("missing theme %s", name)
		}
	}
}
