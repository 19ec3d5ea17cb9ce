// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func resetStore() {
	once = sync.Once{}
	system = nil
	loadErr = nil
}

func TestSystemDefaultsWritten(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	cfg := System()
	if cfg.GetString(SectionTheme, "active", "") == "" {
		t.Fatalf("expected theme.active to be set")
	}

	path, err := systemConfigPath()
	if err != nil {
		t.Fatalf("systemConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read system config: %v", err)
	}

	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal system config: %v", err)
	}
	if disk.Section(SectionMouse) == nil {
		t.Fatalf("expected mouse section to be present")
	}
}

func TestSaveSystemWritesUpdates(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	resetStore()

	SetSystem(Config{
		SectionTheme: map[string]interface{}{"active": "latte"},
	})
	if err := SaveSystem(); err != nil {
		t.Fatalf("SaveSystem: %v", err)
	}

	path, err := systemConfigPath()
	if err != nil {
		t.Fatalf("systemConfigPath: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read system config: %v", err)
	}

	var disk Config
	if err := json.Unmarshal(data, &disk); err != nil {
		t.Fatalf("unmarshal system config: %v", err)
	}
	if got := disk.GetString(SectionTheme, "active", ""); got != "latte" {
		t.Fatalf("expected theme.active latte, got %q", got)
	}
	if got := disk.GetInt(SectionRender, "frame_ms", 0); got != 16 {
		t.Fatalf("expected defaults to be filled in, got frame_ms=%d", got)
	}
}

func TestReloadPicksUpEdits(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)
	resetStore()
	_ = System()

	path := filepath.Join(root, "texelgui", systemConfigName)
	if err := writeConfig(path, Config{
		SectionMouse: map[string]interface{}{"double_click_ms": 250},
	}); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	cfg := System()
	if got := cfg.GetMillis(SectionMouse, "double_click_ms", 0); got != 250*time.Millisecond {
		t.Fatalf("expected 250ms, got %v", got)
	}
	if got := cfg.GetInt(SectionMouse, "double_click_distance", 0); got != 4 {
		t.Fatalf("expected default distance, got %d", got)
	}
}

func TestCorruptConfigReportsError(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)
	resetStore()

	dir := filepath.Join(root, "texelgui")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, systemConfigName), []byte("{"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if Err() == nil {
		t.Fatalf("expected a load error")
	}
	if got := System().GetString(SectionTheme, "active", ""); got != "mocha" {
		t.Fatalf("expected defaults after a failed load, got %q", got)
	}
}

func TestSystemMigrationFromLegacy(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)
	resetStore()

	cfgRoot := filepath.Join(root, "texelgui")
	if err := os.MkdirAll(cfgRoot, 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := writeConfig(filepath.Join(cfgRoot, "config.json"), Config{
		"theme":       "latte",
		"keybindings": "keys.json",
	}); err != nil {
		t.Fatalf("write legacy config: %v", err)
	}

	cfg := System()
	if got := cfg.GetString(SectionTheme, "active", ""); got != "latte" {
		t.Fatalf("expected theme migration, got %q", got)
	}
	if got := cfg.GetString(SectionKeyboard, "user_bindings", ""); got != "keys.json" {
		t.Fatalf("expected keybindings migration, got %q", got)
	}
	if got := cfg.GetInt(SectionMouse, "double_click_distance", 0); got != 4 {
		t.Fatalf("expected embedded defaults to fill the rest, got %d", got)
	}
}

func TestResolvePath(t *testing.T) {
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)

	got, err := ResolvePath("keys.json")
	if err != nil {
		t.Fatalf("ResolvePath: %v", err)
	}
	if want := filepath.Join(root, "texelgui", "keys.json"); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
	if got, _ := ResolvePath(""); got != "" {
		t.Fatalf("expected empty path to stay empty")
	}
}
