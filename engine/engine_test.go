// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package engine

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/framegrace/texelgui/config"
	"github.com/framegrace/texelgui/defaults"
	"github.com/framegrace/texelgui/event"
	"github.com/framegrace/texelgui/geo"
	"github.com/framegrace/texelgui/host"
	"github.com/framegrace/texelgui/host/hosttest"
	"github.com/framegrace/texelgui/internal/winstate"
	"github.com/framegrace/texelgui/keybind"
)

// setup points the config directory at a temp dir and returns the texelgui
// directory inside it.
func setup(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", root)
	dir := filepath.Join(root, "texelgui")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	return dir
}

func write(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
}

func bound(s *keybind.Store, mods event.Modifiers, key event.VirtualKey, kind event.Kind) bool {
	return slices.Contains(s.Lookup(keybind.Combo{Mods: mods, Key: key}), kind)
}

func TestInitLoadsSystemBindings(t *testing.T) {
	setup(t)
	e, err := Init(Options{Config: config.Config{}, GOOS: "linux", NoState: true})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer e.Close()
	if !bound(e.Bindings(), event.ModNone, event.KeyEscape, event.GUICancel) {
		t.Errorf("escape is not bound to gui_cancel")
	}
	if e.Theme().Name != "mocha" {
		t.Errorf("theme = %q, want mocha", e.Theme().Name)
	}
	if e.StatePath() != "" {
		t.Errorf("state store opened with NoState")
	}
}

func TestUserBindingsLayerOverSystem(t *testing.T) {
	dir := setup(t)
	write(t, filepath.Join(dir, "keybindings.json"), []byte(`{"bindings":[
		{"key": "escape", "command": "-gui_cancel"},
		{"key": "f5", "command": "window_close"}
	]}`))

	e, err := Init(Options{Config: config.Config{}, GOOS: "linux", NoState: true})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer e.Close()
	if bound(e.Bindings(), event.ModNone, event.KeyEscape, event.GUICancel) {
		t.Errorf("ignored system binding still active")
	}
	if !bound(e.Bindings(), event.ModNone, event.KeyF5, event.WindowClose) {
		t.Errorf("user binding missing")
	}
}

func TestBrokenUserBindingsKeepSystem(t *testing.T) {
	dir := setup(t)
	path := filepath.Join(dir, "custom.json")
	write(t, path, []byte(`{"bindings":[{"key": "escape", "command": "no_such_command"}]}`))

	cfg := config.Config{config.SectionKeyboard: map[string]interface{}{"user_bindings": path}}
	e, err := Init(Options{Config: cfg, GOOS: "linux", NoState: true})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer e.Close()
	if !bound(e.Bindings(), event.ModNone, event.KeyEscape, event.GUICancel) {
		t.Errorf("system bindings lost after a bad user file")
	}
}

func TestUserThemeSelected(t *testing.T) {
	dir := setup(t)
	themes, err := defaults.Themes()
	if err != nil {
		t.Fatal(err)
	}
	custom := bytes.Replace(themes["latte"], []byte(`name = "latte"`), []byte(`name = "custom"`), 1)
	write(t, filepath.Join(dir, "themes", "custom.toml"), custom)

	cfg := config.Config{config.SectionTheme: map[string]interface{}{"active": "custom"}}
	e, err := Init(Options{Config: cfg, GOOS: "linux", NoState: true})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer e.Close()
	if e.Theme().Name != "custom" {
		t.Errorf("theme = %q, want custom", e.Theme().Name)
	}
	if !slices.Contains(e.Themes(), "latte") {
		t.Errorf("embedded themes missing from %v", e.Themes())
	}
}

func TestUnknownThemeFallsBack(t *testing.T) {
	setup(t)
	cfg := config.Config{config.SectionTheme: map[string]interface{}{"active": "nope"}}
	e, err := Init(Options{Config: cfg, GOOS: "linux", NoState: true})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer e.Close()
	if e.Theme().Name != "mocha" {
		t.Errorf("theme = %q, want mocha", e.Theme().Name)
	}
}

func TestWindowSizeIsSaved(t *testing.T) {
	dir := setup(t)
	e, err := Init(Options{Config: config.Config{}, GOOS: "linux"})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	if want := filepath.Join(dir, "windows.db"); e.StatePath() != want {
		t.Fatalf("state path = %q, want %q", e.StatePath(), want)
	}

	w := e.NewWindow("notes", hosttest.New(), hosttest.NewSurface())
	w.Render(time.Now())
	w.HostResized(geo.Ext(60, 20), host.SizeNormal)
	if err := e.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	store, err := winstate.Open(filepath.Join(dir, "windows.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()
	size, _, ok, err := store.Load("notes")
	if err != nil || !ok {
		t.Fatalf("Load: ok=%v err=%v", ok, err)
	}
	if size != geo.Ext(60, 20) {
		t.Errorf("saved size = %v, want 60x20", size)
	}
}

func TestTerminalOptionsFromConfig(t *testing.T) {
	setup(t)
	cfg := config.Config{
		config.SectionRender: map[string]interface{}{"frame_ms": 20},
		config.SectionMouse:  map[string]interface{}{"double_click_ms": 300, "double_click_distance": 2},
	}
	e, err := Init(Options{Config: cfg, GOOS: "linux", NoState: true})
	if err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer e.Close()
	opts := e.TerminalOptions()
	if opts.FrameInterval != 20*time.Millisecond || opts.DoubleClickInterval != 300*time.Millisecond || opts.DoubleClickDistance != 2 {
		t.Errorf("options = %+v", opts)
	}
}
