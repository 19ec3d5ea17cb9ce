// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: engine/engine.go
// Summary: Process-wide setup shared by every window.
// Usage: Call Init once before creating windows, create windows with
// NewWindow and Close the engine on exit.
// Notes: Keybindings, themes and the window state store are loaded here
// rather than lazily by the first window, so every window sees the same
// bindings no matter which one is created first.

package engine

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"runtime"
	"time"

	"github.com/framegrace/texelgui/config"
	"github.com/framegrace/texelgui/defaults"
	"github.com/framegrace/texelgui/host"
	"github.com/framegrace/texelgui/host/tcellhost"
	"github.com/framegrace/texelgui/internal/winstate"
	"github.com/framegrace/texelgui/keybind"
	"github.com/framegrace/texelgui/theme"
	"github.com/framegrace/texelgui/window"
)

const (
	userBindingsName = "keybindings.json"
	stateDBName      = "windows.db"
	themesDirName    = "themes"
)

// Options tune Init. Zero values use the system configuration.
type Options struct {
	// Config replaces config.System().
	Config config.Config
	// GOOS selects the platform keybinding table. Empty uses runtime.GOOS.
	GOOS string
	// NoState disables the window state store.
	NoState bool
}

// Engine holds what windows share: configuration, bindings, themes and the
// state store.
type Engine struct {
	cfg      config.Config
	book     *theme.Book
	theme    *theme.Theme
	bindings *keybind.Store
	store    *winstate.Store
}

// Init loads the configuration, themes and keybindings and opens the
// window state store. Only missing embedded defaults are fatal; problems
// with user files are logged and the engine continues without them.
func Init(opts Options) (*Engine, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.System()
		if err := config.Err(); err != nil {
			log.Printf("Engine: config: %v", err)
		}
	}
	goos := opts.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}

	e := &Engine{cfg: cfg}
	if err := e.loadThemes(); err != nil {
		return nil, err
	}
	if err := e.loadBindings(goos); err != nil {
		return nil, err
	}
	if !opts.NoState {
		e.openStore()
	}
	return e, nil
}

func (e *Engine) loadThemes() error {
	e.book = theme.NewBook()
	embedded, err := defaults.Themes()
	if err != nil {
		return fmt.Errorf("embedded themes: %w", err)
	}
	if err := e.book.LoadFiles(embedded); err != nil {
		return fmt.Errorf("embedded themes: %w", err)
	}

	dir := e.cfg.GetString(config.SectionTheme, "user_dir", "")
	if dir == "" {
		dir = themesDirName
	}
	if dir, err = config.ResolvePath(dir); err != nil {
		log.Printf("Engine: theme directory: %v", err)
	} else if err := e.book.LoadDir(dir); err != nil {
		log.Printf("Engine: user themes in %s: %v", dir, err)
	}

	name := e.cfg.GetString(config.SectionTheme, "active", theme.DefaultName)
	t, err := e.book.Select(name)
	if err != nil {
		log.Printf("Engine: %v, using %q", err, t.Name)
	}
	e.theme = t
	return nil
}

func (e *Engine) loadBindings(goos string) error {
	e.bindings = keybind.New()
	data, name, err := defaults.SystemKeybindings(goos)
	if err != nil {
		return fmt.Errorf("system keybindings: %w", err)
	}
	if err := e.bindings.Load(bytes.NewReader(data), name, true); err != nil {
		return fmt.Errorf("system keybindings: %w", err)
	}

	path := e.cfg.GetString(config.SectionKeyboard, "user_bindings", "")
	explicit := path != ""
	if !explicit {
		path = userBindingsName
	}
	path, err = config.ResolvePath(path)
	if err != nil {
		log.Printf("Engine: user keybindings: %v", err)
		return nil
	}
	if err := e.bindings.LoadFile(path, false); err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		log.Printf("Engine: FATAL: user keybindings not loaded, continuing with system bindings: %v", err)
	}
	return nil
}

func (e *Engine) openStore() {
	path := e.cfg.GetString(config.SectionWindow, "state_db", "")
	if path == "" {
		path = stateDBName
	}
	path, err := config.ResolvePath(path)
	if err != nil {
		log.Printf("Engine: window state: %v", err)
		return
	}
	store, err := winstate.Open(filepath.Clean(path))
	if err != nil {
		log.Printf("Engine: window state disabled: %v", err)
		return
	}
	e.store = store
}

// NewWindow creates a window over h and s sharing the engine's bindings,
// theme and state store.
func (e *Engine) NewWindow(title string, h host.Host, s host.Surface) *window.Window {
	opts := window.Options{
		Bindings:     e.bindings,
		Theme:        e.theme,
		ActivateFade: e.cfg.GetMillis(config.SectionRender, "activate_ms", 0),
	}
	if e.store != nil {
		opts.State = e.store
	}
	return window.New(title, h, s, opts)
}

// TerminalOptions returns the terminal host options from the configuration.
func (e *Engine) TerminalOptions() tcellhost.Options {
	return tcellhost.Options{
		FrameInterval:       e.cfg.GetMillis(config.SectionRender, "frame_ms", 0),
		DoubleClickInterval: e.cfg.GetMillis(config.SectionMouse, "double_click_ms", 0),
		DoubleClickDistance: float32(e.cfg.GetFloat(config.SectionMouse, "double_click_distance", 0)),
	}
}

// Bindings returns the shared keybinding store.
func (e *Engine) Bindings() *keybind.Store { return e.bindings }

// Theme returns the active theme.
func (e *Engine) Theme() *theme.Theme { return e.theme }

// Themes lists the available theme names.
func (e *Engine) Themes() []string { return e.book.Names() }

// StatePath returns the window state database, or "" when state is off.
func (e *Engine) StatePath() string {
	if e.store == nil {
		return ""
	}
	return e.store.Path()
}

// FrameInterval is the configured time between frames.
func (e *Engine) FrameInterval() time.Duration {
	return e.cfg.GetMillis(config.SectionRender, "frame_ms", 16*time.Millisecond)
}

// Close releases the state store.
func (e *Engine) Close() error {
	if e.store == nil {
		return nil
	}
	return e.store.Close()
}
