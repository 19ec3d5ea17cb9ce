// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/runner.go
// Summary: Runs a single window full-screen in the local terminal.
// Usage: RunApp("gallery", args) from a demo binary; tests swap the
// screen for a simulation screen with SetScreenFactory.

package devshell

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgui/engine"
	"github.com/framegrace/texelgui/host/tcellhost"
	"github.com/framegrace/texelgui/window"
)

// Builder fills a freshly created window, optionally using CLI args.
type Builder func(w *window.Window, args []string) error

var registry = map[string]Builder{
	"gallery": buildGallery,
	"editor":  buildEditor,
}

// Apps lists the registered builders.
func Apps() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the builder registered as name.
func Lookup(name string) (Builder, bool) {
	b, ok := registry[name]
	return b, ok
}

var screenFactory = tcell.NewScreen

// SetScreenFactory overrides the screen factory used by Run. Passing nil restores the default.
func SetScreenFactory(factory func() (tcell.Screen, error)) {
	if factory == nil {
		screenFactory = tcell.NewScreen
		return
	}
	screenFactory = factory
}

// Run creates a window titled title on a local tcell screen, fills it with
// build and runs it until the window closes or the process is interrupted.
func Run(title string, build Builder, args []string) error {
	eng, err := engine.Init(engine.Options{})
	if err != nil {
		return fmt.Errorf("init engine: %w", err)
	}
	defer eng.Close()

	screen, err := screenFactory()
	if err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	h, err := tcellhost.New(screen, eng.TerminalOptions())
	if err != nil {
		return fmt.Errorf("screen init: %w", err)
	}
	defer h.Close()

	win := eng.NewWindow(title, h, h.Surface())
	if err := build(win, args); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := h.Run(ctx, win); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// RunApp finds a registered builder by name and runs it.
func RunApp(name string, args []string) error {
	build, ok := Lookup(name)
	if !ok {
		return fmt.Errorf("unknown app %q", name)
	}
	return Run("texelgui "+name, build, args)
}
