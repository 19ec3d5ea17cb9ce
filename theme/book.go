// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: theme/book.go
// Summary: Registry of themes loaded from embedded defaults and a user directory.

package theme

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// DefaultName is the theme selected when nothing else is available.
const DefaultName = "mocha"

// ErrUnknownTheme is returned by Select for names not in the book.
var ErrUnknownTheme = errors.New("unknown theme")

// Book holds themes by name. It is safe for concurrent readers.
type Book struct {
	mu     sync.RWMutex
	themes map[string]*Theme
}

// NewBook returns an empty book.
func NewBook() *Book {
	return &Book{themes: make(map[string]*Theme)}
}

// Add registers a theme, replacing any theme of the same name.
func (b *Book) Add(t *Theme) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.themes[t.Name] = t
}

// LoadFiles parses each file and adds the ones that parse. The first error
// is returned after every file was tried.
func (b *Book) LoadFiles(files map[string][]byte) error {
	var firstErr error
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		t, err := Parse(files[name])
		if err != nil {
			log.Printf("Theme: Failed to parse %s: %v", name, err)
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", name, err)
			}
			continue
		}
		b.Add(t)
	}
	return firstErr
}

// LoadDir loads every *.toml file in dir. A missing directory is not an
// error.
func (b *Book) LoadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	files := make(map[string][]byte)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".toml") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		files[path] = data
	}
	return b.LoadFiles(files)
}

// Names lists the themes in the book, sorted.
func (b *Book) Names() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	names := make([]string, 0, len(b.themes))
	for name := range b.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select returns the named theme. An unknown name falls back to the default
// theme (or any theme) together with ErrUnknownTheme.
func (b *Book) Select(name string) (*Theme, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if t, ok := b.themes[name]; ok {
		return t, nil
	}
	err := fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	if t, ok := b.themes[DefaultName]; ok {
		return t, err
	}
	for _, t := range b.themes {
		return t, err
	}
	return Fallback(), err
}

// Fallback is a palette-only theme used when no theme file could be loaded.
func Fallback() *Theme {
	return &Theme{
		Name:        "fallback",
		Dark:        true,
		Margin:      1,
		Spacing:     1,
		BorderWidth: 1,
		IconSize:    1,
		colors:      map[string]tcell.Color{},
	}
}
