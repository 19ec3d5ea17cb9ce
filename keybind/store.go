// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: keybind/store.go
// Summary: Layered keyboard bindings translating key presses into commands.
// Usage: The window translates every keyboard_down through Store.Translate.
// Notes: Each key combination keeps system, ignored and user layers plus a
// derived cache: system entries minus ignored ones, then user entries not
// already present.

package keybind

import (
	"slices"
	"sync"

	"github.com/framegrace/texelgui/event"
)

// Combo is a key together with the modifiers held.
type Combo struct {
	Mods event.Modifiers
	Key  event.VirtualKey
}

func (c Combo) String() string {
	if c.Mods == event.ModNone {
		return c.Key.String()
	}
	return c.Mods.String() + "+" + c.Key.String()
}

type binding struct {
	system  []event.Kind
	ignored []event.Kind
	user    []event.Kind
	cache   []event.Kind
}

func (b *binding) rebuild() {
	cache := make([]event.Kind, 0, len(b.system)+len(b.user))
	for _, k := range b.system {
		if !slices.Contains(b.ignored, k) && !slices.Contains(cache, k) {
			cache = append(cache, k)
		}
	}
	for _, k := range b.user {
		if !slices.Contains(cache, k) {
			cache = append(cache, k)
		}
	}
	b.cache = cache
}

// Store holds keyboard bindings. It is safe for concurrent readers; writes
// are expected at startup or on the GUI goroutine.
type Store struct {
	mu       sync.RWMutex
	bindings map[Combo]*binding
}

// New returns an empty store.
func New() *Store {
	return &Store{bindings: make(map[Combo]*binding)}
}

type layer int

const (
	layerSystem layer = iota
	layerIgnored
	layerUser
)

func (s *Store) add(l layer, c Combo, kind event.Kind) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b := s.bindings[c]
	if b == nil {
		b = &binding{}
		s.bindings[c] = b
	}
	switch l {
	case layerSystem:
		b.system = append(b.system, kind)
	case layerIgnored:
		b.ignored = append(b.ignored, kind)
	case layerUser:
		b.user = append(b.user, kind)
	}
	b.rebuild()
}

// AddSystem appends a command to the system layer of c.
func (s *Store) AddSystem(c Combo, kind event.Kind) { s.add(layerSystem, c, kind) }

// AddIgnored hides a system command of c.
func (s *Store) AddIgnored(c Combo, kind event.Kind) { s.add(layerIgnored, c, kind) }

// AddUser appends a command to the user layer of c.
func (s *Store) AddUser(c Combo, kind event.Kind) { s.add(layerUser, c, kind) }

// Clear removes every binding.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bindings = make(map[Combo]*binding)
}

// Lookup returns the commands bound to c, in dispatch order.
func (s *Store) Lookup(c Combo) []event.Kind {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b := s.bindings[c]
	if b == nil {
		return nil
	}
	return slices.Clone(b.cache)
}

// Len returns the number of key combinations with at least one layer entry.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bindings)
}

// Translate appends one synthesized event per bound command for a
// keyboard_down event. The new events carry the time, modifiers and keyboard
// state of the original. Other events produce nothing.
func (s *Store) Translate(e event.Event, out *[]event.Event) {
	if !e.Is(event.KeyboardDown) {
		return
	}
	key := *e.Key()
	for _, kind := range s.Lookup(Combo{Mods: e.Modifiers, Key: key}) {
		*out = append(*out, event.NewAt(kind, e.Time, e.Modifiers, e.State))
	}
}
