// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: keybind/load.go
// Summary: JSON keybinding file loader.
// Notes: Format is {"bindings":[{"key":"ctrl+c","command":"text_edit_copy"}]}.
// A command prefixed with '-' ignores the matching system binding.

package keybind

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/framegrace/texelgui/event"
)

var (
	ErrMalformed       = errors.New("malformed keybinding document")
	ErrUnknownKey      = errors.New("unknown virtual key")
	ErrUnknownModifier = errors.New("unknown modifier")
	ErrUnknownCommand  = errors.New("unknown command")
)

// ParseError reports a keybinding file that could not be loaded.
type ParseError struct {
	Path    string
	Index   int
	Key     string
	Command string
	Err     error
}

func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("keybind: ")
	if e.Path != "" {
		b.WriteString(e.Path)
		b.WriteString(": ")
	}
	if e.Index >= 0 {
		fmt.Fprintf(&b, "binding %d: ", e.Index)
	}
	if e.Key != "" {
		fmt.Fprintf(&b, "key %q: ", e.Key)
	}
	if e.Command != "" {
		fmt.Fprintf(&b, "command %q: ", e.Command)
	}
	b.WriteString(e.Err.Error())
	return b.String()
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseCombo parses "<mods>+<name>", for example "ctrl+shift+page-up".
func ParseCombo(s string) (Combo, error) {
	tokens := strings.Split(strings.TrimSpace(s), "+")
	if len(tokens) == 0 || tokens[len(tokens)-1] == "" {
		return Combo{}, fmt.Errorf("%w: %q", ErrUnknownKey, s)
	}
	var c Combo
	for _, tok := range tokens[:len(tokens)-1] {
		mod, ok := event.ParseModifier(tok)
		if !ok {
			return Combo{}, fmt.Errorf("%w: %q", ErrUnknownModifier, tok)
		}
		c.Mods |= mod
	}
	name := tokens[len(tokens)-1]
	key, ok := event.ParseVirtualKey(name)
	if !ok {
		return Combo{}, fmt.Errorf("%w: %q", ErrUnknownKey, name)
	}
	c.Key = key
	return c, nil
}

type document struct {
	Bindings *json.RawMessage `json:"bindings"`
}

type entry struct {
	Key     *string `json:"key"`
	Command *string `json:"command"`
}

// Load reads a keybinding document. With system set, commands go to the
// system layer; otherwise to the user layer. Commands prefixed with '-' are
// always added to the ignored layer. The store is left untouched when the
// document has any error.
func (s *Store) Load(r io.Reader, path string, system bool) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return &ParseError{Path: path, Index: -1, Err: err}
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return &ParseError{Path: path, Index: -1, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	if doc.Bindings == nil {
		return &ParseError{Path: path, Index: -1, Err: fmt.Errorf("%w: missing \"bindings\"", ErrMalformed)}
	}
	var entries []entry
	if err := json.Unmarshal(*doc.Bindings, &entries); err != nil {
		return &ParseError{Path: path, Index: -1, Err: fmt.Errorf("%w: \"bindings\" must be an array of objects", ErrMalformed)}
	}

	type pending struct {
		l     layer
		combo Combo
		kind  event.Kind
	}
	parsed := make([]pending, 0, len(entries))
	for i, ent := range entries {
		if ent.Key == nil {
			return &ParseError{Path: path, Index: i, Err: fmt.Errorf("%w: missing \"key\"", ErrMalformed)}
		}
		if ent.Command == nil {
			return &ParseError{Path: path, Index: i, Key: *ent.Key, Err: fmt.Errorf("%w: missing \"command\"", ErrMalformed)}
		}
		combo, err := ParseCombo(*ent.Key)
		if err != nil {
			return &ParseError{Path: path, Index: i, Key: *ent.Key, Command: *ent.Command, Err: err}
		}

		name := *ent.Command
		l := layerUser
		if system {
			l = layerSystem
		}
		if strings.HasPrefix(name, "-") {
			l = layerIgnored
			name = name[1:]
		}
		kind, ok := event.ParseKind(name)
		if !ok || kind == event.None {
			return &ParseError{Path: path, Index: i, Key: *ent.Key, Command: *ent.Command, Err: ErrUnknownCommand}
		}
		parsed = append(parsed, pending{l: l, combo: combo, kind: kind})
	}

	for _, p := range parsed {
		s.add(p.l, p.combo, p.kind)
	}
	return nil
}

// LoadFile reads a keybinding file from disk.
func (s *Store) LoadFile(path string, system bool) error {
	f, err := os.Open(path)
	if err != nil {
		return &ParseError{Path: path, Index: -1, Err: err}
	}
	defer f.Close()
	return s.Load(f, path, system)
}
