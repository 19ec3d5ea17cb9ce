// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: event/keys.go
// Summary: Virtual keys, keyboard modifiers and keyboard state.

package event

import (
	"fmt"
	"strings"
)

// VirtualKey is a layout-independent key identifier.
type VirtualKey uint8

const (
	KeyNul VirtualKey = iota

	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9

	KeyPlus
	KeyMinus
	KeyStar
	KeySlash
	KeyPercent
	KeyTilde
	KeyAmpersand
	KeyPipe
	KeyCaret
	KeyLess
	KeyEqual
	KeyGreater
	KeyOpenParen
	KeyCloseParen
	KeyOpenBracket
	KeyCloseBracket
	KeyOpenBrace
	KeyCloseBrace
	KeyPeriod
	KeyComma
	KeyColon
	KeySemicolon
	KeyBang
	KeyQuestion
	KeySpace
	KeyTab
	KeyEnter
	KeyBacktick
	KeyQuote
	KeyDoubleQuote
	KeyAt
	KeyHash
	KeyDollar
	KeyUnderscore
	KeyBackslash

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyF13
	KeyF14
	KeyF15
	KeyF16
	KeyF17
	KeyF18
	KeyF19
	KeyF20
	KeyF21
	KeyF22
	KeyF23
	KeyF24

	KeyHome
	KeyEnd
	KeyBackspace
	KeyClear
	KeyInsert
	KeyEscape
	KeyDelete
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyMenu
	KeySysmenu
	KeyPrintScreen
	KeyPauseBreak

	KeyMediaNext
	KeyMediaPrev
	KeyMediaStop
	KeyMediaPlay
	KeyBrowserBack
	KeyBrowserForward
	KeyBrowserRefresh
	KeyBrowserStop
	KeyBrowserSearch
	KeyBrowserFavorites
	KeyBrowserHome
	KeyVolumeMute
	KeyVolumeUp
	KeyVolumeDown

	keyCount
)

var keyNames = func() [keyCount]string {
	var names [keyCount]string
	names[KeyNul] = "nul"
	for k := KeyA; k <= KeyZ; k++ {
		names[k] = string(rune('a' + int(k-KeyA)))
	}
	for k := Key0; k <= Key9; k++ {
		names[k] = string(rune('0' + int(k-Key0)))
	}
	for k := KeyF1; k <= KeyF24; k++ {
		names[k] = fmt.Sprintf("f%d", int(k-KeyF1)+1)
	}
	named := map[VirtualKey]string{
		KeyPlus:         "plus",
		KeyMinus:        "-",
		KeyStar:         "*",
		KeySlash:        "/",
		KeyPercent:      "%",
		KeyTilde:        "~",
		KeyAmpersand:    "&",
		KeyPipe:         "|",
		KeyCaret:        "^",
		KeyLess:         "<",
		KeyEqual:        "=",
		KeyGreater:      ">",
		KeyOpenParen:    "(",
		KeyCloseParen:   ")",
		KeyOpenBracket:  "[",
		KeyCloseBracket: "]",
		KeyOpenBrace:    "{",
		KeyCloseBrace:   "}",
		KeyPeriod:       ".",
		KeyComma:        ",",
		KeyColon:        ":",
		KeySemicolon:    ";",
		KeyBang:         "!",
		KeyQuestion:     "?",
		KeySpace:        "space",
		KeyTab:          "tab",
		KeyEnter:        "enter",
		KeyBacktick:     "`",
		KeyQuote:        "quote",
		KeyDoubleQuote:  "dquote",
		KeyAt:           "@",
		KeyHash:         "#",
		KeyDollar:       "$",
		KeyUnderscore:   "_",
		KeyBackslash:    "backslash",

		KeyHome:        "home",
		KeyEnd:         "end",
		KeyBackspace:   "backspace",
		KeyClear:       "clear",
		KeyInsert:      "insert",
		KeyEscape:      "escape",
		KeyDelete:      "delete",
		KeyLeft:        "left",
		KeyRight:       "right",
		KeyUp:          "up",
		KeyDown:        "down",
		KeyPageUp:      "page-up",
		KeyPageDown:    "page-down",
		KeyMenu:        "menu",
		KeySysmenu:     "sysmenu",
		KeyPrintScreen: "print-screen",
		KeyPauseBreak:  "pause-break",

		KeyMediaNext:        "media-next",
		KeyMediaPrev:        "media-prev",
		KeyMediaStop:        "media-stop",
		KeyMediaPlay:        "media-play",
		KeyBrowserBack:      "browser-back",
		KeyBrowserForward:   "browser-forward",
		KeyBrowserRefresh:   "browser-refresh",
		KeyBrowserStop:      "browser-stop",
		KeyBrowserSearch:    "browser-search",
		KeyBrowserFavorites: "browser-favorites",
		KeyBrowserHome:      "browser-home",
		KeyVolumeMute:       "volume-mute",
		KeyVolumeUp:         "volume-up",
		KeyVolumeDown:       "volume-down",
	}
	for k, name := range named {
		names[k] = name
	}
	return names
}()

var keyByName = func() map[string]VirtualKey {
	m := make(map[string]VirtualKey, len(keyNames))
	for k, name := range keyNames {
		if VirtualKey(k) != KeyNul {
			m[name] = VirtualKey(k)
		}
	}
	return m
}()

func (k VirtualKey) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return fmt.Sprintf("key(%d)", uint8(k))
}

// ParseVirtualKey resolves a canonical (lower case) key name.
func ParseVirtualKey(name string) (VirtualKey, bool) {
	k, ok := keyByName[strings.ToLower(name)]
	return k, ok
}

// KeyForRune returns the virtual key that produces r on a US layout, used by
// hosts that only receive characters.
func KeyForRune(r rune) (VirtualKey, bool) {
	switch {
	case r >= 'a' && r <= 'z':
		return KeyA + VirtualKey(r-'a'), true
	case r >= 'A' && r <= 'Z':
		return KeyA + VirtualKey(r-'A'), true
	case r >= '0' && r <= '9':
		return Key0 + VirtualKey(r-'0'), true
	case r == '+':
		return KeyPlus, true
	case r == ' ':
		return KeySpace, true
	case r == '\'':
		return KeyQuote, true
	case r == '"':
		return KeyDoubleQuote, true
	case r == '\\':
		return KeyBackslash, true
	}
	if k, ok := keyByName[string(r)]; ok {
		return k, true
	}
	return KeyNul, false
}

// Modifiers is the set of held modifier keys.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	// ModSuper is the platform meta key: Windows key, Command key.
	ModSuper

	ModNone Modifiers = 0
)

// Has reports whether every modifier in m2 is held.
func (m Modifiers) Has(m2 Modifiers) bool { return m&m2 == m2 }

func (m Modifiers) String() string {
	var parts []string
	if m.Has(ModShift) {
		parts = append(parts, "shift")
	}
	if m.Has(ModControl) {
		parts = append(parts, "ctrl")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "alt")
	}
	if m.Has(ModSuper) {
		parts = append(parts, "super")
	}
	return strings.Join(parts, "+")
}

// ParseModifier resolves a single modifier token. Tokens are case-insensitive
// and may carry a trailing '+'.
func ParseModifier(token string) (Modifiers, bool) {
	switch strings.TrimSuffix(strings.ToLower(token), "+") {
	case "shift":
		return ModShift, true
	case "control", "ctrl", "cntr":
		return ModControl, true
	case "alt", "option", "meta":
		return ModAlt, true
	case "windows", "win", "command", "cmd", "super":
		return ModSuper, true
	}
	return ModNone, false
}

// KeyboardState holds the lock keys.
type KeyboardState uint8

const (
	StateIdle       KeyboardState = 0
	StateCapsLock   KeyboardState = 1 << 0
	StateScrollLock KeyboardState = 1 << 1
	StateNumLock    KeyboardState = 1 << 2
)
