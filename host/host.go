// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: host/host.go
// Summary: Interfaces between the window engine and the OS window host.
// Usage: A host implements Host and Surface for each window it creates and
// feeds raw input through window.Deliver and frames through window.Tick.
// Notes: Host methods are called on the GUI goroutine only. Background
// producers marshal work with PostOnGUIThread.

package host

import (
	"time"

	"github.com/framegrace/texelgui/draw"
	"github.com/framegrace/texelgui/event"
	"github.com/framegrace/texelgui/geo"
)

// Cursor is the mouse cursor shape the host shows.
type Cursor uint8

const (
	CursorNone Cursor = iota
	CursorDefault
	CursorButton
	CursorTextEdit
)

func (c Cursor) String() string {
	switch c {
	case CursorDefault:
		return "default"
	case CursorButton:
		return "button"
	case CursorTextEdit:
		return "text_edit"
	}
	return "none"
}

// CursorFor maps a hitbox kind to the cursor shown over it. Resize borders,
// move areas and the outside are left to the OS.
func CursorFor(kind event.HitboxKind) Cursor {
	switch kind {
	case event.HitDefault, event.HitScrollBar:
		return CursorDefault
	case event.HitButton:
		return CursorButton
	case event.HitTextEdit:
		return CursorTextEdit
	}
	return CursorNone
}

// SizeState is the size state of the OS window.
type SizeState uint8

const (
	SizeNormal SizeState = iota
	SizeMinimized
	SizeMaximized
	SizeFullscreen
)

func (s SizeState) String() string {
	switch s {
	case SizeMinimized:
		return "minimized"
	case SizeMaximized:
		return "maximized"
	case SizeFullscreen:
		return "fullscreen"
	}
	return "normal"
}

// ParseSizeState is the inverse of SizeState.String. Unknown names are
// normal.
func ParseSizeState(s string) SizeState {
	switch s {
	case "minimized":
		return SizeMinimized
	case "maximized":
		return SizeMaximized
	case "fullscreen":
		return SizeFullscreen
	}
	return SizeNormal
}

// WritingDirection is the primary text direction of the user interface.
type WritingDirection uint8

const (
	LeftToRight WritingDirection = iota
	RightToLeft
)

// DefaultMonitorRectangle is returned when monitor geometry is unavailable.
var DefaultMonitorRectangle = geo.RectI{X: 0, Y: 0, W: 1920, H: 1080}

// Host is what the engine asks of the OS window.
type Host interface {
	// PostOnGUIThread queues f to run on the GUI goroutine.
	PostOnGUIThread(f func())

	SetCursor(c Cursor)
	SetWindowSize(size geo.Extent)
	SetSizeState(state SizeState)
	CloseWindow()
	OpenSystemMenu()

	// TextFromClipboard returns false when the clipboard holds no text or
	// cannot be read.
	TextFromClipboard() (string, bool)
	PutTextOnClipboard(text string)

	WorkspaceRectangle() geo.RectI
	FullscreenRectangle() geo.RectI
	PrimaryMonitorRectangle() geo.RectI
	PixelDensity() float32
	SubpixelOrientation() draw.SubpixelOrientation
	DoubleClickInterval() time.Duration
	DoubleClickDistance() float32
	LeftToRight() bool
	KeyboardRepeatDelay() time.Duration
	KeyboardRepeatInterval() time.Duration
	MinimumWindowSize() geo.Extent
	MaximumWindowSize() geo.Extent
}

// Delegate draws natively into a surface between clear and present.
type Delegate interface {
	DrawDelegate(ctx *draw.Context)
}

// Surface is the renderable backing a window.
type Surface interface {
	// HasDevice reports whether the surface can render at all.
	HasDevice() bool
	Update(size geo.Extent)
	// RenderStart clears the rectangle and begins a frame. It returns false
	// when the frame should be skipped.
	RenderStart(clear geo.RectI) (*draw.Context, bool)
	RenderFinish(ctx *draw.Context)
	AddDelegate(d Delegate)
	RemoveDelegate(d Delegate)
}

// ScreenToWindow converts an OS rectangle with a bottom-left origin into the
// y-down window system, flipping against the primary monitor.
func ScreenToWindow(r geo.RectI, primary geo.RectI) geo.RectI {
	if primary.Empty() {
		primary = DefaultMonitorRectangle
	}
	return geo.FlipY(r, primary.H)
}
