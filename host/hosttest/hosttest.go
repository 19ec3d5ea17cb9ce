// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: host/hosttest/hosttest.go
// Summary: In-memory Host and Surface for engine tests.
// Usage: Tests construct a window over New() and NewSurface(), drive it with
// events and Tick, then inspect the recorded calls and the cell grid.

package hosttest

import (
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgui/draw"
	"github.com/framegrace/texelgui/geo"
	"github.com/framegrace/texelgui/host"
)

// Host records every request made by the engine.
type Host struct {
	mu     sync.Mutex
	posted []func()

	Cursor       host.Cursor
	CursorCalls  int
	SizeRequests []geo.Extent
	SizeStates   []host.SizeState
	Closed       bool
	SystemMenus  int

	Clipboard    string
	HasClipboard bool

	Density    float32
	Subpixel   draw.SubpixelOrientation
	RTL        bool
	Workspace  geo.RectI
	Fullscreen geo.RectI
	Primary    geo.RectI
	MinSize    geo.Extent
	MaxSize    geo.Extent
}

// New returns a host with terminal-like defaults.
func New() *Host {
	return &Host{
		Density:    1,
		Workspace:  geo.RectI{W: 200, H: 60},
		Fullscreen: geo.RectI{W: 200, H: 60},
		Primary:    geo.RectI{W: 200, H: 60},
		MinSize:    geo.Ext(1, 1),
		MaxSize:    geo.Ext(200, 60),
	}
}

func (h *Host) PostOnGUIThread(f func()) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.posted = append(h.posted, f)
}

// RunPosted runs queued functions, including ones queued while running,
// and returns how many ran.
func (h *Host) RunPosted() int {
	n := 0
	for {
		h.mu.Lock()
		queue := h.posted
		h.posted = nil
		h.mu.Unlock()
		if len(queue) == 0 {
			return n
		}
		for _, f := range queue {
			f()
			n++
		}
	}
}

func (h *Host) SetCursor(c host.Cursor) {
	h.Cursor = c
	h.CursorCalls++
}

func (h *Host) SetWindowSize(size geo.Extent) { h.SizeRequests = append(h.SizeRequests, size) }

func (h *Host) SetSizeState(state host.SizeState) { h.SizeStates = append(h.SizeStates, state) }

func (h *Host) CloseWindow()    { h.Closed = true }
func (h *Host) OpenSystemMenu() { h.SystemMenus++ }

func (h *Host) TextFromClipboard() (string, bool) { return h.Clipboard, h.HasClipboard }

func (h *Host) PutTextOnClipboard(text string) {
	h.Clipboard = text
	h.HasClipboard = true
}

func (h *Host) WorkspaceRectangle() geo.RectI                 { return h.Workspace }
func (h *Host) FullscreenRectangle() geo.RectI                { return h.Fullscreen }
func (h *Host) PrimaryMonitorRectangle() geo.RectI            { return h.Primary }
func (h *Host) PixelDensity() float32                         { return h.Density }
func (h *Host) SubpixelOrientation() draw.SubpixelOrientation { return h.Subpixel }
func (h *Host) DoubleClickInterval() time.Duration            { return 500 * time.Millisecond }
func (h *Host) DoubleClickDistance() float32                  { return 4 }
func (h *Host) LeftToRight() bool                             { return !h.RTL }
func (h *Host) KeyboardRepeatDelay() time.Duration            { return 250 * time.Millisecond }
func (h *Host) KeyboardRepeatInterval() time.Duration         { return 33 * time.Millisecond }
func (h *Host) MinimumWindowSize() geo.Extent                 { return h.MinSize }
func (h *Host) MaximumWindowSize() geo.Extent                 { return h.MaxSize }

// Cell is one painted grid cell.
type Cell struct {
	Rune  rune
	Style tcell.Style
}

// Canvas is a resizable cell grid.
type Canvas struct {
	w, h    int
	cells   []Cell
	cursorX int
	cursorY int
	cursor  bool
}

func (c *Canvas) resize(w, h int) {
	if w == c.w && h == c.h {
		return
	}
	c.w, c.h = w, h
	c.cells = make([]Cell, w*h)
	for i := range c.cells {
		c.cells[i].Rune = ' '
	}
}

func (c *Canvas) SetContent(x, y int, r rune, _ []rune, style tcell.Style) {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return
	}
	c.cells[y*c.w+x] = Cell{Rune: r, Style: style}
}

func (c *Canvas) Size() (int, int) { return c.w, c.h }

func (c *Canvas) ShowCursor(x, y int) { c.cursorX, c.cursorY, c.cursor = x, y, true }
func (c *Canvas) HideCursor()         { c.cursor = false }

// CursorPosition returns the text cursor and whether it is shown.
func (c *Canvas) CursorPosition() (int, int, bool) { return c.cursorX, c.cursorY, c.cursor }

// Cell returns the cell at x, y.
func (c *Canvas) Cell(x, y int) Cell { return c.cells[y*c.w+x] }

// Row returns the runes of row y with trailing spaces removed.
func (c *Canvas) Row(y int) string {
	var b strings.Builder
	for x := 0; x < c.w; x++ {
		b.WriteRune(c.cells[y*c.w+x].Rune)
	}
	return strings.TrimRight(b.String(), " ")
}

// Surface renders into a Canvas and counts frames.
type Surface struct {
	Device    bool
	SkipFrame bool

	Size    geo.Extent
	Updates []geo.Extent
	Clears  []geo.RectI
	Frames  int
	Canvas  Canvas

	delegates []host.Delegate
}

// NewSurface returns a surface with a device.
func NewSurface() *Surface { return &Surface{Device: true} }

func (s *Surface) HasDevice() bool { return s.Device }

func (s *Surface) Update(size geo.Extent) {
	s.Size = size
	s.Updates = append(s.Updates, size)
	s.Canvas.resize(int(size.W), int(size.H))
}

func (s *Surface) RenderStart(clear geo.RectI) (*draw.Context, bool) {
	if s.SkipFrame {
		return nil, false
	}
	s.Clears = append(s.Clears, clear)
	ctx := draw.NewContext(&s.Canvas, clear)
	ctx.Fill(clear.Float(), tcell.StyleDefault)
	s.Canvas.HideCursor()
	for _, d := range s.delegates {
		d.DrawDelegate(ctx)
	}
	return ctx, true
}

func (s *Surface) RenderFinish(*draw.Context) { s.Frames++ }

func (s *Surface) AddDelegate(d host.Delegate) { s.delegates = append(s.delegates, d) }

func (s *Surface) RemoveDelegate(d host.Delegate) {
	for i, cur := range s.delegates {
		if cur == d {
			s.delegates = append(s.delegates[:i], s.delegates[i+1:]...)
			return
		}
	}
}
