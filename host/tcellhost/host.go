// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: host/tcellhost/host.go
// Summary: A terminal host: one window filling a tcell screen.
// Usage: Create with New, build a window.Window over the host and its
// Surface, then call Run on the goroutine that owns the GUI.
// Notes: The terminal cannot be resized by the program, so the minimum and
// maximum window size both equal the terminal size.

package tcellhost

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelgui/draw"
	"github.com/framegrace/texelgui/event"
	"github.com/framegrace/texelgui/geo"
	"github.com/framegrace/texelgui/host"
)

const (
	defaultFrame = 16 * time.Millisecond
	// composeTimeout is how long a pending grapheme cluster waits for
	// combining input before it is committed.
	composeTimeout = 40 * time.Millisecond
)

// Window is the part of window.Window the host drives.
type Window interface {
	Deliver(e event.Event)
	Tick(displayTime time.Time)
	HostResized(size geo.Extent, state host.SizeState)
}

// Options tune the terminal host. Zero values use defaults.
type Options struct {
	FrameInterval       time.Duration
	DoubleClickInterval time.Duration
	DoubleClickDistance float32
}

// Host implements host.Host over a tcell screen.
type Host struct {
	screen  tcell.Screen
	surface *Surface
	opts    Options

	mu    sync.Mutex
	queue []func()
	wake  chan struct{}

	quit      chan struct{}
	closeOnce sync.Once
	finiOnce  sync.Once

	clipMu    sync.Mutex
	clipboard string
	hasClip   bool

	width, height int
	cursor        host.Cursor

	clicks   *host.ClickCounter
	buttons  event.MouseButtons
	mousePos geo.Point
	hasMouse bool

	graphemes host.GraphemeDecoder
	lastRune  time.Time
	pasting   bool
	paste     []rune
}

// New initialises screen and returns a host for it.
func New(screen tcell.Screen, opts Options) (*Host, error) {
	if err := screen.Init(); err != nil {
		return nil, err
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = defaultFrame
	}
	if opts.DoubleClickInterval <= 0 {
		opts.DoubleClickInterval = 500 * time.Millisecond
	}
	if opts.DoubleClickDistance <= 0 {
		opts.DoubleClickDistance = 4
	}

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorReset).Foreground(tcell.ColorReset))
	screen.HideCursor()
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnablePaste()
	screen.EnableFocus()

	h := &Host{
		screen: screen,
		opts:   opts,
		wake:   make(chan struct{}, 1),
		quit:   make(chan struct{}),
		clicks: host.NewClickCounter(opts.DoubleClickInterval, opts.DoubleClickDistance),
	}
	h.width, h.height = screen.Size()
	h.surface = &Surface{screen: screen}
	screen.GetClipboard()
	return h, nil
}

// Surface returns the surface drawing into the screen.
func (h *Host) Surface() *Surface { return h.surface }

// Screen exposes the wrapped tcell screen.
func (h *Host) Screen() tcell.Screen { return h.screen }

// Run is the GUI loop. It polls terminal events on a separate goroutine,
// runs posted functions and renders a frame every frame interval. It
// returns when the window is closed or ctx is cancelled.
func (h *Host) Run(ctx context.Context, w Window) error {
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-h.quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(h.opts.FrameInterval)
	defer ticker.Stop()

	w.HostResized(h.size(), host.SizeNormal)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-h.quit:
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			h.handle(ev, w)
		case <-h.wake:
			h.runPosted()
		case now := <-ticker.C:
			h.runPosted()
			if h.composeExpired(now) {
				h.deliver(w, h.commitGraphemes(now))
			}
			w.Tick(now)
		}
	}
}

// Close finalises the screen. It is safe to call more than once.
func (h *Host) Close() {
	h.CloseWindow()
	h.finiOnce.Do(h.screen.Fini)
}

func (h *Host) handle(ev tcell.Event, w Window) {
	if resize, ok := ev.(*tcell.EventResize); ok {
		width, height := resize.Size()
		h.screen.Clear()
		if width == h.width && height == h.height {
			return
		}
		h.width, h.height = width, height
		log.Printf("Terminal: resized to %dx%d", width, height)
		w.HostResized(h.size(), host.SizeNormal)
		w.Deliver(event.New(event.WindowReconstrain))
		return
	}
	h.deliver(w, h.translate(ev))
}

func (h *Host) deliver(w Window, events []event.Event) {
	for _, e := range events {
		w.Deliver(e)
	}
}

func (h *Host) size() geo.Extent { return geo.Ext(float32(h.width), float32(h.height)) }

func (h *Host) runPosted() {
	h.mu.Lock()
	queue := h.queue
	h.queue = nil
	h.mu.Unlock()
	for _, f := range queue {
		f()
	}
}

func (h *Host) PostOnGUIThread(f func()) {
	h.mu.Lock()
	h.queue = append(h.queue, f)
	h.mu.Unlock()
	select {
	case h.wake <- struct{}{}:
	default:
	}
}

func (h *Host) SetCursor(c host.Cursor) {
	if c == h.cursor {
		return
	}
	h.cursor = c
	if c == host.CursorTextEdit {
		h.screen.SetCursorStyle(tcell.CursorStyleSteadyBar)
	} else {
		h.screen.SetCursorStyle(tcell.CursorStyleDefault)
	}
}

// SetWindowSize cannot change the terminal; the request is only logged when
// the widgets do not fit.
func (h *Host) SetWindowSize(size geo.Extent) {
	if size != h.size() {
		log.Printf("Terminal: window wants %gx%g but the terminal is %dx%d", size.W, size.H, h.width, h.height)
	}
}

func (h *Host) SetSizeState(state host.SizeState) {
	if state != host.SizeNormal {
		log.Printf("Terminal: size state %s is not supported", state)
	}
}

// CloseWindow ends Run.
func (h *Host) CloseWindow() {
	h.closeOnce.Do(func() { close(h.quit) })
}

func (h *Host) OpenSystemMenu() {}

// TextFromClipboard returns the local mirror of the clipboard. The mirror
// follows the terminal through OSC 52 replies when the terminal allows it.
func (h *Host) TextFromClipboard() (string, bool) {
	h.clipMu.Lock()
	defer h.clipMu.Unlock()
	return h.clipboard, h.hasClip
}

func (h *Host) PutTextOnClipboard(text string) {
	h.setMirror(text)
	h.screen.SetClipboard([]byte(text))
}

func (h *Host) setMirror(text string) {
	h.clipMu.Lock()
	h.clipboard, h.hasClip = text, true
	h.clipMu.Unlock()
}

func (h *Host) screenRect() geo.RectI { return geo.RectI{W: h.width, H: h.height} }

func (h *Host) WorkspaceRectangle() geo.RectI                 { return h.screenRect() }
func (h *Host) FullscreenRectangle() geo.RectI                { return h.screenRect() }
func (h *Host) PrimaryMonitorRectangle() geo.RectI            { return h.screenRect() }
func (h *Host) PixelDensity() float32                         { return 1 }
func (h *Host) SubpixelOrientation() draw.SubpixelOrientation { return draw.SubpixelUnknown }
func (h *Host) DoubleClickInterval() time.Duration            { return h.opts.DoubleClickInterval }
func (h *Host) DoubleClickDistance() float32                  { return h.opts.DoubleClickDistance }
func (h *Host) LeftToRight() bool                             { return true }
func (h *Host) KeyboardRepeatDelay() time.Duration            { return 500 * time.Millisecond }
func (h *Host) KeyboardRepeatInterval() time.Duration         { return 33 * time.Millisecond }
func (h *Host) MinimumWindowSize() geo.Extent                 { return h.size() }
func (h *Host) MaximumWindowSize() geo.Extent                 { return h.size() }

// Surface renders straight into the tcell screen.
type Surface struct {
	screen    tcell.Screen
	size      geo.Extent
	delegates []host.Delegate
}

func (s *Surface) HasDevice() bool { return s.screen != nil }

func (s *Surface) Update(size geo.Extent) { s.size = size }

func (s *Surface) RenderStart(clear geo.RectI) (*draw.Context, bool) {
	ctx := draw.NewContext(s.screen, clear)
	ctx.Fill(clear.Float(), tcell.StyleDefault)
	s.screen.HideCursor()
	for _, d := range s.delegates {
		d.DrawDelegate(ctx)
	}
	return ctx, true
}

func (s *Surface) RenderFinish(*draw.Context) { s.screen.Show() }

func (s *Surface) AddDelegate(d host.Delegate) { s.delegates = append(s.delegates, d) }

func (s *Surface) RemoveDelegate(d host.Delegate) {
	for i, cur := range s.delegates {
		if cur == d {
			s.delegates = append(s.delegates[:i], s.delegates[i+1:]...)
			return
		}
	}
}
