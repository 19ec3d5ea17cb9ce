// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: window/window.go
// Summary: The window engine binding a widget tree to one host window.
// Usage: Hosts create a Window per OS window, feed it input with Deliver
// and frames with Tick, and report OS size changes with HostResized.
// Notes: All methods except Deliver and the Request* helpers must run on
// the GUI goroutine.

package window

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/framegrace/texelgui/event"
	"github.com/framegrace/texelgui/geo"
	"github.com/framegrace/texelgui/host"
	"github.com/framegrace/texelgui/ids"
	"github.com/framegrace/texelgui/internal/effects"
	"github.com/framegrace/texelgui/keybind"
	"github.com/framegrace/texelgui/theme"
	"github.com/framegrace/texelgui/widget"
	"github.com/framegrace/texelgui/widgets"
)

const (
	// inactiveSaturation is the colour saturation of an inactive window.
	inactiveSaturation float32 = 0.35
	defaultFade                = 150 * time.Millisecond

	keyActive = "active"
)

// StateStore persists the size of windows between runs, keyed by title.
type StateStore interface {
	Load(title string) (size geo.Extent, state host.SizeState, ok bool, err error)
	Save(title string, size geo.Extent, state host.SizeState) error
}

// Options are the collaborators of a window besides its host.
type Options struct {
	// Bindings translates keyboard_down events. Nil uses an empty store.
	Bindings *keybind.Store
	// Theme is the untransformed theme. Nil uses theme.Fallback.
	Theme *theme.Theme
	// State restores and saves the window geometry. Optional.
	State StateStore
	// ActivateFade is the length of the saturation fade on activation
	// changes. Zero uses 150ms.
	ActivateFade time.Duration
}

// Window is the event and layout engine of one OS window.
type Window struct {
	title    string
	host     host.Host
	surface  host.Surface
	bindings *keybind.Store
	store    StateStore

	baseTheme *theme.Theme
	theme     *theme.Theme

	arena *widget.Arena
	root  *Root

	mouseTarget    ids.WidgetID
	keyboardTarget ids.WidgetID
	cursor         host.Cursor
	noWrap         event.FocusGroup

	// mouseDown is the last mouse_down, kept while buttons are held to turn
	// moves into drags.
	mouseDown    event.Event
	hasMouseDown bool

	restyle     atomic.Bool
	resize      atomic.Bool
	reconstrain atomic.Bool
	relayout    atomic.Bool

	redrawMu sync.Mutex
	redraw   geo.RectI

	constraints widget.BoxConstraints
	size        geo.Extent
	sizeState   host.SizeState
	widgetSize  geo.Extent
	// requested is a restored size asked of the host on the first frame.
	requested geo.Extent
	restored  bool
	shown     bool

	active      bool
	fade        time.Duration
	animator    *effects.Timeline[string]
	lastDisplay time.Time
	closed      bool
}

// New creates a window and its root widget. The OS window is shown on the
// first frame, at the preferred size of the widget tree.
func New(title string, h host.Host, s host.Surface, opts Options) *Window {
	w := &Window{
		title:     title,
		host:      h,
		surface:   s,
		bindings:  opts.Bindings,
		store:     opts.State,
		baseTheme: opts.Theme,
		arena:     widget.NewArena(),
		active:    true,
		fade:      opts.ActivateFade,
		animator:  effects.NewTimeline[string](1),
	}
	if w.bindings == nil {
		w.bindings = keybind.New()
	}
	if w.fade <= 0 {
		w.fade = defaultFade
	}
	if w.baseTheme == nil {
		w.baseTheme = theme.Fallback()
	}
	w.theme = w.baseTheme.Transform(h.PixelDensity())

	w.root = newRoot(h)
	w.root.Attach(w)

	w.restyle.Store(true)
	w.reconstrain.Store(true)
	return w
}

// Title returns the window title.
func (w *Window) Title() string { return w.title }

// Root returns the window widget.
func (w *Window) Root() *Root { return w.root }

// Content returns the container for the application's widgets.
func (w *Window) Content() *widgets.Stack { return w.root.Content() }

// KeyboardTarget returns the widget with keyboard focus, or zero.
func (w *Window) KeyboardTarget() ids.WidgetID { return w.keyboardTarget }

// MouseTarget returns the widget under the mouse, or zero.
func (w *Window) MouseTarget() ids.WidgetID { return w.mouseTarget }

// Size returns the last size reported by the host.
func (w *Window) Size() geo.Extent { return w.size }

// Constraints returns the constraints computed on the last frame.
func (w *Window) Constraints() widget.BoxConstraints { return w.constraints }

// Active reports whether the OS window is the active one.
func (w *Window) Active() bool { return w.active }

// Closed reports whether window_close was processed.
func (w *Window) Closed() bool { return w.closed }

// SetFocusWrap selects whether directional focus in group wraps around at
// the end of the tree. Every group wraps by default.
func (w *Window) SetFocusWrap(group event.FocusGroup, wrap bool) {
	if wrap {
		w.noWrap &^= group
	} else {
		w.noWrap |= group
	}
}

func (w *Window) wraps(group event.FocusGroup) bool {
	return group&^w.noWrap != 0
}

// Theme returns the theme scaled for the host's pixel density.
func (w *Window) Theme() *theme.Theme { return w.theme }

// Lookup resolves a widget id.
func (w *Window) Lookup(id ids.WidgetID) widget.Widget { return w.arena.Lookup(id) }

// Register adds a widget to the arena.
func (w *Window) Register(wd widget.Widget) { w.arena.Register(wd) }

// Unregister removes a widget from the arena. A removed widget silently
// loses the mouse and keyboard targets.
func (w *Window) Unregister(id ids.WidgetID) {
	w.arena.Unregister(id)
	if w.mouseTarget == id {
		w.mouseTarget = 0
	}
	if w.keyboardTarget == id {
		w.keyboardTarget = 0
	}
}

// Deliver queues e for ProcessEvent on the GUI goroutine. It is safe to
// call from any goroutine.
func (w *Window) Deliver(e event.Event) {
	w.host.PostOnGUIThread(func() { w.ProcessEvent(e) })
}

// Tick renders one frame.
func (w *Window) Tick(displayTime time.Time) { w.Render(displayTime) }

// HostResized records a size or state change made by the OS.
func (w *Window) HostResized(size geo.Extent, state host.SizeState) {
	if size == w.size && state == w.sizeState {
		return
	}
	log.Printf("Window: %q resized by host to %gx%g (%s)", w.title, size.W, size.H, state)
	w.size = size
	w.sizeState = state
	w.RequestRedrawAll()
	w.saveState()
}

// RequestRestyle asks for the theme to be re-derived on the next frame.
func (w *Window) RequestRestyle() { w.restyle.Store(true) }

// RequestRedraw adds r (window coordinates) to the area redrawn on the next
// frame.
func (w *Window) RequestRedraw(r geo.RectI) {
	if r.Empty() {
		return
	}
	w.redrawMu.Lock()
	w.redraw = w.redraw.Union(r)
	w.redrawMu.Unlock()
}

// RequestRedrawAll redraws the whole window on the next frame.
func (w *Window) RequestRedrawAll() {
	w.RequestRedraw(geo.RectI{W: int(w.size.W), H: int(w.size.H)})
}

func (w *Window) takeRedraw() geo.RectI {
	w.redrawMu.Lock()
	defer w.redrawMu.Unlock()
	r := w.redraw
	w.redraw = geo.RectI{}
	return r
}

func (w *Window) setActive(e event.Event) {
	w.active = e.Is(event.WindowActivate)
	target := float32(1)
	if !w.active {
		target = inactiveSaturation
	}
	if w.lastDisplay.IsZero() {
		w.animator.Set(keyActive, target)
	} else {
		w.animator.AnimateTo(keyActive, target, w.fade, w.lastDisplay)
	}
	widget.HandleEventRecursive(w.root, e, nil)
	w.RequestRedrawAll()
}

func (w *Window) restoreState() {
	w.restored = true
	if w.store == nil {
		return
	}
	size, state, ok, err := w.store.Load(w.title)
	if err != nil {
		log.Printf("Window: restore state of %q: %v", w.title, err)
		return
	}
	if !ok {
		return
	}
	switch state {
	case host.SizeMaximized, host.SizeFullscreen:
		w.host.SetSizeState(state)
	default:
		if !size.Empty() {
			w.requested = size
			w.resize.Store(true)
		}
	}
}

func (w *Window) saveState() {
	if w.store == nil || !w.restored || w.size.Empty() {
		return
	}
	if err := w.store.Save(w.title, w.size, w.sizeState); err != nil {
		log.Printf("Window: save state of %q: %v", w.title, err)
	}
}
