// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package window

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/framegrace/texelgui/draw"
	"github.com/framegrace/texelgui/event"
	"github.com/framegrace/texelgui/geo"
	"github.com/framegrace/texelgui/host"
	"github.com/framegrace/texelgui/host/hosttest"
	"github.com/framegrace/texelgui/keybind"
	"github.com/framegrace/texelgui/widget"
	"github.com/framegrace/texelgui/widgets"
)

// probe is a leaf that logs every event it is offered.
type probe struct {
	widget.Base
	name    string
	log     *[]string
	groups  event.FocusGroup
	size    geo.Extent
	flex    bool
	noHit   bool
	consume map[event.Kind]bool

	events     []event.Event
	saturation float32
	draws      int
}

func newProbe(name string, log *[]string, groups event.FocusGroup, size geo.Extent) *probe {
	p := &probe{name: name, log: log, groups: groups, size: size, consume: map[event.Kind]bool{}}
	p.Init(p)
	return p
}

func (p *probe) AcceptsKeyboardFocus(g event.FocusGroup) bool { return p.groups.Intersects(g) }

func (p *probe) UpdateConstraints() widget.BoxConstraints {
	if p.flex {
		return widget.Flexible(p.size, p.size)
	}
	return widget.Fixed(p.size)
}

func (p *probe) HitboxTest(pt geo.Point) event.Hitbox {
	if p.noHit {
		return event.Hitbox{}
	}
	return p.Hit(pt, event.HitButton)
}

func (p *probe) HandleEvent(e event.Event) bool {
	*p.log = append(*p.log, p.name+":"+e.Kind().String())
	p.events = append(p.events, e)
	if p.consume[e.Kind()] {
		return true
	}
	return p.Base.HandleEvent(e)
}

func (p *probe) Draw(ctx *draw.Context) {
	if !p.Drawable(ctx) {
		return
	}
	p.saturation = ctx.ActiveSaturation
	p.draws++
}

func (p *probe) last(kind event.Kind) (event.Event, bool) {
	for i := len(p.events) - 1; i >= 0; i-- {
		if p.events[i].Is(kind) {
			return p.events[i], true
		}
	}
	return event.Event{}, false
}

// relay is a row that logs the events bubbling through it.
type relay struct {
	widgets.Stack
	log *[]string
}

func newRelay(log *[]string) *relay {
	r := &relay{log: log}
	r.Axis = widgets.Horizontal
	r.Spacing = 0
	r.Init(r)
	return r
}

func (r *relay) HandleEvent(e event.Event) bool {
	*r.log = append(*r.log, "row:"+e.Kind().String())
	return r.Stack.HandleEvent(e)
}

// only keeps the log entries of the given kinds.
func only(log []string, kinds ...event.Kind) []string {
	out := []string{}
	for _, entry := range log {
		for _, k := range kinds {
			if strings.HasSuffix(entry, ":"+k.String()) {
				out = append(out, entry)
				break
			}
		}
	}
	return out
}

type harness struct {
	t       *testing.T
	host    *hosttest.Host
	surface *hosttest.Surface
	win     *Window
	log     []string
	row     *relay
	a, b    *probe
	filler  *probe
	now     time.Time
}

// newHarness builds a fixed 40x10 window holding a row of two focusable 10x1
// probes above a flexible filler that ignores the mouse. A fixed window has
// no resize borders, so the probes get the pointer.
func newHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	return buildHarness(t, opts, false)
}

// newResizableHarness builds the same window on a host that lets it
// resize.
func newResizableHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	return buildHarness(t, opts, true)
}

func buildHarness(t *testing.T, opts Options, resizable bool) *harness {
	t.Helper()
	h := &harness{
		t:       t,
		host:    hosttest.New(),
		surface: hosttest.NewSurface(),
		now:     time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	if !resizable {
		h.host.MinSize = geo.Ext(40, 10)
		h.host.MaxSize = geo.Ext(40, 10)
	}
	h.win = New("test", h.host, h.surface, opts)
	h.win.Root().ShowToolbar(false)
	h.win.Content().Spacing = 0

	h.row = newRelay(&h.log)
	h.a = newProbe("a", &h.log, event.GroupNormal, geo.Ext(10, 1))
	h.b = newProbe("b", &h.log, event.GroupNormal, geo.Ext(10, 1))
	h.row.Add(h.a)
	h.row.Add(h.b)
	h.filler = newProbe("filler", &h.log, 0, geo.Ext(1, 1))
	h.filler.flex = true
	h.filler.noHit = true
	h.win.Content().Add(h.row)
	h.win.Content().Add(h.filler)

	h.win.HostResized(geo.Ext(40, 10), host.SizeNormal)
	h.frame()
	h.log = nil
	return h
}

func (h *harness) frame() {
	h.now = h.now.Add(16 * time.Millisecond)
	h.win.Tick(h.now)
}

func (h *harness) send(e event.Event) bool {
	h.t.Helper()
	e.Time = h.now
	return h.win.ProcessEvent(e)
}

func (h *harness) move(x, y float32) bool {
	return h.send(event.Mouse(event.MouseMove, geo.Pt(x, y)))
}

func (h *harness) press(x, y float32) bool {
	e := event.Mouse(event.MouseDown, geo.Pt(x, y))
	m := e.Mouse()
	m.Cause = event.ButtonLeft
	m.Down = event.ButtonLeft
	m.ClickCount = 1
	return h.send(e)
}

func (h *harness) focus(p *probe) {
	h.send(event.SetKeyboardTarget(p.ID(), event.GroupNormal, event.Here))
	h.log = nil
}

func TestLayoutOfHarness(t *testing.T) {
	h := newHarness(t, Options{})
	want := map[string]geo.Rect{
		"a":      {X: 0, Y: 0, W: 10, H: 1},
		"b":      {X: 10, Y: 0, W: 10, H: 1},
		"filler": {X: 0, Y: 1, W: 40, H: 9},
	}
	for _, p := range []*probe{h.a, h.b, h.filler} {
		if diff := cmp.Diff(want[p.name], p.Layout().WindowRectangle()); diff != "" {
			t.Errorf("%s layout (-want +got):\n%s", p.name, diff)
		}
	}
	c := h.win.Constraints()
	if c.Minimum != geo.Ext(20, 2) || c.Maximum != geo.Ext(200, 60) {
		t.Fatalf("constraints = %+v", c)
	}
	if h.surface.Frames != 1 {
		t.Fatalf("frames = %d, want 1", h.surface.Frames)
	}
}

func TestClickFocusesAndRoutes(t *testing.T) {
	h := newHarness(t, Options{})
	h.a.consume[event.MouseDown] = true

	h.move(5, 0)
	if !h.press(5, 0) {
		t.Fatal("mouse_down on a consuming widget was not handled")
	}

	want := []string{"a:mouse_enter", "b:gui_cancel", "filler:gui_cancel", "a:keyboard_enter", "a:mouse_down"}
	got := only(h.log, event.MouseEnter, event.GUICancel, event.KeyboardEnter, event.MouseDown)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("event order (-want +got):\n%s", diff)
	}
	if h.win.MouseTarget() != h.a.ID() || h.win.KeyboardTarget() != h.a.ID() {
		t.Fatalf("targets = %v/%v, want a", h.win.MouseTarget(), h.win.KeyboardTarget())
	}
	if h.host.Cursor != host.CursorButton {
		t.Fatalf("cursor = %v, want button", h.host.Cursor)
	}
	down, _ := h.a.last(event.MouseDown)
	if !down.Mouse().HasHitbox || down.Mouse().Hitbox.WidgetID != h.a.ID() {
		t.Fatalf("mouse_down carries hitbox %+v", down.Mouse().Hitbox)
	}
}

func TestCursorOnlySetWhenChanged(t *testing.T) {
	h := newHarness(t, Options{})
	h.move(5, 0)
	h.move(6, 0)
	h.move(15, 0)
	if h.host.CursorCalls != 1 {
		t.Fatalf("cursor set %d times, want 1", h.host.CursorCalls)
	}
}

func TestTabMovesFocusWithWrap(t *testing.T) {
	bindings := keybind.New()
	bindings.AddSystem(keybind.Combo{Key: event.KeyTab}, event.GUIWidgetNext)
	h := newHarness(t, Options{Bindings: bindings})
	h.focus(h.b)

	h.send(event.Key(event.KeyboardDown, event.KeyTab, event.ModNone))

	want := []string{
		"b:keyboard_down", "b:gui_widget_next",
		"b:keyboard_exit", "b:gui_cancel", "filler:gui_cancel",
		"a:keyboard_enter",
	}
	if diff := cmp.Diff(want, h.log); diff != "" {
		t.Fatalf("event order (-want +got):\n%s", diff)
	}
	if h.win.KeyboardTarget() != h.a.ID() {
		t.Fatalf("focus = %v, want a", h.win.KeyboardTarget())
	}
}

func TestGUIWidgetNextWithoutFocus(t *testing.T) {
	h := newHarness(t, Options{})
	h.send(event.New(event.GUIWidgetNext))
	if h.win.KeyboardTarget() != h.a.ID() {
		t.Fatalf("focus = %v, want first focusable widget", h.win.KeyboardTarget())
	}
	h.send(event.New(event.GUIWidgetPrev))
	if h.win.KeyboardTarget() != h.b.ID() {
		t.Fatalf("focus = %v, want wrap to last widget", h.win.KeyboardTarget())
	}
}

func TestPasteHydratesFromClipboard(t *testing.T) {
	bindings := keybind.New()
	bindings.AddSystem(keybind.Combo{Mods: event.ModControl, Key: event.KeyV}, event.TextEditPaste)
	h := newHarness(t, Options{Bindings: bindings})
	tf := widgets.NewTextField(8)
	h.row.Add(tf)
	h.frame()
	h.send(event.SetKeyboardTarget(tf.ID(), event.GroupNormal, event.Here))
	ctrlV := func() { h.send(event.Key(event.KeyboardDown, event.KeyV, event.ModControl)) }

	h.host.Clipboard, h.host.HasClipboard = "hi", true
	ctrlV()
	if tf.Text() != "hi" {
		t.Fatalf("text = %q, want %q", tf.Text(), "hi")
	}

	tf.SetText("")
	h.host.Clipboard = "e\u0301"
	ctrlV()
	if tf.Text() != "\u00e9" {
		t.Fatalf("pasted %q, want the composed form", tf.Text())
	}

	tf.SetText("x")
	h.host.HasClipboard = false
	ctrlV()
	if tf.Text() != "x" {
		t.Fatalf("failed clipboard read changed text to %q", tf.Text())
	}
}

func TestCopyPutsSelectionOnClipboard(t *testing.T) {
	h := newHarness(t, Options{})
	tf := widgets.NewTextField(8)
	h.row.Add(tf)
	h.frame()
	h.send(event.SetKeyboardTarget(tf.ID(), event.GroupNormal, event.Here))
	tf.SetText("hello")

	h.send(event.New(event.TextSelectDocument))
	h.send(event.New(event.TextEditCopy))
	if !h.host.HasClipboard || h.host.Clipboard != "hello" {
		t.Fatalf("clipboard = %q (%v)", h.host.Clipboard, h.host.HasClipboard)
	}
}

func TestMoveWithButtonBecomesDrag(t *testing.T) {
	h := newHarness(t, Options{})
	h.move(5, 0)
	h.press(5, 0)

	mv := event.Mouse(event.MouseMove, geo.Pt(7, 0))
	mv.Mouse().Down = event.ButtonLeft
	h.send(mv)

	drag, ok := h.a.last(event.MouseDrag)
	if !ok {
		t.Fatalf("no mouse_drag delivered; log %v", h.log)
	}
	m := drag.Mouse()
	if m.Position != geo.Pt(7, 0) || m.DownPosition != geo.Pt(5, 0) || m.ClickCount != 1 {
		t.Fatalf("drag payload = %+v", *m)
	}

	up := event.Mouse(event.MouseUp, geo.Pt(7, 0))
	up.Mouse().Cause = event.ButtonLeft
	h.send(up)
	got, ok := h.a.last(event.MouseUp)
	if !ok || got.Mouse().DownPosition != geo.Pt(5, 0) {
		t.Fatalf("mouse_up payload = %+v", got)
	}

	h.move(8, 0)
	if last := h.a.events[len(h.a.events)-1]; !last.Is(event.MouseMove) {
		t.Fatalf("move after release arrived as %v", last.Kind())
	}
	drags := 0
	for _, e := range h.a.events {
		if e.Is(event.MouseDrag) {
			drags++
		}
	}
	if drags != 1 {
		t.Fatalf("drags = %d, want exactly one", drags)
	}
}

func TestDragStaysWithPressedWidget(t *testing.T) {
	h := newHarness(t, Options{})
	h.move(5, 0)
	h.press(5, 0)
	mv := event.Mouse(event.MouseMove, geo.Pt(15, 0))
	mv.Mouse().Down = event.ButtonLeft
	h.send(mv)
	if _, ok := h.a.last(event.MouseDrag); !ok {
		t.Fatalf("a did not receive the drag; log %v", h.log)
	}
}

func TestUserIgnoreHidesSystemBinding(t *testing.T) {
	bindings := keybind.New()
	bindings.AddSystem(keybind.Combo{Mods: event.ModControl, Key: event.KeyZ}, event.TextUndo)
	user := `{"bindings":[{"key":"ctrl+z","command":"-text_undo"}]}`
	if err := bindings.Load(strings.NewReader(user), "user.json", false); err != nil {
		t.Fatalf("load: %v", err)
	}
	h := newHarness(t, Options{Bindings: bindings})
	h.focus(h.a)

	h.send(event.Key(event.KeyboardDown, event.KeyZ, event.ModControl))
	want := []string{"a:keyboard_down", "row:keyboard_down"}
	if diff := cmp.Diff(want, h.log); diff != "" {
		t.Fatalf("events (-want +got):\n%s", diff)
	}
}

func TestCancelClearsFocusOnce(t *testing.T) {
	h := newHarness(t, Options{})
	h.focus(h.a)

	h.send(event.New(event.GUICancel))

	want := []string{"a:gui_cancel", "row:gui_cancel", "a:keyboard_exit", "b:gui_cancel", "filler:gui_cancel"}
	got := only(h.log, event.GUICancel, event.KeyboardExit, event.KeyboardEnter)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("events (-want +got):\n%s", diff)
	}
	if !h.win.KeyboardTarget().IsEmpty() {
		t.Fatalf("focus = %v after cancel", h.win.KeyboardTarget())
	}
}

func TestEscapeBindingCancels(t *testing.T) {
	bindings := keybind.New()
	bindings.AddSystem(keybind.Combo{Key: event.KeyEscape}, event.GUICancel)
	h := newHarness(t, Options{Bindings: bindings})
	h.focus(h.b)

	h.send(event.Key(event.KeyboardDown, event.KeyEscape, event.ModNone))
	if !h.win.KeyboardTarget().IsEmpty() {
		t.Fatalf("focus = %v after escape", h.win.KeyboardTarget())
	}
	if n := len(only(h.log, event.GUICancel)); n != 4 {
		t.Fatalf("gui_cancel seen %d times, want once per logged widget: %v", n, h.log)
	}
}

func TestEnterExitPairing(t *testing.T) {
	h := newHarness(t, Options{})
	h.move(5, 0)
	h.move(15, 0)
	h.move(20, 5)
	h.move(5, 0)
	h.send(event.New(event.MouseExitWindow))

	h.press(5, 0)
	h.press(15, 0)
	h.press(20, 5)
	h.send(event.New(event.MouseExitWindow))

	for _, name := range []string{"a", "b", "filler"} {
		count := func(kind event.Kind) int {
			n := 0
			for _, entry := range h.log {
				if entry == name+":"+kind.String() {
					n++
				}
			}
			return n
		}
		if count(event.MouseEnter) != count(event.MouseExit) {
			t.Errorf("%s: %d mouse_enter vs %d mouse_exit", name, count(event.MouseEnter), count(event.MouseExit))
		}
		if count(event.KeyboardEnter) != count(event.KeyboardExit) {
			t.Errorf("%s: %d keyboard_enter vs %d keyboard_exit", name, count(event.KeyboardEnter), count(event.KeyboardExit))
		}
	}
	if !h.win.MouseTarget().IsEmpty() || !h.win.KeyboardTarget().IsEmpty() {
		t.Fatalf("targets = %v/%v, want none", h.win.MouseTarget(), h.win.KeyboardTarget())
	}

	exitThenEnter := only(h.log, event.MouseEnter, event.MouseExit)[:3]
	if diff := cmp.Diff([]string{"a:mouse_enter", "a:mouse_exit", "b:mouse_enter"}, exitThenEnter); diff != "" {
		t.Fatalf("transition order (-want +got):\n%s", diff)
	}
}

func TestFocusIsIdempotent(t *testing.T) {
	h := newHarness(t, Options{})
	h.focus(h.a)
	h.send(event.SetKeyboardTarget(h.a.ID(), event.GroupNormal, event.Here))
	if len(h.log) != 0 {
		t.Fatalf("refocusing produced events: %v", h.log)
	}
}

func TestClickOnEmptyAreaCancelsWithoutFocus(t *testing.T) {
	h := newHarness(t, Options{})
	h.press(20, 5)

	want := []string{"a:gui_cancel", "b:gui_cancel", "row:gui_cancel", "filler:gui_cancel"}
	got := only(h.log, event.GUICancel, event.KeyboardEnter, event.KeyboardExit)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("events (-want +got):\n%s", diff)
	}
	if !h.win.KeyboardTarget().IsEmpty() {
		t.Fatalf("focus = %v, want none", h.win.KeyboardTarget())
	}
}

func TestFocusRejectsWrongGroup(t *testing.T) {
	h := newHarness(t, Options{})
	h.focus(h.a)
	h.send(event.SetKeyboardTarget(h.filler.ID(), event.GroupAll, event.Here))
	if h.win.KeyboardTarget() != 0 {
		t.Fatalf("focus = %v, want cleared", h.win.KeyboardTarget())
	}
	if diff := cmp.Diff([]string{"a:keyboard_exit"}, only(h.log, event.KeyboardExit, event.KeyboardEnter)); diff != "" {
		t.Fatalf("events (-want +got):\n%s", diff)
	}
}

func TestHiddenWidgetCannotTakeFocus(t *testing.T) {
	h := newHarness(t, Options{})
	h.row.SetMode(widget.Invisible)
	h.send(event.SetKeyboardTarget(h.a.ID(), event.GroupNormal, event.Here))
	if !h.win.KeyboardTarget().IsEmpty() {
		t.Fatal("a widget under a hidden parent took focus")
	}
}

func TestBubblingStopsAtHandler(t *testing.T) {
	h := newHarness(t, Options{})
	h.focus(h.a)

	if h.send(event.New(event.TextUndo)) {
		t.Fatal("unhandled text_undo reported as handled")
	}
	if diff := cmp.Diff([]string{"a:text_undo", "row:text_undo"}, h.log); diff != "" {
		t.Fatalf("bubbling (-want +got):\n%s", diff)
	}

	h.log = nil
	h.a.consume[event.TextUndo] = true
	if !h.send(event.New(event.TextUndo)) {
		t.Fatal("consumed text_undo reported as unhandled")
	}
	if diff := cmp.Diff([]string{"a:text_undo"}, h.log); diff != "" {
		t.Fatalf("bubbling (-want +got):\n%s", diff)
	}
}

func TestResizeBorders(t *testing.T) {
	h := newResizableHarness(t, Options{})
	root := h.win.Root()
	bw, bh := root.borderWidth()
	tests := []struct {
		p    geo.Point
		kind event.HitboxKind
	}{
		{geo.Pt(0, 0), event.HitCornerTopLeft},
		{geo.Pt(15, 0), event.HitBorderTop},
		{geo.Pt(39, 9), event.HitCornerBottomRight},
		{geo.Pt(0, 9), event.HitCornerBottomLeft},
		{geo.Pt(25, 0), event.HitBorderTop},
		{geo.Pt(0, 5), event.HitBorderLeft},
		{geo.Pt(39, 5), event.HitBorderRight},
		{geo.Pt(20, 9), event.HitBorderBottom},
		{geo.Pt(20, 5), event.HitDefault},
		{geo.Pt(bw, 5), event.HitBorderLeft},
		{geo.Pt(20, bh), event.HitBorderTop},
		{geo.Pt(bw+0.5, 5), event.HitDefault},
	}
	for _, tt := range tests {
		if got := root.HitboxTest(tt.p).Kind; got != tt.kind {
			t.Errorf("hit at %v = %v, want %v", tt.p, got, tt.kind)
		}
	}

	if got := h.a.HitboxTest(geo.Pt(0, 0)).Kind; got != event.HitButton {
		t.Fatalf("button under the corner hit as %v", got)
	}
	h.press(15, 0)
	if h.win.MouseTarget() != root.ID() {
		t.Fatalf("mouse target = %v, want the root over the top border", h.win.MouseTarget())
	}
	if len(only(h.log, event.MouseDown)) != 0 {
		t.Fatalf("button under the border saw the press: %v", h.log)
	}

	h.move(39, 9)
	if h.win.MouseTarget() != root.ID() || h.host.Cursor != host.CursorNone {
		t.Fatalf("target %v cursor %v at the corner", h.win.MouseTarget(), h.host.Cursor)
	}
}

func TestNoBordersWhenSizeIsFixed(t *testing.T) {
	h := newResizableHarness(t, Options{})
	h.host.MinSize = geo.Ext(40, 10)
	h.host.MaxSize = geo.Ext(40, 10)
	h.send(event.New(event.WindowReconstrain))
	h.frame()

	if w, hh := h.win.Root().CanResize(); w || hh {
		t.Fatalf("CanResize = %v, %v", w, hh)
	}
	if got := h.win.Root().HitboxTest(geo.Pt(39, 9)).Kind; got != event.HitDefault {
		t.Fatalf("corner hit = %v, want default", got)
	}
}

func TestScrollBarBeatsBorder(t *testing.T) {
	hst := hosttest.New()
	surface := hosttest.NewSurface()
	w := New("scroll", hst, surface, Options{})
	w.Root().ShowToolbar(false)
	col := widgets.NewColumn()
	for range 20 {
		col.Add(widgets.NewLabel("line"))
	}
	w.Content().Add(widgets.NewScrollView(col))
	w.HostResized(geo.Ext(40, 10), host.SizeNormal)
	w.Tick(time.Now())

	if got := w.Root().HitboxTest(geo.Pt(39, 5)).Kind; got != event.HitScrollBar {
		t.Fatalf("hit = %v, want scroll bar", got)
	}
	if got := w.Root().HitboxTest(geo.Pt(39, 9)).Kind; got != event.HitCornerBottomRight {
		t.Fatalf("hit = %v, want the corner over the scroll bar", got)
	}
}

// boxed is a leaf with fixed constraints.
type boxed struct {
	widget.Base
	c widget.BoxConstraints
}

func newBoxed(minimum, preferred, maximum geo.Extent) *boxed {
	b := &boxed{c: widget.BoxConstraints{Minimum: minimum, Preferred: preferred, Maximum: maximum}}
	b.Init(b)
	return b
}

func (b *boxed) UpdateConstraints() widget.BoxConstraints { return b.c }

type sizes struct {
	Minimum, Preferred, Maximum geo.Extent
}

func TestRootCombinesToolbarAndContent(t *testing.T) {
	tests := []struct {
		name         string
		content      *boxed
		want         sizes
		resizeW      bool
		resizeH      bool
		contentRect  geo.Rect
		toolbarWidth float32
	}{
		{
			name:    "flexible content",
			content: newBoxed(geo.Ext(8, 2), geo.Ext(20, 4), geo.Ext(30, 6)),
			// The toolbar is wider at minimum, the content at preferred
			// and maximum. The head is 1 + 1 + max(2, 1) cells.
			want: sizes{
				Minimum:   geo.Ext(17, 7),
				Preferred: geo.Ext(25, 9),
				Maximum:   geo.Ext(35, 11),
			},
			resizeW:      true,
			resizeH:      true,
			contentRect:  geo.Rect{X: 2, Y: 4, W: 20, H: 4},
			toolbarWidth: 23,
		},
		{
			name:    "fixed content width",
			content: newBoxed(geo.Ext(20, 2), geo.Ext(20, 4), geo.Ext(20, 6)),
			want: sizes{
				Minimum:   geo.Ext(25, 7),
				Preferred: geo.Ext(25, 9),
				Maximum:   geo.Ext(25, 11),
			},
			resizeH:      true,
			contentRect:  geo.Rect{X: 2, Y: 4, W: 20, H: 4},
			toolbarWidth: 23,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hst := hosttest.New()
			w := New("box", hst, hosttest.NewSurface(), Options{})
			root := w.Root()
			root.ShowToolbar(true)
			tb := root.Toolbar()
			tb.Margins = geo.Margins{Left: 1, Top: 1, Right: 1, Bottom: 2}
			var log []string
			tb.Add(newProbe("wide", &log, 0, geo.Ext(10, 1)))
			tb.Add(newProbe("narrow", &log, 0, geo.Ext(4, 1)))
			w.Content().Spacing = 0
			w.Content().Margins = geo.Margins{Left: 2, Top: 1, Right: 3, Bottom: 1}
			w.Content().Add(tt.content)

			now := time.Now()
			w.Tick(now)
			c := w.Constraints()
			got := sizes{Minimum: c.Minimum, Preferred: c.Preferred, Maximum: c.Maximum}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("constraints (-want +got):\n%s", diff)
			}
			if rw, rh := root.CanResize(); rw != tt.resizeW || rh != tt.resizeH {
				t.Fatalf("CanResize = %v, %v, want %v, %v", rw, rh, tt.resizeW, tt.resizeH)
			}

			w.HostResized(tt.want.Preferred, host.SizeNormal)
			w.Tick(now.Add(16 * time.Millisecond))
			if diff := cmp.Diff(tt.contentRect, w.Content().Layout().WindowRectangle()); diff != "" {
				t.Fatalf("content rect (-want +got):\n%s", diff)
			}
			want := geo.Rect{X: 1, Y: 1, W: tt.toolbarWidth, H: 1}
			if diff := cmp.Diff(want, tb.Layout().WindowRectangle()); diff != "" {
				t.Fatalf("toolbar rect (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToolbarKeyboardNavigation(t *testing.T) {
	hst := hosttest.New()
	w := New("tools", hst, hosttest.NewSurface(), Options{})
	one := widgets.NewButton("One", nil)
	two := widgets.NewButton("Two", nil)
	w.Root().Toolbar().Add(one)
	w.Root().Toolbar().Add(two)
	w.Content().Add(widgets.NewLabel("body"))
	w.HostResized(geo.Ext(40, 10), host.SizeNormal)
	w.Tick(time.Now())

	if got := one.Layout().WindowRectangle(); got.Y != 0 || got.H != 1 {
		t.Fatalf("toolbar button at %+v", got)
	}

	w.ProcessEvent(event.New(event.GUIToolbarOpen))
	if w.KeyboardTarget() != one.ID() || !one.Focused() {
		t.Fatalf("focus = %v, want first toolbar button", w.KeyboardTarget())
	}
	w.ProcessEvent(event.New(event.GUIToolbarNext))
	if w.KeyboardTarget() != two.ID() {
		t.Fatalf("focus = %v, want second toolbar button", w.KeyboardTarget())
	}
	if w.ProcessEvent(event.New(event.GUIToolbarNext)) {
		t.Fatal("toolbar_next on the last button was handled")
	}
	if w.KeyboardTarget() != two.ID() {
		t.Fatalf("focus moved past the last button to %v", w.KeyboardTarget())
	}

	w.SetFocusWrap(event.GroupToolbar, false)
	w.ProcessEvent(event.SetKeyboardTarget(two.ID(), event.GroupToolbar, event.Forward))
	if w.KeyboardTarget() != two.ID() {
		t.Fatalf("focus wrapped to %v with wrapping off", w.KeyboardTarget())
	}
	w.SetFocusWrap(event.GroupToolbar, true)
	w.ProcessEvent(event.SetKeyboardTarget(two.ID(), event.GroupToolbar, event.Forward))
	if w.KeyboardTarget() != one.ID() {
		t.Fatalf("focus = %v, want wrap to first button", w.KeyboardTarget())
	}
}

func TestRemovedWidgetLosesTargets(t *testing.T) {
	h := newHarness(t, Options{})
	h.move(5, 0)
	h.focus(h.a)
	h.row.Remove(h.a)
	if !h.win.KeyboardTarget().IsEmpty() || !h.win.MouseTarget().IsEmpty() {
		t.Fatalf("targets = %v/%v after removal", h.win.MouseTarget(), h.win.KeyboardTarget())
	}
	if h.win.Lookup(h.a.ID()) != nil {
		t.Fatal("removed widget still registered")
	}
}

func TestDeliverRunsOnGUIThread(t *testing.T) {
	h := newHarness(t, Options{})
	h.win.Deliver(event.Mouse(event.MouseMove, geo.Pt(5, 0)))
	if !h.win.MouseTarget().IsEmpty() {
		t.Fatal("Deliver processed the event synchronously")
	}
	h.host.RunPosted()
	if h.win.MouseTarget() != h.a.ID() {
		t.Fatalf("mouse target = %v after RunPosted", h.win.MouseTarget())
	}
}

func TestFirstFrameRequestsPreferredSize(t *testing.T) {
	hst := hosttest.New()
	surface := hosttest.NewSurface()
	w := New("first", hst, surface, Options{})
	w.Root().ShowToolbar(false)
	var log []string
	p := newProbe("p", &log, event.GroupNormal, geo.Ext(12, 3))
	w.Content().Add(p)

	w.Tick(time.Now())
	if diff := cmp.Diff([]geo.Extent{geo.Ext(12, 3)}, hst.SizeRequests); diff != "" {
		t.Fatalf("size requests (-want +got):\n%s", diff)
	}
	if surface.Frames != 0 {
		t.Fatalf("drew %d frames before the host reported a size", surface.Frames)
	}

	w.HostResized(geo.Ext(12, 3), host.SizeNormal)
	w.Tick(time.Now())
	if surface.Frames != 1 || p.draws != 1 {
		t.Fatalf("frames = %d, draws = %d", surface.Frames, p.draws)
	}
	if len(hst.SizeRequests) != 1 {
		t.Fatalf("size requested again: %v", hst.SizeRequests)
	}
	if diff := cmp.Diff(geo.RectI{W: 12, H: 3}, surface.Clears[len(surface.Clears)-1]); diff != "" {
		t.Fatalf("cleared area (-want +got):\n%s", diff)
	}
}

func TestSizeClampedToConstraints(t *testing.T) {
	h := newResizableHarness(t, Options{})
	frames := h.surface.Frames
	h.host.MaxSize = geo.Ext(30, 8)
	h.send(event.New(event.WindowReconstrain))
	h.frame()

	if got := h.host.SizeRequests; len(got) != 1 || got[0] != geo.Ext(30, 8) {
		t.Fatalf("size requests = %v", got)
	}
	if h.surface.Frames != frames {
		t.Fatal("drew a frame at a size outside the constraints")
	}

	h.win.HostResized(geo.Ext(30, 8), host.SizeNormal)
	h.frame()
	if h.surface.Frames != frames+1 || h.surface.Size != geo.Ext(30, 8) {
		t.Fatalf("frames = %d, surface = %v", h.surface.Frames, h.surface.Size)
	}
}

func TestMinimizedWindowIsNotResized(t *testing.T) {
	h := newResizableHarness(t, Options{})
	h.host.MaxSize = geo.Ext(30, 8)
	h.send(event.New(event.WindowReconstrain))
	h.win.HostResized(geo.Ext(40, 10), host.SizeMinimized)
	h.frame()
	if len(h.host.SizeRequests) != 0 {
		t.Fatalf("size requests = %v for a minimized window", h.host.SizeRequests)
	}
}

func TestWidgetRequestsResize(t *testing.T) {
	h := newResizableHarness(t, Options{})
	h.a.RequestResize()
	h.frame()
	if got := h.host.SizeRequests; len(got) != 1 || got[0] != geo.Ext(20, 2) {
		t.Fatalf("size requests = %v, want preferred size", got)
	}
}

func TestRedrawOnlyWhenDirty(t *testing.T) {
	h := newHarness(t, Options{})
	frames := h.surface.Frames
	h.frame()
	if h.surface.Frames != frames {
		t.Fatal("drew a frame with nothing dirty")
	}

	h.b.RequestRedraw()
	h.frame()
	if h.surface.Frames != frames+1 {
		t.Fatalf("frames = %d, want %d", h.surface.Frames, frames+1)
	}
	if diff := cmp.Diff(geo.RectI{X: 10, W: 10, H: 1}, h.surface.Clears[len(h.surface.Clears)-1]); diff != "" {
		t.Fatalf("cleared area (-want +got):\n%s", diff)
	}
	if h.a.draws != 1 || h.b.draws != 2 {
		t.Fatalf("draws a=%d b=%d", h.a.draws, h.b.draws)
	}
}

func TestSkippedFrameKeepsDirtyArea(t *testing.T) {
	h := newHarness(t, Options{})
	frames := h.surface.Frames
	h.surface.SkipFrame = true
	h.b.RequestRedraw()
	h.frame()
	if h.surface.Frames != frames {
		t.Fatal("skipped frame was finished")
	}
	h.surface.SkipFrame = false
	h.frame()
	if h.surface.Frames != frames+1 {
		t.Fatal("dirty area was lost with the skipped frame")
	}
	if diff := cmp.Diff(geo.RectI{X: 10, W: 10, H: 1}, h.surface.Clears[len(h.surface.Clears)-1]); diff != "" {
		t.Fatalf("cleared area (-want +got):\n%s", diff)
	}
}

func TestNoDeviceSkipsFrame(t *testing.T) {
	h := newHarness(t, Options{})
	updates := len(h.surface.Updates)
	h.surface.Device = false
	h.win.RequestRedrawAll()
	h.frame()
	if len(h.surface.Updates) != updates {
		t.Fatal("surface updated without a device")
	}
	h.surface.Device = true
	h.frame()
	if h.surface.Frames != 2 {
		t.Fatalf("frames = %d after the device returned", h.surface.Frames)
	}
}

func TestDeactivateFadesSaturation(t *testing.T) {
	h := newHarness(t, Options{})
	h.win.Deliver(event.New(event.WindowDeactivate))
	h.host.RunPosted()
	if h.win.Active() || h.a.Active() {
		t.Fatal("deactivate was not broadcast")
	}

	h.frame()
	if s := h.a.saturation; s >= 1 || s <= inactiveSaturation {
		t.Fatalf("saturation mid-fade = %v", s)
	}

	h.now = h.now.Add(time.Second)
	h.win.Tick(h.now)
	if h.a.saturation != inactiveSaturation {
		t.Fatalf("saturation = %v, want %v", h.a.saturation, inactiveSaturation)
	}
	frames := h.surface.Frames
	h.frame()
	if h.surface.Frames != frames {
		t.Fatal("kept redrawing after the fade finished")
	}

	h.win.ProcessEvent(event.New(event.WindowActivate))
	if !h.win.Active() || !h.a.Active() {
		t.Fatal("activate was not broadcast")
	}
}

func TestRestyleFollowsDensity(t *testing.T) {
	h := newHarness(t, Options{})
	h.host.Density = 2
	h.win.RequestRestyle()
	h.frame()
	if got, want := h.win.Theme().Spacing, 2*h.win.baseTheme.Spacing; got != want {
		t.Fatalf("spacing = %v, want %v", got, want)
	}
}

func TestLifecycleRequests(t *testing.T) {
	h := newHarness(t, Options{})
	h.send(event.New(event.WindowMaximize))
	h.send(event.New(event.WindowMinimize))
	h.send(event.New(event.WindowNormalize))
	h.send(event.New(event.WindowOpenSysmenu))
	want := []host.SizeState{host.SizeMaximized, host.SizeMinimized, host.SizeNormal}
	if diff := cmp.Diff(want, h.host.SizeStates); diff != "" {
		t.Fatalf("size states (-want +got):\n%s", diff)
	}
	if h.host.SystemMenus != 1 {
		t.Fatalf("system menus = %d", h.host.SystemMenus)
	}
	if len(h.log) != 0 {
		t.Fatalf("window requests reached widgets: %v", h.log)
	}
}

type memStore struct {
	sizes  map[string]geo.Extent
	states map[string]host.SizeState
	err    error
}

func newMemStore() *memStore {
	return &memStore{sizes: map[string]geo.Extent{}, states: map[string]host.SizeState{}}
}

func (m *memStore) Load(title string) (geo.Extent, host.SizeState, bool, error) {
	if m.err != nil {
		return geo.Extent{}, 0, false, m.err
	}
	size, ok := m.sizes[title]
	return size, m.states[title], ok, nil
}

func (m *memStore) Save(title string, size geo.Extent, state host.SizeState) error {
	m.sizes[title] = size
	m.states[title] = state
	return nil
}

func TestRestoreAndSaveState(t *testing.T) {
	store := newMemStore()
	store.sizes["test"] = geo.Ext(30, 8)
	h := newResizableHarness(t, Options{State: store})

	if diff := cmp.Diff([]geo.Extent{geo.Ext(30, 8)}, h.host.SizeRequests); diff != "" {
		t.Fatalf("size requests (-want +got):\n%s", diff)
	}

	h.send(event.New(event.WindowClose))
	if !h.host.Closed || !h.win.Closed() {
		t.Fatal("close was not forwarded to the host")
	}
	if got := store.sizes["test"]; got != geo.Ext(40, 10) {
		t.Fatalf("saved size = %v", got)
	}
}

func TestRestoreMaximized(t *testing.T) {
	store := newMemStore()
	store.sizes["test"] = geo.Ext(30, 8)
	store.states["test"] = host.SizeMaximized
	h := newResizableHarness(t, Options{State: store})
	if diff := cmp.Diff([]host.SizeState{host.SizeMaximized}, h.host.SizeStates); diff != "" {
		t.Fatalf("size states (-want +got):\n%s", diff)
	}
	if len(h.host.SizeRequests) != 0 {
		t.Fatalf("size requests = %v", h.host.SizeRequests)
	}
}

func TestRestoreErrorIsIgnored(t *testing.T) {
	store := newMemStore()
	store.err = errors.New("disk on fire")
	h := newResizableHarness(t, Options{State: store})
	if len(h.host.SizeRequests) != 0 || h.surface.Frames != 1 {
		t.Fatalf("requests %v, frames %d", h.host.SizeRequests, h.surface.Frames)
	}
}
