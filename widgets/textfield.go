package widgets

import (
	"strings"

	"github.com/framegrace/texelgui/draw"
	"github.com/framegrace/texelgui/event"
	"github.com/framegrace/texelgui/geo"
	"github.com/framegrace/texelgui/theme"
	"github.com/framegrace/texelgui/widget"
)

const maxUndo = 64

// TextField is a single-line text editor.
type TextField struct {
	widget.Base
	// Width is the preferred width in cells.
	Width       int
	Placeholder string
	OnChange    func(text string)

	buf       textBuffer
	overwrite bool
	partial   string
	scroll    int

	undo   []textSnapshot
	redo   []textSnapshot
	typing bool

	dragging  bool
	lastDrag  event.Event
	dragSpan  [2]int
	dragCount int
}

// NewTextField creates an empty text field.
func NewTextField(width int) *TextField {
	t := &TextField{Width: width}
	t.Init(t)
	return t
}

// Text returns the current text.
func (t *TextField) Text() string { return t.buf.String() }

// SetText replaces the text, clearing history and selection.
func (t *TextField) SetText(s string) {
	t.buf.setText(s)
	t.undo, t.redo = nil, nil
	t.ensureVisible()
	t.RequestRedraw()
}

// Selection returns the selected text.
func (t *TextField) Selection() string { return t.buf.selectedText() }

// Overwrite reports whether typing replaces characters.
func (t *TextField) Overwrite() bool { return t.overwrite }

// LastDrag returns the most recent drag event while a drag is in progress.
func (t *TextField) LastDrag() (event.Event, bool) { return t.lastDrag, t.dragging }

func (t *TextField) AcceptsKeyboardFocus(g event.FocusGroup) bool {
	return t.Mode().Interactive() && (event.GroupNormal | event.GroupMouse).Intersects(g)
}

func (t *TextField) UpdateConstraints() widget.BoxConstraints {
	w := float32(max(t.Width, 1))
	return widget.BoxConstraints{
		Minimum:   geo.Ext(min(w, 4), 1),
		Preferred: geo.Ext(w, 1),
		Maximum:   geo.Ext(widget.Large, 1),
	}
}

func (t *TextField) SetLayout(l widget.Layout) {
	t.Base.SetLayout(l)
	t.ensureVisible()
}

func (t *TextField) HitboxTest(p geo.Point) event.Hitbox {
	return t.Hit(p, event.HitTextEdit)
}

func (t *TextField) width() int { return int(t.Layout().Size().W) }

// ensureVisible scrolls so that the cursor cell is on screen.
func (t *TextField) ensureVisible() {
	w := t.width()
	if w <= 0 {
		return
	}
	col := t.buf.column(t.buf.cursor)
	if col < t.scroll {
		t.scroll = col
	} else if col >= t.scroll+w {
		t.scroll = col - w + 1
	}
	t.scroll = max(0, min(t.scroll, max(t.buf.column(t.buf.Len())+1-w, 0)))
}

// pushUndo records the state before an edit. Consecutive typed graphemes
// share one undo step.
func (t *TextField) pushUndo(typing bool) {
	if typing && t.typing {
		return
	}
	t.commit(t.buf.snapshot())
	t.typing = typing
}

func (t *TextField) commit(snap textSnapshot) {
	t.undo = append(t.undo, snap)
	if len(t.undo) > maxUndo {
		t.undo = t.undo[1:]
	}
	t.redo = nil
	t.typing = false
}

func (t *TextField) changed() {
	t.ensureVisible()
	t.RequestRedraw()
	if t.OnChange != nil {
		t.OnChange(t.buf.String())
	}
}

func (t *TextField) moved() {
	t.typing = false
	t.ensureVisible()
	t.RequestRedraw()
}

func (t *TextField) editable() bool { return t.Mode().Interactive() }

func (t *TextField) indexAt(p geo.Point) int {
	return t.buf.indexAt(int(p.X) + t.scroll)
}

// motion returns the cursor position a cursor or select command moves to.
func (t *TextField) motion(k event.Kind) (int, bool) {
	b := &t.buf
	switch k {
	case event.TextCursorLeftChar, event.TextSelectLeftChar:
		if k == event.TextCursorLeftChar && b.hasSelection() {
			lo, _ := b.selection()
			return lo, true
		}
		return b.cursor - 1, true
	case event.TextCursorRightChar, event.TextSelectRightChar:
		if k == event.TextCursorRightChar && b.hasSelection() {
			_, hi := b.selection()
			return hi, true
		}
		return b.cursor + 1, true
	case event.TextCursorLeftWord, event.TextSelectLeftWord:
		return b.wordLeft(b.cursor), true
	case event.TextCursorRightWord, event.TextSelectRightWord:
		return b.wordRight(b.cursor), true
	case event.TextCursorBeginSentence, event.TextSelectBeginSentence:
		return b.sentenceBegin(b.cursor), true
	case event.TextCursorEndSentence, event.TextSelectEndSentence:
		return b.sentenceEnd(b.cursor), true
	case event.TextCursorBeginLine, event.TextSelectBeginLine,
		event.TextCursorBeginDocument, event.TextSelectBeginDocument:
		return 0, true
	case event.TextCursorEndLine, event.TextSelectEndLine,
		event.TextCursorEndDocument, event.TextSelectEndDocument:
		return b.Len(), true
	}
	return 0, false
}

func isSelectKind(k event.Kind) bool {
	return k >= event.TextSelectLeftChar && k <= event.TextSelectDocument
}

func (t *TextField) HandleEvent(e event.Event) bool {
	b := &t.buf
	k := e.Kind()

	if pos, ok := t.motion(k); ok {
		if !t.Mode().Interactive() && t.Mode() != widget.Select {
			return false
		}
		b.move(pos, isSelectKind(k))
		t.moved()
		return true
	}

	switch k {
	case event.TextSelectWord:
		lo, hi := b.granularitySpan(b.cursor, 2)
		b.selectRange(lo, hi)
		t.moved()
		return true

	case event.TextSelectDocument:
		b.selectRange(0, b.Len())
		t.moved()
		return true

	case event.KeyboardGrapheme:
		if !t.editable() {
			return false
		}
		t.partial = ""
		t.pushUndo(true)
		b.insert(*e.Grapheme(), t.overwrite)
		t.changed()
		return true

	case event.KeyboardPartialGrapheme:
		if !t.editable() {
			return false
		}
		t.partial = *e.Grapheme()
		t.RequestRedraw()
		return true

	case event.TextDeleteCharPrev, event.TextDeleteCharNext, event.TextDeleteWordPrev, event.TextDeleteWordNext:
		if !t.editable() {
			return false
		}
		lo, hi := b.selection()
		if !b.hasSelection() {
			switch k {
			case event.TextDeleteCharPrev:
				lo = b.cursor - 1
			case event.TextDeleteCharNext:
				hi = b.cursor + 1
			case event.TextDeleteWordPrev:
				lo = b.wordLeft(b.cursor)
			case event.TextDeleteWordNext:
				hi = b.wordRight(b.cursor)
			}
		}
		snap := b.snapshot()
		if b.deleteRange(lo, hi) {
			t.commit(snap)
			t.changed()
		}
		return true

	case event.TextSwapChars:
		if !t.editable() {
			return false
		}
		snap := b.snapshot()
		if b.swap() {
			t.commit(snap)
			t.changed()
		}
		return true

	case event.TextEditCopy, event.TextEditCut:
		if !b.hasSelection() {
			return true
		}
		t.ProcessEvent(event.ClipboardEvent(event.WindowSetClipboard, b.selectedText()))
		if k == event.TextEditCut && t.editable() {
			t.pushUndo(false)
			b.deleteSelection()
			t.changed()
		}
		return true

	case event.TextEditPaste:
		if !t.editable() {
			return false
		}
		text := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(*e.Clipboard())
		t.pushUndo(false)
		b.insert(text, false)
		t.changed()
		return true

	case event.TextUndo:
		if len(t.undo) == 0 {
			return true
		}
		t.redo = append(t.redo, b.snapshot())
		b.restore(t.undo[len(t.undo)-1])
		t.undo = t.undo[:len(t.undo)-1]
		t.typing = false
		t.changed()
		return true

	case event.TextRedo:
		if len(t.redo) == 0 {
			return true
		}
		t.undo = append(t.undo, b.snapshot())
		b.restore(t.redo[len(t.redo)-1])
		t.redo = t.redo[:len(t.redo)-1]
		t.typing = false
		t.changed()
		return true

	case event.TextModeInsert:
		t.overwrite = !t.overwrite
		t.RequestRedraw()
		return true

	case event.GUICancel:
		// Tolerates repeats: only a selection or partial input is dropped.
		had := b.hasSelection() || t.partial != ""
		b.move(b.cursor, false)
		t.partial = ""
		t.dragging = false
		if had {
			t.RequestRedraw()
		}
		return had

	case event.MouseDown:
		m := e.Mouse()
		if m.Cause != event.ButtonLeft || t.Mode() < widget.Select {
			break
		}
		i := t.indexAt(m.Position)
		if m.ClickCount <= 1 && e.Modifiers.Has(event.ModShift) {
			b.move(i, true)
		} else {
			lo, hi := b.granularitySpan(i, m.ClickCount)
			b.selectRange(lo, hi)
		}
		t.dragSpan = [2]int{b.anchor, b.cursor}
		t.dragCount = m.ClickCount
		t.dragging = true
		t.moved()
		return true

	case event.MouseDrag:
		if !t.dragging {
			break
		}
		t.lastDrag = e
		t.dragTo(e.Mouse().Position)
		return true

	case event.MouseUp:
		if t.dragging {
			t.dragging = false
			return true
		}

	case event.KeyboardExit:
		t.partial = ""
		t.dragging = false
	}
	return t.Base.HandleEvent(e)
}

// dragTo extends the selection made by the last mouse down to the cluster
// under p, growing by the granularity of that click.
func (t *TextField) dragTo(p geo.Point) {
	b := &t.buf
	i := t.indexAt(p)
	if t.dragCount <= 1 {
		b.move(i, true)
	} else {
		lo, hi := b.granularitySpan(i, t.dragCount)
		if i < t.dragSpan[0] {
			b.selectRange(t.dragSpan[1], lo)
		} else {
			b.selectRange(t.dragSpan[0], max(hi, t.dragSpan[1]))
		}
	}
	t.moved()
}

// autoScroll continues a drag that left the field, one cell per frame.
func (t *TextField) autoScroll() {
	if !t.dragging {
		return
	}
	p := t.lastDrag.Mouse().Position
	w := float32(t.width())
	switch {
	case p.X < 0 && t.scroll > 0:
		t.scroll--
		t.dragTo(geo.Pt(0, p.Y))
	case p.X >= w && t.buf.column(t.buf.Len()) >= t.scroll+int(w):
		t.scroll++
		t.dragTo(geo.Pt(w-1, p.Y))
	default:
		return
	}
	t.RequestRedraw()
}

func (t *TextField) Draw(ctx *draw.Context) {
	if !t.Drawable(ctx) {
		return
	}
	t.autoScroll()

	local := t.LocalContext(ctx)
	th := t.Theme()
	layer := t.SemanticLayer() + 1
	style := th.Style(t.ThemeState(), layer)
	sel := th.SelectionStyle(layer)
	r := t.Layout().Rectangle()
	local.Fill(r, style)

	if t.buf.Len() == 0 && t.partial == "" && !t.Focused() {
		local.DrawText(geo.Pt(0, 0), draw.Truncate(t.Placeholder, int(r.W)), th.Style(t.ThemeState()|theme.StateDisabled, layer))
		return
	}

	lo, hi := t.buf.selection()
	col := 0
	for i, c := range t.buf.clusters {
		if i == t.buf.cursor && t.partial != "" {
			local.DrawText(geo.Pt(float32(col-t.scroll), 0), t.partial, style.Underline(true))
			col += draw.ClusterWidth(t.partial)
		}
		x := col - t.scroll
		if x >= 0 && float32(x) < r.W {
			cs := style
			if i >= lo && i < hi {
				cs = sel
			}
			local.DrawText(geo.Pt(float32(x), 0), c, cs)
		}
		col += draw.ClusterWidth(c)
	}
	if t.buf.cursor == t.buf.Len() && t.partial != "" {
		local.DrawText(geo.Pt(float32(col-t.scroll), 0), t.partial, style.Underline(true))
	}

	if t.Focused() && t.Active() {
		local.ShowCursor(geo.Pt(float32(t.buf.column(t.buf.cursor)-t.scroll), 0))
	}
}
