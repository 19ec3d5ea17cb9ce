// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: event/kind.go
// Summary: Closed vocabulary of GUI event kinds and their payload variants.

package event

import "fmt"

// Kind is the type of a GUI event.
type Kind uint8

const (
	None Kind = iota

	KeyboardDown
	KeyboardUp
	KeyboardEnter
	KeyboardExit
	KeyboardGrapheme
	KeyboardPartialGrapheme

	MouseMove
	MouseDrag
	MouseDown
	MouseUp
	MouseWheel
	MouseEnter
	MouseExit
	MouseExitWindow

	WindowRedraw
	WindowRelayout
	WindowReconstrain
	WindowResize
	WindowMinimize
	WindowMaximize
	WindowNormalize
	WindowClose
	WindowOpenSysmenu
	WindowSetKeyboardTarget
	WindowSetClipboard
	WindowActivate
	WindowDeactivate

	TextCursorLeftChar
	TextCursorRightChar
	TextCursorUpChar
	TextCursorDownChar
	TextCursorLeftWord
	TextCursorRightWord
	TextCursorUpWord
	TextCursorDownWord
	TextCursorBeginLine
	TextCursorEndLine
	TextCursorBeginSentence
	TextCursorEndSentence
	TextCursorBeginDocument
	TextCursorEndDocument

	TextSelectLeftChar
	TextSelectRightChar
	TextSelectUpChar
	TextSelectDownChar
	TextSelectLeftWord
	TextSelectRightWord
	TextSelectUpWord
	TextSelectDownWord
	TextSelectBeginLine
	TextSelectEndLine
	TextSelectBeginSentence
	TextSelectEndSentence
	TextSelectBeginDocument
	TextSelectEndDocument
	TextSelectWord
	TextSelectDocument

	TextDeleteCharPrev
	TextDeleteCharNext
	TextDeleteWordPrev
	TextDeleteWordNext
	TextSwapChars
	TextEditPaste
	TextEditCopy
	TextEditCut
	TextUndo
	TextRedo
	TextInsertLine
	TextInsertLineUp
	TextInsertLineDown
	TextModeInsert

	GUIWidgetNext
	GUIWidgetPrev
	GUIMenuNext
	GUIMenuPrev
	GUIToolbarNext
	GUIToolbarPrev
	GUIToolbarOpen
	GUIActivate
	GUIActivateStay
	GUIActivateNext
	GUICancel

	kindCount
)

var kindNames = [kindCount]string{
	None: "none",

	KeyboardDown:            "keyboard_down",
	KeyboardUp:              "keyboard_up",
	KeyboardEnter:           "keyboard_enter",
	KeyboardExit:            "keyboard_exit",
	KeyboardGrapheme:        "keyboard_grapheme",
	KeyboardPartialGrapheme: "keyboard_partial_grapheme",

	MouseMove:       "mouse_move",
	MouseDrag:       "mouse_drag",
	MouseDown:       "mouse_down",
	MouseUp:         "mouse_up",
	MouseWheel:      "mouse_wheel",
	MouseEnter:      "mouse_enter",
	MouseExit:       "mouse_exit",
	MouseExitWindow: "mouse_exit_window",

	WindowRedraw:            "window_redraw",
	WindowRelayout:          "window_relayout",
	WindowReconstrain:       "window_reconstrain",
	WindowResize:            "window_resize",
	WindowMinimize:          "window_minimize",
	WindowMaximize:          "window_maximize",
	WindowNormalize:         "window_normalize",
	WindowClose:             "window_close",
	WindowOpenSysmenu:       "window_open_sysmenu",
	WindowSetKeyboardTarget: "window_set_keyboard_target",
	WindowSetClipboard:      "window_set_clipboard",
	WindowActivate:          "window_activate",
	WindowDeactivate:        "window_deactivate",

	TextCursorLeftChar:      "text_cursor_left_char",
	TextCursorRightChar:     "text_cursor_right_char",
	TextCursorUpChar:        "text_cursor_up_char",
	TextCursorDownChar:      "text_cursor_down_char",
	TextCursorLeftWord:      "text_cursor_left_word",
	TextCursorRightWord:     "text_cursor_right_word",
	TextCursorUpWord:        "text_cursor_up_word",
	TextCursorDownWord:      "text_cursor_down_word",
	TextCursorBeginLine:     "text_cursor_begin_line",
	TextCursorEndLine:       "text_cursor_end_line",
	TextCursorBeginSentence: "text_cursor_begin_sentence",
	TextCursorEndSentence:   "text_cursor_end_sentence",
	TextCursorBeginDocument: "text_cursor_begin_document",
	TextCursorEndDocument:   "text_cursor_end_document",

	TextSelectLeftChar:      "text_select_left_char",
	TextSelectRightChar:     "text_select_right_char",
	TextSelectUpChar:        "text_select_up_char",
	TextSelectDownChar:      "text_select_down_char",
	TextSelectLeftWord:      "text_select_left_word",
	TextSelectRightWord:     "text_select_right_word",
	TextSelectUpWord:        "text_select_up_word",
	TextSelectDownWord:      "text_select_down_word",
	TextSelectBeginLine:     "text_select_begin_line",
	TextSelectEndLine:       "text_select_end_line",
	TextSelectBeginSentence: "text_select_begin_sentence",
	TextSelectEndSentence:   "text_select_end_sentence",
	TextSelectBeginDocument: "text_select_begin_document",
	TextSelectEndDocument:   "text_select_end_document",
	TextSelectWord:          "text_select_word",
	TextSelectDocument:      "text_select_document",

	TextDeleteCharPrev: "text_delete_char_prev",
	TextDeleteCharNext: "text_delete_char_next",
	TextDeleteWordPrev: "text_delete_word_prev",
	TextDeleteWordNext: "text_delete_word_next",
	TextSwapChars:      "text_swap_chars",
	TextEditPaste:      "text_edit_paste",
	TextEditCopy:       "text_edit_copy",
	TextEditCut:        "text_edit_cut",
	TextUndo:           "text_undo",
	TextRedo:           "text_redo",
	TextInsertLine:     "text_insert_line",
	TextInsertLineUp:   "text_insert_line_up",
	TextInsertLineDown: "text_insert_line_down",
	TextModeInsert:     "text_mode_insert",

	GUIWidgetNext:   "gui_widget_next",
	GUIWidgetPrev:   "gui_widget_prev",
	GUIMenuNext:     "gui_menu_next",
	GUIMenuPrev:     "gui_menu_prev",
	GUIToolbarNext:  "gui_toolbar_next",
	GUIToolbarPrev:  "gui_toolbar_prev",
	GUIToolbarOpen:  "gui_toolbar_open",
	GUIActivate:     "gui_activate",
	GUIActivateStay: "gui_activate_stay",
	GUIActivateNext: "gui_activate_next",
	GUICancel:       "gui_cancel",
}

var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		m[name] = Kind(k)
	}
	return m
}()

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind resolves a canonical kind name.
func ParseKind(name string) (Kind, bool) {
	k, ok := kindByName[name]
	return k, ok
}

// Variant identifies which payload an event carries.
type Variant uint8

const (
	VariantNone Variant = iota
	VariantMouse
	VariantKeyboard
	VariantKeyboardTarget
	VariantGrapheme
	VariantRectangle
	VariantClipboard
)

var variantNames = [...]string{"none", "mouse", "keyboard", "keyboard_target", "grapheme", "rectangle", "clipboard"}

func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return fmt.Sprintf("variant(%d)", uint8(v))
}

// VariantOf returns the payload variant carried by events of kind k.
func VariantOf(k Kind) Variant {
	switch k {
	case MouseMove, MouseDrag, MouseDown, MouseUp, MouseWheel, MouseEnter, MouseExit, MouseExitWindow:
		return VariantMouse
	case KeyboardDown, KeyboardUp, KeyboardEnter, KeyboardExit:
		return VariantKeyboard
	case KeyboardGrapheme, KeyboardPartialGrapheme:
		return VariantGrapheme
	case WindowSetKeyboardTarget:
		return VariantKeyboardTarget
	case WindowSetClipboard, TextEditPaste:
		return VariantClipboard
	case WindowRedraw:
		return VariantRectangle
	default:
		return VariantNone
	}
}

// IsWindowLifecycle reports whether the window handles k itself before any
// widget dispatch.
func IsWindowLifecycle(k Kind) bool {
	switch k {
	case WindowRedraw, WindowRelayout, WindowReconstrain, WindowResize,
		WindowMinimize, WindowMaximize, WindowNormalize, WindowClose,
		WindowOpenSysmenu, WindowSetKeyboardTarget, WindowSetClipboard:
		return true
	}
	return false
}
