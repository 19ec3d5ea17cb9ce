// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/devshell/apps.go
// Summary: Demo window contents registered with the runner.

package devshell

import (
	"fmt"
	"strings"

	"github.com/framegrace/texelgui/event"
	"github.com/framegrace/texelgui/widget"
	"github.com/framegrace/texelgui/widgets"
	"github.com/framegrace/texelgui/window"
)

func quitButton(w *window.Window) *widgets.Button {
	return widgets.NewButton("Quit", func(bool) {
		w.Deliver(event.New(event.WindowClose))
	})
}

// buildGallery shows one of each widget with a status line reporting what
// was last used.
func buildGallery(w *window.Window, args []string) error {
	status := widgets.NewLabel("Tab moves focus, F10 opens the toolbar, Ctrl+Q quits")

	bar := w.Root().Toolbar()
	bar.Add(quitButton(w))
	clicks := 0
	bar.Add(widgets.NewButton("Count", func(bool) {
		clicks++
		status.SetText(fmt.Sprintf("Count pressed %d times", clicks))
	}))

	body := w.Content()
	body.Add(widgets.NewLabel("texelgui widget gallery"))

	field := widgets.NewTextField(30)
	field.Placeholder = "type here"
	field.OnChange = func(text string) { status.SetText("Text: " + text) }
	if len(args) > 0 {
		field.SetText(strings.Join(args, " "))
	}
	body.Add(widgets.NewBorder(field))

	row := widgets.NewRow()
	check := widgets.NewCheckbox("Enabled", func(on bool) {
		if on {
			field.SetMode(widget.Enabled)
		} else {
			field.SetMode(widget.Disabled)
		}
		status.SetText(fmt.Sprintf("Field enabled: %v", on))
	})
	check.SetChecked(true)
	row.Add(check)
	toggle := widgets.NewButton("Toggle", func(on bool) {
		status.SetText(fmt.Sprintf("Toggle is %v", on))
	})
	toggle.Toggle = true
	row.Add(toggle)
	body.Add(row)

	list := widgets.NewColumn()
	list.Spacing = 0
	for i := 1; i <= 40; i++ {
		list.Add(widgets.NewLabel(fmt.Sprintf("Line %02d", i)))
	}
	body.Add(widgets.NewScrollView(list))
	body.Add(status)
	return nil
}

// buildEditor is a form of text fields, one per argument.
func buildEditor(w *window.Window, args []string) error {
	w.Root().Toolbar().Add(quitButton(w))
	if len(args) == 0 {
		args = []string{""}
	}
	body := w.Content()
	for i, text := range args {
		row := widgets.NewRow()
		row.Add(widgets.NewLabel(fmt.Sprintf("Field %d:", i+1)))
		field := widgets.NewTextField(40)
		field.SetText(text)
		row.Add(field)
		body.Add(row)
	}
	return nil
}
