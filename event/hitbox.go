// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: event/hitbox.go
// Summary: Hit-test results and their front-most ordering.

package event

import (
	"fmt"

	"github.com/framegrace/texelgui/ids"
)

// HitboxKind classifies what the pointer is over.
type HitboxKind uint8

const (
	HitOutside HitboxKind = iota
	HitDefault
	HitButton
	HitTextEdit
	HitScrollBar
	HitMoveArea
	HitApplicationIcon
	HitBorderLeft
	HitBorderRight
	HitBorderTop
	HitBorderBottom
	HitCornerBottomLeft
	HitCornerBottomRight
	HitCornerTopLeft
	HitCornerTopRight
)

var hitboxKindNames = [...]string{
	"outside", "default", "button", "text_edit", "scroll_bar", "move_area", "application_icon",
	"border_left", "border_right", "border_top", "border_bottom",
	"corner_bottom_left", "corner_bottom_right", "corner_top_left", "corner_top_right",
}

func (k HitboxKind) String() string {
	if int(k) < len(hitboxKindNames) {
		return hitboxKindNames[k]
	}
	return fmt.Sprintf("hitbox(%d)", uint8(k))
}

// IsResize reports whether the kind is a window resize border or corner.
func (k HitboxKind) IsResize() bool { return k >= HitBorderLeft }

// IsCorner reports whether the kind is a window resize corner.
func (k HitboxKind) IsCorner() bool { return k >= HitCornerBottomLeft }

// Hitbox is the result of hit-testing one widget.
type Hitbox struct {
	WidgetID  ids.WidgetID
	Elevation float32
	Kind      HitboxKind
}

// NewHitbox creates a hitbox for a widget.
func NewHitbox(id ids.WidgetID, elevation float32, kind HitboxKind) Hitbox {
	return Hitbox{WidgetID: id, Elevation: elevation, Kind: kind}
}

// Empty reports whether no widget was hit.
func (h Hitbox) Empty() bool { return h.WidgetID.IsEmpty() }

// Less orders hitboxes: an empty hitbox loses to any non-empty one, then by
// elevation, then by kind ordinal.
func (h Hitbox) Less(o Hitbox) bool {
	switch {
	case h.Empty() != o.Empty():
		return h.Empty()
	case h.Elevation != o.Elevation:
		return h.Elevation < o.Elevation
	default:
		return h.Kind < o.Kind
	}
}

// MaxHitbox returns the front-most of two hitboxes. On a tie the first
// argument wins.
func MaxHitbox(a, b Hitbox) Hitbox {
	if a.Less(b) {
		return b
	}
	return a
}
