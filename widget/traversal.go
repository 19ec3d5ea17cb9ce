// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: widget/traversal.go
// Summary: Tree walks derived from the Widget interface.
// Notes: Hit-testing, broadcast delivery and keyboard focus order all
// consider visible children only.

package widget

import (
	"slices"

	"github.com/framegrace/texelgui/draw"
	"github.com/framegrace/texelgui/event"
	"github.com/framegrace/texelgui/geo"
	"github.com/framegrace/texelgui/ids"
)

// HitboxTestFromParent hit-tests w with p given in its parent's
// coordinates and returns the front-most of the result and siblings.
func HitboxTestFromParent(w Widget, p geo.Point, siblings ...event.Hitbox) event.Hitbox {
	var best event.Hitbox
	for _, h := range siblings {
		best = event.MaxHitbox(best, h)
	}
	if w.AsBase().Mode() <= Invisible {
		return best
	}
	return event.MaxHitbox(best, w.HitboxTest(w.AsBase().Layout().FromParent.Point(p)))
}

// HitboxTestChildren returns the front-most hit among the visible children
// of w, with p in w's local coordinates.
func HitboxTestChildren(w Widget, p geo.Point) event.Hitbox {
	var best event.Hitbox
	for child := range w.Children(false) {
		best = HitboxTestFromParent(child, p, best)
	}
	return best
}

// HandleEventRecursive delivers e to every visible descendant of w and then
// to w itself, skipping widgets listed in reject. It reports whether any
// widget handled the event.
func HandleEventRecursive(w Widget, e event.Event, reject []ids.WidgetID) bool {
	handled := false
	for child := range w.Children(false) {
		if HandleEventRecursive(child, e, reject) {
			handled = true
		}
	}
	if !slices.Contains(reject, w.ID()) {
		if w.HandleEvent(e) {
			handled = true
		}
	}
	return handled
}

// DrawChildren draws the visible children of w.
func DrawChildren(w Widget, ctx *draw.Context) {
	for child := range w.Children(false) {
		child.Draw(ctx)
	}
}

func acceptsFocus(w Widget, group event.FocusGroup) bool {
	return w.AsBase().Mode().Interactive() && w.AcceptsKeyboardFocus(group)
}

// FindNextWidget searches the subtree of w for the widget after current in
// focus order. With an empty current it returns the first widget accepting
// focus. When current is found but nothing follows it inside this subtree,
// current itself is returned so the caller can continue in the next
// sibling or wrap around. Zero means current is not in this subtree.
func FindNextWidget(w Widget, current ids.WidgetID, group event.FocusGroup, dir event.FocusDirection) ids.WidgetID {
	found := false
	if current.IsEmpty() {
		if acceptsFocus(w, group) {
			return w.ID()
		}
		found = true
	} else if current == w.ID() {
		found = true
	}

	children := slices.Collect(w.Children(false))
	if dir == event.Backward {
		slices.Reverse(children)
	}

	for _, child := range children {
		if found {
			if next := FindNextWidget(child, 0, group, dir); !next.IsEmpty() {
				return next
			}
			continue
		}
		switch next := FindNextWidget(child, current, group, dir); {
		case next == current:
			found = true
		case !next.IsEmpty():
			return next
		}
	}

	if found {
		return current
	}
	return 0
}

// FindFirstWidget returns the first direct child of w accepting focus in
// group, or zero.
func FindFirstWidget(w Widget, group event.FocusGroup) ids.WidgetID {
	for child := range w.Children(false) {
		if acceptsFocus(child, group) {
			return child.ID()
		}
	}
	return 0
}

// FindLastWidget returns the last direct child of w accepting focus in
// group, or zero.
func FindLastWidget(w Widget, group event.FocusGroup) ids.WidgetID {
	var last ids.WidgetID
	for child := range w.Children(false) {
		if acceptsFocus(child, group) {
			last = child.ID()
		}
	}
	return last
}

// IsFirst reports whether w is the first focusable sibling in group. A
// widget without a parent is both first and last.
func IsFirst(w Widget, group event.FocusGroup) bool {
	p := w.AsBase().Parent()
	if p == nil {
		return true
	}
	return FindFirstWidget(p, group) == w.ID()
}

// IsLast reports whether w is the last focusable sibling in group.
func IsLast(w Widget, group event.FocusGroup) bool {
	p := w.AsBase().Parent()
	if p == nil {
		return true
	}
	return FindLastWidget(p, group) == w.ID()
}

// ParentChain returns the ids of w and its ancestors, innermost first.
func ParentChain(w Widget) []ids.WidgetID {
	var chain []ids.WidgetID
	for cur := w; cur != nil; cur = cur.AsBase().Parent() {
		chain = append(chain, cur.ID())
	}
	return chain
}

// Walk visits w and all descendants, invisible ones included, in pre-order.
// Returning false from fn prunes that subtree.
func Walk(w Widget, fn func(Widget) bool) {
	if !fn(w) {
		return
	}
	for child := range w.Children(true) {
		Walk(child, fn)
	}
}

// Find returns the widget with id in the subtree of w, or nil.
func Find(w Widget, id ids.WidgetID) Widget {
	var found Widget
	Walk(w, func(cur Widget) bool {
		if found != nil {
			return false
		}
		if cur.ID() == id {
			found = cur
			return false
		}
		return true
	})
	return found
}
