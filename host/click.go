// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: host/click.go
// Summary: Multi-click counting for mouse_down events.

package host

import (
	"time"

	"github.com/framegrace/texelgui/event"
	"github.com/framegrace/texelgui/geo"
)

// MaxClickCount is the highest click count reported; the next click starts
// over at 1.
const MaxClickCount = 5

// ClickCounter derives click counts from successive button presses.
type ClickCounter struct {
	Interval time.Duration
	Distance float32

	last    time.Time
	lastPos geo.Point
	lastBtn event.MouseButtons
	count   int
}

// NewClickCounter returns a counter using the host's double-click timings.
func NewClickCounter(interval time.Duration, distance float32) *ClickCounter {
	return &ClickCounter{Interval: interval, Distance: distance}
}

// Down records a button press and returns its click count.
func (c *ClickCounter) Down(t time.Time, pos geo.Point, button event.MouseButtons) int {
	if c.count > 0 &&
		button == c.lastBtn &&
		t.Sub(c.last) <= c.Interval &&
		pos.Distance(c.lastPos) <= c.Distance &&
		c.count < MaxClickCount {
		c.count++
	} else {
		c.count = 1
	}
	c.last = t
	c.lastPos = pos
	c.lastBtn = button
	return c.count
}

// Reset forgets the previous press.
func (c *ClickCounter) Reset() { c.count = 0 }
