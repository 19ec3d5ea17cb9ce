// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/effects/timeline.go
// Summary: Per-key animation timelines driven by the frame's display time.
// Usage: The window animates its active saturation through a Timeline and
// keeps redrawing while Animating reports true.
// Notes: Time is always supplied by the caller so that a frame renders with
// one consistent clock.

package effects

import (
	"sync"
	"time"
)

// EasingFunc maps progress in [0,1] to eased progress in [0,1].
type EasingFunc func(progress float32) float32

var (
	EaseLinear EasingFunc = func(t float32) float32 { return t }

	// EaseSmoothstep accelerates at the start and decelerates at the end.
	EaseSmoothstep EasingFunc = func(t float32) float32 {
		return t * t * (3.0 - 2.0*t)
	}

	EaseOutQuad EasingFunc = func(t float32) float32 {
		return t * (2.0 - t)
	}

	EaseOutCubic EasingFunc = func(t float32) float32 {
		t1 := t - 1.0
		return t1*t1*t1 + 1.0
	}
)

// AnimateOptions configures one transition.
type AnimateOptions struct {
	Duration time.Duration
	Easing   EasingFunc
}

type keyState struct {
	start     float32
	target    float32
	startTime time.Time
	duration  time.Duration
	easing    EasingFunc
}

func (s *keyState) value(now time.Time) float32 {
	if s.duration <= 0 || !now.Before(s.startTime.Add(s.duration)) {
		return s.target
	}
	if now.Before(s.startTime) {
		return s.start
	}
	progress := float32(now.Sub(s.startTime)) / float32(s.duration)
	return s.start + (s.target-s.start)*s.easing(progress)
}

func (s *keyState) animating(now time.Time) bool {
	return s.duration > 0 && s.start != s.target && now.Before(s.startTime.Add(s.duration))
}

// Timeline holds independent animated values by key.
type Timeline[K comparable] struct {
	mu      sync.RWMutex
	states  map[K]*keyState
	initial float32
	easing  EasingFunc
}

// NewTimeline returns a timeline whose unset keys read as initial.
func NewTimeline[K comparable](initial float32) *Timeline[K] {
	return &Timeline[K]{
		states:  make(map[K]*keyState),
		initial: initial,
		easing:  EaseSmoothstep,
	}
}

// AnimateTo starts a transition of key towards target at now, continuing
// from wherever the value currently is. It returns the value at now.
func (tl *Timeline[K]) AnimateTo(key K, target float32, duration time.Duration, now time.Time) float32 {
	return tl.AnimateToWithOptions(key, target, AnimateOptions{Duration: duration}, now)
}

// AnimateToWithOptions is AnimateTo with a custom easing.
func (tl *Timeline[K]) AnimateToWithOptions(key K, target float32, opts AnimateOptions, now time.Time) float32 {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	current := tl.initial
	if s := tl.states[key]; s != nil {
		current = s.value(now)
		if s.target == target && s.animating(now) {
			return current
		}
	}
	easing := opts.Easing
	if easing == nil {
		easing = tl.easing
	}
	s := &keyState{
		start:     current,
		target:    target,
		startTime: now,
		duration:  opts.Duration,
		easing:    easing,
	}
	tl.states[key] = s
	return s.value(now)
}

// Set jumps key to value without animating.
func (tl *Timeline[K]) Set(key K, value float32) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	tl.states[key] = &keyState{start: value, target: value, easing: tl.easing}
}

// Get returns the value of key at now.
func (tl *Timeline[K]) Get(key K, now time.Time) float32 {
	tl.mu.RLock()
	defer tl.mu.RUnlock()
	if s := tl.states[key]; s != nil {
		return s.value(now)
	}
	return tl.initial
}

// IsAnimating reports whether key is still moving at now.
func (tl *Timeline[K]) IsAnimating(key K, now time.Time) bool {
	tl.mu.RLock()
	defer tl.mu.RUnlock()
	s := tl.states[key]
	return s != nil && s.animating(now)
}

// HasActiveAnimations reports whether any key is still moving at now.
func (tl *Timeline[K]) HasActiveAnimations(now time.Time) bool {
	tl.mu.RLock()
	defer tl.mu.RUnlock()
	for _, s := range tl.states {
		if s.animating(now) {
			return true
		}
	}
	return false
}

// Reset forgets key.
func (tl *Timeline[K]) Reset(key K) {
	tl.mu.Lock()
	defer tl.mu.Unlock()
	delete(tl.states, key)
}
