// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package ids

import (
	"sync"
	"testing"
)

func TestWidgetIDsAreUniqueAndNonZero(t *testing.T) {
	const n = 200
	var (
		mu   sync.Mutex
		seen = make(map[WidgetID]bool)
		wg   sync.WaitGroup
	)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < n; j++ {
				id := NextWidgetID()
				mu.Lock()
				if id.IsEmpty() || seen[id] {
					mu.Unlock()
					t.Errorf("duplicate or empty id %v", id)
					return
				}
				seen[id] = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	if len(seen) != 4*n {
		t.Fatalf("expected %d ids, got %d", 4*n, len(seen))
	}
}

func TestWidgetIDsAreMonotonic(t *testing.T) {
	a := NextWidgetID()
	b := NextWidgetID()
	if b <= a {
		t.Fatalf("expected %v > %v", b, a)
	}
}

func TestGraphemeInterning(t *testing.T) {
	if !InternGrapheme("").IsEmpty() {
		t.Fatalf("empty cluster should map to empty handle")
	}
	a := InternGrapheme("a")
	if a.String() != "a" || a != GraphemeID('a') {
		t.Fatalf("single code point should be inline, got %v", a)
	}
	flag := "\U0001F1F3\U0001F1F1"
	id := InternGrapheme(flag)
	if id.String() != flag {
		t.Fatalf("round trip of interned cluster failed: %q", id.String())
	}
	if again := InternGrapheme(flag); again != id {
		t.Fatalf("interning should be stable: %v vs %v", again, id)
	}
	if !EmptyFont.IsEmpty() || FontID(1).IsEmpty() {
		t.Fatalf("font handle emptiness wrong")
	}
	if !EmptyGlyph.IsEmpty() {
		t.Fatalf("glyph handle emptiness wrong")
	}
}
