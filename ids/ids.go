// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: ids/ids.go
// Summary: Process-unique widget ids and tagged integer handles.

package ids

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// WidgetID identifies a widget for its whole lifetime. Zero means "none".
type WidgetID uint32

var lastWidgetID atomic.Uint32

// NextWidgetID allocates a fresh, never reused, non-zero widget id.
func NextWidgetID() WidgetID {
	id := lastWidgetID.Add(1)
	if id == 0 {
		panic("ids: widget id space exhausted")
	}
	return WidgetID(id)
}

// IsEmpty reports whether the id is the "none" sentinel.
func (id WidgetID) IsEmpty() bool { return id == 0 }

func (id WidgetID) String() string {
	if id == 0 {
		return "widget#none"
	}
	return fmt.Sprintf("widget#%d", uint32(id))
}

// FontID is a tagged handle into a font book. The all-ones value is empty.
type FontID uint16

// EmptyFont is the empty font handle.
const EmptyFont FontID = 0xffff

// IsEmpty reports whether the handle is unset.
func (f FontID) IsEmpty() bool { return f == EmptyFont }

// GlyphID is a tagged glyph index within a font. The all-ones value is empty.
type GlyphID uint16

// EmptyGlyph is the empty glyph handle.
const EmptyGlyph GlyphID = 0xffff

// IsEmpty reports whether the handle is unset.
func (g GlyphID) IsEmpty() bool { return g == EmptyGlyph }

// GraphemeID is a compact handle for one grapheme cluster. Clusters that are
// a single code point are stored inline; longer clusters are interned and the
// handle carries the intern index with the high tag bit set. Zero is empty.
type GraphemeID uint32

const (
	graphemeInternTag = GraphemeID(1 << 31)
	maxInlineRune     = 0x10ffff
)

var (
	internMu    sync.RWMutex
	internTable []string
	internIndex = map[string]GraphemeID{}
)

// InternGrapheme returns the handle for a grapheme cluster.
func InternGrapheme(cluster string) GraphemeID {
	runes := []rune(cluster)
	switch {
	case len(runes) == 0:
		return 0
	case len(runes) == 1 && runes[0] > 0 && runes[0] <= maxInlineRune:
		return GraphemeID(runes[0])
	}

	internMu.RLock()
	id, ok := internIndex[cluster]
	internMu.RUnlock()
	if ok {
		return id
	}

	internMu.Lock()
	defer internMu.Unlock()
	if id, ok := internIndex[cluster]; ok {
		return id
	}
	id = graphemeInternTag | GraphemeID(len(internTable))
	internTable = append(internTable, cluster)
	internIndex[cluster] = id
	return id
}

// IsEmpty reports whether the handle is unset.
func (g GraphemeID) IsEmpty() bool { return g == 0 }

// String returns the grapheme cluster text.
func (g GraphemeID) String() string {
	switch {
	case g == 0:
		return ""
	case g&graphemeInternTag == 0:
		return string(rune(g))
	}
	internMu.RLock()
	defer internMu.RUnlock()
	idx := int(g &^ graphemeInternTag)
	if idx >= len(internTable) {
		return ""
	}
	return internTable[idx]
}
