// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: host/grapheme.go
// Summary: Turns character input into grapheme clusters.
// Notes: Hosts that receive UTF-16 code units join surrogate pairs first.
// A cluster stays pending until a rune arrives that starts a new one, so
// combining marks typed after a base character join it.

package host

import (
	"unicode/utf16"

	"github.com/rivo/uniseg"
)

// GraphemeDecoder accumulates runes into grapheme clusters.
type GraphemeDecoder struct {
	high    rune
	pending []rune
}

// PutUTF16 feeds one UTF-16 code unit. It returns the decoded rune once a
// full code point is available. An unpaired surrogate yields U+FFFD.
func (d *GraphemeDecoder) PutUTF16(u uint16) (rune, bool) {
	r := rune(u)
	switch {
	case utf16.IsSurrogate(r) && r < 0xdc00:
		bad := d.high != 0
		d.high = r
		if bad {
			return '�', true
		}
		return 0, false
	case utf16.IsSurrogate(r):
		if d.high == 0 {
			return '�', true
		}
		out := utf16.DecodeRune(d.high, r)
		d.high = 0
		return out, true
	default:
		// A lone high surrogate is dropped in favour of this unit.
		d.high = 0
		return r, true
	}
}

// PutRune feeds one rune and returns the clusters it completed, in order.
func (d *GraphemeDecoder) PutRune(r rune) []string {
	d.pending = append(d.pending, r)
	clusters := Split(string(d.pending))
	if len(clusters) <= 1 {
		return nil
	}
	done := clusters[:len(clusters)-1]
	d.pending = []rune(clusters[len(clusters)-1])
	return done
}

// Pending returns the cluster still being composed, if any.
func (d *GraphemeDecoder) Pending() string { return string(d.pending) }

// Flush returns and clears the pending cluster.
func (d *GraphemeDecoder) Flush() string {
	s := string(d.pending)
	d.pending = d.pending[:0]
	return s
}

// Split breaks s into grapheme clusters.
func Split(s string) []string {
	var out []string
	state := -1
	for s != "" {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, cluster)
	}
	return out
}
