package widgets

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"

	"github.com/framegrace/texelgui/draw"
)

// textBuffer is a single line of text stored as grapheme clusters, with a
// cursor and a selection anchor. Positions are cluster indices; the
// selection is the range between anchor and cursor.
type textBuffer struct {
	clusters []string
	cursor   int
	anchor   int
}

type textSnapshot struct {
	text           string
	cursor, anchor int
}

// span is a run of clusters [start, end) produced by a segmentation pass.
type span struct {
	start, end int
	word       bool
}

func splitClusters(s string) []string {
	var out []string
	state := -1
	for s != "" {
		var c string
		c, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, c)
	}
	return out
}

func (b *textBuffer) String() string { return strings.Join(b.clusters, "") }

func (b *textBuffer) Len() int { return len(b.clusters) }

func (b *textBuffer) setText(s string) {
	b.clusters = splitClusters(s)
	b.cursor = len(b.clusters)
	b.anchor = b.cursor
}

func (b *textBuffer) snapshot() textSnapshot {
	return textSnapshot{text: b.String(), cursor: b.cursor, anchor: b.anchor}
}

func (b *textBuffer) restore(s textSnapshot) {
	b.clusters = splitClusters(s.text)
	b.cursor = min(s.cursor, len(b.clusters))
	b.anchor = min(s.anchor, len(b.clusters))
}

func (b *textBuffer) selection() (int, int) {
	return min(b.anchor, b.cursor), max(b.anchor, b.cursor)
}

func (b *textBuffer) hasSelection() bool { return b.anchor != b.cursor }

func (b *textBuffer) selectedText() string {
	lo, hi := b.selection()
	return strings.Join(b.clusters[lo:hi], "")
}

// move places the cursor at i. With extend the anchor stays, growing or
// shrinking the selection.
func (b *textBuffer) move(i int, extend bool) {
	b.cursor = min(max(i, 0), len(b.clusters))
	if !extend {
		b.anchor = b.cursor
	}
}

func (b *textBuffer) selectRange(anchor, cursor int) {
	b.anchor = min(max(anchor, 0), len(b.clusters))
	b.cursor = min(max(cursor, 0), len(b.clusters))
}

// deleteRange removes clusters [lo, hi) and leaves the cursor at lo.
func (b *textBuffer) deleteRange(lo, hi int) bool {
	lo, hi = max(lo, 0), min(hi, len(b.clusters))
	if lo >= hi {
		return false
	}
	b.clusters = append(b.clusters[:lo:lo], b.clusters[hi:]...)
	b.cursor, b.anchor = lo, lo
	return true
}

func (b *textBuffer) deleteSelection() bool {
	return b.deleteRange(b.selection())
}

// insert replaces the selection with s. In overwrite mode, without a
// selection, as many clusters as s holds are replaced after the cursor.
// The text is re-clustered so combining marks join the preceding cluster.
func (b *textBuffer) insert(s string, overwrite bool) {
	if !b.deleteSelection() && overwrite {
		n := uniseg.GraphemeClusterCount(s)
		b.deleteRange(b.cursor, b.cursor+n)
	}
	before := strings.Join(b.clusters[:b.cursor], "")
	after := strings.Join(b.clusters[b.cursor:], "")
	b.clusters = splitClusters(before + s + after)
	b.cursor = min(uniseg.GraphemeClusterCount(before+s), len(b.clusters))
	b.anchor = b.cursor
}

// swap transposes the two clusters around the cursor, or the last two
// when the cursor is at the end.
func (b *textBuffer) swap() bool {
	n := len(b.clusters)
	if n < 2 || b.cursor == 0 {
		return false
	}
	i := b.cursor
	if i == n {
		i = n - 1
	}
	b.clusters[i-1], b.clusters[i] = b.clusters[i], b.clusters[i-1]
	b.move(i+1, false)
	return true
}

func isWordCluster(c string) bool {
	r, _ := utf8.DecodeRuneInString(c)
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

func (b *textBuffer) segment(first func(string, int) (string, string, int)) []span {
	var out []span
	rest := b.String()
	state := -1
	pos := 0
	for rest != "" {
		var seg string
		seg, rest, state = first(rest, state)
		n := uniseg.GraphemeClusterCount(seg)
		out = append(out, span{start: pos, end: pos + n, word: isWordCluster(seg)})
		pos += n
	}
	return out
}

func (b *textBuffer) words() []span { return b.segment(uniseg.FirstWordInString) }

func (b *textBuffer) sentences() []span { return b.segment(uniseg.FirstSentenceInString) }

// wordLeft returns the start of the word before i.
func (b *textBuffer) wordLeft(i int) int {
	ws := b.words()
	for k := len(ws) - 1; k >= 0; k-- {
		if ws[k].word && ws[k].start < i {
			return ws[k].start
		}
	}
	return 0
}

// wordRight returns the end of the word after i.
func (b *textBuffer) wordRight(i int) int {
	for _, w := range b.words() {
		if w.word && w.end > i {
			return w.end
		}
	}
	return len(b.clusters)
}

func (b *textBuffer) sentenceBegin(i int) int {
	ss := b.sentences()
	for k := len(ss) - 1; k >= 0; k-- {
		if ss[k].start < i {
			return ss[k].start
		}
	}
	return 0
}

func (b *textBuffer) sentenceEnd(i int) int {
	for _, s := range b.sentences() {
		if s.end > i {
			return s.end
		}
	}
	return len(b.clusters)
}

func spanAt(spans []span, i, n int) (int, int) {
	for _, s := range spans {
		if i >= s.start && i < s.end {
			return s.start, s.end
		}
	}
	return n, n
}

// granularitySpan returns the range around i selected by a click with the
// given count: 1 char, 2 word, 3 sentence, 4 paragraph, 5 document. A
// single line is one paragraph.
func (b *textBuffer) granularitySpan(i, clicks int) (int, int) {
	n := len(b.clusters)
	switch {
	case clicks <= 1:
		return i, i
	case clicks == 2:
		return spanAt(b.words(), i, n)
	case clicks == 3:
		return spanAt(b.sentences(), i, n)
	default:
		return 0, n
	}
}

// column returns the cell column of cluster index i.
func (b *textBuffer) column(i int) int {
	col := 0
	for _, c := range b.clusters[:min(i, len(b.clusters))] {
		col += draw.ClusterWidth(c)
	}
	return col
}

// indexAt returns the cluster index at a cell column.
func (b *textBuffer) indexAt(col int) int {
	x := 0
	for i, c := range b.clusters {
		w := draw.ClusterWidth(c)
		if col < x+w {
			return i
		}
		x += w
	}
	return len(b.clusters)
}
