// internal/editor/document.go
package editor

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"
)

// Format is a bit set of inline text formats.
type Format uint8

const (
	FormatBold Format = 1 << iota
	FormatItalic
)

// lineBreak marks a cell that is a hard line break rather than a character.
const lineBreak = '\n'

// cell is one rune of a block together with its format.
type cell struct {
	r      rune
	format Format
}

// block is a paragraph: a sequence of cells.
type block []cell

// Point addresses a caret position: a block and a cell offset inside it.
type Point struct {
	Block  int
	Offset int
}

// Before reports whether p sorts strictly before q.
func (p Point) Before(q Point) bool {
	return p.Block < q.Block || (p.Block == q.Block && p.Offset < q.Offset)
}

// Selection is an anchor/focus pair in document coordinates.
type Selection struct {
	Anchor Point
	Focus  Point
}

// Caret returns a collapsed selection at p.
func Caret(p Point) Selection { return Selection{Anchor: p, Focus: p} }

// Collapsed reports whether the selection is a bare caret.
func (s Selection) Collapsed() bool { return s.Anchor == s.Focus }

// Ordered returns the selection endpoints in document order.
func (s Selection) Ordered() (start, end Point) {
	if s.Focus.Before(s.Anchor) {
		return s.Focus, s.Anchor
	}
	return s.Anchor, s.Focus
}

// state is an undoable editor snapshot.
type state struct {
	blocks []block
	sel    Selection
}

func cloneBlocks(blocks []block) []block {
	out := make([]block, len(blocks))
	for i, b := range blocks {
		out[i] = append(block(nil), b...)
	}
	return out
}

func sameBlocks(a, b []block) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

func (b block) String() string {
	var sb strings.Builder
	for _, c := range b {
		sb.WriteRune(c.r)
	}
	return sb.String()
}

// cellsOf turns text into cells of the given format.
func cellsOf(text string, format Format) []cell {
	out := make([]cell, 0, len(text))
	for _, r := range text {
		out = append(out, cell{r: r, format: format})
	}
	return out
}

// lineBounds returns the start and end offsets of the visual line holding off.
func (b block) lineBounds(off int) (start, end int) {
	start, end = off, off
	for start > 0 && b[start-1].r != lineBreak {
		start--
	}
	for end < len(b) && b[end].r != lineBreak {
		end++
	}
	return start, end
}

// graphemeBounds lists the cell offsets of grapheme cluster boundaries,
// including 0 and len(b).
func (b block) graphemeBounds() []int {
	bounds := []int{0}
	gr := uniseg.NewGraphemes(b.String())
	pos := 0
	for gr.Next() {
		pos += len(gr.Runes())
		bounds = append(bounds, pos)
	}
	return bounds
}

// prevGrapheme returns the boundary before off.
func (b block) prevGrapheme(off int) int {
	prev := 0
	for _, bound := range b.graphemeBounds() {
		if bound >= off {
			break
		}
		prev = bound
	}
	return prev
}

// nextGrapheme returns the boundary after off.
func (b block) nextGrapheme(off int) int {
	for _, bound := range b.graphemeBounds() {
		if bound > off {
			return bound
		}
	}
	return len(b)
}

// wordSegment is a run of cells produced by Unicode word segmentation.
type wordSegment struct {
	start, end int
	space      bool
}

func (b block) wordSegments() []wordSegment {
	var segs []wordSegment
	rest := b.String()
	pos := 0
	state := -1
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		n := len([]rune(word))
		segs = append(segs, wordSegment{start: pos, end: pos + n, space: isBlank(word)})
		pos += n
	}
	return segs
}

func isBlank(s string) bool {
	for _, r := range s {
		if r == lineBreak || !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// prevWord returns the offset a word-wise backward delete from off stops at:
// trailing blanks are skipped, then one word. Line breaks are hard stops.
func (b block) prevWord(off int) int {
	segs := b.wordSegments()
	pos := off
	for i := len(segs) - 1; i >= 0 && pos > 0; i-- {
		seg := segs[i]
		if seg.start >= pos {
			continue
		}
		if b[pos-1].r == lineBreak {
			if pos == off {
				return pos - 1
			}
			return pos
		}
		pos = seg.start
		if !seg.space {
			break
		}
	}
	return pos
}

// nextWord mirrors prevWord going forward.
func (b block) nextWord(off int) int {
	pos := off
	for _, seg := range b.wordSegments() {
		if seg.end <= pos {
			continue
		}
		if pos >= len(b) {
			break
		}
		if b[pos].r == lineBreak {
			if pos == off {
				return pos + 1
			}
			return pos
		}
		pos = seg.end
		if !seg.space {
			break
		}
	}
	return pos
}
