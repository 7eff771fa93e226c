// internal/tui/editor_pane.go
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/tidefix/internal/editor"
	"github.com/bethropolis/tidefix/internal/theme"
)

// EditorSource is what the editor pane draws.
type EditorSource interface {
	Paragraphs() [][]editor.Glyph
	Selection() editor.Selection
	Focused() bool
}

// cluster is one grapheme cluster on a visual row.
type cluster struct {
	offset int // rune offset of its first rune within the paragraph
	x      int // column relative to the row start
	width  int
	runes  []rune
	format editor.Format
}

// row is one visual line: a paragraph segment between line breaks.
type row struct {
	block      int
	start, end int // rune offsets; end is before the line break, if any
	clusters   []cluster
}

// layoutRows splits paragraphs at line breaks and groups each line into
// grapheme clusters.
func layoutRows(paras [][]editor.Glyph) []row {
	var rows []row
	for bi, glyphs := range paras {
		start := 0
		for i := 0; i <= len(glyphs); i++ {
			if i < len(glyphs) && glyphs[i].R != '\n' {
				continue
			}
			rows = append(rows, row{block: bi, start: start, end: i, clusters: clusters(glyphs[start:i], start)})
			start = i + 1
		}
	}
	return rows
}

func clusters(glyphs []editor.Glyph, base int) []cluster {
	runes := make([]rune, len(glyphs))
	for i, g := range glyphs {
		runes[i] = g.R
	}
	var out []cluster
	gr := uniseg.NewGraphemes(string(runes))
	off, x := 0, 0
	for gr.Next() {
		rs := gr.Runes()
		c := cluster{offset: base + off, x: x, width: gr.Width(), runes: rs, format: glyphs[off].Format}
		out = append(out, c)
		off += len(rs)
		x += c.width
	}
	return out
}

// locate returns the row index and column of p.
func locate(rows []row, p editor.Point) (int, int, bool) {
	for i, r := range rows {
		if r.block != p.Block || p.Offset < r.start || p.Offset > r.end {
			continue
		}
		col := 0
		for _, c := range r.clusters {
			if c.offset >= p.Offset {
				break
			}
			col = c.x + c.width
		}
		return i, col, true
	}
	return 0, 0, false
}

// EditorPane draws the document and maps clicks back to document points.
type EditorPane struct {
	Rect Rect

	rows []row
	top  int // first visible row
}

// content is the pane area below the title line.
func (p *EditorPane) content() Rect {
	if p.Rect.H <= 1 {
		return Rect{X: p.Rect.X, Y: p.Rect.Y + p.Rect.H, W: p.Rect.W}
	}
	return Rect{X: p.Rect.X, Y: p.Rect.Y + 1, W: p.Rect.W, H: p.Rect.H - 1}
}

// Draw renders src and places the terminal cursor at the selection focus.
func (p *EditorPane) Draw(screen tcell.Screen, src EditorSource, th *theme.Theme) {
	base := th.GetStyle("Default")
	fill(screen, p.Rect, base)
	if p.Rect.H <= 0 || p.Rect.W <= 0 {
		return
	}
	drawText(screen, p.Rect.X, p.Rect.Y, p.Rect.X+p.Rect.W, " Editor", th.GetStyle("PaneTitle"))

	area := p.content()
	p.rows = layoutRows(src.Paragraphs())
	sel := src.Selection()
	focusRow, focusCol, ok := locate(p.rows, sel.Focus)
	if ok {
		if focusRow < p.top {
			p.top = focusRow
		}
		if area.H > 0 && focusRow >= p.top+area.H {
			p.top = focusRow - area.H + 1
		}
	}
	if p.top >= len(p.rows) {
		p.top = 0
	}

	start, end := sel.Ordered()
	selected := func(block, offset int) bool {
		pt := editor.Point{Block: block, Offset: offset}
		return !sel.Collapsed() && !pt.Before(start) && pt.Before(end)
	}
	selStyle := th.GetStyle("Selection")

	for i := p.top; i < len(p.rows) && i-p.top < area.H; i++ {
		r := p.rows[i]
		y := area.Y + i - p.top
		for _, c := range r.clusters {
			if c.x+c.width > area.W {
				break
			}
			style := base
			if c.format&editor.FormatBold != 0 {
				style = style.Bold(true)
			}
			if c.format&editor.FormatItalic != 0 {
				style = style.Italic(true)
			}
			if selected(r.block, c.offset) {
				style = selStyle
			}
			screen.SetContent(area.X+c.x, y, c.runes[0], c.runes[1:], style)
		}
	}

	if ok && src.Focused() && focusCol < area.W && focusRow-p.top < area.H {
		screen.ShowCursor(area.X+focusCol, area.Y+focusRow-p.top)
	} else {
		screen.HideCursor()
	}
}

// HitTest maps a screen cell from the last Draw to the nearest document point.
func (p *EditorPane) HitTest(x, y int) (editor.Point, bool) {
	area := p.content()
	if !area.Contains(x, y) {
		return editor.Point{}, false
	}
	i := p.top + y - area.Y
	if i >= len(p.rows) {
		if len(p.rows) == 0 {
			return editor.Point{}, false
		}
		i = len(p.rows) - 1
		x = area.X + area.W
	}
	r := p.rows[i]
	col := x - area.X
	for _, c := range r.clusters {
		if col < c.x+(c.width+1)/2 {
			return editor.Point{Block: r.block, Offset: c.offset}, true
		}
	}
	return editor.Point{Block: r.block, Offset: r.end}, true
}
