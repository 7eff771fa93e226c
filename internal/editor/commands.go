// internal/editor/commands.go
package editor

// --- Caret targets: each maps a point to where a command moves or deletes to ---

func (e *Editor) prevGrapheme(p Point) Point {
	if p.Offset > 0 {
		return Point{Block: p.Block, Offset: e.blocks[p.Block].prevGrapheme(p.Offset)}
	}
	if p.Block > 0 {
		return Point{Block: p.Block - 1, Offset: len(e.blocks[p.Block-1])}
	}
	return p
}

func (e *Editor) nextGrapheme(p Point) Point {
	if p.Offset < len(e.blocks[p.Block]) {
		return Point{Block: p.Block, Offset: e.blocks[p.Block].nextGrapheme(p.Offset)}
	}
	if p.Block < len(e.blocks)-1 {
		return Point{Block: p.Block + 1}
	}
	return p
}

func (e *Editor) prevWord(p Point) Point {
	if p.Offset == 0 {
		return e.prevGrapheme(p)
	}
	return Point{Block: p.Block, Offset: e.blocks[p.Block].prevWord(p.Offset)}
}

func (e *Editor) nextWord(p Point) Point {
	if p.Offset == len(e.blocks[p.Block]) {
		return e.nextGrapheme(p)
	}
	return Point{Block: p.Block, Offset: e.blocks[p.Block].nextWord(p.Offset)}
}

func (e *Editor) lineStartOrPrev(p Point) Point {
	if start, _ := e.blocks[p.Block].lineBounds(p.Offset); start < p.Offset {
		return Point{Block: p.Block, Offset: start}
	}
	return e.prevGrapheme(p)
}

func (e *Editor) lineEndOrNext(p Point) Point {
	if _, end := e.blocks[p.Block].lineBounds(p.Offset); end > p.Offset {
		return Point{Block: p.Block, Offset: end}
	}
	return e.nextGrapheme(p)
}

func (e *Editor) before(p Point) Point { return e.prevGrapheme(p) }

func (e *Editor) after(p Point) Point { return e.nextGrapheme(p) }

func (e *Editor) above(p Point) Point {
	if p.Block == 0 {
		return Point{}
	}
	return e.clamp(Point{Block: p.Block - 1, Offset: p.Offset})
}

func (e *Editor) below(p Point) Point {
	last := len(e.blocks) - 1
	if p.Block == last {
		return Point{Block: last, Offset: len(e.blocks[last])}
	}
	return e.clamp(Point{Block: p.Block + 1, Offset: p.Offset})
}

func (e *Editor) lineStart(p Point) Point {
	start, _ := e.blocks[p.Block].lineBounds(p.Offset)
	return Point{Block: p.Block, Offset: start}
}

func (e *Editor) lineEnd(p Point) Point {
	_, end := e.blocks[p.Block].lineBounds(p.Offset)
	return Point{Block: p.Block, Offset: end}
}

// --- Movement ---

// move sends the focus to target(focus); without extend the selection collapses there.
func (e *Editor) move(extend bool, target func(Point) Point) {
	focus := target(e.sel.Focus)
	if extend {
		e.sel.Focus = focus
	} else {
		e.sel = Caret(focus)
	}
	e.hasPending = false
	e.commit(false)
}

// moveCaret is a plain arrow press: a range collapses to its near edge,
// a caret steps by one grapheme.
func (e *Editor) moveCaret(backward bool) {
	if !e.sel.Collapsed() {
		start, end := e.sel.Ordered()
		if backward {
			e.sel = Caret(start)
		} else {
			e.sel = Caret(end)
		}
		e.hasPending = false
		e.commit(false)
		return
	}
	if backward {
		e.move(false, e.before)
	} else {
		e.move(false, e.after)
	}
}

// --- Mutations (run inside edit) ---

// deleteRange removes everything between start and end, joining blocks.
func (e *Editor) deleteRange(start, end Point) {
	merged := make(block, 0, start.Offset+len(e.blocks[end.Block])-end.Offset)
	merged = append(merged, e.blocks[start.Block][:start.Offset]...)
	merged = append(merged, e.blocks[end.Block][end.Offset:]...)

	out := make([]block, 0, len(e.blocks)-(end.Block-start.Block))
	out = append(out, e.blocks[:start.Block]...)
	out = append(out, merged)
	out = append(out, e.blocks[end.Block+1:]...)
	e.blocks = out
	e.sel = Caret(start)
}

func (e *Editor) deleteSelection() bool {
	if e.sel.Collapsed() {
		return false
	}
	e.deleteRange(e.sel.Ordered())
	return true
}

// deleteBy deletes the selection, or the span between the caret and target(caret).
func (e *Editor) deleteBy(target func(Point) Point) {
	if e.deleteSelection() {
		return
	}
	p := e.sel.Focus
	q := target(p)
	if q == p {
		return
	}
	if q.Before(p) {
		e.deleteRange(q, p)
	} else {
		e.deleteRange(p, q)
	}
}

// insertFormat is the format new text gets: pending toggles first, otherwise
// the format of the neighbouring character on the caret's line.
func (e *Editor) insertFormat() Format {
	if e.hasPending {
		return e.pending
	}
	p := e.sel.Focus
	b := e.blocks[p.Block]
	if p.Offset > 0 && b[p.Offset-1].r != lineBreak {
		return b[p.Offset-1].format
	}
	if p.Offset < len(b) && b[p.Offset].r != lineBreak {
		return b[p.Offset].format
	}
	return 0
}

func (e *Editor) insertText(text string) {
	e.deleteSelection()
	e.insertCells(cellsOf(text, e.insertFormat()))
	e.hasPending = false
}

func (e *Editor) insertCells(cells []cell) {
	e.deleteSelection()
	p := e.sel.Focus
	b := e.blocks[p.Block]
	nb := make(block, 0, len(b)+len(cells))
	nb = append(nb, b[:p.Offset]...)
	nb = append(nb, cells...)
	nb = append(nb, b[p.Offset:]...)
	e.blocks[p.Block] = nb
	e.sel = Caret(Point{Block: p.Block, Offset: p.Offset + len(cells)})
}

func (e *Editor) insertParagraph() {
	e.deleteSelection()
	p := e.sel.Focus
	b := e.blocks[p.Block]
	head := append(block(nil), b[:p.Offset]...)
	tail := append(block(nil), b[p.Offset:]...)

	out := make([]block, 0, len(e.blocks)+1)
	out = append(out, e.blocks[:p.Block]...)
	out = append(out, head, tail)
	out = append(out, e.blocks[p.Block+1:]...)
	e.blocks = out
	e.sel = Caret(Point{Block: p.Block + 1})
}

// toggleFormat flips f for the next insertion at a caret, or across a range:
// if every character in the range already has f it is removed, otherwise added.
func (e *Editor) toggleFormat(f Format) {
	if e.sel.Collapsed() {
		e.pending = e.insertFormat() ^ f
		e.hasPending = true
		return
	}
	start, end := e.sel.Ordered()
	all := true
	e.eachCell(start, end, func(c *cell) {
		if c.format&f == 0 {
			all = false
		}
	})
	e.eachCell(start, end, func(c *cell) {
		if all {
			c.format &^= f
		} else {
			c.format |= f
		}
	})
}

// eachCell visits every non-break cell between start and end.
func (e *Editor) eachCell(start, end Point, visit func(*cell)) {
	for bi := start.Block; bi <= end.Block; bi++ {
		b := e.blocks[bi]
		from, to := 0, len(b)
		if bi == start.Block {
			from = start.Offset
		}
		if bi == end.Block {
			to = end.Offset
		}
		for i := from; i < to; i++ {
			if b[i].r != lineBreak {
				visit(&b[i])
			}
		}
	}
}
