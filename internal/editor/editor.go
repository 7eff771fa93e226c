// internal/editor/editor.go

// Package editor implements the rich-text editor whose interaction gets
// recorded: paragraphs of formatted text, a selection, undo history, and a
// rendered DOM surface that mirrors the document after every command.
package editor

import (
	"github.com/bethropolis/tidefix/internal/dom"
	"github.com/bethropolis/tidefix/internal/editor/history"
	"github.com/bethropolis/tidefix/internal/event"
	"github.com/bethropolis/tidefix/internal/input"
	"github.com/bethropolis/tidefix/internal/logger"
)

// Update is the notification dispatched after every handled command.
type Update struct {
	Dirty       bool   // the document structure or content changed
	SelectionID uint64 // changes whenever the anchor or focus point changes
}

// Editor holds the document, the selection and the rendered surface.
// It is driven from a single goroutine.
type Editor struct {
	blocks []block
	sel    Selection

	committedSel Selection
	selectionID  uint64

	pending    Format // format toggles waiting for the next insertion
	hasPending bool

	focused bool
	root    *dom.Node
	layout  [][]run

	history      *history.Manager[state]
	eventManager *event.Manager
}

// New creates an editor holding one empty paragraph with the caret inside.
func New(maxHistory int) *Editor {
	e := &Editor{
		blocks:      []block{{}},
		focused:     true,
		root:        dom.NewElement("div", rootAttrs...),
		history:     history.NewManager[state](maxHistory),
		selectionID: 1,
	}
	e.layout = renderInto(e.root, e.blocks)
	return e
}

// SetEventManager wires the manager that receives Update notifications.
func (e *Editor) SetEventManager(m *event.Manager) {
	e.eventManager = m
}

// Root returns the rendered root element. Its identity never changes.
func (e *Editor) Root() *dom.Node {
	return e.root
}

// Selection returns the document selection.
func (e *Editor) Selection() Selection {
	return e.sel
}

// SelectionID returns the identity of the current logical selection.
func (e *Editor) SelectionID() uint64 {
	return e.selectionID
}

// Blocks returns the plain text of every paragraph; line breaks appear as '\n'.
func (e *Editor) Blocks() []string {
	out := make([]string, len(e.blocks))
	for i, b := range e.blocks {
		out[i] = b.String()
	}
	return out
}

// Glyph is one displayed character of a paragraph. R is '\n' for a line break.
type Glyph struct {
	R      rune
	Format Format
}

// Paragraphs returns every paragraph's characters with their formats.
func (e *Editor) Paragraphs() [][]Glyph {
	out := make([][]Glyph, len(e.blocks))
	for i, b := range e.blocks {
		out[i] = make([]Glyph, len(b))
		for j, c := range b {
			out[i][j] = Glyph{R: c.r, Format: c.format}
		}
	}
	return out
}

// SetFocused marks whether the editor surface holds input focus. A blurred
// editor reports no live selection.
func (e *Editor) SetFocused(focused bool) {
	e.focused = focused
}

// Focused reports whether the editor holds input focus.
func (e *Editor) Focused() bool {
	return e.focused
}

// DOMSelection returns the live selection against the rendered nodes.
func (e *Editor) DOMSelection() dom.Selection {
	if !e.focused {
		return dom.Selection{}
	}
	anchor, anchorOff := locate(e.layout, e.sel.Anchor)
	focus, focusOff := locate(e.layout, e.sel.Focus)
	// A range with one end in a placeholder addresses the empty line's start.
	if dom.IsPlaceholder(anchor) != dom.IsPlaceholder(focus) {
		if dom.IsPlaceholder(anchor) {
			anchorOff = 0
		} else {
			focusOff = 0
		}
	}
	return dom.Selection{AnchorNode: anchor, AnchorOffset: anchorOff, FocusNode: focus, FocusOffset: focusOff}
}

// Reset replaces all content with one empty paragraph, places the caret in it
// and forgets history.
func (e *Editor) Reset() {
	e.blocks = []block{{}}
	e.sel = Caret(Point{})
	e.hasPending = false
	e.history.Clear()
	logger.DebugTagf("editor", "Content reset")
	e.commit(true)
}

// SetSelection moves the selection, as a pointer click or drag would.
func (e *Editor) SetSelection(sel Selection) {
	e.sel = Selection{Anchor: e.clamp(sel.Anchor), Focus: e.clamp(sel.Focus)}
	e.hasPending = false
	e.commit(false)
}

// HandleKey applies the editing command bound to ev. It reports whether the
// key was handled; every handled key produces exactly one Update.
func (e *Editor) HandleKey(ev input.KeyEvent) bool {
	if action, ok := input.Classify(ev); ok {
		e.Apply(action, ev.Key)
		return true
	}

	extend := ev.Shift && !ev.Ctrl && !ev.Alt && !ev.Meta
	if ev.HasModifiers() && !extend {
		return false
	}
	switch ev.Key {
	case input.KeyArrowLeft:
		e.move(extend, e.before)
	case input.KeyArrowRight:
		e.move(extend, e.after)
	case input.KeyArrowUp:
		e.move(extend, e.above)
	case input.KeyArrowDown:
		e.move(extend, e.below)
	case input.KeyHome:
		e.move(extend, e.lineStart)
	case input.KeyEnd:
		e.move(extend, e.lineEnd)
	default:
		return false
	}
	return true
}

// Apply runs one editor command. text is only used by ActionInsertText.
func (e *Editor) Apply(action input.Action, text string) {
	switch action {
	case input.ActionInsertText:
		e.edit(action, func() { e.insertText(text) })
	case input.ActionDeleteBackward:
		e.edit(action, func() { e.deleteBy(e.prevGrapheme) })
	case input.ActionDeleteForward:
		e.edit(action, func() { e.deleteBy(e.nextGrapheme) })
	case input.ActionDeleteWordBackward:
		e.edit(action, func() { e.deleteBy(e.prevWord) })
	case input.ActionDeleteWordForward:
		e.edit(action, func() { e.deleteBy(e.nextWord) })
	case input.ActionDeleteLineBackward:
		e.edit(action, func() { e.deleteBy(e.lineStartOrPrev) })
	case input.ActionDeleteLineForward:
		e.edit(action, func() { e.deleteBy(e.lineEndOrNext) })
	case input.ActionInsertParagraph:
		e.edit(action, e.insertParagraph)
	case input.ActionInsertLinebreak:
		e.edit(action, func() { e.insertCells([]cell{{r: lineBreak}}) })
	case input.ActionFormatBold:
		e.edit(action, func() { e.toggleFormat(FormatBold) })
	case input.ActionFormatItalic:
		e.edit(action, func() { e.toggleFormat(FormatItalic) })
	case input.ActionUndo:
		e.restore(e.history.Undo())
	case input.ActionRedo:
		e.restore(e.history.Redo())
	case input.ActionMoveBackward:
		e.moveCaret(true)
	case input.ActionMoveForward:
		e.moveCaret(false)
	default:
		logger.Warnf("Editor: no command for %v", action)
		return
	}
}

// edit runs a document mutation, records it for undo and commits it.
func (e *Editor) edit(action input.Action, mutate func()) {
	before := state{blocks: cloneBlocks(e.blocks), sel: e.sel}
	mutate()
	dirty := !sameBlocks(before.blocks, e.blocks)
	if dirty {
		after := state{blocks: cloneBlocks(e.blocks), sel: e.sel}
		e.history.RecordChange(history.Change[state]{Tag: action.String(), Before: before, After: after},
			input.ActionInsertText.String())
	}
	e.commit(dirty)
}

func (e *Editor) restore(s state, ok bool) {
	dirty := false
	if ok {
		dirty = !sameBlocks(e.blocks, s.blocks)
		e.blocks = cloneBlocks(s.blocks)
		e.sel = s.sel
		e.hasPending = false
	}
	e.commit(dirty)
}

// commit re-renders the surface, refreshes the selection identity and
// dispatches the Update notification.
func (e *Editor) commit(dirty bool) {
	if dirty {
		e.layout = renderInto(e.root, e.blocks)
	}
	if e.sel != e.committedSel {
		e.committedSel = e.sel
		e.selectionID++
	}
	update := Update{Dirty: dirty, SelectionID: e.selectionID}
	logger.DebugTagf("editor", "Commit dirty=%v selection=%d %+v", dirty, e.selectionID, e.sel)
	if e.eventManager != nil {
		e.eventManager.Dispatch(event.TypeEditorUpdated, update)
	}
}

func (e *Editor) clamp(p Point) Point {
	if p.Block < 0 {
		return Point{}
	}
	if p.Block >= len(e.blocks) {
		last := len(e.blocks) - 1
		return Point{Block: last, Offset: len(e.blocks[last])}
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Offset > len(e.blocks[p.Block]) {
		p.Offset = len(e.blocks[p.Block])
	}
	return p
}
