package editor

import (
	"reflect"
	"testing"

	"github.com/bethropolis/tidefix/internal/dom"
	"github.com/bethropolis/tidefix/internal/event"
	"github.com/bethropolis/tidefix/internal/input"
)

const span = `<span data-outline-text="true">`

func typeText(e *Editor, s string) {
	for _, r := range s {
		e.HandleKey(input.KeyEvent{Key: string(r)})
	}
}

func press(e *Editor, ev input.KeyEvent) bool {
	return e.HandleKey(ev)
}

func assertBlocks(t *testing.T, e *Editor, want ...string) {
	t.Helper()
	if got := e.Blocks(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Blocks() = %q, want %q", got, want)
	}
}

func TestNewEditorRendersPlaceholder(t *testing.T) {
	e := New(0)
	want := `<p>` + span + dom.Placeholder + `</span></p>`
	if got := e.Root().InnerHTML(); got != want {
		t.Fatalf("InnerHTML() = %q, want %q", got, want)
	}
	if got := e.Root().OpenTag(); got != `<div contenteditable="true" data-outline-editor="true" dir="ltr">` {
		t.Errorf("OpenTag() = %q", got)
	}

	sel := e.DOMSelection()
	if !dom.IsPlaceholder(sel.AnchorNode) || sel.AnchorOffset != 1 || sel.FocusNode != sel.AnchorNode {
		t.Errorf("caret should sit after the placeholder sentinel, got %+v", sel)
	}
}

func TestTypingAndCaretMovement(t *testing.T) {
	e := New(0)
	typeText(e, "hi")
	if got := e.Root().InnerHTML(); got != `<p>`+span+`hi</span></p>` {
		t.Fatalf("InnerHTML() = %q", got)
	}

	press(e, input.KeyEvent{Key: input.KeyArrowLeft})
	typeText(e, "!")
	assertBlocks(t, e, "h!i")

	sel := e.DOMSelection()
	if sel.AnchorNode == nil || sel.AnchorNode.Data != "h!i" || sel.AnchorOffset != 2 || !sel.Collapsed() {
		t.Fatalf("DOMSelection() = %+v", sel)
	}
	if path := dom.PathTo(sel.AnchorNode, e.Root()); !path.Equal(dom.Path{0, 0, 0}) {
		t.Errorf("caret path = %v", path)
	}
}

func TestParagraphsAndLineBreaks(t *testing.T) {
	e := New(0)
	typeText(e, "ab")
	press(e, input.KeyEvent{Key: input.KeyEnter})
	typeText(e, "cd")
	press(e, input.KeyEvent{Key: input.KeyEnter, Shift: true})

	assertBlocks(t, e, "ab", "cd\n")
	want := `<p>` + span + `ab</span></p><p>` + span + `cd</span><br>` + span + dom.Placeholder + `</span></p>`
	if got := e.Root().InnerHTML(); got != want {
		t.Fatalf("InnerHTML() = %q, want %q", got, want)
	}
	if got := e.Selection(); got != Caret(Point{Block: 1, Offset: 3}) {
		t.Errorf("Selection() = %+v", got)
	}
	sel := e.DOMSelection()
	if !dom.IsPlaceholder(sel.AnchorNode) {
		t.Errorf("caret after a trailing break should sit in the placeholder, got %+v", sel)
	}
	if path := dom.PathTo(sel.AnchorNode, e.Root()); !path.Equal(dom.Path{1, 2, 0}) {
		t.Errorf("placeholder path = %v", path)
	}
}

func TestDeleteBackwardJoinsParagraphs(t *testing.T) {
	e := New(0)
	typeText(e, "ab")
	press(e, input.KeyEvent{Key: input.KeyEnter})
	typeText(e, "c")

	press(e, input.KeyEvent{Key: input.KeyBackspace})
	assertBlocks(t, e, "ab", "")
	press(e, input.KeyEvent{Key: input.KeyBackspace})
	assertBlocks(t, e, "ab")
	if got := e.Selection(); got != Caret(Point{Offset: 2}) {
		t.Errorf("Selection() = %+v", got)
	}

	press(e, input.KeyEvent{Key: input.KeyHome})
	press(e, input.KeyEvent{Key: input.KeyDelete})
	assertBlocks(t, e, "b")
}

func TestDeleteGraphemeCluster(t *testing.T) {
	e := New(0)
	e.HandleKey(input.KeyEvent{Key: "👍🏽"})
	typeText(e, "x")
	press(e, input.KeyEvent{Key: input.KeyArrowLeft})
	press(e, input.KeyEvent{Key: input.KeyBackspace})
	assertBlocks(t, e, "x")
}

func TestWordAndLineDeletes(t *testing.T) {
	e := New(0)
	typeText(e, "hello world")
	press(e, input.KeyEvent{Key: input.KeyBackspace, Alt: true})
	assertBlocks(t, e, "hello ")
	press(e, input.KeyEvent{Key: input.KeyBackspace, Ctrl: true})
	assertBlocks(t, e, "")

	typeText(e, "one two")
	press(e, input.KeyEvent{Key: input.KeyHome})
	press(e, input.KeyEvent{Key: input.KeyDelete, Alt: true})
	assertBlocks(t, e, " two")

	e.Reset()
	typeText(e, "ab")
	press(e, input.KeyEvent{Key: input.KeyEnter, Shift: true})
	typeText(e, "cd")
	press(e, input.KeyEvent{Key: input.KeyBackspace, Meta: true})
	assertBlocks(t, e, "ab\n")
	press(e, input.KeyEvent{Key: input.KeyBackspace, Meta: true})
	assertBlocks(t, e, "ab")

	press(e, input.KeyEvent{Key: input.KeyHome})
	press(e, input.KeyEvent{Key: input.KeyDelete, Meta: true})
	assertBlocks(t, e, "")
}

func TestUndoRedo(t *testing.T) {
	e := New(0)
	typeText(e, "hi")
	press(e, input.KeyEvent{Key: input.KeyEnter})
	assertBlocks(t, e, "hi", "")

	press(e, input.KeyEvent{Key: "z", Ctrl: true})
	assertBlocks(t, e, "hi")
	press(e, input.KeyEvent{Key: "z", Ctrl: true})
	assertBlocks(t, e, "")
	press(e, input.KeyEvent{Key: "z", Ctrl: true, Shift: true})
	assertBlocks(t, e, "hi")
	if got := e.Selection(); got != Caret(Point{Offset: 2}) {
		t.Errorf("Selection() after redo = %+v", got)
	}
}

func TestFormatting(t *testing.T) {
	e := New(0)
	press(e, input.KeyEvent{Key: "b", Ctrl: true})
	typeText(e, "b")
	press(e, input.KeyEvent{Key: "b", Ctrl: true})
	typeText(e, "n")

	bold := `<span data-outline-text="true" class="editor-text-bold">`
	want := `<p>` + bold + `b</span>` + span + `n</span></p>`
	if got := e.Root().InnerHTML(); got != want {
		t.Fatalf("InnerHTML() = %q, want %q", got, want)
	}

	e.Reset()
	typeText(e, "abc")
	press(e, input.KeyEvent{Key: input.KeyArrowLeft, Shift: true})
	press(e, input.KeyEvent{Key: input.KeyArrowLeft, Shift: true})
	press(e, input.KeyEvent{Key: "i", Ctrl: true})

	italic := `<span data-outline-text="true" class="editor-text-italic">`
	want = `<p>` + span + `a</span>` + italic + `bc</span></p>`
	if got := e.Root().InnerHTML(); got != want {
		t.Fatalf("InnerHTML() = %q, want %q", got, want)
	}
	assertBlocks(t, e, "abc")

	press(e, input.KeyEvent{Key: "i", Ctrl: true})
	if got := e.Root().InnerHTML(); got != `<p>`+span+`abc</span></p>` {
		t.Errorf("second toggle should clear the format, got %q", got)
	}
}

func TestTypingReplacesRange(t *testing.T) {
	e := New(0)
	typeText(e, "abcd")
	e.SetSelection(Selection{Anchor: Point{Offset: 1}, Focus: Point{Offset: 3}})
	typeText(e, "X")
	assertBlocks(t, e, "aXd")

	press(e, input.KeyEvent{Key: input.KeyEnd, Shift: true})
	press(e, input.KeyEvent{Key: input.KeyArrowLeft})
	if got := e.Selection(); got != Caret(Point{Offset: 2}) {
		t.Errorf("arrow on a range should collapse to its start, got %+v", got)
	}
}

func TestUpdateNotifications(t *testing.T) {
	e := New(0)
	m := event.NewManager()
	e.SetEventManager(m)
	var updates []Update
	m.Subscribe(event.TypeEditorUpdated, func(ev event.Event) bool {
		updates = append(updates, ev.Data.(Update))
		return false
	})

	typeText(e, "a")
	press(e, input.KeyEvent{Key: input.KeyArrowLeft})
	press(e, input.KeyEvent{Key: input.KeyArrowLeft}) // already at start
	press(e, input.KeyEvent{Key: "b", Ctrl: true})   // pending toggle only
	if press(e, input.KeyEvent{Key: input.KeyTab}) {
		t.Errorf("Tab should not be handled")
	}

	if len(updates) != 4 {
		t.Fatalf("got %d updates, want 4: %+v", len(updates), updates)
	}
	if !updates[0].Dirty || updates[1].Dirty || updates[2].Dirty || updates[3].Dirty {
		t.Errorf("dirty flags wrong: %+v", updates)
	}
	if updates[1].SelectionID == updates[0].SelectionID {
		t.Errorf("moving the caret must change the selection identity")
	}
	if updates[2].SelectionID != updates[1].SelectionID || updates[3].SelectionID != updates[2].SelectionID {
		t.Errorf("an unchanged selection must keep its identity: %+v", updates)
	}
}

func TestResetAndBlur(t *testing.T) {
	e := New(0)
	typeText(e, "abc")
	press(e, input.KeyEvent{Key: input.KeyEnter})
	e.Reset()

	assertBlocks(t, e, "")
	if got := e.Root().InnerHTML(); got != `<p>`+span+dom.Placeholder+`</span></p>` {
		t.Errorf("InnerHTML() after Reset = %q", got)
	}
	press(e, input.KeyEvent{Key: "z", Ctrl: true})
	assertBlocks(t, e, "")

	e.SetFocused(false)
	if sel := e.DOMSelection(); sel.AnchorNode != nil || sel.FocusNode != nil {
		t.Errorf("blurred editor reported a selection: %+v", sel)
	}
}

func TestWordBoundaries(t *testing.T) {
	b := block(cellsOf("ab\n  cd ef", 0))
	tests := []struct {
		off, prev, next int
	}{
		{10, 8, 10},
		{8, 5, 10},
		{5, 3, 7},
		{3, 2, 7},
		{2, 0, 3},
	}
	for _, tt := range tests {
		if got := b.prevWord(tt.off); got != tt.prev {
			t.Errorf("prevWord(%d) = %d, want %d", tt.off, got, tt.prev)
		}
		if got := b.nextWord(tt.off); got != tt.next {
			t.Errorf("nextWord(%d) = %d, want %d", tt.off, got, tt.next)
		}
	}
}

func TestDOMSelectionOffsets(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		sel        Selection
		anchorOff  int
		focusOff   int
		focusEmpty bool // focus is the empty-line placeholder
	}{
		{"ascii", "ab", Caret(Point{Offset: 2}), 2, 2, false},
		{"astral counts two units", "😀ab", Caret(Point{Offset: 1}), 2, 2, false},
		{"after astral and ascii", "a😀b", Caret(Point{Offset: 3}), 4, 4, false},
		{"range into empty line", "ab\n", Selection{Focus: Point{Offset: 3}}, 0, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := New(0)
			for _, r := range tt.text {
				if r == '\n' {
					press(e, input.KeyEvent{Key: input.KeyEnter, Shift: true})
					continue
				}
				e.HandleKey(input.KeyEvent{Key: string(r)})
			}
			e.SetSelection(tt.sel)

			sel := e.DOMSelection()
			if sel.AnchorOffset != tt.anchorOff || sel.FocusOffset != tt.focusOff {
				t.Errorf("offsets = %d, %d; want %d, %d", sel.AnchorOffset, sel.FocusOffset, tt.anchorOff, tt.focusOff)
			}
			if got := dom.IsPlaceholder(sel.FocusNode); got != tt.focusEmpty {
				t.Errorf("focus in placeholder = %v, want %v", got, tt.focusEmpty)
			}
		})
	}
}
