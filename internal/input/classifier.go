// internal/input/classifier.go
package input

import "strings"

// Predicate reports whether a key event means a particular action.
type Predicate func(KeyEvent) bool

// Rule binds an action to the predicate that recognizes it.
type Rule struct {
	Action Action
	Match  Predicate
}

// Rules is the ordered classification table. Order is load-bearing: chorded
// deletes precede plain deletes, redo precedes undo (shift+z), and the
// insertText catch-all comes last.
var Rules = []Rule{
	{ActionMoveBackward, isMoveBackward},
	{ActionMoveForward, isMoveForward},
	{ActionDeleteLineBackward, isDeleteLineBackward},
	{ActionDeleteLineForward, isDeleteLineForward},
	{ActionDeleteWordBackward, isDeleteWordBackward},
	{ActionDeleteWordForward, isDeleteWordForward},
	{ActionDeleteBackward, isDeleteBackward},
	{ActionDeleteForward, isDeleteForward},
	{ActionInsertLinebreak, isLinebreak},
	{ActionInsertParagraph, isParagraph},
	{ActionRedo, isRedo},
	{ActionUndo, isUndo},
	{ActionFormatBold, isFormatBold},
	{ActionFormatItalic, isFormatItalic},
	{ActionInsertText, isInsertText},
}

// Classify returns the first action whose predicate matches ev.
func Classify(ev KeyEvent) (Action, bool) {
	for _, rule := range Rules {
		if rule.Match(ev) {
			return rule.Action, true
		}
	}
	return ActionUnknown, false
}

func noModifiers(e KeyEvent) bool { return !e.HasModifiers() }

// command reports the platform command chord (Ctrl, or Cmd on macOS keyboards).
func command(e KeyEvent) bool { return (e.Ctrl || e.Meta) && !e.Alt }

func letter(e KeyEvent, l string) bool { return strings.EqualFold(e.Key, l) }

func isMoveBackward(e KeyEvent) bool { return e.Key == KeyArrowLeft && noModifiers(e) }

func isMoveForward(e KeyEvent) bool { return e.Key == KeyArrowRight && noModifiers(e) }

func isDeleteLineBackward(e KeyEvent) bool {
	return e.Key == KeyBackspace && e.Meta && !e.Ctrl && !e.Alt
}

func isDeleteLineForward(e KeyEvent) bool {
	return e.Key == KeyDelete && e.Meta && !e.Ctrl && !e.Alt
}

func isDeleteWordBackward(e KeyEvent) bool {
	return e.Key == KeyBackspace && (e.Alt || e.Ctrl) && !e.Meta
}

func isDeleteWordForward(e KeyEvent) bool {
	return e.Key == KeyDelete && (e.Alt || e.Ctrl) && !e.Meta
}

func isDeleteBackward(e KeyEvent) bool {
	return e.Key == KeyBackspace && !e.Ctrl && !e.Alt && !e.Meta
}

func isDeleteForward(e KeyEvent) bool {
	return e.Key == KeyDelete && !e.Ctrl && !e.Alt && !e.Meta
}

func isLinebreak(e KeyEvent) bool {
	return e.Key == KeyEnter && e.Shift && !e.Ctrl && !e.Alt && !e.Meta
}

func isParagraph(e KeyEvent) bool { return e.Key == KeyEnter && noModifiers(e) }

func isRedo(e KeyEvent) bool {
	return command(e) && ((letter(e, "z") && e.Shift) || (e.Ctrl && !e.Shift && letter(e, "y")))
}

func isUndo(e KeyEvent) bool { return command(e) && !e.Shift && letter(e, "z") }

func isFormatBold(e KeyEvent) bool { return command(e) && !e.Shift && letter(e, "b") }

func isFormatItalic(e KeyEvent) bool { return command(e) && !e.Shift && letter(e, "i") }

// isInsertText is the catch-all: one printable character with no command chord.
func isInsertText(e KeyEvent) bool { return !e.Ctrl && !e.Meta && e.IsCharacter() }
