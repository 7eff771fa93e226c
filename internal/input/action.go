// internal/input/action.go
package input

// Action is a symbolic editor input recorded into fixtures.
type Action int

// The closed set of recognized actions. String() yields the fixture name.
const (
	ActionUnknown Action = iota // Default/invalid action

	// --- Deletion ---
	ActionDeleteBackward
	ActionDeleteForward
	ActionDeleteWordBackward
	ActionDeleteWordForward
	ActionDeleteLineForward
	ActionDeleteLineBackward

	// --- Structure ---
	ActionInsertParagraph
	ActionInsertLinebreak

	// --- History ---
	ActionUndo
	ActionRedo

	// --- Formatting ---
	ActionFormatBold
	ActionFormatItalic

	// --- Caret Movement ---
	ActionMoveBackward
	ActionMoveForward

	// --- Coalescable ---
	ActionInsertText          // Carries the typed text
	ActionMoveNativeSelection // Derived from selection changes, never from a key
)

var actionNames = [...]string{
	ActionUnknown:             "unknown",
	ActionDeleteBackward:      "deleteBackward",
	ActionDeleteForward:       "deleteForward",
	ActionDeleteWordBackward:  "deleteWordBackward",
	ActionDeleteWordForward:   "deleteWordForward",
	ActionDeleteLineForward:   "deleteLineForward",
	ActionDeleteLineBackward:  "deleteLineBackward",
	ActionInsertParagraph:     "insertParagraph",
	ActionInsertLinebreak:     "insertLinebreak",
	ActionUndo:                "undo",
	ActionRedo:                "redo",
	ActionFormatBold:          "formatBold",
	ActionFormatItalic:        "formatItalic",
	ActionMoveBackward:        "moveBackward",
	ActionMoveForward:         "moveForward",
	ActionInsertText:          "insertText",
	ActionMoveNativeSelection: "moveNativeSelection",
}

// String returns the symbolic name used in fixtures.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return actionNames[ActionUnknown]
	}
	return actionNames[a]
}

// Coalescable reports whether consecutive steps of this action merge.
func (a Action) Coalescable() bool {
	return a == ActionInsertText || a == ActionMoveNativeSelection
}

// IsNavigation reports whether the action moves the caret without editing.
func (a Action) IsNavigation() bool {
	return a == ActionMoveBackward || a == ActionMoveForward
}

// ParseAction maps a fixture name back to its Action.
func ParseAction(name string) (Action, bool) {
	for i, n := range actionNames {
		if i != int(ActionUnknown) && n == name {
			return Action(i), true
		}
	}
	return ActionUnknown, false
}
