// internal/recorder/session.go
package recorder

import (
	"strconv"

	"github.com/bethropolis/tidefix/internal/dom"
	"github.com/bethropolis/tidefix/internal/input"
)

// SelectionRef identifies a logical editor selection. Equal refs mean the
// selection did not move.
type SelectionRef uint64

// Session is the whole recording state. It is a plain value; transitions
// happen only through Apply.
type Session struct {
	ID        string
	Steps     []Step
	Recording bool

	LastSelection                SelectionRef
	SuppressNextSelectionCapture bool

	Markup    string // rendered markup as of the latest update while recording
	HasMarkup bool
}

// Event is an input to Session.Apply.
type Event interface {
	isEvent()
}

// KeyPressed is a raw key event, seen before the editor handles it.
type KeyPressed struct {
	Key input.KeyEvent
}

// EditorUpdated is an editor update notification. Snapshot is nil when the
// live selection could not be resolved inside the editor root.
type EditorUpdated struct {
	Dirty     bool
	Selection SelectionRef
	Markup    string
	Snapshot  *dom.SelectionSnapshot
}

// Started begins a fresh recording.
type Started struct {
	ID string
}

// Stopped ends the recording.
type Stopped struct{}

func (KeyPressed) isEvent()    {}
func (EditorUpdated) isEvent() {}
func (Started) isEvent()       {}
func (Stopped) isEvent()       {}

// Apply returns the session that results from ev. s itself is not modified.
func (s Session) Apply(ev Event) Session {
	switch ev := ev.(type) {
	case KeyPressed:
		return s.classify(ev.Key)
	case EditorUpdated:
		return s.observe(ev)
	case Started:
		return Session{ID: ev.ID, Recording: true, LastSelection: s.LastSelection}
	case Stopped:
		s.Recording = false
		s.SuppressNextSelectionCapture = false
		return s
	}
	return s
}

func (s Session) classify(key input.KeyEvent) Session {
	if !s.Recording {
		return s
	}
	action, ok := input.Classify(key)
	if !ok {
		return s
	}
	var payload Payload
	if action == input.ActionInsertText {
		payload = Text(key.Key)
	}
	s.Steps = Record(s.Steps, action, payload)
	if action.IsNavigation() {
		s.SuppressNextSelectionCapture = true
	}
	return s
}

// observe derives moveNativeSelection steps from selection-only updates.
func (s Session) observe(ev EditorUpdated) Session {
	moved := ev.Selection != s.LastSelection
	if moved && !ev.Dirty && s.Recording && !s.SuppressNextSelectionCapture && ev.Snapshot != nil {
		s.Steps = Record(s.Steps, input.ActionMoveNativeSelection, snapshotArgs(*ev.Snapshot))
	}
	s.LastSelection = ev.Selection
	if s.Recording {
		s.Markup = ev.Markup
		s.HasMarkup = true
	}
	s.SuppressNextSelectionCapture = false
	return s
}

func snapshotArgs(snap dom.SelectionSnapshot) Args {
	return Args{
		snap.AnchorPath.String(),
		strconv.Itoa(snap.AnchorOffset),
		snap.FocusPath.String(),
		strconv.Itoa(snap.FocusOffset),
	}
}
