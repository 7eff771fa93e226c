// internal/recorder/controller.go
package recorder

import (
	"github.com/google/uuid"

	"github.com/bethropolis/tidefix/internal/dom"
	"github.com/bethropolis/tidefix/internal/event"
	"github.com/bethropolis/tidefix/internal/input"
	"github.com/bethropolis/tidefix/internal/logger"
)

// Editor is the part of the observed editor the recorder drives.
type Editor interface {
	Root() *dom.Node
	Reset() // one empty paragraph, caret inside
}

// SelectionProvider supplies the live selection.
type SelectionProvider interface {
	DOMSelection() dom.Selection
}

// Recorder owns the recording session and feeds it key presses and editor
// updates. All methods run on the UI goroutine.
type Recorder struct {
	session   Session
	editor    Editor
	selection SelectionProvider
	testName  string

	eventManager *event.Manager
}

// New creates a stopped recorder for editor.
func New(editor Editor, selection SelectionProvider, testName string) *Recorder {
	if testName == "" {
		testName = DefaultTestName
	}
	return &Recorder{editor: editor, selection: selection, testName: testName}
}

// SetEventManager wires the manager that receives RecordingToggled and
// FixtureChanged events.
func (r *Recorder) SetEventManager(m *event.Manager) {
	r.eventManager = m
}

// Session returns the committed session.
func (r *Recorder) Session() Session {
	return r.session
}

// Recording reports whether a recording is in progress.
func (r *Recorder) Recording() bool {
	return r.session.Recording
}

// HandleKey classifies a raw key press. It must run before the editor
// handles the same key.
func (r *Recorder) HandleKey(ev input.KeyEvent) {
	r.commit(KeyPressed{Key: ev})
}

// HandleUpdate observes one editor update notification.
func (r *Recorder) HandleUpdate(dirty bool, ref SelectionRef) {
	update := EditorUpdated{Dirty: dirty, Selection: ref}
	if r.session.Recording {
		root := r.editor.Root()
		update.Markup = root.InnerHTML()
		if snap, ok := dom.ResolveSelection(r.selection.DOMSelection(), root); ok {
			update.Snapshot = &snap
		}
	}
	r.commit(update)
}

// Toggle stops a running recording, or resets the editor and starts a new one.
// It returns the new recording state.
func (r *Recorder) Toggle() bool {
	if r.session.Recording {
		r.commit(Stopped{})
		logger.InfoTagf("recorder", "Recording %s stopped with %d steps", r.session.ID, len(r.session.Steps))
	} else {
		r.editor.Reset()
		r.commit(Started{ID: uuid.NewString()})
		logger.InfoTagf("recorder", "Recording %s started", r.session.ID)
	}
	r.dispatch(event.TypeRecordingToggled, event.RecordingToggledData{
		Recording: r.session.Recording,
		SessionID: r.session.ID,
	})
	r.dispatchFixture()
	return r.session.Recording
}

// Fixture renders the current fixture. It reports false when there are no
// steps or the live selection is not inside the editor.
func (r *Recorder) Fixture() (string, bool) {
	s := r.session
	if len(s.Steps) == 0 {
		return "", false
	}
	markup := s.Markup
	if !s.HasMarkup {
		markup = r.editor.Root().InnerHTML()
	}
	return RenderFixture(s.Steps, markup, r.selection.DOMSelection(), r.editor.Root(), r.testName)
}

func (r *Recorder) commit(ev Event) {
	prev := r.session
	r.session = prev.Apply(ev)
	grew := len(r.session.Steps) > len(prev.Steps)
	if grew {
		logger.DebugTagf("recorder", "Recorded %s", r.session.Steps[len(r.session.Steps)-1])
	}
	if _, ok := ev.(EditorUpdated); ok || grew {
		r.dispatchFixture()
	}
}

func (r *Recorder) dispatchFixture() {
	if r.eventManager == nil {
		return
	}
	fixture, ok := r.Fixture()
	r.dispatch(event.TypeFixtureChanged, event.FixtureChangedData{
		Fixture: fixture,
		OK:      ok,
		Steps:   len(r.session.Steps),
	})
}

func (r *Recorder) dispatch(t event.Type, data interface{}) {
	if r.eventManager != nil {
		r.eventManager.Dispatch(t, data)
	}
}
