// internal/event/events.go
package event

import "github.com/bethropolis/tidefix/internal/input"

// Type identifies the kind of event.
type Type int

// Define specific event types.
const (
	TypeUnknown Type = iota

	// Editor Events
	TypeEditorUpdated // Fired after every handled editor command (Data: editor.Update)
	TypeKeyPressed    // Raw key forwarded before the editor sees it (Data: KeyPressedData)

	// Recorder Events
	TypeRecordingToggled // Fired after recording starts or stops (Data: RecordingToggledData)
	TypeFixtureChanged   // Fired after any committed session change (Data: FixtureChangedData)

	// Application Lifecycle Events
	TypeAppReady // Fired when the application is fully initialized
	TypeAppQuit  // Fired just before application termination begins
)

var typeNames = map[Type]string{
	TypeUnknown:          "Unknown",
	TypeEditorUpdated:    "EditorUpdated",
	TypeKeyPressed:       "KeyPressed",
	TypeRecordingToggled: "RecordingToggled",
	TypeFixtureChanged:   "FixtureChanged",
	TypeAppReady:         "AppReady",
	TypeAppQuit:          "AppQuit",
}

// String names the event type for logs.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type        // The kind of event
	Data interface{} // Payload carrying event-specific data
}

// --- Specific Event Data Structures ---

// KeyPressedData carries the key in the tool's key-name model.
type KeyPressedData struct {
	Key input.KeyEvent
}

// RecordingToggledData reports the new recording state.
type RecordingToggledData struct {
	Recording bool
	SessionID string
}

// FixtureChangedData carries the freshly rendered fixture.
type FixtureChangedData struct {
	Fixture string
	OK      bool // false when no fixture can be shown
	Steps   int
}

// AppQuitData reports the state at exit.
type AppQuitData struct {
	Steps int
}

// AppReadyData carries the active shortcuts.
type AppReadyData struct {
	ToggleKey string
}
