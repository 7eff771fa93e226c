// internal/app/events.go
package app

import (
	"github.com/bethropolis/tidefix/internal/editor"
	"github.com/bethropolis/tidefix/internal/event"
	"github.com/bethropolis/tidefix/internal/logger"
	"github.com/bethropolis/tidefix/internal/recorder"
)

// handleKeyPressedForRecorder classifies the key before the editor acts on it.
func (a *App) handleKeyPressedForRecorder(e event.Event) bool {
	if data, ok := e.Data.(event.KeyPressedData); ok {
		a.recorder.HandleKey(data.Key)
	}
	return false // Not consumed
}

// handleEditorUpdatedForRecorder feeds every editor notification to the recorder.
func (a *App) handleEditorUpdatedForRecorder(e event.Event) bool {
	u, ok := e.Data.(editor.Update)
	if !ok {
		logger.Warnf("App: Received EditorUpdated event with unexpected data type: %T", e.Data)
		return false
	}
	a.recorder.HandleUpdate(u.Dirty, recorder.SelectionRef(u.SelectionID))
	return false
}

// handleEditorUpdatedForStatus refreshes the selection summary.
func (a *App) handleEditorUpdatedForStatus(e event.Event) bool {
	a.updateSelectionStatus()
	return false
}

// handleFixtureChanged keeps the fixture pane in sync with the recorder.
func (a *App) handleFixtureChanged(e event.Event) bool {
	if data, ok := e.Data.(event.FixtureChangedData); ok {
		a.applyFixture(data)
	}
	return false
}

// handleRecordingToggled updates the REC indicator.
func (a *App) handleRecordingToggled(e event.Event) bool {
	data, ok := e.Data.(event.RecordingToggledData)
	if !ok {
		return false
	}
	a.statusBar.SetRecording(data.Recording, data.SessionID)
	if data.Recording {
		a.setMessage("Recording started")
	} else {
		a.setMessage("Recording stopped; %s copies the fixture", a.copyKey)
	}
	return false
}

func (a *App) handleAppReady(e event.Event) bool {
	if data, ok := e.Data.(event.AppReadyData); ok {
		logger.Infof("App: ready, %s toggles recording", data.ToggleKey)
	}
	return false
}

func (a *App) handleAppQuit(e event.Event) bool {
	if data, ok := e.Data.(event.AppQuitData); ok && data.Steps > 0 {
		logger.Infof("App: exiting with %d recorded steps", data.Steps)
	}
	return false
}
