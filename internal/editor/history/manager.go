// internal/editor/history/manager.go

// Package history provides undo/redo over editor state snapshots.
package history

import (
	"sync"

	"github.com/bethropolis/tidefix/internal/logger"
)

const DefaultMaxHistory = 100

// Change is one reversible edit: the state before it and the state after it.
type Change[S any] struct {
	Tag    string // groups consecutive edits of the same kind, e.g. "insertText"
	Before S
	After  S
}

// Manager handles the undo/redo stack.
type Manager[S any] struct {
	changes      []Change[S]
	currentIndex int // Index of the *next* change to potentially Redo
	maxHistory   int
	mergeable    bool // whether the last change may absorb the next one with the same tag
	mutex        sync.Mutex
}

// NewManager creates a history manager.
func NewManager[S any](maxHistory int) *Manager[S] {
	if maxHistory <= 0 {
		maxHistory = DefaultMaxHistory
	}
	return &Manager[S]{
		changes:    make([]Change[S], 0, maxHistory),
		maxHistory: maxHistory,
	}
}

// RecordChange adds a new change, clearing any redo history. A change whose tag
// is in merge and matches the previous change's tag extends that change instead.
func (m *Manager[S]) RecordChange(change Change[S], merge ...string) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.currentIndex < len(m.changes) {
		m.changes = m.changes[:m.currentIndex]
		m.mergeable = false
	}

	if n := len(m.changes); n > 0 && m.mergeable && m.changes[n-1].Tag == change.Tag && contains(merge, change.Tag) {
		m.changes[n-1].After = change.After
		logger.DebugTagf("history", "Merged %s change. Index: %d", change.Tag, m.currentIndex)
		return
	}

	m.changes = append(m.changes, change)
	if len(m.changes) > m.maxHistory {
		m.changes = m.changes[len(m.changes)-m.maxHistory:] // FIFO eviction
	}
	m.currentIndex = len(m.changes)
	m.mergeable = true

	logger.DebugTagf("history", "Recorded %s change. Index: %d, Count: %d", change.Tag, m.currentIndex, len(m.changes))
}

// Undo returns the state preceding the last applied change.
func (m *Manager[S]) Undo() (S, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	var zero S
	if m.currentIndex <= 0 {
		logger.DebugTagf("history", "Nothing to undo.")
		return zero, false
	}
	m.currentIndex--
	m.mergeable = false
	logger.DebugTagf("history", "Undoing change %d (%s)", m.currentIndex, m.changes[m.currentIndex].Tag)
	return m.changes[m.currentIndex].Before, true
}

// Redo returns the state following the next undone change.
func (m *Manager[S]) Redo() (S, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	var zero S
	if m.currentIndex >= len(m.changes) {
		logger.DebugTagf("history", "Nothing to redo. currentIndex=%d, len(changes)=%d", m.currentIndex, len(m.changes))
		return zero, false
	}
	change := m.changes[m.currentIndex]
	m.currentIndex++
	m.mergeable = false
	logger.DebugTagf("history", "Redid change %d (%s)", m.currentIndex-1, change.Tag)
	return change.After, true
}

// Clear resets the history stack.
func (m *Manager[S]) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.changes = m.changes[:0]
	m.currentIndex = 0
	m.mergeable = false
}

// CanUndo returns true if there are changes that can be undone.
func (m *Manager[S]) CanUndo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.currentIndex > 0
}

// CanRedo returns true if there are changes that can be redone.
func (m *Manager[S]) CanRedo() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.currentIndex < len(m.changes)
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
