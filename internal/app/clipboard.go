// internal/app/clipboard.go
package app

import (
	"github.com/atotto/clipboard"

	"github.com/bethropolis/tidefix/internal/logger"
)

// Clipboard receives copied fixtures.
type Clipboard interface {
	WriteAll(text string) error
}

// memoryClipboard keeps the last copied text in process.
type memoryClipboard struct {
	text string
}

func (c *memoryClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

// systemClipboard writes through the platform clipboard and mirrors the text
// into the internal one.
type systemClipboard struct {
	internal *memoryClipboard
}

func (c systemClipboard) WriteAll(text string) error {
	_ = c.internal.WriteAll(text)
	return clipboard.WriteAll(text)
}

// newClipboard returns the system clipboard when requested and available.
func newClipboard(system bool, internal *memoryClipboard) Clipboard {
	if !system {
		return internal
	}
	if clipboard.Unsupported {
		logger.Warnf("App: no system clipboard found, fixtures are kept internally")
		return internal
	}
	return systemClipboard{internal: internal}
}
