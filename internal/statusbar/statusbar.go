// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the appearance and behavior of the status bar.
type Config struct {
	StyleDefault   tcell.Style
	StyleRecording tcell.Style // REC indicator
	StyleIdle      tcell.Style // idle indicator
	StyleMessage   tcell.Style // temporary messages
	MessageTimeout time.Duration
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	bar := tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorBlue)
	return Config{
		StyleDefault:   bar,
		StyleRecording: bar.Foreground(tcell.ColorRed).Bold(true),
		StyleIdle:      bar,
		StyleMessage:   bar.Foreground(tcell.ColorWhite).Bold(true),
		MessageTimeout: 4 * time.Second,
	}
}

// StatusBar is the bottom status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex
	now    func() time.Time

	recording bool
	sessionID string
	steps     int
	selection string // e.g. "[0, 0, 0]:2", empty when unresolvable
	hint      string // right-aligned shortcut summary

	tempMessage     string
	tempMessageTime time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	return &StatusBar{config: config, now: time.Now}
}

// SetRecording updates the recording indicator.
func (sb *StatusBar) SetRecording(recording bool, sessionID string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.recording = recording
	sb.sessionID = sessionID
}

// SetSteps updates the recorded step count.
func (sb *StatusBar) SetSteps(n int) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.steps = n
}

// SetSelection updates the selection summary.
func (sb *StatusBar) SetSelection(summary string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.selection = summary
}

// SetHint sets the right-aligned text.
func (sb *StatusBar) SetHint(hint string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.hint = hint
}

// SetTemporaryMessage displays a message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = fmt.Sprintf(format, args...)
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message.
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// indicator returns the REC/idle segment and its style. Caller holds the lock.
func (sb *StatusBar) indicator() (string, tcell.Style) {
	if !sb.recording {
		return " ○ IDLE ", sb.config.StyleIdle
	}
	id := sb.sessionID
	if len(id) > 8 {
		id = id[:8]
	}
	return fmt.Sprintf(" ● REC %s ", id), sb.config.StyleRecording
}

// details builds the default text after the indicator. Caller holds the lock.
func (sb *StatusBar) details() string {
	unit := "steps"
	if sb.steps == 1 {
		unit = "step"
	}
	text := fmt.Sprintf(" %d %s", sb.steps, unit)
	if sb.selection != "" {
		text += " -- " + sb.selection
	} else {
		text += " -- no selection"
	}
	return text
}

// Draw renders the status bar on the last screen line.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1

	sb.mu.Lock()
	active := !sb.tempMessageTime.IsZero() && sb.now().Sub(sb.tempMessageTime) <= sb.config.MessageTimeout
	if !sb.tempMessageTime.IsZero() && !active {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
	}
	indicator, indicatorStyle := sb.indicator()
	text, style := sb.details(), sb.config.StyleDefault
	if active {
		text, style = " "+sb.tempMessage, sb.config.StyleMessage
	}
	hint := sb.hint
	sb.mu.Unlock()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, sb.config.StyleDefault)
	}
	x := drawString(screen, 0, y, width, indicator, indicatorStyle)
	x = drawString(screen, x, y, width, text, style)

	if hintWidth := uniseg.StringWidth(hint); hint != "" && x+hintWidth+1 <= width {
		drawString(screen, width-hintWidth-1, y, width, hint, sb.config.StyleDefault)
	}
}

// drawString draws text grapheme by grapheme from x, clipped at maxX, and
// returns the next free column.
func drawString(screen tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		w := gr.Width()
		if x+w > maxX {
			break
		}
		runes := gr.Runes()
		screen.SetContent(x, y, runes[0], runes[1:], style)
		x += w
	}
	return x
}
