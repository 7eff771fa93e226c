// internal/input/key.go
package input

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// KeyEvent is a raw keyboard event in the browser key-name model: Key holds either
// the produced character ("a", "!", " ") or a named key ("Backspace", "ArrowLeft").
type KeyEvent struct {
	Key   string
	Ctrl  bool
	Alt   bool
	Shift bool
	Meta  bool
}

// Key names shared by the classifier, the editor and the terminal adapter.
const (
	KeyBackspace  = "Backspace"
	KeyDelete     = "Delete"
	KeyEnter      = "Enter"
	KeyTab        = "Tab"
	KeyEscape     = "Escape"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeyHome       = "Home"
	KeyEnd        = "End"
	KeyShift      = "Shift"
	KeyControl    = "Control"
	KeyUnknown    = "Unidentified"
)

var tcellKeyNames = map[tcell.Key]string{
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyLeft:       KeyArrowLeft,
	tcell.KeyRight:      KeyArrowRight,
	tcell.KeyUp:         KeyArrowUp,
	tcell.KeyDown:       KeyArrowDown,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       "PageUp",
	tcell.KeyPgDn:       "PageDown",
	tcell.KeyInsert:     "Insert",
}

// FromTcell converts a terminal key event into a KeyEvent.
// Ctrl+letter chords arrive from tcell as dedicated keys and are unfolded into
// the letter plus the Ctrl flag. Ctrl+H, Ctrl+I and Ctrl+M are indistinguishable
// from Backspace, Tab and Enter on a terminal and stay named keys.
func FromTcell(ev *tcell.EventKey) KeyEvent {
	mods := ev.Modifiers()
	ke := KeyEvent{
		Ctrl:  mods&tcell.ModCtrl != 0,
		Alt:   mods&tcell.ModAlt != 0,
		Shift: mods&tcell.ModShift != 0,
		Meta:  mods&tcell.ModMeta != 0,
	}

	k := ev.Key()
	if name, ok := tcellKeyNames[k]; ok {
		ke.Key = name
		return ke
	}
	switch {
	case k == tcell.KeyRune:
		ke.Key = string(ev.Rune())
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		ke.Key = string(rune('a' + int(k-tcell.KeyCtrlA)))
		ke.Ctrl = true
	default:
		ke.Key = KeyUnknown
	}
	return ke
}

// IsCharacter reports whether Key is exactly one user-perceived, printable character.
func (e KeyEvent) IsCharacter() bool {
	if e.Key == "" || uniseg.GraphemeClusterCount(e.Key) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(e.Key)
	return r != utf8.RuneError && !unicode.IsControl(r)
}

// HasModifiers reports whether any modifier flag is set.
func (e KeyEvent) HasModifiers() bool {
	return e.Ctrl || e.Alt || e.Shift || e.Meta
}

// String renders the event in shortcut notation, e.g. "ctrl+shift+z".
func (e KeyEvent) String() string {
	var parts []string
	if e.Ctrl {
		parts = append(parts, "ctrl")
	}
	if e.Alt {
		parts = append(parts, "alt")
	}
	if e.Shift {
		parts = append(parts, "shift")
	}
	if e.Meta {
		parts = append(parts, "meta")
	}
	return strings.Join(append(parts, e.Key), "+")
}

// Shortcut is a key chord bound to a tool command rather than to the editor.
type Shortcut struct {
	Key   string
	Ctrl  bool
	Alt   bool
	Shift bool
	Meta  bool
}

// ParseShortcut parses notation such as "ctrl+r" or "meta+shift+F5".
func ParseShortcut(s string) (Shortcut, error) {
	var sc Shortcut
	parts := strings.Split(strings.TrimSpace(s), "+")
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if i == len(parts)-1 {
			if part == "" {
				return Shortcut{}, fmt.Errorf("shortcut %q has no key", s)
			}
			sc.Key = part
			break
		}
		switch strings.ToLower(part) {
		case "ctrl", "control":
			sc.Ctrl = true
		case "alt", "option":
			sc.Alt = true
		case "shift":
			sc.Shift = true
		case "meta", "cmd", "super":
			sc.Meta = true
		default:
			return Shortcut{}, fmt.Errorf("shortcut %q: unknown modifier %q", s, part)
		}
	}
	return sc, nil
}

// Matches reports whether ev is exactly this chord. Keys compare case-insensitively.
func (sc Shortcut) Matches(ev KeyEvent) bool {
	return strings.EqualFold(sc.Key, ev.Key) &&
		sc.Ctrl == ev.Ctrl && sc.Alt == ev.Alt && sc.Shift == ev.Shift && sc.Meta == ev.Meta
}

// String renders the chord in the notation ParseShortcut accepts.
func (sc Shortcut) String() string {
	return KeyEvent(sc).String()
}
