// internal/theme/theme.go
package theme

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/tidefix/internal/logger"
)

// Theme maps style names to tcell styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle looks up name, then its base name (part before the first dot),
// then "Default".
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}

	if dotIndex := strings.Index(name, "."); dotIndex != -1 {
		if style, ok := t.Styles[name[:dotIndex]]; ok {
			return style
		}
	}

	if defStyle, ok := t.Styles["Default"]; ok {
		if name != "Default" {
			logger.DebugTagf("theme", "Theme '%s': Style '%s' not found, falling back to 'Default'", t.Name, name)
		}
		return defStyle
	}

	logger.Warnf("Theme '%s': Style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// TideDark is the built-in theme.
var TideDark Theme

func init() {
	background := tcell.NewHexColor(0x2a2f38)
	foreground := tcell.NewHexColor(0xc5cdd9)
	muted := tcell.NewHexColor(0x5c6370)
	orange := tcell.NewHexColor(0xd19a66)
	yellow := tcell.NewHexColor(0xe5c07b)
	green := tcell.NewHexColor(0x98c379)
	cyan := tcell.NewHexColor(0x56b6c2)
	red := tcell.NewHexColor(0xe06c75)
	magenta := tcell.NewHexColor(0xc678dd)

	baseStyle := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(foreground)
	barStyle := tcell.StyleDefault.Background(background).Foreground(foreground)

	TideDark = Theme{
		Name:   "Tide Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			// UI
			"Default":            baseStyle,
			"Selection":          baseStyle.Reverse(true),
			"Border":             baseStyle.Foreground(muted),
			"PaneTitle":          baseStyle.Foreground(cyan).Bold(true),
			"FixtureHint":        baseStyle.Foreground(muted).Italic(true),
			"StatusBar":          barStyle,
			"StatusBarRecording": barStyle.Foreground(red).Bold(true),
			"StatusBarIdle":      barStyle.Foreground(muted),
			"StatusBarMessage":   barStyle.Bold(true),

			// Fixture syntax
			"property":              baseStyle.Foreground(cyan),
			"function":              baseStyle.Foreground(yellow),
			"string":                baseStyle.Foreground(green),
			"string.escape":         baseStyle.Foreground(magenta),
			"number":                baseStyle.Foreground(orange),
			"punctuation":           baseStyle.Foreground(muted),
			"punctuation.delimiter": baseStyle.Foreground(muted),
		},
	}
}
