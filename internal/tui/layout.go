// internal/tui/layout.go
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/tidefix/internal/config"
	"github.com/bethropolis/tidefix/internal/theme"
)

// sideBySideWidth is the narrowest screen that shows the panes next to each other.
const sideBySideWidth = 100

// Rect is a screen region.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Layout splits the screen into the editor pane, the fixture pane and the
// status bar line.
type Layout struct {
	Editor  Rect
	Fixture Rect
}

// ComputeLayout places the panes side by side on wide screens and stacked
// otherwise, leaving one column or row for the divider.
func ComputeLayout(width, height int) Layout {
	h := height - config.StatusBarHeight
	if h < 0 {
		h = 0
	}
	if width >= sideBySideWidth {
		left := width / 2
		return Layout{
			Editor:  Rect{X: 0, Y: 0, W: left, H: h},
			Fixture: Rect{X: left + 1, Y: 0, W: width - left - 1, H: h},
		}
	}
	top := h / 3
	if top < 3 {
		top = min(3, h)
	}
	rest := h - top - 1
	if rest < 0 {
		rest = 0
	}
	return Layout{
		Editor:  Rect{X: 0, Y: 0, W: width, H: top},
		Fixture: Rect{X: 0, Y: top + 1, W: width, H: rest},
	}
}

// DrawDividers draws the line between the two panes.
func DrawDividers(screen tcell.Screen, l Layout, th *theme.Theme) {
	style := th.GetStyle("Border")
	if l.Fixture.Y == l.Editor.Y {
		x := l.Editor.X + l.Editor.W
		for y := l.Editor.Y; y < l.Editor.Y+l.Editor.H; y++ {
			screen.SetContent(x, y, tcell.RuneVLine, nil, style)
		}
		return
	}
	y := l.Editor.Y + l.Editor.H
	for x := l.Editor.X; x < l.Editor.X+l.Editor.W; x++ {
		screen.SetContent(x, y, tcell.RuneHLine, nil, style)
	}
}

// fill paints r with spaces.
func fill(screen tcell.Screen, r Rect, style tcell.Style) {
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// drawText draws text grapheme by grapheme from x, clipped at maxX, and
// returns the next free column.
func drawText(screen tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
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
