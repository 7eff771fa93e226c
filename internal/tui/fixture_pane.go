// internal/tui/fixture_pane.go
package tui

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/bethropolis/tidefix/internal/highlighter"
	"github.com/bethropolis/tidefix/internal/theme"
)

// FixturePane shows the live fixture with syntax styles, or a hint when there
// is nothing to show.
type FixturePane struct {
	Rect Rect
}

// Draw renders fixture. hl may be nil; later ranges win where they overlap.
func (p *FixturePane) Draw(screen tcell.Screen, fixture string, ok bool, hl highlighter.Result, hint string, th *theme.Theme) {
	base := th.GetStyle("Default")
	fill(screen, p.Rect, base)
	if p.Rect.H <= 0 || p.Rect.W <= 0 {
		return
	}
	maxX := p.Rect.X + p.Rect.W
	drawText(screen, p.Rect.X, p.Rect.Y, maxX, " Fixture", th.GetStyle("PaneTitle"))

	if !ok {
		if p.Rect.H > 1 {
			drawText(screen, p.Rect.X+1, p.Rect.Y+1, maxX, hint, th.GetStyle("FixtureHint"))
		}
		return
	}

	for i, line := range strings.Split(fixture, "\n") {
		y := p.Rect.Y + 1 + i
		if y >= p.Rect.Y+p.Rect.H {
			break
		}
		ranges := hl[i]
		gr := uniseg.NewGraphemes(line)
		x, col := p.Rect.X, 0
		for gr.Next() {
			runes := gr.Runes()
			w := gr.Width()
			if x+w > maxX {
				break
			}
			style := base
			for _, r := range ranges {
				if col >= r.StartCol && col < r.EndCol {
					style = th.GetStyle(r.StyleName)
				}
			}
			screen.SetContent(x, y, runes[0], runes[1:], style)
			x += w
			col += len(runes)
		}
	}
}
