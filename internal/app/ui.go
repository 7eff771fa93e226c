// internal/app/ui.go
package app

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/tidefix/internal/dom"
	"github.com/bethropolis/tidefix/internal/editor"
	"github.com/bethropolis/tidefix/internal/tui"
)

// draw clears the screen and redraws all components.
func (a *App) draw() {
	screen := a.tuiManager.GetScreen()
	th := a.themeManager.Current()
	width, height := a.tuiManager.Size()

	a.layout = tui.ComputeLayout(width, height)
	a.editorPane.Rect = a.layout.Editor
	a.fixturePane.Rect = a.layout.Fixture

	a.tuiManager.Clear()
	a.editorPane.Draw(screen, a.editor, th)
	a.fixturePane.Draw(screen, a.fixture, a.fixtureOK, a.highlights, a.fixtureHint(), th)
	tui.DrawDividers(screen, a.layout, th)
	a.statusBar.Draw(screen, width, height)
	a.tuiManager.Show()
}

// fixtureHint explains why no fixture is shown.
func (a *App) fixtureHint() string {
	steps := len(a.recorder.Session().Steps)
	switch {
	case steps == 0 && !a.recorder.Recording():
		return fmt.Sprintf("Press %s to start recording", a.toggleKey)
	case steps == 0:
		return "Recording. Type in the editor to add steps"
	default:
		return "The selection is outside the editor. Click it or press Esc"
	}
}

// updateSelectionStatus shows the live selection as a path and offset.
func (a *App) updateSelectionStatus() {
	snap, ok := dom.ResolveSelection(a.editor.DOMSelection(), a.editor.Root())
	if !ok {
		a.statusBar.SetSelection("")
		return
	}
	summary := fmt.Sprintf("%s:%d", snap.FocusPath, snap.FocusOffset)
	if !snap.AnchorPath.Equal(snap.FocusPath) || snap.AnchorOffset != snap.FocusOffset {
		summary = fmt.Sprintf("%s:%d -> %s", snap.AnchorPath, snap.AnchorOffset, summary)
	}
	a.statusBar.SetSelection(summary)
}

// handleMouse turns clicks and drags into pointer selections. A click in the
// fixture pane takes focus away from the editor.
func (a *App) handleMouse(ev *tcell.EventMouse) bool {
	x, y := ev.Position()
	if ev.Buttons()&tcell.Button1 == 0 {
		a.dragging = false
		return false
	}

	switch {
	case a.dragging:
		if p, ok := a.editorPane.HitTest(x, y); ok {
			sel := a.editor.Selection()
			sel.Focus = p
			a.editor.SetSelection(sel)
		}
		return true
	case a.layout.Editor.Contains(x, y):
		a.setFocused(true)
		if p, ok := a.editorPane.HitTest(x, y); ok {
			a.editor.SetSelection(editor.Caret(p))
			a.dragging = true
		}
		return true
	case a.layout.Fixture.Contains(x, y):
		a.setFocused(false)
		return true
	}
	return false
}
