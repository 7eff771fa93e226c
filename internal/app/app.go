// internal/app/app.go
package app

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/bethropolis/tidefix/internal/config"
	"github.com/bethropolis/tidefix/internal/editor"
	"github.com/bethropolis/tidefix/internal/event"
	"github.com/bethropolis/tidefix/internal/highlighter"
	"github.com/bethropolis/tidefix/internal/input"
	"github.com/bethropolis/tidefix/internal/logger"
	"github.com/bethropolis/tidefix/internal/recorder"
	"github.com/bethropolis/tidefix/internal/statusbar"
	"github.com/bethropolis/tidefix/internal/theme"
	"github.com/bethropolis/tidefix/internal/tui"
)

// App encapsulates the core components and the main loop of the recorder.
// Everything below runs on the goroutine that calls Run.
type App struct {
	tuiManager   *tui.TUI
	editor       *editor.Editor
	recorder     *recorder.Recorder
	statusBar    *statusbar.StatusBar
	eventManager *event.Manager
	highlighter  *highlighter.Highlighter // nil when the grammar failed to load
	themeManager *theme.Manager
	clipboard    Clipboard
	internal     *memoryClipboard

	layout      tui.Layout
	editorPane  tui.EditorPane
	fixturePane tui.FixturePane

	// Latest FixtureChanged payload and its highlighting.
	fixture    string
	fixtureOK  bool
	highlights highlighter.Result

	toggleKey input.Shortcut
	copyKey   input.Shortcut
	quitKey   input.Shortcut

	dragging bool
	quit     bool
}

// NewApp creates the application on the real terminal.
func NewApp(cfg *config.Config) (*App, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	return newApp(cfg, s)
}

// newApp wires every component around screen, which is initialized here.
func newApp(cfg *config.Config, screen tcell.Screen) (*App, error) {
	toggleKey, err := input.ParseShortcut(cfg.Recorder.ToggleKey)
	if err != nil {
		return nil, fmt.Errorf("toggle shortcut: %w", err)
	}
	copyKey, err := input.ParseShortcut(cfg.Recorder.CopyKey)
	if err != nil {
		return nil, fmt.Errorf("copy shortcut: %w", err)
	}
	quitKey, _ := input.ParseShortcut(config.QuitKey)

	themeManager := theme.NewManager()
	if cfg.Editor.Theme != "" {
		if err := themeManager.LoadThemesFromDir(theme.DefaultThemesDir(config.AppName)); err != nil {
			logger.Warnf("App: %v", err)
		}
		if err := themeManager.SetTheme(cfg.Editor.Theme); err != nil {
			logger.Warnf("App: %v", err)
		}
	}
	if cfg.Editor.ThemeFile != "" {
		if err := themeManager.LoadAndActivate(cfg.Editor.ThemeFile); err != nil {
			logger.Warnf("App: failed to load theme '%s': %v", cfg.Editor.ThemeFile, err)
		}
	}
	th := themeManager.Current()

	tuiManager, err := tui.NewWithScreen(screen, th)
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	hl, err := highlighter.New()
	if err != nil {
		logger.Warnf("App: fixture highlighting disabled: %v", err)
	}

	ed := editor.New(cfg.Editor.HistorySize)
	eventManager := event.NewManager()
	ed.SetEventManager(eventManager)
	rec := recorder.New(ed, ed, cfg.Recorder.TestName)
	rec.SetEventManager(eventManager)

	statusBar := statusbar.New(statusbar.Config{
		StyleDefault:   th.GetStyle("StatusBar"),
		StyleRecording: th.GetStyle("StatusBarRecording"),
		StyleIdle:      th.GetStyle("StatusBarIdle"),
		StyleMessage:   th.GetStyle("StatusBarMessage"),
		MessageTimeout: config.MessageTimeout,
	})
	statusBar.SetHint(fmt.Sprintf("%s rec | %s copy | Esc focus | %s quit", toggleKey, copyKey, quitKey))

	internal := &memoryClipboard{}
	a := &App{
		tuiManager:   tuiManager,
		editor:       ed,
		recorder:     rec,
		statusBar:    statusBar,
		eventManager: eventManager,
		highlighter:  hl,
		themeManager: themeManager,
		clipboard:    newClipboard(cfg.Recorder.SystemClipboard, internal),
		internal:     internal,
		toggleKey:    toggleKey,
		copyKey:      copyKey,
		quitKey:      quitKey,
	}

	// --- Subscribe Core Components (App level wiring) ---
	eventManager.Subscribe(event.TypeKeyPressed, a.handleKeyPressedForRecorder)
	eventManager.Subscribe(event.TypeEditorUpdated, a.handleEditorUpdatedForRecorder)
	eventManager.Subscribe(event.TypeEditorUpdated, a.handleEditorUpdatedForStatus)
	eventManager.Subscribe(event.TypeFixtureChanged, a.handleFixtureChanged)
	eventManager.Subscribe(event.TypeRecordingToggled, a.handleRecordingToggled)
	eventManager.Subscribe(event.TypeAppReady, a.handleAppReady)
	eventManager.Subscribe(event.TypeAppQuit, a.handleAppQuit)

	a.updateSelectionStatus()
	return a, nil
}

// Run processes terminal events until the quit shortcut is pressed.
func (a *App) Run() error {
	defer a.Close()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{ToggleKey: a.toggleKey.String()})
	a.setMessage("%s %s - %s starts recording", config.AppName, config.Version, a.toggleKey)
	a.draw()

	for !a.quit {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			break // screen finalized
		}
		if a.handleEvent(ev) {
			a.draw()
		}
	}

	a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{Steps: len(a.recorder.Session().Steps)})
	return nil
}

// Close releases the screen and the parser.
func (a *App) Close() {
	if a.highlighter != nil {
		a.highlighter.Close()
		a.highlighter = nil
	}
	a.tuiManager.Close()
}

// handleEvent dispatches one terminal event and reports whether a redraw is needed.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.tuiManager.GetScreen().Sync()
		return true
	case *tcell.EventKey:
		return a.handleKey(input.FromTcell(ev))
	case *tcell.EventMouse:
		return a.handleMouse(ev)
	case *tcell.EventInterrupt:
		return true // message expiry
	}
	return false
}

// handleKey runs tool shortcuts first; every other key is shown to the
// recorder and then to the editor, in that order.
func (a *App) handleKey(key input.KeyEvent) bool {
	switch {
	case a.quitKey.Matches(key):
		a.quit = true
		return false
	case a.toggleKey.Matches(key):
		a.recorder.Toggle()
		return true
	case a.copyKey.Matches(key):
		a.copyFixture()
		return true
	case key.Key == input.KeyEscape && !key.HasModifiers():
		a.setFocused(!a.editor.Focused())
		return true
	}

	if !a.editor.Focused() {
		return false
	}
	a.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{Key: key})
	a.editor.HandleKey(key)
	return true
}

// setFocused moves input focus into or out of the editor. A blurred editor
// has no live selection, so the fixture is re-rendered.
func (a *App) setFocused(focused bool) {
	if a.editor.Focused() == focused {
		return
	}
	a.editor.SetFocused(focused)
	logger.DebugTagf("app", "Editor focused=%v", focused)
	a.refreshFixture()
	a.updateSelectionStatus()
}

// refreshFixture renders the fixture against the live selection.
func (a *App) refreshFixture() {
	fixture, ok := a.recorder.Fixture()
	a.applyFixture(event.FixtureChangedData{Fixture: fixture, OK: ok, Steps: len(a.recorder.Session().Steps)})
}

// applyFixture stores and highlights a freshly rendered fixture.
func (a *App) applyFixture(data event.FixtureChangedData) {
	a.fixture, a.fixtureOK = data.Fixture, data.OK
	a.highlights = nil
	a.statusBar.SetSteps(data.Steps)
	if !data.OK || a.highlighter == nil {
		return
	}
	if err := a.highlighter.Validate(data.Fixture); err != nil {
		logger.Warnf("App: %v", err)
	}
	hl, err := a.highlighter.Highlight(data.Fixture)
	if err != nil {
		logger.Warnf("App: fixture highlighting failed: %v", err)
		return
	}
	a.highlights = hl
}

// copyFixture writes the current fixture to the clipboard.
func (a *App) copyFixture() {
	fixture, ok := a.recorder.Fixture()
	if !ok {
		a.setMessage("Nothing to copy")
		return
	}
	if err := a.clipboard.WriteAll(fixture); err != nil {
		logger.Warnf("App: clipboard write failed, keeping fixture internally: %v", err)
		_ = a.internal.WriteAll(fixture)
		a.setMessage("Clipboard unavailable; fixture kept internally")
		return
	}
	steps := len(a.recorder.Session().Steps)
	logger.Infof("App: copied fixture with %d steps", steps)
	a.setMessage("Fixture copied (%d steps)", steps)
}

// setMessage shows a temporary status message and schedules the redraw that
// clears it.
func (a *App) setMessage(format string, args ...interface{}) {
	a.statusBar.SetTemporaryMessage(format, args...)
	time.AfterFunc(config.MessageTimeout+100*time.Millisecond, func() {
		_ = a.tuiManager.PostEvent(tcell.NewEventInterrupt(nil))
	})
}
