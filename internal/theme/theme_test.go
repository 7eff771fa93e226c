package theme

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func writeTheme(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write theme: %v", err)
	}
	return path
}

func TestGetStyleFallback(t *testing.T) {
	th := &TideDark
	if th.GetStyle("string.escape") != th.Styles["string.escape"] {
		t.Errorf("exact style not used")
	}
	if th.GetStyle("function.call") != th.Styles["function"] {
		t.Errorf("base style not used for function.call")
	}
	if th.GetStyle("nonexistent") != th.Styles["Default"] {
		t.Errorf("Default not used for unknown style")
	}
	empty := &Theme{Name: "empty"}
	if empty.GetStyle("x") != tcell.StyleDefault {
		t.Errorf("empty theme should fall back to tcell default")
	}
}

func TestLoadThemeFromFile(t *testing.T) {
	path := writeTheme(t, t.TempDir(), "light.toml", `
is_dark = false

[styles.Default]
fg = "#000000"
bg = "white"

[styles.string]
fg = "#008000"
italic = true

[styles.number]
fg = "not-a-color"
`)
	th, err := LoadThemeFromFile(path)
	if err != nil {
		t.Fatalf("LoadThemeFromFile() error = %v", err)
	}
	if th.Name != "light" || th.IsDark {
		t.Errorf("name/dark = %q/%v", th.Name, th.IsDark)
	}

	base := tcell.StyleDefault.Foreground(tcell.NewHexColor(0)).Background(tcell.ColorWhite)
	if th.Styles["Default"] != base {
		t.Errorf("Default = %v, want %v", th.Styles["Default"], base)
	}
	if want := base.Foreground(tcell.NewHexColor(0x008000)).Italic(true); th.Styles["string"] != want {
		t.Errorf("string style = %v, want %v", th.Styles["string"], want)
	}
	if th.Styles["number"] != TideDark.Styles["number"] {
		t.Errorf("invalid style should keep the built-in one")
	}
	if _, ok := th.Styles["StatusBarRecording"]; !ok {
		t.Errorf("built-in UI styles missing from loaded theme")
	}
}

func TestLoadThemeErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := LoadThemeFromFile(filepath.Join(dir, "missing.toml")); err == nil {
		t.Errorf("missing file should fail")
	}
	bad := writeTheme(t, dir, "bad.toml", "[styles.Default]\nfg = \"#12\"\n")
	if _, err := LoadThemeFromFile(bad); err == nil {
		t.Errorf("invalid Default color should fail")
	}
}

func TestManager(t *testing.T) {
	dir := t.TempDir()
	writeTheme(t, dir, "one.toml", "name = \"One\"\n")
	writeTheme(t, dir, "notes.txt", "ignored")
	path := writeTheme(t, t.TempDir(), "two.toml", "name = \"Two\"\n")

	m := NewManager()
	if m.Current().Name != TideDark.Name {
		t.Fatalf("initial theme = %s", m.Current().Name)
	}
	if err := m.LoadThemesFromDir(dir); err != nil {
		t.Fatalf("LoadThemesFromDir() error = %v", err)
	}
	if err := m.LoadThemesFromDir(filepath.Join(dir, "absent")); err != nil {
		t.Errorf("missing dir should not be an error: %v", err)
	}
	if err := m.LoadAndActivate(path); err != nil {
		t.Fatalf("LoadAndActivate() error = %v", err)
	}
	if m.Current().Name != "Two" {
		t.Errorf("active theme = %s", m.Current().Name)
	}
	if err := m.SetTheme("one"); err != nil || m.Current().Name != "One" {
		t.Errorf("SetTheme(one) = %v, active %s", err, m.Current().Name)
	}
	if err := m.SetTheme("three"); err == nil {
		t.Errorf("unknown theme should fail")
	}
	if got := m.ListThemes(); !reflect.DeepEqual(got, []string{"One", TideDark.Name, "Two"}) {
		t.Errorf("ListThemes() = %v", got)
	}
}

func TestParseColorString(t *testing.T) {
	tests := []struct {
		in      string
		want    tcell.Color
		wantErr bool
	}{
		{"#ff0000", tcell.NewHexColor(0xff0000), false},
		{" Red ", tcell.ColorRed, false},
		{"reset", tcell.ColorReset, false},
		{"default", tcell.ColorDefault, false},
		{"#fff", tcell.ColorDefault, true},
		{"#gggggg", tcell.ColorDefault, true},
		{"chartreuse-ish", tcell.ColorDefault, true},
	}
	for _, tt := range tests {
		got, err := parseColorString(tt.in)
		if (err != nil) != tt.wantErr || (!tt.wantErr && got != tt.want) {
			t.Errorf("parseColorString(%q) = %v, %v", tt.in, got, err)
		}
	}
}
