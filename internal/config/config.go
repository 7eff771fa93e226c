// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/bethropolis/tidefix/internal/input"
	"github.com/bethropolis/tidefix/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger   logger.Config  `toml:"logger"`
	Recorder RecorderConfig `toml:"recorder"`
	Editor   EditorConfig   `toml:"editor"`
}

// RecorderConfig holds fixture and shortcut settings.
type RecorderConfig struct {
	TestName        string `toml:"test_name"`
	ToggleKey       string `toml:"toggle_key"`
	CopyKey         string `toml:"copy_key"`
	SystemClipboard bool   `toml:"system_clipboard"`
}

// EditorConfig holds editor settings.
type EditorConfig struct {
	HistorySize int    `toml:"history_size"`
	ThemeFile   string `toml:"theme_file"` // optional TOML theme, activated on start
	Theme       string `toml:"theme"`      // name of a theme in the themes directory
}

// NewDefaultConfig creates a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Recorder: RecorderConfig{
			TestName:        DefaultTestName,
			ToggleKey:       DefaultToggleKey,
			CopyKey:         DefaultCopyKey,
			SystemClipboard: SystemClipboard,
		},
		Editor: EditorConfig{
			HistorySize: DefaultHistorySize,
		},
	}
}

// DefaultPath returns ~/.config/tidefix/config.toml, or "" if the user
// config directory is unknown.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// mergeFile decodes filePath over cfg, so keys absent from the file keep
// their current values. A missing file is not an error.
func mergeFile(cfg *Config, filePath string) ([]string, error) {
	if _, err := os.Stat(filePath); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	var undecoded []string
	for _, key := range metadata.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return undecoded, nil
}

// validate resets out-of-range values to defaults and rejects unusable shortcuts.
func (c *Config) validate() error {
	defaults := NewDefaultConfig()

	if c.Editor.HistorySize <= 0 {
		c.Editor.HistorySize = defaults.Editor.HistorySize
	}
	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
	if c.Recorder.TestName == "" {
		c.Recorder.TestName = defaults.Recorder.TestName
	}

	toggle, err := input.ParseShortcut(c.Recorder.ToggleKey)
	if err != nil {
		return fmt.Errorf("recorder.toggle_key: %w", err)
	}
	cp, err := input.ParseShortcut(c.Recorder.CopyKey)
	if err != nil {
		return fmt.Errorf("recorder.copy_key: %w", err)
	}
	quit, _ := input.ParseShortcut(QuitKey)
	if toggle == cp || toggle == quit || cp == quit {
		return fmt.Errorf("recorder shortcuts must be distinct (toggle %s, copy %s, quit %s)", toggle, cp, quit)
	}
	return nil
}

// Load builds the configuration: defaults, then the TOML file (configFilePath,
// or the default location when empty), then flag overrides, then validation.
// It logs nothing; the logger is configured from its result.
func Load(configFilePath string, flags *Flags) (*Config, []string, error) {
	cfg := NewDefaultConfig()

	path := configFilePath
	if path == "" {
		path = DefaultPath()
	}
	var undecoded []string
	if path != "" {
		var err error
		if undecoded, err = mergeFile(cfg, path); err != nil {
			return nil, nil, err
		}
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, undecoded, nil
}
