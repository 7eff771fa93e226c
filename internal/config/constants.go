// internal/config/constants.go
package config

import "time"

// Base application details
const AppName = "tidefix"
const DefaultConfigFileName = "config.toml"
const DefaultLogFileName = "tidefix.log"
const Version = "0.1.0"

// UI Layout
const StatusBarHeight = 1

// Status Bar
const MessageTimeout = 4 * time.Second

// Recorder defaults
const DefaultTestName = "<YOUR TEST NAME>"
const DefaultToggleKey = "ctrl+r"
const DefaultCopyKey = "ctrl+t"
const QuitKey = "ctrl+q"
const SystemClipboard = true

// Editor defaults
const DefaultHistorySize = 100
