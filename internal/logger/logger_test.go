package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{LogLevel: "warn"}, &buf)

	Infof("info-line %d", 1)
	Warnf("warn-line %d", 2)

	out := buf.String()
	if strings.Contains(out, "info-line") {
		t.Errorf("info message logged at warn level:\n%s", out)
	}
	if !strings.Contains(out, "warn-line 2") {
		t.Errorf("warn message missing:\n%s", out)
	}
}

func TestTagFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{LogLevel: "debug", DisabledTags: []string{"Noisy"}}, &buf)

	DebugTagf("noisy", "hidden-message")
	DebugTagf("recorder", "visible-message")

	out := buf.String()
	if strings.Contains(out, "hidden-message") {
		t.Errorf("disabled tag was logged:\n%s", out)
	}
	if !strings.Contains(out, "visible-message") || !strings.Contains(out, "tag=recorder") {
		t.Errorf("tagged message missing:\n%s", out)
	}
}

func TestEnabledTagsDropUntagged(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{LogLevel: "debug", EnabledTags: []string{"recorder"}}, &buf)

	Debugf("untagged-message")
	DebugTagf("recorder", "tagged-message")

	out := buf.String()
	if strings.Contains(out, "untagged-message") {
		t.Errorf("untagged message passed an enabled-tags filter:\n%s", out)
	}
	if !strings.Contains(out, "tagged-message") {
		t.Errorf("enabled tag missing:\n%s", out)
	}
}

func TestPackageAndFileFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{LogLevel: "debug", DisabledPackages: []string{"logger"}}, &buf)
	Infof("from-logger-package")
	if strings.Contains(buf.String(), "from-logger-package") {
		t.Errorf("disabled package was logged:\n%s", buf.String())
	}

	buf.Reset()
	Init(Config{LogLevel: "debug", EnabledFiles: []string{"other.go"}}, &buf)
	Infof("from-test-file")
	if strings.Contains(buf.String(), "from-test-file") {
		t.Errorf("file outside enabled list was logged:\n%s", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"debug", "DEBUG", true},
		{"WARNING", "WARN", true},
		{"err", "ERROR", true},
		{"", "INFO", true},
		{"loud", "INFO", false},
	}
	for _, tt := range tests {
		got, ok := ParseLevel(tt.in)
		if got.String() != tt.want || ok != tt.wantOK {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
