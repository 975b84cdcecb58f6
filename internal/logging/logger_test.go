package logging

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.WarnLevel},
		{"bogus", zerolog.WarnLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewLogger(t *testing.T) {
	tmpDir := t.TempDir()

	log := NewLogger(Config{
		Level:   "debug",
		LogFile: filepath.Join(tmpDir, "appfind.log"),
		NoColor: true,
	})
	if log == nil {
		t.Fatal("expected logger, got nil")
	}
	if log.GetLevel() != zerolog.DebugLevel {
		t.Errorf("level = %v, want debug", log.GetLevel())
	}
}

func TestNewTestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewTestLogger(&buf)

	log.Info().Str("component", "finder").Msg("discovery complete")

	out := buf.String()
	if !strings.Contains(out, "discovery complete") {
		t.Errorf("output = %q, want log message present", out)
	}
	if !strings.Contains(out, "finder") {
		t.Errorf("output = %q, want field present", out)
	}
}
