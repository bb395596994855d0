package logger

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"boardshelf/src/infra/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"ERROR", slog.LevelError},
		{"nonsense", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestPlainFormatWritesBareMessage(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(config.LogConfig{Level: "info", Format: "plain"}, &buf)

	log.Info("schema ready", "tables", 3)

	if got := buf.String(); got != "schema ready\n" {
		t.Errorf("plain output = %q, want %q", got, "schema ready\n")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(config.LogConfig{Level: "error", Format: "json"}, &buf)

	log.Info("should be dropped")
	if buf.Len() != 0 {
		t.Fatalf("info line emitted despite error level: %q", buf.String())
	}

	log.Error("kept")
	if !strings.Contains(buf.String(), "kept") {
		t.Fatalf("error line missing: %q", buf.String())
	}
}
