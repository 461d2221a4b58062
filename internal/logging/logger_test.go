package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseLevel(tt.in); got != tt.want {
				t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestJSONLoggerCarriesAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, LevelInfo, FormatJSON).WithBuild("b-1").WithTask("check")

	log.Debug("hidden")
	log.Info("task finished", "diagnostics", 3)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if entry["msg"] != "task finished" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["build_id"] != "b-1" {
		t.Errorf("build_id = %v", entry["build_id"])
	}
	if entry["task"] != "check" {
		t.Errorf("task = %v", entry["task"])
	}
	if entry["diagnostics"] != float64(3) {
		t.Errorf("diagnostics = %v", entry["diagnostics"])
	}
}

func TestNilLoggerDiscards(t *testing.T) {
	var log *Logger
	log.Info("nothing happens")
	log.With("k", "v").Warn("still nothing")
}

func TestNewBuildIDIsUnique(t *testing.T) {
	a, b := NewBuildID(), NewBuildID()
	if a == "" || a == b {
		t.Errorf("NewBuildID() returned %q and %q", a, b)
	}
}
