package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"Warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{" error ", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLogLevel(tt.in); got != tt.want {
				t.Errorf("ParseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStructuredLoggerAddsModuleAndVersion(t *testing.T) {
	var buf bytes.Buffer
	logger := newStructuredLogger(&buf, "cookbookd", "v1.2.3", slog.LevelInfo)

	logger.Info("entry registered", "name", "Flour")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("log output is not JSON: %v (%s)", err, buf.String())
	}
	if rec["module"] != "cookbookd" {
		t.Errorf("module = %v, want cookbookd", rec["module"])
	}
	if rec["version"] != "v1.2.3" {
		t.Errorf("version = %v, want v1.2.3", rec["version"])
	}
	if rec["name"] != "Flour" {
		t.Errorf("name = %v, want Flour", rec["name"])
	}
	if _, ok := rec["source"]; ok {
		t.Error("source should only be attached at debug level")
	}
}

func TestStructuredLoggerDebugAddsSource(t *testing.T) {
	var buf bytes.Buffer
	logger := newStructuredLogger(&buf, "cookbook", "dev", slog.LevelDebug)

	logger.Debug("expanding recipe")

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("log output is not JSON: %v", err)
	}
	if _, ok := rec["source"]; !ok {
		t.Error("expected source location at debug level")
	}
}

func TestStructuredLoggerFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newStructuredLogger(&buf, "cookbook", "dev", slog.LevelWarn)

	logger.Info("dropped")
	if buf.Len() != 0 {
		t.Errorf("expected info to be filtered at warn level, got %s", buf.String())
	}
}

func TestNewLogLogger(t *testing.T) {
	if l := NewLogLogger(slog.LevelError, false); l == nil {
		t.Fatal("expected logger")
	}
}
