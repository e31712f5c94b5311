package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", "json")

	log.Debug("hidden")
	log.Info("account created", "account_id", "abc")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 log line, got %d: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "account created" {
		t.Errorf("expected msg 'account created', got %v", entry["msg"])
	}
	if entry["account_id"] != "abc" {
		t.Errorf("expected account_id abc, got %v", entry["account_id"])
	}
	if entry["service"] != "account-service" {
		t.Errorf("expected service attribute, got %v", entry["service"])
	}
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "debug", "text").Debug("visible", "k", "v")

	if !strings.Contains(buf.String(), "msg=visible") || !strings.Contains(buf.String(), "k=v") {
		t.Errorf("unexpected text output: %q", buf.String())
	}
}
