package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Level
		err   bool
	}{
		{"debug level", "debug", LevelDebug, false},
		{"empty defaults to info", "", LevelInfo, false},
		{"warn alias", "WARNING", LevelWarn, false},
		{"error level", "error", LevelError, false},
		{"invalid level", "loud", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("unexpected error state: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelWarn)
	log.Debugf("debug %d", 1)
	log.Infof("info %d", 2)
	log.Warnf("warn %d", 3)
	log.Errorf("error %d", 4)

	out := buf.String()
	if strings.Contains(out, "debug 1") || strings.Contains(out, "info 2") {
		t.Fatalf("expected debug and info to be filtered: %q", out)
	}
	if !strings.Contains(out, "[WARN] warn 3") || !strings.Contains(out, "[ERROR] error 4") {
		t.Fatalf("expected warn and error lines: %q", out)
	}
}

func TestNopDiscards(t *testing.T) {
	// Must not panic.
	Nop().Errorf("ignored %s", "message")
}
