package logging

import (
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf strings.Builder
	l := New(LevelWarn)
	l.SetOutput(&buf)

	l.Debug("dropped")
	l.Info("dropped")
	l.Warn("kept warn")
	l.Error("kept error")

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("low-level messages leaked: %q", out)
	}
	if !strings.Contains(out, "WARN: kept warn") || !strings.Contains(out, "ERROR: kept error") {
		t.Errorf("expected warn and error lines, got %q", out)
	}
}

func TestWithPrefix(t *testing.T) {
	var buf strings.Builder
	l := New(LevelDebug)
	l.SetOutput(&buf)

	l.WithPrefix("convert").Info("done in %dms", 3)
	if !strings.Contains(buf.String(), "INFO convert: done in 3ms") {
		t.Errorf("prefix missing: %q", buf.String())
	}
}

func TestWithPrefixSharesLock(t *testing.T) {
	l := New(LevelDebug)
	child := l.WithPrefix("child")
	if child.mu != l.mu {
		t.Error("child logger does not share the parent's mutex")
	}
	if child.out != l.out {
		t.Error("child logger does not share the parent's writer")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"info", LevelInfo},
		{"bogus", LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDiscard(t *testing.T) {
	var buf strings.Builder
	l := Discard()
	l.SetOutput(&buf)
	l.Error("should not appear")
	if buf.Len() != 0 {
		t.Errorf("Discard logger wrote %q", buf.String())
	}
}
