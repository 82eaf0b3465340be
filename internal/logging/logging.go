// Package logging provides a small leveled logger for the CLI.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
	levelOff
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseLevel parses a log level name, defaulting to info.
func ParseLevel(s string) Level {
	switch strings.ToLower(s) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger writes timestamped, leveled lines to a single destination.
// Loggers derived with WithPrefix share the parent's mutex and writer,
// so their lines never interleave.
type Logger struct {
	mu     *sync.Mutex
	level  Level
	prefix string
	out    io.Writer
}

// New creates a logger writing to stderr at the given level.
func New(level Level) *Logger {
	return &Logger{mu: &sync.Mutex{}, level: level, out: os.Stderr}
}

// Discard returns a logger that drops every message.
func Discard() *Logger {
	return &Logger{mu: &sync.Mutex{}, level: levelOff, out: io.Discard}
}

// SetOutput redirects log output, mainly for tests.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

// WithPrefix returns a logger that tags each line with the given prefix.
// The child shares the parent's level, destination, and lock.
func (l *Logger) WithPrefix(prefix string) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	return &Logger{mu: l.mu, level: l.level, prefix: prefix, out: l.out}
}

func (l *Logger) log(level Level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.level {
		return
	}

	var b strings.Builder
	b.WriteString(time.Now().Format(time.RFC3339))
	b.WriteByte(' ')
	b.WriteString(level.String())
	if l.prefix != "" {
		b.WriteByte(' ')
		b.WriteString(l.prefix)
	}
	b.WriteString(": ")
	fmt.Fprintf(&b, format, args...)
	b.WriteByte('\n')
	_, _ = io.WriteString(l.out, b.String())
}

// Debug logs at debug level.
func (l *Logger) Debug(format string, args ...any) { l.log(LevelDebug, format, args...) }

// Info logs at info level.
func (l *Logger) Info(format string, args ...any) { l.log(LevelInfo, format, args...) }

// Warn logs at warn level.
func (l *Logger) Warn(format string, args ...any) { l.log(LevelWarn, format, args...) }

// Error logs at error level.
func (l *Logger) Error(format string, args ...any) { l.log(LevelError, format, args...) }
