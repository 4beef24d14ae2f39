// Package logger provides a small leveled logger.
package logger

import (
	"fmt"
	"io"
	"log"
	"strings"
)

// Logger writes leveled, printf-style log lines.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Level orders log severities.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// ParseLevel maps a level name to a Level. Unknown names are an error.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

type implLogger struct {
	logger *log.Logger
	level  Level
}

// New returns a Logger writing to w at or above level.
func New(w io.Writer, level Level) Logger {
	return &implLogger{
		logger: log.New(w, "", log.LstdFlags),
		level:  level,
	}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return New(io.Discard, LevelError+1)
}

func (l *implLogger) logf(level Level, tag, format string, args ...any) {
	if level < l.level {
		return
	}
	l.logger.Printf("["+tag+"] "+format, args...)
}

func (l *implLogger) Debugf(format string, args ...any) {
	l.logf(LevelDebug, "DEBUG", format, args...)
}

func (l *implLogger) Infof(format string, args ...any) {
	l.logf(LevelInfo, "INFO", format, args...)
}

func (l *implLogger) Warnf(format string, args ...any) {
	l.logf(LevelWarn, "WARN", format, args...)
}

func (l *implLogger) Errorf(format string, args ...any) {
	l.logf(LevelError, "ERROR", format, args...)
}
