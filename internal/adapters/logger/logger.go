// Package logger implements a logging adapter using log/slog.
package logger

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"
)

// messager describes an error that can report its own message without the
// chain. This matches the Message() method provided by zerr.Error
// (go.trai.ch/zerr v0.3.0+).
type messager interface {
	Message() string
}

// Logger implements ports.Logger using log/slog. Debug records are dropped
// unless verbose mode is enabled.
type Logger struct {
	logger *slog.Logger
	level  *slog.LevelVar
}

// New creates a new Logger writing to stderr. Setting PANELCTL_VERBOSE in
// the environment enables debug output from the start, before any flag
// parsing has happened.
func New() *Logger {
	l := NewWithWriter(os.Stderr)
	if os.Getenv("PANELCTL_VERBOSE") != "" {
		l.SetVerbose(true)
	}
	return l
}

// NewWithWriter creates a new Logger writing to w. Used by tests to capture
// output.
func NewWithWriter(w io.Writer) *Logger {
	level := &slog.LevelVar{}
	level.Set(slog.LevelInfo)

	handler := NewPrettyHandler(w, &slog.HandlerOptions{Level: level})
	return &Logger{
		logger: slog.New(handler),
		level:  level,
	}
}

// SetVerbose lowers the threshold to debug when enabled and restores it to
// info otherwise.
func (l *Logger) SetVerbose(enable bool) {
	if enable {
		l.level.Set(slog.LevelDebug)
	} else {
		l.level.Set(slog.LevelInfo)
	}
}

// Debug logs a diagnostic message. Only visible in verbose mode.
func (l *Logger) Debug(msg string) {
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.logger.Warn(msg)
}

// Error logs an error, rendering the cause chain hierarchically.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}
	l.logger.Error(formatChain(err))
}

// formatChain walks the error chain and renders it as a main message followed
// by an indented "Caused by:" list. zerr errors contribute their own message
// without the chain; a standard error terminates the walk with its full text.
func formatChain(err error) string {
	var messages []string
	for current := err; current != nil; {
		if m, ok := current.(messager); ok {
			messages = append(messages, m.Message())
			current = errors.Unwrap(current)
		} else {
			messages = append(messages, current.Error())
			break
		}
	}

	var b strings.Builder
	b.WriteString("Error: " + messages[0])

	for i, msg := range messages[1:] {
		if i == 0 {
			b.WriteString("\n\n  Caused by:")
		}
		b.WriteString("\n    → " + msg)
	}

	return b.String()
}
