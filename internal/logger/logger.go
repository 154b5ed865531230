// Package logger provides the levelled logger used while processing words.
package logger

import (
	"context"
	"io"
	"log"
	"os"
	"strings"
)

// Logger writes levelled, printf-style messages.
type Logger interface {
	Debug(ctx context.Context, msg string, args ...interface{})
	Info(ctx context.Context, msg string, args ...interface{})
	Warn(ctx context.Context, msg string, args ...interface{})
	Error(ctx context.Context, msg string, args ...interface{})
}

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

type implLogger struct {
	logger *log.Logger
	level  int
}

// New creates a logger writing to stderr. Unknown levels fall back to info.
func New(level string) Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter creates a logger writing to w.
func NewWithWriter(w io.Writer, level string) Logger {
	l, ok := levels[strings.ToLower(level)]
	if !ok {
		l = levels["info"]
	}
	return &implLogger{
		logger: log.New(w, "", log.LstdFlags),
		level:  l,
	}
}

func (l *implLogger) shouldLog(level string) bool {
	return levels[level] >= l.level
}

func (l *implLogger) logf(level, msg string, args ...interface{}) {
	if l.shouldLog(level) {
		l.logger.Printf("["+strings.ToUpper(level)+"] "+msg, args...)
	}
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	l.logf("debug", msg, args...)
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	l.logf("info", msg, args...)
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	l.logf("warn", msg, args...)
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	l.logf("error", msg, args...)
}
