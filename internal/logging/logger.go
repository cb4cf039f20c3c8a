// Package logging wraps log/slog with rotating file output. The terminal
// belongs to the UI, so logging is off unless a file is configured.
package logging

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type Config struct {
	// FilePath is the log file; empty disables logging
	FilePath   string
	Level      slog.Level
	Format     Format
	MaxSizeMB  int
	MaxBackups int
}

// Logger is a thin wrapper so call sites don't depend on a handler.
type Logger struct {
	logger *slog.Logger
	closer io.Closer
}

var (
	mu     sync.RWMutex
	global *Logger
	noop   = &Logger{logger: slog.New(slog.DiscardHandler)}
)

// Init replaces the global logger. An empty FilePath installs a no-op logger.
func Init(cfg Config) error {
	l := New(cfg)

	mu.Lock()
	prev := global
	global = l
	mu.Unlock()

	if prev != nil && prev.closer != nil {
		return prev.closer.Close()
	}
	return nil
}

// New builds a logger without touching the global one.
func New(cfg Config) *Logger {
	if cfg.FilePath == "" {
		return noop
	}

	maxSize := cfg.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 5
	}

	w := &lumberjack.Logger{
		Filename:   cfg.FilePath,
		MaxSize:    maxSize,
		MaxBackups: cfg.MaxBackups,
		Compress:   true,
	}

	opts := &slog.HandlerOptions{Level: cfg.Level}

	var h slog.Handler
	switch cfg.Format {
	case FormatJSON:
		h = slog.NewJSONHandler(w, opts)
	default:
		h = slog.NewTextHandler(w, opts)
	}

	return &Logger{logger: slog.New(h), closer: w}
}

// Get returns the global logger, or a no-op logger before Init.
func Get() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	if global == nil {
		return noop
	}
	return global
}

// Shutdown flushes and closes the global log file, if any.
func Shutdown() error {
	mu.Lock()
	prev := global
	global = nil
	mu.Unlock()

	if prev != nil && prev.closer != nil {
		return prev.closer.Close()
	}
	return nil
}

func (l *Logger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }
func (l *Logger) Info(msg string, args ...any)  { l.logger.Info(msg, args...) }
func (l *Logger) Warn(msg string, args ...any)  { l.logger.Warn(msg, args...) }
func (l *Logger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

func (l *Logger) With(args ...any) *Logger {
	return &Logger{logger: l.logger.With(args...)}
}

// IsEnabled reports whether anything is written at all. Loggers derived
// from the no-op logger stay disabled.
func (l *Logger) IsEnabled() bool {
	return l.logger.Enabled(context.Background(), slog.LevelError)
}

func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func ParseFormat(format string) Format {
	if format == "json" {
		return FormatJSON
	}
	return FormatText
}
