// SPDX-License-Identifier: MIT

// Package logging provides structured logging for the gridgen CLI.
//
// The library packages never log; only the command layer does. Output goes
// to stderr by default (Unix convention: the generated map owns stdout), as
// text for humans or JSON for pipelines.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{Level: logging.LevelDebug, Service: "gridgen"})
//	logger.Info("generated", "kind", "tilemap", "width", 64, "height", 32)
//
// # Log Levels
//
//   - Debug: per-stage details (passes, component counts)
//   - Info: one line per generated map
//   - Warn: recoverable oddities (clamped flags, fallback values)
//   - Error: the command failed
//
// Logger is safe for concurrent use; it wraps a slog.Logger.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrUnknownLevel is returned by ParseLevel for unrecognised names.
var ErrUnknownLevel = errors.New("logging: unknown level")

// Level represents log severity levels, ordered Debug < Info < Warn < Error.
type Level int

const (
	// LevelDebug is for development troubleshooting.
	LevelDebug Level = iota
	// LevelInfo is for normal operational messages.
	LevelInfo
	// LevelWarn is for recoverable problems.
	LevelWarn
	// LevelError is for failures.
	LevelError
)

// String returns "DEBUG", "INFO", "WARN", "ERROR", or "UNKNOWN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps "debug", "info", "warn"/"warning" or "error" (any case) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("%w %q", ErrUnknownLevel, s)
	}
}

// toSlogLevel converts our Level to slog.Level.
func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Config configures the Logger. A zero Config writes Info+ text to stderr.
type Config struct {
	// Level sets the minimum log level. Default: LevelInfo.
	Level Level

	// Service is attached to every entry as "service" when non-empty.
	Service string

	// JSON switches from text to JSON lines.
	JSON bool

	// Quiet discards all output.
	Quiet bool

	// Output overrides the destination (tests). Default: os.Stderr.
	Output io.Writer
}

// Logger wraps slog.Logger with the CLI's configuration.
type Logger struct {
	slog   *slog.Logger
	config Config
}

// New builds a Logger from cfg.
func New(cfg Config) *Logger {
	out := cfg.Output
	switch {
	case cfg.Quiet:
		out = io.Discard
	case out == nil:
		out = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: cfg.Level.toSlogLevel()}
	var h slog.Handler
	if cfg.JSON {
		h = slog.NewJSONHandler(out, opts)
	} else {
		h = slog.NewTextHandler(out, opts)
	}
	l := slog.New(h)
	if cfg.Service != "" {
		l = l.With("service", cfg.Service)
	}

	return &Logger{slog: l, config: cfg}
}

// Default returns an Info-level text logger on stderr.
func Default() *Logger { return New(Config{}) }

// Slog exposes the underlying *slog.Logger.
func (l *Logger) Slog() *slog.Logger { return l.slog }

// Config returns the configuration the logger was built with.
func (l *Logger) Config() Config { return l.config }

// With returns a child logger that adds args to every entry.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{slog: l.slog.With(args...), config: l.config}
}

// Debug logs at LevelDebug.
func (l *Logger) Debug(msg string, args ...any) { l.slog.Debug(msg, args...) }

// Info logs at LevelInfo.
func (l *Logger) Info(msg string, args ...any) { l.slog.Info(msg, args...) }

// Warn logs at LevelWarn.
func (l *Logger) Warn(msg string, args ...any) { l.slog.Warn(msg, args...) }

// Error logs at LevelError.
func (l *Logger) Error(msg string, args ...any) { l.slog.Error(msg, args...) }
