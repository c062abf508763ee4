// Package logging provides the engine's structured logging: a thin,
// nil-safe wrapper around log/slog backed by lumberjack for rotation, the
// layout a batch runner embedding the engine (e.g. a server computing
// polygons for many aircraft and sites) would use around its
// range-profile and landing-search calls.
package logging

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger wraps *slog.Logger with its log file path, start time, and a
// nil-safe Debug/Info so callers can pass around a possibly-nil *Logger without
// guarding every call site.
type Logger struct {
	*slog.Logger
	LogFile string
	Start   time.Time
}

// New creates a Logger writing JSON records to dir, rotated by
// lumberjack, at the given slog level ("debug", "info", "warn", "error").
// An empty dir logs to the current directory.
func New(level, dir string) *Logger {
	if dir == "" {
		dir = "."
	}

	w := &lumberjack.Logger{
		Filename:   filepath.Join(dir, "deadstick.slog"),
		MaxSize:    32, // MB
		MaxBackups: 3,
		MaxAge:     14,
		Compress:   true,
	}

	lvl := slog.LevelInfo
	switch level {
	case "debug":
		lvl = slog.LevelDebug
		w.MaxSize = 256
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		fmt.Fprintf(os.Stderr, "%s: invalid log level, defaulting to info\n", level)
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: lvl})
	l := &Logger{
		Logger:  slog.New(h),
		LogFile: w.Filename,
		Start:   time.Now(),
	}

	l.Info("startup", slog.Time("time", time.Now()))
	if bi, ok := debug.ReadBuildInfo(); ok {
		l.Info("build", slog.String("go_version", bi.GoVersion), slog.String("path", bi.Path))
	}

	return l
}

func (l *Logger) Debug(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(context.Background(), slog.LevelDebug) {
		l.Logger.Debug(msg, args...)
	}
}

func (l *Logger) Debugf(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(context.Background(), slog.LevelDebug) {
		l.Logger.Debug(fmt.Sprintf(msg, args...))
	}
}

func (l *Logger) Info(msg string, args ...any) {
	if l != nil && l.Logger.Enabled(context.Background(), slog.LevelInfo) {
		l.Logger.Info(msg, args...)
	}
}

func (l *Logger) Warnf(msg string, args ...any) {
	if l == nil {
		slog.Warn(fmt.Sprintf(msg, args...))
		return
	}
	l.Logger.Warn(fmt.Sprintf(msg, args...))
}

func (l *Logger) Errorf(msg string, args ...any) {
	if l == nil {
		slog.Error(fmt.Sprintf(msg, args...))
		return
	}
	l.Logger.Error(fmt.Sprintf(msg, args...))
}

func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...), LogFile: l.LogFile, Start: l.Start}
}
