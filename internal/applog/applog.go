// Package applog provides the process-wide structured logger. It wraps
// log/slog the way a small CLI tool needs to: one text handler over
// stderr, a configurable level, and short passthrough helpers so call
// sites don't thread a logger through every function signature.
package applog

import (
	"log/slog"
	"os"
)

var log *slog.Logger

func init() {
	log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(log)
}

// Init reconfigures the global logger at the given level
// ("debug", "info", "warn", or "error"; anything else is treated as "info").
func Init(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(log)
}

// Debug logs at debug level.
func Debug(msg string, args ...any) { log.Debug(msg, args...) }

// Info logs at info level.
func Info(msg string, args ...any) { log.Info(msg, args...) }

// Warn logs at warn level.
func Warn(msg string, args ...any) { log.Warn(msg, args...) }

// Error logs at error level.
func Error(msg string, args ...any) { log.Error(msg, args...) }
