// Package logger owns the process-wide structured logger.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

// L is the global logger instance. Init must be called once at startup, after
// loading config; until then L falls back to slog's default.
var L = slog.Default()

// Init initializes the global logger with the given level and format
// ("plain" or "json").
func Init(levelStr, format string) {
	var level slog.Level
	switch strings.ToLower(levelStr) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
		slog.Warn("invalid log level, defaulting to INFO", "configuredLevel", levelStr)
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}
	L = slog.New(handler)
	slog.SetDefault(L)
}
