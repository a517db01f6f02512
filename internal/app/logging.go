package app

import (
	"log/slog"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/greencloud/gcrs/internal/config"
)

// parseSlogLevel maps a config string to a slog level, accepting the
// usual names plus raw numeric levels.
func parseSlogLevel(level string, fallback slog.Level) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}
	return fallback
}

// configureLogging installs the global slog logger, writing to a
// rotated log file so structured output never interleaves with the
// rendered terminal output.
func configureLogging(cfg *config.Config, verbose bool) {
	level := parseSlogLevel(cfg.Log.Level, slog.LevelInfo)
	if verbose {
		level = slog.LevelDebug
	}

	writer := &lumberjack.Logger{
		Filename:   cfg.Log.File,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
		Compress:   cfg.Log.Compress,
	}

	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	})
	slog.SetDefault(slog.New(handler))
}
