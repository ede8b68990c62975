// Package logger builds the slog logger used by the markovpass CLI.
// Diagnostics go to stderr so stdout carries nothing but passphrases.
package logger

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Level   string `yaml:"level"`
	LogType string `yaml:"type"`
}

func (c *Config) Default() {
	*c = Config{
		Level:   "warn",
		LogType: "text",
	}
}

func New(conf Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: getLogLevel(conf.Level),
	}

	return slog.New(getHandler(conf.LogType, opts))
}

func getLogLevel(logLevel string) slog.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func getHandler(logType string, opts *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(logType) {
	case "json":
		return slog.NewJSONHandler(os.Stderr, opts)

	default:
		return slog.NewTextHandler(os.Stderr, opts)
	}
}
