// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package app

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Log settings used when the config leaves them empty.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// parseLogLevel maps a level name to its slog level. An empty name selects
// DefaultLogLevel.
func parseLogLevel(levelStr string) (slog.Level, error) {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", levelStr)
	}
}

// parseLogFormat normalizes a format name. An empty name selects
// DefaultLogFormat.
func parseLogFormat(formatStr string) (string, error) {
	switch f := strings.ToLower(formatStr); f {
	case "":
		return DefaultLogFormat, nil
	case "text", "json":
		return f, nil
	default:
		return "", fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", formatStr)
	}
}

// newLogger creates and configures a new slog.Logger instance writing to
// outW. It does not set the global logger, allowing for isolated logger
// instances.
func newLogger(levelStr, formatStr string, outW io.Writer) (*slog.Logger, error) {
	level, err := parseLogLevel(levelStr)
	if err != nil {
		return nil, err
	}
	format, err := parseLogFormat(formatStr)
	if err != nil {
		return nil, err
	}

	handlerOpts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler

	if format == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler), nil
}
