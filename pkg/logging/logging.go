// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package logging configures structured logging for the server.
//
// Loggers write to stderr (or any injected writer): stdout carries the
// MCP stdio channel and must never receive log output. Components take
// an injected *slog.Logger rather than reaching for a process-wide
// default.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// New returns a text-format logger writing to w at the given minimum
// level, tagged with the component name.
func New(w io.Writer, level slog.Level, component string) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("component", component)
}

// ParseLevel converts a level name ("debug", "info", "warn", "error")
// to a slog.Level. Unknown names are an error so a typo in config does
// not silently change verbosity.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
