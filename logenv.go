// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	defaultLogLevel = slog.LevelError

	// levelOff is above every level the engine logs at.
	levelOff = slog.Level(math.MaxInt32)
)

// parseLogLevel parses a level name as accepted by slog ("debug",
// "INFO", "warn+2", ...) plus "off". An empty value yields the default.
func parseLogLevel(v string) (slog.Level, error) {
	v = strings.TrimSpace(v)
	switch strings.ToLower(v) {
	case "":
		return defaultLogLevel, nil
	case "off", "none":
		return levelOff, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(v)); err != nil {
		return defaultLogLevel, fmt.Errorf("%w %q", ErrInvalidLogLevel, v)
	}
	return l, nil
}

// newLogHandler returns a text handler when w is a terminal and a JSON
// handler otherwise, filtered at level.
func newLogHandler(w io.Writer, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if isTerminal(w) {
		return slog.NewTextHandler(w, opts)
	}
	return slog.NewJSONHandler(w, opts)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
