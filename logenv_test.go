// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelError, false},
		{"  ", slog.LevelError, false},
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"warn+2", slog.LevelWarn + 2, false},
		{"off", levelOff, false},
		{"None", levelOff, false},
		{"verbose", slog.LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseLogLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidLogLevel) {
				t.Errorf("parseLogLevel(%q) error = %v, want ErrInvalidLogLevel", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewLogHandlerNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	h := newLogHandler(&buf, slog.LevelInfo)
	if _, ok := h.(*slog.JSONHandler); !ok {
		t.Errorf("handler for a buffer = %T, want *slog.JSONHandler", h)
	}
	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("debug enabled at info level")
	}
	if !h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info disabled at info level")
	}
}

func TestLevelOffSilencesEverything(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(newLogHandler(&buf, levelOff))
	l.Error("should not appear")
	if buf.Len() != 0 {
		t.Errorf("output at level off: %s", buf.String())
	}
}

func TestIsTerminal(t *testing.T) {
	if isTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
}
