// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !js

package engine

import (
	"log/slog"
	"os"
	"runtime"

	"github.com/gogpu/engine/loop"
)

// dispatchConstruction runs the construction job to completion before
// the activation callback returns.
func dispatchConstruction(job func()) {
	job()
}

// runApp is the blocking strategy: install the level-filtered logger,
// then drive the loop on the calling goroutine, pinned to its OS thread
// as window systems require.
func runApp(el *loop.EventLoop[readyEvent], app *App, o options) error {
	level := defaultLogLevel
	if o.logEnv != "" {
		l, err := parseLogLevel(os.Getenv(o.logEnv))
		if err != nil {
			return err
		}
		level = l
	}
	logger := slog.New(newLogHandler(o.logOutput, level))
	SetLogger(logger)
	el.SetLogger(logger)

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	logger.Debug("engine: running", "driver", el.Driver().Name(), "level", level.String())
	return el.Run(app)
}
