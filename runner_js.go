// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build js && wasm

package engine

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"syscall/js"

	"github.com/gogpu/engine/loop"
)

// dispatchConstruction runs the construction job on its own goroutine so
// the host's callback returns immediately.
func dispatchConstruction(job func()) {
	go func() {
		defer reportPanic()
		job()
	}()
}

// runApp is the cooperative strategy: route crashes to the browser
// console, install a console logger at a fixed level, schedule the loop
// on the host and return.
func runApp(el *loop.EventLoop[readyEvent], app *App, _ options) error {
	logger := slog.New(&consoleHandler{
		console: js.Global().Get("console"),
		level:   defaultLogLevel,
	})
	SetLogger(logger)
	el.SetLogger(logger)

	return el.Spawn(guardedApp{app}, func(err error) {
		if err != nil {
			Logger().Error("engine: event loop exited", "err", err)
		}
	})
}

// reportPanic writes a recovered panic and its stack to console.error and
// re-panics so the runtime still stops.
func reportPanic() {
	r := recover()
	if r == nil {
		return
	}
	js.Global().Get("console").Call("error", fmt.Sprintf("panic: %v\n\n%s", r, debug.Stack()))
	panic(r)
}

// guardedApp wraps every callback with reportPanic.
type guardedApp struct {
	app *App
}

func (g guardedApp) Resumed(el loop.ActiveEventLoop) {
	defer reportPanic()
	g.app.Resumed(el)
}

func (g guardedApp) UserEvent(el loop.ActiveEventLoop, ev readyEvent) {
	defer reportPanic()
	g.app.UserEvent(el, ev)
}

func (g guardedApp) WindowEvent(el loop.ActiveEventLoop, id loop.WindowID, ev loop.WindowEvent) {
	defer reportPanic()
	g.app.WindowEvent(el, id, ev)
}

func (g guardedApp) Exiting(el loop.ActiveEventLoop) {
	defer reportPanic()
	g.app.Exiting(el)
}

func (g guardedApp) Discard(ev readyEvent) {
	defer reportPanic()
	g.app.Discard(ev)
}

// consoleHandler is a slog.Handler writing to the browser console, one
// console method per level.
type consoleHandler struct {
	console js.Value
	level   slog.Level
	attrs   []slog.Attr
}

func (h *consoleHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	msg := r.Message
	for _, a := range h.attrs {
		msg += " " + a.String()
	}
	r.Attrs(func(a slog.Attr) bool {
		msg += " " + a.String()
		return true
	})
	var method string
	switch {
	case r.Level >= slog.LevelError:
		method = "error"
	case r.Level >= slog.LevelWarn:
		method = "warn"
	case r.Level >= slog.LevelInfo:
		method = "info"
	default:
		method = "debug"
	}
	h.console.Call(method, msg)
	return nil
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	n := &consoleHandler{console: h.console, level: h.level}
	n.attrs = append(append(n.attrs, h.attrs...), attrs...)
	return n
}

// WithGroup is accepted but groups are flattened in console output.
func (h *consoleHandler) WithGroup(string) slog.Handler {
	return h
}
