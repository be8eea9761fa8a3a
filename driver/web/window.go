// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build js && wasm

package web

import (
	"sync"
	"syscall/js"

	"github.com/gogpu/engine/loop"
)

// Window is an HTML canvas.
type Window struct {
	driver *Driver
	id     loop.WindowID
	title  string
	canvas js.Value
	ctx2d  js.Value

	mu     sync.Mutex
	size   loop.Size
	redraw bool
}

var _ loop.Window = (*Window)(nil)

// ID returns the window identifier.
func (w *Window) ID() loop.WindowID { return w.id }

// Title returns the document title set for the window.
func (w *Window) Title() string { return w.title }

// InnerSize returns the canvas size in pixels.
func (w *Window) InnerSize() loop.Size {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

// RequestRedraw schedules a redraw on the next animation frame.
func (w *Window) RequestRedraw() {
	w.mu.Lock()
	w.redraw = true
	w.mu.Unlock()
	w.driver.Wake()
}

// Canvas returns the canvas element.
func (w *Window) Canvas() js.Value {
	return w.canvas
}

// Context2D returns the canvas 2D rendering context.
func (w *Window) Context2D() js.Value {
	return w.ctx2d
}

// resize sets the canvas backing size and reports whether it changed.
func (w *Window) resize(s loop.Size) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.size == s {
		return false
	}
	w.size = s
	w.canvas.Set("width", s.Width)
	w.canvas.Set("height", s.Height)
	return true
}

func (w *Window) redrawPending() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.redraw
}

func (w *Window) takeRedraw() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	r := w.redraw
	w.redraw = false
	return r
}
