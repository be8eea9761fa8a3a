// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !js

package term

import (
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/engine/loop"
)

// Window is the terminal screen seen as a window of half-block pixels.
type Window struct {
	driver *Driver
	screen tcell.Screen
	id     loop.WindowID
	title  string

	mu       sync.Mutex
	size     loop.Size
	redraw   bool
	requests int
}

var _ loop.Window = (*Window)(nil)

// ID returns the window identifier.
func (w *Window) ID() loop.WindowID { return w.id }

// Title returns the window title.
func (w *Window) Title() string { return w.title }

// InnerSize returns the size in pixels: columns by twice the rows.
func (w *Window) InnerSize() loop.Size {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

// RequestRedraw schedules a redraw on the next frame tick.
func (w *Window) RequestRedraw() {
	w.mu.Lock()
	w.redraw = true
	w.requests++
	w.mu.Unlock()
	w.driver.Wake()
}

// RedrawRequests returns how many times RequestRedraw was called.
func (w *Window) RedrawRequests() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.requests
}

// Screen returns the tcell screen to draw on.
func (w *Window) Screen() tcell.Screen {
	return w.screen
}

func (w *Window) setSize(s loop.Size) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.size == s {
		return false
	}
	w.size = s
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
