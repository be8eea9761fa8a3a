// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package headless

import (
	"sync"

	"github.com/gogpu/engine/loop"
)

// Window is a headless window. Size changes and redraw requests are
// recorded so tests can inspect them.
type Window struct {
	driver *Driver
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

// InnerSize returns the current size.
func (w *Window) InnerSize() loop.Size {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

// RequestRedraw marks a redraw as pending and wakes the driver.
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

func (w *Window) setSize(s loop.Size) {
	w.mu.Lock()
	w.size = s
	w.mu.Unlock()
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
