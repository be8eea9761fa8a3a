// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package headless

import (
	"context"
	"sync"

	"github.com/gogpu/engine/loop"
)

// Renderer records every call made to it. It stands in for a GPU
// renderer in tests and headless runs.
type Renderer struct {
	win     loop.Window
	initial loop.Size

	mu       sync.Mutex
	draws    int
	resizes  []loop.Size
	requests int
	closed   bool
}

// NewRenderer builds a Renderer for win, sized from the window's current
// inner size. Its signature matches engine.Build.
func NewRenderer(_ context.Context, win loop.Window) (*Renderer, error) {
	return &Renderer{win: win, initial: win.InnerSize()}, nil
}

// Draw counts a frame.
func (r *Renderer) Draw() {
	r.mu.Lock()
	r.draws++
	r.mu.Unlock()
}

// Resize records size.
func (r *Renderer) Resize(size loop.Size) {
	r.mu.Lock()
	r.resizes = append(r.resizes, size)
	r.mu.Unlock()
}

// RequestRedraw counts the request and forwards it to the window.
func (r *Renderer) RequestRedraw() {
	r.mu.Lock()
	r.requests++
	r.mu.Unlock()
	r.win.RequestRedraw()
}

// Close marks the renderer released.
func (r *Renderer) Close() error {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	return nil
}

// InitialSize returns the window size captured at construction.
func (r *Renderer) InitialSize() loop.Size { return r.initial }

// Draws returns the number of Draw calls.
func (r *Renderer) Draws() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.draws
}

// Resizes returns the sizes passed to Resize, in order.
func (r *Renderer) Resizes() []loop.Size {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]loop.Size(nil), r.resizes...)
}

// RedrawRequests returns the number of RequestRedraw calls.
func (r *Renderer) RedrawRequests() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.requests
}

// Closed reports whether Close was called.
func (r *Renderer) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}
