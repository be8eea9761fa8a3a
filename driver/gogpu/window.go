// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !js

package gogpu

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/engine/loop"
)

// Window is the single gogpu window.
type Window struct {
	driver *Driver
	id     loop.WindowID
	title  string

	redraw atomic.Bool

	mu    sync.Mutex
	size  loop.Size
	frame *gogpu.Context
}

var _ loop.Window = (*Window)(nil)

// ID returns the window identifier.
func (w *Window) ID() loop.WindowID { return w.id }

// Title returns the window title.
func (w *Window) Title() string { return w.title }

// InnerSize returns the surface size seen by the last frame, or the
// requested size before the first frame.
func (w *Window) InnerSize() loop.Size {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.size
}

// RequestRedraw schedules a RedrawRequested on the next vsync.
func (w *Window) RequestRedraw() {
	w.redraw.Store(true)
	w.driver.Wake()
}

// DeviceProvider returns the GPU device shared by the window, or nil
// before the GPU is up.
func (w *Window) DeviceProvider() gpucontext.DeviceProvider {
	return w.driver.app.GPUContextProvider()
}

// TextureDrawer returns the draw target of the frame being presented.
// It is only non-nil while a RedrawRequested event is being handled.
func (w *Window) TextureDrawer() gpucontext.TextureDrawer {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.frame == nil {
		return nil
	}
	return w.frame.AsTextureDrawer()
}

// setSize stores s and reports whether it changed.
func (w *Window) setSize(s loop.Size) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.size == s {
		return false
	}
	w.size = s
	return true
}

func (w *Window) setFrame(dc *gogpu.Context) {
	w.mu.Lock()
	w.frame = dc
	w.mu.Unlock()
}
