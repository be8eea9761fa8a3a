// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !js

// Package gogpu provides a native GPU window driver built on the
// gogpu/gogpu framework.
//
// gogpu owns the OS window and the render loop. The driver translates
// its callbacks into loop events: the first frame with a live GPU device
// is the activation signal, surface size changes become Resized, pending
// redraw requests become RedrawRequested while the frame is open, and
// closing the window becomes CloseRequested.
//
// Pair it with the canvas renderer:
//
//	import _ "github.com/gogpu/engine/driver/gogpu"
package gogpu

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/engine"
	"github.com/gogpu/engine/loop"
)

// Name is the registry name of the gogpu driver.
const Name = "gogpu"

const windowID loop.WindowID = 1

// Driver is a loop.Driver backed by a gogpu.App.
//
// gogpu renders continuously, so the loop is pumped once per vsync
// whatever the control flow. RedrawRequested is still only delivered
// after Window.RequestRedraw.
type Driver struct {
	app   *gogpu.App
	attrs loop.WindowAttributes

	win     *Window
	resumed bool
	quit    atomic.Bool

	mu    sync.Mutex
	input []loop.WindowEvent
}

var _ loop.Driver = (*Driver)(nil)

// New creates the gogpu application for a window with attrs.
// The OS window appears when Run starts.
func New(attrs loop.WindowAttributes) *Driver {
	attrs = attrs.WithDefaults()
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(attrs.Title).
		WithSize(int(attrs.Size.Width), int(attrs.Size.Height)).
		WithContinuousRender(true))
	return &Driver{app: app, attrs: attrs}
}

// Name returns "gogpu".
func (d *Driver) Name() string {
	return Name
}

// App returns the underlying gogpu application.
func (d *Driver) App() *gogpu.App {
	return d.app
}

// Wake is a no-op: gogpu pumps the loop every frame.
func (d *Driver) Wake() {}

// CreateWindow returns the gogpu window. gogpu has exactly one window,
// sized and titled when the driver was created; attrs is ignored.
func (d *Driver) CreateWindow(loop.WindowAttributes) (loop.Window, error) {
	if d.win != nil {
		return nil, ErrWindowExists
	}
	if d.app.GPUContextProvider() == nil {
		return nil, ErrNoDevice
	}
	d.win = &Window{
		driver: d,
		id:     windowID,
		title:  d.attrs.Title,
		size:   d.attrs.Size,
	}
	return d.win, nil
}

// Run opens the window and blocks until it closes.
func (d *Driver) Run(p loop.Pump) error {
	d.app.OnDraw(func(dc *gogpu.Context) {
		d.frame(p, dc)
	})
	events := d.app.EventSource()
	events.OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		d.queueInput(keyEvent(key, true))
	})
	events.OnKeyRelease(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		d.queueInput(keyEvent(key, false))
	})
	events.OnFocus(func(focused bool) {
		d.queueInput(loop.Focused{Focused: focused})
	})
	d.app.OnClose(d.closeRequested)

	engine.Logger().Debug("gogpu: running", "title", d.attrs.Title, "size", d.attrs.Size.String())
	return d.app.Run()
}

// frame pumps one loop iteration inside gogpu's draw callback.
func (d *Driver) frame(p loop.Pump, dc *gogpu.Context) {
	if d.quit.Load() {
		return
	}
	if !d.resumed {
		if d.app.GPUContextProvider() == nil {
			return
		}
		d.resumed = true
		p.Resumed()
	}

	p.AboutToWait()
	for _, ev := range d.takeInput() {
		if p.Exiting() {
			break
		}
		p.WindowEvent(windowID, ev)
	}

	if w := d.win; w != nil && !p.Exiting() {
		size := loop.Size{Width: uint32(max(dc.Width(), 0)), Height: uint32(max(dc.Height(), 0))}
		if !size.IsZero() && w.setSize(size) {
			p.WindowEvent(w.id, loop.Resized{Size: size})
		}
		if w.redraw.Swap(false) && !p.Exiting() {
			w.setFrame(dc)
			p.WindowEvent(w.id, loop.RedrawRequested{})
			w.setFrame(nil)
		}
	}

	if p.Exiting() && d.quit.CompareAndSwap(false, true) {
		engine.Logger().Debug("gogpu: quitting")
		d.app.Quit()
	}
}

// closeRequested queues CloseRequested for the next frame. Once the
// driver has quit there is no frame left to deliver it.
func (d *Driver) closeRequested() {
	if d.quit.Load() {
		return
	}
	d.queueInput(loop.CloseRequested{})
}

// queueInput holds ev until the next frame; gogpu may call input
// callbacks outside the draw callback.
func (d *Driver) queueInput(ev loop.WindowEvent) {
	d.mu.Lock()
	d.input = append(d.input, ev)
	d.mu.Unlock()
}

func (d *Driver) takeInput() []loop.WindowEvent {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := d.input
	d.input = nil
	return out
}
