// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build js && wasm

// Package web provides a window driver for the browser: the window is an
// HTML canvas and the loop is paced by requestAnimationFrame.
//
// The driver implements loop.Spawner. Spawn registers DOM listeners and
// the first animation frame, then returns so the browser keeps running
// its own event loop; every later step happens in browser callbacks.
package web

import (
	"errors"
	"sync"
	"syscall/js"

	"github.com/gogpu/engine"
	"github.com/gogpu/engine/loop"
)

// Name is the registry name of the browser driver.
const Name = "web"

const windowID loop.WindowID = 1

// Driver errors.
var (
	// ErrWindowExists is returned when a second window is requested.
	ErrWindowExists = errors.New("web: canvas already in use")

	// ErrNoDocument is returned outside a browser page.
	ErrNoDocument = errors.New("web: no document")
)

// Option configures a Driver.
type Option func(*options)

type options struct {
	canvasID   string
	fillWindow bool
}

// WithCanvasID uses the existing canvas element with the given id instead
// of creating one.
func WithCanvasID(id string) Option {
	return func(o *options) {
		o.canvasID = id
	}
}

// WithFixedSize keeps the canvas at the requested window size instead of
// following the browser window.
func WithFixedSize() Option {
	return func(o *options) {
		o.fillWindow = false
	}
}

type listener struct {
	target js.Value
	event  string
	fn     js.Func
}

// Driver is a loop.Driver and loop.Spawner for the browser.
type Driver struct {
	opts options

	mu        sync.Mutex
	win       *Window
	queue     []loop.WindowEvent
	resume    bool
	scheduled bool

	pump      loop.Pump
	done      func(error)
	frame     js.Func
	listeners []listener
}

var (
	_ loop.Driver  = (*Driver)(nil)
	_ loop.Spawner = (*Driver)(nil)
)

// New creates a browser driver.
func New(opts ...Option) *Driver {
	o := options{fillWindow: true}
	for _, opt := range opts {
		opt(&o)
	}
	return &Driver{opts: o}
}

// Name returns "web".
func (d *Driver) Name() string {
	return Name
}

// CreateWindow finds or creates the canvas and sizes it.
func (d *Driver) CreateWindow(attrs loop.WindowAttributes) (loop.Window, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.win != nil {
		return nil, ErrWindowExists
	}

	doc := js.Global().Get("document")
	if doc.IsUndefined() || doc.IsNull() {
		return nil, ErrNoDocument
	}
	var canvas js.Value
	if d.opts.canvasID != "" {
		canvas = doc.Call("getElementById", d.opts.canvasID)
	}
	if canvas.IsUndefined() || canvas.IsNull() {
		canvas = doc.Call("createElement", "canvas")
		canvas.Set("tabIndex", 0)
		doc.Get("body").Call("appendChild", canvas)
	}
	if attrs.Title != "" {
		doc.Set("title", attrs.Title)
	}

	size := attrs.Size
	if d.opts.fillWindow {
		size = viewportSize()
	}
	w := &Window{
		driver: d,
		id:     windowID,
		title:  attrs.Title,
		canvas: canvas,
		ctx2d:  canvas.Call("getContext", "2d"),
	}
	w.resize(size)
	d.win = w
	return w, nil
}

// Wake schedules an animation frame if none is pending.
func (d *Driver) Wake() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.scheduleLocked()
}

// Run spawns the loop and blocks the calling goroutine until it exits.
func (d *Driver) Run(p loop.Pump) error {
	errc := make(chan error, 1)
	d.Spawn(p, func(err error) { errc <- err })
	return <-errc
}

// Spawn starts the loop on the browser's event loop and returns.
func (d *Driver) Spawn(p loop.Pump, done func(error)) {
	d.frame = js.FuncOf(func(js.Value, []js.Value) any {
		d.step()
		return nil
	})
	d.listen()

	d.mu.Lock()
	d.pump = p
	d.done = done
	d.resume = true
	d.mu.Unlock()

	engine.Logger().Debug("web: spawned")
	d.Wake()
}

// step is one loop iteration, run from requestAnimationFrame.
func (d *Driver) step() {
	d.mu.Lock()
	d.scheduled = false
	resume := d.resume
	d.resume = false
	events := d.queue
	d.queue = nil
	p := d.pump
	d.mu.Unlock()

	if resume {
		p.Resumed()
	}
	p.AboutToWait()
	for _, ev := range events {
		if p.Exiting() {
			break
		}
		p.WindowEvent(windowID, ev)
	}
	if w := d.window(); w != nil && !p.Exiting() && w.takeRedraw() {
		p.WindowEvent(w.id, loop.RedrawRequested{})
	}

	if p.Exiting() {
		d.stop()
		return
	}
	if p.ControlFlow() == loop.Poll || d.pending() {
		d.Wake()
	}
}

// stop releases browser callbacks and reports the end of the loop.
func (d *Driver) stop() {
	for _, l := range d.listeners {
		l.target.Call("removeEventListener", l.event, l.fn)
		l.fn.Release()
	}
	d.listeners = nil
	d.frame.Release()
	engine.Logger().Debug("web: stopped")
	if d.done != nil {
		d.done(nil)
	}
}

// listen registers DOM event listeners that queue window events.
func (d *Driver) listen() {
	win := js.Global()
	d.on(win, "resize", func(js.Value) {
		w := d.window()
		if w == nil || !d.opts.fillWindow {
			return
		}
		size := viewportSize()
		if w.resize(size) {
			d.push(loop.Resized{Size: size})
		}
	})
	d.on(win, "keydown", func(ev js.Value) {
		d.push(keyEvent(ev, true))
	})
	d.on(win, "keyup", func(ev js.Value) {
		d.push(keyEvent(ev, false))
	})
	d.on(win, "focus", func(js.Value) {
		d.push(loop.Focused{Focused: true})
	})
	d.on(win, "blur", func(js.Value) {
		d.push(loop.Focused{Focused: false})
	})
	d.on(win, "pagehide", func(js.Value) {
		d.push(loop.CloseRequested{})
	})
}

func (d *Driver) on(target js.Value, event string, fn func(ev js.Value)) {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		var ev js.Value
		if len(args) > 0 {
			ev = args[0]
		}
		fn(ev)
		return nil
	})
	target.Call("addEventListener", event, f)
	d.listeners = append(d.listeners, listener{target: target, event: event, fn: f})
}

func (d *Driver) push(ev loop.WindowEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.queue = append(d.queue, ev)
	d.scheduleLocked()
}

func (d *Driver) scheduleLocked() {
	if d.scheduled || d.pump == nil {
		return
	}
	d.scheduled = true
	js.Global().Call("requestAnimationFrame", d.frame)
}

func (d *Driver) pending() bool {
	d.mu.Lock()
	n := len(d.queue)
	w := d.win
	d.mu.Unlock()
	return n > 0 || (w != nil && w.redrawPending())
}

func (d *Driver) window() *Window {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.win
}

func viewportSize() loop.Size {
	g := js.Global()
	return loop.Size{
		Width:  uint32(max(g.Get("innerWidth").Int(), 0)),
		Height: uint32(max(g.Get("innerHeight").Int(), 0)),
	}
}

func keyEvent(ev js.Value, pressed bool) loop.WindowEvent {
	key := ev.Get("key").String()
	k := loop.KeyboardInput{Key: key, Pressed: pressed}
	if r := []rune(key); len(r) == 1 {
		k.Rune = r[0]
	}
	return k
}
