// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package headless provides a scripted window system without any OS
// window. It is used in tests and for running the engine in CI.
//
// Events are injected with Activate, Send, Resize and Close from any
// goroutine and delivered by Run on the loop goroutine in injection
// order. Windows record redraw requests; a pending request turns into a
// RedrawRequested event on the next iteration.
package headless

import (
	"sync"
	"time"

	"github.com/gogpu/engine/loop"
)

// Name is the registry name of the headless driver.
const Name = "headless"

// DefaultFrameInterval is how long Run waits per iteration in Poll mode.
const DefaultFrameInterval = time.Millisecond

// Option configures a Driver.
type Option func(*options)

type options struct {
	activations   int
	exitWhenIdle  bool
	frameInterval time.Duration
	createErr     error
	initialSize   loop.Size
}

// WithActivations sets how many activation signals Run delivers before
// processing injected events. The default is 1; 0 models a platform
// that never activates.
func WithActivations(n int) Option {
	return func(o *options) {
		o.activations = n
	}
}

// WithExitWhenIdle makes Run return once no injected events or redraws
// are pending, even if the handler did not exit.
func WithExitWhenIdle() Option {
	return func(o *options) {
		o.exitWhenIdle = true
	}
}

// WithFrameInterval sets the Poll-mode iteration interval.
func WithFrameInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.frameInterval = d
		}
	}
}

// WithCreateError makes every CreateWindow call fail with err.
func WithCreateError(err error) Option {
	return func(o *options) {
		o.createErr = err
	}
}

// WithInitialSize overrides the size requested by window attributes,
// the way a platform may pick its own initial size.
func WithInitialSize(s loop.Size) Option {
	return func(o *options) {
		o.initialSize = s
	}
}

type item struct {
	resume bool
	ev     loop.WindowEvent
}

// Driver is a headless loop.Driver. The zero value is not usable; call New.
type Driver struct {
	opts   options
	notify chan struct{}

	mu      sync.Mutex
	queue   []item
	windows []*Window
	nextID  loop.WindowID
}

var _ loop.Driver = (*Driver)(nil)

// New creates a headless driver.
func New(opts ...Option) *Driver {
	o := options{
		activations:   1,
		frameInterval: DefaultFrameInterval,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Driver{
		opts:   o,
		notify: make(chan struct{}, 1),
	}
}

// Name returns "headless".
func (d *Driver) Name() string {
	return Name
}

// Wake interrupts a blocked Run.
func (d *Driver) Wake() {
	select {
	case d.notify <- struct{}{}:
	default:
	}
}

// CreateWindow records and returns a new headless window.
func (d *Driver) CreateWindow(attrs loop.WindowAttributes) (loop.Window, error) {
	if d.opts.createErr != nil {
		return nil, d.opts.createErr
	}
	size := attrs.Size
	if !d.opts.initialSize.IsZero() {
		size = d.opts.initialSize
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	w := &Window{
		driver: d,
		id:     d.nextID,
		title:  attrs.Title,
		size:   size,
	}
	d.windows = append(d.windows, w)
	return w, nil
}

// Windows returns the windows created so far.
func (d *Driver) Windows() []*Window {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]*Window, len(d.windows))
	copy(out, d.windows)
	return out
}

// Activate injects an activation signal.
func (d *Driver) Activate() {
	d.push(item{resume: true})
}

// Send injects a window event for the most recent window. Before any
// window exists the event carries WindowID 0.
func (d *Driver) Send(ev loop.WindowEvent) {
	d.push(item{ev: ev})
}

// Resize changes the current window's size, then injects Resized.
func (d *Driver) Resize(s loop.Size) {
	if w := d.current(); w != nil {
		w.setSize(s)
	}
	d.Send(loop.Resized{Size: s})
}

// Close injects CloseRequested.
func (d *Driver) Close() {
	d.Send(loop.CloseRequested{})
}

// Run delivers the configured activations, then injected events, proxy
// events and redraws until the handler exits.
func (d *Driver) Run(p loop.Pump) error {
	for range d.opts.activations {
		p.Resumed()
	}
	for {
		p.AboutToWait()
		if p.Exiting() {
			return nil
		}

		items := d.take()
		for _, it := range items {
			if it.resume {
				p.Resumed()
			} else {
				p.WindowEvent(d.currentID(), it.ev)
			}
			p.AboutToWait()
			if p.Exiting() {
				return nil
			}
		}

		redraws := 0
		for _, w := range d.Windows() {
			if w.takeRedraw() {
				redraws++
				p.WindowEvent(w.id, loop.RedrawRequested{})
				if p.Exiting() {
					return nil
				}
			}
		}

		if d.opts.exitWhenIdle && len(items) == 0 && redraws == 0 && !d.pending() {
			p.AboutToWait()
			if !d.pending() {
				return nil
			}
			continue
		}
		d.wait(p.ControlFlow())
	}
}

func (d *Driver) wait(cf loop.ControlFlow) {
	if d.pending() {
		return
	}
	if cf == loop.Wait {
		<-d.notify
		return
	}
	t := time.NewTimer(d.opts.frameInterval)
	defer t.Stop()
	select {
	case <-d.notify:
	case <-t.C:
	}
}

func (d *Driver) push(it item) {
	d.mu.Lock()
	d.queue = append(d.queue, it)
	d.mu.Unlock()
	d.Wake()
}

func (d *Driver) take() []item {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := d.queue
	d.queue = nil
	return out
}

// pending reports queued events or redraw requests.
func (d *Driver) pending() bool {
	d.mu.Lock()
	n := len(d.queue)
	windows := d.windows
	d.mu.Unlock()
	if n > 0 {
		return true
	}
	for _, w := range windows {
		if w.redrawPending() {
			return true
		}
	}
	return false
}

func (d *Driver) current() *Window {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.windows) == 0 {
		return nil
	}
	return d.windows[len(d.windows)-1]
}

func (d *Driver) currentID() loop.WindowID {
	if w := d.current(); w != nil {
		return w.id
	}
	return 0
}
