// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"sync"

	"github.com/gogpu/engine/loop"
)

// Engine owns one event loop and one App and runs them exactly once.
//
// Go has no ownership types, so Engine counts its references instead:
// New returns the only reference, Retain adds one, Release drops one.
// Run requires being the sole reference and panics otherwise, so the
// lifecycle cannot be started while someone else may still mutate it.
type Engine struct {
	mu        sync.Mutex
	refs      int
	eventLoop *loop.EventLoop[readyEvent]
	app       *App
	opts      options
}

// New creates the event loop in polling mode and the App waiting for its
// renderer, with a completion signal bound to the loop's proxy.
//
// Returns ErrNoDriver or ErrNoConstruct when required options are missing.
func New(opts ...Option) (*Engine, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.driver == nil {
		return nil, ErrNoDriver
	}
	if o.construct == nil {
		return nil, ErrNoConstruct
	}

	el, err := loop.New[readyEvent](o.driver, loop.WithControlFlow(o.flow))
	if err != nil {
		return nil, err
	}
	signal := newCompletionSignal(el.CreateProxy())

	return &Engine{
		refs:      1,
		eventLoop: el,
		app:       newApp(signal, o.window, o.construct),
		opts:      o,
	}, nil
}

// MustNew is like New but panics on error.
// Use only when errors are programming mistakes (e.g., missing options).
func MustNew(opts ...Option) *Engine {
	e, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return e
}

// App returns the application state machine.
// Inspect it only from the loop goroutine or after Run returned.
func (e *Engine) App() *App {
	return e.app
}

// Retain adds a reference and returns e.
func (e *Engine) Retain() *Engine {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.refs == 0 {
		panic(ErrReleased)
	}
	e.refs++
	return e
}

// Release drops a reference obtained from New or Retain.
func (e *Engine) Release() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.refs == 0 {
		panic(ErrReleased)
	}
	e.refs--
}

// Run moves the event loop out of e and hands it, with the App, to the
// platform runner.
//
// On native targets Run blocks until the loop exits and returns its
// error. In the browser Run returns nil right after scheduling the loop
// on the host; later failures are logged.
//
// Run panics with ErrLifecycleShared if other references are outstanding
// and with ErrLifecycleConsumed if the loop already ran.
func (e *Engine) Run() error {
	e.mu.Lock()
	switch {
	case e.refs == 0:
		e.mu.Unlock()
		panic(ErrReleased)
	case e.refs > 1:
		e.mu.Unlock()
		panic(ErrLifecycleShared)
	case e.eventLoop == nil:
		e.mu.Unlock()
		panic(ErrLifecycleConsumed)
	}
	el := e.eventLoop
	e.eventLoop = nil
	e.mu.Unlock()

	return runApp(el, e.app, e.opts)
}
