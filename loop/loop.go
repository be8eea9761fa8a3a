// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package loop

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
)

// Option configures an EventLoop during creation.
type Option func(*options)

type options struct {
	flow   ControlFlow
	logger *slog.Logger
}

func defaultOptions() options {
	return options{
		flow:   Poll,
		logger: slog.New(discardHandler{}),
	}
}

// WithControlFlow sets the initial control flow. The default is Poll.
func WithControlFlow(cf ControlFlow) Option {
	return func(o *options) {
		o.flow = cf
	}
}

// WithLogger sets the logger used for loop diagnostics.
// A nil logger keeps the default, which discards output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// EventLoop couples a platform driver with a user-event queue.
type EventLoop[T any] struct {
	driver  Driver
	flow    ControlFlow
	proxy   *Proxy[T]
	log     *slog.Logger
	started atomic.Bool
}

// New creates an event loop driven by d.
func New[T any](d Driver, opts ...Option) (*EventLoop[T], error) {
	if d == nil {
		return nil, ErrNilDriver
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	el := &EventLoop[T]{
		driver: d,
		flow:   o.flow,
		log:    o.logger.With("driver", d.Name()),
	}
	el.proxy = newProxy[T](d.Wake)
	return el, nil
}

// Driver returns the platform driver.
func (el *EventLoop[T]) Driver() Driver {
	return el.driver
}

// ControlFlow returns the control flow the loop will start with.
func (el *EventLoop[T]) ControlFlow() ControlFlow {
	return el.flow
}

// SetControlFlow sets the control flow before the loop starts.
// Inside callbacks use ActiveEventLoop.SetControlFlow.
func (el *EventLoop[T]) SetControlFlow(cf ControlFlow) {
	el.flow = cf
}

// SetLogger replaces the diagnostics logger. Call it before the loop
// starts; a nil logger is ignored.
func (el *EventLoop[T]) SetLogger(l *slog.Logger) {
	if l != nil {
		el.log = l.With("driver", el.driver.Name())
	}
}

// CreateProxy returns the proxy for sending user events into this loop.
// All proxies of a loop share one queue.
func (el *EventLoop[T]) CreateProxy() *Proxy[T] {
	return el.proxy
}

// Run drives the loop on the calling goroutine until the handler exits.
//
// Run returns the error passed to ExitWithError, a wrapped driver error,
// or ErrLoopConsumed if the loop was already started.
func (el *EventLoop[T]) Run(h Handler[T]) error {
	if !el.started.CompareAndSwap(false, true) {
		return ErrLoopConsumed
	}
	r := newRun(el, h)
	el.log.Debug("loop: running", "flow", el.flow.String())
	err := el.driver.Run(r)
	return r.finish(err)
}

// Spawn hands the loop to the driver's host and returns immediately.
// done, if non-nil, receives the same value Run would have returned.
//
// Drivers implementing Spawner are scheduled by their host. Other
// drivers run on a new goroutine.
func (el *EventLoop[T]) Spawn(h Handler[T], done func(error)) error {
	if !el.started.CompareAndSwap(false, true) {
		return ErrLoopConsumed
	}
	r := newRun(el, h)
	finish := func(err error) {
		err = r.finish(err)
		if done != nil {
			done(err)
		}
	}
	if sp, ok := el.driver.(Spawner); ok {
		el.log.Debug("loop: spawned on host", "flow", el.flow.String())
		sp.Spawn(r, finish)
		return nil
	}
	el.log.Debug("loop: spawned on goroutine", "flow", el.flow.String())
	go func() {
		finish(el.driver.Run(r))
	}()
	return nil
}

// run is one execution of an EventLoop. It implements both Pump (for the
// driver) and ActiveEventLoop (for the handler).
type run[T any] struct {
	el      *EventLoop[T]
	h       Handler[T]
	flow    ControlFlow
	exiting bool
	exitErr error
	ctx     context.Context
	cancel  context.CancelFunc

	// skipped holds user events drained after exit was requested.
	skipped []T
}

func newRun[T any](el *EventLoop[T], h Handler[T]) *run[T] {
	ctx, cancel := context.WithCancel(context.Background())
	return &run[T]{
		el:     el,
		h:      h,
		flow:   el.flow,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Context returns a context cancelled when the loop exits.
func (r *run[T]) Context() context.Context {
	return r.ctx
}

func (r *run[T]) Resumed() {
	if r.exiting {
		return
	}
	r.h.Resumed(r)
}

func (r *run[T]) WindowEvent(id WindowID, ev WindowEvent) {
	if r.exiting {
		r.el.log.Debug("loop: event after exit dropped", "window", id, "event", fmt.Sprintf("%T", ev))
		return
	}
	r.h.WindowEvent(r, id, ev)
}

func (r *run[T]) AboutToWait() {
	events := r.el.proxy.drain()
	for i, ev := range events {
		if r.exiting {
			r.skipped = append(r.skipped, events[i:]...)
			return
		}
		r.h.UserEvent(r, ev)
	}
}

func (r *run[T]) ControlFlow() ControlFlow {
	return r.flow
}

func (r *run[T]) SetControlFlow(cf ControlFlow) {
	r.flow = cf
}

func (r *run[T]) Exiting() bool {
	return r.exiting
}

func (r *run[T]) Exit() {
	if !r.exiting {
		r.el.log.Debug("loop: exit requested")
	}
	r.exiting = true
}

func (r *run[T]) ExitWithError(err error) {
	if r.exitErr == nil {
		r.exitErr = err
	}
	r.Exit()
}

func (r *run[T]) CreateWindow(attrs WindowAttributes) (Window, error) {
	w, err := r.el.driver.CreateWindow(attrs.WithDefaults())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWindowCreation, err)
	}
	r.el.log.Debug("loop: window created", "window", w.ID(), "size", w.InnerSize().String())
	return w, nil
}

// finish closes the proxy, hands undelivered user events back to the
// handler, notifies it and computes Run's result.
func (r *run[T]) finish(driverErr error) error {
	r.exiting = true
	undelivered := append(r.skipped, r.el.proxy.close()...)
	r.skipped = nil
	r.cancel()
	if len(undelivered) > 0 {
		r.el.log.Debug("loop: user events undelivered at exit", "count", len(undelivered))
		if dh, ok := r.h.(DiscardHandler[T]); ok {
			for _, ev := range undelivered {
				dh.Discard(ev)
			}
		}
	}
	if eh, ok := r.h.(ExitHandler); ok {
		eh.Exiting(r)
	}
	if driverErr != nil {
		return fmt.Errorf("%w: %w", ErrDriver, driverErr)
	}
	return r.exitErr
}

// discardHandler is a slog.Handler that drops every record.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }
