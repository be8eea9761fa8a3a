// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"io"
	"sync/atomic"

	"github.com/gogpu/engine/loop"
)

// readyEvent is the user event carried by the engine's event loop.
// Exactly one of renderer and err is set.
type readyEvent struct {
	renderer Renderer
	err      error
}

// CompletionSignal is the single-use handoff from a construction routine
// back into the event loop. The first Send or Fail wins; later calls
// return ErrSignalSpent and deliver nothing.
//
// CompletionSignal is safe to use from any goroutine.
type CompletionSignal struct {
	proxy *loop.Proxy[readyEvent]
	spent atomic.Bool
}

func newCompletionSignal(p *loop.Proxy[readyEvent]) *CompletionSignal {
	return &CompletionSignal{proxy: p}
}

// Send delivers r as the constructed renderer.
//
// Sending a nil renderer fails the signal with ErrNilRenderer. If the
// loop already exited, r is closed when it implements io.Closer and the
// proxy error is returned.
func (s *CompletionSignal) Send(r Renderer) error {
	if r == nil {
		if err := s.Fail(ErrNilRenderer); err != nil {
			return err
		}
		return ErrNilRenderer
	}
	if !s.spent.CompareAndSwap(false, true) {
		return ErrSignalSpent
	}
	if err := s.proxy.Send(readyEvent{renderer: r}); err != nil {
		release(r)
		return err
	}
	return nil
}

// Fail reports that construction failed. The engine stops the loop and
// Run returns err wrapped in ErrRendererConstruction.
func (s *CompletionSignal) Fail(err error) error {
	if err == nil {
		err = ErrNoRenderer
	}
	if !s.spent.CompareAndSwap(false, true) {
		return ErrSignalSpent
	}
	return s.proxy.Send(readyEvent{err: err})
}

// Spent reports whether Send or Fail has been called.
func (s *CompletionSignal) Spent() bool {
	return s.spent.Load()
}

// release closes r if it owns resources.
func release(r Renderer) {
	c, ok := r.(io.Closer)
	if !ok {
		return
	}
	if err := c.Close(); err != nil {
		Logger().Warn("engine: renderer close failed", "err", err)
	}
}
