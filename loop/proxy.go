// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package loop

import "sync"

// Proxy sends user events into a running loop from any goroutine.
//
// Events are queued and delivered on the loop goroutine during the next
// AboutToWait, in send order.
type Proxy[T any] struct {
	mu     sync.Mutex
	queue  []T
	closed bool
	wake   func()
}

func newProxy[T any](wake func()) *Proxy[T] {
	return &Proxy[T]{wake: wake}
}

// Send queues ev and wakes the driver.
// Returns ErrLoopClosed once the loop has exited.
func (p *Proxy[T]) Send(ev T) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrLoopClosed
	}
	p.queue = append(p.queue, ev)
	p.mu.Unlock()

	if p.wake != nil {
		p.wake()
	}
	return nil
}

// Pending returns the number of queued events.
func (p *Proxy[T]) Pending() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queue)
}

// drain removes and returns all queued events.
func (p *Proxy[T]) drain() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.queue) == 0 {
		return nil
	}
	out := p.queue
	p.queue = nil
	return out
}

// close rejects further sends and returns whatever was still queued.
func (p *Proxy[T]) close() []T {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	out := p.queue
	p.queue = nil
	return out
}
