// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import "time"

// Clock produces Info values for consecutive frames.
// It is not safe for concurrent use.
type Clock struct {
	now   func() time.Time
	start time.Time
	last  time.Time
	index uint64
}

// NewClock returns a clock reading the wall time.
func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// NewClockFunc returns a clock reading now. Useful in tests.
func NewClockFunc(now func() time.Time) *Clock {
	return &Clock{now: now}
}

// Tick advances the clock and describes the next frame of the given size.
func (c *Clock) Tick(width, height int) Info {
	t := c.now()
	info := Info{Width: width, Height: height}
	if c.start.IsZero() {
		c.start = t
	} else {
		info.Delta = t.Sub(c.last)
		info.Index = c.index
	}
	info.Elapsed = t.Sub(c.start)
	c.last = t
	c.index++
	return info
}

// Frames returns the number of ticks so far.
func (c *Clock) Frames() uint64 {
	return c.index
}
