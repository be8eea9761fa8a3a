// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package loop

import "errors"

// Event loop errors.
var (
	// ErrNilDriver is returned by New when no driver is given.
	ErrNilDriver = errors.New("loop: nil driver")

	// ErrLoopConsumed is returned when Run or Spawn is called on a loop
	// that has already been started.
	ErrLoopConsumed = errors.New("loop: event loop already started")

	// ErrLoopClosed is returned by Proxy.Send after the loop has exited.
	ErrLoopClosed = errors.New("loop: event loop closed")

	// ErrDriver wraps errors reported by the platform driver.
	ErrDriver = errors.New("loop: driver failed")

	// ErrWindowCreation wraps errors from Driver.CreateWindow.
	ErrWindowCreation = errors.New("loop: window creation failed")
)
