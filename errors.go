// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import "errors"

// Engine errors.
var (
	// ErrNoDriver is returned by New when no window driver is configured.
	ErrNoDriver = errors.New("engine: no window driver configured")

	// ErrNoConstruct is returned by New when no renderer construction
	// routine is configured.
	ErrNoConstruct = errors.New("engine: no renderer construction configured")

	// ErrLifecycleShared is the panic value of Run when other references
	// to the Engine are still outstanding.
	ErrLifecycleShared = errors.New("engine: Run called while other references are outstanding")

	// ErrLifecycleConsumed is the panic value of Run when the event loop
	// was already taken by an earlier Run.
	ErrLifecycleConsumed = errors.New("engine: event loop already consumed")

	// ErrReleased is the panic value of Retain and Release on an Engine
	// whose last reference was already released.
	ErrReleased = errors.New("engine: lifecycle already released")

	// ErrSignalSpent is returned when a CompletionSignal is used twice.
	ErrSignalSpent = errors.New("engine: completion signal already used")

	// ErrNoRenderer is used to fail the completion signal when a
	// construction routine returns without sending a result.
	ErrNoRenderer = errors.New("engine: construction finished without a renderer")

	// ErrNilRenderer is used to fail the completion signal when a
	// construction routine sends a nil renderer.
	ErrNilRenderer = errors.New("engine: nil renderer")

	// ErrRendererConstruction wraps the failure reported through the
	// completion signal. Run returns it.
	ErrRendererConstruction = errors.New("engine: renderer construction failed")

	// ErrInvalidLogLevel is returned by Run on native targets when the log
	// level environment variable holds an unknown value.
	ErrInvalidLogLevel = errors.New("engine: invalid log level")

	// ErrWindowCreation wraps window creation failures. Run returns it.
	ErrWindowCreation = errors.New("engine: window creation failed")
)
