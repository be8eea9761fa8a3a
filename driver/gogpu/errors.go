// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !js

package gogpu

import "errors"

// Package errors for the gogpu driver.
var (
	// ErrWindowExists is returned when a second window is requested.
	// gogpu drives exactly one window per App.
	ErrWindowExists = errors.New("gogpu: window already created")

	// ErrNoDevice is returned when a window is requested before the GPU
	// device is available.
	ErrNoDevice = errors.New("gogpu: device not available")
)
