// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package loop

import "fmt"

// ControlFlow selects how the driver waits between iterations.
type ControlFlow uint8

const (
	// Poll iterates continuously, whether or not events are pending.
	Poll ControlFlow = iota

	// Wait blocks until an OS event arrives or the loop is woken.
	Wait
)

// String returns the control flow name.
func (cf ControlFlow) String() string {
	switch cf {
	case Poll:
		return "poll"
	case Wait:
		return "wait"
	default:
		return fmt.Sprintf("ControlFlow(%d)", uint8(cf))
	}
}

// Size is a physical surface size in pixels.
type Size struct {
	Width  uint32
	Height uint32
}

// IsZero reports whether either dimension is zero.
func (s Size) IsZero() bool {
	return s.Width == 0 || s.Height == 0
}

// String formats the size as WxH.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// WindowID identifies a window created by a driver.
type WindowID uint64

// WindowEvent is an event delivered for a single window.
//
// The set of events is closed: only the types declared in this package
// implement WindowEvent.
type WindowEvent interface {
	windowEvent()
}

// Resized reports a new physical inner size.
type Resized struct {
	Size Size
}

// RedrawRequested asks the handler to present a frame.
type RedrawRequested struct{}

// CloseRequested reports that the user asked to close the window.
type CloseRequested struct{}

// Focused reports a focus change.
type Focused struct {
	Focused bool
}

// KeyboardInput reports a key press or release.
// Key is the driver's name for the key; Rune is set for printable keys.
type KeyboardInput struct {
	Key     string
	Rune    rune
	Pressed bool
}

func (Resized) windowEvent()         {}
func (RedrawRequested) windowEvent() {}
func (CloseRequested) windowEvent()  {}
func (Focused) windowEvent()         {}
func (KeyboardInput) windowEvent()   {}
