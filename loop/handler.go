// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package loop

import "context"

// Handler receives event loop callbacks. T is the user-event type carried
// by the loop's Proxy.
type Handler[T any] interface {
	// Resumed is called when the platform allows window creation.
	// It may be called more than once.
	Resumed(el ActiveEventLoop)

	// UserEvent is called for each value sent through the Proxy, in send
	// order.
	UserEvent(el ActiveEventLoop, ev T)

	// WindowEvent is called for each event of a window created through el.
	WindowEvent(el ActiveEventLoop, id WindowID, ev WindowEvent)
}

// ExitHandler is implemented by handlers that need to release resources
// when the loop stops. Exiting is called once, after the driver returned.
type ExitHandler interface {
	Exiting(el ActiveEventLoop)
}

// DiscardHandler is implemented by handlers whose user events carry
// resources. After the driver returned, Discard is called once for every
// user event that was sent but never reached UserEvent, in send order.
type DiscardHandler[T any] interface {
	Discard(ev T)
}

// ActiveEventLoop is the loop as seen from inside a handler callback.
type ActiveEventLoop interface {
	// CreateWindow asks the driver for a new window.
	CreateWindow(attrs WindowAttributes) (Window, error)

	// ControlFlow returns the current control flow.
	ControlFlow() ControlFlow

	// SetControlFlow changes the control flow for subsequent iterations.
	SetControlFlow(cf ControlFlow)

	// Exit stops the loop after the current callback returns.
	Exit()

	// ExitWithError stops the loop; Run returns err. The first error wins.
	ExitWithError(err error)

	// Exiting reports whether Exit or ExitWithError was called.
	Exiting() bool

	// Context returns a context that is cancelled when the loop exits.
	Context() context.Context
}
