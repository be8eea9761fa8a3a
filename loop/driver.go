// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package loop

// Driver is a platform window system.
//
// A driver translates OS events into Pump calls on a single goroutine.
// Implementations live in the driver/ packages (gogpu, term, web,
// headless).
type Driver interface {
	// Name returns the driver identifier (e.g., "gogpu", "term").
	Name() string

	// CreateWindow creates a window. It is only called from within a Pump
	// callback, on the driver goroutine.
	CreateWindow(attrs WindowAttributes) (Window, error)

	// Run drives the platform loop on the calling goroutine and returns
	// after p.Exiting() reports true, or with an error if the platform
	// fails. Each iteration must call p.AboutToWait so proxy events are
	// delivered, and must honour p.ControlFlow().
	Run(p Pump) error

	// Wake interrupts a driver blocked in Wait mode so that queued proxy
	// events are delivered. Safe to call from any goroutine.
	Wake()
}

// Spawner is implemented by drivers whose host owns the event loop
// (for example a browser). Spawn registers the pump with the host and
// returns immediately; done is called once the loop has exited.
type Spawner interface {
	Spawn(p Pump, done func(error))
}

// Pump is the driver-facing side of a running EventLoop.
type Pump interface {
	// Resumed delivers the platform activation signal.
	Resumed()

	// WindowEvent delivers an event for the window with the given ID.
	// Events arriving after exit was requested are dropped.
	WindowEvent(id WindowID, ev WindowEvent)

	// AboutToWait delivers queued proxy events. Drivers call it once per
	// iteration, before deciding whether to block.
	AboutToWait()

	// ControlFlow returns the current control flow.
	ControlFlow() ControlFlow

	// Exiting reports whether the handler asked the loop to exit.
	Exiting() bool
}
