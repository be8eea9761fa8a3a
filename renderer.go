// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"context"

	"github.com/gogpu/engine/loop"
)

// Renderer is the render context handle produced by a Construct routine.
//
// All methods are called on the event loop goroutine once the renderer
// has been delivered. Renderers that hold GPU or terminal resources
// should also implement io.Closer; the engine closes them when the loop
// exits.
type Renderer interface {
	// Draw renders and presents one frame. Failures are the renderer's
	// to report; the engine does not inspect them.
	Draw()

	// Resize reconfigures the presentation surface.
	Resize(size loop.Size)

	// RequestRedraw asks the platform to deliver a redraw soon,
	// usually by calling Window.RequestRedraw.
	RequestRedraw()
}

// Construct builds a Renderer for win and hands it over through done.
//
// A construction routine must call done.Send or done.Fail exactly once.
// It may block while it acquires devices and surfaces: on native targets
// the engine waits for it inside the activation callback, in the browser
// it runs on its own goroutine. ctx is cancelled when the loop exits.
type Construct func(ctx context.Context, win loop.Window, done *CompletionSignal)

// Build adapts a plain constructor to a Construct routine: a non-nil
// error fails the signal, otherwise the renderer is sent.
//
// Example:
//
//	engine.WithConstruct(engine.Build(cells.New))
func Build[R Renderer](fn func(ctx context.Context, win loop.Window) (R, error)) Construct {
	return func(ctx context.Context, win loop.Window, done *CompletionSignal) {
		r, err := fn(ctx, win)
		if err != nil {
			_ = done.Fail(err)
			return
		}
		_ = done.Send(r)
	}
}

// runConstruct calls c and fails the signal if c forgot to use it.
func runConstruct(ctx context.Context, c Construct, win loop.Window, done *CompletionSignal) {
	defer func() {
		if !done.Spent() {
			Logger().Error("engine: construction returned without a result")
			_ = done.Fail(ErrNoRenderer)
		}
	}()
	c(ctx, win, done)
}
