// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"time"

	"github.com/gogpu/engine/loop"
)

// App is the application state machine driven by the event loop.
//
// It starts waiting for a renderer. The first activation creates the
// window and starts renderer construction; the renderer-ready event
// moves it to the ready state, after which resize and redraw events are
// forwarded to the renderer. Until then they are dropped: a renderer
// that does not exist yet cannot replay stale geometry, and the first
// frame after readiness starts from the window's current size.
//
// App implements loop.Handler, loop.ExitHandler and loop.DiscardHandler.
// All methods run on the event loop goroutine.
type App struct {
	state     state
	window    loop.Window
	attrs     loop.WindowAttributes
	construct Construct

	// dispatch runs a construction job using the platform strategy:
	// inline on native targets, on a goroutine in the browser.
	dispatch func(job func())

	now       func() time.Time
	lastFrame time.Time
	delta     time.Duration
	frames    uint64
}

var (
	_ loop.Handler[readyEvent]        = (*App)(nil)
	_ loop.ExitHandler                = (*App)(nil)
	_ loop.DiscardHandler[readyEvent] = (*App)(nil)
)

func newApp(signal *CompletionSignal, attrs loop.WindowAttributes, c Construct) *App {
	return &App{
		state:     &awaitingRenderer{signal: signal},
		attrs:     attrs,
		construct: c,
		dispatch:  dispatchConstruction,
		now:       time.Now,
	}
}

// Ready reports whether the renderer has been delivered.
func (a *App) Ready() bool {
	return a.renderer() != nil
}

// Renderer returns the live renderer, or nil while waiting for it.
func (a *App) Renderer() Renderer {
	return a.renderer()
}

// Window returns the window, or nil before the first activation.
func (a *App) Window() loop.Window {
	return a.window
}

// DeltaTime returns the time between the last two forwarded redraws.
func (a *App) DeltaTime() time.Duration {
	return a.delta
}

// Frames returns the number of redraws forwarded to the renderer.
func (a *App) Frames() uint64 {
	return a.frames
}

func (a *App) renderer() Renderer {
	switch s := a.state.(type) {
	case *awaitingRenderer:
		return nil
	case *ready:
		return s.renderer
	default:
		panic(unknownState(s))
	}
}

// Resumed handles the platform activation signal. Only the first
// activation creates a window; later ones find the signal slot empty.
func (a *App) Resumed(el loop.ActiveEventLoop) {
	switch s := a.state.(type) {
	case *awaitingRenderer:
		if s.signal == nil {
			Logger().Debug("engine: activation ignored, window already exists")
			return
		}
		signal := s.signal
		s.signal = nil

		win, err := el.CreateWindow(a.attrs)
		if err != nil {
			Logger().Error("engine: window creation failed", "err", err)
			el.ExitWithError(fmt.Errorf("%w: %w", ErrWindowCreation, err))
			return
		}
		a.window = win
		Logger().Info("engine: window created", "title", win.Title(), "size", win.InnerSize().String())

		ctx, construct := el.Context(), a.construct
		a.dispatch(func() {
			runConstruct(ctx, construct, win, signal)
		})
	case *ready:
		Logger().Debug("engine: activation ignored, renderer ready")
	default:
		panic(unknownState(s))
	}
}

// UserEvent handles the renderer-ready event.
//
// A failed construction stops the loop. A second renderer arriving while
// one is live is a protocol violation: the live renderer is kept and the
// newcomer is released, so two renderers never coexist.
func (a *App) UserEvent(el loop.ActiveEventLoop, ev readyEvent) {
	if ev.err != nil {
		Logger().Error("engine: renderer construction failed", "err", ev.err)
		el.ExitWithError(fmt.Errorf("%w: %w", ErrRendererConstruction, ev.err))
		return
	}
	switch s := a.state.(type) {
	case *awaitingRenderer:
		a.state = &ready{renderer: ev.renderer}
		Logger().Info("engine: renderer ready")
		ev.renderer.RequestRedraw()
	case *ready:
		Logger().Error("engine: duplicate renderer-ready event, keeping current renderer")
		release(ev.renderer)
	default:
		panic(unknownState(s))
	}
}

// WindowEvent forwards resize and redraw to the renderer when ready and
// drops them otherwise. Close requests exit the loop in either state.
func (a *App) WindowEvent(el loop.ActiveEventLoop, id loop.WindowID, ev loop.WindowEvent) {
	switch ev := ev.(type) {
	case loop.Resized:
		r := a.renderer()
		if r == nil {
			Logger().Debug("engine: resize dropped, renderer not ready", "size", ev.Size.String())
			return
		}
		r.Resize(ev.Size)
	case loop.RedrawRequested:
		r := a.renderer()
		if r == nil {
			Logger().Debug("engine: redraw dropped, renderer not ready")
			return
		}
		a.tick()
		r.Draw()
	case loop.CloseRequested:
		Logger().Debug("engine: close requested", "window", id)
		el.Exit()
	default:
		// Input and focus are not handled by the shell.
	}
}

// Exiting releases the renderer when the loop stops.
func (a *App) Exiting(loop.ActiveEventLoop) {
	switch s := a.state.(type) {
	case *awaitingRenderer:
		s.signal = nil
	case *ready:
		release(s.renderer)
	default:
		panic(unknownState(s))
	}
}

// Discard releases a renderer whose ready event was still queued when
// the loop stopped. It never became live, so nothing else owns it.
func (a *App) Discard(ev readyEvent) {
	if ev.renderer == nil {
		return
	}
	Logger().Debug("engine: renderer arrived during shutdown, releasing")
	release(ev.renderer)
}

func (a *App) tick() {
	now := a.now()
	if !a.lastFrame.IsZero() {
		a.delta = now.Sub(a.lastFrame)
	}
	a.lastFrame = now
	a.frames++
}
