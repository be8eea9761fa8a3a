// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !js

// Package term provides a window driver that uses the terminal as its
// only window, through tcell.
//
// A terminal cell holds two vertically stacked pixels (the upper and
// lower half block), so a window on an 80x25 terminal is 80x50 pixels.
// The terminal is active from the start: Run delivers one activation
// signal, and the screen is initialized when the window is created.
//
// Esc and Ctrl-C request a close; other keys are delivered as
// KeyboardInput. Redraws are paced by the frame interval.
package term

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/engine"
	"github.com/gogpu/engine/loop"
)

// Name is the registry name of the terminal driver.
const Name = "term"

// DefaultFrameInterval paces redraws at 30 frames per second.
const DefaultFrameInterval = time.Second / 30

const windowID loop.WindowID = 1

// Driver errors.
var (
	// ErrWindowExists is returned when a second window is requested.
	ErrWindowExists = errors.New("term: the terminal is already in use")

	// ErrScreen wraps terminal initialization failures.
	ErrScreen = errors.New("term: screen initialization failed")
)

// Option configures a Driver.
type Option func(*options)

type options struct {
	newScreen     func() (tcell.Screen, error)
	frameInterval time.Duration
}

// WithScreen uses s instead of the process terminal. s is initialized by
// CreateWindow and finalized when Run returns.
//
// Example with a simulated terminal:
//
//	d := term.New(term.WithScreen(tcell.NewSimulationScreen("UTF-8")))
func WithScreen(s tcell.Screen) Option {
	return func(o *options) {
		o.newScreen = func() (tcell.Screen, error) { return s, nil }
	}
}

// WithFrameInterval sets the minimum time between redraws.
func WithFrameInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.frameInterval = d
		}
	}
}

// Driver is a loop.Driver for a terminal.
type Driver struct {
	opts   options
	notify chan struct{}

	mu  sync.Mutex
	win *Window
}

var _ loop.Driver = (*Driver)(nil)

// New creates a terminal driver.
func New(opts ...Option) *Driver {
	o := options{
		newScreen:     tcell.NewScreen,
		frameInterval: DefaultFrameInterval,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Driver{
		opts:   o,
		notify: make(chan struct{}, 1),
	}
}

// Name returns "term".
func (d *Driver) Name() string {
	return Name
}

// Wake interrupts a blocked Run.
func (d *Driver) Wake() {
	select {
	case d.notify <- struct{}{}:
	default:
	}
}

// CreateWindow takes over the terminal. The title is shown in the
// terminal's title bar where supported; the size is the terminal's.
func (d *Driver) CreateWindow(attrs loop.WindowAttributes) (loop.Window, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.win != nil {
		return nil, ErrWindowExists
	}

	s, err := d.opts.newScreen()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScreen, err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScreen, err)
	}
	s.HideCursor()
	s.SetTitle(attrs.Title)
	s.Clear()

	cols, rows := s.Size()
	d.win = &Window{
		driver: d,
		screen: s,
		id:     windowID,
		title:  attrs.Title,
		size:   cellsToPixels(cols, rows),
	}
	engine.Logger().Debug("term: screen initialized", "cols", cols, "rows", rows)
	return d.win, nil
}

// Run activates once, then delivers terminal events, proxy events and
// paced redraws until the handler exits. The terminal is restored before
// Run returns.
func (d *Driver) Run(p loop.Pump) error {
	p.Resumed()

	var (
		events chan tcell.Event
		quit   = make(chan struct{})
	)
	defer func() {
		close(quit)
		if w := d.window(); w != nil {
			w.screen.Fini()
		}
	}()

	ticker := time.NewTicker(d.opts.frameInterval)
	defer ticker.Stop()

	for {
		p.AboutToWait()
		if p.Exiting() {
			return nil
		}

		w := d.window()
		if w != nil && events == nil {
			events = make(chan tcell.Event, 16)
			go w.screen.ChannelEvents(events, quit)
		}

		var tick <-chan time.Time
		if p.ControlFlow() == loop.Poll || (w != nil && w.redrawPending()) {
			tick = ticker.C
		}

		select {
		case ev, ok := <-events:
			if !ok {
				engine.Logger().Debug("term: event stream closed")
				p.WindowEvent(windowID, loop.CloseRequested{})
				events = nil
				continue
			}
			d.dispatch(p, w, ev)
		case <-d.notify:
		case <-tick:
			if w != nil && w.takeRedraw() {
				p.WindowEvent(w.id, loop.RedrawRequested{})
			}
		}
	}
}

// dispatch translates one tcell event.
func (d *Driver) dispatch(p loop.Pump, w *Window, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		size := cellsToPixels(cols, rows)
		w.screen.Sync()
		if w.setSize(size) {
			p.WindowEvent(w.id, loop.Resized{Size: size})
		}
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			p.WindowEvent(w.id, loop.CloseRequested{})
		default:
			p.WindowEvent(w.id, loop.KeyboardInput{Key: ev.Name(), Rune: ev.Rune(), Pressed: true})
		}
	case *tcell.EventFocus:
		p.WindowEvent(w.id, loop.Focused{Focused: ev.Focused})
	}
}

func (d *Driver) window() *Window {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.win
}

// cellsToPixels converts a terminal size to half-block pixels.
func cellsToPixels(cols, rows int) loop.Size {
	return loop.Size{Width: uint32(max(cols, 0)), Height: uint32(max(rows, 0)) * 2}
}
