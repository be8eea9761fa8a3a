// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/gogpu/engine/loop"
)

// fakeWindow records redraw requests.
type fakeWindow struct {
	id       loop.WindowID
	title    string
	size     loop.Size
	requests int
}

func (w *fakeWindow) ID() loop.WindowID    { return w.id }
func (w *fakeWindow) Title() string        { return w.title }
func (w *fakeWindow) InnerSize() loop.Size { return w.size }
func (w *fakeWindow) RequestRedraw()       { w.requests++ }

// scriptDriver runs a test script as the platform's event loop.
type scriptDriver struct {
	win       *fakeWindow
	created   int
	createErr error
	script    func(p loop.Pump)
}

func (d *scriptDriver) Name() string { return "script" }
func (d *scriptDriver) Wake()        {}

func (d *scriptDriver) CreateWindow(attrs loop.WindowAttributes) (loop.Window, error) {
	if d.createErr != nil {
		return nil, d.createErr
	}
	d.created++
	d.win = &fakeWindow{id: loop.WindowID(d.created), title: attrs.Title, size: attrs.Size}
	return d.win, nil
}

func (d *scriptDriver) Run(p loop.Pump) error {
	if d.script != nil {
		d.script(p)
	}
	return nil
}

// fakeRenderer appends every call to a shared trace.
type fakeRenderer struct {
	name    string
	win     loop.Window
	initial loop.Size
	trace   *[]string
	closed  bool
}

func (r *fakeRenderer) Draw() { *r.trace = append(*r.trace, r.name+" draw") }

func (r *fakeRenderer) Resize(s loop.Size) {
	*r.trace = append(*r.trace, r.name+" resize "+s.String())
}

func (r *fakeRenderer) RequestRedraw() {
	*r.trace = append(*r.trace, r.name+" request")
	r.win.RequestRedraw()
}

func (r *fakeRenderer) Close() error {
	r.closed = true
	return nil
}

// harness wires an App to a real event loop over a scriptDriver.
type harness struct {
	driver    *scriptDriver
	el        *loop.EventLoop[readyEvent]
	app       *App
	trace     []string
	renderers []*fakeRenderer
	jobs      []func()
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	h := &harness{driver: &scriptDriver{}}
	el, err := loop.New[readyEvent](h.driver)
	if err != nil {
		t.Fatalf("loop.New() error = %v", err)
	}
	h.el = el
	h.app = newApp(newCompletionSignal(el.CreateProxy()), loop.DefaultWindowAttributes(), h.construct())
	return h
}

// construct builds named fake renderers sized from the window.
func (h *harness) construct() Construct {
	return Build(func(_ context.Context, win loop.Window) (*fakeRenderer, error) {
		r := &fakeRenderer{
			name:    fmt.Sprintf("r%d", len(h.renderers)+1),
			win:     win,
			initial: win.InnerSize(),
			trace:   &h.trace,
		}
		h.renderers = append(h.renderers, r)
		return r, nil
	})
}

// deferConstruction queues construction jobs instead of running them.
func (h *harness) deferConstruction() {
	h.app.dispatch = func(job func()) { h.jobs = append(h.jobs, job) }
}

func (h *harness) completeConstruction(t *testing.T) {
	t.Helper()
	if len(h.jobs) == 0 {
		t.Fatal("no construction pending")
	}
	job := h.jobs[0]
	h.jobs = h.jobs[1:]
	job()
}

func (h *harness) run(script func(p loop.Pump)) error {
	h.driver.script = script
	return h.el.Run(h.app)
}

func TestActivateThenReady(t *testing.T) {
	h := newHarness(t)
	err := h.run(func(p loop.Pump) {
		p.Resumed()
		if h.app.Ready() {
			t.Error("ready before the renderer-ready event was delivered")
		}
		p.AboutToWait()
		if !h.app.Ready() {
			t.Fatal("not ready after the renderer-ready event")
		}
		if h.app.Renderer() != Renderer(h.renderers[0]) {
			t.Errorf("Renderer() = %v, want the constructed renderer", h.app.Renderer())
		}
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if diff := cmp.Diff([]string{"r1 request"}, h.trace); diff != "" {
		t.Errorf("renderer calls mismatch (-want +got):\n%s", diff)
	}
	if h.driver.win.requests != 1 {
		t.Errorf("window redraw requests = %d, want 1", h.driver.win.requests)
	}
}

// Resizes and redraws before the renderer exists are dropped, not replayed.
func TestEventsDroppedWhileAwaiting(t *testing.T) {
	h := newHarness(t)
	h.deferConstruction()

	err := h.run(func(p loop.Pump) {
		p.Resumed()
		p.WindowEvent(1, loop.Resized{Size: loop.Size{Width: 640, Height: 480}})
		p.WindowEvent(1, loop.RedrawRequested{})
		p.AboutToWait()
		if h.app.Ready() {
			t.Fatal("ready without construction")
		}

		h.completeConstruction(t)
		p.AboutToWait()
		p.WindowEvent(1, loop.RedrawRequested{})
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{"r1 request", "r1 draw"}
	if diff := cmp.Diff(want, h.trace); diff != "" {
		t.Errorf("renderer calls mismatch (-want +got):\n%s", diff)
	}
}

// A dropped resize does not reach the renderer; it starts from the
// window's size at construction time instead.
func TestRendererStartsFromCurrentWindowSize(t *testing.T) {
	h := newHarness(t)
	h.deferConstruction()
	current := loop.Size{Width: 1024, Height: 768}

	err := h.run(func(p loop.Pump) {
		p.Resumed()
		h.driver.win.size = current
		p.WindowEvent(1, loop.Resized{Size: current})

		h.completeConstruction(t)
		p.AboutToWait()
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if len(h.renderers) != 1 {
		t.Fatalf("constructed %d renderers, want 1", len(h.renderers))
	}
	if got := h.renderers[0].initial; got != current {
		t.Errorf("renderer initial size = %v, want %v", got, current)
	}
	for _, call := range h.trace {
		if call != "r1 request" {
			t.Errorf("unexpected renderer call %q", call)
		}
	}
}

func TestCloseBeforeActivation(t *testing.T) {
	h := newHarness(t)
	err := h.run(func(p loop.Pump) {
		p.WindowEvent(0, loop.CloseRequested{})
		if !p.Exiting() {
			t.Error("close request did not exit the loop")
		}
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if h.driver.created != 0 || len(h.renderers) != 0 {
		t.Errorf("created %d windows and %d renderers, want none", h.driver.created, len(h.renderers))
	}
	if h.app.Window() != nil {
		t.Errorf("Window() = %v, want nil", h.app.Window())
	}
}

// Later activations neither create windows nor restart construction.
func TestRepeatedActivationCreatesOneWindow(t *testing.T) {
	h := newHarness(t)
	h.deferConstruction()

	err := h.run(func(p loop.Pump) {
		p.Resumed()
		p.Resumed()
		h.completeConstruction(t)
		p.AboutToWait()
		p.Resumed()
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if h.driver.created != 1 {
		t.Errorf("windows created = %d, want 1", h.driver.created)
	}
	if len(h.jobs) != 0 || len(h.renderers) != 1 {
		t.Errorf("pending jobs = %d, renderers = %d; want 0 and 1", len(h.jobs), len(h.renderers))
	}
}

func TestNoActivation(t *testing.T) {
	h := newHarness(t)
	err := h.run(func(p loop.Pump) {
		p.WindowEvent(0, loop.Resized{Size: loop.Size{Width: 10, Height: 10}})
		p.WindowEvent(0, loop.RedrawRequested{})
		p.AboutToWait()
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if h.driver.created != 0 || len(h.trace) != 0 {
		t.Errorf("created %d windows, trace %v; want nothing", h.driver.created, h.trace)
	}
}

func TestReadyForwardsInOrder(t *testing.T) {
	h := newHarness(t)
	a := loop.Size{Width: 300, Height: 200}
	b := loop.Size{Width: 320, Height: 240}

	err := h.run(func(p loop.Pump) {
		p.Resumed()
		p.AboutToWait()
		p.WindowEvent(1, loop.Resized{Size: a})
		p.WindowEvent(1, loop.RedrawRequested{})
		p.WindowEvent(1, loop.KeyboardInput{Key: "x", Rune: 'x', Pressed: true})
		p.WindowEvent(1, loop.Resized{Size: b})
		p.WindowEvent(1, loop.RedrawRequested{})
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	want := []string{
		"r1 request",
		"r1 resize 300x200",
		"r1 draw",
		"r1 resize 320x240",
		"r1 draw",
	}
	if diff := cmp.Diff(want, h.trace); diff != "" {
		t.Errorf("renderer calls mismatch (-want +got):\n%s", diff)
	}
	if h.app.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", h.app.Frames())
	}
}

func TestReadyRequestsOneRedraw(t *testing.T) {
	h := newHarness(t)
	err := h.run(func(p loop.Pump) {
		p.Resumed()
		p.AboutToWait()
		p.AboutToWait()
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	requests := 0
	for _, call := range h.trace {
		if call == "r1 request" {
			requests++
		}
	}
	if requests != 1 {
		t.Errorf("redraw requests = %d, want 1", requests)
	}
}

func TestDuplicateRendererKeepsLive(t *testing.T) {
	h := newHarness(t)
	err := h.run(func(p loop.Pump) {
		p.Resumed()
		p.AboutToWait()

		second := &fakeRenderer{name: "r2", win: h.driver.win, trace: &h.trace}
		h.app.UserEvent(nil, readyEvent{renderer: second})
		if !second.closed {
			t.Error("duplicate renderer was not released")
		}
		p.WindowEvent(1, loop.RedrawRequested{})
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if diff := cmp.Diff([]string{"r1 request", "r1 draw"}, h.trace); diff != "" {
		t.Errorf("renderer calls mismatch (-want +got):\n%s", diff)
	}
	if !h.renderers[0].closed {
		t.Error("live renderer was not released on exit")
	}
}

func TestRendererReadyDuringShutdownReleased(t *testing.T) {
	tests := []struct {
		name     string
		deferred bool
		script   func(t *testing.T, h *harness, p loop.Pump)
	}{
		{
			name: "drained after close",
			script: func(_ *testing.T, _ *harness, p loop.Pump) {
				p.Resumed()
				p.WindowEvent(1, loop.CloseRequested{})
				p.AboutToWait()
			},
		},
		{
			name: "queued at exit",
			script: func(_ *testing.T, _ *harness, p loop.Pump) {
				p.Resumed()
				p.WindowEvent(1, loop.CloseRequested{})
			},
		},
		{
			name:     "completed after close",
			deferred: true,
			script: func(t *testing.T, h *harness, p loop.Pump) {
				p.Resumed()
				p.WindowEvent(1, loop.CloseRequested{})
				h.completeConstruction(t)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			if tt.deferred {
				h.deferConstruction()
			}
			if err := h.run(func(p loop.Pump) { tt.script(t, h, p) }); err != nil {
				t.Fatalf("Run() error = %v", err)
			}

			if len(h.renderers) != 1 {
				t.Fatalf("constructed %d renderers, want 1", len(h.renderers))
			}
			if !h.renderers[0].closed {
				t.Error("renderer built during shutdown was not released")
			}
			if h.app.Ready() {
				t.Error("App became ready after close")
			}
			if len(h.trace) != 0 {
				t.Errorf("renderer calls = %v, want none", h.trace)
			}
		})
	}
}

func TestConstructionFailureStopsLoop(t *testing.T) {
	boom := errors.New("no adapter")
	h := newHarness(t)
	h.app.construct = func(_ context.Context, _ loop.Window, done *CompletionSignal) {
		_ = done.Fail(boom)
	}

	err := h.run(func(p loop.Pump) {
		p.Resumed()
		p.AboutToWait()
		if !p.Exiting() {
			t.Error("construction failure did not exit the loop")
		}
	})
	if !errors.Is(err, ErrRendererConstruction) || !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want ErrRendererConstruction wrapping the cause", err)
	}
}

func TestConstructionWithoutResult(t *testing.T) {
	h := newHarness(t)
	h.app.construct = func(context.Context, loop.Window, *CompletionSignal) {}

	err := h.run(func(p loop.Pump) {
		p.Resumed()
		p.AboutToWait()
	})
	if !errors.Is(err, ErrNoRenderer) {
		t.Errorf("Run() error = %v, want ErrNoRenderer", err)
	}
}

func TestWindowCreationFailure(t *testing.T) {
	boom := errors.New("display gone")
	h := newHarness(t)
	h.driver.createErr = boom

	err := h.run(func(p loop.Pump) {
		p.Resumed()
	})
	if !errors.Is(err, ErrWindowCreation) || !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want ErrWindowCreation wrapping the cause", err)
	}
	if len(h.renderers) != 0 {
		t.Errorf("constructed %d renderers, want 0", len(h.renderers))
	}
}

func TestConstructionSeesLoopContext(t *testing.T) {
	h := newHarness(t)
	h.deferConstruction()
	var seen context.Context
	h.app.construct = func(ctx context.Context, _ loop.Window, done *CompletionSignal) {
		seen = ctx
		_ = done.Fail(ctx.Err())
	}

	err := h.run(func(p loop.Pump) {
		p.Resumed()
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// The loop is gone: the job sees a cancelled context and its result
	// has nowhere to go.
	h.completeConstruction(t)
	if seen == nil {
		t.Fatal("construction did not run")
	}
	if !errors.Is(seen.Err(), context.Canceled) {
		t.Errorf("construction context err = %v, want context.Canceled", seen.Err())
	}
}

func TestDeltaTime(t *testing.T) {
	h := newHarness(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ticks := 0
	h.app.now = func() time.Time {
		ticks++
		return base.Add(time.Duration(ticks) * 20 * time.Millisecond)
	}

	err := h.run(func(p loop.Pump) {
		p.Resumed()
		p.AboutToWait()
		p.WindowEvent(1, loop.RedrawRequested{})
		if h.app.DeltaTime() != 0 {
			t.Errorf("DeltaTime() after first frame = %v, want 0", h.app.DeltaTime())
		}
		p.WindowEvent(1, loop.RedrawRequested{})
	})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if h.app.DeltaTime() != 20*time.Millisecond {
		t.Errorf("DeltaTime() = %v, want 20ms", h.app.DeltaTime())
	}
}

func TestUnknownStatePanics(t *testing.T) {
	a := &App{}
	defer func() {
		if recover() == nil {
			t.Error("Ready() on an App without state did not panic")
		}
	}()
	a.Ready()
}
