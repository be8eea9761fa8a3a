// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package cells

import (
	"context"
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"

	"github.com/gogpu/engine/frame"
	"github.com/gogpu/engine/loop"
)

// screenWindow is a terminal window over a simulation screen.
type screenWindow struct {
	screen   tcell.SimulationScreen
	size     loop.Size
	requests int
}

func newScreenWindow(t *testing.T, cols, rows int) *screenWindow {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(s.Fini)
	s.SetSize(cols, rows)
	return &screenWindow{
		screen: s,
		size:   loop.Size{Width: uint32(cols), Height: uint32(rows * 2)},
	}
}

func (w *screenWindow) ID() loop.WindowID    { return 1 }
func (w *screenWindow) Title() string        { return "cells" }
func (w *screenWindow) InnerSize() loop.Size { return w.size }
func (w *screenWindow) RequestRedraw()       { w.requests++ }
func (w *screenWindow) Screen() tcell.Screen { return w.screen }

type plainWindow struct{}

func (plainWindow) ID() loop.WindowID    { return 1 }
func (plainWindow) Title() string        { return "plain" }
func (plainWindow) InnerSize() loop.Size { return loop.Size{Width: 4, Height: 4} }
func (plainWindow) RequestRedraw()       {}

// stripes paints even pixel rows red and odd rows blue.
var stripes = frame.PainterFunc(func(dc *gg.Context, info frame.Info) {
	dc.ClearWithColor(gg.RGB(0, 0, 1))
	dc.SetRGB(1, 0, 0)
	for y := 0; y < info.Height; y += 2 {
		dc.DrawRectangle(0, float64(y), float64(info.Width), 1)
	}
	_ = dc.Fill()
})

func TestNewRejectsUnsupportedWindow(t *testing.T) {
	_, err := New(context.Background(), plainWindow{})
	if !errors.Is(err, ErrUnsupportedWindow) {
		t.Errorf("New() error = %v, want ErrUnsupportedWindow", err)
	}
}

func TestNewUsesCurrentWindowSize(t *testing.T) {
	win := newScreenWindow(t, 6, 3)
	r, err := New(context.Background(), win)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() { _ = r.Close() }()

	if got, want := r.Size(), (loop.Size{Width: 6, Height: 6}); got != want {
		t.Errorf("Size() = %v, want %v", got, want)
	}
}

func TestDrawHalfBlocks(t *testing.T) {
	win := newScreenWindow(t, 4, 2)
	r, err := NewWithOptions(context.Background(), win, WithPainter(stripes), WithSupersample(1))
	if err != nil {
		t.Fatalf("NewWithOptions() error = %v", err)
	}
	defer func() { _ = r.Close() }()

	r.Draw()

	cells, w, h := win.screen.GetContents()
	if w != 4 || h != 2 {
		t.Fatalf("screen size = %dx%d, want 4x2", w, h)
	}
	for i, c := range cells {
		if len(c.Runes) == 0 || c.Runes[0] != halfBlock {
			t.Fatalf("cell %d = %q, want half block", i, c.Runes)
		}
		fg, bg, _ := c.Style.Decompose()
		if !nearRGB(fg, 255, 0, 0) {
			r, g, b := fg.RGB()
			t.Errorf("cell %d foreground = (%d,%d,%d), want red", i, r, g, b)
		}
		if !nearRGB(bg, 0, 0, 255) {
			r, g, b := bg.RGB()
			t.Errorf("cell %d background = (%d,%d,%d), want blue", i, r, g, b)
		}
	}
	if win.requests != 1 {
		t.Errorf("redraw requests = %d, want 1 (continuous)", win.requests)
	}
	if r.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", r.Frames())
	}
}

func TestDrawOnDemand(t *testing.T) {
	win := newScreenWindow(t, 4, 2)
	r, err := NewWithOptions(context.Background(), win, WithPainter(stripes), WithOnDemand())
	if err != nil {
		t.Fatalf("NewWithOptions() error = %v", err)
	}
	defer func() { _ = r.Close() }()

	r.Draw()
	if win.requests != 0 {
		t.Errorf("redraw requests = %d, want 0", win.requests)
	}
}

func TestResize(t *testing.T) {
	win := newScreenWindow(t, 4, 2)
	r, err := NewWithOptions(context.Background(), win, WithPainter(stripes))
	if err != nil {
		t.Fatalf("NewWithOptions() error = %v", err)
	}
	defer func() { _ = r.Close() }()

	r.Resize(loop.Size{Width: 4, Height: 4})
	if win.requests != 0 {
		t.Errorf("same-size resize requested a redraw")
	}

	want := loop.Size{Width: 8, Height: 6}
	r.Resize(want)
	if r.Size() != want {
		t.Errorf("Size() = %v, want %v", r.Size(), want)
	}
	if win.requests != 1 {
		t.Errorf("redraw requests = %d, want 1", win.requests)
	}
	if b := r.out.Bounds(); b.Dx() != 8 || b.Dy() != 6 {
		t.Errorf("output bounds = %v, want 8x6", b)
	}
}

func TestZeroSizeSkipsDraw(t *testing.T) {
	win := newScreenWindow(t, 4, 2)
	win.size = loop.Size{}
	r, err := New(context.Background(), win)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer func() { _ = r.Close() }()

	r.Draw()
	if r.Frames() != 0 {
		t.Errorf("Frames() = %d, want 0 for a zero-size window", r.Frames())
	}
}

func nearRGB(c tcell.Color, r, g, b int32) bool {
	cr, cg, cb := c.RGB()
	d := func(x, y int32) int32 {
		if x > y {
			return x - y
		}
		return y - x
	}
	return d(cr, r) <= 8 && d(cg, g) <= 8 && d(cb, b) <= 8
}
