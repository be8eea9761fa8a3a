// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !js

// Package canvas renders frames into a GPU window through gg's ggcanvas
// integration.
//
// Each frame is painted with gg on a ggcanvas.Canvas, uploaded as a
// texture and drawn onto the window surface:
//
//	gg.Context (paint) → ggcanvas.Canvas → TextureDrawer → window
//
// The window must expose its GPU device and per-frame draw target, as
// the gogpu driver's windows do.
package canvas

import (
	"context"
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/engine"
	"github.com/gogpu/engine/frame"
	"github.com/gogpu/engine/loop"
)

// Renderer errors.
var (
	// ErrUnsupportedWindow is returned when the window has no GPU surface.
	ErrUnsupportedWindow = errors.New("canvas: window does not expose a GPU surface")

	// ErrNoDevice is returned when the window's GPU device is not up yet.
	ErrNoDevice = errors.New("canvas: GPU device not available")
)

// Surface is a window that can be drawn on by the GPU.
type Surface interface {
	loop.Window

	// DeviceProvider returns the window's GPU device, or nil.
	DeviceProvider() gpucontext.DeviceProvider

	// TextureDrawer returns the current frame's draw target, or nil
	// outside a redraw.
	TextureDrawer() gpucontext.TextureDrawer
}

// Option configures a Renderer.
type Option func(*options)

type options struct {
	painter    frame.Painter
	continuous bool
}

// WithPainter sets what is painted each frame. The default is frame.Demo.
func WithPainter(p frame.Painter) Option {
	return func(o *options) {
		if p != nil {
			o.painter = p
		}
	}
}

// WithOnDemand stops the renderer from requesting the next frame after
// each draw. Frames are then only drawn on resize or explicit requests.
func WithOnDemand() Option {
	return func(o *options) {
		o.continuous = false
	}
}

// Renderer draws frames onto a GPU surface.
type Renderer struct {
	surface Surface
	canvas  *ggcanvas.Canvas
	opts    options
	clock   *frame.Clock
}

var _ engine.Renderer = (*Renderer)(nil)

// New builds a Renderer with default options. Its signature matches
// engine.Build.
func New(ctx context.Context, win loop.Window) (*Renderer, error) {
	return NewWithOptions(ctx, win)
}

// NewWithOptions builds a Renderer for win, sized from its current size.
func NewWithOptions(ctx context.Context, win loop.Window, opts ...Option) (*Renderer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s, ok := win.(Surface)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedWindow, win)
	}
	provider := s.DeviceProvider()
	if provider == nil {
		return nil, ErrNoDevice
	}

	o := options{continuous: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.painter == nil {
		o.painter = frame.NewDemo(win.Title())
	}

	size := win.InnerSize()
	c, err := ggcanvas.New(provider, int(size.Width), int(size.Height))
	if err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}
	engine.Logger().Info("canvas: renderer created", "size", size.String())

	return &Renderer{
		surface: s,
		canvas:  c,
		opts:    o,
		clock:   frame.NewClock(),
	}, nil
}

// Construct returns a construction routine building a Renderer with opts.
func Construct(opts ...Option) engine.Construct {
	return engine.Build(func(ctx context.Context, win loop.Window) (*Renderer, error) {
		return NewWithOptions(ctx, win, opts...)
	})
}

// Draw paints a frame and presents it on the surface.
func (r *Renderer) Draw() {
	td := r.surface.TextureDrawer()
	if td == nil {
		engine.Logger().Warn("canvas: draw outside a frame skipped")
		return
	}

	w, h := r.canvas.Size()
	info := r.clock.Tick(w, h)
	if err := r.canvas.Draw(func(dc *gg.Context) {
		r.opts.painter.Paint(dc, info)
	}); err != nil {
		engine.Logger().Error("canvas: draw failed", "err", err)
		return
	}
	if err := r.canvas.RenderTo(td); err != nil {
		engine.Logger().Error("canvas: present failed", "frame", info.Index, "err", err)
	}

	if r.opts.continuous {
		r.surface.RequestRedraw()
	}
}

// Resize resizes the canvas to size. Zero sizes (minimized windows) are
// ignored.
func (r *Renderer) Resize(size loop.Size) {
	if size.IsZero() {
		return
	}
	if err := r.canvas.Resize(int(size.Width), int(size.Height)); err != nil {
		engine.Logger().Error("canvas: resize failed", "size", size.String(), "err", err)
		return
	}
	r.surface.RequestRedraw()
}

// RequestRedraw asks the window for a frame.
func (r *Renderer) RequestRedraw() {
	r.surface.RequestRedraw()
}

// Frames returns the number of frames painted.
func (r *Renderer) Frames() uint64 {
	return r.clock.Frames()
}

// Close releases the canvas texture.
func (r *Renderer) Close() error {
	return r.canvas.Close()
}
