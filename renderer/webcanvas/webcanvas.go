// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build js && wasm

// Package webcanvas renders frames onto an HTML canvas with gg's
// software rasterizer and putImageData.
package webcanvas

import (
	"context"
	"errors"
	"fmt"
	"image"
	"syscall/js"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/gogpu/engine"
	"github.com/gogpu/engine/frame"
	"github.com/gogpu/engine/loop"
)

// ErrUnsupportedWindow is returned when the window is not a canvas.
var ErrUnsupportedWindow = errors.New("webcanvas: window is not an HTML canvas")

// Surface is a window backed by an HTML canvas.
type Surface interface {
	loop.Window
	Context2D() js.Value
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
// each draw.
func WithOnDemand() Option {
	return func(o *options) {
		o.continuous = false
	}
}

// Renderer draws frames onto a canvas.
type Renderer struct {
	surface Surface
	ctx2d   js.Value
	opts    options
	clock   *frame.Clock

	size loop.Size
	dc   *gg.Context
	pix  *image.NRGBA
	data js.Value
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

	o := options{continuous: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.painter == nil {
		o.painter = frame.NewDemo(win.Title())
	}

	r := &Renderer{
		surface: s,
		ctx2d:   s.Context2D(),
		opts:    o,
		clock:   frame.NewClock(),
	}
	r.allocate(win.InnerSize())
	engine.Logger().Info("webcanvas: renderer created", "size", r.size.String())
	return r, nil
}

// Construct returns a construction routine building a Renderer with opts.
func Construct(opts ...Option) engine.Construct {
	return engine.Build(func(ctx context.Context, win loop.Window) (*Renderer, error) {
		return NewWithOptions(ctx, win, opts...)
	})
}

func (r *Renderer) allocate(size loop.Size) {
	r.size = size
	if size.IsZero() {
		return
	}
	w, h := int(size.Width), int(size.Height)
	if r.dc == nil {
		r.dc = gg.NewContext(w, h)
	} else if err := r.dc.Resize(w, h); err != nil {
		engine.Logger().Error("webcanvas: resize failed", "size", size.String(), "err", err)
		return
	}
	r.pix = image.NewNRGBA(image.Rect(0, 0, w, h))
	r.data = js.Global().Get("Uint8ClampedArray").New(len(r.pix.Pix))
}

// Draw paints a frame and copies it to the canvas.
func (r *Renderer) Draw() {
	if r.dc == nil || r.size.IsZero() {
		return
	}
	info := r.clock.Tick(r.dc.Width(), r.dc.Height())
	r.opts.painter.Paint(r.dc, info)

	src := r.dc.Image()
	draw.Copy(r.pix, image.Point{}, src, src.Bounds(), draw.Src, nil)
	js.CopyBytesToJS(r.data, r.pix.Pix)
	img := js.Global().Get("ImageData").New(r.data, int(r.size.Width), int(r.size.Height))
	r.ctx2d.Call("putImageData", img, 0, 0)

	if r.opts.continuous {
		r.surface.RequestRedraw()
	}
}

// Resize reallocates the buffers for size and asks for a frame.
func (r *Renderer) Resize(size loop.Size) {
	if size == r.size {
		return
	}
	r.allocate(size)
	r.surface.RequestRedraw()
}

// RequestRedraw asks the browser for a frame.
func (r *Renderer) RequestRedraw() {
	r.surface.RequestRedraw()
}

// Close releases the paint buffer.
func (r *Renderer) Close() error {
	if r.dc == nil {
		return nil
	}
	err := r.dc.Close()
	r.dc = nil
	return err
}
