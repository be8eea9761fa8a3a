// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package cells renders frames onto a terminal screen with half blocks.
//
// Frames are painted with gg's software rasterizer at a multiple of the
// terminal resolution, scaled down, and written as '▀' cells whose
// foreground is the upper pixel and background the lower one.
package cells

import (
	"context"
	"errors"
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"github.com/gogpu/engine"
	"github.com/gogpu/engine/frame"
	"github.com/gogpu/engine/loop"
)

// DefaultSupersample is the default number of painted pixels per
// terminal pixel along each axis.
const DefaultSupersample = 2

const halfBlock = '▀'

// ErrUnsupportedWindow is returned when the window is not a terminal.
var ErrUnsupportedWindow = errors.New("cells: window is not backed by a terminal screen")

// Surface is a window backed by a terminal screen. Its inner size is in
// half-block pixels: columns by twice the rows.
type Surface interface {
	loop.Window
	Screen() tcell.Screen
}

// Option configures a Renderer.
type Option func(*options)

type options struct {
	painter     frame.Painter
	supersample int
	continuous  bool
}

// WithPainter sets what is painted each frame. The default is frame.Demo.
func WithPainter(p frame.Painter) Option {
	return func(o *options) {
		if p != nil {
			o.painter = p
		}
	}
}

// WithSupersample sets the supersampling factor. 1 disables it.
func WithSupersample(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.supersample = n
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

// Renderer draws frames onto a terminal.
type Renderer struct {
	surface Surface
	screen  tcell.Screen
	opts    options
	clock   *frame.Clock

	size loop.Size
	dc   *gg.Context
	out  *image.RGBA
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

	o := options{supersample: DefaultSupersample, continuous: true}
	for _, opt := range opts {
		opt(&o)
	}
	if o.painter == nil {
		o.painter = frame.NewDemo(win.Title())
	}

	r := &Renderer{
		surface: s,
		screen:  s.Screen(),
		opts:    o,
		clock:   frame.NewClock(),
	}
	r.allocate(win.InnerSize())
	engine.Logger().Info("cells: renderer created", "size", r.size.String(), "supersample", o.supersample)
	return r, nil
}

// Construct returns a construction routine building a Renderer with opts.
func Construct(opts ...Option) engine.Construct {
	return engine.Build(func(ctx context.Context, win loop.Window) (*Renderer, error) {
		return NewWithOptions(ctx, win, opts...)
	})
}

// allocate sizes the paint and output buffers for size.
func (r *Renderer) allocate(size loop.Size) {
	r.size = size
	if size.IsZero() {
		return
	}
	w, h := int(size.Width), int(size.Height)
	ss := r.opts.supersample
	if r.dc == nil {
		r.dc = gg.NewContext(w*ss, h*ss)
	} else if err := r.dc.Resize(w*ss, h*ss); err != nil {
		engine.Logger().Error("cells: resize failed", "size", size.String(), "err", err)
		return
	}
	r.out = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Draw paints a frame and shows it on the terminal.
func (r *Renderer) Draw() {
	if r.dc == nil || r.size.IsZero() {
		return
	}
	info := r.clock.Tick(r.dc.Width(), r.dc.Height())
	r.opts.painter.Paint(r.dc, info)

	src := r.dc.Image()
	if r.opts.supersample == 1 {
		draw.Copy(r.out, image.Point{}, src, src.Bounds(), draw.Src, nil)
	} else {
		draw.ApproxBiLinear.Scale(r.out, r.out.Bounds(), src, src.Bounds(), draw.Src, nil)
	}
	r.present()

	if r.opts.continuous {
		r.surface.RequestRedraw()
	}
}

// present writes the output image as half blocks and shows it.
func (r *Renderer) present() {
	b := r.out.Bounds()
	for y := 0; y < b.Dy(); y += 2 {
		for x := 0; x < b.Dx(); x++ {
			upper := r.out.RGBAAt(x, y)
			lower := upper
			if y+1 < b.Dy() {
				lower = r.out.RGBAAt(x, y+1)
			}
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(upper.R), int32(upper.G), int32(upper.B))).
				Background(tcell.NewRGBColor(int32(lower.R), int32(lower.G), int32(lower.B)))
			r.screen.SetContent(x, y/2, halfBlock, nil, style)
		}
	}
	r.screen.Show()
}

// Resize reallocates the buffers for size and asks for a frame.
func (r *Renderer) Resize(size loop.Size) {
	if size == r.size {
		return
	}
	r.allocate(size)
	r.surface.RequestRedraw()
}

// RequestRedraw asks the terminal for a frame.
func (r *Renderer) RequestRedraw() {
	r.surface.RequestRedraw()
}

// Size returns the size the renderer draws at.
func (r *Renderer) Size() loop.Size {
	return r.size
}

// Frames returns the number of frames painted.
func (r *Renderer) Frames() uint64 {
	return r.clock.Frames()
}

// Close releases the paint buffer. The screen belongs to the window.
func (r *Renderer) Close() error {
	if r.dc == nil {
		return nil
	}
	err := r.dc.Close()
	r.dc = nil
	return err
}
