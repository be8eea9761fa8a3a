// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package frame describes what a renderer paints each frame.
//
// Renderers own the surface and call a Painter with a gg.Context sized
// to it. The same Painter runs unchanged on a GPU canvas, a terminal or
// an HTML canvas:
//
//	paint := frame.PainterFunc(func(dc *gg.Context, info frame.Info) {
//	    dc.ClearWithColor(gg.Hex("#101820"))
//	    dc.DrawCircle(float64(info.Width)/2, float64(info.Height)/2, 40)
//	    _ = dc.Fill()
//	})
//	engine.WithConstruct(cells.Construct(cells.WithPainter(paint)))
package frame

import (
	"time"

	"github.com/gogpu/gg"
)

// Info describes the frame being painted.
type Info struct {
	// Width and Height are the surface size in pixels.
	Width, Height int

	// Elapsed is the time since the first frame.
	Elapsed time.Duration

	// Delta is the time since the previous frame, zero for the first.
	Delta time.Duration

	// Index counts frames from zero.
	Index uint64
}

// Painter draws one frame into dc.
type Painter interface {
	Paint(dc *gg.Context, info Info)
}

// PainterFunc adapts a function to Painter.
type PainterFunc func(dc *gg.Context, info Info)

// Paint calls f(dc, info).
func (f PainterFunc) Paint(dc *gg.Context, info Info) {
	f(dc, info)
}
