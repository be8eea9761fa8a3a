// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package frame

import (
	"fmt"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
)

// hudMinHeight is the smallest surface that still gets the text overlay.
const hudMinHeight = 120

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

// goFont returns the embedded Go Regular font, parsed once.
func goFont() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
	})
	return fontSource, fontErr
}

// Demo is an animated test pattern: a ring of circles, rotating
// polygons and a star, with a frame counter overlay.
type Demo struct {
	// Title is drawn at the top when the surface is large enough.
	Title string

	// Background clears each frame. The zero value is opaque black.
	Background gg.RGBA

	face     text.Face
	faceSize float64
}

// NewDemo returns a Demo with the given title on a dark background.
func NewDemo(title string) *Demo {
	return &Demo{
		Title:      title,
		Background: gg.Hex("#101820"),
	}
}

// Paint draws the pattern for info.
func (d *Demo) Paint(dc *gg.Context, info Info) {
	bg := d.Background
	if bg == (gg.RGBA{}) {
		bg = gg.RGB(0, 0, 0)
	}
	dc.ClearWithColor(bg)

	w, h := float64(info.Width), float64(info.Height)
	if w <= 0 || h <= 0 {
		return
	}
	t := info.Elapsed.Seconds() * 0.8
	cx, cy := w/2, h/2
	unit := math.Min(w, h) / 600

	ring := 160 * unit
	for i := 0; i < 12; i++ {
		angle := float64(i)*math.Pi/6 + t
		x := cx + math.Cos(angle)*ring
		y := cy + math.Sin(angle)*ring

		r, g, b := hsvToRGB(float64(i)/12, 0.85, 1.0)
		dc.SetRGBA(r, g, b, 0.9)
		dc.DrawCircle(x, y, (22+8*math.Sin(t*2+float64(i)))*unit)
		_ = dc.Fill()
	}

	dc.SetRGBA(1, 1, 1, 0.3)
	dc.SetLineWidth(math.Max(1, 1.5*unit))
	dc.DrawCircle(cx, cy, ring)
	_ = dc.Stroke()

	rrW, rrH := 120*unit, 50*unit
	dc.SetRGBA(0.2, 0.6, 1.0, 0.7)
	dc.DrawRoundedRectangle(cx-rrW/2, cy-rrH/2, rrW, rrH, 12*unit)
	_ = dc.Fill()

	polygon(dc, cx-200*unit, cy+150*unit, 40*unit, 3, t*1.5)
	dc.SetRGBA(1.0, 0.6, 0.1, 0.85)
	_ = dc.Fill()

	polygon(dc, cx, cy+150*unit, 35*unit, 5, -t*1.2)
	dc.SetRGBA(0.2, 0.9, 0.4, 0.85)
	_ = dc.Fill()

	polygon(dc, cx+200*unit, cy+150*unit, 35*unit, 6, t*0.9)
	dc.SetRGBA(0.9, 0.2, 0.6, 0.85)
	_ = dc.Fill()

	star(dc, cx, cy-160*unit, 45*unit, 20*unit, 5, t*0.7)
	dc.SetRGBA(1.0, 0.85, 0.2, 0.95)
	_ = dc.Fill()

	if info.Height >= hudMinHeight {
		d.hud(dc, info, unit)
	}
}

func (d *Demo) hud(dc *gg.Context, info Info, unit float64) {
	size := math.Max(10, 20*unit)
	if d.face == nil || d.faceSize != size {
		src, err := goFont()
		if err != nil {
			return
		}
		d.face, d.faceSize = src.Face(size), size
	}
	dc.SetFont(d.face)

	if d.Title != "" {
		dc.SetRGBA(1, 1, 1, 0.95)
		dc.DrawStringAnchored(d.Title, float64(info.Width)/2, 1.5*size, 0.5, 0)
	}
	dc.SetRGBA(0.7, 0.7, 0.7, 0.8)
	dc.DrawString(fmt.Sprintf("Frame %d | %.1fs", info.Index, info.Elapsed.Seconds()), 10, float64(info.Height)-10)
}

// polygon adds a regular polygon rotated by angle radians.
func polygon(dc *gg.Context, cx, cy, radius float64, sides int, angle float64) {
	for i := 0; i < sides; i++ {
		a := float64(i)*2*math.Pi/float64(sides) + angle - math.Pi/2
		x := cx + radius*math.Cos(a)
		y := cy + radius*math.Sin(a)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
}

// star adds a star with the given number of points rotated by angle radians.
func star(dc *gg.Context, cx, cy, outerR, innerR float64, points int, angle float64) {
	for i := 0; i < points*2; i++ {
		a := float64(i)*math.Pi/float64(points) + angle - math.Pi/2
		r := outerR
		if i%2 == 1 {
			r = innerR
		}
		x := cx + r*math.Cos(a)
		y := cy + r*math.Sin(a)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
}

func hsvToRGB(h, s, v float64) (r, g, b float64) {
	if s == 0 {
		return v, v, v
	}
	h *= 6
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	switch int(i) % 6 {
	case 0:
		return v, t, p
	case 1:
		return q, v, p
	case 2:
		return p, v, t
	case 3:
		return p, q, v
	case 4:
		return t, p, v
	default:
		return v, p, q
	}
}
