// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package loop

// Default window attributes.
const (
	DefaultTitle  = "engine"
	DefaultWidth  = 800
	DefaultHeight = 600
)

// WindowAttributes describes a window to create.
type WindowAttributes struct {
	Title string
	Size  Size
}

// DefaultWindowAttributes returns the attributes used when none are given.
func DefaultWindowAttributes() WindowAttributes {
	return WindowAttributes{
		Title: DefaultTitle,
		Size:  Size{Width: DefaultWidth, Height: DefaultHeight},
	}
}

// WithDefaults fills zero fields from DefaultWindowAttributes.
func (a WindowAttributes) WithDefaults() WindowAttributes {
	d := DefaultWindowAttributes()
	if a.Title == "" {
		a.Title = d.Title
	}
	if a.Size.Width == 0 {
		a.Size.Width = d.Size.Width
	}
	if a.Size.Height == 0 {
		a.Size.Height = d.Size.Height
	}
	return a
}

// Window is a handle to a platform window.
//
// Drivers return their own concrete types; renderers that need the
// native surface type-assert to them.
type Window interface {
	// ID returns the identifier used in WindowEvent callbacks.
	ID() WindowID

	// Title returns the window title.
	Title() string

	// InnerSize returns the current physical size of the drawable area.
	InnerSize() Size

	// RequestRedraw schedules a RedrawRequested event for this window.
	// Multiple requests before the event is delivered coalesce into one.
	RequestRedraw()
}
