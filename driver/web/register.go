// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build js && wasm

package web

import (
	"github.com/gogpu/engine/driver"
	"github.com/gogpu/engine/loop"
	"github.com/gogpu/engine/renderer/webcanvas"
)

// init registers the browser driver with the canvas 2D renderer.
func init() {
	driver.Register(Name, driver.Entry{
		New: func(loop.WindowAttributes) (loop.Driver, error) {
			return New(), nil
		},
		Construct: webcanvas.Construct(),
	})
}
