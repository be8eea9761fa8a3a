// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !js

package gogpu

import (
	"github.com/gogpu/engine/driver"
	"github.com/gogpu/engine/loop"
	"github.com/gogpu/engine/renderer/canvas"
)

// init registers the gogpu driver with the GPU canvas renderer.
func init() {
	driver.Register(Name, driver.Entry{
		New: func(attrs loop.WindowAttributes) (loop.Driver, error) {
			return New(attrs), nil
		},
		Construct: canvas.Construct(),
	})
}
