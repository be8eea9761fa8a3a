// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !js

package term

import (
	"github.com/gogpu/engine/driver"
	"github.com/gogpu/engine/loop"
	"github.com/gogpu/engine/renderer/cells"
)

// init registers the terminal driver with the half-block renderer.
func init() {
	driver.Register(Name, driver.Entry{
		New: func(loop.WindowAttributes) (loop.Driver, error) {
			return New(), nil
		},
		Construct: cells.Construct(),
	})
}
