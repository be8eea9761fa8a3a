// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package headless

import (
	"github.com/gogpu/engine"
	"github.com/gogpu/engine/driver"
	"github.com/gogpu/engine/loop"
)

// init registers the headless driver with a recording renderer.
func init() {
	driver.Register(Name, driver.Entry{
		New: func(loop.WindowAttributes) (loop.Driver, error) {
			return New(WithExitWhenIdle()), nil
		},
		Construct: engine.Build(NewRenderer),
	})
}
