//go:build !js

package main

import (
	_ "github.com/gogpu/engine/driver/gogpu"
	_ "github.com/gogpu/engine/driver/headless"
	_ "github.com/gogpu/engine/driver/term"
)

// keepAlive returns at once: Run blocks until the window closes.
func keepAlive() {}
