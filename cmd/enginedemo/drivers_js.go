//go:build js && wasm

package main

import (
	_ "github.com/gogpu/engine/driver/web"
)

// keepAlive parks main so the Go runtime stays up while the browser
// drives the loop.
func keepAlive() {
	select {}
}
