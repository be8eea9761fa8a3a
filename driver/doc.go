// Package driver is the registry of platform window drivers.
//
// Each driver package pairs a loop.Driver factory with the renderer
// construction routine that knows how to draw into that driver's
// windows, and registers the pair from init():
//
//	import _ "github.com/gogpu/engine/driver/term"
//
// # Driver Selection
//
// Use Default() for the best available driver, or Get() for a specific
// one:
//
//	name, entry, ok := driver.Default()
//
//	entry, ok := driver.Get("term")
//
// Options turns a registered name into engine options:
//
//	opts, err := driver.Options("term", loop.WindowAttributes{Title: "demo"})
//	e, err := engine.New(opts...)
//
// # Available Drivers
//
//   - "gogpu": GPU window via gogpu (native)
//   - "term": terminal screen via tcell (native)
//   - "web": HTML canvas (js/wasm)
//   - "headless": scripted, no OS window
package driver
