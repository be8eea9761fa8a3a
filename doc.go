// Package engine is the startup and lifecycle shell for a single-window
// interactive application.
//
// # Overview
//
// The engine owns the platform event loop, creates the window when the
// platform allows it, and builds the renderer only once that window
// exists. Renderer construction may block (native) or run in the
// background (browser); either way the result comes back through a
// single-use [CompletionSignal] as an ordinary event-loop event, so the
// application state is only ever touched from the loop goroutine.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/engine"
//	    "github.com/gogpu/engine/driver/term"
//	    "github.com/gogpu/engine/renderer/cells"
//	)
//
//	e, err := engine.New(
//	    engine.WithDriver(term.New()),
//	    engine.WithConstruct(engine.Build(cells.New)),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := e.Run(); err != nil {
//	    log.Fatal(err)
//	}
//
// # State Machine
//
// [App] is either waiting for its renderer or ready:
//
//   - Activation (Resumed): the first one creates the window and starts
//     construction. Later ones are no-ops.
//   - Renderer ready: switches to ready once and requests the first frame.
//   - Resize / redraw: forwarded when ready, dropped while waiting.
//   - Close: exits the loop in either state.
//
// Events that arrive before the renderer are discarded, not queued. The
// renderer starts from the window's size at construction time.
//
// # Platforms
//
// The run strategy is chosen at build time. Native builds block in Run
// and read the log level from ENGINE_LOG. js/wasm builds schedule the
// loop on the browser and return from Run immediately; panics are
// reported to the browser console.
//
// # Logging
//
// See [SetLogger] and [Logger]. The logger is shared with gg.
package engine
