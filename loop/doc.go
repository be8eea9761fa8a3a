// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package loop provides the platform event loop used by the engine.
//
// An [EventLoop] owns one platform [Driver] (the window system) and one
// user-event queue reachable from other goroutines through a [Proxy].
// Handlers receive three kinds of callbacks, always on the loop goroutine:
//
//   - Resumed: the platform allows OS resources (windows) to be created.
//     Some platforms deliver it more than once.
//   - UserEvent: a value sent through the Proxy.
//   - WindowEvent: a [WindowEvent] for one of the loop's windows.
//
// # Control Flow
//
// With [Poll] the driver iterates continuously, so per-frame work runs
// even without new OS events. With [Wait] the driver sleeps until an OS
// event arrives or the proxy wakes it.
//
// # Running
//
// [EventLoop.Run] blocks the calling goroutine until the loop exits.
// [EventLoop.Spawn] hands the loop to a cooperative host and returns
// immediately. A loop can be started only once.
//
// # Thread Safety
//
// Only [Proxy.Send] is safe to call from other goroutines. Everything
// reachable through [ActiveEventLoop] and [Window] must be used from
// handler callbacks.
package loop
