// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package engine

import "fmt"

// state is the application state. It is closed over exactly two
// variants; every switch on it handles both and panics on anything else.
//
//	awaitingRenderer --(renderer-ready event)--> ready
//
// The transition happens once per run and never goes back.
type state interface {
	appState()
}

// awaitingRenderer is the initial state. signal is taken (set to nil) by
// the first activation, which is what makes later activations no-ops.
type awaitingRenderer struct {
	signal *CompletionSignal
}

// ready holds the live renderer until the loop exits.
type ready struct {
	renderer Renderer
}

func (*awaitingRenderer) appState() {}
func (*ready) appState()            {}

func unknownState(s state) string {
	return fmt.Sprintf("engine: unknown application state %T", s)
}
