// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build !js

package gogpu

import (
	"fmt"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/engine/loop"
)

var namedKeys = map[gpucontext.Key]string{
	gpucontext.KeyEscape:    "Esc",
	gpucontext.KeyTab:       "Tab",
	gpucontext.KeyBackspace: "Backspace",
	gpucontext.KeyEnter:     "Enter",
	gpucontext.KeySpace:     "Space",
	gpucontext.KeyInsert:    "Insert",
	gpucontext.KeyDelete:    "Delete",
	gpucontext.KeyHome:      "Home",
	gpucontext.KeyEnd:       "End",
	gpucontext.KeyPageUp:    "PgUp",
	gpucontext.KeyPageDown:  "PgDn",
	gpucontext.KeyLeft:      "Left",
	gpucontext.KeyRight:     "Right",
	gpucontext.KeyUp:        "Up",
	gpucontext.KeyDown:      "Down",
}

// keyEvent translates a gpucontext key into a loop event. Escape
// requests a close, like in the terminal driver.
func keyEvent(key gpucontext.Key, pressed bool) loop.WindowEvent {
	if key == gpucontext.KeyEscape && pressed {
		return loop.CloseRequested{}
	}
	ev := loop.KeyboardInput{Pressed: pressed}
	switch {
	case key >= gpucontext.KeyA && key <= gpucontext.KeyZ:
		ev.Rune = 'a' + rune(key-gpucontext.KeyA)
		ev.Key = string(ev.Rune)
	case key >= gpucontext.Key0 && key <= gpucontext.Key9:
		ev.Rune = '0' + rune(key-gpucontext.Key0)
		ev.Key = string(ev.Rune)
	case key >= gpucontext.KeyF1 && key <= gpucontext.KeyF12:
		ev.Key = fmt.Sprintf("F%d", key-gpucontext.KeyF1+1)
	default:
		name, ok := namedKeys[key]
		if !ok {
			name = fmt.Sprintf("Key[%d]", uint16(key))
		}
		ev.Key = name
		if key == gpucontext.KeySpace {
			ev.Rune = ' '
		}
	}
	return ev
}
