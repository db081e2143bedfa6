// Copyright (c) 2026, Cadview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package viewer drives the windowed viewer: it defines the window
// and input events the viewer responds to, and the App and State
// types that dispatch them to the rendering core.
package viewer

import (
	"image"

	"github.com/cadview/brepview/camera"
)

// EventKind enumerates the window and input events the viewer
// responds to. Anything else the windowing system produces is
// dropped before it gets here.
type EventKind int32

const (
	// Resumed is sent once the window and surface exist and
	// rendering can start. The App builds its State on it.
	Resumed EventKind = iota

	// Resized carries a new framebuffer size in pixels.
	Resized

	// RedrawRequested asks for one frame to be rendered.
	RedrawRequested

	// KeyInput carries a key press or release.
	KeyInput

	// Closed is sent when the window is being closed.
	Closed
)

func (ek EventKind) String() string {
	switch ek {
	case Resumed:
		return "Resumed"
	case Resized:
		return "Resized"
	case RedrawRequested:
		return "RedrawRequested"
	case KeyInput:
		return "KeyInput"
	case Closed:
		return "Closed"
	}
	return "EventKindInvalid"
}

// Event is one window or input event delivered to the App.
// Kind selects which of the other fields are meaningful.
type Event struct {
	Kind EventKind

	// Size is the new framebuffer size, for Resized.
	Size image.Point

	// Key is the key involved, for KeyInput.
	Key Key

	// Pressed is true on press, false on release, for KeyInput.
	Pressed bool
}

// Key identifies keyboard keys independent of the windowing
// backend. Only the keys the viewer acts on are enumerated.
type Key int32

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyQ
	KeyW
	KeyA
	KeyS
	KeyD
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// moveKeys maps movement keys to camera movement directions,
// WASD and the arrow keys.
var moveKeys = map[Key]camera.Move{
	KeyW:     camera.MoveForward,
	KeyUp:    camera.MoveForward,
	KeyS:     camera.MoveBackward,
	KeyDown:  camera.MoveBackward,
	KeyA:     camera.MoveLeft,
	KeyLeft:  camera.MoveLeft,
	KeyD:     camera.MoveRight,
	KeyRight: camera.MoveRight,
}
