// Copyright (c) 2026, Cadview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"image"
	"log/slog"

	"github.com/cadview/brepview/gpu"
)

// App is the top of the viewer: it owns the live State once the
// windowing system delivers Resumed, and dispatches events to it.
// Until then, and whenever State is nil, events other than Resumed
// and Closed are dropped.
type App struct {
	// Title is the window title.
	Title string

	// Size is the initial window size in pixels.
	Size image.Point

	// State is the live viewer state, nil until Resumed.
	State *State

	// Init builds the State when Resumed arrives.
	Init func(size image.Point) (*State, error)

	done bool
}

// HandleEvent dispatches one event, returning any rendering error.
// Dispatch is synchronous: call from the same goroutine that runs
// the event loop.
func (ap *App) HandleEvent(ev Event) error {
	switch ev.Kind {
	case Resumed:
		if ap.State != nil {
			return nil
		}
		st, err := ap.Init(ap.Size)
		if err != nil {
			return err
		}
		ap.State = st
		return nil
	case Closed:
		ap.done = true
		return nil
	}
	if ap.State == nil {
		if gpu.Debug {
			slog.Debug("viewer: event before resume dropped", "kind", ev.Kind)
		}
		return nil
	}
	switch ev.Kind {
	case Resized:
		ap.State.Resize(ev.Size)
	case RedrawRequested:
		return ap.State.RenderFrame()
	case KeyInput:
		if ap.State.Key(ev.Key, ev.Pressed) {
			ap.done = true
		}
	}
	return nil
}

// Done reports whether the app has been asked to exit, either by
// the window closing or by a quit key.
func (ap *App) Done() bool {
	return ap.done
}
