// Copyright (c) 2026, Cadview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"image"
	"testing"

	"github.com/cadview/brepview/camera"
	"github.com/cadview/brepview/gpu"
	"github.com/stretchr/testify/assert"
)

// testState returns a State with only the camera parts populated,
// enough for input handling without any GPU.
func testState() *State {
	return &State{
		Camera:     camera.NewCamera(1),
		Controller: camera.NewController(0.2),
	}
}

func TestAppResume(t *testing.T) {
	inits := 0
	ap := &App{
		Size: image.Point{640, 480},
		Init: func(size image.Point) (*State, error) {
			inits++
			assert.Equal(t, image.Point{640, 480}, size)
			return testState(), nil
		},
	}
	assert.Nil(t, ap.State)

	// input before the window exists is dropped
	assert.NoError(t, ap.HandleEvent(Event{Kind: KeyInput, Key: KeyW, Pressed: true}))
	assert.NoError(t, ap.HandleEvent(Event{Kind: Resumed}))
	assert.NotNil(t, ap.State)
	assert.Equal(t, 1, inits)

	// a second Resumed does not rebuild the state
	assert.NoError(t, ap.HandleEvent(Event{Kind: Resumed}))
	assert.Equal(t, 1, inits)
}

func TestAppClosed(t *testing.T) {
	ap := &App{Init: func(size image.Point) (*State, error) { return testState(), nil }}
	assert.False(t, ap.Done())
	assert.NoError(t, ap.HandleEvent(Event{Kind: Closed}))
	assert.True(t, ap.Done())
}

func TestAppQuitKeys(t *testing.T) {
	for _, key := range []Key{KeyQ, KeyEscape} {
		ap := &App{Init: func(size image.Point) (*State, error) { return testState(), nil }}
		assert.NoError(t, ap.HandleEvent(Event{Kind: Resumed}))

		// release alone does not quit
		assert.NoError(t, ap.HandleEvent(Event{Kind: KeyInput, Key: key, Pressed: false}))
		assert.False(t, ap.Done())
		assert.NoError(t, ap.HandleEvent(Event{Kind: KeyInput, Key: key, Pressed: true}))
		assert.True(t, ap.Done())
	}
}

func TestStateMoveKeys(t *testing.T) {
	st := testState()
	assert.False(t, st.Key(KeyW, true))
	assert.True(t, st.Controller.Moving())
	assert.False(t, st.Key(KeyW, false))
	assert.False(t, st.Controller.Moving())

	// arrows behave the same as WASD
	st.Key(KeyLeft, true)
	assert.True(t, st.Controller.Moving())
	st.Key(KeyLeft, false)

	// unmapped keys do nothing
	assert.False(t, st.Key(KeyUnknown, true))
	assert.False(t, st.Controller.Moving())
}

func TestStateReleasePartial(t *testing.T) {
	// Release must tolerate a partially built state, as left behind
	// when NewState fails midway, and stay safe on repeat calls.
	st := testState()
	st.Renderer = gpu.NewRenderer(nil, &gpu.Surface{})
	assert.NotPanics(t, func() { st.Release() })
	assert.NotPanics(t, func() { st.Release() })
}

func TestEventKindString(t *testing.T) {
	assert.Equal(t, "Resumed", Resumed.String())
	assert.Equal(t, "Closed", Closed.String())
	assert.Equal(t, "EventKindInvalid", EventKind(99).String())
}
