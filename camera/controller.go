// Copyright (c) 2026, Cadview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"cogentcore.org/core/math32"
)

// Move is a camera movement direction driven by held keys.
type Move int32

const (
	// MoveForward moves along the view direction.
	MoveForward Move = iota

	// MoveBackward moves against the view direction.
	MoveBackward

	// MoveLeft strafes along the camera's left axis.
	MoveLeft

	// MoveRight strafes along the camera's right axis.
	MoveRight

	MovesN
)

// Controller applies keyboard-driven movement to a Camera.
// Each Update step moves by a fixed amount per held direction,
// once per frame, with no time-based scaling.
type Controller struct {
	// Speed is the distance moved per Update step.
	Speed float32

	// active direction flags, set while keys are held.
	active [MovesN]bool
}

// NewController returns a Controller with the given per-step speed.
func NewController(speed float32) *Controller {
	return &Controller{Speed: speed}
}

// SetMove sets whether the given movement direction is active,
// on key press and release.
func (ct *Controller) SetMove(mv Move, active bool) {
	if mv < 0 || mv >= MovesN {
		return
	}
	ct.active[mv] = active
}

// Moving reports whether any movement direction is active.
func (ct *Controller) Moving() bool {
	for _, ac := range ct.active {
		if ac {
			return true
		}
	}
	return false
}

// Update applies one movement step to the camera: the active
// directions combine into a single translation along the camera's
// local forward and right axes, applied equally to Pos and Target.
// Moving never changes the view direction or the eye-to-target
// distance, only where the camera is.
func (ct *Controller) Update(cm *Camera) {
	if !ct.Moving() {
		return
	}
	forward := cm.Target.Sub(cm.Pos).Normal()
	right := forward.Cross(cm.Up).Normal()

	var delta math32.Vector3
	if ct.active[MoveForward] {
		delta = delta.Add(forward.MulScalar(ct.Speed))
	}
	if ct.active[MoveBackward] {
		delta = delta.Sub(forward.MulScalar(ct.Speed))
	}
	if ct.active[MoveRight] {
		delta = delta.Add(right.MulScalar(ct.Speed))
	}
	if ct.active[MoveLeft] {
		delta = delta.Sub(right.MulScalar(ct.Speed))
	}
	cm.Pos = cm.Pos.Add(delta)
	cm.Target = cm.Target.Add(delta)
}
