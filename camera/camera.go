// Copyright (c) 2026, Cadview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera provides the viewer camera: an eye position
// looking at a target point with a perspective projection, a
// keyboard-driven controller for moving it, and the uniform
// layout sent to the vertex shader.
package camera

import (
	"cogentcore.org/core/math32"
)

// Camera is an eye position looking at a target point, with a
// perspective projection.
type Camera struct {
	// Pos is the eye position in world coordinates.
	Pos math32.Vector3

	// Target is the point the camera looks at.
	Target math32.Vector3

	// Up is the world up direction.
	Up math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Aspect is the width / height ratio of the viewport.
	Aspect float32

	// Near, Far are the clipping plane distances.
	Near float32
	Far  float32
}

// NewCamera returns a camera with standard defaults and the given
// viewport aspect ratio.
func NewCamera(aspect float32) *Camera {
	cm := &Camera{}
	cm.Defaults()
	cm.Aspect = aspect
	return cm
}

// Defaults sets standard initial values: looking at the origin
// from z = 2, y up.
func (cm *Camera) Defaults() {
	cm.Pos = math32.Vec3(0, 0, 2)
	cm.Target = math32.Vec3(0, 0, 0)
	cm.Up = math32.Vec3(0, 1, 0)
	cm.FOV = 45
	cm.Aspect = 1
	cm.Near = 0.01
	cm.Far = 100
}

// SetAspect updates the aspect ratio, e.g., on window resize.
func (cm *Camera) SetAspect(aspect float32) {
	cm.Aspect = aspect
}

// ViewMatrix returns the world-to-camera view matrix.
func (cm *Camera) ViewMatrix() *math32.Matrix4 {
	var lookq math32.Quat
	lookq.SetFromRotationMatrix(math32.NewLookAt(cm.Pos, cm.Target, cm.Up))
	var cview math32.Matrix4
	cview.SetTransform(cm.Pos, lookq, math32.Vec3(1, 1, 1))
	view, _ := cview.Inverse()
	return view
}

// ProjectionMatrix returns the perspective projection matrix.
func (cm *Camera) ProjectionMatrix() *math32.Matrix4 {
	var prjn math32.Matrix4
	prjn.SetPerspective(cm.FOV, cm.Aspect, cm.Near, cm.Far)
	return &prjn
}

// ViewProjection returns projection * view, the full transform
// applied to model positions in the vertex shader.
func (cm *Camera) ViewProjection() math32.Matrix4 {
	var vp math32.Matrix4
	vp.MulMatrices(cm.ProjectionMatrix(), cm.ViewMatrix())
	return vp
}
