// Copyright (c) 2026, Cadview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

func TestCameraDefaults(t *testing.T) {
	cm := NewCamera(1.5)
	assert.Equal(t, math32.Vec3(0, 0, 2), cm.Pos)
	assert.Equal(t, math32.Vec3(0, 0, 0), cm.Target)
	assert.Equal(t, math32.Vec3(0, 1, 0), cm.Up)
	assert.Equal(t, float32(45), cm.FOV)
	assert.Equal(t, float32(1.5), cm.Aspect)

	cm.SetAspect(2)
	assert.Equal(t, float32(2), cm.Aspect)
}

func TestControllerIdle(t *testing.T) {
	cm := NewCamera(1)
	ct := NewController(0.2)
	assert.False(t, ct.Moving())

	// no active directions: repeated updates change nothing
	for range 10 {
		ct.Update(cm)
	}
	assert.Equal(t, math32.Vec3(0, 0, 2), cm.Pos)
	assert.Equal(t, math32.Vec3(0, 0, 0), cm.Target)
}

func TestControllerForwardRigid(t *testing.T) {
	cm := NewCamera(1)
	ct := NewController(0.2)
	ct.SetMove(MoveForward, true)
	assert.True(t, ct.Moving())

	// one step translates eye and target by the same vector
	ct.Update(cm)
	assert.InDelta(t, 1.8, cm.Pos.Z, 1e-6)
	assert.InDelta(t, -0.2, cm.Target.Z, 1e-6)
	assert.InDelta(t, 2, cm.Target.Sub(cm.Pos).Length(), 1e-6)

	ct.SetMove(MoveForward, false)
	assert.False(t, ct.Moving())
}

func TestControllerBackward(t *testing.T) {
	cm := NewCamera(1)
	ct := NewController(0.2)
	ct.SetMove(MoveBackward, true)
	ct.Update(cm)
	assert.InDelta(t, 2.2, cm.Pos.Z, 1e-6)
	assert.InDelta(t, 0.2, cm.Target.Z, 1e-6)
}

func TestControllerStrafeRigid(t *testing.T) {
	cm := NewCamera(1)
	ct := NewController(0.2)
	ct.SetMove(MoveRight, true)

	// looking down -z with y up, right is +x
	for range 25 {
		ct.Update(cm)
	}
	assert.InDelta(t, 5, cm.Pos.X, 1e-5)
	assert.InDelta(t, 5, cm.Target.X, 1e-5)
	assert.InDelta(t, 2, cm.Target.Sub(cm.Pos).Length(), 1e-5)

	// opposing directions cancel out
	ct.SetMove(MoveLeft, true)
	before := cm.Pos
	ct.Update(cm)
	assert.Equal(t, before, cm.Pos)
}

func TestUniform(t *testing.T) {
	un := NewUniform()
	var ident math32.Matrix4
	ident.SetIdentity()
	assert.Equal(t, ident, un.ViewProjection)

	cm := NewCamera(1.5)
	un.Update(cm)
	assert.Equal(t, cm.ViewProjection(), un.ViewProjection)
	assert.NotEqual(t, ident, un.ViewProjection)
}
