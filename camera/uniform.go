// Copyright (c) 2026, Cadview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"cogentcore.org/core/math32"
)

// Uniform is the camera data laid out as the shader expects:
// a single view-projection matrix. Upload as a one-element slice
// into a uniform buffer.
type Uniform struct {
	// ViewProjection is projection * view.
	ViewProjection math32.Matrix4
}

// NewUniform returns a Uniform set to the identity transform.
func NewUniform() *Uniform {
	un := &Uniform{}
	un.ViewProjection.SetIdentity()
	return un
}

// Update recomputes the view-projection matrix from the camera.
func (un *Uniform) Update(cm *Camera) {
	un.ViewProjection = cm.ViewProjection()
}
