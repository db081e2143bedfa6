// Copyright (c) 2026, Cadview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"github.com/cogentcore/webgpu/wgpu"
)

// VertexAttribute describes one attribute within a vertex layout,
// corresponding to an @location input in the vertex shader.
type VertexAttribute struct {
	// Format of the attribute data, e.g., Float32x3 for a
	// position or color vector.
	Format wgpu.VertexFormat

	// Offset in bytes from the start of the vertex element.
	Offset uint64

	// ShaderLocation is the @location index in the shader.
	ShaderLocation uint32
}

// VertexLayout describes the layout of interleaved vertex data:
// the byte stride between elements and the attributes within each.
type VertexLayout struct {
	// ArrayStride is the size in bytes of one vertex element.
	ArrayStride uint64

	// Attributes within each vertex element.
	Attributes []VertexAttribute
}

// bufferLayout returns the WebGPU layout for pipeline creation.
func (vl *VertexLayout) bufferLayout() wgpu.VertexBufferLayout {
	attrs := make([]wgpu.VertexAttribute, len(vl.Attributes))
	for i, at := range vl.Attributes {
		attrs[i] = wgpu.VertexAttribute{
			Format:         at.Format,
			Offset:         at.Offset,
			ShaderLocation: at.ShaderLocation,
		}
	}
	return wgpu.VertexBufferLayout{
		ArrayStride: vl.ArrayStride,
		StepMode:    wgpu.VertexStepModeVertex,
		Attributes:  attrs,
	}
}

// indexFormat returns the WebGPU index format for a given index
// stride in bytes: 2 = Uint16, otherwise Uint32.
func indexFormat(stride int) wgpu.IndexFormat {
	if stride == 2 {
		return wgpu.IndexFormatUint16
	}
	return wgpu.IndexFormatUint32
}
