// Copyright (c) 2026, Cadview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh provides the vertex format used by the viewer and
// helpers for turning typed mesh data into pipeline specifications.
package mesh

import (
	"unsafe"

	"cogentcore.org/core/math32"
	"github.com/cadview/brepview/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

// Vertex is the interleaved vertex format used by the viewer:
// a position and a color, both vec3. Matches the shader inputs at
// @location(0) and @location(1).
type Vertex struct {
	Pos   math32.Vector3
	Color math32.Vector3
}

// Layout returns the vertex buffer layout for Vertex.
func Layout() gpu.VertexLayout {
	return gpu.VertexLayout{
		ArrayStride: uint64(unsafe.Sizeof(Vertex{})),
		Attributes: []gpu.VertexAttribute{
			{Format: wgpu.VertexFormatFloat32x3, Offset: 0, ShaderLocation: 0},
			{Format: wgpu.VertexFormatFloat32x3, Offset: uint64(unsafe.Offsetof(Vertex{}.Color)), ShaderLocation: 1},
		},
	}
}

// Mesh is triangle geometry in the viewer vertex format.
// Indexes is optional: empty means non-indexed drawing.
type Mesh struct {
	// Vertexes is the vertex data, with counter-clockwise winding
	// for front faces.
	Vertexes []Vertex

	// Indexes into Vertexes, three per triangle.
	Indexes []uint32
}

// PipelineInfo returns a pipeline specification drawing this mesh
// with the given shader. The mesh data is copied into the info.
func (ms *Mesh) PipelineInfo(name string, shader gpu.ShaderInfo) *gpu.PipelineInfo {
	pi := &gpu.PipelineInfo{
		Name:   name,
		Shader: shader,
		Layout: Layout(),
	}
	pi.SetVertexData(wgpu.ToBytes(ms.Vertexes))
	if len(ms.Indexes) > 0 {
		pi.SetIndexData(wgpu.ToBytes(ms.Indexes), 4)
	}
	return pi
}

// Triangle returns a single non-indexed triangle with red, green,
// and blue corners.
func Triangle() *Mesh {
	return &Mesh{
		Vertexes: []Vertex{
			{Pos: math32.Vec3(0, 0.5, 0.1), Color: math32.Vec3(1, 0, 0)},
			{Pos: math32.Vec3(-0.5, -0.5, 0.1), Color: math32.Vec3(0, 1, 0)},
			{Pos: math32.Vec3(0.5, -0.5, 0.1), Color: math32.Vec3(0, 0, 1)},
		},
	}
}

// Pentagon returns an indexed pentagon of three triangles sharing
// vertexes, exercising the indexed draw path.
func Pentagon() *Mesh {
	purple := math32.Vec3(0.5, 0, 0.5)
	return &Mesh{
		Vertexes: []Vertex{
			{Pos: math32.Vec3(-0.0868241, 0.49240386, 0), Color: purple},
			{Pos: math32.Vec3(-0.49513406, 0.06958647, 0), Color: purple},
			{Pos: math32.Vec3(-0.21918549, -0.44939706, 0), Color: purple},
			{Pos: math32.Vec3(0.35966998, -0.3473291, 0), Color: purple},
			{Pos: math32.Vec3(0.44147372, 0.2347359, 0), Color: purple},
		},
		Indexes: []uint32{0, 1, 4, 1, 2, 4, 2, 3, 4},
	}
}
