// Copyright (c) 2026, Cadview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"log/slog"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// PipelineInfo is a declarative specification of a render pipeline:
// the shader, vertex layout, geometry data, and fixed-function state
// needed to build one. The geometry byte slices are owned by the
// info: the Set methods copy, so callers can reuse their buffers.
type PipelineInfo struct {
	// Name is the label for the pipeline and its buffers.
	Name string

	// Shader is the WGSL shader with vertex and fragment entries.
	Shader ShaderInfo

	// Layout describes the vertex buffer contents.
	Layout VertexLayout

	// VertexData is the raw vertex buffer content.
	VertexData []byte

	// IndexData is the raw index buffer content.
	// nil means non-indexed drawing.
	IndexData []byte

	// IndexStride is the size of one index in bytes:
	// 2 for uint16 indexes, 4 for uint32.
	IndexStride int

	// FrontFace is the winding order of front faces.
	// The zero value is counter-clockwise.
	FrontFace wgpu.FrontFace

	// CullMode sets face culling. The zero value culls nothing.
	CullMode wgpu.CullMode

	// BindLayouts are the bind group layouts the shader references,
	// in @group order. Empty for shaders without bindings.
	BindLayouts []*wgpu.BindGroupLayout
}

// SetVertexData copies data into the owned vertex buffer content.
func (pi *PipelineInfo) SetVertexData(data []byte) *PipelineInfo {
	pi.VertexData = append([]byte(nil), data...)
	return pi
}

// SetIndexData copies data into the owned index buffer content,
// recording the index stride in bytes (2 or 4).
func (pi *PipelineInfo) SetIndexData(data []byte, stride int) *PipelineInfo {
	pi.IndexData = append([]byte(nil), data...)
	pi.IndexStride = stride
	return pi
}

// SetFrontFace sets the winding order of front faces.
func (pi *PipelineInfo) SetFrontFace(ff wgpu.FrontFace) *PipelineInfo {
	pi.FrontFace = ff
	return pi
}

// SetCullMode sets face culling.
func (pi *PipelineInfo) SetCullMode(cm wgpu.CullMode) *PipelineInfo {
	pi.CullMode = cm
	return pi
}

// Pipeline is a built render pipeline together with the GPU
// buffers holding its geometry, ready to be drawn. Build with
// BuildPipeline; the element counts for drawing are derived from
// the buffer sizes and strides, so they cannot drift apart.
type Pipeline struct {
	// Name from the PipelineInfo.
	Name string

	// Pipeline is the WebGPU render pipeline.
	Pipeline *wgpu.RenderPipeline

	vertexBuffer *wgpu.Buffer
	indexBuffer  *wgpu.Buffer

	vertexBytes  int
	vertexStride int
	indexBytes   int
	indexStride  int
	indexFormat  wgpu.IndexFormat
}

// BuildPipeline compiles the shader and builds the render pipeline
// and geometry buffers described by info, targeting the given
// surface texture format.
func BuildPipeline(dev *Device, format wgpu.TextureFormat, pi *PipelineInfo) (*Pipeline, error) {
	pi.Shader.defaults()
	module, err := pi.Shader.Module(dev)
	if err != nil {
		return nil, err
	}
	defer module.Release()

	layout, err := dev.Device.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            pi.Name,
		BindGroupLayouts: pi.BindLayouts,
	})
	if err != nil {
		return nil, errors.Log(err)
	}
	defer layout.Release()

	rp, err := dev.Device.CreateRenderPipeline(&wgpu.RenderPipelineDescriptor{
		Label:  pi.Name,
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: pi.Shader.VertexEntry,
			Buffers:    []wgpu.VertexBufferLayout{pi.Layout.bufferLayout()},
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: pi.Shader.FragmentEntry,
			Targets: []wgpu.ColorTargetState{{
				Format:    format,
				Blend:     &wgpu.BlendStateReplace,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  wgpu.PrimitiveTopologyTriangleList,
			FrontFace: pi.FrontFace,
			CullMode:  pi.CullMode,
		},
		Multisample: wgpu.MultisampleState{
			Count:                  1,
			Mask:                   0xFFFFFFFF,
			AlphaToCoverageEnabled: false,
		},
	})
	if err != nil {
		return nil, errors.Log(err)
	}

	pl := &Pipeline{
		Name:         pi.Name,
		Pipeline:     rp,
		vertexBytes:  len(pi.VertexData),
		vertexStride: int(pi.Layout.ArrayStride),
		indexBytes:   len(pi.IndexData),
		indexStride:  pi.IndexStride,
		indexFormat:  indexFormat(pi.IndexStride),
	}
	if len(pi.VertexData) > 0 {
		pl.vertexBuffer, err = NewVertexBuffer(dev, pi.Name, pi.VertexData)
		if err != nil {
			pl.Release()
			return nil, err
		}
	}
	if len(pi.IndexData) > 0 {
		pl.indexBuffer, err = NewIndexBuffer(dev, pi.Name, pi.IndexData)
		if err != nil {
			pl.Release()
			return nil, err
		}
	}
	if Debug {
		slog.Info("gpu: pipeline built", "name", pi.Name,
			"vertices", pl.vertexCount(), "indexes", pl.indexCount())
	}
	return pl, nil
}

// vertexCount returns the number of vertexes in the vertex buffer,
// from the buffer size and the layout stride.
func (pl *Pipeline) vertexCount() int {
	if pl.vertexStride <= 0 {
		return 0
	}
	return pl.vertexBytes / pl.vertexStride
}

// indexCount returns the number of indexes in the index buffer,
// from the buffer size and the index stride.
func (pl *Pipeline) indexCount() int {
	if pl.indexStride <= 0 {
		return 0
	}
	return pl.indexBytes / pl.indexStride
}

// indexed reports whether this pipeline draws indexed geometry.
func (pl *Pipeline) indexed() bool {
	return pl.indexBuffer != nil
}

// draw records the draw commands for this pipeline into an active
// render pass.
func (pl *Pipeline) draw(rp *wgpu.RenderPassEncoder) {
	rp.SetPipeline(pl.Pipeline)
	if pl.vertexBuffer != nil {
		rp.SetVertexBuffer(0, pl.vertexBuffer, 0, wgpu.WholeSize)
	}
	if pl.indexed() {
		rp.SetIndexBuffer(pl.indexBuffer, pl.indexFormat, 0, wgpu.WholeSize)
		rp.DrawIndexed(uint32(pl.indexCount()), 1, 0, 0, 0)
	} else {
		rp.Draw(uint32(pl.vertexCount()), 1, 0, 0)
	}
}

func (pl *Pipeline) Release() {
	if pl.indexBuffer != nil {
		pl.indexBuffer.Release()
		pl.indexBuffer = nil
	}
	if pl.vertexBuffer != nil {
		pl.vertexBuffer.Release()
		pl.vertexBuffer = nil
	}
	if pl.Pipeline != nil {
		pl.Pipeline.Release()
		pl.Pipeline = nil
	}
}
