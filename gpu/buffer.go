// Copyright (c) 2026, Cadview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// note: WriteBuffer via the queue is the only write path used here:
// geometry buffers are initialized once, uniforms rewritten per frame.

// NewVertexBuffer creates a vertex buffer initialized with data.
func NewVertexBuffer(dev *Device, label string, data []byte) (*wgpu.Buffer, error) {
	buf, err := dev.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    label + " vertex",
		Contents: data,
		Usage:    wgpu.BufferUsageVertex,
	})
	return buf, errors.Log(err)
}

// NewIndexBuffer creates an index buffer initialized with data.
func NewIndexBuffer(dev *Device, label string, data []byte) (*wgpu.Buffer, error) {
	buf, err := dev.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    label + " index",
		Contents: data,
		Usage:    wgpu.BufferUsageIndex,
	})
	return buf, errors.Log(err)
}

// NewUniformBuffer creates an uninitialized uniform buffer of given
// size, writable from the queue. The buffer is never reallocated:
// per-frame updates go through SetBufferFrom.
func NewUniformBuffer(dev *Device, label string, size int) (*wgpu.Buffer, error) {
	buf, err := dev.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label: label + " uniform",
		Size:  uint64(size),
		Usage: wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst,
	})
	return buf, errors.Log(err)
}

// SetBufferFrom writes the given data, e.g., a single-element slice
// holding a uniform struct, into the buffer through the queue.
func SetBufferFrom[E any](dev *Device, buf *wgpu.Buffer, from []E) error {
	return errors.Log(dev.Queue.WriteBuffer(buf, 0, wgpu.ToBytes(from)))
}

// NewUniformBindGroup creates a bind group layout and bind group
// exposing the given uniform buffer at @binding(0), visible to the
// given shader stages.
func NewUniformBindGroup(dev *Device, label string, buf *wgpu.Buffer, visibility wgpu.ShaderStage) (*wgpu.BindGroupLayout, *wgpu.BindGroup, error) {
	layout, err := dev.Device.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
		Label: label,
		Entries: []wgpu.BindGroupLayoutEntry{{
			Binding:    0,
			Visibility: visibility,
			Buffer: wgpu.BufferBindingLayout{
				Type:             wgpu.BufferBindingTypeUniform,
				HasDynamicOffset: false,
				MinBindingSize:   0,
			},
		}},
	})
	if err != nil {
		return nil, nil, errors.Log(err)
	}
	bg, err := dev.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:  label,
		Layout: layout,
		Entries: []wgpu.BindGroupEntry{{
			Binding: 0,
			Buffer:  buf,
			Offset:  0,
			Size:    wgpu.WholeSize,
		}},
	})
	if err != nil {
		layout.Release()
		return nil, nil, errors.Log(err)
	}
	return layout, bg, nil
}
