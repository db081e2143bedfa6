// Copyright (c) 2026, Cadview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"
	"unsafe"

	"github.com/cadview/brepview/gpu"
	"github.com/stretchr/testify/assert"
)

func TestVertexLayout(t *testing.T) {
	assert.Equal(t, uintptr(24), unsafe.Sizeof(Vertex{}))
	vl := Layout()
	assert.Equal(t, uint64(24), vl.ArrayStride)
	assert.Equal(t, uint64(0), vl.Attributes[0].Offset)
	assert.Equal(t, uint64(12), vl.Attributes[1].Offset)
	assert.Equal(t, uint32(0), vl.Attributes[0].ShaderLocation)
	assert.Equal(t, uint32(1), vl.Attributes[1].ShaderLocation)
}

func TestTrianglePipelineInfo(t *testing.T) {
	pi := Triangle().PipelineInfo("tri", gpu.ShaderInfo{Name: "tri", Source: "x"})
	assert.Equal(t, 3*24, len(pi.VertexData))
	assert.Nil(t, pi.IndexData)
	assert.Equal(t, 0, pi.IndexStride)
}

func TestPentagonPipelineInfo(t *testing.T) {
	pi := Pentagon().PipelineInfo("pent", gpu.ShaderInfo{Name: "pent", Source: "x"})
	assert.Equal(t, 5*24, len(pi.VertexData))
	assert.Equal(t, 9*4, len(pi.IndexData))
	assert.Equal(t, 4, pi.IndexStride)
}
