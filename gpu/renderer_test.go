// Copyright (c) 2026, Cadview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRendererUnconfiguredNoop(t *testing.T) {
	rd := NewRenderer(nil, &Surface{})
	redraws := 0
	rd.SetRedrawFunc(func() { redraws++ })

	// rendering without a configured surface is a no-op, but still
	// schedules the next frame so rendering starts once configured
	assert.NoError(t, rd.RenderFrame())
	assert.Equal(t, 1, redraws)
	assert.NoError(t, rd.RenderFrame())
	assert.Equal(t, 2, redraws)
}

func TestRendererAcquireError(t *testing.T) {
	// configured surface with no usable handle: acquire fails
	sf := &Surface{configured: true}
	rd := NewRenderer(nil, sf)
	redraws := 0
	rd.SetRedrawFunc(func() { redraws++ })

	// the failure is reported upward, not swallowed, and the next
	// frame is still scheduled so the caller can recover and retry
	err := rd.RenderFrame()
	assert.ErrorIs(t, err, ErrSurfaceAcquire)
	assert.Equal(t, 1, redraws)
}

func TestRendererPipelineSwap(t *testing.T) {
	rd := NewRenderer(nil, &Surface{})

	pa := &Pipeline{Name: "a"}
	rd.SetPipeline(pa)
	assert.Nil(t, rd.Pipeline())

	// the swap only happens between frames
	assert.NoError(t, rd.RenderFrame())
	assert.Equal(t, pa, rd.Pipeline())

	pb := &Pipeline{Name: "b"}
	rd.SetPipeline(pb)
	assert.Equal(t, pa, rd.Pipeline())
	assert.NoError(t, rd.RenderFrame())
	assert.Equal(t, pb, rd.Pipeline())
}

func TestRendererClearColor(t *testing.T) {
	rd := NewRenderer(nil, &Surface{})
	assert.Equal(t, 0.1, rd.ClearColor.R)
	assert.Equal(t, 0.2, rd.ClearColor.G)
	assert.Equal(t, 0.3, rd.ClearColor.B)
	assert.Equal(t, 1.0, rd.ClearColor.A)
}
