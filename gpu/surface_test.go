// Copyright (c) 2026, Cadview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"testing"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/stretchr/testify/assert"
)

func TestSurfaceSetSize(t *testing.T) {
	sf := &Surface{}
	assert.False(t, sf.Configured())

	assert.True(t, sf.setSize(image.Point{800, 600}))
	assert.Equal(t, image.Point{800, 600}, sf.Size())

	// zero or negative dimensions leave the prior size in place
	assert.False(t, sf.setSize(image.Point{0, 600}))
	assert.False(t, sf.setSize(image.Point{800, 0}))
	assert.False(t, sf.setSize(image.Point{-1, 600}))
	assert.Equal(t, image.Point{800, 600}, sf.Size())

	// a minimize-style (0,0) between two valid sizes is dropped
	assert.False(t, sf.setSize(image.Point{0, 0}))
	assert.True(t, sf.setSize(image.Point{1024, 768}))
	assert.Equal(t, image.Point{1024, 768}, sf.Size())
}

func TestSurfaceUnconfiguredAcquire(t *testing.T) {
	sf := &Surface{}
	view, err := sf.AcquireNextTexture()
	assert.Nil(t, view)
	assert.ErrorIs(t, err, ErrSurfaceNotConfigured)
}

func TestPreferredFormat(t *testing.T) {
	assert.Equal(t, wgpu.TextureFormatBGRA8UnormSrgb, preferredFormat([]wgpu.TextureFormat{
		wgpu.TextureFormatBGRA8Unorm,
		wgpu.TextureFormatBGRA8UnormSrgb,
		wgpu.TextureFormatRGBA8UnormSrgb,
	}))
	// no sRGB available: fall back to the first supported format
	assert.Equal(t, wgpu.TextureFormatBGRA8Unorm, preferredFormat([]wgpu.TextureFormat{
		wgpu.TextureFormatBGRA8Unorm,
		wgpu.TextureFormatRGBA8Unorm,
	}))
}

func TestIndexFormat(t *testing.T) {
	assert.Equal(t, wgpu.IndexFormatUint16, indexFormat(2))
	assert.Equal(t, wgpu.IndexFormatUint32, indexFormat(4))
}
