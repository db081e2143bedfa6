// Copyright (c) 2026, Cadview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu manages WebGPU rendering for the viewer: device and
// surface negotiation, declarative pipeline building, and the
// per-frame acquire, draw, submit, present cycle.
package gpu

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Debug turns on additional logging of device and surface
// configuration. Set from the BREPVIEW_DEBUG env var in the viewer.
var Debug = false

var (
	// ErrNoAdapter means no usable GPU adapter was found.
	ErrNoAdapter = errors.New("gpu: no suitable adapter found")

	// ErrDeviceRequest means the adapter refused to provide a device.
	ErrDeviceRequest = errors.New("gpu: device request failed")

	// ErrSurfaceBinding means no surface could be created for the
	// native window handle.
	ErrSurfaceBinding = errors.New("gpu: surface binding failed")

	// ErrSurfaceNotConfigured means the surface has no valid
	// configuration yet, so no texture can be acquired from it.
	ErrSurfaceNotConfigured = errors.New("gpu: surface is not configured")

	// ErrSurfaceAcquire wraps a failure to acquire the next frame
	// texture: the surface was lost, outdated, or timed out.
	ErrSurfaceAcquire = errors.New("gpu: surface texture acquire failed")

	// ErrShaderCompile means shader module creation failed.
	ErrShaderCompile = errors.New("gpu: shader module creation failed")
)

// GPU represents the GPU hardware and the WebGPU instance and
// adapter used to access it. One GPU can serve multiple surfaces.
// Create with NewGPU, then Config after any presentation surface
// exists, so the adapter is known to be able to present to it.
type GPU struct {
	// Instance represents the WebGPU system overall.
	// It is created immediately in NewGPU so that surfaces
	// can be made from it prior to adapter selection.
	Instance *wgpu.Instance

	// Adapter represents the physical GPU hardware selected.
	Adapter *wgpu.Adapter

	// DeviceName is the name given to Config, used for
	// labels and log messages.
	DeviceName string
}

// NewGPU returns a new GPU with the WebGPU instance created,
// ready for Config.
func NewGPU() *GPU {
	gp := &GPU{}
	gp.Instance = wgpu.CreateInstance(nil)
	return gp
}

// Config configures the GPU by selecting an adapter, preferring
// high-performance hardware. If surface is non-nil, the adapter
// is required to be compatible with it, i.e., able to present
// to that surface. Surface is nil for compute or test-only use.
func (gp *GPU) Config(name string, surface *wgpu.Surface) error {
	gp.DeviceName = name
	opts := &wgpu.RequestAdapterOptions{
		PowerPreference:   wgpu.PowerPreferenceHighPerformance,
		CompatibleSurface: surface,
	}
	adapter, err := gp.Instance.RequestAdapter(opts)
	if err != nil {
		return errors.Log(fmt.Errorf("%w: %w", ErrNoAdapter, err))
	}
	gp.Adapter = adapter
	if Debug {
		slog.Info("gpu: adapter selected", "name", name)
	}
	return nil
}

// Release releases GPU resources. Call at end, after all
// devices and surfaces made from this GPU have been released.
func (gp *GPU) Release() {
	if gp.Adapter != nil {
		gp.Adapter.Release()
		gp.Adapter = nil
	}
	if gp.Instance != nil {
		gp.Instance.Release()
		gp.Instance = nil
	}
}

// NoDisplayGPU returns a GPU and Device configured without any
// display surface, for offscreen and testing use.
func NoDisplayGPU() (*GPU, *Device, error) {
	gp := NewGPU()
	if err := gp.Config("nodisplay", nil); err != nil {
		return nil, nil, err
	}
	dev, err := NewDevice(gp)
	if err != nil {
		return nil, nil, err
	}
	return gp, dev, nil
}
