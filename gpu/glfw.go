// Copyright (c) 2026, Cadview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && !generatehtml && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package gpu

import (
	"image"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// note: this file contains the glfw dependencies, for desktop platform builds.
// other platforms need to provide their own windowing and surface creation.

// Init initializes the windowing system for display use.
// IMPORTANT: must be called on the main initial thread!
func Init() error {
	return errors.Log(glfw.Init())
}

// Terminate shuts down the windowing system; call as the last
// thing before quitting.
// IMPORTANT: must be called on the main initial thread!
func Terminate() {
	glfw.Terminate()
}

// GLFWCreateWindow makes a new glfw window of given size and title,
// without any client graphics API, and creates a WebGPU surface
// for it on the given GPU instance. Calls Init.
func GLFWCreateWindow(gp *GPU, size image.Point, title string) (*glfw.Window, *wgpu.Surface, error) {
	if err := Init(); err != nil {
		return nil, nil, err
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(size.X, size.Y, title, nil, nil)
	if err != nil {
		return nil, nil, errors.Log(err)
	}
	surface := gp.Instance.CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))
	if surface == nil {
		window.Destroy()
		return nil, nil, errors.Log(ErrSurfaceBinding)
	}
	return window, surface, nil
}
