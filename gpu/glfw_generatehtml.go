// Copyright (c) 2026, Cadview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build generatehtml

package gpu

import (
	"image"
	"os"

	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/glfw/v3.3/glfw"
)

func init() {
	// Needs immediate clean quit for generatehtml;
	// otherwise, the app will hang forever.
	os.Exit(0)
}

// Init is a no-op on platforms without glfw windows.
func Init() error { return nil }

// Terminate is a no-op on platforms without glfw windows.
func Terminate() {}

// GLFWCreateWindow is a no-op on platforms without glfw windows.
func GLFWCreateWindow(gp *GPU, size image.Point, title string) (*glfw.Window, *wgpu.Surface, error) {
	return nil, nil, nil
}
