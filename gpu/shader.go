// Copyright (c) 2026, Cadview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// ShaderInfo specifies a WGSL shader and the entry points used
// for rendering from it.
type ShaderInfo struct {
	// Name is used for the module label and in error messages.
	Name string

	// Source is the WGSL source code.
	Source string

	// VertexEntry is the vertex entry point function name.
	// Defaults to vs_main.
	VertexEntry string

	// FragmentEntry is the fragment entry point function name.
	// Defaults to fs_main.
	FragmentEntry string
}

func (sh *ShaderInfo) defaults() {
	if sh.VertexEntry == "" {
		sh.VertexEntry = "vs_main"
	}
	if sh.FragmentEntry == "" {
		sh.FragmentEntry = "fs_main"
	}
}

// Module compiles the shader source into a module on given device.
func (sh *ShaderInfo) Module(dev *Device) (*wgpu.ShaderModule, error) {
	mod, err := dev.Device.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          sh.Name,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: sh.Source},
	})
	if err != nil {
		return nil, errors.Log(fmt.Errorf("%w: %s: %w", ErrShaderCompile, sh.Name, err))
	}
	return mod, nil
}
