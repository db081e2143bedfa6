// Copyright (c) 2026, Cadview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package viewer

import (
	"errors"
	"image"
	"log/slog"
	"unsafe"

	"github.com/cadview/brepview/camera"
	"github.com/cadview/brepview/gpu"
	"github.com/cogentcore/webgpu/wgpu"
)

// State is the live rendering state of the viewer window: the GPU
// resources, renderer, and camera. It is built on Resumed via
// NewState, and receives the resize, redraw, and key events.
type State struct {
	// GPU is the instance and adapter.
	GPU *gpu.GPU

	// Device is the logical device and queue.
	Device *gpu.Device

	// Surface is the window surface rendering targets.
	Surface *gpu.Surface

	// Renderer runs the per-frame protocol on Surface.
	Renderer *gpu.Renderer

	// Camera is the viewer camera.
	Camera *camera.Camera

	// Controller applies key-driven movement to Camera.
	Controller *camera.Controller

	uniform      *camera.Uniform
	cameraBuffer *wgpu.Buffer
	cameraLayout *wgpu.BindGroupLayout
	cameraGroup  *wgpu.BindGroup
}

// cameraSpeed is the camera movement per frame while a key is held.
const cameraSpeed = 0.2

// NewState builds the viewer state on the given device and surface:
// renderer, camera, and the camera uniform buffer and bind group.
// Call SetPipeline afterward to give it something to draw.
func NewState(gp *gpu.GPU, dev *gpu.Device, sf *gpu.Surface) (*State, error) {
	st := &State{GPU: gp, Device: dev, Surface: sf}
	st.Renderer = gpu.NewRenderer(dev, sf)
	st.Camera = camera.NewCamera(aspect(sf.Size()))
	st.Controller = camera.NewController(cameraSpeed)
	st.uniform = camera.NewUniform()
	st.uniform.Update(st.Camera)

	buf, err := gpu.NewUniformBuffer(dev, "camera", int(unsafe.Sizeof(camera.Uniform{})))
	if err != nil {
		st.Release()
		return nil, err
	}
	st.cameraBuffer = buf
	layout, bg, err := gpu.NewUniformBindGroup(dev, "camera", buf, wgpu.ShaderStageVertex)
	if err != nil {
		st.Release()
		return nil, err
	}
	st.cameraLayout = layout
	st.cameraGroup = bg
	st.Renderer.SetBindGroups(bg)
	if err := gpu.SetBufferFrom(dev, buf, []camera.Uniform{*st.uniform}); err != nil {
		st.Release()
		return nil, err
	}
	return st, nil
}

func aspect(size image.Point) float32 {
	if size.Y <= 0 {
		return 1
	}
	return float32(size.X) / float32(size.Y)
}

// SetPipeline builds the pipeline described by info, targeting the
// surface format and using the camera bind group at group 0, and
// installs it in the renderer.
func (st *State) SetPipeline(pi *gpu.PipelineInfo) error {
	pi.BindLayouts = []*wgpu.BindGroupLayout{st.cameraLayout}
	pl, err := gpu.BuildPipeline(st.Device, st.Surface.Format, pi)
	if err != nil {
		return err
	}
	st.Renderer.SetPipeline(pl)
	return nil
}

// Resize reconfigures the surface and camera for a new framebuffer
// size. Zero dimensions leave the surface configuration unchanged.
func (st *State) Resize(size image.Point) {
	st.Surface.SetSize(size)
	if sz := st.Surface.Size(); sz.Y > 0 {
		st.Camera.SetAspect(aspect(sz))
	}
}

// RenderFrame applies one camera movement step, uploads the camera
// uniform, and renders one frame. A lost or outdated surface is
// reconfigured here and the frame dropped; the redraw the renderer
// already scheduled retries it. Other errors propagate.
func (st *State) RenderFrame() error {
	st.Controller.Update(st.Camera)
	st.uniform.Update(st.Camera)
	if st.cameraBuffer != nil {
		err := gpu.SetBufferFrom(st.Device, st.cameraBuffer, []camera.Uniform{*st.uniform})
		if err != nil {
			return err
		}
	}
	err := st.Renderer.RenderFrame()
	if errors.Is(err, gpu.ErrSurfaceAcquire) {
		if gpu.Debug {
			slog.Info("viewer: surface lost, reconfiguring", "err", err)
		}
		st.Surface.Reconfigure()
		return nil
	}
	return err
}

// Key handles one key press or release, reporting true if the app
// should exit. Escape and Q quit; WASD and the arrow keys drive
// the camera controller.
func (st *State) Key(key Key, pressed bool) bool {
	switch key {
	case KeyEscape, KeyQ:
		return pressed
	}
	if mv, ok := moveKeys[key]; ok {
		st.Controller.SetMove(mv, pressed)
	}
	return false
}

// Release frees the GPU resources the State owns. The device,
// surface, and GPU are owned by the caller that built them.
func (st *State) Release() {
	if st.Renderer != nil {
		st.Renderer.Release()
	}
	if st.cameraGroup != nil {
		st.cameraGroup.Release()
		st.cameraGroup = nil
	}
	if st.cameraLayout != nil {
		st.cameraLayout.Release()
		st.cameraLayout = nil
	}
	if st.cameraBuffer != nil {
		st.cameraBuffer.Release()
		st.cameraBuffer = nil
	}
}
