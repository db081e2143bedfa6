// Copyright (c) 2026, Cadview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Renderer runs the per-frame protocol for a surface: acquire the
// next texture, record a render pass over the current pipeline,
// submit, and present. It holds a single pipeline slot; a pipeline
// set while a frame is in flight takes effect on the next frame.
type Renderer struct {
	// ClearColor is the color the surface is cleared to at the
	// start of every frame.
	ClearColor wgpu.Color

	device  *Device
	surface *Surface

	// pipeline is the active pipeline; pending replaces it at the
	// start of the next RenderFrame, releasing the old one.
	pipeline *Pipeline
	pending  *Pipeline

	// bindGroups are bound in slot order before drawing.
	bindGroups []*wgpu.BindGroup

	// requestRedraw schedules another frame. It is called on every
	// RenderFrame, including frames skipped because the surface is
	// not configured yet, so rendering starts as soon as it is.
	requestRedraw func()
}

// NewRenderer returns a Renderer for the given device and surface,
// with the default clear color.
func NewRenderer(dev *Device, sf *Surface) *Renderer {
	return &Renderer{
		ClearColor: wgpu.Color{R: 0.1, G: 0.2, B: 0.3, A: 1},
		device:     dev,
		surface:    sf,
	}
}

// SetRedrawFunc sets the callback used to schedule the next frame.
func (rd *Renderer) SetRedrawFunc(fun func()) *Renderer {
	rd.requestRedraw = fun
	return rd
}

// SetPipeline installs a new pipeline, replacing any current one.
// The swap happens between frames; the replaced pipeline is
// released then.
func (rd *Renderer) SetPipeline(pl *Pipeline) {
	if rd.pending != nil {
		rd.pending.Release()
	}
	rd.pending = pl
}

// Pipeline returns the currently active pipeline, nil if none.
func (rd *Renderer) Pipeline() *Pipeline {
	return rd.pipeline
}

// SetBindGroups sets the bind groups bound, in slot order, before
// drawing each frame.
func (rd *Renderer) SetBindGroups(bgs ...*wgpu.BindGroup) {
	rd.bindGroups = bgs
}

// applyPending swaps in a pending pipeline, between frames only.
func (rd *Renderer) applyPending() {
	if rd.pending == nil {
		return
	}
	if rd.pipeline != nil {
		rd.pipeline.Release()
	}
	rd.pipeline = rd.pending
	rd.pending = nil
}

// RenderFrame renders one frame: schedule the next redraw, then
// acquire, record, submit, and present. If the surface is not
// configured yet the frame is a no-op, with no error: the redraw
// request keeps the loop alive until configuration happens.
// A lost, outdated, or timed-out surface is reported upward as an
// error wrapping ErrSurfaceAcquire; the caller decides whether to
// reconfigure and retry on the next redraw or treat it as fatal.
func (rd *Renderer) RenderFrame() error {
	if rd.requestRedraw != nil {
		rd.requestRedraw()
	}
	rd.applyPending()
	if !rd.surface.Configured() {
		return nil
	}
	view, err := rd.surface.AcquireNextTexture()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSurfaceAcquire, err)
	}
	defer view.Release()

	cmd, err := rd.device.Device.CreateCommandEncoder(nil)
	if err != nil {
		return errors.Log(err)
	}
	defer cmd.Release()

	rp := cmd.BeginRenderPass(&wgpu.RenderPassDescriptor{
		Label: "render",
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			ClearValue: rd.ClearColor,
			StoreOp:    wgpu.StoreOpStore,
		}},
	})
	if rd.pipeline != nil {
		for i, bg := range rd.bindGroups {
			rp.SetBindGroup(uint32(i), bg, nil)
		}
		rd.pipeline.draw(rp)
	}
	rp.End()
	rp.Release()

	cmdBuf, err := cmd.Finish(nil)
	if err != nil {
		return errors.Log(err)
	}
	defer cmdBuf.Release()
	rd.device.Queue.Submit(cmdBuf)
	rd.surface.Present()
	return nil
}

func (rd *Renderer) Release() {
	if rd.pending != nil {
		rd.pending.Release()
		rd.pending = nil
	}
	if rd.pipeline != nil {
		rd.pipeline.Release()
		rd.pipeline = nil
	}
	rd.bindGroups = nil
}
