// Copyright (c) 2026, Cadview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Device holds a logical Device and its associated Queue.
// All buffer writes and command submission go through the Queue.
type Device struct {
	// logical device
	Device *wgpu.Device

	// queue for device
	Queue *wgpu.Queue
}

// NewDevice requests a new logical device from the GPU adapter,
// with default limits.
func NewDevice(gp *GPU) (*Device, error) {
	wdev, err := gp.Adapter.RequestDevice(&wgpu.DeviceDescriptor{
		Label:          gp.DeviceName,
		RequiredLimits: &wgpu.RequiredLimits{Limits: wgpu.DefaultLimits()},
	})
	if err != nil {
		return nil, errors.Log(fmt.Errorf("%w: %w", ErrDeviceRequest, err))
	}
	return &Device{Device: wdev, Queue: wdev.GetQueue()}, nil
}

// WaitDone blocks until the device is done with all submitted work.
func (dv *Device) WaitDone() {
	if dv.Device == nil {
		return
	}
	dv.Device.Poll(true, nil)
}

func (dv *Device) Release() {
	if dv.Device == nil {
		return
	}
	dv.WaitDone()
	dv.Device.Release()
	dv.Device = nil
	dv.Queue = nil
}
