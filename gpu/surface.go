// Copyright (c) 2026, Cadview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Surface manages the window surface that rendering targets:
// its texture format, size, and presentation configuration.
// The format and the alpha and present modes are negotiated once,
// at creation, from the surface capabilities; only the size
// changes thereafter, via SetSize.
type Surface struct {
	// Format is the texture format of the surface, which render
	// pipelines targeting it must use. An sRGB format is selected
	// when the surface supports one.
	Format wgpu.TextureFormat

	surface *wgpu.Surface
	adapter *wgpu.Adapter
	device  *Device

	// config is the current surface configuration; its Width and
	// Height are only ever set to nonzero values.
	config wgpu.SurfaceConfiguration

	// configured is set on the first SetSize with valid dimensions.
	// Until then no texture can be acquired from the surface.
	configured bool

	// curTexture is the texture acquired for the current frame,
	// released on Present.
	curTexture *wgpu.Texture
}

// NewSurface configures a Surface for presentation on given device,
// negotiating format and modes against the adapter capabilities.
// If size has a zero dimension, the surface is left unconfigured
// until a later SetSize provides valid dimensions.
func NewSurface(gp *GPU, wsf *wgpu.Surface, dev *Device, size image.Point) *Surface {
	sf := &Surface{surface: wsf, adapter: gp.Adapter, device: dev}
	caps := wsf.GetCapabilities(gp.Adapter)
	sf.Format = preferredFormat(caps.Formats)
	sf.config = wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      sf.Format,
		PresentMode: caps.PresentModes[0],
		AlphaMode:   caps.AlphaModes[0],
	}
	if Debug {
		slog.Info("gpu: surface", "format", sf.Format, "size", size)
	}
	sf.SetSize(size)
	return sf
}

// preferredFormat selects the surface format: the first sRGB format
// the surface supports, else the first supported format.
func preferredFormat(formats []wgpu.TextureFormat) wgpu.TextureFormat {
	for _, f := range formats {
		if isSRGB(f) {
			return f
		}
	}
	if len(formats) > 0 {
		return formats[0]
	}
	return wgpu.TextureFormatBGRA8UnormSrgb
}

func isSRGB(f wgpu.TextureFormat) bool {
	switch f {
	case wgpu.TextureFormatRGBA8UnormSrgb, wgpu.TextureFormatBGRA8UnormSrgb:
		return true
	}
	return false
}

// Size returns the current surface size in pixels.
func (sf *Surface) Size() image.Point {
	return image.Point{int(sf.config.Width), int(sf.config.Height)}
}

// Configured reports whether the surface has been configured with
// valid dimensions, and can therefore provide frame textures.
func (sf *Surface) Configured() bool {
	return sf.configured
}

// SetSize reconfigures the surface for a new size in pixels,
// e.g., when the window is resized. A zero or negative dimension,
// as delivered while a window is minimized, is ignored: the prior
// configuration remains in effect.
func (sf *Surface) SetSize(size image.Point) {
	if !sf.setSize(size) {
		return
	}
	sf.surface.Configure(sf.adapter, sf.device.Device, &sf.config)
	sf.configured = true
}

// setSize validates and records the new size in the configuration,
// reporting whether the surface needs to be (re)configured.
func (sf *Surface) setSize(size image.Point) bool {
	if size.X <= 0 || size.Y <= 0 {
		return false
	}
	sf.config.Width = uint32(size.X)
	sf.config.Height = uint32(size.Y)
	return true
}

// Reconfigure reapplies the current configuration, to recover from
// a lost or outdated surface. No-op if never configured.
func (sf *Surface) Reconfigure() {
	if !sf.configured {
		return
	}
	sf.surface.Configure(sf.adapter, sf.device.Device, &sf.config)
}

// AcquireNextTexture gets the texture view to render this frame
// into. Returns ErrSurfaceNotConfigured if the surface does not
// have a valid configuration yet. Call Present after rendering
// to release the underlying texture.
func (sf *Surface) AcquireNextTexture() (*wgpu.TextureView, error) {
	if !sf.configured || sf.surface == nil {
		return nil, ErrSurfaceNotConfigured
	}
	tex, err := sf.surface.GetCurrentTexture()
	if err != nil {
		return nil, err
	}
	sf.curTexture = tex
	view, err := tex.CreateView(nil)
	if err != nil {
		return nil, errors.Log(err)
	}
	return view, nil
}

// Present presents the rendered frame to the window, releasing
// the texture acquired for it.
func (sf *Surface) Present() {
	sf.surface.Present()
	if sf.curTexture != nil {
		sf.curTexture.Release()
		sf.curTexture = nil
	}
}

func (sf *Surface) Release() {
	if sf.curTexture != nil {
		sf.curTexture.Release()
		sf.curTexture = nil
	}
	if sf.surface != nil {
		sf.surface.Release()
		sf.surface = nil
	}
}
