// Copyright (c) 2026, Cadview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command brepview is a minimal windowed 3D viewer: it opens a
// window, draws colored geometry through a camera, and moves the
// camera with WASD or the arrow keys. Q or Escape quits.
package main

import (
	_ "embed"
	"flag"
	"image"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/cadview/brepview/gpu"
	"github.com/cadview/brepview/mesh"
	"github.com/cadview/brepview/viewer"
	"github.com/go-gl/glfw/v3.3/glfw"
)

//go:embed shader.wgsl
var shaderSource string

func init() {
	// must lock main thread for gpu!
	runtime.LockOSThread()
}

func main() {
	pentagon := flag.Bool("pentagon", false, "draw the indexed pentagon instead of the triangle")
	flag.Parse()
	if os.Getenv("BREPVIEW_DEBUG") != "" {
		gpu.Debug = true
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	if err := run(*pentagon); err != nil {
		slog.Error("brepview", "err", err)
		os.Exit(1)
	}
}

// keyCode maps glfw keys to viewer keys; unmapped keys are dropped.
var keyCode = map[glfw.Key]viewer.Key{
	glfw.KeyEscape: viewer.KeyEscape,
	glfw.KeyQ:      viewer.KeyQ,
	glfw.KeyW:      viewer.KeyW,
	glfw.KeyA:      viewer.KeyA,
	glfw.KeyS:      viewer.KeyS,
	glfw.KeyD:      viewer.KeyD,
	glfw.KeyUp:     viewer.KeyUp,
	glfw.KeyDown:   viewer.KeyDown,
	glfw.KeyLeft:   viewer.KeyLeft,
	glfw.KeyRight:  viewer.KeyRight,
}

func run(pentagon bool) error {
	size := image.Point{1024, 768}

	gp := gpu.NewGPU()
	window, wsf, err := gpu.GLFWCreateWindow(gp, size, "brepview")
	if err != nil {
		return err
	}
	defer func() {
		window.Destroy()
		gpu.Terminate()
	}()

	if err := gp.Config("brepview", wsf); err != nil {
		return err
	}
	defer gp.Release()
	dev, err := gpu.NewDevice(gp)
	if err != nil {
		return err
	}
	defer dev.Release()
	sf := gpu.NewSurface(gp, wsf, dev, size)
	defer sf.Release()
	slog.Info("brepview: surface ready", "format", sf.Format, "size", sf.Size())

	// events are queued from glfw callbacks and dispatched in order
	// on each tick of the frame loop.
	var pending []viewer.Event
	redraw := false

	ap := &viewer.App{
		Title: "brepview",
		Size:  size,
		Init: func(sz image.Point) (*viewer.State, error) {
			st, err := viewer.NewState(gp, dev, sf)
			if err != nil {
				return nil, err
			}
			st.Renderer.SetRedrawFunc(func() { redraw = true })
			ms := mesh.Triangle()
			if pentagon {
				ms = mesh.Pentagon()
			}
			pi := ms.PipelineInfo("brepview", gpu.ShaderInfo{Name: "shader", Source: shaderSource})
			if err := st.SetPipeline(pi); err != nil {
				st.Release()
				return nil, err
			}
			return st, nil
		},
	}

	window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		pending = append(pending, viewer.Event{Kind: viewer.Resized, Size: image.Point{width, height}})
	})
	window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		code, ok := keyCode[key]
		if !ok || action == glfw.Repeat {
			return
		}
		pending = append(pending, viewer.Event{Kind: viewer.KeyInput, Key: code, Pressed: action == glfw.Press})
	})

	if err := ap.HandleEvent(viewer.Event{Kind: viewer.Resumed}); err != nil {
		return err
	}
	defer ap.State.Release()
	redraw = true

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()
	for !ap.Done() {
		<-ticker.C
		if window.ShouldClose() {
			if err := ap.HandleEvent(viewer.Event{Kind: viewer.Closed}); err != nil {
				return err
			}
			continue
		}
		glfw.PollEvents()
		evs := pending
		pending = nil
		for _, ev := range evs {
			if err := ap.HandleEvent(ev); err != nil {
				return err
			}
		}
		if redraw {
			redraw = false
			if err := ap.HandleEvent(viewer.Event{Kind: viewer.RedrawRequested}); err != nil {
				return err
			}
		}
	}
	return nil
}
