// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package gpu

import (
	"image"

	"cogentcore.org/gpudemos/base/errors"
	"cogentcore.org/gpudemos/config"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// note: this file contains the glfw dependencies, for desktop platform builds.

// Init initializes glfw for WebGPU windows.
// IMPORTANT: must be called on the main initial thread!
func Init() error {
	return errors.Log(glfw.Init())
}

// Terminate shuts down glfw -- call as last thing before quitting.
// IMPORTANT: must be called on the main initial thread!
func Terminate() {
	glfw.Terminate()
}

// Window is a glfw window without a GL context, and the WebGPU
// surface drawing into it.
type Window struct {
	Window  *glfw.Window
	Surface *wgpu.Surface

	// Size is the framebuffer size in pixels.
	Size image.Point

	resized bool
}

// GLFWCreateWindow opens a window for cfg and creates its surface.
// Framebuffer size changes are recorded and reported by [Window.Resized].
func GLFWCreateWindow(cfg config.Window) (*Window, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		Terminate()
		return nil, err
	}
	w := &Window{Window: window}
	w.Surface = Instance().CreateSurface(wgpuglfw.GetSurfaceDescriptor(window))
	x, y := window.GetFramebufferSize()
	w.Size = image.Point{x, y}
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.Size = image.Point{width, height}
		w.resized = true
	})
	return w, nil
}

// Poll processes pending events and returns false once the window
// has been asked to close.
func (w *Window) Poll() bool {
	if w.Window.ShouldClose() {
		return false
	}
	glfw.PollEvents()
	return true
}

// Resized returns true once after each framebuffer size change.
func (w *Window) Resized() bool {
	r := w.resized
	w.resized = false
	return r
}

// Terminate destroys the window and shuts down glfw.
// The surface must have been released.
func (w *Window) Terminate() {
	w.Window.Destroy()
	Terminate()
}
