// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !offscreen && ((darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd)

package glgpu

import (
	"image"
	"log/slog"

	"cogentcore.org/gpudemos/base/errors"
	"cogentcore.org/gpudemos/config"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// Init initializes glfw.
// IMPORTANT: must be called on the main initial thread!
func Init() error {
	return errors.Log(glfw.Init())
}

// Terminate shuts down glfw -- call as last thing before quitting.
// IMPORTANT: must be called on the main initial thread!
func Terminate() {
	glfw.Terminate()
}

// Window is a glfw window with a current GL 4.1 core context.
type Window struct {
	*glfw.Window
}

// NewWindow opens a window for cfg, makes its context current and
// loads the GL function pointers. [Init] must have been called.
func NewWindow(cfg config.Window) (*Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	w, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	w.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		w.Destroy()
		return nil, err
	}
	glfw.SwapInterval(1)
	slog.Info("OpenGL", "version", gl.GoStr(gl.GetString(gl.VERSION)), "glsl", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))
	return &Window{Window: w}, nil
}

// Poll processes pending events and returns false once the window
// has been asked to close.
func (w *Window) Poll() bool {
	if w.ShouldClose() {
		return false
	}
	glfw.PollEvents()
	return true
}

// FramebufferSize returns the drawable size in pixels, which differs
// from the window size on high-DPI screens.
func (w *Window) FramebufferSize() image.Point {
	x, y := w.GetFramebufferSize()
	return image.Point{x, y}
}
