// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gpu is a thin WebGPU backend for the demos: device setup,
// surface configuration with an optional depth buffer, render
// pipelines built from an explicit config, buffers, and a
// per-frame render pass.
package gpu

import (
	"fmt"
	"log/slog"

	"cogentcore.org/gpudemos/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// ErrUnsupported is returned by [NewGPU] when no WebGPU adapter or
// device is available. Demos report it and exit.
var ErrUnsupported = errors.New("gpu: WebGPU is not supported on this system")

var theInstance *wgpu.Instance

// Instance returns the WebGPU instance, creating it on first use.
func Instance() *wgpu.Instance {
	if theInstance == nil {
		theInstance = wgpu.CreateInstance(nil)
	}
	return theInstance
}

// GPU holds the adapter, device and queue used by one demo.
type GPU struct {
	Adapter *wgpu.Adapter
	Device  *wgpu.Device
	Queue   *wgpu.Queue
}

// NewGPU requests an adapter compatible with the given surface
// (which may be nil for offscreen use) and a device on it.
// It returns an error wrapping [ErrUnsupported] on failure.
func NewGPU(surface *wgpu.Surface) (*GPU, error) {
	adapter, err := Instance().RequestAdapter(&wgpu.RequestAdapterOptions{
		CompatibleSurface: surface,
	})
	if err != nil || adapter == nil {
		return nil, fmt.Errorf("%w: adapter: %v", ErrUnsupported, err)
	}
	device, err := adapter.RequestDevice(&wgpu.DeviceDescriptor{Label: "gpudemos"})
	if err != nil || device == nil {
		adapter.Release()
		return nil, fmt.Errorf("%w: device: %v", ErrUnsupported, err)
	}
	slog.Debug("gpu device ready")
	return &GPU{Adapter: adapter, Device: device, Queue: device.GetQueue()}, nil
}

// Release releases the device and adapter.
func (gp *GPU) Release() {
	if gp.Queue != nil {
		gp.Queue.Release()
		gp.Queue = nil
	}
	if gp.Device != nil {
		gp.Device.Release()
		gp.Device = nil
	}
	if gp.Adapter != nil {
		gp.Adapter.Release()
		gp.Adapter = nil
	}
}
