// Copyright (c) 2022, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image"
	"log/slog"

	"cogentcore.org/gpudemos/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// DepthFormat is the format of the depth buffer.
const DepthFormat = wgpu.TextureFormatDepth24Plus

// Surface is a window-backed render target: it owns the swap chain
// configuration and, when requested, a depth texture that tracks
// the surface size.
type Surface struct {
	GPU *GPU

	// Format is the preferred surface format, reported by the adapter.
	Format wgpu.TextureFormat

	// Size is the current size in pixels.
	Size image.Point

	// HasDepth is set to maintain a depth texture.
	HasDepth bool

	surface   *wgpu.Surface
	alphaMode wgpu.CompositeAlphaMode
	depth     *wgpu.Texture
	depthView *wgpu.TextureView
	current   *wgpu.Texture
}

// NewSurface configures the given window surface for gp at the given
// size, with a depth texture if depth is set.
func NewSurface(gp *GPU, surface *wgpu.Surface, size image.Point, depth bool) (*Surface, error) {
	caps := surface.GetCapabilities(gp.Adapter)
	if len(caps.Formats) == 0 {
		return nil, errors.Log(errors.Join(ErrUnsupported, errors.New("gpu: surface has no formats")))
	}
	sf := &Surface{GPU: gp, Format: caps.Formats[0], Size: size, HasDepth: depth, surface: surface}
	if len(caps.AlphaModes) > 0 {
		sf.alphaMode = caps.AlphaModes[0]
	}
	slog.Debug("gpu surface", "format", sf.Format, "size", size)
	if err := sf.configure(); err != nil {
		return nil, err
	}
	return sf, nil
}

// Aspect returns width / height, or 1 for an empty surface.
func (sf *Surface) Aspect() float32 {
	if sf.Size.Y <= 0 {
		return 1
	}
	return float32(sf.Size.X) / float32(sf.Size.Y)
}

// Resized reconfigures the surface and depth texture for a new size.
// A size with a zero dimension (a minimized window) is recorded but
// leaves the surface unconfigured until the next non-empty size.
func (sf *Surface) Resized(size image.Point) error {
	if size == sf.Size {
		return nil
	}
	sf.Size = size
	return sf.configure()
}

// Empty is true when the surface has no pixels to draw into.
func (sf *Surface) Empty() bool {
	return sf.Size.X <= 0 || sf.Size.Y <= 0
}

func (sf *Surface) configure() error {
	if sf.Empty() {
		return nil
	}
	sf.surface.Configure(sf.GPU.Adapter, sf.GPU.Device, &wgpu.SurfaceConfiguration{
		Usage:       wgpu.TextureUsageRenderAttachment,
		Format:      sf.Format,
		Width:       uint32(sf.Size.X),
		Height:      uint32(sf.Size.Y),
		PresentMode: wgpu.PresentModeFifo,
		AlphaMode:   sf.alphaMode,
	})
	if !sf.HasDepth {
		return nil
	}
	sf.releaseDepth()
	tex, err := sf.GPU.Device.CreateTexture(&wgpu.TextureDescriptor{
		Label: "depth",
		Size: wgpu.Extent3D{
			Width:              uint32(sf.Size.X),
			Height:             uint32(sf.Size.Y),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     wgpu.TextureDimension2D,
		Format:        DepthFormat,
		Usage:         wgpu.TextureUsageRenderAttachment,
	})
	if errors.Log(err) != nil {
		return err
	}
	view, err := newView(tex)
	if err != nil {
		return err
	}
	sf.depth, sf.depthView = tex, view
	return nil
}

// DepthView returns the depth texture view, nil without depth.
func (sf *Surface) DepthView() *wgpu.TextureView {
	return sf.depthView
}

// AcquireView returns a view of the next surface texture to render
// into. It must be followed by [Surface.Present].
func (sf *Surface) AcquireView() (*wgpu.TextureView, error) {
	tex, err := sf.surface.GetCurrentTexture()
	if errors.Log(err) != nil {
		return nil, err
	}
	view, err := newView(tex)
	if err != nil {
		return nil, err
	}
	sf.current = tex
	return view, nil
}

// Present shows the texture returned by the last AcquireView.
func (sf *Surface) Present() {
	sf.surface.Present()
	if sf.current != nil {
		sf.current.Release()
		sf.current = nil
	}
}

// viewTexture is a texture as used by [newView].
type viewTexture interface {
	CreateView(descriptor *wgpu.TextureViewDescriptor) (*wgpu.TextureView, error)
	Release()
}

// newView returns the default view of tex. On failure tex is
// released, as the caller no longer holds it.
func newView(tex viewTexture) (*wgpu.TextureView, error) {
	view, err := tex.CreateView(nil)
	if errors.Log(err) != nil {
		tex.Release()
		return nil, err
	}
	return view, nil
}

func (sf *Surface) releaseDepth() {
	if sf.depthView != nil {
		sf.depthView.Release()
		sf.depthView = nil
	}
	if sf.depth != nil {
		sf.depth.Release()
		sf.depth = nil
	}
}

// Release releases the depth texture and the window surface.
func (sf *Surface) Release() {
	sf.releaseDepth()
	if sf.surface != nil {
		sf.surface.Release()
		sf.surface = nil
	}
}
