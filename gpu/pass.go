// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"image/color"

	"cogentcore.org/gpudemos/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// Pass records one render pass into the next surface texture.
// Begin it with [Surface.BeginPass], record draws, then call
// [Pass.End] to submit and present. Submission is fire and forget:
// nothing waits on the GPU.
type Pass struct {
	Surface *Surface

	view    *wgpu.TextureView
	encoder *wgpu.CommandEncoder
	render  *wgpu.RenderPassEncoder
}

// ToFloat32 converts a color to the float components used for clears.
func ToFloat32(c color.Color) (r, g, b, a float64) {
	r8, g8, b8, a8 := c.RGBA()
	return float64(r8) / 0xffff, float64(g8) / 0xffff, float64(b8) / 0xffff, float64(a8) / 0xffff
}

// BeginPass acquires the next surface texture and begins a pass that
// clears it to clear, and clears the depth texture to 1 if the
// surface has one.
func (sf *Surface) BeginPass(clear color.Color) (*Pass, error) {
	view, err := sf.AcquireView()
	if err != nil {
		return nil, err
	}
	enc, err := sf.GPU.Device.CreateCommandEncoder(nil)
	if errors.Log(err) != nil {
		view.Release()
		return nil, err
	}
	r, g, b, a := ToFloat32(clear)
	rpd := &wgpu.RenderPassDescriptor{
		ColorAttachments: []wgpu.RenderPassColorAttachment{{
			View:       view,
			LoadOp:     wgpu.LoadOpClear,
			StoreOp:    wgpu.StoreOpStore,
			ClearValue: wgpu.Color{R: r, G: g, B: b, A: a},
		}},
	}
	if sf.depthView != nil {
		rpd.DepthStencilAttachment = &wgpu.RenderPassDepthStencilAttachment{
			View:            sf.depthView,
			DepthLoadOp:     wgpu.LoadOpClear,
			DepthStoreOp:    wgpu.StoreOpDiscard,
			DepthClearValue: 1,
		}
	}
	return &Pass{Surface: sf, view: view, encoder: enc, render: enc.BeginRenderPass(rpd)}, nil
}

// SetPipeline sets the pipeline for the following draws.
func (ps *Pass) SetPipeline(pl *Pipeline) {
	ps.render.SetPipeline(pl.renderPipeline)
}

// SetBindGroup binds a group made by [Pipeline.NewBindGroup] at index 0.
// A nil group is ignored.
func (ps *Pass) SetBindGroup(bg *wgpu.BindGroup) {
	if bg == nil {
		return
	}
	ps.render.SetBindGroup(0, bg, nil)
}

// SetVertexBuffer binds a vertex buffer to the given slot.
func (ps *Pass) SetVertexBuffer(slot int, bf *Buffer) {
	ps.render.SetVertexBuffer(uint32(slot), bf.buffer, 0, wgpu.WholeSize)
}

// Draw draws vertices instanced instances times.
func (ps *Pass) Draw(vertices, instances int) {
	ps.render.Draw(uint32(vertices), uint32(instances), 0, 0)
}

// DrawIndexed draws all indexes of an index buffer.
func (ps *Pass) DrawIndexed(idx *Buffer, instances int) {
	ps.render.SetIndexBuffer(idx.buffer, idx.Type.IndexType(), 0, wgpu.WholeSize)
	ps.render.DrawIndexed(uint32(idx.Len()), uint32(instances), 0, 0, 0)
}

// End ends the pass, submits the commands and presents the frame.
func (ps *Pass) End() error {
	ps.render.End()
	ps.render.Release() // must happen before Finish
	defer ps.view.Release()
	defer ps.encoder.Release()
	cmd, err := ps.encoder.Finish(nil)
	if errors.Log(err) != nil {
		return err
	}
	ps.Surface.GPU.Queue.Submit(cmd)
	cmd.Release()
	ps.Surface.Present()
	return nil
}
