// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"

	"cogentcore.org/gpudemos/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
)

// VertexInput is one vertex buffer slot feeding a single
// shader input location.
type VertexInput struct {
	// Type of each element.
	Type Types

	// Location is the @location of the shader input.
	Location uint32

	// Instance advances the input per instance instead of per vertex.
	Instance bool
}

// PipelineConfig describes a render pipeline. The zero value of each
// field is its default, so only what differs needs to be set.
type PipelineConfig struct {
	// Name labels the pipeline and its resources.
	Name string

	// Shader is the WGSL source holding both entry points.
	Shader string

	// VertexEntry is the vertex entry point; default "vs_main".
	VertexEntry string

	// FragmentEntry is the fragment entry point; default "fs_main".
	FragmentEntry string

	// Vertex lists the vertex buffer slots in order; empty for shaders
	// that generate their vertices from the vertex index.
	Vertex []VertexInput

	// Uniforms are the types of the uniform buffers bound in group 0
	// at bindings 0, 1, ... and visible to both stages.
	Uniforms []Types

	// Topology default is TriangleList.
	Topology Topologies

	// CullMode default is no culling.
	CullMode wgpu.CullMode

	// Depth enables depth testing (less) and writes against
	// [DepthFormat].
	Depth bool
}

func (pc *PipelineConfig) defaults() {
	if pc.VertexEntry == "" {
		pc.VertexEntry = "vs_main"
	}
	if pc.FragmentEntry == "" {
		pc.FragmentEntry = "fs_main"
	}
	if pc.CullMode == 0 {
		pc.CullMode = wgpu.CullModeNone
	}
}

// ShaderError is returned when a shader module or the pipeline built
// on it is rejected by the device.
type ShaderError struct {
	Pipeline string
	Err      error
}

func (e *ShaderError) Error() string {
	return fmt.Sprintf("gpu: pipeline %s: shader: %v", e.Pipeline, e.Err)
}

func (e *ShaderError) Unwrap() error {
	return e.Err
}

// Pipeline is a render pipeline and the layout of its uniforms.
type Pipeline struct {
	Name   string
	Config PipelineConfig

	module         *wgpu.ShaderModule
	bindLayout     *wgpu.BindGroupLayout
	layout         *wgpu.PipelineLayout
	renderPipeline *wgpu.RenderPipeline
}

// NewPipeline builds a render pipeline rendering into the given
// color format. Failures compiling the shader or creating the
// pipeline are returned as a [*ShaderError].
func (gp *GPU) NewPipeline(cfg PipelineConfig, format wgpu.TextureFormat) (*Pipeline, error) {
	cfg.defaults()
	pl := &Pipeline{Name: cfg.Name, Config: cfg}
	dev := gp.Device

	module, err := dev.CreateShaderModule(&wgpu.ShaderModuleDescriptor{
		Label:          cfg.Name,
		WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{Code: cfg.Shader},
	})
	if err != nil {
		return nil, errors.Log(&ShaderError{Pipeline: cfg.Name, Err: err})
	}
	pl.module = module

	var lays []*wgpu.BindGroupLayout
	if len(cfg.Uniforms) > 0 {
		entries := make([]wgpu.BindGroupLayoutEntry, len(cfg.Uniforms))
		for i, tp := range cfg.Uniforms {
			entries[i] = wgpu.BindGroupLayoutEntry{
				Binding:    uint32(i),
				Visibility: wgpu.ShaderStageVertex | wgpu.ShaderStageFragment,
				Buffer: wgpu.BufferBindingLayout{
					Type:           wgpu.BufferBindingTypeUniform,
					MinBindingSize: uint64(tp.Bytes()),
				},
			}
		}
		bl, err := dev.CreateBindGroupLayout(&wgpu.BindGroupLayoutDescriptor{
			Label:   cfg.Name,
			Entries: entries,
		})
		if errors.Log(err) != nil {
			pl.Release()
			return nil, err
		}
		pl.bindLayout = bl
		lays = append(lays, bl)
	}
	layout, err := dev.CreatePipelineLayout(&wgpu.PipelineLayoutDescriptor{
		Label:            cfg.Name,
		BindGroupLayouts: lays,
	})
	if errors.Log(err) != nil {
		pl.Release()
		return nil, err
	}
	pl.layout = layout

	pd := &wgpu.RenderPipelineDescriptor{
		Label:  cfg.Name,
		Layout: layout,
		Vertex: wgpu.VertexState{
			Module:     module,
			EntryPoint: cfg.VertexEntry,
			Buffers:    cfg.vertexLayout(),
		},
		Fragment: &wgpu.FragmentState{
			Module:     module,
			EntryPoint: cfg.FragmentEntry,
			Targets: []wgpu.ColorTargetState{{
				Format:    format,
				Blend:     &wgpu.BlendStateReplace,
				WriteMask: wgpu.ColorWriteMaskAll,
			}},
		},
		Primitive: wgpu.PrimitiveState{
			Topology:  cfg.Topology.Primitive(),
			FrontFace: wgpu.FrontFaceCCW,
			CullMode:  cfg.CullMode,
		},
		Multisample: wgpu.MultisampleState{
			Count: 1,
			Mask:  0xFFFFFFFF,
		},
	}
	if cfg.Depth {
		pd.DepthStencil = &wgpu.DepthStencilState{
			Format:            DepthFormat,
			DepthWriteEnabled: true,
			DepthCompare:      wgpu.CompareFunctionLess,
			StencilFront:      wgpu.StencilFaceState{Compare: wgpu.CompareFunctionAlways},
			StencilBack:       wgpu.StencilFaceState{Compare: wgpu.CompareFunctionAlways},
		}
	}
	rp, err := dev.CreateRenderPipeline(pd)
	if err != nil {
		pl.Release()
		err = &ShaderError{Pipeline: cfg.Name, Err: err}
		slog.Error(err.Error())
		return nil, err
	}
	pl.renderPipeline = rp
	return pl, nil
}

// vertexLayout returns one buffer layout per vertex input.
func (pc *PipelineConfig) vertexLayout() []wgpu.VertexBufferLayout {
	if len(pc.Vertex) == 0 {
		return nil
	}
	vl := make([]wgpu.VertexBufferLayout, len(pc.Vertex))
	for i, vi := range pc.Vertex {
		step := wgpu.VertexStepModeVertex
		if vi.Instance {
			step = wgpu.VertexStepModeInstance
		}
		vl[i] = wgpu.VertexBufferLayout{
			ArrayStride: uint64(vi.Type.Bytes()),
			StepMode:    step,
			Attributes: []wgpu.VertexAttribute{{
				Format:         vi.Type.VertexFormat(),
				Offset:         0,
				ShaderLocation: vi.Location,
			}},
		}
	}
	return vl
}

// NewBindGroup binds the given uniform buffers, in the order of
// [PipelineConfig.Uniforms].
func (pl *Pipeline) NewBindGroup(gp *GPU, uniforms ...*Buffer) (*wgpu.BindGroup, error) {
	if len(uniforms) != len(pl.Config.Uniforms) {
		return nil, errors.Log(fmt.Errorf("gpu.Pipeline %s: %d uniforms given, %d expected", pl.Name, len(uniforms), len(pl.Config.Uniforms)))
	}
	if pl.bindLayout == nil {
		return nil, nil
	}
	entries := make([]wgpu.BindGroupEntry, len(uniforms))
	for i, u := range uniforms {
		entries[i] = wgpu.BindGroupEntry{
			Binding: uint32(i),
			Buffer:  u.buffer,
			Offset:  0,
			Size:    wgpu.WholeSize,
		}
	}
	bg, err := gp.Device.CreateBindGroup(&wgpu.BindGroupDescriptor{
		Label:   pl.Name,
		Layout:  pl.bindLayout,
		Entries: entries,
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	return bg, nil
}

// Release releases the pipeline and its layouts and shader module.
func (pl *Pipeline) Release() {
	if pl.renderPipeline != nil {
		pl.renderPipeline.Release()
		pl.renderPipeline = nil
	}
	if pl.layout != nil {
		pl.layout.Release()
		pl.layout = nil
	}
	if pl.bindLayout != nil {
		pl.bindLayout.Release()
		pl.bindLayout = nil
	}
	if pl.module != nil {
		pl.module.Release()
		pl.module = nil
	}
}
