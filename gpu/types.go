// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

// Types are the data types of vertex inputs and uniforms used by
// the demo shaders.
// Float32Vector3 is for vertex data only: uniforms need 16 byte
// alignment for vectors of 3.
type Types int32

const (
	UndefinedType Types = iota

	Uint16
	Uint32

	Float32
	Float32Vector2
	Float32Vector3
	Float32Vector4

	Float32Matrix4 // column-major, as mgl32.Mat4
)

var typeNames = map[Types]string{
	UndefinedType:  "UndefinedType",
	Uint16:         "Uint16",
	Uint32:         "Uint32",
	Float32:        "Float32",
	Float32Vector2: "Float32Vector2",
	Float32Vector3: "Float32Vector3",
	Float32Vector4: "Float32Vector4",
	Float32Matrix4: "Float32Matrix4",
}

func (tp Types) String() string {
	if s, ok := typeNames[tp]; ok {
		return s
	}
	return fmt.Sprintf("Types(%d)", int32(tp))
}

// VertexFormat returns the WebGPU VertexFormat for given type.
func (tp Types) VertexFormat() wgpu.VertexFormat {
	return TypeToVertexFormat[tp]
}

// IndexType returns the WebGPU IndexFormat for an index buffer:
// must be either Uint16 or Uint32.
func (tp Types) IndexType() wgpu.IndexFormat {
	if tp == Uint16 {
		return wgpu.IndexFormatUint16
	}
	return wgpu.IndexFormatUint32
}

// Bytes returns number of bytes for this type
func (tp Types) Bytes() int {
	return TypeSizes[tp]
}

// Floats returns the number of float32 components, 0 for
// non-float types.
func (tp Types) Floats() int {
	switch tp {
	case Float32, Float32Vector2, Float32Vector3, Float32Vector4, Float32Matrix4:
		return tp.Bytes() / 4
	}
	return 0
}

// UniformBytes returns the size of a uniform buffer holding one
// value of this type, rounded up to 16 bytes.
func (tp Types) UniformBytes() int {
	return (tp.Bytes() + 15) &^ 15
}

// TypeSizes gives our data type sizes in bytes
var TypeSizes = map[Types]int{
	Uint16: 2,
	Uint32: 4,

	Float32:        4,
	Float32Vector2: 8,
	Float32Vector3: 12,
	Float32Vector4: 16,

	Float32Matrix4: 64,
}

// TypeToVertexFormat maps gpu.Types to WebGPU VertexFormat
var TypeToVertexFormat = map[Types]wgpu.VertexFormat{
	UndefinedType:  wgpu.VertexFormatUndefined,
	Uint32:         wgpu.VertexFormatUint32,
	Float32:        wgpu.VertexFormatFloat32,
	Float32Vector2: wgpu.VertexFormatFloat32x2,
	Float32Vector3: wgpu.VertexFormatFloat32x3,
	Float32Vector4: wgpu.VertexFormatFloat32x4,
}

// Topologies are the primitive topologies used by the demos.
type Topologies int32

const (
	TriangleList Topologies = iota
	TriangleStrip
	LineList
	LineStrip
	PointList
)

// Primitive returns the WebGPU PrimitiveTopology.
func (tp Topologies) Primitive() wgpu.PrimitiveTopology {
	return WebGPUTopologies[tp]
}

var WebGPUTopologies = map[Topologies]wgpu.PrimitiveTopology{
	PointList:     wgpu.PrimitiveTopologyPointList,
	LineList:      wgpu.PrimitiveTopologyLineList,
	LineStrip:     wgpu.PrimitiveTopologyLineStrip,
	TriangleList:  wgpu.PrimitiveTopologyTriangleList,
	TriangleStrip: wgpu.PrimitiveTopologyTriangleStrip,
}
