// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"

	"cogentcore.org/gpudemos/base/errors"
	"github.com/cogentcore/webgpu/wgpu"
	"github.com/go-gl/mathgl/mgl32"
)

// BufferRoles are the ways a [Buffer] is bound.
type BufferRoles int32

const (
	Vertex BufferRoles = iota
	Index
	Uniform
)

// BufferUsages returns the WebGPU usage flags for the role.
// All roles can be written from the host.
func (br BufferRoles) BufferUsages() wgpu.BufferUsage {
	switch br {
	case Index:
		return wgpu.BufferUsageIndex | wgpu.BufferUsageCopyDst
	case Uniform:
		return wgpu.BufferUsageUniform | wgpu.BufferUsageCopyDst
	}
	return wgpu.BufferUsageVertex | wgpu.BufferUsageCopyDst
}

// Buffer is a GPU buffer holding values of one [Types].
type Buffer struct {
	Name string
	Type Types
	Role BufferRoles

	// AllocSize is the allocated size in bytes.
	AllocSize int

	buffer *wgpu.Buffer
	queue  *wgpu.Queue
}

// NewBuffer creates a vertex buffer initialized with the given
// values, which must hold a whole number of tp elements.
func NewBuffer[E any](gp *GPU, name string, tp Types, from []E) (*Buffer, error) {
	return gp.newBufferInit(name, tp, Vertex, wgpu.ToBytes(from))
}

// NewIndexBuffer creates an index buffer; tp is Uint16 or Uint32.
func NewIndexBuffer[E uint16 | uint32](gp *GPU, name string, tp Types, from []E) (*Buffer, error) {
	return gp.newBufferInit(name, tp, Index, wgpu.ToBytes(from))
}

func (gp *GPU) newBufferInit(name string, tp Types, role BufferRoles, from []byte) (*Buffer, error) {
	if tp.Bytes() == 0 || len(from)%tp.Bytes() != 0 {
		return nil, errors.Log(fmt.Errorf("gpu.Buffer %s: %d bytes is not a whole number of %s", name, len(from), tp))
	}
	buf, err := gp.Device.CreateBufferInit(&wgpu.BufferInitDescriptor{
		Label:    name,
		Contents: from,
		Usage:    role.BufferUsages(),
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	return &Buffer{Name: name, Type: tp, Role: role, AllocSize: len(from), buffer: buf, queue: gp.Queue}, nil
}

// NewUniform creates a uniform buffer for one value of the given type.
func (gp *GPU) NewUniform(name string, tp Types) (*Buffer, error) {
	sz := tp.UniformBytes()
	buf, err := gp.Device.CreateBuffer(&wgpu.BufferDescriptor{
		Label:            name,
		Size:             uint64(sz),
		Usage:            Uniform.BufferUsages(),
		MappedAtCreation: false,
	})
	if errors.Log(err) != nil {
		return nil, err
	}
	return &Buffer{Name: name, Type: tp, Role: Uniform, AllocSize: sz, buffer: buf, queue: gp.Queue}, nil
}

// Len returns the number of elements in the buffer.
func (bf *Buffer) Len() int {
	return bf.AllocSize / bf.Type.Bytes()
}

// Buffer returns the underlying WebGPU buffer.
func (bf *Buffer) Buffer() *wgpu.Buffer {
	return bf.buffer
}

// SetFromBytes writes the given bytes at the start of the buffer.
// The write is queued and takes effect at the next submit.
func (bf *Buffer) SetFromBytes(from []byte) error {
	if len(from) > bf.AllocSize {
		err := fmt.Errorf("gpu.Buffer SetFromBytes %s, Size passed: %d > Size allocated %d", bf.Name, len(from), bf.AllocSize)
		return errors.Log(err)
	}
	return errors.Log(bf.queue.WriteBuffer(bf.buffer, 0, from))
}

// SetValueFrom writes the given values at the start of the buffer.
func SetValueFrom[E any](bf *Buffer, from []E) error {
	return bf.SetFromBytes(wgpu.ToBytes(from))
}

// SetFloat writes a single float, as for a Float32 uniform.
func (bf *Buffer) SetFloat(v float32) error {
	return SetValueFrom(bf, []float32{v})
}

// SetMat4 writes a column-major matrix.
func (bf *Buffer) SetMat4(m mgl32.Mat4) error {
	return SetValueFrom(bf, m[:])
}

// Release releases the buffer.
func (bf *Buffer) Release() {
	if bf.buffer == nil {
		return
	}
	bf.buffer.Release()
	bf.buffer = nil
}
