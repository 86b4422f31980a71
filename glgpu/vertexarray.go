// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// VertexArray is a vertex array object and the buffers it owns.
type VertexArray struct {
	handle  uint32
	buffers []uint32
}

// NewVertexArray creates and binds a vertex array object.
func NewVertexArray() *VertexArray {
	va := &VertexArray{}
	gl.GenVertexArrays(1, &va.handle)
	gl.BindVertexArray(va.handle)
	return va
}

// Bind makes this the current vertex array.
func (va *VertexArray) Bind() {
	gl.BindVertexArray(va.handle)
}

// AttribBuffer uploads data to a new buffer and feeds it to the
// vertex input at loc, size floats per vertex, tightly packed.
func (va *VertexArray) AttribBuffer(loc uint32, size int32, data []float32) {
	va.Bind()
	var buf uint32
	gl.GenBuffers(1, &buf)
	gl.BindBuffer(gl.ARRAY_BUFFER, buf)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(loc)
	gl.VertexAttribPointer(loc, size, gl.FLOAT, false, 0, gl.PtrOffset(0))
	va.buffers = append(va.buffers, buf)
}

// ProgramBuffer is [VertexArray.AttribBuffer] for the named input of pr.
func (va *VertexArray) ProgramBuffer(pr *Program, name string, size int32, data []float32) error {
	loc, err := pr.Attrib(name)
	if err != nil {
		return err
	}
	va.AttribBuffer(loc, size, data)
	return nil
}

// Delete deletes the buffers and the vertex array.
func (va *VertexArray) Delete() {
	if len(va.buffers) > 0 {
		gl.DeleteBuffers(int32(len(va.buffers)), &va.buffers[0])
		va.buffers = nil
	}
	if va.handle != 0 {
		gl.DeleteVertexArrays(1, &va.handle)
		va.handle = 0
	}
}
