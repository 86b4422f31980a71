// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// ShaderTypes are the stages of a GL program.
type ShaderTypes int32

const (
	VertexShader ShaderTypes = iota
	FragmentShader
)

func (st ShaderTypes) String() string {
	switch st {
	case VertexShader:
		return "vertex"
	case FragmentShader:
		return "fragment"
	}
	return fmt.Sprintf("ShaderTypes(%d)", int32(st))
}

// GLType returns the GL enum for the shader stage.
func (st ShaderTypes) GLType() uint32 {
	if st == FragmentShader {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

// CompileError is returned when a shader stage fails to compile.
// Log is the driver info log.
type CompileError struct {
	Type ShaderTypes
	Log  string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("glgpu: %s shader failed to compile: %s", e.Type, e.Log)
}

// CString returns a null terminated copy of s, for handing to GL.
func CString(s string) string {
	if strings.HasSuffix(s, "\x00") {
		return s
	}
	return s + "\x00"
}

// GoString strips a trailing null terminator and anything past it.
func GoString(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}

// compileShader compiles src as the given stage. A context must be current.
func compileShader(typ ShaderTypes, src string) (uint32, error) {
	handle := gl.CreateShader(typ.GLType())

	csources, free := gl.Strs(CString(src))
	gl.ShaderSource(handle, 1, csources, nil)
	free()
	gl.CompileShader(handle)

	var status int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)

		msg := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(msg))
		gl.DeleteShader(handle)

		err := &CompileError{Type: typ, Log: GoString(msg)}
		slog.Error("glgpu compile shader", "err", err)
		return 0, err
	}
	return handle, nil
}
