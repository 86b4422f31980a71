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

// FragDataVar is the name of the fragment output bound to color 0.
const FragDataVar = "outColor"

// LinkError is returned when a program fails to link.
// Log is the driver info log.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return "glgpu: program failed to link: " + e.Log
}

// Program is a linked vertex + fragment GL program.
// Uniform locations are looked up once and cached.
type Program struct {
	handle   uint32
	uniforms map[string]int32
}

// NewProgram compiles and links the given vertex and fragment
// sources (GLSL 410 core). It returns a [*CompileError] or a
// [*LinkError] carrying the driver log on failure.
// A context must be current.
func NewProgram(vertex, fragment string) (*Program, error) {
	vs, err := compileShader(VertexShader, vertex)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(FragmentShader, fragment)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(fs)

	handle := gl.CreateProgram()
	gl.AttachShader(handle, vs)
	gl.AttachShader(handle, fs)
	gl.BindFragDataLocation(handle, 0, gl.Str(CString(FragDataVar)))
	gl.LinkProgram(handle)
	gl.ValidateProgram(handle)
	gl.DetachShader(handle, vs)
	gl.DetachShader(handle, fs)

	var status int32
	gl.GetProgramiv(handle, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var lgLength int32
		gl.GetProgramiv(handle, gl.INFO_LOG_LENGTH, &lgLength)

		lg := strings.Repeat("\x00", int(lgLength+1))
		gl.GetProgramInfoLog(handle, lgLength, nil, gl.Str(lg))
		gl.DeleteProgram(handle)

		err := &LinkError{Log: GoString(lg)}
		slog.Error("glgpu link program", "err", err)
		return nil, err
	}
	return &Program{handle: handle, uniforms: map[string]int32{}}, nil
}

// Handle returns the GL handle for the program.
func (pr *Program) Handle() uint32 {
	return pr.handle
}

// Use makes this the current program.
func (pr *Program) Use() {
	gl.UseProgram(pr.handle)
}

// Uniform returns the location of the named uniform, or -1 if the
// program has none by that name (for example, when the compiler
// optimized it out). Setting location -1 is a no-op in GL.
func (pr *Program) Uniform(name string) int32 {
	if loc, ok := pr.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(pr.handle, gl.Str(CString(name)))
	if loc < 0 {
		slog.Debug("glgpu uniform not active", "name", name)
	}
	pr.uniforms[name] = loc
	return loc
}

// Attrib returns the location of the named vertex input.
func (pr *Program) Attrib(name string) (uint32, error) {
	loc := gl.GetAttribLocation(pr.handle, gl.Str(CString(name)))
	if loc < 0 {
		return 0, fmt.Errorf("glgpu: vertex input %q not active", name)
	}
	return uint32(loc), nil
}

// Delete deletes the program.
func (pr *Program) Delete() {
	if pr.handle == 0 {
		return
	}
	gl.DeleteProgram(pr.handle)
	pr.handle = 0
}
