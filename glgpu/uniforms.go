// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// The setters below act on the current program; call [Program.Use] first.

func (pr *Program) SetInt(name string, v int32) {
	gl.Uniform1i(pr.Uniform(name), v)
}

func (pr *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(pr.Uniform(name), v)
}

func (pr *Program) SetVec2(name string, v mgl32.Vec2) {
	gl.Uniform2f(pr.Uniform(name), v[0], v[1])
}

// SetFloats sets a float array uniform such as a convolution kernel.
func (pr *Program) SetFloats(name string, v []float32) {
	if len(v) == 0 {
		return
	}
	gl.Uniform1fv(pr.Uniform(name), int32(len(v)), &v[0])
}

// SetMat4 sets a column-major 4x4 matrix uniform.
func (pr *Program) SetMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(pr.Uniform(name), 1, false, &m[0])
}
