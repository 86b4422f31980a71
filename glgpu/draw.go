// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"image/color"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Clear clears the current render target to c, and the depth
// buffer when depth is set.
func Clear(c color.Color, depth bool) {
	r, g, b, a := c.RGBA()
	gl.ClearColor(float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff)
	bits := uint32(gl.COLOR_BUFFER_BIT)
	if depth {
		gl.ClearDepth(1)
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

// DepthTest turns on / off depth testing with a LEQUAL comparison.
func DepthTest(on bool) {
	if on {
		gl.Enable(gl.DEPTH_TEST)
		gl.DepthFunc(gl.LEQUAL)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

// Triangles draws non-indexed triangles with the current state.
func Triangles(start, count int) {
	gl.DrawArrays(gl.TRIANGLES, int32(start), int32(count))
}

// TriangleStrips draws a non-indexed triangle strip with the current state.
func TriangleStrips(start, count int) {
	gl.DrawArrays(gl.TRIANGLE_STRIP, int32(start), int32(count))
}
