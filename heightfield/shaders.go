// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heightfield

import (
	_ "embed"
	"strconv"
	"strings"
)

// Shader is the WGSL source of the instanced cube pipeline, with
// GRID_WIDTH and CUBE_SIZE left to be filled in by [Grid.ShaderSource].
// Bindings in group 0: mvpMatrix at 0, rowCount at 1, time at 2.
//
//go:embed heightfield.wgsl
var Shader string

// AxisShader is the WGSL source of the axis lines, with GRID_SIZE
// filled in by [AxisShaderSource]. It draws 6 vertices as a line list.
//
//go:embed axis.wgsl
var AxisShader string

// AxisSize is the default half-length of the axis lines.
const AxisSize = 13.5 / 2

// ShaderSource returns [Shader] for this grid.
func (g Grid) ShaderSource() string {
	return strings.NewReplacer(
		"GRID_WIDTH", floatLiteral(float32(g.Width)),
		"CUBE_SIZE", floatLiteral(g.CubeSize),
	).Replace(Shader)
}

// AxisShaderSource returns [AxisShader] with the given half-length.
func AxisShaderSource(size float32) string {
	return strings.ReplaceAll(AxisShader, "GRID_SIZE", floatLiteral(size))
}

// AxisLines returns the positions (x, y, z) and colors (r, g, b, a)
// drawn by [AxisShader]: red X, green Y and blue Z lines starting at
// the (-size, 0, -size) corner.
func AxisLines(size float32) (positions, colors []float32) {
	s := size
	positions = []float32{
		-s, 0, -s, s, 0, -s,
		-s, 0, -s, -s, s, -s,
		-s, 0, -s, -s, 0, s,
	}
	colors = []float32{
		1, 0, 0, 1, 1, 0, 0, 1,
		0, 1, 0, 1, 0, 1, 0, 1,
		0, 0, 1, 1, 0, 0, 1, 1,
	}
	return
}

// floatLiteral formats x as a WGSL floating point literal.
func floatLiteral(x float32) string {
	s := strconv.FormatFloat(float64(x), 'f', -1, 32)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
