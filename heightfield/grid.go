// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package heightfield places a grid of cube instances and computes
// their animated heights and heat-map colors.
//
// The vertex shader in heightfield.wgsl is the authority for drawing;
// the functions here reproduce its arithmetic in float32 on the host,
// for tests and for the CPU reference image made by [Render].
package heightfield

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Grid is the layout of the instanced cubes: Width columns along X
// and Rows rows along Z, each cube CubeSize wide.
type Grid struct {
	// Width is the number of columns.
	Width int `default:"512"`

	// Rows is the number of rows, passed to the shader as rowCount.
	Rows int `default:"512"`

	// CubeSize is the spacing between cube centers.
	CubeSize float32 `default:"0.05"`
}

// DefaultGrid returns the 512 x 512 grid of 0.05 cubes.
func DefaultGrid() Grid {
	return Grid{Width: 512, Rows: 512, CubeSize: 0.05}
}

// SmallGrid returns a 256 x 256 grid of 0.05 cubes.
func SmallGrid() Grid {
	return Grid{Width: 256, Rows: 256, CubeSize: 0.05}
}

// Empty reports whether the grid has no cells, which is the case
// for the zero Grid or any non-positive Width or Rows.
func (g Grid) Empty() bool {
	return g.Width <= 0 || g.Rows <= 0
}

// Instances returns the number of cube instances to draw,
// 0 for an empty grid.
func (g Grid) Instances() uint32 {
	if g.Empty() {
		return 0
	}
	return uint32(g.Width * g.Rows)
}

// Cell returns the column and row of instance i.
// It returns (0, 0) for an empty grid.
func (g Grid) Cell(i uint32) (column, row uint32) {
	if g.Empty() {
		return 0, 0
	}
	w := uint32(g.Width)
	return i % w, i / w
}

// Offset returns the translation applied to the vertices of
// instance i, centering the grid on the origin in the XZ plane.
func (g Grid) Offset(i uint32) mgl32.Vec3 {
	c, r := g.Cell(i)
	return mgl32.Vec3{
		(float32(c) - float32(g.Width)/2) * g.CubeSize,
		0,
		(float32(r) - float32(g.Rows)/2) * g.CubeSize,
	}
}

// Extent returns the half-size of the grid along X and Z.
func (g Grid) Extent() (x, z float32) {
	return float32(g.Width) / 2 * g.CubeSize, float32(g.Rows) / 2 * g.CubeSize
}

// CubeVertices returns the triangle-list positions (x, y, z, w)
// of the per-instance cube. The footprint spans one CubeSize and
// y runs from 0 to 1, so the shader height scales the top face
// and leaves the bottom on the baseline.
func (g Grid) CubeVertices() []float32 {
	h := g.CubeSize / 2
	corners := [8]mgl32.Vec3{
		{-h, 0, h}, {h, 0, h}, {h, 1, h}, {-h, 1, h},
		{-h, 0, -h}, {h, 0, -h}, {h, 1, -h}, {-h, 1, -h},
	}
	faces := [6][4]int{
		{0, 1, 2, 3}, // front
		{1, 5, 6, 2}, // right
		{5, 4, 7, 6}, // back
		{4, 0, 3, 7}, // left
		{3, 2, 6, 7}, // top
		{4, 5, 1, 0}, // bottom
	}
	out := make([]float32, 0, 6*6*4)
	for _, f := range faces {
		for _, k := range [6]int{0, 1, 2, 2, 3, 0} {
			p := corners[f[k]]
			out = append(out, p[0], p[1], p[2], 1)
		}
	}
	return out
}
