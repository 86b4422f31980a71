// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heightfield

import (
	"context"
	"image"
	"strings"
	"testing"

	"cogentcore.org/gpudemos/base/iox/imagex"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCell(t *testing.T) {
	g := SmallGrid()
	c, r := g.Cell(0)
	assert.Equal(t, uint32(0), c)
	assert.Equal(t, uint32(0), r)

	c, r = g.Cell(257)
	assert.Equal(t, uint32(1), c)
	assert.Equal(t, uint32(1), r)

	c, r = DefaultGrid().Cell(511)
	assert.Equal(t, uint32(511), c)
	assert.Equal(t, uint32(0), r)
	assert.Equal(t, uint32(512*512), DefaultGrid().Instances())
}

func TestEmptyGrid(t *testing.T) {
	p := DefaultParams()
	for _, g := range []Grid{{}, {Width: 0, Rows: 4, CubeSize: 0.05}, {Width: 4, Rows: -1, CubeSize: 0.05}} {
		assert.True(t, g.Empty(), "%+v", g)
		assert.Equal(t, uint32(0), g.Instances())
		c, r := g.Cell(7)
		assert.Equal(t, uint32(0), c)
		assert.Equal(t, uint32(0), r)
		assert.NotPanics(t, func() { g.Offset(7) })
		st, _ := Wave(g, 7, 1000)
		assert.Equal(t, mgl32.Vec2{}, st)
		assert.Equal(t, float32(0), Height(g, p, 7, 1, 1000))
	}
	assert.False(t, SmallGrid().Empty())
}

func TestOffset(t *testing.T) {
	g := SmallGrid()
	assert.InDelta(t, -6.4, g.Offset(0)[0], 1e-5)
	assert.InDelta(t, -6.4, g.Offset(0)[2], 1e-5)
	assert.Equal(t, float32(0), g.Offset(0)[1])

	center := g.Offset(128*256 + 128)
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, center)

	x, z := g.Extent()
	assert.InDelta(t, 6.4, x, 1e-5)
	assert.InDelta(t, 6.4, z, 1e-5)
}

func TestHeatMap(t *testing.T) {
	assert.Equal(t, Blue, HeatMap(0))
	assert.Equal(t, Cyan, HeatMap(0.25))
	assert.Equal(t, Green, HeatMap(0.5))
	assert.Equal(t, Yellow, HeatMap(0.75))
	assert.Equal(t, Red, HeatMap(1))

	assert.Equal(t, Blue, HeatMap(-2))
	assert.Equal(t, Red, HeatMap(7))

	mid := HeatMap(0.125)
	assert.InDelta(t, 0, mid[0], 1e-6)
	assert.InDelta(t, 0.5, mid[1], 1e-6)
	assert.InDelta(t, 1, mid[2], 1e-6)
}

func TestRand(t *testing.T) {
	for _, s := range []float32{0, 1, 17, 255, 1000, 262143} {
		r := Rand(s)
		assert.GreaterOrEqual(t, r, float32(0))
		assert.Less(t, r, float32(1))
	}
	assert.Equal(t, float32(0), Rand(0))
	assert.Equal(t, Rand(42), Rand(42))
}

func TestPlot(t *testing.T) {
	// on the line
	assert.InDelta(t, 1, Plot(mgl32.Vec2{0, 0.5}, 0.5), 1e-6)
	// outside the band
	assert.Equal(t, float32(0), Plot(mgl32.Vec2{0, 0}, 1))
	assert.Equal(t, float32(0), Plot(mgl32.Vec2{0, 1}, 0))
}

func TestHeight(t *testing.T) {
	g := SmallGrid()
	p := DefaultParams()
	for _, i := range []uint32{0, 1, 300, 65535} {
		assert.Equal(t, float32(0), Height(g, p, i, 0, 1234), "bottom face stays on the baseline")
	}
	// instance 0 has Rand(0) == 0
	assert.Equal(t, float32(0), Height(g, p, 0, 1, 5000))

	i := uint32(300)
	st, y := Wave(g, i, 2000)
	want := 1 * Plot(st, y) * 7 * (Rand(float32(i)) * 10)
	assert.Equal(t, want, Height(g, p, i, 1, 2000))
	assert.Equal(t, 2*want, Height(g, p, i, 2, 2000))
}

func TestCubeVertices(t *testing.T) {
	v := SmallGrid().CubeVertices()
	require.Len(t, v, 36*4)
	for k := 0; k < len(v); k += 4 {
		assert.InDelta(t, 0.025, abs(v[k]), 1e-7)
		assert.Contains(t, []float32{0, 1}, v[k+1])
		assert.InDelta(t, 0.025, abs(v[k+2]), 1e-7)
		assert.Equal(t, float32(1), v[k+3])
	}
}

func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

func TestShaderSource(t *testing.T) {
	src := DefaultGrid().ShaderSource()
	assert.Contains(t, src, "const gridWidth: f32 = 512.0;")
	assert.Contains(t, src, "const cubeSize: f32 = 0.05;")
	assert.Contains(t, src, "@binding(1) var<uniform> rowCount")
	assert.Contains(t, src, "@binding(2) var<uniform> time")
	assert.NotContains(t, src, "GRID_WIDTH")

	ax := AxisShaderSource(AxisSize)
	assert.Contains(t, ax, "const gridSize: f32 = 6.75;")
	assert.False(t, strings.Contains(ax, "GRID_SIZE"))
}

func TestAxisLines(t *testing.T) {
	pos, clr := AxisLines(AxisSize)
	require.Len(t, pos, 18)
	require.Len(t, clr, 24)
	assert.Equal(t, []float32{6.75, 0, -6.75}, pos[3:6])
	assert.Equal(t, []float32{0, 1, 0, 1}, clr[8:12])
	assert.Equal(t, []float32{0, 0, 1, 1}, clr[20:24])
}

func TestRender(t *testing.T) {
	g := Grid{Width: 32, Rows: 16, CubeSize: 0.05}
	p := DefaultParams()
	img, err := Render(context.Background(), g, p, 3000)
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 32, 16), img.Bounds())
	// instance 0 is flat
	assert.Equal(t, RGBA(Blue), img.RGBAAt(0, 0))

	i := uint32(5*32 + 7)
	want := RGBA(HeatMap(p.Normalize(Height(g, p, i, 1, 3000))))
	assert.Equal(t, want, img.RGBAAt(7, 5))

	big := Scale(img, image.Pt(64, 32))
	assert.Equal(t, img.RGBAAt(7, 5), big.RGBAAt(14, 10))
}

func TestRenderImage(t *testing.T) {
	img, err := Render(context.Background(), SmallGrid(), DefaultParams(), 12000)
	require.NoError(t, err)
	imagex.Assert(t, Scale(img, image.Pt(512, 512)), "heightfield-12000.png")
}

func TestRenderErrors(t *testing.T) {
	_, err := Render(context.Background(), Grid{}, DefaultParams(), 0)
	assert.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = Render(ctx, SmallGrid(), DefaultParams(), 0)
	assert.ErrorIs(t, err, context.Canceled)
}
