// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geometry has the fixed vertex data of the demos.
// Each function returns a new slice that the caller may modify.
package geometry

import (
	"math"
)

// CubeVertices is the number of vertices in [Cube].
const CubeVertices = 36

// cubeY is the sign of the y component of each cube vertex.
var cubeY = [CubeVertices]int8{
	-1, -1, 1, 1, 1, -1, // front
	-1, -1, 1, 1, 1, -1, // right
	-1, 1, 1, 1, -1, -1, // back
	-1, 1, 1, 1, -1, -1, // left
	1, 1, 1, 1, 1, 1, // top
	-1, -1, -1, -1, -1, -1, // bottom
}

// Cube returns the triangle-list positions (x, y, z) of the
// cube spanning [-1, 1] on each axis, two triangles per face,
// faces in the order front, right, back, left, top, bottom.
func Cube() []float32 {
	return []float32{
		// front
		-1, -1, 1, 1, -1, 1, 1, 1, 1,
		1, 1, 1, -1, 1, 1, -1, -1, 1,
		// right
		1, -1, 1, 1, -1, -1, 1, 1, -1,
		1, 1, -1, 1, 1, 1, 1, -1, 1,
		// back
		-1, -1, -1, -1, 1, -1, 1, 1, -1,
		1, 1, -1, 1, -1, -1, -1, -1, -1,
		// left
		-1, -1, 1, -1, 1, 1, -1, 1, -1,
		-1, 1, -1, -1, -1, -1, -1, -1, 1,
		// top
		-1, 1, 1, 1, 1, 1, 1, 1, -1,
		1, 1, -1, -1, 1, -1, -1, 1, 1,
		// bottom
		-1, -1, 1, -1, -1, -1, 1, -1, -1,
		1, -1, -1, 1, -1, 1, -1, -1, 1,
	}
}

// FaceColors are the colors (r, g, b) of the cube faces.
var FaceColors = [6][3]float32{
	{1, 0, 0}, // front
	{0, 1, 0}, // right
	{0, 0, 1}, // back
	{1, 1, 0}, // left
	{1, 0, 1}, // top
	{0, 1, 1}, // bottom
}

// CubeColors returns a color (r, g, b) for each vertex of [Cube],
// one flat color per face.
func CubeColors() []float32 {
	c := make([]float32, 0, CubeVertices*3)
	for _, fc := range FaceColors {
		for range 6 {
			c = append(c, fc[:]...)
		}
	}
	return c
}

// OscillateHeight returns the half-height of the oscillating cube
// at time in milliseconds, between 0.1 and 1.5.
func OscillateHeight(time float64) float32 {
	return float32(0.7*math.Sin(time/1000) + 0.8)
}

// Oscillate sets the y component of each vertex of cube positions
// (in the layout of [Cube]) to plus or minus [OscillateHeight],
// keeping its top or bottom side. Only the first [CubeVertices]
// vertices are updated.
func Oscillate(time float64, positions []float32) {
	h := OscillateHeight(time)
	n := min(len(positions)/3, CubeVertices)
	for v := range n {
		positions[3*v+1] = float32(cubeY[v]) * h
	}
}

// Quad returns the triangle-strip positions (x, y) of the
// full-screen quad.
func Quad() []float32 {
	return []float32{1, 1, -1, 1, 1, -1, -1, -1}
}

// QuadTexCoords returns the texture coordinates (u, v) matching [Quad].
func QuadTexCoords() []float32 {
	return []float32{1, 0, 0, 0, 1, 1, 0, 1}
}

// Triangle returns the clip-space positions (x, y) of the
// attribute-buffer triangle.
func Triangle() []float32 {
	return []float32{0, 0, 0, 0.5, 0.7, 0}
}

// RedTriangle returns the clip-space positions (x, y) that the
// hardcoded triangle shader generates from the vertex index.
func RedTriangle() []float32 {
	return []float32{0, 0.5, -0.5, -0.5, 0.5, -0.5}
}
