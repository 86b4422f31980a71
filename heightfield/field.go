// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heightfield

import (
	"cogentcore.org/gpudemos/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// TwoPi is the constant used by the shader for one wave period.
const TwoPi = 6.28318

// Params are the height constants of the shader.
type Params struct {
	// HeightScale multiplies the per-instance random value.
	HeightScale float32 `default:"10"`

	// Amplitude multiplies the plotted wave.
	Amplitude float32 `default:"7"`

	// MaxHeight is the height mapped to the top of the heat map.
	MaxHeight float32 `default:"3.5"`
}

// DefaultParams returns the shader constants.
func DefaultParams() Params {
	return Params{HeightScale: 10, Amplitude: 7, MaxHeight: 3.5}
}

// Rand is the shader's hash: fract(sin(seed*0.01)*43758.5453),
// a pseudo-random value in [0, 1).
func Rand(seed float32) float32 {
	return math32.Fract(math32.Sin(seed*0.01) * 43758.5453)
}

// Plot is the soft band of half-width 0.9 around pct, evaluated at st.y.
func Plot(st mgl32.Vec2, pct float32) float32 {
	return math32.Smoothstep(pct-0.9, pct, st[1]) - math32.Smoothstep(pct, pct+0.9, st[1])
}

// Wave returns the normalized grid coordinate of instance i and
// the traveling wave value there at the given time in milliseconds.
// st is zero for an empty grid.
func Wave(g Grid, i uint32, time float64) (st mgl32.Vec2, y float32) {
	if !g.Empty() {
		c, r := g.Cell(i)
		st = mgl32.Vec2{float32(r) / float32(g.Rows), float32(c) / float32(g.Width)}
	}
	y = (math32.Sin(st[0]*TwoPi+float32(time/1000)) + 1) / 2
	return st, y
}

// Height returns the y coordinate the shader gives a vertex of
// instance i whose local y is localY, or 0 for an empty grid.
func Height(g Grid, p Params, i uint32, localY float32, time float64) float32 {
	if g.Empty() {
		return 0
	}
	st, y := Wave(g, i, time)
	pct := Plot(st, y)
	random := Rand(float32(i)) * p.HeightScale
	return localY * pct * p.Amplitude * random
}

// Normalize maps a height onto [0, 1] relative to p.MaxHeight.
func (p Params) Normalize(h float32) float32 {
	return math32.Clamp(h/p.MaxHeight, 0, 1)
}
