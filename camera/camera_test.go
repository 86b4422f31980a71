// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVec3(t *testing.T, want, got mgl32.Vec3, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "component %d of %v", i, got)
	}
}

func assertMat4(t *testing.T, want, got mgl32.Mat4, delta float64) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], delta, "element %d", i)
	}
}

func TestEyeAtZero(t *testing.T) {
	st := ViewProjection(0, DefaultOptions())
	assert.Equal(t, mgl32.Vec3{-18, 18, 0}, st.Option.Eye)
	assert.Equal(t, mgl32.Vec3{-18, 18, 0}, Eye(0))
}

func TestEyeAtQuarterPeriod(t *testing.T) {
	st := ViewProjection(15000, DefaultOptions())
	assert.Equal(t, mgl32.Vec3{0, 0, 18}, st.Option.Eye)
}

func TestEyeAtThreeQuarters(t *testing.T) {
	assertVec3(t, mgl32.Vec3{-36, 36, -18}, Eye(45000), 1e-5)
}

func TestPeriodic(t *testing.T) {
	for _, tm := range []float64{0, 1234.5, 15000, 45000.25, 59999} {
		a := ViewProjection(tm, DefaultOptions())
		assert.Equal(t, a, ViewProjection(tm+Period, DefaultOptions()), "time %v", tm)
		assert.Equal(t, a, ViewProjection(tm+2*Period, DefaultOptions()), "time %v", tm)
	}
	// t+Period is rounded for most fractional times
	for i := range 2000 {
		tm := float64(i) * 0.6137
		a := ViewProjection(tm, DefaultOptions())
		b := ViewProjection(tm+Period, DefaultOptions())
		assertMat4(t, a.ViewProjection, b.ViewProjection, 1e-5)
		assertVec3(t, a.Option.Eye, b.Option.Eye, 1e-5)
	}
}

func TestAngle(t *testing.T) {
	assert.Equal(t, 0.0, Angle(0))
	assert.Equal(t, math.Pi/2, Angle(15000))
	assert.Equal(t, 0.0, Angle(Period))
	assert.InDelta(t, Angle(59000), Angle(-1000), 1e-12)
	for _, tm := range []float64{-90000, -1, 0, 1, 30000, 59999.999, 1e9} {
		a := Angle(tm)
		assert.GreaterOrEqual(t, a, 0.0)
		assert.Less(t, a, 2*math.Pi)
	}
}

func TestOption(t *testing.T) {
	opts := DefaultOptions()
	opts.Center = mgl32.Vec3{1, 2, 3}
	st := ViewProjection(1000, opts)
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, st.Option.Center)
	assert.Equal(t, float32(100), st.Option.ZoomMax)
	assert.Equal(t, float32(2), st.Option.ZoomSpeed)
}

func TestZeroOptions(t *testing.T) {
	assert.Equal(t, ViewProjection(2500, DefaultOptions()), ViewProjection(2500, Options{}))
}

func TestViewProjectionProduct(t *testing.T) {
	opts := DefaultOptions()
	opts.Aspect = 16.0 / 9.0
	st := ViewProjection(7000, opts)
	assertMat4(t, st.Projection.Mul4(st.View), st.ViewProjection, 1e-5)
	assertMat4(t, mgl32.Perspective(2*math.Pi/5, 16.0/9.0, 0.1, 100), st.Projection, 1e-5)
}

func TestViewMapsEyeAndCenter(t *testing.T) {
	st := ViewProjection(10000, DefaultOptions())
	eye := st.Option.Eye
	p := st.View.Mul4x1(eye.Vec4(1))
	assertVec3(t, mgl32.Vec3{}, p.Vec3(), 1e-4)

	c := st.View.Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	assertVec3(t, mgl32.Vec3{0, 0, -eye.Len()}, c.Vec3(), 1e-4)
}

func TestLookAtMatchesMathgl(t *testing.T) {
	eye := mgl32.Vec3{0, 0, 5}
	up := mgl32.Vec3{0, 1, 0}
	assertMat4(t, mgl32.LookAtV(eye, mgl32.Vec3{}, up), LookAt(eye, mgl32.Vec3{}, up), 1e-6)
}

func TestLookAtSamePoint(t *testing.T) {
	p := mgl32.Vec3{1, 2, 3}
	assert.Equal(t, mgl32.Ident4(), LookAt(p, p, mgl32.Vec3{0, 1, 0}))
}

func TestLookAtParallelUp(t *testing.T) {
	m := LookAt(mgl32.Vec3{0, 5, 0}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})
	for i, x := range m {
		assert.False(t, math.IsNaN(float64(x)), "element %d", i)
	}
	// side axis is zero
	assert.Equal(t, float32(0), m[0])
	assert.Equal(t, float32(0), m[4])
	assert.Equal(t, float32(0), m[8])
}
