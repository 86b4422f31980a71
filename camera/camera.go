// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package camera computes a time-driven oscillating camera
// and its view, projection and view-projection matrices.
//
// Everything here is a pure function of the time value: there
// is no retained state, and the caller owns the resulting
// matrices and uploads them to the GPU each frame.
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

const (
	// Period is the number of time units (milliseconds in the demos)
	// for one full oscillation of the camera.
	Period = 60000

	// Radius is the amplitude and offset of the eye oscillation.
	Radius = 18

	// FieldOfView is the vertical field of view in radians.
	FieldOfView = 2 * math.Pi / 5

	// Near is the near clipping plane distance.
	Near = 0.1

	// Far is the far clipping plane distance.
	Far = 100.0

	// ZoomMax is the maximum zoom reported in [Option]
	// for an external camera controller.
	ZoomMax = 100

	// ZoomSpeed is the zoom speed reported in [Option].
	ZoomSpeed = 2
)

// Options are the inputs to [ViewProjection] other than time.
// Zero values select the defaults given in [DefaultOptions].
type Options struct {
	// Aspect is the width / height aspect ratio. 0 means 1.
	Aspect float32

	// Center is the point the camera looks at.
	Center mgl32.Vec3

	// Up is the up reference direction. The zero vector means +Y.
	Up mgl32.Vec3
}

// DefaultOptions returns an aspect ratio of 1, looking at the
// origin with +Y up.
func DefaultOptions() Options {
	return Options{Aspect: 1, Up: mgl32.Vec3{0, 1, 0}}
}

// Option is the descriptive camera record handed to an optional
// interactive camera controller. It is not used by the matrix math.
type Option struct {
	Eye       mgl32.Vec3
	Center    mgl32.Vec3
	ZoomMax   float32
	ZoomSpeed float32
}

// State is the camera for one frame.
type State struct {
	View           mgl32.Mat4
	Projection     mgl32.Mat4
	ViewProjection mgl32.Mat4
	Option         Option
}

// Angle maps time onto [0, 2pi) as a sawtooth that wraps
// every [Period] units.
func Angle(time float64) float64 {
	r := math.Mod(time, Period)
	if r < 0 {
		r += Period
	}
	return r / Period * 2 * math.Pi
}

// Eye returns the camera position at the given time.
// A single sine drives all three axes: X and Y are
// anti-correlated, Z is in phase with X.
func Eye(time float64) mgl32.Vec3 {
	return vec32(eye64(time))
}

func eye64(time float64) mgl64.Vec3 {
	s := math.Sin(Angle(time))
	return mgl64.Vec3{-Radius + Radius*s, Radius - Radius*s, Radius * s}
}

// ViewProjection returns the camera matrices for the given time.
// Projection is a perspective of [FieldOfView] between [Near] and [Far];
// view looks from [Eye] toward opts.Center; the combined matrix is
// projection * view. Matrices are computed in float64 and stored as
// float32, as they are uploaded.
// The result repeats every [Period]; it is bit-identical for time and
// time+Period only when time+Period is exactly representable, otherwise
// the rounded sum can change the last bits.
func ViewProjection(time float64, opts Options) State {
	if opts.Aspect == 0 {
		opts.Aspect = 1
	}
	if opts.Up == (mgl32.Vec3{}) {
		opts.Up = mgl32.Vec3{0, 1, 0}
	}
	eye := eye64(time)
	center := vec64(opts.Center)

	proj := to32(mgl64.Perspective(FieldOfView, float64(opts.Aspect), Near, Far))
	view := to32(lookAt(eye, center, vec64(opts.Up)))
	vp := to32(to64(proj).Mul4(to64(view)))

	return State{
		View:           view,
		Projection:     proj,
		ViewProjection: vp,
		Option: Option{
			Eye:       vec32(eye),
			Center:    opts.Center,
			ZoomMax:   ZoomMax,
			ZoomSpeed: ZoomSpeed,
		},
	}
}

// LookAt returns a right-handed view matrix looking from eye toward
// center. It returns the identity when eye and center coincide.
// If up is parallel to the view direction the side and up axes are
// left zero, giving a degenerate (but finite) matrix.
func LookAt(eye, center, up mgl32.Vec3) mgl32.Mat4 {
	return to32(lookAt(vec64(eye), vec64(center), vec64(up)))
}

const epsilon = 1e-6

func lookAt(eye, center, up mgl64.Vec3) mgl64.Mat4 {
	d := eye.Sub(center)
	if math.Abs(d[0]) < epsilon && math.Abs(d[1]) < epsilon && math.Abs(d[2]) < epsilon {
		return mgl64.Ident4()
	}
	z := d.Normalize()
	x := normalizeOrZero(up.Cross(z))
	y := normalizeOrZero(z.Cross(x))
	return mgl64.Mat4{
		x[0], y[0], z[0], 0,
		x[1], y[1], z[1], 0,
		x[2], y[2], z[2], 0,
		-x.Dot(eye), -y.Dot(eye), -z.Dot(eye), 1,
	}
}

func normalizeOrZero(v mgl64.Vec3) mgl64.Vec3 {
	l := v.Len()
	if l == 0 {
		return mgl64.Vec3{}
	}
	return v.Mul(1 / l)
}

func vec64(v mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

func vec32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

func to32(m mgl64.Mat4) mgl32.Mat4 {
	var r mgl32.Mat4
	for i, x := range m {
		r[i] = float32(x)
	}
	return r
}

func to64(m mgl32.Mat4) mgl64.Mat4 {
	var r mgl64.Mat4
	for i, x := range m {
		r[i] = float64(x)
	}
	return r
}
