// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xform composes model matrices from translation,
// rotation and scale.
package xform

import (
	"fmt"

	"cogentcore.org/gpudemos/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Transform is a translation, rotation and scale triple that
// produces a model matrix. Rotation is in radians about each axis.
// The zero value has a zero scale; use [NewTransform] for the
// neutral transform.
type Transform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Vec3
	Scale       mgl32.Vec3
}

// NewTransform returns the neutral transform: no translation,
// no rotation and unit scale.
func NewTransform() Transform {
	return Transform{Scale: mgl32.Vec3{1, 1, 1}}
}

// Matrix returns the model matrix: scale, then rotate about X,
// then Y, then Z, then translate. It is applied to object-local
// coordinates as M * v. Non-finite inputs are not checked and
// propagate into the result; see [Transform.Validate].
func (tr Transform) Matrix() mgl32.Mat4 {
	return CreateTransforms(tr.Translation, tr.Rotation, tr.Scale)
}

// CreateTransforms returns the model matrix for the given translation,
// rotation (radians per axis) and scale, composed as
// Translate * RotateZ * RotateY * RotateX * Scale.
func CreateTransforms(translation, rotation, scale mgl32.Vec3) mgl32.Mat4 {
	translate := mgl32.Translate3D(translation[0], translation[1], translation[2])
	rotateX := mgl32.HomogRotate3DX(rotation[0])
	rotateY := mgl32.HomogRotate3DY(rotation[1])
	rotateZ := mgl32.HomogRotate3DZ(rotation[2])
	scaling := mgl32.Scale3D(scale[0], scale[1], scale[2])

	// order matters: rotations do not commute
	m := rotateX.Mul4(scaling)
	m = rotateY.Mul4(m)
	m = rotateZ.Mul4(m)
	return translate.Mul4(m)
}

// InvalidInputError is returned by [Transform.Validate] for a
// component that is NaN or infinite.
type InvalidInputError struct {
	// Field is Translation, Rotation or Scale.
	Field string

	// Axis is 0, 1 or 2 for X, Y or Z.
	Axis int

	// Value is the offending value.
	Value float32
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("xform: invalid %s[%d]: %v", e.Field, e.Axis, e.Value)
}

// Validate returns an [*InvalidInputError] for the first component
// of the transform that is not finite, or nil.
func (tr Transform) Validate() error {
	fields := []struct {
		name string
		v    mgl32.Vec3
	}{
		{"Translation", tr.Translation},
		{"Rotation", tr.Rotation},
		{"Scale", tr.Scale},
	}
	for _, f := range fields {
		for axis, x := range f.v {
			if !math32.IsFinite(x) {
				return &InvalidInputError{Field: f.name, Axis: axis, Value: x}
			}
		}
	}
	return nil
}
