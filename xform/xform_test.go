// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xform

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-6

func assertVec3(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], tol, "component %d of %v", i, got)
	}
}

func apply(m mgl32.Mat4, p mgl32.Vec3) mgl32.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

func TestIdentity(t *testing.T) {
	assert.Equal(t, mgl32.Ident4(), NewTransform().Matrix())
	assert.Equal(t, mgl32.Ident4(), CreateTransforms(mgl32.Vec3{}, mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}))
}

func TestDeterministic(t *testing.T) {
	tr := Transform{
		Translation: mgl32.Vec3{1.5, -2, 0.25},
		Rotation:    mgl32.Vec3{0.3, 1.1, -0.7},
		Scale:       mgl32.Vec3{2, 0.5, 3},
	}
	assert.Equal(t, tr.Matrix(), tr.Matrix())
}

func TestRotationOrder(t *testing.T) {
	rot := mgl32.Vec3{0.3, 0.5, 0.7}
	scale := mgl32.Vec3{1, 2, 3}
	m := CreateTransforms(mgl32.Vec3{}, rot, scale)

	s := mgl32.Scale3D(1, 2, 3)
	rx := mgl32.HomogRotate3DX(rot[0])
	ry := mgl32.HomogRotate3DY(rot[1])
	rz := mgl32.HomogRotate3DZ(rot[2])
	assert.Equal(t, rz.Mul4(ry.Mul4(rx.Mul4(s))), m)

	zyx := rx.Mul4(ry.Mul4(rz.Mul4(s)))
	assert.False(t, m.ApproxEqualThreshold(zyx, 1e-4), "reversed rotation order must differ")
}

func TestRotationOrderPoint(t *testing.T) {
	// X first carries +Y to +Z, then Y carries +Z to +X.
	m := CreateTransforms(mgl32.Vec3{}, mgl32.Vec3{math.Pi / 2, math.Pi / 2, 0}, mgl32.Vec3{1, 1, 1})
	assertVec3(t, mgl32.Vec3{1, 0, 0}, apply(m, mgl32.Vec3{0, 1, 0}))
}

func TestTranslateOutermost(t *testing.T) {
	tr := NewTransform()
	tr.Translation = mgl32.Vec3{1, 2, 3}
	tr.Scale = mgl32.Vec3{2, 2, 2}
	assertVec3(t, mgl32.Vec3{3, 4, 5}, apply(tr.Matrix(), mgl32.Vec3{1, 1, 1}))

	tr.Rotation = mgl32.Vec3{0, 0, math.Pi / 2}
	// scale to (2,0,0), rotate about Z to (0,2,0), translate.
	assertVec3(t, mgl32.Vec3{1, 4, 3}, apply(tr.Matrix(), mgl32.Vec3{1, 0, 0}))
}

func TestValidate(t *testing.T) {
	tr := NewTransform()
	assert.NoError(t, tr.Validate())

	tr.Rotation[1] = float32(math.NaN())
	err := tr.Validate()
	require.Error(t, err)
	var ie *InvalidInputError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "Rotation", ie.Field)
	assert.Equal(t, 1, ie.Axis)

	m := tr.Matrix()
	assert.True(t, math.IsNaN(float64(m[0])), "NaN propagates into the matrix")

	tr = NewTransform()
	tr.Scale[2] = float32(math.Inf(-1))
	require.ErrorAs(t, tr.Validate(), &ie)
	assert.Equal(t, "Scale", ie.Field)
	assert.Equal(t, 2, ie.Axis)
}
