// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heightfield

import (
	"image/color"

	"cogentcore.org/gpudemos/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Heat-map stops, from low to high.
var (
	Blue   = mgl32.Vec3{0, 0, 1}
	Cyan   = mgl32.Vec3{0, 1, 1}
	Green  = mgl32.Vec3{0, 1, 0}
	Yellow = mgl32.Vec3{1, 1, 0}
	Red    = mgl32.Vec3{1, 0, 0}
)

// HeatMap returns the color of a normalized height. h is clamped
// to [0, 1] and interpolated through blue, cyan, green, yellow and
// red, with a stop at each quarter.
func HeatMap(h float32) mgl32.Vec3 {
	h = math32.Clamp(h, 0, 1)
	switch {
	case h < 0.25:
		return mix(Blue, Cyan, h/0.25)
	case h < 0.5:
		return mix(Cyan, Green, (h-0.25)/0.25)
	case h < 0.75:
		return mix(Green, Yellow, (h-0.5)/0.25)
	default:
		return mix(Yellow, Red, (h-0.75)/0.25)
	}
}

func mix(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return mgl32.Vec3{
		math32.Mix(a[0], b[0], t),
		math32.Mix(a[1], b[1], t),
		math32.Mix(a[2], b[2], t),
	}
}

// RGBA converts a color in [0, 1] to an opaque color.RGBA.
func RGBA(c mgl32.Vec3) color.RGBA {
	return color.RGBA{unorm(c[0]), unorm(c[1]), unorm(c[2]), 255}
}

func unorm(x float32) uint8 {
	return uint8(math32.Clamp(x, 0, 1)*255 + 0.5)
}
