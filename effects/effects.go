// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package effects has the 3x3 convolution kernels applied by the
// kernel quad fragment shader, and a CPU reference of that shader.
package effects

import (
	_ "embed"
	"fmt"
	"image"
	"slices"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/convolution"
)

// VertexShader is the GLSL vertex shader of the kernel quad.
//
//go:embed kernel.vert
var VertexShader string

// FragmentShader is the GLSL fragment shader applying one kernel.
//
//go:embed kernel.frag
var FragmentShader string

// Kernel is a 3x3 convolution kernel in row-major order,
// top row first.
type Kernel [9]float32

// Weight returns the sum of the kernel entries, or 1 if the sum
// is not positive, which is what the shader divides by.
func (k Kernel) Weight() float32 {
	var w float32
	for _, x := range k {
		w += x
	}
	if w <= 0 {
		return 1
	}
	return w
}

// Named kernels.
var (
	Normal       = Kernel{0, 0, 0, 0, 1, 0, 0, 0, 0}
	GaussianBlur = Kernel{0.045, 0.122, 0.045, 0.122, 0.332, 0.122, 0.045, 0.122, 0.045}
	Unsharpen    = Kernel{-1, -1, -1, -1, 9, -1, -1, -1, -1}
	Emboss       = Kernel{-2, -1, 0, -1, 1, 1, 0, 1, 2}
)

var kernels = map[string]Kernel{
	"normal":       Normal,
	"gaussianBlur": GaussianBlur,
	"unsharpen":    Unsharpen,
	"emboss":       Emboss,
}

// Lookup returns the kernel with the given name.
func Lookup(name string) (Kernel, bool) {
	k, ok := kernels[name]
	return k, ok
}

// Names returns the sorted kernel names.
func Names() []string {
	names := make([]string, 0, len(kernels))
	for n := range kernels {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Chain is an ordered list of kernel names, applied first to last.
type Chain []string

// DefaultChain returns blur, emboss, blur, unsharpen.
func DefaultChain() Chain {
	return Chain{"gaussianBlur", "emboss", "gaussianBlur", "unsharpen"}
}

// Kernels resolves the names of the chain.
func (c Chain) Kernels() ([]Kernel, error) {
	ks := make([]Kernel, len(c))
	for i, n := range c {
		k, ok := Lookup(n)
		if !ok {
			return nil, fmt.Errorf("effects: unknown kernel %q at position %d (have %v)", n, i, Names())
		}
		ks[i] = k
	}
	return ks, nil
}

// Apply returns img convolved with each kernel in turn, each
// divided by its [Kernel.Weight]. Edges are clamped and alpha
// is kept, as the shader does with a clamped texture.
func Apply(img image.Image, ks ...Kernel) *image.RGBA {
	out := clone.AsRGBA(img)
	for _, k := range ks {
		out = convolution.Convolve(out, k.matrix(), &convolution.Options{KeepAlpha: true})
	}
	return out
}

func (k Kernel) matrix() *convolution.Kernel {
	m := convolution.NewKernel(3, 3)
	w := float64(k.Weight())
	for i, x := range k {
		m.Matrix[i] = float64(x) / w
	}
	return m
}
