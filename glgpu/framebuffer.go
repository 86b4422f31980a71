// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Framebuffer is an offscreen render target backed by a color texture.
// Its texture can be sampled by a later pass.
type Framebuffer struct {
	handle uint32
	tex    *Texture
}

// NewFramebuffer creates a framebuffer with a new color texture of
// the given size.
func NewFramebuffer(size image.Point) (*Framebuffer, error) {
	fb := &Framebuffer{tex: NewEmptyTexture(size)}
	gl.GenFramebuffers(1, &fb.handle)
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.handle)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, fb.tex.handle, 0)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		fb.Delete()
		return nil, fmt.Errorf("glgpu: framebuffer incomplete: status 0x%x", status)
	}
	return fb, nil
}

// Texture returns the color texture.
func (fb *Framebuffer) Texture() *Texture {
	return fb.tex
}

// Size returns the framebuffer size.
func (fb *Framebuffer) Size() image.Point {
	return fb.tex.size
}

// Activate binds the framebuffer as the render target and sets the
// viewport to cover it.
func (fb *Framebuffer) Activate() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, fb.handle)
	gl.Viewport(0, 0, int32(fb.tex.size.X), int32(fb.tex.size.Y))
}

// Delete deletes the framebuffer and its texture.
func (fb *Framebuffer) Delete() {
	if fb.handle != 0 {
		gl.DeleteFramebuffers(1, &fb.handle)
		fb.handle = 0
	}
	if fb.tex != nil {
		fb.tex.Delete()
	}
}

// ActivateDefault binds the window framebuffer with a viewport of
// the given size.
func ActivateDefault(size image.Point) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(size.X), int32(size.Y))
}

// ReadPixels reads the current read framebuffer into an image,
// flipping rows so the result is top-down.
func ReadPixels(size image.Point) *image.RGBA {
	img := image.NewRGBA(image.Rectangle{Max: size})
	if size.X <= 0 || size.Y <= 0 {
		return img
	}
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(size.X), int32(size.Y), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	FlipRows(img)
	return img
}

// FlipRows reverses the row order of img in place. GL rows run
// bottom-up.
func FlipRows(img *image.RGBA) {
	h := img.Rect.Dy()
	row := make([]uint8, img.Stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*img.Stride : (y+1)*img.Stride]
		bot := img.Pix[(h-1-y)*img.Stride : (h-y)*img.Stride]
		copy(row, top)
		copy(top, bot)
		copy(bot, row)
	}
}
