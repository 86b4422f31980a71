// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"image"

	"cogentcore.org/gpudemos/base/iox/imagex"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Texture is a 2D RGBA8 texture sampled with linear filtering and
// clamped to its edges.
type Texture struct {
	handle uint32
	size   image.Point
}

// NewTexture uploads img and builds its mipmaps.
func NewTexture(img image.Image) *Texture {
	rgba := imagex.AsRGBA(img)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(rgba.Stride/4))
	tx := newTexture(rgba.Rect.Size(), rgba.Pix)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	return tx
}

// NewEmptyTexture allocates an uninitialized texture, used as a
// render target.
func NewEmptyTexture(size image.Point) *Texture {
	return newTexture(size, nil)
}

func newTexture(size image.Point, pix []uint8) *Texture {
	tx := &Texture{size: size}
	gl.GenTextures(1, &tx.handle)
	gl.BindTexture(gl.TEXTURE_2D, tx.handle)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	if len(pix) == 0 {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(size.X), int32(size.Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	} else {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(size.X), int32(size.Y), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	}
	return tx
}

// Size returns the texture size in pixels.
func (tx *Texture) Size() image.Point {
	return tx.size
}

// Handle returns the GL handle.
func (tx *Texture) Handle() uint32 {
	return tx.handle
}

// Bind binds the texture to the given texture unit.
func (tx *Texture) Bind(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, tx.handle)
}

// Delete deletes the texture.
func (tx *Texture) Delete() {
	if tx.handle == 0 {
		return
	}
	gl.DeleteTextures(1, &tx.handle)
	tx.handle = 0
}
