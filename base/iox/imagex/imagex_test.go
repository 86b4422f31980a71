// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagex

import (
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtToFormat(t *testing.T) {
	f, err := ExtToFormat(".PNG")
	assert.NoError(t, err)
	assert.Equal(t, PNG, f)
	f, err = ExtToFormat("jpg")
	assert.NoError(t, err)
	assert.Equal(t, JPEG, f)
	_, err = ExtToFormat("")
	assert.Error(t, err)
	_, err = ExtToFormat(".svg")
	assert.Error(t, err)
	assert.Equal(t, "WebP", WebP.String())
}

func TestSaveOpen(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	img.SetRGBA(2, 1, color.RGBA{10, 20, 30, 255})
	for _, ext := range []string{".png", ".bmp", ".tiff"} {
		fn := filepath.Join(t.TempDir(), "img"+ext)
		require.NoError(t, Save(img, fn))
		got, _, err := Open(fn)
		require.NoError(t, err)
		rgba := AsRGBA(got)
		assert.Equal(t, img.Bounds(), rgba.Bounds(), ext)
		assert.True(t, CompareColors(img.RGBAAt(2, 1), rgba.RGBAAt(2, 1), 0), ext)
	}
	assert.Error(t, Save(img, filepath.Join(t.TempDir(), "img.xyz")))
}

func TestAsRGBA(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	assert.Same(t, img, AsRGBA(img))

	sub := image.NewRGBA(image.Rect(5, 5, 8, 7))
	sub.SetRGBA(5, 5, color.RGBA{1, 2, 3, 4})
	out := AsRGBA(sub)
	assert.Equal(t, image.Rect(0, 0, 3, 2), out.Bounds())
	assert.Equal(t, color.RGBA{1, 2, 3, 4}, out.RGBAAt(0, 0))
}

func TestCompare(t *testing.T) {
	a := color.RGBA{100, 100, 100, 255}
	assert.True(t, CompareColors(a, color.RGBA{102, 99, 100, 255}, 2))
	assert.False(t, CompareColors(a, color.RGBA{103, 100, 100, 255}, 2))

	x := image.NewRGBA(image.Rect(0, 0, 1, 1))
	y := image.NewRGBA(image.Rect(0, 0, 1, 1))
	x.SetRGBA(0, 0, color.RGBA{50, 0, 0, 255})
	y.SetRGBA(0, 0, color.RGBA{20, 0, 0, 255})
	d := DiffImage(x, y).(*image.RGBA)
	assert.Equal(t, color.RGBA{30, 0, 0, 255}, d.RGBAAt(0, 0))
}

type recorder struct {
	errs []string
}

func (r *recorder) Errorf(format string, args ...any) {
	r.errs = append(r.errs, fmt.Sprintf(format, args...))
}

func TestAssert(t *testing.T) {
	t.Chdir(t.TempDir())
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(1, 1, color.RGBA{200, 10, 10, 255})

	r := &recorder{}
	Assert(r, img, "golden")
	require.Len(t, r.errs, 1, "a missing image fails")
	assert.Contains(t, r.errs[0], "no saved image")
	assert.FileExists(t, filepath.Join("testdata", "golden.png"))

	r = &recorder{}
	Assert(r, img, "golden")
	assert.Empty(t, r.errs)

	other := image.NewRGBA(img.Bounds())
	r = &recorder{}
	Assert(r, other, "golden")
	require.NotEmpty(t, r.errs)
	assert.FileExists(t, filepath.Join("testdata", "golden.fail.png"))
	assert.FileExists(t, filepath.Join("testdata", "golden.diff.png"))

	r = &recorder{}
	Assert(r, img, "golden")
	assert.Empty(t, r.errs)
	_, err := os.Stat(filepath.Join("testdata", "golden.fail.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
