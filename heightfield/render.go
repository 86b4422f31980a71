// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package heightfield

import (
	"context"
	"fmt"
	"image"
	"runtime"

	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// Render returns a top-down image of the grid at the given time
// in milliseconds: one pixel per instance, with column along X and
// row along Y, colored by the heat map of the top face height.
// Rows are computed in parallel.
func Render(ctx context.Context, g Grid, p Params, time float64) (*image.RGBA, error) {
	if g.Empty() {
		return nil, fmt.Errorf("heightfield: invalid grid size %d x %d", g.Width, g.Rows)
	}
	if p.MaxHeight <= 0 {
		return nil, fmt.Errorf("heightfield: MaxHeight must be positive, not %g", p.MaxHeight)
	}
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Rows))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for r := range g.Rows {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			base := uint32(r * g.Width)
			for c := range g.Width {
				h := Height(g, p, base+uint32(c), 1, time)
				img.SetRGBA(c, r, RGBA(HeatMap(p.Normalize(h))))
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return img, nil
}

// Scale returns src resized to size with Catmull-Rom resampling,
// or nearest neighbor when enlarging so that cells stay sharp.
func Scale(src image.Image, size image.Point) *image.RGBA {
	dst := image.NewRGBA(image.Rectangle{Max: size})
	sb := src.Bounds()
	var sc draw.Scaler = draw.CatmullRom
	if size.X >= sb.Dx() && size.Y >= sb.Dy() {
		sc = draw.NearestNeighbor
	}
	sc.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	return dst
}
