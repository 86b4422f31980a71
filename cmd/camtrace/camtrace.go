// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command camtrace runs the demo math without a window: it prints
// the camera path over time and can write the CPU reference image
// of the heightfield, optionally filtered by an effect chain.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"io"
	"log/slog"
	"math"
	"os"

	"cogentcore.org/gpudemos/base/errors"
	"cogentcore.org/gpudemos/base/iox/imagex"
	"cogentcore.org/gpudemos/camera"
	"cogentcore.org/gpudemos/cli"
	"cogentcore.org/gpudemos/effects"
	"cogentcore.org/gpudemos/heightfield"
)

// Config is the command line configuration.
type Config struct {
	// Start is the first time in milliseconds.
	Start float64 `default:"0" desc:"first time in milliseconds"`

	// End is the last time in milliseconds.
	End float64 `default:"60000" desc:"last time in milliseconds"`

	// Step is the time between samples in milliseconds.
	Step float64 `default:"5000" desc:"time between samples in milliseconds"`

	// Aspect is the width / height of the projection.
	Aspect float32 `default:"1" desc:"aspect ratio of the projection"`

	// Matrix also prints the view-projection matrix at each sample.
	Matrix bool `desc:"print the view-projection matrix at each sample"`

	// Grid is the heightfield layout for the reference image.
	Grid heightfield.Grid

	// Reference is the file to write the heightfield reference image to.
	Reference string `desc:"write the top-down heightfield image at -time to this file"`

	// Time is the time of the reference image in milliseconds.
	Time float64 `default:"0" desc:"time of the reference image in milliseconds"`

	// Size scales the reference image to this width and height; 0 keeps one pixel per cube.
	Size int `default:"0" desc:"scale the reference image to this size in pixels"`

	// Effects is a kernel chain applied to the reference image.
	Effects []string `desc:"comma separated kernels applied to the reference image"`
}

func main() {
	cfg := &Config{}
	if _, err := cli.Parse(cfg, "camtrace", os.Args[1:]); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			slog.Error("camtrace", "err", err)
			os.Exit(2)
		}
		return
	}
	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		slog.Error("camtrace", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *Config, w io.Writer) error {
	if err := Trace(cfg, w); err != nil {
		return err
	}
	if cfg.Reference == "" {
		return nil
	}
	img, err := Reference(ctx, cfg)
	if err != nil {
		return err
	}
	if err := imagex.Save(img, cfg.Reference); err != nil {
		return err
	}
	slog.Info("wrote reference", "file", cfg.Reference, "size", img.Bounds().Size())
	return nil
}

// MaxSamples is the largest number of sample times [Trace] prints.
const MaxSamples = 1_000_000

// Trace prints one line per sample time: the time, the camera
// angle and eye, and optionally the view-projection matrix.
// Sample k is at Start + k*Step, for every such time up to End.
func Trace(cfg *Config, w io.Writer) error {
	for _, v := range []float64{cfg.Start, cfg.End, cfg.Step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("camtrace: start, end and step must be finite, not %v", v)
		}
	}
	if cfg.Step <= 0 {
		return fmt.Errorf("camtrace: step must be positive, not %v", cfg.Step)
	}
	n := math.Floor((cfg.End-cfg.Start)/cfg.Step) + 1
	if n > MaxSamples {
		return fmt.Errorf("camtrace: %g samples from %v to %v by %v is more than %d", n, cfg.Start, cfg.End, cfg.Step, MaxSamples)
	}
	opts := camera.DefaultOptions()
	opts.Aspect = cfg.Aspect
	for k := 0; float64(k) < n; k++ {
		tm := cfg.Start + float64(k)*cfg.Step
		st := camera.ViewProjection(tm, opts)
		eye := st.Option.Eye
		fmt.Fprintf(w, "t=%-8g angle=%.4f eye=(%.4f, %.4f, %.4f)\n", tm, camera.Angle(tm), eye[0], eye[1], eye[2])
		if cfg.Matrix {
			m := st.ViewProjection
			for r := range 4 {
				fmt.Fprintf(w, "  [% .4f % .4f % .4f % .4f]\n", m.At(r, 0), m.At(r, 1), m.At(r, 2), m.At(r, 3))
			}
		}
	}
	return nil
}

// Reference renders the heightfield at cfg.Time, applies the effect
// chain and scales it to cfg.Size.
func Reference(ctx context.Context, cfg *Config) (image.Image, error) {
	kernels, err := effects.Chain(cfg.Effects).Kernels()
	if err != nil {
		return nil, err
	}
	img, err := heightfield.Render(ctx, cfg.Grid, heightfield.DefaultParams(), cfg.Time)
	if err != nil {
		return nil, err
	}
	if len(kernels) > 0 {
		img = effects.Apply(img, kernels...)
	}
	if cfg.Size > 0 {
		img = heightfield.Scale(img, image.Point{cfg.Size, cfg.Size})
	}
	return img, nil
}
