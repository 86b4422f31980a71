// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame runs the per-frame callback of a demo on a ticker.
package frame

import (
	"context"
	"log/slog"
	"time"

	"cogentcore.org/gpudemos/base/errors"
)

// ErrStop can be returned by a frame callback to end [Loop.Run]
// without an error.
var ErrStop = errors.New("frame: stop")

// Frame is passed to each frame callback.
type Frame struct {
	// Index counts frames from 0.
	Index int

	// Time is the number of milliseconds since the loop started.
	Time float64

	// Delta is the number of milliseconds since the previous frame,
	// 0 for the first frame.
	Delta float64
}

// Loop drives a single-threaded frame loop. Each frame runs to
// completion before the next tick is handled, and ticks that arrive
// while a frame is running are dropped.
type Loop struct {
	// Interval between frames. 0 means 60 frames per second.
	Interval time.Duration

	// MaxFrames stops the loop after this many frames if > 0.
	MaxFrames int

	// Poll is called before each frame to process window events.
	// Returning false stops the loop. Nil always continues.
	Poll func() bool

	// ReportInterval is how often the frame rate is logged.
	// 0 means every 10 seconds, < 0 never.
	ReportInterval time.Duration

	// Now returns the current time. Nil means [time.Now].
	Now func() time.Time
}

// Run calls fn once per tick until ctx is done, Poll returns false,
// MaxFrames frames have run, or fn returns an error. The error from
// fn is returned, except for [ErrStop]. A done context is not an error.
func (lp *Loop) Run(ctx context.Context, fn func(f *Frame) error) error {
	interval := lp.Interval
	if interval <= 0 {
		interval = time.Second / 60
	}
	report := lp.ReportInterval
	if report == 0 {
		report = 10 * time.Second
	}
	now := lp.Now
	if now == nil {
		now = time.Now
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := now()
	last := start
	repStart := start
	repFrames := 0
	f := &Frame{}
	for f.Index = 0; lp.MaxFrames <= 0 || f.Index < lp.MaxFrames; f.Index++ {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
		if ctx.Err() != nil {
			return nil
		}
		if lp.Poll != nil && !lp.Poll() {
			return nil
		}
		t := now()
		f.Time = msec(t.Sub(start))
		if f.Index > 0 {
			f.Delta = msec(t.Sub(last))
		}
		last = t
		if err := fn(f); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}
		repFrames++
		if report > 0 {
			if d := t.Sub(repStart); d >= report {
				slog.Info("frame rate", "fps", float64(repFrames)/d.Seconds(), "frames", f.Index+1)
				repFrames = 0
				repStart = t
			}
		}
	}
	return nil
}

func msec(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
