// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	Window   Window
	Effects  []string      `default:"gaussianBlur,emboss"`
	Scale    float32       `default:"0.5"`
	Frames   int           `default:"-1"`
	Interval time.Duration `default:"16ms"`
	Vsync    bool          `default:"true"`
	Name     string
	hidden   int
}

func TestSetFromDefaults(t *testing.T) {
	cfg := &testConfig{Name: "keep"}
	require.NoError(t, SetFromDefaults(cfg))
	assert.Equal(t, "GPU demo", cfg.Window.Title)
	assert.Equal(t, 1080, cfg.Window.Width)
	assert.Equal(t, []string{"gaussianBlur", "emboss"}, cfg.Effects)
	assert.Equal(t, float32(0.5), cfg.Scale)
	assert.Equal(t, -1, cfg.Frames)
	assert.Equal(t, 16*time.Millisecond, cfg.Interval)
	assert.True(t, cfg.Vsync)
	assert.Equal(t, "keep", cfg.Name)
	assert.Equal(t, float32(1), cfg.Window.Aspect())

	assert.Error(t, SetFromDefaults(testConfig{}))

	bad := &struct {
		N int `default:"many"`
	}{}
	assert.Error(t, SetFromDefaults(bad))
}

func TestSaveOpen(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "demo.toml")
	cfg := &testConfig{}
	require.NoError(t, SetFromDefaults(cfg))
	cfg.Window.Width = 640
	cfg.Effects = []string{"unsharpen"}
	require.NoError(t, Save(cfg, fn))

	got := &testConfig{}
	require.NoError(t, Open(got, fn))
	assert.Equal(t, 640, got.Window.Width)
	assert.Equal(t, []string{"unsharpen"}, got.Effects)
	assert.Equal(t, cfg.Interval, got.Interval)
}

func TestOpenPartial(t *testing.T) {
	cfg := &testConfig{}
	require.NoError(t, SetFromDefaults(cfg))
	require.NoError(t, Read(cfg, []byte("Scale = 2.0\n[Window]\nHeight = 720\n")))
	assert.Equal(t, float32(2), cfg.Scale)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, 1080, cfg.Window.Width)
	assert.Equal(t, float32(1.5), cfg.Window.Aspect())

	err := Read(cfg, []byte("Bogus = 1\n"))
	assert.ErrorContains(t, err, "Bogus")

	assert.Error(t, Open(cfg, filepath.Join(t.TempDir(), "missing.toml")))
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "live.toml")
	require.NoError(t, os.WriteFile(fn, []byte("Scale = 1.0\n"), 0666))

	ctx, cancel := context.WithCancel(context.Background())
	changed := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, fn, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		})
	}()

	// other files in the directory are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.toml"), []byte("x"), 0666))

	timeout := time.After(5 * time.Second)
	tick := time.NewTicker(20 * time.Millisecond)
	defer tick.Stop()
loop:
	for {
		select {
		case <-changed:
			break loop
		case <-tick.C:
			require.NoError(t, os.WriteFile(fn, []byte("Scale = 3.0\n"), 0666))
		case <-timeout:
			t.Fatal("no change notification")
		}
	}
	cancel()
	assert.NoError(t, <-done)
}
