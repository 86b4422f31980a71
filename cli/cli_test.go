// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bytes"
	"flag"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"cogentcore.org/gpudemos/config"
	"cogentcore.org/gpudemos/logx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type demoConfig struct {
	Window  config.Window
	Effects []string `default:"gaussianBlur,emboss" desc:"kernel chain"`
	Frames  int      `flag:"n" default:"0" desc:"frames to render"`
	Vsync   bool     `default:"true"`
	Secret  string   `flag:"-"`
}

func TestParseDefaults(t *testing.T) {
	cfg := &demoConfig{}
	rest, err := Parse(cfg, "demo", []string{"extra"})
	require.NoError(t, err)
	assert.Equal(t, []string{"extra"}, rest)
	assert.Equal(t, 1080, cfg.Window.Width)
	assert.Equal(t, []string{"gaussianBlur", "emboss"}, cfg.Effects)
	assert.True(t, cfg.Vsync)
}

func TestParseFlags(t *testing.T) {
	cfg := &demoConfig{}
	_, err := Parse(cfg, "demo", []string{"-window.width", "640", "-n=12", "-effects", "unsharpen", "-vsync=false"})
	require.NoError(t, err)
	assert.Equal(t, 640, cfg.Window.Width)
	assert.Equal(t, 1080, cfg.Window.Height)
	assert.Equal(t, 12, cfg.Frames)
	assert.Equal(t, []string{"unsharpen"}, cfg.Effects)
	assert.False(t, cfg.Vsync)
}

func TestParseConfigFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "demo.toml")
	require.NoError(t, os.WriteFile(fn, []byte("Frames = 5\n[Window]\nTitle = 'file'\nWidth = 800\n"), 0666))

	cfg := &demoConfig{}
	_, err := Parse(cfg, "demo", []string{"-config", fn, "-window.width", "300"})
	require.NoError(t, err)
	assert.Equal(t, "file", cfg.Window.Title)
	assert.Equal(t, 5, cfg.Frames)
	assert.Equal(t, 300, cfg.Window.Width, "flags override the file")

	_, err = Parse(&demoConfig{}, "demo", []string{"-config=" + fn + ".missing"})
	assert.Error(t, err)
}

func TestParseErrors(t *testing.T) {
	var buf bytes.Buffer
	_, err := ParseOutput(&demoConfig{}, "demo", []string{"-n", "lots"}, &buf)
	assert.Error(t, err)

	_, err = ParseOutput(&demoConfig{}, "demo", []string{"-secret", "x"}, &buf)
	assert.Error(t, err)

	buf.Reset()
	_, err = ParseOutput(&demoConfig{}, "demo", []string{"-h"}, &buf)
	assert.ErrorIs(t, err, flag.ErrHelp)
	assert.Contains(t, buf.String(), "frames to render")
	assert.Contains(t, buf.String(), "-window.height")
}

func TestVerbosity(t *testing.T) {
	defer func(l slog.Level) { logx.UserLevel = l }(logx.UserLevel)
	_, err := Parse(&demoConfig{}, "demo", []string{"-vv"})
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, logx.UserLevel)

	_, err = Parse(&demoConfig{}, "demo", []string{"-q"})
	require.NoError(t, err)
	assert.Equal(t, slog.LevelError, logx.UserLevel)
}
