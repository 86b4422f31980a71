// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config loads demo configuration from TOML files,
// with defaults taken from `default:` struct tags.
package config

import (
	"bufio"
	"bytes"
	"os"

	"cogentcore.org/gpudemos/base/errors"
	"github.com/pelletier/go-toml/v2"
)

// Window is the window configuration shared by the demos.
type Window struct {

	// Title of the window.
	Title string `default:"GPU demo" desc:"title of the window"`

	// Width of the window in screen coordinates.
	Width int `default:"1080" desc:"width of the window"`

	// Height of the window in screen coordinates.
	Height int `default:"1080" desc:"height of the window"`
}

// Aspect returns Width / Height, or 1 if Height is not positive.
func (w *Window) Aspect() float32 {
	if w.Height <= 0 {
		return 1
	}
	return float32(w.Width) / float32(w.Height)
}

// Open reads the given TOML file into cfg, which must be a pointer.
// Fields not present in the file keep their values. Keys in the
// file that do not match a field are an error.
func Open(cfg any, file string) error {
	b, err := os.ReadFile(file)
	if err != nil {
		return err
	}
	return Read(cfg, b)
}

// Read decodes TOML data into cfg, as in [Open].
func Read(cfg any, data []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err := dec.Decode(cfg)
	var sm *toml.StrictMissingError
	if errors.As(err, &sm) {
		return errors.New("config: " + sm.String())
	}
	return err
}

// Save writes cfg to the given TOML file.
func Save(cfg any, file string) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	enc := toml.NewEncoder(bw)
	enc.SetIndentTables(true)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return bw.Flush()
}
