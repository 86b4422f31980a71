// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cli binds the fields of a config struct to command
// line flags.
//
// The order of precedence is: `default:` struct tags, then the
// TOML file given by -config, then the remaining flags.
// A field is bound to the flag named in its `flag:` tag, or to its
// lowercased name, with nested struct fields joined by a dot
// (for example -window.width). The `desc:` tag is the usage text.
package cli

import (
	"flag"
	"fmt"
	"io"
	"reflect"
	"strings"

	"cogentcore.org/gpudemos/base/errors"
	"cogentcore.org/gpudemos/config"
	"cogentcore.org/gpudemos/logx"
)

// Verbosity holds the standard logging flags.
type Verbosity struct {
	// V sets the log level to info.
	V bool

	// VV sets the log level to debug.
	VV bool

	// Q sets the log level to error.
	Q bool
}

// Parse sets cfg (a pointer to a struct) from defaults, the -config
// file and then the command line args (without the program name),
// and sets [logx.UserLevel] and the default logger from the
// verbosity flags. It returns the positional arguments.
// [flag.ErrHelp] is returned for -h.
func Parse(cfg any, name string, args []string) ([]string, error) {
	return ParseOutput(cfg, name, args, nil)
}

// ParseOutput is [Parse] writing usage and errors to w,
// or the flag package default if w is nil.
func ParseOutput(cfg any, name string, args []string, w io.Writer) ([]string, error) {
	if err := config.SetFromDefaults(cfg); err != nil {
		return nil, err
	}
	if file := ConfigFile(args); file != "" {
		if err := config.Open(cfg, file); err != nil {
			return nil, fmt.Errorf("cli: opening config file: %w", err)
		}
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	if w != nil {
		fs.SetOutput(w)
	}
	fs.String("config", "", "TOML config file to load before applying flags")
	var vb Verbosity
	fs.BoolVar(&vb.V, "v", false, "verbose: log info messages")
	fs.BoolVar(&vb.VV, "vv", false, "very verbose: log debug messages")
	fs.BoolVar(&vb.Q, "q", false, "quiet: only log errors")
	if err := bindFields(fs, reflect.ValueOf(cfg).Elem(), ""); err != nil {
		return nil, err
	}
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if vb.V || vb.VV || vb.Q {
		logx.UserLevel = logx.LevelFromFlags(vb.VV, vb.V, vb.Q)
	}
	logx.SetDefaultLogger()
	return fs.Args(), nil
}

// ConfigFile returns the value of a -config flag in args, if any.
func ConfigFile(args []string) string {
	for i, a := range args {
		if a == "--" {
			break
		}
		a = strings.TrimLeft(a, "-")
		if v, ok := strings.CutPrefix(a, "config="); ok {
			return v
		}
		if a == "config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}

func bindFields(fs *flag.FlagSet, val reflect.Value, prefix string) error {
	typ := val.Type()
	for i := range typ.NumField() {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		name, ok := f.Tag.Lookup("flag")
		if name == "-" {
			continue
		}
		if !ok {
			name = strings.ToLower(f.Name)
		}
		name = prefix + name
		fv := val.Field(i)
		if fv.Kind() == reflect.Struct {
			if err := bindFields(fs, fv, name+"."); err != nil {
				return err
			}
			continue
		}
		if fs.Lookup(name) != nil {
			return errors.New("cli: duplicate flag -" + name)
		}
		fs.Var(&value{fv}, name, f.Tag.Get("desc"))
	}
	return nil
}

// value is a [flag.Value] for a config field.
type value struct {
	v reflect.Value
}

func (v *value) String() string {
	if !v.v.IsValid() {
		return ""
	}
	if v.v.Kind() == reflect.Slice {
		parts := make([]string, v.v.Len())
		for i := range parts {
			parts[i] = fmt.Sprint(v.v.Index(i).Interface())
		}
		return strings.Join(parts, ",")
	}
	return fmt.Sprint(v.v.Interface())
}

func (v *value) Set(s string) error {
	return config.SetString(v.v, s)
}

// IsBoolFlag allows bool fields to be given as -name without a value.
func (v *value) IsBoolFlag() bool {
	return v.v.Kind() == reflect.Bool
}
