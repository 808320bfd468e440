// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the declarative description of a set of
// shapes to generate and export, read from a TOML or YAML file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/csherratt/genmesh/base/errors"
	"github.com/csherratt/genmesh/export"
	"github.com/csherratt/genmesh/math32"
	"github.com/csherratt/genmesh/shape"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Kinds of shapes that can be listed in a [Config].
const (
	KindCube     = "cube"
	KindCylinder = "cylinder"
)

// Default cylinder subdivisions.
const (
	DefaultU = 16
	DefaultH = 1
)

// Config is the main config struct that lists the
// shapes to generate and where to write them.
type Config struct {

	// the output file; its extension selects the format if Format is empty
	Output string `toml:"output" yaml:"output"`

	// the output format: obj, gltf or glb
	Format export.Format `toml:"format" yaml:"format"`

	// the shapes to generate, each written as its own mesh
	Shapes []Shape `toml:"shapes" yaml:"shapes"`
}

// Shape is the configuration of one generated shape.
type Shape struct {

	// the mesh name; defaults to the kind and the shape's position in the list
	Name string `toml:"name" yaml:"name"`

	// the kind of shape: cube or cylinder
	Kind string `toml:"kind" yaml:"kind"`

	// [def: 16] cylinder subdivisions around the circumference
	U int `toml:"u" yaml:"u"`

	// [def: 1] cylinder subdivisions along the height
	H int `toml:"h" yaml:"h"`

	// cylinder side texture mapping: radial or height
	SideUV shape.SideUV `toml:"side_uv" yaml:"side_uv"`

	// position offset applied to every vertex
	Pos [3]float32 `toml:"pos" yaml:"pos"`
}

// Open reads the config file at path, decoding it as TOML or YAML
// according to its extension, and applies defaults.
func Open(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(b, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes the config data, which is TOML or YAML according
// to the given file extension, and applies defaults.
func Parse(b []byte, ext string) (*Config, error) {
	cfg := &Config{}
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "toml":
		if err := toml.Unmarshal(b, cfg); err != nil {
			return nil, err
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(b, cfg); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config file extension %q (valid: toml, yaml, yml)", ext)
	}
	cfg.SetDefaults()
	return cfg, nil
}

// SetDefaults fills in unset shape names and cylinder subdivisions.
func (cfg *Config) SetDefaults() {
	for i := range cfg.Shapes {
		sh := &cfg.Shapes[i]
		sh.Kind = strings.ToLower(sh.Kind)
		if sh.Name == "" {
			sh.Name = fmt.Sprintf("%s%d", sh.Kind, i)
		}
		if sh.Kind != KindCylinder {
			continue
		}
		if sh.U == 0 {
			sh.U = DefaultU
		}
		if sh.H == 0 {
			sh.H = DefaultH
		}
	}
}

// OutputFormat returns the configured format, or the one
// selected by the extension of Output.
func (cfg *Config) OutputFormat() (export.Format, error) {
	if cfg.Format != "" {
		return export.ParseFormat(string(cfg.Format))
	}
	return export.FormatFromPath(cfg.Output)
}

// Validate reports all invalid settings in the config.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Format != "" {
		if _, err := export.ParseFormat(string(cfg.Format)); err != nil {
			errs = append(errs, err)
		}
	}
	if len(cfg.Shapes) == 0 {
		errs = append(errs, errors.New("config: no shapes listed"))
	}
	for i := range cfg.Shapes {
		if err := cfg.Shapes[i].Validate(); err != nil {
			errs = append(errs, fmt.Errorf("config: shape %d (%s): %w", i, cfg.Shapes[i].Name, err))
		}
	}
	return errors.Join(errs...)
}

// Validate reports all invalid settings of the shape.
func (sh *Shape) Validate() error {
	switch sh.Kind {
	case KindCube:
		return nil
	case KindCylinder:
	default:
		return fmt.Errorf("unknown kind %q (valid: cube, cylinder)", sh.Kind)
	}
	var errs []error
	if sh.U < 2 {
		errs = append(errs, fmt.Errorf("u must be at least 2, got %d", sh.U))
	}
	if sh.H < 1 {
		errs = append(errs, fmt.Errorf("h must be at least 1, got %d", sh.H))
	}
	if sh.SideUV < 0 || sh.SideUV >= shape.SideUVN {
		errs = append(errs, fmt.Errorf("invalid side_uv %v", sh.SideUV))
	}
	return errors.Join(errs...)
}

// Mesh returns the packed shape mesh for the shape.
func (sh *Shape) Mesh() (shape.Mesh, error) {
	if err := sh.Validate(); err != nil {
		return nil, err
	}
	pos := math32.Vec3(sh.Pos[0], sh.Pos[1], sh.Pos[2])
	if sh.Kind == KindCube {
		return shape.NewCube().Mesh().SetPos(pos), nil
	}
	return shape.SubdivideCylinder(sh.U, sh.H).SetSideUV(sh.SideUV).Mesh().SetPos(pos), nil
}

// Meshes returns the named export meshes for all shapes.
func (cfg *Config) Meshes() ([]export.Mesh, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	ms := make([]export.Mesh, len(cfg.Shapes))
	for i := range cfg.Shapes {
		m, err := cfg.Shapes[i].Mesh()
		if err != nil {
			return nil, err
		}
		ms[i] = export.NewMesh(cfg.Shapes[i].Name, m)
	}
	return ms, nil
}
