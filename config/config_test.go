// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/csherratt/genmesh/export"
	"github.com/csherratt/genmesh/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTOML = `
output = "scene.glb"

[[shapes]]
kind = "cube"
pos = [3.0, 0.0, 0.0]

[[shapes]]
name = "pipe"
kind = "Cylinder"
u = 8
side_uv = "height"
`

const testYAML = `
output: scene.glb
shapes:
  - kind: cube
    pos: [3, 0, 0]
  - name: pipe
    kind: Cylinder
    u: 8
    side_uv: height
`

func TestParseTOMLAndYAML(t *testing.T) {
	ct, err := Parse([]byte(testTOML), ".toml")
	require.NoError(t, err)
	cy, err := Parse([]byte(testYAML), "yml")
	require.NoError(t, err)
	assert.Equal(t, ct, cy)

	assert.Equal(t, "scene.glb", ct.Output)
	require.Len(t, ct.Shapes, 2)
	assert.Equal(t, Shape{Name: "cube0", Kind: KindCube, Pos: [3]float32{3, 0, 0}}, ct.Shapes[0])
	assert.Equal(t, Shape{Name: "pipe", Kind: KindCylinder, U: 8, H: DefaultH, SideUV: shape.SideUVHeight}, ct.Shapes[1])

	f, err := ct.OutputFormat()
	assert.NoError(t, err)
	assert.Equal(t, export.GLB, f)
	assert.NoError(t, ct.Validate())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte(testTOML), ".json")
	assert.Error(t, err)
	_, err = Parse([]byte("shapes = ["), ".toml")
	assert.Error(t, err)
	_, err = Parse([]byte("shapes:\n  - side_uv: diagonal\n"), ".yaml")
	assert.Error(t, err)
}

func TestDefaults(t *testing.T) {
	cfg := &Config{Shapes: []Shape{{Kind: "cylinder"}, {Kind: "cube"}}}
	cfg.SetDefaults()
	assert.Equal(t, DefaultU, cfg.Shapes[0].U)
	assert.Equal(t, DefaultH, cfg.Shapes[0].H)
	assert.Equal(t, "cylinder0", cfg.Shapes[0].Name)
	assert.Zero(t, cfg.Shapes[1].U)
	assert.Equal(t, "cube1", cfg.Shapes[1].Name)
}

func TestValidate(t *testing.T) {
	assert.Error(t, (&Config{}).Validate())

	cfg := &Config{
		Format: "stl",
		Shapes: []Shape{
			{Name: "a", Kind: "sphere"},
			{Name: "b", Kind: KindCylinder, U: 1, H: 0},
		},
	}
	err := cfg.Validate()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, `unknown format "stl"`)
	assert.Contains(t, msg, `unknown kind "sphere"`)
	assert.Contains(t, msg, "u must be at least 2")
	assert.Contains(t, msg, "h must be at least 1")

	_, err = cfg.Meshes()
	assert.Error(t, err)
}

func TestMeshes(t *testing.T) {
	cfg, err := Parse([]byte(testTOML), "toml")
	require.NoError(t, err)
	ms, err := cfg.Meshes()
	require.NoError(t, err)
	require.Len(t, ms, 2)

	assert.Equal(t, "cube0", ms[0].Name)
	assert.Equal(t, 24, ms[0].Buffers.NumVertex())
	assert.Equal(t, float32(2), ms[0].Buffers.BBox.Min.X)
	assert.Equal(t, float32(4), ms[0].Buffers.BBox.Max.X)

	// (3+h)u+2 shared vertices
	assert.Equal(t, "pipe", ms[1].Name)
	assert.Equal(t, 4*8+2, ms[1].Buffers.NumVertex())
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testYAML), 0o666))
	cfg, err := Open(path)
	require.NoError(t, err)
	assert.Len(t, cfg.Shapes, 2)

	_, err = Open(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}
