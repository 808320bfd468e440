// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package export writes packed shape buffers to mesh file formats:
// Wavefront OBJ and glTF 2.0 (JSON or binary).
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/csherratt/genmesh/shape"
)

// Mesh is a named set of packed buffers.
type Mesh struct {
	Name    string
	Buffers *shape.Buffers
}

// NewMesh packs the given shape mesh into a named [Mesh].
func NewMesh(name string, m shape.Mesh) Mesh {
	return Mesh{Name: name, Buffers: shape.NewBuffers(m)}
}

// Format is an output file format.
type Format string

const (
	// OBJ is the Wavefront OBJ text format.
	OBJ Format = "obj"

	// GLTF is glTF 2.0 JSON with embedded buffers.
	GLTF Format = "gltf"

	// GLB is binary glTF 2.0.
	GLB Format = "glb"
)

// Formats lists all supported formats.
var Formats = []Format{OBJ, GLTF, GLB}

// ParseFormat returns the [Format] with the given name, ignoring case
// and a leading dot.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(s, ".")))
	for _, ok := range Formats {
		if f == ok {
			return f, nil
		}
	}
	return "", fmt.Errorf("export: unknown format %q (valid: obj, gltf, glb)", s)
}

// FormatFromPath returns the [Format] selected by the extension of path.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return "", fmt.Errorf("export: no file extension in %q to select a format", path)
	}
	return ParseFormat(ext)
}

// Write writes the meshes to w in the given format.
func Write(w io.Writer, format Format, meshes ...Mesh) error {
	switch format {
	case OBJ:
		return WriteOBJ(w, meshes...)
	case GLTF:
		return WriteGLTF(w, false, meshes...)
	case GLB:
		return WriteGLTF(w, true, meshes...)
	}
	return fmt.Errorf("export: unknown format %q", format)
}

// Save writes the meshes to the file at path. If format is empty
// it is selected by the file extension.
func Save(path string, format Format, meshes ...Mesh) (err error) {
	if format == "" {
		format, err = FormatFromPath(path)
		if err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: failed to create %s file: %w", format, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = cerr
		}
	}()
	return Write(f, format, meshes...)
}
