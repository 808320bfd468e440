// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package export

import (
	"fmt"
	"io"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// Document builds a glTF document with one mesh and one root node
// per input mesh. Each mesh has a single indexed triangle primitive
// with POSITION, NORMAL and TEXCOORD_0 attributes.
func Document(meshes ...Mesh) *gltf.Document {
	doc := gltf.NewDocument()
	doc.Asset.Generator = "genmesh"
	for _, m := range meshes {
		b := m.Buffers
		nv := b.NumVertex()
		pos := make([][3]float32, nv)
		nrm := make([][3]float32, nv)
		uvs := make([][2]float32, nv)
		for i := range nv {
			v := b.At(i)
			pos[i] = [3]float32{v.Pos.X, v.Pos.Y, v.Pos.Z}
			nrm[i] = [3]float32{v.Normal.X, v.Normal.Y, v.Normal.Z}
			uvs[i] = [2]float32{v.UV.X, v.UV.Y}
		}
		prim := &gltf.Primitive{
			Indices: gltf.Index(modeler.WriteIndices(doc, []uint32(b.Index))),
			Attributes: gltf.PrimitiveAttributes{
				gltf.POSITION:   modeler.WritePosition(doc, pos),
				gltf.NORMAL:     modeler.WriteNormal(doc, nrm),
				gltf.TEXCOORD_0: modeler.WriteTextureCoord(doc, uvs),
			},
			Mode: gltf.PrimitiveTriangles,
		}
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{Name: m.Name, Primitives: []*gltf.Primitive{prim}})
		doc.Nodes = append(doc.Nodes, &gltf.Node{Name: m.Name, Mesh: gltf.Index(len(doc.Meshes) - 1)})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)
	}
	return doc
}

// WriteGLTF writes the meshes to w as a glTF document. If binary is
// true the GLB container is used; otherwise the JSON form is written
// with its buffer embedded as a data URI.
func WriteGLTF(w io.Writer, binary bool, meshes ...Mesh) error {
	doc := Document(meshes...)
	if !binary {
		for _, b := range doc.Buffers {
			b.EmbeddedResource()
		}
	}
	enc := gltf.NewEncoder(w)
	enc.AsBinary = binary
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("export: failed to encode glTF: %w", err)
	}
	return nil
}
