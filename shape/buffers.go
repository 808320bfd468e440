// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/csherratt/genmesh/math32"

// Buffers holds the packed arrays of a [Mesh], ready for indexed drawing
// as a triangle list.
type Buffers struct {

	// Vertex holds 3 floats per vertex position.
	Vertex math32.ArrayF32

	// Normal holds 3 floats per vertex normal.
	Normal math32.ArrayF32

	// TexCoord holds 2 floats per vertex texture coordinate.
	TexCoord math32.ArrayF32

	// Index holds 3 vertex indices per triangle.
	Index math32.ArrayU32

	// BBox is the bounding box of all vertex positions.
	BBox math32.Box3
}

// NewBuffers allocates buffers sized for m and fills them from it,
// starting at offset 0.
func NewBuffers(m Mesh) *Buffers {
	nv, ni := m.Size()
	b := &Buffers{
		Vertex:   math32.NewArrayF32(nv*3, nv*3),
		Normal:   math32.NewArrayF32(nv*3, nv*3),
		TexCoord: math32.NewArrayF32(nv*2, nv*2),
		Index:    math32.NewArrayU32(ni, ni),
	}
	m.SetOffsets(0, 0)
	m.Set(b.Vertex, b.Normal, b.TexCoord, b.Index)
	b.BBox = m.BBox()
	return b
}

// NumVertex returns the number of vertices.
func (b *Buffers) NumVertex() int {
	return len(b.Vertex) / 3
}

// NumTriangles returns the number of triangles.
func (b *Buffers) NumTriangles() int {
	return len(b.Index) / 3
}

// At returns the vertex at index i.
func (b *Buffers) At(i int) Vertex {
	var v Vertex
	b.Vertex.GetVector3(i*3, &v.Pos)
	b.Normal.GetVector3(i*3, &v.Normal)
	b.TexCoord.GetVector2(i*2, &v.UV)
	return v
}

// Triangle returns the vertex indices of triangle t.
func (b *Buffers) Triangle(t int) (i0, i1, i2 int) {
	return int(b.Index[t*3]), int(b.Index[t*3+1]), int(b.Index[t*3+2])
}
