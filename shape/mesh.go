// Copyright 2022 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"github.com/csherratt/genmesh/math32"
	"github.com/csherratt/genmesh/poly"
)

// Mesh is an interface for all elements that can write themselves
// into packed vertex and index arrays.
type Mesh interface {
	// Size returns number of vertex, index points in this shape element.
	Size() (numVertex, numIndex int)

	// Set sets points in given allocated arrays.
	Set(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32)

	// SetOffsets sets starting offsets for vertices, indexes in full shape array,
	// in terms of points, not floats.
	SetOffsets(vertexOffset, indexOffset int)

	// BBox returns the bounding box for the shape, typically centered around 0.
	// This is only valid after Set has been called.
	BBox() math32.Box3
}

// ShapeBase is the base shape element
type ShapeBase struct {

	// vertex offset, in points
	VertexOffset int

	// index offset, in points
	IndexOffset int

	// cubic bounding box in local coords
	CBBox math32.Box3

	// all shapes take a 3D position offset to enable composition
	Pos math32.Vector3
}

// SetOffsets sets starting offsets for vertices, indexes in full shape array
func (sb *ShapeBase) SetOffsets(vertexOffset, indexOffset int) {
	sb.VertexOffset, sb.IndexOffset = vertexOffset, indexOffset
}

// BBox returns the bounding box for the shape, typically centered around 0
// This is only valid after Set has been called.
func (sb *ShapeBase) BBox() math32.Box3 {
	return sb.CBBox
}

// Packed writes the shared vertices and triangulated indexed polygons
// of a [Generator] into packed arrays, translated by Pos.
type Packed[P poly.Polygon[int]] struct {
	ShapeBase

	// Gen is the generator providing the geometry.
	Gen Generator[P]
}

// NewPacked returns a new [Packed] mesh for the given generator.
func NewPacked[P poly.Polygon[int]](gen Generator[P]) *Packed[P] {
	return &Packed[P]{Gen: gen}
}

// SetPos sets the position offset and returns the mesh.
func (pk *Packed[P]) SetPos(pos math32.Vector3) *Packed[P] {
	pk.Pos = pos
	return pk
}

// Size returns the number of shared vertices and the number of
// triangle indices of the generator.
func (pk *Packed[P]) Size() (numVertex, numIndex int) {
	numVertex = pk.Gen.SharedVertexCount()
	for _, p := range Indices(pk.Gen) {
		numIndex += 3 * poly.NumTriangles(p.Len())
	}
	return
}

// Set sets points in given allocated arrays
func (pk *Packed[P]) Set(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32) {
	pk.CBBox.SetEmpty()
	for i, v := range Vertices(pk.Gen) {
		vi := pk.VertexOffset + i
		pos := v.Pos.Add(pk.Pos)
		vertex.SetVector3(vi*3, pos)
		normal.SetVector3(vi*3, v.Normal)
		texcoord.SetVector2(vi*2, v.UV)
		pk.CBBox.ExpandByPoint(pos)
	}
	ii := pk.IndexOffset
	vo := uint32(pk.VertexOffset)
	for _, p := range Indices(pk.Gen) {
		for _, t := range poly.Triangulate[int](p) {
			index.Set(ii, vo+uint32(t.X), vo+uint32(t.Y), vo+uint32(t.Z))
			ii += 3
		}
	}
}

// BBoxFromVertices returns the bounding box updated from the range of vertex points
func BBoxFromVertices(vertex math32.ArrayF32, vertexOffset int, numVertex int) math32.Box3 {
	bb := math32.B3Empty()
	var v math32.Vector3
	for vi := range numVertex {
		vertex.GetVector3((vertexOffset+vi)*3, &v)
		bb.ExpandByPoint(v)
	}
	return bb
}
