// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shape generates parametric solids (a [Cube] and a
// subdivided [Cylinder]) as polygons of vertices carrying position,
// normal and texture coordinate.
//
// Every generator offers two consistent views of the same surface:
// sequential iteration over fully resolved polygons, and a shared
// vertex list plus polygons of indices into it for indexed drawing
// (see [SharedVertex] and [IndexedPolygon]). [Packed] and [Group]
// write those views into flat vertex and index buffers.
package shape

import (
	"iter"

	"github.com/csherratt/genmesh/math32"
	"github.com/csherratt/genmesh/poly"
)

// Vertex is a single generated surface point.
type Vertex struct {
	// Pos is the position of the vertex.
	Pos math32.Vector3

	// Normal is the outward unit surface normal at the vertex.
	Normal math32.Vector3

	// UV is the texture atlas coordinate of the vertex.
	UV math32.Vector2
}

// SharedVertex is implemented by generators that can report
// their distinct vertices by index.
type SharedVertex interface {
	// SharedVertexCount returns the number of distinct vertices.
	SharedVertexCount() int

	// SharedVertex returns the vertex at idx, which must be in
	// [0, SharedVertexCount()).
	SharedVertex(idx int) Vertex
}

// IndexedPolygon is implemented by generators that can report their
// polygons as indices into the shared vertex list.
type IndexedPolygon[P any] interface {
	// IndexedPolygonCount returns the number of polygons.
	IndexedPolygonCount() int

	// IndexedPolygon returns the polygon at idx, which must be in
	// [0, IndexedPolygonCount()).
	IndexedPolygon(idx int) P
}

// Generator is a shape that provides both the shared vertex
// and indexed polygon views of its surface.
type Generator[P poly.Polygon[int]] interface {
	SharedVertex
	IndexedPolygon[P]
}

// Resolve returns an iterator over all polygons of g with their
// indices resolved through [SharedVertex.SharedVertex]. It does not
// advance any iteration cursor of g.
func Resolve[P poly.Polygon[int]](g Generator[P]) iter.Seq[poly.Polygon[Vertex]] {
	return func(yield func(poly.Polygon[Vertex]) bool) {
		for i := range g.IndexedPolygonCount() {
			var p poly.Polygon[int] = g.IndexedPolygon(i)
			if !yield(poly.MapVertex(p, g.SharedVertex)) {
				return
			}
		}
	}
}

// Indices returns an iterator over all polygons of g as indices.
func Indices[P poly.Polygon[int]](g Generator[P]) iter.Seq2[int, P] {
	return func(yield func(int, P) bool) {
		for i := range g.IndexedPolygonCount() {
			if !yield(i, g.IndexedPolygon(i)) {
				return
			}
		}
	}
}

// Vertices returns an iterator over all shared vertices of g.
func Vertices(g SharedVertex) iter.Seq2[int, Vertex] {
	return func(yield func(int, Vertex) bool) {
		for i := range g.SharedVertexCount() {
			if !yield(i, g.SharedVertex(i)) {
				return
			}
		}
	}
}
