// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package poly provides the polygon containers produced by the mesh
// generators: [Triangle] and [Quad], joined by the [Polygon] sum type.
// All containers are generic over their payload, which is either a
// vertex index or a fully resolved vertex.
//
// Vertices are always listed counter-clockwise as seen from the
// outside of the surface.
package poly

import (
	"fmt"
	"iter"
)

// Polygon is either a [Triangle] or a [Quad] of T.
// The set of variants is closed; use a type switch to distinguish them.
type Polygon[T any] interface {
	// Len returns the number of vertices in the polygon.
	Len() int

	// At returns the vertex at the given position in winding order.
	At(i int) T

	isPolygon()
}

// Triangle is a polygon with three vertices.
type Triangle[T any] struct {
	X, Y, Z T
}

// NewTriangle returns a new [Triangle] with the given vertices.
func NewTriangle[T any](x, y, z T) Triangle[T] {
	return Triangle[T]{X: x, Y: y, Z: z}
}

func (t Triangle[T]) Len() int { return 3 }

func (t Triangle[T]) At(i int) T {
	switch i {
	case 0:
		return t.X
	case 1:
		return t.Y
	case 2:
		return t.Z
	}
	panic(fmt.Sprintf("poly.Triangle.At: index %d out of range [0,3)", i))
}

func (t Triangle[T]) isPolygon() {}

// Quad is a polygon with four vertices.
type Quad[T any] struct {
	X, Y, Z, W T
}

// NewQuad returns a new [Quad] with the given vertices.
func NewQuad[T any](x, y, z, w T) Quad[T] {
	return Quad[T]{X: x, Y: y, Z: z, W: w}
}

func (q Quad[T]) Len() int { return 4 }

func (q Quad[T]) At(i int) T {
	switch i {
	case 0:
		return q.X
	case 1:
		return q.Y
	case 2:
		return q.Z
	case 3:
		return q.W
	}
	panic(fmt.Sprintf("poly.Quad.At: index %d out of range [0,4)", i))
}

func (q Quad[T]) isPolygon() {}

// MapTriangle returns a new [Triangle] with every vertex of t
// replaced by the result of f.
func MapTriangle[T, U any](t Triangle[T], f func(T) U) Triangle[U] {
	return Triangle[U]{X: f(t.X), Y: f(t.Y), Z: f(t.Z)}
}

// MapQuad returns a new [Quad] with every vertex of q
// replaced by the result of f.
func MapQuad[T, U any](q Quad[T], f func(T) U) Quad[U] {
	return Quad[U]{X: f(q.X), Y: f(q.Y), Z: f(q.Z), W: f(q.W)}
}

// MapVertex returns a new polygon of the same variant as p with every
// vertex replaced by the result of f. It is typically used to resolve
// a polygon of vertex indices into a polygon of vertices.
func MapVertex[T, U any](p Polygon[T], f func(T) U) Polygon[U] {
	switch p := p.(type) {
	case Triangle[T]:
		return MapTriangle(p, f)
	case Quad[T]:
		return MapQuad(p, f)
	}
	panic(fmt.Sprintf("poly.MapVertex: unknown polygon type %T", p))
}

// Vertices returns an iterator over the vertices of p in winding order.
func Vertices[T any](p Polygon[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range p.Len() {
			if !yield(p.At(i)) {
				return
			}
		}
	}
}

// Triangulate splits p into triangles with the same winding.
// A quad {x, y, z, w} becomes {x, y, z} and {z, w, x}.
func Triangulate[T any](p Polygon[T]) []Triangle[T] {
	switch p := p.(type) {
	case Triangle[T]:
		return []Triangle[T]{p}
	case Quad[T]:
		return []Triangle[T]{
			{X: p.X, Y: p.Y, Z: p.Z},
			{X: p.Z, Y: p.W, Z: p.X},
		}
	}
	panic(fmt.Sprintf("poly.Triangulate: unknown polygon type %T", p))
}

// NumTriangles returns the number of triangles that [Triangulate]
// produces for a polygon with n vertices.
func NumTriangles(n int) int {
	return n - 2
}
