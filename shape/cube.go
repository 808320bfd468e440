// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"
	"iter"

	"github.com/csherratt/genmesh/math32"
	"github.com/csherratt/genmesh/poly"
	"github.com/csherratt/genmesh/texcoord"
)

const (
	cubeFaces       = 6
	cubeFaceCorners = 4
	cubeVertices    = cubeFaces * cubeFaceCorners
)

// Cube is a cube centered at (0, 0, 0) with each face 1 away from the
// origin, so that every coordinate of every corner is 1 or -1.
// Each face has its own four vertices, so corners are not shared
// between faces.
//
// The faces are laid out in the texture atlas as an unfolded cross of
// 4 columns by 3 rows, with vertex slots as follows:
//
//	        x-----x
//	        |16 19|
//	        |  4  | +z
//	        |17 18|
//	<-x-----x-----x-----x-----x->
//	15|0   3|4   7|8  11|12 15|0
//	  |  0  |  1  |  2  |  3  |
//	15|1   2|5   6|9  10|13 14|1
//	<-x-----x-----x-----x-----x->
//	     +x |20 23|
//	        |  5  |
//	        |21 22|
//	        x-----x
type Cube struct {

	// face is the next face returned by Next
	face int
}

// NewCube returns a new [Cube] generator.
func NewCube() *Cube {
	return &Cube{}
}

// cubePositions holds the corner of each vertex slot.
var cubePositions = [cubeVertices]math32.Vector3{
	{X: 1, Y: -1, Z: 1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: 1, Z: -1}, {X: 1, Y: 1, Z: 1}, // +x
	{X: 1, Y: 1, Z: 1}, {X: 1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: 1, Z: 1}, // +y
	{X: -1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: -1}, {X: -1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: 1}, // -x
	{X: -1, Y: -1, Z: 1}, {X: -1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: 1, Y: -1, Z: 1}, // -y
	{X: 1, Y: -1, Z: 1}, {X: 1, Y: 1, Z: 1}, {X: -1, Y: 1, Z: 1}, {X: -1, Y: -1, Z: 1}, // +z
	{X: 1, Y: 1, Z: -1}, {X: 1, Y: -1, Z: -1}, {X: -1, Y: -1, Z: -1}, {X: -1, Y: 1, Z: -1}, // -z
}

// cubeNormals holds the normal of each face.
var cubeNormals = [cubeFaces]math32.Vector3{
	{X: 1, Y: 0, Z: 0},
	{X: 0, Y: 1, Z: 0},
	{X: -1, Y: 0, Z: 0},
	{X: 0, Y: -1, Z: 0},
	{X: 0, Y: 0, Z: 1},
	{X: 0, Y: 0, Z: -1},
}

// cubeCells holds the atlas column and row of each face.
var cubeCells = [cubeFaces][2]int{
	{0, 1},
	{1, 1},
	{2, 1},
	{3, 1},
	{1, 0},
	{1, 2},
}

// cubeCorners holds the local coordinate of each slot within its face
// cell: top-left, bottom-left, bottom-right, top-right (v grows down).
var cubeCorners = [cubeFaceCorners]math32.Vector2{
	{X: 0, Y: 0},
	{X: 0, Y: 1},
	{X: 1, Y: 1},
	{X: 1, Y: 0},
}

const (
	// CubeAtlasColumns is the number of columns of the cube atlas.
	CubeAtlasColumns = 4

	// CubeAtlasRows is the number of rows of the cube atlas.
	CubeAtlasRows = 3
)

// CubeFaceRect returns the atlas rectangle of the given face,
// before the [texcoord.Gap] inset is applied.
func CubeFaceRect(face int) texcoord.UVRect {
	checkIndex("shape.CubeFaceRect", face, cubeFaces)
	cell := cubeCells[face]
	scale := math32.Vec2(1.0/CubeAtlasColumns, 1.0/CubeAtlasRows)
	return texcoord.NewUVRect(math32.Vec2(float32(cell[0])*scale.X, float32(cell[1])*scale.Y), scale)
}

func (cb *Cube) uv(idx int) math32.Vector2 {
	return CubeFaceRect(idx / cubeFaceCorners).Inset(texcoord.Gap).Coord(cubeCorners[idx%cubeFaceCorners])
}

// Face returns the given face with its vertices resolved.
// It does not advance the iteration.
func (cb *Cube) Face(idx int) poly.Quad[Vertex] {
	return poly.MapQuad(cb.IndexedPolygon(idx), cb.SharedVertex)
}

// Next returns the next face and true, or false once all
// six faces have been returned.
func (cb *Cube) Next() (poly.Quad[Vertex], bool) {
	if cb.face >= cubeFaces {
		return poly.Quad[Vertex]{}, false
	}
	q := cb.Face(cb.face)
	cb.face++
	return q, true
}

// Len returns the number of faces remaining for [Cube.Next].
func (cb *Cube) Len() int {
	return cubeFaces - cb.face
}

// Polygons returns an iterator over the remaining faces,
// advancing the same cursor as [Cube.Next].
func (cb *Cube) Polygons() iter.Seq[poly.Quad[Vertex]] {
	return func(yield func(poly.Quad[Vertex]) bool) {
		for {
			q, ok := cb.Next()
			if !ok || !yield(q) {
				return
			}
		}
	}
}

// SharedVertexCount returns 24: four vertices per face.
func (cb *Cube) SharedVertexCount() int {
	return cubeVertices
}

// SharedVertex returns corner idx%4 of face idx/4.
func (cb *Cube) SharedVertex(idx int) Vertex {
	checkIndex("shape.Cube.SharedVertex", idx, cubeVertices)
	return Vertex{
		Pos:    cubePositions[idx],
		Normal: cubeNormals[idx/cubeFaceCorners],
		UV:     cb.uv(idx),
	}
}

// IndexedPolygonCount returns 6: one quad per face.
func (cb *Cube) IndexedPolygonCount() int {
	return cubeFaces
}

// IndexedPolygon returns the quad of shared vertex indices of face idx.
func (cb *Cube) IndexedPolygon(idx int) poly.Quad[int] {
	checkIndex("shape.Cube.IndexedPolygon", idx, cubeFaces)
	b := idx * cubeFaceCorners
	return poly.NewQuad(b, b+1, b+2, b+3)
}

// checkIndex panics if idx is not in [0, n).
func checkIndex(fn string, idx, n int) {
	if idx < 0 || idx >= n {
		panic(fmt.Sprintf("%s: index %d out of range [0,%d)", fn, idx, n))
	}
}

// Mesh returns a [Packed] mesh of the cube for buffer output.
func (cb *Cube) Mesh() *Packed[poly.Quad[int]] {
	return NewPacked[poly.Quad[int]](cb)
}
