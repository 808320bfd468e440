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

// Cylinder texture atlas layout: the top and bottom caps are discs in
// the left half of the upper and lower quarters, and the side wall is
// a strip over the lower half.
var (
	CylinderTopCenter    = math32.Vec2(0.25-texcoord.Gap, 0.25-texcoord.Gap)
	CylinderBottomCenter = math32.Vec2(0.25-texcoord.Gap, 0.75+texcoord.Gap)
	CylinderCapRadius    = 0.25 - texcoord.Gap
	CylinderSideRect     = texcoord.NewUVRect(math32.Vec2(0, 0.5+texcoord.Gap), math32.Vec2(1, 0.5-texcoord.Gap))
)

// Cylinder is a cylinder of radius 1 and height 2, centered at
// (0, 0, 0) with its axis along +Z.
//
// The shared vertices are the south pole (index 0), then subH+3 rings
// of subU vertices each: the bottom cap ring, subH+1 side wall rings
// from bottom to top, and the top cap ring, then the north pole.
// The cap rings repeat the positions of the outermost side rings with
// cap normals and texture coordinates.
//
// The polygons are subU bottom cap triangles, subH*subU side quads
// and subU top cap triangles, in that order.
type Cylinder struct {

	// idx is the next polygon returned by Next
	idx int

	// number of radial subdivisions
	subU int

	// number of height subdivisions
	subH int

	// sideUV selects the side wall v coordinate
	sideUV SideUV
}

// NewCylinder returns a new [Cylinder] with u points around the
// circumference and a single height segment. It panics if u < 2.
func NewCylinder(u int) *Cylinder {
	return SubdivideCylinder(u, 1)
}

// SubdivideCylinder returns a new [Cylinder] with u points around the
// circumference and h segments along the height.
// It panics if u < 2 or h < 1.
func SubdivideCylinder(u, h int) *Cylinder {
	if u <= 1 || h <= 0 {
		panic(fmt.Sprintf("shape.SubdivideCylinder: need u > 1 and h > 0, got u=%d h=%d", u, h))
	}
	return &Cylinder{subU: u, subH: h}
}

// SetSideUV sets how the side wall v coordinate is derived,
// and returns the cylinder.
func (cy *Cylinder) SetSideUV(mode SideUV) *Cylinder {
	cy.sideUV = mode
	return cy
}

// SideUV returns the side wall texture mode.
func (cy *Cylinder) SideUV() SideUV {
	return cy.sideUV
}

// Subdivisions returns the radial and height subdivisions.
func (cy *Cylinder) Subdivisions() (u, h int) {
	return cy.subU, cy.subH
}

// vert returns the vertex of ring h at column u,
// where ring -1 is the bottom cap and ring subH+1 the top cap.
func (cy *Cylinder) vert(u, h int) Vertex {
	uPer := float32(u) / float32(cy.subU)
	vPer := uPer
	if cy.sideUV == SideUVHeight {
		vPer = float32(h) / float32(cy.subH)
	}
	a := uPer * math32.Pi * 2
	s, c := math32.Sincos(a)
	n := math32.Vec3(c, s, 0)

	var hc int
	var vt Vertex
	switch {
	case h < 0:
		hc = 0
		vt.Normal = math32.Vec3(0, 0, -1)
		vt.UV = texcoord.NewUVCircle(CylinderBottomCenter, CylinderCapRadius).Coord(a)
	case h > cy.subH:
		hc = cy.subH
		vt.Normal = math32.Vec3(0, 0, 1)
		vt.UV = texcoord.NewUVCircle(CylinderTopCenter, CylinderCapRadius).Coord(a)
	default:
		hc = h
		vt.Normal = n
		vt.UV = CylinderSideRect.Coord(math32.Vec2(uPer, vPer))
	}
	vt.Pos = math32.Vec3(n.X, n.Y, float32(hc)/float32(cy.subH)*2-1)
	return vt
}

// Next returns the next polygon and true, or false once all
// polygons have been returned.
func (cy *Cylinder) Next() (poly.Polygon[Vertex], bool) {
	if cy.idx >= cy.IndexedPolygonCount() {
		return nil, false
	}
	p := poly.MapVertex(cy.IndexedPolygon(cy.idx), cy.SharedVertex)
	cy.idx++
	return p, true
}

// Len returns the number of polygons remaining for [Cylinder.Next].
func (cy *Cylinder) Len() int {
	return cy.IndexedPolygonCount() - cy.idx
}

// Polygons returns an iterator over the remaining polygons,
// advancing the same cursor as [Cylinder.Next].
func (cy *Cylinder) Polygons() iter.Seq[poly.Polygon[Vertex]] {
	return func(yield func(poly.Polygon[Vertex]) bool) {
		for {
			p, ok := cy.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// SharedVertexCount returns (3+subH)*subU + 2.
func (cy *Cylinder) SharedVertexCount() int {
	return (3+cy.subH)*cy.subU + 2
}

// SharedVertex returns the vertex at idx.
func (cy *Cylinder) SharedVertex(idx int) Vertex {
	n := cy.SharedVertexCount()
	checkIndex("shape.Cylinder.SharedVertex", idx, n)
	switch idx {
	case 0:
		return Vertex{
			Pos:    math32.Vec3(0, 0, -1),
			Normal: math32.Vec3(0, 0, -1),
			UV:     CylinderBottomCenter,
		}
	case n - 1:
		return Vertex{
			Pos:    math32.Vec3(0, 0, 1),
			Normal: math32.Vec3(0, 0, 1),
			UV:     CylinderTopCenter,
		}
	}
	idx-- // skip the south pole
	return cy.vert(idx%cy.subU, idx/cy.subU-1)
}

// IndexedPolygonCount returns (2+subH)*subU.
func (cy *Cylinder) IndexedPolygonCount() int {
	return (2 + cy.subH) * cy.subU
}

// IndexedPolygon returns the polygon of shared vertex indices at idx.
func (cy *Cylinder) IndexedPolygon(idx int) poly.Polygon[int] {
	checkIndex("shape.Cylinder.IndexedPolygon", idx, cy.IndexedPolygonCount())
	u := idx % cy.subU
	u1 := (u + 1) % cy.subU
	h := idx/cy.subU - 1
	base := 1 + idx - u
	switch {
	case h < 0:
		return poly.NewTriangle(base+u, 0, base+u1)
	case h == cy.subH:
		// the top cap ring is one ring past the last side ring
		base += cy.subU
		return poly.NewTriangle(base+u, base+u1, cy.SharedVertexCount()-1)
	}
	return poly.NewQuad(base+u, base+u1, base+u1+cy.subU, base+u+cy.subU)
}

// Mesh returns a [Packed] mesh of the cylinder for buffer output.
func (cy *Cylinder) Mesh() *Packed[poly.Polygon[int]] {
	return NewPacked[poly.Polygon[int]](cy)
}
