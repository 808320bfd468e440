// Copyright 2022 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import "github.com/csherratt/genmesh/math32"

// Group is a group of shapes packed one after another
// into the same arrays.
type Group struct {
	ShapeBase

	// list of shapes in group
	Shapes []Mesh
}

// NewGroup returns a new [Group] of the given shapes.
func NewGroup(shapes ...Mesh) *Group {
	return &Group{Shapes: shapes}
}

// Add adds shapes to the group and returns the group.
func (sb *Group) Add(shapes ...Mesh) *Group {
	sb.Shapes = append(sb.Shapes, shapes...)
	return sb
}

// Size returns number of vertex, index points in this shape element.
func (sb *Group) Size() (numVertex, numIndex int) {
	for _, sh := range sb.Shapes {
		nv, ni := sh.Size()
		numVertex += nv
		numIndex += ni
	}
	return
}

// Set sets points in given allocated arrays, also updates offsets
func (sb *Group) Set(vertex, normal, texcoord math32.ArrayF32, index math32.ArrayU32) {
	vo := sb.VertexOffset
	io := sb.IndexOffset
	sb.CBBox.SetEmpty()
	for _, sh := range sb.Shapes {
		sh.SetOffsets(vo, io)
		sh.Set(vertex, normal, texcoord, index)
		if bb := sh.BBox(); !bb.IsEmpty() {
			sb.CBBox.ExpandByBox(bb)
		}
		nv, ni := sh.Size()
		vo += nv
		io += ni
	}
}
