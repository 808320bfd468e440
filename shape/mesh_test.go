// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"github.com/csherratt/genmesh/math32"
	"github.com/stretchr/testify/assert"
)

func assertOutwardWinding(t *testing.T, b *Buffers) {
	t.Helper()
	for tr := range b.NumTriangles() {
		i0, i1, i2 := b.Triangle(tr)
		v0, v1, v2 := b.At(i0), b.At(i1), b.At(i2)
		if math32.Area(v0.Pos, v1.Pos, v2.Pos) == 0 {
			continue
		}
		fn := math32.Normal(v0.Pos, v1.Pos, v2.Pos)
		vn := v0.Normal.Add(v1.Normal).Add(v2.Normal)
		assert.Greater(t, fn.Dot(vn), float32(0), "triangle %d", tr)
	}
}

func TestCubeBuffers(t *testing.T) {
	cb := NewCube()
	b := NewBuffers(cb.Mesh())
	assert.Equal(t, 24, b.NumVertex())
	assert.Len(t, b.Normal, 24*3)
	assert.Len(t, b.TexCoord, 24*2)
	assert.Equal(t, 12, b.NumTriangles())
	assert.Equal(t, math32.B3(-1, -1, -1, 1, 1, 1), b.BBox)

	for i := range 24 {
		assert.Equal(t, cb.SharedVertex(i), b.At(i))
	}
	i0, i1, i2 := b.Triangle(0)
	assert.Equal(t, []int{0, 1, 2}, []int{i0, i1, i2})
	i0, i1, i2 = b.Triangle(1)
	assert.Equal(t, []int{2, 3, 0}, []int{i0, i1, i2})

	assertOutwardWinding(t, b)
	// packing does not consume the iteration
	assert.Equal(t, 6, cb.Len())
}

func TestCylinderBuffers(t *testing.T) {
	cy := SubdivideCylinder(8, 2)
	pk := cy.Mesh()
	nv, ni := pk.Size()
	assert.Equal(t, 42, nv)
	assert.Equal(t, 3*(2*8+2*2*8), ni)

	b := NewBuffers(pk)
	assert.Equal(t, nv, b.NumVertex())
	assert.Len(t, b.Index, ni)
	for _, ix := range b.Index {
		assert.Less(t, int(ix), nv)
	}
	for i := range nv {
		assert.Equal(t, cy.SharedVertex(i), b.At(i))
	}
	assert.Equal(t, BBoxFromVertices(b.Vertex, 0, nv), b.BBox)
	assertOutwardWinding(t, b)
}

func TestGroup(t *testing.T) {
	cube := NewCube().Mesh().SetPos(math32.Vec3(3, 0, 0))
	cyl := NewCylinder(4).Mesh()
	gp := NewGroup(cube).Add(cyl)

	nv, ni := gp.Size()
	assert.Equal(t, 24+18, nv)
	assert.Equal(t, 36+3*(4+8+4), ni)

	b := NewBuffers(gp)
	assert.Equal(t, nv, b.NumVertex())
	assert.Equal(t, 24, cyl.VertexOffset)
	assert.Equal(t, 36, cyl.IndexOffset)

	// cube vertices are translated
	assert.Equal(t, math32.Vec3(4, -1, 1), b.At(0).Pos)
	// cylinder indices are offset past the cube
	i0, i1, i2 := b.Triangle(12)
	assert.Equal(t, []int{25, 24, 26}, []int{i0, i1, i2})
	assert.Equal(t, math32.Vec3(0, 0, -1), b.At(24).Pos)

	tolAssertEqualVector3(t, math32.Vec3(-1, -1, -1), b.BBox.Min)
	tolAssertEqualVector3(t, math32.Vec3(4, 1, 1), b.BBox.Max)
	assertOutwardWinding(t, b)
}
