// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit mesh generation.

package math32

// Triangle represents a triangle made of three vertices.
type Triangle struct {
	A Vector3
	B Vector3
	C Vector3
}

// NewTriangle returns a new Triangle object.
func NewTriangle(a, b, c Vector3) Triangle {
	return Triangle{a, b, c}
}

// Normal returns the unit normal of the triangle a, b, c,
// facing the side from which the vertices appear counter-clockwise.
// A degenerate triangle has a zero normal.
func Normal(a, b, c Vector3) Vector3 {
	nv := c.Sub(b).Cross(a.Sub(b))
	lenSq := nv.LengthSquared()
	if lenSq > 0 {
		return nv.MulScalar(1 / Sqrt(lenSq))
	}
	return Vector3{}
}

// Area returns the area of the triangle a, b, c.
func Area(a, b, c Vector3) float32 {
	return c.Sub(b).Cross(a.Sub(b)).Length() * 0.5
}

// Normal returns the triangle's normal.
func (t Triangle) Normal() Vector3 {
	return Normal(t.A, t.B, t.C)
}

// Area returns the triangle's area.
func (t Triangle) Area() float32 {
	return Area(t.A, t.B, t.C)
}

// Midpoint returns the centroid of the triangle.
func (t Triangle) Midpoint() Vector3 {
	return t.A.Add(t.B).Add(t.C).MulScalar(1.0 / 3)
}
