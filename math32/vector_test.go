// Copyright 2024 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import (
	"testing"

	"github.com/csherratt/genmesh/base/tolassert"
	"github.com/stretchr/testify/assert"
)

const standardTol = 1.0e-6

func tolAssertEqualVector(t *testing.T, expected, actual Vector3) {
	t.Helper()
	tolassert.EqualTol(t, expected.X, actual.X, standardTol)
	tolassert.EqualTol(t, expected.Y, actual.Y, standardTol)
	tolassert.EqualTol(t, expected.Z, actual.Z, standardTol)
}

func TestVector2(t *testing.T) {
	assert.Equal(t, Vector2{5, 10}, Vec2(5, 10))
	assert.Equal(t, Vector2{20, 20}, Vector2Scalar(20))

	v := Vector2{}
	v.Set(-1, 7)
	assert.Equal(t, Vector2{-1, 7}, v)

	v.SetScalar(8.5)
	assert.Equal(t, Vector2{8.5, 8.5}, v)

	assert.Equal(t, Vec2(3, 5), Vec2(1, 2).Add(Vec2(2, 3)))
	assert.Equal(t, Vec2(-1, -1), Vec2(1, 2).Sub(Vec2(2, 3)))
	assert.Equal(t, Vec2(2, 6), Vec2(1, 2).Mul(Vec2(2, 3)))
	assert.Equal(t, Vec2(2, 4), Vec2(1, 2).MulScalar(2))
	assert.Equal(t, Vec2(1, 2), Vec2(1, 5).Min(Vec2(3, 2)))
	assert.Equal(t, Vec2(3, 5), Vec2(1, 5).Max(Vec2(3, 2)))
	tolassert.EqualTol(t, 5, Vec2(3, 4).Length(), standardTol)

	ary := make([]float32, 3)
	Vec2(4, 9).ToArray(ary, 1)
	assert.Equal(t, []float32{0, 4, 9}, ary)
}

func TestVector3(t *testing.T) {
	assert.Equal(t, Vector3{1, 2, 3}, Vec3(1, 2, 3))
	assert.Equal(t, Vec3(5, 7, 9), Vec3(1, 2, 3).Add(Vec3(4, 5, 6)))
	assert.Equal(t, Vec3(3, 3, 3), Vec3(4, 5, 6).Sub(Vec3(1, 2, 3)))
	assert.Equal(t, Vec3(2, 4, 6), Vec3(1, 2, 3).MulScalar(2))
	assert.Equal(t, Vec3(-1, -2, -3), Vec3(1, 2, 3).Negate())
	assert.Equal(t, float32(32), Vec3(1, 2, 3).Dot(Vec3(4, 5, 6)))

	assert.Equal(t, Vec3(0, 0, 1), Vec3(1, 0, 0).Cross(Vec3(0, 1, 0)))
	assert.Equal(t, Vec3(1, 0, 0), Vec3(0, 1, 0).Cross(Vec3(0, 0, 1)))
	assert.Equal(t, Vec3(0, 1, 0), Vec3(0, 0, 1).Cross(Vec3(1, 0, 0)))

	tolassert.EqualTol(t, 25, Vec3(0, 3, 4).LengthSquared(), standardTol)
	tolassert.EqualTol(t, 5, Vec3(0, 3, 4).Length(), standardTol)
	tolAssertEqualVector(t, Vec3(0, 0.6, 0.8), Vec3(0, 3, 4).Normal())
	assert.Equal(t, Vector3{}, Vector3{}.Normal())

	v := Vec3(1, 5, -2)
	v.SetMin(Vec3(2, 3, -4))
	assert.Equal(t, Vec3(1, 3, -4), v)
	v.SetMax(Vec3(0, 4, 0))
	assert.Equal(t, Vec3(1, 4, 0), v)

	v.Set(2, -3, 4)
	assert.Equal(t, Vec3(2, -3, 4), v)
	v.SetScalar(0.5)
	assert.Equal(t, Vec3(0.5, 0.5, 0.5), v)

	ary := make([]float32, 4)
	Vec3(1, 2, 3).ToArray(ary, 1)
	var back Vector3
	back.FromArray(ary, 1)
	assert.Equal(t, Vec3(1, 2, 3), back)
}

func TestBox3(t *testing.T) {
	b := B3Empty()
	assert.True(t, b.IsEmpty())

	b.ExpandByPoint(Vec3(1, -1, 0))
	b.ExpandByPoint(Vec3(-1, 1, 2))
	assert.False(t, b.IsEmpty())
	assert.Equal(t, B3(-1, -1, 0, 1, 1, 2), b)
	assert.Equal(t, Vec3(0, 0, 1), b.Center())
	assert.Equal(t, Vec3(2, 2, 2), b.Size())
	assert.True(t, b.ContainsPoint(Vec3(0.5, 0.5, 0.5)))
	assert.False(t, b.ContainsPoint(Vec3(0.5, 0.5, 3)))

	b.ExpandByBox(B3(0, 0, 0, 3, 0, 0))
	assert.Equal(t, B3(-1, -1, 0, 3, 1, 2), b)
	assert.Equal(t, B3(0, -1, 0, 4, 1, 2), b.Translate(Vec3(1, 0, 0)))
}

func TestTriangle(t *testing.T) {
	tri := NewTriangle(Vec3(0, 0, 0), Vec3(1, 0, 0), Vec3(0, 1, 0))
	tolAssertEqualVector(t, Vec3(0, 0, 1), tri.Normal())
	tolassert.EqualTol(t, 0.5, tri.Area(), standardTol)
	tolAssertEqualVector(t, Vec3(1.0/3, 1.0/3, 0), tri.Midpoint())

	// reversed winding flips the normal
	tolAssertEqualVector(t, Vec3(0, 0, -1), Normal(tri.A, tri.C, tri.B))
	assert.Equal(t, Vector3{}, Normal(Vec3(1, 1, 1), Vec3(1, 1, 1), Vec3(2, 2, 2)))
}

func TestArray(t *testing.T) {
	a := NewArrayF32(0, 8)
	a.AppendVector3(Vec3(1, 2, 3))
	a.AppendVector2(Vec2(4, 5))
	a.Append(6)
	assert.Equal(t, 6, a.Len())

	var v3 Vector3
	a.GetVector3(0, &v3)
	assert.Equal(t, Vec3(1, 2, 3), v3)
	var v2 Vector2
	a.GetVector2(3, &v2)
	assert.Equal(t, Vec2(4, 5), v2)

	a.SetVector3(3, Vec3(7, 8, 9))
	assert.Equal(t, ArrayF32{1, 2, 3, 7, 8, 9}, a)

	ix := NewArrayU32(4, 4)
	ix.Set(1, 5, 6)
	ix.Append(7)
	assert.Equal(t, ArrayU32{0, 5, 6, 0, 7}, ix)
	assert.Equal(t, 5, ix.Len())
}

func TestMath(t *testing.T) {
	tolassert.EqualTol(t, 1, Cos(0), standardTol)
	tolassert.EqualTol(t, 1, Sin(Pi/2), standardTol)
	s, c := Sincos(Pi)
	tolassert.EqualTol(t, 0, s, standardTol)
	tolassert.EqualTol(t, -1, c, standardTol)
	tolassert.EqualTol(t, Pi, DegToRad(180), standardTol)
	tolassert.EqualTol(t, 90, RadToDeg(Pi/2), 1.0e-4)
	tolassert.EqualTol(t, 2.5, Lerp(2, 3, 0.5), standardTol)
	assert.Equal(t, float32(3), Abs(-3))
}
