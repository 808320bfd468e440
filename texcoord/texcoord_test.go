// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package texcoord

import (
	"testing"

	"github.com/csherratt/genmesh/base/tolassert"
	"github.com/csherratt/genmesh/math32"
	"github.com/stretchr/testify/assert"
)

func TestUVRect(t *testing.T) {
	r := NewUVRect(math32.Vec2(0.25, 0.5), math32.Vec2(0.5, 0.25))
	assert.Equal(t, math32.Vec2(0.25, 0.5), r.Coord(math32.Vec2(0, 0)))
	assert.Equal(t, math32.Vec2(0.75, 0.75), r.Coord(math32.Vec2(1, 1)))
	assert.Equal(t, math32.Vec2(0.5, 0.625), r.Coord(math32.Vec2(0.5, 0.5)))
}

func TestUVRectInset(t *testing.T) {
	r := NewUVRect(math32.Vec2(0, 0), math32.Vec2(0.5, 0.5)).Inset(Gap)
	lo := r.Coord(math32.Vec2(0, 0))
	hi := r.Coord(math32.Vec2(1, 1))
	tolassert.Equal(t, Gap, lo.X)
	tolassert.Equal(t, Gap, lo.Y)
	tolassert.Equal(t, 0.5-Gap, hi.X)
	tolassert.Equal(t, 0.5-Gap, hi.Y)
}

func TestUVCircle(t *testing.T) {
	c := NewUVCircle(math32.Vec2(0.5, 0.5), 0.25)
	p := c.Coord(0)
	tolassert.Equal(t, 0.75, p.X)
	tolassert.Equal(t, 0.5, p.Y)

	p = c.Coord(math32.Pi / 2)
	tolassert.Equal(t, 0.5, p.X)
	tolassert.Equal(t, 0.75, p.Y)

	for i := range 16 {
		a := float32(i) / 16 * 2 * math32.Pi
		tolassert.EqualTol(t, 0.25, c.Coord(a).Sub(c.Offset).Length(), 1.0e-6)
	}
}
