// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texcoord places local parametric coordinates into regions
// of a packed texture atlas.
package texcoord

import "github.com/csherratt/genmesh/math32"

// Gap is the inset kept between packed atlas regions so that
// texture filtering does not bleed one face into its neighbor.
const Gap float32 = 0.01

// UVRect is an axis-aligned rectangle of the [0,1]² texture atlas.
type UVRect struct {
	// Offset is the atlas coordinate of the local (0, 0) corner.
	Offset math32.Vector2

	// Scale is the atlas extent of the local unit square.
	Scale math32.Vector2
}

// NewUVRect returns a new [UVRect] with the given offset and scale.
func NewUVRect(offset, scale math32.Vector2) UVRect {
	return UVRect{Offset: offset, Scale: scale}
}

// Coord maps a point p of the local unit square into the atlas.
func (r UVRect) Coord(p math32.Vector2) math32.Vector2 {
	return r.Offset.Add(r.Scale.Mul(p))
}

// Inset returns the rectangle shrunk by gap on every side.
func (r UVRect) Inset(gap float32) UVRect {
	return UVRect{
		Offset: r.Offset.AddScalar(gap),
		Scale:  r.Scale.SubScalar(2 * gap),
	}
}

// UVCircle is a circle in the texture atlas.
type UVCircle struct {
	// Offset is the center of the circle.
	Offset math32.Vector2

	// Radius is the radius of the circle.
	Radius float32
}

// NewUVCircle returns a new [UVCircle] with the given center and radius.
func NewUVCircle(offset math32.Vector2, radius float32) UVCircle {
	return UVCircle{Offset: offset, Radius: radius}
}

// Coord returns the point of the circumference at the given angle
// in radians, measured counter-clockwise from +U.
func (c UVCircle) Coord(angle float32) math32.Vector2 {
	s, co := math32.Sincos(angle)
	return c.Offset.Add(math32.Vec2(co, s).MulScalar(c.Radius))
}
