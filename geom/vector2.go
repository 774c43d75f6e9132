// Copyright (c) 2025, The Photoseg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom is a float32 based 2D vector and polygon math package
// for the segmentation engine: angle snapping, proximity tests,
// Douglas-Peucker simplification, and Bézier tessellation.
package geom

import (
	"fmt"
	"image"

	"github.com/chewxy/math32"
)

// Vector2 is a 2D vector/point with X and Y components, in image
// pixel space.
type Vector2 struct {
	X float32
	Y float32
}

// Vec2 returns a new [Vector2] with the given x and y components.
func Vec2(x, y float32) Vector2 {
	return Vector2{x, y}
}

// Vector2FromPoint returns a new [Vector2] from the given [image.Point].
func Vector2FromPoint(pt image.Point) Vector2 {
	return Vec2(float32(pt.X), float32(pt.Y))
}

// ToPoint returns this vector as an [image.Point], rounding each
// component to the nearest integer.
func (v Vector2) ToPoint() image.Point {
	return image.Pt(int(math32.Round(v.X)), int(math32.Round(v.Y)))
}

func (v Vector2) String() string {
	return fmt.Sprintf("(%v, %v)", v.X, v.Y)
}

// Add adds the other given vector to this one and returns the result.
func (v Vector2) Add(other Vector2) Vector2 {
	return Vec2(v.X+other.X, v.Y+other.Y)
}

// Sub subtracts the other given vector from this one and returns the result.
func (v Vector2) Sub(other Vector2) Vector2 {
	return Vec2(v.X-other.X, v.Y-other.Y)
}

// MulScalar multiplies each component of this vector by the given scalar
// and returns the result.
func (v Vector2) MulScalar(s float32) Vector2 {
	return Vec2(v.X*s, v.Y*s)
}

// Dot returns the dot product of this vector with the other given vector.
func (v Vector2) Dot(other Vector2) float32 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the cross product of this vector with the other given vector.
func (v Vector2) Cross(other Vector2) float32 {
	return v.X*other.Y - v.Y*other.X
}

// Length returns the length of this vector.
func (v Vector2) Length() float32 {
	return math32.Hypot(v.X, v.Y)
}

// LengthSquared returns the length squared of this vector, which is
// cheaper to compute than [Vector2.Length] when only comparing magnitudes.
func (v Vector2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// DistanceTo returns the distance from this point to the other given point.
func (v Vector2) DistanceTo(other Vector2) float32 {
	return v.Sub(other).Length()
}

// DistanceToSquared returns the distance squared from this point to the
// other given point.
func (v Vector2) DistanceToSquared(other Vector2) float32 {
	return v.Sub(other).LengthSquared()
}

// Angle returns the angle in radians between the positive x axis and the
// vector from the origin to this point.
func (v Vector2) Angle() float32 {
	return math32.Atan2(v.Y, v.X)
}
