// Copyright (c) 2025, The Photoseg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// QuadPoint returns the point at parameter t along the quadratic Bézier
// curve from p0 to p1 with control point c.
func QuadPoint(p0, c, p1 Vector2, t float32) Vector2 {
	u := 1 - t
	return p0.MulScalar(u * u).
		Add(c.MulScalar(2 * u * t)).
		Add(p1.MulScalar(t * t))
}

// CubicPoint returns the point at parameter t along the cubic Bézier
// curve from p0 to p1 with control points c0 and c1.
func CubicPoint(p0, c0, c1, p1 Vector2, t float32) Vector2 {
	u := 1 - t
	return p0.MulScalar(u * u * u).
		Add(c0.MulScalar(3 * u * u * t)).
		Add(c1.MulScalar(3 * u * t * t)).
		Add(p1.MulScalar(t * t * t))
}

// TessellateQuad appends steps points subdividing the quadratic Bézier
// curve from p0 to p1 uniformly in parameter space, excluding p0 and
// including p1, and returns the extended slice.
func TessellateQuad(dst []Vector2, p0, c, p1 Vector2, steps int) []Vector2 {
	if steps < 1 {
		steps = 1
	}
	for i := 1; i <= steps; i++ {
		dst = append(dst, QuadPoint(p0, c, p1, float32(i)/float32(steps)))
	}
	return dst
}

// TessellateCubic appends steps points subdividing the cubic Bézier
// curve from p0 to p1 uniformly in parameter space, excluding p0 and
// including p1, and returns the extended slice.
func TessellateCubic(dst []Vector2, p0, c0, c1, p1 Vector2, steps int) []Vector2 {
	if steps < 1 {
		steps = 1
	}
	for i := 1; i <= steps; i++ {
		dst = append(dst, CubicPoint(p0, c0, c1, p1, float32(i)/float32(steps)))
	}
	return dst
}
