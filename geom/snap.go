// Copyright (c) 2025, The Photoseg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import "github.com/chewxy/math32"

const (
	// DegToRadFactor is the number of radians per degree.
	DegToRadFactor = math32.Pi / 180

	// DefaultSnapStep is the default angle snapping step in degrees.
	DefaultSnapStep = float32(15)
)

// AngleSnap rounds the angle of the anchor→point vector to the nearest
// multiple of stepDegrees, preserving the distance from the anchor, and
// returns the resulting point. A stepDegrees <= 0 returns the point
// unchanged.
func AngleSnap(point, anchor Vector2, stepDegrees float32) Vector2 {
	if stepDegrees <= 0 {
		return point
	}
	d := point.Sub(anchor)
	dist := d.Length()
	if dist == 0 {
		return point
	}
	step := stepDegrees * DegToRadFactor
	ang := math32.Round(d.Angle()/step) * step
	return anchor.Add(Vec2(math32.Cos(ang)*dist, math32.Sin(ang)*dist))
}

// IsNear reports whether the Euclidean distance between the two given
// points is within the given tolerance.
func IsNear(a, b Vector2, tolerance float32) bool {
	return a.DistanceToSquared(b) <= tolerance*tolerance
}
