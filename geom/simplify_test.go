// Copyright (c) 2025, The Photoseg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointSegmentDistance(t *testing.T) {
	a := Vec2(0, 0)
	b := Vec2(10, 0)

	assert.Equal(t, float32(5), PointSegmentDistance(Vec2(5, 5), a, b))
	assert.Equal(t, float32(0), PointSegmentDistance(Vec2(3, 0), a, b))
	// beyond the endpoints the distance clamps to the nearer endpoint
	assert.Equal(t, float32(5), PointSegmentDistance(Vec2(-5, 0), a, b))
	assert.Equal(t, float32(5), PointSegmentDistance(Vec2(15, 0), a, b))
	// zero-length segment degenerates to point distance
	assert.Equal(t, float32(2), PointSegmentDistance(Vec2(0, 2), a, a))
}

func TestSimplifyZeroTolerance(t *testing.T) {
	pts := []Vector2{{0, 0}, {5, 0}, {10, 0}, {10, 5}, {10, 10}}
	assert.Equal(t, pts, Simplify(pts, 0))
	assert.Equal(t, pts, Simplify(pts, -1))
}

func TestSimplifyCollinear(t *testing.T) {
	pts := []Vector2{{0, 0}, {2, 0}, {4, 0}, {6, 0}, {10, 0}}
	got := Simplify(pts, 0.5)
	assert.Equal(t, []Vector2{{0, 0}, {10, 0}}, got)
}

func TestSimplifyKeepsCorners(t *testing.T) {
	pts := []Vector2{{0, 0}, {5, 0.1}, {10, 0}, {10, 10}}
	got := Simplify(pts, 1)
	assert.Equal(t, []Vector2{{0, 0}, {10, 0}, {10, 10}}, got)
}

func TestSimplifyEndpointsPreserved(t *testing.T) {
	pts := []Vector2{{0, 0}, {1, 3}, {2, -2}, {3, 4}, {4, 0}, {5, 1}}
	for _, tol := range []float32{0, 0.5, 1, 2, 100} {
		got := Simplify(pts, tol)
		assert.Equal(t, pts[0], got[0])
		assert.Equal(t, pts[len(pts)-1], got[len(got)-1])
	}
}

func TestSimplifyDegenerate(t *testing.T) {
	two := []Vector2{{0, 0}, {1, 1}}
	assert.Equal(t, two, Simplify(two, 5))
	one := []Vector2{{3, 3}}
	assert.Equal(t, one, Simplify(one, 5))
}
