// Copyright (c) 2025, The Photoseg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAngleSnap(t *testing.T) {
	anchor := Vec2(0, 0)

	// 40° snaps to 45° with a 15° step; distance is preserved
	p := Vec2(7.66044, 6.42788) // 10px at 40°
	got := AngleSnap(p, anchor, 15)
	assert.InDelta(t, 7.07107, got.X, 1e-3)
	assert.InDelta(t, 7.07107, got.Y, 1e-3)
	assert.InDelta(t, 10, got.DistanceTo(anchor), 1e-4)

	// already on the grid stays put
	onAxis := Vec2(5, 0)
	got = AngleSnap(onAxis, anchor, 15)
	assert.InDelta(t, 5, got.X, 1e-4)
	assert.InDelta(t, 0, got.Y, 1e-4)

	// zero step disables snapping
	assert.Equal(t, p, AngleSnap(p, anchor, 0))
	// coincident with the anchor stays put
	assert.Equal(t, anchor, AngleSnap(anchor, anchor, 15))
}

func TestIsNear(t *testing.T) {
	assert.True(t, IsNear(Vec2(0, 0), Vec2(3, 4), 5))
	assert.True(t, IsNear(Vec2(10, 10), Vec2(12, 11), 15))
	assert.False(t, IsNear(Vec2(0, 0), Vec2(3, 4), 4.9))
}

func TestVector2(t *testing.T) {
	v := Vec2(3, 4)
	assert.Equal(t, float32(5), v.Length())
	assert.Equal(t, float32(25), v.LengthSquared())
	assert.Equal(t, Vec2(4, 6), v.Add(Vec2(1, 2)))
	assert.Equal(t, Vec2(2, 2), v.Sub(Vec2(1, 2)))
	assert.Equal(t, Vec2(6, 8), v.MulScalar(2))
	assert.Equal(t, float32(11), v.Dot(Vec2(1, 2)))
	assert.Equal(t, float32(2), v.Cross(Vec2(1, 2)))
}
