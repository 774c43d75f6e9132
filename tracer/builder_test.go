// Copyright (c) 2025, The Photoseg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"photoseg.org/core/geom"
)

func TestAutoClose(t *testing.T) {
	cfg := &Config{}
	cfg.Defaults()
	cfg.CloseTolerance = 15

	bd := NewBuilder(Polyline, cfg)
	assert.Equal(t, Idle, bd.State())

	assert.Equal(t, Building, bd.AddPoint(geom.Vec2(10, 10)))
	assert.Equal(t, Building, bd.AddPoint(geom.Vec2(100, 10)))
	assert.Equal(t, Building, bd.AddPoint(geom.Vec2(100, 100)))
	// fourth point lands within tolerance of the first: the ring closes
	// with the first point appended again
	assert.Equal(t, AutoClosed, bd.AddPoint(geom.Vec2(12, 11)))

	pts, closed := bd.Finalize(false)
	assert.True(t, closed)
	assert.Len(t, pts, 5)
	assert.Equal(t, geom.Vec2(10, 10), pts[0])
	assert.Equal(t, geom.Vec2(12, 11), pts[3])
	assert.Equal(t, geom.Vec2(10, 10), pts[4])
}

func TestNoAutoCloseWithTwoPriorPoints(t *testing.T) {
	bd := NewBuilder(Polyline, nil)
	bd.AddPoint(geom.Vec2(10, 10))
	bd.AddPoint(geom.Vec2(100, 10))
	// returning to the start with only two prior points must not close
	assert.Equal(t, Building, bd.AddPoint(geom.Vec2(11, 11)))
}

func TestFinalizeTooFewPoints(t *testing.T) {
	bd := NewBuilder(Polyline, nil)
	bd.AddPoint(geom.Vec2(5, 5))
	pts, closed := bd.Finalize(true)
	assert.Nil(t, pts)
	assert.False(t, closed)
}

func TestForceCloseNeedsThreePoints(t *testing.T) {
	bd := NewBuilder(Polyline, nil)
	bd.AddPoint(geom.Vec2(0, 0))
	bd.AddPoint(geom.Vec2(50, 0))
	pts, closed := bd.Finalize(true)
	assert.Len(t, pts, 2)
	assert.False(t, closed)
}

func TestForceClose(t *testing.T) {
	bd := NewBuilder(Polyline, nil)
	bd.AddPoint(geom.Vec2(0, 0))
	bd.AddPoint(geom.Vec2(50, 0))
	bd.AddPoint(geom.Vec2(50, 50))
	pts, closed := bd.Finalize(true)
	assert.True(t, closed)
	assert.Len(t, pts, 4)
	assert.Equal(t, pts[0], pts[3])
}

func TestFreehandStroke(t *testing.T) {
	cfg := &Config{}
	cfg.Defaults()
	cfg.SimplifyTolerance = 0.5

	bd := NewBuilder(Freehand, cfg)
	// jittered horizontal run then a corner: simplification collapses
	// the run but keeps the corner
	bd.AddStroke(
		geom.Vec2(0, 0), geom.Vec2(10, 0.1), geom.Vec2(20, 0),
		geom.Vec2(30, 0.2), geom.Vec2(40, 0), geom.Vec2(40, 40),
	)
	pts, closed := bd.Finalize(false)
	assert.False(t, closed)
	assert.Less(t, len(pts), 6)
	assert.Equal(t, geom.Vec2(0, 0), pts[0])
	assert.Equal(t, geom.Vec2(40, 40), pts[len(pts)-1])
}

func TestFreehandNoAutoClose(t *testing.T) {
	bd := NewBuilder(Freehand, nil)
	bd.AddStroke(geom.Vec2(0, 0), geom.Vec2(50, 0), geom.Vec2(50, 50), geom.Vec2(1, 1))
	assert.Equal(t, Building, bd.State())
}

func TestPolylineSnap(t *testing.T) {
	cfg := &Config{}
	cfg.Defaults()
	cfg.Snap = true

	bd := NewBuilder(Polyline, cfg)
	bd.AddPoint(geom.Vec2(0, 0))
	// 10px at 40° snaps onto the 45° grid line
	bd.AddPoint(geom.Vec2(7.66044, 6.42788))
	pts := bd.Points()
	assert.InDelta(t, 7.07107, pts[1].X, 1e-3)
	assert.InDelta(t, 7.07107, pts[1].Y, 1e-3)
}

func TestCurveTessellation(t *testing.T) {
	cfg := &Config{}
	cfg.Defaults()
	cfg.CurveSteps = 8

	bd := NewBuilder(Curve, cfg)
	bd.AddCurvePoint(geom.Vec2(0, 0), geom.Vec2(0, 20), geom.Vec2(50, 20))
	bd.AddCurvePoint(geom.Vec2(50, 0))
	bd.AddCurvePoint(geom.Vec2(25, 40))
	pts, closed := bd.Finalize(true)
	assert.True(t, closed)
	// the start point, one cubic segment (8 steps), two straight edges
	assert.Len(t, pts, 1+8+1+1)
	assert.Equal(t, geom.Vec2(0, 0), pts[0])
	assert.Equal(t, geom.Vec2(0, 0), pts[len(pts)-1])
}

func TestIgnoredAfterClose(t *testing.T) {
	bd := NewBuilder(Polyline, nil)
	bd.AddPoint(geom.Vec2(10, 10))
	bd.AddPoint(geom.Vec2(100, 10))
	bd.AddPoint(geom.Vec2(100, 100))
	bd.AddPoint(geom.Vec2(10, 11))
	assert.Equal(t, AutoClosed, bd.State())
	assert.Equal(t, AutoClosed, bd.AddPoint(geom.Vec2(500, 500)))
	assert.Len(t, bd.Points(), 5)
}

func TestReset(t *testing.T) {
	bd := NewBuilder(Polyline, nil)
	bd.AddPoint(geom.Vec2(1, 1))
	bd.Reset()
	assert.Equal(t, Idle, bd.State())
	assert.Empty(t, bd.Points())
}
