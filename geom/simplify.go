// Copyright (c) 2025, The Photoseg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

// PointSegmentDistance returns the distance from the given point to the
// line segment from start to end, clamping the projection to the segment
// endpoints. A zero-length segment degenerates to point distance.
func PointSegmentDistance(point, start, end Vector2) float32 {
	return point.DistanceTo(ClosestPointOnSegment(point, start, end))
}

// ClosestPointOnSegment returns the point along the segment from start
// to end that is closest to the given point.
func ClosestPointOnSegment(point, start, end Vector2) Vector2 {
	v := end.Sub(start)
	ds := v.LengthSquared()
	if ds == 0 {
		return start
	}
	t := point.Sub(start).Dot(v) / ds
	switch {
	case t <= 0:
		return start
	case t >= 1:
		return end
	default:
		return start.Add(v.MulScalar(t))
	}
}

// Simplify reduces the given polyline using Douglas-Peucker
// simplification: the point of maximum perpendicular distance from the
// first-last chord is found, and if it exceeds the tolerance both halves
// are simplified recursively, otherwise the run collapses to its two
// endpoints. The first and last input points are always preserved.
// A tolerance <= 0 returns the input unchanged (no simplification),
// as does any input with two or fewer points.
func Simplify(points []Vector2, tolerance float32) []Vector2 {
	if tolerance <= 0 || len(points) <= 2 {
		return points
	}
	first := points[0]
	last := points[len(points)-1]
	imax := 0
	dmax := float32(0)
	for i := 1; i < len(points)-1; i++ {
		d := PointSegmentDistance(points[i], first, last)
		if d > dmax {
			dmax = d
			imax = i
		}
	}
	if dmax <= tolerance {
		return []Vector2{first, last}
	}
	left := Simplify(points[:imax+1], tolerance)
	right := Simplify(points[imax:], tolerance)
	return append(left[:len(left)-1:len(left)-1], right...) // drop duplicated join point
}
