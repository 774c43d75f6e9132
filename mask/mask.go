// Copyright (c) 2025, The Photoseg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mask converts closed polygons into per-pixel coverage masks at
// image resolution, with anti-aliased edges, optional feathering, and
// morphological cleanup.
//
// A mask is an [image.Alpha] with the same dimensions as the base image:
// 255 is fully inside the polygon, 0 is outside, and intermediate values
// are fractional edge coverage.
package mask

import (
	"image"
	"image/draw"

	"golang.org/x/image/vector"
	"photoseg.org/core/geom"
)

// Rasterize converts the given polygon into a coverage mask of the given
// dimensions, with anti-aliased edges (the rasterizer's winding fill
// rule is used as-is: degenerate or self-intersecting polygons are
// tolerated, not rejected). Polygons with fewer than 3 points yield an
// empty mask.
func Rasterize(poly []geom.Vector2, width, height int) *image.Alpha {
	m := image.NewAlpha(image.Rect(0, 0, width, height))
	if len(poly) < 3 {
		return m
	}
	vr := vector.NewRasterizer(width, height)
	vr.DrawOp = draw.Src
	vr.MoveTo(poly[0].X, poly[0].Y)
	for _, p := range poly[1:] {
		vr.LineTo(p.X, p.Y)
	}
	vr.ClosePath()
	vr.Draw(m, m.Bounds(), image.Opaque, image.Point{})
	return m
}

// Binarize returns a copy of the mask with every value at or above the
// threshold set to 255 and everything below set to 0, producing hard
// polygon edges.
func Binarize(m *image.Alpha, threshold uint8) *image.Alpha {
	out := Clone(m)
	for i, v := range out.Pix {
		if v >= threshold {
			out.Pix[i] = 255
		} else {
			out.Pix[i] = 0
		}
	}
	return out
}

// Clone returns a deep copy of the given mask.
func Clone(m *image.Alpha) *image.Alpha {
	out := image.NewAlpha(m.Rect)
	copy(out.Pix, m.Pix)
	out.Stride = m.Stride
	return out
}
