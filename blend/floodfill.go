// Copyright (c) 2025, The Photoseg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blend

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
)

// FloodFill grows a region from the seed pixel through 4-connected
// neighbors whose color is within the given per-channel tolerance of the
// seed's color and whose mask coverage is nonzero, painting every
// visited pixel to the fill color. Pixels outside the mask or outside
// the color tolerance bound the growth. The base is never mutated; the
// filled copy is returned along with a mask of the grown area (255 at
// every painted pixel). A seed outside the image or outside the mask
// returns an unmodified copy and an empty grown mask.
func FloodFill(base *image.RGBA, m *image.Alpha, seed image.Point, fc color.RGBA, tolerance uint8) (*image.RGBA, *image.Alpha) {
	out := clone.AsRGBA(base)
	grown := image.NewAlpha(out.Rect)
	b := out.Rect.Intersect(m.Rect)
	if !seed.In(b) || m.Pix[m.PixOffset(seed.X, seed.Y)] == 0 {
		return out, grown
	}

	so := base.PixOffset(seed.X, seed.Y)
	sr, sg, sb := base.Pix[so], base.Pix[so+1], base.Pix[so+2]
	near := func(o int) bool {
		return diff8(base.Pix[o], sr) <= tolerance &&
			diff8(base.Pix[o+1], sg) <= tolerance &&
			diff8(base.Pix[o+2], sb) <= tolerance
	}

	w := b.Dx()
	visited := make([]bool, w*b.Dy())
	idx := func(p image.Point) int { return (p.Y-b.Min.Y)*w + (p.X - b.Min.X) }

	stack := []image.Point{seed}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !p.In(b) || visited[idx(p)] {
			continue
		}
		visited[idx(p)] = true
		if m.Pix[m.PixOffset(p.X, p.Y)] == 0 {
			continue
		}
		o := base.PixOffset(p.X, p.Y)
		if !near(o) {
			continue
		}
		oo := out.PixOffset(p.X, p.Y)
		out.Pix[oo] = fc.R
		out.Pix[oo+1] = fc.G
		out.Pix[oo+2] = fc.B
		grown.Pix[grown.PixOffset(p.X, p.Y)] = 255
		stack = append(stack,
			image.Pt(p.X+1, p.Y), image.Pt(p.X-1, p.Y),
			image.Pt(p.X, p.Y+1), image.Pt(p.X, p.Y-1))
	}
	return out, grown
}

func diff8(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
