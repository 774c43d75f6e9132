// Copyright (c) 2025, The Photoseg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mask

import (
	"image"

	"github.com/anthonynsimon/bild/blur"
)

// Feather returns a copy of the mask with a small-radius Gaussian blur
// applied, turning hard polygon edges into fractional coverage ramps so
// compositing fades out smoothly at region boundaries. A radius <= 0
// returns an unblurred copy.
func Feather(m *image.Alpha, radius float64) *image.Alpha {
	if radius <= 0 {
		return Clone(m)
	}
	// Alpha and Gray share the one-byte-per-pixel layout, so the mask
	// can be reinterpreted without copying
	g := &image.Gray{Pix: m.Pix, Stride: m.Stride, Rect: m.Rect}
	blurred := blur.Gaussian(g, radius)
	out := image.NewAlpha(m.Rect)
	for y := 0; y < m.Rect.Dy(); y++ {
		for x := 0; x < m.Rect.Dx(); x++ {
			out.Pix[y*out.Stride+x] = blurred.Pix[blurred.PixOffset(x, y)]
		}
	}
	return out
}
