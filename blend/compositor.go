// Copyright (c) 2025, The Photoseg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blend

import (
	"image"
	"image/color"
	"runtime"
	"sync"

	"github.com/anthonynsimon/bild/clone"
	"github.com/chewxy/math32"
)

// Composite applies the given fill color to the base image wherever the
// mask has nonzero coverage, blending per the given mode and scaling the
// effect by opacity times fractional mask coverage, so anti-aliased mask
// edges attenuate linearly. The alpha channel passes through from the
// base unchanged. The returned buffer is always a copy; the base is
// never mutated, so a region's fill can be recomputed from scratch
// without drift.
func Composite(base *image.RGBA, m *image.Alpha, fc color.RGBA, mode Modes, opacity float32) *image.RGBA {
	out := clone.AsRGBA(base)
	if opacity <= 0 {
		return out
	}
	if opacity > 1 {
		opacity = 1
	}
	tr := mode.Table(fc.R)
	tg := mode.Table(fc.G)
	tb := mode.Table(fc.B)

	b := out.Rect.Intersect(m.Rect)
	if b.Empty() {
		return out
	}

	// each pixel depends only on its own base and mask values, so rows
	// shard freely across workers with no change to the output
	workers := runtime.GOMAXPROCS(0)
	rows := b.Dy()
	per := (rows + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		y0 := b.Min.Y + w*per
		y1 := min(y0+per, b.Max.Y)
		if y0 >= y1 {
			break
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			for y := y0; y < y1; y++ {
				mo := m.PixOffset(b.Min.X, y)
				oo := out.PixOffset(b.Min.X, y)
				for x := b.Min.X; x < b.Max.X; x, mo, oo = x+1, mo+1, oo+4 {
					mv := m.Pix[mo]
					if mv == 0 {
						continue
					}
					eff := opacity * float32(mv) / 255
					out.Pix[oo] = lerp8(out.Pix[oo], tr[out.Pix[oo]], eff)
					out.Pix[oo+1] = lerp8(out.Pix[oo+1], tg[out.Pix[oo+1]], eff)
					out.Pix[oo+2] = lerp8(out.Pix[oo+2], tb[out.Pix[oo+2]], eff)
				}
			}
		}(y0, y1)
	}
	wg.Wait()
	return out
}

// lerp8 moves the base channel value toward the blended value by the
// given fraction, rounding to nearest. A fraction of exactly 1 returns
// the blended value bit-exactly.
func lerp8(base, blended uint8, frac float32) uint8 {
	if frac >= 1 {
		return blended
	}
	v := float32(base) + float32(int(blended)-int(base))*frac
	return uint8(math32.Round(v))
}
