// Copyright (c) 2025, The Photoseg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package edges suggests boundary pixels for manual tracing by
// thresholding Sobel gradient magnitude on a luminance grayscale of the
// base image. The output is purely advisory: it is offered to the user
// as a hint layer and is never written back into the document.
package edges

import (
	"image"

	"github.com/anthonynsimon/bild/clone"
	"github.com/chewxy/math32"
)

// DefaultThreshold is the default gradient magnitude above which a
// pixel is marked as an edge.
const DefaultThreshold = float32(128)

// Grayscale converts the given image to a luminance grayscale using
// the 0.299 R + 0.587 G + 0.114 B weighting.
func Grayscale(src image.Image) *image.Gray {
	rgba := clone.AsRGBA(src)
	b := rgba.Rect
	out := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			o := rgba.PixOffset(x, y)
			lum := 0.299*float32(rgba.Pix[o]) +
				0.587*float32(rgba.Pix[o+1]) +
				0.114*float32(rgba.Pix[o+2])
			out.Pix[out.PixOffset(x, y)] = uint8(math32.Round(lum))
		}
	}
	return out
}

// Detect returns a binary edge map of the given image: 255 where the
// Sobel gradient magnitude of the luminance grayscale exceeds the
// threshold, 0 elsewhere. The outermost pixel ring has no full 3×3
// neighborhood and is always 0.
func Detect(src image.Image, threshold float32) *image.Gray {
	gray := Grayscale(src)
	b := gray.Rect
	out := image.NewGray(b)
	at := func(x, y int) float32 {
		return float32(gray.Pix[gray.PixOffset(x, y)])
	}
	for y := b.Min.Y + 1; y < b.Max.Y-1; y++ {
		for x := b.Min.X + 1; x < b.Max.X-1; x++ {
			gx := -at(x-1, y-1) + at(x+1, y-1) +
				-2*at(x-1, y) + 2*at(x+1, y) +
				-at(x-1, y+1) + at(x+1, y+1)
			gy := -at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1) +
				at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1)
			if math32.Hypot(gx, gy) > threshold {
				out.Pix[out.PixOffset(x, y)] = 255
			}
		}
	}
	return out
}
