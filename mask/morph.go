// Copyright (c) 2025, The Photoseg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mask

import "image"

// Dilate returns a copy of the mask with each pixel replaced by the
// maximum value in its kernelSize×kernelSize neighborhood. Even kernel
// sizes are rounded up to the next odd size. Pixels within kernelSize/2
// of the buffer boundary are left unmodified (skip border policy).
func Dilate(m *image.Alpha, kernelSize int) *image.Alpha {
	return morph(m, kernelSize, func(a, b uint8) bool { return a > b })
}

// Erode returns a copy of the mask with each pixel replaced by the
// minimum value in its kernelSize×kernelSize neighborhood, with the same
// kernel and border conventions as [Dilate].
func Erode(m *image.Alpha, kernelSize int) *image.Alpha {
	return morph(m, kernelSize, func(a, b uint8) bool { return a < b })
}

// MorphClose dilates and then erodes the mask with the given kernel
// size, filling small gaps and rasterization speckle without growing the
// overall region.
func MorphClose(m *image.Alpha, kernelSize int) *image.Alpha {
	return Erode(Dilate(m, kernelSize), kernelSize)
}

func morph(m *image.Alpha, kernelSize int, better func(a, b uint8) bool) *image.Alpha {
	out := Clone(m)
	if kernelSize <= 1 {
		return out
	}
	if kernelSize%2 == 0 {
		kernelSize++
	}
	r := kernelSize / 2
	w := m.Rect.Dx()
	h := m.Rect.Dy()
	for y := r; y < h-r; y++ {
		for x := r; x < w-r; x++ {
			best := m.Pix[(y-r)*m.Stride+(x-r)]
			for ky := y - r; ky <= y+r; ky++ {
				row := ky * m.Stride
				for kx := x - r; kx <= x+r; kx++ {
					if v := m.Pix[row+kx]; better(v, best) {
						best = v
					}
				}
			}
			out.Pix[y*out.Stride+x] = best
		}
	}
	return out
}
