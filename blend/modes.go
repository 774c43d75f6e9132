// Copyright (c) 2025, The Photoseg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package blend applies photographic blend modes between a fill color
// and a base image, modulated per pixel by mask coverage and opacity,
// and provides a mask-scoped flood fill for color-similarity region
// growth.
package blend

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Modes are the supported blend modes. All modes operate per channel in
// the 0-255 domain.
type Modes int32

const (
	// Normal replaces the base with the fill color.
	Normal Modes = iota

	// Multiply darkens the base proportionally to the fill.
	Multiply

	// Overlay multiplies dark base values and screens light ones.
	Overlay

	// SoftLight darkens or lightens depending on the fill, like a
	// diffused spotlight.
	SoftLight

	// ColorBurn darkens the base to reflect the fill by increasing
	// contrast.
	ColorBurn
)

// ModesN is the number of valid blend modes.
const ModesN = ColorBurn + 1

func (mo Modes) String() string {
	switch mo {
	case Normal:
		return "normal"
	case Multiply:
		return "multiply"
	case Overlay:
		return "overlay"
	case SoftLight:
		return "soft-light"
	case ColorBurn:
		return "color-burn"
	}
	return "invalid"
}

// MarshalText implements [encoding.TextMarshaler].
func (mo Modes) MarshalText() ([]byte, error) {
	return []byte(mo.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (mo *Modes) UnmarshalText(text []byte) error {
	for m := Normal; m < ModesN; m++ {
		if string(text) == m.String() {
			*mo = m
			return nil
		}
	}
	return fmt.Errorf("blend: unknown mode %q", text)
}

// Apply returns the blended value for one channel, given the base and
// fill channel values.
func (mo Modes) Apply(base, fill uint8) uint8 {
	b := int(base)
	f := int(fill)
	switch mo {
	case Multiply:
		return uint8(b * f / 255)
	case Overlay:
		if b < 128 {
			return uint8(2 * b * f / 255)
		}
		return uint8(255 - 2*(255-b)*(255-f)/255)
	case SoftLight:
		if f < 128 {
			return clamp8(b - (255-2*f)*b*(255-b)/65025)
		}
		s := math32.Sqrt(float32(b)/255)*255 - float32(b)
		return clamp8(b + int((float32(2*f-255)*s)/255))
	case ColorBurn:
		if f == 0 {
			return 0
		}
		return clamp8(255 - (255-b)*255/f)
	}
	return fill
}

// Table returns the 256-entry lookup table mapping every base channel
// value to its blended value for the given fill channel value. The
// compositor builds one table per channel per fill, so mode dispatch
// happens once per fill computation rather than once per pixel.
func (mo Modes) Table(fill uint8) *[256]uint8 {
	var tab [256]uint8
	for b := 0; b < 256; b++ {
		tab[b] = mo.Apply(uint8(b), fill)
	}
	return &tab
}

func clamp8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
