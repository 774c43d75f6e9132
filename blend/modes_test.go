// Copyright (c) 2025, The Photoseg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package blend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModesApply(t *testing.T) {
	tests := []struct {
		mode Modes
		base uint8
		fill uint8
		want uint8
	}{
		{Normal, 10, 200, 200},
		{Normal, 255, 0, 0},

		{Multiply, 255, 255, 255},
		{Multiply, 255, 0, 0},
		{Multiply, 128, 128, 64},
		{Multiply, 100, 51, 20},

		// below the midpoint overlay multiplies, above it screens
		{Overlay, 100, 100, 78},
		{Overlay, 200, 100, 189},
		{Overlay, 0, 255, 0},
		{Overlay, 255, 0, 255},

		{SoftLight, 100, 0, 40},
		{SoftLight, 100, 128, 100},
		{SoftLight, 0, 255, 0},
		{SoftLight, 255, 255, 255},

		{ColorBurn, 100, 0, 0},
		{ColorBurn, 255, 100, 255},
		{ColorBurn, 100, 255, 100},
		{ColorBurn, 100, 200, 58},
		{ColorBurn, 0, 10, 0},
	}
	for _, tt := range tests {
		got := tt.mode.Apply(tt.base, tt.fill)
		assert.Equal(t, tt.want, got, "%v(base=%d, fill=%d)", tt.mode, tt.base, tt.fill)
	}
}

func TestModesTable(t *testing.T) {
	for mo := Normal; mo < ModesN; mo++ {
		tab := mo.Table(77)
		for b := 0; b < 256; b++ {
			assert.Equal(t, mo.Apply(uint8(b), 77), tab[b])
		}
	}
}

func TestModesText(t *testing.T) {
	for mo := Normal; mo < ModesN; mo++ {
		text, err := mo.MarshalText()
		assert.NoError(t, err)
		var back Modes
		assert.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, mo, back)
	}
	var mo Modes
	assert.Error(t, mo.UnmarshalText([]byte("screen")))
}
