// Copyright (c) 2025, The Photoseg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package segment

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
	"photoseg.org/core/tracer"
)

// Settings has the tunable parameters of a [Document]. The host can
// persist them as TOML through [OpenSettings] and [Settings.Save].
type Settings struct {

	// Freehand is the path builder configuration for stroke input.
	Freehand tracer.Config

	// Polyline is the path builder configuration for point-click input.
	Polyline tracer.Config

	// Curve is the path builder configuration for curve input.
	// The close tolerance is configurable separately from [Polyline]
	// because the two tools may want different values.
	Curve tracer.Config

	// MorphKernel is the kernel size of the morphological close pass
	// applied to newly rasterized masks, removing rasterization
	// speckle. Values <= 1 disable the pass.
	MorphKernel int

	// FeatherRadius is the Gaussian radius used to feather mask edges
	// before compositing. 0 disables feathering; the rasterizer's own
	// anti-aliasing still applies.
	FeatherRadius float64

	// HistoryDepth is the number of undo snapshots retained.
	HistoryDepth int
}

// Defaults sets default settings values.
func (se *Settings) Defaults() {
	se.Freehand.Defaults()
	se.Polyline.Defaults()
	se.Curve.Defaults()
	se.MorphKernel = 0
	se.FeatherRadius = 0
	se.HistoryDepth = DefaultHistoryDepth
}

// config returns the builder configuration for the given input mode.
func (se *Settings) config(mode tracer.Modes) *tracer.Config {
	switch mode {
	case tracer.Polyline:
		return &se.Polyline
	case tracer.Curve:
		return &se.Curve
	}
	return &se.Freehand
}

// OpenSettings reads settings from the given TOML file, with defaults
// for any value the file does not set.
func OpenSettings(filename string) (*Settings, error) {
	se := &Settings{}
	se.Defaults()
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("segment: opening settings: %w", err)
	}
	if err := toml.Unmarshal(b, se); err != nil {
		return nil, fmt.Errorf("segment: parsing settings: %w", err)
	}
	return se, nil
}

// Save writes the settings to the given file as TOML.
func (se *Settings) Save(filename string) error {
	b, err := toml.Marshal(se)
	if err != nil {
		return fmt.Errorf("segment: encoding settings: %w", err)
	}
	if err := os.WriteFile(filename, b, 0o666); err != nil {
		return fmt.Errorf("segment: saving settings: %w", err)
	}
	return nil
}
