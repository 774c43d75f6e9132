// Copyright (c) 2025, The Photoseg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package segment is the in-memory document model of the segmentation
// engine: regions (closed polygons with styled raster fills over a base
// photograph), a bounded snapshot history for undo/redo, and the
// flattened export.
package segment

import (
	"image"
	"image/color"

	"photoseg.org/core/blend"
	"photoseg.org/core/geom"
)

// OutlinePart is the geometry part of a [Region]: the traced boundary
// polygon. It is what the host renders as an editable outline; it never
// appears in the flattened export.
type OutlinePart struct {

	// Points is the boundary polygon in insertion order, which defines
	// the winding. For curve-mode regions these are the tessellated
	// boundary points.
	Points []geom.Vector2

	// Closed is true once the last point coincides with the first.
	Closed bool
}

// FillPart is the raster fill part of a [Region]. Only closed regions
// with at least three points ever carry one; an open region has a nil
// fill.
type FillPart struct {

	// Color is the fill color.
	Color color.RGBA

	// Mode is the blend mode combining the fill color with the base.
	Mode blend.Modes

	// Opacity scales the fill effect, in [0,1].
	Opacity float32

	// Mask is the coverage mask rasterized from the outline, at base
	// image resolution.
	Mask *image.Alpha

	// Render is the base image with this fill applied, for the host to
	// display.
	Render *image.RGBA
}

// Region is one user-traced segment of the photograph: an outline part
// and, once filled, a fill part. Regions are independent of each other;
// overlap is legal and composites in document order.
type Region struct {

	// ID uniquely identifies the region for the document's lifetime.
	ID string

	// Outline is the traced boundary.
	Outline OutlinePart

	// Fill is the styled raster fill, nil until one is applied.
	Fill *FillPart

	// Visible controls both display and export inclusion.
	Visible bool
}

// Fillable reports whether the region can carry a fill: closed with at
// least three points.
func (rg *Region) Fillable() bool {
	return rg.Outline.Closed && len(rg.Outline.Points) >= 3
}
