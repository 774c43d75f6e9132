// Copyright (c) 2025, The Photoseg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package segment

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/clone"
	"github.com/google/uuid"
	"photoseg.org/core/blend"
	"photoseg.org/core/geom"
	"photoseg.org/core/mask"
	"photoseg.org/core/tracer"
)

// Document is the ordered collection of regions traced over one
// immutable base image, together with the active path builder and the
// snapshot history. All region mutation goes through the Document's
// operation set; the host only reads. A Document is single-threaded:
// operations run to completion on the calling goroutine.
type Document struct {

	// Settings has the tunable parameters for path building, mask
	// cleanup, and history.
	Settings Settings

	base    *image.RGBA
	regions []*Region
	active  string
	builder *tracer.Builder
	hist    *history
}

// NewDocument returns a new [Document] over the given base image. The
// image is copied; the document never mutates it. A nil settings uses
// defaults.
func NewDocument(base image.Image, se *Settings) *Document {
	dc := &Document{base: clone.AsRGBA(base)}
	if se != nil {
		dc.Settings = *se
	} else {
		dc.Settings.Defaults()
	}
	dc.hist = newHistory(dc.Settings.HistoryDepth)
	dc.hist.save(dc.regions, dc.active)
	return dc
}

// Base returns the base image buffer. It must be treated as read-only.
func (dc *Document) Base() *image.RGBA {
	return dc.base
}

// Regions returns the regions in document (compositing) order, for the
// host to render outlines and badges. The returned regions must be
// treated as read-only; all mutation goes through Document operations.
func (dc *Document) Regions() []*Region {
	out := make([]*Region, len(dc.regions))
	copy(out, dc.regions)
	return out
}

// Region returns the region with the given id.
func (dc *Document) Region(id string) (*Region, error) {
	for _, rg := range dc.regions {
		if rg.ID == id {
			return rg, nil
		}
	}
	return nil, ErrRegionNotFound
}

// CreateRegion appends a new empty, open, visible region, makes it the
// active region, and starts a path builder for the given input mode.
// Any uncommitted path on a previously active region is discarded.
// Returns the new region's id.
func (dc *Document) CreateRegion(mode tracer.Modes) string {
	rg := &Region{ID: uuid.NewString(), Visible: true}
	dc.regions = append(dc.regions, rg)
	dc.active = rg.ID
	dc.builder = tracer.NewBuilder(mode, dc.Settings.config(mode))
	dc.hist.save(dc.regions, dc.active)
	return rg.ID
}

// PointerPoint submits one pointer point to the active region's path.
// If the point closes the ring, the path is committed immediately.
// Returns [ErrNoActiveRegion] when nothing is under construction.
func (dc *Document) PointerPoint(x, y float32) error {
	if dc.builder == nil {
		return ErrNoActiveRegion
	}
	if dc.builder.AddPoint(geom.Vec2(x, y)) == tracer.AutoClosed {
		return dc.commitPath(false)
	}
	return nil
}

// PointerCurvePoint submits one curve anchor with up to two control
// point offsets, as [PointerPoint] does for plain points.
func (dc *Document) PointerCurvePoint(x, y float32, offsets ...geom.Vector2) error {
	if dc.builder == nil {
		return ErrNoActiveRegion
	}
	if dc.builder.AddCurvePoint(geom.Vec2(x, y), offsets...) == tracer.AutoClosed {
		return dc.commitPath(false)
	}
	return nil
}

// PointerStroke submits a run of freehand samples to the active
// region's path.
func (dc *Document) PointerStroke(pts ...geom.Vector2) error {
	if dc.builder == nil {
		return ErrNoActiveRegion
	}
	dc.builder.AddStroke(pts...)
	return nil
}

// FinalizePath ends construction of the active region's path,
// overwriting the region's outline with the accumulated points.
// Finalizing with fewer than two points records nothing; forceClose
// closes the ring only when there are at least three points. Returns
// [ErrNoActiveRegion] when nothing is under construction.
func (dc *Document) FinalizePath(forceClose bool) error {
	if dc.builder == nil {
		return ErrNoActiveRegion
	}
	return dc.commitPath(forceClose)
}

// CancelPath discards the active region's uncommitted path, e.g. when
// the user switches tools mid-trace. The region keeps its previously
// committed outline; no snapshot is taken.
func (dc *Document) CancelPath() {
	dc.builder = nil
	dc.active = ""
}

func (dc *Document) commitPath(forceClose bool) error {
	pts, closed := dc.builder.Finalize(forceClose)
	dc.builder = nil
	active := dc.active
	dc.active = ""
	if len(pts) == 0 {
		return nil
	}
	rg, err := dc.Region(active)
	if err != nil {
		return err
	}
	rg.Outline = OutlinePart{Points: pts, Closed: closed}
	dc.hist.save(dc.regions, dc.active)
	return nil
}

// ApplyFill rasterizes the given region's outline into a coverage mask
// and composites the fill color over the base image with the given
// blend mode and opacity, storing both on the region. Returns
// [ErrRegionNotClosed] when the region is open or degenerate; the
// document is unchanged in that case.
func (dc *Document) ApplyFill(id string, fc color.RGBA, mode blend.Modes, opacity float32) error {
	rg, err := dc.Region(id)
	if err != nil {
		return err
	}
	if !rg.Fillable() {
		return ErrRegionNotClosed
	}
	opacity = min(max(opacity, 0), 1)
	m := dc.rasterize(rg)
	rg.Fill = &FillPart{
		Color:   fc,
		Mode:    mode,
		Opacity: opacity,
		Mask:    m,
		Render:  blend.Composite(dc.base, m, fc, mode, opacity),
	}
	dc.hist.save(dc.regions, dc.active)
	return nil
}

// Recolor changes the fill color of an already filled region, reusing
// its mask and recomputing the render from the pristine base. Returns
// [ErrRegionNotClosed] when the region has no fill yet.
func (dc *Document) Recolor(id string, fc color.RGBA) error {
	rg, err := dc.Region(id)
	if err != nil {
		return err
	}
	if rg.Fill == nil {
		return ErrRegionNotClosed
	}
	rg.Fill.Color = fc
	rg.Fill.Render = blend.Composite(dc.base, rg.Fill.Mask, fc, rg.Fill.Mode, rg.Fill.Opacity)
	dc.hist.save(dc.regions, dc.active)
	return nil
}

// SmartFill grows a color-similarity region inside the given region's
// mask from the seed pixel, painting matching pixels to the fill color,
// and stores the result as the region's fill. Returns
// [ErrRegionNotClosed] when the region is open or degenerate.
func (dc *Document) SmartFill(id string, seed image.Point, fc color.RGBA, tolerance uint8) error {
	rg, err := dc.Region(id)
	if err != nil {
		return err
	}
	if !rg.Fillable() {
		return ErrRegionNotClosed
	}
	render, grown := blend.FloodFill(dc.base, dc.rasterize(rg), seed, fc, tolerance)
	rg.Fill = &FillPart{
		Color:   fc,
		Mode:    blend.Normal,
		Opacity: 1,
		Mask:    grown,
		Render:  render,
	}
	dc.hist.save(dc.regions, dc.active)
	return nil
}

// SetVisible sets the region's visibility, which controls both display
// and export inclusion.
func (dc *Document) SetVisible(id string, visible bool) error {
	rg, err := dc.Region(id)
	if err != nil {
		return err
	}
	rg.Visible = visible
	dc.hist.save(dc.regions, dc.active)
	return nil
}

// DeleteRegion removes the region with the given id.
func (dc *Document) DeleteRegion(id string) error {
	for i, rg := range dc.regions {
		if rg.ID != id {
			continue
		}
		dc.regions = append(dc.regions[:i], dc.regions[i+1:]...)
		if dc.active == id {
			dc.active = ""
			dc.builder = nil
		}
		dc.hist.save(dc.regions, dc.active)
		return nil
	}
	return ErrRegionNotFound
}

// Clear removes all regions.
func (dc *Document) Clear() {
	dc.regions = nil
	dc.active = ""
	dc.builder = nil
	dc.hist.save(dc.regions, dc.active)
}

// Undo restores the document state prior to the last committed
// mutation, including every region's fill result. Returns
// [ErrEmptyHistory] at the start of the range.
func (dc *Document) Undo() error {
	sn, err := dc.hist.undo()
	if err != nil {
		return err
	}
	dc.restore(sn)
	return nil
}

// Redo restores the next document state in the history. Returns
// [ErrEmptyHistory] at the end of the range.
func (dc *Document) Redo() error {
	sn, err := dc.hist.redo()
	if err != nil {
		return err
	}
	dc.restore(sn)
	return nil
}

// restore swaps in a deep copy of the snapshot wholesale, so no
// intermediate state is ever observable and later mutations cannot
// reach into retained history.
func (dc *Document) restore(sn *snapshot) {
	dc.regions = cloneRegions(sn.regions)
	dc.active = sn.active
	dc.builder = nil
}

// ExportFlattened composites, in document order, every visible filled
// region over a copy of the base image and returns the result. No
// outline or boundary stroke is drawn: the export is exactly what
// compositing alone produces.
func (dc *Document) ExportFlattened() *image.RGBA {
	out := clone.AsRGBA(dc.base)
	for _, rg := range dc.regions {
		if !rg.Visible || rg.Fill == nil {
			continue
		}
		out = blend.Composite(out, rg.Fill.Mask, rg.Fill.Color, rg.Fill.Mode, rg.Fill.Opacity)
	}
	return out
}

// rasterize converts the region's outline to a coverage mask at base
// resolution, applying the configured morphological cleanup and
// feathering.
func (dc *Document) rasterize(rg *Region) *image.Alpha {
	b := dc.base.Rect
	m := mask.Rasterize(rg.Outline.Points, b.Dx(), b.Dy())
	if dc.Settings.MorphKernel > 1 {
		m = mask.MorphClose(m, dc.Settings.MorphKernel)
	}
	if dc.Settings.FeatherRadius > 0 {
		m = mask.Feather(m, dc.Settings.FeatherRadius)
	}
	return m
}
