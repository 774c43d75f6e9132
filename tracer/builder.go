// Copyright (c) 2025, The Photoseg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tracer implements the path construction state machine that
// accumulates pointer input into an open or closed polygon, with
// freehand, polyline, and curve input modes and auto-close detection.
package tracer

import (
	"photoseg.org/core/geom"
)

// Config has the tunable parameters of a path [Builder].
type Config struct {

	// CloseTolerance is the distance in pixels within which a new point
	// counts as returning to the first point, closing the ring.
	CloseTolerance float32

	// Snap enables angle snapping of each new point relative to the
	// previous one, in [Polyline] mode only.
	Snap bool

	// SnapStep is the angle snapping step in degrees.
	SnapStep float32

	// CurveSteps is the number of line segments each Bézier segment is
	// tessellated into when a [Curve] path is finalized.
	CurveSteps int

	// SimplifyTolerance is the Douglas-Peucker tolerance in pixels
	// applied to [Freehand] strokes on finalize. 0 disables.
	SimplifyTolerance float32
}

// Defaults sets default configuration values.
func (cf *Config) Defaults() {
	cf.CloseTolerance = 12
	cf.Snap = false
	cf.SnapStep = geom.DefaultSnapStep
	cf.CurveSteps = 16
	cf.SimplifyTolerance = 1
}

// segment controls for the Bézier edge leaving an anchor, in Curve mode.
// n is the number of controls in use (0 = straight edge, 1 = quadratic,
// 2 = cubic). Controls are stored as absolute positions.
type controls struct {
	c0, c1 geom.Vector2
	n      int
}

// Builder accumulates user-submitted points into an open or closed
// polygon for one region under construction. It moves from [Idle] to
// [Building] on the first point, and to [AutoClosed] or [Finalized] when
// the ring closes or the host finalizes. A Builder is strictly
// sequential: it must only be driven from a single event stream.
type Builder struct {

	// Mode is the input mode. It must not change once building started.
	Mode Modes

	// Config has the tunable parameters for this builder.
	Config Config

	state  States
	points []geom.Vector2
	ctrls  []controls
}

// NewBuilder returns a new [Builder] for the given input mode. A nil
// config uses defaults.
func NewBuilder(mode Modes, cfg *Config) *Builder {
	bd := &Builder{Mode: mode}
	if cfg != nil {
		bd.Config = *cfg
	} else {
		bd.Config.Defaults()
	}
	return bd
}

// State returns the current state of the builder.
func (bd *Builder) State() States {
	return bd.state
}

// Points returns a copy of the points accumulated so far. In [Curve]
// mode these are the anchor points, not the tessellated boundary.
func (bd *Builder) Points() []geom.Vector2 {
	pts := make([]geom.Vector2, len(bd.points))
	copy(pts, bd.points)
	return pts
}

// AddPoint submits one point, applying angle snapping if enabled and
// checking for auto-closing in [Polyline] and [Curve] modes, and returns
// the resulting state. Points submitted after the path closed or
// finalized are ignored.
func (bd *Builder) AddPoint(p geom.Vector2) States {
	return bd.add(p, controls{})
}

// AddCurvePoint submits one anchor point with up to two Bézier control
// point offsets for the segment from this anchor to the next one
// (one offset makes it quadratic, two cubic). Offsets are relative to
// the anchor. Only meaningful in [Curve] mode.
func (bd *Builder) AddCurvePoint(p geom.Vector2, offsets ...geom.Vector2) States {
	cs := controls{n: min(len(offsets), 2)}
	if cs.n > 0 {
		cs.c0 = p.Add(offsets[0])
		cs.c1 = cs.c0
	}
	if cs.n > 1 {
		cs.c1 = p.Add(offsets[1])
	}
	return bd.add(p, cs)
}

// AddStroke submits a run of freehand pointer samples at once, with no
// snapping and no auto-close checks.
func (bd *Builder) AddStroke(pts ...geom.Vector2) States {
	if bd.state == AutoClosed || bd.state == Finalized {
		return bd.state
	}
	if len(pts) > 0 {
		bd.state = Building
	}
	bd.points = append(bd.points, pts...)
	return bd.state
}

func (bd *Builder) add(p geom.Vector2, cs controls) States {
	if bd.state == AutoClosed || bd.state == Finalized {
		return bd.state
	}
	if bd.Mode == Polyline && bd.Config.Snap && len(bd.points) > 0 {
		p = geom.AngleSnap(p, bd.points[len(bd.points)-1], bd.Config.SnapStep)
	}
	bd.state = Building
	bd.points = append(bd.points, p)
	bd.ctrls = append(bd.ctrls, cs)
	if bd.Mode == Freehand {
		return bd.state
	}
	// the snapped point participates in the auto-close test, so the
	// closing edge honors the snap grid too
	if len(bd.points) > 3 && geom.IsNear(p, bd.points[0], bd.Config.CloseTolerance) {
		bd.points = append(bd.points, bd.points[0])
		bd.ctrls = append(bd.ctrls, controls{})
		bd.state = AutoClosed
	}
	return bd.state
}

// Finalize ends path construction and returns the accumulated boundary
// polygon and whether it is closed. Fewer than two points is a no-op
// returning (nil, false); fewer than three anchor points never yields a
// closed ring, even when forceClose is set. In [Curve] mode the returned
// polygon is the Bézier boundary tessellated into a dense point
// sequence; in [Freehand] mode the stroke is simplified first.
func (bd *Builder) Finalize(forceClose bool) ([]geom.Vector2, bool) {
	if bd.state == Finalized {
		return nil, false
	}
	closed := bd.state == AutoClosed
	bd.state = Finalized
	if len(bd.points) < 2 {
		return nil, false
	}
	if !closed && forceClose && len(bd.points) >= 3 {
		bd.points = append(bd.points, bd.points[0])
		bd.ctrls = append(bd.ctrls, controls{})
		closed = true
	}
	switch bd.Mode {
	case Freehand:
		pts := geom.Simplify(bd.points, bd.Config.SimplifyTolerance)
		out := make([]geom.Vector2, len(pts))
		copy(out, pts)
		return out, closed
	case Curve:
		return bd.tessellate(), closed
	}
	return bd.Points(), closed
}

// Reset discards all accumulated points and returns the builder to
// [Idle], e.g. when the user switches tools mid-path.
func (bd *Builder) Reset() {
	bd.state = Idle
	bd.points = nil
	bd.ctrls = nil
}

// tessellate flattens the anchors and their segment controls into a
// dense boundary polygon, so masking operates on the rendered curve
// rather than its straight-edge approximation.
func (bd *Builder) tessellate() []geom.Vector2 {
	steps := bd.Config.CurveSteps
	if steps < 1 {
		steps = 1
	}
	out := []geom.Vector2{bd.points[0]}
	for i := 0; i < len(bd.points)-1; i++ {
		p0 := bd.points[i]
		p1 := bd.points[i+1]
		switch bd.ctrls[i].n {
		case 1:
			out = geom.TessellateQuad(out, p0, bd.ctrls[i].c0, p1, steps)
		case 2:
			out = geom.TessellateCubic(out, p0, bd.ctrls[i].c0, bd.ctrls[i].c1, p1, steps)
		default:
			out = append(out, p1)
		}
	}
	return out
}
