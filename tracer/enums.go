// Copyright (c) 2025, The Photoseg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tracer

// Modes are the input modes for path construction. They differ only in
// how submitted points are appended to the path under construction.
type Modes int32

const (
	// Freehand appends every pointer sample of a held-down stroke.
	// The host submits the whole stroke and then finalizes; there is
	// no intermediate auto-close check.
	Freehand Modes = iota

	// Polyline appends exactly one point per click, checking each new
	// point against the first for auto-closing.
	Polyline

	// Curve is like [Polyline], but each committed point may carry one
	// or two Bézier control point offsets toward the next point.
	Curve
)

func (mo Modes) String() string {
	switch mo {
	case Freehand:
		return "Freehand"
	case Polyline:
		return "Polyline"
	case Curve:
		return "Curve"
	}
	return "ModesInvalid"
}

// States are the states of a path [Builder].
type States int32

const (
	// Idle means no point has been submitted yet.
	Idle States = iota

	// Building means at least one point has been accumulated and the
	// path is still open.
	Building

	// AutoClosed means the last submitted point landed within the close
	// tolerance of the first and the ring was closed automatically.
	AutoClosed

	// Finalized means the host explicitly finalized the path.
	Finalized
)

func (st States) String() string {
	switch st {
	case Idle:
		return "Idle"
	case Building:
		return "Building"
	case AutoClosed:
		return "AutoClosed"
	case Finalized:
		return "Finalized"
	}
	return "StatesInvalid"
}
