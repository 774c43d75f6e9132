// Copyright (c) 2025, The Photoseg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package segment

import "errors"

// These are the recoverable operation errors. None of them mutate the
// document: a caller receiving one sees the document exactly as it was.
var (
	// ErrRegionNotClosed is returned when a fill is requested on a
	// region that is open or has fewer than three points.
	ErrRegionNotClosed = errors.New("segment: region is not closed")

	// ErrNoActiveRegion is returned by path operations when no region
	// is under construction.
	ErrNoActiveRegion = errors.New("segment: no active region")

	// ErrEmptyHistory is returned by undo/redo past the available range.
	ErrEmptyHistory = errors.New("segment: no further history")

	// ErrRegionNotFound is returned when the given region id does not
	// exist in the document.
	ErrRegionNotFound = errors.New("segment: region not found")
)
