// Copyright (c) 2025, The Photoseg Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package segment

import (
	"log/slog"

	"github.com/jinzhu/copier"
)

// DefaultHistoryDepth is the default number of retained snapshots.
const DefaultHistoryDepth = 20

// snapshot is a full deep copy of the document's committed state,
// including every region's fill result. Snapshots are full, not diffs,
// so restoring one is a single wholesale swap.
type snapshot struct {
	regions []*Region
	active  string
}

// history is a push-only snapshot list with a cursor. snaps[idx] is
// always the current state; undo moves the cursor back, redo forward,
// and any new snapshot truncates the forward range. Depth is bounded:
// the oldest snapshots fall off the front.
type history struct {
	snaps []*snapshot
	idx   int
	depth int
}

func newHistory(depth int) *history {
	if depth < 2 {
		depth = DefaultHistoryDepth
	}
	return &history{depth: depth, idx: -1}
}

// save pushes a snapshot of the given state as the new current state,
// truncating any forward (redo) history.
func (hs *history) save(regions []*Region, active string) {
	sn := &snapshot{regions: cloneRegions(regions), active: active}
	hs.snaps = append(hs.snaps[:hs.idx+1], sn)
	hs.idx++
	if len(hs.snaps) > hs.depth {
		over := len(hs.snaps) - hs.depth
		hs.snaps = hs.snaps[over:]
		hs.idx -= over
	}
}

// undo moves the cursor back one snapshot and returns it, or
// [ErrEmptyHistory] at the start of the range.
func (hs *history) undo() (*snapshot, error) {
	if hs.idx <= 0 {
		return nil, ErrEmptyHistory
	}
	hs.idx--
	return hs.snaps[hs.idx], nil
}

// redo moves the cursor forward one snapshot and returns it, or
// [ErrEmptyHistory] at the end of the range.
func (hs *history) redo() (*snapshot, error) {
	if hs.idx >= len(hs.snaps)-1 {
		return nil, ErrEmptyHistory
	}
	hs.idx++
	return hs.snaps[hs.idx], nil
}

// cloneRegions deep-copies the given regions, including mask and render
// buffers, so a snapshot shares no memory with the live document.
func cloneRegions(regions []*Region) []*Region {
	if len(regions) == 0 {
		return nil
	}
	out := make([]*Region, 0, len(regions))
	err := copier.CopyWithOption(&out, &regions, copier.Option{DeepCopy: true})
	if err != nil {
		// deep copy of plain exported data should never fail
		slog.Error("segment: history snapshot copy failed", "err", err)
	}
	return out
}
