// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package nav is the hierarchical tile-based pathfinding core: per-chunk
// flow fields that guide agents toward a goal, line-of-sight fields for
// natural movement, faction-aware passability, and island recovery for
// agents trapped by dynamic blockers.
//
// Package nav is provided as part of the permafrost real-time-strategy
// engine core.
package nav

import "github.com/galvanized/permafrost/nav/navcfg"

// FieldRes is the tile resolution of every chunk-local field. It defaults
// to the spec's typical 64x64 and can be overridden once at process start
// via Configure, before any chunk or field is created.
var FieldRes = navcfg.DefaultResolution()

// Configure applies a parsed navcfg.Config's resolution and search buffer
// to the package-wide FieldRes/searchBuffer. Callers that never load a
// config (tests, small fixtures) can leave both at their defaults instead
// of calling this.
func Configure(cfg *navcfg.Config) {
	FieldRes = cfg.Resolution
	searchBuffer = cfg.SearchBuffer
}

// Coord is a tile index within a chunk: 0 <= R < FieldRes.R, 0 <= C < FieldRes.C.
type Coord struct {
	R, C int
}

// InBounds reports whether the coordinate falls within the current field
// resolution.
func (c Coord) InBounds() bool {
	return c.R >= 0 && c.R < FieldRes.R && c.C >= 0 && c.C < FieldRes.C
}

// ChunkCoord identifies a chunk within the world's chunk grid.
type ChunkCoord struct {
	R, C int
}

// id returns a dense row-major index for c within a FieldRes.R x
// FieldRes.C grid.
func (c Coord) id() int { return c.R*FieldRes.C + c.C }

// coordFromID is the inverse of Coord.id.
func coordFromID(id int) Coord { return Coord{R: id / FieldRes.C, C: id % FieldRes.C} }

// cardinalOffsets lists the four 4-connected neighbour deltas in the fixed
// tie-break order the spec requires for flow derivation: N, S, E, W.
var cardinalOffsets = [4]Coord{
	{R: 1, C: 0},  // N
	{R: -1, C: 0}, // S
	{R: 0, C: 1},  // E
	{R: 0, C: -1}, // W
}

// Cardinals returns the 4-connected neighbours of c that are in bounds,
// in the fixed N, S, E, W order.
func Cardinals(c Coord) []Coord {
	out := make([]Coord, 0, 4)
	for _, d := range cardinalOffsets {
		n := Coord{R: c.R + d.R, C: c.C + d.C}
		if n.InBounds() {
			out = append(out, n)
		}
	}
	return out
}
