// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package nav

import "github.com/galvanized/permafrost/math/lin"

// FlowDir is the direction a tile's flow vector points: towards the
// neighbour with the lowest integration cost. NONE means the tile has no
// direction, either because it is the target itself or because it was
// never reached by the integration pass.
type FlowDir uint8

// Direction constants, in clockwise compass order starting at N. The
// order deriveFlow scans them in is allDirs, below.
const (
	NONE FlowDir = iota
	N
	NE
	E
	SE
	S
	SW
	W
	NW
)

// neighborOffsets maps each non-NONE FlowDir to the tile delta it points
// towards. Row increases northward, column increases eastward.
var neighborOffsets = map[FlowDir]Coord{
	N:  {R: 1, C: 0},
	NE: {R: 1, C: 1},
	E:  {R: 0, C: 1},
	SE: {R: -1, C: 1},
	S:  {R: -1, C: 0},
	SW: {R: -1, C: -1},
	W:  {R: 0, C: -1},
	NW: {R: 1, C: -1},
}

// allDirs lists every non-NONE direction in the fixed tie-break order
// flow_dir scans: N, S, E, W, NW, NE, SW, SE.
var allDirs = [8]FlowDir{N, S, E, W, NW, NE, SW, SE}

// sharedCardinals gives, for each diagonal direction, the two cardinal
// directions that share an edge with it. A diagonal step is only
// admissible when both are themselves reachable — this is what stops the
// flow from cutting a corner across an impassable tile.
var sharedCardinals = map[FlowDir][2]FlowDir{
	NE: {N, E},
	SE: {S, E},
	SW: {S, W},
	NW: {N, W},
}

// unitVectors gives each direction's normalized 2D vector, used to report
// a usable movement vector to callers.
var unitVectors = map[FlowDir]lin.V2{
	NONE: {X: 0, Y: 0},
	N:    {X: 0, Y: 1},
	NE:   {X: 1 / lin.Sqrt2, Y: 1 / lin.Sqrt2},
	E:    {X: 1, Y: 0},
	SE:   {X: 1 / lin.Sqrt2, Y: -1 / lin.Sqrt2},
	S:    {X: 0, Y: -1},
	SW:   {X: -1 / lin.Sqrt2, Y: -1 / lin.Sqrt2},
	W:    {X: -1, Y: 0},
	NW:   {X: -1 / lin.Sqrt2, Y: 1 / lin.Sqrt2},
}

// Vector returns d's normalized 2D movement vector.
func (d FlowDir) Vector() lin.V2 { return unitVectors[d] }

// FlowField is one chunk's computed direction-to-target map.
type FlowField struct {
	Chunk  ChunkCoord
	Target FieldTarget
	Dirs   [][]FlowDir // Dirs[r][c], sized FieldRes.R x FieldRes.C.
}

// newFlowField allocates a FlowField with every tile set to NONE.
func newFlowField(chunk ChunkCoord, target FieldTarget) *FlowField {
	dirs := make([][]FlowDir, FieldRes.R)
	for r := range dirs {
		dirs[r] = make([]FlowDir, FieldRes.C)
	}
	return &FlowField{Chunk: chunk, Target: target, Dirs: dirs}
}

// At returns the direction stored for a tile, or NONE if out of bounds.
func (f *FlowField) At(c Coord) FlowDir {
	if !c.InBounds() {
		return NONE
	}
	return f.Dirs[c.R][c.C]
}

// deriveFlow fills every in-bounds tile's FlowDir from an already-built
// integration field: each tile points at whichever of its reachable
// neighbours (cardinals scanned before diagonals, matching the teacher's
// findNeighbours order) carries the lowest integration cost strictly below
// its own. Invariant: a tile with finite, nonzero cost always finds a
// direction; a tile at the target (cost 0) is always NONE.
func deriveFlow(integ *integrationField, dirs [][]FlowDir) {
	for r := 0; r < FieldRes.R; r++ {
		for c := 0; c < FieldRes.C; c++ {
			here := Coord{R: r, C: c}
			ownCost := integ.at(here)
			if ownCost == Infinity {
				// Left untouched: preserves previous island flow across
				// split chunks instead of clobbering it with NONE.
				continue
			}
			if ownCost == 0 {
				dirs[r][c] = NONE
				continue
			}
			best := FlowDir(NONE)
			bestCost := ownCost
			for _, d := range allDirs {
				if shared, ok := sharedCardinals[d]; ok {
					c1 := neighborOffsets[shared[0]]
					c2 := neighborOffsets[shared[1]]
					if integ.at(Coord{R: r + c1.R, C: c + c1.C}) == Infinity ||
						integ.at(Coord{R: r + c2.R, C: c + c2.C}) == Infinity {
						continue // corner-cut: one shared cardinal is unreachable.
					}
				}
				off := neighborOffsets[d]
				n := Coord{R: r + off.R, C: c + off.C}
				if !n.InBounds() {
					continue
				}
				nc := integ.at(n)
				if nc < bestCost {
					bestCost = nc
					best = d
				}
			}
			if best == NONE && ownCost != 0 && ownCost != Infinity {
				// Every reachable tile's integration cost is seeded by
				// relaxing from a strictly lower-cost neighbour, so this
				// can only happen if the integration field itself is
				// malformed.
				panic("nav: flow_dir found no lower-cost neighbour for a finite, nonzero cost tile")
			}
			dirs[r][c] = best
		}
	}
}
