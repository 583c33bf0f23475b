// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package nav

import "github.com/galvanized/permafrost/math/lin"

// LOSField holds, per tile, whether a straight sight line from that tile
// to the field's target is unobstructed (Visible), and whether the tile
// lies in the shadow cast by a blocking corner (WavefrontBlocked).
type LOSField struct {
	Chunk            ChunkCoord
	Visible          [][]bool
	WavefrontBlocked [][]bool
}

// newLOSField allocates a field with every tile cleared.
func newLOSField(chunk ChunkCoord) *LOSField {
	f := &LOSField{Chunk: chunk}
	f.Visible = make([][]bool, FieldRes.R)
	f.WavefrontBlocked = make([][]bool, FieldRes.R)
	for r := range f.Visible {
		f.Visible[r] = make([]bool, FieldRes.C)
		f.WavefrontBlocked[r] = make([]bool, FieldRes.C)
	}
	return f
}

// LOSFieldCreate builds the LOS field for one chunk. targetTile is the
// sight-line target in world/tile space; prev is the already-computed LOS
// field of the upstream chunk this one was reached from across a shared
// seam (nil for the origin chunk, per §4.5).
func LOSFieldCreate(chunk Chunk, chunkCoord ChunkCoord, targetTile Coord, targetMapPos lin.V3, prev *LOSField, seam []Coord) *LOSField {
	field := newLOSField(chunkCoord)
	frontier := newPriorityFrontier()
	integ := newIntegrationField()

	if prev == nil {
		integ.set(targetTile, 0)
		field.Visible[targetTile.R][targetTile.C] = true
		frontier.Push(targetTile, 0)
	} else {
		for _, s := range seam {
			if !s.InBounds() {
				continue
			}
			if field.WavefrontBlocked[s.R][s.C] {
				continue
			}
			if prev.WavefrontBlocked[s.R][s.C] {
				field.WavefrontBlocked[s.R][s.C] = true
				createWavefrontBlockedLine(field, s, targetMapPos)
				continue
			}
			if prev.Visible[s.R][s.C] {
				field.Visible[s.R][s.C] = true
				integ.set(s, 0)
				frontier.Push(s, 0)
			}
		}
	}

	for frontier.Len() > 0 {
		cur, ok := frontier.Pop()
		if !ok {
			break
		}
		for _, n := range Cardinals(cur) {
			if field.WavefrontBlocked[n.R][n.C] {
				continue
			}
			if chunk.CostBase(n) > 1 {
				if isLOSCorner(chunk, n) {
					field.WavefrontBlocked[n.R][n.C] = true
					createWavefrontBlockedLine(field, n, targetMapPos)
				}
				continue
			}
			newCost := integ.at(cur) + 1
			if newCost < integ.at(n) {
				integ.set(n, newCost)
				field.Visible[n.R][n.C] = true
				if !frontier.Contains(n) {
					frontier.Push(n, newCost)
				}
			}
		}
	}

	padWavefront(field)
	return field
}

// isLOSCorner reports whether tile has a blocked neighbor on one side and
// a clear neighbor on the opposite side, along either axis (XOR on both
// axes), per §4.5.
func isLOSCorner(chunk Chunk, tile Coord) bool {
	north := Coord{R: tile.R + 1, C: tile.C}
	south := Coord{R: tile.R - 1, C: tile.C}
	east := Coord{R: tile.R, C: tile.C + 1}
	west := Coord{R: tile.R, C: tile.C - 1}

	blockedNS := blockedAxis(chunk, north) != blockedAxis(chunk, south)
	blockedEW := blockedAxis(chunk, east) != blockedAxis(chunk, west)
	return blockedNS || blockedEW
}

// blockedAxis treats an out-of-bounds or impassable-cost tile as blocked.
func blockedAxis(chunk Chunk, c Coord) bool {
	if !c.InBounds() {
		return true
	}
	return chunk.CostBase(c) > 1
}

// createWavefrontBlockedLine rasterizes the shadow cast by a blocking
// corner relative to the LOS target: the direction from corner to target
// is normalized, and the line is walked from the corner in the opposite
// direction until it exits the chunk. Each step adds the reversed unit
// direction, with both components rounded to 3 digits of precision, to a
// floating-point position and marks the tile nearest that position; this
// is a fixed-step walk, not an integer Bresenham rasterization.
func createWavefrontBlockedLine(field *LOSField, corner Coord, targetMapPos lin.V3) {
	dir := lin.V2{}
	dir.Sub(&lin.V2{X: targetMapPos.X, Y: targetMapPos.Z}, &lin.V2{X: float64(corner.C), Y: float64(corner.R)})
	if dir.AeqZ() {
		field.WavefrontBlocked[corner.R][corner.C] = true
		return
	}
	unit := lin.V2{}
	unit.Unit(&dir)

	dx := -lin.Round(unit.X, 3)
	dy := -lin.Round(unit.Y, 3)

	r, c := float64(corner.R), float64(corner.C)
	for {
		ic, ir := int(lin.Round(c, 0)), int(lin.Round(r, 0))
		tile := Coord{R: ir, C: ic}
		if !tile.InBounds() {
			return
		}
		field.WavefrontBlocked[tile.R][tile.C] = true
		r += dy
		c += dx
		if lin.AeqZ(dx) && lin.AeqZ(dy) {
			return
		}
	}
}

// padWavefront clears Visible on any tile whose 3x3 neighborhood contains
// a WavefrontBlocked tile, per §4.5's conservative padding rule.
func padWavefront(field *LOSField) {
	blocked := make([][]bool, FieldRes.R)
	for r := range blocked {
		blocked[r] = append([]bool(nil), field.WavefrontBlocked[r]...)
	}
	for r := 0; r < FieldRes.R; r++ {
		for c := 0; c < FieldRes.C; c++ {
			if !field.Visible[r][c] {
				continue
			}
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					nr, nc := r+dr, c+dc
					if nr < 0 || nr >= FieldRes.R || nc < 0 || nc >= FieldRes.C {
						continue
					}
					if blocked[nr][nc] {
						field.Visible[r][c] = false
					}
				}
			}
		}
	}
}
