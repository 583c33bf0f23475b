// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package nav

// FactionRelations answers which factions are mutual enemies of a given
// faction, so the passability predicate can let enemy-occupied tiles pass
// without letting blocker-occupied tiles pass.
type FactionRelations interface {
	Enemies(faction int) []int
}

// enemyMask turns a faction's enemy list into a bitset over faction ids,
// matching the original engine's uint16_t enemy bitmask.
func enemyMask(rel FactionRelations, faction FactionID) uint32 {
	if rel == nil {
		return 0
	}
	var mask uint32
	for _, e := range rel.Enemies(int(faction)) {
		if e >= 0 && e < maxFactions {
			mask |= 1 << uint(e)
		}
	}
	return mask
}

// Passable reports whether tile can be entered.
//
// With FactionNone, a tile is passable when its base cost is not
// CostImpassable and it carries no blockers, full stop.
//
// With a faction given, a tile occupied only by factions in that faction's
// enemy set is passable even with blockers present (so units can path
// through and attack an enemy standing on the tile); a tile with even one
// present faction outside the enemy set falls back to the blocker check.
func Passable(chunk Chunk, tile Coord, faction FactionID, rel FactionRelations) bool {
	if chunk.CostBase(tile) == CostImpassable {
		return false
	}
	if faction == FactionNone {
		return chunk.Blockers(tile) == 0
	}

	enemies := enemyMask(rel, faction)
	enemiesOnly := true
	for i := 0; i < maxFactions; i++ {
		if chunk.FactionPresent(tile, FactionID(i)) && enemies&(1<<uint(i)) == 0 {
			enemiesOnly = false
			break
		}
	}
	if enemiesOnly {
		return true
	}
	return chunk.Blockers(tile) == 0
}
