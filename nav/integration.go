// Copyright © 2014 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package nav

import "log/slog"

// integrationField holds, per tile, the lowest accumulated cost found so
// far to reach any seed tile in the initial frontier. Tiles never reached
// keep the sentinel Infinity.
type integrationField struct {
	costs [][]uint32 // costs[r][c]
}

// newIntegrationField allocates a field with every tile set to Infinity.
func newIntegrationField() *integrationField {
	costs := make([][]uint32, FieldRes.R)
	for r := range costs {
		row := make([]uint32, FieldRes.C)
		for c := range row {
			row[c] = Infinity
		}
		costs[r] = row
	}
	return &integrationField{costs: costs}
}

func (f *integrationField) at(c Coord) uint32 {
	if !c.InBounds() {
		return Infinity
	}
	return f.costs[c.R][c.C]
}

func (f *integrationField) set(c Coord, cost uint32) { f.costs[c.R][c.C] = cost }

// relaxPredicate decides whether a tile may be relaxed into (i.e. entered)
// during the integration sweep.
type relaxPredicate func(Coord) bool

// buildIntegration runs the Dijkstra-style cost propagation from seeds
// (each pre-seeded at cost 0) outward over every tile relax accepts,
// accumulating chunk's per-tile base cost along each 4-connected step.
// This realizes both the spec's build_integration (relax passes only
// Passable tiles) and build_integration_nonpass (§4.8's island-recovery
// variant, whose relax passes only tiles that are not Passable) by
// parameterizing the predicate rather than duplicating the sweep.
func buildIntegration(chunk Chunk, seeds []Coord, relax relaxPredicate, log *slog.Logger) *integrationField {
	field := newIntegrationField()
	if len(seeds) == 0 {
		if log != nil {
			log.Warn("nav: build_integration called with no seed tiles")
		}
		return field
	}

	frontier := newPriorityFrontier()
	for _, s := range seeds {
		if !s.InBounds() {
			continue
		}
		field.set(s, 0)
		frontier.Push(s, 0)
	}

	for frontier.Len() > 0 {
		cur, ok := frontier.Pop()
		if !ok {
			break
		}
		curCost := field.at(cur)
		for _, n := range Cardinals(cur) {
			if !relax(n) {
				continue
			}
			step := uint32(chunk.CostBase(n))
			newCost := curCost + step
			if newCost < field.at(n) {
				field.set(n, newCost)
				if !frontier.Contains(n) {
					frontier.Push(n, newCost)
				}
			}
		}
	}

	if log != nil {
		log.Debug("nav: build_integration complete", "seeds", len(seeds))
	}
	return field
}

// passableRelax builds the relax predicate for build_integration: a tile
// may be entered if it is Passable for the given faction.
func passableRelax(chunk Chunk, faction FactionID, rel FactionRelations) relaxPredicate {
	return func(c Coord) bool {
		return c.InBounds() && Passable(chunk, c, faction, rel)
	}
}

// nonPassableRelax builds the relax predicate for build_integration_nonpass
// (§4.8): the mirror image of passableRelax. It only relaxes into tiles
// that are NOT Passable — impassable terrain, blockers, or blocked faction
// occupancy alike — matching field_build_integration_nonpass's
// skip-if-passable check. This is what lets the pass tunnel cost through
// the blocked island a trapped agent sits in, out to its passable
// boundary; a tile that is already passable has nothing to propagate
// through and is left for the ordinary build_integration pass.
func nonPassableRelax(chunk Chunk, faction FactionID, rel FactionRelations) relaxPredicate {
	return func(c Coord) bool {
		return c.InBounds() && !Passable(chunk, c, faction, rel)
	}
}
