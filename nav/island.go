// Copyright © 2024 Galvanized Logic Inc.

package nav

import "log/slog"

// FlowFieldUpdateToNearestPathable builds a flow field guiding an agent
// stuck at start out to the nearest passable tile, per §4.8. It BFS's
// outward from start over every tile (passable or not); the set of
// passable tiles first reached (the "passable frontier" of start's
// impassable island) becomes the seed for a build_integration_nonpass
// pass, which only relaxes through impassable tiles.
func FlowFieldUpdateToNearestPathable(chunk Chunk, start Coord, faction FactionID, rel FactionRelations, log *slog.Logger) *FlowField {
	field := newFlowField(ChunkCoord{}, TileTarget{Tile: start})
	seeds := passableFrontier(chunk, start, faction, rel)
	if len(seeds) == 0 {
		if log != nil {
			log.Warn("nav: FlowFieldUpdateToNearestPathable found no passable frontier", "start", start)
		}
		return field
	}
	integ := buildIntegration(chunk, seeds, nonPassableRelax(chunk, faction, rel), log)
	deriveFlow(integ, field.Dirs)
	return field
}

// passableFrontier BFS's outward from start (through any tile, passable
// or not) and returns the passable tiles reached at the shallowest depth
// from each BFS branch — i.e. the boundary of start's impassable island.
func passableFrontier(chunk Chunk, start Coord, faction FactionID, rel FactionRelations) []Coord {
	visited := map[Coord]bool{start: true}
	queue := []Coord{start}
	var frontier []Coord
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range Cardinals(cur) {
			if visited[n] {
				continue
			}
			visited[n] = true
			if Passable(chunk, n, faction, rel) {
				frontier = append(frontier, n)
				continue // do not expand past a passable tile.
			}
			queue = append(queue, n)
		}
	}
	return frontier
}

// FlowFieldUpdateIslandToNearest builds a flow field guiding an agent to
// the nearest tile of a different local island within the chunk, per
// §4.8. For each seed in the natural (target) frontier, it finds the
// closest tiles carrying localIsland via a bounded Manhattan-distance BFS,
// keeps only the globally-minimum-distance set across all seeds, and uses
// that set as the seed frontier for the standard integration.
func FlowFieldUpdateIslandToNearest(chunk Chunk, natural []Coord, localIsland uint16, faction FactionID, rel FactionRelations, log *slog.Logger) *FlowField {
	field := newFlowField(ChunkCoord{}, TileTarget{})

	bestDist := -1
	var bestSeeds []Coord
	for _, seed := range natural {
		dist, tiles := closestTilesLocal(chunk, seed, localIsland)
		if dist < 0 {
			continue
		}
		switch {
		case bestDist < 0 || dist < bestDist:
			bestDist = dist
			bestSeeds = append([]Coord(nil), tiles...)
		case dist == bestDist:
			bestSeeds = append(bestSeeds, tiles...)
		}
	}
	if len(bestSeeds) == 0 {
		if log != nil {
			log.Warn("nav: FlowFieldUpdateIslandToNearest found no tiles of the requested island", "island", localIsland)
		}
		return field
	}

	integ := buildIntegration(chunk, bestSeeds, passableRelax(chunk, faction, rel), log)
	deriveFlow(integ, field.Dirs)
	return field
}

// closestTilesLocal is a bounded Manhattan-distance BFS from seed; it
// returns the smallest distance at which a tile of localIsland is found,
// and every tile at that distance.
func closestTilesLocal(chunk Chunk, seed Coord, localIsland uint16) (int, []Coord) {
	visited := map[Coord]bool{seed: true}
	type frame struct {
		c Coord
		d int
	}
	queue := []frame{{seed, 0}}
	found := -1
	var tiles []Coord
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if found >= 0 && cur.d > found {
			break
		}
		if chunk.LocalIsland(cur.c) == localIsland {
			found = cur.d
			tiles = append(tiles, cur.c)
			continue
		}
		for _, n := range Cardinals(cur.c) {
			if visited[n] {
				continue
			}
			visited[n] = true
			queue = append(queue, frame{n, cur.d + 1})
		}
	}
	return found, tiles
}

// ufFind walks the union-find parent map to x's representative, grounded
// on the teacher's physics/broad.go uf_find.
func ufFind(parent map[Coord]Coord, x Coord) Coord {
	p, ok := parent[x]
	if !ok {
		return x
	}
	if p == x {
		return x
	}
	root := ufFind(parent, p)
	parent[x] = root
	return root
}

// ufUnion merges x and y's components, grounded on the teacher's
// physics/broad.go uf_union.
func ufUnion(parent map[Coord]Coord, x, y Coord) {
	rx, ry := ufFind(parent, x), ufFind(parent, y)
	if rx != ry {
		parent[rx] = ry
	}
}

// AssignIslands recomputes every tile's connected-component id within
// this chunk from static passability: two 4-connected tiles join when
// neither is CostImpassable (blockers and faction occupancy are not
// considered), and each impassable tile gets an id of its own. The same
// chunk-local id is written via both chunk.SetIsland and
// chunk.SetLocalIsland; components are not merged across chunk borders.
// This is the bookkeeping pass the distilled spec assumes already ran
// before §4.8's island-recovery operations are asked to use
// islands/local_islands; here it is an explicit, callable step, run
// whenever a chunk's cost_base changes.
func AssignIslands(chunk Chunk) {
	parent := make(map[Coord]Coord)
	for r := 0; r < FieldRes.R; r++ {
		for c := 0; c < FieldRes.C; c++ {
			here := Coord{R: r, C: c}
			parent[here] = here
			if chunk.CostBase(here) == CostImpassable {
				continue
			}
			for _, n := range Cardinals(here) {
				if chunk.CostBase(n) == CostImpassable {
					continue
				}
				ufUnion(parent, here, n)
			}
		}
	}

	roots := make(map[Coord]uint16)
	var next uint16
	for r := 0; r < FieldRes.R; r++ {
		for c := 0; c < FieldRes.C; c++ {
			here := Coord{R: r, C: c}
			root := ufFind(parent, here)
			id, ok := roots[root]
			if !ok {
				id = next
				roots[root] = id
				next++
			}
			chunk.SetLocalIsland(here, id)
			chunk.SetIsland(here, id)
		}
	}
}
