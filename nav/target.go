// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package nav

import "github.com/galvanized/permafrost/math/lin"

// FieldTarget is the tagged union of everything a FlowField or LOSField can
// be computed against: a single tile, a portal, a bitset of a chunk's
// portals, or the footprint of a faction's enemies.
type FieldTarget interface {
	isFieldTarget()
}

// TileTarget seeds the frontier at a single tile.
type TileTarget struct {
	Tile Coord
}

// PortalTarget seeds the frontier across an entire portal span.
type PortalTarget struct {
	Portal *Portal
}

// PortalMaskTarget seeds the frontier across the union of several portals,
// selected by their bit position in the owning chunk's Portals() order.
type PortalMaskTarget struct {
	Mask uint64
}

// EnemiesTarget seeds the frontier at the rasterized footprint of every
// visible enemy entity of Faction found within Chunk's bounds padded by
// the search buffer. MapPos is carried with the target but is not
// consulted when selecting enemies.
type EnemiesTarget struct {
	Faction FactionID
	Chunk   ChunkCoord
	MapPos  lin.V3
}

func (TileTarget) isFieldTarget()       {}
func (PortalTarget) isFieldTarget()     {}
func (PortalMaskTarget) isFieldTarget() {}
func (EnemiesTarget) isFieldTarget()    {}

// searchBuffer pads a chunk's world bounds when gathering entities for an
// EnemiesTarget. Overridable via navcfg.Config.SearchBuffer; this is the
// package-level fallback used when no config was loaded.
var searchBuffer = 64.0

// Entity is the subset of position-service data the ENEMIES frontier needs
// per candidate: its map position, footprint, and faction.
type Entity struct {
	UID     uint32
	Faction FactionID
	Pos     lin.V3

	// Radius > 0 means a circular footprint. Otherwise the OBB fields
	// describe an axis-aligned-in-local-space oriented bounding box.
	Radius     float64
	HalfX      float64
	HalfZ      float64
	ForwardX   float64
	ForwardZ   float64
	Combat     bool // whether this entity can be targeted in combat.
	FogVisible bool
}

// PositionQuery is the read-only position-service view the ENEMIES target
// needs: entities within a world-space rectangle around a chunk.
type PositionQuery interface {
	EntsInRect(chunkMin, chunkMax lin.V2) []Entity
}

// initialFrontier builds target's seed tiles per §4.7: a TileTarget yields
// itself if passable (or unconditionally when ignoreBlockers), a
// PortalTarget/PortalMaskTarget yields every passable tile along the
// relevant portal spans, and an EnemiesTarget rasterizes enemy footprints.
func initialFrontier(chunk Chunk, target FieldTarget, faction FactionID, rel FactionRelations, ignoreBlockers bool, pos PositionQuery, fog FogOfWar) []Coord {
	switch t := target.(type) {
	case TileTarget:
		if ignoreBlockers || Passable(chunk, t.Tile, faction, rel) {
			return []Coord{t.Tile}
		}
		return nil

	case PortalTarget:
		return portalFrontier(chunk, t.Portal, faction, rel, ignoreBlockers)

	case PortalMaskTarget:
		var seeds []Coord
		seen := make(map[Coord]struct{})
		for i, p := range chunk.Portals() {
			if t.Mask&(1<<uint(i)) == 0 {
				continue
			}
			for _, c := range portalFrontier(chunk, p, faction, rel, ignoreBlockers) {
				if _, ok := seen[c]; ok {
					continue
				}
				seen[c] = struct{}{}
				seeds = append(seeds, c)
			}
		}
		return seeds

	case EnemiesTarget:
		return enemiesFrontier(chunk, t, rel, pos, fog)
	}
	return nil
}

// portalFrontier collects every passable (or unconditionally admitted)
// tile along a portal's span.
func portalFrontier(chunk Chunk, p *Portal, faction FactionID, rel FactionRelations, ignoreBlockers bool) []Coord {
	var seeds []Coord
	for _, c := range p.tiles() {
		if ignoreBlockers || Passable(chunk, c, faction, rel) {
			seeds = append(seeds, c)
		}
	}
	return seeds
}

// enemiesFrontier runs the spatial query for enemy entities within t's
// chunk expanded by the search buffer, filters to combatable/fog-visible
// enemies of t.Faction, and rasterizes each survivor's footprint into
// unique tile coordinates. When fog is non-nil it is the authority on
// visibility (Entity.FogVisible is then only the fallback used by callers
// that have no live FogOfWar service, e.g. navtest's fakes).
func enemiesFrontier(chunk Chunk, t EnemiesTarget, rel FactionRelations, pos PositionQuery, fog FogOfWar) []Coord {
	if pos == nil {
		return nil
	}
	enemies := enemyMask(rel, t.Faction)

	chunkMin := lin.V2{X: float64(t.Chunk.C*FieldRes.C) - searchBuffer, Y: float64(t.Chunk.R*FieldRes.R) - searchBuffer}
	chunkMax := lin.V2{X: float64((t.Chunk.C+1)*FieldRes.C) + searchBuffer, Y: float64((t.Chunk.R+1)*FieldRes.R) + searchBuffer}

	seen := make(map[Coord]struct{})
	var seeds []Coord
	for _, e := range pos.EntsInRect(chunkMin, chunkMax) {
		visible := e.FogVisible
		if fog != nil {
			visible = fog.Visible(t.Faction, e)
		}
		if !e.Combat || !visible {
			continue
		}
		if e.Faction < 0 || int(e.Faction) >= maxFactions || enemies&(1<<uint(e.Faction)) == 0 {
			continue
		}
		local := e.Pos
		local.X -= float64(t.Chunk.C * FieldRes.C)
		local.Z -= float64(t.Chunk.R * FieldRes.R)
		var tiles []Coord
		if e.Radius > 0 {
			tiles = rasterizeCircleFootprint(local, e.Radius)
		} else {
			tiles = rasterizeOBBFootprint(local, e.HalfX, e.HalfZ, e.ForwardX, e.ForwardZ)
		}
		for _, c := range tiles {
			if !c.InBounds() {
				continue
			}
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			seeds = append(seeds, c)
		}
	}
	return seeds
}

// worldToTile converts an XZ position, already expressed relative to the
// owning chunk's origin, to the tile coordinate whose center is closest.
func worldToTile(x, z float64) Coord {
	return Coord{R: int(lin.Round(z, 0)), C: int(lin.Round(x, 0))}
}

// rasterizeCircleFootprint marks every tile whose center falls inside a
// circle of the given radius centered at pos, grounded on field.c's
// enemy_targets_in_chunk tile-coverage loop.
func rasterizeCircleFootprint(pos lin.V3, radius float64) []Coord {
	r := int(radius) + 1
	center := worldToTile(pos.X, pos.Z)
	var tiles []Coord
	for dr := -r; dr <= r; dr++ {
		for dc := -r; dc <= r; dc++ {
			tx, tz := float64(center.C+dc), float64(center.R+dr)
			dx, dz := tx-pos.X, tz-pos.Z
			if dx*dx+dz*dz <= radius*radius {
				tiles = append(tiles, Coord{R: center.R + dr, C: center.C + dc})
			}
		}
	}
	return tiles
}

// rasterizeOBBFootprint marks every tile whose center falls inside the
// oriented bounding box described by half-extents (halfX, halfZ) and
// forward vector (fx, fz), centered at pos.
func rasterizeOBBFootprint(pos lin.V3, halfX, halfZ, fx, fz float64) []Coord {
	if fx*fx+fz*fz < lin.Epsilon {
		fx, fz = 0, 1
	}
	fwd := lin.V2{}
	fwd.Unit(&lin.V2{X: fx, Y: fz})
	right := lin.V2{X: -fwd.Y, Y: fwd.X}

	extent := halfX
	if halfZ > extent {
		extent = halfZ
	}
	r := int(extent) + 1
	center := worldToTile(pos.X, pos.Z)
	var tiles []Coord
	for dr := -r; dr <= r; dr++ {
		for dc := -r; dc <= r; dc++ {
			tx, tz := float64(center.C+dc), float64(center.R+dr)
			dx, dz := tx-pos.X, tz-pos.Z
			along := dx*right.X + dz*right.Y
			fwdComp := dx*fwd.X + dz*fwd.Y
			if along >= -halfX && along <= halfX && fwdComp >= -halfZ && fwdComp <= halfZ {
				tiles = append(tiles, Coord{R: center.R + dr, C: center.C + dc})
			}
		}
	}
	return tiles
}

// fixupPortalFlow rewrites the flow for portal/portalmask targets per
// §4.7: every cost-0 seed tile receives the cardinal direction pointing
// out of the chunk towards the connected portal, instead of NONE.
func fixupPortalFlow(integ *integrationField, dirs [][]FlowDir, target FieldTarget, chunk Chunk) {
	var portals []*Portal
	switch t := target.(type) {
	case PortalTarget:
		portals = []*Portal{t.Portal}
	case PortalMaskTarget:
		for i, p := range chunk.Portals() {
			if t.Mask&(1<<uint(i)) != 0 {
				portals = append(portals, p)
			}
		}
	default:
		return
	}
	for _, p := range portals {
		for _, c := range p.tiles() {
			if integ.at(c) == 0 {
				dirs[c.R][c.C] = p.OutwardCardinal
			}
		}
	}
}
