// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package navtest provides in-memory fakes of the environment queries nav
// consumes read-only (§6): a mutable Chunk, a FactionRelations table, and
// a PositionQuery over a fixed entity list. Production code supplies its
// own implementations backed by the navigation private state and the
// position service; these fakes exist only so nav's own tests don't need
// a real engine behind them.
package navtest

import (
	"github.com/galvanized/permafrost/math/lin"
	"github.com/galvanized/permafrost/nav"
	"github.com/galvanized/permafrost/nav/gen"
)

// Chunk is a fully in-memory nav.Chunk backed by plain slices.
type Chunk struct {
	costBase     [][]uint8
	blockers     [][]uint8
	factions     [][][]bool
	islands      [][]uint16
	localIslands [][]uint16
	portals      []*nav.Portal
}

// NewChunk returns a Chunk with every tile passable (cost 1, no
// blockers, no faction occupancy) sized to nav.FieldRes.
func NewChunk() *Chunk {
	c := &Chunk{}
	c.costBase = make([][]uint8, nav.FieldRes.R)
	c.blockers = make([][]uint8, nav.FieldRes.R)
	c.islands = make([][]uint16, nav.FieldRes.R)
	c.localIslands = make([][]uint16, nav.FieldRes.R)
	c.factions = make([][][]bool, nav.FieldRes.R)
	for r := 0; r < nav.FieldRes.R; r++ {
		c.costBase[r] = make([]uint8, nav.FieldRes.C)
		c.blockers[r] = make([]uint8, nav.FieldRes.C)
		c.islands[r] = make([]uint16, nav.FieldRes.C)
		c.localIslands[r] = make([]uint16, nav.FieldRes.C)
		c.factions[r] = make([][]bool, nav.FieldRes.C)
		for col := 0; col < nav.FieldRes.C; col++ {
			c.costBase[r][col] = 1
			c.factions[r][col] = make([]bool, 32)
		}
	}
	return c
}

// NewChunkFromLayout builds a Chunk from a passable/impassable grid as
// returned by nav/gen, sized rows x cols (must match nav.FieldRes).
func NewChunkFromLayout(layout [][]bool) *Chunk {
	c := NewChunk()
	for r, row := range layout {
		for col, open := range row {
			if !open {
				c.costBase[r][col] = nav.CostImpassable
			}
		}
	}
	return c
}

// NewMazeChunk is a convenience wrapper combining gen.MazeLayout with
// NewChunkFromLayout, seeded for reproducibility.
func NewMazeChunk(seed int64) *Chunk {
	return NewChunkFromLayout(gen.MazeLayout(nav.FieldRes.R, nav.FieldRes.C, seed))
}

func (c *Chunk) CostBase(t nav.Coord) uint8 { return c.costBase[t.R][t.C] }
func (c *Chunk) Blockers(t nav.Coord) uint8 { return c.blockers[t.R][t.C] }
func (c *Chunk) FactionPresent(t nav.Coord, f nav.FactionID) bool {
	if f < 0 || int(f) >= len(c.factions[t.R][t.C]) {
		return false
	}
	return c.factions[t.R][t.C][f]
}
func (c *Chunk) Island(t nav.Coord) uint16             { return c.islands[t.R][t.C] }
func (c *Chunk) LocalIsland(t nav.Coord) uint16        { return c.localIslands[t.R][t.C] }
func (c *Chunk) SetIsland(t nav.Coord, id uint16)      { c.islands[t.R][t.C] = id }
func (c *Chunk) SetLocalIsland(t nav.Coord, id uint16) { c.localIslands[t.R][t.C] = id }
func (c *Chunk) Portals() []*nav.Portal                { return c.portals }

// SetImpassable marks t as CostImpassable.
func (c *Chunk) SetImpassable(t nav.Coord) { c.costBase[t.R][t.C] = nav.CostImpassable }

// SetBlockers sets t's blocker count.
func (c *Chunk) SetBlockers(t nav.Coord, count uint8) { c.blockers[t.R][t.C] = count }

// SetFaction sets whether faction f is present at t.
func (c *Chunk) SetFaction(t nav.Coord, f nav.FactionID, present bool) {
	c.factions[t.R][t.C][f] = present
}

// AddPortal appends p to the chunk's portal list.
func (c *Chunk) AddPortal(p *nav.Portal) { c.portals = append(c.portals, p) }

// Relations is a fixed faction-enemy table implementing nav.FactionRelations.
type Relations struct {
	enemies map[int][]int
}

// NewRelations builds a Relations table from a faction -> enemies map.
func NewRelations(enemies map[int][]int) *Relations {
	return &Relations{enemies: enemies}
}

// Enemies implements nav.FactionRelations.
func (r *Relations) Enemies(faction int) []int { return r.enemies[faction] }

// RecordingScheduler implements nav.Scheduler by running the job inline
// and counting how many times it was asked to.
type RecordingScheduler struct {
	Runs int
}

// RunLargeStack implements nav.Scheduler.
func (s *RecordingScheduler) RunLargeStack(fn func()) {
	s.Runs++
	fn()
}

// Fog is a fixed-set implementation of nav.FogOfWar: an entity is visible
// to a faction only if its uid appears in the faction's visible set.
type Fog struct {
	Visibility map[nav.FactionID]map[uint32]bool
}

// Visible implements nav.FogOfWar.
func (f *Fog) Visible(faction nav.FactionID, pos nav.Entity) bool {
	if f.Visibility == nil {
		return false
	}
	return f.Visibility[faction][pos.UID]
}

// Positions is a fixed-list implementation of nav.PositionQuery.
type Positions struct {
	Ents []nav.Entity
}

// EntsInRect implements nav.PositionQuery.
func (p *Positions) EntsInRect(min, max lin.V2) []nav.Entity {
	var out []nav.Entity
	for _, e := range p.Ents {
		if e.Pos.X >= min.X && e.Pos.X <= max.X && e.Pos.Z >= min.Y && e.Pos.Z <= max.Y {
			out = append(out, e)
		}
	}
	return out
}
