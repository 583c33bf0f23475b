package nav

import "github.com/galvanized/permafrost/nav/navcfg"

// CostImpassable is the sentinel base cost marking a tile no unit can
// ever cross, regardless of faction or blockers.
const CostImpassable uint8 = 255

// Infinity is the integration-field cost assigned to tiles that have not
// been reached by a cost propagation pass.
const Infinity = 1 << 30

// FactionID identifies a faction. FactionNone disables faction-aware
// passability rules entirely (any blocker fails the tile).
type FactionID int

// FactionNone requests faction-blind passability: any tile with a
// blocker present is impassable, regardless of who occupies it.
const FactionNone FactionID = -1

// Chunk is the read-only view nav has over one chunk's tile data. The
// navigation private state (owned by the embedding engine) is the writer;
// this package reads tile costs, blockers, faction occupancy, local
// islands and portals, and writes only islands back, via
// SetIsland/SetLocalIsland during AssignIslands.
type Chunk interface {
	// CostBase returns the tile's base movement cost, or CostImpassable.
	CostBase(Coord) uint8

	// Blockers returns the count of dynamic occluders on the tile.
	Blockers(Coord) uint8

	// FactionPresent reports whether any unit of the given faction
	// currently occupies the tile.
	FactionPresent(Coord, FactionID) bool

	// Island returns the tile's global connected-component id.
	Island(Coord) uint16
	// LocalIsland returns the tile's chunk-local connected-component id.
	LocalIsland(Coord) uint16

	// SetIsland/SetLocalIsland are written only by AssignIslands.
	SetIsland(Coord, uint16)
	SetLocalIsland(Coord, uint16)

	// Portals lists the chunk's immutable portals, in a stable order
	// matching the PORTALMASK bit positions used by FieldTarget.
	Portals() []*Portal
}

// Portal is a rectangular edge span joining two adjacent chunks.
// Portals are immutable for the lifetime of a chunk.
type Portal struct {
	// A and B are the two tile-coordinate endpoints of the span, within
	// the owning chunk.
	A, B Coord

	// Neighbor is the back-reference to the connected portal in the
	// adjacent chunk.
	Neighbor *Portal

	// OutwardCardinal is the cardinal direction (from this chunk's
	// perspective) that exits across this portal into the neighbor
	// chunk, used by the portal fixup pass (§4.7).
	OutwardCardinal FlowDir
}

// endpoints returns the portal's tile span as an inclusive [lo, hi] pair
// normalized so lo.R<=hi.R and lo.C<=hi.C, matching "rectangular edge
// span" (portals are one tile wide along the non-varying axis).
func (p *Portal) endpoints() (lo, hi Coord) {
	lo = Coord{R: min(p.A.R, p.B.R), C: min(p.A.C, p.B.C)}
	hi = Coord{R: max(p.A.R, p.B.R), C: max(p.A.C, p.B.C)}
	return lo, hi
}

// tiles enumerates every tile coordinate covered by the portal span.
func (p *Portal) tiles() []Coord {
	lo, hi := p.endpoints()
	out := make([]Coord, 0, (hi.R-lo.R+1)*(hi.C-lo.C+1))
	for r := lo.R; r <= hi.R; r++ {
		for c := lo.C; c <= hi.C; c++ {
			out = append(out, Coord{R: r, C: c})
		}
	}
	return out
}

// maxFactions re-exports navcfg's faction bound for callers that only
// import nav.
const maxFactions = navcfg.MaxFactions
