package nav

import (
	"testing"

	"github.com/galvanized/permafrost/nav/navtest"
)

// TestStraightLineFlow matches spec scenario 1: an open 8x8 chunk, target
// tile (4,4). Every non-target tile's flow should strictly decrease
// integration cost when followed, and the target itself is NONE.
func TestStraightLineFlow(t *testing.T) {
	FieldRes.R, FieldRes.C = 8, 8
	defer func() { FieldRes = defaultTestRes }()

	c := navtest.NewChunk()
	target := Coord{R: 4, C: 4}
	flow := FlowFieldInit(ChunkCoord{})
	FlowFieldUpdate(c, ChunkCoord{}, FactionNone, nil, 0, TileTarget{Tile: target}, nil, flow, nil, nil, nil)

	if flow.At(target) != NONE {
		t.Fatalf("target tile flow = %v, want NONE", flow.At(target))
	}

	integ := buildIntegration(c, []Coord{target}, passableRelax(c, FactionNone, nil), nil)
	for r := 0; r < FieldRes.R; r++ {
		for col := 0; col < FieldRes.C; col++ {
			here := Coord{R: r, C: col}
			if here == target {
				continue
			}
			d := flow.At(here)
			if d == NONE {
				t.Fatalf("tile %v has NONE flow but finite nonzero integration cost", here)
			}
			off := neighborOffsets[d]
			next := Coord{R: here.R + off.R, C: here.C + off.C}
			if integ.at(next) >= integ.at(here) {
				t.Fatalf("tile %v flow %v does not strictly decrease cost: %d -> %d", here, d, integ.at(here), integ.at(next))
			}
		}
	}
}

// TestWallDiversion matches spec scenario 2: a wall blocks row 4 columns
// 0..3; no tile's flow may point into the wall.
func TestWallDiversion(t *testing.T) {
	FieldRes.R, FieldRes.C = 8, 8
	defer func() { FieldRes = defaultTestRes }()

	c := navtest.NewChunk()
	wall := map[Coord]bool{}
	for col := 0; col <= 3; col++ {
		tile := Coord{R: 4, C: col}
		c.SetImpassable(tile)
		wall[tile] = true
	}
	target := Coord{R: 7, C: 0}
	flow := FlowFieldInit(ChunkCoord{})
	FlowFieldUpdate(c, ChunkCoord{}, FactionNone, nil, 0, TileTarget{Tile: target}, nil, flow, nil, nil, nil)

	for r := 0; r < FieldRes.R; r++ {
		for col := 0; col < FieldRes.C; col++ {
			here := Coord{R: r, C: col}
			d := flow.At(here)
			if d == NONE {
				continue
			}
			off := neighborOffsets[d]
			next := Coord{R: here.R + off.R, C: here.C + off.C}
			if wall[next] {
				t.Fatalf("tile %v flow %v points into the wall at %v", here, d, next)
			}
		}
	}
}

// TestDiagonalRequiresBothSharedCardinals covers invariant 4: a diagonal
// flow is only chosen when both shared cardinal neighbours are reachable.
func TestDiagonalRequiresBothSharedCardinals(t *testing.T) {
	FieldRes.R, FieldRes.C = 8, 8
	defer func() { FieldRes = defaultTestRes }()

	c := navtest.NewChunk()
	// Block the north neighbour of (3,3) so NE/NW are never admissible there.
	c.SetImpassable(Coord{R: 4, C: 3})
	target := Coord{R: 0, C: 0}
	integ := buildIntegration(c, []Coord{target}, passableRelax(c, FactionNone, nil), nil)
	dirs := make([][]FlowDir, FieldRes.R)
	for r := range dirs {
		dirs[r] = make([]FlowDir, FieldRes.C)
	}
	deriveFlow(integ, dirs)

	d := dirs[3][3]
	if shared, ok := sharedCardinals[d]; ok {
		for _, s := range shared {
			off := neighborOffsets[s]
			n := Coord{R: 3 + off.R, C: 3 + off.C}
			if integ.at(n) == Infinity {
				t.Fatalf("diagonal %v chosen at (3,3) but shared cardinal %v is unreachable", d, s)
			}
		}
	}
}

var defaultTestRes = FieldRes
