package nav

import (
	"testing"

	"github.com/galvanized/permafrost/nav/navtest"
)

func TestPassableImpassableBaseCostAlwaysFails(t *testing.T) {
	c := navtest.NewChunk()
	tile := Coord{R: 2, C: 2}
	c.SetImpassable(tile)
	if Passable(c, tile, FactionNone, nil) {
		t.Fatal("expected impassable base cost to fail regardless of faction")
	}
	if Passable(c, tile, FactionID(1), nil) {
		t.Fatal("expected impassable base cost to fail regardless of faction")
	}
}

func TestPassableFactionNoneAnyBlockerFails(t *testing.T) {
	c := navtest.NewChunk()
	tile := Coord{R: 1, C: 1}
	c.SetBlockers(tile, 1)
	if Passable(c, tile, FactionNone, nil) {
		t.Fatal("expected any blocker to fail with FactionNone")
	}
}

func TestPassableEnemyOnlyTileIsPassable(t *testing.T) {
	c := navtest.NewChunk()
	tile := Coord{R: 3, C: 3}
	c.SetFaction(tile, FactionID(2), true)
	c.SetBlockers(tile, 3)
	rel := navtest.NewRelations(map[int][]int{0: {2}})

	if !Passable(c, tile, FactionID(0), rel) {
		t.Fatal("expected tile occupied only by enemies to be passable despite blockers")
	}
}

func TestPassableMixedOccupancyFallsBackToBlockers(t *testing.T) {
	c := navtest.NewChunk()
	tile := Coord{R: 3, C: 3}
	c.SetFaction(tile, FactionID(2), true) // enemy
	c.SetFaction(tile, FactionID(5), true) // not an enemy
	rel := navtest.NewRelations(map[int][]int{0: {2}})

	if !Passable(c, tile, FactionID(0), rel) {
		t.Fatal("expected no blockers present to still be passable")
	}
	c.SetBlockers(tile, 1)
	if Passable(c, tile, FactionID(0), rel) {
		t.Fatal("expected mixed faction occupancy with a blocker to fail")
	}
}
