package nav

import (
	"testing"

	"github.com/galvanized/permafrost/math/lin"
	"github.com/galvanized/permafrost/nav/navtest"
)

// TestFlowFieldUpdateUsesScheduler confirms a supplied Scheduler runs the
// integration/flow-derivation job, rather than it always executing inline
// via the implicit InlineScheduler fallback.
func TestFlowFieldUpdateUsesScheduler(t *testing.T) {
	FieldRes.R, FieldRes.C = 8, 8
	defer func() { FieldRes = defaultTestRes }()

	c := navtest.NewChunk()
	sched := &navtest.RecordingScheduler{}
	flow := FlowFieldInit(ChunkCoord{})
	FlowFieldUpdate(c, ChunkCoord{}, FactionNone, nil, 0, TileTarget{Tile: Coord{R: 4, C: 4}}, nil, flow, sched, nil, nil)

	if sched.Runs != 1 {
		t.Fatalf("expected the scheduler to run exactly once, got %d", sched.Runs)
	}
	if flow.At(Coord{R: 0, C: 0}) == NONE {
		t.Fatal("expected flow to be derived despite running through the scheduler")
	}
}

// TestEnemiesFrontierUsesFogOfWar confirms a supplied FogOfWar overrides
// Entity.FogVisible when selecting which enemies seed an EnemiesTarget:
// an entity with FogVisible true is still excluded when the FogOfWar
// service says it isn't visible to the requesting faction.
func TestEnemiesFrontierUsesFogOfWar(t *testing.T) {
	FieldRes.R, FieldRes.C = 8, 8
	defer func() { FieldRes = defaultTestRes }()

	c := navtest.NewChunk()
	rel := navtest.NewRelations(map[int][]int{0: {1}})
	ents := &navtest.Positions{Ents: []Entity{
		{UID: 1, Faction: 1, Pos: lin.V3{X: 2, Y: 0, Z: 2}, Radius: 1, Combat: true, FogVisible: true},
	}}
	target := EnemiesTarget{Faction: 0, Chunk: ChunkCoord{}, MapPos: lin.V3{X: 2, Y: 0, Z: 2}}

	seeds := initialFrontier(c, target, 0, rel, false, ents, nil)
	if len(seeds) == 0 {
		t.Fatal("expected seeds with no FogOfWar service (falls back to Entity.FogVisible)")
	}

	fog := &navtest.Fog{Visibility: map[FactionID]map[uint32]bool{0: {}}}
	seeds = initialFrontier(c, target, 0, rel, false, ents, fog)
	if len(seeds) != 0 {
		t.Fatalf("expected no seeds once FogOfWar reports the enemy invisible, got %v", seeds)
	}
}
