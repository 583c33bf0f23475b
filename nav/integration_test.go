package nav

import (
	"testing"

	"github.com/galvanized/permafrost/nav/navtest"
)

func TestBuildIntegrationSeedsAtZero(t *testing.T) {
	FieldRes.R, FieldRes.C = 8, 8
	defer func() { FieldRes = defaultTestRes }()

	c := navtest.NewChunk()
	seed := Coord{R: 2, C: 2}
	integ := buildIntegration(c, []Coord{seed}, passableRelax(c, FactionNone, nil), nil)
	if integ.at(seed) != 0 {
		t.Fatalf("seed cost = %d, want 0", integ.at(seed))
	}
}

func TestBuildIntegrationUnreachableStaysInfinity(t *testing.T) {
	FieldRes.R, FieldRes.C = 8, 8
	defer func() { FieldRes = defaultTestRes }()

	c := navtest.NewChunk()
	// Wall off the seed completely.
	seed := Coord{R: 4, C: 4}
	for _, n := range Cardinals(seed) {
		c.SetImpassable(n)
	}
	integ := buildIntegration(c, []Coord{seed}, passableRelax(c, FactionNone, nil), nil)
	if integ.at(Coord{R: 0, C: 0}) != Infinity {
		t.Fatalf("expected unreachable tile to stay at Infinity, got %d", integ.at(Coord{R: 0, C: 0}))
	}
}

func TestBuildIntegrationEmptySeedsIsNotAnError(t *testing.T) {
	FieldRes.R, FieldRes.C = 8, 8
	defer func() { FieldRes = defaultTestRes }()

	c := navtest.NewChunk()
	integ := buildIntegration(c, nil, passableRelax(c, FactionNone, nil), nil)
	for r := 0; r < FieldRes.R; r++ {
		for col := 0; col < FieldRes.C; col++ {
			if integ.at(Coord{R: r, C: col}) != Infinity {
				t.Fatalf("expected all-Infinity field for an empty seed set")
			}
		}
	}
}

// BenchmarkBuildIntegration measures a single-seed sweep over a 64x64
// open chunk. Baseline on a dev machine: a few hundred microseconds.
func BenchmarkBuildIntegration(b *testing.B) {
	FieldRes.R, FieldRes.C = 64, 64
	defer func() { FieldRes = defaultTestRes }()
	c := navtest.NewChunk()
	seed := Coord{R: 32, C: 32}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buildIntegration(c, []Coord{seed}, passableRelax(c, FactionNone, nil), nil)
	}
}
