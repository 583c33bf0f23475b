package nav

import (
	"testing"

	"github.com/galvanized/permafrost/math/lin"
	"github.com/galvanized/permafrost/nav/navtest"
)

// TestLOSPaddingClearsNeighboursOfBlocked covers property 5: no tile is
// marked visible if any of its 8 neighbours is wavefront_blocked.
func TestLOSPaddingClearsNeighboursOfBlocked(t *testing.T) {
	FieldRes.R, FieldRes.C = 8, 8
	defer func() { FieldRes = defaultTestRes }()

	c := navtest.NewChunk()
	target := Coord{R: 0, C: 0}
	field := LOSFieldCreate(c, ChunkCoord{}, target, lin.V3{X: float64(target.C), Z: float64(target.R)}, nil, nil)

	for r := 0; r < FieldRes.R; r++ {
		for col := 0; col < FieldRes.C; col++ {
			if !field.Visible[r][col] {
				continue
			}
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					nr, nc := r+dr, col+dc
					if nr < 0 || nr >= FieldRes.R || nc < 0 || nc >= FieldRes.C {
						continue
					}
					if field.WavefrontBlocked[nr][nc] {
						t.Fatalf("tile (%d,%d) marked visible despite blocked neighbour (%d,%d)", r, col, nr, nc)
					}
				}
			}
		}
	}
}

// TestLOSCornerCastsShadow matches spec scenario 6: a corner blocker casts
// a wavefront-blocked shadow away from the target.
func TestLOSCornerCastsShadow(t *testing.T) {
	FieldRes.R, FieldRes.C = 8, 8
	defer func() { FieldRes = defaultTestRes }()

	c := navtest.NewChunk()
	// A 2x2 impassable block whose (3,3) tile is the corner facing the
	// target; (3,2) and (2,3) stay clear.
	corner := Coord{R: 3, C: 3}
	c.SetImpassable(corner)
	c.SetImpassable(Coord{R: 3, C: 4})
	c.SetImpassable(Coord{R: 4, C: 3})
	c.SetImpassable(Coord{R: 4, C: 4})
	target := Coord{R: 0, C: 0}

	field := LOSFieldCreate(c, ChunkCoord{}, target, lin.V3{X: float64(target.C), Z: float64(target.R)}, nil, nil)

	if !field.WavefrontBlocked[corner.R][corner.C] {
		t.Fatal("expected the corner tile itself to be wavefront_blocked")
	}
	far := Coord{R: 6, C: 6}
	if field.Visible[far.R][far.C] {
		t.Fatalf("expected tile beyond the corner's shadow to not be visible, got Visible=true")
	}
}

func TestWavefrontLineSymmetric(t *testing.T) {
	FieldRes.R, FieldRes.C = 16, 16
	defer func() { FieldRes = defaultTestRes }()

	target := lin.V3{X: 8, Z: 8}
	corners := []Coord{{R: 0, C: 0}, {R: 0, C: 15}, {R: 15, C: 0}, {R: 15, C: 15}}

	var counts []int
	for _, corner := range corners {
		field := newLOSField(ChunkCoord{})
		createWavefrontBlockedLine(field, corner, target)
		n := 0
		for r := range field.WavefrontBlocked {
			for _, v := range field.WavefrontBlocked[r] {
				if v {
					n++
				}
			}
		}
		counts = append(counts, n)
	}
	for i := 1; i < len(counts); i++ {
		if counts[i] != counts[0] {
			t.Fatalf("expected symmetric wavefront line lengths from all four corners, got %v", counts)
		}
	}
}
