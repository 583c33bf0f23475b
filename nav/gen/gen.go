// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package gen generates deterministic tile-cost layouts for tests: either
// an open floor plan or a Prim's-algorithm maze, matching a chunk's
// FIELD_RES_R x FIELD_RES_C resolution. It has no production callers —
// only nav/navtest's NewMazeChunk uses it to build fixture chunks without
// hand-writing per-test cost grids.
package gen

import "math/rand"

// allWalls and allFloors mirror the teacher's cell.isWall convention:
// start solid, carve floors.
const (
	allWalls  = true
	allFloors = false
)

// cell is one maze-generation grid cell.
type cell struct {
	r, c   int
	isWall bool
}

// MazeLayout returns an r x c grid of passable/impassable booleans
// (true = passable) carved by Randomized Prim's Algorithm, seeded for
// reproducibility. The minimum usable size is 5x5; smaller requests are
// returned as a fully open floor.
func MazeLayout(rows, cols int, seed int64) [][]bool {
	if rows < 5 || cols < 5 {
		return OpenLayout(rows, cols)
	}
	rnd := rand.New(rand.NewSource(seed))

	cells := make([][]*cell, rows)
	for r := range cells {
		cells[r] = make([]*cell, cols)
		for c := range cells[r] {
			cells[r][c] = &cell{r: r, c: c, isWall: allWalls}
		}
	}
	neighbours := func(x *cell) []*cell {
		var out []*cell
		if x.r > 0 {
			out = append(out, cells[x.r-1][x.c])
		}
		if x.r < rows-1 {
			out = append(out, cells[x.r+1][x.c])
		}
		if x.c > 0 {
			out = append(out, cells[x.r][x.c-1])
		}
		if x.c < cols-1 {
			out = append(out, cells[x.r][x.c+1])
		}
		return out
	}
	// link returns a neighbouring wall of x that connects back into the
	// carved maze via an opposite open cell, or nil if none does.
	link := func(wall *cell) *cell {
		for _, n := range neighbours(wall) {
			dr, dc := wall.r-n.r, wall.c-n.c
			or, oc := wall.r+dr, wall.c+dc
			if or < 0 || or >= rows || oc < 0 || oc >= cols {
				continue
			}
			opp := cells[or][oc]
			if !n.isWall && opp.isWall {
				return opp
			}
		}
		return nil
	}

	start := cells[1][1]
	start.isWall = allFloors
	walls := neighbours(start)

	for len(walls) > 0 {
		i := rnd.Intn(len(walls))
		wall := walls[i]
		if u := link(wall); u != nil {
			wall.isWall = allFloors
			u.isWall = allFloors
			walls = append(walls, neighbours(u)...)
		} else {
			walls = append(walls[:i], walls[i+1:]...)
		}
	}

	out := make([][]bool, rows)
	for r := range out {
		out[r] = make([]bool, cols)
		for c := range out[r] {
			out[r][c] = !cells[r][c].isWall
		}
	}
	return out
}

// OpenLayout returns an r x c grid with every tile passable.
func OpenLayout(rows, cols int) [][]bool {
	out := make([][]bool, rows)
	for r := range out {
		out[r] = make([]bool, cols)
		for c := range out[r] {
			out[r][c] = true
		}
	}
	return out
}
