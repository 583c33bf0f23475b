// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package region

import "math"

// chunkCoord identifies a chunk in the world's chunk grid.
type chunkCoord struct {
	R, C int
}

// buckets is the "poor man's 2-level tree" coarse spatial index (§4.9):
// for each chunk, the set of region names whose shape's AABB intersects
// that chunk's world-space bounds.
type buckets struct {
	tileSize float64 // world units per tile, used to convert Abox to chunk span.
	chunkRes int      // tiles per chunk edge.
	data     map[chunkCoord]map[string]struct{}
}

// newBuckets returns an empty bucket index. tileSize and chunkRes convert
// a region's world-space AABB into the chunk coordinates it spans.
func newBuckets(tileSize float64, chunkRes int) *buckets {
	return &buckets{tileSize: tileSize, chunkRes: chunkRes, data: make(map[chunkCoord]map[string]struct{})}
}

// chunkSpan returns the inclusive range of chunk coordinates a's AABB
// overlaps.
func (b *buckets) chunkSpan(a Abox) (lo, hi chunkCoord) {
	chunkWorld := b.tileSize * float64(b.chunkRes)
	lo = chunkCoord{R: int(floorDiv(a.Sz, chunkWorld)), C: int(floorDiv(a.Sx, chunkWorld))}
	hi = chunkCoord{R: int(floorDiv(a.Lz, chunkWorld)), C: int(floorDiv(a.Lx, chunkWorld))}
	return lo, hi
}

func floorDiv(v, d float64) float64 {
	return math.Floor(v / d)
}

// chunkAABB returns the world-space bounds of a single chunk, used for the
// AABB-overlap test against a region's shape bounds.
func (b *buckets) chunkAABB(cc chunkCoord) Abox {
	chunkWorld := b.tileSize * float64(b.chunkRes)
	return Abox{
		Sx: float64(cc.C) * chunkWorld, Sz: float64(cc.R) * chunkWorld,
		Lx: float64(cc.C+1) * chunkWorld, Lz: float64(cc.R+1) * chunkWorld,
	}
}

// insert adds name to every chunk bucket whose chunk AABB overlaps shape.
func (b *buckets) insert(name string, shape Shape) {
	lo, hi := b.chunkSpan(shape.AABB())
	shapeBox := shape.AABB()
	for r := lo.R; r <= hi.R; r++ {
		for c := lo.C; c <= hi.C; c++ {
			cc := chunkCoord{R: r, C: c}
			if !b.chunkAABB(cc).Overlaps(shapeBox) {
				continue
			}
			set, ok := b.data[cc]
			if !ok {
				set = make(map[string]struct{})
				b.data[cc] = set
			}
			set[name] = struct{}{}
		}
	}
}

// remove drops name from every chunk bucket whose chunk AABB overlaps
// shape, mirroring insert's span computation.
func (b *buckets) remove(name string, shape Shape) {
	lo, hi := b.chunkSpan(shape.AABB())
	for r := lo.R; r <= hi.R; r++ {
		for c := lo.C; c <= hi.C; c++ {
			cc := chunkCoord{R: r, C: c}
			if set, ok := b.data[cc]; ok {
				delete(set, name)
				if len(set) == 0 {
					delete(b.data, cc)
				}
			}
		}
	}
}

// namesAt returns the candidate region names whose bucket contains the
// chunk at world position (x, z) — the small candidate set AddRef and
// RemoveRef test for actual geometric containment.
func (b *buckets) namesAt(x, z float64) []string {
	chunkWorld := b.tileSize * float64(b.chunkRes)
	cc := chunkCoord{R: int(floorDiv(z, chunkWorld)), C: int(floorDiv(x, chunkWorld))}
	set, ok := b.data[cc]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(set))
	for n := range set {
		names = append(names, n)
	}
	return names
}
