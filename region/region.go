// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package region is a named spatial index over the navigation tile grid:
// circular and rectangular zones track which entities currently fall
// inside them and emit entered/exited events once per tick as entities
// move.
//
// Package region is provided as part of the permafrost real-time-strategy
// engine core.
package region

import (
	"errors"
	"sort"

	"github.com/galvanized/permafrost/math/lin"
)

// ErrNameConflict is returned by AddCircle/AddRectangle when name is
// already in use.
var ErrNameConflict = errors.New("region: name already exists")

// Abox is an axis-aligned bounding box in world XZ space, used for the
// chunk-bucket intersection test.
type Abox struct {
	Sx, Sz float64 // smallest point.
	Lx, Lz float64 // largest point.
}

// Overlaps reports whether a and b intersect. Touching along an edge
// doesn't count as overlapping.
func (a Abox) Overlaps(b Abox) bool {
	return a.Lx > b.Sx && a.Sx < b.Lx && a.Lz > b.Sz && a.Sz < b.Lz
}

// Shape is a region's geometry: containment test plus a bounding box used
// to find which chunk buckets the region belongs in.
type Shape interface {
	Contains(p lin.V2) bool
	AABB() Abox
}

// Circle is a region shape with a center and radius.
type Circle struct {
	Pos    lin.V2
	Radius float64
}

// Contains implements Shape.
func (c Circle) Contains(p lin.V2) bool {
	return c.Pos.DistSqr(&p) <= c.Radius*c.Radius
}

// AABB implements Shape.
func (c Circle) AABB() Abox {
	return Abox{
		Sx: c.Pos.X - c.Radius, Sz: c.Pos.Y - c.Radius,
		Lx: c.Pos.X + c.Radius, Lz: c.Pos.Y + c.Radius,
	}
}

// Rectangle is a region shape centered at Pos with full side lengths
// XLen/ZLen, so it extends XLen/2 and ZLen/2 either side of Pos.
type Rectangle struct {
	Pos        lin.V2
	XLen, ZLen float64
}

// Contains implements Shape.
func (r Rectangle) Contains(p lin.V2) bool {
	dx, dz := p.X-r.Pos.X, p.Y-r.Pos.Y
	return dx >= -r.XLen/2 && dx <= r.XLen/2 && dz >= -r.ZLen/2 && dz <= r.ZLen/2
}

// AABB implements Shape.
func (r Rectangle) AABB() Abox {
	return Abox{
		Sx: r.Pos.X - r.XLen/2, Sz: r.Pos.Y - r.ZLen/2,
		Lx: r.Pos.X + r.XLen/2, Lz: r.Pos.Y + r.ZLen/2,
	}
}

// Region is a named zone tracking which entity uids currently fall
// inside it (curr) versus at the start of the current tick (prev).
type Region struct {
	Name  string
	Shape Shape

	curr map[uint32]struct{}
	prev map[uint32]struct{}

	// render is the debug-draw toggle (§6's Region_SetRender/GetRender):
	// a flag the out-of-scope rendering command queue reads to decide
	// whether to draw this region's outline. This package never reads it
	// itself.
	render bool
}

// Contains reports whether uid is currently a member.
func (r *Region) Contains(uid uint32) bool {
	_, ok := r.curr[uid]
	return ok
}

// Ents returns the region's current member uids, in no particular order.
func (r *Region) Ents() []uint32 {
	out := make([]uint32, 0, len(r.curr))
	for uid := range r.curr {
		out = append(out, uid)
	}
	return out
}

// sortedKeys returns m's keys in ascending order, satisfying the ordering
// guarantee of §5: entered/exited events within a phase are emitted in
// ascending uid order.
func sortedKeys(m map[uint32]struct{}) []uint32 {
	keys := make([]uint32, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
