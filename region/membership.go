// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package region

import (
	"log/slog"

	"github.com/galvanized/permafrost/math/lin"
)

// defaultTileSize and defaultChunkRes match nav's typical 64x64 chunk
// resolution at a nominal 1-world-unit tile, used when Store is
// constructed without explicit dimensions.
const (
	defaultTileSize = 1.0
	defaultChunkRes = 64
)

// Store holds every named region and the chunk-bucket index over them
// (§4.9). It is single-threaded: callers (the position service, the
// per-tick game loop) serialize their own access.
type Store struct {
	regions map[string]*Region
	buckets *buckets
	dirty   map[string]struct{}
	obs     Observer
	log     *slog.Logger

	entPos map[uint32]lin.V2 // last known position per uid, for RemoveEnt.
}

// NewStore returns an empty region store sized for a chunk grid with the
// given tile size (world units per tile) and chunk resolution (tiles per
// chunk edge).
func NewStore(tileSize float64, chunkRes int, log *slog.Logger) *Store {
	if tileSize <= 0 {
		tileSize = defaultTileSize
	}
	if chunkRes <= 0 {
		chunkRes = defaultChunkRes
	}
	return &Store{
		regions: make(map[string]*Region),
		buckets: newBuckets(tileSize, chunkRes),
		dirty:   make(map[string]struct{}),
		log:     log,
		entPos:  make(map[uint32]lin.V2),
	}
}

// SetObserver registers the single listener notified of ENTERED_REGION /
// EXITED_REGION events at the next Update. Pass nil to clear it.
func (s *Store) SetObserver(o Observer) { s.obs = o }

// AddCircle adds a circular region. Returns ErrNameConflict if name is
// already in use.
func (s *Store) AddCircle(name string, pos lin.V2, radius float64) error {
	return s.add(name, Circle{Pos: pos, Radius: radius})
}

// AddRectangle adds a rectangular region. Returns ErrNameConflict if name
// is already in use.
func (s *Store) AddRectangle(name string, pos lin.V2, xlen, zlen float64) error {
	return s.add(name, Rectangle{Pos: pos, XLen: xlen, ZLen: zlen})
}

func (s *Store) add(name string, shape Shape) error {
	if _, exists := s.regions[name]; exists {
		return ErrNameConflict
	}
	r := &Region{
		Name:  name,
		Shape: shape,
		curr:  make(map[uint32]struct{}),
		prev:  make(map[uint32]struct{}),
	}
	s.buckets.insert(name, shape)
	s.regions[name] = r
	s.updateEnts(r)
	if s.log != nil {
		s.log.Debug("region: added", "name", name)
	}
	return nil
}

// Remove deletes name, emitting EXITED_REGION synchronously for every
// current member before returning (§5c) — not deferred to the next
// Update.
func (s *Store) Remove(name string) {
	r, ok := s.regions[name]
	if !ok {
		return
	}
	for _, uid := range sortedKeys(r.curr) {
		s.notify(EventExited, uid, name)
	}
	s.buckets.remove(name, r.Shape)
	delete(s.regions, name)
	delete(s.dirty, name)
	if s.log != nil {
		s.log.Debug("region: removed", "name", name, "members_notified", len(r.curr))
	}
}

// SetPos moves a region to a new center. A delta below lin.Epsilon is a
// no-op (§5b: no events from a negligible move).
func (s *Store) SetPos(name string, pos lin.V2) bool {
	r, ok := s.regions[name]
	if !ok {
		return false
	}
	oldPos := shapePos(r.Shape)
	if oldPos.Dist(&pos) < lin.Epsilon {
		return true
	}
	s.buckets.remove(name, r.Shape)
	r.Shape = withPos(r.Shape, pos)
	s.buckets.insert(name, r.Shape)
	s.updateEnts(r)
	return true
}

// GetPos returns a region's current center and whether it exists.
func (s *Store) GetPos(name string) (lin.V2, bool) {
	r, ok := s.regions[name]
	if !ok {
		return lin.V2{}, false
	}
	return shapePos(r.Shape), true
}

// SetRender sets the named region's debug-draw toggle (Region_SetRender,
// §6). Returns false if name doesn't exist; this package never reads the
// flag itself, it only stores it for the out-of-scope renderer to query.
func (s *Store) SetRender(name string, on bool) bool {
	r, ok := s.regions[name]
	if !ok {
		return false
	}
	r.render = on
	return true
}

// GetRender returns the named region's debug-draw toggle and whether name
// exists (Region_GetRender, §6).
func (s *Store) GetRender(name string) (bool, bool) {
	r, ok := s.regions[name]
	if !ok {
		return false, false
	}
	return r.render, true
}

// GetEnts returns the uids currently inside the named region (Region_GetEnts,
// §6), in no particular order. Returns nil if name doesn't exist.
func (s *Store) GetEnts(name string) []uint32 {
	r, ok := s.regions[name]
	if !ok {
		return nil
	}
	return r.Ents()
}

// ContainsEnt reports whether uid currently falls inside the named region
// (Region_ContainsEnt, §6). Returns false if name doesn't exist.
func (s *Store) ContainsEnt(name string, uid uint32) bool {
	r, ok := s.regions[name]
	if !ok {
		return false
	}
	return r.Contains(uid)
}

func shapePos(sh Shape) lin.V2 {
	switch t := sh.(type) {
	case Circle:
		return t.Pos
	case Rectangle:
		return t.Pos
	}
	return lin.V2{}
}

func withPos(sh Shape, pos lin.V2) Shape {
	switch t := sh.(type) {
	case Circle:
		t.Pos = pos
		return t
	case Rectangle:
		t.Pos = pos
		return t
	}
	return sh
}

// updateEnts recomputes a region's curr set from scratch by testing every
// entity's last known position (entPos) against its shape — used only when the region
// itself is newly added or moved, since AddRef/RemoveRef maintain curr
// incrementally for unmoved regions as entities move.
func (s *Store) updateEnts(r *Region) {
	curr := make(map[uint32]struct{})
	for uid, pos := range s.entPos {
		if r.Shape.Contains(pos) {
			curr[uid] = struct{}{}
		}
	}
	if !setsEqual(r.curr, curr) {
		s.dirty[r.Name] = struct{}{}
	}
	r.curr = curr
}

// AddRef is called by the position service when uid moves to newpos. It
// looks up the small candidate set of regions whose bucket contains
// newpos's chunk, tests actual geometric containment, and adds uid to
// curr for every region it now falls inside.
func (s *Store) AddRef(uid uint32, newpos lin.V2) {
	s.entPos[uid] = newpos
	for _, name := range s.buckets.namesAt(newpos.X, newpos.Y) {
		r, ok := s.regions[name]
		if !ok || !r.Shape.Contains(newpos) {
			continue
		}
		if _, already := r.curr[uid]; !already {
			r.curr[uid] = struct{}{}
			s.dirty[name] = struct{}{}
		}
	}
}

// RemoveRef is called by the position service when uid leaves oldpos. It
// removes uid from curr for every region whose bucket contains oldpos's
// chunk.
func (s *Store) RemoveRef(uid uint32, oldpos lin.V2) {
	for _, name := range s.buckets.namesAt(oldpos.X, oldpos.Y) {
		r, ok := s.regions[name]
		if !ok {
			continue
		}
		if _, present := r.curr[uid]; present {
			delete(r.curr, uid)
			s.dirty[name] = struct{}{}
		}
	}
}

// RemoveEnt forgets uid entirely, removing it from every region's curr
// set regardless of bucket membership (used when an entity is destroyed
// and its last position may already be stale).
func (s *Store) RemoveEnt(uid uint32) {
	delete(s.entPos, uid)
	for name, r := range s.regions {
		if _, present := r.curr[uid]; present {
			delete(r.curr, uid)
			s.dirty[name] = struct{}{}
		}
	}
}

func setsEqual(a, b map[uint32]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}
