// Copyright © 2018 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package nav

import "container/heap"

// frontierEntry is one pending tile in the priority frontier, weighted by
// its integration cost so far.
type frontierEntry struct {
	coord    Coord
	priority uint32
}

// frontierHeap is a container/heap.Interface over frontierEntry, lowest
// priority first.
type frontierHeap []frontierEntry

func (h frontierHeap) Len() int            { return len(h) }
func (h frontierHeap) Less(i, j int) bool  { return h[i].priority < h[j].priority }
func (h frontierHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *frontierHeap) Push(x interface{}) { *h = append(*h, x.(frontierEntry)) }
func (h *frontierHeap) Pop() interface{} {
	old := *h
	n := len(old)
	entry := old[n-1]
	*h = old[:n-1]
	return entry
}

// priorityFrontier is the cost-ordered work queue the integration builder
// relaxes tiles from. Contains does the linear scan the spec allows in
// place of a decrease-key heap, since frontiers stay small relative to a
// chunk's tile count.
type priorityFrontier struct {
	h frontierHeap
}

// newPriorityFrontier returns an empty frontier.
func newPriorityFrontier() *priorityFrontier {
	f := &priorityFrontier{h: frontierHeap{}}
	heap.Init(&f.h)
	return f
}

// Push inserts coord with the given priority.
func (f *priorityFrontier) Push(coord Coord, priority uint32) {
	heap.Push(&f.h, frontierEntry{coord: coord, priority: priority})
}

// Pop removes and returns the lowest-priority entry. ok is false if the
// frontier is empty.
func (f *priorityFrontier) Pop() (coord Coord, ok bool) {
	if f.h.Len() == 0 {
		return Coord{}, false
	}
	entry := heap.Pop(&f.h).(frontierEntry)
	return entry.coord, true
}

// Len reports the number of pending entries.
func (f *priorityFrontier) Len() int { return f.h.Len() }

// Contains does a linear scan for coord, used to avoid enqueuing a tile
// that is already pending, whatever priority it was pushed with.
func (f *priorityFrontier) Contains(coord Coord) bool {
	for _, e := range f.h {
		if e.coord == coord {
			return true
		}
	}
	return false
}
