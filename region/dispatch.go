// Copyright © 2014-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package region

import "sort"

// EventKind distinguishes ENTERED_REGION from EXITED_REGION.
type EventKind int

// Event kind values.
const (
	EventEntered EventKind = iota
	EventExited
)

// Observer is the listener interface for region membership transitions,
// generalized from the teacher's ai.BehaviourObserver notify-on-complete
// idiom: instead of being told a single behaviour completed, it is told
// an entity entered or exited a named region.
type Observer interface {
	Notify(kind EventKind, uid uint32, name string)
}

// notify dispatches a single event to the registered observer, if any.
func (s *Store) notify(kind EventKind, uid uint32, name string) {
	if s.obs != nil {
		s.obs.Notify(kind, uid, name)
	}
}

// Update runs the per-tick symmetric-difference pass (§4.9): for every
// dirty region, sort curr and prev, emit ENTERED_REGION for uids only in
// curr and EXITED_REGION for uids only in prev — all entries for a
// region before its exits, each phase in ascending uid order (§5a). After
// notification, prev becomes curr and the dirty set clears.
func (s *Store) Update() {
	for _, name := range sortedNames(s.dirty) {
		r, ok := s.regions[name]
		if !ok {
			continue
		}
		entered, exited := symmetricDiff(r.prev, r.curr)
		for _, uid := range entered {
			s.notify(EventEntered, uid, name)
		}
		for _, uid := range exited {
			s.notify(EventExited, uid, name)
		}
		prev := make(map[uint32]struct{}, len(r.curr))
		for uid := range r.curr {
			prev[uid] = struct{}{}
		}
		r.prev = prev
	}
	s.dirty = make(map[string]struct{})
}

// symmetricDiff returns, in ascending uid order, the uids present only in
// curr (entered) and only in prev (exited).
func symmetricDiff(prev, curr map[uint32]struct{}) (entered, exited []uint32) {
	for _, uid := range sortedKeys(curr) {
		if _, inPrev := prev[uid]; !inPrev {
			entered = append(entered, uid)
		}
	}
	for _, uid := range sortedKeys(prev) {
		if _, inCurr := curr[uid]; !inCurr {
			exited = append(exited, uid)
		}
	}
	return entered, exited
}

func sortedNames(m map[string]struct{}) []string {
	names := make([]string, 0, len(m))
	for n := range m {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
