// Copyright © 2014-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

// Package regiontest provides an in-memory region.Observer that records
// every dispatched event, for callers wiring region.Store into a larger
// engine's event bus. region's own tests use a recorder of their own.
package regiontest

import "github.com/galvanized/permafrost/region"

// Event is one recorded ENTERED_REGION/EXITED_REGION notification.
type Event struct {
	Kind region.EventKind
	UID  uint32
	Name string
}

// Recorder implements region.Observer by appending every event it sees.
type Recorder struct {
	Events []Event
}

// Notify implements region.Observer.
func (r *Recorder) Notify(kind region.EventKind, uid uint32, name string) {
	r.Events = append(r.Events, Event{Kind: kind, UID: uid, Name: name})
}

// Reset clears recorded events, keeping the underlying slice's capacity.
func (r *Recorder) Reset() { r.Events = r.Events[:0] }
