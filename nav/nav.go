// Copyright © 2013-2015 Galvanized Logic Inc.
// Use is governed by a BSD-style license found in the LICENSE file.

package nav

import "log/slog"

// FlowFieldInit returns a fresh, all-NONE flow field for chunk. Callers
// pass this to FlowFieldUpdate on the first request for a (chunk, target)
// pair; later requests may reuse and overwrite the same value in place.
func FlowFieldInit(chunk ChunkCoord) *FlowField {
	return newFlowField(chunk, TileTarget{})
}

// FlowFieldUpdate recomputes flow in place for chunk against target,
// honoring faction's passability rules and layer as an opaque cache
// discriminant the caller threads through to FlowFieldID. A target with
// no reachable seed tiles (EmptyFrontier, §7) leaves every tile NONE and
// returns normally — this is not an error.
//
// sched runs the integration/flow-derivation work (the job large enough
// to warrant the scheduler guarantee of §5); a nil sched runs it inline
// via InlineScheduler. fog, if non-nil, is consulted by an EnemiesTarget
// to decide enemy visibility instead of trusting each Entity's FogVisible
// field.
func FlowFieldUpdate(chunk Chunk, chunkCoord ChunkCoord, faction FactionID, rel FactionRelations, layer uint8, target FieldTarget, pos PositionQuery, flow *FlowField, sched Scheduler, fog FogOfWar, log *slog.Logger) {
	if sched == nil {
		sched = InlineScheduler{}
	}
	flow.Chunk = chunkCoord
	flow.Target = target
	for r := range flow.Dirs {
		for c := range flow.Dirs[r] {
			flow.Dirs[r][c] = NONE
		}
	}

	seeds := initialFrontier(chunk, target, faction, rel, false, pos, fog)
	if len(seeds) == 0 {
		if log != nil {
			log.Warn("nav: FlowFieldUpdate found no reachable seed tiles", "chunk", chunkCoord, "faction", faction)
		}
		return
	}

	sched.RunLargeStack(func() {
		integ := buildIntegration(chunk, seeds, passableRelax(chunk, faction, rel), log)
		deriveFlow(integ, flow.Dirs)
		fixupPortalFlow(integ, flow.Dirs, target, chunk)
	})
}
