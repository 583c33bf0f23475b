// Copyright © 2024 Galvanized Logic Inc.

// Package navcfg loads the build-time constants and faction relation
// tables that the nav package treats as fixed: field resolution, the
// maximum faction count, and which factions are mutual enemies.
//
// Package navcfg is provided as part of the permafrost real-time-strategy
// engine core.
package navcfg

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// MaxFactions bounds the per-tile faction occupancy bitset. The spec calls
// this MAX_FACTIONS; it is a compile-time constant and is not read from
// the config document.
const MaxFactions = 16

// Resolution is a chunk's tile dimensions: FIELD_RES_R x FIELD_RES_C.
type Resolution struct {
	R int `yaml:"r"`
	C int `yaml:"c"`
}

// DefaultResolution matches the spec's "typical: 64x64".
func DefaultResolution() Resolution { return Resolution{R: 64, C: 64} }

// Config is the decoded shape of a navigation config document.
type Config struct {
	Resolution Resolution `yaml:"resolution"`

	// Enemies lists, for each faction id, the ids it is a mutual enemy
	// with. A faction not present here has no enemies.
	Enemies map[int][]int `yaml:"enemies"`

	// SearchBuffer pads a chunk's world bounds when gathering entities
	// for an ENEMIES field target (the spec's SEARCH_BUFFER).
	SearchBuffer float64 `yaml:"search_buffer"`
}

// defaultSearchBuffer matches the original engine's SEARCH_BUFFER constant.
const defaultSearchBuffer = 64.0

// Parse decodes a navigation config document. A zero-value Config (e.g.
// from empty input) is valid and yields the spec's defaults.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if len(data) == 0 {
		cfg.Resolution.R, cfg.Resolution.C = DefaultResolution().R, DefaultResolution().C
		cfg.SearchBuffer = defaultSearchBuffer
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("navcfg: parse: %w", err)
	}
	if cfg.Resolution.R <= 0 || cfg.Resolution.C <= 0 {
		cfg.Resolution.R, cfg.Resolution.C = DefaultResolution().R, DefaultResolution().C
	}
	if cfg.SearchBuffer <= 0 {
		cfg.SearchBuffer = defaultSearchBuffer
	}
	for id, enemies := range cfg.Enemies {
		if id < 0 || id >= MaxFactions {
			return nil, fmt.Errorf("navcfg: parse: faction id %d exceeds MaxFactions %d", id, MaxFactions)
		}
		for _, e := range enemies {
			if e < 0 || e >= MaxFactions {
				return nil, fmt.Errorf("navcfg: parse: faction id %d exceeds MaxFactions %d", e, MaxFactions)
			}
		}
	}
	return cfg, nil
}

// Relations is a queryable view of Config's enemy table, implementing
// nav.FactionRelations.
type Relations struct {
	enemies map[int][]int
}

// NewRelations builds a Relations lookup from a parsed Config.
func NewRelations(cfg *Config) *Relations {
	return &Relations{enemies: cfg.Enemies}
}

// Enemies returns the faction ids that are mutual enemies of faction.
func (r *Relations) Enemies(faction int) []int {
	if r == nil {
		return nil
	}
	return r.enemies[faction]
}
