package navcfg

import "testing"

func TestParseEmptyYieldsDefaults(t *testing.T) {
	cfg, err := Parse(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Resolution != DefaultResolution() {
		t.Fatalf("resolution = %+v, want default", cfg.Resolution)
	}
	if cfg.SearchBuffer != defaultSearchBuffer {
		t.Fatalf("search buffer = %v, want %v", cfg.SearchBuffer, defaultSearchBuffer)
	}
}

func TestParseRejectsFactionOutOfRange(t *testing.T) {
	doc := []byte("enemies:\n  0: [99]\n")
	if _, err := Parse(doc); err == nil {
		t.Fatal("expected an error for a faction id beyond MaxFactions")
	}
}

func TestParseResolutionAndEnemies(t *testing.T) {
	doc := []byte("resolution:\n  r: 32\n  c: 32\nenemies:\n  0: [1, 2]\n  1: [0]\n")
	cfg, err := Parse(doc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Resolution.R != 32 || cfg.Resolution.C != 32 {
		t.Fatalf("resolution = %+v, want 32x32", cfg.Resolution)
	}
	rel := NewRelations(cfg)
	enemies := rel.Enemies(0)
	if len(enemies) != 2 {
		t.Fatalf("enemies(0) = %v, want 2 entries", enemies)
	}
}
