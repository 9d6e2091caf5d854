package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultParses(t *testing.T) {
	cfg, err := LoadMerge("")
	if err != nil {
		t.Fatalf("LoadMerge: %v", err)
	}

	want := DefaultMergeConfig()
	if cfg != want {
		t.Errorf("embedded default = %+v, want %+v", cfg, want)
	}
}

func TestGetDefaultYAML(t *testing.T) {
	if data := GetDefaultYAML("mergetile"); len(data) == 0 {
		t.Error("no embedded default for mergetile")
	}
	if data := GetDefaultYAML("unknown"); data != nil {
		t.Errorf("unexpected default for unknown game: %q", data)
	}
}

func TestLoadMergeCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	data := []byte("board:\n  size: 6\nspawn:\n  min_exponent: 2\n  max_exponent: 5\nanimation:\n  beat_ticks: 4\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadMerge(path)
	if err != nil {
		t.Fatalf("LoadMerge: %v", err)
	}
	if cfg.Board.Size != 6 || cfg.Spawn.MinExponent != 2 || cfg.Spawn.MaxExponent != 5 || cfg.Animation.BeatTicks != 4 {
		t.Errorf("loaded config = %+v", cfg)
	}

	if _, err := LoadMerge(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing explicit config path should error")
	}
}

func TestNormalizeClampsGarbage(t *testing.T) {
	cfg := MergeConfig{
		Board:     BoardConfig{Size: 99},
		Spawn:     SpawnConfig{MinExponent: -3, MaxExponent: 0},
		Animation: AnimationConfig{BeatTicks: 0},
	}
	cfg.Normalize()

	if cfg.Board.Size != 8 {
		t.Errorf("size = %d, want 8", cfg.Board.Size)
	}
	if cfg.Spawn.MinExponent != 1 || cfg.Spawn.MaxExponent != 4 {
		t.Errorf("spawn range = %d..%d, want 1..4", cfg.Spawn.MinExponent, cfg.Spawn.MaxExponent)
	}
	if cfg.Animation.BeatTicks != 8 {
		t.Errorf("beat ticks = %d, want 8", cfg.Animation.BeatTicks)
	}
}

func TestApplyMergePreset(t *testing.T) {
	tests := []struct {
		preset   DifficultyPreset
		size     int
		min, max int
	}{
		{DifficultyEasy, 9, 1, 3},
		{DifficultyNormal, 8, 1, 4},
		{DifficultyHard, 7, 1, 5},
	}
	for _, tc := range tests {
		cfg := DefaultMergeConfig()
		ApplyMergePreset(&cfg, tc.preset)
		if cfg.Board.Size != tc.size || cfg.Spawn.MinExponent != tc.min || cfg.Spawn.MaxExponent != tc.max {
			t.Errorf("%s: got size %d spawn %d..%d, want %d/%d..%d",
				tc.preset, cfg.Board.Size, cfg.Spawn.MinExponent, cfg.Spawn.MaxExponent, tc.size, tc.min, tc.max)
		}
	}

	// Fixed keeps whatever the file said.
	cfg := MergeConfig{Board: BoardConfig{Size: 5}, Spawn: SpawnConfig{MinExponent: 2, MaxExponent: 2}, Animation: AnimationConfig{BeatTicks: 3}}
	ApplyMergePreset(&cfg, DifficultyFixed)
	if cfg.Board.Size != 5 || cfg.Spawn.MinExponent != 2 {
		t.Errorf("fixed preset modified the config: %+v", cfg)
	}

	if !ValidPreset("easy") || ValidPreset("nightmare") {
		t.Error("ValidPreset misclassified a preset name")
	}
}
