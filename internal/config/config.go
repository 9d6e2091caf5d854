// Package config provides YAML-based game configuration loading and
// difficulty presets for the merge puzzle.
package config

// MergeConfig contains all configuration for the merge puzzle.
type MergeConfig struct {
	Board     BoardConfig     `yaml:"board"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Animation AnimationConfig `yaml:"animation"`
}

// BoardConfig defines the playing field.
type BoardConfig struct {
	Size int `yaml:"size"` // Board dimension (size x size)
}

// SpawnConfig defines the exponent range for freshly spawned tiles.
// A tile with exponent e displays as 2^e.
type SpawnConfig struct {
	MinExponent int `yaml:"min_exponent"`
	MaxExponent int `yaml:"max_exponent"`
}

// AnimationConfig defines resolution playback pacing.
type AnimationConfig struct {
	BeatTicks int `yaml:"beat_ticks"` // Ticks between applied snapshots
}

// Normalize clamps out-of-range values back to playable defaults.
func (c *MergeConfig) Normalize() {
	if c.Board.Size < 3 || c.Board.Size > 16 {
		c.Board.Size = 8
	}
	if c.Spawn.MinExponent < 1 {
		c.Spawn.MinExponent = 1
	}
	if c.Spawn.MaxExponent < c.Spawn.MinExponent {
		c.Spawn.MaxExponent = c.Spawn.MinExponent + 3
	}
	if c.Animation.BeatTicks < 1 {
		c.Animation.BeatTicks = 8
	}
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyMergePreset overrides board size and spawn range for a preset.
// A bigger board with a narrower spawn range is easier: more room and
// more duplicate values to line up. DifficultyFixed keeps the loaded
// config untouched.
func ApplyMergePreset(cfg *MergeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Board.Size = 9
		cfg.Spawn.MinExponent = 1
		cfg.Spawn.MaxExponent = 3
	case DifficultyNormal:
		cfg.Board.Size = 8
		cfg.Spawn.MinExponent = 1
		cfg.Spawn.MaxExponent = 4
	case DifficultyHard:
		cfg.Board.Size = 7
		cfg.Spawn.MinExponent = 1
		cfg.Spawn.MaxExponent = 5
	}
}

// ValidPreset reports whether the given name is a known preset.
func ValidPreset(name string) bool {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}
