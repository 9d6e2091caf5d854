package config

import (
	_ "embed"
)

//go:embed defaults/mergetile.yaml
var defaultMergeYAML []byte

// DefaultMergeConfig returns the default merge puzzle configuration.
func DefaultMergeConfig() MergeConfig {
	return MergeConfig{
		Board: BoardConfig{
			Size: 8,
		},
		Spawn: SpawnConfig{
			MinExponent: 1,
			MaxExponent: 4,
		},
		Animation: AnimationConfig{
			BeatTicks: 8,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "mergetile":
		return defaultMergeYAML
	default:
		return nil
	}
}
