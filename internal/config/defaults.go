package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultYAML []byte

// DefaultConfig returns the default configuration. It mirrors the embedded
// defaults/blockfall.yaml and serves as the fallback when the embed cannot
// be parsed.
func DefaultConfig() GameConfig {
	return GameConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Timing: TimingConfig{
			GravityMS:      300,
			GravitySpeedup: 0.05,
			LockDelayMS:    500,
			MaxLockResets:  15,
		},
		Scoring: ScoringConfig{
			LinesPerLevel: 10,
			StartLevel:    1,
			BasePoints:    []int{100, 300, 500, 800},
			ComboBonus:    50,
		},
		View: ViewConfig{
			PreviewCount: 3,
			Ghost:        true,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for writing starter
// configuration files.
func DefaultYAML() []byte {
	return defaultYAML
}
