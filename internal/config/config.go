// Package config provides YAML-based game configuration loading and
// difficulty presets for blockfall.
package config

import (
	"time"

	"github.com/vovakirdan/blockfall/internal/engine"
)

// GameConfig contains all tunable gameplay parameters.
type GameConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
	View    ViewConfig    `yaml:"view"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// TimingConfig defines the gravity and lock timers.
type TimingConfig struct {
	GravityMS      int     `yaml:"gravity_ms"`      // fall interval at level 1, milliseconds
	GravitySpeedup float64 `yaml:"gravity_speedup"` // interval divisor growth per level
	LockDelayMS    int     `yaml:"lock_delay_ms"`
	MaxLockResets  int     `yaml:"max_lock_resets"`
}

// ScoringConfig defines level progression and the points tables.
type ScoringConfig struct {
	LinesPerLevel int   `yaml:"lines_per_level"`
	StartLevel    int   `yaml:"start_level"`
	BasePoints    []int `yaml:"base_points"` // points for 1..4 simultaneous lines
	ComboBonus    int   `yaml:"combo_bonus"`
}

// ViewConfig defines presentation aids computed by the engine.
type ViewConfig struct {
	PreviewCount int  `yaml:"preview_count"`
	Ghost        bool `yaml:"ghost"`
}

// Rules converts the configuration into engine tuning. The caller owns
// validation; engine.Rules.Validate reports anything unplayable.
func (cfg GameConfig) Rules() engine.Rules {
	ru := engine.Rules{
		Width:           cfg.Board.Width,
		Height:          cfg.Board.Height,
		GravityInterval: time.Duration(cfg.Timing.GravityMS) * time.Millisecond,
		GravitySpeedup:  cfg.Timing.GravitySpeedup,
		LockDelay:       time.Duration(cfg.Timing.LockDelayMS) * time.Millisecond,
		MaxLockResets:   cfg.Timing.MaxLockResets,
		LinesPerLevel:   cfg.Scoring.LinesPerLevel,
		StartLevel:      cfg.Scoring.StartLevel,
		ComboBonus:      cfg.Scoring.ComboBonus,
		PreviewCount:    cfg.View.PreviewCount,
		Ghost:           cfg.View.Ghost,
	}
	for i := 0; i < len(cfg.Scoring.BasePoints) && i < len(ru.BasePoints); i++ {
		ru.BasePoints[i] = cfg.Scoring.BasePoints[i]
	}
	return ru
}
