package config

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a user-supplied name to a preset. Unknown names report
// false so the caller can fall back to the configured values.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name), true
	default:
		return "", false
	}
}

// ApplyPreset adjusts the gameplay parameters for a difficulty preset.
// Normal leaves the configured values alone; fixed freezes gravity at the
// level-1 interval for practice play.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.GravityMS = 400
		cfg.Timing.GravitySpeedup = 0.03
		cfg.Timing.LockDelayMS = 600
	case DifficultyHard:
		cfg.Timing.GravityMS = 200
		cfg.Timing.GravitySpeedup = 0.08
		cfg.Timing.LockDelayMS = 400
		cfg.Timing.MaxLockResets = 8
	case DifficultyFixed:
		cfg.Timing.GravitySpeedup = 0
	}
}
