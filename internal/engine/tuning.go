package engine

import (
	"fmt"
	"time"
)

// Rules is the complete tuning surface of the engine. Every gameplay
// constant the state machine consults lives here so the configuration
// layer can adjust it without touching logic.
type Rules struct {
	Width  int
	Height int

	GravityInterval time.Duration // fall step at level 1
	GravitySpeedup  float64       // interval divisor growth per level
	LockDelay       time.Duration // grace period once a piece cannot fall
	MaxLockResets   int           // delay restarts a piece may earn, ledge escapes included

	LinesPerLevel int
	StartLevel    int
	BasePoints    [4]int // points for 1..4 simultaneous lines, scaled by level
	ComboBonus    int    // points per combo step

	PreviewCount int  // upcoming kinds exposed in snapshots
	Ghost        bool // compute the landing preview
	Seed         int64
}

// DefaultRules returns the standard game: a 10x20 well, 300 ms gravity
// speeding up 5% per level, half-second lock delay with at most 15 resets,
// a level every 10 lines and the usual 100/300/500/800 clear table.
func DefaultRules() Rules {
	return Rules{
		Width:           10,
		Height:          20,
		GravityInterval: 300 * time.Millisecond,
		GravitySpeedup:  0.05,
		LockDelay:       500 * time.Millisecond,
		MaxLockResets:   15,
		LinesPerLevel:   10,
		StartLevel:      1,
		BasePoints:      [4]int{100, 300, 500, 800},
		ComboBonus:      50,
		PreviewCount:    3,
		Ghost:           true,
	}
}

// Validate reports the first problem that would make the rules unplayable.
func (ru Rules) Validate() error {
	switch {
	case ru.Width < 4:
		return fmt.Errorf("engine: width %d is narrower than the widest shape", ru.Width)
	case ru.Height < 4:
		return fmt.Errorf("engine: height %d is shorter than the tallest shape", ru.Height)
	case ru.GravityInterval <= 0:
		return fmt.Errorf("engine: gravity interval %v must be positive", ru.GravityInterval)
	case ru.GravitySpeedup < 0:
		return fmt.Errorf("engine: gravity speedup %v must not be negative", ru.GravitySpeedup)
	case ru.LockDelay < 0:
		return fmt.Errorf("engine: lock delay %v must not be negative", ru.LockDelay)
	case ru.MaxLockResets < 0:
		return fmt.Errorf("engine: lock reset cap %d must not be negative", ru.MaxLockResets)
	case ru.LinesPerLevel < 1:
		return fmt.Errorf("engine: lines per level %d must be at least 1", ru.LinesPerLevel)
	case ru.StartLevel < 1:
		return fmt.Errorf("engine: start level %d must be at least 1", ru.StartLevel)
	case ru.ComboBonus < 0:
		return fmt.Errorf("engine: combo bonus %d must not be negative", ru.ComboBonus)
	case ru.PreviewCount < 1:
		return fmt.Errorf("engine: preview count %d must be at least 1", ru.PreviewCount)
	}
	for i, pts := range ru.BasePoints {
		if pts < 0 {
			return fmt.Errorf("engine: base points for %d lines must not be negative", i+1)
		}
	}
	return nil
}

// gravityStep returns the fall interval at the given level. The base
// interval shrinks as 1/(1+(level-1)*speedup), strictly monotonic in the
// level, so a game started above level 1 plays at that level's speed.
func (ru Rules) gravityStep(level int) time.Duration {
	divisor := 1 + float64(level-1)*ru.GravitySpeedup
	return time.Duration(float64(ru.GravityInterval) / divisor)
}
