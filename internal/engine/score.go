package engine

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// ComboState is the scoring accumulator: cumulative score and lines, the
// running combo streak and the bookkeeping the stats view wants. The zero
// value is the start-of-game state. It only changes through AfterLock,
// which returns a new value and leaves the receiver untouched.
type ComboState struct {
	Score     int
	Lines     int
	Combo     int // clearing locks beyond the first in the current streak
	MaxCombo  int
	LastClear int // lines removed by the most recent lock
}

// AfterLock returns the state following a lock that cleared the given
// number of lines.
//
// Base points come from the rules table for the simultaneous-clear count,
// multiplied by the level in effect before the new lines count toward the
// next one. The combo counter grows only while clearing locks chain
// back-to-back: an isolated clear scores its base alone, each further
// consecutive clear adds combo x rules.ComboBonus on top, and a lock that
// clears nothing resets the counter.
func (s ComboState) AfterLock(linesCleared int, ru Rules) ComboState {
	if linesCleared < 0 || linesCleared > 4 {
		panic(fmt.Sprintf("engine: impossible clear count %d", linesCleared))
	}

	if linesCleared == 0 {
		s.Combo = 0
		s.LastClear = 0
		return s
	}

	if s.LastClear > 0 {
		s.Combo++
		s.MaxCombo = core.Max(s.MaxCombo, s.Combo)
	} else {
		s.Combo = 0
	}

	level := s.Level(ru)
	s.Score += ru.BasePoints[linesCleared-1]*level + s.Combo*ru.ComboBonus
	s.Lines += linesCleared
	s.LastClear = linesCleared
	return s
}

// Level returns the level implied by the cumulative cleared lines: the
// configured start level plus one per rules.LinesPerLevel lines.
func (s ComboState) Level(ru Rules) int {
	return ru.StartLevel + s.Lines/ru.LinesPerLevel
}
