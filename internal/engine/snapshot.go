package engine

import (
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Snapshot is the read-only view of a game returned by every update. It
// carries everything the render, effects and score layers need, so the
// engine never has to call outward.
type Snapshot struct {
	Width  int
	Height int
	Board  []core.Color // settled cells, row-major; ColorDefault is empty

	PieceCells []Cell // active piece, nil when no piece is live
	PieceColor core.Color
	GhostCells []Cell // landing preview, nil when disabled or redundant

	Next []ShapeKind // upcoming kinds, soonest first

	Score    int
	Level    int
	Combo    int
	MaxCombo int
	Lines    int
	Pieces   int
	Elapsed  time.Duration

	Cleared  []int // rows removed by this tick's locks, nil otherwise
	Phase    Phase
	GameOver bool
}

// CellColor returns the settled color at (col, row), ColorDefault when the
// cell is empty or out of bounds.
func (snap Snapshot) CellColor(col, row int) core.Color {
	if col < 0 || col >= snap.Width || row < 0 || row >= snap.Height {
		return core.ColorDefault
	}
	return snap.Board[row*snap.Width+col]
}

// snapshot builds the view of the current state.
func (g *Game) snapshot() Snapshot {
	snap := Snapshot{
		Width:    g.grid.Width(),
		Height:   g.grid.Height(),
		Board:    make([]core.Color, g.grid.Width()*g.grid.Height()),
		Next:     append([]ShapeKind(nil), g.queue...),
		Score:    g.score.Score,
		Level:    g.score.Level(g.rules),
		Combo:    g.score.Combo,
		MaxCombo: g.score.MaxCombo,
		Lines:    g.score.Lines,
		Pieces:   g.pieces,
		Elapsed:  g.elapsed,
		Phase:    g.phase,
		GameOver: g.phase == PhaseGameOver,
	}

	for row := range snap.Height {
		for col := range snap.Width {
			snap.Board[row*snap.Width+col] = g.grid.ColorAt(col, row)
		}
	}

	if len(g.lastEvent.Rows) > 0 {
		snap.Cleared = append([]int(nil), g.lastEvent.Rows...)
	}

	if g.hasPiece {
		cells := g.piece.Cells()
		snap.PieceCells = cells[:]
		snap.PieceColor = g.piece.Color()

		if g.rules.Ghost {
			ghost := g.ghostPiece()
			if ghost.Row != g.piece.Row {
				ghostCells := ghost.Cells()
				snap.GhostCells = ghostCells[:]
			}
		}
	}

	return snap
}

// ghostPiece returns the active piece at its landing position.
func (g *Game) ghostPiece() Piece {
	ghost := g.piece
	for CanFall(ghost, g.grid) {
		ghost = ghost.MovedBy(0, 1)
	}
	return ghost
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Width)        //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Height) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Combo)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lines)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Pieces) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)
	h = h*31 + uint64(snap.PieceColor)

	for _, c := range snap.Board {
		h = h*31 + uint64(c)
	}

	for _, cell := range snap.PieceCells {
		h = h*31 + uint64(cell.Col)*97 + uint64(cell.Row) //#nosec G115 -- hash computation
	}

	for _, kind := range snap.Next {
		h = h*31 + uint64(kind)
	}

	return h
}
