package tui

import (
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/engine"
)

// Board cells render two runes wide so the well looks square in a terminal.
const cellW = 2

const (
	hudWidth = 20
	hudGap   = 3
)

// frameState carries the presentation state that lives outside the engine
// snapshot: which overlay to show and the high score context.
type frameState struct {
	state    sessionState
	prevHigh int
	newHigh  bool
}

// drawFrame renders one complete frame: the well, the side panel and any
// overlay for the current session state.
func drawFrame(s *core.Screen, snap engine.Snapshot, v frameState) {
	s.Clear()

	boxW := snap.Width*cellW + 2
	boxH := snap.Height + 2
	boardX := core.Max(1, (s.Width()-boxW-hudGap-hudWidth)/2)
	boardY := core.Max(0, (s.Height()-boxH)/2)

	drawWell(s, snap, v, boardX, boardY)
	drawPanel(s, snap, v, boardX+boxW+hudGap, boardY+1)

	switch v.state {
	case stateStart:
		drawStartOverlay(s, v)
	case statePaused:
		drawNotice(s, "PAUSED", "p resume   r restart")
	case stateGameOver:
		drawGameOverOverlay(s, snap, v)
	}
}

// drawWell renders the bordered playfield: settled cells, the ghost landing
// preview and the active piece. The piece stays hidden behind the start
// overlay so the well looks idle before the first run.
func drawWell(s *core.Screen, snap engine.Snapshot, v frameState, x, y int) {
	s.DrawBox(x, y, snap.Width*cellW+2, snap.Height+2, core.ColorWhite)

	for row := range snap.Height {
		for col := range snap.Width {
			if c := snap.CellColor(col, row); c != core.ColorDefault {
				drawCell(s, x, y, col, row, '█', c)
			}
		}
	}

	if v.state == stateStart {
		return
	}

	// Ghost first so the active piece wins on touch-down frames.
	for _, c := range snap.GhostCells {
		drawCell(s, x, y, c.Col, c.Row, '░', core.ColorGray)
	}
	for _, c := range snap.PieceCells {
		drawCell(s, x, y, c.Col, c.Row, '█', snap.PieceColor)
	}
}

// drawCell paints one grid cell inside the well border, two runes wide.
func drawCell(s *core.Screen, wellX, wellY, col, row int, r rune, c core.Color) {
	x := wellX + 1 + col*cellW
	y := wellY + 1 + row
	s.SetCell(x, y, r, c)
	s.SetCell(x+1, y, r, c)
}

// drawPanel renders the side panel: score block, the upcoming pieces and
// the key hints.
func drawPanel(s *core.Screen, snap engine.Snapshot, v frameState, x, y int) {
	s.DrawTextColored(x, y, "BLOCKFALL", core.ColorBrightWhite)

	best := core.Max(v.prevHigh, snap.Score)
	s.DrawText(x, y+2, fmt.Sprintf("Score  %d", snap.Score))
	s.DrawText(x, y+3, fmt.Sprintf("Best   %d", best))
	s.DrawText(x, y+4, fmt.Sprintf("Level  %d", snap.Level))
	s.DrawText(x, y+5, fmt.Sprintf("Lines  %d", snap.Lines))
	if snap.Combo > 0 {
		s.DrawTextColored(x, y+6, fmt.Sprintf("Combo  x%d", snap.Combo), core.ColorOrange)
	}

	s.DrawTextColored(x, y+8, "Next", core.ColorGray)
	drawQueue(s, snap, x, y+9)

	s.DrawTextColored(x, y+18, "←→ move  ↑ rotate", core.ColorGray)
	s.DrawTextColored(x, y+19, "↓ soft  space drop", core.ColorGray)
	s.DrawTextColored(x, y+20, "p pause  q quit", core.ColorGray)
}

// drawQueue renders the upcoming pieces at spawn orientation, three rows per
// slot. Slots beyond the visible panel clip silently.
func drawQueue(s *core.Screen, snap engine.Snapshot, x, y int) {
	for i, kind := range snap.Next {
		cells := engine.Piece{Kind: kind}.Cells()
		top := y + i*3
		for _, c := range cells {
			px := x + c.Col*cellW
			py := top + c.Row
			s.SetCell(px, py, '█', kind.Color())
			s.SetCell(px+1, py, '█', kind.Color())
		}
	}
}

// drawStartOverlay renders the pre-run title card.
func drawStartOverlay(s *core.Screen, v frameState) {
	title := "B L O C K F A L L"
	high := fmt.Sprintf("high score  %d", v.prevHigh)
	hint := "space to start"

	w := core.Max(len(title), core.Max(len(high), len(hint))) + 10
	h := 7
	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2

	fillRect(s, x, y, w, h)
	s.DrawBox(x, y, w, h, core.ColorCyan)
	s.DrawTextColored(x+(w-len(title))/2, y+2, title, core.ColorBrightWhite)
	if v.prevHigh > 0 {
		s.DrawTextColored(x+(w-len(high))/2, y+4, high, core.ColorYellow)
	}
	s.DrawTextColored(x+(w-len(hint))/2, y+5, hint, core.ColorGray)
}

// drawGameOverOverlay renders the end-of-run card with the final score and
// a record callout when the run beat the stored best.
func drawGameOverOverlay(s *core.Screen, snap engine.Snapshot, v frameState) {
	title := "GAME OVER"
	score := fmt.Sprintf("score  %d", snap.Score)
	lines := fmt.Sprintf("lines  %d   time  %s", snap.Lines, snap.Elapsed.Truncate(time.Second))
	record := "NEW RECORD!"
	hint := "r restart   q quit"

	w := core.Max(len(lines), len(hint)) + 10
	h := 9
	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2

	fillRect(s, x, y, w, h)
	s.DrawBox(x, y, w, h, core.ColorRed)
	s.DrawTextColored(x+(w-len(title))/2, y+2, title, core.ColorBrightWhite)
	s.DrawText(x+(w-len(score))/2, y+4, score)
	s.DrawTextColored(x+(w-len(lines))/2, y+5, lines, core.ColorGray)
	if v.newHigh {
		s.DrawTextColored(x+(w-len(record))/2, y+3, record, core.ColorYellow)
	}
	s.DrawTextColored(x+(w-len(hint))/2, y+7, hint, core.ColorGray)
}

// drawNotice renders a small centered card with a title and a key hint.
func drawNotice(s *core.Screen, title, hint string) {
	w := core.Max(len(title), len(hint)) + 8
	h := 5
	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2

	fillRect(s, x, y, w, h)
	s.DrawBox(x, y, w, h, core.ColorBrightWhite)
	s.DrawTextColored(x+(w-len(title))/2, y+1, title, core.ColorBrightWhite)
	s.DrawTextColored(x+(w-len(hint))/2, y+3, hint, core.ColorGray)
}

// fillRect blanks a rectangle so overlay text sits on a clean background.
func fillRect(s *core.Screen, x, y, w, h int) {
	for dy := range h {
		for dx := range w {
			s.SetCell(x+dx, y+dy, ' ', core.ColorDefault)
		}
	}
}
