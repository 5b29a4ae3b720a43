package engine

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Grid is the settled playfield: a fixed-size matrix of cells, each either
// empty or holding the color of a locked block. The active piece is never
// part of the grid; it only enters when locked via Place.
type Grid struct {
	width  int
	height int
	cells  [][]core.Color // [row][col]; ColorDefault marks an empty cell
}

// NewGrid creates an empty grid of the given dimensions.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("engine: invalid grid size %dx%d", width, height))
	}
	cells := make([][]core.Color, height)
	for row := range cells {
		cells[row] = make([]core.Color, width)
	}
	return &Grid{width: width, height: height, cells: cells}
}

// Width returns the grid width in columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in rows.
func (g *Grid) Height() int {
	return g.height
}

// IsEmpty reports whether the cell is in bounds and unoccupied.
// Out-of-bounds cells are never empty. This is the sole occupancy oracle;
// all collision checks go through it.
func (g *Grid) IsEmpty(col, row int) bool {
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return false
	}
	return g.cells[row][col] == core.ColorDefault
}

// ColorAt returns the color of a settled cell, ColorDefault if the cell is
// empty or out of bounds.
func (g *Grid) ColorAt(col, row int) core.Color {
	if col < 0 || col >= g.width || row < 0 || row >= g.height {
		return core.ColorDefault
	}
	return g.cells[row][col]
}

// Place marks the given cells as filled with the color. Every cell must be
// in bounds and currently empty, and the color must not be ColorDefault;
// violating either is a caller bug and panics rather than corrupting the
// board.
func (g *Grid) Place(cells []Cell, color core.Color) {
	if color == core.ColorDefault {
		panic("engine: place with the empty-cell color")
	}
	for _, c := range cells {
		if !g.IsEmpty(c.Col, c.Row) {
			panic(fmt.Sprintf("engine: place on occupied or out-of-bounds cell (%d, %d)", c.Col, c.Row))
		}
	}
	for _, c := range cells {
		g.cells[c.Row][c.Col] = color
	}
}

// FullRows returns the indices of rows where every column is filled,
// ordered top to bottom.
func (g *Grid) FullRows() []int {
	var full []int
	for row := range g.height {
		filled := true
		for col := range g.width {
			if g.cells[row][col] == core.ColorDefault {
				filled = false
				break
			}
		}
		if filled {
			full = append(full, row)
		}
	}
	return full
}

// ClearRows removes the given rows, shifts everything above them down and
// fills the vacated top rows with empty cells. The shift is a single
// compact-down pass over the whole grid, so clearing several rows at once
// preserves the relative order of all surviving rows.
func (g *Grid) ClearRows(rows []int) {
	if len(rows) == 0 {
		return
	}
	cleared := make([]bool, g.height)
	for _, row := range rows {
		if row < 0 || row >= g.height {
			panic(fmt.Sprintf("engine: clear of out-of-bounds row %d", row))
		}
		cleared[row] = true
	}

	write := g.height - 1
	for read := g.height - 1; read >= 0; read-- {
		if cleared[read] {
			continue
		}
		if write != read {
			copy(g.cells[write], g.cells[read])
		}
		write--
	}
	for ; write >= 0; write-- {
		for col := range g.width {
			g.cells[write][col] = core.ColorDefault
		}
	}
}
