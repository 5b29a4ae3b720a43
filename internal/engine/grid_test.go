package engine

import (
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

// fillRow fills the given row completely.
func fillRow(g *Grid, row int, color core.Color) {
	for col := range g.Width() {
		g.Place([]Cell{{col, row}}, color)
	}
}

// countFilled returns the number of occupied cells in the grid.
func countFilled(g *Grid) int {
	n := 0
	for row := range g.Height() {
		for col := range g.Width() {
			if !g.IsEmpty(col, row) {
				n++
			}
		}
	}
	return n
}

func TestNewGridEmpty(t *testing.T) {
	g := NewGrid(10, 20)

	if g.Width() != 10 || g.Height() != 20 {
		t.Fatalf("grid size = %dx%d, want 10x20", g.Width(), g.Height())
	}

	for row := range 20 {
		for col := range 10 {
			if !g.IsEmpty(col, row) {
				t.Errorf("new grid cell (%d, %d) should be empty", col, row)
			}
			if g.ColorAt(col, row) != core.ColorDefault {
				t.Errorf("new grid cell (%d, %d) should have the default color", col, row)
			}
		}
	}
}

func TestNewGridPanicsOnBadSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NewGrid(0, 20) should panic")
		}
	}()
	NewGrid(0, 20)
}

func TestGridIsEmptyBounds(t *testing.T) {
	g := NewGrid(10, 20)

	tests := []struct {
		name     string
		col, row int
		want     bool
	}{
		{"inside", 5, 10, true},
		{"top-left corner", 0, 0, true},
		{"bottom-right corner", 9, 19, true},
		{"left of grid", -1, 10, false},
		{"right of grid", 10, 10, false},
		{"above grid", 5, -1, false},
		{"below grid", 5, 20, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.IsEmpty(tt.col, tt.row); got != tt.want {
				t.Errorf("IsEmpty(%d, %d) = %v, want %v", tt.col, tt.row, got, tt.want)
			}
		})
	}
}

func TestGridPlace(t *testing.T) {
	g := NewGrid(10, 20)

	cells := []Cell{{4, 18}, {5, 18}, {4, 19}, {5, 19}}
	g.Place(cells, core.ColorYellow)

	for _, c := range cells {
		if g.IsEmpty(c.Col, c.Row) {
			t.Errorf("cell (%d, %d) should be filled after Place", c.Col, c.Row)
		}
		if g.ColorAt(c.Col, c.Row) != core.ColorYellow {
			t.Errorf("ColorAt(%d, %d) = %d, want ColorYellow", c.Col, c.Row, g.ColorAt(c.Col, c.Row))
		}
	}

	// Neighbors stay untouched
	if !g.IsEmpty(3, 19) || !g.IsEmpty(6, 19) {
		t.Error("Place should not affect neighboring cells")
	}
}

func TestGridPlacePanics(t *testing.T) {
	tests := []struct {
		name  string
		cells []Cell
		color core.Color
		seed  []Cell // pre-filled cells
	}{
		{"occupied cell", []Cell{{4, 19}}, core.ColorRed, []Cell{{4, 19}}},
		{"out of bounds column", []Cell{{10, 5}}, core.ColorRed, nil},
		{"out of bounds row", []Cell{{0, 20}}, core.ColorRed, nil},
		{"negative row", []Cell{{0, -1}}, core.ColorRed, nil},
		{"empty-cell color", []Cell{{0, 0}}, core.ColorDefault, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(10, 20)
			if tt.seed != nil {
				g.Place(tt.seed, core.ColorGray)
			}
			defer func() {
				if recover() == nil {
					t.Errorf("Place(%v) should panic", tt.cells)
				}
			}()
			g.Place(tt.cells, tt.color)
		})
	}
}

func TestGridFullRows(t *testing.T) {
	g := NewGrid(10, 20)

	if rows := g.FullRows(); len(rows) != 0 {
		t.Fatalf("empty grid FullRows() = %v, want none", rows)
	}

	fillRow(g, 19, core.ColorRed)
	fillRow(g, 17, core.ColorBlue)
	g.Place([]Cell{{0, 18}}, core.ColorGreen) // partial row between

	rows := g.FullRows()
	if len(rows) != 2 || rows[0] != 17 || rows[1] != 19 {
		t.Errorf("FullRows() = %v, want [17 19]", rows)
	}
}

func TestGridClearRowsSingle(t *testing.T) {
	g := NewGrid(10, 20)
	fillRow(g, 19, core.ColorRed)
	g.Place([]Cell{{3, 18}, {4, 18}}, core.ColorBlue)

	g.ClearRows([]int{19})

	// The partial row above shifts into the bottom row.
	if g.ColorAt(3, 19) != core.ColorBlue || g.ColorAt(4, 19) != core.ColorBlue {
		t.Error("row above the cleared row should shift down")
	}
	if !g.IsEmpty(3, 18) {
		t.Error("vacated row should be empty after the shift")
	}
	if got := countFilled(g); got != 2 {
		t.Errorf("filled cells after clear = %d, want 2", got)
	}
}

func TestGridClearRowsCompactsDown(t *testing.T) {
	// Rows: 16 partial (A), 17 full, 18 partial (B), 19 full.
	// Clearing 17 and 19 must keep A above B with no gap between them.
	g := NewGrid(10, 20)
	g.Place([]Cell{{0, 16}, {1, 16}}, core.ColorGreen) // A
	fillRow(g, 17, core.ColorGray)
	g.Place([]Cell{{8, 18}, {9, 18}}, core.ColorBlue) // B
	fillRow(g, 19, core.ColorGray)

	g.ClearRows([]int{17, 19})

	if g.ColorAt(8, 19) != core.ColorBlue || g.ColorAt(9, 19) != core.ColorBlue {
		t.Error("B should land on the bottom row")
	}
	if g.ColorAt(0, 18) != core.ColorGreen || g.ColorAt(1, 18) != core.ColorGreen {
		t.Error("A should land directly above B")
	}
	if got := countFilled(g); got != 4 {
		t.Errorf("filled cells after clear = %d, want 4", got)
	}
	if rows := g.FullRows(); len(rows) != 0 {
		t.Errorf("no rows should be full after the clear, got %v", rows)
	}
}

func TestGridClearRowsNoop(t *testing.T) {
	g := NewGrid(10, 20)
	g.Place([]Cell{{5, 19}}, core.ColorRed)

	g.ClearRows(nil)

	if g.ColorAt(5, 19) != core.ColorRed {
		t.Error("ClearRows(nil) should leave the grid untouched")
	}
}

func TestGridClearRowsPanicsOutOfBounds(t *testing.T) {
	g := NewGrid(10, 20)
	defer func() {
		if recover() == nil {
			t.Error("ClearRows with an out-of-bounds row should panic")
		}
	}()
	g.ClearRows([]int{20})
}
