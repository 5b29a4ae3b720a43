package engine

import (
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestFitsBoundsAndCollisions(t *testing.T) {
	grid := NewGrid(10, 20)
	grid.Place([]Cell{{5, 10}}, core.ColorGray)

	tests := []struct {
		name  string
		piece Piece
		want  bool
	}{
		{"inside empty area", Piece{Kind: ShapeO, Col: 0, Row: 0}, true},
		{"flush with bottom", Piece{Kind: ShapeO, Col: 0, Row: 18}, true},
		{"flush with right wall", Piece{Kind: ShapeO, Col: 8, Row: 0}, true},
		{"past left wall", Piece{Kind: ShapeO, Col: -1, Row: 0}, false},
		{"past right wall", Piece{Kind: ShapeO, Col: 9, Row: 0}, false},
		{"past bottom", Piece{Kind: ShapeO, Col: 0, Row: 19}, false},
		{"above top", Piece{Kind: ShapeO, Col: 0, Row: -1}, false},
		{"overlapping a filled cell", Piece{Kind: ShapeT, Col: 4, Row: 9}, false},
		{"beside a filled cell", Piece{Kind: ShapeO, Col: 3, Row: 9}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fits(tt.piece, grid); got != tt.want {
				t.Errorf("Fits(%v at %d,%d) = %v, want %v", tt.piece.Kind, tt.piece.Col, tt.piece.Row, got, tt.want)
			}
		})
	}
}

func TestCanFall(t *testing.T) {
	grid := NewGrid(10, 20)
	grid.Place([]Cell{{4, 12}}, core.ColorGray)

	tests := []struct {
		name  string
		piece Piece
		want  bool
	}{
		{"open air below", Piece{Kind: ShapeO, Col: 4, Row: 5}, true},
		{"resting on the floor", Piece{Kind: ShapeO, Col: 0, Row: 18}, false},
		{"resting on a filled cell", Piece{Kind: ShapeO, Col: 4, Row: 10}, false},
		{"beside the filled cell", Piece{Kind: ShapeO, Col: 6, Row: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanFall(tt.piece, grid); got != tt.want {
				t.Errorf("CanFall(%v at %d,%d) = %v, want %v", tt.piece.Kind, tt.piece.Col, tt.piece.Row, got, tt.want)
			}
		})
	}
}
