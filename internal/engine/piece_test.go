package engine

import (
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestSpawnPieceCentering(t *testing.T) {
	tests := []struct {
		kind    ShapeKind
		wantCol int
	}{
		{ShapeI, 3}, // 4 wide in a 10-column grid
		{ShapeO, 4}, // 2 wide
		{ShapeT, 4}, // 3 wide
		{ShapeS, 4},
		{ShapeZ, 4},
		{ShapeJ, 4},
		{ShapeL, 4},
	}

	for _, tt := range tests {
		p := SpawnPiece(tt.kind, 10)
		if p.Col != tt.wantCol {
			t.Errorf("SpawnPiece(%v) anchor col = %d, want %d", tt.kind, p.Col, tt.wantCol)
		}
		if p.Row != 0 || p.Rotation != 0 {
			t.Errorf("SpawnPiece(%v) = row %d rotation %d, want row 0 rotation 0", tt.kind, p.Row, p.Rotation)
		}
	}
}

func TestPieceCells(t *testing.T) {
	p := Piece{Kind: ShapeT, Col: 4, Row: 10}

	want := [4]Cell{{5, 10}, {4, 11}, {5, 11}, {6, 11}}
	if got := p.Cells(); got != want {
		t.Errorf("Cells() = %v, want %v", got, want)
	}
}

func TestPieceMovedByReturnsCandidate(t *testing.T) {
	p := Piece{Kind: ShapeL, Col: 4, Row: 5}

	moved := p.MovedBy(-1, 2)
	if moved.Col != 3 || moved.Row != 7 {
		t.Errorf("MovedBy(-1, 2) = (%d, %d), want (3, 7)", moved.Col, moved.Row)
	}
	if p.Col != 4 || p.Row != 5 {
		t.Error("MovedBy should not mutate the receiver")
	}
}

func TestPieceRotationWraps(t *testing.T) {
	p := Piece{Kind: ShapeJ}

	r := p
	for range RotationCount {
		r = r.RotatedCW()
	}
	if r.Rotation != p.Rotation {
		t.Errorf("four clockwise turns should return to rotation %d, got %d", p.Rotation, r.Rotation)
	}

	ccw := p.RotatedCCW()
	if ccw.Rotation != 3 {
		t.Errorf("RotatedCCW from 0 = %d, want 3", ccw.Rotation)
	}
	if p.Rotation != 0 {
		t.Error("rotation methods should not mutate the receiver")
	}

	if cw := p.RotatedCW().Rotation; cw != 1 {
		t.Errorf("RotatedCW from 0 = %d, want 1", cw)
	}
}

func TestPieceColor(t *testing.T) {
	p := Piece{Kind: ShapeZ}
	if p.Color() != core.ColorRed {
		t.Errorf("Z piece color = %d, want ColorRed", p.Color())
	}
}
