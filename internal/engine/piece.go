package engine

import "github.com/vovakirdan/blockfall/internal/core"

// Piece is the active falling tetromino: a shape kind, a quarter-turn
// rotation index and an anchor position in grid coordinates. The anchor is
// the top-left corner of the shape's bounding box; the occupied cells come
// from the static offset tables. Methods never mutate the receiver; they
// return candidate pieces for the caller to validate against the grid
// before committing.
type Piece struct {
	Kind     ShapeKind
	Rotation int // 0..3 quarter turns clockwise
	Col, Row int // anchor position
}

// SpawnPiece returns the kind's piece at its spawn position: rotation 0,
// anchor row 0, horizontally centered for the given grid width.
func SpawnPiece(kind ShapeKind, gridWidth int) Piece {
	return Piece{Kind: kind, Col: gridWidth/2 - kind.BoxWidth()/2}
}

// Cells returns the four absolute grid cells the piece occupies.
func (p Piece) Cells() [4]Cell {
	cells := shapeOffsets[p.Kind][p.Rotation]
	for i := range cells {
		cells[i].Col += p.Col
		cells[i].Row += p.Row
	}
	return cells
}

// MovedBy returns a candidate piece translated by the given column and row
// deltas.
func (p Piece) MovedBy(dCol, dRow int) Piece {
	p.Col += dCol
	p.Row += dRow
	return p
}

// RotatedCW returns a candidate piece turned a quarter clockwise. The
// anchor stays put: no wall-kick positions are tried beyond the identity.
func (p Piece) RotatedCW() Piece {
	p.Rotation = (p.Rotation + 1) % RotationCount
	return p
}

// RotatedCCW returns a candidate piece turned a quarter counter-clockwise.
func (p Piece) RotatedCCW() Piece {
	p.Rotation = (p.Rotation + RotationCount - 1) % RotationCount
	return p
}

// Color returns the piece's render color.
func (p Piece) Color() core.Color {
	return p.Kind.Color()
}
