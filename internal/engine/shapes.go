package engine

import "github.com/vovakirdan/blockfall/internal/core"

// ShapeKind identifies one of the seven tetromino shapes.
type ShapeKind uint8

const (
	ShapeI ShapeKind = iota
	ShapeO
	ShapeT
	ShapeS
	ShapeZ
	ShapeJ
	ShapeL
)

// ShapeCount is the number of distinct tetromino kinds.
const ShapeCount = 7

// RotationCount is the number of quarter-turn orientations per kind.
const RotationCount = 4

// Cell addresses a single playfield square by column and row.
// Row 0 is the top of the playfield, rows grow downward.
type Cell struct {
	Col, Row int
}

// shapeOffsets holds the four occupied cells of every kind at every
// rotation, relative to the piece anchor (the top-left of the shape's
// bounding box). All 28 orientations are precomputed so a rotation is a
// table lookup, never runtime geometry. The O shape repeats one orientation
// since rotating a square is a no-op.
var shapeOffsets = [ShapeCount][RotationCount][4]Cell{
	ShapeI: {
		{{0, 1}, {1, 1}, {2, 1}, {3, 1}},
		{{2, 0}, {2, 1}, {2, 2}, {2, 3}},
		{{0, 2}, {1, 2}, {2, 2}, {3, 2}},
		{{1, 0}, {1, 1}, {1, 2}, {1, 3}},
	},
	ShapeO: {
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		{{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	},
	ShapeT: {
		{{1, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {1, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	ShapeS: {
		{{1, 0}, {2, 0}, {0, 1}, {1, 1}},
		{{1, 0}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 1}, {2, 1}, {0, 2}, {1, 2}},
		{{0, 0}, {0, 1}, {1, 1}, {1, 2}},
	},
	ShapeZ: {
		{{0, 0}, {1, 0}, {1, 1}, {2, 1}},
		{{2, 0}, {1, 1}, {2, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {1, 2}, {2, 2}},
		{{1, 0}, {0, 1}, {1, 1}, {0, 2}},
	},
	ShapeJ: {
		{{0, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {2, 0}, {1, 1}, {1, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {2, 2}},
		{{1, 0}, {1, 1}, {0, 2}, {1, 2}},
	},
	ShapeL: {
		{{2, 0}, {0, 1}, {1, 1}, {2, 1}},
		{{1, 0}, {1, 1}, {1, 2}, {2, 2}},
		{{0, 1}, {1, 1}, {2, 1}, {0, 2}},
		{{0, 0}, {1, 0}, {1, 1}, {1, 2}},
	},
}

// shapeColors maps each kind to its conventional color.
var shapeColors = [ShapeCount]core.Color{
	ShapeI: core.ColorCyan,
	ShapeO: core.ColorYellow,
	ShapeT: core.ColorMagenta,
	ShapeS: core.ColorGreen,
	ShapeZ: core.ColorRed,
	ShapeJ: core.ColorBlue,
	ShapeL: core.ColorOrange,
}

// shapeBoxWidths is each kind's bounding-box width at spawn orientation,
// used to center the spawn anchor horizontally.
var shapeBoxWidths = [ShapeCount]int{
	ShapeI: 4,
	ShapeO: 2,
	ShapeT: 3,
	ShapeS: 3,
	ShapeZ: 3,
	ShapeJ: 3,
	ShapeL: 3,
}

// Color returns the kind's conventional render color.
func (k ShapeKind) Color() core.Color {
	return shapeColors[k]
}

// BoxWidth returns the width of the kind's spawn bounding box.
func (k ShapeKind) BoxWidth() int {
	return shapeBoxWidths[k]
}

// String returns the conventional one-letter shape name.
func (k ShapeKind) String() string {
	switch k {
	case ShapeI:
		return "I"
	case ShapeO:
		return "O"
	case ShapeT:
		return "T"
	case ShapeS:
		return "S"
	case ShapeZ:
		return "Z"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	default:
		return "?"
	}
}
