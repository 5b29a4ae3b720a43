package engine

import (
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
)

func TestShapeTablesWellFormed(t *testing.T) {
	for kind := range ShapeKind(ShapeCount) {
		for rot := range RotationCount {
			cells := shapeOffsets[kind][rot]

			seen := make(map[Cell]bool, 4)
			for _, c := range cells {
				if c.Col < 0 || c.Col >= 4 || c.Row < 0 || c.Row >= 4 {
					t.Errorf("%v rotation %d: offset (%d, %d) outside the 4x4 box", kind, rot, c.Col, c.Row)
				}
				if seen[c] {
					t.Errorf("%v rotation %d: duplicate offset (%d, %d)", kind, rot, c.Col, c.Row)
				}
				seen[c] = true
			}
			if len(seen) != 4 {
				t.Errorf("%v rotation %d: %d distinct cells, want 4", kind, rot, len(seen))
			}
		}
	}
}

func TestShapeTableSpotChecks(t *testing.T) {
	// T pointing up in spawn orientation.
	wantT := [4]Cell{{1, 0}, {0, 1}, {1, 1}, {2, 1}}
	if shapeOffsets[ShapeT][0] != wantT {
		t.Errorf("T rotation 0 = %v, want %v", shapeOffsets[ShapeT][0], wantT)
	}

	// I lies flat across the second box row at spawn.
	wantI := [4]Cell{{0, 1}, {1, 1}, {2, 1}, {3, 1}}
	if shapeOffsets[ShapeI][0] != wantI {
		t.Errorf("I rotation 0 = %v, want %v", shapeOffsets[ShapeI][0], wantI)
	}

	// O never changes across rotations.
	for rot := 1; rot < RotationCount; rot++ {
		if shapeOffsets[ShapeO][rot] != shapeOffsets[ShapeO][0] {
			t.Errorf("O rotation %d differs from rotation 0", rot)
		}
	}
}

func TestShapeColors(t *testing.T) {
	tests := []struct {
		kind ShapeKind
		want core.Color
	}{
		{ShapeI, core.ColorCyan},
		{ShapeO, core.ColorYellow},
		{ShapeT, core.ColorMagenta},
		{ShapeS, core.ColorGreen},
		{ShapeZ, core.ColorRed},
		{ShapeJ, core.ColorBlue},
		{ShapeL, core.ColorOrange},
	}

	for _, tt := range tests {
		if got := tt.kind.Color(); got != tt.want {
			t.Errorf("%v.Color() = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestShapeBoxWidths(t *testing.T) {
	tests := []struct {
		kind ShapeKind
		want int
	}{
		{ShapeI, 4},
		{ShapeO, 2},
		{ShapeT, 3},
		{ShapeS, 3},
		{ShapeZ, 3},
		{ShapeJ, 3},
		{ShapeL, 3},
	}

	for _, tt := range tests {
		if got := tt.kind.BoxWidth(); got != tt.want {
			t.Errorf("%v.BoxWidth() = %d, want %d", tt.kind, got, tt.want)
		}
	}
}

func TestShapeString(t *testing.T) {
	names := map[ShapeKind]string{
		ShapeI: "I", ShapeO: "O", ShapeT: "T", ShapeS: "S",
		ShapeZ: "Z", ShapeJ: "J", ShapeL: "L",
	}
	for kind, want := range names {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
	if got := ShapeKind(99).String(); got != "?" {
		t.Errorf("invalid kind String() = %q, want %q", got, "?")
	}
}
