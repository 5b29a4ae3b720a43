package engine

// Fits reports whether every cell of the piece is in bounds and empty in
// the grid. It is the single authority for accepting a proposed move,
// rotation or fall: every change to the active piece is validated here
// before commit, and candidates that do not fit are dropped silently.
func Fits(p Piece, g *Grid) bool {
	for _, c := range p.Cells() {
		if !g.IsEmpty(c.Col, c.Row) {
			return false
		}
	}
	return true
}

// CanFall reports whether the piece can move down one row. Used by the
// gravity step and to decide lock eligibility.
func CanFall(p Piece, g *Grid) bool {
	return Fits(p.MovedBy(0, 1), g)
}
