package engine

// LineClearEvent reports the rows removed by a single lock, ordered top to
// bottom. An empty row set means the lock cleared nothing. The event feeds
// the scorer and is surfaced in the snapshot for the effects layer.
type LineClearEvent struct {
	Rows []int
}

// Lines returns the number of cleared rows.
func (e LineClearEvent) Lines() int {
	return len(e.Rows)
}

// ClearFullRows removes every full row from the grid and reports which rows
// were cleared. Calling it when no rows are full is a no-op returning an
// empty event.
func ClearFullRows(g *Grid) LineClearEvent {
	rows := g.FullRows()
	if len(rows) > 0 {
		g.ClearRows(rows)
	}
	return LineClearEvent{Rows: rows}
}
