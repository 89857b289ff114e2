package timetable

// Cell is one grid position in a rendered view. Session is nil for an
// empty cell. Dragging marks the cell holding the session currently
// being dragged so clients can de-emphasise it.
type Cell struct {
	Day       string   `json:"day"`
	StartTime string   `json:"start_time"`
	Session   *Session `json:"session,omitempty"`
	Dragging  bool     `json:"dragging,omitempty"`
}

// View is a grid-shaped snapshot of the schedule: one row per time
// slot, one column per day, in grid order.
type View struct {
	Days  []string `json:"days"`
	Times []string `json:"times"`
	Rows  [][]Cell `json:"rows"`
}

// Render projects the store onto the grid. Sessions sitting outside
// the grid's days or times are left out of the view; they remain in
// the store untouched.
func Render(grid *Grid, store *Store, draggedID string) View {
	byCell := make(map[string]Session, store.Len())
	for _, s := range store.Sessions() {
		byCell[s.CellKey()] = s
	}

	days := grid.Days()
	times := grid.Times()
	rows := make([][]Cell, len(times))
	for ti, t := range times {
		row := make([]Cell, len(days))
		for di, d := range days {
			cell := Cell{Day: d, StartTime: t}
			if s, ok := byCell[CellKey(d, t)]; ok {
				sess := s
				cell.Session = &sess
				cell.Dragging = draggedID != "" && s.ID == draggedID
			}
			row[di] = cell
		}
		rows[ti] = row
	}
	return View{Days: days, Times: times, Rows: rows}
}
