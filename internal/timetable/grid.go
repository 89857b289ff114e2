// Package timetable implements the class placement engine: a weekly
// grid of discrete slots, a conflict validator, an in-memory schedule
// store and the placement controller that gates every mutation.
//
// The package is pure: no I/O, no persistence, no logging. Callers load
// the store from whatever backs it and persist accepted commits.
package timetable

// Grid is the static addressable slot space: ordered day labels ×
// ordered time labels. It holds no schedule state.
type Grid struct {
	days  []string
	times []string

	dayIndex  map[string]int
	timeIndex map[string]int
}

// NewGrid builds a grid from externally supplied, ordered labels.
func NewGrid(days, times []string) *Grid {
	g := &Grid{
		days:      append([]string(nil), days...),
		times:     append([]string(nil), times...),
		dayIndex:  make(map[string]int, len(days)),
		timeIndex: make(map[string]int, len(times)),
	}
	for i, d := range g.days {
		g.dayIndex[d] = i
	}
	for i, t := range g.times {
		g.timeIndex[t] = i
	}
	return g
}

// Days returns the ordered day labels.
func (g *Grid) Days() []string { return append([]string(nil), g.days...) }

// Times returns the ordered time labels.
func (g *Grid) Times() []string { return append([]string(nil), g.times...) }

// Contains reports whether (day, time) addresses a slot of this grid.
func (g *Grid) Contains(day, time string) bool {
	_, dayOK := g.dayIndex[day]
	_, timeOK := g.timeIndex[time]
	return dayOK && timeOK
}

// CellKey builds the composite key for a slot. Two sessions collide iff
// their cell keys are equal.
func CellKey(day, time string) string {
	return day + "|" + time
}
