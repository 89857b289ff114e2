package timetable

// Session is one placed class occurrence. Identity and conflicts are
// decided by the opaque IDs; the *Name fields are display labels joined
// from the catalogs when the store is loaded.
type Session struct {
	ID          string
	CareerID    string
	CycleID     string
	SubjectID   string
	SubjectName string
	TeacherID   string
	TeacherName string
	RoomID      string
	RoomName    string
	SectionCode string
	Day         string
	StartTime   string
	ColorTag    string
}

// CellKey returns the grid key of the session's current slot.
func (s Session) CellKey() string {
	return CellKey(s.Day, s.StartTime)
}

// at returns a copy of the session relocated to the given slot.
func (s Session) at(day, startTime string) Session {
	s.Day = day
	s.StartTime = startTime
	return s
}
