package dto

// ── timetable module DTO ──

// TimetableViewRequest selects the grid to render.
type TimetableViewRequest struct {
	CareerID string `form:"career_id" binding:"required,uuid"`
	CycleID  string `form:"cycle_id"  binding:"required,uuid"`
}

// CreateSessionRequest places a new class in a clicked empty cell. The
// day and start time come from the cell, the rest from the form.
type CreateSessionRequest struct {
	CareerID    string  `json:"career_id"    binding:"required,uuid"`
	CycleID     string  `json:"cycle_id"     binding:"required,uuid"`
	Day         string  `json:"day"          binding:"required"`
	StartTime   string  `json:"start_time"   binding:"required"`
	SubjectID   string  `json:"subject_id"`
	TeacherID   *string `json:"teacher_id"   binding:"omitempty,uuid"`
	RoomID      string  `json:"room_id"`
	SectionCode string  `json:"section_code" binding:"omitempty,max=20"`
	ColorTag    string  `json:"color_tag"    binding:"omitempty,max=20"`
}

// MoveSessionRequest relocates an existing session to another cell.
type MoveSessionRequest struct {
	Day       string `json:"day"        binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
}

// UpdateSessionRequest rewrites a session's content in place. The
// session keeps its cell.
type UpdateSessionRequest struct {
	SubjectID   string  `json:"subject_id"`
	TeacherID   *string `json:"teacher_id"   binding:"omitempty,uuid"`
	RoomID      string  `json:"room_id"`
	SectionCode string  `json:"section_code" binding:"omitempty,max=20"`
	ColorTag    string  `json:"color_tag"    binding:"omitempty,max=20"`
}

// SessionResponse is one placed class in API payloads.
type SessionResponse struct {
	ID          string `json:"id"`
	CareerID    string `json:"career_id"`
	CycleID     string `json:"cycle_id"`
	SubjectID   string `json:"subject_id"`
	SubjectName string `json:"subject_name"`
	TeacherID   string `json:"teacher_id,omitempty"`
	TeacherName string `json:"teacher_name,omitempty"`
	RoomID      string `json:"room_id"`
	RoomName    string `json:"room_name"`
	SectionCode string `json:"section_code"`
	Day         string `json:"day"`
	StartTime   string `json:"start_time"`
	ColorTag    string `json:"color_tag"`
}

// ConflictResponse explains a rejected placement.
type ConflictResponse struct {
	Code                 string `json:"code"`
	Reason               string `json:"reason"`
	ConflictingSessionID string `json:"conflicting_session_id,omitempty"`
}

// TimetableCell is one grid position in the rendered view.
type TimetableCell struct {
	Day       string           `json:"day"`
	StartTime string           `json:"start_time"`
	Session   *SessionResponse `json:"session,omitempty"`
}

// TimetableViewResponse is the grid-shaped schedule for one career and
// cycle: one row per time block, one column per day.
type TimetableViewResponse struct {
	CareerID string              `json:"career_id"`
	CycleID  string              `json:"cycle_id"`
	Days     []string            `json:"days"`
	Times    []TimeBlockResponse `json:"times"`
	Rows     [][]TimetableCell   `json:"rows"`
}
