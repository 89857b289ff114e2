package dto

// AvailabilitySlot is one (day, time block) cell a teacher can cover.
type AvailabilitySlot struct {
	Day         string `json:"day"           binding:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday"`
	TimeBlockID string `json:"time_block_id" binding:"required,uuid"`
}

// SaveAvailabilityRequest replaces a teacher's availability for a cycle
// in full: slots plus the subjects they offer to teach.
type SaveAvailabilityRequest struct {
	CycleID    string             `json:"cycle_id"    binding:"required,uuid"`
	Slots      []AvailabilitySlot `json:"slots"       binding:"omitempty,dive"`
	SubjectIDs []string           `json:"subject_ids" binding:"omitempty,dive,uuid"`
}

// AvailabilityResponse is a teacher's declared availability for a cycle.
type AvailabilityResponse struct {
	TeacherID  string             `json:"teacher_id"`
	CycleID    string             `json:"cycle_id"`
	Slots      []AvailabilitySlot `json:"slots"`
	SubjectIDs []string           `json:"subject_ids"`
}
