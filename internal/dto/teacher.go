package dto

// CreateTeacherRequest registers a teaching staff member.
type CreateTeacherRequest struct {
	FirstNames   string  `json:"first_names"   binding:"required,min=1,max=100"`
	LastNames    string  `json:"last_names"    binding:"required,min=1,max=100"`
	Email        string  `json:"email"         binding:"omitempty,email,max=150"`
	ContractType string  `json:"contract_type" binding:"omitempty,oneof=full_time hourly"`
	MaxLoad      int     `json:"max_load"      binding:"omitempty,min=0,max=60"`
	MinLoad      int     `json:"min_load"      binding:"omitempty,min=0,max=60"`
	FacultyID    *string `json:"faculty_id"    binding:"omitempty,uuid"`
}

// UpdateTeacherRequest updates a teacher. Nil fields are left untouched.
type UpdateTeacherRequest struct {
	FirstNames   *string `json:"first_names"   binding:"omitempty,min=1,max=100"`
	LastNames    *string `json:"last_names"    binding:"omitempty,min=1,max=100"`
	Email        *string `json:"email"         binding:"omitempty,email,max=150"`
	ContractType *string `json:"contract_type" binding:"omitempty,oneof=full_time hourly"`
	MaxLoad      *int    `json:"max_load"      binding:"omitempty,min=0,max=60"`
	MinLoad      *int    `json:"min_load"      binding:"omitempty,min=0,max=60"`
	FacultyID    *string `json:"faculty_id"    binding:"omitempty,uuid"`
	IsActive     *bool   `json:"is_active"`
}

// TeacherListRequest filters the teacher list.
type TeacherListRequest struct {
	PaginationRequest
	FacultyID       string `form:"faculty_id" binding:"omitempty,uuid"`
	Keyword         string `form:"keyword"    binding:"omitempty,max=100"`
	IncludeInactive bool   `form:"include_inactive"`
}

// TeacherResponse is the teacher shape returned across modules.
type TeacherResponse struct {
	ID           string `json:"id"`
	FirstNames   string `json:"first_names"`
	LastNames    string `json:"last_names"`
	FullName     string `json:"full_name"`
	Email        string `json:"email,omitempty"`
	ContractType string `json:"contract_type"`
	MaxLoad      int    `json:"max_load"`
	MinLoad      int    `json:"min_load"`
	FacultyID    string `json:"faculty_id,omitempty"`
	IsActive     bool   `json:"is_active"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// RosterImportResult summarizes an xlsx roster import.
type RosterImportResult struct {
	Imported int      `json:"imported"`
	Skipped  int      `json:"skipped"`
	Errors   []string `json:"errors,omitempty"`
}
