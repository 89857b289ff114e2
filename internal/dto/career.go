package dto

// CreateCareerRequest creates a career under a faculty.
type CreateCareerRequest struct {
	Name          string `json:"name"           binding:"required,min=2,max=150"`
	FacultyID     string `json:"faculty_id"     binding:"required,uuid"`
	DurationYears int    `json:"duration_years" binding:"omitempty,min=1,max=10"`
}

// UpdateCareerRequest updates a career. Nil fields are left untouched.
type UpdateCareerRequest struct {
	Name          *string `json:"name"           binding:"omitempty,min=2,max=150"`
	FacultyID     *string `json:"faculty_id"     binding:"omitempty,uuid"`
	DurationYears *int    `json:"duration_years" binding:"omitempty,min=1,max=10"`
	IsActive      *bool   `json:"is_active"`
}

// CareerListRequest filters the career list.
type CareerListRequest struct {
	FacultyID       string `form:"faculty_id" binding:"omitempty,uuid"`
	IncludeInactive bool   `form:"include_inactive"`
}

// CareerResponse is the career shape returned across modules.
type CareerResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	FacultyID     string           `json:"faculty_id"`
	Faculty       *FacultyResponse `json:"faculty,omitempty"`
	DurationYears int              `json:"duration_years"`
	IsActive      bool             `json:"is_active"`
	CreatedAt     string           `json:"created_at,omitempty"`
}
