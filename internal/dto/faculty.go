package dto

// CreateFacultyRequest creates a faculty.
type CreateFacultyRequest struct {
	Name string `json:"name" binding:"required,min=2,max=150"`
}

// UpdateFacultyRequest updates a faculty. Nil fields are left untouched.
type UpdateFacultyRequest struct {
	Name     *string `json:"name"      binding:"omitempty,min=2,max=150"`
	IsActive *bool   `json:"is_active"`
}

// FacultyListRequest filters the faculty list.
type FacultyListRequest struct {
	IncludeInactive bool `form:"include_inactive"`
}
