package dto

// CreateSubjectRequest creates a catalog subject.
type CreateSubjectRequest struct {
	Code        string  `json:"code"         binding:"required,min=2,max=20"`
	Name        string  `json:"name"         binding:"required,min=2,max=150"`
	CreditUnits int     `json:"credit_units" binding:"omitempty,min=1,max=12"`
	Kind        string  `json:"kind"         binding:"omitempty,oneof=theory practice"`
	FacultyID   *string `json:"faculty_id"   binding:"omitempty,uuid"`
}

// UpdateSubjectRequest updates a subject. Nil fields are left untouched.
type UpdateSubjectRequest struct {
	Code        *string `json:"code"         binding:"omitempty,min=2,max=20"`
	Name        *string `json:"name"         binding:"omitempty,min=2,max=150"`
	CreditUnits *int    `json:"credit_units" binding:"omitempty,min=1,max=12"`
	Kind        *string `json:"kind"         binding:"omitempty,oneof=theory practice"`
	FacultyID   *string `json:"faculty_id"   binding:"omitempty,uuid"`
	IsActive    *bool   `json:"is_active"`
}

// SubjectListRequest filters the subject list.
type SubjectListRequest struct {
	PaginationRequest
	FacultyID       string `form:"faculty_id" binding:"omitempty,uuid"`
	Keyword         string `form:"keyword"    binding:"omitempty,max=100"`
	IncludeInactive bool   `form:"include_inactive"`
}

// SubjectResponse is the subject shape returned across modules.
type SubjectResponse struct {
	ID          string `json:"id"`
	Code        string `json:"code"`
	Name        string `json:"name"`
	CreditUnits int    `json:"credit_units"`
	Kind        string `json:"kind"`
	FacultyID   string `json:"faculty_id,omitempty"`
	IsActive    bool   `json:"is_active"`
	CreatedAt   string `json:"created_at,omitempty"`
}
