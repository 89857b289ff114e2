package dto

// CreateStudyPlanRequest creates a curriculum version for a career.
type CreateStudyPlanRequest struct {
	Name          string `json:"name"           binding:"required,min=2,max=100"`
	CareerID      string `json:"career_id"      binding:"required,uuid"`
	EffectiveYear int    `json:"effective_year" binding:"required,min=1990,max=2100"`
}

// UpdateStudyPlanRequest updates a study plan. Nil fields are left untouched.
type UpdateStudyPlanRequest struct {
	Name          *string `json:"name"           binding:"omitempty,min=2,max=100"`
	EffectiveYear *int    `json:"effective_year" binding:"omitempty,min=1990,max=2100"`
	IsActive      *bool   `json:"is_active"`
}

// StudyPlanListRequest filters the study plan list.
type StudyPlanListRequest struct {
	CareerID        string `form:"career_id" binding:"omitempty,uuid"`
	IncludeInactive bool   `form:"include_inactive"`
}

// StudyPlanResponse is the study plan shape returned across modules.
type StudyPlanResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	CareerID      string          `json:"career_id"`
	Career        *CareerResponse `json:"career,omitempty"`
	EffectiveYear int             `json:"effective_year"`
	IsActive      bool            `json:"is_active"`
	CreatedAt     string          `json:"created_at,omitempty"`
}
