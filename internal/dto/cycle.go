package dto

// CreateCycleRequest creates an academic cycle.
type CreateCycleRequest struct {
	Name      string `json:"name"       binding:"required,min=2,max=50"`
	StartDate string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   binding:"required,datetime=2006-01-02"`
}

// UpdateCycleRequest updates a cycle. Nil fields are left untouched.
type UpdateCycleRequest struct {
	Name      *string `json:"name"       binding:"omitempty,min=2,max=50"`
	StartDate *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"end_date"   binding:"omitempty,datetime=2006-01-02"`
}

// UpdateCycleStatusRequest transitions the cycle's schedule status.
type UpdateCycleStatusRequest struct {
	ScheduleStatus string `json:"schedule_status" binding:"required,oneof=planning published archived"`
}

// CycleResponse is the cycle shape returned across modules.
type CycleResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	ScheduleStatus string `json:"schedule_status"`
	IsActive       bool   `json:"is_active"`
	CreatedAt      string `json:"created_at,omitempty"`
}
