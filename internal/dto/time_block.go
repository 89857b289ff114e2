package dto

// CreateTimeBlockRequest creates one time row of the weekly grid.
type CreateTimeBlockRequest struct {
	Label     string `json:"label"      binding:"required,min=2,max=50"`
	StartTime string `json:"start_time" binding:"required,datetime=15:04"`
	EndTime   string `json:"end_time"   binding:"required,datetime=15:04"`
	SortOrder int    `json:"sort_order" binding:"omitempty,min=0,max=100"`
}

// UpdateTimeBlockRequest updates a time block. Nil fields are left untouched.
type UpdateTimeBlockRequest struct {
	Label     *string `json:"label"      binding:"omitempty,min=2,max=50"`
	StartTime *string `json:"start_time" binding:"omitempty,datetime=15:04"`
	EndTime   *string `json:"end_time"   binding:"omitempty,datetime=15:04"`
	SortOrder *int    `json:"sort_order" binding:"omitempty,min=0,max=100"`
	IsActive  *bool   `json:"is_active"`
}

// TimeBlockResponse is the time block shape returned across modules.
type TimeBlockResponse struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}
