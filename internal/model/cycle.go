package model

import "time"

// Cycle is an academic term (e.g. "01-2026") — maps to cycles.
type Cycle struct {
	CycleID        string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"cycle_id"`
	Name           string    `gorm:"type:varchar(50);not null"                      json:"name"`
	StartDate      time.Time `gorm:"type:date;not null"                             json:"start_date"`
	EndDate        time.Time `gorm:"type:date;not null"                             json:"end_date"`
	ScheduleStatus string    `gorm:"type:varchar(20);not null;default:'planning'"   json:"schedule_status"` // planning | published | archived
	IsActive       bool      `gorm:"not null;default:false"                         json:"is_active"`
	SoftDeleteModel
}

// TableName sets the table name.
func (Cycle) TableName() string { return "cycles" }
