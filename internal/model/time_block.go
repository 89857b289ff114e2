package model

// TimeBlock is one row of the weekly grid — maps to time_blocks.
// The label is what the grid and the placement engine address slots by.
type TimeBlock struct {
	TimeBlockID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"time_block_id"`
	Label       string `gorm:"type:varchar(50);not null"                      json:"label"` // e.g. "08:00 - 09:40"
	StartTime   string `gorm:"type:time;not null"                             json:"start_time"`
	EndTime     string `gorm:"type:time;not null"                             json:"end_time"`
	SortOrder   int    `gorm:"type:smallint;not null;default:0"               json:"sort_order"`
	IsActive    bool   `gorm:"not null;default:true"                          json:"is_active"`
	SoftDeleteModel
}

// TableName sets the table name.
func (TimeBlock) TableName() string { return "time_blocks" }
