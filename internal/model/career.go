package model

// Career is an academic program — maps to careers.
type Career struct {
	CareerID      string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"career_id"`
	Name          string `gorm:"type:varchar(150);not null"                     json:"name"`
	FacultyID     string `gorm:"type:uuid;not null"                             json:"faculty_id"`
	DurationYears int    `gorm:"type:smallint;not null;default:5"               json:"duration_years"`
	IsActive      bool   `gorm:"not null;default:true"                          json:"is_active"`
	SoftDeleteModel

	Faculty *Faculty `gorm:"foreignKey:FacultyID;references:FacultyID" json:"faculty,omitempty"`
}

// TableName sets the table name.
func (Career) TableName() string { return "careers" }
