package model

// Subject is a course in the catalog — maps to subjects.
type Subject struct {
	SubjectID   string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"subject_id"`
	Code        string  `gorm:"type:varchar(20);not null;uniqueIndex"          json:"code"`
	Name        string  `gorm:"type:varchar(150);not null"                     json:"name"`
	CreditUnits int     `gorm:"type:smallint;not null;default:4"               json:"credit_units"`
	Kind        string  `gorm:"type:varchar(20);not null;default:'theory'"     json:"kind"` // theory | practice
	FacultyID   *string `gorm:"type:uuid"                                      json:"faculty_id,omitempty"`
	IsActive    bool    `gorm:"not null;default:true"                          json:"is_active"`
	SoftDeleteModel

	Faculty *Faculty `gorm:"foreignKey:FacultyID;references:FacultyID" json:"faculty,omitempty"`
}

// TableName sets the table name.
func (Subject) TableName() string { return "subjects" }
