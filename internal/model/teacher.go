package model

// Teacher is a member of the teaching staff — maps to teachers.
type Teacher struct {
	TeacherID    string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"teacher_id"`
	FirstNames   string  `gorm:"type:varchar(100);not null"                     json:"first_names"`
	LastNames    string  `gorm:"type:varchar(100);not null"                     json:"last_names"`
	Email        string  `gorm:"type:varchar(150)"                              json:"email,omitempty"`
	ContractType string  `gorm:"type:varchar(20);not null;default:'full_time'"  json:"contract_type"` // full_time | hourly
	MaxLoad      int     `gorm:"type:smallint;not null;default:40"              json:"max_load"`
	MinLoad      int     `gorm:"type:smallint;not null;default:0"               json:"min_load"`
	FacultyID    *string `gorm:"type:uuid"                                      json:"faculty_id,omitempty"`
	IsActive     bool    `gorm:"not null;default:true"                          json:"is_active"`
	SoftDeleteModel

	Faculty *Faculty `gorm:"foreignKey:FacultyID;references:FacultyID" json:"faculty,omitempty"`
}

// TableName sets the table name.
func (Teacher) TableName() string { return "teachers" }

// FullName joins first and last names for display.
func (t *Teacher) FullName() string {
	if t.FirstNames == "" {
		return t.LastNames
	}
	if t.LastNames == "" {
		return t.FirstNames
	}
	return t.FirstNames + " " + t.LastNames
}
