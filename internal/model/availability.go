package model

import "time"

// TeacherAvailability is one grid slot a teacher can cover in a cycle —
// maps to teacher_availabilities.
type TeacherAvailability struct {
	AvailabilityID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"availability_id"`
	TeacherID      string    `gorm:"type:uuid;not null"                             json:"teacher_id"`
	CycleID        string    `gorm:"type:uuid;not null"                             json:"cycle_id"`
	TimeBlockID    string    `gorm:"type:uuid;not null"                             json:"time_block_id"`
	Day            string    `gorm:"type:varchar(10);not null"                      json:"day"`
	CreatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`

	TimeBlock *TimeBlock `gorm:"foreignKey:TimeBlockID;references:TimeBlockID" json:"time_block,omitempty"`
}

// TableName sets the table name.
func (TeacherAvailability) TableName() string { return "teacher_availabilities" }

// TeacherSubjectPreference is a subject a teacher offers to teach in a
// cycle — maps to teacher_subject_preferences.
type TeacherSubjectPreference struct {
	PreferenceID string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"preference_id"`
	TeacherID    string    `gorm:"type:uuid;not null"                             json:"teacher_id"`
	CycleID      string    `gorm:"type:uuid;not null"                             json:"cycle_id"`
	SubjectID    string    `gorm:"type:uuid;not null"                             json:"subject_id"`
	CreatedAt    time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`

	Subject *Subject `gorm:"foreignKey:SubjectID;references:SubjectID" json:"subject,omitempty"`
}

// TableName sets the table name.
func (TeacherSubjectPreference) TableName() string { return "teacher_subject_preferences" }
