package model

// ClassSession is one placed class occurrence on the weekly grid —
// maps to class_sessions. Day and StartTime address a grid slot; the
// subject/teacher/room references are resolved to labels at render time.
type ClassSession struct {
	SessionID   string  `gorm:"type:uuid;primaryKey"                         json:"session_id"`
	CareerID    string  `gorm:"type:uuid;not null"                           json:"career_id"`
	CycleID     string  `gorm:"type:uuid;not null"                           json:"cycle_id"`
	SubjectID   string  `gorm:"type:uuid;not null"                           json:"subject_id"`
	TeacherID   *string `gorm:"type:uuid"                                    json:"teacher_id,omitempty"`
	RoomID      string  `gorm:"type:uuid;not null"                           json:"room_id"`
	SectionCode string  `gorm:"type:varchar(20);not null;default:'01'"       json:"section_code"`
	Day         string  `gorm:"type:varchar(10);not null"                    json:"day"`
	StartTime   string  `gorm:"type:varchar(20);not null"                    json:"start_time"`
	ColorTag    string  `gorm:"type:varchar(20);not null;default:'color-blue'" json:"color_tag"`
	BaseModel

	Subject *Subject `gorm:"foreignKey:SubjectID;references:SubjectID" json:"subject,omitempty"`
	Teacher *Teacher `gorm:"foreignKey:TeacherID;references:TeacherID" json:"teacher,omitempty"`
	Room    *Room    `gorm:"foreignKey:RoomID;references:RoomID"       json:"room,omitempty"`
}

// TableName sets the table name.
func (ClassSession) TableName() string { return "class_sessions" }
