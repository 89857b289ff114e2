package model

// User roles. Deans are scoped to a faculty; general admins are not.
const (
	RoleAdmin   = "admin"
	RoleDean    = "dean"
	RoleTeacher = "teacher"
)

// User is a console account — maps to users.
type User struct {
	UserID       string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"user_id"`
	Name         string  `gorm:"type:varchar(150);not null"                     json:"name"`
	Email        string  `gorm:"type:varchar(150);not null;uniqueIndex"         json:"email"`
	PasswordHash string  `gorm:"type:varchar(100);not null"                     json:"-"`
	Role         string  `gorm:"type:varchar(20);not null;default:'teacher'"    json:"role"`
	FacultyID    *string `gorm:"type:uuid"                                      json:"faculty_id,omitempty"`
	IsActive     bool    `gorm:"not null;default:true"                          json:"is_active"`
	SoftDeleteModel

	Faculty *Faculty `gorm:"foreignKey:FacultyID;references:FacultyID" json:"faculty,omitempty"`
}

// TableName sets the table name.
func (User) TableName() string { return "users" }
