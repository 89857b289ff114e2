package model

// StudyPlan is a career curriculum version — maps to study_plans.
type StudyPlan struct {
	StudyPlanID   string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"study_plan_id"`
	Name          string `gorm:"type:varchar(100);not null"                     json:"name"`
	CareerID      string `gorm:"type:uuid;not null"                             json:"career_id"`
	EffectiveYear int    `gorm:"type:smallint;not null"                         json:"effective_year"`
	IsActive      bool   `gorm:"not null;default:true"                          json:"is_active"`
	SoftDeleteModel

	Career *Career `gorm:"foreignKey:CareerID;references:CareerID" json:"career,omitempty"`
}

// TableName sets the table name.
func (StudyPlan) TableName() string { return "study_plans" }
