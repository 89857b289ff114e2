package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface.
type Repository struct {
	User         UserRepository
	Faculty      FacultyRepository
	Career       CareerRepository
	Subject      SubjectRepository
	Room         RoomRepository
	RoomType     RoomTypeRepository
	Cycle        CycleRepository
	StudyPlan    StudyPlanRepository
	Teacher      TeacherRepository
	TimeBlock    TimeBlockRepository
	Availability AvailabilityRepository
	ClassSession ClassSessionRepository
}

// NewRepository builds the aggregate over one gorm handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:         NewUserRepo(db),
		Faculty:      NewFacultyRepo(db),
		Career:       NewCareerRepo(db),
		Subject:      NewSubjectRepo(db),
		Room:         NewRoomRepo(db),
		RoomType:     NewRoomTypeRepo(db),
		Cycle:        NewCycleRepo(db),
		StudyPlan:    NewStudyPlanRepo(db),
		Teacher:      NewTeacherRepo(db),
		TimeBlock:    NewTimeBlockRepo(db),
		Availability: NewAvailabilityRepo(db),
		ClassSession: NewClassSessionRepo(db),
	}
}
