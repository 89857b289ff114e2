package handler

import "github.com/KatherinneAlgarin/GeneradorHorario-api/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Faculty      *FacultyHandler
	Career       *CareerHandler
	Subject      *SubjectHandler
	Room         *RoomHandler
	Cycle        *CycleHandler
	StudyPlan    *StudyPlanHandler
	Teacher      *TeacherHandler
	TimeBlock    *TimeBlockHandler
	Availability *AvailabilityHandler
	Timetable    *TimetableHandler
	Export       *ExportHandler
}

// NewHandler builds the aggregate.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		User:         NewUserHandler(svc.User),
		Faculty:      NewFacultyHandler(svc.Faculty),
		Career:       NewCareerHandler(svc.Career),
		Subject:      NewSubjectHandler(svc.Subject),
		Room:         NewRoomHandler(svc.Room),
		Cycle:        NewCycleHandler(svc.Cycle),
		StudyPlan:    NewStudyPlanHandler(svc.StudyPlan),
		Teacher:      NewTeacherHandler(svc.Teacher),
		TimeBlock:    NewTimeBlockHandler(svc.TimeBlock),
		Availability: NewAvailabilityHandler(svc.Availability),
		Timetable:    NewTimetableHandler(svc.Timetable),
		Export:       NewExportHandler(svc.Export),
	}
}
