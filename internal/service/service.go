package service

import (
	"go.uber.org/zap"

	"github.com/KatherinneAlgarin/GeneradorHorario-api/config"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/repository"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/pkg/jwt"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/pkg/redis"
)

// Service aggregates every business interface.
type Service struct {
	Auth         AuthService
	User         UserService
	Faculty      FacultyService
	Career       CareerService
	Subject      SubjectService
	Room         RoomService
	Cycle        CycleService
	StudyPlan    StudyPlanService
	Teacher      TeacherService
	TimeBlock    TimeBlockService
	Availability AvailabilityService
	Timetable    TimetableService
	Export       ExportService
}

// NewService builds the aggregate.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:         NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:         NewUserService(repo, logger),
		Faculty:      NewFacultyService(repo, logger),
		Career:       NewCareerService(repo, logger),
		Subject:      NewSubjectService(repo, logger),
		Room:         NewRoomService(repo, logger),
		Cycle:        NewCycleService(repo, logger),
		StudyPlan:    NewStudyPlanService(repo, logger),
		Teacher:      NewTeacherService(cfg, repo, logger),
		TimeBlock:    NewTimeBlockService(repo, logger),
		Availability: NewAvailabilityService(repo, logger),
		Timetable:    NewTimetableService(repo, logger),
		Export:       NewExportService(repo, logger),
	}
}
