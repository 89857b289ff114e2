package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/dto"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/model"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/repository"
)

func setupCareerService() (CareerService, *repository.Repository) {
	repo := newMockRepository()
	_ = repo.Faculty.Create(context.Background(), &model.Faculty{
		FacultyID: "fac-1", Name: "Engineering", IsActive: true,
	})
	return NewCareerService(repo, zap.NewNop()), repo
}

func TestCareerService_Create_Success(t *testing.T) {
	svc, _ := setupCareerService()

	result, err := svc.Create(context.Background(), &dto.CreateCareerRequest{
		Name:      "Systems Engineering",
		FacultyID: "fac-1",
	}, "admin-1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if result.Name != "Systems Engineering" {
		t.Errorf("unexpected name: %s", result.Name)
	}
	if result.DurationYears != 5 {
		t.Errorf("expected default duration 5, got %d", result.DurationYears)
	}
	if !result.IsActive {
		t.Error("new career should be active")
	}
}

func TestCareerService_Create_UnknownFaculty(t *testing.T) {
	svc, _ := setupCareerService()

	_, err := svc.Create(context.Background(), &dto.CreateCareerRequest{
		Name:      "Systems Engineering",
		FacultyID: "nonexistent",
	}, "admin-1")
	if !errors.Is(err, ErrFacultyNotFound) {
		t.Errorf("expected ErrFacultyNotFound, got %v", err)
	}
}

func TestCareerService_Update_PartialFields(t *testing.T) {
	svc, _ := setupCareerService()
	created, err := svc.Create(context.Background(), &dto.CreateCareerRequest{
		Name: "Systems Engineering", FacultyID: "fac-1", DurationYears: 4,
	}, "admin-1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	newName := "Software Engineering"
	updated, err := svc.Update(context.Background(), created.ID, &dto.UpdateCareerRequest{
		Name: &newName,
	}, "admin-2")
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Name != "Software Engineering" {
		t.Errorf("name not updated: %s", updated.Name)
	}
	if updated.DurationYears != 4 {
		t.Errorf("untouched field changed: %d", updated.DurationYears)
	}
}

func TestCareerService_GetByID_NotFound(t *testing.T) {
	svc, _ := setupCareerService()

	_, err := svc.GetByID(context.Background(), "nonexistent")
	if !errors.Is(err, ErrCareerNotFound) {
		t.Errorf("expected ErrCareerNotFound, got %v", err)
	}
}

func TestCareerService_Delete(t *testing.T) {
	svc, _ := setupCareerService()
	created, _ := svc.Create(context.Background(), &dto.CreateCareerRequest{
		Name: "Systems Engineering", FacultyID: "fac-1",
	}, "admin-1")

	if err := svc.Delete(context.Background(), created.ID, "admin-1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), created.ID); !errors.Is(err, ErrCareerNotFound) {
		t.Errorf("deleted career still retrievable: %v", err)
	}
}
