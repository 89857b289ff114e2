package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/KatherinneAlgarin/GeneradorHorario-api/config"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/dto"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/repository"
)

func setupTeacherService(importEnabled bool) (TeacherService, *repository.Repository) {
	repo := newMockRepository()
	cfg := &config.Config{}
	cfg.Feature.RosterImportEnabled = importEnabled
	return NewTeacherService(cfg, repo, zap.NewNop()), repo
}

func rosterFile(t *testing.T, rows [][]interface{}) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	_ = f.SetSheetRow(sheet, "A1", &[]interface{}{"first_names", "last_names", "email", "contract_type", "max_load"})
	for i, row := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		_ = f.SetSheetRow(sheet, cell, &row)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("building roster fixture failed: %v", err)
	}
	return buf
}

func TestTeacherService_Create_Defaults(t *testing.T) {
	svc, _ := setupTeacherService(true)

	result, err := svc.Create(context.Background(), &dto.CreateTeacherRequest{
		FirstNames: "Ana",
		LastNames:  "Lopez",
	}, "admin-1")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if result.ContractType != "full_time" {
		t.Errorf("expected default contract full_time, got %s", result.ContractType)
	}
	if result.MaxLoad != 40 {
		t.Errorf("expected default max load 40, got %d", result.MaxLoad)
	}
	if result.FullName != "Ana Lopez" {
		t.Errorf("unexpected full name: %s", result.FullName)
	}
}

func TestTeacherService_ImportRoster_Success(t *testing.T) {
	svc, repo := setupTeacherService(true)

	buf := rosterFile(t, [][]interface{}{
		{"Ana", "Lopez", "ana@uni.edu", "full_time", 40},
		{"Juan", "Perez", "juan@uni.edu", "hourly", 20},
	})

	result, err := svc.ImportRoster(context.Background(), buf, nil, "admin-1")
	if err != nil {
		t.Fatalf("ImportRoster failed: %v", err)
	}
	if result.Imported != 2 || result.Skipped != 0 {
		t.Errorf("expected 2 imported, got %+v", result)
	}

	teacher, err := repo.Teacher.GetByEmail(context.Background(), "juan@uni.edu")
	if err != nil {
		t.Fatalf("imported teacher not stored: %v", err)
	}
	if teacher.ContractType != "hourly" || teacher.MaxLoad != 20 {
		t.Errorf("imported fields wrong: %+v", teacher)
	}
}

func TestTeacherService_ImportRoster_SkipsBadRows(t *testing.T) {
	svc, _ := setupTeacherService(true)

	// seed a teacher so the duplicate email row gets skipped
	_, err := svc.Create(context.Background(), &dto.CreateTeacherRequest{
		FirstNames: "Ana", LastNames: "Lopez", Email: "ana@uni.edu",
	}, "admin-1")
	if err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	buf := rosterFile(t, [][]interface{}{
		{"Ana", "Lopez", "ana@uni.edu", "full_time", 40}, // duplicate email
		{"", "Perez", "x@uni.edu", "hourly", 20},         // incomplete name
		{"Maria", "Gomez", "maria@uni.edu", "full_time", 40},
	})

	result, err := svc.ImportRoster(context.Background(), buf, nil, "admin-1")
	if err != nil {
		t.Fatalf("ImportRoster failed: %v", err)
	}
	if result.Imported != 1 {
		t.Errorf("expected 1 imported, got %d", result.Imported)
	}
	if result.Skipped != 2 || len(result.Errors) != 2 {
		t.Errorf("expected 2 skipped rows with reasons, got %+v", result)
	}
}

func TestTeacherService_ImportRoster_Disabled(t *testing.T) {
	svc, _ := setupTeacherService(false)

	buf := rosterFile(t, [][]interface{}{{"Ana", "Lopez", "", "", ""}})
	_, err := svc.ImportRoster(context.Background(), buf, nil, "admin-1")
	if !errors.Is(err, ErrRosterImportDisabled) {
		t.Errorf("expected ErrRosterImportDisabled, got %v", err)
	}
}

func TestTeacherService_ImportRoster_EmptyFile(t *testing.T) {
	svc, _ := setupTeacherService(true)

	buf := rosterFile(t, nil)
	_, err := svc.ImportRoster(context.Background(), buf, nil, "admin-1")
	if !errors.Is(err, ErrRosterEmpty) {
		t.Errorf("expected ErrRosterEmpty, got %v", err)
	}
}
