package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/model"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/repository"
)

// ── export business errors ──

var (
	ErrExportNoSessions = errors.New("no sessions placed for this career and cycle")
	ErrExportGenerate   = errors.New("export file generation failed")
)

// ExportService renders a career's placed schedule as a downloadable
// file. Exports are byte buffers; the handler sets the HTTP headers.
type ExportService interface {
	// ExportXLSX renders the career's weekly grid as an Excel workbook.
	ExportXLSX(ctx context.Context, careerID, cycleID string) (*bytes.Buffer, string, error)
	// ExportICS renders the career's sessions as a weekly-recurring
	// iCalendar feed spanning the cycle's date range.
	ExportICS(ctx context.Context, careerID, cycleID string) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService instance.
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportXLSX — weekly grid as an Excel workbook
// ═══════════════════════════════════════════════════════════
//
// Layout: one sheet named after the career. Column A holds the time
// block labels, columns B.. hold Monday through Friday. Each occupied
// cell reads "Subject (Room)\nTeacher".

func (s *exportService) ExportXLSX(ctx context.Context, careerID, cycleID string) (*bytes.Buffer, string, error) {
	career, cycle, sessions, blocks, err := s.loadExport(ctx, careerID, cycleID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Schedule"
	f.SetSheetName(f.GetSheetName(0), sheet)

	// header row
	_ = f.SetCellValue(sheet, "A1", career.Name+" — "+cycle.Name)
	for i, day := range gridDays {
		col, _ := excelize.ColumnNumberToName(i + 2)
		_ = f.SetCellValue(sheet, col+"2", day)
	}
	_ = f.SetCellValue(sheet, "A2", "Time")

	// index sessions by (day, start label)
	type cellKey struct{ day, start string }
	byCell := make(map[cellKey]*model.ClassSession, len(sessions))
	for i := range sessions {
		sess := &sessions[i]
		byCell[cellKey{sess.Day, sess.StartTime}] = sess
	}

	for rowIdx, block := range blocks {
		row := rowIdx + 3
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), block.Label)
		for colIdx, day := range gridDays {
			sess, ok := byCell[cellKey{day, block.Label}]
			if !ok {
				continue
			}
			col, _ := excelize.ColumnNumberToName(colIdx + 2)
			_ = f.SetCellValue(sheet, fmt.Sprintf("%s%d", col, row), exportCellText(sess))
		}
	}
	_ = f.SetColWidth(sheet, "A", "F", 24)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("xlsx generation failed", zap.Error(err))
		return nil, "", ErrExportGenerate
	}

	filename := fmt.Sprintf("schedule_%s_%s.xlsx", career.Name, cycle.Name)
	return buf, filename, nil
}

// ═══════════════════════════════════════════════════════════
// ExportICS — weekly-recurring iCalendar feed
// ═══════════════════════════════════════════════════════════

func (s *exportService) ExportICS(ctx context.Context, careerID, cycleID string) (*bytes.Buffer, string, error) {
	career, cycle, sessions, blocks, err := s.loadExport(ctx, careerID, cycleID)
	if err != nil {
		return nil, "", err
	}

	blockByLabel := make(map[string]*model.TimeBlock, len(blocks))
	for i := range blocks {
		blockByLabel[blocks[i].Label] = &blocks[i]
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//GeneradorHorario//Schedule Export//EN")
	cal.SetName(career.Name + " " + cycle.Name)

	until := cycle.EndDate.Add(24 * time.Hour)
	for i := range sessions {
		sess := &sessions[i]
		block, ok := blockByLabel[sess.StartTime]
		if !ok {
			continue // session on a retired time block
		}
		first := firstOccurrence(cycle.StartDate, sess.Day)
		start, err1 := combine(first, block.StartTime)
		end, err2 := combine(first, block.EndTime)
		if err1 != nil || err2 != nil {
			continue
		}

		event := cal.AddEvent(sess.SessionID + "@generador-horario")
		event.SetDtStampTime(time.Now())
		event.SetStartAt(start)
		event.SetEndAt(end)
		event.SetSummary(exportSummary(sess))
		if sess.Room != nil {
			event.SetLocation(sess.Room.Name)
		}
		event.AddRrule(fmt.Sprintf("FREQ=WEEKLY;UNTIL=%s", until.UTC().Format("20060102T150405Z")))
	}

	buf := bytes.NewBufferString(cal.Serialize())
	filename := fmt.Sprintf("schedule_%s_%s.ics", career.Name, cycle.Name)
	return buf, filename, nil
}

// ── internal helpers ──

func (s *exportService) loadExport(ctx context.Context, careerID, cycleID string) (*model.Career, *model.Cycle, []model.ClassSession, []model.TimeBlock, error) {
	career, err := s.repo.Career.GetByID(ctx, careerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, nil, ErrCareerNotFound
		}
		s.logger.Error("career lookup failed", zap.Error(err))
		return nil, nil, nil, nil, err
	}
	cycle, err := s.repo.Cycle.GetByID(ctx, cycleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, nil, ErrCycleNotFound
		}
		s.logger.Error("cycle lookup failed", zap.Error(err))
		return nil, nil, nil, nil, err
	}
	sessions, err := s.repo.ClassSession.ListByCareerAndCycle(ctx, careerID, cycleID)
	if err != nil {
		s.logger.Error("session list failed", zap.Error(err))
		return nil, nil, nil, nil, err
	}
	if len(sessions) == 0 {
		return nil, nil, nil, nil, ErrExportNoSessions
	}
	blocks, err := s.repo.TimeBlock.List(ctx, true)
	if err != nil {
		s.logger.Error("time block list failed", zap.Error(err))
		return nil, nil, nil, nil, err
	}
	return career, cycle, sessions, blocks, nil
}

func exportCellText(sess *model.ClassSession) string {
	text := ""
	if sess.Subject != nil {
		text = sess.Subject.Name
	}
	if sess.Room != nil {
		text += " (" + sess.Room.Name + ")"
	}
	if sess.Teacher != nil {
		text += "\n" + sess.Teacher.FullName()
	}
	return text
}

func exportSummary(sess *model.ClassSession) string {
	summary := "Class"
	if sess.Subject != nil {
		summary = sess.Subject.Name
	}
	if sess.Teacher != nil {
		summary += " — " + sess.Teacher.FullName()
	}
	return summary
}

// firstOccurrence returns the first date on or after start that falls
// on the named weekday.
func firstOccurrence(start time.Time, day string) time.Time {
	target, ok := weekdayByName[day]
	if !ok {
		return start
	}
	d := start
	for d.Weekday() != target {
		d = d.Add(24 * time.Hour)
	}
	return d
}

var weekdayByName = map[string]time.Weekday{
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
}

// combine merges a date with an "HH:MM" clock reading in local time.
func combine(date time.Time, clock string) (time.Time, error) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		// time columns may carry seconds
		t, err = time.Parse("15:04:05", clock)
		if err != nil {
			return time.Time{}, err
		}
	}
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour(), t.Minute(), 0, 0, date.Location()), nil
}
