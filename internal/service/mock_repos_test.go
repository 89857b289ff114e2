package service

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/model"
	"github.com/KatherinneAlgarin/GeneradorHorario-api/internal/repository"
)

// newMockRepository builds a fully mocked aggregate for service tests.
func newMockRepository() *repository.Repository {
	return &repository.Repository{
		User:         newMockUserRepo(),
		Faculty:      newMockFacultyRepo(),
		Career:       newMockCareerRepo(),
		Subject:      newMockSubjectRepo(),
		Room:         newMockRoomRepo(),
		RoomType:     newMockRoomTypeRepo(),
		Cycle:        newMockCycleRepo(),
		StudyPlan:    newMockStudyPlanRepo(),
		Teacher:      newMockTeacherRepo(),
		TimeBlock:    newMockTimeBlockRepo(),
		Availability: newMockAvailabilityRepo(),
		ClassSession: newMockClassSessionRepo(),
	}
}

// ── Mock UserRepository ──

type mockUserRepo struct {
	users map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = fmt.Sprintf("user-%d", len(m.users)+1)
	}
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context, role, facultyID string, includeInactive bool, _, _ int) ([]model.User, int64, error) {
	var result []model.User
	for _, u := range m.users {
		if role != "" && u.Role != role {
			continue
		}
		if facultyID != "" && (u.FacultyID == nil || *u.FacultyID != facultyID) {
			continue
		}
		if !includeInactive && !u.IsActive {
			continue
		}
		result = append(result, *u)
	}
	return result, int64(len(result)), nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	m.users[user.UserID] = user
	return nil
}

func (m *mockUserRepo) UpdatePassword(_ context.Context, id, hash string) error {
	if u, ok := m.users[id]; ok {
		u.PasswordHash = hash
		return nil
	}
	return gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Delete(_ context.Context, id, _ string) error {
	delete(m.users, id)
	return nil
}

// ── Mock FacultyRepository ──

type mockFacultyRepo struct {
	faculties map[string]*model.Faculty
}

func newMockFacultyRepo() *mockFacultyRepo {
	return &mockFacultyRepo{faculties: make(map[string]*model.Faculty)}
}

func (m *mockFacultyRepo) Create(_ context.Context, faculty *model.Faculty) error {
	if faculty.FacultyID == "" {
		faculty.FacultyID = fmt.Sprintf("fac-%d", len(m.faculties)+1)
	}
	m.faculties[faculty.FacultyID] = faculty
	return nil
}

func (m *mockFacultyRepo) GetByID(_ context.Context, id string) (*model.Faculty, error) {
	if f, ok := m.faculties[id]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFacultyRepo) List(_ context.Context, includeInactive bool) ([]model.Faculty, error) {
	var result []model.Faculty
	for _, f := range m.faculties {
		if !includeInactive && !f.IsActive {
			continue
		}
		result = append(result, *f)
	}
	return result, nil
}

func (m *mockFacultyRepo) Update(_ context.Context, faculty *model.Faculty) error {
	m.faculties[faculty.FacultyID] = faculty
	return nil
}

func (m *mockFacultyRepo) Delete(_ context.Context, id, _ string) error {
	delete(m.faculties, id)
	return nil
}

// ── Mock CareerRepository ──

type mockCareerRepo struct {
	careers map[string]*model.Career
}

func newMockCareerRepo() *mockCareerRepo {
	return &mockCareerRepo{careers: make(map[string]*model.Career)}
}

func (m *mockCareerRepo) Create(_ context.Context, career *model.Career) error {
	if career.CareerID == "" {
		career.CareerID = fmt.Sprintf("car-%d", len(m.careers)+1)
	}
	m.careers[career.CareerID] = career
	return nil
}

func (m *mockCareerRepo) GetByID(_ context.Context, id string) (*model.Career, error) {
	if c, ok := m.careers[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCareerRepo) List(_ context.Context, facultyID string, includeInactive bool) ([]model.Career, error) {
	var result []model.Career
	for _, c := range m.careers {
		if facultyID != "" && c.FacultyID != facultyID {
			continue
		}
		if !includeInactive && !c.IsActive {
			continue
		}
		result = append(result, *c)
	}
	return result, nil
}

func (m *mockCareerRepo) Update(_ context.Context, career *model.Career) error {
	m.careers[career.CareerID] = career
	return nil
}

func (m *mockCareerRepo) Delete(_ context.Context, id, _ string) error {
	delete(m.careers, id)
	return nil
}

// ── Mock SubjectRepository ──

type mockSubjectRepo struct {
	subjects map[string]*model.Subject
}

func newMockSubjectRepo() *mockSubjectRepo {
	return &mockSubjectRepo{subjects: make(map[string]*model.Subject)}
}

func (m *mockSubjectRepo) Create(_ context.Context, subject *model.Subject) error {
	if subject.SubjectID == "" {
		subject.SubjectID = fmt.Sprintf("subj-%d", len(m.subjects)+1)
	}
	m.subjects[subject.SubjectID] = subject
	return nil
}

func (m *mockSubjectRepo) GetByID(_ context.Context, id string) (*model.Subject, error) {
	if s, ok := m.subjects[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) GetByCode(_ context.Context, code string) (*model.Subject, error) {
	for _, s := range m.subjects {
		if s.Code == code {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSubjectRepo) List(_ context.Context, facultyID, keyword string, includeInactive bool, _, _ int) ([]model.Subject, int64, error) {
	var result []model.Subject
	for _, s := range m.subjects {
		if facultyID != "" && (s.FacultyID == nil || *s.FacultyID != facultyID) {
			continue
		}
		if keyword != "" && !strings.Contains(s.Name, keyword) && !strings.Contains(s.Code, keyword) {
			continue
		}
		if !includeInactive && !s.IsActive {
			continue
		}
		result = append(result, *s)
	}
	return result, int64(len(result)), nil
}

func (m *mockSubjectRepo) ListByIDs(_ context.Context, ids []string) ([]model.Subject, error) {
	var result []model.Subject
	for _, id := range ids {
		if s, ok := m.subjects[id]; ok {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockSubjectRepo) Update(_ context.Context, subject *model.Subject) error {
	m.subjects[subject.SubjectID] = subject
	return nil
}

func (m *mockSubjectRepo) Delete(_ context.Context, id, _ string) error {
	delete(m.subjects, id)
	return nil
}

// ── Mock RoomRepository / RoomTypeRepository ──

type mockRoomTypeRepo struct {
	types map[string]*model.RoomType
}

func newMockRoomTypeRepo() *mockRoomTypeRepo {
	return &mockRoomTypeRepo{types: make(map[string]*model.RoomType)}
}

func (m *mockRoomTypeRepo) Create(_ context.Context, roomType *model.RoomType) error {
	if roomType.RoomTypeID == "" {
		roomType.RoomTypeID = fmt.Sprintf("rt-%d", len(m.types)+1)
	}
	m.types[roomType.RoomTypeID] = roomType
	return nil
}

func (m *mockRoomTypeRepo) GetByID(_ context.Context, id string) (*model.RoomType, error) {
	if t, ok := m.types[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoomTypeRepo) List(_ context.Context) ([]model.RoomType, error) {
	var result []model.RoomType
	for _, t := range m.types {
		result = append(result, *t)
	}
	return result, nil
}

type mockRoomRepo struct {
	rooms map[string]*model.Room
}

func newMockRoomRepo() *mockRoomRepo {
	return &mockRoomRepo{rooms: make(map[string]*model.Room)}
}

func (m *mockRoomRepo) Create(_ context.Context, room *model.Room) error {
	if room.RoomID == "" {
		room.RoomID = fmt.Sprintf("room-%d", len(m.rooms)+1)
	}
	m.rooms[room.RoomID] = room
	return nil
}

func (m *mockRoomRepo) GetByID(_ context.Context, id string) (*model.Room, error) {
	if r, ok := m.rooms[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRoomRepo) List(_ context.Context, roomTypeID string, includeInactive bool) ([]model.Room, error) {
	var result []model.Room
	for _, r := range m.rooms {
		if roomTypeID != "" && r.RoomTypeID != roomTypeID {
			continue
		}
		if !includeInactive && !r.IsActive {
			continue
		}
		result = append(result, *r)
	}
	return result, nil
}

func (m *mockRoomRepo) Update(_ context.Context, room *model.Room) error {
	m.rooms[room.RoomID] = room
	return nil
}

func (m *mockRoomRepo) Delete(_ context.Context, id, _ string) error {
	delete(m.rooms, id)
	return nil
}

// ── Mock CycleRepository ──

type mockCycleRepo struct {
	cycles map[string]*model.Cycle
}

func newMockCycleRepo() *mockCycleRepo {
	return &mockCycleRepo{cycles: make(map[string]*model.Cycle)}
}

func (m *mockCycleRepo) Create(_ context.Context, cycle *model.Cycle) error {
	if cycle.CycleID == "" {
		cycle.CycleID = fmt.Sprintf("cycle-%d", len(m.cycles)+1)
	}
	m.cycles[cycle.CycleID] = cycle
	return nil
}

func (m *mockCycleRepo) GetByID(_ context.Context, id string) (*model.Cycle, error) {
	if c, ok := m.cycles[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCycleRepo) GetActive(_ context.Context) (*model.Cycle, error) {
	for _, c := range m.cycles {
		if c.IsActive {
			return c, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockCycleRepo) List(_ context.Context) ([]model.Cycle, error) {
	var result []model.Cycle
	for _, c := range m.cycles {
		result = append(result, *c)
	}
	return result, nil
}

func (m *mockCycleRepo) Update(_ context.Context, cycle *model.Cycle) error {
	m.cycles[cycle.CycleID] = cycle
	return nil
}

func (m *mockCycleRepo) SetActive(_ context.Context, id string) error {
	for _, c := range m.cycles {
		c.IsActive = c.CycleID == id
	}
	return nil
}

func (m *mockCycleRepo) Delete(_ context.Context, id, _ string) error {
	delete(m.cycles, id)
	return nil
}

// ── Mock StudyPlanRepository ──

type mockStudyPlanRepo struct {
	plans map[string]*model.StudyPlan
}

func newMockStudyPlanRepo() *mockStudyPlanRepo {
	return &mockStudyPlanRepo{plans: make(map[string]*model.StudyPlan)}
}

func (m *mockStudyPlanRepo) Create(_ context.Context, plan *model.StudyPlan) error {
	if plan.StudyPlanID == "" {
		plan.StudyPlanID = fmt.Sprintf("plan-%d", len(m.plans)+1)
	}
	m.plans[plan.StudyPlanID] = plan
	return nil
}

func (m *mockStudyPlanRepo) GetByID(_ context.Context, id string) (*model.StudyPlan, error) {
	if p, ok := m.plans[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudyPlanRepo) List(_ context.Context, careerID string, includeInactive bool) ([]model.StudyPlan, error) {
	var result []model.StudyPlan
	for _, p := range m.plans {
		if careerID != "" && p.CareerID != careerID {
			continue
		}
		if !includeInactive && !p.IsActive {
			continue
		}
		result = append(result, *p)
	}
	return result, nil
}

func (m *mockStudyPlanRepo) Update(_ context.Context, plan *model.StudyPlan) error {
	m.plans[plan.StudyPlanID] = plan
	return nil
}

func (m *mockStudyPlanRepo) Delete(_ context.Context, id, _ string) error {
	delete(m.plans, id)
	return nil
}

// ── Mock TeacherRepository ──

type mockTeacherRepo struct {
	teachers map[string]*model.Teacher
}

func newMockTeacherRepo() *mockTeacherRepo {
	return &mockTeacherRepo{teachers: make(map[string]*model.Teacher)}
}

func (m *mockTeacherRepo) Create(_ context.Context, teacher *model.Teacher) error {
	if teacher.TeacherID == "" {
		teacher.TeacherID = fmt.Sprintf("teach-%d", len(m.teachers)+1)
	}
	m.teachers[teacher.TeacherID] = teacher
	return nil
}

func (m *mockTeacherRepo) CreateBatch(ctx context.Context, teachers []*model.Teacher) error {
	for _, t := range teachers {
		if err := m.Create(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func (m *mockTeacherRepo) GetByID(_ context.Context, id string) (*model.Teacher, error) {
	if t, ok := m.teachers[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) GetByEmail(_ context.Context, email string) (*model.Teacher, error) {
	for _, t := range m.teachers {
		if t.Email == email {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) List(_ context.Context, facultyID, keyword string, includeInactive bool, _, _ int) ([]model.Teacher, int64, error) {
	var result []model.Teacher
	for _, t := range m.teachers {
		if facultyID != "" && (t.FacultyID == nil || *t.FacultyID != facultyID) {
			continue
		}
		if keyword != "" && !strings.Contains(t.FullName(), keyword) {
			continue
		}
		if !includeInactive && !t.IsActive {
			continue
		}
		result = append(result, *t)
	}
	return result, int64(len(result)), nil
}

func (m *mockTeacherRepo) Update(_ context.Context, teacher *model.Teacher) error {
	m.teachers[teacher.TeacherID] = teacher
	return nil
}

func (m *mockTeacherRepo) Delete(_ context.Context, id, _ string) error {
	delete(m.teachers, id)
	return nil
}

// ── Mock TimeBlockRepository ──

type mockTimeBlockRepo struct {
	blocks map[string]*model.TimeBlock
	order  []string
}

func newMockTimeBlockRepo() *mockTimeBlockRepo {
	return &mockTimeBlockRepo{blocks: make(map[string]*model.TimeBlock)}
}

func (m *mockTimeBlockRepo) Create(_ context.Context, block *model.TimeBlock) error {
	if block.TimeBlockID == "" {
		block.TimeBlockID = fmt.Sprintf("tb-%d", len(m.blocks)+1)
	}
	m.blocks[block.TimeBlockID] = block
	m.order = append(m.order, block.TimeBlockID)
	return nil
}

func (m *mockTimeBlockRepo) GetByID(_ context.Context, id string) (*model.TimeBlock, error) {
	if b, ok := m.blocks[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTimeBlockRepo) List(_ context.Context, includeInactive bool) ([]model.TimeBlock, error) {
	var result []model.TimeBlock
	for _, id := range m.order {
		b, ok := m.blocks[id]
		if !ok {
			continue
		}
		if !includeInactive && !b.IsActive {
			continue
		}
		result = append(result, *b)
	}
	return result, nil
}

func (m *mockTimeBlockRepo) Update(_ context.Context, block *model.TimeBlock) error {
	m.blocks[block.TimeBlockID] = block
	return nil
}

func (m *mockTimeBlockRepo) Delete(_ context.Context, id, _ string) error {
	delete(m.blocks, id)
	return nil
}

// ── Mock AvailabilityRepository ──

type mockAvailabilityRepo struct {
	slots map[string][]model.TeacherAvailability      // key: teacherID|cycleID
	prefs map[string][]model.TeacherSubjectPreference // key: teacherID|cycleID
}

func newMockAvailabilityRepo() *mockAvailabilityRepo {
	return &mockAvailabilityRepo{
		slots: make(map[string][]model.TeacherAvailability),
		prefs: make(map[string][]model.TeacherSubjectPreference),
	}
}

func availKey(teacherID, cycleID string) string { return teacherID + "|" + cycleID }

func (m *mockAvailabilityRepo) ListSlots(_ context.Context, teacherID, cycleID string) ([]model.TeacherAvailability, error) {
	return m.slots[availKey(teacherID, cycleID)], nil
}

func (m *mockAvailabilityRepo) ListPreferences(_ context.Context, teacherID, cycleID string) ([]model.TeacherSubjectPreference, error) {
	return m.prefs[availKey(teacherID, cycleID)], nil
}

func (m *mockAvailabilityRepo) Replace(_ context.Context, teacherID, cycleID string, slots []model.TeacherAvailability, prefs []model.TeacherSubjectPreference) error {
	key := availKey(teacherID, cycleID)
	m.slots[key] = slots
	m.prefs[key] = prefs
	return nil
}

func (m *mockAvailabilityRepo) ListTeacherIDsForSlot(_ context.Context, cycleID, day, timeBlockID string) ([]string, error) {
	var ids []string
	for _, list := range m.slots {
		for _, s := range list {
			if s.CycleID == cycleID && s.Day == day && s.TimeBlockID == timeBlockID {
				ids = append(ids, s.TeacherID)
			}
		}
	}
	return ids, nil
}

// ── Mock ClassSessionRepository ──

type mockClassSessionRepo struct {
	sessions map[string]*model.ClassSession
}

func newMockClassSessionRepo() *mockClassSessionRepo {
	return &mockClassSessionRepo{sessions: make(map[string]*model.ClassSession)}
}

func (m *mockClassSessionRepo) Create(_ context.Context, session *model.ClassSession) error {
	m.sessions[session.SessionID] = session
	return nil
}

func (m *mockClassSessionRepo) GetByID(_ context.Context, id string) (*model.ClassSession, error) {
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockClassSessionRepo) ListByCycle(_ context.Context, cycleID string) ([]model.ClassSession, error) {
	var result []model.ClassSession
	for _, s := range m.sessions {
		if s.CycleID == cycleID {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockClassSessionRepo) ListByCareerAndCycle(_ context.Context, careerID, cycleID string) ([]model.ClassSession, error) {
	var result []model.ClassSession
	for _, s := range m.sessions {
		if s.CareerID == careerID && s.CycleID == cycleID {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockClassSessionRepo) ListByTeacherAndCycle(_ context.Context, teacherID, cycleID string) ([]model.ClassSession, error) {
	var result []model.ClassSession
	for _, s := range m.sessions {
		if s.CycleID == cycleID && s.TeacherID != nil && *s.TeacherID == teacherID {
			result = append(result, *s)
		}
	}
	return result, nil
}

func (m *mockClassSessionRepo) Update(_ context.Context, session *model.ClassSession) error {
	if _, ok := m.sessions[session.SessionID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.sessions[session.SessionID] = session
	return nil
}

func (m *mockClassSessionRepo) UpdateSlot(_ context.Context, id, day, startTime, _ string) error {
	s, ok := m.sessions[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	s.Day = day
	s.StartTime = startTime
	return nil
}

func (m *mockClassSessionRepo) Delete(_ context.Context, id string) error {
	delete(m.sessions, id)
	return nil
}
