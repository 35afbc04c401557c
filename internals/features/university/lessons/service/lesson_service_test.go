// file: internals/features/university/lessons/service/lesson_service_test.go
package service

import (
	"context"
	"errors"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	classroomModel "universityku_backend/internals/features/university/classrooms/model"
	courseModel "universityku_backend/internals/features/university/courses/model"
	groupModel "universityku_backend/internals/features/university/groups/model"
	groupRepo "universityku_backend/internals/features/university/groups/repository"
	"universityku_backend/internals/features/university/lessons/dto"
	m "universityku_backend/internals/features/university/lessons/model"
	lessonRepo "universityku_backend/internals/features/university/lessons/repository"
	teacherModel "universityku_backend/internals/features/university/teachers/model"
)

/* =======================================================
   Fakes in-memory — store, resolver, group repo.
   DB transaksi dipegang sqlmock: Begin/Commit/Rollback saja,
   semua data lewat fake.
   ======================================================= */

type fakeStore struct {
	lessons []m.LessonModel
	saveErr error // bila di-set, Save gagal dengan error ini
}

func (s *fakeStore) WithTx(tx *gorm.DB) lessonRepo.LessonStore { return s }

func (s *fakeStore) FindByDateAndTeacher(ctx context.Context, day time.Time, teacherID uuid.UUID) ([]m.LessonModel, error) {
	return nil, nil
}
func (s *fakeStore) FindByDateAndGroup(ctx context.Context, day time.Time, groupID uuid.UUID) ([]m.LessonModel, error) {
	return nil, nil
}
func (s *fakeStore) FindByRangeAndTeacher(ctx context.Context, from, to time.Time, teacherID uuid.UUID) ([]m.LessonModel, error) {
	return nil, nil
}
func (s *fakeStore) FindByRangeAndGroup(ctx context.Context, from, to time.Time, groupID uuid.UUID) ([]m.LessonModel, error) {
	return nil, nil
}
func (s *fakeStore) FindByStartAndTeacherAndGroup(ctx context.Context, start time.Time, teacherID, groupID uuid.UUID) (*m.LessonModel, error) {
	return nil, nil
}
func (s *fakeStore) FindAllByDate(ctx context.Context, day time.Time) ([]m.LessonModel, error) {
	return nil, nil
}

func (s *fakeStore) FindConflicting(ctx context.Context, start, end time.Time, teacherID, groupID, classroomID, excludeID uuid.UUID) ([]m.LessonModel, error) {
	var out []m.LessonModel
	for _, l := range s.lessons {
		if excludeID != uuid.Nil && l.LessonID == excludeID {
			continue
		}
		if !(l.LessonStartAt.Before(end) && l.LessonEndAt.After(start)) {
			continue
		}
		if l.LessonTeacherID == teacherID || l.LessonGroupID == groupID || l.LessonClassroomID == classroomID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (s *fakeStore) FindByID(ctx context.Context, id uuid.UUID) (*m.LessonModel, error) {
	for i := range s.lessons {
		if s.lessons[i].LessonID == id {
			cp := s.lessons[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *fakeStore) Save(ctx context.Context, lesson *m.LessonModel) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	lesson.LessonUpdatedAt = time.Now()
	if lesson.LessonID == uuid.Nil {
		lesson.LessonID = uuid.New()
		lesson.LessonCreatedAt = time.Now() // meniru autoCreateTime
		s.lessons = append(s.lessons, *lesson)
		return nil
	}
	for i := range s.lessons {
		if s.lessons[i].LessonID == lesson.LessonID {
			s.lessons[i] = *lesson
			return nil
		}
	}
	s.lessons = append(s.lessons, *lesson)
	return nil
}

func (s *fakeStore) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	for i := range s.lessons {
		if s.lessons[i].LessonID == id {
			s.lessons = append(s.lessons[:i], s.lessons[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

type fakeResolver struct {
	courses    map[string]*courseModel.CourseModel
	teachers   map[string]*teacherModel.TeacherModel
	classrooms map[int]*classroomModel.ClassroomModel
}

func (r *fakeResolver) WithTx(tx *gorm.DB) lessonRepo.EntityResolver { return r }

func (r *fakeResolver) ResolveCourseByName(ctx context.Context, name string) (*courseModel.CourseModel, error) {
	return r.courses[name], nil
}
func (r *fakeResolver) ResolveTeacherByEmail(ctx context.Context, email string) (*teacherModel.TeacherModel, error) {
	return r.teachers[email], nil
}
func (r *fakeResolver) ResolveClassroomByNumber(ctx context.Context, number int) (*classroomModel.ClassroomModel, error) {
	return r.classrooms[number], nil
}

type fakeGroups struct {
	groups  map[string]*groupModel.GroupModel
	sizes   map[string]int
	created []string
}

func (g *fakeGroups) WithTx(tx *gorm.DB) groupRepo.GroupRepository { return g }

func (g *fakeGroups) FindByName(ctx context.Context, name string) (*groupModel.GroupModel, error) {
	return g.groups[name], nil
}

func (g *fakeGroups) FindOrCreateByName(ctx context.Context, name string) (*groupModel.GroupModel, bool, error) {
	if found := g.groups[name]; found != nil {
		return found, false, nil
	}
	row := &groupModel.GroupModel{GroupID: uuid.New(), GroupName: name}
	g.groups[name] = row
	g.created = append(g.created, name)
	return row, true, nil
}

func (g *fakeGroups) CountStudents(ctx context.Context, group *groupModel.GroupModel) (int, error) {
	return g.sizes[group.GroupName], nil
}

/* =========================
   Fixture
   ========================= */

func newTxDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
	})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}
	return gdb, mock
}

type fixture struct {
	svc    *LessonService
	store  *fakeStore
	groups *fakeGroups
	mock   sqlmock.Sqlmock

	courseID     uuid.UUID
	teacherID    uuid.UUID
	teacher2ID   uuid.UUID
	classroomID  uuid.UUID
	classroom2ID uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb, mock := newTxDB(t)
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	f := &fixture{
		store: &fakeStore{},
		groups: &fakeGroups{
			groups: map[string]*groupModel.GroupModel{},
			sizes:  map[string]int{},
		},
		mock:         mock,
		courseID:     uuid.New(),
		teacherID:    uuid.New(),
		teacher2ID:   uuid.New(),
		classroomID:  uuid.New(),
		classroom2ID: uuid.New(),
	}

	resolver := &fakeResolver{
		courses: map[string]*courseModel.CourseModel{
			"Matematika Diskrit": {CourseID: f.courseID, CourseName: "Matematika Diskrit"},
		},
		teachers: map[string]*teacherModel.TeacherModel{
			"dosen@kampus.ac.id":  {TeacherID: f.teacherID, TeacherEmail: "dosen@kampus.ac.id"},
			"dosen2@kampus.ac.id": {TeacherID: f.teacher2ID, TeacherEmail: "dosen2@kampus.ac.id"},
		},
		classrooms: map[int]*classroomModel.ClassroomModel{
			101: {ClassroomID: f.classroomID, ClassroomNumber: 101, ClassroomCapacity: 30},
			202: {ClassroomID: f.classroom2ID, ClassroomNumber: 202, ClassroomCapacity: 30},
		},
	}

	f.svc = &LessonService{
		DB:       gdb,
		Store:    f.store,
		Resolver: resolver,
		Groups:   f.groups,
		Cache:    nil,
		Loc:      loc,
	}
	return f
}

func validRequest() dto.CreateLessonRequest {
	return dto.CreateLessonRequest{
		LessonCourseName:      "Matematika Diskrit",
		LessonTeacherEmail:    "dosen@kampus.ac.id",
		LessonGroupName:       "AA-11",
		LessonClassroomNumber: 101,
		LessonStartAt:         "2021-10-18T10:00", // Senin
		LessonEndAt:           "2021-10-18T12:00",
	}
}

func scheduleKind(t *testing.T, err error) ErrorKind {
	t.Helper()
	var se *ScheduleError
	if !errors.As(err, &se) {
		t.Fatalf("expected *ScheduleError, got %T: %v", err, err)
	}
	return se.Kind
}

/* =========================
   AddLesson
   ========================= */

func TestAddLesson_Success(t *testing.T) {
	f := newFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	saved, err := f.svc.AddLesson(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("AddLesson: %v", err)
	}
	if saved.LessonID == uuid.Nil {
		t.Fatal("lesson id belum terisi")
	}
	if saved.LessonTeacherID != f.teacherID {
		t.Fatalf("teacher id salah: %s", saved.LessonTeacherID)
	}
	if got := saved.LessonStartAt.In(f.svc.Loc).Hour(); got != 10 {
		t.Fatalf("jam mulai harus 10 di timezone aplikasi, got %d", got)
	}
	if len(f.store.lessons) != 1 {
		t.Fatalf("store harus berisi 1 lesson, got %d", len(f.store.lessons))
	}
	if err := f.mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("tx expectations: %v", err)
	}
}

func TestAddLesson_GroupAutoCreated(t *testing.T) {
	f := newFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	if _, err := f.svc.AddLesson(context.Background(), validRequest()); err != nil {
		t.Fatalf("AddLesson: %v", err)
	}
	if len(f.groups.created) != 1 || f.groups.created[0] != "AA-11" {
		t.Fatalf("group AA-11 harus dibuat otomatis, created=%v", f.groups.created)
	}

	// Booking kedua pakai group sama, tidak boleh create lagi.
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	req := validRequest()
	req.LessonStartAt = "2021-10-19T10:00"
	req.LessonEndAt = "2021-10-19T12:00"
	if _, err := f.svc.AddLesson(context.Background(), req); err != nil {
		t.Fatalf("AddLesson kedua: %v", err)
	}
	if len(f.groups.created) != 1 {
		t.Fatalf("group tidak boleh dibuat dua kali, created=%v", f.groups.created)
	}
}

func TestAddLesson_UnknownCourse(t *testing.T) {
	f := newFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	req := validRequest()
	req.LessonCourseName = "Tidak Ada"

	_, err := f.svc.AddLesson(context.Background(), req)
	if kind := scheduleKind(t, err); kind != KindEntityNotFound {
		t.Fatalf("expected EntityNotFound, got %s", kind)
	}
	if len(f.store.lessons) != 0 {
		t.Fatal("lesson tidak boleh tersimpan saat validasi gagal")
	}
}

func TestAddLesson_BadDatetime(t *testing.T) {
	f := newFixture(t)
	// parse gagal sebelum transaksi dimulai, tanpa Begin.

	req := validRequest()
	req.LessonStartAt = "18-10-2021 10:00"

	_, err := f.svc.AddLesson(context.Background(), req)
	if kind := scheduleKind(t, err); kind != KindInvalidInterval {
		t.Fatalf("expected InvalidInterval, got %s", kind)
	}
	if err := f.mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("tidak boleh ada interaksi DB: %v", err)
	}
}

func TestAddLesson_SlotConflict(t *testing.T) {
	f := newFixture(t)

	// Lesson pertama 10:00-12:00
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	if _, err := f.svc.AddLesson(context.Background(), validRequest()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Overlap parsial 11:00-13:00, teacher sama → konflik.
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()
	req := validRequest()
	req.LessonGroupName = "BB-22"
	req.LessonStartAt = "2021-10-18T11:00"
	req.LessonEndAt = "2021-10-18T13:00"

	_, err := f.svc.AddLesson(context.Background(), req)
	if kind := scheduleKind(t, err); kind != KindSlotAlreadyBooked {
		t.Fatalf("expected SlotAlreadyBooked, got %s", kind)
	}
	if len(f.store.lessons) != 1 {
		t.Fatalf("store harus tetap 1 lesson, got %d", len(f.store.lessons))
	}
}

func TestAddLesson_GroupConflict(t *testing.T) {
	f := newFixture(t)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	if _, err := f.svc.AddLesson(context.Background(), validRequest()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Teacher dan classroom beda, group sama → group bentrok.
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()
	req := validRequest()
	req.LessonTeacherEmail = "dosen2@kampus.ac.id"
	req.LessonClassroomNumber = 202
	req.LessonStartAt = "2021-10-18T11:00"
	req.LessonEndAt = "2021-10-18T13:00"

	_, err := f.svc.AddLesson(context.Background(), req)
	if kind := scheduleKind(t, err); kind != KindSlotAlreadyBooked {
		t.Fatalf("expected SlotAlreadyBooked, got %s", kind)
	}
}

func TestAddLesson_ClassroomConflict(t *testing.T) {
	f := newFixture(t)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	if _, err := f.svc.AddLesson(context.Background(), validRequest()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Teacher dan group beda, classroom sama → ruangan bentrok.
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()
	req := validRequest()
	req.LessonTeacherEmail = "dosen2@kampus.ac.id"
	req.LessonGroupName = "BB-22"
	req.LessonStartAt = "2021-10-18T11:00"
	req.LessonEndAt = "2021-10-18T13:00"

	_, err := f.svc.AddLesson(context.Background(), req)
	if kind := scheduleKind(t, err); kind != KindSlotAlreadyBooked {
		t.Fatalf("expected SlotAlreadyBooked, got %s", kind)
	}
}

func TestAddLesson_AdjacentSlotsNoConflict(t *testing.T) {
	f := newFixture(t)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	if _, err := f.svc.AddLesson(context.Background(), validRequest()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	// 12:00-14:00 menempel di belakang 10:00-12:00 — bukan overlap.
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	req := validRequest()
	req.LessonStartAt = "2021-10-18T12:00"
	req.LessonEndAt = "2021-10-18T14:00"

	if _, err := f.svc.AddLesson(context.Background(), req); err != nil {
		t.Fatalf("slot bersebelahan harus boleh: %v", err)
	}
	if len(f.store.lessons) != 2 {
		t.Fatalf("store harus berisi 2 lesson, got %d", len(f.store.lessons))
	}
}

func TestAddLesson_CapacityUsesCurrentEnrolment(t *testing.T) {
	f := newFixture(t)
	f.groups.sizes["AA-11"] = 31 // kapasitas classroom 101 = 30

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.svc.AddLesson(context.Background(), validRequest())
	if kind := scheduleKind(t, err); kind != KindCapacityExceeded {
		t.Fatalf("expected CapacityExceeded, got %s", kind)
	}
}

func TestAddLesson_OnlineLinkStoredTrimmed(t *testing.T) {
	f := newFixture(t)
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()

	link := "  https://meet.example.com/abc  "
	req := validRequest()
	req.LessonIsOnline = true
	req.LessonOnlineLink = &link

	saved, err := f.svc.AddLesson(context.Background(), req)
	if err != nil {
		t.Fatalf("AddLesson: %v", err)
	}
	if saved.LessonOnlineLink == nil || *saved.LessonOnlineLink != "https://meet.example.com/abc" {
		t.Fatalf("link harus tersimpan tanpa spasi tepi, got %v", saved.LessonOnlineLink)
	}
}

// Error ala driver Postgres: cukup mengekspos SQLState().
type fakeUniqueViolation struct{}

func (fakeUniqueViolation) SQLState() string { return "23505" }
func (fakeUniqueViolation) Error() string {
	return `duplicate key value violates unique constraint "uq_lessons_teacher_start"`
}

// Race dua request pada slot sama: cek overlap lolos dua-duanya,
// yang kalah di unique index harus dapat SlotAlreadyBooked, bukan 500.
func TestAddLesson_UniqueViolationMapsToSlotAlreadyBooked(t *testing.T) {
	f := newFixture(t)
	f.store.saveErr = fakeUniqueViolation{}

	f.mock.ExpectBegin()
	f.mock.ExpectRollback()

	_, err := f.svc.AddLesson(context.Background(), validRequest())
	if kind := scheduleKind(t, err); kind != KindSlotAlreadyBooked {
		t.Fatalf("expected SlotAlreadyBooked, got %s", kind)
	}
	if len(f.store.lessons) != 0 {
		t.Fatalf("store harus tetap kosong, got %d", len(f.store.lessons))
	}
}

/* =========================
   EditLesson
   ========================= */

func TestEditLesson_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.EditLesson(context.Background(), uuid.New(), validRequest())
	if kind := scheduleKind(t, err); kind != KindEntityNotFound {
		t.Fatalf("expected EntityNotFound, got %s", kind)
	}
}

func TestEditLesson_OwnSlotNotConflict(t *testing.T) {
	f := newFixture(t)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	saved, err := f.svc.AddLesson(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	// Geser 30 menit, masih overlap dengan slot lama milik sendiri.
	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	req := validRequest()
	req.LessonStartAt = "2021-10-18T10:30"
	req.LessonEndAt = "2021-10-18T12:30"

	updated, err := f.svc.EditLesson(context.Background(), saved.LessonID, req)
	if err != nil {
		t.Fatalf("EditLesson: %v", err)
	}
	if updated.LessonID != saved.LessonID {
		t.Fatalf("id harus tetap: %s vs %s", updated.LessonID, saved.LessonID)
	}
	if got := updated.LessonStartAt.In(f.svc.Loc).Minute(); got != 30 {
		t.Fatalf("menit mulai harus 30, got %d", got)
	}
	if len(f.store.lessons) != 1 {
		t.Fatalf("edit tidak boleh menambah row, got %d", len(f.store.lessons))
	}
}

func TestEditLesson_PreservesCreatedAt(t *testing.T) {
	f := newFixture(t)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	saved, err := f.svc.AddLesson(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if saved.LessonCreatedAt.IsZero() {
		t.Fatal("seed harus punya created_at")
	}

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	req := validRequest()
	req.LessonStartAt = "2021-10-19T10:00"
	req.LessonEndAt = "2021-10-19T12:00"

	updated, err := f.svc.EditLesson(context.Background(), saved.LessonID, req)
	if err != nil {
		t.Fatalf("EditLesson: %v", err)
	}
	if updated.LessonCreatedAt.IsZero() {
		t.Fatal("edit tidak boleh menolkan created_at")
	}
	if !updated.LessonCreatedAt.Equal(saved.LessonCreatedAt) {
		t.Fatalf("created_at berubah: %s → %s", saved.LessonCreatedAt, updated.LessonCreatedAt)
	}
}

func TestEditLesson_ConflictWithOtherLesson(t *testing.T) {
	f := newFixture(t)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	first, err := f.svc.AddLesson(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("seed 1: %v", err)
	}

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	req2 := validRequest()
	req2.LessonStartAt = "2021-10-18T13:00"
	req2.LessonEndAt = "2021-10-18T15:00"
	if _, err := f.svc.AddLesson(context.Background(), req2); err != nil {
		t.Fatalf("seed 2: %v", err)
	}

	// Coba geser lesson pertama ke slot lesson kedua.
	f.mock.ExpectBegin()
	f.mock.ExpectRollback()
	req := validRequest()
	req.LessonStartAt = "2021-10-18T13:00"
	req.LessonEndAt = "2021-10-18T15:00"

	_, err = f.svc.EditLesson(context.Background(), first.LessonID, req)
	if kind := scheduleKind(t, err); kind != KindSlotAlreadyBooked {
		t.Fatalf("expected SlotAlreadyBooked, got %s", kind)
	}
}

/* =========================
   DeleteLesson
   ========================= */

func TestDeleteLesson_Idempotent(t *testing.T) {
	f := newFixture(t)

	f.mock.ExpectBegin()
	f.mock.ExpectCommit()
	saved, err := f.svc.AddLesson(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := f.svc.DeleteLesson(context.Background(), saved.LessonID); err != nil {
		t.Fatalf("delete pertama: %v", err)
	}
	if len(f.store.lessons) != 0 {
		t.Fatalf("lesson harus terhapus, got %d", len(f.store.lessons))
	}

	// Hapus kedua kali: no-op, bukan error.
	if err := f.svc.DeleteLesson(context.Background(), saved.LessonID); err != nil {
		t.Fatalf("delete kedua harus no-op: %v", err)
	}
}

func TestDeleteLesson_UnknownID(t *testing.T) {
	f := newFixture(t)
	if err := f.svc.DeleteLesson(context.Background(), uuid.New()); err != nil {
		t.Fatalf("delete id tak dikenal harus no-op: %v", err)
	}
}
