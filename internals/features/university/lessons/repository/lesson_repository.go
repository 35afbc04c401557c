// file: internals/features/university/lessons/repository/lesson_repository.go
package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	m "universityku_backend/internals/features/university/lessons/model"
)

/* =======================================================
   LessonStore — kontrak persistence lesson.

   Semua query range urut lesson_start_at ASC. Parameter `day`
   harus sudah 00:00 pada timezone aplikasi; "satu hari" =
   [day, day+24h).
   ======================================================= */

type LessonStore interface {
	// Bind store ke transaksi berjalan (validate-then-persist atomik).
	WithTx(tx *gorm.DB) LessonStore

	FindByDateAndTeacher(ctx context.Context, day time.Time, teacherID uuid.UUID) ([]m.LessonModel, error)
	FindByDateAndGroup(ctx context.Context, day time.Time, groupID uuid.UUID) ([]m.LessonModel, error)
	FindByRangeAndTeacher(ctx context.Context, from, to time.Time, teacherID uuid.UUID) ([]m.LessonModel, error)
	FindByRangeAndGroup(ctx context.Context, from, to time.Time, groupID uuid.UUID) ([]m.LessonModel, error)
	FindByStartAndTeacherAndGroup(ctx context.Context, start time.Time, teacherID, groupID uuid.UUID) (*m.LessonModel, error)
	FindAllByDate(ctx context.Context, day time.Time) ([]m.LessonModel, error)

	// Overlap interval utk teacher ATAU group ATAU classroom;
	// excludeID != uuid.Nil saat edit (slot sendiri bukan konflik).
	FindConflicting(ctx context.Context, start, end time.Time, teacherID, groupID, classroomID, excludeID uuid.UUID) ([]m.LessonModel, error)

	FindByID(ctx context.Context, id uuid.UUID) (*m.LessonModel, error)
	Save(ctx context.Context, lesson *m.LessonModel) error
	DeleteByID(ctx context.Context, id uuid.UUID) (int64, error)
}

type gormLessonStore struct {
	db *gorm.DB
}

func NewLessonStore(db *gorm.DB) LessonStore {
	return &gormLessonStore{db: db}
}

func (s *gormLessonStore) WithTx(tx *gorm.DB) LessonStore {
	return &gormLessonStore{db: tx}
}

// base: preload semua relasi yang dibutuhkan response.
func (s *gormLessonStore) base(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Model(&m.LessonModel{}).
		Preload("LessonCourse").
		Preload("LessonTeacher").
		Preload("LessonGroup").
		Preload("LessonClassroom")
}

func dayBounds(day time.Time) (time.Time, time.Time) {
	return day, day.AddDate(0, 0, 1)
}

func (s *gormLessonStore) FindByDateAndTeacher(ctx context.Context, day time.Time, teacherID uuid.UUID) ([]m.LessonModel, error) {
	from, to := dayBounds(day)
	return s.FindByRangeAndTeacher(ctx, from, to, teacherID)
}

func (s *gormLessonStore) FindByDateAndGroup(ctx context.Context, day time.Time, groupID uuid.UUID) ([]m.LessonModel, error) {
	from, to := dayBounds(day)
	return s.FindByRangeAndGroup(ctx, from, to, groupID)
}

func (s *gormLessonStore) FindByRangeAndTeacher(ctx context.Context, from, to time.Time, teacherID uuid.UUID) ([]m.LessonModel, error) {
	var out []m.LessonModel
	err := s.base(ctx).
		Where("lesson_teacher_id = ? AND lesson_start_at >= ? AND lesson_start_at < ?", teacherID, from, to).
		Order("lesson_start_at ASC").
		Find(&out).Error
	return out, err
}

func (s *gormLessonStore) FindByRangeAndGroup(ctx context.Context, from, to time.Time, groupID uuid.UUID) ([]m.LessonModel, error) {
	var out []m.LessonModel
	err := s.base(ctx).
		Where("lesson_group_id = ? AND lesson_start_at >= ? AND lesson_start_at < ?", groupID, from, to).
		Order("lesson_start_at ASC").
		Find(&out).Error
	return out, err
}

func (s *gormLessonStore) FindByStartAndTeacherAndGroup(ctx context.Context, start time.Time, teacherID, groupID uuid.UUID) (*m.LessonModel, error) {
	var row m.LessonModel
	err := s.base(ctx).
		Where("lesson_start_at = ? AND lesson_teacher_id = ? AND lesson_group_id = ?", start, teacherID, groupID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (s *gormLessonStore) FindAllByDate(ctx context.Context, day time.Time) ([]m.LessonModel, error) {
	from, to := dayBounds(day)
	var out []m.LessonModel
	err := s.base(ctx).
		Where("lesson_start_at >= ? AND lesson_start_at < ?", from, to).
		Order("lesson_start_at ASC").
		Find(&out).Error
	return out, err
}

func (s *gormLessonStore) FindConflicting(ctx context.Context, start, end time.Time, teacherID, groupID, classroomID, excludeID uuid.UUID) ([]m.LessonModel, error) {
	q := s.db.WithContext(ctx).
		Model(&m.LessonModel{}).
		Where("lesson_start_at < ? AND lesson_end_at > ?", end, start).
		Where("lesson_teacher_id = ? OR lesson_group_id = ? OR lesson_classroom_id = ?", teacherID, groupID, classroomID)
	if excludeID != uuid.Nil {
		q = q.Where("lesson_id <> ?", excludeID)
	}
	var out []m.LessonModel
	err := q.Order("lesson_start_at ASC").Find(&out).Error
	return out, err
}

func (s *gormLessonStore) FindByID(ctx context.Context, id uuid.UUID) (*m.LessonModel, error) {
	var row m.LessonModel
	err := s.base(ctx).Where("lesson_id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}

func (s *gormLessonStore) Save(ctx context.Context, lesson *m.LessonModel) error {
	// Omit relasi: FK saja yang ditulis, entitas referensi tidak disentuh.
	return s.db.WithContext(ctx).Omit(clause.Associations).Save(lesson).Error
}

func (s *gormLessonStore) DeleteByID(ctx context.Context, id uuid.UUID) (int64, error) {
	res := s.db.WithContext(ctx).Where("lesson_id = ?", id).Delete(&m.LessonModel{})
	return res.RowsAffected, res.Error
}
