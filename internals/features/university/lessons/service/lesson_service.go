// file: internals/features/university/lessons/service/lesson_service.go
package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	groupRepo "universityku_backend/internals/features/university/groups/repository"
	"universityku_backend/internals/features/university/lessons/dto"
	m "universityku_backend/internals/features/university/lessons/model"
	lessonRepo "universityku_backend/internals/features/university/lessons/repository"
	ttcache "universityku_backend/internals/features/university/timetable/cache"
)

/* =======================================================
   LessonService — pipeline booking:
   Received → Resolved → Validated → Persisted (atau Rejected).

   Resolusi + validasi + cek bentrok + simpan jalan dalam SATU
   transaksi GORM supaya read (cek bentrok) dan write (save)
   melihat snapshot konsisten. Unique index slot di DB jadi
   backstop untuk race yang lolos cek aplikasi.
   ======================================================= */

type LessonService struct {
	DB       *gorm.DB
	Store    lessonRepo.LessonStore
	Resolver lessonRepo.EntityResolver
	Groups   groupRepo.GroupRepository
	Cache    *redis.Client // nil = tanpa cache
	Loc      *time.Location
}

func NewLessonService(db *gorm.DB, cache *redis.Client, loc *time.Location) *LessonService {
	return &LessonService{
		DB:       db,
		Store:    lessonRepo.NewLessonStore(db),
		Resolver: lessonRepo.NewEntityResolver(db),
		Groups:   groupRepo.NewGroupRepository(db),
		Cache:    cache,
		Loc:      loc,
	}
}

// --- PG error mapping (race backstop) ---

type pgSQLErr interface {
	SQLState() string
	Error() string
}

// uniqueViolation: SQLSTATE 23505 dari unique index slot.
func uniqueViolation(err error) bool {
	var pgErr pgSQLErr
	return errors.As(err, &pgErr) && pgErr.SQLState() == "23505"
}

/* =========================
   AddLesson
   ========================= */

func (s *LessonService) AddLesson(ctx context.Context, req dto.CreateLessonRequest) (*m.LessonModel, error) {
	return s.schedule(ctx, nil, req)
}

/* =========================
   EditLesson — full replacement, slot lama milik sendiri bukan konflik
   ========================= */

func (s *LessonService) EditLesson(ctx context.Context, id uuid.UUID, req dto.UpdateLessonRequest) (*m.LessonModel, error) {
	existing, err := s.Store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, newErr(KindEntityNotFound, "lesson tidak ditemukan")
	}

	updated, err := s.schedule(ctx, existing, req)
	if err != nil {
		return nil, err
	}

	// Hari lama ikut di-invalidate kalau lesson pindah tanggal.
	s.invalidateDay(ctx, existing)
	return updated, nil
}

/* =========================
   DeleteLesson — idempotent: hapus id yang tidak ada bukan error
   ========================= */

func (s *LessonService) DeleteLesson(ctx context.Context, id uuid.UUID) error {
	existing, err := s.Store.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return nil // no-op
	}

	if _, err := s.Store.DeleteByID(ctx, id); err != nil {
		return err
	}
	s.invalidateDay(ctx, existing)
	return nil
}

/* =========================
   Pipeline bersama create/edit
   ========================= */

func (s *LessonService) schedule(ctx context.Context, existing *m.LessonModel, req dto.CreateLessonRequest) (*m.LessonModel, error) {
	// id = uuid.Nil saat create; saat edit, row lama dibawa supaya
	// created_at ikut ke replacement (Save menulis semua kolom).
	id := uuid.Nil
	if existing != nil {
		id = existing.LessonID
	}

	// --- parse interval pada timezone aplikasi
	startAt, err := dto.ParseDateTime(req.LessonStartAt, s.Loc)
	if err != nil {
		return nil, newErr(KindInvalidInterval, err.Error())
	}
	endAt, err := dto.ParseDateTime(req.LessonEndAt, s.Loc)
	if err != nil {
		return nil, newErr(KindInvalidInterval, err.Error())
	}

	var saved *m.LessonModel

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		store := s.Store.WithTx(tx)
		resolver := s.Resolver.WithTx(tx)
		groups := s.Groups.WithTx(tx)

		// --- Resolved: semua referensi by natural key
		course, err := resolver.ResolveCourseByName(ctx, req.LessonCourseName)
		if err != nil {
			return err
		}
		if course == nil {
			return newErr(KindEntityNotFound, "course '"+req.LessonCourseName+"' tidak ditemukan")
		}

		teacher, err := resolver.ResolveTeacherByEmail(ctx, req.LessonTeacherEmail)
		if err != nil {
			return err
		}
		if teacher == nil {
			return newErr(KindEntityNotFound, "teacher '"+req.LessonTeacherEmail+"' tidak ditemukan")
		}

		classroom, err := resolver.ResolveClassroomByNumber(ctx, req.LessonClassroomNumber)
		if err != nil {
			return err
		}
		if classroom == nil {
			return newErr(KindEntityNotFound, "classroom tidak ditemukan")
		}

		// Group dibuat otomatis saat pertama direferensikan.
		group, created, err := groups.FindOrCreateByName(ctx, req.LessonGroupName)
		if err != nil {
			return err
		}
		if created {
			log.Printf("[Lesson] group %s dibuat otomatis saat booking", group.GroupName)
		}

		groupSize, err := groups.CountStudents(ctx, group)
		if err != nil {
			return err
		}

		// --- Validated: invariant murni dulu
		link := ""
		if req.LessonOnlineLink != nil {
			link = *req.LessonOnlineLink
		}
		candidate := CandidateLesson{
			ID:          id,
			CourseID:    course.CourseID,
			TeacherID:   teacher.TeacherID,
			GroupID:     group.GroupID,
			ClassroomID: classroom.ClassroomID,
			StartAt:     startAt,
			EndAt:       endAt,
			IsOnline:    req.LessonIsOnline,
			OnlineLink:  link,
			GroupSize:   groupSize,
			Capacity:    classroom.ClassroomCapacity,
		}
		if verr := CheckLessonRules(candidate); verr != nil {
			return verr
		}

		// --- lalu cek bentrok slot (overlap interval, bukan cuma start sama)
		conflicts, err := store.FindConflicting(ctx, startAt, endAt,
			teacher.TeacherID, group.GroupID, classroom.ClassroomID, id)
		if err != nil {
			return err
		}
		if len(conflicts) > 0 {
			return newErr(KindSlotAlreadyBooked, slotConflictMessage(&conflicts[0], candidate))
		}

		// --- Persisted
		row := &m.LessonModel{
			LessonCourseID:    course.CourseID,
			LessonTeacherID:   teacher.TeacherID,
			LessonGroupID:     group.GroupID,
			LessonClassroomID: classroom.ClassroomID,
			LessonStartAt:     startAt,
			LessonEndAt:       endAt,
			LessonIsOnline:    req.LessonIsOnline,
		}
		if existing != nil {
			row.LessonID = existing.LessonID
			row.LessonCreatedAt = existing.LessonCreatedAt
		}
		if req.LessonIsOnline {
			trimmed := strings.TrimSpace(link)
			row.LessonOnlineLink = &trimmed
		}
		if err := store.Save(ctx, row); err != nil {
			if uniqueViolation(err) {
				// Race: request lain menang di unique index slot.
				return newErr(KindSlotAlreadyBooked, "slot baru saja terisi oleh booking lain")
			}
			return err
		}
		saved = row
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	// Reload dengan relasi untuk response.
	full, err := s.Store.FindByID(ctx, saved.LessonID)
	if err != nil {
		return nil, err
	}
	if full != nil {
		saved = full
	}

	s.invalidateDay(ctx, saved)
	return saved, nil
}

func slotConflictMessage(other *m.LessonModel, c CandidateLesson) string {
	switch {
	case other.LessonTeacherID == c.TeacherID:
		return "teacher sudah punya lesson pada slot tersebut"
	case other.LessonGroupID == c.GroupID:
		return "group sudah punya lesson pada slot tersebut"
	default:
		return "classroom sudah terpakai pada slot tersebut"
	}
}

/* =========================
   Cache invalidation (best effort)
   ========================= */

func (s *LessonService) invalidateDay(ctx context.Context, l *m.LessonModel) {
	if s.Cache == nil || l == nil {
		return
	}
	day := startOfDay(l.LessonStartAt, s.Loc)
	keys := []string{
		ttcache.DayKeyAll(day),
		ttcache.DayKeyTeacher(l.LessonTeacherID, day),
		ttcache.DayKeyGroup(l.LessonGroupID, day),
	}
	if err := s.Cache.Del(ctx, keys...).Err(); err != nil {
		log.Printf("[Lesson] invalidasi cache gagal (diabaikan): %v", err)
	}
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	tt := t.In(loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, loc)
}
