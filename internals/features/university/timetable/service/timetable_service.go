// file: internals/features/university/timetable/service/timetable_service.go
package service

import (
	"context"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	groupRepo "universityku_backend/internals/features/university/groups/repository"
	lessonModel "universityku_backend/internals/features/university/lessons/model"
	lessonRepo "universityku_backend/internals/features/university/lessons/repository"
	lessonSvc "universityku_backend/internals/features/university/lessons/service"
	ttcache "universityku_backend/internals/features/university/timetable/cache"
	"universityku_backend/internals/features/university/timetable/dto"
)

/* =======================================================
   TimetableService — rekonstruksi jadwal harian/mingguan/
   bulanan per teacher atau group.

   Pola: resolve subject by natural key → SATU query range ke
   store → partisi flat list per hari kalender (timezone
   aplikasi) → bungkus tiap partisi jadi DayTimetable, hari
   kosong ikut dibungkus.
   ======================================================= */

type TimetableService struct {
	Store    lessonRepo.LessonStore
	Resolver lessonRepo.EntityResolver
	Groups   groupRepo.GroupRepository
	Cache    *redis.Client // nil = langsung DB
	Loc      *time.Location
}

func NewTimetableService(db *gorm.DB, cache *redis.Client, loc *time.Location) *TimetableService {
	return &TimetableService{
		Store:    lessonRepo.NewLessonStore(db),
		Resolver: lessonRepo.NewEntityResolver(db),
		Groups:   groupRepo.NewGroupRepository(db),
		Cache:    cache,
		Loc:      loc,
	}
}

func notFound(what string) error {
	return &lessonSvc.ScheduleError{Kind: lessonSvc.KindEntityNotFound, Message: what + " tidak ditemukan"}
}

/* =========================
   Day
   ========================= */

// DayTimetable: semua lesson pada satu hari, tanpa filter subject.
func (s *TimetableService) DayTimetable(ctx context.Context, date time.Time) (dto.DayTimetable, error) {
	day := s.startOfDay(date)
	return s.cachedDay(ctx, ttcache.DayKeyAll(day), day, func() ([]lessonModel.LessonModel, error) {
		return s.Store.FindAllByDate(ctx, day)
	})
}

func (s *TimetableService) TeacherDayTimetable(ctx context.Context, date time.Time, teacherEmail string) (dto.DayTimetable, error) {
	teacher, err := s.Resolver.ResolveTeacherByEmail(ctx, teacherEmail)
	if err != nil {
		return dto.DayTimetable{}, err
	}
	if teacher == nil {
		return dto.DayTimetable{}, notFound("teacher '" + teacherEmail + "'")
	}

	day := s.startOfDay(date)
	return s.cachedDay(ctx, ttcache.DayKeyTeacher(teacher.TeacherID, day), day, func() ([]lessonModel.LessonModel, error) {
		return s.Store.FindByDateAndTeacher(ctx, day, teacher.TeacherID)
	})
}

func (s *TimetableService) GroupDayTimetable(ctx context.Context, date time.Time, groupName string) (dto.DayTimetable, error) {
	group, err := s.Groups.FindByName(ctx, groupName)
	if err != nil {
		return dto.DayTimetable{}, err
	}
	if group == nil {
		return dto.DayTimetable{}, notFound("group '" + groupName + "'")
	}

	day := s.startOfDay(date)
	return s.cachedDay(ctx, ttcache.DayKeyGroup(group.GroupID, day), day, func() ([]lessonModel.LessonModel, error) {
		return s.Store.FindByDateAndGroup(ctx, day, group.GroupID)
	})
}

/* =========================
   Week: 7 hari kalender mulai anchor
   ========================= */

func (s *TimetableService) TeacherWeekTimetable(ctx context.Context, anchor time.Time, teacherEmail string) ([]dto.DayTimetable, error) {
	from := s.startOfDay(anchor)
	to := from.AddDate(0, 0, 7)
	return s.teacherRange(ctx, from, to, teacherEmail)
}

func (s *TimetableService) GroupWeekTimetable(ctx context.Context, anchor time.Time, groupName string) ([]dto.DayTimetable, error) {
	from := s.startOfDay(anchor)
	to := from.AddDate(0, 0, 7)
	return s.groupRange(ctx, from, to, groupName)
}

/* =========================
   Month: semua hari pada bulan anchor
   ========================= */

func (s *TimetableService) TeacherMonthTimetable(ctx context.Context, anchor time.Time, teacherEmail string) ([]dto.DayTimetable, error) {
	from, to := s.monthBounds(anchor)
	return s.teacherRange(ctx, from, to, teacherEmail)
}

func (s *TimetableService) GroupMonthTimetable(ctx context.Context, anchor time.Time, groupName string) ([]dto.DayTimetable, error) {
	from, to := s.monthBounds(anchor)
	return s.groupRange(ctx, from, to, groupName)
}

/* =========================
   Internals
   ========================= */

func (s *TimetableService) teacherRange(ctx context.Context, from, to time.Time, teacherEmail string) ([]dto.DayTimetable, error) {
	teacher, err := s.Resolver.ResolveTeacherByEmail(ctx, teacherEmail)
	if err != nil {
		return nil, err
	}
	if teacher == nil {
		return nil, notFound("teacher '" + teacherEmail + "'")
	}

	lessons, err := s.Store.FindByRangeAndTeacher(ctx, from, to, teacher.TeacherID)
	if err != nil {
		return nil, err
	}
	return PartitionByDay(from, to, lessons, s.Loc), nil
}

func (s *TimetableService) groupRange(ctx context.Context, from, to time.Time, groupName string) ([]dto.DayTimetable, error) {
	group, err := s.Groups.FindByName(ctx, groupName)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, notFound("group '" + groupName + "'")
	}

	lessons, err := s.Store.FindByRangeAndGroup(ctx, from, to, group.GroupID)
	if err != nil {
		return nil, err
	}
	return PartitionByDay(from, to, lessons, s.Loc), nil
}

// PartitionByDay membagi list flat (urut start ASC) jadi satu
// DayTimetable per hari kalender [from, to); hari tanpa lesson
// tetap dapat entry dengan lessons kosong, urutan kalender.
func PartitionByDay(from, to time.Time, lessons []lessonModel.LessonModel, loc *time.Location) []dto.DayTimetable {
	byDay := make(map[string][]lessonModel.LessonModel)
	for i := range lessons {
		k := lessons[i].LessonStartAt.In(loc).Format("2006-01-02")
		byDay[k] = append(byDay[k], lessons[i])
	}

	var out []dto.DayTimetable
	for day := from; day.Before(to); day = day.AddDate(0, 0, 1) {
		out = append(out, dto.NewDayTimetable(day, byDay[day.Format("2006-01-02")], loc))
	}
	return out
}

func (s *TimetableService) startOfDay(t time.Time) time.Time {
	tt := t.In(s.Loc)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, s.Loc)
}

func (s *TimetableService) monthBounds(anchor time.Time) (time.Time, time.Time) {
	tt := anchor.In(s.Loc)
	from := time.Date(tt.Year(), tt.Month(), 1, 0, 0, 0, 0, s.Loc)
	return from, from.AddDate(0, 1, 0)
}

/* =========================
   Day cache (read-through, best effort)
   ========================= */

func (s *TimetableService) cachedDay(ctx context.Context, key string, day time.Time, load func() ([]lessonModel.LessonModel, error)) (dto.DayTimetable, error) {
	if s.Cache != nil {
		if raw, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var cached dto.DayTimetable
			if sonic.Unmarshal([]byte(raw), &cached) == nil {
				return cached, nil
			}
		}
	}

	lessons, err := load()
	if err != nil {
		return dto.DayTimetable{}, err
	}
	tt := dto.NewDayTimetable(day, lessons, s.Loc)

	if s.Cache != nil {
		if raw, err := sonic.Marshal(tt); err == nil {
			if err := s.Cache.Set(ctx, key, raw, ttcache.DayTTL).Err(); err != nil {
				log.Printf("[Timetable] tulis cache gagal (diabaikan): %v", err)
			}
		}
	}
	return tt, nil
}
