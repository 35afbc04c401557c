// file: internals/features/university/lessons/dto/lesson_dto.go
package dto

import (
	"errors"
	"fmt"
	"strings"
	"time"

	m "universityku_backend/internals/features/university/lessons/model"
)

/* =======================================================
   Util & parsing
   ======================================================= */

var (
	layoutDateTime1 = "2006-01-02T15:04"    // dari FE (datetime-local)
	layoutDateTime2 = "2006-01-02T15:04:05" // dengan detik
	layoutDate      = "2006-01-02"          // DATE
)

// ParseDateTime membaca "YYYY-MM-DDTHH:mm[:ss]" pada timezone aplikasi.
func ParseDateTime(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty datetime")
	}
	if t, err := time.ParseInLocation(layoutDateTime1, s, loc); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation(layoutDateTime2, s, loc); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid datetime format (want YYYY-MM-DDTHH:mm[:ss])")
}

// ParseDate membaca "YYYY-MM-DD" pada timezone aplikasi.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}
	t, err := time.ParseInLocation(layoutDate, s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format (want YYYY-MM-DD): %w", err)
	}
	return t, nil
}

/* =======================================================
   Request DTO
   - Resolusi by natural key: nama course, email teacher,
     nama group, nomor classroom (bukan surrogate id).
   - Group yang belum ada dibuat otomatis saat booking.
   ======================================================= */

type CreateLessonRequest struct {
	LessonCourseName      string `json:"lesson_course_name"      validate:"required,min=2,max=100"`
	LessonTeacherEmail    string `json:"lesson_teacher_email"    validate:"required,email"`
	LessonGroupName       string `json:"lesson_group_name"       validate:"required,group_name"`
	LessonClassroomNumber int    `json:"lesson_classroom_number" validate:"required,gt=0"`

	LessonStartAt string `json:"lesson_start_at" validate:"required"` // "YYYY-MM-DDTHH:mm[:ss]"
	LessonEndAt   string `json:"lesson_end_at"   validate:"required"`

	LessonIsOnline   bool    `json:"lesson_is_online"`
	LessonOnlineLink *string `json:"lesson_online_link,omitempty"`
}

// Edit = full replacement, shape request sama dengan create.
type UpdateLessonRequest = CreateLessonRequest

/* =======================================================
   Response DTOs
   ======================================================= */

type LessonResponse struct {
	LessonID string `json:"lesson_id"`

	LessonCourseName      string `json:"lesson_course_name"`
	LessonTeacherEmail    string `json:"lesson_teacher_email"`
	LessonTeacherName     string `json:"lesson_teacher_name"`
	LessonGroupName       string `json:"lesson_group_name"`
	LessonClassroomNumber int    `json:"lesson_classroom_number"`

	LessonStartAt string `json:"lesson_start_at"`
	LessonEndAt   string `json:"lesson_end_at"`

	LessonIsOnline   bool    `json:"lesson_is_online"`
	LessonOnlineLink *string `json:"lesson_online_link,omitempty"`
}

func ToLessonResponse(l *m.LessonModel, loc *time.Location) LessonResponse {
	return LessonResponse{
		LessonID:              l.LessonID.String(),
		LessonCourseName:      l.LessonCourse.CourseName,
		LessonTeacherEmail:    l.LessonTeacher.TeacherEmail,
		LessonTeacherName:     strings.TrimSpace(l.LessonTeacher.TeacherFirstName + " " + l.LessonTeacher.TeacherLastName),
		LessonGroupName:       l.LessonGroup.GroupName,
		LessonClassroomNumber: l.LessonClassroom.ClassroomNumber,
		LessonStartAt:         l.LessonStartAt.In(loc).Format(layoutDateTime2),
		LessonEndAt:           l.LessonEndAt.In(loc).Format(layoutDateTime2),
		LessonIsOnline:        l.LessonIsOnline,
		LessonOnlineLink:      l.LessonOnlineLink,
	}
}

func ToLessonResponses(ls []m.LessonModel, loc *time.Location) []LessonResponse {
	out := make([]LessonResponse, 0, len(ls))
	for i := range ls {
		out = append(out, ToLessonResponse(&ls[i], loc))
	}
	return out
}
