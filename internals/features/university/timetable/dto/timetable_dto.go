// file: internals/features/university/timetable/dto/timetable_dto.go
package dto

import (
	"time"

	lessonDTO "universityku_backend/internals/features/university/lessons/dto"
	lessonModel "universityku_backend/internals/features/university/lessons/model"
)

/* =======================================================
   DayTimetable — agregat turunan, tidak pernah dipersist;
   dibangun ulang setiap query. Hari kosong tetap muncul
   dengan lessons = [].
   ======================================================= */

type DayTimetable struct {
	Date    string                     `json:"date"` // "YYYY-MM-DD"
	Lessons []lessonDTO.LessonResponse `json:"lessons"`
}

func NewDayTimetable(day time.Time, lessons []lessonModel.LessonModel, loc *time.Location) DayTimetable {
	return DayTimetable{
		Date:    day.Format("2006-01-02"),
		Lessons: lessonDTO.ToLessonResponses(lessons, loc),
	}
}
