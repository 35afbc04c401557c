// file: internals/features/university/timetable/cache/keys.go
package cache

import (
	"time"

	"github.com/google/uuid"
)

// Key cache timetable per hari. Dipakai dua arah:
// timetable service saat baca, lesson service saat invalidasi mutasi.

const DayTTL = 5 * time.Minute

func DayKeyAll(day time.Time) string {
	return "timetable:day:all:" + day.Format("2006-01-02")
}

func DayKeyTeacher(teacherID uuid.UUID, day time.Time) string {
	return "timetable:day:teacher:" + teacherID.String() + ":" + day.Format("2006-01-02")
}

func DayKeyGroup(groupID uuid.UUID, day time.Time) string {
	return "timetable:day:group:" + groupID.String() + ":" + day.Format("2006-01-02")
}
