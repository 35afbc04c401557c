// file: internals/features/university/lessons/service/lesson_rules.go
package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

/* =======================================================
   Aturan penjadwalan — fungsi murni tanpa side effect.

   CandidateLesson adalah snapshot: ukuran group dan kapasitas
   ruangan diambil SEKALI sebelum validasi, jadi edit enrolment
   yang berbarengan tidak bisa balapan dengan validasi berjalan.
   ======================================================= */

const (
	workDayStartHour = 9
	workDayEndHour   = 18 // lesson masih boleh mulai tepat jam 18

	onlineLinkMinLen = 5
	onlineLinkMaxLen = 100
)

type CandidateLesson struct {
	ID uuid.UUID // uuid.Nil saat create

	CourseID    uuid.UUID
	TeacherID   uuid.UUID
	GroupID     uuid.UUID
	ClassroomID uuid.UUID

	StartAt time.Time
	EndAt   time.Time

	IsOnline   bool
	OnlineLink string

	GroupSize int
	Capacity  int
}

// CheckLessonRules menjalankan cek invariant berurutan, fail-fast.
// Cek bentrok slot (butuh store) dilakukan service di dalam transaksi.
func CheckLessonRules(l CandidateLesson) *ScheduleError {
	// 1) Kapasitas ruangan
	if l.GroupSize > l.Capacity {
		return newErr(KindCapacityExceeded,
			fmt.Sprintf("group berisi %d student, kapasitas ruangan %d", l.GroupSize, l.Capacity))
	}

	// 2) Hari Minggu libur
	if l.StartAt.Weekday() == time.Sunday {
		return newErr(KindOutsideOperatingHours, "lesson tidak boleh dijadwalkan hari Minggu")
	}

	// 3) Jam mulai dalam jam kerja
	if h := l.StartAt.Hour(); h < workDayStartHour || h > workDayEndHour {
		return newErr(KindOutsideOperatingHours,
			fmt.Sprintf("jam mulai %02d di luar jam kerja %02d:00-%02d:00", h, workDayStartHour, workDayEndHour))
	}

	// 4) Interval valid
	if !l.EndAt.After(l.StartAt) {
		return newErr(KindInvalidInterval, "waktu selesai harus setelah waktu mulai")
	}

	// 5) Link online wajib & masuk akal
	if l.IsOnline {
		link := strings.TrimSpace(l.OnlineLink)
		if n := len(link); n < onlineLinkMinLen || n > onlineLinkMaxLen {
			return newErr(KindInvalidOnlineLink,
				fmt.Sprintf("online link wajib %d-%d karakter, dapat %d", onlineLinkMinLen, onlineLinkMaxLen, n))
		}
	}

	return nil
}
