// file: internals/features/university/timetable/service/timetable_service_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	lessonModel "universityku_backend/internals/features/university/lessons/model"
)

func mustLoc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func lessonAt(loc *time.Location, y int, mo time.Month, d, h int) lessonModel.LessonModel {
	start := time.Date(y, mo, d, h, 0, 0, 0, loc)
	return lessonModel.LessonModel{
		LessonID:      uuid.New(),
		LessonStartAt: start,
		LessonEndAt:   start.Add(2 * time.Hour),
	}
}

func TestPartitionByDay_WeekIncludesEmptyDays(t *testing.T) {
	loc := mustLoc(t)
	from := time.Date(2021, 10, 18, 0, 0, 0, 0, loc) // Senin
	to := from.AddDate(0, 0, 7)

	lessons := []lessonModel.LessonModel{
		lessonAt(loc, 2021, 10, 18, 10),
		lessonAt(loc, 2021, 10, 18, 14),
		lessonAt(loc, 2021, 10, 20, 9),
	}

	days := PartitionByDay(from, to, lessons, loc)
	if len(days) != 7 {
		t.Fatalf("minggu harus 7 hari, got %d", len(days))
	}

	// Urutan kalender, tanggal berurutan.
	for i, d := range days {
		want := from.AddDate(0, 0, i).Format("2006-01-02")
		if d.Date != want {
			t.Fatalf("hari ke-%d harus %s, got %s", i, want, d.Date)
		}
	}

	if n := len(days[0].Lessons); n != 2 {
		t.Fatalf("Senin harus 2 lesson, got %d", n)
	}
	if n := len(days[2].Lessons); n != 1 {
		t.Fatalf("Rabu harus 1 lesson, got %d", n)
	}
	for _, i := range []int{1, 3, 4, 5, 6} {
		if len(days[i].Lessons) != 0 {
			t.Fatalf("hari ke-%d harus kosong, got %d lesson", i, len(days[i].Lessons))
		}
	}
}

func TestPartitionByDay_PreservesStartOrderWithinDay(t *testing.T) {
	loc := mustLoc(t)
	from := time.Date(2021, 10, 18, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 0, 1)

	// Input sudah urut ASC (kontrak store), partisi harus mempertahankannya.
	lessons := []lessonModel.LessonModel{
		lessonAt(loc, 2021, 10, 18, 9),
		lessonAt(loc, 2021, 10, 18, 11),
		lessonAt(loc, 2021, 10, 18, 15),
	}

	days := PartitionByDay(from, to, lessons, loc)
	if len(days) != 1 {
		t.Fatalf("range 1 hari harus 1 entry, got %d", len(days))
	}

	prev := ""
	for _, l := range days[0].Lessons {
		if l.LessonStartAt < prev {
			t.Fatalf("lesson tidak urut: %s setelah %s", l.LessonStartAt, prev)
		}
		prev = l.LessonStartAt
	}
}

func TestPartitionByDay_MonthOctoberHas31Days(t *testing.T) {
	loc := mustLoc(t)
	from := time.Date(2021, 10, 1, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 1, 0)

	days := PartitionByDay(from, to, nil, loc)
	if len(days) != 31 {
		t.Fatalf("Oktober harus 31 hari, got %d", len(days))
	}
	if days[0].Date != "2021-10-01" || days[30].Date != "2021-10-31" {
		t.Fatalf("batas bulan salah: %s .. %s", days[0].Date, days[30].Date)
	}
	for _, d := range days {
		if d.Lessons == nil {
			t.Fatalf("hari kosong %s harus lessons=[] bukan nil", d.Date)
		}
	}
}

func TestPartitionByDay_FebruaryLeapYear(t *testing.T) {
	loc := mustLoc(t)
	from := time.Date(2024, 2, 1, 0, 0, 0, 0, loc)
	to := from.AddDate(0, 1, 0)

	days := PartitionByDay(from, to, nil, loc)
	if len(days) != 29 {
		t.Fatalf("Februari 2024 harus 29 hari, got %d", len(days))
	}
}

func TestMonthBounds(t *testing.T) {
	loc := mustLoc(t)
	s := &TimetableService{Loc: loc}

	anchor := time.Date(2021, 10, 17, 15, 30, 0, 0, loc)
	from, to := s.monthBounds(anchor)

	if !from.Equal(time.Date(2021, 10, 1, 0, 0, 0, 0, loc)) {
		t.Fatalf("from salah: %s", from)
	}
	if !to.Equal(time.Date(2021, 11, 1, 0, 0, 0, 0, loc)) {
		t.Fatalf("to salah: %s", to)
	}
}

func TestStartOfDay_NormalizesClockTime(t *testing.T) {
	loc := mustLoc(t)
	s := &TimetableService{Loc: loc}

	got := s.startOfDay(time.Date(2021, 10, 18, 23, 59, 59, 0, loc))
	want := time.Date(2021, 10, 18, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("startOfDay: got %s want %s", got, want)
	}

	// Instan UTC dipetakan dulu ke hari kalender timezone aplikasi.
	utc := time.Date(2021, 10, 18, 20, 0, 0, 0, time.UTC) // 19 Okt 03:00 WIB
	got = s.startOfDay(utc)
	want = time.Date(2021, 10, 19, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("startOfDay lintas timezone: got %s want %s", got, want)
	}
}
