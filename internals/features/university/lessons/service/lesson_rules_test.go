// file: internals/features/university/lessons/service/lesson_rules_test.go
package service

import (
	"strings"
	"testing"
	"time"
)

func mustLoc(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

// baseCandidate: Senin 18 Okt 2021 10:00-12:00, offline, muat di ruangan.
func baseCandidate(loc *time.Location) CandidateLesson {
	return CandidateLesson{
		StartAt:   time.Date(2021, 10, 18, 10, 0, 0, 0, loc),
		EndAt:     time.Date(2021, 10, 18, 12, 0, 0, 0, loc),
		GroupSize: 20,
		Capacity:  30,
	}
}

func TestCheckLessonRules_Valid(t *testing.T) {
	loc := mustLoc(t)
	if err := CheckLessonRules(baseCandidate(loc)); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
}

func TestCheckLessonRules_CapacityExceeded(t *testing.T) {
	loc := mustLoc(t)
	c := baseCandidate(loc)
	c.GroupSize = 31
	c.Capacity = 30

	err := CheckLessonRules(c)
	if err == nil {
		t.Fatal("expected capacity error, got nil")
	}
	if err.Kind != KindCapacityExceeded {
		t.Fatalf("expected kind %q, got %q", KindCapacityExceeded, err.Kind)
	}
}

func TestCheckLessonRules_GroupExactlyFits(t *testing.T) {
	loc := mustLoc(t)
	c := baseCandidate(loc)
	c.GroupSize = 30
	c.Capacity = 30

	if err := CheckLessonRules(c); err != nil {
		t.Fatalf("group == capacity harus lolos, got %v", err)
	}
}

func TestCheckLessonRules_Sunday(t *testing.T) {
	loc := mustLoc(t)
	c := baseCandidate(loc)
	// 17 Okt 2021 = Minggu
	c.StartAt = time.Date(2021, 10, 17, 10, 0, 0, 0, loc)
	c.EndAt = time.Date(2021, 10, 17, 12, 0, 0, 0, loc)

	err := CheckLessonRules(c)
	if err == nil || err.Kind != KindOutsideOperatingHours {
		t.Fatalf("expected OutsideOperatingHours, got %v", err)
	}
}

func TestCheckLessonRules_StartHour(t *testing.T) {
	loc := mustLoc(t)
	cases := []struct {
		name    string
		hour    int
		wantErr bool
	}{
		{"jam 08 terlalu pagi", 8, true},
		{"jam 09 batas bawah", 9, false},
		{"jam 18 batas atas masih boleh", 18, false},
		{"jam 19 terlalu sore", 19, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := baseCandidate(loc)
			c.StartAt = time.Date(2021, 10, 18, tc.hour, 0, 0, 0, loc)
			c.EndAt = c.StartAt.Add(time.Hour)

			err := CheckLessonRules(c)
			if tc.wantErr {
				if err == nil || err.Kind != KindOutsideOperatingHours {
					t.Fatalf("expected OutsideOperatingHours, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected nil error, got %v", err)
			}
		})
	}
}

func TestCheckLessonRules_InvalidInterval(t *testing.T) {
	loc := mustLoc(t)

	c := baseCandidate(loc)
	c.EndAt = c.StartAt // end == start
	if err := CheckLessonRules(c); err == nil || err.Kind != KindInvalidInterval {
		t.Fatalf("end == start: expected InvalidInterval, got %v", err)
	}

	c = baseCandidate(loc)
	c.EndAt = c.StartAt.Add(-time.Hour) // end < start
	if err := CheckLessonRules(c); err == nil || err.Kind != KindInvalidInterval {
		t.Fatalf("end < start: expected InvalidInterval, got %v", err)
	}
}

func TestCheckLessonRules_OnlineLink(t *testing.T) {
	loc := mustLoc(t)
	cases := []struct {
		name    string
		link    string
		wantErr bool
	}{
		{"kosong", "", true},
		{"hanya spasi", "     ", true},
		{"4 char kependekan", "http", true},
		{"5 char batas bawah", "https", false},
		{"100 char batas atas", strings.Repeat("a", 100), false},
		{"101 char kepanjangan", strings.Repeat("a", 101), true},
		{"spasi tepi di-trim dulu", "  https://meet.example.com/abc  ", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := baseCandidate(loc)
			c.IsOnline = true
			c.OnlineLink = tc.link

			err := CheckLessonRules(c)
			if tc.wantErr {
				if err == nil || err.Kind != KindInvalidOnlineLink {
					t.Fatalf("expected InvalidOnlineLink, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected nil error, got %v", err)
			}
		})
	}
}

func TestCheckLessonRules_OfflineIgnoresLink(t *testing.T) {
	loc := mustLoc(t)
	c := baseCandidate(loc)
	c.IsOnline = false
	c.OnlineLink = ""

	if err := CheckLessonRules(c); err != nil {
		t.Fatalf("lesson offline tanpa link harus lolos, got %v", err)
	}
}

// Urutan fail-fast: kapasitas dicek sebelum hari/jam/interval/link.
func TestCheckLessonRules_CapacityCheckedFirst(t *testing.T) {
	loc := mustLoc(t)
	c := CandidateLesson{
		StartAt:    time.Date(2021, 10, 17, 7, 0, 0, 0, loc), // Minggu + jam 7
		EndAt:      time.Date(2021, 10, 17, 6, 0, 0, 0, loc), // end < start
		IsOnline:   true,
		OnlineLink: "x", // kependekan
		GroupSize:  50,
		Capacity:   10,
	}

	err := CheckLessonRules(c)
	if err == nil || err.Kind != KindCapacityExceeded {
		t.Fatalf("expected CapacityExceeded first, got %v", err)
	}
}
