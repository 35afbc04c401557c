// file: internals/features/university/lessons/dto/lesson_dto_test.go
package dto

import (
	"testing"
	"time"
)

func jakarta(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}
	return loc
}

func TestParseDateTime(t *testing.T) {
	loc := jakarta(t)

	got, err := ParseDateTime("2021-10-18T10:30", loc)
	if err != nil {
		t.Fatalf("tanpa detik: %v", err)
	}
	want := time.Date(2021, 10, 18, 10, 30, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("got %s want %s", got, want)
	}

	got, err = ParseDateTime("2021-10-18T10:30:45", loc)
	if err != nil {
		t.Fatalf("dengan detik: %v", err)
	}
	if got.Second() != 45 {
		t.Fatalf("detik harus 45, got %d", got.Second())
	}

	// Spasi tepi ditoleransi.
	if _, err := ParseDateTime("  2021-10-18T10:30  ", loc); err != nil {
		t.Fatalf("spasi tepi: %v", err)
	}

	for _, bad := range []string{"", "18-10-2021 10:30", "2021-10-18", "2021-13-40T10:30"} {
		if _, err := ParseDateTime(bad, loc); err == nil {
			t.Fatalf("%q harus gagal parse", bad)
		}
	}
}

func TestParseDateTime_UsesLocation(t *testing.T) {
	loc := jakarta(t)

	got, err := ParseDateTime("2021-10-18T10:00", loc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	// 10:00 WIB == 03:00 UTC
	if h := got.UTC().Hour(); h != 3 {
		t.Fatalf("10:00 WIB harus 03:00 UTC, got %02d", h)
	}
}

func TestParseDate(t *testing.T) {
	loc := jakarta(t)

	got, err := ParseDate("2021-10-18", loc)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2021, 10, 18, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Fatalf("got %s want %s", got, want)
	}

	for _, bad := range []string{"", "2021/10/18", "2021-10-18T10:00"} {
		if _, err := ParseDate(bad, loc); err == nil {
			t.Fatalf("%q harus gagal parse", bad)
		}
	}
}
