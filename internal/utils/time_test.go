package utils

import (
	"testing"
	"time"
)

func date(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestNightsBetweenWholeDays(t *testing.T) {
	if n := NightsBetween(date("2024-01-01"), date("2024-01-04")); n != 3 {
		t.Fatalf("expected 3 nights, got %d", n)
	}
	if n := NightsBetween(date("2024-01-01"), date("2024-01-02")); n != 1 {
		t.Fatalf("expected 1 night, got %d", n)
	}
}

func TestNightsBetweenPartialDayRoundsUp(t *testing.T) {
	checkIn := date("2024-01-01")
	checkOut := checkIn.Add(25 * time.Hour)
	if n := NightsBetween(checkIn, checkOut); n != 2 {
		t.Fatalf("expected 2 nights for a 25 hour stay, got %d", n)
	}

	checkOut = checkIn.Add(3 * time.Hour)
	if n := NightsBetween(checkIn, checkOut); n != 1 {
		t.Fatalf("short positive stay should bill one night, got %d", n)
	}
}

func TestNightsBetweenNonPositive(t *testing.T) {
	day := date("2024-01-01")
	if n := NightsBetween(day, day); n != 0 {
		t.Fatalf("same instant should be 0 nights, got %d", n)
	}
	if n := NightsBetween(date("2024-01-05"), date("2024-01-01")); n != 0 {
		t.Fatalf("inverted range should be 0 nights, got %d", n)
	}
}

func TestNightlyTotal(t *testing.T) {
	nights := NightsBetween(date("2024-01-01"), date("2024-01-04"))
	total := int64(nights) * 100
	if total != 300 {
		t.Fatalf("3 nights at 100 should total 300, got %d", total)
	}
}
