package utils

import (
	"math"
	"strings"
	"time"
)

const (
	layoutDate     = "2006-01-02"
	layoutDateTime = "2006-01-02 15:04:05"
)

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatDate formats time to YYYY-MM-DD in local timezone.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// FormatDateTime formats time to "YYYY-MM-DD HH:MM:SS" in local timezone.
func FormatDateTime(t time.Time) string {
	return t.In(time.Local).Format(layoutDateTime)
}

// NightsBetween counts billable nights between check-in and check-out.
// Partial days round up, and any positive stay bills at least one night.
func NightsBetween(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)
	if diff <= 0 {
		return 0
	}
	nights := int(math.Ceil(diff.Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return nights
}
