package utils

import (
	"testing"
	"time"
)

func TestFormatBookingDate(t *testing.T) {
	// 2025-08-15 is a Friday.
	d := time.Date(2025, 8, 15, 14, 0, 0, 0, time.UTC)
	if got := FormatBookingDate(d); got != "Fre 15 aug" {
		t.Errorf("FormatBookingDate = %q, want %q", got, "Fre 15 aug")
	}
}

func TestFormatBookingTime(t *testing.T) {
	d := time.Date(2025, 8, 15, 9, 5, 0, 0, time.UTC)
	if got := FormatBookingTime(d); got != "09.05" {
		t.Errorf("FormatBookingTime = %q, want %q", got, "09.05")
	}
}

func TestFormatBookingDateTime(t *testing.T) {
	start := time.Date(2025, 8, 11, 14, 0, 0, 0, time.UTC) // Monday
	end := start.Add(2 * time.Hour)
	if got := FormatBookingDateTime(start, end); got != "Mån 11 aug 14.00 – 16.00" {
		t.Errorf("FormatBookingDateTime = %q", got)
	}
}

func TestFormatTimeRange(t *testing.T) {
	start := time.Date(2025, 8, 11, 10, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	if got := FormatTimeRange(start, end); got != "10.00-11.00" {
		t.Errorf("FormatTimeRange = %q", got)
	}
}

func TestDateKey(t *testing.T) {
	d := time.Date(2025, 1, 3, 23, 59, 0, 0, time.UTC)
	if got := DateKey(d); got != "2025-01-03" {
		t.Errorf("DateKey = %q", got)
	}
}

func TestDayBounds(t *testing.T) {
	d := time.Date(2025, 8, 15, 13, 37, 11, 0, time.UTC)
	start, end := DayBounds(d)
	if !start.Equal(time.Date(2025, 8, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2025, 8, 16, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}
	if !end.After(start) || end.Sub(start) != 24*time.Hour {
		t.Errorf("bounds span = %v", end.Sub(start))
	}
}
